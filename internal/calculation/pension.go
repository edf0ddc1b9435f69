package calculation

import (
	"math"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/lpsim/lifeplan-simulator/internal/domain"
	"github.com/lpsim/lifeplan-simulator/pkg/manyen"
)

// Public pension constants, 2025 fiscal year. Amounts are yen.
var (
	// Basic (flat-rate) pension
	basicPensionFullAmount = decimal.NewFromInt(780_900)
	fullPensionMonths      = 480

	// Welfare (income-linked) pension accrual rates, split at the April 2003
	// rate change
	welfareRateBefore2003 = decimal.NewFromFloat(0.007125)
	welfareRateAfter2003  = decimal.NewFromFloat(0.005481)

	// Claiming-age adjustment
	standardPensionStartAge    = 65
	earlyPensionRatePerMonth   = decimal.NewFromFloat(0.004)
	delayedPensionRatePerMonth = decimal.NewFromFloat(0.007)

	// In-service (zaishoku) reduction thresholds, monthly yen
	inServiceThresholdUnder65 = decimal.NewFromInt(470_000)
	inServiceThresholdOver65  = decimal.NewFromInt(510_000)

	// Standard bonus caps, yen
	maxStandardBonusPerPayment = decimal.NewFromInt(1_500_000)
	maxStandardBonusPerYear    = decimal.NewFromInt(5_730_000)
)

// remunerationGrade is one row of the 32-grade standard remuneration table.
// Bounds and amount are monthly yen; max of zero means unbounded.
type remunerationGrade struct {
	Grade  int
	Amount int64
	Min    int64
	Max    int64
}

var standardRemunerationTable = []remunerationGrade{
	{1, 88_000, 0, 93_000},
	{2, 98_000, 93_000, 101_000},
	{3, 104_000, 101_000, 107_000},
	{4, 110_000, 107_000, 114_000},
	{5, 118_000, 114_000, 122_000},
	{6, 126_000, 122_000, 130_000},
	{7, 134_000, 130_000, 138_000},
	{8, 142_000, 138_000, 146_000},
	{9, 150_000, 146_000, 155_000},
	{10, 160_000, 155_000, 165_000},
	{11, 170_000, 165_000, 175_000},
	{12, 180_000, 175_000, 185_000},
	{13, 190_000, 185_000, 195_000},
	{14, 200_000, 195_000, 210_000},
	{15, 220_000, 210_000, 230_000},
	{16, 240_000, 230_000, 250_000},
	{17, 260_000, 250_000, 270_000},
	{18, 280_000, 270_000, 290_000},
	{19, 300_000, 290_000, 310_000},
	{20, 320_000, 310_000, 330_000},
	{21, 340_000, 330_000, 350_000},
	{22, 360_000, 350_000, 370_000},
	{23, 380_000, 370_000, 395_000},
	{24, 410_000, 395_000, 425_000},
	{25, 440_000, 425_000, 455_000},
	{26, 470_000, 455_000, 485_000},
	{27, 500_000, 485_000, 515_000},
	{28, 530_000, 515_000, 545_000},
	{29, 560_000, 545_000, 575_000},
	{30, 590_000, 575_000, 605_000},
	{31, 620_000, 605_000, 635_000},
	{32, 650_000, 635_000, 0},
}

// StandardRemuneration maps a monthly income (yen) onto the banded standard
// monthly amount. Income outside the table clamps to the nearest grade.
func StandardRemuneration(monthlyIncomeYen decimal.Decimal) decimal.Decimal {
	income := monthlyIncomeYen.IntPart()
	for _, g := range standardRemunerationTable {
		if income >= g.Min && (g.Max == 0 || income < g.Max) {
			return decimal.NewFromInt(g.Amount)
		}
	}
	if income < standardRemunerationTable[0].Min {
		return decimal.NewFromInt(standardRemunerationTable[0].Amount)
	}
	return decimal.NewFromInt(standardRemunerationTable[len(standardRemunerationTable)-1].Amount)
}

// StandardBonus caps a single bonus payment (yen) at the statutory maximum.
func StandardBonus(bonusYen decimal.Decimal) decimal.Decimal {
	return manyen.Min(bonusYen, maxStandardBonusPerPayment)
}

// ContributionMonths is the accrual history split by scheme.
type ContributionMonths struct {
	Welfare           int
	WelfareBefore2003 int
	WelfareAfter2003  int
	National          int
	Category3         int
}

// Total is the basic pension months pool: every scheme counts.
func (cm ContributionMonths) Total() int {
	return cm.Welfare + cm.National + cm.Category3
}

// CalculateContributionMonths derives contribution months from the work
// history implied by the profile. Welfare months are split at April 2003
// because the accrual rate changed there.
func CalculateContributionMonths(profile *domain.Profile) ContributionMonths {
	workStartAge := profile.EffectiveWorkStartAge()
	workingMonths := (profile.CurrentAge - workStartAge) * 12
	if workingMonths < 0 {
		workingMonths = 0
	}

	ageInApril2003 := float64(2003-profile.BirthYear()) + 4.0/12.0
	monthsUntilApril2003 := 0
	if ageInApril2003 >= float64(workStartAge) {
		monthsUntilApril2003 = int(math.Round((ageInApril2003 - float64(workStartAge)) * 12))
	}
	monthsAfterApril2003 := workingMonths - monthsUntilApril2003
	if monthsAfterApril2003 < 0 {
		monthsAfterApril2003 = 0
	}

	var cm ContributionMonths
	switch profile.Occupation {
	case domain.OccupationCompanyEmployee, domain.OccupationPartTimeWithPension:
		cm.Welfare = workingMonths
		cm.WelfareBefore2003 = monthsUntilApril2003
		cm.WelfareAfter2003 = monthsAfterApril2003
	case domain.OccupationPartTimeWithoutPension, domain.OccupationSelfEmployed:
		cm.National = workingMonths
	case domain.OccupationHomemaker:
		cm.Category3 = workingMonths
	}
	return cm
}

// RemunerationHistory is the per-year standard remuneration and bonus record
// derived from the income items, plus the average used for accrual. Yen.
type RemunerationHistory struct {
	StandardRemuneration map[int]decimal.Decimal
	StandardBonus        map[int]decimal.Decimal
	Average              decimal.Decimal
}

// CalculateRemunerationHistory converts each year's salary into its standard
// remuneration grade amount and caps each year's bonus at the annual
// statutory maximum.
func CalculateRemunerationHistory(incomes *domain.IncomeSection) RemunerationHistory {
	history := RemunerationHistory{
		StandardRemuneration: make(map[int]decimal.Decimal),
		StandardBonus:        make(map[int]decimal.Decimal),
	}

	if salary := incomes.ByKind(domain.IncomeSalary); salary != nil {
		for year, amount := range salary.Amounts {
			monthlyYen := manyen.Yen(amount).Div(twelve).Round(0)
			history.StandardRemuneration[year] = StandardRemuneration(monthlyYen)
		}
	}
	if bonus := incomes.ByKind(domain.IncomeBonus); bonus != nil {
		for year, amount := range bonus.Amounts {
			history.StandardBonus[year] = manyen.Min(manyen.Yen(amount), maxStandardBonusPerYear)
		}
	}

	if len(history.StandardRemuneration) > 0 {
		years := make([]int, 0, len(history.StandardRemuneration))
		for y := range history.StandardRemuneration {
			years = append(years, y)
		}
		sort.Ints(years)
		sum := decimal.Zero
		for _, y := range years {
			sum = sum.Add(history.StandardRemuneration[y])
		}
		history.Average = sum.Div(decimal.NewFromInt(int64(len(years)))).Round(0)
	}
	return history
}

// BasicPensionAmount returns the annual basic pension (yen) for a total
// contribution month count, floored, capped at the 480-month full amount.
func BasicPensionAmount(totalMonths int) decimal.Decimal {
	ratio := decimal.NewFromInt(int64(totalMonths)).Div(decimal.NewFromInt(int64(fullPensionMonths)))
	if ratio.GreaterThan(one) {
		ratio = one
	}
	return basicPensionFullAmount.Mul(ratio).Floor()
}

// WelfarePensionAmount returns the annual welfare pension (yen) from the
// average standard remuneration and the rate-split month counts, floored.
func WelfarePensionAmount(avgStandardRemuneration decimal.Decimal, monthsBefore2003, monthsAfter2003 int) decimal.Decimal {
	before := avgStandardRemuneration.Mul(welfareRateBefore2003).Mul(decimal.NewFromInt(int64(monthsBefore2003)))
	after := avgStandardRemuneration.Mul(welfareRateAfter2003).Mul(decimal.NewFromInt(int64(monthsAfter2003)))
	return before.Add(after).Floor()
}

// PensionAdjustmentRate returns the multiplicative factor for claiming at the
// given age: -0.4%/month before 65, +0.7%/month after, 1.0 at exactly 65.
func PensionAdjustmentRate(pensionStartAge int) decimal.Decimal {
	monthDiff := (pensionStartAge - standardPensionStartAge) * 12
	switch {
	case monthDiff == 0:
		return one
	case monthDiff < 0:
		reduction := earlyPensionRatePerMonth.Mul(decimal.NewFromInt(int64(-monthDiff)))
		return one.Sub(reduction)
	default:
		increase := delayedPensionRatePerMonth.Mul(decimal.NewFromInt(int64(monthDiff)))
		return one.Add(increase)
	}
}

// AdjustPensionForWorking applies the in-service (zaishoku) reduction: when
// total monthly income including the pension exceeds the age-dependent
// threshold, half the excess is withheld from the welfare pension, up to the
// full welfare amount. The basic pension is never reduced. Inputs and
// outputs are annual yen; monthlyIncomeYen is the wage.
func AdjustPensionForWorking(basicPension, welfarePension, monthlyIncomeYen decimal.Decimal, age int) (basic, welfare decimal.Decimal) {
	monthlyBasic := manyen.Monthly(basicPension)
	monthlyWelfare := manyen.Monthly(welfarePension)

	threshold := inServiceThresholdUnder65
	if age >= 65 {
		threshold = inServiceThresholdOver65
	}

	totalMonthly := monthlyIncomeYen.Add(monthlyBasic).Add(monthlyWelfare)
	excess := totalMonthly.Sub(threshold)
	if excess.IsNegative() {
		excess = decimal.Zero
	}
	suspension := manyen.Min(monthlyWelfare, excess.Div(decimal.NewFromInt(2)))

	return basicPension, manyen.Annual(monthlyWelfare.Sub(suspension)).Floor()
}

// PensionResult is the full accrual-history computation with every
// intermediate figure retained for display. Pension amounts are annual yen.
type PensionResult struct {
	RemunerationHistory RemunerationHistory
	Months              ContributionMonths
	BasicPension        decimal.Decimal
	WelfarePension      decimal.Decimal
	TotalPension        decimal.Decimal
	AdjustmentRate      decimal.Decimal
}

// CalculatePension runs the full accrual-history pension computation:
// contribution months, remuneration history, basic and welfare amounts,
// claiming-age adjustment, and the in-service reduction when the profile
// plans to keep working past the claiming age.
//
// The projection loop does not call this; it uses the simplified
// PensionForYear estimator.
func CalculatePension(profile *domain.Profile, incomes *domain.IncomeSection) PensionResult {
	months := CalculateContributionMonths(profile)
	history := CalculateRemunerationHistory(incomes)

	rawBasic := BasicPensionAmount(months.Total())
	rawWelfare := WelfarePensionAmount(history.Average, months.WelfareBefore2003, months.WelfareAfter2003)

	rate := PensionAdjustmentRate(profile.EffectivePensionStartAge())
	basic := rawBasic.Mul(rate).Floor()
	welfare := rawWelfare.Mul(rate).Floor()

	if profile.WorkAfterPension {
		pensionStartYear := profile.StartYear + (profile.EffectivePensionStartAge() - profile.CurrentAge)
		monthlyIncome := decimal.Zero
		if salary := incomes.ByKind(domain.IncomeSalary); salary != nil {
			if amount := salary.Amounts.Get(pensionStartYear); amount.IsPositive() {
				monthlyIncome = manyen.Yen(amount).Div(twelve)
			}
		}
		basic, welfare = AdjustPensionForWorking(basic, welfare, monthlyIncome, profile.EffectivePensionStartAge())
	}

	return PensionResult{
		RemunerationHistory: history,
		Months:              months,
		BasicPension:        basic,
		WelfarePension:      welfare,
		TotalPension:        basic.Add(welfare),
		AdjustmentRate:      rate,
	}
}
