package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/lpsim/lifeplan-simulator/internal/domain"
)

func TestStandardRemuneration(t *testing.T) {
	tests := []struct {
		name     string
		monthly  int64
		expected int64
	}{
		{"Below the lowest grade clamps to grade 1", 50_000, 88_000},
		{"Grade boundary is inclusive on the lower side", 93_000, 98_000},
		{"Just below a boundary stays in the lower grade", 92_999, 88_000},
		{"Mid-table grade", 300_000, 300_000},
		{"Off-amount income snaps to the grade amount", 400_000, 410_000},
		{"Above the highest grade clamps to grade 32", 1_000_000, 650_000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StandardRemuneration(decimal.NewFromInt(tt.monthly))
			assertDecimalEqual(t, decimal.NewFromInt(tt.expected), got)
		})
	}
}

func TestStandardBonus(t *testing.T) {
	assertDecimalEqual(t, decimal.NewFromInt(1_000_000), StandardBonus(decimal.NewFromInt(1_000_000)))
	assertDecimalEqual(t, decimal.NewFromInt(1_500_000), StandardBonus(decimal.NewFromInt(2_000_000)))
}

func TestCalculateContributionMonths(t *testing.T) {
	tests := []struct {
		name       string
		currentAge int
		startYear  int
		occupation domain.Occupation
		expected   ContributionMonths
	}{
		{
			// Born 1980, working since 22 (2002). April 2003 falls 16
			// months into the career, splitting the welfare accrual.
			name:       "Employee career spanning April 2003",
			currentAge: 45,
			startYear:  2025,
			occupation: domain.OccupationCompanyEmployee,
			expected: ContributionMonths{
				Welfare:           276,
				WelfareBefore2003: 16,
				WelfareAfter2003:  260,
			},
		},
		{
			// Born 1995, started working 2017, entirely after the rate change
			name:       "Employee career entirely after April 2003",
			currentAge: 30,
			startYear:  2025,
			occupation: domain.OccupationCompanyEmployee,
			expected: ContributionMonths{
				Welfare:          96,
				WelfareAfter2003: 96,
			},
		},
		{
			name:       "Self-employed pays national pension only",
			currentAge: 30,
			startYear:  2025,
			occupation: domain.OccupationSelfEmployed,
			expected:   ContributionMonths{National: 96},
		},
		{
			name:       "Homemaker accrues as category 3",
			currentAge: 30,
			startYear:  2025,
			occupation: domain.OccupationHomemaker,
			expected:   ContributionMonths{Category3: 96},
		},
		{
			name:       "Not yet working",
			currentAge: 20,
			startYear:  2025,
			occupation: domain.OccupationCompanyEmployee,
			expected:   ContributionMonths{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := &domain.Profile{
				CurrentAge: tt.currentAge,
				StartYear:  tt.startYear,
				Occupation: tt.occupation,
			}
			got := CalculateContributionMonths(profile)
			assert.Equal(t, tt.expected, got)
			assert.Equal(t, tt.expected.Welfare+tt.expected.National+tt.expected.Category3, got.Total())
		})
	}
}

func TestBasicPensionAmount(t *testing.T) {
	tests := []struct {
		name     string
		months   int
		expected decimal.Decimal
	}{
		{"Full 480 months", 480, decimal.NewFromInt(780_900)},
		{"Half career", 240, decimal.NewFromInt(390_450)},
		{"Months beyond 480 do not accrue further", 600, decimal.NewFromInt(780_900)},
		{"No contributions", 0, decimal.Zero},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertDecimalEqual(t, tt.expected, BasicPensionAmount(tt.months))
		})
	}
}

func TestWelfarePensionAmount(t *testing.T) {
	avg := decimal.NewFromInt(300_000)

	// 300,000 * 0.005481 * 480 = 789,264
	got := WelfarePensionAmount(avg, 0, 480)
	assertDecimalEqual(t, decimal.NewFromInt(789_264), got)

	// The pre-2003 rate is higher for the same month count
	before := WelfarePensionAmount(avg, 480, 0)
	assert.True(t, before.GreaterThan(got))

	assertDecimalEqual(t, decimal.Zero, WelfarePensionAmount(avg, 0, 0))
}

func TestPensionAdjustmentRate(t *testing.T) {
	tests := []struct {
		name     string
		startAge int
		expected decimal.Decimal
	}{
		{"Earliest claiming at 60", 60, decimal.NewFromFloat(0.76)},
		{"Early claiming at 63", 63, decimal.NewFromFloat(0.904)},
		{"Standard age", 65, decimal.NewFromInt(1)},
		{"Delayed to 70", 70, decimal.NewFromFloat(1.42)},
		{"Delayed to 75", 75, decimal.NewFromFloat(1.84)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertDecimalEqual(t, tt.expected, PensionAdjustmentRate(tt.startAge))
		})
	}
}

func TestAdjustPensionForWorking(t *testing.T) {
	basic := decimal.NewFromInt(780_900)
	welfare := decimal.NewFromInt(1_200_000)

	t.Run("Below threshold leaves pension untouched", func(t *testing.T) {
		gotBasic, gotWelfare := AdjustPensionForWorking(basic, welfare, decimal.NewFromInt(100_000), 65)
		assertDecimalEqual(t, basic, gotBasic)
		assertDecimalEqual(t, welfare, gotWelfare)
	})

	t.Run("Excess withholds half from the welfare tier", func(t *testing.T) {
		// Monthly: 400,000 wage + 65,075 basic + 100,000 welfare = 565,075.
		// Excess over 510,000 is 55,075; half of it is withheld.
		gotBasic, gotWelfare := AdjustPensionForWorking(basic, welfare, decimal.NewFromInt(400_000), 65)
		assertDecimalEqual(t, basic, gotBasic)
		assertDecimalEqual(t, decimal.NewFromInt(869_550), gotWelfare)
	})

	t.Run("Lower threshold before 65", func(t *testing.T) {
		_, gotWelfare64 := AdjustPensionForWorking(basic, welfare, decimal.NewFromInt(400_000), 64)
		_, gotWelfare65 := AdjustPensionForWorking(basic, welfare, decimal.NewFromInt(400_000), 65)
		assert.True(t, gotWelfare64.LessThan(gotWelfare65))
	})

	t.Run("Suspension never exceeds the welfare tier", func(t *testing.T) {
		gotBasic, gotWelfare := AdjustPensionForWorking(basic, welfare, decimal.NewFromInt(5_000_000), 65)
		assertDecimalEqual(t, basic, gotBasic)
		assertDecimalEqual(t, decimal.Zero, gotWelfare)
	})
}

func TestCalculateRemunerationHistory(t *testing.T) {
	incomes := &domain.IncomeSection{
		Personal: []domain.IncomeItem{
			{
				Kind: domain.IncomeSalary,
				Amounts: domain.YearAmounts{
					2020: decimal.NewFromInt(360), // 300,000 yen/month
					2021: decimal.NewFromInt(480), // 400,000 yen/month, grade 410,000
				},
			},
			{
				Kind: domain.IncomeBonus,
				Amounts: domain.YearAmounts{
					2020: decimal.NewFromInt(100), // 1,000,000 yen
					2021: decimal.NewFromInt(600), // capped at 5,730,000 yen
				},
			},
		},
	}

	history := CalculateRemunerationHistory(incomes)

	assertDecimalEqual(t, decimal.NewFromInt(300_000), history.StandardRemuneration[2020])
	assertDecimalEqual(t, decimal.NewFromInt(410_000), history.StandardRemuneration[2021])
	assertDecimalEqual(t, decimal.NewFromInt(355_000), history.Average)

	assertDecimalEqual(t, decimal.NewFromInt(1_000_000), history.StandardBonus[2020])
	assertDecimalEqual(t, decimal.NewFromInt(5_730_000), history.StandardBonus[2021])
}

func TestCalculateRemunerationHistoryEmpty(t *testing.T) {
	history := CalculateRemunerationHistory(&domain.IncomeSection{})
	assert.Empty(t, history.StandardRemuneration)
	assert.True(t, history.Average.IsZero())
}

func TestCalculatePension(t *testing.T) {
	profile := &domain.Profile{
		CurrentAge:      45,
		StartYear:       2025,
		Occupation:      domain.OccupationCompanyEmployee,
		WorkStartAge:    22,
		PensionStartAge: 65,
	}
	incomes := &domain.IncomeSection{
		Personal: []domain.IncomeItem{
			{
				Kind: domain.IncomeSalary,
				Amounts: domain.YearAmounts{
					2025: decimal.NewFromInt(360),
				},
			},
		},
	}

	result := CalculatePension(profile, incomes)

	// 276 welfare months also count toward the basic tier: 780,900 * 276/480
	assertDecimalEqual(t, decimal.NewFromInt(449_017), result.BasicPension)
	assert.True(t, result.WelfarePension.IsPositive())
	assertDecimalEqual(t, result.BasicPension.Add(result.WelfarePension), result.TotalPension)
	assertDecimalEqual(t, decimal.NewFromInt(1), result.AdjustmentRate)
}

func TestCalculatePensionDelayedClaiming(t *testing.T) {
	profile := &domain.Profile{
		CurrentAge:      45,
		StartYear:       2025,
		Occupation:      domain.OccupationCompanyEmployee,
		WorkStartAge:    22,
		PensionStartAge: 70,
	}
	incomes := &domain.IncomeSection{}

	standard := *profile
	standard.PensionStartAge = 65

	delayed := CalculatePension(profile, incomes)
	base := CalculatePension(&standard, incomes)

	assertDecimalEqual(t, decimal.NewFromFloat(1.42), delayed.AdjustmentRate)
	assert.True(t, delayed.TotalPension.GreaterThan(base.TotalPension))
}
