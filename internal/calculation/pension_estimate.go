package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/lpsim/lifeplan-simulator/internal/domain"
	"github.com/lpsim/lifeplan-simulator/pkg/manyen"
)

// Simplified per-year pension estimate used by the roll-forward loop. It
// approximates the welfare tier as 18% of the current year's salary instead
// of replaying the accrual history; CalculatePension is the full calculator.
// The two are never blended.
var (
	estimatedBasicPension    = decimal.NewFromFloat(78.0)  // man-yen/year
	estimatedWelfareRate     = decimal.NewFromFloat(0.18)  // of current salary
	estimatedWelfareFallback = decimal.NewFromFloat(100.0) // man-yen/year when no salary data
	spousePensionStartAge    = 65
)

// PensionForYear estimates the person's pension income (man-yen) for a
// calendar year. Zero before the claiming age. Welfare-eligible occupations
// add 18% of that year's gross salary, or a flat fallback when the salary
// item carries no figure for the year. Rounded to one decimal.
func PensionForYear(profile *domain.Profile, incomes *domain.IncomeSection, year int) decimal.Decimal {
	age := profile.AgeInYear(year)
	if age < profile.EffectivePensionStartAge() {
		return decimal.Zero
	}

	pension := estimatedBasicPension
	if profile.Occupation.HasWelfarePension() {
		salary := decimal.Zero
		if item := incomes.ByKind(domain.IncomeSalary); item != nil {
			salary = item.Amounts.Get(year)
		}
		if salary.IsPositive() {
			pension = pension.Add(salary.Mul(estimatedWelfareRate))
		} else {
			pension = pension.Add(estimatedWelfareFallback)
		}
	}
	return manyen.Round1(pension)
}

// SpousePensionForYear estimates the spouse's pension income (man-yen) for a
// calendar year. Zero when single, before a planned marriage, or before the
// spouse reaches the standard claiming age. A missing spouse occupation is
// treated as homemaker (basic pension only).
func SpousePensionForYear(profile *domain.Profile, incomes *domain.IncomeSection, year int) decimal.Decimal {
	spouseAge, ok := profile.SpouseAgeInYear(year)
	if !ok || spouseAge < spousePensionStartAge {
		return decimal.Zero
	}

	occupation := domain.OccupationHomemaker
	if profile.Spouse != nil && profile.Spouse.Occupation != "" {
		occupation = profile.Spouse.Occupation
	}

	pension := estimatedBasicPension
	if occupation.HasWelfarePension() {
		income := decimal.Zero
		if item := incomes.ByKind(domain.IncomeSpouse); item != nil {
			income = item.Amounts.Get(year)
		}
		if income.IsPositive() {
			pension = pension.Add(income.Mul(estimatedWelfareRate))
		} else {
			pension = pension.Add(estimatedWelfareFallback)
		}
	}
	return manyen.Round1(pension)
}
