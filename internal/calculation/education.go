package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/lpsim/lifeplan-simulator/internal/domain"
	"github.com/lpsim/lifeplan-simulator/pkg/manyen"
)

// Annual schooling cost per stage in man-yen, public/private. University
// costs depend on the faculty track instead.
var (
	nurseryCosts    = stageCost{public: decimal.NewFromFloat(23.3), private: decimal.NewFromInt(50)}
	preschoolCosts  = stageCost{public: decimal.NewFromFloat(58.3), private: decimal.NewFromInt(100)}
	elementaryCosts = stageCost{public: decimal.NewFromFloat(41.7), private: decimal.NewFromFloat(83.3)}
	juniorHighCosts = stageCost{public: decimal.NewFromFloat(66.7), private: decimal.NewFromFloat(133.3)}
	highSchoolCosts = stageCost{public: decimal.NewFromFloat(83.3), private: decimal.NewFromInt(250)}

	universityCosts = map[domain.SchoolChoice]decimal.Decimal{
		domain.UniversityPublicHumanities:  decimal.NewFromInt(325),
		domain.UniversityPublicScience:     decimal.NewFromInt(375),
		domain.UniversityPrivateHumanities: decimal.NewFromInt(550),
		domain.UniversityPrivateScience:    decimal.NewFromInt(650),
	}
)

type stageCost struct {
	public  decimal.Decimal
	private decimal.Decimal
}

func (sc stageCost) forChoice(choice domain.SchoolChoice) decimal.Decimal {
	switch choice {
	case domain.SchoolNone, "":
		return decimal.Zero
	case domain.SchoolPrivate:
		return sc.private
	default:
		return sc.public
	}
}

// annualCostAtAge maps a child's age to the schooling cost under the plan:
// 0-2 nursery, 3-5 preschool, 6-11 elementary, 12-14 junior high, 15-17 high
// school, 18-21 university (4-year attendance). Outside those ranges, zero.
func annualCostAtAge(plan domain.EducationPlan, age int) decimal.Decimal {
	switch {
	case age >= 0 && age <= 2:
		return nurseryCosts.forChoice(plan.Nursery)
	case age >= 3 && age <= 5:
		return preschoolCosts.forChoice(plan.Preschool)
	case age >= 6 && age <= 11:
		return elementaryCosts.forChoice(plan.Elementary)
	case age >= 12 && age <= 14:
		return juniorHighCosts.forChoice(plan.JuniorHigh)
	case age >= 15 && age <= 17:
		return highSchoolCosts.forChoice(plan.HighSchool)
	case age >= 18 && age <= 21:
		if plan.University == domain.SchoolNone || plan.University == "" {
			return decimal.Zero
		}
		if cost, ok := universityCosts[plan.University]; ok {
			return cost
		}
		return decimal.Zero
	}
	return decimal.Zero
}

// EducationExpense sums the schooling cost of every existing and planned
// child for a calendar year, inflated by the education cost increase rate
// from the simulation start, rounded to one decimal. Man-yen.
func EducationExpense(children []domain.Child, planned []domain.PlannedChild, year, startYear int, increaseRatePct decimal.Decimal) decimal.Decimal {
	yearsSinceStart := year - startYear
	multiplier := one.Add(increaseRatePct.Div(hundred)).Pow(decimal.NewFromInt(int64(yearsSinceStart)))

	total := decimal.Zero
	for _, child := range children {
		age := child.CurrentAge + yearsSinceStart
		cost := annualCostAtAge(child.EducationPlan, age)
		total = total.Add(cost.Mul(multiplier))
	}
	for _, child := range planned {
		if yearsSinceStart < child.YearsFromNow {
			continue
		}
		age := yearsSinceStart - child.YearsFromNow
		cost := annualCostAtAge(child.EducationPlan, age)
		total = total.Add(cost.Mul(multiplier))
	}
	return manyen.Round1(total)
}
