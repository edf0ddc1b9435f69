package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/lpsim/lifeplan-simulator/internal/domain"
	"github.com/lpsim/lifeplan-simulator/pkg/manyen"
)

var (
	hundred = decimal.NewFromInt(100)
	twelve  = decimal.NewFromInt(12)
	one     = decimal.NewFromInt(1)
)

// MonthlyMortgage returns the level monthly payment for an amortized loan,
// rounded to one decimal. A zero interest rate degenerates to straight-line
// repayment of the principal.
func MonthlyMortgage(loanAmount, annualRatePct decimal.Decimal, termYears int) decimal.Decimal {
	payments := decimal.NewFromInt(int64(termYears) * 12)
	if annualRatePct.IsZero() {
		return loanAmount.Div(payments)
	}

	monthlyRate := annualRatePct.Div(hundred).Div(twelve)
	compound := one.Add(monthlyRate).Pow(payments)
	payment := loanAmount.Mul(monthlyRate.Mul(compound)).Div(compound.Sub(one))
	return manyen.Round1(payment)
}

// HousingExpense returns the annual housing cost (man-yen) for a calendar
// year under the given configuration.
//
// For rent, the annual rent is escalated from the simulation start and the
// accumulated renewal cost (renewal count so far times the fee) is added in
// every year, not only in renewal years.
func HousingExpense(h *domain.Housing, year, startYear int) decimal.Decimal {
	switch h.Type {
	case domain.HousingRent:
		if h.Rent == nil {
			return decimal.Zero
		}
		yearsSinceStart := year - startYear
		annualRent := h.Rent.MonthlyRent.Mul(twelve)

		renewals := 0
		if h.Rent.RenewalInterval > 0 && yearsSinceStart > 0 {
			renewals = yearsSinceStart / h.Rent.RenewalInterval
		}
		renewalCost := h.Rent.RenewalFee.Mul(decimal.NewFromInt(int64(renewals)))

		growth := one.Add(h.Rent.AnnualIncreaseRate.Div(hundred)).Pow(decimal.NewFromInt(int64(yearsSinceStart)))
		return manyen.Round1(annualRent.Mul(growth).Add(renewalCost))

	case domain.HousingOwn:
		if h.Own == nil {
			return decimal.Zero
		}
		if year < h.Own.PurchaseYear {
			return decimal.Zero
		}

		maintenance := h.Own.PurchasePrice.Mul(h.Own.MaintenanceCostRate.Div(hundred))
		if year >= h.Own.LoanEndYear() {
			return maintenance
		}

		annualMortgage := MonthlyMortgage(h.Own.LoanAmount, h.Own.InterestRate, h.Own.LoanTermYears).Mul(twelve)
		return manyen.Round1(annualMortgage.Add(maintenance))
	}

	return decimal.Zero
}
