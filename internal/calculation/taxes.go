package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/lpsim/lifeplan-simulator/internal/domain"
	"github.com/lpsim/lifeplan-simulator/pkg/manyen"
)

// TAX CALCULATION ASSUMPTIONS:
//
// 1. Salary deduction and income tax use the 2025 statutory tables for all
//    projection years; no indexing is applied to future years.
// 2. Social insurance is approximated as a flat rate on gross salary
//    (15% under 8.5M yen, 7.7% above), not the per-scheme premium tables.
// 3. Resident tax is a flat 10% of taxable income.
// 4. Inputs and outputs are man-yen; the tables are yen, so amounts are
//    converted, the table applied, and the result truncated to whole man-yen.

// taxBracket is one row of the progressive income tax table, in yen.
type taxBracket struct {
	Limit     decimal.Decimal // upper bound of taxable income; zero means unbounded
	Rate      decimal.Decimal
	Deduction decimal.Decimal // bracket-specific fixed deduction
}

// TaxCalculator derives net income from gross salary for a given occupation.
type TaxCalculator struct {
	brackets []taxBracket

	salaryDeductionCap   decimal.Decimal // 8,500,000 yen
	salaryDeductionFloor decimal.Decimal // 550,000 yen
	salaryDeductionMax   decimal.Decimal // 1,950,000 yen
}

// NewTaxCalculator creates a tax calculator with the 2025 tables.
func NewTaxCalculator() *TaxCalculator {
	return &TaxCalculator{
		brackets: []taxBracket{
			{decimal.NewFromInt(1_950_000), decimal.NewFromFloat(0.05), decimal.Zero},
			{decimal.NewFromInt(3_300_000), decimal.NewFromFloat(0.10), decimal.NewFromInt(97_500)},
			{decimal.NewFromInt(6_950_000), decimal.NewFromFloat(0.20), decimal.NewFromInt(427_500)},
			{decimal.NewFromInt(9_000_000), decimal.NewFromFloat(0.23), decimal.NewFromInt(636_000)},
			{decimal.NewFromInt(18_000_000), decimal.NewFromFloat(0.33), decimal.NewFromInt(1_536_000)},
			{decimal.NewFromInt(40_000_000), decimal.NewFromFloat(0.40), decimal.NewFromInt(2_796_000)},
			{decimal.Zero, decimal.NewFromFloat(0.45), decimal.NewFromInt(4_796_000)},
		},
		salaryDeductionCap:   decimal.NewFromInt(8_500_000),
		salaryDeductionFloor: decimal.NewFromInt(550_000),
		salaryDeductionMax:   decimal.NewFromInt(1_950_000),
	}
}

// SalaryDeduction returns the employment income deduction for an annual
// income in man-yen, truncated to whole man-yen.
func (tc *TaxCalculator) SalaryDeduction(annualIncome decimal.Decimal) decimal.Decimal {
	incomeYen := manyen.Yen(annualIncome)
	if incomeYen.GreaterThan(tc.salaryDeductionCap) {
		return manyen.FloorYenToMan(tc.salaryDeductionMax)
	}
	deduction := incomeYen.Mul(decimal.NewFromFloat(0.3)).Add(decimal.NewFromInt(80_000))
	deduction = manyen.Clamp(deduction, tc.salaryDeductionFloor, tc.salaryDeductionMax)
	return manyen.FloorYenToMan(deduction)
}

// IncomeTax returns the progressive income tax for a taxable income in
// man-yen, truncated to whole man-yen. The first bracket whose upper limit
// covers the income applies.
func (tc *TaxCalculator) IncomeTax(taxableIncome decimal.Decimal) decimal.Decimal {
	taxableYen := manyen.Yen(taxableIncome)
	for _, b := range tc.brackets {
		if !b.Limit.IsZero() && taxableYen.GreaterThan(b.Limit) {
			continue
		}
		taxYen := taxableYen.Mul(b.Rate).Sub(b.Deduction).Floor()
		if taxYen.IsNegative() {
			return decimal.Zero
		}
		return manyen.FloorYenToMan(taxYen)
	}
	return decimal.Zero
}

// SocialInsuranceRate returns the flat premium rate for an annual income in
// man-yen: 15% under 850 man-yen, 7.7% at or above.
func (tc *TaxCalculator) SocialInsuranceRate(annualIncome decimal.Decimal) decimal.Decimal {
	if annualIncome.LessThan(decimal.NewFromInt(850)) {
		return decimal.NewFromFloat(0.15)
	}
	return decimal.NewFromFloat(0.077)
}

// Deductions itemizes the withholdings applied when deriving net income.
// All figures are man-yen.
type Deductions struct {
	SalaryDeduction decimal.Decimal `json:"salary_deduction"`
	SocialInsurance decimal.Decimal `json:"social_insurance"`
	IncomeTax       decimal.Decimal `json:"income_tax"`
	ResidentTax     decimal.Decimal `json:"resident_tax"`
	Total           decimal.Decimal `json:"total"`
}

// NetIncomeResult is the net figure plus the audit breakdown. Gross retains
// the original figure so displays can show both sides of the conversion.
type NetIncomeResult struct {
	Gross      decimal.Decimal `json:"gross"`
	NetIncome  decimal.Decimal `json:"net_income"`
	Deductions Deductions      `json:"deductions"`
}

// NetIncome converts a gross annual income (man-yen) to net for the given
// occupation. Self-employed and homemaker income passes through with zero
// deductions. Social insurance applies only to occupations enrolled in
// employee insurance; the salary deduction itself reduces taxable income but
// is not withheld.
func (tc *TaxCalculator) NetIncome(grossAnnualIncome decimal.Decimal, occupation domain.Occupation) NetIncomeResult {
	if !occupation.GrossSalaried() {
		return NetIncomeResult{Gross: grossAnnualIncome, NetIncome: grossAnnualIncome}
	}

	salaryDeduction := tc.SalaryDeduction(grossAnnualIncome)

	socialInsurance := decimal.Zero
	if occupation.HasSocialInsurance() {
		rate := tc.SocialInsuranceRate(grossAnnualIncome)
		socialInsurance = grossAnnualIncome.Mul(rate).Floor()
	}

	taxable := grossAnnualIncome.Sub(salaryDeduction).Sub(socialInsurance)
	if taxable.IsNegative() {
		taxable = decimal.Zero
	}

	incomeTax := tc.IncomeTax(taxable)
	residentTax := taxable.Mul(decimal.NewFromFloat(0.10)).Floor()

	total := socialInsurance.Add(incomeTax).Add(residentTax)
	return NetIncomeResult{
		Gross:     grossAnnualIncome,
		NetIncome: grossAnnualIncome.Sub(total),
		Deductions: Deductions{
			SalaryDeduction: salaryDeduction,
			SocialInsurance: socialInsurance,
			IncomeTax:       incomeTax,
			ResidentTax:     residentTax,
			Total:           total,
		},
	}
}
