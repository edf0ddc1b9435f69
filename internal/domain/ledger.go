package domain

import (
	"github.com/shopspring/decimal"
)

// YearCashFlow is one fully derived row of the projection ledger. All
// monetary fields are man-yen. A row is immutable once the following year's
// computation has consumed it as the prior year.
type YearCashFlow struct {
	Year int `json:"year"`
	Age  int `json:"age"`

	// Personal income components
	MainIncome          decimal.Decimal `json:"main_income"`
	SideIncome          decimal.Decimal `json:"side_income"`
	SpouseIncome        decimal.Decimal `json:"spouse_income"`
	PensionIncome       decimal.Decimal `json:"pension_income"`
	SpousePensionIncome decimal.Decimal `json:"spouse_pension_income"`
	InvestmentIncome    decimal.Decimal `json:"investment_income"`

	// Personal expense components
	LivingExpense    decimal.Decimal `json:"living_expense"`
	HousingExpense   decimal.Decimal `json:"housing_expense"`
	EducationExpense decimal.Decimal `json:"education_expense"`
	OtherExpense     decimal.Decimal `json:"other_expense"`

	// Investment flows and balances
	PersonalAssets        decimal.Decimal `json:"personal_assets"` // carried-in prior total
	InvestmentAmount      decimal.Decimal `json:"investment_amount"`
	TotalInvestmentAssets decimal.Decimal `json:"total_investment_assets"`

	PersonalBalance     decimal.Decimal `json:"personal_balance"`
	PersonalTotalAssets decimal.Decimal `json:"personal_total_assets"`

	// Corporate book
	CorporateIncome       decimal.Decimal `json:"corporate_income"`
	CorporateOtherIncome  decimal.Decimal `json:"corporate_other_income"`
	CorporateExpense      decimal.Decimal `json:"corporate_expense"`
	CorporateOtherExpense decimal.Decimal `json:"corporate_other_expense"`
	CorporateBalance      decimal.Decimal `json:"corporate_balance"`
	CorporateTotalAssets  decimal.Decimal `json:"corporate_total_assets"`
}

// TotalPersonalIncome sums every personal income component.
func (y *YearCashFlow) TotalPersonalIncome() decimal.Decimal {
	return y.MainIncome.Add(y.SideIncome).Add(y.SpouseIncome).
		Add(y.PensionIncome).Add(y.SpousePensionIncome).Add(y.InvestmentIncome)
}

// TotalPersonalExpense sums every personal expense component.
func (y *YearCashFlow) TotalPersonalExpense() decimal.Decimal {
	return y.LivingExpense.Add(y.HousingExpense).Add(y.EducationExpense).Add(y.OtherExpense)
}

// Ledger is the full projection result: one row per simulation year, plus the
// amounts the engine resolved for auto-calculated pension items. The resolved
// maps are the engine's explicit outputs; input records are never mutated.
type Ledger struct {
	StartYear int            `json:"start_year"`
	Years     []YearCashFlow `json:"years"`

	ResolvedPension       map[int]decimal.Decimal `json:"resolved_pension,omitempty"`
	ResolvedSpousePension map[int]decimal.Decimal `json:"resolved_spouse_pension,omitempty"`
	ResolvedNetSalary     map[int]decimal.Decimal `json:"resolved_net_salary,omitempty"`
}

// ForYear returns the row for a calendar year.
func (l *Ledger) ForYear(year int) (YearCashFlow, bool) {
	idx := year - l.StartYear
	if idx < 0 || idx >= len(l.Years) {
		return YearCashFlow{}, false
	}
	return l.Years[idx], true
}

// EndYear is the last simulated calendar year.
func (l *Ledger) EndYear() int {
	if len(l.Years) == 0 {
		return l.StartYear
	}
	return l.StartYear + len(l.Years) - 1
}

// FinalTotalAssets is the personal net worth at the end of the horizon.
func (l *Ledger) FinalTotalAssets() decimal.Decimal {
	if len(l.Years) == 0 {
		return decimal.Zero
	}
	return l.Years[len(l.Years)-1].PersonalTotalAssets
}
