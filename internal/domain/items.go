package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// YearAmounts is a sparse mapping from calendar year to a man-yen amount.
// A missing year contributes zero.
type YearAmounts map[int]decimal.Decimal

// Get returns the amount for a year, or zero when unset.
func (ya YearAmounts) Get(year int) decimal.Decimal {
	if ya == nil {
		return decimal.Zero
	}
	if v, ok := ya[year]; ok {
		return v
	}
	return decimal.Zero
}

// Set stores an amount for a year, allocating the map if needed.
func (ya *YearAmounts) Set(year int, amount decimal.Decimal) {
	if *ya == nil {
		*ya = make(YearAmounts)
	}
	(*ya)[year] = amount
}

// Clone returns an independent copy of the map.
func (ya YearAmounts) Clone() YearAmounts {
	if ya == nil {
		return nil
	}
	out := make(YearAmounts, len(ya))
	for y, v := range ya {
		out[y] = v
	}
	return out
}

// IncomeKind identifies the role an income item plays in the projection.
type IncomeKind string

const (
	IncomeSalary        IncomeKind = "salary"
	IncomeBusiness      IncomeKind = "business"
	IncomeSide          IncomeKind = "side"
	IncomeBonus         IncomeKind = "bonus"
	IncomePension       IncomeKind = "pension"
	IncomeSpouse        IncomeKind = "spouse"
	IncomeSpousePension IncomeKind = "spouse_pension"
	IncomeSales         IncomeKind = "sales" // corporate revenue
	IncomeOther         IncomeKind = "other"
)

// Valid reports whether the income kind is known.
func (k IncomeKind) Valid() bool {
	switch k {
	case IncomeSalary, IncomeBusiness, IncomeSide, IncomeBonus, IncomePension,
		IncomeSpouse, IncomeSpousePension, IncomeSales, IncomeOther:
		return true
	}
	return false
}

// IncomeItem is one income line. Amounts holds the entered (gross) figures;
// NetAmounts caches the computed net figure for salary items so downstream
// aggregation never re-derives or mixes in gross values. InvestmentRatio is
// a percentage; MaxInvestmentAmount caps the yearly contribution in man-yen,
// zero meaning uncapped.
type IncomeItem struct {
	ID                  string          `json:"id"`
	Name                string          `json:"name"`
	Kind                IncomeKind      `json:"kind"`
	Amounts             YearAmounts     `json:"amounts"`
	NetAmounts          YearAmounts     `json:"net_amounts,omitempty"`
	InvestmentRatio     decimal.Decimal `json:"investment_ratio"`
	MaxInvestmentAmount decimal.Decimal `json:"max_investment_amount"`
	AutoCalculated      bool            `json:"auto_calculated,omitempty"`
}

// ExpenseKind identifies the expense bucket an item aggregates into.
type ExpenseKind string

const (
	ExpenseLiving    ExpenseKind = "living"
	ExpenseHousing   ExpenseKind = "housing"
	ExpenseEducation ExpenseKind = "education"
	ExpenseBusiness  ExpenseKind = "business" // corporate operating expense
	ExpenseOther     ExpenseKind = "other"
)

// Valid reports whether the expense kind is known.
func (k ExpenseKind) Valid() bool {
	switch k {
	case ExpenseLiving, ExpenseHousing, ExpenseEducation, ExpenseBusiness, ExpenseOther:
		return true
	}
	return false
}

// ExpenseItem is one expense line.
type ExpenseItem struct {
	ID      string      `json:"id"`
	Name    string      `json:"name"`
	Kind    ExpenseKind `json:"kind"`
	Amounts YearAmounts `json:"amounts"`
}

// AssetKind categorizes an asset line.
type AssetKind string

const (
	AssetCash       AssetKind = "cash"
	AssetInvestment AssetKind = "investment"
	AssetProperty   AssetKind = "property"
	AssetOther      AssetKind = "other"
)

// Valid reports whether the asset kind is known.
func (k AssetKind) Valid() bool {
	switch k {
	case AssetCash, AssetInvestment, AssetProperty, AssetOther:
		return true
	}
	return false
}

// AssetItem is one asset line. IsInvestment marks the balance as
// yield-bearing for the compounding investment pool.
type AssetItem struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	Kind         AssetKind   `json:"kind"`
	Amounts      YearAmounts `json:"amounts"`
	IsInvestment bool        `json:"is_investment,omitempty"`
}

// LiabilityKind categorizes a liability line.
type LiabilityKind string

const (
	LiabilityLoan   LiabilityKind = "loan"
	LiabilityCredit LiabilityKind = "credit"
	LiabilityOther  LiabilityKind = "other"
)

// Valid reports whether the liability kind is known.
func (k LiabilityKind) Valid() bool {
	return k == LiabilityLoan || k == LiabilityCredit || k == LiabilityOther
}

// LiabilityItem is one liability line.
type LiabilityItem struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Kind         LiabilityKind   `json:"kind"`
	Amounts      YearAmounts     `json:"amounts"`
	InterestRate decimal.Decimal `json:"interest_rate,omitempty"` // percent
	TermYears    int             `json:"term_years,omitempty"`
}

// IncomeSection splits income items into personal and corporate books.
type IncomeSection struct {
	Personal  []IncomeItem `json:"personal"`
	Corporate []IncomeItem `json:"corporate"`
}

// ByKind returns the first personal item of the given kind, or nil.
func (s *IncomeSection) ByKind(kind IncomeKind) *IncomeItem {
	for i := range s.Personal {
		if s.Personal[i].Kind == kind {
			return &s.Personal[i]
		}
	}
	return nil
}

// CorporateByKind returns the first corporate item of the given kind, or nil.
func (s *IncomeSection) CorporateByKind(kind IncomeKind) *IncomeItem {
	for i := range s.Corporate {
		if s.Corporate[i].Kind == kind {
			return &s.Corporate[i]
		}
	}
	return nil
}

// ExpenseSection splits expense items into personal and corporate books.
type ExpenseSection struct {
	Personal  []ExpenseItem `json:"personal"`
	Corporate []ExpenseItem `json:"corporate"`
}

// ByKind returns the first personal item of the given kind, or nil.
func (s *ExpenseSection) ByKind(kind ExpenseKind) *ExpenseItem {
	for i := range s.Personal {
		if s.Personal[i].Kind == kind {
			return &s.Personal[i]
		}
	}
	return nil
}

// CorporateByKind returns the first corporate item of the given kind, or nil.
func (s *ExpenseSection) CorporateByKind(kind ExpenseKind) *ExpenseItem {
	for i := range s.Corporate {
		if s.Corporate[i].Kind == kind {
			return &s.Corporate[i]
		}
	}
	return nil
}

// AssetSection splits asset items into personal and corporate books.
type AssetSection struct {
	Personal  []AssetItem `json:"personal"`
	Corporate []AssetItem `json:"corporate"`
}

// LiabilitySection splits liability items into personal and corporate books.
type LiabilitySection struct {
	Personal  []LiabilityItem `json:"personal"`
	Corporate []LiabilityItem `json:"corporate"`
}

// Parameters holds the global simulation assumptions. Rates are percent,
// amounts man-yen.
type Parameters struct {
	InflationRate             decimal.Decimal `json:"inflation_rate"`
	EducationCostIncreaseRate decimal.Decimal `json:"education_cost_increase_rate"`
	InvestmentReturn          decimal.Decimal `json:"investment_return"`
	InvestmentRatio           decimal.Decimal `json:"investment_ratio"`
	MaxInvestmentAmount       decimal.Decimal `json:"max_investment_amount"`
}

// EventType marks a life event as income- or expense-flavored.
type EventType string

const (
	EventIncome  EventType = "income"
	EventExpense EventType = "expense"
)

// EventSource assigns a life event to the personal or corporate timeline.
type EventSource string

const (
	SourcePersonal  EventSource = "personal"
	SourceCorporate EventSource = "corporate"
)

// LifeEvent is a narrative timeline entry. It does not feed the numeric
// engine; the CSV export renders it alongside the ledger.
type LifeEvent struct {
	Year        int             `json:"year"`
	Description string          `json:"description"`
	Type        EventType       `json:"type"`
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
	Source      EventSource     `json:"source"`
}

// Validate checks the event's closed enumerations.
func (e *LifeEvent) Validate() error {
	if e.Type != EventIncome && e.Type != EventExpense {
		return fmt.Errorf("life event type must be income or expense, got %q", e.Type)
	}
	if e.Source != SourcePersonal && e.Source != SourceCorporate {
		return fmt.Errorf("life event source must be personal or corporate, got %q", e.Source)
	}
	return nil
}
