// Package store holds the mutable simulation state: the input records, the
// life event timeline and the derived ledger. Every mutation rebuilds the
// ledger through the engine, so readers always observe input and ledger from
// the same revision.
package store

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lpsim/lifeplan-simulator/internal/calculation"
	"github.com/lpsim/lifeplan-simulator/internal/domain"
)

// Store owns the simulation state. All methods are safe for concurrent use.
type Store struct {
	mu     sync.RWMutex
	engine *calculation.Engine
	input  calculation.Input
	events []domain.LifeEvent
	ledger *domain.Ledger
}

// New creates an empty store backed by the given engine.
func New(engine *calculation.Engine) *Store {
	return &Store{engine: engine}
}

// Load replaces the entire state with a parsed configuration and rebuilds the
// ledger.
func (s *Store) Load(input calculation.Input, events []domain.LifeEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.input = input
	s.events = events
	s.recompute()
}

// recompute must be called with the write lock held.
func (s *Store) recompute() {
	if s.input.Profile == nil {
		s.ledger = nil
		return
	}
	s.ledger = s.engine.Recompute(&s.input, s.ledger)
}

// Ledger returns the current derived ledger, or nil before any input is set.
func (s *Store) Ledger() *domain.Ledger {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ledger
}

// Input returns a shallow copy of the current input records.
func (s *Store) Input() calculation.Input {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.input
}

// LifeEvents returns a copy of the event timeline.
func (s *Store) LifeEvents() []domain.LifeEvent {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.LifeEvent, len(s.events))
	copy(out, s.events)
	return out
}

// SetProfile replaces the profile and rebuilds the ledger.
func (s *Store) SetProfile(profile *domain.Profile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.input.Profile = profile
	s.recompute()
}

// SetParameters replaces the global assumptions and rebuilds the ledger.
func (s *Store) SetParameters(params domain.Parameters) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.input.Parameters = params
	s.recompute()
}

// SetItemAmount writes one year's figure on a line item in any of the four
// books, personal or corporate, and rebuilds the ledger. Unknown IDs are
// reported, not ignored.
func (s *Store) SetItemAmount(itemID string, year int, amount decimal.Decimal) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, items := range [][]domain.IncomeItem{s.input.Incomes.Personal, s.input.Incomes.Corporate} {
		for i := range items {
			if items[i].ID == itemID {
				items[i].Amounts.Set(year, amount)
				s.recompute()
				return nil
			}
		}
	}
	for _, items := range [][]domain.ExpenseItem{s.input.Expenses.Personal, s.input.Expenses.Corporate} {
		for i := range items {
			if items[i].ID == itemID {
				items[i].Amounts.Set(year, amount)
				s.recompute()
				return nil
			}
		}
	}
	for _, items := range [][]domain.AssetItem{s.input.Assets.Personal, s.input.Assets.Corporate} {
		for i := range items {
			if items[i].ID == itemID {
				items[i].Amounts.Set(year, amount)
				s.recompute()
				return nil
			}
		}
	}
	for _, items := range [][]domain.LiabilityItem{s.input.Liabilities.Personal, s.input.Liabilities.Corporate} {
		for i := range items {
			if items[i].ID == itemID {
				items[i].Amounts.Set(year, amount)
				s.recompute()
				return nil
			}
		}
	}
	return fmt.Errorf("no line item with id %q", itemID)
}

// AddLifeEvent validates and appends a timeline entry. Events do not feed
// the numeric ledger, so no recompute happens.
func (s *Store) AddLifeEvent(event domain.LifeEvent) error {
	if err := event.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
	return nil
}

// RemoveLifeEvent deletes the event at the given index.
func (s *Store) RemoveLifeEvent(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.events) {
		return fmt.Errorf("life event index %d out of range", index)
	}
	s.events = append(s.events[:index], s.events[index+1:]...)
	return nil
}

// InitializeDefaults seeds the standard item set for a fresh profile: the
// occupation-appropriate main income line, side income, auto-calculated
// pension lines, and expense lines pre-filled from the profile (living cost,
// housing cost, education cost). For owned housing the property and its loan
// appear on the balance sheet in the purchase year.
func (s *Store) InitializeDefaults(profile *domain.Profile, params domain.Parameters) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.input = calculation.Input{Profile: profile, Parameters: params}
	s.events = nil

	startYear := profile.StartYear
	endYear := startYear + profile.HorizonYears() - 1

	mainKind := domain.IncomeSalary
	mainName := "給与収入"
	if profile.Occupation == domain.OccupationSelfEmployed {
		mainKind = domain.IncomeBusiness
		mainName = "事業収入"
	}

	incomes := []domain.IncomeItem{
		{ID: uuid.NewString(), Name: mainName, Kind: mainKind},
		{ID: uuid.NewString(), Name: "副業収入", Kind: domain.IncomeSide},
		{ID: uuid.NewString(), Name: "年金収入", Kind: domain.IncomePension, AutoCalculated: true},
	}
	if profile.MaritalStatus != domain.MaritalSingle {
		incomes = append(incomes,
			domain.IncomeItem{ID: uuid.NewString(), Name: "配偶者収入", Kind: domain.IncomeSpouse},
			domain.IncomeItem{ID: uuid.NewString(), Name: "配偶者（年金）収入", Kind: domain.IncomeSpousePension, AutoCalculated: true},
		)
	}
	s.input.Incomes.Personal = incomes

	living := domain.ExpenseItem{ID: uuid.NewString(), Name: "生活費", Kind: domain.ExpenseLiving}
	housing := domain.ExpenseItem{ID: uuid.NewString(), Name: "住居費", Kind: domain.ExpenseHousing}
	education := domain.ExpenseItem{ID: uuid.NewString(), Name: "教育費", Kind: domain.ExpenseEducation}

	annualLiving := profile.MonthlyLivingExpense.Mul(decimal.NewFromInt(12))
	inflation := decimal.NewFromInt(1).Add(params.InflationRate.Div(decimal.NewFromInt(100)))
	for year := startYear; year <= endYear; year++ {
		yearsSinceStart := int64(year - startYear)
		living.Amounts.Set(year, annualLiving.Mul(inflation.Pow(decimal.NewFromInt(yearsSinceStart))).Round(1))
		housing.Amounts.Set(year, calculation.HousingExpense(&profile.Housing, year, startYear))
		education.Amounts.Set(year, calculation.EducationExpense(
			profile.Children, profile.PlannedChildren, year, startYear, params.EducationCostIncreaseRate))
	}
	s.input.Expenses.Personal = []domain.ExpenseItem{living, housing, education}

	s.input.Assets.Personal = []domain.AssetItem{
		{ID: uuid.NewString(), Name: "現金・預金", Kind: domain.AssetCash},
		{ID: uuid.NewString(), Name: "投資資産", Kind: domain.AssetInvestment, IsInvestment: true},
	}

	if profile.Housing.Type == domain.HousingOwn && profile.Housing.Own != nil {
		own := profile.Housing.Own
		property := domain.AssetItem{ID: uuid.NewString(), Name: "不動産", Kind: domain.AssetProperty}
		property.Amounts.Set(own.PurchaseYear, own.PurchasePrice)
		s.input.Assets.Personal = append(s.input.Assets.Personal, property)

		loan := domain.LiabilityItem{
			ID:           uuid.NewString(),
			Name:         "住宅ローン",
			Kind:         domain.LiabilityLoan,
			InterestRate: own.InterestRate,
			TermYears:    own.LoanTermYears,
		}
		loan.Amounts.Set(own.PurchaseYear, own.LoanAmount)
		s.input.Liabilities.Personal = []domain.LiabilityItem{loan}
	}

	s.recompute()
}
