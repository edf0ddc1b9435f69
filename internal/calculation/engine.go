package calculation

import (
	"github.com/lpsim/lifeplan-simulator/internal/domain"
)

// Input bundles everything the projection engine consumes. The engine never
// mutates it; derived figures land in the returned ledger.
type Input struct {
	Profile     *domain.Profile         `json:"profile"`
	Parameters  domain.Parameters       `json:"parameters"`
	Incomes     domain.IncomeSection    `json:"incomes"`
	Expenses    domain.ExpenseSection   `json:"expenses"`
	Assets      domain.AssetSection     `json:"assets"`
	Liabilities domain.LiabilitySection `json:"liabilities"`
}

// Engine orchestrates the calculators into the year-by-year roll-forward.
type Engine struct {
	TaxCalc *TaxCalculator
	Logger  Logger
}

// NewEngine creates an engine with the 2025 tax tables and a no-op logger.
func NewEngine() *Engine {
	return &Engine{
		TaxCalc: NewTaxCalculator(),
		Logger:  NopLogger{},
	}
}

// SetLogger sets the logger. A nil logger restores the no-op default.
func (e *Engine) SetLogger(l Logger) {
	if l == nil {
		e.Logger = NopLogger{}
		return
	}
	e.Logger = l
}

// Recompute rebuilds the ledger from scratch. Any panic while deriving is
// caught here and the previous ledger is returned unchanged, so a caller
// always holds a fully consistent ledger, never a half-built one.
func (e *Engine) Recompute(in *Input, previous *domain.Ledger) (ledger *domain.Ledger) {
	defer func() {
		if r := recover(); r != nil {
			e.Logger.Errorf("ledger recompute failed, keeping previous ledger: %v", r)
			ledger = previous
		}
	}()
	return e.Project(in)
}
