package store

import (
	"bytes"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lpsim/lifeplan-simulator/internal/calculation"
	"github.com/lpsim/lifeplan-simulator/internal/domain"
)

func testProfile() *domain.Profile {
	return &domain.Profile{
		CurrentAge:           30,
		StartYear:            2025,
		DeathAge:             80,
		MonthlyLivingExpense: decimal.NewFromInt(20),
		Occupation:           domain.OccupationCompanyEmployee,
		MaritalStatus:        domain.MaritalSingle,
		Housing: domain.Housing{
			Type: domain.HousingRent,
			Rent: &domain.RentPlan{
				MonthlyRent:     decimal.NewFromInt(8),
				RenewalFee:      decimal.NewFromInt(8),
				RenewalInterval: 2,
			},
		},
	}
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s := New(calculation.NewEngine())
	s.InitializeDefaults(testProfile(), domain.Parameters{
		InvestmentReturn: decimal.NewFromInt(1),
	})
	return s
}

func TestInitializeDefaults(t *testing.T) {
	s := newTestStore(t)
	input := s.Input()

	// Single salaried person: salary, side income and auto pension lines.
	require.Len(t, input.Incomes.Personal, 3)
	assert.Equal(t, domain.IncomeSalary, input.Incomes.Personal[0].Kind)
	assert.Equal(t, "給与収入", input.Incomes.Personal[0].Name)
	assert.True(t, input.Incomes.Personal[2].AutoCalculated)

	require.Len(t, input.Expenses.Personal, 3)
	living := input.Expenses.Personal[0]
	assert.Equal(t, domain.ExpenseLiving, living.Kind)
	assert.True(t, living.Amounts.Get(2025).Equal(decimal.NewFromInt(240)))
	assert.True(t, living.Amounts.Get(2075).Equal(decimal.NewFromInt(240)))

	housing := input.Expenses.Personal[1]
	assert.True(t, housing.Amounts.Get(2025).Equal(decimal.NewFromInt(96)))
	// First renewal adds the fee on top of the annual rent
	assert.True(t, housing.Amounts.Get(2027).Equal(decimal.NewFromInt(104)))

	// Every item carries a distinct ID.
	seen := map[string]bool{}
	for _, item := range input.Incomes.Personal {
		assert.NotEmpty(t, item.ID)
		assert.False(t, seen[item.ID], "duplicate item id %s", item.ID)
		seen[item.ID] = true
	}

	require.NotNil(t, s.Ledger())
	assert.Len(t, s.Ledger().Years, 51)
}

func TestInitializeDefaultsMarried(t *testing.T) {
	profile := testProfile()
	profile.MaritalStatus = domain.MaritalMarried
	profile.Spouse = &domain.Spouse{CurrentAge: 29}

	s := New(calculation.NewEngine())
	s.InitializeDefaults(profile, domain.Parameters{})

	input := s.Input()
	require.Len(t, input.Incomes.Personal, 5)
	assert.Equal(t, domain.IncomeSpouse, input.Incomes.Personal[3].Kind)
	assert.Equal(t, domain.IncomeSpousePension, input.Incomes.Personal[4].Kind)
	assert.True(t, input.Incomes.Personal[4].AutoCalculated)
}

func TestInitializeDefaultsSelfEmployed(t *testing.T) {
	profile := testProfile()
	profile.Occupation = domain.OccupationSelfEmployed

	s := New(calculation.NewEngine())
	s.InitializeDefaults(profile, domain.Parameters{})

	main := s.Input().Incomes.Personal[0]
	assert.Equal(t, domain.IncomeBusiness, main.Kind)
	assert.Equal(t, "事業収入", main.Name)
}

func TestInitializeDefaultsOwnedHousing(t *testing.T) {
	profile := testProfile()
	profile.Housing = domain.Housing{
		Type: domain.HousingOwn,
		Own: &domain.OwnPlan{
			PurchaseYear:        2030,
			PurchasePrice:       decimal.NewFromInt(3000),
			LoanAmount:          decimal.NewFromInt(2500),
			InterestRate:        decimal.NewFromInt(1),
			LoanTermYears:       35,
			MaintenanceCostRate: decimal.NewFromFloat(0.5),
		},
	}

	s := New(calculation.NewEngine())
	s.InitializeDefaults(profile, domain.Parameters{})
	input := s.Input()

	require.Len(t, input.Assets.Personal, 3)
	property := input.Assets.Personal[2]
	assert.Equal(t, domain.AssetProperty, property.Kind)
	assert.True(t, property.Amounts.Get(2030).Equal(decimal.NewFromInt(3000)))
	assert.True(t, property.Amounts.Get(2025).IsZero())

	require.Len(t, input.Liabilities.Personal, 1)
	loan := input.Liabilities.Personal[0]
	assert.Equal(t, domain.LiabilityLoan, loan.Kind)
	assert.True(t, loan.Amounts.Get(2030).Equal(decimal.NewFromInt(2500)))

	// No housing cost before the purchase year, mortgage plus upkeep after.
	housing := input.Expenses.Personal[1]
	assert.True(t, housing.Amounts.Get(2029).IsZero())
	assert.True(t, housing.Amounts.Get(2030).IsPositive())
}

func TestInitializeDefaultsInflatesLivingCost(t *testing.T) {
	s := New(calculation.NewEngine())
	s.InitializeDefaults(testProfile(), domain.Parameters{
		InflationRate: decimal.NewFromInt(2),
	})

	living := s.Input().Expenses.Personal[0]
	assert.True(t, living.Amounts.Get(2025).Equal(decimal.NewFromInt(240)))
	// 240 * 1.02, rounded to one decimal
	assert.True(t, living.Amounts.Get(2026).Equal(decimal.NewFromFloat(244.8)))
}

func TestSetItemAmountTriggersRecompute(t *testing.T) {
	s := newTestStore(t)
	salaryID := s.Input().Incomes.Personal[0].ID

	before := s.Ledger().Years[0].MainIncome
	require.NoError(t, s.SetItemAmount(salaryID, 2025, decimal.NewFromInt(500)))
	after := s.Ledger().Years[0].MainIncome

	assert.True(t, before.IsZero())
	assert.True(t, after.IsPositive())
}

func TestSetItemAmountOnAsset(t *testing.T) {
	s := newTestStore(t)
	cashID := s.Input().Assets.Personal[0].ID

	require.NoError(t, s.SetItemAmount(cashID, 2025, decimal.NewFromInt(800)))
	assert.True(t, s.Ledger().Years[0].PersonalAssets.Equal(decimal.NewFromInt(800)))
}

func TestSetItemAmountUnknownID(t *testing.T) {
	s := newTestStore(t)
	err := s.SetItemAmount("nope", 2025, decimal.NewFromInt(1))
	assert.Error(t, err)
}

func TestSetParametersTriggersRecompute(t *testing.T) {
	s := newTestStore(t)
	salaryID := s.Input().Incomes.Personal[0].ID
	require.NoError(t, s.SetItemAmount(salaryID, 2025, decimal.NewFromInt(500)))

	before := s.Ledger().FinalTotalAssets()
	s.SetParameters(domain.Parameters{InvestmentReturn: decimal.NewFromInt(5)})
	after := s.Ledger().FinalTotalAssets()

	// Without any invested amounts the return change is neutral; the ledger
	// must still have been rebuilt against the new parameters.
	assert.True(t, before.Equal(after))
	assert.True(t, s.Input().Parameters.InvestmentReturn.Equal(decimal.NewFromInt(5)))
}

func TestLifeEvents(t *testing.T) {
	s := newTestStore(t)

	err := s.AddLifeEvent(domain.LifeEvent{
		Year:        2030,
		Description: "車の買い替え",
		Type:        domain.EventExpense,
		Source:      domain.SourcePersonal,
		Amount:      decimal.NewFromInt(250),
	})
	require.NoError(t, err)
	require.Len(t, s.LifeEvents(), 1)

	err = s.AddLifeEvent(domain.LifeEvent{Year: 2031, Type: "windfall", Source: domain.SourcePersonal})
	assert.Error(t, err)
	assert.Len(t, s.LifeEvents(), 1)

	require.NoError(t, s.RemoveLifeEvent(0))
	assert.Empty(t, s.LifeEvents())

	assert.Error(t, s.RemoveLifeEvent(0))
}

func TestSnapshotRoundTrip(t *testing.T) {
	s := newTestStore(t)
	salaryID := s.Input().Incomes.Personal[0].ID
	require.NoError(t, s.SetItemAmount(salaryID, 2025, decimal.NewFromInt(500)))
	require.NoError(t, s.AddLifeEvent(domain.LifeEvent{
		Year: 2030, Description: "転職", Type: domain.EventIncome, Source: domain.SourcePersonal,
	}))

	var buf bytes.Buffer
	require.NoError(t, s.Save(&buf))

	restored := New(calculation.NewEngine())
	require.NoError(t, restored.Restore(&buf))

	assert.True(t, restored.Input().Incomes.Personal[0].Amounts.Get(2025).Equal(decimal.NewFromInt(500)))
	require.Len(t, restored.LifeEvents(), 1)
	assert.Equal(t, "転職", restored.LifeEvents()[0].Description)

	// The ledger is rebuilt, not persisted.
	require.NotNil(t, restored.Ledger())
	assert.True(t, restored.Ledger().Years[0].MainIncome.Equal(s.Ledger().Years[0].MainIncome))
}

func TestRestoreRejectsMalformedSnapshot(t *testing.T) {
	s := newTestStore(t)
	before := s.Input()

	assert.Error(t, s.Restore(strings.NewReader("{not json")))
	assert.Error(t, s.Restore(strings.NewReader(`{"version": 99}`)))
	assert.Error(t, s.Restore(strings.NewReader(`{"version": 1, "input": {}}`)))

	// State is untouched after failed restores.
	assert.Equal(t, before.Profile, s.Input().Profile)
}
