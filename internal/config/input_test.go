package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/lpsim/lifeplan-simulator/internal/domain"
)

const validInput = `
profile:
  current_age: 30
  start_year: 2025
  death_age: 80
  gender: male
  monthly_living_expense: 20
  occupation: company_employee
  marital_status: single
  housing:
    type: rent
    rent:
      monthly_rent: 10
      annual_increase_rate: 0.5
      renewal_fee: 10
      renewal_interval: 2
  work_start_age: 22
  pension_start_age: 65
parameters:
  investment_return: 3
incomes:
  personal:
    - id: salary
      name: 給与収入
      kind: salary
      investment_ratio: 10
      max_investment_amount: 120
      amounts:
        2025: 500
        2026: 510
expenses:
  personal:
    - id: living
      name: 生活費
      kind: living
      amounts:
        2025: 240
life_events:
  - year: 2030
    description: 車の買い替え
    type: expense
    category: vehicle
    amount: 250
    source: personal
`

func TestLoadFromBytes(t *testing.T) {
	parser := NewInputParser()
	config, err := parser.LoadFromBytes([]byte(validInput))
	require.NoError(t, err)

	profile := config.Input.Profile
	assert.Equal(t, 30, profile.CurrentAge)
	assert.Equal(t, 2025, profile.StartYear)
	assert.Equal(t, domain.OccupationCompanyEmployee, profile.Occupation)
	assert.Equal(t, domain.HousingRent, profile.Housing.Type)
	require.NotNil(t, profile.Housing.Rent)
	assert.True(t, profile.Housing.Rent.MonthlyRent.Equal(decimal.NewFromInt(10)))

	require.Len(t, config.Input.Incomes.Personal, 1)
	salary := config.Input.Incomes.Personal[0]
	assert.Equal(t, domain.IncomeSalary, salary.Kind)
	assert.True(t, salary.Amounts.Get(2025).Equal(decimal.NewFromInt(500)))
	assert.True(t, salary.Amounts.Get(2026).Equal(decimal.NewFromInt(510)))
	assert.True(t, salary.Amounts.Get(2027).IsZero())
	assert.True(t, salary.InvestmentRatio.Equal(decimal.NewFromInt(10)))

	require.Len(t, config.LifeEvents, 1)
	assert.Equal(t, "車の買い替え", config.LifeEvents[0].Description)
	assert.Equal(t, domain.EventExpense, config.LifeEvents[0].Type)

	assert.True(t, config.Input.Parameters.InvestmentReturn.Equal(decimal.NewFromInt(3)))
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.yaml")
	require.NoError(t, os.WriteFile(path, []byte(validInput), 0o644))

	parser := NewInputParser()
	config, err := parser.LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, 80, config.Input.Profile.DeathAge)
}

func TestLoadFromFileMissing(t *testing.T) {
	parser := NewInputParser()
	_, err := parser.LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadInvalidYAML(t *testing.T) {
	parser := NewInputParser()
	_, err := parser.LoadFromBytes([]byte("profile: ["))
	assert.Error(t, err)
}

func TestValidationFailures(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(f *fileConfig)
		wantErr string
	}{
		{
			name:    "Death age before current age",
			mutate:  func(f *fileConfig) { f.Profile.DeathAge = 20 },
			wantErr: "death age",
		},
		{
			name:    "Unknown occupation",
			mutate:  func(f *fileConfig) { f.Profile.Occupation = "astronaut" },
			wantErr: "occupation",
		},
		{
			name:    "Unknown marital status",
			mutate:  func(f *fileConfig) { f.Profile.MaritalStatus = "divorced" },
			wantErr: "marital status",
		},
		{
			name:    "Rent housing without rent plan",
			mutate:  func(f *fileConfig) { f.Profile.Housing.Rent = nil },
			wantErr: "housing",
		},
		{
			name:    "Married without spouse section",
			mutate:  func(f *fileConfig) { f.Profile.MaritalStatus = "married"; f.Profile.Spouse = nil },
			wantErr: "spouse",
		},
		{
			name:    "Unknown income kind",
			mutate:  func(f *fileConfig) { f.Incomes.Personal[0].Kind = "lottery" },
			wantErr: "unknown kind",
		},
		{
			name:    "Investment ratio above 100",
			mutate:  func(f *fileConfig) { f.Incomes.Personal[0].InvestmentRatio = 150 },
			wantErr: "investment ratio",
		},
		{
			name:    "Unknown life event source",
			mutate:  func(f *fileConfig) { f.LifeEvents[0].Source = "bank" },
			wantErr: "life event",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var file fileConfig
			require.NoError(t, yaml.Unmarshal([]byte(validInput), &file))
			tt.mutate(&file)

			data, err := yaml.Marshal(&file)
			require.NoError(t, err)

			_, err = NewInputParser().LoadFromBytes(data)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestExampleConfigurationIsValid(t *testing.T) {
	data, err := yaml.Marshal(exampleConfiguration())
	require.NoError(t, err)

	config, err := NewInputParser().LoadFromBytes(data)
	require.NoError(t, err)
	assert.Equal(t, domain.MaritalMarried, config.Input.Profile.MaritalStatus)
	assert.NotEmpty(t, config.Input.Incomes.Personal)
}

func TestWriteExampleFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "example.yaml")
	require.NoError(t, WriteExampleFile(path))

	config, err := NewInputParser().LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, 30, config.Input.Profile.CurrentAge)
}
