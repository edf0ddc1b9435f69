package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestProfileHorizon(t *testing.T) {
	p := &Profile{CurrentAge: 30, StartYear: 2025, DeathAge: 80}

	assert.Equal(t, 51, p.HorizonYears())
	assert.Equal(t, 30, p.AgeInYear(2025))
	assert.Equal(t, 80, p.AgeInYear(2075))
	assert.Equal(t, 1995, p.BirthYear())
}

func TestProfileDefaults(t *testing.T) {
	p := &Profile{}
	assert.Equal(t, 22, p.EffectiveWorkStartAge())
	assert.Equal(t, 65, p.EffectivePensionStartAge())

	p.WorkStartAge = 18
	p.PensionStartAge = 70
	assert.Equal(t, 18, p.EffectiveWorkStartAge())
	assert.Equal(t, 70, p.EffectivePensionStartAge())
}

func TestSpouseAgeInYear(t *testing.T) {
	t.Run("Single", func(t *testing.T) {
		p := &Profile{CurrentAge: 30, StartYear: 2025, MaritalStatus: MaritalSingle}
		_, ok := p.SpouseAgeInYear(2030)
		assert.False(t, ok)
	})

	t.Run("Married", func(t *testing.T) {
		p := &Profile{
			CurrentAge:    30,
			StartYear:     2025,
			MaritalStatus: MaritalMarried,
			Spouse:        &Spouse{CurrentAge: 28},
		}
		age, ok := p.SpouseAgeInYear(2030)
		assert.True(t, ok)
		assert.Equal(t, 33, age)
	})

	t.Run("Planned marriage", func(t *testing.T) {
		p := &Profile{
			CurrentAge:    30,
			StartYear:     2025,
			MaritalStatus: MaritalPlanning,
			Spouse:        &Spouse{Age: 32, MarriageAge: 35},
		}
		// Marriage happens in 2030.
		_, ok := p.SpouseAgeInYear(2029)
		assert.False(t, ok)

		age, ok := p.SpouseAgeInYear(2030)
		assert.True(t, ok)
		assert.Equal(t, 32, age)

		age, ok = p.SpouseAgeInYear(2040)
		assert.True(t, ok)
		assert.Equal(t, 42, age)
	})
}

func TestHousingValidate(t *testing.T) {
	tests := []struct {
		name    string
		housing Housing
		wantErr bool
	}{
		{
			name: "Valid rent",
			housing: Housing{
				Type: HousingRent,
				Rent: &RentPlan{MonthlyRent: decimal.NewFromInt(10)},
			},
		},
		{
			name: "Valid ownership",
			housing: Housing{
				Type: HousingOwn,
				Own:  &OwnPlan{PurchaseYear: 2030, LoanTermYears: 35},
			},
		},
		{
			name:    "Rent without plan",
			housing: Housing{Type: HousingRent},
			wantErr: true,
		},
		{
			name: "Ownership with zero loan term",
			housing: Housing{
				Type: HousingOwn,
				Own:  &OwnPlan{PurchaseYear: 2030},
			},
			wantErr: true,
		},
		{
			name:    "Unknown type",
			housing: Housing{Type: "houseboat"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.housing.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestOccupationTraits(t *testing.T) {
	assert.True(t, OccupationCompanyEmployee.HasWelfarePension())
	assert.True(t, OccupationPartTimeWithPension.HasWelfarePension())
	assert.False(t, OccupationPartTimeWithoutPension.HasWelfarePension())
	assert.False(t, OccupationSelfEmployed.HasWelfarePension())

	assert.True(t, OccupationPartTimeWithoutPension.GrossSalaried())
	assert.False(t, OccupationSelfEmployed.GrossSalaried())
	assert.False(t, OccupationHomemaker.GrossSalaried())

	assert.False(t, Occupation("astronaut").Valid())
}

func TestYearAmounts(t *testing.T) {
	var ya YearAmounts

	// Nil map reads as zero and allocates on write.
	assert.True(t, ya.Get(2025).IsZero())
	ya.Set(2025, decimal.NewFromInt(100))
	assert.True(t, ya.Get(2025).Equal(decimal.NewFromInt(100)))
	assert.True(t, ya.Get(2026).IsZero())

	clone := ya.Clone()
	clone.Set(2025, decimal.NewFromInt(999))
	assert.True(t, ya.Get(2025).Equal(decimal.NewFromInt(100)))
}

func TestOwnPlanLoanEndYear(t *testing.T) {
	own := &OwnPlan{PurchaseYear: 2030, LoanTermYears: 35}
	assert.Equal(t, 2065, own.LoanEndYear())
}
