package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// exampleConfiguration builds a representative input document: a salaried
// 30-year-old renter with one child and auto-calculated pension items.
func exampleConfiguration() *fileConfig {
	salary := make(map[int]float64)
	living := make(map[int]float64)
	for year := 2025; year <= 2075; year++ {
		if year-2025+30 < 65 {
			salary[year] = 500
		}
		living[year] = 240
	}

	return &fileConfig{
		Profile: fileProfile{
			CurrentAge:           30,
			StartYear:            2025,
			DeathAge:             80,
			Gender:               "male",
			MonthlyLivingExpense: 20,
			Occupation:           "company_employee",
			MaritalStatus:        "married",
			Housing: fileHousing{
				Type: "rent",
				Rent: &fileRentPlan{
					MonthlyRent:        10,
					AnnualIncreaseRate: 0.5,
					RenewalFee:         10,
					RenewalInterval:    2,
				},
			},
			Spouse: &fileSpouse{
				CurrentAge: 29,
				Occupation: "homemaker",
			},
			Children: []fileChild{
				{
					CurrentAge: 2,
					EducationPlan: fileEducationPlan{
						Nursery:    "公立",
						Preschool:  "公立",
						Elementary: "公立",
						JuniorHigh: "公立",
						HighSchool: "公立",
						University: "私立大学（文系）",
					},
				},
			},
			WorkStartAge:    22,
			PensionStartAge: 65,
		},
		Parameters: fileParameters{
			EducationCostIncreaseRate: 1,
			InvestmentReturn:          3,
		},
		Incomes: fileItemBooks{
			Personal: []fileItem{
				{
					ID:                  "salary",
					Name:                "給与収入",
					Kind:                "salary",
					Amounts:             salary,
					InvestmentRatio:     10,
					MaxInvestmentAmount: 120,
				},
				{
					ID:             "pension",
					Name:           "年金収入",
					Kind:           "pension",
					AutoCalculated: true,
				},
				{
					ID:             "spouse-pension",
					Name:           "配偶者（年金）収入",
					Kind:           "spouse_pension",
					AutoCalculated: true,
				},
			},
		},
		Expenses: fileItemBooks{
			Personal: []fileItem{
				{
					ID:      "living",
					Name:    "生活費",
					Kind:    "living",
					Amounts: living,
				},
			},
		},
		Assets: fileItemBooks{
			Personal: []fileItem{
				{
					ID:      "cash",
					Name:    "現金・預金",
					Kind:    "cash",
					Amounts: map[int]float64{2025: 300},
				},
				{
					ID:           "fund",
					Name:         "投資資産",
					Kind:         "investment",
					Amounts:      map[int]float64{2025: 100},
					IsInvestment: true,
				},
			},
		},
		LifeEvents: []fileLifeEvent{
			{
				Year:        2030,
				Description: "車の買い替え",
				Type:        "expense",
				Category:    "vehicle",
				Amount:      250,
				Source:      "personal",
			},
		},
	}
}

// WriteExampleFile writes the example configuration as YAML.
func WriteExampleFile(path string) error {
	data, err := yaml.Marshal(exampleConfiguration())
	if err != nil {
		return fmt.Errorf("failed to marshal example configuration: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write example configuration: %w", err)
	}
	return nil
}
