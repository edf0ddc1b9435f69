package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/lpsim/lifeplan-simulator/internal/domain"
	"github.com/lpsim/lifeplan-simulator/pkg/manyen"
)

// Project derives the full per-year ledger from the input records. The walk
// is strictly sequential: each year consumes the previous year's ending
// balances (running totals and the compounding investment pool), so the
// ledger is always rebuilt from the start year. Inputs are never mutated;
// figures resolved for auto-calculated items are reported through the
// ledger's resolved maps.
func (e *Engine) Project(in *Input) *domain.Ledger {
	profile := in.Profile
	startYear := profile.StartYear
	horizon := profile.HorizonYears()

	ledger := &domain.Ledger{
		StartYear:             startYear,
		Years:                 make([]domain.YearCashFlow, 0, horizon),
		ResolvedPension:       make(map[int]decimal.Decimal),
		ResolvedSpousePension: make(map[int]decimal.Decimal),
		ResolvedNetSalary:     make(map[int]decimal.Decimal),
	}

	initialPersonalAssets := sumAssetAmounts(in.Assets.Personal, startYear)
	initialPersonalLiabilities := sumLiabilityAmounts(in.Liabilities.Personal, startYear)
	initialCorporateAssets := sumAssetAmounts(in.Assets.Corporate, startYear)
	initialCorporateLiabilities := sumLiabilityAmounts(in.Liabilities.Corporate, startYear)

	prevPersonalTotal := initialPersonalAssets.Sub(initialPersonalLiabilities)
	prevCorporateTotal := initialCorporateAssets.Sub(initialCorporateLiabilities)
	prevInvestmentAssets := sumInvestmentAssets(in.Assets.Personal, startYear)

	returnRate := in.Parameters.InvestmentReturn.Div(hundred)
	grossSalaried := profile.Occupation.GrossSalaried()

	for i := 0; i < horizon; i++ {
		year := startYear + i
		age := profile.AgeInYear(year)

		mainIncome := decimal.Zero
		if salary := in.Incomes.ByKind(domain.IncomeSalary); salary != nil {
			if grossSalaried {
				mainIncome = e.resolveNetSalary(salary, year, profile.Occupation)
				ledger.ResolvedNetSalary[year] = mainIncome
			} else {
				mainIncome = salary.Amounts.Get(year)
			}
		}

		sideIncome := personalAmount(&in.Incomes, domain.IncomeSide, year)
		spouseIncome := personalAmount(&in.Incomes, domain.IncomeSpouse, year)

		pensionIncome := decimal.Zero
		if age >= profile.EffectivePensionStartAge() {
			if item := in.Incomes.ByKind(domain.IncomePension); item != nil {
				if item.AutoCalculated {
					pensionIncome = PensionForYear(profile, &in.Incomes, year)
					ledger.ResolvedPension[year] = pensionIncome
				} else {
					pensionIncome = item.Amounts.Get(year)
				}
			}
		}

		spousePensionIncome := decimal.Zero
		if profile.MaritalStatus != domain.MaritalSingle {
			if item := in.Incomes.ByKind(domain.IncomeSpousePension); item != nil {
				if item.AutoCalculated {
					spousePensionIncome = SpousePensionForYear(profile, &in.Incomes, year)
					ledger.ResolvedSpousePension[year] = spousePensionIncome
				} else {
					spousePensionIncome = item.Amounts.Get(year)
				}
			}
		}

		corporateIncome := corporateAmount(&in.Incomes, domain.IncomeSales, year)
		corporateOtherIncome := corporateAmount(&in.Incomes, domain.IncomeOther, year)

		livingExpense := personalExpenseAmount(&in.Expenses, domain.ExpenseLiving, year)
		housingExpense := personalExpenseAmount(&in.Expenses, domain.ExpenseHousing, year)
		educationExpense := personalExpenseAmount(&in.Expenses, domain.ExpenseEducation, year)
		otherExpense := personalExpenseAmount(&in.Expenses, domain.ExpenseOther, year)

		corporateExpense := corporateExpenseAmount(&in.Expenses, domain.ExpenseBusiness, year)
		corporateOtherExpense := corporateExpenseAmount(&in.Expenses, domain.ExpenseOther, year)

		investmentAmount := e.investmentContributions(in, ledger, year, grossSalaried)
		investmentIncome := manyen.Round1(prevInvestmentAssets.Mul(returnRate))

		totalIncome := mainIncome.Add(sideIncome).Add(spouseIncome).
			Add(pensionIncome).Add(spousePensionIncome).Add(investmentIncome)
		totalExpense := livingExpense.Add(housingExpense).Add(educationExpense).Add(otherExpense)
		personalBalance := totalIncome.Sub(totalExpense)

		corporateBalance := corporateIncome.Add(corporateOtherIncome).
			Sub(corporateExpense.Add(corporateOtherExpense))

		currentInvestmentAssets := prevInvestmentAssets.Add(investmentAmount).Add(investmentIncome)

		row := domain.YearCashFlow{
			Year:                  year,
			Age:                   age,
			MainIncome:            mainIncome,
			SideIncome:            sideIncome,
			SpouseIncome:          spouseIncome,
			PensionIncome:         pensionIncome,
			SpousePensionIncome:   spousePensionIncome,
			InvestmentIncome:      investmentIncome,
			LivingExpense:         livingExpense,
			HousingExpense:        housingExpense,
			EducationExpense:      educationExpense,
			OtherExpense:          otherExpense,
			PersonalAssets:        prevPersonalTotal,
			InvestmentAmount:      investmentAmount,
			TotalInvestmentAssets: currentInvestmentAssets,
			PersonalBalance:       personalBalance,
			PersonalTotalAssets:   prevPersonalTotal.Add(personalBalance),
			CorporateIncome:       corporateIncome,
			CorporateOtherIncome:  corporateOtherIncome,
			CorporateExpense:      corporateExpense,
			CorporateOtherExpense: corporateOtherExpense,
			CorporateBalance:      corporateBalance,
			CorporateTotalAssets:  prevCorporateTotal.Add(corporateBalance),
		}
		ledger.Years = append(ledger.Years, row)

		prevPersonalTotal = row.PersonalTotalAssets
		prevCorporateTotal = row.CorporateTotalAssets
		prevInvestmentAssets = currentInvestmentAssets
	}

	return ledger
}

// resolveNetSalary returns the net figure for a salary item in a year,
// preferring the cached net amount and deriving from gross otherwise.
func (e *Engine) resolveNetSalary(item *domain.IncomeItem, year int, occupation domain.Occupation) decimal.Decimal {
	if cached, ok := item.NetAmounts[year]; ok && !cached.IsZero() {
		return cached
	}
	gross := item.Amounts.Get(year)
	if !gross.IsPositive() {
		return decimal.Zero
	}
	return e.TaxCalc.NetIncome(gross, occupation).NetIncome
}

// investmentContributions sums the per-item investment for a year: every
// personal income item with a positive resolved amount and a positive
// investment ratio contributes min(amount*ratio%, cap). Salary items
// contribute from net; auto-calculated pension items from the amount the
// engine resolved for this year. Items without their own ratio or cap fall
// back to the global parameters; a zero cap means uncapped.
func (e *Engine) investmentContributions(in *Input, ledger *domain.Ledger, year int, grossSalaried bool) decimal.Decimal {
	total := decimal.Zero
	for i := range in.Incomes.Personal {
		item := &in.Incomes.Personal[i]

		var amount decimal.Decimal
		switch {
		case item.Kind == domain.IncomeSalary && grossSalaried:
			amount = e.resolveNetSalary(item, year, in.Profile.Occupation)
		case item.Kind == domain.IncomePension && item.AutoCalculated:
			amount = ledger.ResolvedPension[year]
		case item.Kind == domain.IncomeSpousePension && item.AutoCalculated:
			amount = ledger.ResolvedSpousePension[year]
		default:
			amount = item.Amounts.Get(year)
		}

		ratio := item.InvestmentRatio
		if ratio.IsZero() {
			ratio = in.Parameters.InvestmentRatio
		}
		if !amount.IsPositive() || !ratio.IsPositive() {
			continue
		}

		maxAmount := item.MaxInvestmentAmount
		if !maxAmount.IsPositive() {
			maxAmount = in.Parameters.MaxInvestmentAmount
		}
		contribution := amount.Mul(ratio.Div(hundred))
		if maxAmount.IsPositive() {
			contribution = manyen.Min(contribution, maxAmount)
		}
		total = total.Add(contribution)
	}
	return total
}

func personalAmount(s *domain.IncomeSection, kind domain.IncomeKind, year int) decimal.Decimal {
	if item := s.ByKind(kind); item != nil {
		return item.Amounts.Get(year)
	}
	return decimal.Zero
}

func corporateAmount(s *domain.IncomeSection, kind domain.IncomeKind, year int) decimal.Decimal {
	if item := s.CorporateByKind(kind); item != nil {
		return item.Amounts.Get(year)
	}
	return decimal.Zero
}

func personalExpenseAmount(s *domain.ExpenseSection, kind domain.ExpenseKind, year int) decimal.Decimal {
	if item := s.ByKind(kind); item != nil {
		return item.Amounts.Get(year)
	}
	return decimal.Zero
}

func corporateExpenseAmount(s *domain.ExpenseSection, kind domain.ExpenseKind, year int) decimal.Decimal {
	if item := s.CorporateByKind(kind); item != nil {
		return item.Amounts.Get(year)
	}
	return decimal.Zero
}

func sumAssetAmounts(items []domain.AssetItem, year int) decimal.Decimal {
	total := decimal.Zero
	for i := range items {
		total = total.Add(items[i].Amounts.Get(year))
	}
	return total
}

func sumLiabilityAmounts(items []domain.LiabilityItem, year int) decimal.Decimal {
	total := decimal.Zero
	for i := range items {
		total = total.Add(items[i].Amounts.Get(year))
	}
	return total
}

func sumInvestmentAssets(items []domain.AssetItem, year int) decimal.Decimal {
	total := decimal.Zero
	for i := range items {
		if items[i].IsInvestment {
			total = total.Add(items[i].Amounts.Get(year))
		}
	}
	return total
}
