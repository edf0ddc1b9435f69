// Package config loads simulation input from YAML files. The file schema
// mirrors the domain records but carries plain floats; amounts are converted
// to decimals during parsing so the calculators never see binary floating
// point.
package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/lpsim/lifeplan-simulator/internal/calculation"
	"github.com/lpsim/lifeplan-simulator/internal/domain"
)

// Configuration is the fully parsed and validated simulation input.
type Configuration struct {
	Input      calculation.Input
	LifeEvents []domain.LifeEvent
}

// InputParser handles loading and validating input files.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile reads and parses a YAML input file.
func (p *InputParser) LoadFromFile(path string) (*Configuration, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input file: %w", err)
	}
	return p.LoadFromBytes(data)
}

// LoadFromBytes parses YAML input data and validates it.
func (p *InputParser) LoadFromBytes(data []byte) (*Configuration, error) {
	var file fileConfig
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	config := file.toConfiguration()
	if err := p.validate(config); err != nil {
		return nil, fmt.Errorf("input validation failed: %w", err)
	}
	return config, nil
}

func (p *InputParser) validate(c *Configuration) error {
	profile := c.Input.Profile
	if profile == nil {
		return fmt.Errorf("profile section is required")
	}
	if profile.StartYear < 1900 {
		return fmt.Errorf("start year %d is not plausible", profile.StartYear)
	}
	if profile.CurrentAge <= 0 {
		return fmt.Errorf("current age must be positive, got %d", profile.CurrentAge)
	}
	if profile.DeathAge < profile.CurrentAge {
		return fmt.Errorf("death age %d precedes current age %d", profile.DeathAge, profile.CurrentAge)
	}
	if !profile.Occupation.Valid() {
		return fmt.Errorf("unknown occupation %q", profile.Occupation)
	}
	if !profile.MaritalStatus.Valid() {
		return fmt.Errorf("unknown marital status %q", profile.MaritalStatus)
	}
	if err := profile.Housing.Validate(); err != nil {
		return fmt.Errorf("housing: %w", err)
	}
	if profile.MaritalStatus != domain.MaritalSingle && profile.Spouse == nil {
		return fmt.Errorf("marital status %q requires a spouse section", profile.MaritalStatus)
	}
	for i, child := range profile.Children {
		if child.CurrentAge < 0 {
			return fmt.Errorf("child %d: age must not be negative", i+1)
		}
	}
	for i, child := range profile.PlannedChildren {
		if child.YearsFromNow < 0 {
			return fmt.Errorf("planned child %d: years from now must not be negative", i+1)
		}
	}

	for i, item := range c.Input.Incomes.Personal {
		if err := validateIncomeItem(&item); err != nil {
			return fmt.Errorf("personal income %d (%s): %w", i+1, item.Name, err)
		}
	}
	for i, item := range c.Input.Incomes.Corporate {
		if err := validateIncomeItem(&item); err != nil {
			return fmt.Errorf("corporate income %d (%s): %w", i+1, item.Name, err)
		}
	}
	for i, item := range c.Input.Expenses.Personal {
		if !item.Kind.Valid() {
			return fmt.Errorf("personal expense %d (%s): unknown kind %q", i+1, item.Name, item.Kind)
		}
	}
	for i, item := range c.Input.Expenses.Corporate {
		if !item.Kind.Valid() {
			return fmt.Errorf("corporate expense %d (%s): unknown kind %q", i+1, item.Name, item.Kind)
		}
	}
	for i, item := range c.Input.Assets.Personal {
		if !item.Kind.Valid() {
			return fmt.Errorf("personal asset %d (%s): unknown kind %q", i+1, item.Name, item.Kind)
		}
	}
	for i, item := range c.Input.Liabilities.Personal {
		if !item.Kind.Valid() {
			return fmt.Errorf("personal liability %d (%s): unknown kind %q", i+1, item.Name, item.Kind)
		}
	}
	for i, event := range c.LifeEvents {
		if err := event.Validate(); err != nil {
			return fmt.Errorf("life event %d: %w", i+1, err)
		}
	}
	return nil
}

func validateIncomeItem(item *domain.IncomeItem) error {
	if !item.Kind.Valid() {
		return fmt.Errorf("unknown kind %q", item.Kind)
	}
	if item.InvestmentRatio.IsNegative() || item.InvestmentRatio.GreaterThan(decimal.NewFromInt(100)) {
		return fmt.Errorf("investment ratio must be between 0 and 100, got %s", item.InvestmentRatio)
	}
	if item.MaxInvestmentAmount.IsNegative() {
		return fmt.Errorf("max investment amount must not be negative")
	}
	return nil
}

// fileConfig is the YAML document root. All monetary figures are man-yen
// floats; rates are percent.
type fileConfig struct {
	Profile     fileProfile     `yaml:"profile"`
	Parameters  fileParameters  `yaml:"parameters"`
	Incomes     fileItemBooks   `yaml:"incomes"`
	Expenses    fileItemBooks   `yaml:"expenses"`
	Assets      fileItemBooks   `yaml:"assets"`
	Liabilities fileItemBooks   `yaml:"liabilities"`
	LifeEvents  []fileLifeEvent `yaml:"life_events"`
}

type fileProfile struct {
	CurrentAge           int           `yaml:"current_age"`
	StartYear            int           `yaml:"start_year"`
	DeathAge             int           `yaml:"death_age"`
	Gender               string        `yaml:"gender"`
	MonthlyLivingExpense float64       `yaml:"monthly_living_expense"`
	Occupation           string        `yaml:"occupation"`
	MaritalStatus        string        `yaml:"marital_status"`
	Housing              fileHousing   `yaml:"housing"`
	Spouse               *fileSpouse   `yaml:"spouse"`
	Children             []fileChild   `yaml:"children"`
	PlannedChildren      []filePlanned `yaml:"planned_children"`
	WorkStartAge         int           `yaml:"work_start_age"`
	PensionStartAge      int           `yaml:"pension_start_age"`
	WorkAfterPension     bool          `yaml:"work_after_pension"`
}

type fileHousing struct {
	Type string        `yaml:"type"`
	Rent *fileRentPlan `yaml:"rent"`
	Own  *fileOwnPlan  `yaml:"own"`
}

type fileRentPlan struct {
	MonthlyRent        float64 `yaml:"monthly_rent"`
	AnnualIncreaseRate float64 `yaml:"annual_increase_rate"`
	RenewalFee         float64 `yaml:"renewal_fee"`
	RenewalInterval    int     `yaml:"renewal_interval"`
}

type fileOwnPlan struct {
	PurchaseYear        int     `yaml:"purchase_year"`
	PurchasePrice       float64 `yaml:"purchase_price"`
	LoanAmount          float64 `yaml:"loan_amount"`
	InterestRate        float64 `yaml:"interest_rate"`
	LoanTermYears       int     `yaml:"loan_term_years"`
	MaintenanceCostRate float64 `yaml:"maintenance_cost_rate"`
}

type fileSpouse struct {
	Age               int     `yaml:"age"`
	CurrentAge        int     `yaml:"current_age"`
	MarriageAge       int     `yaml:"marriage_age"`
	Occupation        string  `yaml:"occupation"`
	AdditionalExpense float64 `yaml:"additional_expense"`
}

type fileEducationPlan struct {
	Nursery    string `yaml:"nursery"`
	Preschool  string `yaml:"preschool"`
	Elementary string `yaml:"elementary"`
	JuniorHigh string `yaml:"junior_high"`
	HighSchool string `yaml:"high_school"`
	University string `yaml:"university"`
}

type fileChild struct {
	CurrentAge    int               `yaml:"current_age"`
	EducationPlan fileEducationPlan `yaml:"education_plan"`
}

type filePlanned struct {
	YearsFromNow  int               `yaml:"years_from_now"`
	EducationPlan fileEducationPlan `yaml:"education_plan"`
}

type fileParameters struct {
	InflationRate             float64 `yaml:"inflation_rate"`
	EducationCostIncreaseRate float64 `yaml:"education_cost_increase_rate"`
	InvestmentReturn          float64 `yaml:"investment_return"`
	InvestmentRatio           float64 `yaml:"investment_ratio"`
	MaxInvestmentAmount       float64 `yaml:"max_investment_amount"`
}

type fileItemBooks struct {
	Personal  []fileItem `yaml:"personal"`
	Corporate []fileItem `yaml:"corporate"`
}

// fileItem is the shared YAML shape for income, expense, asset and liability
// lines; each book reads the fields it understands.
type fileItem struct {
	ID                  string          `yaml:"id"`
	Name                string          `yaml:"name"`
	Kind                string          `yaml:"kind"`
	Amounts             map[int]float64 `yaml:"amounts"`
	NetAmounts          map[int]float64 `yaml:"net_amounts"`
	InvestmentRatio     float64         `yaml:"investment_ratio"`
	MaxInvestmentAmount float64         `yaml:"max_investment_amount"`
	AutoCalculated      bool            `yaml:"auto_calculated"`
	IsInvestment        bool            `yaml:"is_investment"`
	InterestRate        float64         `yaml:"interest_rate"`
	TermYears           int             `yaml:"term_years"`
}

type fileLifeEvent struct {
	Year        int     `yaml:"year"`
	Description string  `yaml:"description"`
	Type        string  `yaml:"type"`
	Category    string  `yaml:"category"`
	Amount      float64 `yaml:"amount"`
	Source      string  `yaml:"source"`
}

func toYearAmounts(m map[int]float64) domain.YearAmounts {
	if len(m) == 0 {
		return nil
	}
	out := make(domain.YearAmounts, len(m))
	for year, v := range m {
		out[year] = decimal.NewFromFloat(v)
	}
	return out
}

func (f *fileConfig) toConfiguration() *Configuration {
	profile := &domain.Profile{
		CurrentAge:           f.Profile.CurrentAge,
		StartYear:            f.Profile.StartYear,
		DeathAge:             f.Profile.DeathAge,
		Gender:               domain.Gender(f.Profile.Gender),
		MonthlyLivingExpense: decimal.NewFromFloat(f.Profile.MonthlyLivingExpense),
		Occupation:           domain.Occupation(f.Profile.Occupation),
		MaritalStatus:        domain.MaritalStatus(f.Profile.MaritalStatus),
		Housing:              f.Profile.Housing.toDomain(),
		WorkStartAge:         f.Profile.WorkStartAge,
		PensionStartAge:      f.Profile.PensionStartAge,
		WorkAfterPension:     f.Profile.WorkAfterPension,
	}
	if f.Profile.Spouse != nil {
		profile.Spouse = &domain.Spouse{
			Age:               f.Profile.Spouse.Age,
			CurrentAge:        f.Profile.Spouse.CurrentAge,
			MarriageAge:       f.Profile.Spouse.MarriageAge,
			Occupation:        domain.Occupation(f.Profile.Spouse.Occupation),
			AdditionalExpense: decimal.NewFromFloat(f.Profile.Spouse.AdditionalExpense),
		}
	}
	for _, child := range f.Profile.Children {
		profile.Children = append(profile.Children, domain.Child{
			CurrentAge:    child.CurrentAge,
			EducationPlan: child.EducationPlan.toDomain(),
		})
	}
	for _, child := range f.Profile.PlannedChildren {
		profile.PlannedChildren = append(profile.PlannedChildren, domain.PlannedChild{
			YearsFromNow:  child.YearsFromNow,
			EducationPlan: child.EducationPlan.toDomain(),
		})
	}

	config := &Configuration{
		Input: calculation.Input{
			Profile: profile,
			Parameters: domain.Parameters{
				InflationRate:             decimal.NewFromFloat(f.Parameters.InflationRate),
				EducationCostIncreaseRate: decimal.NewFromFloat(f.Parameters.EducationCostIncreaseRate),
				InvestmentReturn:          decimal.NewFromFloat(f.Parameters.InvestmentReturn),
				InvestmentRatio:           decimal.NewFromFloat(f.Parameters.InvestmentRatio),
				MaxInvestmentAmount:       decimal.NewFromFloat(f.Parameters.MaxInvestmentAmount),
			},
		},
	}

	for _, item := range f.Incomes.Personal {
		config.Input.Incomes.Personal = append(config.Input.Incomes.Personal, item.toIncome())
	}
	for _, item := range f.Incomes.Corporate {
		config.Input.Incomes.Corporate = append(config.Input.Incomes.Corporate, item.toIncome())
	}
	for _, item := range f.Expenses.Personal {
		config.Input.Expenses.Personal = append(config.Input.Expenses.Personal, item.toExpense())
	}
	for _, item := range f.Expenses.Corporate {
		config.Input.Expenses.Corporate = append(config.Input.Expenses.Corporate, item.toExpense())
	}
	for _, item := range f.Assets.Personal {
		config.Input.Assets.Personal = append(config.Input.Assets.Personal, item.toAsset())
	}
	for _, item := range f.Assets.Corporate {
		config.Input.Assets.Corporate = append(config.Input.Assets.Corporate, item.toAsset())
	}
	for _, item := range f.Liabilities.Personal {
		config.Input.Liabilities.Personal = append(config.Input.Liabilities.Personal, item.toLiability())
	}
	for _, item := range f.Liabilities.Corporate {
		config.Input.Liabilities.Corporate = append(config.Input.Liabilities.Corporate, item.toLiability())
	}
	for _, event := range f.LifeEvents {
		config.LifeEvents = append(config.LifeEvents, domain.LifeEvent{
			Year:        event.Year,
			Description: event.Description,
			Type:        domain.EventType(event.Type),
			Category:    event.Category,
			Amount:      decimal.NewFromFloat(event.Amount),
			Source:      domain.EventSource(event.Source),
		})
	}
	return config
}

func (h *fileHousing) toDomain() domain.Housing {
	housing := domain.Housing{Type: domain.HousingType(h.Type)}
	if h.Rent != nil {
		housing.Rent = &domain.RentPlan{
			MonthlyRent:        decimal.NewFromFloat(h.Rent.MonthlyRent),
			AnnualIncreaseRate: decimal.NewFromFloat(h.Rent.AnnualIncreaseRate),
			RenewalFee:         decimal.NewFromFloat(h.Rent.RenewalFee),
			RenewalInterval:    h.Rent.RenewalInterval,
		}
	}
	if h.Own != nil {
		housing.Own = &domain.OwnPlan{
			PurchaseYear:        h.Own.PurchaseYear,
			PurchasePrice:       decimal.NewFromFloat(h.Own.PurchasePrice),
			LoanAmount:          decimal.NewFromFloat(h.Own.LoanAmount),
			InterestRate:        decimal.NewFromFloat(h.Own.InterestRate),
			LoanTermYears:       h.Own.LoanTermYears,
			MaintenanceCostRate: decimal.NewFromFloat(h.Own.MaintenanceCostRate),
		}
	}
	return housing
}

func (p *fileEducationPlan) toDomain() domain.EducationPlan {
	return domain.EducationPlan{
		Nursery:    domain.SchoolChoice(p.Nursery),
		Preschool:  domain.SchoolChoice(p.Preschool),
		Elementary: domain.SchoolChoice(p.Elementary),
		JuniorHigh: domain.SchoolChoice(p.JuniorHigh),
		HighSchool: domain.SchoolChoice(p.HighSchool),
		University: domain.SchoolChoice(p.University),
	}
}

func (i *fileItem) toIncome() domain.IncomeItem {
	return domain.IncomeItem{
		ID:                  i.ID,
		Name:                i.Name,
		Kind:                domain.IncomeKind(i.Kind),
		Amounts:             toYearAmounts(i.Amounts),
		NetAmounts:          toYearAmounts(i.NetAmounts),
		InvestmentRatio:     decimal.NewFromFloat(i.InvestmentRatio),
		MaxInvestmentAmount: decimal.NewFromFloat(i.MaxInvestmentAmount),
		AutoCalculated:      i.AutoCalculated,
	}
}

func (i *fileItem) toExpense() domain.ExpenseItem {
	return domain.ExpenseItem{
		ID:      i.ID,
		Name:    i.Name,
		Kind:    domain.ExpenseKind(i.Kind),
		Amounts: toYearAmounts(i.Amounts),
	}
}

func (i *fileItem) toAsset() domain.AssetItem {
	return domain.AssetItem{
		ID:           i.ID,
		Name:         i.Name,
		Kind:         domain.AssetKind(i.Kind),
		Amounts:      toYearAmounts(i.Amounts),
		IsInvestment: i.IsInvestment,
	}
}

func (i *fileItem) toLiability() domain.LiabilityItem {
	return domain.LiabilityItem{
		ID:           i.ID,
		Name:         i.Name,
		Kind:         domain.LiabilityKind(i.Kind),
		Amounts:      toYearAmounts(i.Amounts),
		InterestRate: decimal.NewFromFloat(i.InterestRate),
		TermYears:    i.TermYears,
	}
}
