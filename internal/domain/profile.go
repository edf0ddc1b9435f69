package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Occupation identifies which public pension and deduction rules apply.
type Occupation string

const (
	OccupationCompanyEmployee        Occupation = "company_employee"
	OccupationPartTimeWithPension    Occupation = "part_time_with_pension"
	OccupationPartTimeWithoutPension Occupation = "part_time_without_pension"
	OccupationSelfEmployed           Occupation = "self_employed"
	OccupationHomemaker              Occupation = "homemaker"
)

// Valid reports whether the occupation is one of the known categories.
func (o Occupation) Valid() bool {
	switch o {
	case OccupationCompanyEmployee, OccupationPartTimeWithPension,
		OccupationPartTimeWithoutPension, OccupationSelfEmployed, OccupationHomemaker:
		return true
	}
	return false
}

// HasWelfarePension reports whether the occupation accrues the income-linked
// welfare pension tier.
func (o Occupation) HasWelfarePension() bool {
	return o == OccupationCompanyEmployee || o == OccupationPartTimeWithPension
}

// HasSocialInsurance reports whether employee social insurance premiums are
// withheld from salary.
func (o Occupation) HasSocialInsurance() bool {
	return o == OccupationCompanyEmployee || o == OccupationPartTimeWithPension
}

// GrossSalaried reports whether salary amounts for this occupation represent
// gross pay that must be converted to net before aggregation. Self-employed
// and homemaker income passes through untouched.
func (o Occupation) GrossSalaried() bool {
	return o != OccupationSelfEmployed && o != OccupationHomemaker
}

// Gender of the simulated person. Only carried for display.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// MaritalStatus gates spouse income and spouse pension handling.
type MaritalStatus string

const (
	MaritalSingle   MaritalStatus = "single"
	MaritalMarried  MaritalStatus = "married"
	MaritalPlanning MaritalStatus = "planning"
)

// Valid reports whether the marital status is one of the known values.
func (m MaritalStatus) Valid() bool {
	return m == MaritalSingle || m == MaritalMarried || m == MaritalPlanning
}

// HousingType discriminates the housing configuration.
type HousingType string

const (
	HousingRent HousingType = "rent"
	HousingOwn  HousingType = "own"
)

// RentPlan describes rented housing. Monetary fields are man-yen.
type RentPlan struct {
	MonthlyRent        decimal.Decimal `json:"monthly_rent"`
	AnnualIncreaseRate decimal.Decimal `json:"annual_increase_rate"` // percent
	RenewalFee         decimal.Decimal `json:"renewal_fee"`
	RenewalInterval    int             `json:"renewal_interval"` // years
}

// OwnPlan describes purchased housing with a mortgage. Monetary fields are
// man-yen; rates are percent.
type OwnPlan struct {
	PurchaseYear        int             `json:"purchase_year"`
	PurchasePrice       decimal.Decimal `json:"purchase_price"`
	LoanAmount          decimal.Decimal `json:"loan_amount"`
	InterestRate        decimal.Decimal `json:"interest_rate"`
	LoanTermYears       int             `json:"loan_term_years"`
	MaintenanceCostRate decimal.Decimal `json:"maintenance_cost_rate"`
}

// LoanEndYear is the first year in which only maintenance cost applies.
func (o *OwnPlan) LoanEndYear() int {
	return o.PurchaseYear + o.LoanTermYears
}

// Housing holds exactly one populated variant matching Type.
type Housing struct {
	Type HousingType `json:"type"`
	Rent *RentPlan   `json:"rent,omitempty"`
	Own  *OwnPlan    `json:"own,omitempty"`
}

// Validate checks the variant invariant.
func (h *Housing) Validate() error {
	switch h.Type {
	case HousingRent:
		if h.Rent == nil {
			return fmt.Errorf("housing type is rent but rent plan is missing")
		}
	case HousingOwn:
		if h.Own == nil {
			return fmt.Errorf("housing type is own but ownership plan is missing")
		}
		if h.Own.LoanTermYears <= 0 {
			return fmt.Errorf("loan term years must be positive")
		}
	default:
		return fmt.Errorf("unknown housing type %q", h.Type)
	}
	return nil
}

// SchoolChoice is the per-stage schooling track selection. The zero value
// means the stage was not configured and costs nothing.
type SchoolChoice string

const (
	SchoolPublic  SchoolChoice = "公立"
	SchoolPrivate SchoolChoice = "私立"
	SchoolNone    SchoolChoice = "行かない"

	UniversityPublicHumanities  SchoolChoice = "公立大学（文系）"
	UniversityPublicScience     SchoolChoice = "公立大学（理系）"
	UniversityPrivateHumanities SchoolChoice = "私立大学（文系）"
	UniversityPrivateScience    SchoolChoice = "私立大学（理系）"
)

// EducationPlan selects a schooling track for each stage of one child.
type EducationPlan struct {
	Nursery    SchoolChoice `json:"nursery"`
	Preschool  SchoolChoice `json:"preschool"`
	Elementary SchoolChoice `json:"elementary"`
	JuniorHigh SchoolChoice `json:"junior_high"`
	HighSchool SchoolChoice `json:"high_school"`
	University SchoolChoice `json:"university"`
}

// Child is an existing child, keyed by age at the simulation start.
type Child struct {
	CurrentAge    int           `json:"current_age"`
	EducationPlan EducationPlan `json:"education_plan"`
}

// PlannedChild is a child expected some years after the simulation start.
type PlannedChild struct {
	YearsFromNow  int           `json:"years_from_now"`
	EducationPlan EducationPlan `json:"education_plan"`
}

// Spouse carries the spouse sub-record. For married status CurrentAge is set;
// for planning status MarriageAge (of the main person) and Age (spouse age at
// marriage) are set instead.
type Spouse struct {
	Age               int             `json:"age,omitempty"`
	CurrentAge        int             `json:"current_age,omitempty"`
	MarriageAge       int             `json:"marriage_age,omitempty"`
	Occupation        Occupation      `json:"occupation,omitempty"`
	AdditionalExpense decimal.Decimal `json:"additional_expense,omitempty"`
}

// Profile is the demographic input record driving the simulation horizon.
type Profile struct {
	CurrentAge           int             `json:"current_age"`
	StartYear            int             `json:"start_year"`
	DeathAge             int             `json:"death_age"`
	Gender               Gender          `json:"gender"`
	MonthlyLivingExpense decimal.Decimal `json:"monthly_living_expense"` // man-yen
	Occupation           Occupation      `json:"occupation"`
	MaritalStatus        MaritalStatus   `json:"marital_status"`
	Housing              Housing         `json:"housing"`
	Spouse               *Spouse         `json:"spouse,omitempty"`
	Children             []Child         `json:"children"`
	PlannedChildren      []PlannedChild  `json:"planned_children"`
	WorkStartAge         int             `json:"work_start_age"`
	PensionStartAge      int             `json:"pension_start_age"`
	WorkAfterPension     bool            `json:"work_after_pension"`
}

// HorizonYears is the number of simulated years including the start year.
func (p *Profile) HorizonYears() int {
	return p.DeathAge - p.CurrentAge + 1
}

// AgeInYear returns the person's age in the given calendar year.
func (p *Profile) AgeInYear(year int) int {
	return p.CurrentAge + (year - p.StartYear)
}

// BirthYear derives the birth year from start year and current age.
func (p *Profile) BirthYear() int {
	return p.StartYear - p.CurrentAge
}

// EffectiveWorkStartAge returns the configured work start age, defaulting to 22.
func (p *Profile) EffectiveWorkStartAge() int {
	if p.WorkStartAge == 0 {
		return 22
	}
	return p.WorkStartAge
}

// EffectivePensionStartAge returns the configured claiming age, defaulting to 65.
func (p *Profile) EffectivePensionStartAge() int {
	if p.PensionStartAge == 0 {
		return 65
	}
	return p.PensionStartAge
}

// SpouseAgeInYear returns the spouse's age in the given calendar year and
// whether a spouse exists in that year at all. For a planned marriage the
// spouse appears only from the marriage year on.
func (p *Profile) SpouseAgeInYear(year int) (int, bool) {
	if p.MaritalStatus == MaritalSingle || p.Spouse == nil {
		return 0, false
	}
	switch p.MaritalStatus {
	case MaritalMarried:
		if p.Spouse.CurrentAge == 0 {
			return 0, false
		}
		return p.Spouse.CurrentAge + (year - p.StartYear), true
	case MaritalPlanning:
		if p.Spouse.MarriageAge == 0 || p.Spouse.Age == 0 {
			return 0, false
		}
		marriageYear := p.StartYear + (p.Spouse.MarriageAge - p.CurrentAge)
		if year < marriageYear {
			return 0, false
		}
		return p.Spouse.Age + (year - marriageYear), true
	}
	return 0, false
}
