package domain

import (
	"github.com/shopspring/decimal"
)

// DayType classifies a calendar day and selects the multiplier row that
// applies to it.
type DayType string

const (
	DayTypeNormal  DayType = "normal"
	DayTypeHoliday DayType = "holiday"
	DayTypeSpecial DayType = "special"
)

// ShiftType tags a record with the shift template it was created from and
// selects the automatic shift allowance amount.
type ShiftType string

const (
	ShiftDay    ShiftType = "day"
	ShiftNight  ShiftType = "night"
	ShiftCustom ShiftType = "custom"
)

// CycleAnchor states whether a selected YYYY-MM names the first or the last
// month of a pay cycle window.
type CycleAnchor string

const (
	AnchorStart CycleAnchor = "start"
	AnchorEnd   CycleAnchor = "end"
)

// PayDateType selects how the pay date is derived from a cycle range.
type PayDateType string

const (
	PayAtCycleEnd PayDateType = "end"   // last day of the cycle
	PayAtMonthEnd PayDateType = "eom"   // last day of the cycle's final month
	PayAtFixedDay PayDateType = "fixed" // fixed day-of-month, clamped
)

// OTCycleMode selects whether the OT cycle has its own start/end days or
// mirrors the salary cycle.
type OTCycleMode string

const (
	OTCycleCustom       OTCycleMode = "custom"
	OTCycleSameAsSalary OTCycleMode = "sameAsSalary"
)

// OTPayMode selects whether the OT pay date mirrors the salary pay date or
// follows its own policy.
type OTPayMode string

const (
	OTPaySameAsSalary OTPayMode = "sameAsSalary"
	OTPayCustom       OTPayMode = "custom"
)

// BreakSpan is one break interval entered as HH:MM strings. Spans are
// normalized and merged before any arithmetic; malformed or zero-length
// entries are dropped there rather than rejected here.
type BreakSpan struct {
	Start string `yaml:"start" json:"start"`
	End   string `yaml:"end" json:"end"`
}

// ShiftTemplate holds the time-window defaults used to pre-fill a new record
// for a given shift type.
type ShiftTemplate struct {
	WorkStart string      `yaml:"work_start" json:"workStart"`
	WorkEnd   string      `yaml:"work_end" json:"workEnd"`
	OTStart   string      `yaml:"ot_start" json:"otStart"`
	OTEnd     string      `yaml:"ot_end" json:"otEnd"`
	Breaks    []BreakSpan `yaml:"breaks" json:"breaks"`
}

// Settings is the process-wide configuration. It is loaded once, passed by
// value into every calculation, and never mutated by the core.
type Settings struct {
	SchemaVersion int    `yaml:"schema_version" json:"schemaVersion"`
	EmployeeID    string `yaml:"employee_id" json:"employeeId"`
	Department    string `yaml:"department" json:"department"`

	// Money values are still computed when set; they are masked at every
	// user-facing surface instead.
	PrivacyHideMoney bool `yaml:"privacy_hide_money" json:"privacyHideMoney"`

	BaseSalary          decimal.Decimal `yaml:"base_salary" json:"baseSalary"`
	WorkingDaysPerMonth decimal.Decimal `yaml:"working_days_per_month" json:"workingDaysPerMonth"`
	StandardHoursPerDay decimal.Decimal `yaml:"standard_hours_per_day" json:"standardHoursPerDay"`

	WorkMultipliers map[DayType]decimal.Decimal `yaml:"work_multipliers" json:"workMultipliers"`
	OTMultipliers   map[DayType]decimal.Decimal `yaml:"ot_multipliers" json:"otMultipliers"`

	DefaultShiftType ShiftType                   `yaml:"default_shift_type" json:"defaultShiftType"`
	DefaultDayType   DayType                     `yaml:"default_day_type" json:"defaultDayType"`
	ShiftTemplates   map[ShiftType]ShiftTemplate `yaml:"shift_templates" json:"shiftTemplates"`

	CycleMonthAnchor    CycleAnchor `yaml:"cycle_month_anchor" json:"cycleMonthAnchor"`
	SalaryCycleStartDay int         `yaml:"salary_cycle_start_day" json:"salaryCycleStartDay"`
	// nil means "rolling monthly window": end day defaults to startDay-1
	// (or end-of-month when startDay is 1). 0 is the explicit EOM sentinel.
	SalaryCycleEndDay *int        `yaml:"salary_cycle_end_day" json:"salaryCycleEndDay"`
	SalaryPayType     PayDateType `yaml:"salary_pay_type" json:"salaryPayType"`
	SalaryPayDay      int         `yaml:"salary_pay_day" json:"salaryPayDay"`

	OTCycleMode     OTCycleMode `yaml:"ot_cycle_mode" json:"otCycleMode"`
	OTCycleStartDay int         `yaml:"ot_cycle_start_day" json:"otCycleStartDay"`
	OTCycleEndDay   *int        `yaml:"ot_cycle_end_day" json:"otCycleEndDay"`
	OTPayMode       OTPayMode   `yaml:"ot_pay_mode" json:"otPayMode"`
	OTPayType       PayDateType `yaml:"ot_pay_type" json:"otPayType"`
	OTPayDay        int         `yaml:"ot_pay_day" json:"otPayDay"`

	MealAllowanceEnabled     bool            `yaml:"meal_allowance_enabled" json:"mealAllowanceEnabled"`
	MealAllowanceBase        decimal.Decimal `yaml:"meal_allowance_base" json:"mealAllowanceBase"`
	MealAllowanceOTThreshold decimal.Decimal `yaml:"meal_allowance_ot_threshold" json:"mealAllowanceOtThreshold"`
	MealAllowanceOTAmount    decimal.Decimal `yaml:"meal_allowance_ot_amount" json:"mealAllowanceOtAmount"`

	ShiftAllowanceEnabled bool                          `yaml:"shift_allowance_enabled" json:"shiftAllowanceEnabled"`
	ShiftAllowances       map[ShiftType]decimal.Decimal `yaml:"shift_allowances" json:"shiftAllowances"`

	AllowancesMonthly decimal.Decimal `yaml:"allowances_monthly" json:"allowancesMonthly"`
	DeductionsMonthly decimal.Decimal `yaml:"deductions_monthly" json:"deductionsMonthly"`
}

// DefaultSettings returns the baseline configuration. Loaded documents are
// unmarshalled over this value, so absent fields keep these defaults.
func DefaultSettings() Settings {
	return Settings{
		SchemaVersion:       2,
		BaseSalary:          decimal.NewFromInt(12000),
		WorkingDaysPerMonth: decimal.NewFromInt(30),
		StandardHoursPerDay: decimal.NewFromInt(8),

		WorkMultipliers: map[DayType]decimal.Decimal{
			DayTypeNormal:  decimal.NewFromInt(1),
			DayTypeHoliday: decimal.NewFromInt(2),
			DayTypeSpecial: decimal.NewFromInt(3),
		},
		OTMultipliers: map[DayType]decimal.Decimal{
			DayTypeNormal:  decimal.NewFromFloat(1.5),
			DayTypeHoliday: decimal.NewFromInt(2),
			DayTypeSpecial: decimal.NewFromInt(3),
		},

		DefaultShiftType: ShiftDay,
		DefaultDayType:   DayTypeNormal,
		ShiftTemplates: map[ShiftType]ShiftTemplate{
			ShiftDay: {
				WorkStart: "08:00", WorkEnd: "17:00",
				OTStart: "17:00", OTEnd: "20:00",
				Breaks: []BreakSpan{
					{Start: "11:30", End: "12:00"},
					{Start: "17:00", End: "17:30"},
				},
			},
			ShiftNight: {
				WorkStart: "20:00", WorkEnd: "05:00",
				Breaks: []BreakSpan{{Start: "00:00", End: "00:30"}},
			},
			ShiftCustom: {WorkStart: "08:00", WorkEnd: "17:00"},
		},

		CycleMonthAnchor:    AnchorEnd,
		SalaryCycleStartDay: 1,
		SalaryPayType:       PayAtCycleEnd,

		OTCycleMode:     OTCycleCustom,
		OTCycleStartDay: 21,
		OTCycleEndDay:   IntPtr(20),
		OTPayMode:       OTPaySameAsSalary,
		OTPayType:       PayAtFixedDay,
		OTPayDay:        25,

		MealAllowanceEnabled:     true,
		MealAllowanceBase:        decimal.NewFromInt(30),
		MealAllowanceOTThreshold: decimal.NewFromFloat(2.5),
		MealAllowanceOTAmount:    decimal.NewFromInt(60),

		ShiftAllowanceEnabled: true,
		ShiftAllowances: map[ShiftType]decimal.Decimal{
			ShiftDay:    decimal.Zero,
			ShiftNight:  decimal.NewFromInt(100),
			ShiftCustom: decimal.Zero,
		},
	}
}

// IntPtr is a small helper for optional day-of-month fields.
func IntPtr(v int) *int { return &v }

// Template returns the shift template for the given tag, falling back to the
// day template, then to an empty template.
func (s Settings) Template(shift ShiftType) ShiftTemplate {
	if t, ok := s.ShiftTemplates[shift]; ok {
		return t
	}
	if t, ok := s.ShiftTemplates[ShiftDay]; ok {
		return t
	}
	return ShiftTemplate{}
}
