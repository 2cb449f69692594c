package domain

import "github.com/shopspring/decimal"

// NetHours is the per-day output of the hours calculator: worked and overtime
// time after break overlap subtraction. Minutes are exact; hour values are
// rounded to two decimals.
type NetHours struct {
	WorkMinutesNet  int             `yaml:"work_minutes_net" json:"workMinutesNet"`
	OTMinutesNet    int             `yaml:"ot_minutes_net" json:"otMinutesNet"`
	TotalMinutesNet int             `yaml:"total_minutes_net" json:"totalMinutesNet"`
	WorkHoursNet    decimal.Decimal `yaml:"work_hours_net" json:"workHoursNet"`
	OTHoursNet      decimal.Decimal `yaml:"ot_hours_net" json:"otHoursNet"`
	TotalHoursNet   decimal.Decimal `yaml:"total_hours_net" json:"totalHoursNet"`
}

// Rates are the pay rates derived from the salary basis settings.
type Rates struct {
	BaseSalary          decimal.Decimal `json:"baseSalary"`
	WorkingDaysPerMonth decimal.Decimal `json:"workingDaysPerMonth"`
	StandardHoursPerDay decimal.Decimal `json:"standardHoursPerDay"`
	DailyRate           decimal.Decimal `json:"dailyRate"`
	HourlyRate          decimal.Decimal `json:"hourlyRate"`
}

// DayMoney is the money breakdown for a single day. All monetary fields are
// rounded to two decimals at the point of return.
type DayMoney struct {
	Rates      Rates      `json:"rates"`
	Attendance Attendance `json:"attendance"`
	DayType    DayType    `json:"dayType"`

	WorkMultiplier decimal.Decimal `json:"workMultiplier"`
	OTMultiplier   decimal.Decimal `json:"otMultiplier"`

	WorkHours decimal.Decimal `json:"workHours"`
	OTHours   decimal.Decimal `json:"otHours"`

	NormalPay decimal.Decimal `json:"normalPay"`
	OTPay     decimal.Decimal `json:"otPay"`

	MealAllowance   decimal.Decimal `json:"mealAllowance"`
	ShiftAllowance  decimal.Decimal `json:"shiftAllowance"`
	ManualAllowance decimal.Decimal `json:"manualAllowance"`

	AllowancesDay decimal.Decimal `json:"allowancesDay"`
	DeductionsDay decimal.Decimal `json:"deductionsDay"`
	GrossDay      decimal.Decimal `json:"grossDay"`
}

// RangeSummary aggregates a half-open date range of records: attendance
// counts, net hour totals, and money totals including the flat monthly
// allowance/deduction constants (added once, not per day).
type RangeSummary struct {
	Rates           Rates  `json:"rates"`
	DateFrom        string `json:"dateFrom"`
	DateToExclusive string `json:"dateToExclusive"`

	DaysPresent  int `json:"daysPresent"`
	DaysOff      int `json:"daysOff"`
	DaysPersonal int `json:"daysPersonal"`
	DaysSick     int `json:"daysSick"`
	// Days that generate pay: present + personal + sick.
	DaysPaid int `json:"daysPaid"`

	WorkHours decimal.Decimal `json:"workHours"`
	OTHours   decimal.Decimal `json:"otHours"`

	NormalPay decimal.Decimal `json:"normalPay"`
	OTPay     decimal.Decimal `json:"otPay"`

	MealAllowances   decimal.Decimal `json:"mealAllowances"`
	ShiftAllowances  decimal.Decimal `json:"shiftAllowances"`
	ManualAllowances decimal.Decimal `json:"manualAllowances"`

	Allowances decimal.Decimal `json:"allowances"`
	Deductions decimal.Decimal `json:"deductions"`
	Gross      decimal.Decimal `json:"gross"`
}

// DateRange is a half-open [DateFrom, DateToExclusive) window of ISO dates.
type DateRange struct {
	DateFrom        string `json:"dateFrom"`
	DateToExclusive string `json:"dateToExclusive"`
}

// CycleContext is one resolved pay cycle: its date window and pay date.
type CycleContext struct {
	Range   DateRange `json:"range"`
	PayDate string    `json:"payDate"`
}

// CycleSet is everything the cycle resolver produces for a selected month:
// the salary cycle, the OT cycle, and the previous OT cycle used for
// carryover checks.
type CycleSet struct {
	Month      string       `json:"month"`
	Salary     CycleContext `json:"salary"`
	OT         CycleContext `json:"ot"`
	PreviousOT CycleContext `json:"previousOt"`
}

// Document is the interchange format the broader system trades in: settings
// plus the full record collection.
type Document struct {
	SchemaVersion int         `yaml:"schema_version" json:"schemaVersion"`
	ExportedAt    string      `yaml:"exported_at,omitempty" json:"exportedAt,omitempty"`
	Settings      Settings    `yaml:"settings" json:"settings"`
	Records       []DayRecord `yaml:"records" json:"records"`
}
