package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Attendance states whether the day was worked, absent, or on leave.
type Attendance string

const (
	AttendancePresent  Attendance = "present"
	AttendanceOff      Attendance = "off"
	AttendancePersonal Attendance = "personal"
	AttendanceSick     Attendance = "sick"
)

// Normalized maps any unrecognized tag to present. User data treats these
// enumerations as closed by convention only, so the default arm is permissive
// rather than an error path.
func (a Attendance) Normalized() Attendance {
	switch a {
	case AttendanceOff, AttendancePersonal, AttendanceSick:
		return a
	default:
		return AttendancePresent
	}
}

// DayRecord is one calendar day of attendance and time entries, keyed by its
// ISO date. Records never reference Settings; every settings-dependent value
// is derived at use time.
type DayRecord struct {
	Date       string     `yaml:"date" json:"date"`
	Attendance Attendance `yaml:"attendance" json:"attendance"`
	DayType    DayType    `yaml:"day_type" json:"dayType"`
	ShiftType  ShiftType  `yaml:"shift_type" json:"shiftType"`

	WorkStart string `yaml:"work_start" json:"workStart"`
	WorkEnd   string `yaml:"work_end" json:"workEnd"`
	OTStart   string `yaml:"ot_start" json:"otStart"`
	OTEnd     string `yaml:"ot_end" json:"otEnd"`

	Breaks []BreakSpan `yaml:"breaks" json:"breaks"`

	// Manual OT multiplier override for this day only. It applies only when
	// enabled and the value is greater than zero; otherwise the table value
	// is used.
	OTMultiplierManualEnabled bool            `yaml:"ot_multiplier_manual_enabled" json:"otMultiplierManualEnabled"`
	OTMultiplierManual        decimal.Decimal `yaml:"ot_multiplier_manual" json:"otMultiplierManual"`

	AllowancesDay decimal.Decimal `yaml:"allowances_day" json:"allowancesDay"`
	DeductionsDay decimal.Decimal `yaml:"deductions_day" json:"deductionsDay"`

	// nil means "use the automatic shift allowance"; a value (including zero)
	// replaces it for this day.
	ShiftAllowanceOverride *decimal.Decimal `yaml:"shift_allowance_override,omitempty" json:"shiftAllowanceOverride,omitempty"`

	Tags []string `yaml:"tags,omitempty" json:"tags,omitempty"`
	Note string   `yaml:"note,omitempty" json:"note,omitempty"`

	CreatedAt time.Time `yaml:"created_at,omitempty" json:"createdAt,omitempty"`
	UpdatedAt time.Time `yaml:"updated_at,omitempty" json:"updatedAt,omitempty"`

	// Derived cache, always reproducible from (record, settings). The store
	// refreshes it on load and after every record or settings change; it is
	// never authoritative.
	Computed *NetHours `yaml:"computed,omitempty" json:"computed,omitempty"`
}

// NewRecordForDate builds a fresh record for a date, pre-filled from the
// settings defaults and the default shift template.
func NewRecordForDate(date string, settings Settings) DayRecord {
	shift := settings.DefaultShiftType
	if shift == "" {
		shift = ShiftDay
	}
	dayType := settings.DefaultDayType
	if dayType == "" {
		dayType = DayTypeNormal
	}
	tmpl := settings.Template(shift)
	breaks := make([]BreakSpan, len(tmpl.Breaks))
	copy(breaks, tmpl.Breaks)
	return DayRecord{
		Date:       date,
		Attendance: AttendancePresent,
		DayType:    dayType,
		ShiftType:  shift,
		WorkStart:  tmpl.WorkStart,
		WorkEnd:    tmpl.WorkEnd,
		OTStart:    tmpl.OTStart,
		OTEnd:      tmpl.OTEnd,
		Breaks:     breaks,
	}
}
