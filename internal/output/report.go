// Package output renders computed payroll data as console text, JSON, CSV,
// HTML, and printable PDF reports. Formatters never re-derive calculation
// results; they consume the engine's outputs as-is. When the privacy flag is
// set, money is still computed but masked at every surface here.
package output

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ottrack/ot-calculator/internal/calculation"
	"github.com/ottrack/ot-calculator/internal/domain"
	"github.com/ottrack/ot-calculator/internal/timeutil"
)

// DayRow is one report line: the record plus its derived hours and money.
type DayRow struct {
	Record domain.DayRecord `json:"record"`
	Hours  domain.NetHours  `json:"hours"`
	Money  domain.DayMoney  `json:"money"`
}

// AttendanceThai is the row's Thai attendance label, for templates.
func (d DayRow) AttendanceThai() string {
	return AttendanceLabelThai(d.Record.Attendance)
}

// DateThai is the row's date as DD/MM/YYYY, for templates.
func (d DayRow) DateThai() string {
	return timeutil.FormatThaiDate(d.Record.Date)
}

// Report is the input every formatter consumes: one resolved cycle window,
// its aggregate summary, and the per-day detail rows inside it.
type Report struct {
	GeneratedAt time.Time           `json:"generatedAt"`
	Month       string              `json:"month"`
	Period      calculation.Period  `json:"period"`
	Settings    domain.Settings     `json:"settings"`
	Cycle       domain.CycleContext `json:"cycle"`
	PreviousOT  domain.CycleContext `json:"previousOt"`
	Summary     domain.RangeSummary `json:"summary"`
	Days        []DayRow            `json:"days"`
	HideMoney   bool                `json:"hideMoney"`
}

// BuildReport assembles a report for a selected month and period kind from a
// settings+records snapshot.
func BuildReport(records []domain.DayRecord, settings domain.Settings, month string, period calculation.Period) (*Report, error) {
	engine := calculation.NewEngine()
	ctx, summary, err := engine.SummarizePeriod(records, settings, month, period)
	if err != nil {
		return nil, err
	}
	cycles := calculation.ResolveCycles(settings, month)

	fromKey, _ := timeutil.DateKey(ctx.Range.DateFrom)
	toKey, ok := timeutil.DateKey(ctx.Range.DateToExclusive)
	if !ok {
		toKey = 99999999
	}

	days := make([]DayRow, 0, len(records))
	for _, r := range records {
		key, ok := timeutil.DateKey(r.Date)
		if !ok || key < fromKey || key >= toKey {
			continue
		}
		hours := calculation.ComputeNetHours(r, settings)
		days = append(days, DayRow{
			Record: r,
			Hours:  hours,
			Money:  calculation.ComputeDayMoney(r, settings),
		})
	}
	sort.Slice(days, func(i, j int) bool {
		ki, _ := timeutil.DateKey(days[i].Record.Date)
		kj, _ := timeutil.DateKey(days[j].Record.Date)
		return ki < kj
	})

	return &Report{
		GeneratedAt: time.Now(),
		Month:       month,
		Period:      period,
		Settings:    settings,
		Cycle:       ctx,
		PreviousOT:  cycles.PreviousOT,
		Summary:     summary,
		Days:        days,
		HideMoney:   settings.PrivacyHideMoney,
	}, nil
}

// Formatter renders a report into one output format.
type Formatter interface {
	Name() string
	Format(report *Report) ([]byte, error)
}

var formatters = []Formatter{
	ConsoleFormatter{},
	JSONFormatter{},
	CSVFormatter{},
	HTMLFormatter{},
	PDFFormatter{},
}

// GetFormatterByName returns the formatter registered under the given name,
// or nil when none matches.
func GetFormatterByName(name string) Formatter {
	for _, f := range formatters {
		if f.Name() == name {
			return f
		}
	}
	return nil
}

// FormatterNames lists the registered formatter names.
func FormatterNames() []string {
	names := make([]string, len(formatters))
	for i, f := range formatters {
		names[i] = f.Name()
	}
	return names
}

const maskedMoney = "***"

// FormatMoney renders a monetary value to two decimals, masked when the
// privacy flag is on.
func FormatMoney(v decimal.Decimal, hide bool) string {
	if hide {
		return maskedMoney
	}
	return v.StringFixed(2)
}

// AttendanceLabelThai returns the Thai display label for an attendance tag.
func AttendanceLabelThai(a domain.Attendance) string {
	switch a.Normalized() {
	case domain.AttendanceOff:
		return "หยุด/ขาด"
	case domain.AttendancePersonal:
		return "ลากิจ"
	case domain.AttendanceSick:
		return "ลาป่วย"
	default:
		return "มาทำงาน"
	}
}

// AttendanceLabel returns the English display label for an attendance tag.
func AttendanceLabel(a domain.Attendance) string {
	switch a.Normalized() {
	case domain.AttendanceOff:
		return "Off"
	case domain.AttendancePersonal:
		return "Personal leave"
	case domain.AttendanceSick:
		return "Sick leave"
	default:
		return "Present"
	}
}

// PeriodLabel names the period kind for report headers.
func PeriodLabel(p calculation.Period) string {
	if p == calculation.PeriodOT {
		return "OT cycle"
	}
	return "Salary cycle"
}

// rangeLabel renders a half-open range as its inclusive DD/MM/YYYY span.
func rangeLabel(r domain.DateRange) string {
	return fmt.Sprintf("%s - %s",
		timeutil.FormatThaiDate(r.DateFrom),
		timeutil.FormatThaiDate(timeutil.PrevDate(r.DateToExclusive)))
}
