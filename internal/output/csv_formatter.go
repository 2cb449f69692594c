package output

import (
	"bytes"
	"encoding/csv"
	"strings"
	"time"

	"github.com/ottrack/ot-calculator/internal/timeutil"
)

// CSVFormatter emits one detail row per day in the cycle window. Columns are
// sourced directly from the engine's computed outputs, never re-derived.
type CSVFormatter struct{}

func (CSVFormatter) Name() string { return "csv" }

var csvHeader = []string{
	"date", "date_th", "attendance", "attendance_th", "dayType",
	"workHoursNet", "otHoursNet", "totalHoursNet",
	"hourlyRate", "workMultiplier", "otMultiplier",
	"normalPay", "otPay", "allowancesDay", "deductionsDay", "grossDay",
	"employeeId", "department", "note", "tags", "createdAt", "updatedAt",
}

func (CSVFormatter) Format(report *Report) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}

	hide := report.HideMoney
	s := report.Settings
	for _, d := range report.Days {
		r := d.Record
		m := d.Money
		row := []string{
			r.Date,
			timeutil.FormatThaiDate(r.Date),
			string(r.Attendance.Normalized()),
			AttendanceLabelThai(r.Attendance),
			string(m.DayType),
			d.Hours.WorkHoursNet.StringFixed(2),
			d.Hours.OTHoursNet.StringFixed(2),
			d.Hours.TotalHoursNet.StringFixed(2),
			FormatMoney(m.Rates.HourlyRate, hide),
			m.WorkMultiplier.String(),
			m.OTMultiplier.String(),
			FormatMoney(m.NormalPay, hide),
			FormatMoney(m.OTPay, hide),
			FormatMoney(m.AllowancesDay, hide),
			FormatMoney(m.DeductionsDay, hide),
			FormatMoney(m.GrossDay, hide),
			s.EmployeeID,
			s.Department,
			r.Note,
			strings.Join(r.Tags, "|"),
			formatTimestamp(r.CreatedAt),
			formatTimestamp(r.UpdatedAt),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func formatTimestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}
