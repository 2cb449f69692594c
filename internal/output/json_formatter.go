package output

import (
	"encoding/json"
)

// JSONFormatter emits the full report as indented JSON. With the privacy
// flag set, the money-bearing sections are withheld rather than emitted.
type JSONFormatter struct{}

func (JSONFormatter) Name() string { return "json" }

func (JSONFormatter) Format(report *Report) ([]byte, error) {
	if !report.HideMoney {
		return json.MarshalIndent(report, "", "  ")
	}

	// Time-only view: keep the hour and attendance data, drop money.
	type timeOnlyDay struct {
		Date       string `json:"date"`
		Attendance string `json:"attendance"`
		DayType    string `json:"dayType"`
		WorkHours  string `json:"workHoursNet"`
		OTHours    string `json:"otHoursNet"`
	}
	days := make([]timeOnlyDay, len(report.Days))
	for i, d := range report.Days {
		days[i] = timeOnlyDay{
			Date:       d.Record.Date,
			Attendance: string(d.Record.Attendance.Normalized()),
			DayType:    string(d.Money.DayType),
			WorkHours:  d.Hours.WorkHoursNet.StringFixed(2),
			OTHours:    d.Hours.OTHoursNet.StringFixed(2),
		}
	}
	masked := struct {
		GeneratedAt  string        `json:"generatedAt"`
		Month        string        `json:"month"`
		Period       string        `json:"period"`
		Cycle        any           `json:"cycle"`
		PreviousOT   any           `json:"previousOt"`
		DaysPresent  int           `json:"daysPresent"`
		DaysOff      int           `json:"daysOff"`
		DaysPersonal int           `json:"daysPersonal"`
		DaysSick     int           `json:"daysSick"`
		DaysPaid     int           `json:"daysPaid"`
		WorkHours    string        `json:"workHours"`
		OTHours      string        `json:"otHours"`
		Days         []timeOnlyDay `json:"days"`
	}{
		GeneratedAt:  report.GeneratedAt.Format("2006-01-02T15:04:05Z07:00"),
		Month:        report.Month,
		Period:       string(report.Period),
		Cycle:        report.Cycle,
		PreviousOT:   report.PreviousOT,
		DaysPresent:  report.Summary.DaysPresent,
		DaysOff:      report.Summary.DaysOff,
		DaysPersonal: report.Summary.DaysPersonal,
		DaysSick:     report.Summary.DaysSick,
		DaysPaid:     report.Summary.DaysPaid,
		WorkHours:    report.Summary.WorkHours.StringFixed(2),
		OTHours:      report.Summary.OTHours.StringFixed(2),
		Days:         days,
	}
	return json.MarshalIndent(masked, "", "  ")
}
