package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ottrack/ot-calculator/internal/timeutil"
)

// ConsoleFormatter renders the cycle summary and daily detail as plain text.
type ConsoleFormatter struct{}

func (ConsoleFormatter) Name() string { return "console" }

func (ConsoleFormatter) Format(report *Report) ([]byte, error) {
	var buf bytes.Buffer
	hide := report.HideMoney
	s := report.Summary

	fmt.Fprintln(&buf, strings.Repeat("=", 78))
	fmt.Fprintf(&buf, "OVERTIME / ATTENDANCE SUMMARY - %s %s\n", PeriodLabel(report.Period), report.Month)
	fmt.Fprintln(&buf, strings.Repeat("=", 78))
	fmt.Fprintf(&buf, "Range:    %s\n", rangeLabel(report.Cycle.Range))
	fmt.Fprintf(&buf, "Pay date: %s\n", timeutil.FormatThaiDate(report.Cycle.PayDate))
	fmt.Fprintf(&buf, "Previous OT cycle (carryover check): %s, pay %s\n",
		rangeLabel(report.PreviousOT.Range), timeutil.FormatThaiDate(report.PreviousOT.PayDate))
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "ATTENDANCE")
	fmt.Fprintf(&buf, "  Present %d   Off %d   Personal %d   Sick %d   (paid days %d)\n",
		s.DaysPresent, s.DaysOff, s.DaysPersonal, s.DaysSick, s.DaysPaid)
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "HOURS")
	fmt.Fprintf(&buf, "  Work %s h   OT %s h\n", s.WorkHours.StringFixed(2), s.OTHours.StringFixed(2))
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "MONEY")
	fmt.Fprintf(&buf, "  Rates:          daily %s, hourly %s (base %s / %s days / %s h)\n",
		FormatMoney(s.Rates.DailyRate, hide), FormatMoney(s.Rates.HourlyRate, hide),
		FormatMoney(s.Rates.BaseSalary, hide), s.Rates.WorkingDaysPerMonth.String(), s.Rates.StandardHoursPerDay.String())
	fmt.Fprintf(&buf, "  Normal pay:     %s\n", FormatMoney(s.NormalPay, hide))
	fmt.Fprintf(&buf, "  OT pay:         %s\n", FormatMoney(s.OTPay, hide))
	fmt.Fprintf(&buf, "  Allowances:     %s (meal %s, shift %s, manual %s)\n",
		FormatMoney(s.Allowances, hide), FormatMoney(s.MealAllowances, hide),
		FormatMoney(s.ShiftAllowances, hide), FormatMoney(s.ManualAllowances, hide))
	fmt.Fprintf(&buf, "  Deductions:     %s\n", FormatMoney(s.Deductions, hide))
	fmt.Fprintf(&buf, "  Gross:          %s\n", FormatMoney(s.Gross, hide))
	fmt.Fprintln(&buf)

	if len(report.Days) > 0 {
		fmt.Fprintln(&buf, "DAILY DETAIL")
		fmt.Fprintf(&buf, "  %-12s %-10s %-8s %8s %8s %10s %10s %10s\n",
			"Date", "Attend", "Type", "Work h", "OT h", "Normal", "OT pay", "Gross")
		fmt.Fprintln(&buf, "  "+strings.Repeat("-", 76))
		for _, d := range report.Days {
			fmt.Fprintf(&buf, "  %-12s %-10s %-8s %8s %8s %10s %10s %10s\n",
				d.Record.Date,
				string(d.Record.Attendance.Normalized()),
				string(d.Money.DayType),
				d.Hours.WorkHoursNet.StringFixed(2),
				d.Hours.OTHoursNet.StringFixed(2),
				FormatMoney(d.Money.NormalPay, hide),
				FormatMoney(d.Money.OTPay, hide),
				FormatMoney(d.Money.GrossDay, hide))
		}
	}

	return buf.Bytes(), nil
}
