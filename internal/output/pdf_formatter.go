package output

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

// PDFFormatter renders the printable report as an A4 PDF. Labels are kept in
// English because the built-in PDF fonts carry no Thai glyphs.
type PDFFormatter struct{}

func (PDFFormatter) Name() string { return "pdf" }

func (PDFFormatter) Format(report *Report) ([]byte, error) {
	hide := report.HideMoney
	s := report.Summary

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Overtime / Attendance Report")
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 7, fmt.Sprintf("%s %s", PeriodLabel(report.Period), report.Month))
	pdf.Ln(6)
	pdf.Cell(0, 7, fmt.Sprintf("Range: %s    Pay date: %s", rangeLabel(report.Cycle.Range), report.PayDateLabel()))
	pdf.Ln(6)
	pdf.Cell(0, 7, fmt.Sprintf("Previous OT cycle: %s", rangeLabel(report.PreviousOT.Range)))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Summary")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Present %d   Off %d   Personal %d   Sick %d   Paid days %d",
		s.DaysPresent, s.DaysOff, s.DaysPersonal, s.DaysSick, s.DaysPaid))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Work %s h   OT %s h", s.WorkHours.StringFixed(2), s.OTHours.StringFixed(2)))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Normal pay %s   OT pay %s   Allowances %s   Deductions %s   Gross %s",
		FormatMoney(s.NormalPay, hide), FormatMoney(s.OTPay, hide),
		FormatMoney(s.Allowances, hide), FormatMoney(s.Deductions, hide),
		FormatMoney(s.Gross, hide)))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Daily detail")
	pdf.Ln(8)

	widths := []float64{24, 22, 18, 16, 16, 22, 22, 22, 28}
	headers := []string{"Date", "Attend", "Type", "Work h", "OT h", "Normal", "OT pay", "Deduct", "Gross"}
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(242, 242, 242)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for _, d := range report.Days {
		cells := []string{
			d.Record.Date,
			string(d.Record.Attendance.Normalized()),
			string(d.Money.DayType),
			d.Hours.WorkHoursNet.StringFixed(2),
			d.Hours.OTHoursNet.StringFixed(2),
			FormatMoney(d.Money.NormalPay, hide),
			FormatMoney(d.Money.OTPay, hide),
			FormatMoney(d.Money.DeductionsDay, hide),
			FormatMoney(d.Money.GrossDay, hide),
		}
		for i, c := range cells {
			align := "L"
			if i >= 3 {
				align = "R"
			}
			pdf.CellFormat(widths[i], 6, c, "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
