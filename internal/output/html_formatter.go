package output

import (
	"bytes"
	_ "embed"
	"html/template"

	"github.com/shopspring/decimal"

	"github.com/ottrack/ot-calculator/internal/timeutil"
)

// HTMLFormatter produces the printable HTML report.
type HTMLFormatter struct{}

func (HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Parse(htmlTemplateSource))

func (HTMLFormatter) Format(report *Report) ([]byte, error) {
	var buf bytes.Buffer
	if err := htmlTemplate.Execute(&buf, report); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Money renders a monetary value for templates, honoring the privacy flag.
func (r *Report) Money(v decimal.Decimal) string {
	return FormatMoney(v, r.HideMoney)
}

// Title is the report heading.
func (r *Report) Title() string {
	return PeriodLabel(r.Period) + " " + r.Month
}

// RangeLabel is the inclusive DD/MM/YYYY span of the report's cycle.
func (r *Report) RangeLabel() string { return rangeLabel(r.Cycle.Range) }

// PreviousRangeLabel is the inclusive span of the previous OT cycle.
func (r *Report) PreviousRangeLabel() string { return rangeLabel(r.PreviousOT.Range) }

// PayDateLabel is the cycle's pay date as DD/MM/YYYY.
func (r *Report) PayDateLabel() string { return timeutil.FormatThaiDate(r.Cycle.PayDate) }
