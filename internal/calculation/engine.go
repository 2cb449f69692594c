package calculation

import (
	"fmt"

	"github.com/ottrack/ot-calculator/internal/domain"
)

// Logger is the minimal logging surface the engine uses. The default is a
// no-op; the CLI installs a real logger in debug mode.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// NopLogger discards all log output.
type NopLogger struct{}

func (NopLogger) Debugf(string, ...any) {}
func (NopLogger) Infof(string, ...any)  {}
func (NopLogger) Warnf(string, ...any)  {}
func (NopLogger) Errorf(string, ...any) {}

// Period selects which pay cycle a summary or export covers.
type Period string

const (
	PeriodSalary Period = "salary"
	PeriodOT     Period = "ot"
)

// Engine orchestrates the pure calculation functions over a settings+records
// snapshot: annotating records with net hours, resolving cycles, and
// summarizing a cycle window.
type Engine struct {
	Logger Logger
	Debug  bool
}

// NewEngine creates an engine with a no-op logger.
func NewEngine() *Engine {
	return &Engine{Logger: NopLogger{}}
}

// SetLogger installs a logger; nil restores the no-op logger.
func (e *Engine) SetLogger(l Logger) {
	if l == nil {
		l = NopLogger{}
	}
	e.Logger = l
}

// AnnotateRecords returns a copy of the records with the derived Computed
// field refreshed from the given settings. The input slice is not modified.
func (e *Engine) AnnotateRecords(records []domain.DayRecord, settings domain.Settings) []domain.DayRecord {
	out := make([]domain.DayRecord, len(records))
	for i, r := range records {
		h := ComputeNetHours(r, settings)
		r.Computed = &h
		out[i] = r
	}
	return out
}

// SummarizePeriod resolves the cycle window for a selected month and period
// kind and aggregates the records that fall inside it.
func (e *Engine) SummarizePeriod(records []domain.DayRecord, settings domain.Settings, month string, period Period) (domain.CycleContext, domain.RangeSummary, error) {
	cycles := ResolveCycles(settings, month)

	var ctx domain.CycleContext
	switch period {
	case PeriodSalary, "":
		ctx = cycles.Salary
	case PeriodOT:
		ctx = cycles.OT
	default:
		return domain.CycleContext{}, domain.RangeSummary{}, fmt.Errorf("unknown period %q (expected salary or ot)", period)
	}

	e.Logger.Debugf("summarizing %s period %s: %s .. %s (pay %s)",
		period, month, ctx.Range.DateFrom, ctx.Range.DateToExclusive, ctx.PayDate)

	summary := ComputeRangeSummary(records, settings, ctx.Range.DateFrom, ctx.Range.DateToExclusive)
	return ctx, summary, nil
}
