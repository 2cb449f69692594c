package calculation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ottrack/ot-calculator/internal/domain"
)

func TestNewEngineHasNopLogger(t *testing.T) {
	engine := NewEngine()
	require.NotNil(t, engine.Logger)

	engine.SetLogger(nil)
	require.NotNil(t, engine.Logger)
	engine.Logger.Debugf("must not panic")
}

func TestAnnotateRecords(t *testing.T) {
	engine := NewEngine()
	settings := domain.DefaultSettings()

	records := []domain.DayRecord{
		{
			Date:       "2026-02-02",
			Attendance: domain.AttendancePresent,
			WorkStart:  "08:00",
			WorkEnd:    "16:00",
		},
	}

	annotated := engine.AnnotateRecords(records, settings)
	require.Len(t, annotated, 1)
	require.NotNil(t, annotated[0].Computed)
	assert.Equal(t, 480, annotated[0].Computed.WorkMinutesNet)

	// The input slice is left untouched.
	assert.Nil(t, records[0].Computed)
}

func TestSummarizePeriod(t *testing.T) {
	engine := NewEngine()
	settings := domain.DefaultSettings()
	settings.MealAllowanceEnabled = false
	settings.ShiftAllowanceEnabled = false

	records := []domain.DayRecord{
		// Inside the salary cycle for February but outside the OT cycle
		// (which runs 2026-01-21 through 2026-02-20).
		{Date: "2026-02-25", Attendance: domain.AttendancePresent, WorkStart: "08:00", WorkEnd: "16:00"},
		// Inside both windows.
		{Date: "2026-02-10", Attendance: domain.AttendancePresent, WorkStart: "08:00", WorkEnd: "16:00"},
	}

	t.Run("salary period", func(t *testing.T) {
		ctx, summary, err := engine.SummarizePeriod(records, settings, "2026-02", PeriodSalary)
		require.NoError(t, err)
		assert.Equal(t, "2026-02-01", ctx.Range.DateFrom)
		assert.Equal(t, 2, summary.DaysPresent)
	})

	t.Run("empty period means salary", func(t *testing.T) {
		ctx, _, err := engine.SummarizePeriod(records, settings, "2026-02", "")
		require.NoError(t, err)
		assert.Equal(t, "2026-02-01", ctx.Range.DateFrom)
	})

	t.Run("ot period filters to the ot window", func(t *testing.T) {
		ctx, summary, err := engine.SummarizePeriod(records, settings, "2026-02", PeriodOT)
		require.NoError(t, err)
		assert.Equal(t, "2026-01-21", ctx.Range.DateFrom)
		assert.Equal(t, 1, summary.DaysPresent)
	})

	t.Run("unknown period errs", func(t *testing.T) {
		_, _, err := engine.SummarizePeriod(records, settings, "2026-02", Period("weekly"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown period")
	})
}
