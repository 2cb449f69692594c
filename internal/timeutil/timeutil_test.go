package timeutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantOK  bool
	}{
		{"midnight", "00:00", 0, true},
		{"morning", "08:00", 480, true},
		{"single digit hour", "8:30", 510, true},
		{"last minute", "23:59", 1439, true},
		{"whitespace tolerated", " 17:00 ", 1020, true},
		{"hour out of range", "24:00", 0, false},
		{"minute out of range", "12:60", 0, false},
		{"empty", "", 0, false},
		{"garbage", "soon", 0, false},
		{"missing minutes", "12:", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseTimeOfDay(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestNormalizeRange(t *testing.T) {
	t.Run("same day window", func(t *testing.T) {
		r := NormalizeRange("08:00", "17:00")
		require.NotNil(t, r)
		assert.Equal(t, 480, r.Start)
		assert.Equal(t, 1020, r.End)
		assert.Equal(t, 540, Duration(r))
	})

	t.Run("cross midnight shifts end by a day", func(t *testing.T) {
		r := NormalizeRange("20:00", "05:00")
		require.NotNil(t, r)
		assert.Equal(t, 1200, r.Start)
		assert.Equal(t, 1740, r.End)
		assert.Equal(t, 540, Duration(r))
	})

	t.Run("equal endpoints are zero length, not 24h", func(t *testing.T) {
		r := NormalizeRange("08:00", "08:00")
		require.NotNil(t, r)
		assert.Equal(t, 0, Duration(r))
	})

	t.Run("either side unparseable means unset", func(t *testing.T) {
		assert.Nil(t, NormalizeRange("", "17:00"))
		assert.Nil(t, NormalizeRange("08:00", ""))
		assert.Nil(t, NormalizeRange("late", "17:00"))
	})

	t.Run("nil range has zero duration", func(t *testing.T) {
		assert.Equal(t, 0, Duration(nil))
	})
}

func TestNormalizeDateStr(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"strict iso passes", "2026-02-07", "2026-02-07"},
		{"loose iso zero padded", "2026-2-7", "2026-02-07"},
		{"thai day first", "07/02/2026", "2026-02-07"},
		{"thai day first unpadded", "7/2/2026", "2026-02-07"},
		{"whitespace trimmed", " 2026-02-07 ", "2026-02-07"},
		{"empty stays empty", "", ""},
		{"unknown passes through", "Feb 7", "Feb 7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeDateStr(tt.input))
		})
	}
}

func TestDateKey(t *testing.T) {
	key, ok := DateKey("2026-02-07")
	require.True(t, ok)
	assert.Equal(t, 20260207, key)

	key, ok = DateKey("7/2/2026")
	require.True(t, ok)
	assert.Equal(t, 20260207, key)

	_, ok = DateKey("not a date")
	assert.False(t, ok)

	// Keys must order the same way the calendar does.
	early, _ := DateKey("2025-12-31")
	late, _ := DateKey("2026-01-01")
	assert.Less(t, early, late)
}

func TestFormatThaiDate(t *testing.T) {
	assert.Equal(t, "07/02/2026", FormatThaiDate("2026-02-07"))
	assert.Equal(t, "07/02/2026", FormatThaiDate("2026-2-7"))
	assert.Equal(t, "whenever", FormatThaiDate("whenever"))
}

func TestPrevDate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"mid month", "2026-02-15", "2026-02-14"},
		{"month boundary", "2026-03-01", "2026-02-28"},
		{"leap february boundary", "2028-03-01", "2028-02-29"},
		{"year boundary", "2026-01-01", "2025-12-31"},
		{"unparseable passthrough", "???", "???"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PrevDate(tt.input))
		})
	}
}

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 31, DaysInMonth(2026, 1))
	assert.Equal(t, 28, DaysInMonth(2026, 2))
	assert.Equal(t, 29, DaysInMonth(2028, 2))
	assert.Equal(t, 30, DaysInMonth(2026, 4))
}

func TestClampDay(t *testing.T) {
	assert.Equal(t, 1, ClampDay(2026, 2, 0))
	assert.Equal(t, 15, ClampDay(2026, 2, 15))
	assert.Equal(t, 28, ClampDay(2026, 2, 31))
	assert.Equal(t, 29, ClampDay(2028, 2, 31))
}

func TestShiftMonth(t *testing.T) {
	assert.Equal(t, "2026-01", ShiftMonth("2026-02", -1))
	assert.Equal(t, "2025-12", ShiftMonth("2026-01", -1))
	assert.Equal(t, "2026-03", ShiftMonth("2026-02", 1))
	assert.Equal(t, "2027-01", ShiftMonth("2026-12", 1))
	assert.Equal(t, "2025-02", ShiftMonth("2026-02", -12))

	// Unparseable input falls back to the current month.
	assert.Equal(t, DefaultMonthValue(), ShiftMonth("junk", -1))
}
