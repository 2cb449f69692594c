package interval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ottrack/ot-calculator/internal/domain"
	"github.com/ottrack/ot-calculator/internal/timeutil"
)

func TestNormalizeBreaks(t *testing.T) {
	t.Run("drops malformed and zero length entries", func(t *testing.T) {
		got := NormalizeBreaks([]domain.BreakSpan{
			{Start: "11:30", End: "12:00"},
			{Start: "bad", End: "12:00"},
			{Start: "13:00", End: "13:00"},
			{Start: "", End: ""},
		})
		require.Len(t, got, 1)
		assert.Equal(t, timeutil.MinuteRange{Start: 690, End: 720}, got[0])
	})

	t.Run("sorts and merges touching spans", func(t *testing.T) {
		got := NormalizeBreaks([]domain.BreakSpan{
			{Start: "12:00", End: "12:30"},
			{Start: "11:30", End: "12:00"},
			{Start: "15:00", End: "15:15"},
		})
		require.Len(t, got, 2)
		assert.Equal(t, timeutil.MinuteRange{Start: 690, End: 750}, got[0])
		assert.Equal(t, timeutil.MinuteRange{Start: 900, End: 915}, got[1])
	})

	t.Run("cross midnight break", func(t *testing.T) {
		got := NormalizeBreaks([]domain.BreakSpan{{Start: "23:30", End: "00:30"}})
		require.Len(t, got, 1)
		assert.Equal(t, timeutil.MinuteRange{Start: 1410, End: 1470}, got[0])
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, NormalizeBreaks(nil))
	})
}

func TestMerge(t *testing.T) {
	tests := []struct {
		name  string
		input []timeutil.MinuteRange
		want  []timeutil.MinuteRange
	}{
		{
			"overlapping pair collapses",
			[]timeutil.MinuteRange{{Start: 100, End: 200}, {Start: 150, End: 250}},
			[]timeutil.MinuteRange{{Start: 100, End: 250}},
		},
		{
			"touching endpoints merge",
			[]timeutil.MinuteRange{{Start: 100, End: 200}, {Start: 200, End: 300}},
			[]timeutil.MinuteRange{{Start: 100, End: 300}},
		},
		{
			"disjoint stay separate",
			[]timeutil.MinuteRange{{Start: 300, End: 400}, {Start: 100, End: 200}},
			[]timeutil.MinuteRange{{Start: 100, End: 200}, {Start: 300, End: 400}},
		},
		{
			"contained interval absorbed",
			[]timeutil.MinuteRange{{Start: 100, End: 400}, {Start: 150, End: 200}},
			[]timeutil.MinuteRange{{Start: 100, End: 400}},
		},
		{
			"empty",
			nil,
			nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Merge(tt.input)
			assert.Equal(t, len(tt.want), len(got))
			for i := range tt.want {
				assert.Equal(t, tt.want[i], got[i])
			}
		})
	}
}

func TestMergeDoesNotModifyInput(t *testing.T) {
	input := []timeutil.MinuteRange{{Start: 300, End: 400}, {Start: 100, End: 200}}
	Merge(input)
	assert.Equal(t, timeutil.MinuteRange{Start: 300, End: 400}, input[0])
}

func TestOverlapMinutes(t *testing.T) {
	breaks := []timeutil.MinuteRange{
		{Start: 690, End: 720},  // 11:30-12:00
		{Start: 1020, End: 1050}, // 17:00-17:30
	}

	tests := []struct {
		name string
		r    *timeutil.MinuteRange
		want int
	}{
		{"nil range", nil, 0},
		{"work window covers first break only", &timeutil.MinuteRange{Start: 480, End: 1020}, 30},
		{"ot window covers second break only", &timeutil.MinuteRange{Start: 1020, End: 1200}, 30},
		{"full day covers both", &timeutil.MinuteRange{Start: 0, End: 1440}, 60},
		{"no intersection", &timeutil.MinuteRange{Start: 0, End: 400}, 0},
		{"partial intersection clipped", &timeutil.MinuteRange{Start: 700, End: 710}, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, OverlapMinutes(breaks, tt.r))
		})
	}
}
