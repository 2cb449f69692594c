// Package interval normalizes break intervals and computes their overlap with
// work and overtime windows.
package interval

import (
	"sort"

	"github.com/ottrack/ot-calculator/internal/domain"
	"github.com/ottrack/ot-calculator/internal/timeutil"
)

// NormalizeBreaks parses a record's break spans into sorted, disjoint minute
// intervals. Entries that fail to parse or collapse to zero length are
// dropped; the cross-midnight rule matches work/OT range normalization.
func NormalizeBreaks(breaks []domain.BreakSpan) []timeutil.MinuteRange {
	out := make([]timeutil.MinuteRange, 0, len(breaks))
	for _, b := range breaks {
		r := timeutil.NormalizeRange(b.Start, b.End)
		if r == nil || r.End == r.Start {
			continue
		}
		out = append(out, *r)
	}
	return Merge(out)
}

// Merge sorts intervals by start then end and merges overlapping or touching
// ones. The input slice is not modified.
func Merge(intervals []timeutil.MinuteRange) []timeutil.MinuteRange {
	sorted := append([]timeutil.MinuteRange(nil), intervals...)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Start != sorted[j].Start {
			return sorted[i].Start < sorted[j].Start
		}
		return sorted[i].End < sorted[j].End
	})

	merged := sorted[:0]
	for _, iv := range sorted {
		if len(merged) > 0 && iv.Start <= merged[len(merged)-1].End {
			if iv.End > merged[len(merged)-1].End {
				merged[len(merged)-1].End = iv.End
			}
			continue
		}
		merged = append(merged, iv)
	}
	return merged
}

// OverlapMinutes sums the overlap between a set of intervals and a range.
// Callers pass intervals already normalized by NormalizeBreaks; a nil range
// contributes zero.
func OverlapMinutes(intervals []timeutil.MinuteRange, r *timeutil.MinuteRange) int {
	if r == nil {
		return 0
	}
	sum := 0
	for _, iv := range intervals {
		lo := iv.Start
		if r.Start > lo {
			lo = r.Start
		}
		hi := iv.End
		if r.End < hi {
			hi = r.End
		}
		if hi > lo {
			sum += hi - lo
		}
	}
	return sum
}
