// Package timeutil implements the time and date arithmetic underneath the
// payroll engine: HH:MM parsing, minute-of-day ranges with cross-midnight
// normalization, date keys, and calendar month / pay-cycle range building.
//
// Everything here is pure and calendar-correct (no fixed 30/31-day
// assumptions). Malformed user input degrades to "unset" or to the current
// month instead of erroring, since it originates from hand-entered data.
package timeutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const minutesPerDay = 24 * 60

var (
	hhmmRe     = regexp.MustCompile(`^([01]?\d|2[0-3]):([0-5]\d)$`)
	isoDateRe  = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`)
	looseISORe = regexp.MustCompile(`^(\d{4})-(\d{1,2})-(\d{1,2})$`)
	dmyRe      = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})$`)
)

// ParseTimeOfDay parses "H:MM" or "HH:MM" into minutes since midnight.
// Any other shape means "no time entered", not an error.
func ParseTimeOfDay(s string) (int, bool) {
	m := hhmmRe.FindStringSubmatch(trim(s))
	if m == nil {
		return 0, false
	}
	h := atoi(m[1])
	mm := atoi(m[2])
	return h*60 + mm, true
}

// MinuteRange is a [Start, End) window in minutes since midnight. End may
// exceed 1440 for ranges that cross midnight.
type MinuteRange struct {
	Start int
	End   int
}

// NormalizeRange parses a start/end pair into a minute range. A nil result
// means either side did not parse. When the end is before the start the range
// is treated as crossing midnight and the end is shifted by 24 hours.
func NormalizeRange(start, end string) *MinuteRange {
	s, okS := ParseTimeOfDay(start)
	e, okE := ParseTimeOfDay(end)
	if !okS || !okE {
		return nil
	}
	if e < s {
		e += minutesPerDay
	}
	return &MinuteRange{Start: s, End: e}
}

// Duration returns the length of a range in minutes; 0 for nil.
func Duration(r *MinuteRange) int {
	if r == nil {
		return 0
	}
	if r.End < r.Start {
		return 0
	}
	return r.End - r.Start
}

// NormalizeDateStr normalizes a date string into zero-padded YYYY-MM-DD when
// possible. Accepts strict and unpadded ISO plus DD/MM/YYYY; anything else is
// returned as-is (best-effort passthrough).
func NormalizeDateStr(s string) string {
	v := trim(s)
	if v == "" {
		return ""
	}
	if isoDateRe.MatchString(v) {
		return v
	}
	if m := looseISORe.FindStringSubmatch(v); m != nil {
		return fmt.Sprintf("%s-%02d-%02d", m[1], atoi(m[2]), atoi(m[3]))
	}
	if m := dmyRe.FindStringSubmatch(v); m != nil {
		return fmt.Sprintf("%s-%02d-%02d", m[3], atoi(m[2]), atoi(m[1]))
	}
	return v
}

// DateKey encodes a date as a single comparable integer Y*10000+M*100+D.
// Range filtering uses it instead of raw string comparison so mixed date
// formats still order correctly.
func DateKey(s string) (int, bool) {
	m := isoDateRe.FindStringSubmatch(NormalizeDateStr(s))
	if m == nil {
		return 0, false
	}
	return atoi(m[1])*10000 + atoi(m[2])*100 + atoi(m[3]), true
}

// FormatDateStr formats a time as a local YYYY-MM-DD string.
func FormatDateStr(t time.Time) string {
	return t.Format("2006-01-02")
}

// FormatThaiDate renders an ISO date as DD/MM/YYYY for report surfaces.
// Unparseable input passes through unchanged.
func FormatThaiDate(s string) string {
	m := isoDateRe.FindStringSubmatch(NormalizeDateStr(s))
	if m == nil {
		return s
	}
	return m[3] + "/" + m[2] + "/" + m[1]
}

// PrevDate returns the day before the given ISO date. Used to turn an
// exclusive range end into the inclusive last day. Unparseable input passes
// through unchanged.
func PrevDate(s string) string {
	m := isoDateRe.FindStringSubmatch(NormalizeDateStr(s))
	if m == nil {
		return s
	}
	t := time.Date(atoi(m[1]), time.Month(atoi(m[2])), atoi(m[3])-1, 0, 0, 0, 0, time.Local)
	return FormatDateStr(t)
}

// DaysInMonth returns the day count of a calendar month (m is 1-12).
func DaysInMonth(y, m int) int {
	return time.Date(y, time.Month(m)+1, 0, 0, 0, 0, 0, time.Local).Day()
}

// ClampDay clamps a day-of-month into the valid range for its month.
func ClampDay(y, m, day int) int {
	dim := DaysInMonth(y, m)
	if day < 1 {
		return 1
	}
	if day > dim {
		return dim
	}
	return day
}

// DefaultMonthValue returns the current system month as YYYY-MM.
func DefaultMonthValue() string {
	return time.Now().Format("2006-01")
}

// ShiftMonth moves a YYYY-MM value by delta months. An unparseable value
// falls back to the current month.
func ShiftMonth(yyyyMM string, delta int) string {
	y, m, ok := parseMonth(yyyyMM)
	if !ok {
		return DefaultMonthValue()
	}
	t := time.Date(y, time.Month(m+delta), 1, 0, 0, 0, 0, time.Local)
	return t.Format("2006-01")
}

func parseMonth(yyyyMM string) (int, int, bool) {
	var y, m int
	if _, err := fmt.Sscanf(trim(yyyyMM), "%d-%d", &y, &m); err != nil {
		return 0, 0, false
	}
	if y <= 0 || m < 1 || m > 12 {
		return 0, 0, false
	}
	return y, m, true
}

// atoi is only ever called on regexp-validated digit runs.
func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

func trim(s string) string { return strings.TrimSpace(s) }
