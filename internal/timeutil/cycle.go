package timeutil

import (
	"time"

	"github.com/ottrack/ot-calculator/internal/domain"
)

// MonthRange returns the half-open [first of month, first of next month)
// window for a YYYY-MM value. An unparseable value falls back to the current
// system month.
func MonthRange(yyyyMM string) domain.DateRange {
	y, m, ok := parseMonth(yyyyMM)
	if !ok {
		return MonthRange(DefaultMonthValue())
	}
	start := time.Date(y, time.Month(m), 1, 0, 0, 0, 0, time.Local)
	end := time.Date(y, time.Month(m)+1, 1, 0, 0, 0, 0, time.Local)
	return domain.DateRange{DateFrom: FormatDateStr(start), DateToExclusive: FormatDateStr(end)}
}

// DefaultCycleEndDay is the rolling-window default for an unset end day:
// end-of-month when the cycle starts on the 1st, otherwise the day before the
// start day.
func DefaultCycleEndDay(startDay int) int {
	if startDay <= 1 {
		return 0
	}
	return startDay - 1
}

// clampStartDay keeps cycle start days within 1-28 to dodge short-month edge
// cases.
func clampStartDay(d int) int {
	if d < 1 {
		return 1
	}
	if d > 28 {
		return 28
	}
	return d
}

func clampEndDay(d int) int {
	if d < 0 {
		return 0
	}
	if d > 31 {
		return 31
	}
	return d
}

// CycleRange computes the cycle window for a selected month treated as the
// cycle's first month. endDay 0 is the end-of-month sentinel; an end day
// smaller than the start day ends the cycle in the following month.
func CycleRange(yyyyMM string, startDay, endDay int) domain.DateRange {
	y, m, ok := parseMonth(yyyyMM)
	if !ok {
		return MonthRange(DefaultMonthValue())
	}
	sd := clampStartDay(startDay)
	ed := clampEndDay(endDay)

	// "1st to EOM" in any spelling is just the calendar month.
	if sd == 1 && (ed == 0 || ed >= 28) {
		return MonthRange(yyyyMM)
	}

	start := time.Date(y, time.Month(m), ClampDay(y, m, sd), 0, 0, 0, 0, time.Local)

	ey, em := y, m
	if ed != 0 && ed < sd {
		ey, em = nextMonth(y, m)
	}
	endInclusive := DaysInMonth(ey, em)
	if ed != 0 {
		endInclusive = ClampDay(ey, em, ed)
	}
	endExclusive := time.Date(ey, time.Month(em), endInclusive+1, 0, 0, 0, 0, time.Local)

	return domain.DateRange{DateFrom: FormatDateStr(start), DateToExclusive: FormatDateStr(endExclusive)}
}

// CycleRangeByEndMonth computes the cycle window for a selected month treated
// as the cycle's last (pay) month. With startDay=21, endDay=20 and month
// 2026-02 the window is 2026-01-21 through 2026-02-20 inclusive.
func CycleRangeByEndMonth(yyyyMM string, startDay, endDay int) domain.DateRange {
	y, m, ok := parseMonth(yyyyMM)
	if !ok {
		return MonthRange(DefaultMonthValue())
	}
	sd := clampStartDay(startDay)
	ed := clampEndDay(endDay)

	var endInclusive time.Time
	if ed == 0 {
		endInclusive = time.Date(y, time.Month(m)+1, 0, 0, 0, 0, 0, time.Local)
	} else {
		endInclusive = time.Date(y, time.Month(m), ClampDay(y, m, ed), 0, 0, 0, 0, time.Local)
	}

	sy, sm := y, m
	if ed != 0 && ed < sd {
		sy, sm = prevMonth(y, m)
	}
	start := time.Date(sy, time.Month(sm), ClampDay(sy, sm, sd), 0, 0, 0, 0, time.Local)
	endExclusive := endInclusive.AddDate(0, 0, 1)

	return domain.DateRange{DateFrom: FormatDateStr(start), DateToExclusive: FormatDateStr(endExclusive)}
}

// CycleRangeByAnchor selects between the two anchor semantics: the selected
// month is the cycle's first month for AnchorStart and its last month for
// AnchorEnd.
func CycleRangeByAnchor(yyyyMM string, startDay, endDay int, anchor domain.CycleAnchor) domain.DateRange {
	if anchor == domain.AnchorEnd {
		return CycleRangeByEndMonth(yyyyMM, startDay, endDay)
	}
	return CycleRange(yyyyMM, startDay, endDay)
}

// PayDateFromRange derives the pay date for a cycle window. The policy is
// applied to the cycle's inclusive last day: pay on that day, on the last day
// of its month, or on a fixed day-of-month clamped into that month.
func PayDateFromRange(r domain.DateRange, payType domain.PayDateType, payDay int) string {
	endInclusive := PrevDate(r.DateToExclusive)
	m := isoDateRe.FindStringSubmatch(NormalizeDateStr(endInclusive))
	if m == nil {
		return endInclusive
	}
	y, mo := atoi(m[1]), atoi(m[2])

	switch payType {
	case domain.PayAtMonthEnd:
		return FormatDateStr(time.Date(y, time.Month(mo), DaysInMonth(y, mo), 0, 0, 0, 0, time.Local))
	case domain.PayAtFixedDay:
		day := payDay
		if day < 1 {
			day = 1
		}
		return FormatDateStr(time.Date(y, time.Month(mo), ClampDay(y, mo, day), 0, 0, 0, 0, time.Local))
	default:
		return endInclusive
	}
}

func nextMonth(y, m int) (int, int) {
	if m == 12 {
		return y + 1, 1
	}
	return y, m + 1
}

func prevMonth(y, m int) (int, int) {
	if m == 1 {
		return y - 1, 12
	}
	return y, m - 1
}
