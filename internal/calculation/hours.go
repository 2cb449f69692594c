// Package calculation implements the payroll engine: net hour computation,
// per-day money derivation, range aggregation, and pay-cycle resolution. All
// functions are pure; settings and records are taken as input snapshots and
// never mutated.
package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/ottrack/ot-calculator/internal/domain"
	"github.com/ottrack/ot-calculator/internal/interval"
	"github.com/ottrack/ot-calculator/internal/timeutil"
)

var sixty = decimal.NewFromInt(60)

func minutesToHours(min int) decimal.Decimal {
	return decimal.NewFromInt(int64(min)).Div(sixty).Round(2)
}

// ComputeNetHours derives the net worked and overtime time for one day.
//
// Attendance drives everything:
//   - off: all zero, regardless of any populated time fields
//   - personal/sick: work credited at standardHoursPerDay, OT forced to zero
//   - present (and any unrecognized tag): work and OT windows measured
//     independently, each reduced by its overlap with the merged break set
//     and clamped at zero
//
// Work and OT windows may overlap in wall-clock time; no cross-range
// correction is applied since OT is additional paid time.
func ComputeNetHours(record domain.DayRecord, settings domain.Settings) domain.NetHours {
	switch record.Attendance.Normalized() {
	case domain.AttendanceOff:
		return domain.NetHours{
			WorkHoursNet:  decimal.Zero,
			OTHoursNet:    decimal.Zero,
			TotalHoursNet: decimal.Zero,
		}

	case domain.AttendancePersonal, domain.AttendanceSick:
		std := settings.StandardHoursPerDay
		if std.LessThanOrEqual(decimal.Zero) {
			std = decimal.NewFromInt(8)
		}
		workMin := int(std.Mul(sixty).Round(0).IntPart())
		if workMin < 0 {
			workMin = 0
		}
		h := minutesToHours(workMin)
		return domain.NetHours{
			WorkMinutesNet:  workMin,
			TotalMinutesNet: workMin,
			WorkHoursNet:    h,
			OTHoursNet:      decimal.Zero,
			TotalHoursNet:   h,
		}
	}

	breaks := interval.NormalizeBreaks(record.Breaks)
	workRange := timeutil.NormalizeRange(record.WorkStart, record.WorkEnd)
	otRange := timeutil.NormalizeRange(record.OTStart, record.OTEnd)

	workNet := timeutil.Duration(workRange) - interval.OverlapMinutes(breaks, workRange)
	otNet := timeutil.Duration(otRange) - interval.OverlapMinutes(breaks, otRange)
	if workNet < 0 {
		workNet = 0
	}
	if otNet < 0 {
		otNet = 0
	}

	return domain.NetHours{
		WorkMinutesNet:  workNet,
		OTMinutesNet:    otNet,
		TotalMinutesNet: workNet + otNet,
		WorkHoursNet:    minutesToHours(workNet),
		OTHoursNet:      minutesToHours(otNet),
		TotalHoursNet:   minutesToHours(workNet + otNet),
	}
}
