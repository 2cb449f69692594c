package calculation

import (
	"github.com/ottrack/ot-calculator/internal/domain"
	"github.com/ottrack/ot-calculator/internal/timeutil"
)

// ResolveCycles turns a selected YYYY-MM plus the cycle settings into the
// salary and OT cycle contexts, and the previous OT cycle used for carryover
// checks. An unparseable month falls back to the current system month inside
// the range builders, never errs.
func ResolveCycles(settings domain.Settings, month string) domain.CycleSet {
	anchor := settings.CycleMonthAnchor
	if anchor == "" {
		anchor = domain.AnchorEnd
	}

	salaryStart := settings.SalaryCycleStartDay
	if salaryStart < 1 {
		salaryStart = 1
	}
	salaryEnd := resolveEndDay(settings.SalaryCycleEndDay, salaryStart)

	salaryRange := timeutil.CycleRangeByAnchor(month, salaryStart, salaryEnd, anchor)
	salaryPayType := settings.SalaryPayType
	if salaryPayType == "" {
		salaryPayType = domain.PayAtCycleEnd
	}
	salaryPay := timeutil.PayDateFromRange(salaryRange, salaryPayType, settings.SalaryPayDay)

	otStart, otEnd := otCycleDays(settings, salaryStart, salaryEnd)

	otRange := timeutil.CycleRangeByAnchor(month, otStart, otEnd, anchor)
	otPay := otPayDate(settings, otRange, salaryPay)

	prevMonth := timeutil.ShiftMonth(month, -1)
	prevRange := timeutil.CycleRangeByAnchor(prevMonth, otStart, otEnd, anchor)
	prevPay := otPayDate(settings, prevRange, timeutil.PayDateFromRange(
		timeutil.CycleRangeByAnchor(prevMonth, salaryStart, salaryEnd, anchor),
		salaryPayType, settings.SalaryPayDay,
	))

	return domain.CycleSet{
		Month:      month,
		Salary:     domain.CycleContext{Range: salaryRange, PayDate: salaryPay},
		OT:         domain.CycleContext{Range: otRange, PayDate: otPay},
		PreviousOT: domain.CycleContext{Range: prevRange, PayDate: prevPay},
	}
}

func otCycleDays(settings domain.Settings, salaryStart, salaryEnd int) (int, int) {
	if settings.OTCycleMode == domain.OTCycleSameAsSalary {
		return salaryStart, salaryEnd
	}
	start := settings.OTCycleStartDay
	if start < 1 {
		start = 21
	}
	return start, resolveEndDay(settings.OTCycleEndDay, start)
}

func otPayDate(settings domain.Settings, otRange domain.DateRange, salaryPay string) string {
	mode := settings.OTPayMode
	if mode == "" {
		mode = domain.OTPaySameAsSalary
	}
	if mode == domain.OTPaySameAsSalary {
		return salaryPay
	}
	payType := settings.OTPayType
	if payType == "" {
		payType = domain.PayAtFixedDay
	}
	payDay := settings.OTPayDay
	if payDay < 1 {
		payDay = 25
	}
	return timeutil.PayDateFromRange(otRange, payType, payDay)
}

// resolveEndDay applies the rolling-window default when the configured end
// day is unset.
func resolveEndDay(configured *int, startDay int) int {
	if configured == nil {
		return timeutil.DefaultCycleEndDay(startDay)
	}
	return *configured
}
