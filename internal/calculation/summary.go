package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/ottrack/ot-calculator/internal/domain"
	"github.com/ottrack/ot-calculator/internal/timeutil"
)

// ComputeRangeSummary aggregates the records whose date falls inside the
// half-open [dateFrom, dateToExclusive) window. Dates are compared through
// their integer keys so mixed input formats filter correctly. The configured
// monthly allowance and deduction constants are added once, after the per-day
// sums.
func ComputeRangeSummary(records []domain.DayRecord, settings domain.Settings, dateFrom, dateToExclusive string) domain.RangeSummary {
	fromKey, okFrom := timeutil.DateKey(dateFrom)
	toKey, okTo := timeutil.DateKey(dateToExclusive)
	if !okFrom {
		fromKey = 0
	}
	if !okTo {
		toKey = 99999999
	}

	s := domain.RangeSummary{
		Rates:           DeriveRates(settings),
		DateFrom:        dateFrom,
		DateToExclusive: dateToExclusive,
	}

	workHours := decimal.Zero
	otHours := decimal.Zero
	normalPay := decimal.Zero
	otPay := decimal.Zero
	meal := decimal.Zero
	shift := decimal.Zero
	manual := decimal.Zero
	deductions := decimal.Zero
	gross := decimal.Zero

	for _, r := range records {
		key, ok := timeutil.DateKey(r.Date)
		if !ok || key < fromKey || key >= toKey {
			continue
		}

		switch r.Attendance.Normalized() {
		case domain.AttendanceOff:
			s.DaysOff++
		case domain.AttendancePersonal:
			s.DaysPersonal++
		case domain.AttendanceSick:
			s.DaysSick++
		default:
			s.DaysPresent++
		}

		hours := r.Computed
		if hours == nil {
			h := ComputeNetHours(r, settings)
			hours = &h
		}
		workHours = workHours.Add(hours.WorkHoursNet)
		otHours = otHours.Add(hours.OTHoursNet)

		m := ComputeDayMoney(r, settings)
		normalPay = normalPay.Add(m.NormalPay)
		otPay = otPay.Add(m.OTPay)
		meal = meal.Add(m.MealAllowance)
		shift = shift.Add(m.ShiftAllowance)
		manual = manual.Add(m.ManualAllowance)
		deductions = deductions.Add(m.DeductionsDay)
		gross = gross.Add(m.GrossDay)
	}

	s.DaysPaid = s.DaysPresent + s.DaysPersonal + s.DaysSick

	s.WorkHours = workHours.Round(2)
	s.OTHours = otHours.Round(2)
	s.NormalPay = normalPay.Round(2)
	s.OTPay = otPay.Round(2)
	s.MealAllowances = meal.Round(2)
	s.ShiftAllowances = shift.Round(2)
	s.ManualAllowances = manual.Round(2)

	dayAllowances := manual.Add(meal).Add(shift)
	s.Allowances = dayAllowances.Add(settings.AllowancesMonthly).Round(2)
	s.Deductions = deductions.Add(settings.DeductionsMonthly).Round(2)
	s.Gross = gross.Add(settings.AllowancesMonthly).Sub(settings.DeductionsMonthly).Round(2)

	return s
}
