package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/ottrack/ot-calculator/internal/domain"
)

var (
	defaultWorkingDays    = decimal.NewFromInt(30)
	defaultStandardHours  = decimal.NewFromInt(8)
	defaultWorkMultiplier = decimal.NewFromInt(1)
	defaultOTMultiplier   = decimal.NewFromFloat(1.5)
)

// DeriveRates turns the salary basis settings into daily and hourly rates.
// Non-positive divisors fall back to 30 working days and 8 hours for the
// derivation only; the configured setting is left as stored.
func DeriveRates(settings domain.Settings) domain.Rates {
	base := settings.BaseSalary
	wd := settings.WorkingDaysPerMonth
	if wd.LessThanOrEqual(decimal.Zero) {
		wd = defaultWorkingDays
	}
	sh := settings.StandardHoursPerDay
	if sh.LessThanOrEqual(decimal.Zero) {
		sh = defaultStandardHours
	}

	daily := decimal.Zero
	hourly := decimal.Zero
	if !base.IsZero() {
		daily = base.Div(wd)
		hourly = daily.Div(sh)
	}

	return domain.Rates{
		BaseSalary:          base.Round(2),
		WorkingDaysPerMonth: wd,
		StandardHoursPerDay: sh,
		DailyRate:           daily.Round(2),
		HourlyRate:          hourly.Round(2),
	}
}

// ResolveMultipliers looks up the work and OT multipliers for a day type,
// falling back to the table's normal entry, then to the hard defaults 1 and
// 1.5 when the table itself is absent.
func ResolveMultipliers(settings domain.Settings, dayType domain.DayType) (work, ot decimal.Decimal) {
	work = lookupMultiplier(settings.WorkMultipliers, dayType, defaultWorkMultiplier)
	ot = lookupMultiplier(settings.OTMultipliers, dayType, defaultOTMultiplier)
	return work, ot
}

func lookupMultiplier(table map[domain.DayType]decimal.Decimal, dayType domain.DayType, fallback decimal.Decimal) decimal.Decimal {
	if len(table) == 0 {
		return fallback
	}
	if v, ok := table[dayType]; ok {
		return v
	}
	if v, ok := table[domain.DayTypeNormal]; ok {
		return v
	}
	return fallback
}

// ComputeDayMoney derives the money breakdown for one day. Its attendance
// branches mirror ComputeNetHours exactly:
//
//   - off: every field is zero, including the manual per-day adjustments
//   - personal/sick: flat dailyRate (leave pay is not day-type sensitive),
//     no OT, manual allowances only
//   - present: net hours times hourly rate times the resolved multipliers,
//     plus automatic meal and shift allowances
//
// Monetary outputs are rounded to two decimals at the point of return.
func ComputeDayMoney(record domain.DayRecord, settings domain.Settings) domain.DayMoney {
	rates := DeriveRates(settings)
	attendance := record.Attendance.Normalized()
	dayType := record.DayType
	if dayType == "" {
		dayType = domain.DayTypeNormal
	}

	hours := record.Computed
	if hours == nil {
		h := ComputeNetHours(record, settings)
		hours = &h
	}

	switch attendance {
	case domain.AttendanceOff:
		return domain.DayMoney{
			Rates:      rates,
			Attendance: attendance,
			DayType:    dayType,
		}

	case domain.AttendancePersonal, domain.AttendanceSick:
		normalPay := rates.DailyRate
		manual := record.AllowancesDay
		gross := normalPay.Add(manual).Sub(record.DeductionsDay)
		return domain.DayMoney{
			Rates:           rates,
			Attendance:      attendance,
			DayType:         dayType,
			WorkMultiplier:  decimal.NewFromInt(1),
			WorkHours:       hours.WorkHoursNet,
			NormalPay:       normalPay.Round(2),
			ManualAllowance: manual.Round(2),
			AllowancesDay:   manual.Round(2),
			DeductionsDay:   record.DeductionsDay.Round(2),
			GrossDay:        gross.Round(2),
		}
	}

	workMult, otMult := ResolveMultipliers(settings, dayType)
	if record.OTMultiplierManualEnabled && record.OTMultiplierManual.GreaterThan(decimal.Zero) {
		otMult = record.OTMultiplierManual
	}

	normalPay := hours.WorkHoursNet.Mul(rates.HourlyRate).Mul(workMult)
	otPay := hours.OTHoursNet.Mul(rates.HourlyRate).Mul(otMult)

	meal := mealAllowance(settings, hours.OTHoursNet)
	shift := shiftAllowance(settings, record)
	manual := record.AllowancesDay

	allowances := manual.Add(meal).Add(shift)
	gross := normalPay.Add(otPay).Add(allowances).Sub(record.DeductionsDay)

	return domain.DayMoney{
		Rates:           rates,
		Attendance:      attendance,
		DayType:         dayType,
		WorkMultiplier:  workMult,
		OTMultiplier:    otMult,
		WorkHours:       hours.WorkHoursNet,
		OTHours:         hours.OTHoursNet,
		NormalPay:       normalPay.Round(2),
		OTPay:           otPay.Round(2),
		MealAllowance:   meal.Round(2),
		ShiftAllowance:  shift.Round(2),
		ManualAllowance: manual.Round(2),
		AllowancesDay:   allowances.Round(2),
		DeductionsDay:   record.DeductionsDay.Round(2),
		GrossDay:        gross.Round(2),
	}
}

// mealAllowance is the automatic meal amount for a worked day: the base
// amount, elevated when net OT hours exceed the configured threshold.
func mealAllowance(settings domain.Settings, otHoursNet decimal.Decimal) decimal.Decimal {
	if !settings.MealAllowanceEnabled {
		return decimal.Zero
	}
	if otHoursNet.GreaterThan(settings.MealAllowanceOTThreshold) {
		return settings.MealAllowanceOTAmount
	}
	return settings.MealAllowanceBase
}

// shiftAllowance is the automatic shift amount for a worked day, taken from
// the per-shift table unless the record carries an explicit override.
func shiftAllowance(settings domain.Settings, record domain.DayRecord) decimal.Decimal {
	if !settings.ShiftAllowanceEnabled {
		return decimal.Zero
	}
	if record.ShiftAllowanceOverride != nil {
		return *record.ShiftAllowanceOverride
	}
	if v, ok := settings.ShiftAllowances[record.ShiftType]; ok {
		return v
	}
	return decimal.Zero
}
