package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/ottrack/ot-calculator/internal/domain"
)

// plainSettings turns off the automatic allowances so money assertions see
// only the rate arithmetic.
func plainSettings() domain.Settings {
	s := domain.DefaultSettings()
	s.MealAllowanceEnabled = false
	s.ShiftAllowanceEnabled = false
	return s
}

func TestDeriveRates(t *testing.T) {
	t.Run("baseline 12000 over 30 and 8", func(t *testing.T) {
		r := DeriveRates(domain.DefaultSettings())
		assert.True(t, r.DailyRate.Equal(decimal.NewFromInt(400)), "daily %s", r.DailyRate)
		assert.True(t, r.HourlyRate.Equal(decimal.NewFromInt(50)), "hourly %s", r.HourlyRate)
	})

	t.Run("non positive divisors fall back silently", func(t *testing.T) {
		s := domain.DefaultSettings()
		s.WorkingDaysPerMonth = decimal.Zero
		s.StandardHoursPerDay = decimal.NewFromInt(-1)
		r := DeriveRates(s)
		assert.True(t, r.DailyRate.Equal(decimal.NewFromInt(400)))
		assert.True(t, r.HourlyRate.Equal(decimal.NewFromInt(50)))
		// The stored settings are reported as the fallback actually used.
		assert.True(t, r.WorkingDaysPerMonth.Equal(decimal.NewFromInt(30)))
		assert.True(t, r.StandardHoursPerDay.Equal(decimal.NewFromInt(8)))
	})

	t.Run("zero salary gives zero rates", func(t *testing.T) {
		s := domain.DefaultSettings()
		s.BaseSalary = decimal.Zero
		r := DeriveRates(s)
		assert.True(t, r.DailyRate.IsZero())
		assert.True(t, r.HourlyRate.IsZero())
	})

	t.Run("hourly derives from unrounded daily", func(t *testing.T) {
		s := domain.DefaultSettings()
		s.BaseSalary = decimal.NewFromInt(10000)
		r := DeriveRates(s)
		// 10000/30 = 333.33..., /8 = 41.67 when the division chains before
		// rounding. Rounding daily first would give 41.67 too, but with
		// salary 100 the distinction shows: 100/30/8 = 0.42.
		assert.Equal(t, "41.67", r.HourlyRate.StringFixed(2))

		s.BaseSalary = decimal.NewFromInt(100)
		r = DeriveRates(s)
		assert.Equal(t, "0.42", r.HourlyRate.StringFixed(2))
	})
}

func TestResolveMultipliers(t *testing.T) {
	settings := domain.DefaultSettings()

	tests := []struct {
		name     string
		dayType  domain.DayType
		wantWork string
		wantOT   string
	}{
		{"normal", domain.DayTypeNormal, "1", "1.5"},
		{"holiday", domain.DayTypeHoliday, "2", "2"},
		{"special", domain.DayTypeSpecial, "3", "3"},
		{"unknown falls back to normal row", domain.DayType("bridge"), "1", "1.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			work, ot := ResolveMultipliers(settings, tt.dayType)
			assert.Equal(t, tt.wantWork, work.String())
			assert.Equal(t, tt.wantOT, ot.String())
		})
	}

	t.Run("absent tables use hard defaults", func(t *testing.T) {
		empty := domain.Settings{}
		work, ot := ResolveMultipliers(empty, domain.DayTypeHoliday)
		assert.Equal(t, "1", work.String())
		assert.Equal(t, "1.5", ot.String())
	})
}

func TestComputeDayMoneyPresent(t *testing.T) {
	settings := plainSettings()

	t.Run("normal day with ot", func(t *testing.T) {
		rec := domain.DayRecord{
			Date:       "2026-02-02",
			Attendance: domain.AttendancePresent,
			DayType:    domain.DayTypeNormal,
			WorkStart:  "08:00",
			WorkEnd:    "16:00",
			OTStart:    "17:00",
			OTEnd:      "19:00",
		}
		m := ComputeDayMoney(rec, settings)
		// 8h x 50 x 1 and 2h x 50 x 1.5.
		assert.Equal(t, "400.00", m.NormalPay.StringFixed(2))
		assert.Equal(t, "150.00", m.OTPay.StringFixed(2))
		assert.Equal(t, "550.00", m.GrossDay.StringFixed(2))
	})

	t.Run("holiday doubles both", func(t *testing.T) {
		rec := domain.DayRecord{
			Date:       "2026-02-07",
			Attendance: domain.AttendancePresent,
			DayType:    domain.DayTypeHoliday,
			WorkStart:  "08:00",
			WorkEnd:    "16:00",
			OTStart:    "17:00",
			OTEnd:      "19:00",
		}
		m := ComputeDayMoney(rec, settings)
		assert.Equal(t, "800.00", m.NormalPay.StringFixed(2))
		assert.Equal(t, "200.00", m.OTPay.StringFixed(2))
	})

	t.Run("manual ot multiplier wins when enabled and positive", func(t *testing.T) {
		rec := domain.DayRecord{
			Date:                      "2026-02-02",
			Attendance:                domain.AttendancePresent,
			OTStart:                   "17:00",
			OTEnd:                     "19:00",
			OTMultiplierManualEnabled: true,
			OTMultiplierManual:        decimal.NewFromInt(3),
		}
		m := ComputeDayMoney(rec, settings)
		assert.Equal(t, "300.00", m.OTPay.StringFixed(2))
		assert.Equal(t, "3", m.OTMultiplier.String())
	})

	t.Run("manual multiplier of zero falls back to table", func(t *testing.T) {
		rec := domain.DayRecord{
			Date:                      "2026-02-02",
			Attendance:                domain.AttendancePresent,
			OTStart:                   "17:00",
			OTEnd:                     "19:00",
			OTMultiplierManualEnabled: true,
			OTMultiplierManual:        decimal.Zero,
		}
		m := ComputeDayMoney(rec, settings)
		assert.Equal(t, "150.00", m.OTPay.StringFixed(2))
	})

	t.Run("disabled manual multiplier ignored", func(t *testing.T) {
		rec := domain.DayRecord{
			Date:               "2026-02-02",
			Attendance:         domain.AttendancePresent,
			OTStart:            "17:00",
			OTEnd:              "19:00",
			OTMultiplierManual: decimal.NewFromInt(3),
		}
		m := ComputeDayMoney(rec, settings)
		assert.Equal(t, "150.00", m.OTPay.StringFixed(2))
	})

	t.Run("manual adjustments flow into gross", func(t *testing.T) {
		rec := domain.DayRecord{
			Date:          "2026-02-02",
			Attendance:    domain.AttendancePresent,
			WorkStart:     "08:00",
			WorkEnd:       "16:00",
			AllowancesDay: decimal.NewFromInt(120),
			DeductionsDay: decimal.NewFromInt(20),
		}
		m := ComputeDayMoney(rec, settings)
		assert.Equal(t, "400.00", m.NormalPay.StringFixed(2))
		assert.Equal(t, "120.00", m.AllowancesDay.StringFixed(2))
		assert.Equal(t, "20.00", m.DeductionsDay.StringFixed(2))
		assert.Equal(t, "500.00", m.GrossDay.StringFixed(2))
	})

	t.Run("deductions can push gross negative", func(t *testing.T) {
		rec := domain.DayRecord{
			Date:          "2026-02-02",
			Attendance:    domain.AttendancePresent,
			DeductionsDay: decimal.NewFromInt(500),
		}
		m := ComputeDayMoney(rec, settings)
		assert.Equal(t, "-500.00", m.GrossDay.StringFixed(2))
	})
}

func TestComputeDayMoneyOff(t *testing.T) {
	rec := domain.DayRecord{
		Date:          "2026-02-02",
		Attendance:    domain.AttendanceOff,
		WorkStart:     "08:00",
		WorkEnd:       "17:00",
		AllowancesDay: decimal.NewFromInt(100),
		DeductionsDay: decimal.NewFromInt(50),
	}
	m := ComputeDayMoney(rec, domain.DefaultSettings())
	// Off zeroes everything, including the manual adjustments.
	assert.True(t, m.NormalPay.IsZero())
	assert.True(t, m.OTPay.IsZero())
	assert.True(t, m.AllowancesDay.IsZero())
	assert.True(t, m.DeductionsDay.IsZero())
	assert.True(t, m.GrossDay.IsZero())
}

func TestComputeDayMoneyLeave(t *testing.T) {
	settings := domain.DefaultSettings()

	t.Run("flat daily rate regardless of day type", func(t *testing.T) {
		rec := domain.DayRecord{
			Date:       "2026-02-02",
			Attendance: domain.AttendancePersonal,
			DayType:    domain.DayTypeHoliday,
		}
		m := ComputeDayMoney(rec, settings)
		assert.Equal(t, "400.00", m.NormalPay.StringFixed(2))
		assert.True(t, m.OTPay.IsZero())
		// No automatic allowances on leave days.
		assert.True(t, m.MealAllowance.IsZero())
		assert.True(t, m.ShiftAllowance.IsZero())
	})

	t.Run("manual adjustments still apply", func(t *testing.T) {
		rec := domain.DayRecord{
			Date:          "2026-02-02",
			Attendance:    domain.AttendanceSick,
			AllowancesDay: decimal.NewFromInt(50),
			DeductionsDay: decimal.NewFromInt(30),
		}
		m := ComputeDayMoney(rec, settings)
		assert.Equal(t, "420.00", m.GrossDay.StringFixed(2))
	})
}

func TestMealAllowance(t *testing.T) {
	settings := domain.DefaultSettings()
	settings.ShiftAllowanceEnabled = false

	present := func(otStart, otEnd string) domain.DayRecord {
		return domain.DayRecord{
			Date:       "2026-02-02",
			Attendance: domain.AttendancePresent,
			WorkStart:  "08:00",
			WorkEnd:    "16:00",
			OTStart:    otStart,
			OTEnd:      otEnd,
		}
	}

	t.Run("base amount on a worked day", func(t *testing.T) {
		m := ComputeDayMoney(present("", ""), settings)
		assert.Equal(t, "30.00", m.MealAllowance.StringFixed(2))
	})

	t.Run("ot at the threshold stays base", func(t *testing.T) {
		m := ComputeDayMoney(present("17:00", "19:30"), settings)
		assert.Equal(t, "30.00", m.MealAllowance.StringFixed(2))
	})

	t.Run("ot beyond the threshold elevates", func(t *testing.T) {
		m := ComputeDayMoney(present("17:00", "20:00"), settings)
		assert.Equal(t, "60.00", m.MealAllowance.StringFixed(2))
	})

	t.Run("disabled means zero", func(t *testing.T) {
		off := settings
		off.MealAllowanceEnabled = false
		m := ComputeDayMoney(present("17:00", "20:00"), off)
		assert.True(t, m.MealAllowance.IsZero())
	})
}

func TestShiftAllowance(t *testing.T) {
	settings := domain.DefaultSettings()
	settings.MealAllowanceEnabled = false

	present := func(shift domain.ShiftType) domain.DayRecord {
		return domain.DayRecord{
			Date:       "2026-02-02",
			Attendance: domain.AttendancePresent,
			ShiftType:  shift,
			WorkStart:  "20:00",
			WorkEnd:    "05:00",
		}
	}

	t.Run("night shift gets the table amount", func(t *testing.T) {
		m := ComputeDayMoney(present(domain.ShiftNight), settings)
		assert.Equal(t, "100.00", m.ShiftAllowance.StringFixed(2))
	})

	t.Run("day shift table amount is zero", func(t *testing.T) {
		m := ComputeDayMoney(present(domain.ShiftDay), settings)
		assert.True(t, m.ShiftAllowance.IsZero())
	})

	t.Run("unknown shift tag gets zero", func(t *testing.T) {
		m := ComputeDayMoney(present(domain.ShiftType("swing")), settings)
		assert.True(t, m.ShiftAllowance.IsZero())
	})

	t.Run("record override wins, zero included", func(t *testing.T) {
		rec := present(domain.ShiftNight)
		zero := decimal.Zero
		rec.ShiftAllowanceOverride = &zero
		m := ComputeDayMoney(rec, settings)
		assert.True(t, m.ShiftAllowance.IsZero())

		boosted := decimal.NewFromInt(250)
		rec.ShiftAllowanceOverride = &boosted
		m = ComputeDayMoney(rec, settings)
		assert.Equal(t, "250.00", m.ShiftAllowance.StringFixed(2))
	})

	t.Run("disabled means zero even with override", func(t *testing.T) {
		off := settings
		off.ShiftAllowanceEnabled = false
		rec := present(domain.ShiftNight)
		boosted := decimal.NewFromInt(250)
		rec.ShiftAllowanceOverride = &boosted
		m := ComputeDayMoney(rec, off)
		assert.True(t, m.ShiftAllowance.IsZero())
	})
}

func TestComputeDayMoneyUsesComputedCache(t *testing.T) {
	settings := plainSettings()
	rec := domain.DayRecord{
		Date:       "2026-02-02",
		Attendance: domain.AttendancePresent,
	}
	rec.Computed = &domain.NetHours{
		WorkMinutesNet: 480,
		WorkHoursNet:   decimal.NewFromInt(8),
	}
	m := ComputeDayMoney(rec, settings)
	assert.Equal(t, "400.00", m.NormalPay.StringFixed(2))
}
