package scheduling

import (
	"errors"
	"testing"
	"time"

	"smt_scheduler/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2024-01-08 is a Monday.
var monday = time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC)

func day(offset int) time.Time {
	return monday.AddDate(0, 0, offset)
}

func at(offset, hour int) time.Time {
	return day(offset).Add(time.Duration(hour) * time.Hour)
}

func fiveDayLine(id string) entities.ProductionLine {
	return entities.ProductionLine{
		ID:                  id,
		Name:                "Line " + id,
		Status:              entities.LineStatusActive,
		ShiftsPerDay:        1,
		HoursPerShift:       8,
		DaysPerWeek:         5,
		ShiftStart:          "07:00",
		ShiftEnd:            "15:30",
		LunchBreakStart:     "11:30",
		LunchBreakMinutes:   30,
		TimeMultiplier:      1,
		AutoScheduleEnabled: true,
	}
}

func mustCalendar(t *testing.T, line entities.ProductionLine) Calendar {
	t.Helper()
	cal, err := NewCalendar(line, time.UTC)
	require.NoError(t, err)
	return cal
}

func TestParseClock(t *testing.T) {
	for _, tc := range []struct {
		in     string
		h, m   int
		wantOK bool
	}{
		{"07:00", 7, 0, true},
		{" 6:30 ", 6, 30, true},
		{"23:59:59", 23, 59, true},
		{"7am", 0, 0, false},
		{"24:00", 0, 0, false},
		{"07:60", 0, 0, false},
		{"07", 0, 0, false},
		{"", 0, 0, false},
	} {
		t.Run(tc.in, func(t *testing.T) {
			h, m, err := ParseClock(tc.in)
			if !tc.wantOK {
				assert.ErrorIs(t, err, ErrMalformedClock)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.h, h)
			assert.Equal(t, tc.m, m)
		})
	}
}

func TestNewCalendar_ConfigErrors(t *testing.T) {
	for _, tc := range []struct {
		name   string
		mutate func(*entities.ProductionLine)
		field  string
		err    error
	}{
		{"shift start", func(l *entities.ProductionLine) { l.ShiftStart = "7am" }, "shift_start", ErrMalformedClock},
		{"shift end", func(l *entities.ProductionLine) { l.ShiftEnd = "" }, "shift_end", ErrMalformedClock},
		{"lunch", func(l *entities.ProductionLine) { l.LunchBreakStart = "noon" }, "lunch_break_start", ErrMalformedClock},
		{"zero capacity", func(l *entities.ProductionLine) { l.ShiftsPerDay = 0 }, "capacity", ErrNonPositiveCapacity},
		{"over a day", func(l *entities.ProductionLine) { l.ShiftsPerDay = 4 }, "capacity", ErrCapacityExceedsDay},
		{"days per week", func(l *entities.ProductionLine) { l.DaysPerWeek = 4 }, "days_per_week", ErrInvalidDaysPerWeek},
	} {
		t.Run(tc.name, func(t *testing.T) {
			line := fiveDayLine("l1")
			tc.mutate(&line)
			_, err := NewCalendar(line, time.UTC)

			var cfgErr *ConfigError
			require.True(t, errors.As(err, &cfgErr))
			assert.Equal(t, "l1", cfgErr.LineID)
			assert.Equal(t, tc.field, cfgErr.Field)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestIsWorkingDay(t *testing.T) {
	line := fiveDayLine("l1")
	saturday, sunday := day(5), day(6)

	assert.True(t, IsWorkingDay(line, monday))
	assert.False(t, IsWorkingDay(line, saturday))
	assert.False(t, IsWorkingDay(line, sunday))

	line.DaysPerWeek = 6
	assert.True(t, IsWorkingDay(line, saturday))
	assert.False(t, IsWorkingDay(line, sunday))

	line.DaysPerWeek = 7
	assert.True(t, IsWorkingDay(line, sunday))
}

func TestEffectiveHoursAvailable(t *testing.T) {
	line := fiveDayLine("l1")
	committed := []entities.Interval{
		{WorkOrderID: "a", Start: at(0, 7), End: at(0, 11)},
		// spans Tue 13:00 to Wed 09:00; only the parts inside each window count
		{WorkOrderID: "b", Start: at(1, 13), End: at(2, 9)},
	}

	got, err := EffectiveHoursAvailable(line, monday, committed, time.UTC)
	require.NoError(t, err)
	assert.InDelta(t, 4, got, 1e-9)

	got, err = EffectiveHoursAvailable(line, day(1), committed, time.UTC)
	require.NoError(t, err)
	assert.InDelta(t, 6, got, 1e-9)

	got, err = EffectiveHoursAvailable(line, day(2), committed, time.UTC)
	require.NoError(t, err)
	assert.InDelta(t, 6, got, 1e-9)

	got, err = EffectiveHoursAvailable(line, day(5), nil, time.UTC)
	require.NoError(t, err)
	assert.Zero(t, got)

	line.ShiftStart = "seven"
	_, err = EffectiveHoursAvailable(line, monday, nil, time.UTC)
	assert.ErrorIs(t, err, ErrMalformedClock)
}

func TestCalendar_Navigation(t *testing.T) {
	cal := mustCalendar(t, fiveDayLine("l1"))

	assert.Equal(t, monday, cal.FirstCandidateDay(at(0, 6)))
	assert.Equal(t, monday, cal.FirstCandidateDay(at(0, 7)))
	assert.Equal(t, day(1), cal.FirstCandidateDay(at(0, 8)))

	assert.Equal(t, day(7), cal.NextWorkingDay(day(5)))
	assert.Equal(t, day(2), cal.NextWorkingDay(day(2)))

	// Monday minus one working day is the previous Friday.
	assert.Equal(t, day(-3), cal.SubtractWorkingDays(monday, 1))
	assert.Equal(t, day(-7), cal.SubtractWorkingDays(monday, 5))

	start, end := cal.Window(day(3))
	assert.Equal(t, at(3, 7), start)
	assert.Equal(t, at(3, 15), end)
}

func TestCalendar_PlantZone(t *testing.T) {
	chicago := time.FixedZone("CST", -6*3600)
	cal, err := NewCalendar(fiveDayLine("l1"), chicago)
	require.NoError(t, err)

	// Monday 03:00 UTC is still Sunday in the plant.
	sundayNight := time.Date(2024, 1, 8, 3, 0, 0, 0, time.UTC)
	assert.False(t, cal.IsWorkingDay(sundayNight))
	assert.Equal(t, time.Date(2024, 1, 7, 7, 0, 0, 0, chicago), cal.ShiftStartOn(sundayNight))
}
