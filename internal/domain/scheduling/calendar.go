package scheduling

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"smt_scheduler/internal/domain/entities"
)

const hoursEpsilon = 1e-6

var (
	ErrMalformedClock        = errors.New("malformed time of day")
	ErrNonPositiveCapacity   = errors.New("daily capacity must be positive")
	ErrCapacityExceedsDay    = errors.New("daily capacity exceeds 24 hours")
	ErrNonPositiveMultiplier = errors.New("time multiplier must be positive")
	ErrInvalidDaysPerWeek    = errors.New("days per week must be 5, 6 or 7")
)

// ConfigError reports malformed lane calendar data. The lane is excluded
// from the run; the run itself continues.
type ConfigError struct {
	LineID string
	Field  string
	Err    error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("line %s: %s: %v", e.LineID, e.Field, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// Clock abstracts wall-clock time so runs are reproducible.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the real time.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// ParseClock parses an "HH:MM" or "HH:MM:SS" time of day.
func ParseClock(s string) (hour, minute int, err error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, 0, ErrMalformedClock
	}
	hour, err = strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, ErrMalformedClock
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, ErrMalformedClock
	}
	if len(parts) == 3 {
		if sec, err := strconv.Atoi(parts[2]); err != nil || sec < 0 || sec > 59 {
			return 0, 0, ErrMalformedClock
		}
	}
	return hour, minute, nil
}

// DailyCapacity is the lane's working hours per day.
func DailyCapacity(line entities.ProductionLine) float64 {
	return line.DailyCapacity()
}

// IsWorkingDay is false on Sunday for 6-day lanes and on the weekend for 5-day lanes.
func IsWorkingDay(line entities.ProductionLine, date time.Time) bool {
	return isWorkingWeekday(line.DaysPerWeek, date.Weekday())
}

func isWorkingWeekday(daysPerWeek int, wd time.Weekday) bool {
	switch daysPerWeek {
	case 5:
		return wd != time.Saturday && wd != time.Sunday
	case 6:
		return wd != time.Sunday
	default:
		return true
	}
}

// EffectiveHoursAvailable validates the lane calendar and returns the residual
// capacity of date given the committed intervals.
func EffectiveHoursAvailable(line entities.ProductionLine, date time.Time, committed []entities.Interval, loc *time.Location) (float64, error) {
	cal, err := NewCalendar(line, loc)
	if err != nil {
		return 0, err
	}
	return cal.EffectiveHoursAvailable(date, committed), nil
}

// Calendar is a validated lane working calendar in the plant time zone.
//
// Each working day has one accounting window starting at the shift start and
// lasting the daily capacity; committed intervals consume the part of that
// window they overlap.
type Calendar struct {
	LineID      string
	loc         *time.Location
	startHour   int
	startMinute int
	capacity    float64
	daysPerWeek int
}

// NewCalendar validates the calendar fields of a lane.
func NewCalendar(line entities.ProductionLine, loc *time.Location) (Calendar, error) {
	if loc == nil {
		loc = time.UTC
	}
	h, m, err := ParseClock(line.ShiftStart)
	if err != nil {
		return Calendar{}, &ConfigError{LineID: line.ID, Field: "shift_start", Err: err}
	}
	if _, _, err := ParseClock(line.ShiftEnd); err != nil {
		return Calendar{}, &ConfigError{LineID: line.ID, Field: "shift_end", Err: err}
	}
	if line.LunchBreakStart != "" {
		if _, _, err := ParseClock(line.LunchBreakStart); err != nil {
			return Calendar{}, &ConfigError{LineID: line.ID, Field: "lunch_break_start", Err: err}
		}
	}
	capacity := line.DailyCapacity()
	if capacity <= 0 {
		return Calendar{}, &ConfigError{LineID: line.ID, Field: "capacity", Err: ErrNonPositiveCapacity}
	}
	if capacity > 24 {
		return Calendar{}, &ConfigError{LineID: line.ID, Field: "capacity", Err: ErrCapacityExceedsDay}
	}
	switch line.DaysPerWeek {
	case 5, 6, 7:
	default:
		return Calendar{}, &ConfigError{LineID: line.ID, Field: "days_per_week", Err: ErrInvalidDaysPerWeek}
	}
	return Calendar{
		LineID:      line.ID,
		loc:         loc,
		startHour:   h,
		startMinute: m,
		capacity:    capacity,
		daysPerWeek: line.DaysPerWeek,
	}, nil
}

func (c Calendar) Capacity() float64 { return c.capacity }

func (c Calendar) Location() *time.Location { return c.loc }

// Midnight returns the start of t's calendar day in the plant time zone.
func (c Calendar) Midnight(t time.Time) time.Time {
	t = t.In(c.loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, c.loc)
}

// ShiftStartOn returns the shift start on date's calendar day.
func (c Calendar) ShiftStartOn(date time.Time) time.Time {
	d := date.In(c.loc)
	return time.Date(d.Year(), d.Month(), d.Day(), c.startHour, c.startMinute, 0, 0, c.loc)
}

// Window returns the accounting window of date.
func (c Calendar) Window(date time.Time) (time.Time, time.Time) {
	start := c.ShiftStartOn(date)
	return start, start.Add(hoursToDuration(c.capacity))
}

func (c Calendar) IsWorkingDay(date time.Time) bool {
	return isWorkingWeekday(c.daysPerWeek, date.In(c.loc).Weekday())
}

// NextDay returns midnight of the following calendar day.
func (c Calendar) NextDay(date time.Time) time.Time {
	d := c.Midnight(date)
	return time.Date(d.Year(), d.Month(), d.Day()+1, 0, 0, 0, 0, c.loc)
}

// NextWorkingDay returns midnight of the first working day on or after date.
func (c Calendar) NextWorkingDay(date time.Time) time.Time {
	d := c.Midnight(date)
	for !c.IsWorkingDay(d) {
		d = c.NextDay(d)
	}
	return d
}

// SubtractWorkingDays steps back n working days from date.
func (c Calendar) SubtractWorkingDays(date time.Time, n int) time.Time {
	d := c.Midnight(date)
	for n > 0 {
		d = time.Date(d.Year(), d.Month(), d.Day()-1, 0, 0, 0, 0, c.loc)
		if c.IsWorkingDay(d) {
			n--
		}
	}
	return d
}

// FirstCandidateDay is t's day when t is at or before that day's shift
// start, else the following day.
func (c Calendar) FirstCandidateDay(t time.Time) time.Time {
	day := c.Midnight(t)
	if t.After(c.ShiftStartOn(day)) {
		return c.NextDay(day)
	}
	return day
}

// UsedHours sums the overlap of committed intervals with date's window.
func (c Calendar) UsedHours(date time.Time, committed []entities.Interval) float64 {
	ws, we := c.Window(date)
	used := 0.0
	for _, iv := range committed {
		start, end := iv.Start, iv.End
		if start.Before(ws) {
			start = ws
		}
		if end.After(we) {
			end = we
		}
		if end.After(start) {
			used += entities.Interval{Start: start, End: end}.Hours()
		}
	}
	return used
}

// EffectiveHoursAvailable is the daily capacity minus the used hours of date,
// zero on non-working days.
func (c Calendar) EffectiveHoursAvailable(date time.Time, committed []entities.Interval) float64 {
	if !c.IsWorkingDay(date) {
		return 0
	}
	return math.Max(0, c.capacity-c.UsedHours(date, committed))
}

func hoursToDuration(h float64) time.Duration {
	return time.Duration(math.Round(h*3600)) * time.Second
}
