package scheduling

import (
	"errors"
	"math"
	"time"

	"smt_scheduler/internal/domain/entities"
)

var ErrNoSlot = errors.New("no slot within look-ahead window")

// dueDateSlack is how far ahead of its ship date a job may finish before the
// finder tries a later start.
const dueDateSlack = 21 * 24 * time.Hour

// SlotOptions bounds the forward search.
type SlotOptions struct {
	LookaheadDays         int
	ExtendedLookaheadDays int
	LongJobDays           int
}

func DefaultSlotOptions() SlotOptions {
	return SlotOptions{
		LookaheadDays:         45,
		ExtendedLookaheadDays: 90,
		LongJobDays:           30,
	}
}

func (o SlotOptions) lookahead(days int) int {
	if days > o.LongJobDays && o.ExtendedLookaheadDays > o.LookaheadDays {
		return o.ExtendedLookaheadDays
	}
	return o.LookaheadDays
}

// Slot is a contiguous run of working days with enough residual capacity.
type Slot struct {
	Start time.Time
	End   time.Time
	Days  int
}

// FindSlot scans forward from the first candidate day at or after from and
// returns the earliest start day whose consecutive working days can each take
// their share of hours. days is the job's span from DaysRequired and sizes
// the look-ahead.
func (c Calendar) FindSlot(hours float64, days int, committed []entities.Interval, from time.Time, opts SlotOptions) (Slot, error) {
	if hours <= hoursEpsilon || days <= 0 {
		return Slot{}, ErrInvalidDuration
	}
	day := c.FirstCandidateDay(from)
	for offset := 0; offset < opts.lookahead(days); offset++ {
		if c.IsWorkingDay(day) {
			if end, ok := c.fits(day, hours, committed); ok {
				return Slot{Start: c.ShiftStartOn(day), End: end, Days: days}, nil
			}
		}
		day = c.NextDay(day)
	}
	return Slot{}, ErrNoSlot
}

// fits checks the working days from start, charging min(remaining, capacity)
// per day, and returns the end timestamp on success.
func (c Calendar) fits(start time.Time, hours float64, committed []entities.Interval) (time.Time, bool) {
	remaining := hours
	day := start
	for {
		day = c.NextWorkingDay(day)
		share := math.Min(remaining, c.capacity)
		if c.EffectiveHoursAvailable(day, committed)+hoursEpsilon < share {
			return time.Time{}, false
		}
		remaining -= share
		if remaining <= hoursEpsilon {
			return c.ShiftStartOn(day).Add(hoursToDuration(share)), true
		}
		day = c.NextDay(day)
	}
}

// FindDueDateAwareSlot avoids starting due-flexible jobs too early: when the
// earliest slot ends more than 21 days before shipDay, it retries from
// shipDay minus the job's day span and keeps that slot if it still meets
// the deadline.
func (c Calendar) FindDueDateAwareSlot(hours float64, days int, committed []entities.Interval, from, shipDay time.Time, opts SlotOptions) (Slot, error) {
	earliest, err := c.FindSlot(hours, days, committed, from, opts)
	if err != nil {
		return Slot{}, err
	}
	shipDay = c.Midnight(shipDay)
	if shipDay.Sub(earliest.End) <= dueDateSlack {
		return earliest, nil
	}
	target := c.SubtractWorkingDays(shipDay, earliest.Days)
	if !target.After(earliest.Start) {
		return earliest, nil
	}
	later, err := c.FindSlot(hours, days, committed, target, opts)
	if err != nil || later.End.After(c.NextDay(shipDay)) {
		return earliest, nil
	}
	return later, nil
}
