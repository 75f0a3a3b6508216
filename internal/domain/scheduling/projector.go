package scheduling

import (
	"math"
	"time"

	"smt_scheduler/internal/domain/entities"
)

// BacklogEnd is the latest end among the committed intervals, never earlier than now.
func BacklogEnd(committed []entities.Interval, now time.Time) time.Time {
	end := now
	for _, iv := range committed {
		if iv.End.After(end) {
			end = iv.End
		}
	}
	return end
}

// ProjectCompletion advances backlogEnd by the working days the hours need
// and lands at shift start plus the hours left for the final day. It ranks
// lanes against each other and ignores gaps earlier in the schedule.
func (c Calendar) ProjectCompletion(backlogEnd time.Time, hours float64) time.Time {
	if hours <= hoursEpsilon {
		return backlogEnd
	}
	remaining := hours
	day := c.FirstCandidateDay(backlogEnd)
	for {
		if c.IsWorkingDay(day) {
			share := math.Min(remaining, c.capacity)
			remaining -= share
			if remaining <= hoursEpsilon {
				return c.ShiftStartOn(day).Add(hoursToDuration(share))
			}
		}
		day = c.NextDay(day)
	}
}
