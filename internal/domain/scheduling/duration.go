package scheduling

import (
	"errors"
	"math"

	"smt_scheduler/internal/domain/entities"
)

var ErrInvalidDuration = errors.New("work order has no duration")

// TotalHours is setup + production hours + production days × 8.
func TotalHours(job entities.WorkOrder) float64 {
	return job.TotalHours()
}

// AdjustedHours scales the job's effort by the lane time multiplier.
func AdjustedHours(job entities.WorkOrder, line entities.ProductionLine) (float64, error) {
	if line.TimeMultiplier <= 0 {
		return 0, &ConfigError{LineID: line.ID, Field: "time_multiplier", Err: ErrNonPositiveMultiplier}
	}
	return job.TotalHours() * line.TimeMultiplier, nil
}

// DaysRequired is the number of working days the job occupies on the lane.
func DaysRequired(job entities.WorkOrder, line entities.ProductionLine) (int, error) {
	hours, err := AdjustedHours(job, line)
	if err != nil {
		return 0, err
	}
	capacity := line.DailyCapacity()
	if capacity <= 0 {
		return 0, &ConfigError{LineID: line.ID, Field: "capacity", Err: ErrNonPositiveCapacity}
	}
	return daysFor(hours, capacity), nil
}

func daysFor(hours, capacity float64) int {
	if hours <= hoursEpsilon {
		return 0
	}
	return int(math.Ceil(hours/capacity - hoursEpsilon))
}
