package scheduling

import (
	"math"
	"slices"
	"time"

	"smt_scheduler/internal/domain/entities"
)

const (
	overdueBaseScore  = 1000
	urgentBaseScore   = 500
	urgencyWindowDays = 21
	urgentDayWeight   = 20
	farFutureScore    = 100
	noShipDateScore   = 200
	kitWindowDays     = 7
	kitDayWeight      = 5
)

var statusBonus = map[entities.WorkOrderStatus]float64{
	entities.WorkOrderStatusReady:      50,
	entities.WorkOrderStatusClearBuild: 50,
	entities.WorkOrderStatusPartialKit: 45,
	entities.WorkOrderStatusInProgress: 40,
	entities.WorkOrderStatusPending:    20,
	entities.WorkOrderStatusOnHold:     5,
}

// RankedJob is a work order with its priority score.
type RankedJob struct {
	WorkOrder entities.WorkOrder
	Score     float64
}

// civilDate drops the clock and zone, keeping the calendar date as written.
func civilDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysUntil counts calendar days from asOf (in loc) to the stored date.
func DaysUntil(asOf time.Time, date time.Time, loc *time.Location) int {
	if loc == nil {
		loc = time.UTC
	}
	from := civilDate(asOf.In(loc))
	return int(math.Round(civilDate(date).Sub(from).Hours() / 24))
}

// ShipDeadline is the end of the ship date's calendar day in loc.
func ShipDeadline(ship time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return time.Date(ship.Year(), ship.Month(), ship.Day()+1, 0, 0, 0, 0, loc)
}

// Score combines ship-date urgency, kit-date proximity and status.
func Score(job entities.WorkOrder, asOf time.Time, loc *time.Location) float64 {
	score := 0.0
	if job.ShipDate == nil {
		score += noShipDateScore
	} else {
		days := DaysUntil(asOf, *job.ShipDate, loc)
		switch {
		case days <= 0:
			score += overdueBaseScore + float64(-days)
		case days <= urgencyWindowDays:
			score += urgentBaseScore + float64(urgencyWindowDays-days)*urgentDayWeight
		default:
			score += math.Max(0, float64(farFutureScore-days))
		}
	}
	if job.KitDate != nil {
		days := DaysUntil(asOf, *job.KitDate, loc)
		if days <= kitWindowDays {
			score += float64(kitWindowDays-max(days, 0)) * kitDayWeight
		}
	}
	return score + statusBonus[job.Status]
}

// Rank scores the jobs and sorts them by descending score. Equal scores keep
// their input order.
func Rank(jobs []entities.WorkOrder, asOf time.Time, loc *time.Location) []RankedJob {
	ranked := make([]RankedJob, 0, len(jobs))
	for _, j := range jobs {
		ranked = append(ranked, RankedJob{WorkOrder: j, Score: Score(j, asOf, loc)})
	}
	slices.SortStableFunc(ranked, func(a, b RankedJob) int {
		switch {
		case a.Score > b.Score:
			return -1
		case a.Score < b.Score:
			return 1
		}
		return 0
	})
	return ranked
}
