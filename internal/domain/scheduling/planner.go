package scheduling

import (
	"errors"
	"time"

	"smt_scheduler/internal/domain/entities"
)

var (
	ErrNoEligibleLane     = errors.New("no eligible production line")
	ErrDueDateUnreachable = errors.New("ship date cannot be met on any line")
)

// Lane is a production line whose calendar passed validation.
type Lane struct {
	Line     entities.ProductionLine
	Calendar Calendar
}

// NewLane validates the calendar and multiplier of a line.
func NewLane(line entities.ProductionLine, loc *time.Location) (Lane, error) {
	cal, err := NewCalendar(line, loc)
	if err != nil {
		return Lane{}, err
	}
	if line.TimeMultiplier <= 0 {
		return Lane{}, &ConfigError{LineID: line.ID, Field: "time_multiplier", Err: ErrNonPositiveMultiplier}
	}
	return Lane{Line: line, Calendar: cal}, nil
}

// Engaged reports whether the engine may place work on the line at all:
// the line is auto-schedule enabled and not under maintenance or down.
func Engaged(line entities.ProductionLine) bool {
	return line.AutoScheduleEnabled && line.Status.IsOperational()
}

// PlannerOptions tunes lane selection.
type PlannerOptions struct {
	Slot             SlotOptions
	DueDateAware     bool
	ScheduleLateJobs bool
	Location         *time.Location
}

// Placement is the lane and window chosen for a job.
type Placement struct {
	LineID    string
	Slot      Slot
	Projected time.Time
	Late      bool
}

// Planner picks, for one job, the lane with the strictly earliest projected
// completion among the lanes that can take it.
type Planner struct {
	opts PlannerOptions
}

func NewPlanner(opts PlannerOptions) *Planner {
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	if opts.Slot.LookaheadDays <= 0 {
		opts.Slot = DefaultSlotOptions()
	}
	return &Planner{opts: opts}
}

func (p *Planner) Options() PlannerOptions { return p.opts }

// Place evaluates every lane for job. now is the earliest instant work may start.
func (p *Planner) Place(job entities.WorkOrder, lanes []Lane, rc *RunContext, now time.Time) (Placement, error) {
	if len(lanes) == 0 {
		return Placement{}, ErrNoEligibleLane
	}
	if TotalHours(job) <= hoursEpsilon {
		return Placement{}, ErrInvalidDuration
	}

	var deadline, shipDay time.Time
	hasShip := job.ShipDate != nil
	if hasShip {
		deadline = ShipDeadline(*job.ShipDate, p.opts.Location)
		shipDay = deadline.AddDate(0, 0, -1)
	}

	var best *Placement
	dueRejected := false
	for _, lane := range lanes {
		hours, err := AdjustedHours(job, lane.Line)
		if err != nil {
			continue
		}
		days, err := DaysRequired(job, lane.Line)
		if err != nil {
			continue
		}
		projected := lane.Calendar.ProjectCompletion(rc.BacklogEnd(lane.Line.ID, now), hours)
		late := hasShip && projected.After(deadline)
		if late && !p.opts.ScheduleLateJobs {
			dueRejected = true
			continue
		}

		committed := rc.Intervals(lane.Line.ID)
		var slot Slot
		if hasShip && !late && p.opts.DueDateAware {
			slot, err = lane.Calendar.FindDueDateAwareSlot(hours, days, committed, now, shipDay, p.opts.Slot)
		} else {
			slot, err = lane.Calendar.FindSlot(hours, days, committed, now, p.opts.Slot)
		}
		if err != nil {
			continue
		}

		cand := Placement{LineID: lane.Line.ID, Slot: slot, Projected: projected, Late: late}
		if best == nil || better(cand, *best) {
			best = &cand
		}
	}

	if best == nil {
		if dueRejected {
			return Placement{}, ErrDueDateUnreachable
		}
		return Placement{}, ErrNoSlot
	}
	return *best, nil
}

// better prefers on-time placements, then the strictly earlier projection.
func better(a, b Placement) bool {
	if a.Late != b.Late {
		return !a.Late
	}
	return a.Projected.Before(b.Projected)
}
