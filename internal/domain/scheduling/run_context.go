package scheduling

import (
	"slices"
	"time"

	"smt_scheduler/internal/domain/entities"
)

// RunContext owns the committed intervals of every lane for one run.
// It is created at the start of a run and dropped when the run ends.
type RunContext struct {
	RunID     string
	AsOf      time.Time
	intervals map[string][]entities.Interval
	positions map[string]int
}

func NewRunContext(runID string, asOf time.Time) *RunContext {
	return &RunContext{
		RunID:     runID,
		AsOf:      asOf,
		intervals: make(map[string][]entities.Interval),
		positions: make(map[string]int),
	}
}

// Seed records an interval kept from before the run (locked or pinned work).
func (rc *RunContext) Seed(lineID string, iv entities.Interval) {
	rc.add(lineID, iv)
}

// Commit records a new placement and returns its 1-based position on the lane.
func (rc *RunContext) Commit(lineID string, iv entities.Interval) int {
	return rc.add(lineID, iv)
}

// NextPosition is the position the next commit on the lane would get.
func (rc *RunContext) NextPosition(lineID string) int {
	return rc.positions[lineID] + 1
}

func (rc *RunContext) add(lineID string, iv entities.Interval) int {
	rc.intervals[lineID] = append(rc.intervals[lineID], iv)
	rc.positions[lineID]++
	return rc.positions[lineID]
}

// Intervals returns a copy of the lane's committed intervals.
func (rc *RunContext) Intervals(lineID string) []entities.Interval {
	return slices.Clone(rc.intervals[lineID])
}

func (rc *RunContext) BacklogEnd(lineID string, now time.Time) time.Time {
	return BacklogEnd(rc.intervals[lineID], now)
}

// LockFirstPerLine groups scheduled, non-terminal jobs by lane, orders each
// group by start time and returns the ids of the first n per lane.
func LockFirstPerLine(jobs []entities.WorkOrder, n int) map[string]bool {
	locked := make(map[string]bool)
	if n <= 0 {
		return locked
	}
	byLine := make(map[string][]entities.WorkOrder)
	for _, j := range jobs {
		if j.Status.IsTerminal() || !j.IsScheduled() {
			continue
		}
		byLine[*j.LineID] = append(byLine[*j.LineID], j)
	}
	for _, group := range byLine {
		slices.SortStableFunc(group, func(a, b entities.WorkOrder) int {
			return a.ScheduledStart.Compare(*b.ScheduledStart)
		})
		for i := 0; i < len(group) && i < n; i++ {
			locked[group[i].ID] = true
		}
	}
	return locked
}
