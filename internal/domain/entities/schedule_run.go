package entities

import "time"

// Interval is a committed window on a lane.
type Interval struct {
	WorkOrderID string    `json:"work_order_id"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
}

// Hours is the wall-clock length of the interval.
func (i Interval) Hours() float64 {
	return i.End.Sub(i.Start).Hours()
}

// JobOutcomeKind is the per-job result of a scheduling run.
type JobOutcomeKind string

const (
	JobOutcomeScheduled   JobOutcomeKind = "scheduled"
	JobOutcomeFailed      JobOutcomeKind = "failed"
	JobOutcomeUnprocessed JobOutcomeKind = "unprocessed"
	JobOutcomeLocked      JobOutcomeKind = "locked"
)

// Failure and placement reasons reported on job outcomes.
const (
	ReasonNoEligibleLine = "no_eligible_line"
	ReasonDueDate        = "due_date_unreachable"
	ReasonNoSlot         = "no_slot"
	ReasonNoDuration     = "no_duration"
	ReasonPersistence    = "persistence_error"
	ReasonBudget         = "budget_exceeded"
	ReasonLate           = "late"
	ReasonPinned         = "pinned"
	ReasonCancelled      = "cancelled"
)

// JobOutcome reports what a run did with one work order.
type JobOutcome struct {
	WorkOrderID string         `json:"work_order_id"`
	Number      string         `json:"work_order_number"`
	Outcome     JobOutcomeKind `json:"outcome"`
	Score       float64        `json:"score"`
	LineID      string         `json:"line_id,omitempty"`
	Start       *time.Time     `json:"start,omitempty"`
	End         *time.Time     `json:"end,omitempty"`
	Reason      string         `json:"reason,omitempty"`
}

// LaneError is a configuration problem that excluded a lane from a run.
type LaneError struct {
	LineID  string `json:"line_id"`
	Name    string `json:"name"`
	Message string `json:"message"`
}

// RunResult summarises one auto-schedule run.
type RunResult struct {
	RunID            string       `json:"run_id"`
	AsOf             time.Time    `json:"as_of"`
	StartedAt        time.Time    `json:"started_at"`
	FinishedAt       time.Time    `json:"finished_at"`
	Partial          bool         `json:"partial"`
	ScheduledCount   int          `json:"scheduled_count"`
	FailedCount      int          `json:"failed_count"`
	UnprocessedCount int          `json:"unprocessed_count"`
	LockedCount      int          `json:"locked_count"`
	ClearedCount     int          `json:"cleared_count"`
	ClearFailures    int          `json:"clear_failures"`
	LaneErrors       []LaneError  `json:"lane_errors,omitempty"`
	Outcomes         []JobOutcome `json:"outcomes"`
}

// ScheduleEvent is emitted once per successful commit.
type ScheduleEvent struct {
	EventID         string    `json:"event_id"`
	RunID           string    `json:"run_id"`
	WorkOrderID     string    `json:"work_order_id"`
	WorkOrderNumber string    `json:"work_order_number"`
	LineID          string    `json:"line_id"`
	Start           time.Time `json:"scheduled_start"`
	End             time.Time `json:"scheduled_end"`
	LinePosition    int       `json:"line_position"`
	OccurredAt      time.Time `json:"occurred_at"`
}
