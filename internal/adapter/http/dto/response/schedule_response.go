package response

import (
	"time"

	"smt_scheduler/internal/domain/entities"
)

type JobOutcomeResponse struct {
	WorkOrderID     string     `json:"work_order_id"`
	WorkOrderNumber string     `json:"work_order_number"`
	Outcome         string     `json:"outcome"`
	Score           float64    `json:"score"`
	LineID          string     `json:"line_id,omitempty"`
	ScheduledStart  *time.Time `json:"scheduled_start,omitempty"`
	ScheduledEnd    *time.Time `json:"scheduled_end,omitempty"`
	Reason          string     `json:"reason,omitempty"`
}

type LaneErrorResponse struct {
	LineID  string `json:"line_id"`
	Name    string `json:"name"`
	Message string `json:"message"`
}

// RunResultResponse is the body of POST /v1/schedule/auto-run.
type RunResultResponse struct {
	RunID            string               `json:"run_id"`
	AsOf             time.Time            `json:"as_of"`
	StartedAt        time.Time            `json:"started_at"`
	FinishedAt       time.Time            `json:"finished_at"`
	Partial          bool                 `json:"partial"`
	ScheduledCount   int                  `json:"scheduled_count"`
	FailedCount      int                  `json:"failed_count"`
	UnprocessedCount int                  `json:"unprocessed_count"`
	LockedCount      int                  `json:"locked_count"`
	ClearedCount     int                  `json:"cleared_count"`
	ClearFailures    int                  `json:"clear_failures"`
	LaneErrors       []LaneErrorResponse  `json:"lane_errors"`
	Outcomes         []JobOutcomeResponse `json:"outcomes"`
}

func FromRunResult(r entities.RunResult) RunResultResponse {
	res := RunResultResponse{
		RunID:            r.RunID,
		AsOf:             r.AsOf,
		StartedAt:        r.StartedAt,
		FinishedAt:       r.FinishedAt,
		Partial:          r.Partial,
		ScheduledCount:   r.ScheduledCount,
		FailedCount:      r.FailedCount,
		UnprocessedCount: r.UnprocessedCount,
		LockedCount:      r.LockedCount,
		ClearedCount:     r.ClearedCount,
		ClearFailures:    r.ClearFailures,
		LaneErrors:       make([]LaneErrorResponse, 0, len(r.LaneErrors)),
		Outcomes:         make([]JobOutcomeResponse, 0, len(r.Outcomes)),
	}
	for _, le := range r.LaneErrors {
		res.LaneErrors = append(res.LaneErrors, LaneErrorResponse(le))
	}
	for _, o := range r.Outcomes {
		res.Outcomes = append(res.Outcomes, JobOutcomeResponse{
			WorkOrderID:     o.WorkOrderID,
			WorkOrderNumber: o.Number,
			Outcome:         string(o.Outcome),
			Score:           o.Score,
			LineID:          o.LineID,
			ScheduledStart:  o.Start,
			ScheduledEnd:    o.End,
			Reason:          o.Reason,
		})
	}
	return res
}
