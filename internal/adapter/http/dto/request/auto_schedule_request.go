package request

import (
	"strings"
	"time"

	"smt_scheduler/internal/usecase"
)

// AutoScheduleRequest triggers a run. as_of is optional; an empty body runs as of now.
type AutoScheduleRequest struct {
	AsOf string `json:"as_of" binding:"omitempty,max=40" example:"2024-01-08"`
}

// ResolveAsOf parses as_of in the plant time zone. The zero time means "now".
func (r AutoScheduleRequest) ResolveAsOf(now time.Time, loc *time.Location) (time.Time, error) {
	return usecase.ParseAsOf(strings.TrimSpace(r.AsOf), now, loc)
}
