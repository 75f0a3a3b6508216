package handlers

import (
	"net/http"
	"strconv"
	"time"

	response "smt_scheduler/internal/adapter/http/dto/response"
	"smt_scheduler/internal/domain/scheduling"
	"smt_scheduler/internal/usecase"
	"smt_scheduler/pkg"

	"github.com/gin-gonic/gin"
	"github.com/sony/gobreaker"
)

const defaultCapacityDays = 14

var errInvalidCapacityDays = pkg.NewDomainErrorSimple("INVALID_REQUEST", "days must be an integer between 1 and 92", http.StatusBadRequest)

// BreakerState reports the circuit state of the schedule event publisher.
type BreakerState interface {
	State() gobreaker.State
}

// LineHandler serves production lines, their schedules and health.
type LineHandler struct {
	usecase usecase.IProductionLineUseCase
	loc     *time.Location
	clock   scheduling.Clock
	events  BreakerState
}

// NewLineHandler builds the handler. events may be nil when no publisher is wired.
func NewLineHandler(uc usecase.IProductionLineUseCase, loc *time.Location, clock scheduling.Clock, events BreakerState) *LineHandler {
	if loc == nil {
		loc = time.UTC
	}
	if clock == nil {
		clock = scheduling.SystemClock{}
	}
	return &LineHandler{usecase: uc, loc: loc, clock: clock, events: events}
}

// ListLines godoc
// @Summary  List production lines
// @Tags     lines
// @Produce  json
// @Success  200  {array}   response.LineResponse
// @Failure  500  {object}  pkg.HTTPError
// @Router   /lines [get]
func (h *LineHandler) ListLines(c *gin.Context) {
	lines, err := h.usecase.ListLines(c.Request.Context())
	if err != nil {
		appErr := mapScheduleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromLines(lines))
}

// GetLineSchedule godoc
// @Summary  Scheduled work orders of a line, in start order
// @Tags     lines
// @Produce  json
// @Param    line_id  path      string  true  "Line ID"
// @Success  200      {object}  response.LineScheduleResponse
// @Failure  404      {object}  pkg.HTTPError
// @Router   /lines/{line_id}/schedule [get]
func (h *LineHandler) GetLineSchedule(c *gin.Context) {
	line, orders, err := h.usecase.GetLineSchedule(c.Request.Context(), c.Param("line_id"))
	if err != nil {
		appErr := mapScheduleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromLineSchedule(line, orders))
}

// GetLineCapacity godoc
// @Summary  Daily capacity and residual hours of a line
// @Tags     lines
// @Produce  json
// @Param    line_id  path      string  true   "Line ID"
// @Param    from     query     string  false  "First day (YYYY-MM-DD, MM/DD/YYYY, MM/DD); defaults to today"
// @Param    days     query     int     false  "Number of days, 1 to 92"  default(14)
// @Success  200      {object}  response.LineCapacityResponse
// @Failure  400      {object}  pkg.HTTPError
// @Failure  404      {object}  pkg.HTTPError
// @Failure  422      {object}  pkg.HTTPError
// @Router   /lines/{line_id}/capacity [get]
func (h *LineHandler) GetLineCapacity(c *gin.Context) {
	days := defaultCapacityDays
	if raw := c.Query("days"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(errInvalidCapacityDays.HTTPStatus, errInvalidCapacityDays.ToHTTPError())
			return
		}
		days = n
	}

	now := h.clock.Now().In(h.loc)
	from, err := usecase.ParseAsOf(c.Query("from"), now, h.loc)
	if err != nil {
		appErr := mapScheduleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if from.IsZero() {
		from = now
	}

	line, capacity, err := h.usecase.GetLineCapacity(c.Request.Context(), c.Param("line_id"), from.In(h.loc), days)
	if err != nil {
		appErr := mapScheduleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromLineCapacity(line, capacity))
}

// Ping godoc
// @Summary  Liveness check
// @Tags     health
// @Produce  json
// @Success  200  {object}  map[string]string
// @Router   /ping [get]
func (h *LineHandler) Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "pong"})
}

// Health godoc
// @Summary  Readiness including the work-order store and event publisher circuit
// @Tags     health
// @Produce  json
// @Success  200  {object}  map[string]string
// @Failure  503  {object}  map[string]string
// @Router   /health [get]
func (h *LineHandler) Health(c *gin.Context) {
	status, database, code := "healthy", "connected", http.StatusOK
	if err := h.usecase.Ping(c.Request.Context()); err != nil {
		status, database, code = "unhealthy", "disconnected", http.StatusServiceUnavailable
	}
	body := gin.H{
		"status":    status,
		"database":  database,
		"timestamp": h.clock.Now().UTC().Format(time.RFC3339),
	}
	// An open circuit only drops events; runs still commit.
	if h.events != nil {
		body["events"] = h.events.State().String()
	}
	c.JSON(code, body)
}
