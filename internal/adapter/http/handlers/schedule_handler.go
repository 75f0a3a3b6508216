package handlers

import (
	"errors"
	"io"
	"net/http"
	"time"

	request "smt_scheduler/internal/adapter/http/dto/request"
	response "smt_scheduler/internal/adapter/http/dto/response"
	"smt_scheduler/internal/domain/entities"
	"smt_scheduler/internal/domain/scheduling"
	"smt_scheduler/internal/infrastructure/logging"
	"smt_scheduler/internal/usecase"
	"smt_scheduler/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidSchedulePayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid auto-schedule payload", http.StatusBadRequest)
)

// ScheduleHandler triggers auto-schedule runs.
type ScheduleHandler struct {
	usecase usecase.IAutoScheduleUseCase
	loc     *time.Location
	clock   scheduling.Clock
	log     *logging.Logger
}

// NewScheduleHandler builds the handler. A nil clock reads the system time.
func NewScheduleHandler(uc usecase.IAutoScheduleUseCase, loc *time.Location, clock scheduling.Clock, log *logging.Logger) *ScheduleHandler {
	if loc == nil {
		loc = time.UTC
	}
	if clock == nil {
		clock = scheduling.SystemClock{}
	}
	if log == nil {
		log = logging.Nop()
	}
	return &ScheduleHandler{usecase: uc, loc: loc, clock: clock, log: log.WithComponent("schedule.handler")}
}

// RunAutoSchedule godoc
// @Summary      Run the auto-scheduler
// @Description  Re-plans every unlocked active work order onto the production lines.
// @Tags         schedule
// @Accept       json
// @Produce      json
// @Param        body  body      request.AutoScheduleRequest  false  "Run options"
// @Success      200   {object}  response.RunResultResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      409   {object}  pkg.HTTPError
// @Failure      503   {object}  pkg.HTTPError
// @Router       /schedule/auto-run [post]
func (h *ScheduleHandler) RunAutoSchedule(c *gin.Context) {
	var payload request.AutoScheduleRequest
	if err := c.ShouldBindJSON(&payload); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(errInvalidSchedulePayload.HTTPStatus, errInvalidSchedulePayload.ToHTTPError())
		return
	}

	asOf, err := payload.ResolveAsOf(h.clock.Now(), h.loc)
	if err != nil {
		appErr := mapScheduleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	res, err := h.usecase.RunAutoSchedule(c.Request.Context(), asOf)
	if err != nil {
		h.log.WithError(err).Warn("auto-schedule request failed")
		appErr := mapScheduleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromRunResult(res))
}

func mapScheduleError(err error) *pkg.AppError {
	var cfgErr *scheduling.ConfigError
	switch {
	case errors.Is(err, usecase.ErrInvalidAsOf):
		return pkg.NewDomainErrorSimple("INVALID_AS_OF", "as_of must be YYYY-MM-DD, MM/DD/YYYY, MM/DD/YY, MM/DD or RFC3339", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidLineID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrRunInProgress):
		return pkg.NewDomainErrorSimple("RUN_IN_PROGRESS", "An auto-schedule run is already in progress", http.StatusConflict)
	case errors.Is(err, usecase.ErrStoreUnavailable):
		return pkg.NewDomainError("STORE_UNAVAILABLE", "Work-order store or line registry unavailable", err, http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrRunLockUnavailable):
		return pkg.NewDomainError("RUN_LOCK_UNAVAILABLE", "Run lock unavailable", err, http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrLineNotFound):
		return pkg.NewDomainErrorSimple("LINE_NOT_FOUND", "Production line not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrWorkOrderNotFound):
		return pkg.NewDomainErrorSimple("WORK_ORDER_NOT_FOUND", "Work order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidCapacityRange):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "days must be an integer between 1 and 92", http.StatusBadRequest)
	case errors.Is(err, entities.ErrInvalidWorkOrder):
		return pkg.NewDomainError("INVALID_WORK_ORDER", "Invalid work order", err, http.StatusBadRequest)
	case errors.As(err, &cfgErr):
		return pkg.NewDomainError("LINE_MISCONFIGURED", "Production line calendar is misconfigured", err, http.StatusUnprocessableEntity)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
