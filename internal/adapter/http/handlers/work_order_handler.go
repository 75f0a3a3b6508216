package handlers

import (
	"net/http"

	response "smt_scheduler/internal/adapter/http/dto/response"
	"smt_scheduler/internal/usecase"

	"github.com/gin-gonic/gin"
)

// WorkOrderHandler serves single work orders.
type WorkOrderHandler struct {
	usecase usecase.IWorkOrderUseCase
}

func NewWorkOrderHandler(uc usecase.IWorkOrderUseCase) *WorkOrderHandler {
	return &WorkOrderHandler{usecase: uc}
}

// GetWorkOrder godoc
// @Summary  Get a work order with its current assignment
// @Tags     work-orders
// @Produce  json
// @Param    id   path      string  true  "Work order ID"
// @Success  200  {object}  response.WorkOrderResponse
// @Failure  404  {object}  pkg.HTTPError
// @Failure  500  {object}  pkg.HTTPError
// @Router   /work-orders/{id} [get]
func (h *WorkOrderHandler) GetWorkOrder(c *gin.Context) {
	wo, err := h.usecase.GetWorkOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapScheduleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromWorkOrder(wo))
}
