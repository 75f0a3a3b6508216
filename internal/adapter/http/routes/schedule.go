package routes

import (
	"smt_scheduler/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathSchedule   = "/schedule"
	PathLines      = "/lines"
	PathWorkOrders = "/work-orders"
)

func addPingRoutes(rg *gin.RouterGroup, lineHandler *handlers.LineHandler) {
	rg.GET("/ping", lineHandler.Ping)
}

func addScheduleRoutes(rg *gin.RouterGroup, scheduleHandler *handlers.ScheduleHandler) {
	schedule := rg.Group(PathSchedule)
	{
		schedule.POST("/auto-run", scheduleHandler.RunAutoSchedule)
	}
}

func addLineRoutes(rg *gin.RouterGroup, lineHandler *handlers.LineHandler) {
	lines := rg.Group(PathLines)
	{
		lines.GET("", lineHandler.ListLines)
		lines.GET("/:line_id/schedule", lineHandler.GetLineSchedule)
		lines.GET("/:line_id/capacity", lineHandler.GetLineCapacity)
	}
}

func addWorkOrderRoutes(rg *gin.RouterGroup, workOrderHandler *handlers.WorkOrderHandler) {
	workOrders := rg.Group(PathWorkOrders)
	{
		workOrders.GET("/:id", workOrderHandler.GetWorkOrder)
	}
}
