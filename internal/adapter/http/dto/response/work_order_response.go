package response

import (
	"time"

	"smt_scheduler/internal/domain/entities"
)

// WorkOrderResponse is the body of GET /v1/work-orders/:id.
type WorkOrderResponse struct {
	ID              string     `json:"id"`
	WorkOrderNumber string     `json:"work_order_number"`
	Customer        string     `json:"customer"`
	Assembly        string     `json:"assembly"`
	Revision        string     `json:"revision,omitempty"`
	Quantity        int        `json:"quantity"`
	Status          string     `json:"status"`
	KitDate         *time.Time `json:"kit_date,omitempty"`
	ShipDate        *time.Time `json:"ship_date,omitempty"`
	SetupHours      float64    `json:"setup_hours"`
	ProductionHours float64    `json:"production_hours"`
	ProductionDays  float64    `json:"production_days"`
	TotalHours      float64    `json:"total_hours"`
	LineID          *string    `json:"line_id"`
	LinePosition    *int       `json:"line_position"`
	ScheduledStart  *time.Time `json:"scheduled_start"`
	ScheduledEnd    *time.Time `json:"scheduled_end"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

func FromWorkOrder(wo entities.WorkOrder) WorkOrderResponse {
	return WorkOrderResponse{
		ID:              wo.ID,
		WorkOrderNumber: wo.Number,
		Customer:        wo.Customer,
		Assembly:        wo.Assembly,
		Revision:        wo.Revision,
		Quantity:        wo.Quantity,
		Status:          string(wo.Status),
		KitDate:         wo.KitDate,
		ShipDate:        wo.ShipDate,
		SetupHours:      wo.SetupHours,
		ProductionHours: wo.ProductionHours,
		ProductionDays:  wo.ProductionDays,
		TotalHours:      wo.TotalHours(),
		LineID:          wo.LineID,
		LinePosition:    wo.LinePosition,
		ScheduledStart:  wo.ScheduledStart,
		ScheduledEnd:    wo.ScheduledEnd,
		UpdatedAt:       wo.UpdatedAt,
	}
}
