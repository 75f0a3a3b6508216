package response

import (
	"time"

	"smt_scheduler/internal/domain/entities"
	"smt_scheduler/internal/usecase"
)

type LineResponse struct {
	ID                  string  `json:"id"`
	Name                string  `json:"name"`
	Status              string  `json:"status"`
	ShiftsPerDay        int     `json:"shifts_per_day"`
	HoursPerShift       float64 `json:"hours_per_shift"`
	DailyCapacity       float64 `json:"daily_capacity"`
	DaysPerWeek         int     `json:"days_per_week"`
	ShiftStart          string  `json:"shift_start"`
	ShiftEnd            string  `json:"shift_end"`
	TimeMultiplier      float64 `json:"time_multiplier"`
	AutoScheduleEnabled bool    `json:"auto_schedule_enabled"`
}

func FromLine(l entities.ProductionLine) LineResponse {
	return LineResponse{
		ID:                  l.ID,
		Name:                l.Name,
		Status:              string(l.Status),
		ShiftsPerDay:        l.ShiftsPerDay,
		HoursPerShift:       l.HoursPerShift,
		DailyCapacity:       l.DailyCapacity(),
		DaysPerWeek:         l.DaysPerWeek,
		ShiftStart:          l.ShiftStart,
		ShiftEnd:            l.ShiftEnd,
		TimeMultiplier:      l.TimeMultiplier,
		AutoScheduleEnabled: l.AutoScheduleEnabled,
	}
}

func FromLines(lines []entities.ProductionLine) []LineResponse {
	out := make([]LineResponse, 0, len(lines))
	for _, l := range lines {
		out = append(out, FromLine(l))
	}
	return out
}

type ScheduledWorkOrderResponse struct {
	ID              string     `json:"id"`
	WorkOrderNumber string     `json:"work_order_number"`
	Customer        string     `json:"customer,omitempty"`
	Assembly        string     `json:"assembly,omitempty"`
	Revision        string     `json:"revision,omitempty"`
	Quantity        int        `json:"quantity"`
	Status          string     `json:"status"`
	LinePosition    *int       `json:"line_position,omitempty"`
	ShipDate        *time.Time `json:"ship_date,omitempty"`
	ScheduledStart  *time.Time `json:"scheduled_start"`
	ScheduledEnd    *time.Time `json:"scheduled_end"`
	TotalHours      float64    `json:"total_hours"`
}

// LineScheduleResponse is the body of GET /v1/lines/:line_id/schedule.
type LineScheduleResponse struct {
	Line       LineResponse                 `json:"line"`
	WorkOrders []ScheduledWorkOrderResponse `json:"work_orders"`
}

func FromLineSchedule(l entities.ProductionLine, orders []entities.WorkOrder) LineScheduleResponse {
	res := LineScheduleResponse{
		Line:       FromLine(l),
		WorkOrders: make([]ScheduledWorkOrderResponse, 0, len(orders)),
	}
	for _, wo := range orders {
		res.WorkOrders = append(res.WorkOrders, ScheduledWorkOrderResponse{
			ID:              wo.ID,
			WorkOrderNumber: wo.Number,
			Customer:        wo.Customer,
			Assembly:        wo.Assembly,
			Revision:        wo.Revision,
			Quantity:        wo.Quantity,
			Status:          string(wo.Status),
			LinePosition:    wo.LinePosition,
			ShipDate:        wo.ShipDate,
			ScheduledStart:  wo.ScheduledStart,
			ScheduledEnd:    wo.ScheduledEnd,
			TotalHours:      wo.TotalHours(),
		})
	}
	return res
}

type DayCapacityResponse struct {
	Date      string  `json:"date" example:"2024-01-08"`
	Working   bool    `json:"working"`
	Capacity  float64 `json:"capacity"`
	Booked    float64 `json:"booked"`
	Available float64 `json:"available"`
}

// LineCapacityResponse is the body of GET /v1/lines/:line_id/capacity.
type LineCapacityResponse struct {
	Line LineResponse          `json:"line"`
	Days []DayCapacityResponse `json:"days"`
}

func FromLineCapacity(l entities.ProductionLine, days []usecase.DayCapacity) LineCapacityResponse {
	res := LineCapacityResponse{Line: FromLine(l), Days: make([]DayCapacityResponse, 0, len(days))}
	for _, d := range days {
		res.Days = append(res.Days, DayCapacityResponse{
			Date:      d.Date.Format(time.DateOnly),
			Working:   d.Working,
			Capacity:  d.Capacity,
			Booked:    d.Booked(),
			Available: d.Available,
		})
	}
	return res
}
