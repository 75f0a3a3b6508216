package entities

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// WorkOrderStatus is the production status of a work order.
//
// Values match the spreadsheet/CSV vocabulary used on the shop floor.
type WorkOrderStatus string

const (
	WorkOrderStatusPending    WorkOrderStatus = "Pending"
	WorkOrderStatusReady      WorkOrderStatus = "Ready"
	WorkOrderStatusClearBuild WorkOrderStatus = "Clear to Build"
	WorkOrderStatusPartialKit WorkOrderStatus = "Partial Kit"
	WorkOrderStatusInProgress WorkOrderStatus = "In Progress"
	WorkOrderStatusOnHold     WorkOrderStatus = "On Hold"
	WorkOrderStatusCompleted  WorkOrderStatus = "Completed"
	WorkOrderStatusCancelled  WorkOrderStatus = "Cancelled"
)

var workOrderStatuses = []WorkOrderStatus{
	WorkOrderStatusPending,
	WorkOrderStatusReady,
	WorkOrderStatusClearBuild,
	WorkOrderStatusPartialKit,
	WorkOrderStatusInProgress,
	WorkOrderStatusOnHold,
	WorkOrderStatusCompleted,
	WorkOrderStatusCancelled,
}

// ParseWorkOrderStatus matches s against the known statuses, ignoring case
// and surrounding space.
func ParseWorkOrderStatus(s string) (WorkOrderStatus, bool) {
	s = strings.TrimSpace(s)
	for _, st := range workOrderStatuses {
		if strings.EqualFold(s, string(st)) {
			return st, true
		}
	}
	return "", false
}

// productionDayHours converts production-day estimates into hours.
const productionDayHours = 8.0

var (
	ErrInvalidScheduleWindow = errors.New("invalid schedule window")
	ErrInvalidWorkOrder      = errors.New("invalid work order")
)

// IsTerminal reports whether the status freezes the work order from scheduling.
func (s WorkOrderStatus) IsTerminal() bool {
	return s == WorkOrderStatusCompleted || s == WorkOrderStatusCancelled
}

// WorkOrder is a unit of production work.
//
// Storage model:
//   - DynamoDB table "work_orders", PK: id, GSI line_id-index (PK: line_id)
//   - PostgreSQL table work_orders
//
// The assignment of a work order is the (LineID, ScheduledStart, ScheduledEnd)
// triple; there is no separate assignment record.
type WorkOrder struct {
	ID              string          `json:"id"`
	Number          string          `json:"work_order_number"`
	Customer        string          `json:"customer,omitempty"`
	Assembly        string          `json:"assembly,omitempty"`
	Revision        string          `json:"revision,omitempty"`
	Quantity        int             `json:"quantity"`
	Status          WorkOrderStatus `json:"status"`
	ShipDate        *time.Time      `json:"ship_date,omitempty"`
	KitDate         *time.Time      `json:"kit_date,omitempty"`
	SetupHours      float64         `json:"setup_hours"`
	ProductionHours float64         `json:"production_hours"`
	ProductionDays  float64         `json:"production_days"`
	LineID          *string         `json:"line_id,omitempty"`
	ScheduledStart  *time.Time      `json:"scheduled_start,omitempty"`
	ScheduledEnd    *time.Time      `json:"scheduled_end,omitempty"`
	LinePosition    *int            `json:"line_position,omitempty"`
	UpdatedAt       time.Time       `json:"updated_at"`

	// Locked is derived for a single run and never persisted.
	Locked bool `json:"-"`
}

// TotalHours is setup + production hours + production days at 8h each, never negative.
func (w WorkOrder) TotalHours() float64 {
	total := w.SetupHours + w.ProductionHours + w.ProductionDays*productionDayHours
	if total < 0 {
		return 0
	}
	return total
}

// IsScheduled reports whether the work order holds a lane and a full window.
func (w WorkOrder) IsScheduled() bool {
	return w.LineID != nil && *w.LineID != "" && w.ScheduledStart != nil && w.ScheduledEnd != nil
}

// AssignedLineID returns the lane id or "" when unassigned.
func (w WorkOrder) AssignedLineID() string {
	if w.LineID == nil {
		return ""
	}
	return *w.LineID
}

// Schedule returns the stored assignment as an update.
func (w WorkOrder) Schedule() ScheduleUpdate {
	return ScheduleUpdate{LineID: w.LineID, Start: w.ScheduledStart, End: w.ScheduledEnd, LinePosition: w.LinePosition}
}

// Validate checks the fields every stored work order needs and the
// consistency of its assignment.
func (w WorkOrder) Validate() error {
	switch {
	case w.Number == "":
		return fmt.Errorf("%w: work order number is required", ErrInvalidWorkOrder)
	case w.Customer == "":
		return fmt.Errorf("%w: customer is required", ErrInvalidWorkOrder)
	case w.Assembly == "":
		return fmt.Errorf("%w: assembly is required", ErrInvalidWorkOrder)
	case w.Quantity < 0:
		return fmt.Errorf("%w: quantity must not be negative", ErrInvalidWorkOrder)
	case w.Status == "":
		return fmt.Errorf("%w: status is required", ErrInvalidWorkOrder)
	case w.SetupHours < 0 || w.ProductionHours < 0 || w.ProductionDays < 0:
		return fmt.Errorf("%w: durations must not be negative", ErrInvalidWorkOrder)
	}
	if w.ShipDate != nil && w.KitDate != nil && w.ShipDate.Before(*w.KitDate) {
		return fmt.Errorf("%w: ship date must be on or after kit date", ErrInvalidWorkOrder)
	}
	return w.Schedule().Validate()
}

// ScheduleUpdate carries the assignment fields written by the scheduler.
// All-nil clears the assignment.
type ScheduleUpdate struct {
	LineID       *string
	Start        *time.Time
	End          *time.Time
	LinePosition *int
}

// ClearSchedule returns the update that removes any assignment.
func ClearSchedule() ScheduleUpdate {
	return ScheduleUpdate{}
}

// AssignSchedule returns the update committing a work order to a lane window.
func AssignSchedule(lineID string, start, end time.Time, position int) ScheduleUpdate {
	return ScheduleUpdate{LineID: &lineID, Start: &start, End: &end, LinePosition: &position}
}

// IsClear reports whether the update removes the assignment.
func (u ScheduleUpdate) IsClear() bool {
	return u.LineID == nil && u.Start == nil && u.End == nil
}

// Validate enforces both-or-neither timestamps, end after start and a lane for every window.
func (u ScheduleUpdate) Validate() error {
	if (u.Start == nil) != (u.End == nil) {
		return ErrInvalidScheduleWindow
	}
	if u.Start == nil {
		if u.LineID != nil {
			return ErrInvalidScheduleWindow
		}
		return nil
	}
	if u.LineID == nil || *u.LineID == "" {
		return ErrInvalidScheduleWindow
	}
	if !u.End.After(*u.Start) {
		return ErrInvalidScheduleWindow
	}
	return nil
}
