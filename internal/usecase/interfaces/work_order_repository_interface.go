package interfaces

//go:generate mockgen -source=work_order_repository_interface.go -destination=mocks/work_order_repository_interface_mock.go

import (
	"context"

	"smt_scheduler/internal/domain/entities"
)

// IWorkOrderRepository abstracts the Work-Order Store.
//
// The scheduler must be able to:
//   - list every active work order at the start of a run
//   - read the schedule of a single line
//   - write or clear the (line, start, end, position) assignment of one work order
//   - load imported work orders, matched by work-order number
//
// Not-found is reported as a zero-value WorkOrder (empty ID) with a nil error.
type IWorkOrderRepository interface {
	ListActive(ctx context.Context) ([]entities.WorkOrder, error)
	GetByID(ctx context.Context, id string) (entities.WorkOrder, error)
	GetByNumber(ctx context.Context, number string) (entities.WorkOrder, error)
	ListByLineID(ctx context.Context, lineID string) ([]entities.WorkOrder, error)
	UpdateSchedule(ctx context.Context, id string, update entities.ScheduleUpdate) (entities.WorkOrder, error)
	Save(ctx context.Context, wo entities.WorkOrder) (entities.WorkOrder, error)
	Ping(ctx context.Context) error
}
