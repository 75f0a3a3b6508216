package usecase

import (
	"context"
	"fmt"
	"strings"

	"smt_scheduler/internal/domain/entities"
	"smt_scheduler/internal/infrastructure/logging"
	"smt_scheduler/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// ImportRow is one parsed line of a work-order import. Err carries a parse
// failure; such a row is counted as failed and never written.
type ImportRow struct {
	Line      int
	Number    string
	WorkOrder entities.WorkOrder
	Err       error
}

// ImportReport summarises an import. Errors read "WO <number>: <reason>".
type ImportReport struct {
	DryRun    bool     `json:"dry_run"`
	TotalRows int      `json:"total_rows"`
	Created   int      `json:"created"`
	Updated   int      `json:"updated"`
	Failed    int      `json:"failed"`
	Errors    []string `json:"errors,omitempty"`
}

// Successful counts the rows created or updated.
func (r ImportReport) Successful() int {
	return r.Created + r.Updated
}

// IWorkOrderUseCase loads the backlog and reads single work orders.
type IWorkOrderUseCase interface {
	GetWorkOrder(ctx context.Context, id string) (entities.WorkOrder, error)
	Import(ctx context.Context, rows []ImportRow, dryRun bool) (ImportReport, error)
}

type WorkOrderUseCase struct {
	workOrders interfaces.IWorkOrderRepository
	log        *logging.Logger
}

var _ IWorkOrderUseCase = (*WorkOrderUseCase)(nil)

func NewWorkOrderUseCase(workOrders interfaces.IWorkOrderRepository, log *logging.Logger) *WorkOrderUseCase {
	if log == nil {
		log = logging.Nop()
	}
	return &WorkOrderUseCase{workOrders: workOrders, log: log.WithComponent("workorder.usecase")}
}

func (u *WorkOrderUseCase) GetWorkOrder(ctx context.Context, id string) (entities.WorkOrder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.WorkOrder{}, ErrWorkOrderNotFound
	}
	wo, err := u.workOrders.GetByID(ctx, id)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if wo.ID == "" {
		return entities.WorkOrder{}, ErrWorkOrderNotFound
	}
	return wo, nil
}

// Import upserts rows by work-order number in file order, so a later row
// for the same number wins. An existing work order keeps its id and its
// assignment: placement belongs to the scheduler. A row that fails is
// reported and the import goes on; only a cancelled context stops it.
func (u *WorkOrderUseCase) Import(ctx context.Context, rows []ImportRow, dryRun bool) (ImportReport, error) {
	report := ImportReport{DryRun: dryRun}
	fail := func(row ImportRow, err error) {
		report.Failed++
		report.Errors = append(report.Errors, fmt.Sprintf("WO %s: %v", numberOrUnknown(row.Number), err))
	}

	for _, row := range rows {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		report.TotalRows++
		if row.Err != nil {
			fail(row, row.Err)
			continue
		}

		wo := row.WorkOrder
		existing, err := u.workOrders.GetByNumber(ctx, wo.Number)
		if err != nil {
			fail(row, err)
			continue
		}
		if existing.ID != "" {
			wo.ID = existing.ID
			wo.LineID, wo.ScheduledStart, wo.ScheduledEnd, wo.LinePosition =
				existing.LineID, existing.ScheduledStart, existing.ScheduledEnd, existing.LinePosition
		} else {
			wo.ID = uuid.NewString()
		}
		if err := wo.Validate(); err != nil {
			fail(row, err)
			continue
		}

		if !dryRun {
			if _, err := u.workOrders.Save(ctx, wo); err != nil {
				u.log.WithError(err).Warn("work order import failed", "work_order", wo.Number, "line", row.Line)
				fail(row, err)
				continue
			}
		}
		if existing.ID != "" {
			report.Updated++
		} else {
			report.Created++
		}
	}

	u.log.Info("work order import finished",
		"dry_run", dryRun,
		"total", report.TotalRows,
		"created", report.Created,
		"updated", report.Updated,
		"failed", report.Failed,
	)
	return report, nil
}

func numberOrUnknown(n string) string {
	if n == "" {
		return "Unknown"
	}
	return n
}
