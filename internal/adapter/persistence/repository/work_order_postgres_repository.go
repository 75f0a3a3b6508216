package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"smt_scheduler/internal/domain/entities"
	"smt_scheduler/internal/usecase/interfaces"
)

const workOrderColumns = `id, work_order_number, customer, assembly, revision, quantity, status,
	ship_date, kit_date, setup_hours, production_hours, production_days,
	line_id, scheduled_start, scheduled_end, line_position, updated_at`

// WorkOrderPostgresRepository persists work orders in the work_orders table.
type WorkOrderPostgresRepository struct {
	db *sql.DB
}

var _ interfaces.IWorkOrderRepository = (*WorkOrderPostgresRepository)(nil)

func NewWorkOrderPostgresRepository(db *sql.DB) *WorkOrderPostgresRepository {
	return &WorkOrderPostgresRepository{db: db}
}

func (r *WorkOrderPostgresRepository) ListActive(ctx context.Context) ([]entities.WorkOrder, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+workOrderColumns+" FROM work_orders WHERE status NOT IN ($1, $2) ORDER BY scheduled_start NULLS LAST, work_order_number, id",
		string(entities.WorkOrderStatusCompleted), string(entities.WorkOrderStatusCancelled))
	if err != nil {
		return nil, fmt.Errorf("failed to list work orders: %w", err)
	}
	return scanWorkOrders(rows)
}

func (r *WorkOrderPostgresRepository) GetByID(ctx context.Context, id string) (entities.WorkOrder, error) {
	row := r.db.QueryRowContext(ctx, "SELECT "+workOrderColumns+" FROM work_orders WHERE id = $1", id)
	wo, err := scanWorkOrder(row)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.WorkOrder{}, nil
	}
	if err != nil {
		return entities.WorkOrder{}, fmt.Errorf("failed to get work order: %w", err)
	}
	return wo, nil
}

func (r *WorkOrderPostgresRepository) GetByNumber(ctx context.Context, number string) (entities.WorkOrder, error) {
	row := r.db.QueryRowContext(ctx, "SELECT "+workOrderColumns+" FROM work_orders WHERE work_order_number = $1 ORDER BY id LIMIT 1", number)
	wo, err := scanWorkOrder(row)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.WorkOrder{}, nil
	}
	if err != nil {
		return entities.WorkOrder{}, fmt.Errorf("failed to get work order by number: %w", err)
	}
	return wo, nil
}

// Save upserts the whole row keyed by id.
func (r *WorkOrderPostgresRepository) Save(ctx context.Context, wo entities.WorkOrder) (entities.WorkOrder, error) {
	if err := wo.Validate(); err != nil {
		return entities.WorkOrder{}, err
	}
	row := r.db.QueryRowContext(ctx, `
		INSERT INTO work_orders (`+workOrderColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		ON CONFLICT (id) DO UPDATE SET
			work_order_number = EXCLUDED.work_order_number,
			customer = EXCLUDED.customer,
			assembly = EXCLUDED.assembly,
			revision = EXCLUDED.revision,
			quantity = EXCLUDED.quantity,
			status = EXCLUDED.status,
			ship_date = EXCLUDED.ship_date,
			kit_date = EXCLUDED.kit_date,
			setup_hours = EXCLUDED.setup_hours,
			production_hours = EXCLUDED.production_hours,
			production_days = EXCLUDED.production_days,
			line_id = EXCLUDED.line_id,
			scheduled_start = EXCLUDED.scheduled_start,
			scheduled_end = EXCLUDED.scheduled_end,
			line_position = EXCLUDED.line_position,
			updated_at = EXCLUDED.updated_at
		RETURNING `+workOrderColumns,
		wo.ID, wo.Number, wo.Customer, wo.Assembly, wo.Revision, wo.Quantity, string(wo.Status),
		nullTime(wo.ShipDate), nullTime(wo.KitDate), wo.SetupHours, wo.ProductionHours, wo.ProductionDays,
		nullString(wo.LineID), nullTime(wo.ScheduledStart), nullTime(wo.ScheduledEnd), nullInt(wo.LinePosition),
		time.Now().UTC(),
	)
	saved, err := scanWorkOrder(row)
	if err != nil {
		return entities.WorkOrder{}, fmt.Errorf("failed to save work order %s: %w", wo.Number, err)
	}
	return saved, nil
}

func (r *WorkOrderPostgresRepository) ListByLineID(ctx context.Context, lineID string) ([]entities.WorkOrder, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+workOrderColumns+" FROM work_orders WHERE line_id = $1 ORDER BY scheduled_start NULLS LAST, line_position NULLS LAST, id",
		lineID)
	if err != nil {
		return nil, fmt.Errorf("failed to list line work orders: %w", err)
	}
	return scanWorkOrders(rows)
}

// UpdateSchedule writes or clears (all NULL) the assignment columns. A
// missing work order yields a zero WorkOrder and no error.
func (r *WorkOrderPostgresRepository) UpdateSchedule(ctx context.Context, id string, update entities.ScheduleUpdate) (entities.WorkOrder, error) {
	if err := update.Validate(); err != nil {
		return entities.WorkOrder{}, err
	}
	row := r.db.QueryRowContext(ctx, `
		UPDATE work_orders
		SET line_id = $2, scheduled_start = $3, scheduled_end = $4, line_position = $5, updated_at = $6
		WHERE id = $1
		RETURNING `+workOrderColumns,
		id,
		nullString(update.LineID),
		nullTime(update.Start),
		nullTime(update.End),
		nullInt(update.LinePosition),
		time.Now().UTC(),
	)
	wo, err := scanWorkOrder(row)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.WorkOrder{}, nil
	}
	if err != nil {
		return entities.WorkOrder{}, fmt.Errorf("failed to update schedule of %s: %w", id, err)
	}
	return wo, nil
}

func (r *WorkOrderPostgresRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanWorkOrder(s rowScanner) (entities.WorkOrder, error) {
	var (
		wo                entities.WorkOrder
		status            string
		shipDate, kitDate sql.NullTime
		lineID            sql.NullString
		start, end        sql.NullTime
		position          sql.NullInt64
	)
	err := s.Scan(
		&wo.ID, &wo.Number, &wo.Customer, &wo.Assembly, &wo.Revision, &wo.Quantity, &status,
		&shipDate, &kitDate, &wo.SetupHours, &wo.ProductionHours, &wo.ProductionDays,
		&lineID, &start, &end, &position, &wo.UpdatedAt,
	)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	wo.Status = entities.WorkOrderStatus(status)
	wo.ShipDate = timePtr(shipDate)
	wo.KitDate = timePtr(kitDate)
	if lineID.Valid && lineID.String != "" {
		wo.LineID = &lineID.String
	}
	wo.ScheduledStart = timePtr(start)
	wo.ScheduledEnd = timePtr(end)
	if position.Valid {
		p := int(position.Int64)
		wo.LinePosition = &p
	}
	return wo, nil
}

func scanWorkOrders(rows *sql.Rows) ([]entities.WorkOrder, error) {
	defer rows.Close()
	var out []entities.WorkOrder
	for rows.Next() {
		wo, err := scanWorkOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan work order: %w", err)
		}
		out = append(out, wo)
	}
	return out, rows.Err()
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: t.UTC(), Valid: true}
}

func nullInt(i *int) sql.NullInt64 {
	if i == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*i), Valid: true}
}

func timePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}
