package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"smt_scheduler/internal/domain/entities"
	"smt_scheduler/internal/usecase/interfaces"
)

const productionLineColumns = `id, name, status, shifts_per_day, hours_per_shift, days_per_week,
	shift_start, shift_end, lunch_break_start, lunch_break_minutes, break_minutes,
	time_multiplier, auto_schedule_enabled`

// ProductionLinePostgresRepository reads the production_lines table.
type ProductionLinePostgresRepository struct {
	db *sql.DB
}

var _ interfaces.IProductionLineRepository = (*ProductionLinePostgresRepository)(nil)

func NewProductionLinePostgresRepository(db *sql.DB) *ProductionLinePostgresRepository {
	return &ProductionLinePostgresRepository{db: db}
}

func (r *ProductionLinePostgresRepository) ListLines(ctx context.Context) ([]entities.ProductionLine, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT "+productionLineColumns+" FROM production_lines ORDER BY name, id")
	if err != nil {
		return nil, fmt.Errorf("failed to list production lines: %w", err)
	}
	defer rows.Close()

	var out []entities.ProductionLine
	for rows.Next() {
		l, err := scanProductionLine(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan production line: %w", err)
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

func (r *ProductionLinePostgresRepository) GetByID(ctx context.Context, id string) (entities.ProductionLine, error) {
	row := r.db.QueryRowContext(ctx, "SELECT "+productionLineColumns+" FROM production_lines WHERE id = $1", id)
	l, err := scanProductionLine(row)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.ProductionLine{}, nil
	}
	if err != nil {
		return entities.ProductionLine{}, fmt.Errorf("failed to get production line: %w", err)
	}
	return l, nil
}

func scanProductionLine(s rowScanner) (entities.ProductionLine, error) {
	var l entities.ProductionLine
	var status string
	err := s.Scan(
		&l.ID, &l.Name, &status, &l.ShiftsPerDay, &l.HoursPerShift, &l.DaysPerWeek,
		&l.ShiftStart, &l.ShiftEnd, &l.LunchBreakStart, &l.LunchBreakMinutes, &l.BreakMinutes,
		&l.TimeMultiplier, &l.AutoScheduleEnabled,
	)
	if err != nil {
		return entities.ProductionLine{}, err
	}
	l.Status = entities.LineStatus(status)
	return l, nil
}
