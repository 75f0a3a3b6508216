package usecase

import (
	"context"
	"errors"
	"slices"
	"strings"
	"time"

	"smt_scheduler/internal/domain/entities"
	"smt_scheduler/internal/domain/scheduling"
	"smt_scheduler/internal/usecase/interfaces"
)

var (
	ErrLineNotFound         = errors.New("production line not found")
	ErrInvalidLineID        = errors.New("invalid line id")
	ErrWorkOrderNotFound    = errors.New("work order not found")
	ErrInvalidCapacityRange = errors.New("invalid capacity range")
)

// MaxCapacityDays bounds one capacity query.
const MaxCapacityDays = 92

// DayCapacity is the booking state of one calendar day of a line.
type DayCapacity struct {
	Date      time.Time
	Working   bool
	Capacity  float64
	Available float64
}

// Booked is the part of the day's capacity taken by committed work.
func (d DayCapacity) Booked() float64 {
	return d.Capacity - d.Available
}

// IProductionLineUseCase exposes the read side of lines and their schedules.
type IProductionLineUseCase interface {
	ListLines(ctx context.Context) ([]entities.ProductionLine, error)
	GetLine(ctx context.Context, id string) (entities.ProductionLine, error)
	GetLineSchedule(ctx context.Context, id string) (entities.ProductionLine, []entities.WorkOrder, error)
	GetLineCapacity(ctx context.Context, id string, from time.Time, days int) (entities.ProductionLine, []DayCapacity, error)
	Ping(ctx context.Context) error
}

type ProductionLineUseCase struct {
	lines      interfaces.IProductionLineRepository
	workOrders interfaces.IWorkOrderRepository
}

var _ IProductionLineUseCase = (*ProductionLineUseCase)(nil)

func NewProductionLineUseCase(lines interfaces.IProductionLineRepository, workOrders interfaces.IWorkOrderRepository) *ProductionLineUseCase {
	return &ProductionLineUseCase{lines: lines, workOrders: workOrders}
}

func (u *ProductionLineUseCase) ListLines(ctx context.Context) ([]entities.ProductionLine, error) {
	lines, err := u.lines.ListLines(ctx)
	if err != nil {
		return nil, err
	}
	slices.SortStableFunc(lines, func(a, b entities.ProductionLine) int {
		return strings.Compare(a.Name, b.Name)
	})
	return lines, nil
}

func (u *ProductionLineUseCase) GetLine(ctx context.Context, id string) (entities.ProductionLine, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ProductionLine{}, ErrInvalidLineID
	}

	line, err := u.lines.GetByID(ctx, id)
	if err != nil {
		return entities.ProductionLine{}, err
	}
	if line.ID == "" {
		return entities.ProductionLine{}, ErrLineNotFound
	}
	return line, nil
}

// GetLineSchedule returns the line and its non-terminal scheduled work orders
// ordered by start, then line position.
func (u *ProductionLineUseCase) GetLineSchedule(ctx context.Context, id string) (entities.ProductionLine, []entities.WorkOrder, error) {
	line, err := u.GetLine(ctx, id)
	if err != nil {
		return entities.ProductionLine{}, nil, err
	}

	orders, err := u.workOrders.ListByLineID(ctx, line.ID)
	if err != nil {
		return entities.ProductionLine{}, nil, err
	}

	scheduled := make([]entities.WorkOrder, 0, len(orders))
	for _, wo := range orders {
		if wo.IsScheduled() && !wo.Status.IsTerminal() {
			scheduled = append(scheduled, wo)
		}
	}
	SortBySchedule(scheduled)
	return line, scheduled, nil
}

// GetLineCapacity reports capacity and residual hours for days calendar days
// starting at from's day, in from's location. A line whose calendar does not
// validate yields its *scheduling.ConfigError.
func (u *ProductionLineUseCase) GetLineCapacity(ctx context.Context, id string, from time.Time, days int) (entities.ProductionLine, []DayCapacity, error) {
	if days <= 0 || days > MaxCapacityDays {
		return entities.ProductionLine{}, nil, ErrInvalidCapacityRange
	}
	line, scheduled, err := u.GetLineSchedule(ctx, id)
	if err != nil {
		return entities.ProductionLine{}, nil, err
	}
	committed := make([]entities.Interval, 0, len(scheduled))
	for _, wo := range scheduled {
		committed = append(committed, entities.Interval{WorkOrderID: wo.ID, Start: *wo.ScheduledStart, End: *wo.ScheduledEnd})
	}

	loc := from.Location()
	capacity := scheduling.DailyCapacity(line)
	out := make([]DayCapacity, 0, days)
	for i := 0; i < days; i++ {
		date := time.Date(from.Year(), from.Month(), from.Day()+i, 0, 0, 0, 0, loc)
		available, err := scheduling.EffectiveHoursAvailable(line, date, committed, loc)
		if err != nil {
			return entities.ProductionLine{}, nil, err
		}
		day := DayCapacity{Date: date, Working: scheduling.IsWorkingDay(line, date), Available: available}
		if day.Working {
			day.Capacity = capacity
		}
		out = append(out, day)
	}
	return line, out, nil
}

// Ping checks the work-order store.
func (u *ProductionLineUseCase) Ping(ctx context.Context) error {
	return u.workOrders.Ping(ctx)
}

// SortBySchedule orders scheduled work orders by start time, then line position.
func SortBySchedule(orders []entities.WorkOrder) {
	slices.SortStableFunc(orders, func(a, b entities.WorkOrder) int {
		if c := a.ScheduledStart.Compare(*b.ScheduledStart); c != 0 {
			return c
		}
		return positionOf(a) - positionOf(b)
	})
}

func positionOf(wo entities.WorkOrder) int {
	if wo.LinePosition == nil {
		return 0
	}
	return *wo.LinePosition
}
