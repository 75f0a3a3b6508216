package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"smt_scheduler/internal/domain/entities"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var workOrderRowColumns = []string{
	"id", "work_order_number", "customer", "assembly", "revision", "quantity", "status",
	"ship_date", "kit_date", "setup_hours", "production_hours", "production_days",
	"line_id", "scheduled_start", "scheduled_end", "line_position", "updated_at",
}

var productionLineRowColumns = []string{
	"id", "name", "status", "shifts_per_day", "hours_per_shift", "days_per_week",
	"shift_start", "shift_end", "lunch_break_start", "lunch_break_minutes", "break_minutes",
	"time_multiplier", "auto_schedule_enabled",
}

func TestWorkOrderPostgresRepository_ListActive(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	ship := time.Date(2024, 1, 19, 0, 0, 0, 0, time.UTC)
	start := time.Date(2024, 1, 8, 7, 0, 0, 0, time.UTC)
	end := start.Add(4 * time.Hour)
	updated := time.Date(2024, 1, 5, 12, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows(workOrderRowColumns).
		AddRow("wo-1", "WO-1001", "Acme", "PCB-7", "B", int64(50), "Ready",
			ship, nil, 1.0, 3.0, 0.0,
			"l1", start, end, int64(1), updated).
		AddRow("wo-2", "WO-1002", "", "", "", int64(10), "Pending",
			nil, nil, 0.0, 2.0, 0.0,
			nil, nil, nil, nil, updated)

	mock.ExpectQuery(regexp.QuoteMeta("FROM work_orders WHERE status NOT IN ($1, $2)")).
		WithArgs("Completed", "Cancelled").
		WillReturnRows(rows)

	repo := NewWorkOrderPostgresRepository(db)
	got, err := repo.ListActive(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "WO-1001", got[0].Number)
	assert.Equal(t, entities.WorkOrderStatusReady, got[0].Status)
	require.NotNil(t, got[0].ShipDate)
	assert.True(t, got[0].ShipDate.Equal(ship))
	assert.Nil(t, got[0].KitDate)
	assert.True(t, got[0].IsScheduled())
	assert.Equal(t, "l1", got[0].AssignedLineID())
	require.NotNil(t, got[0].LinePosition)
	assert.Equal(t, 1, *got[0].LinePosition)
	assert.Equal(t, 4.0, got[0].TotalHours())

	assert.False(t, got[1].IsScheduled())
	assert.Nil(t, got[1].LinePosition)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWorkOrderPostgresRepository_ListActiveError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("FROM work_orders")).WillReturnError(errors.New("connection refused"))

	_, err = NewWorkOrderPostgresRepository(db).ListActive(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to list work orders")
}

func TestWorkOrderPostgresRepository_GetByID(t *testing.T) {
	t.Run("not found returns zero value", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(regexp.QuoteMeta("FROM work_orders WHERE id = $1")).
			WithArgs("missing").
			WillReturnError(sql.ErrNoRows)

		got, err := NewWorkOrderPostgresRepository(db).GetByID(context.Background(), "missing")
		require.NoError(t, err)
		assert.Empty(t, got.ID)
	})

	t.Run("found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		rows := sqlmock.NewRows(workOrderRowColumns).
			AddRow("wo-9", "WO-9", "", "", "", int64(1), "On Hold",
				nil, nil, 0.5, 0.0, 1.0,
				nil, nil, nil, nil, time.Now())
		mock.ExpectQuery(regexp.QuoteMeta("FROM work_orders WHERE id = $1")).
			WithArgs("wo-9").
			WillReturnRows(rows)

		got, err := NewWorkOrderPostgresRepository(db).GetByID(context.Background(), "wo-9")
		require.NoError(t, err)
		assert.Equal(t, entities.WorkOrderStatusOnHold, got.Status)
		assert.Equal(t, 8.5, got.TotalHours())
	})
}

func TestWorkOrderPostgresRepository_ListByLineID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("FROM work_orders WHERE line_id = $1")).
		WithArgs("l2").
		WillReturnRows(sqlmock.NewRows(workOrderRowColumns))

	got, err := NewWorkOrderPostgresRepository(db).ListByLineID(context.Background(), "l2")
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWorkOrderPostgresRepository_UpdateSchedule(t *testing.T) {
	start := time.Date(2024, 1, 8, 7, 0, 0, 0, time.UTC)
	end := start.Add(4 * time.Hour)

	t.Run("assign writes every column", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		rows := sqlmock.NewRows(workOrderRowColumns).
			AddRow("wo-1", "WO-1", "", "", "", int64(1), "Ready",
				nil, nil, 0.0, 4.0, 0.0,
				"l1", start, end, int64(2), time.Now())
		mock.ExpectQuery(regexp.QuoteMeta("UPDATE work_orders")).
			WithArgs("wo-1", "l1", start, end, int64(2), sqlmock.AnyArg()).
			WillReturnRows(rows)

		got, err := NewWorkOrderPostgresRepository(db).UpdateSchedule(context.Background(), "wo-1",
			entities.AssignSchedule("l1", start, end, 2))
		require.NoError(t, err)
		assert.Equal(t, "wo-1", got.ID)
		assert.Equal(t, 2, *got.LinePosition)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("clear writes nulls", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		rows := sqlmock.NewRows(workOrderRowColumns).
			AddRow("wo-1", "WO-1", "", "", "", int64(1), "Ready",
				nil, nil, 0.0, 4.0, 0.0,
				nil, nil, nil, nil, time.Now())
		mock.ExpectQuery(regexp.QuoteMeta("UPDATE work_orders")).
			WithArgs("wo-1", nil, nil, nil, nil, sqlmock.AnyArg()).
			WillReturnRows(rows)

		got, err := NewWorkOrderPostgresRepository(db).UpdateSchedule(context.Background(), "wo-1", entities.ClearSchedule())
		require.NoError(t, err)
		assert.False(t, got.IsScheduled())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing row returns zero value", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(regexp.QuoteMeta("UPDATE work_orders")).WillReturnError(sql.ErrNoRows)

		got, err := NewWorkOrderPostgresRepository(db).UpdateSchedule(context.Background(), "gone", entities.ClearSchedule())
		require.NoError(t, err)
		assert.Empty(t, got.ID)
	})

	t.Run("invalid window never reaches the database", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		_, err = NewWorkOrderPostgresRepository(db).UpdateSchedule(context.Background(), "wo-1",
			entities.AssignSchedule("l1", end, start, 1))
		assert.ErrorIs(t, err, entities.ErrInvalidScheduleWindow)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("driver error is wrapped", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		boom := errors.New("deadlock detected")
		mock.ExpectQuery(regexp.QuoteMeta("UPDATE work_orders")).WillReturnError(boom)

		_, err = NewWorkOrderPostgresRepository(db).UpdateSchedule(context.Background(), "wo-1", entities.ClearSchedule())
		assert.ErrorIs(t, err, boom)
	})
}

func TestProductionLinePostgresRepository(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows(productionLineRowColumns).
		AddRow("l1", "Line 1", "active", int64(1), 8.0, int64(5), "07:00", "15:30", "11:30", int64(30), int64(0), 1.0, true).
		AddRow("l2", "Line 2", "maintenance", int64(2), 8.0, int64(6), "06:00", "22:30", "", int64(30), int64(15), 1.25, false)
	mock.ExpectQuery(regexp.QuoteMeta("FROM production_lines ORDER BY name, id")).WillReturnRows(rows)
	mock.ExpectQuery(regexp.QuoteMeta("FROM production_lines WHERE id = $1")).
		WithArgs("nope").
		WillReturnError(sql.ErrNoRows)

	repo := NewProductionLinePostgresRepository(db)
	lines, err := repo.ListLines(context.Background())
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, 8.0, lines[0].DailyCapacity())
	assert.Equal(t, entities.LineStatusMaintenance, lines[1].Status)
	assert.Equal(t, 16.0, lines[1].DailyCapacity())
	assert.False(t, lines[1].AutoScheduleEnabled)

	missing, err := repo.GetByID(context.Background(), "nope")
	require.NoError(t, err)
	assert.Empty(t, missing.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWorkOrderPostgresRepository_GetByNumber(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	updated := time.Date(2024, 1, 5, 12, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta("FROM work_orders WHERE work_order_number = $1 ORDER BY id LIMIT 1")).
		WithArgs("WO-1001").
		WillReturnRows(sqlmock.NewRows(workOrderRowColumns).
			AddRow("wo-1", "WO-1001", "Acme", "PCB-7", "", int64(50), "Ready",
				nil, nil, 0.0, 3.0, 0.0, nil, nil, nil, nil, updated))
	mock.ExpectQuery(regexp.QuoteMeta("WHERE work_order_number = $1")).
		WithArgs("WO-404").
		WillReturnRows(sqlmock.NewRows(workOrderRowColumns))

	repo := NewWorkOrderPostgresRepository(db)
	got, err := repo.GetByNumber(context.Background(), "WO-1001")
	require.NoError(t, err)
	assert.Equal(t, "wo-1", got.ID)

	got, err = repo.GetByNumber(context.Background(), "WO-404")
	require.NoError(t, err)
	assert.Empty(t, got.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWorkOrderPostgresRepository_Save(t *testing.T) {
	ship := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	wo := entities.WorkOrder{ID: "wo-9", Number: "WO-9", Customer: "Acme", Assembly: "PCB-7", Quantity: 10,
		Status: entities.WorkOrderStatusReady, ShipDate: &ship, ProductionHours: 3}

	t.Run("upserts by id", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		updated := time.Date(2024, 1, 5, 12, 0, 0, 0, time.UTC)
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO work_orders (")).
			WithArgs("wo-9", "WO-9", "Acme", "PCB-7", "", 10, "Ready",
				sqlmock.AnyArg(), nil, 0.0, 3.0, 0.0, nil, nil, nil, nil, sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows(workOrderRowColumns).
				AddRow("wo-9", "WO-9", "Acme", "PCB-7", "", int64(10), "Ready",
					ship, nil, 0.0, 3.0, 0.0, nil, nil, nil, nil, updated))

		got, err := NewWorkOrderPostgresRepository(db).Save(context.Background(), wo)
		require.NoError(t, err)
		assert.Equal(t, "wo-9", got.ID)
		assert.True(t, got.UpdatedAt.Equal(updated))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("conflict clause updates every column", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(regexp.QuoteMeta("ON CONFLICT (id) DO UPDATE SET")).
			WillReturnError(errors.New("connection reset"))

		_, err = NewWorkOrderPostgresRepository(db).Save(context.Background(), wo)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to save work order WO-9")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("invalid work order never reaches the database", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		bad := wo
		bad.Assembly = ""
		_, err = NewWorkOrderPostgresRepository(db).Save(context.Background(), bad)
		assert.ErrorIs(t, err, entities.ErrInvalidWorkOrder)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
