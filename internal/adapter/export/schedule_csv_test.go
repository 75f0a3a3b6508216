package export

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"smt_scheduler/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func scheduled(id, number, lineID string, start time.Time, hours, position int) entities.WorkOrder {
	end := start.Add(time.Duration(hours) * time.Hour)
	return entities.WorkOrder{
		ID:             id,
		Number:         number,
		Customer:       "Acme",
		Assembly:       "PCB-" + id,
		Revision:       "A",
		Quantity:       25,
		Status:         entities.WorkOrderStatusReady,
		LineID:         ptr(lineID),
		ScheduledStart: ptr(start),
		ScheduledEnd:   ptr(end),
		LinePosition:   ptr(position),
	}
}

func TestWriteLineSchedules(t *testing.T) {
	mon := time.Date(2024, 1, 8, 7, 0, 0, 0, time.UTC)
	lines := []entities.ProductionLine{
		{ID: "l2", Name: "Line B"},
		{ID: "l1", Name: "Line A"},
	}
	onHold := scheduled("wo-4", "WO-4", "l1", mon.AddDate(0, 0, 2), 2, 3)
	onHold.Status = entities.WorkOrderStatusOnHold
	onHold.ShipDate = ptr(time.Date(2024, 1, 19, 0, 0, 0, 0, time.UTC))
	orders := []entities.WorkOrder{
		scheduled("wo-1", "WO-1", "l2", mon, 4, 1),
		scheduled("wo-2", "WO-2", "l1", mon.Add(4*time.Hour), 2, 2),
		scheduled("wo-3", "WO-3", "l1", mon, 4, 1),
		onHold,
		{ID: "wo-5", Number: "WO-5", Status: entities.WorkOrderStatusPending},
	}

	t.Run("ordered by line name then start", func(t *testing.T) {
		var buf bytes.Buffer
		n, err := WriteLineSchedules(&buf, lines, orders, Filter{}, time.UTC)
		require.NoError(t, err)
		assert.Equal(t, 4, n)

		records, err := csv.NewReader(&buf).ReadAll()
		require.NoError(t, err)
		require.Len(t, records, 5)
		assert.Equal(t, scheduleHeader, records[0])

		var got []string
		for _, r := range records[1:] {
			got = append(got, r[0]+"/"+r[2])
		}
		assert.Equal(t, []string{"Line A/WO-3", "Line A/WO-2", "Line A/WO-4", "Line B/WO-1"}, got)
		assert.Equal(t, []string{
			"Line A", "3", "WO-4", "Acme", "PCB-wo-4", "A", "25", "On Hold",
			"", "2024-01-19", "2024-01-10 07:00", "2024-01-10 09:00",
		}, records[3])
	})

	t.Run("line and status filters", func(t *testing.T) {
		var buf bytes.Buffer
		n, err := WriteLineSchedules(&buf, lines, orders, Filter{LineName: "line a", Status: "on hold"}, time.UTC)
		require.NoError(t, err)
		assert.Equal(t, 1, n)
	})

	t.Run("renders in the plant zone", func(t *testing.T) {
		loc := time.FixedZone("CST", -6*3600)
		var buf bytes.Buffer
		_, err := WriteLineSchedules(&buf, lines[:1], orders[:1], Filter{}, loc)
		require.NoError(t, err)
		records, err := csv.NewReader(&buf).ReadAll()
		require.NoError(t, err)
		assert.Equal(t, "2024-01-08 01:00", records[1][10])
	})
}
