package csvimport

import (
	"strings"
	"testing"
	"time"

	"smt_scheduler/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const header = "WO,Customer,Assembly,Rev,Qty,Status,Kit Date,Ship Date,Time (mins),Set Up (hrs),Time (hrs),Time (days),Trolley,Line,Line Position\n"

var readAt = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

func utcDate(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestRead(t *testing.T) {
	t.Run("parses the spreadsheet columns", func(t *testing.T) {
		in := header +
			`WO-1001,Acme,PCB-7,B,"1,200",Clear to Build,1/15,2/20/2024,30,1.5,6,1,T3,Line 2,4` + "\n" +
			`WO-1002,Globex,CTL-1,,50,,2024-01-10,01/25/24,,,,2,,,` + "\n"

		rows, err := Read(strings.NewReader(in), Options{Now: readAt})
		require.NoError(t, err)
		require.Len(t, rows, 2)

		first := rows[0]
		require.NoError(t, first.Err)
		assert.Equal(t, 2, first.Line)
		assert.Equal(t, "WO-1001", first.Number)
		wo := first.WorkOrder
		assert.Equal(t, "Acme", wo.Customer)
		assert.Equal(t, "B", wo.Revision)
		assert.Equal(t, 1200, wo.Quantity)
		assert.Equal(t, entities.WorkOrderStatusClearBuild, wo.Status)
		assert.Equal(t, utcDate(2024, time.January, 15), *wo.KitDate)
		assert.Equal(t, utcDate(2024, time.February, 20), *wo.ShipDate)
		assert.Equal(t, 1.5, wo.SetupHours)
		assert.Equal(t, 6.5, wo.ProductionHours)
		assert.Equal(t, 1.0, wo.ProductionDays)
		assert.Nil(t, wo.LineID)
		assert.Nil(t, wo.LinePosition)

		second := rows[1].WorkOrder
		require.NoError(t, rows[1].Err)
		assert.Equal(t, entities.WorkOrderStatusReady, second.Status)
		assert.Equal(t, utcDate(2024, time.January, 25), *second.ShipDate)
		assert.Equal(t, 16.0, second.TotalHours())
	})

	t.Run("blank spreadsheet lines are dropped", func(t *testing.T) {
		in := header + ",,,,,,,,,,,,,,\n" + "WO-7,,PCB,,1,,,,,,,,,,\n" + "WO-8,Acme,PCB,,1,,,,,,,,,,\n"

		rows, err := Read(strings.NewReader(in), Options{Now: readAt})
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "WO-8", rows[0].Number)
		assert.Equal(t, 4, rows[0].Line)
	})

	t.Run("invalid rows carry their reasons", func(t *testing.T) {
		in := header +
			"WO-1,Acme,,,0,Shipped,3/10,3/01,,abc,,,,,\n" +
			"WO-2,Acme,PCB,,5,,someday,,,,,,,,\n"

		rows, err := Read(strings.NewReader(in), Options{Now: readAt})
		require.NoError(t, err)
		require.Len(t, rows, 2)

		require.Error(t, rows[0].Err)
		msg := rows[0].Err.Error()
		for _, want := range []string{"Assembly is required", `unknown Status "Shipped"`, "Ship date must be after kit date", "Quantity must be positive", `unparseable Set Up (hrs) "abc"`} {
			assert.Contains(t, msg, want)
		}
		assert.Equal(t, "WO-1", rows[0].Number)

		require.Error(t, rows[1].Err)
		assert.Contains(t, rows[1].Err.Error(), `unparseable Kit Date "someday"`)
	})

	t.Run("preamble rows are skipped", func(t *testing.T) {
		in := "Production Schedule\nWeek 10\n,,\nPrinted 3/1\nPlanner,,\n" + header + "WO-5,Acme,PCB,,3,,,,,,2,,,,\n"

		rows, err := Read(strings.NewReader(in), Options{SkipRows: SpreadsheetPreambleRows, Now: readAt})
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, 2.0, rows[0].WorkOrder.ProductionHours)
	})

	t.Run("missing required column", func(t *testing.T) {
		_, err := Read(strings.NewReader("WO,Customer,Qty\nWO-1,Acme,1\n"), Options{Now: readAt})
		assert.ErrorIs(t, err, ErrMissingHeader)
	})

	t.Run("empty file", func(t *testing.T) {
		_, err := Read(strings.NewReader(""), Options{})
		assert.ErrorIs(t, err, ErrMissingHeader)
	})
}
