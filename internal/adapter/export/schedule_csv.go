package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
	"time"

	"smt_scheduler/internal/domain/entities"
	"smt_scheduler/internal/usecase"
)

var scheduleHeader = []string{
	"Line", "Line Position", "WO", "Customer", "Assembly", "Rev", "Qty", "Status",
	"Kit Date", "Ship Date", "Scheduled Start", "Scheduled End",
}

const (
	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02 15:04"
)

// Filter narrows an export. Empty fields match everything.
type Filter struct {
	LineName string
	Status   string
}

// WriteLineSchedules writes one row per scheduled work order, ordered by line
// name, scheduled start and line position. Times are rendered in loc.
// It returns the number of data rows written.
func WriteLineSchedules(w io.Writer, lines []entities.ProductionLine, orders []entities.WorkOrder, filter Filter, loc *time.Location) (int, error) {
	if loc == nil {
		loc = time.UTC
	}
	lines = slices.Clone(lines)
	slices.SortFunc(lines, func(a, b entities.ProductionLine) int {
		if c := strings.Compare(a.Name, b.Name); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})

	byLine := make(map[string][]entities.WorkOrder)
	for _, wo := range orders {
		if !wo.IsScheduled() || wo.Status.IsTerminal() {
			continue
		}
		if filter.Status != "" && !strings.EqualFold(string(wo.Status), filter.Status) {
			continue
		}
		byLine[*wo.LineID] = append(byLine[*wo.LineID], wo)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(scheduleHeader); err != nil {
		return 0, fmt.Errorf("failed to write csv header: %w", err)
	}

	rows := 0
	for _, line := range lines {
		if filter.LineName != "" && !strings.EqualFold(line.Name, filter.LineName) {
			continue
		}
		group := byLine[line.ID]
		usecase.SortBySchedule(group)
		for _, wo := range group {
			if err := cw.Write(scheduleRow(line, wo, loc)); err != nil {
				return rows, fmt.Errorf("failed to write csv row: %w", err)
			}
			rows++
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return rows, fmt.Errorf("failed to flush csv: %w", err)
	}
	return rows, nil
}

func scheduleRow(line entities.ProductionLine, wo entities.WorkOrder, loc *time.Location) []string {
	position := ""
	if wo.LinePosition != nil {
		position = strconv.Itoa(*wo.LinePosition)
	}
	return []string{
		line.Name,
		position,
		wo.Number,
		wo.Customer,
		wo.Assembly,
		wo.Revision,
		strconv.Itoa(wo.Quantity),
		string(wo.Status),
		formatDate(wo.KitDate),
		formatDate(wo.ShipDate),
		wo.ScheduledStart.In(loc).Format(dateTimeLayout),
		wo.ScheduledEnd.In(loc).Format(dateTimeLayout),
	}
}

// formatDate keeps the stored calendar day; dates are not shifted by zone.
func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(dateLayout)
}
