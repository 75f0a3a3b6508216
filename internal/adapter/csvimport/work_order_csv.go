// Package csvimport reads the shop-floor work-order spreadsheet export.
package csvimport

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"smt_scheduler/internal/domain/entities"
	"smt_scheduler/internal/usecase"
)

// Spreadsheet column names.
const (
	ColWO           = "WO"
	ColCustomer     = "Customer"
	ColAssembly     = "Assembly"
	ColRev          = "Rev"
	ColQty          = "Qty"
	ColStatus       = "Status"
	ColKitDate      = "Kit Date"
	ColShipDate     = "Ship Date"
	ColTimeMinutes  = "Time (mins)"
	ColSetupHours   = "Set Up (hrs)"
	ColTimeHours    = "Time (hrs)"
	ColTimeDays     = "Time (days)"
	ColTrolley      = "Trolley"
	ColLine         = "Line"
	ColLinePosition = "Line Position"
)

// SpreadsheetPreambleRows is the banner above the header in the planning
// spreadsheet export.
const SpreadsheetPreambleRows = 5

var ErrMissingHeader = errors.New("csv header is missing required column")

// Options controls how a file is read.
type Options struct {
	// SkipRows are discarded before the header row.
	SkipRows int
	// Now supplies the year for MM/DD dates.
	Now time.Time
}

// Read parses every data row into an import row. Rows without a WO or a
// Customer are blank spreadsheet lines and are dropped. Line, Line Position
// and Trolley are read for validation only: placement is the scheduler's.
// Only an unreadable file or header is returned as an error.
func Read(r io.Reader, opts Options) ([]usecase.ImportRow, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	for i := 0; i < opts.SkipRows; i++ {
		if _, err := cr.Read(); err != nil {
			if errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("%w: %s (file ends in preamble)", ErrMissingHeader, ColWO)
			}
			return nil, fmt.Errorf("failed to read csv preamble: %w", err)
		}
	}

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: %s (empty file)", ErrMissingHeader, ColWO)
		}
		return nil, fmt.Errorf("failed to read csv header: %w", err)
	}
	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))] = i
	}
	for _, required := range []string{ColWO, ColCustomer, ColAssembly} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingHeader, required)
		}
	}

	var rows []usecase.ImportRow
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read csv: %w", err)
		}
		line, _ := cr.FieldPos(0)
		get := func(col string) string {
			i, ok := cols[col]
			if !ok || i >= len(rec) {
				return ""
			}
			return strings.TrimSpace(rec[i])
		}

		number := get(ColWO)
		if number == "" || get(ColCustomer) == "" {
			continue
		}
		wo, err := parseRow(get, opts.Now)
		rows = append(rows, usecase.ImportRow{Line: line, Number: number, WorkOrder: wo, Err: err})
	}
	return rows, nil
}

func parseRow(get func(string) string, now time.Time) (entities.WorkOrder, error) {
	var errs []string
	wo := entities.WorkOrder{
		Number:   get(ColWO),
		Customer: get(ColCustomer),
		Assembly: get(ColAssembly),
		Revision: get(ColRev),
		Status:   entities.WorkOrderStatusReady,
	}
	if wo.Assembly == "" {
		errs = append(errs, "Assembly is required")
	}

	if raw := get(ColStatus); raw != "" {
		st, ok := entities.ParseWorkOrderStatus(raw)
		if !ok {
			errs = append(errs, fmt.Sprintf("unknown Status %q", raw))
		}
		wo.Status = st
	}

	date := func(col string) *time.Time {
		t, err := parseDate(get(col), now)
		if err != nil {
			errs = append(errs, fmt.Sprintf("unparseable %s %q", col, get(col)))
			return nil
		}
		return t
	}
	wo.KitDate = date(ColKitDate)
	wo.ShipDate = date(ColShipDate)
	if wo.KitDate != nil && wo.ShipDate != nil && wo.ShipDate.Before(*wo.KitDate) {
		errs = append(errs, "Ship date must be after kit date")
	}

	number := func(col string) float64 {
		v, ok, err := parseNumber(get(col))
		if err != nil {
			errs = append(errs, fmt.Sprintf("unparseable %s %q", col, get(col)))
		}
		if ok && v < 0 {
			errs = append(errs, fmt.Sprintf("%s must not be negative", col))
		}
		return v
	}
	qty, hasQty, err := parseNumber(get(ColQty))
	switch {
	case err != nil:
		errs = append(errs, fmt.Sprintf("unparseable %s %q", ColQty, get(ColQty)))
	case hasQty && qty <= 0:
		errs = append(errs, "Quantity must be positive")
	default:
		wo.Quantity = int(math.Round(qty))
	}
	wo.SetupHours = number(ColSetupHours)
	wo.ProductionHours = number(ColTimeHours) + number(ColTimeMinutes)/60
	wo.ProductionDays = number(ColTimeDays)
	number(ColTrolley)
	number(ColLinePosition)

	if len(errs) > 0 {
		return entities.WorkOrder{}, errors.New(strings.Join(errs, ", "))
	}
	return wo, nil
}

// parseDate accepts the spreadsheet formats MM/DD (year of now),
// MM/DD/YYYY, YYYY-MM-DD and MM/DD/YY. Dates are midnight UTC.
func parseDate(raw string, now time.Time) (*time.Time, error) {
	t, err := usecase.ParseAsOf(raw, now, time.UTC)
	if err != nil || t.IsZero() {
		return nil, err
	}
	d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return &d, nil
}

// parseNumber strips thousands separators. ok is false for an empty cell.
func parseNumber(raw string) (v float64, ok bool, err error) {
	raw = strings.ReplaceAll(raw, ",", "")
	if raw == "" {
		return 0, false, nil
	}
	v, err = strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false, err
	}
	return v, true, nil
}
