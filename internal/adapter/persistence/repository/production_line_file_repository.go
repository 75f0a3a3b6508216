package repository

import (
	"context"
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"smt_scheduler/internal/domain/entities"
	"smt_scheduler/internal/usecase/interfaces"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var ErrDuplicateLineID = errors.New("duplicate production line id")

// lineFile is the LINES_FILE document:
//
//	lines:
//	  - id: l1
//	    name: Line 1
//	    shifts_per_day: 1
//	    hours_per_shift: 8
//	    days_per_week: 5
//	    shift_start: "07:00"
type lineFile struct {
	Lines []lineEntry `yaml:"lines"`
}

// lineEntry uses pointers where an omitted key must not read as false or zero.
type lineEntry struct {
	entities.ProductionLine `yaml:",inline"`
	AutoSchedule            *bool    `yaml:"auto_schedule_enabled"`
	Multiplier              *float64 `yaml:"time_multiplier"`
}

// ProductionLineFileRepository serves the Line Registry from a YAML file
// loaded once at startup.
type ProductionLineFileRepository struct {
	lines []entities.ProductionLine
}

var _ interfaces.IProductionLineRepository = (*ProductionLineFileRepository)(nil)

func NewProductionLineFileRepository(path string) (*ProductionLineFileRepository, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read lines file: %w", err)
	}
	lines, err := ParseLines(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to load lines file %s: %w", path, err)
	}
	return &ProductionLineFileRepository{lines: lines}, nil
}

// ParseLines decodes and validates a lines document. Calendar strings are
// checked later by the engine so a bad shift time only excludes its lane.
func ParseLines(raw []byte) ([]entities.ProductionLine, error) {
	var doc lineFile
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode lines: %w", err)
	}

	validate := validator.New()
	seen := make(map[string]bool, len(doc.Lines))
	out := make([]entities.ProductionLine, 0, len(doc.Lines))
	for i, e := range doc.Lines {
		line := e.ProductionLine
		line.AutoScheduleEnabled = e.AutoSchedule == nil || *e.AutoSchedule
		line.TimeMultiplier = 1
		if e.Multiplier != nil {
			line.TimeMultiplier = *e.Multiplier
		}
		if line.Status == "" {
			line.Status = entities.LineStatusActive
		}
		line.Status = entities.LineStatus(strings.ToLower(string(line.Status)))

		if err := validate.Struct(line); err != nil {
			return nil, fmt.Errorf("line %d (%s): %w", i+1, line.ID, err)
		}
		if seen[line.ID] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateLineID, line.ID)
		}
		seen[line.ID] = true
		out = append(out, line)
	}

	slices.SortFunc(out, func(a, b entities.ProductionLine) int {
		if c := strings.Compare(a.Name, b.Name); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})
	return out, nil
}

func (r *ProductionLineFileRepository) ListLines(_ context.Context) ([]entities.ProductionLine, error) {
	return slices.Clone(r.lines), nil
}

func (r *ProductionLineFileRepository) GetByID(_ context.Context, id string) (entities.ProductionLine, error) {
	for _, l := range r.lines {
		if l.ID == id {
			return l, nil
		}
	}
	return entities.ProductionLine{}, nil
}
