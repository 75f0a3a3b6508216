package interfaces

//go:generate mockgen -source=production_line_repository_interface.go -destination=mocks/production_line_repository_interface_mock.go

import (
	"context"

	"smt_scheduler/internal/domain/entities"
)

// IProductionLineRepository is the read-only Production-Line Registry.
//
// Not-found is reported as a zero-value ProductionLine (empty ID) with a nil error.
type IProductionLineRepository interface {
	ListLines(ctx context.Context) ([]entities.ProductionLine, error)
	GetByID(ctx context.Context, id string) (entities.ProductionLine, error)
}
