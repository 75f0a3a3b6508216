package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"smt_scheduler/internal/domain/entities"
	mock_interfaces "smt_scheduler/internal/usecase/interfaces/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func importDraft(number string) entities.WorkOrder {
	return entities.WorkOrder{
		Number: number, Customer: "Acme", Assembly: "PCB-7", Quantity: 25,
		Status: entities.WorkOrderStatusReady, ProductionHours: 6,
	}
}

func TestWorkOrderUseCase_Import(t *testing.T) {
	t.Run("new work order gets a fresh id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIWorkOrderRepository(ctrl)

		repo.EXPECT().GetByNumber(gomock.Any(), "WO-1").Return(entities.WorkOrder{}, nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, wo entities.WorkOrder) (entities.WorkOrder, error) {
				assert.NotEmpty(t, wo.ID)
				assert.Equal(t, "WO-1", wo.Number)
				assert.Nil(t, wo.LineID)
				return wo, nil
			})

		uc := NewWorkOrderUseCase(repo, nil)
		rep, err := uc.Import(context.Background(), []ImportRow{{Line: 2, Number: "WO-1", WorkOrder: importDraft("WO-1")}}, false)
		require.NoError(t, err)
		assert.Equal(t, 1, rep.TotalRows)
		assert.Equal(t, 1, rep.Created)
		assert.Equal(t, 1, rep.Successful())
		assert.Empty(t, rep.Errors)
	})

	t.Run("existing work order keeps id and assignment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIWorkOrderRepository(ctrl)

		start := time.Date(2024, 1, 8, 7, 0, 0, 0, time.UTC)
		stored := scheduledJob("wo-9", "l1", 4, start, start.Add(4*time.Hour))
		stored.Number = "WO-1"

		repo.EXPECT().GetByNumber(gomock.Any(), "WO-1").Return(stored, nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, wo entities.WorkOrder) (entities.WorkOrder, error) {
				assert.Equal(t, "wo-9", wo.ID)
				assert.Equal(t, "l1", wo.AssignedLineID())
				assert.Equal(t, start, *wo.ScheduledStart)
				assert.Equal(t, 6.0, wo.ProductionHours)
				return wo, nil
			})

		uc := NewWorkOrderUseCase(repo, nil)
		rep, err := uc.Import(context.Background(), []ImportRow{{Line: 2, Number: "WO-1", WorkOrder: importDraft("WO-1")}}, false)
		require.NoError(t, err)
		assert.Equal(t, 1, rep.Updated)
		assert.Zero(t, rep.Created)
	})

	t.Run("failed rows are reported and the rest imported", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIWorkOrderRepository(ctrl)

		bad := importDraft("WO-2")
		bad.Customer = ""

		repo.EXPECT().GetByNumber(gomock.Any(), "WO-2").Return(entities.WorkOrder{}, nil)
		repo.EXPECT().GetByNumber(gomock.Any(), "WO-3").Return(entities.WorkOrder{}, nil)
		repo.EXPECT().GetByNumber(gomock.Any(), "WO-4").Return(entities.WorkOrder{}, nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(entities.WorkOrder{}, errors.New("throttled"))
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(entities.WorkOrder{ID: "x"}, nil)

		rows := []ImportRow{
			{Line: 2, Number: "WO-1", Err: errors.New("unparseable Ship Date")},
			{Line: 3, Number: "WO-2", WorkOrder: bad},
			{Line: 4, Number: "WO-3", WorkOrder: importDraft("WO-3")},
			{Line: 5, Number: "WO-4", WorkOrder: importDraft("WO-4")},
		}
		uc := NewWorkOrderUseCase(repo, nil)
		rep, err := uc.Import(context.Background(), rows, false)
		require.NoError(t, err)

		assert.Equal(t, 4, rep.TotalRows)
		assert.Equal(t, 3, rep.Failed)
		assert.Equal(t, 1, rep.Created)
		require.Len(t, rep.Errors, 3)
		assert.Equal(t, "WO WO-1: unparseable Ship Date", rep.Errors[0])
		assert.True(t, strings.HasPrefix(rep.Errors[1], "WO WO-2: "))
		assert.Contains(t, rep.Errors[1], "customer is required")
		assert.Contains(t, rep.Errors[2], "throttled")
	})

	t.Run("dry run validates without writing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIWorkOrderRepository(ctrl)

		repo.EXPECT().GetByNumber(gomock.Any(), "WO-1").Return(entities.WorkOrder{}, nil)

		uc := NewWorkOrderUseCase(repo, nil)
		rep, err := uc.Import(context.Background(), []ImportRow{{Number: "WO-1", WorkOrder: importDraft("WO-1")}}, true)
		require.NoError(t, err)
		assert.True(t, rep.DryRun)
		assert.Equal(t, 1, rep.Created)
	})

	t.Run("row without a number is reported as unknown", func(t *testing.T) {
		uc := NewWorkOrderUseCase(nil, nil)
		rep, err := uc.Import(context.Background(), []ImportRow{{Line: 7, Err: errors.New("WO is required")}}, false)
		require.NoError(t, err)
		assert.Equal(t, []string{"WO Unknown: WO is required"}, rep.Errors)
	})

	t.Run("cancelled context stops the import", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		uc := NewWorkOrderUseCase(nil, nil)
		_, err := uc.Import(ctx, []ImportRow{{Number: "WO-1", WorkOrder: importDraft("WO-1")}}, false)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestWorkOrderUseCase_GetWorkOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockIWorkOrderRepository(ctrl)
	uc := NewWorkOrderUseCase(repo, nil)

	_, err := uc.GetWorkOrder(context.Background(), " ")
	assert.ErrorIs(t, err, ErrWorkOrderNotFound)

	repo.EXPECT().GetByID(gomock.Any(), "ghost").Return(entities.WorkOrder{}, nil)
	_, err = uc.GetWorkOrder(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrWorkOrderNotFound)

	repo.EXPECT().GetByID(gomock.Any(), "wo-1").Return(entities.WorkOrder{ID: "wo-1", Number: "WO-1"}, nil)
	got, err := uc.GetWorkOrder(context.Background(), "wo-1")
	require.NoError(t, err)
	assert.Equal(t, "WO-1", got.Number)
}
