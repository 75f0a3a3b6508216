package routes

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"smt_scheduler/internal/adapter/http/handlers/mocks"
	"smt_scheduler/internal/domain/entities"
	"smt_scheduler/internal/infrastructure/metrics"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestNewRouter_RegistersRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	r := NewRouter(Dependencies{
		AutoSchedule:   mocks.NewMockIAutoScheduleUseCase(ctrl),
		ProductionLine: mocks.NewMockIProductionLineUseCase(ctrl),
		WorkOrder:      mocks.NewMockIWorkOrderUseCase(ctrl),
		Metrics:        metrics.New(metrics.DefaultConfig()),
	})

	want := map[string]bool{
		"GET /swagger/*any":               false,
		"GET /metrics":                    false,
		"GET /health":                     false,
		"GET /v1/ping":                    false,
		"POST /v1/schedule/auto-run":      false,
		"GET /v1/lines":                   false,
		"GET /v1/lines/:line_id/schedule": false,
		"GET /v1/lines/:line_id/capacity": false,
		"GET /v1/work-orders/:id":         false,
	}
	for _, route := range r.Routes() {
		key := route.Method + " " + route.Path
		if _, ok := want[key]; ok {
			want[key] = true
		}
	}
	for key, found := range want {
		if !found {
			t.Fatalf("route %s not registered", key)
		}
	}
}

func TestNewRouter_AutoRun(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	asOf := time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC)
	uc := mocks.NewMockIAutoScheduleUseCase(ctrl)
	uc.EXPECT().RunAutoSchedule(gomock.Any(), asOf).Return(entities.RunResult{RunID: "run-1", AsOf: asOf}, nil)

	m := metrics.New(metrics.DefaultConfig())
	r := NewRouter(Dependencies{
		AutoSchedule:   uc,
		ProductionLine: mocks.NewMockIProductionLineUseCase(ctrl),
		Metrics:        m,
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/schedule/auto-run", strings.NewReader(`{"as_of":"2024-01-08"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"run_id":"run-1"`) {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestNewRouter_RecoversFromPanic(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := mocks.NewMockIProductionLineUseCase(ctrl)
	uc.EXPECT().ListLines(gomock.Any()).DoAndReturn(func(_ any) ([]entities.ProductionLine, error) {
		panic("registry exploded")
	})

	r := NewRouter(Dependencies{
		AutoSchedule:   mocks.NewMockIAutoScheduleUseCase(ctrl),
		ProductionLine: uc,
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/lines", nil))
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
}

func TestNewRouter_WorkOrderLookup(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := mocks.NewMockIWorkOrderUseCase(ctrl)
	uc.EXPECT().GetWorkOrder(gomock.Any(), "wo-1").Return(entities.WorkOrder{ID: "wo-1", Number: "WO-1"}, nil)

	r := NewRouter(Dependencies{
		AutoSchedule:   mocks.NewMockIAutoScheduleUseCase(ctrl),
		ProductionLine: mocks.NewMockIProductionLineUseCase(ctrl),
		WorkOrder:      uc,
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/work-orders/wo-1", nil))
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"work_order_number":"WO-1"`) {
		t.Fatalf("unexpected response %d: %s", w.Code, w.Body.String())
	}
}
