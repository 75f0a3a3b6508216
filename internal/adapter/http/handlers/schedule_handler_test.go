package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"smt_scheduler/internal/adapter/http/handlers/mocks"
	"smt_scheduler/internal/domain/entities"
	"smt_scheduler/internal/domain/scheduling"
	"smt_scheduler/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

type fixedClock time.Time

func (c fixedClock) Now() time.Time { return time.Time(c) }

func newScheduleRouter(uc usecase.IAutoScheduleUseCase) *gin.Engine {
	return newScheduleRouterAt(uc, nil)
}

func newScheduleRouterAt(uc usecase.IAutoScheduleUseCase, clock scheduling.Clock) *gin.Engine {
	h := NewScheduleHandler(uc, time.UTC, clock, nil)
	r := gin.New()
	r.POST("/v1/schedule/auto-run", h.RunAutoSchedule)
	return r
}

func postAutoRun(r *gin.Engine, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(http.MethodPost, "/v1/schedule/auto-run", nil)
	} else {
		req = httptest.NewRequest(http.MethodPost, "/v1/schedule/auto-run", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestScheduleHandler_RunAutoSchedule(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAutoScheduleUseCase(ctrl)

		w := postAutoRun(newScheduleRouter(uc), "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("as_of too long", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAutoScheduleUseCase(ctrl)

		w := postAutoRun(newScheduleRouter(uc), `{"as_of":"2024-01-08T06:00:00.000000000+00:00 and then some"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid as_of", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAutoScheduleUseCase(ctrl)

		w := postAutoRun(newScheduleRouter(uc), `{"as_of":"someday"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["code"] != "INVALID_AS_OF" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("empty body runs as of now", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAutoScheduleUseCase(ctrl)
		uc.EXPECT().RunAutoSchedule(gomock.Any(), time.Time{}).Return(entities.RunResult{RunID: "run-1"}, nil)

		w := postAutoRun(newScheduleRouter(uc), "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAutoScheduleUseCase(ctrl)

		want := time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC)
		uc.EXPECT().RunAutoSchedule(gomock.Any(), want).Return(entities.RunResult{
			RunID:            "run-1",
			ScheduledCount:   2,
			FailedCount:      1,
			UnprocessedCount: 0,
			Outcomes: []entities.JobOutcome{
				{WorkOrderID: "a", Number: "WO-1", Outcome: entities.JobOutcomeFailed, Reason: entities.ReasonDueDate},
			},
		}, nil)

		w := postAutoRun(newScheduleRouter(uc), `{"as_of":"2024-01-08"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			ScheduledCount   int `json:"scheduled_count"`
			FailedCount      int `json:"failed_count"`
			UnprocessedCount int `json:"unprocessed_count"`
			Outcomes         []struct {
				Reason string `json:"reason"`
			} `json:"outcomes"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if body.ScheduledCount != 2 || body.FailedCount != 1 || len(body.Outcomes) != 1 || body.Outcomes[0].Reason != "due_date_unreachable" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("short date takes the year from the injected clock", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAutoScheduleUseCase(ctrl)
		want := time.Date(2031, 1, 9, 0, 0, 0, 0, time.UTC)
		uc.EXPECT().RunAutoSchedule(gomock.Any(), want).Return(entities.RunResult{RunID: "run-1"}, nil)

		clock := fixedClock(time.Date(2031, 6, 1, 12, 0, 0, 0, time.UTC))
		w := postAutoRun(newScheduleRouterAt(uc, clock), `{"as_of":"1/9"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})

	cases := []struct {
		name string
		err  error
		code int
	}{
		{"run in progress", usecase.ErrRunInProgress, http.StatusConflict},
		{"store unavailable", fmt.Errorf("%w: list lines: timeout", usecase.ErrStoreUnavailable), http.StatusServiceUnavailable},
		{"run lock unavailable", usecase.ErrRunLockUnavailable, http.StatusServiceUnavailable},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc := mocks.NewMockIAutoScheduleUseCase(ctrl)
			uc.EXPECT().RunAutoSchedule(gomock.Any(), gomock.Any()).Return(entities.RunResult{}, tc.err)

			w := postAutoRun(newScheduleRouter(uc), `{}`)
			if w.Code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, w.Code)
			}
		})
	}
}
