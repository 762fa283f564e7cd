package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/angelmondragon/lotflow-backend/internal/production"
	"github.com/angelmondragon/lotflow-backend/internal/stageevents"
)

func TestStageEventCreate(t *testing.T) {
	svc := &testStageEventService{
		createFn: func(ctx context.Context, input stageevents.EventInput) (*production.StageEvent, error) {
			if input.LotCode != "AJMZ 2" || input.Stage != "POLISHING" {
				t.Fatalf("unexpected input %+v", input)
			}
			return &production.StageEvent{ID: uuid.New(), LotCode: input.LotCode, Stage: input.Stage}, nil
		},
	}
	body := `{"event":{"lot_code":"AJMZ 2","stage":"POLISHING","yield_cts":"2.4"}}`
	resp := httptest.NewRecorder()
	StageEventCreate(svc, testLogger())(resp, httptest.NewRequest(http.MethodPost, "/api/v1/production/stage-events", strings.NewReader(body)))

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d: %s", resp.Code, resp.Body.String())
	}
}

func TestStageEventCreateRequiresEvent(t *testing.T) {
	svc := &testStageEventService{
		createFn: func(context.Context, stageevents.EventInput) (*production.StageEvent, error) {
			t.Fatal("service must not be called")
			return nil, nil
		},
	}
	for _, body := range []string{`{}`, `{"event":{"stage":"CUTTING"}}`} {
		resp := httptest.NewRecorder()
		StageEventCreate(svc, testLogger())(resp, httptest.NewRequest(http.MethodPost, "/api/v1/production/stage-events", strings.NewReader(body)))
		if resp.Code != http.StatusBadRequest {
			t.Fatalf("body %s: expected 400 got %d", body, resp.Code)
		}
	}
}

func TestStageEventListPassesLotCode(t *testing.T) {
	var got string
	svc := &testStageEventService{
		listFn: func(ctx context.Context, lotCode string) ([]production.StageEvent, error) {
			got = lotCode
			return []production.StageEvent{}, nil
		},
	}
	resp := httptest.NewRecorder()
	StageEventList(svc, testLogger())(resp, httptest.NewRequest(http.MethodGet, "/api/v1/production/stage-events?lot_code=AJMZ+2", nil))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if got != "AJMZ 2" {
		t.Fatalf("unexpected lot code %q", got)
	}
}
