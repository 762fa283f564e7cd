package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/angelmondragon/lotflow-backend/internal/audit"
	"github.com/angelmondragon/lotflow-backend/pkg/enums"
)

func TestAuditListParsesFilter(t *testing.T) {
	entityID := uuid.New()
	var got audit.Filter
	svc := &testAuditService{
		listFn: func(ctx context.Context, filter audit.Filter) ([]audit.EntryView, error) {
			got = filter
			return []audit.EntryView{}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/audit?entity_type=memos&entity_id="+entityID.String()+"&limit=20", nil)
	resp := httptest.NewRecorder()
	AuditList(svc, testLogger())(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("unexpected status %d: %s", resp.Code, resp.Body.String())
	}
	if got.EntityType != enums.AuditEntityMemos || got.EntityID == nil || *got.EntityID != entityID || got.Limit != 20 {
		t.Fatalf("unexpected filter %+v", got)
	}
}

func TestAuditListDefaultsLimit(t *testing.T) {
	var got audit.Filter
	svc := &testAuditService{
		listFn: func(ctx context.Context, filter audit.Filter) ([]audit.EntryView, error) {
			got = filter
			return nil, nil
		},
	}
	resp := httptest.NewRecorder()
	AuditList(svc, testLogger())(resp, httptest.NewRequest(http.MethodGet, "/api/v1/audit", nil))

	if resp.Code != http.StatusOK || got.Limit != audit.DefaultListLimit {
		t.Fatalf("unexpected status %d filter %+v", resp.Code, got)
	}
}

func TestAuditListRejectsBadInput(t *testing.T) {
	for _, query := range []string{"?entity_type=orders", "?entity_id=abc", "?limit=0", "?limit=100000"} {
		resp := httptest.NewRecorder()
		AuditList(&testAuditService{}, testLogger())(resp, httptest.NewRequest(http.MethodGet, "/api/v1/audit"+query, nil))
		if resp.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400 got %d", query, resp.Code)
		}
	}
}
