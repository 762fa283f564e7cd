package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/angelmondragon/lotflow-backend/internal/ledger"
	"github.com/angelmondragon/lotflow-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/lotflow-backend/pkg/errors"
)

func TestLedgerCreateSuccess(t *testing.T) {
	var got ledger.CreateEntryInput
	svc := &testLedgerService{
		createFn: func(ctx context.Context, input ledger.CreateEntryInput) (*ledger.EntryDTO, error) {
			got = input
			return &ledger.EntryDTO{ID: uuid.New(), EntryType: input.EntryType, Amount: input.Amount, Status: enums.LedgerEntryStatusOpen}, nil
		},
	}

	body := `{"entry":{"entry_type":"PAYMENT","party":"Cutter A","amount":"1250.50"}}`
	resp := httptest.NewRecorder()
	LedgerCreate(svc, testLogger())(resp, httptest.NewRequest(http.MethodPost, "/api/v1/ledger/entries", strings.NewReader(body)))

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d: %s", resp.Code, resp.Body.String())
	}
	if got.EntryType != "PAYMENT" || got.Amount.String() != "1250.5" {
		t.Fatalf("unexpected input %+v", got)
	}
}

func TestLedgerCreateRequiresType(t *testing.T) {
	resp := httptest.NewRecorder()
	LedgerCreate(&testLedgerService{}, testLogger())(resp, httptest.NewRequest(http.MethodPost, "/api/v1/ledger/entries", strings.NewReader(`{"entry":{"amount":"5"}}`)))

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestLedgerPostConflict(t *testing.T) {
	svc := &testLedgerService{
		postFn: func(context.Context, uuid.UUID) (*ledger.EntryDTO, error) {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "Entry already posted")
		},
	}

	body := `{"entry_id":"` + uuid.NewString() + `"}`
	resp := httptest.NewRecorder()
	LedgerPost(svc, testLogger())(resp, httptest.NewRequest(http.MethodPost, "/api/v1/ledger/post", strings.NewReader(body)))

	if resp.Code != http.StatusConflict {
		t.Fatalf("expected 409 got %d", resp.Code)
	}
	if got := decodeError(t, resp); got.Error != "Entry already posted" || got.Code != string(pkgerrors.CodeConflict) {
		t.Fatalf("unexpected error body %+v", got)
	}
}

func TestLedgerList(t *testing.T) {
	svc := &testLedgerService{
		listFn: func(context.Context) ([]ledger.EntryDTO, error) {
			return []ledger.EntryDTO{{EntryType: "RECEIPT"}}, nil
		},
	}
	resp := httptest.NewRecorder()
	LedgerList(svc, testLogger())(resp, httptest.NewRequest(http.MethodGet, "/api/v1/ledger/entries", nil))

	if resp.Code != http.StatusOK || !strings.Contains(resp.Body.String(), `"entry_type":"RECEIPT"`) {
		t.Fatalf("unexpected response %d %s", resp.Code, resp.Body.String())
	}
}
