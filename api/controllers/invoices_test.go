package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/angelmondragon/lotflow-backend/internal/invoices"
	pkgerrors "github.com/angelmondragon/lotflow-backend/pkg/errors"
)

func TestInvoiceCreate(t *testing.T) {
	svc := &testInvoiceService{
		createFn: func(ctx context.Context, input invoices.CreateInvoiceInput) (*invoices.InvoiceDTO, error) {
			if input.Invoice.InvoiceNo != "INV-7" || len(input.Items) != 2 {
				t.Fatalf("unexpected input %+v", input)
			}
			if !input.Items[0].Cts.Decimal.Equal(decimal.RequireFromString("1.5")) {
				t.Fatalf("unexpected cts %v", input.Items[0].Cts)
			}
			return &invoices.InvoiceDTO{ID: uuid.New(), InvoiceNo: input.Invoice.InvoiceNo}, nil
		},
	}
	body := `{"invoice":{"invoice_no":"INV-7","party_id":"P-1"},"items":[{"lot_code":"L-1","cts":"1.5","price":"200"},{"cts":"0.5","amount":"150"}]}`
	resp := httptest.NewRecorder()
	InvoiceCreate(svc, testLogger())(resp, httptest.NewRequest(http.MethodPost, "/api/v1/invoices", strings.NewReader(body)))

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d: %s", resp.Code, resp.Body.String())
	}
	if !strings.Contains(resp.Body.String(), `"invoice_no":"INV-7"`) {
		t.Fatalf("unexpected body %s", resp.Body.String())
	}
}

func TestInvoiceCreateDuplicateNumber(t *testing.T) {
	svc := &testInvoiceService{
		createFn: func(context.Context, invoices.CreateInvoiceInput) (*invoices.InvoiceDTO, error) {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "Invoice number already exists")
		},
	}
	resp := httptest.NewRecorder()
	InvoiceCreate(svc, testLogger())(resp, httptest.NewRequest(http.MethodPost, "/api/v1/invoices", strings.NewReader(`{"invoice":{"invoice_no":"INV-7"}}`)))

	if resp.Code != http.StatusConflict {
		t.Fatalf("expected 409 got %d", resp.Code)
	}
	if got := decodeError(t, resp); got.Error != "Invoice number already exists" {
		t.Fatalf("unexpected error %q", got.Error)
	}
}

func TestInvoiceCreateRejectsNegativePcs(t *testing.T) {
	svc := &testInvoiceService{
		createFn: func(context.Context, invoices.CreateInvoiceInput) (*invoices.InvoiceDTO, error) {
			t.Fatal("service must not be called")
			return nil, nil
		},
	}
	resp := httptest.NewRecorder()
	InvoiceCreate(svc, testLogger())(resp, httptest.NewRequest(http.MethodPost, "/api/v1/invoices", strings.NewReader(`{"items":[{"pcs":-1}]}`)))

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestInvoiceDetail(t *testing.T) {
	id := uuid.New()
	svc := &testInvoiceService{
		getFn: func(ctx context.Context, invoiceID uuid.UUID) (*invoices.InvoiceDTO, error) {
			if invoiceID != id {
				t.Fatalf("unexpected id %s", invoiceID)
			}
			return &invoices.InvoiceDTO{ID: id}, nil
		},
	}
	resp := httptest.NewRecorder()
	req := withURLParam(httptest.NewRequest(http.MethodGet, "/api/v1/invoices/"+id.String(), nil), "invoiceId", id.String())
	InvoiceDetail(svc, testLogger())(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}

	resp = httptest.NewRecorder()
	req = withURLParam(httptest.NewRequest(http.MethodGet, "/api/v1/invoices/nope", nil), "invoiceId", "nope")
	InvoiceDetail(svc, testLogger())(resp, req)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestInvoiceListUnavailable(t *testing.T) {
	resp := httptest.NewRecorder()
	InvoiceList(nil, testLogger())(resp, httptest.NewRequest(http.MethodGet, "/api/v1/invoices", nil))

	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 got %d", resp.Code)
	}
}
