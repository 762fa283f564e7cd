package controllers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/angelmondragon/lotflow-backend/internal/audit"
	"github.com/angelmondragon/lotflow-backend/internal/inventory"
	"github.com/angelmondragon/lotflow-backend/internal/invoices"
	"github.com/angelmondragon/lotflow-backend/internal/ledger"
	"github.com/angelmondragon/lotflow-backend/internal/memos"
	"github.com/angelmondragon/lotflow-backend/internal/production"
	"github.com/angelmondragon/lotflow-backend/internal/stageevents"
	"github.com/angelmondragon/lotflow-backend/pkg/logger"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Options{ServiceName: "test", Output: io.Discard})
}

func withURLParam(req *http.Request, key, value string) *http.Request {
	routeCtx := chi.NewRouteContext()
	routeCtx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, routeCtx))
}

type errorBody struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func decodeError(t *testing.T, resp *httptest.ResponseRecorder) errorBody {
	t.Helper()
	var body errorBody
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode error body: %v (%s)", err, resp.Body.String())
	}
	return body
}

type testMemoService struct {
	createFn func(ctx context.Context, input memos.CreateMemoInput) (*memos.MemoDTO, error)
	closeFn  func(ctx context.Context, memoID uuid.UUID) (*memos.MemoDTO, error)
	listFn   func(ctx context.Context) ([]memos.MemoDTO, error)
	getFn    func(ctx context.Context, memoID uuid.UUID) (*memos.MemoDTO, error)
}

func (s *testMemoService) Create(ctx context.Context, input memos.CreateMemoInput) (*memos.MemoDTO, error) {
	if s.createFn != nil {
		return s.createFn(ctx, input)
	}
	return nil, nil
}

func (s *testMemoService) Close(ctx context.Context, memoID uuid.UUID) (*memos.MemoDTO, error) {
	if s.closeFn != nil {
		return s.closeFn(ctx, memoID)
	}
	return nil, nil
}

func (s *testMemoService) List(ctx context.Context) ([]memos.MemoDTO, error) {
	if s.listFn != nil {
		return s.listFn(ctx)
	}
	return nil, nil
}

func (s *testMemoService) Get(ctx context.Context, memoID uuid.UUID) (*memos.MemoDTO, error) {
	if s.getFn != nil {
		return s.getFn(ctx, memoID)
	}
	return nil, nil
}

func (s *testMemoService) ListMemos(context.Context) ([]production.Memo, error) {
	return nil, nil
}

type testProductionService struct {
	listLotsFn   func(ctx context.Context, filter production.LotFilter) ([]production.LotSnapshot, error)
	getLotFn     func(ctx context.Context, lotCode string) (*production.LotDetail, error)
	stageBoardFn func(ctx context.Context) (*production.StageBoard, error)
	exportFn     func(ctx context.Context, w io.Writer) error
}

func (s *testProductionService) ListLots(ctx context.Context, filter production.LotFilter) ([]production.LotSnapshot, error) {
	if s.listLotsFn != nil {
		return s.listLotsFn(ctx, filter)
	}
	return nil, nil
}

func (s *testProductionService) GetLot(ctx context.Context, lotCode string) (*production.LotDetail, error) {
	if s.getLotFn != nil {
		return s.getLotFn(ctx, lotCode)
	}
	return nil, nil
}

func (s *testProductionService) StageBoard(ctx context.Context) (*production.StageBoard, error) {
	if s.stageBoardFn != nil {
		return s.stageBoardFn(ctx)
	}
	return &production.StageBoard{}, nil
}

func (s *testProductionService) ExportWorkbook(ctx context.Context, w io.Writer) error {
	if s.exportFn != nil {
		return s.exportFn(ctx, w)
	}
	return nil
}

type testLedgerService struct {
	createFn func(ctx context.Context, input ledger.CreateEntryInput) (*ledger.EntryDTO, error)
	postFn   func(ctx context.Context, entryID uuid.UUID) (*ledger.EntryDTO, error)
	listFn   func(ctx context.Context) ([]ledger.EntryDTO, error)
}

func (s *testLedgerService) Create(ctx context.Context, input ledger.CreateEntryInput) (*ledger.EntryDTO, error) {
	if s.createFn != nil {
		return s.createFn(ctx, input)
	}
	return nil, nil
}

func (s *testLedgerService) Post(ctx context.Context, entryID uuid.UUID) (*ledger.EntryDTO, error) {
	if s.postFn != nil {
		return s.postFn(ctx, entryID)
	}
	return nil, nil
}

func (s *testLedgerService) List(ctx context.Context) ([]ledger.EntryDTO, error) {
	if s.listFn != nil {
		return s.listFn(ctx)
	}
	return nil, nil
}

type testInventoryService struct {
	createFn  func(ctx context.Context, input inventory.CreateRecordInput) (*inventory.RecordDTO, error)
	listFn    func(ctx context.Context, filter inventory.ListFilter) ([]inventory.RecordDTO, error)
	summaryFn func(ctx context.Context) (*inventory.Summary, error)
	sellFn    func(ctx context.Context, input inventory.SellInput) (*inventory.SellDTO, error)
}

func (s *testInventoryService) CreateRecord(ctx context.Context, input inventory.CreateRecordInput) (*inventory.RecordDTO, error) {
	if s.createFn != nil {
		return s.createFn(ctx, input)
	}
	return nil, nil
}

func (s *testInventoryService) ListRecords(ctx context.Context, filter inventory.ListFilter) ([]inventory.RecordDTO, error) {
	if s.listFn != nil {
		return s.listFn(ctx, filter)
	}
	return nil, nil
}

func (s *testInventoryService) Summary(ctx context.Context) (*inventory.Summary, error) {
	if s.summaryFn != nil {
		return s.summaryFn(ctx)
	}
	return &inventory.Summary{}, nil
}

func (s *testInventoryService) Sell(ctx context.Context, input inventory.SellInput) (*inventory.SellDTO, error) {
	if s.sellFn != nil {
		return s.sellFn(ctx, input)
	}
	return nil, nil
}

type testInvoiceService struct {
	createFn func(ctx context.Context, input invoices.CreateInvoiceInput) (*invoices.InvoiceDTO, error)
	listFn   func(ctx context.Context) ([]invoices.InvoiceDTO, error)
	getFn    func(ctx context.Context, invoiceID uuid.UUID) (*invoices.InvoiceDTO, error)
}

func (s *testInvoiceService) Create(ctx context.Context, input invoices.CreateInvoiceInput) (*invoices.InvoiceDTO, error) {
	if s.createFn != nil {
		return s.createFn(ctx, input)
	}
	return nil, nil
}

func (s *testInvoiceService) List(ctx context.Context) ([]invoices.InvoiceDTO, error) {
	if s.listFn != nil {
		return s.listFn(ctx)
	}
	return nil, nil
}

func (s *testInvoiceService) Get(ctx context.Context, invoiceID uuid.UUID) (*invoices.InvoiceDTO, error) {
	if s.getFn != nil {
		return s.getFn(ctx, invoiceID)
	}
	return nil, nil
}

type testStageEventService struct {
	createFn func(ctx context.Context, input stageevents.EventInput) (*production.StageEvent, error)
	listFn   func(ctx context.Context, lotCode string) ([]production.StageEvent, error)
}

func (s *testStageEventService) Create(ctx context.Context, input stageevents.EventInput) (*production.StageEvent, error) {
	if s.createFn != nil {
		return s.createFn(ctx, input)
	}
	return nil, nil
}

func (s *testStageEventService) List(ctx context.Context, lotCode string) ([]production.StageEvent, error) {
	if s.listFn != nil {
		return s.listFn(ctx, lotCode)
	}
	return nil, nil
}

func (s *testStageEventService) ListStageEvents(ctx context.Context, lotCode string) ([]production.StageEvent, error) {
	return s.List(ctx, lotCode)
}

type testAuditService struct {
	listFn func(ctx context.Context, filter audit.Filter) ([]audit.EntryView, error)
}

func (s *testAuditService) WithTx(*gorm.DB) audit.Recorder { return s }

func (s *testAuditService) Record(context.Context, audit.Entry) error { return nil }

func (s *testAuditService) List(ctx context.Context, filter audit.Filter) ([]audit.EntryView, error) {
	if s.listFn != nil {
		return s.listFn(ctx, filter)
	}
	return nil, nil
}
