package inventory

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/angelmondragon/lotflow-backend/internal/audit"
	"github.com/angelmondragon/lotflow-backend/internal/repo"
	"github.com/angelmondragon/lotflow-backend/pkg/db/models"
	"github.com/angelmondragon/lotflow-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/lotflow-backend/pkg/errors"
	"github.com/angelmondragon/lotflow-backend/pkg/metrics"
	"github.com/angelmondragon/lotflow-backend/pkg/types"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	msgRecordNotFound = "inventory record not found"
	msgAlreadySold    = "Inventory already sold"
	sellIDPrefix      = "SELL-"
)

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// Service manages stock records and the sell flow.
type Service interface {
	CreateRecord(ctx context.Context, input CreateRecordInput) (*RecordDTO, error)
	ListRecords(ctx context.Context, filter ListFilter) ([]RecordDTO, error)
	Summary(ctx context.Context) (*Summary, error)
	Sell(ctx context.Context, input SellInput) (*SellDTO, error)
}

type service struct {
	repo    Repository
	tx      txRunner
	audit   audit.Recorder
	metrics *metrics.TransitionMetrics
	now     func() time.Time
}

// NewService wires the inventory service.
func NewService(repo Repository, tx txRunner, recorder audit.Recorder, transitions *metrics.TransitionMetrics) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("inventory repository required")
	}
	if tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	if recorder == nil {
		return nil, fmt.Errorf("audit recorder required")
	}
	return &service{repo: repo, tx: tx, audit: recorder, metrics: transitions, now: time.Now}, nil
}

func (s *service) today() types.Date {
	now := s.now().UTC()
	return types.NewDate(now.Year(), now.Month(), now.Day())
}

func (s *service) CreateRecord(ctx context.Context, input CreateRecordInput) (*RecordDTO, error) {
	recordDate := input.RecordDate
	if !recordDate.Valid {
		recordDate = s.today()
	}
	record := &models.InventoryRecord{
		RecordDate:  recordDate,
		LotCode:     input.LotCode,
		Format:      input.Format,
		Shape:       input.Shape,
		Size:        input.Size,
		Description: input.Description,
		Cts:         input.Cts,
		Amount:      input.Amount,
		Status:      enums.InventoryStatusAvailable,
	}

	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		if err := s.repo.WithTx(tx).CreateRecord(ctx, record); err != nil {
			return err
		}
		return s.audit.WithTx(tx).Record(ctx, audit.Entry{
			EntityType: enums.AuditEntityInventoryRecords,
			EntityID:   record.ID,
			Action:     enums.AuditActionCreate,
			Summary:    map[string]any{"record": input},
		})
	})
	if err != nil {
		return nil, repo.StoreError(err, msgRecordNotFound)
	}
	dto := toRecordDTO(*record)
	return &dto, nil
}

func (s *service) ListRecords(ctx context.Context, filter ListFilter) ([]RecordDTO, error) {
	records, err := s.repo.ListRecords(ctx, filter)
	if err != nil {
		return nil, pkgerrors.Store(err)
	}
	out := make([]RecordDTO, 0, len(records))
	for _, record := range records {
		out = append(out, toRecordDTO(record))
	}
	return out, nil
}

func (s *service) Summary(ctx context.Context) (*Summary, error) {
	records, err := s.repo.ListRecords(ctx, ListFilter{})
	if err != nil {
		return nil, pkgerrors.Store(err)
	}
	summary := Summarize(records)
	return &summary, nil
}

// Sell marks the records SOLD and stores the sell in one transaction. If any
// record was already sold the whole sell is rolled back as a conflict.
func (s *service) Sell(ctx context.Context, input SellInput) (*SellDTO, error) {
	ids := dedupe(input.InventoryIDs)
	for _, id := range ids {
		if id == uuid.Nil {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "inventory_ids must not contain empty ids")
		}
	}

	sellID := strings.TrimSpace(input.SellID)
	if sellID == "" {
		sellID = fmt.Sprintf("%s%d", sellIDPrefix, s.now().UnixMilli())
	}
	recordDate := input.RecordDate
	if !recordDate.Valid {
		recordDate = s.today()
	}

	start := time.Now()
	var sold *SellDTO
	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		txRepo := s.repo.WithTx(tx)

		records, err := txRepo.FindRecords(ctx, ids)
		if err != nil {
			return err
		}
		if len(records) != len(ids) {
			return repo.ErrRecordNotFound
		}

		changed, err := txRepo.MarkSold(ctx, ids, sellID)
		if err != nil {
			return err
		}
		if changed != int64(len(ids)) {
			return pkgerrors.New(pkgerrors.CodeConflict, msgAlreadySold)
		}

		totals := ComputeSellTotals(records)
		sell := &models.SellRecord{
			SellID:      sellID,
			PartyID:     input.PartyID,
			RecordDate:  recordDate,
			TotalCts:    totals.TotalCts,
			TotalAmount: totals.TotalAmount,
			AvgPrice:    totals.AvgPrice,
		}
		if err := txRepo.CreateSell(ctx, sell); err != nil {
			return err
		}

		dto := toSellDTO(*sell, ids)
		sold = &dto
		return s.audit.WithTx(tx).Record(ctx, audit.Entry{
			EntityType: enums.AuditEntitySellRecords,
			EntityID:   sell.ID,
			Action:     enums.AuditActionCreate,
			Summary:    map[string]any{"sell_id": sellID, "inventory_ids": ids},
		})
	})
	if err != nil {
		mapped := repo.StoreError(err, msgRecordNotFound)
		s.metrics.Track(string(enums.AuditEntitySellRecords), start, metrics.OutcomeOf(mapped))
		return nil, mapped
	}
	s.metrics.Track(string(enums.AuditEntitySellRecords), start, metrics.OutcomeSuccess)
	return sold, nil
}

func dedupe(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
