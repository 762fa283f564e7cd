package ledger

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
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	msgEntryNotFound = "ledger entry not found"
	msgEntryPosted   = "Entry already posted"
)

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// Service defines cashbook operations.
type Service interface {
	Create(ctx context.Context, input CreateEntryInput) (*EntryDTO, error)
	Post(ctx context.Context, entryID uuid.UUID) (*EntryDTO, error)
	List(ctx context.Context) ([]EntryDTO, error)
}

type service struct {
	repo    Repository
	tx      txRunner
	audit   audit.Recorder
	metrics *metrics.TransitionMetrics
	now     func() time.Time
}

// CreateEntryInput captures a new cashbook line.
type CreateEntryInput struct {
	EntryDate types.Date          `json:"entry_date"`
	EntryType string              `json:"entry_type" validate:"required"`
	Party     *string             `json:"party"`
	LotCode   *string             `json:"lot_code"`
	Amount    decimal.Decimal     `json:"amount"`
	Balance   decimal.NullDecimal `json:"balance"`
	Remark    *string             `json:"remark"`
}

// NewService wires a ledger service with the provided repository.
func NewService(repo Repository, tx txRunner, recorder audit.Recorder, transitions *metrics.TransitionMetrics) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("ledger repository required")
	}
	if tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	if recorder == nil {
		return nil, fmt.Errorf("audit recorder required")
	}
	return &service{repo: repo, tx: tx, audit: recorder, metrics: transitions, now: time.Now}, nil
}

func (s *service) Create(ctx context.Context, input CreateEntryInput) (*EntryDTO, error) {
	entryType := strings.TrimSpace(input.EntryType)
	if entryType == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "entry type is required")
	}

	entryDate := input.EntryDate
	if !entryDate.Valid {
		now := s.now().UTC()
		entryDate = types.NewDate(now.Year(), now.Month(), now.Day())
	}

	entry := &models.LedgerEntry{
		EntryDate: entryDate,
		EntryType: entryType,
		Party:     input.Party,
		LotCode:   input.LotCode,
		Amount:    input.Amount,
		Balance:   input.Balance,
		Remark:    input.Remark,
		Status:    enums.LedgerEntryStatusOpen,
	}

	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		if err := s.repo.WithTx(tx).Create(ctx, entry); err != nil {
			return err
		}
		return s.audit.WithTx(tx).Record(ctx, audit.Entry{
			EntityType: enums.AuditEntityLedgerEntries,
			EntityID:   entry.ID,
			Action:     enums.AuditActionCreate,
			Summary: map[string]any{"entry": map[string]any{
				"entry_date": entryDate.String(),
				"entry_type": entryType,
				"amount":     input.Amount.String(),
			}},
		})
	})
	if err != nil {
		return nil, repo.StoreError(err, msgEntryNotFound)
	}
	dto := toDTO(*entry)
	return &dto, nil
}

// Post moves an OPEN entry to POSTED exactly once.
func (s *service) Post(ctx context.Context, entryID uuid.UUID) (*EntryDTO, error) {
	if entryID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "entry_id is required")
	}

	start := time.Now()
	var posted *EntryDTO
	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		txRepo := s.repo.WithTx(tx)
		if err := txRepo.Post(ctx, entryID); err != nil {
			return err
		}
		entry, err := txRepo.Find(ctx, entryID)
		if err != nil {
			return err
		}
		dto := toDTO(*entry)
		posted = &dto
		return s.audit.WithTx(tx).Record(ctx, audit.Entry{
			EntityType: enums.AuditEntityLedgerEntries,
			EntityID:   entryID,
			Action:     enums.AuditActionPost,
			Summary:    map[string]any{"entry_id": entryID.String()},
		})
	})
	if err != nil {
		mapped := repo.TransitionError(err, msgEntryNotFound, msgEntryPosted)
		s.metrics.Track(string(enums.AuditEntityLedgerEntries), start, metrics.OutcomeOf(mapped))
		return nil, mapped
	}
	s.metrics.Track(string(enums.AuditEntityLedgerEntries), start, metrics.OutcomeSuccess)
	return posted, nil
}

func (s *service) List(ctx context.Context) ([]EntryDTO, error) {
	entries, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Store(err)
	}
	out := make([]EntryDTO, 0, len(entries))
	for _, entry := range entries {
		out = append(out, toDTO(entry))
	}
	return out, nil
}
