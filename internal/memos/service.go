package memos

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/angelmondragon/lotflow-backend/internal/audit"
	"github.com/angelmondragon/lotflow-backend/internal/production"
	"github.com/angelmondragon/lotflow-backend/internal/repo"
	"github.com/angelmondragon/lotflow-backend/pkg/db"
	"github.com/angelmondragon/lotflow-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/lotflow-backend/pkg/errors"
	"github.com/angelmondragon/lotflow-backend/pkg/logger"
	"github.com/angelmondragon/lotflow-backend/pkg/metrics"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	msgMemoNotFound  = "memo not found"
	msgMemoLocked    = "Memo is already locked"
	msgMemoNoTaken   = "Memo number already exists"
	memoNumberPrefix = "MEMO-"
)

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// Service exposes memo writes, reads and the memo log used for derivation.
type Service interface {
	Create(ctx context.Context, input CreateMemoInput) (*MemoDTO, error)
	Close(ctx context.Context, memoID uuid.UUID) (*MemoDTO, error)
	List(ctx context.Context) ([]MemoDTO, error)
	Get(ctx context.Context, memoID uuid.UUID) (*MemoDTO, error)
	ListMemos(ctx context.Context) ([]production.Memo, error)
}

type service struct {
	repo    Repository
	tx      txRunner
	audit   audit.Recorder
	metrics *metrics.TransitionMetrics
	logg    *logger.Logger
	now     func() time.Time
}

// NewService wires the memo service. Metrics and logger may be nil.
func NewService(repo Repository, tx txRunner, recorder audit.Recorder, transitions *metrics.TransitionMetrics, logg *logger.Logger) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("memo repository required")
	}
	if tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	if recorder == nil {
		return nil, fmt.Errorf("audit recorder required")
	}
	return &service{
		repo:    repo,
		tx:      tx,
		audit:   recorder,
		metrics: transitions,
		logg:    logg,
		now:     time.Now,
	}, nil
}

func (s *service) Create(ctx context.Context, input CreateMemoInput) (*MemoDTO, error) {
	if strings.TrimSpace(input.Process) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "process is required")
	}
	if strings.TrimSpace(input.LotCode) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "lot code is required")
	}
	if len(input.Items) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "memo requires at least one item")
	}

	memoNo := strings.TrimSpace(input.MemoNo)
	if memoNo == "" {
		memoNo = fmt.Sprintf("%s%d", memoNumberPrefix, s.now().UnixMilli())
	}
	memo := toModel(input, memoNo)

	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		if err := s.repo.WithTx(tx).Create(ctx, memo); err != nil {
			return err
		}
		return s.audit.WithTx(tx).Record(ctx, audit.Entry{
			EntityType: enums.AuditEntityMemos,
			EntityID:   memo.ID,
			Action:     enums.AuditActionCreate,
			Summary:    map[string]any{"memo_no": memo.MemoNo},
		})
	})
	if db.IsUniqueViolation(err, "idx_memos_memo_no", "memos.memo_no") {
		return nil, pkgerrors.Wrap(pkgerrors.CodeConflict, err, msgMemoNoTaken)
	}
	if err != nil {
		return nil, repo.StoreError(err, msgMemoNotFound)
	}

	s.info(ctx, memo.ID, memo.LotCode, "memo created")
	dto := toDTO(*memo)
	return &dto, nil
}

// Close locks an OPEN memo. The status change and its audit row commit together;
// a memo that is already LOCKED is reported as a conflict and left untouched.
func (s *service) Close(ctx context.Context, memoID uuid.UUID) (*MemoDTO, error) {
	if memoID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "memo_id is required")
	}

	start := time.Now()
	var closed *MemoDTO
	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		txRepo := s.repo.WithTx(tx)
		if err := txRepo.Lock(ctx, memoID); err != nil {
			return err
		}
		memo, err := txRepo.Find(ctx, memoID)
		if err != nil {
			return err
		}
		if err := s.audit.WithTx(tx).Record(ctx, audit.Entry{
			EntityType: enums.AuditEntityMemos,
			EntityID:   memoID,
			Action:     enums.AuditActionClose,
			Summary:    map[string]any{"memo_id": memoID.String()},
		}); err != nil {
			return err
		}
		dto := toDTO(*memo)
		closed = &dto
		return nil
	})
	if err != nil {
		mapped := repo.TransitionError(err, msgMemoNotFound, msgMemoLocked)
		s.metrics.Track(string(enums.AuditEntityMemos), start, metrics.OutcomeOf(mapped))
		if s.logg != nil {
			logCtx := s.logg.WithMemoID(ctx, memoID.String())
			logCtx = s.logg.WithField(logCtx, "error", mapped.Error())
			s.logg.Warn(logCtx, "memo close rejected")
		}
		return nil, mapped
	}

	s.metrics.Track(string(enums.AuditEntityMemos), start, metrics.OutcomeSuccess)
	s.info(ctx, memoID, closed.LotCode, "memo locked")
	return closed, nil
}

func (s *service) List(ctx context.Context) ([]MemoDTO, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Store(err)
	}
	out := make([]MemoDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, toDTO(row))
	}
	return out, nil
}

func (s *service) Get(ctx context.Context, memoID uuid.UUID) (*MemoDTO, error) {
	row, err := s.repo.Find(ctx, memoID)
	if err != nil {
		return nil, repo.StoreError(err, msgMemoNotFound)
	}
	dto := toDTO(*row)
	return &dto, nil
}

// ListMemos serves the memo log to the derivation core.
func (s *service) ListMemos(ctx context.Context) ([]production.Memo, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Store(err)
	}
	out := make([]production.Memo, 0, len(rows))
	for _, row := range rows {
		out = append(out, toDomain(row))
	}
	return out, nil
}

func (s *service) info(ctx context.Context, memoID uuid.UUID, lotCode, msg string) {
	if s.logg == nil {
		return
	}
	ctx = s.logg.WithMemoID(ctx, memoID.String())
	ctx = s.logg.WithLotCode(ctx, lotCode)
	s.logg.Info(ctx, msg)
}
