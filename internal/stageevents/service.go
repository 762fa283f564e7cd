package stageevents

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/angelmondragon/lotflow-backend/internal/audit"
	"github.com/angelmondragon/lotflow-backend/internal/production"
	"github.com/angelmondragon/lotflow-backend/internal/repo"
	"github.com/angelmondragon/lotflow-backend/pkg/db/models"
	"github.com/angelmondragon/lotflow-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/lotflow-backend/pkg/errors"
	"github.com/angelmondragon/lotflow-backend/pkg/types"
	"gorm.io/gorm"
)

const msgEventNotFound = "stage event not found"

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// Service records manual stage events. It also serves them to the lot
// derivation as a production.EventSource.
type Service interface {
	production.EventSource
	Create(ctx context.Context, input EventInput) (*production.StageEvent, error)
	List(ctx context.Context, lotCode string) ([]production.StageEvent, error)
}

type service struct {
	repo  Repository
	tx    txRunner
	audit audit.Recorder
	now   func() time.Time
}

// NewService wires the stage event service.
func NewService(repo Repository, tx txRunner, recorder audit.Recorder) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("stage event repository required")
	}
	if tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	if recorder == nil {
		return nil, fmt.Errorf("audit recorder required")
	}
	return &service{repo: repo, tx: tx, audit: recorder, now: time.Now}, nil
}

func (s *service) Create(ctx context.Context, input EventInput) (*production.StageEvent, error) {
	lotCode := strings.TrimSpace(input.LotCode)
	stage := strings.TrimSpace(input.Stage)
	if lotCode == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "lot_code is required")
	}
	if stage == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "stage is required")
	}
	eventDate := input.EventDate
	if !eventDate.Valid {
		now := s.now().UTC()
		eventDate = types.NewDate(now.Year(), now.Month(), now.Day())
	}
	input.LotCode = lotCode
	input.Stage = stage
	input.EventDate = eventDate

	row := &models.LotStageEvent{
		LotCode:    lotCode,
		Stage:      stage,
		EventDate:  eventDate,
		YieldCts:   input.YieldCts,
		RejectCts:  input.RejectCts,
		WastageCts: input.WastageCts,
		Notes:      input.Notes,
	}
	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		if err := s.repo.WithTx(tx).Create(ctx, row); err != nil {
			return err
		}
		return s.audit.WithTx(tx).Record(ctx, audit.Entry{
			EntityType: enums.AuditEntityLotStageEvents,
			EntityID:   row.ID,
			Action:     enums.AuditActionCreate,
			Summary:    map[string]any{"event": input},
		})
	})
	if err != nil {
		return nil, repo.StoreError(err, msgEventNotFound)
	}
	out := toDTO(*row)
	return &out, nil
}

func (s *service) List(ctx context.Context, lotCode string) ([]production.StageEvent, error) {
	lotCode = strings.TrimSpace(lotCode)
	if lotCode == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "lot_code is required")
	}
	return s.ListStageEvents(ctx, lotCode)
}

func (s *service) ListStageEvents(ctx context.Context, lotCode string) ([]production.StageEvent, error) {
	rows, err := s.repo.ListByLot(ctx, lotCode)
	if err != nil {
		return nil, pkgerrors.Store(err)
	}
	out := make([]production.StageEvent, 0, len(rows))
	for _, row := range rows {
		out = append(out, toDTO(row))
	}
	return out, nil
}
