package stageevents

import (
	"context"

	"github.com/angelmondragon/lotflow-backend/internal/repo"
	"github.com/angelmondragon/lotflow-backend/pkg/db/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository persists lot stage events.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, event *models.LotStageEvent) error
	ListByLot(ctx context.Context, lotCode string) ([]models.LotStageEvent, error)
}

type repository struct {
	repo.Base
}

// NewRepository returns a stage event repository bound to the provided database.
func NewRepository(db *gorm.DB) Repository {
	return &repository{Base: repo.NewBase(db)}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{Base: repo.NewBase(tx)}
}

func (r *repository) Create(ctx context.Context, event *models.LotStageEvent) error {
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	return r.DB(ctx).Create(event).Error
}

// ListByLot returns a lot's events oldest first.
func (r *repository) ListByLot(ctx context.Context, lotCode string) ([]models.LotStageEvent, error) {
	var rows []models.LotStageEvent
	if err := r.DB(ctx).
		Where("lot_code = ?", lotCode).
		Order("event_date ASC").
		Order("created_at ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
