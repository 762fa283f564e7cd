package memos

import (
	"context"
	"time"

	"github.com/angelmondragon/lotflow-backend/internal/repo"
	"github.com/angelmondragon/lotflow-backend/pkg/db/models"
	"github.com/angelmondragon/lotflow-backend/pkg/enums"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository persists memos and their items.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	List(ctx context.Context) ([]models.Memo, error)
	Find(ctx context.Context, id uuid.UUID) (*models.Memo, error)
	Create(ctx context.Context, memo *models.Memo) error
	Lock(ctx context.Context, id uuid.UUID) error
}

type repository struct {
	repo.Base
}

// NewRepository returns a memo repository bound to the provided database.
func NewRepository(db *gorm.DB) Repository {
	return &repository{Base: repo.NewBase(db)}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{Base: repo.NewBase(tx)}
}

func withOrderedItems(db *gorm.DB) *gorm.DB {
	return db.Order("item_no ASC")
}

func (r *repository) List(ctx context.Context) ([]models.Memo, error) {
	var memos []models.Memo
	if err := r.DB(ctx).
		Preload("Items", withOrderedItems).
		Order("created_at ASC").
		Order("id ASC").
		Find(&memos).Error; err != nil {
		return nil, err
	}
	return memos, nil
}

func (r *repository) Find(ctx context.Context, id uuid.UUID) (*models.Memo, error) {
	var memo models.Memo
	if err := r.DB(ctx).
		Preload("Items", withOrderedItems).
		Where("id = ?", id).
		Take(&memo).Error; err != nil {
		return nil, err
	}
	return &memo, nil
}

func (r *repository) Create(ctx context.Context, memo *models.Memo) error {
	if memo.ID == uuid.Nil {
		memo.ID = uuid.New()
	}
	for i := range memo.Items {
		if memo.Items[i].ID == uuid.Nil {
			memo.Items[i].ID = uuid.New()
		}
		memo.Items[i].MemoID = memo.ID
	}
	return r.DB(ctx).Create(memo).Error
}

// Lock flips an OPEN memo to LOCKED in a single conditional update.
func (r *repository) Lock(ctx context.Context, id uuid.UUID) error {
	return r.CompareAndSetStatus(ctx, repo.StatusTransition{
		Table: "memos",
		ID:    id,
		From:  string(enums.MemoStatusOpen),
		To:    string(enums.MemoStatusLocked),
		Extra: map[string]any{"updated_at": time.Now().UTC()},
	})
}
