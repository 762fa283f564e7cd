package ledger

import (
	"context"
	"time"

	"github.com/angelmondragon/lotflow-backend/internal/repo"
	"github.com/angelmondragon/lotflow-backend/pkg/db/models"
	"github.com/angelmondragon/lotflow-backend/pkg/enums"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository manages persistence for cashbook entries.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, entry *models.LedgerEntry) error
	Find(ctx context.Context, id uuid.UUID) (*models.LedgerEntry, error)
	List(ctx context.Context) ([]models.LedgerEntry, error)
	Post(ctx context.Context, id uuid.UUID) error
}

type repository struct {
	repo.Base
}

// NewRepository returns a ledger repository bound to the provided database.
func NewRepository(db *gorm.DB) Repository {
	return &repository{Base: repo.NewBase(db)}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{Base: repo.NewBase(tx)}
}

func (r *repository) Create(ctx context.Context, entry *models.LedgerEntry) error {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	return r.DB(ctx).Create(entry).Error
}

func (r *repository) Find(ctx context.Context, id uuid.UUID) (*models.LedgerEntry, error) {
	var entry models.LedgerEntry
	if err := r.DB(ctx).Where("id = ?", id).Take(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *repository) List(ctx context.Context) ([]models.LedgerEntry, error) {
	var entries []models.LedgerEntry
	if err := r.DB(ctx).
		Order("entry_date DESC").
		Order("created_at DESC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// Post flips an OPEN entry to POSTED in a single conditional update.
func (r *repository) Post(ctx context.Context, id uuid.UUID) error {
	return r.CompareAndSetStatus(ctx, repo.StatusTransition{
		Table: "ledger_entries",
		ID:    id,
		From:  string(enums.LedgerEntryStatusOpen),
		To:    string(enums.LedgerEntryStatusPosted),
		Extra: map[string]any{"updated_at": time.Now().UTC()},
	})
}
