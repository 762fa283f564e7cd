package inventory

import (
	"context"
	"strings"
	"time"

	"github.com/angelmondragon/lotflow-backend/internal/repo"
	"github.com/angelmondragon/lotflow-backend/pkg/db/models"
	"github.com/angelmondragon/lotflow-backend/pkg/enums"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository persists inventory records and sells.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	CreateRecord(ctx context.Context, record *models.InventoryRecord) error
	ListRecords(ctx context.Context, filter ListFilter) ([]models.InventoryRecord, error)
	FindRecords(ctx context.Context, ids []uuid.UUID) ([]models.InventoryRecord, error)
	MarkSold(ctx context.Context, ids []uuid.UUID, sellID string) (int64, error)
	CreateSell(ctx context.Context, sell *models.SellRecord) error
}

// ListFilter narrows inventory listings.
type ListFilter struct {
	// Search matches sell id, description, format, shape, size or status.
	Search string
	// Category matches format or shape exactly, ignoring case.
	Category string
}

type repository struct {
	repo.Base
}

// NewRepository returns an inventory repository bound to the provided database.
func NewRepository(db *gorm.DB) Repository {
	return &repository{Base: repo.NewBase(db)}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{Base: repo.NewBase(tx)}
}

func (r *repository) CreateRecord(ctx context.Context, record *models.InventoryRecord) error {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	return r.DB(ctx).Create(record).Error
}

func (r *repository) ListRecords(ctx context.Context, filter ListFilter) ([]models.InventoryRecord, error) {
	query := r.DB(ctx).Model(&models.InventoryRecord{})

	if category := strings.ToLower(strings.TrimSpace(filter.Category)); category != "" {
		query = query.Where("LOWER(format) = ? OR LOWER(shape) = ?", category, category)
	}
	if search := strings.ToLower(strings.TrimSpace(filter.Search)); search != "" {
		like := "%" + search + "%"
		query = query.Where(
			"LOWER(COALESCE(sell_id, '')) LIKE ? OR LOWER(COALESCE(description, '')) LIKE ? OR LOWER(COALESCE(format, '')) LIKE ? OR LOWER(COALESCE(shape, '')) LIKE ? OR LOWER(COALESCE(size, '')) LIKE ? OR LOWER(status) LIKE ?",
			like, like, like, like, like, like,
		)
	}

	var records []models.InventoryRecord
	if err := query.
		Order("record_date DESC").
		Order("created_at DESC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *repository) FindRecords(ctx context.Context, ids []uuid.UUID) ([]models.InventoryRecord, error) {
	var records []models.InventoryRecord
	if len(ids) == 0 {
		return records, nil
	}
	if err := r.DB(ctx).Where("id IN ?", ids).Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// MarkSold moves unsold records to SOLD and reports how many changed.
func (r *repository) MarkSold(ctx context.Context, ids []uuid.UUID, sellID string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	res := r.DB(ctx).
		Model(&models.InventoryRecord{}).
		Where("id IN ? AND status <> ?", ids, enums.InventoryStatusSold).
		Updates(map[string]any{
			"status":     enums.InventoryStatusSold,
			"sell_id":    sellID,
			"updated_at": time.Now().UTC(),
		})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

func (r *repository) CreateSell(ctx context.Context, sell *models.SellRecord) error {
	if sell.ID == uuid.Nil {
		sell.ID = uuid.New()
	}
	return r.DB(ctx).Create(sell).Error
}
