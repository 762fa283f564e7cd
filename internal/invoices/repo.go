package invoices

import (
	"context"

	"github.com/angelmondragon/lotflow-backend/internal/repo"
	"github.com/angelmondragon/lotflow-backend/pkg/db/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository persists invoices with their lines.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, invoice *models.Invoice) error
	List(ctx context.Context) ([]models.Invoice, error)
	Find(ctx context.Context, id uuid.UUID) (*models.Invoice, error)
}

type repository struct {
	repo.Base
}

// NewRepository returns an invoice repository bound to the provided database.
func NewRepository(db *gorm.DB) Repository {
	return &repository{Base: repo.NewBase(db)}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{Base: repo.NewBase(tx)}
}

func withOrderedLines(db *gorm.DB) *gorm.DB {
	return db.Order("line_no ASC")
}

// Create inserts the invoice and its lines in one statement group.
func (r *repository) Create(ctx context.Context, invoice *models.Invoice) error {
	if invoice.ID == uuid.Nil {
		invoice.ID = uuid.New()
	}
	for i := range invoice.Items {
		if invoice.Items[i].ID == uuid.Nil {
			invoice.Items[i].ID = uuid.New()
		}
		invoice.Items[i].InvoiceID = invoice.ID
	}
	return r.DB(ctx).Create(invoice).Error
}

func (r *repository) List(ctx context.Context) ([]models.Invoice, error) {
	var invoices []models.Invoice
	if err := r.DB(ctx).
		Preload("Items", withOrderedLines).
		Order("invoice_date DESC").
		Order("created_at DESC").
		Find(&invoices).Error; err != nil {
		return nil, err
	}
	return invoices, nil
}

func (r *repository) Find(ctx context.Context, id uuid.UUID) (*models.Invoice, error) {
	var invoice models.Invoice
	if err := r.DB(ctx).
		Preload("Items", withOrderedLines).
		Where("id = ?", id).
		Take(&invoice).Error; err != nil {
		return nil, err
	}
	return &invoice, nil
}
