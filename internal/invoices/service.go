package invoices

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/angelmondragon/lotflow-backend/internal/audit"
	"github.com/angelmondragon/lotflow-backend/internal/repo"
	"github.com/angelmondragon/lotflow-backend/pkg/db"
	"github.com/angelmondragon/lotflow-backend/pkg/db/models"
	"github.com/angelmondragon/lotflow-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/lotflow-backend/pkg/errors"
	"github.com/angelmondragon/lotflow-backend/pkg/types"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	msgInvoiceNotFound = "invoice not found"
	msgInvoiceNoTaken  = "Invoice number already exists"
	invoiceNoPrefix    = "INV-"
)

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// Service creates and lists invoices.
type Service interface {
	Create(ctx context.Context, input CreateInvoiceInput) (*InvoiceDTO, error)
	List(ctx context.Context) ([]InvoiceDTO, error)
	Get(ctx context.Context, invoiceID uuid.UUID) (*InvoiceDTO, error)
}

type service struct {
	repo  Repository
	tx    txRunner
	audit audit.Recorder
	now   func() time.Time
}

// NewService wires the invoice service.
func NewService(repo Repository, tx txRunner, recorder audit.Recorder) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("invoice repository required")
	}
	if tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	if recorder == nil {
		return nil, fmt.Errorf("audit recorder required")
	}
	return &service{repo: repo, tx: tx, audit: recorder, now: time.Now}, nil
}

// Create stores the invoice, its lines and the audit row in one transaction.
func (s *service) Create(ctx context.Context, input CreateInvoiceInput) (*InvoiceDTO, error) {
	header := input.Invoice
	invoiceNo := strings.TrimSpace(header.InvoiceNo)
	if invoiceNo == "" {
		invoiceNo = fmt.Sprintf("%s%d", invoiceNoPrefix, s.now().UnixMilli())
	}
	invoiceDate := header.InvoiceDate
	if !invoiceDate.Valid {
		now := s.now().UTC()
		invoiceDate = types.NewDate(now.Year(), now.Month(), now.Day())
	}

	items := make([]models.InvoiceItem, 0, len(input.Items))
	for i, item := range input.Items {
		items = append(items, toItemModel(item, i+1))
	}
	totals := ComputeTotals(items)

	invoice := &models.Invoice{
		InvoiceNo:       invoiceNo,
		PartyID:         header.PartyID,
		SellID:          header.SellID,
		InvoiceDate:     invoiceDate,
		TransactionType: header.TransactionType,
		TotalCts:        totals.TotalCts,
		TotalAmount:     totals.TotalAmount,
		AvgPrice:        totals.AvgPrice,
		Items:           items,
	}

	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		if err := s.repo.WithTx(tx).Create(ctx, invoice); err != nil {
			return err
		}
		return s.audit.WithTx(tx).Record(ctx, audit.Entry{
			EntityType: enums.AuditEntityInvoices,
			EntityID:   invoice.ID,
			Action:     enums.AuditActionCreate,
			Summary:    map[string]any{"invoice_no": invoiceNo, "items_count": len(items)},
		})
	})
	if db.IsUniqueViolation(err, "idx_invoices_invoice_no", "invoices.invoice_no") {
		return nil, pkgerrors.Wrap(pkgerrors.CodeConflict, err, msgInvoiceNoTaken)
	}
	if err != nil {
		return nil, repo.StoreError(err, msgInvoiceNotFound)
	}

	dto := toDTO(*invoice)
	return &dto, nil
}

func (s *service) List(ctx context.Context) ([]InvoiceDTO, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Store(err)
	}
	out := make([]InvoiceDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, toDTO(row))
	}
	return out, nil
}

func (s *service) Get(ctx context.Context, invoiceID uuid.UUID) (*InvoiceDTO, error) {
	if invoiceID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invoice_id is required")
	}
	row, err := s.repo.Find(ctx, invoiceID)
	if err != nil {
		return nil, repo.StoreError(err, msgInvoiceNotFound)
	}
	dto := toDTO(*row)
	return &dto, nil
}
