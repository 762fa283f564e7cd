package invoices

import (
	"time"

	"github.com/angelmondragon/lotflow-backend/pkg/db/models"
	"github.com/angelmondragon/lotflow-backend/pkg/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvoiceInput is the invoice header.
type InvoiceInput struct {
	InvoiceNo       string     `json:"invoice_no" validate:"omitempty,max=64"`
	PartyID         *string    `json:"party_id"`
	SellID          *string    `json:"sell_id"`
	InvoiceDate     types.Date `json:"invoice_date"`
	TransactionType *string    `json:"transaction_type"`
}

// ItemInput is one priced invoice line.
type ItemInput struct {
	LotCode     *string             `json:"lot_code"`
	Description *string             `json:"description"`
	Shape       *string             `json:"shape"`
	Size        *string             `json:"size"`
	Grade       *string             `json:"grade"`
	Pcs         *int                `json:"pcs" validate:"omitempty,min=0"`
	Cts         decimal.NullDecimal `json:"cts"`
	Price       decimal.NullDecimal `json:"price"`
	Amount      decimal.NullDecimal `json:"amount"`
}

// CreateInvoiceInput is the body of an invoice create request.
type CreateInvoiceInput struct {
	Invoice InvoiceInput `json:"invoice"`
	Items   []ItemInput  `json:"items" validate:"dive"`
}

// InvoiceDTO is the invoice returned to clients.
type InvoiceDTO struct {
	ID              uuid.UUID       `json:"id"`
	InvoiceNo       string          `json:"invoice_no"`
	PartyID         *string         `json:"party_id,omitempty"`
	SellID          *string         `json:"sell_id,omitempty"`
	InvoiceDate     types.Date      `json:"invoice_date"`
	TransactionType *string         `json:"transaction_type,omitempty"`
	TotalCts        decimal.Decimal `json:"total_cts"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	AvgPrice        decimal.Decimal `json:"avg_price"`
	Items           []ItemDTO       `json:"items"`
	CreatedAt       time.Time       `json:"created_at"`
}

// ItemDTO is an invoice line returned to clients.
type ItemDTO struct {
	ID          uuid.UUID           `json:"id"`
	LineNo      int                 `json:"line_no"`
	LotCode     *string             `json:"lot_code,omitempty"`
	Description *string             `json:"description,omitempty"`
	Shape       *string             `json:"shape,omitempty"`
	Size        *string             `json:"size,omitempty"`
	Grade       *string             `json:"grade,omitempty"`
	Pcs         *int                `json:"pcs,omitempty"`
	Cts         decimal.NullDecimal `json:"cts"`
	Price       decimal.NullDecimal `json:"price"`
	Amount      decimal.NullDecimal `json:"amount"`
}

func toItemModel(input ItemInput, lineNo int) models.InvoiceItem {
	return models.InvoiceItem{
		LineNo:      lineNo,
		LotCode:     input.LotCode,
		Description: input.Description,
		Shape:       input.Shape,
		Size:        input.Size,
		Grade:       input.Grade,
		Pcs:         input.Pcs,
		Cts:         input.Cts,
		Price:       input.Price,
		Amount:      LineAmount(input.Cts, input.Price, input.Amount),
	}
}

func toDTO(invoice models.Invoice) InvoiceDTO {
	items := make([]ItemDTO, 0, len(invoice.Items))
	for _, item := range invoice.Items {
		items = append(items, ItemDTO{
			ID:          item.ID,
			LineNo:      item.LineNo,
			LotCode:     item.LotCode,
			Description: item.Description,
			Shape:       item.Shape,
			Size:        item.Size,
			Grade:       item.Grade,
			Pcs:         item.Pcs,
			Cts:         item.Cts,
			Price:       item.Price,
			Amount:      item.Amount,
		})
	}
	return InvoiceDTO{
		ID:              invoice.ID,
		InvoiceNo:       invoice.InvoiceNo,
		PartyID:         invoice.PartyID,
		SellID:          invoice.SellID,
		InvoiceDate:     invoice.InvoiceDate,
		TransactionType: invoice.TransactionType,
		TotalCts:        invoice.TotalCts,
		TotalAmount:     invoice.TotalAmount,
		AvgPrice:        invoice.AvgPrice,
		Items:           items,
		CreatedAt:       invoice.CreatedAt,
	}
}
