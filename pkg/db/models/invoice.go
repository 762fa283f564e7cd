package models

import (
	"time"

	"github.com/angelmondragon/lotflow-backend/pkg/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Invoice is a priced bill for a party, optionally tied to a sell.
type Invoice struct {
	ID              uuid.UUID       `gorm:"column:id;type:uuid;primaryKey"`
	InvoiceNo       string          `gorm:"column:invoice_no;not null;uniqueIndex"`
	PartyID         *string         `gorm:"column:party_id"`
	SellID          *string         `gorm:"column:sell_id"`
	InvoiceDate     types.Date      `gorm:"column:invoice_date;type:date"`
	TransactionType *string         `gorm:"column:transaction_type"`
	TotalCts        decimal.Decimal `gorm:"column:total_cts;type:numeric(12,3);not null"`
	TotalAmount     decimal.Decimal `gorm:"column:total_amount;type:numeric(14,2);not null"`
	AvgPrice        decimal.Decimal `gorm:"column:avg_price;type:numeric(14,2);not null"`
	Items           []InvoiceItem   `gorm:"foreignKey:InvoiceID;constraint:OnDelete:CASCADE"`
	CreatedAt       time.Time       `gorm:"column:created_at;autoCreateTime"`
}

// InvoiceItem is one priced line of an invoice.
type InvoiceItem struct {
	ID          uuid.UUID           `gorm:"column:id;type:uuid;primaryKey"`
	InvoiceID   uuid.UUID           `gorm:"column:invoice_id;type:uuid;not null;index"`
	LineNo      int                 `gorm:"column:line_no;not null"`
	LotCode     *string             `gorm:"column:lot_code"`
	Description *string             `gorm:"column:description"`
	Shape       *string             `gorm:"column:shape"`
	Size        *string             `gorm:"column:size"`
	Grade       *string             `gorm:"column:grade"`
	Pcs         *int                `gorm:"column:pcs"`
	Cts         decimal.NullDecimal `gorm:"column:cts;type:numeric(12,3)"`
	Price       decimal.NullDecimal `gorm:"column:price;type:numeric(14,2)"`
	Amount      decimal.NullDecimal `gorm:"column:amount;type:numeric(14,2)"`
}

func (InvoiceItem) TableName() string { return "invoice_items" }
