package inventory

import (
	"time"

	"github.com/angelmondragon/lotflow-backend/pkg/db/models"
	"github.com/angelmondragon/lotflow-backend/pkg/enums"
	"github.com/angelmondragon/lotflow-backend/pkg/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateRecordInput captures a new stock record.
type CreateRecordInput struct {
	RecordDate  types.Date          `json:"record_date"`
	LotCode     *string             `json:"lot_code"`
	Format      *string             `json:"format"`
	Shape       *string             `json:"shape"`
	Size        *string             `json:"size"`
	Description *string             `json:"description"`
	Cts         decimal.NullDecimal `json:"cts"`
	Amount      decimal.NullDecimal `json:"amount"`
}

// SellInput sells a set of inventory records together.
type SellInput struct {
	SellID       string      `json:"sell_id" validate:"omitempty,max=64"`
	PartyID      *string     `json:"party_id"`
	RecordDate   types.Date  `json:"record_date"`
	InventoryIDs []uuid.UUID `json:"inventory_ids"`
}

// RecordDTO is the inventory record returned to clients.
type RecordDTO struct {
	ID          uuid.UUID             `json:"id"`
	RecordDate  types.Date            `json:"record_date"`
	LotCode     *string               `json:"lot_code,omitempty"`
	Format      *string               `json:"format,omitempty"`
	Shape       *string               `json:"shape,omitempty"`
	Size        *string               `json:"size,omitempty"`
	Description *string               `json:"description,omitempty"`
	Cts         decimal.NullDecimal   `json:"cts"`
	Amount      decimal.NullDecimal   `json:"amount"`
	Status      enums.InventoryStatus `json:"status"`
	SellID      *string               `json:"sell_id,omitempty"`
	CreatedAt   time.Time             `json:"created_at"`
}

// SellDTO is the sell record returned to clients.
type SellDTO struct {
	ID           uuid.UUID       `json:"id"`
	SellID       string          `json:"sell_id"`
	PartyID      *string         `json:"party_id,omitempty"`
	RecordDate   types.Date      `json:"record_date"`
	TotalCts     decimal.Decimal `json:"total_cts"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	AvgPrice     decimal.Decimal `json:"avg_price"`
	InventoryIDs []uuid.UUID     `json:"inventory_ids"`
	CreatedAt    time.Time       `json:"created_at"`
}

func toRecordDTO(record models.InventoryRecord) RecordDTO {
	return RecordDTO{
		ID:          record.ID,
		RecordDate:  record.RecordDate,
		LotCode:     record.LotCode,
		Format:      record.Format,
		Shape:       record.Shape,
		Size:        record.Size,
		Description: record.Description,
		Cts:         record.Cts,
		Amount:      record.Amount,
		Status:      record.Status,
		SellID:      record.SellID,
		CreatedAt:   record.CreatedAt,
	}
}

func toSellDTO(sell models.SellRecord, inventoryIDs []uuid.UUID) SellDTO {
	return SellDTO{
		ID:           sell.ID,
		SellID:       sell.SellID,
		PartyID:      sell.PartyID,
		RecordDate:   sell.RecordDate,
		TotalCts:     sell.TotalCts,
		TotalAmount:  sell.TotalAmount,
		AvgPrice:     sell.AvgPrice,
		InventoryIDs: inventoryIDs,
		CreatedAt:    sell.CreatedAt,
	}
}
