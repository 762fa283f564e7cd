package models

import (
	"time"

	"github.com/angelmondragon/lotflow-backend/pkg/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SellRecord groups inventory records sold together.
type SellRecord struct {
	ID          uuid.UUID       `gorm:"column:id;type:uuid;primaryKey"`
	SellID      string          `gorm:"column:sell_id;not null;uniqueIndex"`
	PartyID     *string         `gorm:"column:party_id"`
	RecordDate  types.Date      `gorm:"column:record_date;type:date"`
	TotalCts    decimal.Decimal `gorm:"column:total_cts;type:numeric(12,3);not null"`
	TotalAmount decimal.Decimal `gorm:"column:total_amount;type:numeric(14,2);not null"`
	AvgPrice    decimal.Decimal `gorm:"column:avg_price;type:numeric(14,2);not null"`
	CreatedAt   time.Time       `gorm:"column:created_at;autoCreateTime"`
}
