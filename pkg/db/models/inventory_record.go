package models

import (
	"time"

	"github.com/angelmondragon/lotflow-backend/pkg/enums"
	"github.com/angelmondragon/lotflow-backend/pkg/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InventoryRecord is a finished parcel held in stock.
type InventoryRecord struct {
	ID          uuid.UUID             `gorm:"column:id;type:uuid;primaryKey"`
	RecordDate  types.Date            `gorm:"column:record_date;type:date"`
	LotCode     *string               `gorm:"column:lot_code"`
	Format      *string               `gorm:"column:format"`
	Shape       *string               `gorm:"column:shape"`
	Size        *string               `gorm:"column:size"`
	Description *string               `gorm:"column:description"`
	Cts         decimal.NullDecimal   `gorm:"column:cts;type:numeric(12,3)"`
	Amount      decimal.NullDecimal   `gorm:"column:amount;type:numeric(14,2)"`
	Status      enums.InventoryStatus `gorm:"column:status;not null;default:AVAILABLE"`
	SellID      *string               `gorm:"column:sell_id"`
	CreatedAt   time.Time             `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time             `gorm:"column:updated_at;autoUpdateTime"`
}
