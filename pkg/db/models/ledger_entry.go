package models

import (
	"time"

	"github.com/angelmondragon/lotflow-backend/pkg/enums"
	"github.com/angelmondragon/lotflow-backend/pkg/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LedgerEntry is a cashbook line. Entries are posted exactly once.
type LedgerEntry struct {
	ID        uuid.UUID               `gorm:"column:id;type:uuid;primaryKey"`
	EntryDate types.Date              `gorm:"column:entry_date;type:date"`
	EntryType string                  `gorm:"column:entry_type;not null"`
	Party     *string                 `gorm:"column:party"`
	LotCode   *string                 `gorm:"column:lot_code"`
	Amount    decimal.Decimal         `gorm:"column:amount;type:numeric(14,2);not null"`
	Balance   decimal.NullDecimal     `gorm:"column:balance;type:numeric(14,2)"`
	Remark    *string                 `gorm:"column:remark"`
	Status    enums.LedgerEntryStatus `gorm:"column:status;not null;default:OPEN"`
	CreatedAt time.Time               `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time               `gorm:"column:updated_at;autoUpdateTime"`
}
