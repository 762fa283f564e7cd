package models

import (
	"time"

	"github.com/angelmondragon/lotflow-backend/pkg/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LotStageEvent is a manual note that a lot passed through a stage. It is
// informational; the current stage of a lot still comes from its memos.
type LotStageEvent struct {
	ID         uuid.UUID           `gorm:"column:id;type:uuid;primaryKey"`
	LotCode    string              `gorm:"column:lot_code;not null;index"`
	Stage      string              `gorm:"column:stage;not null"`
	EventDate  types.Date          `gorm:"column:event_date;type:date"`
	YieldCts   decimal.NullDecimal `gorm:"column:yield_cts;type:numeric(12,3)"`
	RejectCts  decimal.NullDecimal `gorm:"column:reject_cts;type:numeric(12,3)"`
	WastageCts decimal.NullDecimal `gorm:"column:wastage_cts;type:numeric(12,3)"`
	Notes      *string             `gorm:"column:notes"`
	CreatedAt  time.Time           `gorm:"column:created_at;autoCreateTime"`
}
