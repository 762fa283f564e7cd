package models

import (
	"time"

	"github.com/angelmondragon/lotflow-backend/pkg/enums"
	"github.com/angelmondragon/lotflow-backend/pkg/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Memo is a transfer of a lot between two parties for one processing step.
type Memo struct {
	ID            uuid.UUID        `gorm:"column:id;type:uuid;primaryKey"`
	MemoNo        string           `gorm:"column:memo_no;not null;uniqueIndex"`
	Process       string           `gorm:"column:process;not null"`
	LotCode       string           `gorm:"column:lot_code;not null;index"`
	Description   *string          `gorm:"column:description"`
	FromParty     string           `gorm:"column:from_party"`
	ToParty       string           `gorm:"column:to_party"`
	DateOutHeader types.Date       `gorm:"column:date_out_header;type:date"`
	DateInHeader  types.Date       `gorm:"column:date_in_header;type:date"`
	RemarkHeader  *string          `gorm:"column:remark_header"`
	Status        enums.MemoStatus `gorm:"column:status;not null;default:OPEN"`
	Items         []MemoItem       `gorm:"foreignKey:MemoID;constraint:OnDelete:CASCADE"`
	CreatedAt     time.Time        `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time        `gorm:"column:updated_at;autoUpdateTime"`
}

// MemoItem is one weighed parcel of a memo.
type MemoItem struct {
	ID         uuid.UUID           `gorm:"column:id;type:uuid;primaryKey"`
	MemoID     uuid.UUID           `gorm:"column:memo_id;type:uuid;not null;index"`
	ItemNo     int                 `gorm:"column:item_no;not null"`
	OutDate    types.Date          `gorm:"column:out_date;type:date"`
	OutGrade   *string             `gorm:"column:out_grade"`
	OutSize    *string             `gorm:"column:out_size"`
	OutPcs     *int                `gorm:"column:out_pcs"`
	OutWeight1 decimal.NullDecimal `gorm:"column:out_weight_1;type:numeric(12,3)"`
	OutWeight2 decimal.NullDecimal `gorm:"column:out_weight_2;type:numeric(12,3)"`
	InDate     types.Date          `gorm:"column:in_date;type:date"`
	InGrade    *string             `gorm:"column:in_grade"`
	InSize     *string             `gorm:"column:in_size"`
	InPcs      *int                `gorm:"column:in_pcs"`
	InWeight1  decimal.NullDecimal `gorm:"column:in_weight_1;type:numeric(12,3)"`
	InWeight2  decimal.NullDecimal `gorm:"column:in_weight_2;type:numeric(12,3)"`
	Price      decimal.NullDecimal `gorm:"column:price;type:numeric(14,2)"`
	Amount     decimal.NullDecimal `gorm:"column:amount;type:numeric(14,2)"`
	RejPcs     *int                `gorm:"column:rej_pcs"`
	RejCts     decimal.NullDecimal `gorm:"column:rej_cts;type:numeric(12,3)"`
	WastageIn  decimal.NullDecimal `gorm:"column:wastage_in;type:numeric(12,3)"`
	Percent    decimal.NullDecimal `gorm:"column:percent;type:numeric(6,2)"`
	RemarkLine *string             `gorm:"column:remark_line"`
}

func (MemoItem) TableName() string { return "memo_items" }
