package memos

import (
	"time"

	"github.com/angelmondragon/lotflow-backend/internal/production"
	"github.com/angelmondragon/lotflow-backend/pkg/enums"
	"github.com/angelmondragon/lotflow-backend/pkg/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateMemoInput is the payload for a new memo. Items are attached at creation.
type CreateMemoInput struct {
	MemoNo        string          `json:"memo_no" validate:"omitempty,max=64"`
	Process       string          `json:"process" validate:"required"`
	LotCode       string          `json:"lot_code" validate:"required"`
	Description   *string         `json:"description"`
	FromParty     string          `json:"from_party"`
	ToParty       string          `json:"to_party"`
	DateOutHeader types.Date      `json:"date_out_header"`
	DateInHeader  types.Date      `json:"date_in_header"`
	RemarkHeader  *string         `json:"remark_header"`
	Items         []MemoItemInput `json:"items" validate:"required,min=1,dive"`
}

// MemoItemInput is one parcel line of a new memo.
type MemoItemInput struct {
	ItemNo     int                 `json:"item_no" validate:"omitempty,min=1"`
	OutDate    types.Date          `json:"out_date"`
	OutGrade   *string             `json:"out_grade"`
	OutSize    *string             `json:"out_size"`
	OutPcs     *int                `json:"out_pcs" validate:"omitempty,min=0"`
	OutWeight1 decimal.NullDecimal `json:"out_weight_1"`
	OutWeight2 decimal.NullDecimal `json:"out_weight_2"`
	InDate     types.Date          `json:"in_date"`
	InGrade    *string             `json:"in_grade"`
	InSize     *string             `json:"in_size"`
	InPcs      *int                `json:"in_pcs" validate:"omitempty,min=0"`
	InWeight1  decimal.NullDecimal `json:"in_weight_1"`
	InWeight2  decimal.NullDecimal `json:"in_weight_2"`
	Price      decimal.NullDecimal `json:"price"`
	Amount     decimal.NullDecimal `json:"amount"`
	RejPcs     *int                `json:"rej_pcs" validate:"omitempty,min=0"`
	RejCts     decimal.NullDecimal `json:"rej_cts"`
	WastageIn  decimal.NullDecimal `json:"wastage_in"`
	Percent    decimal.NullDecimal `json:"percent"`
	RemarkLine *string             `json:"remark_line"`
}

// MemoDTO is the memo record returned to clients, with derived totals.
type MemoDTO struct {
	ID            uuid.UUID             `json:"id"`
	MemoNo        string                `json:"memo_no"`
	Process       string                `json:"process"`
	Transition    production.Process    `json:"transition"`
	LotCode       string                `json:"lot_code"`
	Description   *string               `json:"description,omitempty"`
	FromParty     string                `json:"from_party"`
	ToParty       string                `json:"to_party"`
	DateOutHeader types.Date            `json:"date_out_header"`
	DateInHeader  types.Date            `json:"date_in_header"`
	RemarkHeader  *string               `json:"remark_header,omitempty"`
	Status        enums.MemoStatus      `json:"status"`
	StatusLocked  bool                  `json:"status_locked"`
	Items         []MemoItemDTO         `json:"items"`
	Totals        production.MemoTotals `json:"totals"`
	CreatedAt     time.Time             `json:"created_at"`
	UpdatedAt     time.Time             `json:"updated_at"`
}

// MemoItemDTO is a memo line with its percent check.
type MemoItemDTO struct {
	ID           uuid.UUID               `json:"id"`
	ItemNo       int                     `json:"item_no"`
	OutDate      types.Date              `json:"out_date"`
	OutGrade     *string                 `json:"out_grade,omitempty"`
	OutSize      *string                 `json:"out_size,omitempty"`
	OutPcs       *int                    `json:"out_pcs,omitempty"`
	OutWeight1   decimal.NullDecimal     `json:"out_weight_1"`
	OutWeight2   decimal.NullDecimal     `json:"out_weight_2"`
	InDate       types.Date              `json:"in_date"`
	InGrade      *string                 `json:"in_grade,omitempty"`
	InSize       *string                 `json:"in_size,omitempty"`
	InPcs        *int                    `json:"in_pcs,omitempty"`
	InWeight1    decimal.NullDecimal     `json:"in_weight_1"`
	InWeight2    decimal.NullDecimal     `json:"in_weight_2"`
	Price        decimal.NullDecimal     `json:"price"`
	Amount       decimal.NullDecimal     `json:"amount"`
	RejPcs       *int                    `json:"rej_pcs,omitempty"`
	RejCts       decimal.NullDecimal     `json:"rej_cts"`
	WastageIn    decimal.NullDecimal     `json:"wastage_in"`
	Percent      decimal.NullDecimal     `json:"percent"`
	PercentCheck production.PercentCheck `json:"percent_check"`
	RemarkLine   *string                 `json:"remark_line,omitempty"`
}
