package stageevents

import (
	"github.com/angelmondragon/lotflow-backend/internal/production"
	"github.com/angelmondragon/lotflow-backend/pkg/db/models"
	"github.com/angelmondragon/lotflow-backend/pkg/types"
	"github.com/shopspring/decimal"
)

// EventInput is one manual stage note for a lot.
type EventInput struct {
	LotCode    string              `json:"lot_code" validate:"required,max=128"`
	Stage      string              `json:"stage" validate:"required,max=64"`
	EventDate  types.Date          `json:"event_date"`
	YieldCts   decimal.NullDecimal `json:"yield_cts"`
	RejectCts  decimal.NullDecimal `json:"reject_cts"`
	WastageCts decimal.NullDecimal `json:"wastage_cts"`
	Notes      *string             `json:"notes"`
}

// CreateEventInput is the body of a stage event create request.
type CreateEventInput struct {
	Event EventInput `json:"event"`
}

func toDTO(row models.LotStageEvent) production.StageEvent {
	return production.StageEvent{
		ID:         row.ID,
		LotCode:    row.LotCode,
		Stage:      row.Stage,
		EventDate:  row.EventDate,
		YieldCts:   row.YieldCts,
		RejectCts:  row.RejectCts,
		WastageCts: row.WastageCts,
		Notes:      row.Notes,
		CreatedAt:  row.CreatedAt,
	}
}
