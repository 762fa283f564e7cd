package production

import (
	"context"
	"time"

	"github.com/angelmondragon/lotflow-backend/pkg/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// StageEvent is a manual stage note recorded against a lot. Events never
// move a lot's current stage.
type StageEvent struct {
	ID         uuid.UUID           `json:"id"`
	LotCode    string              `json:"lot_code"`
	Stage      string              `json:"stage"`
	EventDate  types.Date          `json:"event_date"`
	YieldCts   decimal.NullDecimal `json:"yield_cts"`
	RejectCts  decimal.NullDecimal `json:"reject_cts"`
	WastageCts decimal.NullDecimal `json:"wastage_cts"`
	Notes      *string             `json:"notes,omitempty"`
	CreatedAt  time.Time           `json:"created_at"`
}

// EventSource supplies the stage events of a lot.
type EventSource interface {
	ListStageEvents(ctx context.Context, lotCode string) ([]StageEvent, error)
}

// Option configures the derivation service.
type Option func(*service)

// WithEventSource attaches recorded stage events to lot details.
func WithEventSource(events EventSource) Option {
	return func(s *service) {
		s.events = events
	}
}
