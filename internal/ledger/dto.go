package ledger

import (
	"time"

	"github.com/angelmondragon/lotflow-backend/pkg/db/models"
	"github.com/angelmondragon/lotflow-backend/pkg/enums"
	"github.com/angelmondragon/lotflow-backend/pkg/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EntryDTO is the cashbook entry returned to clients.
type EntryDTO struct {
	ID        uuid.UUID               `json:"id"`
	EntryDate types.Date              `json:"entry_date"`
	EntryType string                  `json:"entry_type"`
	Party     *string                 `json:"party,omitempty"`
	LotCode   *string                 `json:"lot_code,omitempty"`
	Amount    decimal.Decimal         `json:"amount"`
	Balance   decimal.NullDecimal     `json:"balance"`
	Remark    *string                 `json:"remark,omitempty"`
	Status    enums.LedgerEntryStatus `json:"status"`
	CreatedAt time.Time               `json:"created_at"`
	UpdatedAt time.Time               `json:"updated_at"`
}

func toDTO(entry models.LedgerEntry) EntryDTO {
	return EntryDTO{
		ID:        entry.ID,
		EntryDate: entry.EntryDate,
		EntryType: entry.EntryType,
		Party:     entry.Party,
		LotCode:   entry.LotCode,
		Amount:    entry.Amount,
		Balance:   entry.Balance,
		Remark:    entry.Remark,
		Status:    entry.Status,
		CreatedAt: entry.CreatedAt,
		UpdatedAt: entry.UpdatedAt,
	}
}
