package inventory

import (
	"github.com/angelmondragon/lotflow-backend/pkg/db/models"
	"github.com/angelmondragon/lotflow-backend/pkg/enums"
	"github.com/shopspring/decimal"
)

// Summary describes stock on hand.
type Summary struct {
	RecordCount     int             `json:"record_count"`
	RemainingCts    decimal.Decimal `json:"remaining_cts"`
	RemainingAmount decimal.Decimal `json:"remaining_amount"`
}

// Summarize counts every record and totals weight and value of unsold ones.
func Summarize(records []models.InventoryRecord) Summary {
	summary := Summary{
		RecordCount:     len(records),
		RemainingCts:    decimal.Zero,
		RemainingAmount: decimal.Zero,
	}
	for _, record := range records {
		if record.Status == enums.InventoryStatusSold {
			continue
		}
		if record.Cts.Valid {
			summary.RemainingCts = summary.RemainingCts.Add(record.Cts.Decimal)
		}
		if record.Amount.Valid {
			summary.RemainingAmount = summary.RemainingAmount.Add(record.Amount.Decimal)
		}
	}
	return summary
}

// SellTotals is the weight, value and average price of a sell.
type SellTotals struct {
	TotalCts    decimal.Decimal
	TotalAmount decimal.Decimal
	AvgPrice    decimal.Decimal
}

// ComputeSellTotals sums the records being sold. AvgPrice is zero when no
// weight is sold.
func ComputeSellTotals(records []models.InventoryRecord) SellTotals {
	totals := SellTotals{TotalCts: decimal.Zero, TotalAmount: decimal.Zero, AvgPrice: decimal.Zero}
	for _, record := range records {
		if record.Cts.Valid {
			totals.TotalCts = totals.TotalCts.Add(record.Cts.Decimal)
		}
		if record.Amount.Valid {
			totals.TotalAmount = totals.TotalAmount.Add(record.Amount.Decimal)
		}
	}
	if !totals.TotalCts.IsZero() {
		totals.AvgPrice = totals.TotalAmount.DivRound(totals.TotalCts, 2)
	}
	return totals
}
