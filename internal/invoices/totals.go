package invoices

import (
	"github.com/angelmondragon/lotflow-backend/pkg/db/models"
	"github.com/shopspring/decimal"
)

// Totals is the weight, value and average price of an invoice.
type Totals struct {
	TotalCts    decimal.Decimal
	TotalAmount decimal.Decimal
	AvgPrice    decimal.Decimal
}

// ComputeTotals sums the invoice lines. Missing readings count as zero and
// AvgPrice is zero when no weight is billed.
func ComputeTotals(items []models.InvoiceItem) Totals {
	totals := Totals{TotalCts: decimal.Zero, TotalAmount: decimal.Zero, AvgPrice: decimal.Zero}
	for _, item := range items {
		if item.Cts.Valid {
			totals.TotalCts = totals.TotalCts.Add(item.Cts.Decimal)
		}
		if item.Amount.Valid {
			totals.TotalAmount = totals.TotalAmount.Add(item.Amount.Decimal)
		}
	}
	if !totals.TotalCts.IsZero() {
		totals.AvgPrice = totals.TotalAmount.DivRound(totals.TotalCts, 2)
	}
	return totals
}

// LineAmount keeps a recorded amount, otherwise prices the line as cts * price.
func LineAmount(cts, price, amount decimal.NullDecimal) decimal.NullDecimal {
	if amount.Valid {
		return amount
	}
	if !cts.Valid || !price.Valid {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(cts.Decimal.Mul(price.Decimal).Round(2))
}
