package inventory

import (
	"testing"

	"github.com/angelmondragon/lotflow-backend/pkg/db/models"
	"github.com/angelmondragon/lotflow-backend/pkg/enums"
	"github.com/shopspring/decimal"
)

func amount(value string) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.RequireFromString(value))
}

func TestSummarizeSkipsSoldRecords(t *testing.T) {
	summary := Summarize([]models.InventoryRecord{
		{Cts: amount("1.25"), Amount: amount("500"), Status: enums.InventoryStatusAvailable},
		{Cts: amount("2"), Amount: amount("900"), Status: enums.InventoryStatusSold},
		{Amount: amount("100"), Status: enums.InventoryStatusAvailable},
	})
	if summary.RecordCount != 3 {
		t.Fatalf("expected 3 records, got %d", summary.RecordCount)
	}
	if !summary.RemainingCts.Equal(decimal.RequireFromString("1.25")) {
		t.Fatalf("unexpected remaining cts %s", summary.RemainingCts)
	}
	if !summary.RemainingAmount.Equal(decimal.NewFromInt(600)) {
		t.Fatalf("unexpected remaining amount %s", summary.RemainingAmount)
	}
}

func TestComputeSellTotals(t *testing.T) {
	totals := ComputeSellTotals([]models.InventoryRecord{
		{Cts: amount("1.5"), Amount: amount("300")},
		{Cts: amount("0.5"), Amount: amount("150")},
	})
	if !totals.TotalCts.Equal(decimal.NewFromInt(2)) || !totals.TotalAmount.Equal(decimal.NewFromInt(450)) {
		t.Fatalf("unexpected totals %+v", totals)
	}
	if !totals.AvgPrice.Equal(decimal.RequireFromString("225")) {
		t.Fatalf("unexpected avg price %s", totals.AvgPrice)
	}

	empty := ComputeSellTotals([]models.InventoryRecord{{Amount: amount("10")}})
	if !empty.AvgPrice.IsZero() {
		t.Fatalf("avg price must be zero without weight, got %s", empty.AvgPrice)
	}
}
