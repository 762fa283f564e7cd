package production

import (
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Item holds the accounting fields of one memo line.
type Item struct {
	ItemNo     int
	OutWeight1 decimal.NullDecimal
	OutWeight2 decimal.NullDecimal
	InWeight1  decimal.NullDecimal
	InWeight2  decimal.NullDecimal
	RejCts     decimal.NullDecimal
	WastageIn  decimal.NullDecimal
	Percent    decimal.NullDecimal
}

// MemoTotals is the weight balance of a single memo.
type MemoTotals struct {
	TotalOut     decimal.Decimal     `json:"total_out"`
	TotalIn      decimal.Decimal     `json:"total_in"`
	TotalReject  decimal.Decimal     `json:"total_reject"`
	TotalWastage decimal.Decimal     `json:"total_wastage"`
	Remaining    decimal.Decimal     `json:"remaining"`
	YieldPercent decimal.NullDecimal `json:"yield_percent"`
	// DivergentItems lists item numbers whose recorded percent disagrees with the computed yield.
	DivergentItems []int `json:"divergent_items,omitempty"`
}

// PercentCheck compares an item's recorded percent with its computed yield.
type PercentCheck struct {
	ItemNo    int                 `json:"item_no"`
	Recorded  decimal.NullDecimal `json:"recorded"`
	Computed  decimal.NullDecimal `json:"computed"`
	Divergent bool                `json:"divergent"`
}

// usable reports whether a reading was recorded with a non-zero value.
func usable(reading decimal.NullDecimal) bool {
	return reading.Valid && !reading.Decimal.IsZero()
}

func valueOrZero(reading decimal.NullDecimal) decimal.Decimal {
	if !reading.Valid {
		return decimal.Zero
	}
	return reading.Decimal
}

// SelectOutWeight prefers the second dispatch reading, then the first.
func SelectOutWeight(item Item) decimal.Decimal {
	switch {
	case usable(item.OutWeight2):
		return item.OutWeight2.Decimal
	case usable(item.OutWeight1):
		return item.OutWeight1.Decimal
	}
	return decimal.Zero
}

// SelectInWeight prefers the first return reading, then the second.
func SelectInWeight(item Item) decimal.Decimal {
	switch {
	case usable(item.InWeight1):
		return item.InWeight1.Decimal
	case usable(item.InWeight2):
		return item.InWeight2.Decimal
	}
	return decimal.Zero
}

// YieldPercent returns in/out*100, or an invalid value when nothing went out.
func YieldPercent(totalIn, totalOut decimal.Decimal) decimal.NullDecimal {
	if !totalOut.IsPositive() {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(totalIn.Div(totalOut).Mul(hundred))
}

// ComputeMemoTotals folds a memo's items into its weight balance. Remaining is
// not clamped; a negative value points at inconsistent entries.
func ComputeMemoTotals(items []Item) MemoTotals {
	totals := MemoTotals{
		TotalOut:     decimal.Zero,
		TotalIn:      decimal.Zero,
		TotalReject:  decimal.Zero,
		TotalWastage: decimal.Zero,
	}

	for _, item := range items {
		totals.TotalOut = totals.TotalOut.Add(SelectOutWeight(item))
		totals.TotalIn = totals.TotalIn.Add(SelectInWeight(item))
		totals.TotalReject = totals.TotalReject.Add(valueOrZero(item.RejCts))
		totals.TotalWastage = totals.TotalWastage.Add(valueOrZero(item.WastageIn))

		if ReconcilePercent(item).Divergent {
			totals.DivergentItems = append(totals.DivergentItems, item.ItemNo)
		}
	}

	totals.Remaining = totals.TotalOut.Sub(totals.TotalIn).Sub(totals.TotalReject)
	totals.YieldPercent = YieldPercent(totals.TotalIn, totals.TotalOut)
	return totals
}

// ReconcilePercent keeps the recorded percent next to the computed item yield.
// They diverge when both exist and differ at one decimal place.
func ReconcilePercent(item Item) PercentCheck {
	check := PercentCheck{
		ItemNo:   item.ItemNo,
		Recorded: item.Percent,
		Computed: YieldPercent(SelectInWeight(item), SelectOutWeight(item)),
	}
	if check.Recorded.Valid && check.Computed.Valid {
		check.Divergent = !check.Recorded.Decimal.Round(1).Equal(check.Computed.Decimal.Round(1))
	}
	return check
}
