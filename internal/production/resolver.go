package production

import (
	"github.com/angelmondragon/lotflow-backend/pkg/enums"
	"github.com/angelmondragon/lotflow-backend/pkg/types"
	"github.com/shopspring/decimal"
)

// LotSnapshot is the derived state of a lot. It is never stored.
type LotSnapshot struct {
	LotCode      string              `json:"lot_code"`
	CurrentStage enums.Stage         `json:"current_stage"`
	TotalOut     decimal.Decimal     `json:"total_out"`
	TotalIn      decimal.Decimal     `json:"total_in"`
	TotalReject  decimal.Decimal     `json:"total_reject"`
	Remaining    decimal.Decimal     `json:"remaining"`
	YieldPercent decimal.NullDecimal `json:"yield_percent"`
	// LastUpdated is nil when the lot has no dated return.
	LastUpdated *types.Date `json:"last_updated"`
	MemoCount   int         `json:"memo_count"`
}

// ResolveLot replays a timeline into a snapshot. The current stage is the
// target of the latest memo, locked or not; an empty timeline resolves to
// StageUnknown.
func ResolveLot(lotCode string, tl Timeline) LotSnapshot {
	snapshot := LotSnapshot{
		LotCode:      lotCode,
		CurrentStage: enums.StageUnknown,
		TotalOut:     decimal.Zero,
		TotalIn:      decimal.Zero,
		TotalReject:  decimal.Zero,
		Remaining:    decimal.Zero,
	}

	for memo := range tl.All() {
		totals := ComputeMemoTotals(memo.Items)
		snapshot.TotalOut = snapshot.TotalOut.Add(totals.TotalOut)
		snapshot.TotalIn = snapshot.TotalIn.Add(totals.TotalIn)
		snapshot.TotalReject = snapshot.TotalReject.Add(totals.TotalReject)
		snapshot.Remaining = snapshot.Remaining.Add(totals.Remaining)
		snapshot.MemoCount++
	}

	if last, ok := tl.Last(); ok {
		snapshot.CurrentStage = last.Process.To
		if last.DateInHeader.Valid {
			updated := last.DateInHeader
			snapshot.LastUpdated = &updated
		}
	}

	snapshot.YieldPercent = YieldPercent(snapshot.TotalIn, snapshot.TotalOut)
	return snapshot
}

// ResolveLots resolves every lot present in memos, in first-seen order.
func ResolveLots(memos []Memo) []LotSnapshot {
	timelines := Timelines(memos)
	out := make([]LotSnapshot, 0, len(timelines))
	for _, tl := range timelines {
		out = append(out, ResolveLot(tl.LotCode(), tl))
	}
	return out
}
