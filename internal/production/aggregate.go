package production

import (
	"strings"

	"github.com/angelmondragon/lotflow-backend/pkg/enums"
	"github.com/shopspring/decimal"
)

// StageSummary rolls up the lots currently at one stage.
type StageSummary struct {
	Stage    enums.Stage     `json:"stage"`
	Count    int             `json:"count"`
	TotalOut decimal.Decimal `json:"total_out"`
	TotalIn  decimal.Decimal `json:"total_in"`
	LotCodes []string        `json:"lot_codes"`
}

// AggregateStages returns one summary per stage, in the given order, even for
// stages without lots. Lots at a stage outside the list are left out.
func AggregateStages(lots []LotSnapshot, stages []enums.Stage) []StageSummary {
	out := make([]StageSummary, len(stages))
	index := make(map[enums.Stage]int, len(stages))
	for i, stage := range stages {
		out[i] = StageSummary{
			Stage:    stage,
			TotalOut: decimal.Zero,
			TotalIn:  decimal.Zero,
			LotCodes: []string{},
		}
		if _, dup := index[stage]; !dup {
			index[stage] = i
		}
	}

	for _, lot := range lots {
		i, ok := index[lot.CurrentStage]
		if !ok {
			continue
		}
		out[i].Count++
		out[i].TotalOut = out[i].TotalOut.Add(lot.TotalOut)
		out[i].TotalIn = out[i].TotalIn.Add(lot.TotalIn)
		out[i].LotCodes = append(out[i].LotCodes, lot.LotCode)
	}
	return out
}

// LotFilter narrows a lot listing.
type LotFilter struct {
	// Search matches lot codes case-insensitively by substring.
	Search string
	// Stage keeps lots currently at exactly this stage.
	Stage enums.Stage
}

// FilterLots applies the filter, preserving order.
func FilterLots(lots []LotSnapshot, filter LotFilter) []LotSnapshot {
	query := strings.ToLower(strings.TrimSpace(filter.Search))
	out := make([]LotSnapshot, 0, len(lots))
	for _, lot := range lots {
		if query != "" && !strings.Contains(strings.ToLower(lot.LotCode), query) {
			continue
		}
		if filter.Stage != "" && lot.CurrentStage != filter.Stage {
			continue
		}
		out = append(out, lot)
	}
	return out
}
