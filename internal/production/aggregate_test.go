package production

import (
	"testing"

	"github.com/angelmondragon/lotflow-backend/pkg/enums"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregateStagesIncludesEveryKnownStage(t *testing.T) {
	lots := ResolveLots(fixtureMemos())
	summaries := AggregateStages(lots, enums.KnownStages())

	require.Len(t, summaries, len(enums.KnownStages()))
	for i, stage := range enums.KnownStages() {
		assert.Equal(t, stage, summaries[i].Stage)
	}

	byStage := map[enums.Stage]StageSummary{}
	for _, s := range summaries {
		byStage[s.Stage] = s
	}
	assert.Equal(t, 0, byStage[enums.StageAcid].Count)
	assert.Empty(t, byStage[enums.StageAcid].LotCodes)
	assert.Equal(t, 1, byStage[enums.StageCutting].Count)
	assert.True(t, byStage[enums.StageCutting].TotalOut.Equal(dec("100.5")))
	assert.Equal(t, []string{"AJMZ 3"}, byStage[enums.StageHeat2].LotCodes)
	assert.True(t, byStage[enums.StageHeat2].TotalIn.Equal(dec("58.4")))
}

func TestAggregateStagesExcludesUnknownStages(t *testing.T) {
	memos := append(fixtureMemos(), fixtureMemo("9", "CUTTING TO POLISH", "X1", "2024-09-01", "", false,
		Item{ItemNo: 1, OutWeight1: cts("3")}))
	lots := ResolveLots(memos)
	summaries := AggregateStages(lots, enums.KnownStages())

	total := 0
	for _, s := range summaries {
		total += s.Count
	}
	assert.Equal(t, 2, total)
	assert.Len(t, lots, 3, "lots outside the vocabulary still resolve")
}

func TestFilterLots(t *testing.T) {
	lots := ResolveLots(append(fixtureMemos(), fixtureMemo("9", "ACID", "BKX 1", "2024-09-01", "", false)))

	bySearch := FilterLots(lots, LotFilter{Search: "ajmz"})
	require.Len(t, bySearch, 2)

	byStage := FilterLots(lots, LotFilter{Stage: enums.StageAcid})
	require.Len(t, byStage, 1)
	assert.Equal(t, "BKX 1", byStage[0].LotCode)

	both := FilterLots(lots, LotFilter{Search: " 3", Stage: enums.StageHeat2})
	require.Len(t, both, 1)

	assert.Len(t, FilterLots(lots, LotFilter{}), 3)
	assert.Empty(t, FilterLots(lots, LotFilter{Search: "ajmz", Stage: enums.StageAcid}))
}
