package production

import (
	"testing"

	"github.com/angelmondragon/lotflow-backend/pkg/enums"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveLotTwoMemoHistory(t *testing.T) {
	memos := fixtureMemos()
	snapshot := ResolveLot("AJMZ 2", BuildTimeline(memos, "AJMZ 2"))

	assert.Equal(t, enums.StageCutting, snapshot.CurrentStage)
	assert.True(t, snapshot.TotalOut.Equal(dec("100.5")), snapshot.TotalOut.String())
	assert.True(t, snapshot.TotalIn.Equal(dec("94.6")), snapshot.TotalIn.String())
	assert.True(t, snapshot.TotalReject.Equal(dec("1.8")), snapshot.TotalReject.String())
	assert.Equal(t, 2, snapshot.MemoCount)
	require.NotNil(t, snapshot.LastUpdated)
	assert.Equal(t, "2024-07-12", snapshot.LastUpdated.String())
}

func TestResolveLotRemainingAgreesWithAggregates(t *testing.T) {
	memos := append(fixtureMemos(),
		fixtureMemo("1004", "CUTTING TO CALIBRATE", "AJMZ 2", "2024-07-20", "2024-07-25", false,
			Item{ItemNo: 1, OutWeight1: cts("46.5"), InWeight2: cts("47"), RejCts: cts("0.2")},
			Item{ItemNo: 2},
		),
	)
	snapshot := ResolveLot("AJMZ 2", BuildTimeline(memos, "AJMZ 2"))

	want := snapshot.TotalOut.Sub(snapshot.TotalIn).Sub(snapshot.TotalReject)
	assert.True(t, snapshot.Remaining.Equal(want), "remaining %s want %s", snapshot.Remaining, want)
	assert.Equal(t, enums.StageCalibrate, snapshot.CurrentStage)
}

func TestResolveLotEmptyTimeline(t *testing.T) {
	snapshot := ResolveLot("AJMZ 9", BuildTimeline(fixtureMemos(), "AJMZ 9"))

	assert.Equal(t, enums.StageUnknown, snapshot.CurrentStage)
	assert.Nil(t, snapshot.LastUpdated)
	assert.True(t, snapshot.TotalOut.IsZero())
	assert.False(t, snapshot.YieldPercent.Valid)
	assert.Equal(t, "AJMZ 9", snapshot.LotCode)
}

func TestResolveLotUsesLatestMemoRegardlessOfLock(t *testing.T) {
	memos := []Memo{
		fixtureMemo("1", "ROUGH TO PREFORM", "L7", "2024-01-01", "2024-01-05", true),
		fixtureMemo("2", "HEAT 1", "L7", "2024-02-01", "", false),
	}
	snapshot := ResolveLot("L7", BuildTimeline(memos, "L7"))

	assert.Equal(t, enums.StageHeat1, snapshot.CurrentStage)
	assert.Nil(t, snapshot.LastUpdated, "undated return leaves last updated unavailable")
}

func TestResolveLotsFirstSeenOrder(t *testing.T) {
	lots := ResolveLots(fixtureMemos())
	require.Len(t, lots, 2)
	assert.Equal(t, "AJMZ 2", lots[0].LotCode)
	assert.Equal(t, "AJMZ 3", lots[1].LotCode)
	assert.Equal(t, enums.StageHeat2, lots[1].CurrentStage)
}
