package production

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestComputeMemoTotalsSingleItem(t *testing.T) {
	totals := ComputeMemoTotals([]Item{{
		ItemNo:     1,
		OutWeight2: cts("52.4"),
		InWeight1:  cts("48.1"),
		RejCts:     cts("1.2"),
	}})

	if !totals.TotalOut.Equal(dec("52.4")) || !totals.TotalIn.Equal(dec("48.1")) || !totals.TotalReject.Equal(dec("1.2")) {
		t.Fatalf("unexpected totals: %+v", totals)
	}
	if !totals.Remaining.Equal(dec("3.1")) {
		t.Fatalf("expected remaining 3.1, got %s", totals.Remaining)
	}
	if !totals.YieldPercent.Valid || !totals.YieldPercent.Decimal.Round(1).Equal(dec("91.8")) {
		t.Fatalf("expected yield ~91.8, got %+v", totals.YieldPercent)
	}
}

func TestComputeMemoTotalsEmpty(t *testing.T) {
	for _, items := range [][]Item{nil, {}} {
		totals := ComputeMemoTotals(items)
		if !totals.TotalOut.IsZero() || !totals.TotalIn.IsZero() || !totals.TotalReject.IsZero() || !totals.Remaining.IsZero() {
			t.Fatalf("expected zero totals, got %+v", totals)
		}
		if totals.YieldPercent.Valid {
			t.Fatal("expected undefined yield for empty memo")
		}
	}
}

func TestSelectOutWeightPrefersSecondReading(t *testing.T) {
	cases := []struct {
		name string
		item Item
		want string
	}{
		{"both", Item{OutWeight1: cts("10"), OutWeight2: cts("9.5")}, "9.5"},
		{"first only", Item{OutWeight1: cts("10")}, "10"},
		{"second zero", Item{OutWeight1: cts("10"), OutWeight2: cts("0")}, "10"},
		{"none", Item{}, "0"},
	}
	for _, tc := range cases {
		if got := SelectOutWeight(tc.item); !got.Equal(dec(tc.want)) {
			t.Fatalf("%s: want %s got %s", tc.name, tc.want, got)
		}
	}
}

func TestSelectInWeightPrefersFirstReading(t *testing.T) {
	cases := []struct {
		name string
		item Item
		want string
	}{
		{"both", Item{InWeight1: cts("8"), InWeight2: cts("7.9")}, "8"},
		{"second only", Item{InWeight2: cts("7.9")}, "7.9"},
		{"first zero", Item{InWeight1: cts("0"), InWeight2: cts("7.9")}, "7.9"},
		{"none", Item{}, "0"},
	}
	for _, tc := range cases {
		if got := SelectInWeight(tc.item); !got.Equal(dec(tc.want)) {
			t.Fatalf("%s: want %s got %s", tc.name, tc.want, got)
		}
	}
}

func TestRemainingIsNotClamped(t *testing.T) {
	totals := ComputeMemoTotals([]Item{
		{ItemNo: 1, OutWeight1: cts("5"), InWeight1: cts("6"), RejCts: cts("0.5")},
		{ItemNo: 2, OutWeight2: cts("3"), InWeight2: cts("2")},
	})
	if !totals.Remaining.Equal(dec("-0.5")) {
		t.Fatalf("expected remaining -0.5, got %s", totals.Remaining)
	}
	want := totals.TotalOut.Sub(totals.TotalIn).Sub(totals.TotalReject)
	if !totals.Remaining.Equal(want) {
		t.Fatalf("remaining %s != out-in-reject %s", totals.Remaining, want)
	}
}

func TestMissingWeightsDegradeToZero(t *testing.T) {
	totals := ComputeMemoTotals([]Item{{ItemNo: 1, InWeight1: cts("4")}})
	if !totals.TotalOut.IsZero() {
		t.Fatalf("expected zero out, got %s", totals.TotalOut)
	}
	if totals.YieldPercent.Valid {
		t.Fatal("yield must be undefined when nothing went out")
	}
	if !totals.Remaining.Equal(dec("-4")) {
		t.Fatalf("expected remaining -4, got %s", totals.Remaining)
	}
}

func TestWastageTrackedSeparately(t *testing.T) {
	totals := ComputeMemoTotals([]Item{{ItemNo: 1, OutWeight1: cts("10"), InWeight1: cts("8"), WastageIn: cts("1.5")}})
	if !totals.TotalWastage.Equal(dec("1.5")) {
		t.Fatalf("expected wastage 1.5, got %s", totals.TotalWastage)
	}
	if !totals.Remaining.Equal(dec("2")) {
		t.Fatalf("wastage must not change remaining, got %s", totals.Remaining)
	}
}

func TestReconcilePercent(t *testing.T) {
	matching := ReconcilePercent(Item{ItemNo: 1, OutWeight2: cts("52.4"), InWeight1: cts("48.1"), Percent: cts("91.8")})
	if matching.Divergent {
		t.Fatalf("expected recorded percent to agree, got %+v", matching)
	}

	divergent := ReconcilePercent(Item{ItemNo: 2, OutWeight2: cts("52.4"), InWeight1: cts("48.1"), Percent: cts("95")})
	if !divergent.Divergent {
		t.Fatal("expected divergence")
	}
	if !divergent.Recorded.Decimal.Equal(dec("95")) {
		t.Fatal("recorded percent must be kept")
	}

	unrecorded := ReconcilePercent(Item{ItemNo: 3, OutWeight2: cts("10"), InWeight1: cts("5")})
	if unrecorded.Divergent || !unrecorded.Computed.Valid {
		t.Fatalf("unexpected check: %+v", unrecorded)
	}

	totals := ComputeMemoTotals([]Item{
		{ItemNo: 1, OutWeight2: cts("52.4"), InWeight1: cts("48.1"), Percent: cts("91.8")},
		{ItemNo: 2, OutWeight2: cts("52.4"), InWeight1: cts("48.1"), Percent: cts("95")},
	})
	if len(totals.DivergentItems) != 1 || totals.DivergentItems[0] != 2 {
		t.Fatalf("expected item 2 flagged, got %v", totals.DivergentItems)
	}
}

func TestYieldPercentUndefinedForNonPositiveOut(t *testing.T) {
	if YieldPercent(dec("1"), decimal.Zero).Valid {
		t.Fatal("zero out must give undefined yield")
	}
	if YieldPercent(dec("1"), dec("-2")).Valid {
		t.Fatal("negative out must give undefined yield")
	}
}
