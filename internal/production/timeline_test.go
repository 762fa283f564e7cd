package production

import (
	"slices"
	"testing"
)

func memoNos(tl Timeline) []string {
	var out []string
	for memo := range tl.All() {
		out = append(out, memo.MemoNo)
	}
	return out
}

func TestBuildTimelineFiltersExactLotCode(t *testing.T) {
	memos := append(fixtureMemos(),
		fixtureMemo("2001", "ACID", "ajmz 2", "2024-06-01", "", false),
		fixtureMemo("2002", "ACID", "AJMZ 2 ", "2024-06-01", "", false),
	)

	tl := BuildTimeline(memos, "AJMZ 2")
	if got := memoNos(tl); !slices.Equal(got, []string{"1001", "1002"}) {
		t.Fatalf("unexpected timeline: %v", got)
	}
	if tl.LotCode() != "AJMZ 2" {
		t.Fatalf("unexpected lot code %q", tl.LotCode())
	}
}

func TestBuildTimelineOrdersByDateOut(t *testing.T) {
	memos := []Memo{
		fixtureMemo("3", "CUTTING", "L1", "2024-03-01", "", false),
		fixtureMemo("1", "ACID", "L1", "2024-01-15", "", false),
		fixtureMemo("2a", "ROUGH", "L1", "2024-02-01", "", false),
		fixtureMemo("2b", "PREFORM", "L1", "2024-02-01", "", false),
		fixtureMemo("0", "ACID", "L1", "", "", false),
	}
	original := slices.Clone(memos)

	tl := BuildTimeline(memos, "L1")
	if got := memoNos(tl); !slices.Equal(got, []string{"0", "1", "2a", "2b", "3"}) {
		t.Fatalf("unexpected order: %v", got)
	}
	for i := range memos {
		if memos[i].MemoNo != original[i].MemoNo {
			t.Fatal("input slice must not be reordered")
		}
	}
}

func TestBuildTimelineRecomputesEachCall(t *testing.T) {
	memos := fixtureMemos()
	first := BuildTimeline(memos, "AJMZ 2")
	memos = append(memos, fixtureMemo("1004", "CUTTING TO CALIBRATE", "AJMZ 2", "2024-07-20", "", false))
	second := BuildTimeline(memos, "AJMZ 2")

	if first.Len() != 2 || second.Len() != 3 {
		t.Fatalf("unexpected lengths %d %d", first.Len(), second.Len())
	}
}

func TestTimelineAllStopsEarly(t *testing.T) {
	tl := BuildTimeline(fixtureMemos(), "AJMZ 2")
	count := 0
	for range tl.All() {
		count++
		break
	}
	if count != 1 {
		t.Fatalf("expected early stop, got %d", count)
	}
}

func TestEmptyTimeline(t *testing.T) {
	tl := BuildTimeline(fixtureMemos(), "NOPE")
	if tl.Len() != 0 {
		t.Fatal("expected empty timeline")
	}
	if _, ok := tl.Last(); ok {
		t.Fatal("expected no last memo")
	}
}

func TestLotCodesAndTimelines(t *testing.T) {
	memos := fixtureMemos()
	if got := LotCodes(memos); !slices.Equal(got, []string{"AJMZ 2", "AJMZ 3"}) {
		t.Fatalf("unexpected lot codes: %v", got)
	}

	timelines := Timelines(memos)
	if len(timelines) != 2 {
		t.Fatalf("expected 2 timelines, got %d", len(timelines))
	}
	if got := memoNos(timelines[0]); !slices.Equal(got, memoNos(BuildTimeline(memos, "AJMZ 2"))) {
		t.Fatalf("grouped timeline differs: %v", got)
	}
}
