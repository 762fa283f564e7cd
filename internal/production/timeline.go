package production

import (
	"iter"
	"slices"

	"github.com/angelmondragon/lotflow-backend/pkg/types"
	"github.com/google/uuid"
)

// Memo is the read model the derivation works on. Process is parsed once
// when the memo is loaded.
type Memo struct {
	ID            uuid.UUID
	MemoNo        string
	Process       Process
	LotCode       string
	FromParty     string
	ToParty       string
	DateOutHeader types.Date
	DateInHeader  types.Date
	Locked        bool
	Items         []Item
}

// Timeline is a lot's memos ordered by dispatch date.
type Timeline struct {
	lotCode string
	memos   []Memo
}

// BuildTimeline selects the memos of lotCode (exact, case-sensitive match)
// and orders them by date_out_header. Memos sharing a date keep fetch order
// and undated memos come first. The input slice is not modified.
func BuildTimeline(memos []Memo, lotCode string) Timeline {
	var selected []Memo
	for _, memo := range memos {
		if memo.LotCode == lotCode {
			selected = append(selected, memo)
		}
	}
	return newTimeline(lotCode, selected)
}

func newTimeline(lotCode string, memos []Memo) Timeline {
	slices.SortStableFunc(memos, func(a, b Memo) int {
		switch {
		case a.DateOutHeader.Before(b.DateOutHeader):
			return -1
		case b.DateOutHeader.Before(a.DateOutHeader):
			return 1
		}
		return 0
	})
	return Timeline{lotCode: lotCode, memos: memos}
}

// LotCode returns the lot the timeline was built for.
func (t Timeline) LotCode() string {
	return t.lotCode
}

// Len returns the number of memos in the timeline.
func (t Timeline) Len() int {
	return len(t.memos)
}

// All yields the memos in timeline order.
func (t Timeline) All() iter.Seq[Memo] {
	return func(yield func(Memo) bool) {
		for _, memo := range t.memos {
			if !yield(memo) {
				return
			}
		}
	}
}

// Last returns the most recent memo.
func (t Timeline) Last() (Memo, bool) {
	if len(t.memos) == 0 {
		return Memo{}, false
	}
	return t.memos[len(t.memos)-1], true
}

// LotCodes lists distinct lot codes in first-seen order.
func LotCodes(memos []Memo) []string {
	seen := make(map[string]struct{}, len(memos))
	codes := make([]string, 0)
	for _, memo := range memos {
		if _, ok := seen[memo.LotCode]; ok {
			continue
		}
		seen[memo.LotCode] = struct{}{}
		codes = append(codes, memo.LotCode)
	}
	return codes
}

// Timelines builds every lot's timeline in a single pass, ordered like LotCodes.
func Timelines(memos []Memo) []Timeline {
	grouped := make(map[string][]Memo)
	for _, memo := range memos {
		grouped[memo.LotCode] = append(grouped[memo.LotCode], memo)
	}

	codes := LotCodes(memos)
	out := make([]Timeline, 0, len(codes))
	for _, code := range codes {
		out = append(out, newTimeline(code, grouped[code]))
	}
	return out
}
