package production

import (
	"github.com/angelmondragon/lotflow-backend/pkg/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func cts(value string) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.RequireFromString(value))
}

func dec(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

func fixtureMemo(memoNo, process, lotCode, dateOut, dateIn string, locked bool, items ...Item) Memo {
	memo := Memo{
		ID:        uuid.New(),
		MemoNo:    memoNo,
		Process:   ParseProcess(process),
		LotCode:   lotCode,
		FromParty: "SHREE GEMS",
		ToParty:   "KIRAN CUTTING",
		Locked:    locked,
		Items:     items,
	}
	if dateOut != "" {
		memo.DateOutHeader = types.MustParseDate(dateOut)
	}
	if dateIn != "" {
		memo.DateInHeader = types.MustParseDate(dateIn)
	}
	return memo
}

func fixtureMemos() []Memo {
	return []Memo{
		fixtureMemo("1001", "ROUGH TO PREFORM", "AJMZ 2", "2024-07-01", "2024-07-07", true,
			Item{ItemNo: 1, OutWeight2: cts("52.4"), InWeight1: cts("48.1"), RejCts: cts("1.2"), Percent: cts("91.8")}),
		fixtureMemo("1002", "PREFORM TO CUTTING", "AJMZ 2", "2024-07-10", "2024-07-12", false,
			Item{ItemNo: 1, OutWeight2: cts("48.1"), InWeight1: cts("46.5"), RejCts: cts("0.6"), Percent: cts("96.7")}),
		fixtureMemo("1003", "HEAT 2", "AJMZ 3", "2024-08-05", "2024-08-11", false,
			Item{ItemNo: 1, OutWeight2: cts("61.8"), InWeight1: cts("58.4"), RejCts: cts("1.8"), Percent: cts("94.5")}),
	}
}
