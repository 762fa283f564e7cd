package memos

import (
	"github.com/angelmondragon/lotflow-backend/internal/production"
	"github.com/angelmondragon/lotflow-backend/pkg/db/models"
	"github.com/angelmondragon/lotflow-backend/pkg/enums"
)

func toDomainItem(item models.MemoItem) production.Item {
	return production.Item{
		ItemNo:     item.ItemNo,
		OutWeight1: item.OutWeight1,
		OutWeight2: item.OutWeight2,
		InWeight1:  item.InWeight1,
		InWeight2:  item.InWeight2,
		RejCts:     item.RejCts,
		WastageIn:  item.WastageIn,
		Percent:    item.Percent,
	}
}

func toDomainItems(items []models.MemoItem) []production.Item {
	out := make([]production.Item, 0, len(items))
	for _, item := range items {
		out = append(out, toDomainItem(item))
	}
	return out
}

// toDomain maps a stored memo to the derivation read model. The process
// label is parsed here once.
func toDomain(memo models.Memo) production.Memo {
	return production.Memo{
		ID:            memo.ID,
		MemoNo:        memo.MemoNo,
		Process:       production.ParseProcess(memo.Process),
		LotCode:       memo.LotCode,
		FromParty:     memo.FromParty,
		ToParty:       memo.ToParty,
		DateOutHeader: memo.DateOutHeader,
		DateInHeader:  memo.DateInHeader,
		Locked:        memo.Status.IsLocked(),
		Items:         toDomainItems(memo.Items),
	}
}

func toDTO(memo models.Memo) MemoDTO {
	dto := MemoDTO{
		ID:            memo.ID,
		MemoNo:        memo.MemoNo,
		Process:       memo.Process,
		Transition:    production.ParseProcess(memo.Process),
		LotCode:       memo.LotCode,
		Description:   memo.Description,
		FromParty:     memo.FromParty,
		ToParty:       memo.ToParty,
		DateOutHeader: memo.DateOutHeader,
		DateInHeader:  memo.DateInHeader,
		RemarkHeader:  memo.RemarkHeader,
		Status:        memo.Status,
		StatusLocked:  memo.Status.IsLocked(),
		Items:         make([]MemoItemDTO, 0, len(memo.Items)),
		Totals:        production.ComputeMemoTotals(toDomainItems(memo.Items)),
		CreatedAt:     memo.CreatedAt,
		UpdatedAt:     memo.UpdatedAt,
	}
	for _, item := range memo.Items {
		dto.Items = append(dto.Items, MemoItemDTO{
			ID:           item.ID,
			ItemNo:       item.ItemNo,
			OutDate:      item.OutDate,
			OutGrade:     item.OutGrade,
			OutSize:      item.OutSize,
			OutPcs:       item.OutPcs,
			OutWeight1:   item.OutWeight1,
			OutWeight2:   item.OutWeight2,
			InDate:       item.InDate,
			InGrade:      item.InGrade,
			InSize:       item.InSize,
			InPcs:        item.InPcs,
			InWeight1:    item.InWeight1,
			InWeight2:    item.InWeight2,
			Price:        item.Price,
			Amount:       item.Amount,
			RejPcs:       item.RejPcs,
			RejCts:       item.RejCts,
			WastageIn:    item.WastageIn,
			Percent:      item.Percent,
			PercentCheck: production.ReconcilePercent(toDomainItem(item)),
			RemarkLine:   item.RemarkLine,
		})
	}
	return dto
}

func toModel(input CreateMemoInput, memoNo string) *models.Memo {
	memo := &models.Memo{
		MemoNo:        memoNo,
		Process:       input.Process,
		LotCode:       input.LotCode,
		Description:   input.Description,
		FromParty:     input.FromParty,
		ToParty:       input.ToParty,
		DateOutHeader: input.DateOutHeader,
		DateInHeader:  input.DateInHeader,
		RemarkHeader:  input.RemarkHeader,
		Status:        enums.MemoStatusOpen,
		Items:         make([]models.MemoItem, 0, len(input.Items)),
	}
	for i, item := range input.Items {
		itemNo := item.ItemNo
		if itemNo == 0 {
			itemNo = i + 1
		}
		memo.Items = append(memo.Items, models.MemoItem{
			ItemNo:     itemNo,
			OutDate:    item.OutDate,
			OutGrade:   item.OutGrade,
			OutSize:    item.OutSize,
			OutPcs:     item.OutPcs,
			OutWeight1: item.OutWeight1,
			OutWeight2: item.OutWeight2,
			InDate:     item.InDate,
			InGrade:    item.InGrade,
			InSize:     item.InSize,
			InPcs:      item.InPcs,
			InWeight1:  item.InWeight1,
			InWeight2:  item.InWeight2,
			Price:      item.Price,
			Amount:     item.Amount,
			RejPcs:     item.RejPcs,
			RejCts:     item.RejCts,
			WastageIn:  item.WastageIn,
			Percent:    item.Percent,
			RemarkLine: item.RemarkLine,
		})
	}
	return memo
}
