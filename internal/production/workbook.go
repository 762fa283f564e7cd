package production

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

const (
	stagesSheet = "Stages"
	lotsSheet   = "Lots"
)

// WriteWorkbook renders the stage board and lot list as an xlsx workbook.
func WriteWorkbook(w io.Writer, board *StageBoard, lots []LotSnapshot) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(f.GetActiveSheetIndex()), stagesSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	if _, err := f.NewSheet(lotsSheet); err != nil {
		return fmt.Errorf("create lots sheet: %w", err)
	}

	stageRows := make([][]any, 0, len(board.Stages)+1)
	stageRows = append(stageRows, []any{"Stage", "Lots", "Total Out (cts)", "Total In (cts)"})
	for _, summary := range board.Stages {
		stageRows = append(stageRows, []any{
			summary.Stage.String(),
			summary.Count,
			summary.TotalOut.InexactFloat64(),
			summary.TotalIn.InexactFloat64(),
		})
	}
	if err := writeRows(f, stagesSheet, stageRows); err != nil {
		return err
	}

	lotRows := make([][]any, 0, len(lots)+1)
	lotRows = append(lotRows, []any{"Lot", "Stage", "Out (cts)", "In (cts)", "Reject (cts)", "Remaining (cts)", "Yield %", "Last Updated"})
	for _, lot := range lots {
		lastUpdated := "-"
		if lot.LastUpdated != nil {
			lastUpdated = lot.LastUpdated.String()
		}
		lotRows = append(lotRows, []any{
			lot.LotCode,
			lot.CurrentStage.String(),
			lot.TotalOut.InexactFloat64(),
			lot.TotalIn.InexactFloat64(),
			lot.TotalReject.InexactFloat64(),
			lot.Remaining.InexactFloat64(),
			yieldCell(lot.YieldPercent),
			lastUpdated,
		})
	}
	if err := writeRows(f, lotsSheet, lotRows); err != nil {
		return err
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("cell name: %w", err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("write %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}

func yieldCell(yield decimal.NullDecimal) any {
	if !yield.Valid {
		return "-"
	}
	return yield.Decimal.Round(1).InexactFloat64()
}
