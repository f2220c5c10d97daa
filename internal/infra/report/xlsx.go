package report

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/yanqian/solar-calculator/internal/domain/estimator"
	"github.com/yanqian/solar-calculator/pkg/util"
)

const (
	summarySheet    = "Estimate"
	projectionSheet = "Projection"
)

// XLSX renders the estimate as a workbook with a summary and a projection sheet.
func XLSX(w io.Writer, in estimator.CalculatorInput, res estimator.CalculationResult) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return err
	}
	if err := writeSummary(f, in, res); err != nil {
		return fmt.Errorf("write summary sheet: %w", err)
	}
	if _, err := f.NewSheet(projectionSheet); err != nil {
		return err
	}
	if err := writeProjection(f, res.Projection); err != nil {
		return fmt.Errorf("write projection sheet: %w", err)
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func writeSummary(f *excelize.File, in estimator.CalculatorInput, res estimator.CalculationResult) error {
	rows := [][]any{
		{Title},
		{"Date", util.DateStamp(util.NowUTC())},
		{},
		{"Inputs"},
	}
	for _, l := range inputLines(in, res) {
		rows = append(rows, []any{l.label, l.value})
	}
	rows = append(rows, []any{}, []any{"Results"})
	for _, l := range resultLines(res) {
		rows = append(rows, []any{l.label, l.value})
	}
	rows = append(rows, []any{})
	for _, note := range footnotes(res) {
		rows = append(rows, []any{note})
	}

	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(summarySheet, cell, &row); err != nil {
			return err
		}
	}
	return f.SetColWidth(summarySheet, "A", "A", 28)
}

func writeProjection(f *excelize.File, projection []estimator.ProjectionYear) error {
	header := projectionHeader()
	headerRow := make([]any, 0, len(header))
	for _, h := range header {
		headerRow = append(headerRow, h)
	}
	if err := f.SetSheetRow(projectionSheet, "A1", &headerRow); err != nil {
		return err
	}
	for i, year := range projection {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []any{year.Year, year.PanelEfficiency, year.DailyKWhPerPanel, year.PricePerKWh, year.CashFlow}
		if err := f.SetSheetRow(projectionSheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}
