package report

import (
	"fmt"
	"io"

	"github.com/phpdave11/gofpdf"

	"github.com/yanqian/solar-calculator/internal/domain/estimator"
	"github.com/yanqian/solar-calculator/pkg/util"
)

var projectionColumnWidths = [projectionHeadings]float64{20, 40, 40, 40, 40}

// PDF renders the estimate as a single A4 document.
func PDF(w io.Writer, in estimator.CalculatorInput, res estimator.CalculationResult) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(Title, false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, Title)
	pdf.Ln(10)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", util.DateStamp(util.NowUTC())))
	pdf.Ln(10)

	writeSection(pdf, "Inputs", inputLines(in, res))
	writeSection(pdf, "Results", resultLines(res))

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "25 year projection")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "B", 9)
	for i, heading := range projectionHeader() {
		pdf.CellFormat(projectionColumnWidths[i], 6, heading, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetFont("Helvetica", "", 9)
	for _, row := range res.Projection {
		cells := [projectionHeadings]string{
			fmt.Sprintf("%d", row.Year),
			fmt.Sprintf("%.4f", row.PanelEfficiency),
			fmt.Sprintf("%.3f", row.DailyKWhPerPanel),
			fmt.Sprintf("%.4f", row.PricePerKWh),
			fmt.Sprintf("%.2f", row.CashFlow),
		}
		for i, cell := range cells {
			pdf.CellFormat(projectionColumnWidths[i], 5, cell, "1", 0, "R", false, 0, "")
		}
		pdf.Ln(-1)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "I", 8)
	for _, note := range footnotes(res) {
		pdf.Cell(0, 5, note)
		pdf.Ln(5)
	}

	if err := pdf.Error(); err != nil {
		return fmt.Errorf("render pdf: %w", err)
	}
	return pdf.Output(w)
}

func writeSection(pdf *gofpdf.Fpdf, heading string, lines []line) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, heading)
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
	for _, l := range lines {
		pdf.CellFormat(60, 6, l.label, "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 6, l.value, "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)
}
