package report

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/yanqian/solar-calculator/internal/domain/estimator"
)

func sampleEstimate(credit bool) (estimator.CalculatorInput, estimator.CalculationResult) {
	in := estimator.CalculatorInput{
		State:                 "TX",
		City:                  "Austin",
		Period:                "Year Avg.",
		ElectricityCostPerKWh: 0.149,
		MonthlyUsageKWh:       1000,
		OffsetPercent:         100,
		ApplyFederalCredit:    credit,
		LoanPlan:              "10 Year 2.99%",
	}
	plan, _ := estimator.ParseLoanPlan(in.LoanPlan)
	res := estimator.CalculationResult{
		State:                   "TX",
		City:                    "Austin",
		Period:                  "Year Avg.",
		SolarHours:              5.5,
		SystemSizeKW:            6.06,
		PanelCount:              18,
		EstimatedUtilitySavings: 57270,
		InterestLow:             2624,
		InterestHigh:            3262,
		SystemCostLow:           19216,
		SystemCostHigh:          23890,
		AvgAnnualCashFlow:       2174.4,
		PaybackYearsLow:         9,
		PaybackYearsHigh:        11,
		FederalCreditApplied:    credit,
		LoanPlan:                plan,
		Projection:              estimator.Project(18, 5.5, 0.149),
	}
	return in, res
}

func TestPDFRenders(t *testing.T) {
	in, res := sampleEstimate(true)

	var buf bytes.Buffer
	require.NoError(t, PDF(&buf, in, res))
	require.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}

func TestXLSXRenders(t *testing.T) {
	in, res := sampleEstimate(false)

	var buf bytes.Buffer
	require.NoError(t, XLSX(&buf, in, res))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	title, err := f.GetCellValue(summarySheet, "A1")
	require.NoError(t, err)
	require.Equal(t, Title, title)

	rows, err := f.GetRows(projectionSheet)
	require.NoError(t, err)
	require.Len(t, rows, 27)
	require.Equal(t, "Year", rows[0][0])
	require.Equal(t, "25", rows[26][0])

	summary, err := f.GetRows(summarySheet)
	require.NoError(t, err)
	last := summary[len(summary)-1]
	require.Equal(t, noCreditFootnote, last[0])
}

func TestResultLinesMarkCostFootnote(t *testing.T) {
	_, res := sampleEstimate(true)
	require.Equal(t, "System cost**", resultLines(res)[3].label)
	require.Contains(t, footnotes(res), creditFootnote)

	res.FederalCreditApplied = false
	require.Equal(t, "System cost*", resultLines(res)[3].label)
	require.Contains(t, footnotes(res), noCreditFootnote)
}

func TestResultLinesOmitInterestForCash(t *testing.T) {
	_, res := sampleEstimate(true)
	res.LoanPlan = estimator.LoanPlan{Label: estimator.CashPlanLabel}
	for _, l := range resultLines(res) {
		require.NotEqual(t, "Loan interest", l.label)
	}
}

func TestDollars(t *testing.T) {
	require.Equal(t, "$0", dollars(0))
	require.Equal(t, "$999", dollars(999))
	require.Equal(t, "$16,592", dollars(16592))
	require.Equal(t, "$1,234,567", dollars(1234567))
	require.Equal(t, "$-2,500", dollars(-2500))
}

func TestFilename(t *testing.T) {
	_, res := sampleEstimate(true)
	res.City = "San Diego"
	day := time.Date(2026, 3, 4, 23, 0, 0, 0, time.UTC)
	require.Equal(t, "solar-estimate-tx-san-diego-2026-03-04.pdf", Filename(res, day, "pdf"))
}
