package report

import (
	"fmt"
	"strconv"
	"time"

	"github.com/yanqian/solar-calculator/internal/domain/estimator"
	"github.com/yanqian/solar-calculator/pkg/util"
)

// Title heads every rendered estimate.
const Title = "Solar Panel Estimate"

const (
	warrantyFootnote   = "*Over 25 year system warranty"
	creditFootnote     = "**National Retailer, credit applied"
	noCreditFootnote   = "*National Retailer, no credit"
	projectionHeadings = 5
)

type line struct {
	label string
	value string
}

// Filename builds the attachment name for an estimate rendered on day.
func Filename(res estimator.CalculationResult, day time.Time, ext string) string {
	return fmt.Sprintf("solar-estimate-%s-%s.%s", slug(res.State+"-"+res.City), util.DateStamp(day), ext)
}

func inputLines(in estimator.CalculatorInput, res estimator.CalculationResult) []line {
	credit := "No"
	if res.FederalCreditApplied {
		credit = "Yes"
	}
	return []line{
		{"Location", fmt.Sprintf("%s, %s", res.City, res.State)},
		{"Sun hours period", res.Period},
		{"Electricity cost", fmt.Sprintf("$%.3f / kWh", in.ElectricityCostPerKWh)},
		{"Monthly usage", fmt.Sprintf("%s kWh", formatFloat(in.MonthlyUsageKWh))},
		{"Offset", fmt.Sprintf("%d%%", in.OffsetPercent)},
		{"Federal tax credit", credit},
		{"Loan plan", res.LoanPlan.Label},
	}
}

func resultLines(res estimator.CalculationResult) []line {
	costNote := noCreditFootnote[:1]
	if res.FederalCreditApplied {
		costNote = creditFootnote[:2]
	}
	lines := []line{
		{"Average sun hours / day", formatFloat(res.SolarHours)},
		{"System size", fmt.Sprintf("%.2f kW", res.SystemSizeKW)},
		{"Panels (340 W)", strconv.Itoa(res.PanelCount)},
		{"System cost" + costNote, dollarRange(res.SystemCostLow, res.SystemCostHigh)},
	}
	if !res.LoanPlan.IsCash() {
		lines = append(lines, line{"Loan interest", dollarRange(res.InterestLow, res.InterestHigh)})
	}
	return append(lines,
		line{"Average annual savings*", fmt.Sprintf("$%.2f", res.AvgAnnualCashFlow)},
		line{"Payback", fmt.Sprintf("%d - %d years", res.PaybackYearsLow, res.PaybackYearsHigh)},
		line{"25 year utility spend", dollars(res.EstimatedUtilitySavings)},
	)
}

func footnotes(res estimator.CalculationResult) []string {
	if res.FederalCreditApplied {
		return []string{warrantyFootnote, creditFootnote}
	}
	return []string{warrantyFootnote, noCreditFootnote}
}

func projectionHeader() [projectionHeadings]string {
	return [projectionHeadings]string{"Year", "Panel efficiency", "kWh/day/panel", "Price $/kWh", "Cash flow $"}
}

func dollarRange(low, high int) string {
	return dollars(low) + " - " + dollars(high)
}

// dollars renders whole dollars with thousands separators.
func dollars(v int) string {
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	digits := strconv.Itoa(v)
	out := make([]byte, 0, len(digits)+len(digits)/3)
	for i := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, digits[i])
	}
	return "$" + sign + string(out)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func slug(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
			out = append(out, r)
		case r >= 'A' && r <= 'Z':
			out = append(out, r+('a'-'A'))
		case r == ' ':
			out = append(out, '-')
		}
	}
	return string(out)
}
