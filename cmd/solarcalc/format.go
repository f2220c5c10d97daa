package main

import (
	"fmt"
	"io"

	"github.com/yanqian/solar-calculator/internal/domain/estimator"
)

func printEstimate(out io.Writer, in estimator.CalculatorInput, res estimator.CalculationResult) {
	fmt.Fprintf(out, "%s, %s (%s): %g sun hours/day\n", res.City, res.State, res.Period, res.SolarHours)
	fmt.Fprintf(out, "  usage:        %g kWh/month at $%.3f/kWh, %d%% offset\n", in.MonthlyUsageKWh, in.ElectricityCostPerKWh, in.OffsetPercent)
	fmt.Fprintf(out, "  system size:  %.2f kW (%d panels)\n", res.SystemSizeKW, res.PanelCount)
	fmt.Fprintf(out, "  loan plan:    %s\n", res.LoanPlan.Label)
	if !res.LoanPlan.IsCash() {
		fmt.Fprintf(out, "  interest:     $%d - $%d\n", res.InterestLow, res.InterestHigh)
	}
	fmt.Fprintf(out, "  system cost:  $%d - $%d\n", res.SystemCostLow, res.SystemCostHigh)
	fmt.Fprintf(out, "  avg savings:  $%.2f/year\n", res.AvgAnnualCashFlow)
	fmt.Fprintf(out, "  payback:      %d - %d years\n", res.PaybackYearsLow, res.PaybackYearsHigh)
	fmt.Fprintf(out, "  utility sum:  $%d over %d years\n", res.EstimatedUtilitySavings, estimator.ProjectionYears)
	fmt.Fprintln(out)
	if res.FederalCreditApplied {
		fmt.Fprintln(out, "  *National Retailer, credit applied")
	} else {
		fmt.Fprintln(out, "  *National Retailer, no credit")
	}
}

func printLoanPlans(out io.Writer) {
	for _, plan := range estimator.LoanPlans() {
		if plan.IsCash() {
			fmt.Fprintf(out, "%-16s paid up front\n", plan.Label)
			continue
		}
		fmt.Fprintf(out, "%-16s %2d years at %.2f%%\n", plan.Label, plan.TermYears, plan.AnnualRatePercent)
	}
}
