package estimator

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// CashPlanLabel is the label of the degenerate plan with no financing.
const CashPlanLabel = "Cash"

// LoanPlan is a fixed-rate financing option. The cash plan has a zero term and rate.
type LoanPlan struct {
	Label             string  `json:"label"`
	TermYears         int     `json:"termYears"`
	AnnualRatePercent float64 `json:"annualRatePercent"`
}

// IsCash reports whether the plan is paid up front.
func (p LoanPlan) IsCash() bool {
	return p.TermYears == 0
}

var loanMenu = []LoanPlan{
	{Label: CashPlanLabel},
	{Label: "5 Year 1.99%", TermYears: 5, AnnualRatePercent: 1.99},
	{Label: "10 Year 2.99%", TermYears: 10, AnnualRatePercent: 2.99},
	{Label: "15 Year 3.99%", TermYears: 15, AnnualRatePercent: 3.99},
	{Label: "20 Year 4.99%", TermYears: 20, AnnualRatePercent: 4.99},
	{Label: "25 Year 5.49%", TermYears: 25, AnnualRatePercent: 5.49},
}

// LoanPlans returns the fixed loan menu.
func LoanPlans() []LoanPlan {
	out := make([]LoanPlan, len(loanMenu))
	copy(out, loanMenu)
	return out
}

// ParseLoanPlan parses "Cash" or a "<years> Year <rate>%" label. An empty label means cash.
func ParseLoanPlan(label string) (LoanPlan, error) {
	trimmed := strings.TrimSpace(label)
	if trimmed == "" || strings.EqualFold(trimmed, CashPlanLabel) {
		return LoanPlan{Label: CashPlanLabel}, nil
	}

	fields := strings.Fields(trimmed)
	if len(fields) != 3 || !strings.HasPrefix(strings.ToLower(fields[1]), "year") {
		return LoanPlan{}, invalidInput(fmt.Sprintf("loan plan %q must look like \"10 Year 2.99%%\"", label))
	}
	term, err := strconv.Atoi(fields[0])
	if err != nil {
		return LoanPlan{}, invalidInput(fmt.Sprintf("loan term %q is not a whole number of years", fields[0]))
	}
	rate, err := strconv.ParseFloat(strings.TrimSuffix(fields[2], "%"), 64)
	if err != nil {
		return LoanPlan{}, invalidInput(fmt.Sprintf("loan rate %q is not a percentage", fields[2]))
	}
	if term <= 0 || term > MaxLoanTermYears {
		return LoanPlan{}, invalidInput(fmt.Sprintf("loan term must be between 1 and %d years, got %d", MaxLoanTermYears, term))
	}
	if !finite(rate) || rate < 0 || rate > MaxLoanRatePercent {
		return LoanPlan{}, invalidInput(fmt.Sprintf("loan rate must be between 0 and %.0f%%, got %v", MaxLoanRatePercent, rate))
	}
	return LoanPlan{Label: trimmed, TermYears: term, AnnualRatePercent: rate}, nil
}

// Amortize returns the total interest paid on principal over a fixed-rate monthly loan.
// A zero term is the cash plan. A zero rate repays the principal straight-line, with no interest.
func Amortize(principal int, annualRatePercent float64, termYears int) (int, error) {
	if principal < 0 {
		return 0, invalidInput(fmt.Sprintf("principal must be non-negative, got %d", principal))
	}
	if termYears < 0 {
		return 0, invalidInput(fmt.Sprintf("loan term must be non-negative, got %d", termYears))
	}
	if !finite(annualRatePercent) || annualRatePercent < 0 {
		return 0, invalidInput(fmt.Sprintf("loan rate must be non-negative, got %v", annualRatePercent))
	}
	if termYears == 0 || annualRatePercent == 0 || principal == 0 {
		return 0, nil
	}

	r := annualRatePercent / (MonthsPerYear * 100)
	n := float64(termYears * MonthsPerYear)
	growth := math.Pow(1+r, n)
	total := float64(principal) * (r * growth) / (growth - 1) * n
	return int(math.Floor(total)) - principal, nil
}

// CostRange prices the system at the low and high per-kW rates, applying the federal credit when asked.
func CostRange(systemSizeKW float64, applyFederalCredit bool) (int, int) {
	multiplier := 1.0
	if applyFederalCredit {
		multiplier = FederalCreditMultiplier
	}
	low := int(math.Floor(systemSizeKW * CostPerKWLow * multiplier))
	high := int(math.Floor(systemSizeKW * CostPerKWHigh * multiplier))
	return low, high
}
