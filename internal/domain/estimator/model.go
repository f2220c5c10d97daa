package estimator

// CalculatorInput is the payload accepted by the estimator.
type CalculatorInput struct {
	State                 string  `json:"state"`
	City                  string  `json:"city"`
	Period                string  `json:"period"`
	ElectricityCostPerKWh float64 `json:"electricityCostPerKwh"`
	MonthlyUsageKWh       float64 `json:"monthlyUsageKwh"`
	OffsetPercent         int     `json:"offsetPercent"`
	ApplyFederalCredit    bool    `json:"applyFederalCredit"`
	LoanPlan              string  `json:"loanPlan"`
}

// CalculationResult is derived fresh for every request.
type CalculationResult struct {
	State                   string           `json:"state"`
	City                    string           `json:"city"`
	Period                  string           `json:"period"`
	SolarHours              float64          `json:"solarHours"`
	SystemSizeKW            float64          `json:"systemSizeKw"`
	PanelCount              int              `json:"panelCount"`
	EstimatedUtilitySavings int              `json:"estimatedUtilitySavings"`
	BaseCostLow             int              `json:"baseCostLow"`
	BaseCostHigh            int              `json:"baseCostHigh"`
	InterestLow             int              `json:"interestLow"`
	InterestHigh            int              `json:"interestHigh"`
	SystemCostLow           int              `json:"systemCostLow"`
	SystemCostHigh          int              `json:"systemCostHigh"`
	AvgAnnualCashFlow       float64          `json:"avgAnnualCashFlow"`
	PaybackYearsLow         int              `json:"paybackYearsLow"`
	PaybackYearsHigh        int              `json:"paybackYearsHigh"`
	FederalCreditApplied    bool             `json:"federalCreditApplied"`
	LoanPlan                LoanPlan         `json:"loanPlan"`
	Projection              []ProjectionYear `json:"projection"`
}

// Config holds runtime knobs for the estimator service.
type Config struct {
	TopLocations int
}
