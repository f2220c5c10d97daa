package estimator

// Sizing.
const (
	// DaysPerMonth approximates a billing month when converting monthly usage to daily output.
	DaysPerMonth = 30
	// PanelRatedKW is the rated output of a single panel.
	PanelRatedKW = 0.34
	// KWDecimalPlaces is the precision the system size is rounded to.
	KWDecimalPlaces = 2
)

// Cost and financing.
const (
	CostPerKWLow  = 3700.0
	CostPerKWHigh = 4600.0
	// FederalCreditMultiplier applies the 26% federal tax credit.
	FederalCreditMultiplier = 0.74
	MonthsPerYear           = 12
	// MaxLoanTermYears and MaxLoanRatePercent bound custom loan labels.
	MaxLoanTermYears   = 30
	MaxLoanRatePercent = 30.0
)

// Production and savings projection.
const (
	// PanelAreaIrradianceFactor converts efficiency x solar hours into kWh per panel per day.
	PanelAreaIrradianceFactor = 1.7922
	// UtilityInflation is the yearly growth factor of the electricity price.
	UtilityInflation = 1.02
	DaysPerYear      = 365
	// ProjectionYears is the panel warranty horizon.
	ProjectionYears = 25
)

// efficiencyCurve holds the panel efficiency for years 0..25. Year 0 carries no production.
var efficiencyCurve = [ProjectionYears + 1]float64{
	0.0000, 0.1900, 0.1862, 0.1850, 0.1838, 0.1826, 0.1814, 0.1802, 0.1791,
	0.1779, 0.1767, 0.1756, 0.1744, 0.1733, 0.1722, 0.1711, 0.1700, 0.1688,
	0.1678, 0.1667, 0.1656, 0.1645, 0.1634, 0.1624, 0.1613, 0.1603,
}

// EfficiencyCurve returns a copy of the 26-year panel efficiency curve.
func EfficiencyCurve() [ProjectionYears + 1]float64 {
	return efficiencyCurve
}
