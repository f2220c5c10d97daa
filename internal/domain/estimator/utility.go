package estimator

import "math"

// UtilitySum estimates what the offset share of usage would cost from the utility over years,
// with the price compounding by UtilityInflation each year. The total is truncated to dollars.
func UtilitySum(costPerKWh, monthlyUsageKWh float64, offsetPercent, years int) int {
	var total float64
	for i := 0; i < years; i++ {
		total += costPerKWh * math.Pow(UtilityInflation, float64(i)) * (monthlyUsageKWh * MonthsPerYear) * (float64(offsetPercent) / 100)
	}
	return int(total)
}
