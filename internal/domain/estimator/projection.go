package estimator

import (
	"fmt"
	"math"

	apperrors "github.com/yanqian/solar-calculator/pkg/errors"
)

// ProjectionYear is one row of the production value projection.
type ProjectionYear struct {
	Year             int     `json:"year"`
	PanelEfficiency  float64 `json:"panelEfficiency"`
	DailyKWhPerPanel float64 `json:"dailyKwhPerPanel"`
	PricePerKWh      float64 `json:"pricePerKwh"`
	CashFlow         float64 `json:"cashFlow"`
}

// Project computes the value of the panels' production for years 0..25.
func Project(panels int, dailySolarHours, pricePerKWh float64) []ProjectionYear {
	return projectWithCurve(efficiencyCurve, panels, dailySolarHours, pricePerKWh)
}

func projectWithCurve(curve [ProjectionYears + 1]float64, panels int, dailySolarHours, pricePerKWh float64) []ProjectionYear {
	rows := make([]ProjectionYear, len(curve))
	for year, eff := range curve {
		daily := eff * dailySolarHours * PanelAreaIrradianceFactor
		price := pricePerKWh * math.Pow(UtilityInflation, float64(year))
		rows[year] = ProjectionYear{
			Year:             year,
			PanelEfficiency:  eff,
			DailyKWhPerPanel: daily,
			PricePerKWh:      price,
			CashFlow:         float64(panels) * DaysPerYear * daily * price,
		}
	}
	return rows
}

// AverageAnnualCashFlow averages years 1..25, rounded to cents. Year 0 is never part of the mean.
func AverageAnnualCashFlow(rows []ProjectionYear) float64 {
	if len(rows) <= 1 {
		return 0
	}
	var sum float64
	for _, row := range rows[1:] {
		sum += row.CashFlow
	}
	return roundPlaces(sum/float64(len(rows)-1), 2)
}

// ProjectPayback returns the average annual cash flow and the payback years for both system costs.
func ProjectPayback(panels int, dailySolarHours, pricePerKWh float64, costLow, costHigh int) (float64, int, int, error) {
	return paybackFromRows(Project(panels, dailySolarHours, pricePerKWh), costLow, costHigh)
}

func paybackFromRows(rows []ProjectionYear, costLow, costHigh int) (float64, int, int, error) {
	avg := AverageAnnualCashFlow(rows)
	if !(avg > 0) {
		return avg, 0, 0, apperrors.Wrap(apperrors.CodeDivideByZero,
			fmt.Sprintf("cannot compute payback: average annual cash flow is %.2f", avg), ErrDivideByZero)
	}
	return avg, paybackYears(costLow, avg), paybackYears(costHigh, avg), nil
}

func paybackYears(cost int, avgAnnualCashFlow float64) int {
	return int(math.Ceil(float64(cost) / avgAnnualCashFlow))
}
