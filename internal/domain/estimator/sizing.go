package estimator

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	apperrors "github.com/yanqian/solar-calculator/pkg/errors"
)

// SizeSystem converts monthly usage and the desired offset into a system size and panel count.
//
// The size is rounded half away from zero to two decimals on the shortest decimal form of the
// float, so 1.005 rounds to 1.01.
func SizeSystem(monthlyUsageKWh float64, offsetPercent int, dailySolarHours float64) (float64, int, error) {
	if !finite(monthlyUsageKWh) || monthlyUsageKWh < 0 {
		return 0, 0, invalidInput(fmt.Sprintf("monthly usage must be a non-negative number, got %v", monthlyUsageKWh))
	}
	if offsetPercent < 0 || offsetPercent > 100 {
		return 0, 0, invalidInput(fmt.Sprintf("offset must be between 0 and 100, got %d", offsetPercent))
	}
	if !finite(dailySolarHours) || dailySolarHours <= 0 {
		return 0, 0, invalidInput(fmt.Sprintf("daily solar hours must be positive, got %v", dailySolarHours))
	}

	raw := monthlyUsageKWh * (float64(offsetPercent) / 100) / (dailySolarHours * DaysPerMonth)
	kw := roundPlaces(raw, KWDecimalPlaces)
	return kw, panelCount(kw), nil
}

func panelCount(systemSizeKW float64) int {
	if systemSizeKW <= 0 {
		return 0
	}
	return int(math.Ceil(systemSizeKW / PanelRatedKW))
}

func roundPlaces(v float64, places int32) float64 {
	return decimal.NewFromFloat(v).Round(places).InexactFloat64()
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func invalidInput(message string) error {
	return apperrors.Wrap(apperrors.CodeInvalidInput, message, ErrInvalidInput)
}
