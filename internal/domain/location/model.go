package location

import (
	"fmt"
	"strings"
)

// Period selects which seasonal solar-hours average is used.
type Period string

const (
	PeriodYear   Period = "Year Avg."
	PeriodSummer Period = "Summer Avg."
	PeriodWinter Period = "Winter Avg."
)

// Periods lists the supported periods in menu order.
func Periods() []Period {
	return []Period{PeriodYear, PeriodSummer, PeriodWinter}
}

// ParsePeriod accepts the menu label ("Year Avg.") or its short form ("year").
// An empty value selects the yearly average.
func ParsePeriod(raw string) (Period, error) {
	trimmed := strings.TrimSpace(raw)
	switch strings.ToLower(strings.TrimSuffix(trimmed, ".")) {
	case "", "year", "year avg":
		return PeriodYear, nil
	case "summer", "summer avg":
		return PeriodSummer, nil
	case "winter", "winter avg":
		return PeriodWinter, nil
	}
	return "", fmt.Errorf("unknown period %q", raw)
}

// Record is one row of the solar hours table. State and City identify it.
type Record struct {
	State     string  `json:"state"`
	City      string  `json:"city"`
	YearAvg   float64 `json:"yearAvg"`
	SummerAvg float64 `json:"summerAvg"`
	WinterAvg float64 `json:"winterAvg"`
}

// Hours returns the average daily solar hours for p.
func (r Record) Hours(p Period) (float64, bool) {
	switch p {
	case PeriodYear:
		return r.YearAvg, true
	case PeriodSummer:
		return r.SummerAvg, true
	case PeriodWinter:
		return r.WinterAvg, true
	default:
		return 0, false
	}
}
