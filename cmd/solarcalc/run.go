package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/yanqian/solar-calculator/internal/domain/estimator"
	"github.com/yanqian/solar-calculator/internal/domain/location"
	"github.com/yanqian/solar-calculator/internal/infra/config"
	"github.com/yanqian/solar-calculator/internal/infra/locationrepo"
	"github.com/yanqian/solar-calculator/internal/infra/report"
	"github.com/yanqian/solar-calculator/internal/infra/trendingstore"
)

type estimateFlags struct {
	state  string
	city   string
	period string
	price  float64
	usage  float64
	offset int
	credit bool
	loan   string
}

func (f estimateFlags) input() estimator.CalculatorInput {
	return estimator.CalculatorInput{
		State:                 f.state,
		City:                  f.city,
		Period:                f.period,
		ElectricityCostPerKWh: f.price,
		MonthlyUsageKWh:       f.usage,
		OffsetPercent:         f.offset,
		ApplyFederalCredit:    f.credit,
		LoanPlan:              f.loan,
	}
}

// newService builds an in-process estimator over the CSV table.
func newService(opts *globalOptions) (estimator.Service, error) {
	path := opts.dataPath
	if path == "" {
		cfg, err := config.Load()
		if err != nil {
			return nil, err
		}
		path = cfg.Locations.CSVPath
	}
	repo, err := locationrepo.LoadCSVFile(path)
	if err != nil {
		return nil, err
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	return estimator.NewService(
		estimator.Config{TopLocations: 1},
		location.NewResolver(repo),
		trendingstore.NewMemoryStore(),
		logger,
	), nil
}

func runEstimate(ctx context.Context, out io.Writer, opts *globalOptions, in estimator.CalculatorInput, reportPath string, asJSON bool) error {
	svc, err := newService(opts)
	if err != nil {
		return err
	}
	res, err := svc.Estimate(ctx, in)
	if err != nil {
		return err
	}

	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(res); err != nil {
			return err
		}
	} else {
		printEstimate(out, in, res)
	}

	if reportPath != "" {
		if err := writeReport(reportPath, in, res); err != nil {
			return err
		}
		fmt.Fprintf(out, "\nReport written to %s\n", reportPath)
	}
	return nil
}

func writeReport(path string, in estimator.CalculatorInput, res estimator.CalculationResult) error {
	var render func(io.Writer, estimator.CalculatorInput, estimator.CalculationResult) error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		render = report.PDF
	case ".xlsx":
		render = report.XLSX
	default:
		return fmt.Errorf("report path %q must end in .pdf or .xlsx", path)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report: %w", err)
	}
	if err := render(f, in, res); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func runHours(ctx context.Context, out io.Writer, opts *globalOptions, period, state, city string) error {
	svc, err := newService(opts)
	if err != nil {
		return err
	}
	hours, err := svc.SolarHours(ctx, period, state, city)
	if err != nil {
		return err
	}
	canonical, _ := location.ParsePeriod(period)
	fmt.Fprintf(out, "%s, %s (%s): %g sun hours/day\n", city, state, canonical, hours)
	return nil
}

func runLocations(ctx context.Context, out io.Writer, opts *globalOptions, state string) error {
	svc, err := newService(opts)
	if err != nil {
		return err
	}
	var names []string
	if state == "" {
		names, err = svc.States(ctx)
	} else {
		names, err = svc.Cities(ctx, state)
	}
	if err != nil {
		return err
	}
	for _, name := range names {
		fmt.Fprintln(out, name)
	}
	return nil
}
