package estimator

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/yanqian/solar-calculator/internal/domain/location"
	"github.com/yanqian/solar-calculator/internal/domain/trending"
	apperrors "github.com/yanqian/solar-calculator/pkg/errors"
	"github.com/yanqian/solar-calculator/pkg/metrics"
)

// Service exposes the solar estimate and the lookups that feed it.
type Service interface {
	Estimate(ctx context.Context, in CalculatorInput) (CalculationResult, error)
	SolarHours(ctx context.Context, period, state, city string) (float64, error)
	States(ctx context.Context) ([]string, error)
	Cities(ctx context.Context, state string) ([]string, error)
	LoanPlans() []LoanPlan
	Popular(ctx context.Context, limit int) ([]trending.LocationCount, error)
}

// LocationResolver resolves solar hours from the location table.
type LocationResolver interface {
	SolarHours(ctx context.Context, period location.Period, state, city string) (float64, error)
	States(ctx context.Context) ([]string, error)
	Cities(ctx context.Context, state string) ([]string, error)
}

type service struct {
	cfg       Config
	locations LocationResolver
	trending  trending.Store
	logger    *slog.Logger
}

// NewService wires up the estimator domain.
func NewService(cfg Config, locations LocationResolver, store trending.Store, logger *slog.Logger) Service {
	return &service{
		cfg:       cfg,
		locations: locations,
		trending:  store,
		logger:    logger.With("component", "estimator.service"),
	}
}

func (s *service) Estimate(ctx context.Context, in CalculatorInput) (CalculationResult, error) {
	res, err := s.estimate(ctx, in)
	if err != nil {
		metrics.ObserveEstimate(apperrors.Code(err), 0)
		return CalculationResult{}, err
	}
	metrics.ObserveEstimate(metrics.OutcomeOK, res.SystemSizeKW)

	if err := s.trending.Increment(ctx, res.State, res.City); err != nil {
		s.logger.Warn("failed to record location hit", "state", res.State, "city", res.City, "error", err)
	}
	s.logger.Debug("estimate computed",
		"state", res.State,
		"city", res.City,
		"system_kw", res.SystemSizeKW,
		"panels", res.PanelCount,
		"loan_plan", res.LoanPlan.Label,
	)
	return res, nil
}

func (s *service) estimate(ctx context.Context, in CalculatorInput) (CalculationResult, error) {
	period, err := location.ParsePeriod(in.Period)
	if err != nil {
		return CalculationResult{}, apperrors.Wrap(apperrors.CodeInvalidInput, err.Error(), ErrInvalidInput)
	}
	if !finite(in.ElectricityCostPerKWh) || in.ElectricityCostPerKWh < 0 {
		return CalculationResult{}, invalidInput(fmt.Sprintf("electricity cost must be a non-negative number, got %v", in.ElectricityCostPerKWh))
	}
	plan, err := ParseLoanPlan(in.LoanPlan)
	if err != nil {
		return CalculationResult{}, err
	}

	hours, err := s.locations.SolarHours(ctx, period, in.State, in.City)
	if err != nil {
		return CalculationResult{}, err
	}

	kw, panels, err := SizeSystem(in.MonthlyUsageKWh, in.OffsetPercent, hours)
	if err != nil {
		return CalculationResult{}, err
	}

	baseLow, baseHigh := CostRange(kw, in.ApplyFederalCredit)
	interestLow, err := Amortize(baseLow, plan.AnnualRatePercent, plan.TermYears)
	if err != nil {
		return CalculationResult{}, err
	}
	interestHigh, err := Amortize(baseHigh, plan.AnnualRatePercent, plan.TermYears)
	if err != nil {
		return CalculationResult{}, err
	}
	costLow := baseLow + interestLow
	costHigh := baseHigh + interestHigh

	rows := Project(panels, hours, in.ElectricityCostPerKWh)
	avg, paybackLow, paybackHigh, err := paybackFromRows(rows, costLow, costHigh)
	if err != nil {
		return CalculationResult{}, err
	}

	return CalculationResult{
		State:                   in.State,
		City:                    in.City,
		Period:                  string(period),
		SolarHours:              hours,
		SystemSizeKW:            kw,
		PanelCount:              panels,
		EstimatedUtilitySavings: UtilitySum(in.ElectricityCostPerKWh, in.MonthlyUsageKWh, in.OffsetPercent, ProjectionYears),
		BaseCostLow:             baseLow,
		BaseCostHigh:            baseHigh,
		InterestLow:             interestLow,
		InterestHigh:            interestHigh,
		SystemCostLow:           costLow,
		SystemCostHigh:          costHigh,
		AvgAnnualCashFlow:       avg,
		PaybackYearsLow:         paybackLow,
		PaybackYearsHigh:        paybackHigh,
		FederalCreditApplied:    in.ApplyFederalCredit,
		LoanPlan:                plan,
		Projection:              rows,
	}, nil
}

func (s *service) SolarHours(ctx context.Context, period, state, city string) (float64, error) {
	p, err := location.ParsePeriod(period)
	if err != nil {
		return 0, apperrors.Wrap(apperrors.CodeInvalidInput, err.Error(), ErrInvalidInput)
	}
	metrics.SolarHourLookups.WithLabelValues(string(p)).Inc()
	return s.locations.SolarHours(ctx, p, state, city)
}

func (s *service) States(ctx context.Context) ([]string, error) {
	return s.locations.States(ctx)
}

func (s *service) Cities(ctx context.Context, state string) ([]string, error) {
	return s.locations.Cities(ctx, state)
}

func (s *service) LoanPlans() []LoanPlan {
	return LoanPlans()
}

func (s *service) Popular(ctx context.Context, limit int) ([]trending.LocationCount, error) {
	if limit <= 0 || limit > s.cfg.TopLocations {
		limit = s.cfg.TopLocations
	}
	items, err := s.trending.Top(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("load popular locations: %w", err)
	}
	return items, nil
}
