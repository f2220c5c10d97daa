//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/yanqian/solar-calculator/internal/bootstrap"
	"github.com/yanqian/solar-calculator/internal/domain/estimator"
	"github.com/yanqian/solar-calculator/internal/domain/location"
	"github.com/yanqian/solar-calculator/internal/infra/config"
	httpiface "github.com/yanqian/solar-calculator/internal/interface/http"
	"github.com/yanqian/solar-calculator/pkg/logger"
)

func initializeApp() (*bootstrap.App, error) {
	wire.Build(
		config.Load,
		logger.New,
		bootstrap.NewCloser,
		provideEstimatorConfig,
		provideLocationRepository,
		provideTrendingStore,
		location.NewResolver,
		estimator.NewService,
		wire.Bind(new(estimator.LocationResolver), new(*location.Resolver)),
		httpiface.NewHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil
}
