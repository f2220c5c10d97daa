package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/yanqian/solar-calculator/internal/infra/config"
)

// NewRouter wires up the HTTP handlers and returns a configured server.
func NewRouter(cfg *config.Config, handler *Handler, logger *slog.Logger) *http.Server {
	gin.SetMode(gin.ReleaseMode)
	httpLogger := logger.With("component", "http")

	router := gin.New()
	router.Use(
		gin.Recovery(),
		requestLogger(httpLogger),
		corsMiddleware(cfg.HTTP.AllowedOrigins),
		errorHandlingMiddleware(httpLogger),
	)

	router.GET("/healthz", handler.Healthz)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api/v1")
	api.Use(rateLimitMiddleware(cfg.HTTP.RateLimit, httpLogger))
	{
		api.GET("/locations", handler.ListStates)
		api.GET("/locations/popular", handler.Popular)
		api.GET("/locations/:state/cities", handler.ListCities)
		api.GET("/solar-hours", handler.SolarHours)
		api.GET("/loan-plans", handler.LoanPlans)
		api.POST("/estimates", handler.Estimate)
		api.POST("/estimates/report", handler.Report)
	}

	return &http.Server{
		Addr:           cfg.HTTP.Address,
		Handler:        withRetry(router, cfg.HTTP.Retry, httpLogger),
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		MaxHeaderBytes: 1 << 20,
	}
}
