package http

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/solar-calculator/internal/domain/estimator"
	"github.com/yanqian/solar-calculator/internal/domain/location"
	"github.com/yanqian/solar-calculator/internal/infra/report"
	apperrors "github.com/yanqian/solar-calculator/pkg/errors"
	"github.com/yanqian/solar-calculator/pkg/metrics"
	"github.com/yanqian/solar-calculator/pkg/util"
)

// Handler wires the HTTP transport to the estimator service.
type Handler struct {
	svc    estimator.Service
	logger *slog.Logger
}

// NewHandler constructs the root HTTP handler.
func NewHandler(svc estimator.Service, logger *slog.Logger) *Handler {
	return &Handler{
		svc:    svc,
		logger: logger.With("component", "http.handler"),
	}
}

// ListStates returns every state in the location table.
func (h *Handler) ListStates(c *gin.Context) {
	states, err := h.svc.States(c.Request.Context())
	if err != nil {
		abortWithError(c, domainError(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"states": states})
}

// ListCities returns the cities of one state in table order.
func (h *Handler) ListCities(c *gin.Context) {
	state := c.Param("state")
	cities, err := h.svc.Cities(c.Request.Context(), state)
	if err != nil {
		abortWithError(c, domainError(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"state": state, "cities": cities})
}

// SolarHours resolves the average daily sun hours for a location and period.
func (h *Handler) SolarHours(c *gin.Context) {
	state := c.Query("state")
	city := c.Query("city")
	period := c.Query("period")

	hours, err := h.svc.SolarHours(c.Request.Context(), period, state, city)
	if err != nil {
		abortWithError(c, domainError(err))
		return
	}
	canonical, _ := location.ParsePeriod(period)
	c.JSON(http.StatusOK, gin.H{"state": state, "city": city, "period": canonical, "hours": hours})
}

// LoanPlans lists the financing menu.
func (h *Handler) LoanPlans(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"plans": h.svc.LoanPlans()})
}

// Estimate runs the full calculation for one request.
func (h *Handler) Estimate(c *gin.Context) {
	in, ok := bindInput(c)
	if !ok {
		return
	}
	res, err := h.svc.Estimate(c.Request.Context(), in)
	if err != nil {
		abortWithError(c, domainError(err))
		return
	}
	c.JSON(http.StatusOK, res)
}

// Report renders the estimate as a PDF or XLSX attachment.
func (h *Handler) Report(c *gin.Context) {
	format := strings.ToLower(c.DefaultQuery("format", "pdf"))
	render, contentType, ok := reportRenderer(format)
	if !ok {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, apperrors.CodeInvalidInput, "format must be pdf or xlsx", nil))
		return
	}

	in, ok := bindInput(c)
	if !ok {
		return
	}
	res, err := h.svc.Estimate(c.Request.Context(), in)
	if err != nil {
		abortWithError(c, domainError(err))
		return
	}

	var buf bytes.Buffer
	if err := render(&buf, in, res); err != nil {
		abortWithError(c, NewHTTPError(http.StatusInternalServerError, "report_failed", "failed to render report", err))
		return
	}
	metrics.ReportsGenerated.WithLabelValues(format).Inc()

	filename := report.Filename(res, util.NowUTC(), format)
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, contentType, buf.Bytes())
}

// Popular returns the most estimated locations.
func (h *Handler) Popular(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			abortWithError(c, NewHTTPError(http.StatusBadRequest, apperrors.CodeInvalidInput, "limit must be an integer", err))
			return
		}
		limit = parsed
	}
	items, err := h.svc.Popular(c.Request.Context(), limit)
	if err != nil {
		abortWithError(c, NewHTTPError(http.StatusInternalServerError, "trending_failed", errMessage(err), err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"locations": items})
}

// Healthz is a liveness probe.
func (h *Handler) Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func bindInput(c *gin.Context) (estimator.CalculatorInput, bool) {
	var in estimator.CalculatorInput
	if err := c.ShouldBindJSON(&in); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return estimator.CalculatorInput{}, false
	}
	return in, true
}

type renderFunc func(io.Writer, estimator.CalculatorInput, estimator.CalculationResult) error

func reportRenderer(format string) (renderFunc, string, bool) {
	switch format {
	case "pdf":
		return report.PDF, "application/pdf", true
	case "xlsx":
		return report.XLSX, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", true
	default:
		return nil, "", false
	}
}

func errMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
