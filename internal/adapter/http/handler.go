package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/simaogato/portfolio-analytics-backend/internal/adapter/presenter"
	"github.com/simaogato/portfolio-analytics-backend/internal/domain"
	"github.com/simaogato/portfolio-analytics-backend/internal/logger"
)

// PortfolioService is the read side the handlers need from the dashboard
type PortfolioService interface {
	ListHoldings(ctx context.Context) ([]domain.ValuedHolding, error)
	GetAllocation(ctx context.Context) (*domain.Allocation, error)
	GetPerformance(ctx context.Context) (*domain.Performance, error)
	GetSummary(ctx context.Context) (*domain.PortfolioSummary, error)
}

// DatasetStats reports the size of the loaded dataset for the health check
type DatasetStats interface {
	HoldingsCount() int
	TimelineLength() int
}

// Handler serves the portfolio endpoints
type Handler struct {
	Service PortfolioService
	Stats   DatasetStats
	Log     *logger.Logger

	startedAt time.Time
}

// NewHandler creates a new Handler instance
func NewHandler(service PortfolioService, stats DatasetStats, log *logger.Logger) *Handler {
	return &Handler{
		Service:   service,
		Stats:     stats,
		Log:       log,
		startedAt: time.Now(),
	}
}

// Root answers the liveness probe used by the original dashboard
func (h *Handler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Portfolio Analytics API is running"})
}

// Health reports dataset sizes and process uptime
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":         "healthy",
		"holdings":       h.Stats.HoldingsCount(),
		"timelinePoints": h.Stats.TimelineLength(),
		"uptime":         time.Since(h.startedAt).Round(time.Second).String(),
	})
}

// Holdings returns every holding with its derived figures
func (h *Handler) Holdings(c *gin.Context) {
	valued, err := h.Service.ListHoldings(c.Request.Context())
	if err != nil {
		h.fail(c, "holdings", err)
		return
	}

	c.JSON(http.StatusOK, presenter.Holdings(valued))
}

// Allocation returns the sector and market cap breakdown
func (h *Handler) Allocation(c *gin.Context) {
	result, err := h.Service.GetAllocation(c.Request.Context())
	if err != nil {
		h.fail(c, "allocation", err)
		return
	}

	c.JSON(http.StatusOK, presenter.Allocation(result))
}

// Performance returns the timeline and trailing returns
func (h *Handler) Performance(c *gin.Context) {
	result, err := h.Service.GetPerformance(c.Request.Context())
	if err != nil {
		h.fail(c, "performance", err)
		return
	}

	c.JSON(http.StatusOK, presenter.Performance(result))
}

// Summary returns the portfolio summary
func (h *Handler) Summary(c *gin.Context) {
	result, err := h.Service.GetSummary(c.Request.Context())
	if err != nil {
		h.fail(c, "summary", err)
		return
	}

	c.JSON(http.StatusOK, presenter.Summary(result))
}

// fail logs the cause and answers with a generic 500; internals never reach the client
func (h *Handler) fail(c *gin.Context, view string, err error) {
	h.requestLogger(c).Errorw("Failed to compute view", "view", view, "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute " + view})
}

func (h *Handler) requestLogger(c *gin.Context) *logger.Logger {
	if l, ok := c.Get("logger"); ok {
		if reqLog, ok := l.(*logger.Logger); ok {
			return reqLog
		}
	}
	return h.Log
}
