package dashboard

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/simaogato/portfolio-analytics-backend/internal/domain"
	"github.com/simaogato/portfolio-analytics-backend/internal/usecase/allocation"
	"github.com/simaogato/portfolio-analytics-backend/internal/usecase/performance"
	"github.com/simaogato/portfolio-analytics-backend/internal/usecase/summary"
	"github.com/simaogato/portfolio-analytics-backend/internal/usecase/valuation"
)

const tracerName = "portfolio-analytics/dashboard"

// DashboardService computes the dashboard views from the injected dataset
// Every call recomputes from the repositories; nothing is cached between calls
type DashboardService struct {
	HoldingRepo     domain.HoldingRepository
	PerformanceRepo domain.PerformanceRepository
}

// NewDashboardService creates a new DashboardService instance
func NewDashboardService(
	holdingRepo domain.HoldingRepository,
	performanceRepo domain.PerformanceRepository,
) *DashboardService {
	return &DashboardService{
		HoldingRepo:     holdingRepo,
		PerformanceRepo: performanceRepo,
	}
}

// ListHoldings returns every holding with its derived figures, in dataset order
func (s *DashboardService) ListHoldings(ctx context.Context) ([]domain.ValuedHolding, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "DashboardService.ListHoldings")
	defer span.End()

	return s.valuedHoldings(ctx, span)
}

// GetAllocation groups the portfolio by sector and by market cap
// An empty portfolio yields empty groupings, not an error
func (s *DashboardService) GetAllocation(ctx context.Context) (*domain.Allocation, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "DashboardService.GetAllocation")
	defer span.End()

	valued, err := s.valuedHoldings(ctx, span)
	if err != nil {
		return nil, err
	}

	result := allocation.Allocate(valued)
	span.SetAttributes(
		attribute.Int("allocation.sectors", len(result.BySector)),
		attribute.Int("allocation.market_caps", len(result.ByMarketCap)),
	)

	return &result, nil
}

// GetPerformance returns the timeline with trailing returns for the portfolio and both benchmarks
func (s *DashboardService) GetPerformance(ctx context.Context) (*domain.Performance, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "DashboardService.GetPerformance")
	defer span.End()

	timeline, err := s.PerformanceRepo.Timeline(ctx)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to load performance timeline: %w", err)
	}
	span.SetAttributes(attribute.Int("timeline.points", len(timeline)))

	result, err := performance.Compute(timeline)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to compute performance: %w", err)
	}

	return result, nil
}

// GetSummary returns the portfolio-wide totals and insights
// Returns domain.ErrEmptyPortfolio (wrapped) when there are no holdings
func (s *DashboardService) GetSummary(ctx context.Context) (*domain.PortfolioSummary, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "DashboardService.GetSummary")
	defer span.End()

	valued, err := s.valuedHoldings(ctx, span)
	if err != nil {
		return nil, err
	}

	result, err := summary.Summarize(valued)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to summarize portfolio: %w", err)
	}

	return result, nil
}

// valuedHoldings loads the holdings and values them
func (s *DashboardService) valuedHoldings(ctx context.Context, span trace.Span) ([]domain.ValuedHolding, error) {
	holdings, err := s.HoldingRepo.List(ctx)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to list holdings: %w", err)
	}
	span.SetAttributes(attribute.Int("holdings.count", len(holdings)))

	return valuation.Valuate(holdings), nil
}
