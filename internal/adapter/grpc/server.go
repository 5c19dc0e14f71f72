package grpc

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/simaogato/portfolio-analytics-backend/internal/adapter/presenter"
	"github.com/simaogato/portfolio-analytics-backend/internal/domain"
	"github.com/simaogato/portfolio-analytics-backend/internal/logger"
)

// Dashboard is the read side of the dashboard service the RPCs expose
type Dashboard interface {
	ListHoldings(ctx context.Context) ([]domain.ValuedHolding, error)
	GetAllocation(ctx context.Context) (*domain.Allocation, error)
	GetPerformance(ctx context.Context) (*domain.Performance, error)
	GetSummary(ctx context.Context) (*domain.PortfolioSummary, error)
}

// Server implements the PortfolioService gRPC server
type Server struct {
	DashboardService Dashboard
	Log              *logger.Logger
}

var _ PortfolioServiceServer = (*Server)(nil)

// NewServer creates a new gRPC server instance
func NewServer(dashboardService Dashboard, log *logger.Logger) *Server {
	return &Server{
		DashboardService: dashboardService,
		Log:              log,
	}
}

// NewGRPCServer builds a grpc.Server with the interceptor chain, the
// portfolio service and server reflection registered
func NewGRPCServer(dashboardService Dashboard, log *logger.Logger) *grpc.Server {
	s := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			LoggingInterceptor(log),
			RecoveryInterceptor(log),
		),
	)
	RegisterPortfolioServiceServer(s, NewServer(dashboardService, log))
	reflection.Register(s)
	return s
}

// ListHoldings handles the ListHoldings RPC
func (s *Server) ListHoldings(ctx context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	valued, err := s.DashboardService.ListHoldings(ctx)
	if err != nil {
		return nil, s.fail(ctx, "ListHoldings", err)
	}

	holdings := make([]interface{}, 0, len(valued))
	for _, v := range valued {
		holdings = append(holdings, map[string]interface{}{
			"symbol":          v.Symbol,
			"name":            v.Name,
			"quantity":        v.Quantity,
			"avgPrice":        money(v.AvgPrice),
			"currentPrice":    money(v.CurrentPrice),
			"sector":          v.Sector,
			"marketCap":       string(v.MarketCap),
			"exchange":        v.Exchange,
			"invested":        money(v.InvestedAmount),
			"value":           money(v.MarketValue),
			"gainLoss":        money(v.GainLoss),
			"gainLossPercent": money(v.GainLossPercent),
		})
	}

	return newStruct(map[string]interface{}{"holdings": holdings})
}

// GetAllocation handles the GetAllocation RPC
func (s *Server) GetAllocation(ctx context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	result, err := s.DashboardService.GetAllocation(ctx)
	if err != nil {
		return nil, s.fail(ctx, "GetAllocation", err)
	}

	return newStruct(map[string]interface{}{
		"bySector":    buckets(result.BySector),
		"byMarketCap": buckets(result.ByMarketCap),
	})
}

// GetPerformance handles the GetPerformance RPC
func (s *Server) GetPerformance(ctx context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	result, err := s.DashboardService.GetPerformance(ctx)
	if err != nil {
		return nil, s.fail(ctx, "GetPerformance", err)
	}

	timeline := make([]interface{}, 0, len(result.Timeline))
	for _, pt := range result.Timeline {
		timeline = append(timeline, map[string]interface{}{
			"date":      pt.Date.Format(presenter.DateLayout),
			"portfolio": money(pt.PortfolioValue),
			"nifty50":   money(pt.BenchmarkIndexValue),
			"gold":      money(pt.BenchmarkCommodityValue),
		})
	}

	return newStruct(map[string]interface{}{
		"timeline": timeline,
		"returns": map[string]interface{}{
			"portfolio": returns(result.Portfolio),
			"nifty50":   returns(result.BenchmarkIndex),
			"gold":      returns(result.BenchmarkCommodity),
		},
	})
}

// GetSummary handles the GetSummary RPC
func (s *Server) GetSummary(ctx context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	result, err := s.DashboardService.GetSummary(ctx)
	if err != nil {
		return nil, s.fail(ctx, "GetSummary", err)
	}

	return newStruct(map[string]interface{}{
		"totalValue":           money(result.TotalValue),
		"totalInvested":        money(result.TotalInvested),
		"totalGainLoss":        money(result.TotalGainLoss),
		"totalGainLossPercent": money(result.TotalGainLossPercent),
		"holdingsCount":        result.HoldingsCount,
		"topPerformer":         performer(result.TopPerformer),
		"worstPerformer":       performer(result.WorstPerformer),
		"diversificationScore": result.DiversificationScore.StringFixed(1),
		"riskLevel":            string(result.RiskLevel),
	})
}

func buckets(in []domain.AllocationBucket) map[string]interface{} {
	out := make(map[string]interface{}, len(in))
	for _, b := range in {
		out[b.GroupKey] = map[string]interface{}{
			"value":      money(b.TotalValue),
			"percentage": money(b.PercentageOfPortfolio),
			"count":      b.MemberCount,
		}
	}
	return out
}

func returns(r domain.ReturnMetrics) map[string]interface{} {
	return map[string]interface{}{
		"1month":  money(r.OneMonth),
		"3months": money(r.ThreeMonths),
		"1year":   money(r.OneYear),
	}
}

func performer(p domain.Performer) map[string]interface{} {
	return map[string]interface{}{
		"symbol":      p.Symbol,
		"name":        p.Name,
		"gainPercent": money(p.GainPercent),
	}
}

// money renders a decimal as a fixed 2 decimal place string
func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func newStruct(fields map[string]interface{}) (*structpb.Struct, error) {
	out, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to encode response")
	}
	return out, nil
}

// fail logs the cause of a failed RPC and returns its status error
func (s *Server) fail(ctx context.Context, method string, err error) error {
	s.Log.WithContext(ctx).Errorw("RPC failed", "method", method, "error", err)
	return mapError(err)
}

// mapError converts domain errors to gRPC status errors
// Anything not recognised becomes a generic Internal error
func mapError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, domain.ErrEmptyPortfolio):
		return status.Error(codes.FailedPrecondition, "portfolio has no holdings")
	case errors.Is(err, domain.ErrInsufficientData):
		return status.Error(codes.FailedPrecondition, "insufficient performance data")
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, "request canceled")
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, "deadline exceeded")
	default:
		return status.Error(codes.Internal, "internal error")
	}
}
