package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/simaogato/portfolio-analytics-backend/internal/domain"
)

// MockHoldingRepository is a mock implementation of HoldingRepository
type MockHoldingRepository struct {
	mock.Mock
}

func (m *MockHoldingRepository) List(ctx context.Context) ([]domain.Holding, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Holding), args.Error(1)
}

// MockPerformanceRepository is a mock implementation of PerformanceRepository
type MockPerformanceRepository struct {
	mock.Mock
}

func (m *MockPerformanceRepository) Timeline(ctx context.Context) ([]domain.TimeSeriesPoint, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TimeSeriesPoint), args.Error(1)
}

func testHoldings() []domain.Holding {
	return []domain.Holding{
		{
			Symbol:       "AAA",
			Name:         "Triple A",
			Quantity:     10,
			AvgPrice:     decimal.NewFromInt(100),
			CurrentPrice: decimal.NewFromInt(120),
			Sector:       "Energy",
			MarketCap:    domain.MarketCapLarge,
			Exchange:     domain.DefaultExchange,
		},
		{
			Symbol:       "BBB",
			Name:         "Double B",
			Quantity:     5,
			AvgPrice:     decimal.NewFromInt(200),
			CurrentPrice: decimal.NewFromInt(160),
			Sector:       "Banking",
			MarketCap:    domain.MarketCapSmall,
			Exchange:     domain.DefaultExchange,
		},
	}
}

func testTimeline(n int) []domain.TimeSeriesPoint {
	points := make([]domain.TimeSeriesPoint, 0, n)
	for i := 0; i < n; i++ {
		points = append(points, domain.TimeSeriesPoint{
			Date:                    time.Date(2024, time.Month(i+1), 1, 0, 0, 0, 0, time.UTC),
			PortfolioValue:          decimal.NewFromInt(int64(1000 + 100*i)),
			BenchmarkIndexValue:     decimal.NewFromInt(100),
			BenchmarkCommodityValue: decimal.NewFromInt(int64(50 + i)),
		})
	}
	return points
}

func TestDashboardService_ListHoldings(t *testing.T) {
	ctx := context.Background()
	mockHoldingRepo := new(MockHoldingRepository)
	mockHoldingRepo.On("List", mock.Anything).Return(testHoldings(), nil)

	service := NewDashboardService(mockHoldingRepo, new(MockPerformanceRepository))

	valued, err := service.ListHoldings(ctx)

	require.NoError(t, err)
	require.Len(t, valued, 2)
	assert.Equal(t, "AAA", valued[0].Symbol)
	assert.Equal(t, "1200.00", valued[0].MarketValue.StringFixed(2))
	assert.Equal(t, "-200.00", valued[1].GainLoss.StringFixed(2))
	assert.Equal(t, "-20.00", valued[1].GainLossPercent.StringFixed(2))
	mockHoldingRepo.AssertExpectations(t)
}

func TestDashboardService_GetAllocation(t *testing.T) {
	ctx := context.Background()
	mockHoldingRepo := new(MockHoldingRepository)
	mockHoldingRepo.On("List", mock.Anything).Return(testHoldings(), nil)

	service := NewDashboardService(mockHoldingRepo, new(MockPerformanceRepository))

	result, err := service.GetAllocation(ctx)

	require.NoError(t, err)
	require.Len(t, result.BySector, 2)
	// 1200 of 2000
	assert.Equal(t, "60.00", result.BySector[0].PercentageOfPortfolio.StringFixed(2))
	assert.Equal(t, "40.00", result.BySector[1].PercentageOfPortfolio.StringFixed(2))
	require.Len(t, result.ByMarketCap, 2)
	assert.Equal(t, "Small", result.ByMarketCap[1].GroupKey)
}

func TestDashboardService_GetAllocation_Empty(t *testing.T) {
	mockHoldingRepo := new(MockHoldingRepository)
	mockHoldingRepo.On("List", mock.Anything).Return([]domain.Holding{}, nil)

	service := NewDashboardService(mockHoldingRepo, new(MockPerformanceRepository))

	result, err := service.GetAllocation(context.Background())

	require.NoError(t, err)
	assert.Empty(t, result.BySector)
	assert.Empty(t, result.ByMarketCap)
}

func TestDashboardService_GetPerformance(t *testing.T) {
	mockPerformanceRepo := new(MockPerformanceRepository)
	mockPerformanceRepo.On("Timeline", mock.Anything).Return(testTimeline(4), nil)

	service := NewDashboardService(new(MockHoldingRepository), mockPerformanceRepo)

	result, err := service.GetPerformance(context.Background())

	require.NoError(t, err)
	assert.Len(t, result.Timeline, 4)
	// 1000 -> 1300
	assert.Equal(t, "30.00", result.Portfolio.OneYear.StringFixed(2))
	assert.Equal(t, "0.00", result.BenchmarkIndex.OneYear.StringFixed(2))
	assert.Equal(t, "6.00", result.BenchmarkCommodity.OneYear.StringFixed(2))
	mockPerformanceRepo.AssertExpectations(t)
}

func TestDashboardService_GetPerformance_InsufficientData(t *testing.T) {
	mockPerformanceRepo := new(MockPerformanceRepository)
	mockPerformanceRepo.On("Timeline", mock.Anything).Return(testTimeline(3), nil)

	service := NewDashboardService(new(MockHoldingRepository), mockPerformanceRepo)

	result, err := service.GetPerformance(context.Background())

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrInsufficientData)
	assert.Contains(t, err.Error(), "failed to compute performance")
}

func TestDashboardService_GetSummary(t *testing.T) {
	mockHoldingRepo := new(MockHoldingRepository)
	mockHoldingRepo.On("List", mock.Anything).Return(testHoldings(), nil)

	service := NewDashboardService(mockHoldingRepo, new(MockPerformanceRepository))

	result, err := service.GetSummary(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "2000.00", result.TotalValue.StringFixed(2))
	assert.Equal(t, "2000.00", result.TotalInvested.StringFixed(2))
	assert.Equal(t, "0.00", result.TotalGainLoss.StringFixed(2))
	assert.Equal(t, 2, result.HoldingsCount)
	assert.Equal(t, "AAA", result.TopPerformer.Symbol)
	assert.Equal(t, "BBB", result.WorstPerformer.Symbol)
	assert.Equal(t, "2.5", result.DiversificationScore.StringFixed(1))
	assert.Equal(t, domain.RiskLevelLow, result.RiskLevel)
}

func TestDashboardService_GetSummary_EmptyPortfolio(t *testing.T) {
	mockHoldingRepo := new(MockHoldingRepository)
	mockHoldingRepo.On("List", mock.Anything).Return([]domain.Holding{}, nil)

	service := NewDashboardService(mockHoldingRepo, new(MockPerformanceRepository))

	_, err := service.GetSummary(context.Background())

	assert.ErrorIs(t, err, domain.ErrEmptyPortfolio)
}

func TestDashboardService_RepositoryErrors(t *testing.T) {
	repoErr := errors.New("store unavailable")

	mockHoldingRepo := new(MockHoldingRepository)
	mockHoldingRepo.On("List", mock.Anything).Return(nil, repoErr)
	mockPerformanceRepo := new(MockPerformanceRepository)
	mockPerformanceRepo.On("Timeline", mock.Anything).Return(nil, repoErr)

	service := NewDashboardService(mockHoldingRepo, mockPerformanceRepo)
	ctx := context.Background()

	_, err := service.ListHoldings(ctx)
	assert.ErrorIs(t, err, repoErr)
	assert.Contains(t, err.Error(), "failed to list holdings")

	_, err = service.GetAllocation(ctx)
	assert.ErrorIs(t, err, repoErr)

	_, err = service.GetSummary(ctx)
	assert.ErrorIs(t, err, repoErr)

	_, err = service.GetPerformance(ctx)
	assert.ErrorIs(t, err, repoErr)
	assert.Contains(t, err.Error(), "failed to load performance timeline")
}
