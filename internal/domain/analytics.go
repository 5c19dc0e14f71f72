package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AllocationBucket represents one group (a sector or a market cap bucket)
// with its aggregated value and share of the whole portfolio
type AllocationBucket struct {
	GroupKey              string
	TotalValue            decimal.Decimal
	PercentageOfPortfolio decimal.Decimal
	MemberCount           int
}

// Allocation holds the sector and market cap groupings of a portfolio.
// Buckets are kept in first-seen order; consumers may re-sort.
type Allocation struct {
	BySector    []AllocationBucket
	ByMarketCap []AllocationBucket
}

// TimeSeriesPoint represents one monthly sample of the portfolio value and
// the two benchmarks it is compared against
type TimeSeriesPoint struct {
	Date                    time.Time
	PortfolioValue          decimal.Decimal
	BenchmarkIndexValue     decimal.Decimal // NIFTY 50 in the reference dataset
	BenchmarkCommodityValue decimal.Decimal // Gold in the reference dataset
}

// ReturnMetrics holds the trailing returns of one series, in percent
type ReturnMetrics struct {
	OneMonth    decimal.Decimal
	ThreeMonths decimal.Decimal
	OneYear     decimal.Decimal
}

// Performance is the timeline together with the trailing returns of each tracked series
type Performance struct {
	Timeline           []TimeSeriesPoint
	Portfolio          ReturnMetrics
	BenchmarkIndex     ReturnMetrics
	BenchmarkCommodity ReturnMetrics
}

// RiskLevel is the two-tier risk label of a portfolio
type RiskLevel string

const (
	RiskLevelLow      RiskLevel = "Low"
	RiskLevelModerate RiskLevel = "Moderate"
)

// Performer references a holding by symbol together with its gain percentage
type Performer struct {
	Symbol      string
	Name        string
	GainPercent decimal.Decimal
}

// PortfolioSummary represents the portfolio-wide totals and insights
type PortfolioSummary struct {
	TotalValue           decimal.Decimal
	TotalInvested        decimal.Decimal
	TotalGainLoss        decimal.Decimal
	TotalGainLossPercent decimal.Decimal
	HoldingsCount        int
	TopPerformer         Performer
	WorstPerformer       Performer
	DiversificationScore decimal.Decimal // 0-10, one decimal place
	RiskLevel            RiskLevel
}
