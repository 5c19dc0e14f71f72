package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/simaogato/portfolio-analytics-backend/internal/domain"
)

// datasetSource implements domain.DatasetSource
// It only reads: the dataset is loaded once at start-up and served from memory afterwards
type datasetSource struct {
	db *DB
}

// NewDatasetSource creates a new Postgres dataset source
func NewDatasetSource(db *DB) domain.DatasetSource {
	return &datasetSource{db: db}
}

// Load reads every holding and the full performance history
// Returns domain.ErrDatasetNotFound when the holdings table is empty
func (s *datasetSource) Load(ctx context.Context) (*domain.Dataset, error) {
	holdings, err := s.listHoldings(ctx)
	if err != nil {
		return nil, err
	}
	if len(holdings) == 0 {
		return nil, fmt.Errorf("holdings table is empty: %w", domain.ErrDatasetNotFound)
	}

	timeline, err := s.listTimeline(ctx)
	if err != nil {
		return nil, err
	}

	return &domain.Dataset{
		Metadata: domain.DatasetMetadata{
			Source: "postgres",
		},
		Holdings: holdings,
		Timeline: timeline,
	}, nil
}

// listHoldings retrieves all holdings ordered by position
func (s *datasetSource) listHoldings(ctx context.Context) ([]domain.Holding, error) {
	query := `
		SELECT symbol, name, quantity, avg_price, current_price, sector, market_cap, exchange
		FROM holdings
		ORDER BY position, symbol
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query holdings: %w", err)
	}
	defer rows.Close()

	holdings := make([]domain.Holding, 0)
	for rows.Next() {
		var h domain.Holding
		var avgPriceStr, currentPriceStr, marketCapStr string

		if err := rows.Scan(
			&h.Symbol,
			&h.Name,
			&h.Quantity,
			&avgPriceStr,
			&currentPriceStr,
			&h.Sector,
			&marketCapStr,
			&h.Exchange,
		); err != nil {
			return nil, fmt.Errorf("failed to scan holding: %w", err)
		}

		// Parse prices (NUMERIC)
		if h.AvgPrice, err = decimal.NewFromString(avgPriceStr); err != nil {
			return nil, fmt.Errorf("failed to parse avg_price of %s: %w", h.Symbol, err)
		}
		if h.CurrentPrice, err = decimal.NewFromString(currentPriceStr); err != nil {
			return nil, fmt.Errorf("failed to parse current_price of %s: %w", h.Symbol, err)
		}

		if h.MarketCap, err = domain.ParseMarketCap(marketCapStr); err != nil {
			return nil, fmt.Errorf("holding %s: %w", h.Symbol, err)
		}

		holdings = append(holdings, h)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating holdings: %w", err)
	}

	return holdings, nil
}

// listTimeline retrieves the performance history in chronological order
func (s *datasetSource) listTimeline(ctx context.Context) ([]domain.TimeSeriesPoint, error) {
	query := `
		SELECT date, portfolio_value, benchmark_index_value, benchmark_commodity_value
		FROM performance_history
		ORDER BY date ASC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query performance history: %w", err)
	}
	defer rows.Close()

	timeline := make([]domain.TimeSeriesPoint, 0)
	for rows.Next() {
		var p domain.TimeSeriesPoint
		var portfolioStr, indexStr, commodityStr string

		if err := rows.Scan(&p.Date, &portfolioStr, &indexStr, &commodityStr); err != nil {
			return nil, fmt.Errorf("failed to scan performance point: %w", err)
		}

		if p.PortfolioValue, err = decimal.NewFromString(portfolioStr); err != nil {
			return nil, fmt.Errorf("failed to parse portfolio_value: %w", err)
		}
		if p.BenchmarkIndexValue, err = decimal.NewFromString(indexStr); err != nil {
			return nil, fmt.Errorf("failed to parse benchmark_index_value: %w", err)
		}
		if p.BenchmarkCommodityValue, err = decimal.NewFromString(commodityStr); err != nil {
			return nil, fmt.Errorf("failed to parse benchmark_commodity_value: %w", err)
		}

		timeline = append(timeline, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating performance history: %w", err)
	}

	return timeline, nil
}
