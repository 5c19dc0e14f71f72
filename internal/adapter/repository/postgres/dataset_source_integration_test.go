//go:build integration

package postgres

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simaogato/portfolio-analytics-backend/internal/domain"
	"github.com/simaogato/portfolio-analytics-backend/internal/usecase/seeder"
)

// openTestDB connects to DB_CONN_STR, applies the schema and empties both tables
func openTestDB(t *testing.T) *DB {
	t.Helper()

	connStr := os.Getenv("DB_CONN_STR")
	if connStr == "" {
		t.Skip("DB_CONN_STR not set")
	}

	db, err := NewDB(connStr)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(Schema)
	require.NoError(t, err)
	_, err = db.Exec(`TRUNCATE holdings, performance_history`)
	require.NoError(t, err)

	return db
}

func insertDataset(t *testing.T, db *DB, dataset *domain.Dataset) {
	t.Helper()
	ctx := context.Background()

	for i, h := range dataset.Holdings {
		_, err := db.ExecContext(ctx, `
			INSERT INTO holdings (symbol, position, name, quantity, avg_price, current_price, sector, market_cap, exchange)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
			h.Symbol, i, h.Name, h.Quantity, h.AvgPrice.String(), h.CurrentPrice.String(),
			h.Sector, string(h.MarketCap), h.Exchange,
		)
		require.NoError(t, err)
	}

	for _, p := range dataset.Timeline {
		_, err := db.ExecContext(ctx, `
			INSERT INTO performance_history (date, portfolio_value, benchmark_index_value, benchmark_commodity_value)
			VALUES ($1, $2, $3, $4)`,
			p.Date, p.PortfolioValue.String(), p.BenchmarkIndexValue.String(), p.BenchmarkCommodityValue.String(),
		)
		require.NoError(t, err)
	}
}

func TestDatasetSource_Load(t *testing.T) {
	db := openTestDB(t)
	reference := seeder.ReferenceDataset()
	insertDataset(t, db, reference)

	dataset, err := NewDatasetSource(db).Load(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "postgres", dataset.Metadata.Source)
	require.Len(t, dataset.Holdings, len(reference.Holdings))
	for i, want := range reference.Holdings {
		got := dataset.Holdings[i]
		assert.Equal(t, want.Symbol, got.Symbol)
		assert.Equal(t, want.Quantity, got.Quantity)
		assert.True(t, want.AvgPrice.Equal(got.AvgPrice), want.Symbol)
		assert.True(t, want.CurrentPrice.Equal(got.CurrentPrice), want.Symbol)
		assert.Equal(t, want.MarketCap, got.MarketCap)
	}

	require.Len(t, dataset.Timeline, len(reference.Timeline))
	assert.Equal(t, "2024-12-01", dataset.Timeline[11].Date.Format("2006-01-02"))
	assert.True(t, reference.Timeline[11].PortfolioValue.Equal(dataset.Timeline[11].PortfolioValue))
	assert.NoError(t, dataset.Validate())
}

func TestDatasetSource_Load_EmptyTable(t *testing.T) {
	db := openTestDB(t)

	_, err := NewDatasetSource(db).Load(context.Background())

	assert.ErrorIs(t, err, domain.ErrDatasetNotFound)
}
