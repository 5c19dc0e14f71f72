package valuation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simaogato/portfolio-analytics-backend/internal/domain"
)

func holding(symbol string, quantity int64, avg, current string) domain.Holding {
	return domain.Holding{
		Symbol:       symbol,
		Name:         symbol,
		Quantity:     quantity,
		AvgPrice:     decimal.RequireFromString(avg),
		CurrentPrice: decimal.RequireFromString(current),
		Sector:       "Technology",
		MarketCap:    domain.MarketCapLarge,
		Exchange:     domain.DefaultExchange,
	}
}

func TestValuateHolding(t *testing.T) {
	tests := []struct {
		name            string
		holding         domain.Holding
		wantInvested    string
		wantValue       string
		wantGainLoss    string
		wantGainLossPct string
	}{
		{
			name:            "Gain",
			holding:         holding("AAA", 10, "100", "120"),
			wantInvested:    "1000.00",
			wantValue:       "1200.00",
			wantGainLoss:    "200.00",
			wantGainLossPct: "20.00",
		},
		{
			name:            "Loss",
			holding:         holding("HDFCBANK", 80, "1650", "1580.3"),
			wantInvested:    "132000.00",
			wantValue:       "126424.00",
			wantGainLoss:    "-5576.00",
			wantGainLossPct: "-4.22",
		},
		{
			name:            "Zero quantity yields zero percent",
			holding:         holding("ZERO", 0, "100", "120"),
			wantInvested:    "0.00",
			wantValue:       "0.00",
			wantGainLoss:    "0.00",
			wantGainLossPct: "0.00",
		},
		{
			name:            "Zero average price yields zero percent",
			holding:         holding("FREE", 5, "0", "10"),
			wantInvested:    "0.00",
			wantValue:       "50.00",
			wantGainLoss:    "50.00",
			wantGainLossPct: "0.00",
		},
		{
			name:            "Products rounded before subtraction",
			holding:         holding("FRAC", 3, "0.335", "0.336"),
			wantInvested:    "1.01",
			wantValue:       "1.01",
			wantGainLoss:    "0.00",
			wantGainLossPct: "0.00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValuateHolding(tt.holding)

			assert.Equal(t, tt.holding, got.Holding)
			assert.Equal(t, tt.wantInvested, got.InvestedAmount.StringFixed(2))
			assert.Equal(t, tt.wantValue, got.MarketValue.StringFixed(2))
			assert.Equal(t, tt.wantGainLoss, got.GainLoss.StringFixed(2))
			assert.Equal(t, tt.wantGainLossPct, got.GainLossPercent.StringFixed(2))
		})
	}
}

func TestValuate_PreservesOrder(t *testing.T) {
	records := []domain.Holding{
		holding("CCC", 1, "10", "11"),
		holding("AAA", 2, "10", "9"),
		holding("BBB", 3, "10", "10"),
	}

	valued := Valuate(records)

	require.Len(t, valued, 3)
	assert.Equal(t, "CCC", valued[0].Symbol)
	assert.Equal(t, "AAA", valued[1].Symbol)
	assert.Equal(t, "BBB", valued[2].Symbol)
}

func TestValuate_Empty(t *testing.T) {
	valued := Valuate(nil)

	assert.NotNil(t, valued)
	assert.Empty(t, valued)
}

func TestValuate_GainLossIsValueMinusInvested(t *testing.T) {
	for _, v := range Valuate([]domain.Holding{
		holding("A", 7, "13.333", "14.777"),
		holding("B", 11, "0.005", "0.015"),
		holding("C", 3, "99.995", "0.001"),
	}) {
		assert.True(t, v.GainLoss.Equal(v.MarketValue.Sub(v.InvestedAmount)), v.Symbol)
	}
}
