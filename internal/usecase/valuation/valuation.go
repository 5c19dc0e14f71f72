package valuation

import (
	"github.com/shopspring/decimal"
	"github.com/simaogato/portfolio-analytics-backend/internal/domain"
)

// Valuate derives the invested amount, market value and gain/loss of every holding
// Returns one ValuedHolding per record, in the same order
func Valuate(records []domain.Holding) []domain.ValuedHolding {
	valued := make([]domain.ValuedHolding, 0, len(records))
	for _, record := range records {
		valued = append(valued, ValuateHolding(record))
	}
	return valued
}

// ValuateHolding derives the figures of a single holding
// Logic:
//   - InvestedAmount = Quantity * AvgPrice, rounded to 2 places
//   - MarketValue = Quantity * CurrentPrice, rounded to 2 places
//   - GainLoss = rounded MarketValue - rounded InvestedAmount
//   - GainLossPercent = GainLoss / InvestedAmount * 100, or 0 when nothing was invested
func ValuateHolding(h domain.Holding) domain.ValuedHolding {
	quantity := decimal.NewFromInt(h.Quantity)

	invested := domain.Round2(quantity.Mul(h.AvgPrice))
	marketValue := domain.Round2(quantity.Mul(h.CurrentPrice))
	gainLoss := marketValue.Sub(invested)

	return domain.ValuedHolding{
		Holding:         h,
		InvestedAmount:  invested,
		MarketValue:     marketValue,
		GainLoss:        gainLoss,
		GainLossPercent: domain.PercentOf(gainLoss, invested),
	}
}
