package performance

import (
	"github.com/shopspring/decimal"
	"github.com/simaogato/portfolio-analytics-backend/internal/domain"
)

// MinPoints is the shortest series TrailingReturns accepts: the 3-month
// window needs the value three steps before the last one
const MinPoints = 4

// TrailingReturns calculates the 1-month, 3-month and 1-year returns of a monthly series
// Logic:
//   - OneMonth = change from the second-to-last to the last point
//   - ThreeMonths = change from the fourth-to-last to the last point
//   - OneYear = change from the first to the last point
//
// Each figure is a percentage rounded to 2 places; a zero base yields 0.
func TrailingReturns(series []decimal.Decimal) (domain.ReturnMetrics, error) {
	n := len(series)
	if n < MinPoints {
		return domain.ReturnMetrics{}, &domain.InsufficientDataError{Required: MinPoints, Got: n}
	}

	last := series[n-1]

	return domain.ReturnMetrics{
		OneMonth:    domain.PercentChange(series[n-2], last),
		ThreeMonths: domain.PercentChange(series[n-4], last),
		OneYear:     domain.PercentChange(series[0], last),
	}, nil
}

// Compute calculates the trailing returns of the portfolio and both benchmarks
// over one shared, chronologically ordered timeline
func Compute(timeline []domain.TimeSeriesPoint) (*domain.Performance, error) {
	portfolio := make([]decimal.Decimal, len(timeline))
	index := make([]decimal.Decimal, len(timeline))
	commodity := make([]decimal.Decimal, len(timeline))

	for i, point := range timeline {
		if i > 0 && !point.Date.After(timeline[i-1].Date) {
			return nil, domain.ErrUnorderedTimeline
		}
		portfolio[i] = point.PortfolioValue
		index[i] = point.BenchmarkIndexValue
		commodity[i] = point.BenchmarkCommodityValue
	}

	returns := make([]domain.ReturnMetrics, 0, 3)
	for _, series := range [][]decimal.Decimal{portfolio, index, commodity} {
		r, err := TrailingReturns(series)
		if err != nil {
			return nil, err
		}
		returns = append(returns, r)
	}

	out := make([]domain.TimeSeriesPoint, len(timeline))
	copy(out, timeline)

	return &domain.Performance{
		Timeline:           out,
		Portfolio:          returns[0],
		BenchmarkIndex:     returns[1],
		BenchmarkCommodity: returns[2],
	}, nil
}
