package allocation

import (
	"github.com/shopspring/decimal"
	"github.com/simaogato/portfolio-analytics-backend/internal/domain"
)

// KeyFunc extracts the grouping key of a valued holding
type KeyFunc func(h domain.ValuedHolding) string

// BySector groups holdings by their sector string
func BySector(h domain.ValuedHolding) string {
	return h.Sector
}

// ByMarketCap groups holdings by their market cap bucket
func ByMarketCap(h domain.ValuedHolding) string {
	return string(h.MarketCap)
}

// Allocate groups the valued holdings by sector and by market cap
// An empty portfolio yields empty groupings
func Allocate(valued []domain.ValuedHolding) domain.Allocation {
	return domain.Allocation{
		BySector:    Group(valued, BySector),
		ByMarketCap: Group(valued, ByMarketCap),
	}
}

// Group calculates one allocation grouping
// Logic:
//  1. Single pass: accumulate market value and member count per key, in first-seen order
//  2. Second pass: percentage of portfolio = bucket value / total value * 100 (0 when total is 0)
//
// Bucket values are exact sums of the already rounded market values, so the
// bucket values of a grouping always add up to the portfolio total.
func Group(valued []domain.ValuedHolding, key KeyFunc) []domain.AllocationBucket {
	buckets := make([]domain.AllocationBucket, 0)
	index := make(map[string]int)
	total := decimal.Zero

	// Step 1: accumulate
	for _, h := range valued {
		k := key(h)
		i, ok := index[k]
		if !ok {
			i = len(buckets)
			index[k] = i
			buckets = append(buckets, domain.AllocationBucket{GroupKey: k, TotalValue: decimal.Zero})
		}
		buckets[i].TotalValue = buckets[i].TotalValue.Add(h.MarketValue)
		buckets[i].MemberCount++
		total = total.Add(h.MarketValue)
	}

	// Step 2: percentages against the grouping total
	for i := range buckets {
		buckets[i].PercentageOfPortfolio = domain.PercentOf(buckets[i].TotalValue, total)
	}

	return buckets
}
