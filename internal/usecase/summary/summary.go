package summary

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/simaogato/portfolio-analytics-backend/internal/domain"
)

const (
	// IdealSectorCount is the sector spread that earns the full diversification score
	IdealSectorCount = 8

	// MaxDiversificationScore caps the diversification score
	MaxDiversificationScore = 10

	// ModerateRiskThreshold is the total gain percentage above which risk is Moderate
	ModerateRiskThreshold = 15
)

// Summarize calculates the portfolio-wide totals and insights
// Logic:
//  1. Totals: sum invested and market values; gain/loss and its percentage (0 when nothing invested)
//  2. Stable sort by GainLossPercent descending; first is the top performer, last the worst
//  3. Diversification: min(10, distinct sectors / 8 * 10) rounded to 1 place
//  4. Risk: Moderate when the total gain percentage is strictly above 15, otherwise Low
func Summarize(valued []domain.ValuedHolding) (*domain.PortfolioSummary, error) {
	if len(valued) == 0 {
		return nil, domain.ErrEmptyPortfolio
	}

	// Step 1: totals
	totalInvested := decimal.Zero
	totalValue := decimal.Zero
	for _, h := range valued {
		totalInvested = totalInvested.Add(h.InvestedAmount)
		totalValue = totalValue.Add(h.MarketValue)
	}
	totalGainLoss := totalValue.Sub(totalInvested)
	totalGainLossPercent := domain.PercentOf(totalGainLoss, totalInvested)

	// Step 2: top and worst performer
	// Sort a copy so the caller's order is untouched
	sorted := make([]domain.ValuedHolding, len(valued))
	copy(sorted, valued)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].GainLossPercent.GreaterThan(sorted[j].GainLossPercent)
	})
	top := sorted[0]
	worst := sorted[len(sorted)-1]

	return &domain.PortfolioSummary{
		TotalValue:           domain.Round2(totalValue),
		TotalInvested:        domain.Round2(totalInvested),
		TotalGainLoss:        domain.Round2(totalGainLoss),
		TotalGainLossPercent: totalGainLossPercent,
		HoldingsCount:        len(valued),
		TopPerformer:         performerOf(top),
		WorstPerformer:       performerOf(worst),
		DiversificationScore: DiversificationScore(valued),
		RiskLevel:            RiskLevelFor(totalGainLossPercent),
	}, nil
}

// DiversificationScore scores the sector spread of the holdings from 0 to 10
func DiversificationScore(valued []domain.ValuedHolding) decimal.Decimal {
	sectors := make(map[string]struct{})
	for _, h := range valued {
		sectors[h.Sector] = struct{}{}
	}

	score := decimal.NewFromInt(int64(len(sectors))).
		Div(decimal.NewFromInt(IdealSectorCount)).
		Mul(decimal.NewFromInt(MaxDiversificationScore)).
		Round(1)

	return decimal.Min(score, decimal.NewFromInt(MaxDiversificationScore))
}

// RiskLevelFor maps a total gain percentage to a risk level
// The boundary is strict: exactly 15 is still Low
func RiskLevelFor(totalGainLossPercent decimal.Decimal) domain.RiskLevel {
	if totalGainLossPercent.GreaterThan(decimal.NewFromInt(ModerateRiskThreshold)) {
		return domain.RiskLevelModerate
	}
	return domain.RiskLevelLow
}

func performerOf(h domain.ValuedHolding) domain.Performer {
	return domain.Performer{
		Symbol:      h.Symbol,
		Name:        h.Name,
		GainPercent: h.GainLossPercent,
	}
}
