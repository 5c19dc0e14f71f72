package presenter

import (
	"github.com/shopspring/decimal"

	"github.com/simaogato/portfolio-analytics-backend/internal/domain"
)

// DateLayout is the wire format of timeline dates
const DateLayout = "2006-01-02"

// HoldingView is the JSON shape of one valued holding
type HoldingView struct {
	Symbol          string  `json:"symbol"`
	Name            string  `json:"name"`
	Quantity        int64   `json:"quantity"`
	AvgPrice        float64 `json:"avgPrice"`
	CurrentPrice    float64 `json:"currentPrice"`
	Sector          string  `json:"sector"`
	MarketCap       string  `json:"marketCap"`
	Exchange        string  `json:"exchange"`
	Invested        float64 `json:"invested"`
	Value           float64 `json:"value"`
	GainLoss        float64 `json:"gainLoss"`
	GainLossPercent float64 `json:"gainLossPercent"`
}

// AllocationItemView is one group of an allocation
type AllocationItemView struct {
	Value      float64 `json:"value"`
	Percentage float64 `json:"percentage"`
	Count      int     `json:"count"`
}

// AllocationView renders both groupings as objects keyed by group name
type AllocationView struct {
	BySector    map[string]AllocationItemView `json:"bySector"`
	ByMarketCap map[string]AllocationItemView `json:"byMarketCap"`
}

// TimelinePointView is one dated observation of the timeline
type TimelinePointView struct {
	Date      string  `json:"date"`
	Portfolio float64 `json:"portfolio"`
	Nifty50   float64 `json:"nifty50"`
	Gold      float64 `json:"gold"`
}

// ReturnsView holds the trailing returns of one series
type ReturnsView struct {
	OneMonth    float64 `json:"1month"`
	ThreeMonths float64 `json:"3months"`
	OneYear     float64 `json:"1year"`
}

// ReturnsSetView groups the returns of the portfolio and both benchmarks
type ReturnsSetView struct {
	Portfolio ReturnsView `json:"portfolio"`
	Nifty50   ReturnsView `json:"nifty50"`
	Gold      ReturnsView `json:"gold"`
}

// PerformanceView is the JSON shape of the performance view
type PerformanceView struct {
	Timeline []TimelinePointView `json:"timeline"`
	Returns  ReturnsSetView      `json:"returns"`
}

// PerformerView names the best or worst holding
type PerformerView struct {
	Symbol      string  `json:"symbol"`
	Name        string  `json:"name"`
	GainPercent float64 `json:"gainPercent"`
}

// SummaryView is the JSON shape of the portfolio summary
type SummaryView struct {
	TotalValue           float64       `json:"totalValue"`
	TotalInvested        float64       `json:"totalInvested"`
	TotalGainLoss        float64       `json:"totalGainLoss"`
	TotalGainLossPercent float64       `json:"totalGainLossPercent"`
	HoldingsCount        int           `json:"holdingsCount"`
	TopPerformer         PerformerView `json:"topPerformer"`
	WorstPerformer       PerformerView `json:"worstPerformer"`
	DiversificationScore float64       `json:"diversificationScore"`
	RiskLevel            string        `json:"riskLevel"`
}

// Holdings converts valued holdings, keeping their order
func Holdings(valued []domain.ValuedHolding) []HoldingView {
	views := make([]HoldingView, 0, len(valued))
	for _, v := range valued {
		views = append(views, HoldingView{
			Symbol:          v.Symbol,
			Name:            v.Name,
			Quantity:        v.Quantity,
			AvgPrice:        v.AvgPrice.InexactFloat64(),
			CurrentPrice:    v.CurrentPrice.InexactFloat64(),
			Sector:          v.Sector,
			MarketCap:       string(v.MarketCap),
			Exchange:        v.Exchange,
			Invested:        number(v.InvestedAmount),
			Value:           number(v.MarketValue),
			GainLoss:        number(v.GainLoss),
			GainLossPercent: number(v.GainLossPercent),
		})
	}
	return views
}

// Allocation converts both groupings into objects keyed by group name
func Allocation(a *domain.Allocation) AllocationView {
	return AllocationView{
		BySector:    buckets(a.BySector),
		ByMarketCap: buckets(a.ByMarketCap),
	}
}

func buckets(in []domain.AllocationBucket) map[string]AllocationItemView {
	out := make(map[string]AllocationItemView, len(in))
	for _, b := range in {
		out[b.GroupKey] = AllocationItemView{
			Value:      number(b.TotalValue),
			Percentage: number(b.PercentageOfPortfolio),
			Count:      b.MemberCount,
		}
	}
	return out
}

// Performance converts the timeline and the trailing returns
func Performance(p *domain.Performance) PerformanceView {
	timeline := make([]TimelinePointView, 0, len(p.Timeline))
	for _, pt := range p.Timeline {
		timeline = append(timeline, TimelinePointView{
			Date:      pt.Date.Format(DateLayout),
			Portfolio: pt.PortfolioValue.InexactFloat64(),
			Nifty50:   pt.BenchmarkIndexValue.InexactFloat64(),
			Gold:      pt.BenchmarkCommodityValue.InexactFloat64(),
		})
	}

	return PerformanceView{
		Timeline: timeline,
		Returns: ReturnsSetView{
			Portfolio: returns(p.Portfolio),
			Nifty50:   returns(p.BenchmarkIndex),
			Gold:      returns(p.BenchmarkCommodity),
		},
	}
}

func returns(r domain.ReturnMetrics) ReturnsView {
	return ReturnsView{
		OneMonth:    number(r.OneMonth),
		ThreeMonths: number(r.ThreeMonths),
		OneYear:     number(r.OneYear),
	}
}

// Summary converts the portfolio summary
func Summary(s *domain.PortfolioSummary) SummaryView {
	return SummaryView{
		TotalValue:           number(s.TotalValue),
		TotalInvested:        number(s.TotalInvested),
		TotalGainLoss:        number(s.TotalGainLoss),
		TotalGainLossPercent: number(s.TotalGainLossPercent),
		HoldingsCount:        s.HoldingsCount,
		TopPerformer:         performer(s.TopPerformer),
		WorstPerformer:       performer(s.WorstPerformer),
		DiversificationScore: number(s.DiversificationScore),
		RiskLevel:            string(s.RiskLevel),
	}
}

func performer(p domain.Performer) PerformerView {
	return PerformerView{Symbol: p.Symbol, Name: p.Name, GainPercent: number(p.GainPercent)}
}

// number renders a derived figure as a JSON number rounded to 2 decimal places.
// Input prices and timeline values are passed through unrounded.
func number(d decimal.Decimal) float64 {
	return domain.Round2(d).InexactFloat64()
}
