package seeder

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/simaogato/portfolio-analytics-backend/internal/domain"
)

// ReferenceSource names the built-in dataset in DatasetMetadata
const ReferenceSource = "builtin"

// referenceHolding is the compact form of a built-in holding
type referenceHolding struct {
	symbol   string
	name     string
	quantity int64
	avgPrice string
	curPrice string
	sector   string
}

// All reference holdings are Large cap NSE listings
var referenceHoldings = []referenceHolding{
	{"RELIANCE", "Reliance Industries Ltd", 50, "2450", "2680.5", "Energy"},
	{"INFY", "Infosys Limited", 100, "1800", "2010.75", "Technology"},
	{"TCS", "Tata Consultancy Services", 75, "3200", "3450.25", "Technology"},
	{"HDFCBANK", "HDFC Bank Limited", 80, "1650", "1580.3", "Banking"},
	{"ICICIBANK", "ICICI Bank Limited", 60, "1100", "1235.8", "Banking"},
	{"BHARTIARTL", "Bharti Airtel Limited", 120, "850", "920.45", "Telecommunications"},
	{"ITC", "ITC Limited", 200, "420", "465.2", "Consumer Goods"},
	{"BAJFINANCE", "Bajaj Finance Limited", 25, "6800", "7150.6", "Financial Services"},
	{"ASIANPAINT", "Asian Paints Limited", 40, "3100", "2890.75", "Consumer Discretionary"},
	{"MARUTI", "Maruti Suzuki India", 30, "9500", "10250.3", "Automotive"},
	{"WIPRO", "Wipro Limited", 150, "450", "485.6", "Technology"},
	{"TATAMOTORS", "Tata Motors Limited", 100, "650", "720.85", "Automotive"},
	{"TECHM", "Tech Mahindra Limited", 80, "1200", "1145.25", "Technology"},
	{"AXISBANK", "Axis Bank Limited", 90, "980", "1055.4", "Banking"},
	{"SUNPHARMA", "Sun Pharmaceutical", 60, "1150", "1245.3", "Healthcare"},
}

// Monthly samples for 2024: portfolio value, NIFTY 50, gold (per 10g)
var referenceTimeline = [][3]int64{
	{1500000, 21000, 62000},
	{1520000, 21300, 61800},
	{1540000, 22100, 64500},
	{1580000, 22800, 66200},
	{1620000, 23200, 68000},
	{1650000, 23500, 68500},
	{1680000, 24100, 69800},
	{1720000, 24800, 70200},
	{1750000, 25200, 71500},
	{1780000, 25600, 72800},
	{1820000, 26100, 74000},
	{1850000, 26500, 75200},
}

// ReferenceHoldings returns a fresh copy of the built-in holdings
func ReferenceHoldings() []domain.Holding {
	holdings := make([]domain.Holding, 0, len(referenceHoldings))
	for _, h := range referenceHoldings {
		holdings = append(holdings, domain.Holding{
			Symbol:       h.symbol,
			Name:         h.name,
			Quantity:     h.quantity,
			AvgPrice:     decimal.RequireFromString(h.avgPrice),
			CurrentPrice: decimal.RequireFromString(h.curPrice),
			Sector:       h.sector,
			MarketCap:    domain.MarketCapLarge,
			Exchange:     domain.DefaultExchange,
		})
	}
	return holdings
}

// ReferenceTimeline returns a fresh copy of the built-in monthly timeline,
// one point on the first day of each month of 2024
func ReferenceTimeline() []domain.TimeSeriesPoint {
	timeline := make([]domain.TimeSeriesPoint, 0, len(referenceTimeline))
	for i, row := range referenceTimeline {
		timeline = append(timeline, domain.TimeSeriesPoint{
			Date:                    time.Date(2024, time.Month(i+1), 1, 0, 0, 0, 0, time.UTC),
			PortfolioValue:          decimal.NewFromInt(row[0]),
			BenchmarkIndexValue:     decimal.NewFromInt(row[1]),
			BenchmarkCommodityValue: decimal.NewFromInt(row[2]),
		})
	}
	return timeline
}

// ReferenceDataset returns the complete built-in dataset
func ReferenceDataset() *domain.Dataset {
	return &domain.Dataset{
		Metadata: domain.DatasetMetadata{
			Source:     ReferenceSource,
			ImportedAt: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
			Version:    "1.0",
		},
		Holdings: ReferenceHoldings(),
		Timeline: ReferenceTimeline(),
	}
}
