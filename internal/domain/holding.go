package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// MarketCap represents the market capitalisation bucket of a security
type MarketCap string

const (
	MarketCapLarge MarketCap = "Large"
	MarketCapMid   MarketCap = "Mid"
	MarketCapSmall MarketCap = "Small"
)

// DefaultExchange is used for holdings that do not name an exchange
const DefaultExchange = "NSE"

// UnknownSector is the sector assigned by loaders when the source leaves it blank
const UnknownSector = "Unknown"

// ParseMarketCap converts a market cap label into a MarketCap.
// Accepts "Large", "Mid", "Small" in any case, optionally suffixed with " Cap"
// as found in the spreadsheet exports ("Mid Cap" -> Mid).
func ParseMarketCap(s string) (MarketCap, error) {
	label := strings.TrimSpace(s)
	if len(label) > 4 && strings.EqualFold(label[len(label)-4:], " cap") {
		label = strings.TrimSpace(label[:len(label)-4])
	}

	switch strings.ToLower(label) {
	case "large":
		return MarketCapLarge, nil
	case "mid":
		return MarketCapMid, nil
	case "small":
		return MarketCapSmall, nil
	default:
		return "", fmt.Errorf("invalid market cap %q: must be Large, Mid or Small", s)
	}
}

// Valid reports whether m is one of the known buckets
func (m MarketCap) Valid() bool {
	return m == MarketCapLarge || m == MarketCapMid || m == MarketCapSmall
}

// Holding represents a position in one security.
// Holdings are loaded once at start-up and never mutated afterwards.
type Holding struct {
	Symbol       string // Natural key, unique across the dataset
	Name         string
	Quantity     int64
	AvgPrice     decimal.Decimal // Average cost per unit
	CurrentPrice decimal.Decimal
	Sector       string
	MarketCap    MarketCap
	Exchange     string
}

// Validate ensures the holding adheres to domain rules
// Returns an error if validation fails
func (h *Holding) Validate() error {
	if strings.TrimSpace(h.Symbol) == "" {
		return errors.New("holding symbol cannot be empty")
	}

	if h.Quantity < 0 {
		return fmt.Errorf("holding %s: quantity must not be negative", h.Symbol)
	}

	if h.AvgPrice.IsNegative() {
		return fmt.Errorf("holding %s: average price must not be negative", h.Symbol)
	}

	if h.CurrentPrice.IsNegative() {
		return fmt.Errorf("holding %s: current price must not be negative", h.Symbol)
	}

	if !h.MarketCap.Valid() {
		return fmt.Errorf("holding %s: invalid market cap %q", h.Symbol, h.MarketCap)
	}

	return nil
}

// ValidateHoldings validates every holding and ensures symbols are unique
func ValidateHoldings(holdings []Holding) error {
	seen := make(map[string]struct{}, len(holdings))
	for i := range holdings {
		if err := holdings[i].Validate(); err != nil {
			return err
		}

		if _, dup := seen[holdings[i].Symbol]; dup {
			return fmt.Errorf("duplicate holding symbol %s", holdings[i].Symbol)
		}
		seen[holdings[i].Symbol] = struct{}{}
	}

	return nil
}

// ValuedHolding is a Holding plus the figures derived from it.
// Every derived figure is rounded to 2 decimal places.
type ValuedHolding struct {
	Holding
	InvestedAmount  decimal.Decimal // Quantity * AvgPrice
	MarketValue     decimal.Decimal // Quantity * CurrentPrice
	GainLoss        decimal.Decimal // MarketValue - InvestedAmount
	GainLossPercent decimal.Decimal // GainLoss / InvestedAmount * 100, 0 when nothing invested
}
