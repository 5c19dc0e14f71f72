package dataset

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/simaogato/portfolio-analytics-backend/internal/domain"
)

const dateLayout = "2006-01-02"

// fileDataset mirrors the portfolio_data.json layout. YAML is a superset of
// JSON, so the same decoder reads both formats.
type fileDataset struct {
	Metadata struct {
		ImportedAt string `yaml:"imported_at"`
		SourceFile string `yaml:"source_file"`
		Version    string `yaml:"version"`
	} `yaml:"metadata"`
	Holdings []fileHolding `yaml:"holdings"`
	History  []filePoint   `yaml:"historical_performance"`
}

// Numeric fields are decoded as raw scalars and parsed with decimal to keep
// them exact
type fileHolding struct {
	Symbol       string `yaml:"symbol"`
	Name         string `yaml:"name"`
	Quantity     int64  `yaml:"quantity"`
	AvgPrice     string `yaml:"avgPrice"`
	CurrentPrice string `yaml:"currentPrice"`
	Sector       string `yaml:"sector"`
	MarketCap    string `yaml:"marketCap"`
	Exchange     string `yaml:"exchange"`
}

type filePoint struct {
	Date      string `yaml:"date"`
	Portfolio string `yaml:"portfolio"`
	Nifty50   string `yaml:"nifty50"`
	Gold      string `yaml:"gold"`
}

// FileSource loads a dataset from a YAML or JSON file
type FileSource struct {
	path string
}

var _ domain.DatasetSource = (*FileSource)(nil)

// NewFileSource creates a new FileSource for the given path
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Load reads and parses the dataset file
// Returns domain.ErrDatasetNotFound if the file does not exist
func (s *FileSource) Load(ctx context.Context) (*domain.Dataset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("dataset file %s: %w", s.path, domain.ErrDatasetNotFound)
		}
		return nil, fmt.Errorf("failed to read dataset file: %w", err)
	}

	return Parse(raw, s.path)
}

// Parse decodes dataset file contents. source is recorded in the metadata
// when the file does not name its own source.
func Parse(raw []byte, source string) (*domain.Dataset, error) {
	var file fileDataset
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("failed to parse dataset: %w", err)
	}

	dataset := &domain.Dataset{
		Metadata: domain.DatasetMetadata{
			Source:  source,
			Version: file.Metadata.Version,
		},
		Holdings: make([]domain.Holding, 0, len(file.Holdings)),
		Timeline: make([]domain.TimeSeriesPoint, 0, len(file.History)),
	}
	if file.Metadata.SourceFile != "" {
		dataset.Metadata.Source = file.Metadata.SourceFile
	}
	if file.Metadata.ImportedAt != "" {
		importedAt, err := parseTimestamp(file.Metadata.ImportedAt)
		if err != nil {
			return nil, fmt.Errorf("invalid metadata.imported_at: %w", err)
		}
		dataset.Metadata.ImportedAt = importedAt
	}

	for i, h := range file.Holdings {
		holding, err := h.toDomain()
		if err != nil {
			return nil, fmt.Errorf("holding %d: %w", i, err)
		}
		dataset.Holdings = append(dataset.Holdings, holding)
	}

	for i, p := range file.History {
		point, err := p.toDomain()
		if err != nil {
			return nil, fmt.Errorf("historical_performance %d: %w", i, err)
		}
		dataset.Timeline = append(dataset.Timeline, point)
	}

	return dataset, nil
}

func (h fileHolding) toDomain() (domain.Holding, error) {
	avgPrice, err := parseDecimal(h.AvgPrice)
	if err != nil {
		return domain.Holding{}, fmt.Errorf("invalid avgPrice: %w", err)
	}

	currentPrice, err := parseDecimal(h.CurrentPrice)
	if err != nil {
		return domain.Holding{}, fmt.Errorf("invalid currentPrice: %w", err)
	}

	marketCap := domain.MarketCapLarge
	if h.MarketCap != "" {
		marketCap, err = domain.ParseMarketCap(h.MarketCap)
		if err != nil {
			return domain.Holding{}, err
		}
	}

	return domain.Holding{
		Symbol:       h.Symbol,
		Name:         h.Name,
		Quantity:     h.Quantity,
		AvgPrice:     avgPrice,
		CurrentPrice: currentPrice,
		Sector:       h.Sector,
		MarketCap:    marketCap,
		Exchange:     h.Exchange,
	}, nil
}

func (p filePoint) toDomain() (domain.TimeSeriesPoint, error) {
	date, err := time.Parse(dateLayout, p.Date)
	if err != nil {
		return domain.TimeSeriesPoint{}, fmt.Errorf("invalid date: %w", err)
	}

	portfolio, err := parseDecimal(p.Portfolio)
	if err != nil {
		return domain.TimeSeriesPoint{}, fmt.Errorf("invalid portfolio value: %w", err)
	}

	nifty, err := parseDecimal(p.Nifty50)
	if err != nil {
		return domain.TimeSeriesPoint{}, fmt.Errorf("invalid nifty50 value: %w", err)
	}

	gold, err := parseDecimal(p.Gold)
	if err != nil {
		return domain.TimeSeriesPoint{}, fmt.Errorf("invalid gold value: %w", err)
	}

	return domain.TimeSeriesPoint{
		Date:                    date,
		PortfolioValue:          portfolio,
		BenchmarkIndexValue:     nifty,
		BenchmarkCommodityValue: gold,
	}, nil
}

// parseDecimal treats a missing value as zero, like the original importer
func parseDecimal(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(s)
}

// parseTimestamp accepts RFC 3339 and the naive ISO form written by the importer
func parseTimestamp(s string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05.999999999", dateLayout} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised timestamp %q", s)
}
