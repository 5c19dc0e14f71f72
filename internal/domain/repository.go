package domain

import (
	"context"
	"time"
)

// HoldingRepository defines read access to the holdings dataset
type HoldingRepository interface {
	// List retrieves all holdings in dataset order
	List(ctx context.Context) ([]Holding, error)
}

// PerformanceRepository defines read access to the monthly performance timeline
type PerformanceRepository interface {
	// Timeline retrieves all points in chronological order
	Timeline(ctx context.Context) ([]TimeSeriesPoint, error)
}

// DatasetMetadata describes where a dataset came from
type DatasetMetadata struct {
	Source     string
	ImportedAt time.Time
	Version    string
}

// Dataset is the complete, static input of the analytics: holdings plus timeline
type Dataset struct {
	Metadata DatasetMetadata
	Holdings []Holding
	Timeline []TimeSeriesPoint
}

// Validate ensures the dataset adheres to domain rules
// Holdings must be valid with unique symbols; timeline dates must be strictly increasing
func (d *Dataset) Validate() error {
	if err := ValidateHoldings(d.Holdings); err != nil {
		return err
	}

	for i := 1; i < len(d.Timeline); i++ {
		if !d.Timeline[i].Date.After(d.Timeline[i-1].Date) {
			return ErrUnorderedTimeline
		}
	}

	return nil
}

// DatasetSource loads a Dataset once at start-up
type DatasetSource interface {
	// Load reads the whole dataset. Returns ErrDatasetNotFound when the source is absent.
	Load(ctx context.Context) (*Dataset, error)
}
