package memory

import (
	"context"
	"fmt"

	"github.com/simaogato/portfolio-analytics-backend/internal/domain"
)

// Store is an immutable in-memory snapshot of a dataset.
// It implements domain.HoldingRepository and domain.PerformanceRepository.
// Nothing writes to a Store after NewStore returns, so it is safe for
// concurrent readers without locking.
type Store struct {
	metadata domain.DatasetMetadata
	holdings []domain.Holding
	timeline []domain.TimeSeriesPoint
}

var (
	_ domain.HoldingRepository     = (*Store)(nil)
	_ domain.PerformanceRepository = (*Store)(nil)
)

// NewStore validates the dataset and takes a private copy of it
func NewStore(dataset *domain.Dataset) (*Store, error) {
	if dataset == nil {
		return nil, fmt.Errorf("dataset cannot be nil")
	}

	if err := dataset.Validate(); err != nil {
		return nil, fmt.Errorf("invalid dataset: %w", err)
	}

	return &Store{
		metadata: dataset.Metadata,
		holdings: cloneHoldings(dataset.Holdings),
		timeline: cloneTimeline(dataset.Timeline),
	}, nil
}

// List returns a copy of all holdings in dataset order
func (s *Store) List(ctx context.Context) ([]domain.Holding, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return cloneHoldings(s.holdings), nil
}

// Timeline returns a copy of the performance timeline
func (s *Store) Timeline(ctx context.Context) ([]domain.TimeSeriesPoint, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return cloneTimeline(s.timeline), nil
}

// Metadata describes the dataset the store was built from
func (s *Store) Metadata() domain.DatasetMetadata {
	return s.metadata
}

// HoldingsCount returns the number of holdings in the snapshot
func (s *Store) HoldingsCount() int {
	return len(s.holdings)
}

// TimelineLength returns the number of points in the snapshot timeline
func (s *Store) TimelineLength() int {
	return len(s.timeline)
}

// decimal.Decimal and time.Time are immutable values, so copying the slice is enough
func cloneHoldings(in []domain.Holding) []domain.Holding {
	out := make([]domain.Holding, len(in))
	copy(out, in)
	return out
}

func cloneTimeline(in []domain.TimeSeriesPoint) []domain.TimeSeriesPoint {
	out := make([]domain.TimeSeriesPoint, len(in))
	copy(out, in)
	return out
}
