package seeder

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/simaogato/portfolio-analytics-backend/internal/domain"
)

// Seeder resolves the dataset the analytics run on
type Seeder struct {
	source domain.DatasetSource
}

// NewSeeder creates a new Seeder instance
// A nil source means the built-in reference dataset is always used
func NewSeeder(source domain.DatasetSource) *Seeder {
	return &Seeder{
		source: source,
	}
}

// Seed loads the dataset from the configured source
// If the source has nothing to load, it falls back to the reference dataset.
// Loaded records are normalised (blank exchange and sector) and validated before being returned.
func (s *Seeder) Seed(ctx context.Context) (*domain.Dataset, error) {
	if s.source == nil {
		return ReferenceDataset(), nil
	}

	dataset, err := s.source.Load(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrDatasetNotFound) {
			// Source missing, use fallback data
			return ReferenceDataset(), nil
		}
		return nil, fmt.Errorf("failed to load dataset: %w", err)
	}

	normalize(dataset)

	if err := dataset.Validate(); err != nil {
		return nil, fmt.Errorf("invalid dataset from %s: %w", dataset.Metadata.Source, err)
	}

	return dataset, nil
}

// normalize fills in the defaults a loader may leave blank
func normalize(dataset *domain.Dataset) {
	for i := range dataset.Holdings {
		h := &dataset.Holdings[i]
		h.Symbol = strings.TrimSpace(h.Symbol)
		h.Name = strings.TrimSpace(h.Name)
		h.Sector = strings.TrimSpace(h.Sector)
		if h.Sector == "" {
			h.Sector = domain.UnknownSector
		}
		if strings.TrimSpace(h.Exchange) == "" {
			h.Exchange = domain.DefaultExchange
		}
	}
}
