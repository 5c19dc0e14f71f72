package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInsufficientData is returned when a time series is shorter than the window it is asked for
	ErrInsufficientData = errors.New("insufficient data")

	// ErrEmptyPortfolio is returned when there are no holdings to summarize
	ErrEmptyPortfolio = errors.New("portfolio has no holdings")

	// ErrUnorderedTimeline is returned when time series dates are not strictly increasing
	ErrUnorderedTimeline = errors.New("timeline must be in chronological order")

	// ErrDatasetNotFound is returned by a DatasetSource that has nothing to load
	ErrDatasetNotFound = errors.New("dataset not found")
)

// InsufficientDataError carries the required and actual series length.
// It matches ErrInsufficientData with errors.Is.
type InsufficientDataError struct {
	Required int
	Got      int
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("insufficient data: need at least %d points, got %d", e.Required, e.Got)
}

// Is reports whether target is ErrInsufficientData
func (e *InsufficientDataError) Is(target error) bool {
	return target == ErrInsufficientData
}
