package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestPercentOf(t *testing.T) {
	tests := []struct {
		name  string
		part  string
		whole string
		want  string
	}{
		{name: "Simple share", part: "25", whole: "100", want: "25.00"},
		{name: "Rounds half away from zero", part: "1", whole: "800", want: "0.13"},
		{name: "Negative part", part: "-1", whole: "800", want: "-0.13"},
		{name: "Zero whole yields zero", part: "50", whole: "0", want: "0.00"},
		{name: "Thirds", part: "1", whole: "3", want: "33.33"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PercentOf(decimal.RequireFromString(tt.part), decimal.RequireFromString(tt.whole))
			assert.Equal(t, tt.want, got.StringFixed(2))
		})
	}
}

func TestPercentChange(t *testing.T) {
	assert.Equal(t, "10.00", PercentChange(decimal.NewFromInt(100), decimal.NewFromInt(110)).StringFixed(2))
	assert.Equal(t, "-50.00", PercentChange(decimal.NewFromInt(100), decimal.NewFromInt(50)).StringFixed(2))
	assert.True(t, PercentChange(decimal.Zero, decimal.NewFromInt(50)).IsZero(), "zero base must yield 0")
}

func TestRound2(t *testing.T) {
	assert.Equal(t, "2.68", Round2(decimal.RequireFromString("2.675")).StringFixed(2))
	assert.Equal(t, "-2.68", Round2(decimal.RequireFromString("-2.675")).StringFixed(2))
}

func TestInsufficientDataError_Is(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", &InsufficientDataError{Required: 4, Got: 3})

	assert.ErrorIs(t, err, ErrInsufficientData)
	assert.NotErrorIs(t, err, ErrEmptyPortfolio)

	var target *InsufficientDataError
	assert.True(t, errors.As(err, &target))
	assert.Equal(t, 4, target.Required)
	assert.Equal(t, 3, target.Got)
	assert.Contains(t, err.Error(), "need at least 4 points, got 3")
}
