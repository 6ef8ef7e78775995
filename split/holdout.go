package split

import (
	"math"

	"github.com/YuminosukeSato/crossval/pkg/errors"
)

// HoldoutSplit performs a single shuffled train/test split. Ratio is the
// fraction of records assigned to the train subset (e.g. 0.7 for a 70/30
// split).
type HoldoutSplit struct {
	Ratio float64
	Seed  uint64
}

// NewHoldoutSplit creates a holdout splitter with the given train ratio.
func NewHoldoutSplit(ratio float64, seed uint64) *HoldoutSplit {
	return &HoldoutSplit{Ratio: ratio, Seed: seed}
}

// NSplits returns 1; holdout produces a single fold.
func (h *HoldoutSplit) NSplits() int { return 1 }

// Split shuffles the indices and cuts them at the configured ratio.
func (h *HoldoutSplit) Split(n int) ([]Fold, error) {
	const op = "HoldoutSplit.Split"

	if h.Ratio <= 0 || h.Ratio >= 1 {
		return nil, errors.NewParameterError(op, "ratio", "must be in (0, 1)", h.Ratio)
	}
	if err := validateSize(op, n); err != nil {
		return nil, err
	}

	indices := shuffledIndices(n, true, h.Seed)

	cut := int(math.Round(h.Ratio * float64(n)))
	// Both subsets must be non-empty regardless of rounding.
	if cut < 1 {
		cut = 1
	}
	if cut > n-1 {
		cut = n - 1
	}

	train := make([]int, cut)
	copy(train, indices[:cut])
	test := make([]int, n-cut)
	copy(test, indices[cut:])

	return []Fold{{TrainIndices: train, TestIndices: test}}, nil
}
