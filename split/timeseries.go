package split

import (
	"github.com/YuminosukeSato/crossval/pkg/errors"
)

// TimeSeriesSplit implements forward-chaining cross-validation for ordered
// data. Records are assumed to be in chronological order; the dataset is cut
// into NSplits+1 contiguous chunks, and fold i trains on chunks 1..i and
// tests on chunk i+1. Training records always precede test records, so no
// future observation leaks into a fit.
type TimeSeriesSplit struct {
	Splits int
}

// NewTimeSeriesSplit creates a forward-chaining splitter with the given
// number of folds.
func NewTimeSeriesSplit(nSplits int) *TimeSeriesSplit {
	return &TimeSeriesSplit{Splits: nSplits}
}

// NSplits returns the number of splits.
func (ts *TimeSeriesSplit) NSplits() int { return ts.Splits }

// Split generates expanding-window train/test indices. No shuffling is ever
// applied.
func (ts *TimeSeriesSplit) Split(n int) ([]Fold, error) {
	const op = "TimeSeriesSplit.Split"

	if ts.Splits < 1 {
		return nil, errors.NewParameterError(op, "n_splits", "must be at least 1", ts.Splits)
	}
	if err := validateSize(op, n); err != nil {
		return nil, err
	}

	chunks := ts.Splits + 1
	if n < chunks {
		return nil, errors.NewInsufficientDataError(op,
			"need at least one record per chunk", chunks, n)
	}

	// Chunk boundaries: the first n%chunks chunks carry one extra record.
	boundaries := make([]int, chunks+1)
	chunkSize := n / chunks
	remainder := n % chunks
	for i := 0; i < chunks; i++ {
		size := chunkSize
		if i < remainder {
			size++
		}
		boundaries[i+1] = boundaries[i] + size
	}

	folds := make([]Fold, ts.Splits)
	for i := 0; i < ts.Splits; i++ {
		trainEnd := boundaries[i+1]
		testEnd := boundaries[i+2]

		train := make([]int, trainEnd)
		for j := range train {
			train[j] = j
		}
		test := make([]int, testEnd-trainEnd)
		for j := range test {
			test[j] = trainEnd + j
		}

		folds[i] = Fold{TrainIndices: train, TestIndices: test}
	}

	return folds, nil
}
