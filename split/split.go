// Package split provides dataset partitioning strategies for cross-validation.
//
// Every strategy implements the Splitter interface: given the number of
// records it produces a sequence of folds, each pairing a train index set
// with a disjoint test index set. Strategies that need per-record labels
// (stratified and grouped k-fold) carry them as configuration.
//
// All shuffling is driven by an explicit seed through a PCG source, so a
// splitter with the same configuration always produces the same folds.
package split

import (
	"math/rand/v2"

	"github.com/YuminosukeSato/crossval/pkg/errors"
)

// Fold represents a single fold in cross-validation: the record indices to
// train on and the disjoint record indices to evaluate on.
type Fold struct {
	TrainIndices []int
	TestIndices  []int
}

// Splitter defines the interface for cross-validation splitters.
type Splitter interface {
	// Split generates the train/test indices for each fold over n records.
	Split(n int) ([]Fold, error)

	// NSplits returns the configured number of folds, or 0 when the number
	// depends on the dataset size (leave-one-out, leave-p-out).
	NSplits() int
}

// newRand returns a deterministic generator for a non-zero seed, and a
// generator seeded from the process-level source otherwise.
func newRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return rand.New(rand.NewPCG(seed, seed))
}

// shuffledIndices returns the indices 0..n-1, shuffled when requested.
func shuffledIndices(n int, shuffle bool, seed uint64) []int {
	indices := make([]int, n)
	for i := range indices {
		indices[i] = i
	}
	if shuffle {
		r := newRand(seed)
		r.Shuffle(len(indices), func(i, j int) {
			indices[i], indices[j] = indices[j], indices[i]
		})
	}
	return indices
}

// complement returns all indices in [0, n) not present in test, in ascending
// order.
func complement(n int, test []int) []int {
	inTest := make([]bool, n)
	for _, idx := range test {
		inTest[idx] = true
	}
	train := make([]int, 0, n-len(test))
	for i := 0; i < n; i++ {
		if !inTest[i] {
			train = append(train, i)
		}
	}
	return train
}

// validateSize checks the universal preconditions shared by all splitters.
func validateSize(op string, n int) error {
	if n < 2 {
		return errors.NewInsufficientDataError(op, "at least 2 records are required to split", 2, n)
	}
	return nil
}
