package split

import (
	"github.com/YuminosukeSato/crossval/pkg/errors"
)

// KFold implements k-fold cross-validation: indices are dealt into k folds
// whose sizes differ by at most one, and each fold in turn serves as the
// test set while the remaining folds train.
type KFold struct {
	Splits  int
	Shuffle bool
	Seed    uint64
}

// NewKFold creates a new k-fold splitter.
func NewKFold(nSplits int, shuffle bool, seed uint64) *KFold {
	return &KFold{Splits: nSplits, Shuffle: shuffle, Seed: seed}
}

// NSplits returns the number of splits.
func (kf *KFold) NSplits() int { return kf.Splits }

// Split generates train/test indices for each fold.
func (kf *KFold) Split(n int) ([]Fold, error) {
	const op = "KFold.Split"

	if kf.Splits < 2 {
		return nil, errors.NewParameterError(op, "n_splits", "must be at least 2", kf.Splits)
	}
	if kf.Splits > n {
		return nil, errors.NewParameterError(op, "n_splits", "must not exceed the number of records", kf.Splits)
	}

	indices := shuffledIndices(n, kf.Shuffle, kf.Seed)

	folds := make([]Fold, kf.Splits)
	foldSize := n / kf.Splits
	remainder := n % kf.Splits

	currentIdx := 0
	for i := 0; i < kf.Splits; i++ {
		testSize := foldSize
		if i < remainder {
			testSize++
		}

		test := make([]int, testSize)
		copy(test, indices[currentIdx:currentIdx+testSize])

		folds[i] = Fold{
			TrainIndices: complement(n, test),
			TestIndices:  test,
		}

		currentIdx += testSize
	}

	return folds, nil
}
