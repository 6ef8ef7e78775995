package split

import (
	"gonum.org/v1/gonum/stat/combin"

	"github.com/YuminosukeSato/crossval/pkg/errors"
)

// LeaveOneOut implements leave-one-out cross-validation: k equals the number
// of records and every test set contains exactly one record.
type LeaveOneOut struct{}

// NewLeaveOneOut creates a leave-one-out splitter.
func NewLeaveOneOut() *LeaveOneOut { return &LeaveOneOut{} }

// NSplits returns 0; the number of folds equals the dataset size.
func (l *LeaveOneOut) NSplits() int { return 0 }

// Split generates one fold per record.
func (l *LeaveOneOut) Split(n int) ([]Fold, error) {
	const op = "LeaveOneOut.Split"

	if err := validateSize(op, n); err != nil {
		return nil, err
	}

	folds := make([]Fold, n)
	for i := 0; i < n; i++ {
		folds[i] = Fold{
			TrainIndices: complement(n, []int{i}),
			TestIndices:  []int{i},
		}
	}
	return folds, nil
}

// DefaultMaxFolds caps the enumeration size of exhaustive splitters. C(n, p)
// grows combinatorially, so the cap is enforced before any fold is built.
const DefaultMaxFolds = 100000

// LeavePOut implements exhaustive leave-p-out cross-validation: every
// combination of p records forms one test set. MaxFolds bounds the
// enumeration; zero means DefaultMaxFolds.
type LeavePOut struct {
	P        int
	MaxFolds int
}

// NewLeavePOut creates a leave-p-out splitter with the default enumeration cap.
func NewLeavePOut(p int) *LeavePOut { return &LeavePOut{P: p} }

// NSplits returns 0; the number of folds is C(n, p).
func (l *LeavePOut) NSplits() int { return 0 }

// Split enumerates every size-p test set. It fails before enumeration when
// C(n, p) exceeds the configured cap.
func (l *LeavePOut) Split(n int) ([]Fold, error) {
	const op = "LeavePOut.Split"

	if l.P < 1 {
		return nil, errors.NewParameterError(op, "p", "must be at least 1", l.P)
	}
	if l.P >= n {
		return nil, errors.NewParameterError(op, "p", "must be smaller than the number of records", l.P)
	}

	maxFolds := l.MaxFolds
	if maxFolds == 0 {
		maxFolds = DefaultMaxFolds
	}

	total, within := cappedBinomial(n, l.P, maxFolds)
	if !within {
		return nil, errors.NewResourceLimitError(op, maxFolds, total)
	}

	folds := make([]Fold, 0, total)
	for _, test := range combin.Combinations(n, l.P) {
		folds = append(folds, Fold{
			TrainIndices: complement(n, test),
			TestIndices:  test,
		})
	}
	return folds, nil
}

// cappedBinomial computes C(n, p) but stops as soon as the running value
// exceeds limit, avoiding overflow on large inputs. The second return value
// reports whether the full count is within the limit; when false, the first
// return value is the last (exceeding) running count.
func cappedBinomial(n, p, limit int) (int, bool) {
	if p > n-p {
		p = n - p
	}
	result := 1
	for i := 1; i <= p; i++ {
		result = result * (n - p + i) / i
		if result > limit {
			return result, false
		}
	}
	return result, true
}
