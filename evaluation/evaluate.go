// Package evaluation orchestrates cross-validation runs: it drives a
// splitter over the dataset, fits one model per fold and flexibility level,
// scores each fit on the held-out records, and collects everything into an
// ErrorMatrix with one-standard-error model selection on top.
package evaluation

import (
	"fmt"
	"time"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/crossval/core/model"
	"github.com/YuminosukeSato/crossval/core/parallel"
	"github.com/YuminosukeSato/crossval/metrics"
	"github.com/YuminosukeSato/crossval/pkg/errors"
	"github.com/YuminosukeSato/crossval/pkg/log"
	"github.com/YuminosukeSato/crossval/spline"
	"github.com/YuminosukeSato/crossval/split"
)

// Scorer computes a loss from true and predicted targets, both n×1 matrices.
// Lower is better.
type Scorer func(yTrue, yPred mat.Matrix) (float64, error)

// FamilyFitter produces the family member with the given flexibility. The
// orchestrator never inspects the model beyond Fit and Predict, so any
// flexibility-indexed family can plug in.
type FamilyFitter func(flexibility int) model.FlexibleModel

// Result bundles the outcome of one cross-validation run.
type Result struct {
	// Test holds the held-out losses, folds × grid.
	Test *ErrorMatrix
	// Train holds the training losses on the same layout, for inspecting
	// the gap between training and validation error.
	Train *ErrorMatrix

	grid     []int
	bestIdx  int
	oneSEIdx int
}

// Grid returns the flexibility grid the run evaluated.
func (r *Result) Grid() []int {
	g := make([]int, len(r.grid))
	copy(g, r.grid)
	return g
}

// BestIndex returns the grid index with the lowest mean held-out loss.
func (r *Result) BestIndex() int { return r.bestIdx }

// OneSEIndex returns the grid index chosen by the one-standard-error rule.
func (r *Result) OneSEIndex() int { return r.oneSEIdx }

// BestFlexibility returns the flexibility with the lowest mean held-out loss.
func (r *Result) BestFlexibility() int { return r.grid[r.bestIdx] }

// OneSEFlexibility returns the flexibility chosen by the one-standard-error
// rule: the least flexible level within one standard error of the best.
func (r *Result) OneSEFlexibility() int { return r.grid[r.oneSEIdx] }

type options struct {
	scorer   Scorer
	fitter   FamilyFitter
	parallel bool
	logger   log.Logger
}

// Option configures an Evaluate run.
type Option func(*options)

// WithScorer replaces the default mean-squared-error scorer.
func WithScorer(s Scorer) Option {
	return func(o *options) { o.scorer = s }
}

// WithFitter replaces the default spline family with another
// flexibility-indexed model family.
func WithFitter(f FamilyFitter) Option {
	return func(o *options) { o.fitter = f }
}

// WithParallel evaluates the fold×flexibility cells on all CPUs. Each cell
// writes only its own matrix entry, so no locking is involved.
func WithParallel() Option {
	return func(o *options) { o.parallel = true }
}

// WithLogger attaches a logger to the run.
func WithLogger(l log.Logger) Option {
	return func(o *options) { o.logger = l }
}

// Evaluate runs cross-validation of a flexibility-indexed model family over
// the dataset. X is the n×d feature matrix, y the n×1 target vector. The
// splitter determines the folds and grid lists the flexibility levels to
// evaluate, in strictly ascending order.
//
// A cell whose fit or scoring fails is excluded from the aggregates and
// reported through the warning system; the run only fails when an entire
// column is degenerate.
func Evaluate(X, y mat.Matrix, splitter split.Splitter, grid []int, opts ...Option) (*Result, error) {
	const op = "evaluation.Evaluate"

	o := options{
		scorer: metrics.MSEMatrix,
		fitter: defaultFamilyMember,
		logger: log.GetLoggerWithName("evaluation"),
	}
	for _, opt := range opts {
		opt(&o)
	}

	n, _ := X.Dims()
	ry, cy := y.Dims()
	if n == 0 {
		return nil, errors.NewModelError(op, "empty data", errors.ErrEmptyData)
	}
	if ry != n {
		return nil, errors.NewDimensionError(op, n, ry, 0)
	}
	if cy != 1 {
		return nil, errors.NewValueError(op, "y must be a column vector")
	}
	if err := validateGrid(op, grid); err != nil {
		return nil, err
	}

	folds, err := splitter.Split(n)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	test := NewErrorMatrix(len(folds), grid)
	train := NewErrorMatrix(len(folds), grid)

	evalCell := func(f, j int) {
		testLoss, trainLoss, cellErr := fitScoreCell(X, y, folds[f], o.fitter(grid[j]), o.scorer)
		if cellErr != nil {
			test.MarkInvalid(f, j)
			train.MarkInvalid(f, j)
			warning := errors.NewDegenerateFitWarning(f, grid[j], cellErr)
			errors.Warn(warning)
			o.logger.Warn("cell excluded from aggregates",
				log.FoldKey, f,
				log.FlexibilityKey, grid[j],
				"error", cellErr)
			return
		}
		test.SetLoss(f, j, testLoss)
		train.SetLoss(f, j, trainLoss)
	}

	cells := len(folds) * len(grid)
	if o.parallel {
		parallel.ForEach(cells, func(i int) {
			evalCell(i/len(grid), i%len(grid))
		})
	} else {
		for f := range folds {
			for j := range grid {
				evalCell(f, j)
			}
		}
	}

	// A flexibility level where every fold failed has no defensible
	// aggregate; refuse to pick among the survivors silently.
	for j, flexibility := range grid {
		if len(test.Column(j)) == 0 {
			return nil, errors.Wrapf(
				errors.NewInsufficientDataError(op,
					fmt.Sprintf("every fold failed at flexibility %d", flexibility),
					1, 0),
				"flexibility level unusable")
		}
	}

	result := &Result{
		Test:     test,
		Train:    train,
		grid:     test.Grid(),
		bestIdx:  test.BestIndex(),
		oneSEIdx: test.OneSEIndex(),
	}

	o.logger.Debug("cross-validation complete",
		log.OperationKey, log.OperationEvaluate,
		log.FoldsKey, len(folds),
		log.GridKey, result.Grid(),
		log.SamplesKey, n,
		log.BestFlexibilityKey, result.BestFlexibility(),
		log.OneSEFlexibilityKey, result.OneSEFlexibility(),
		log.InvalidCellsKey, test.InvalidCells(),
		log.ParallelKey, o.parallel,
		log.DurationMsKey, time.Since(start).Milliseconds())

	return result, nil
}

// defaultFamilyMember is the spline family used when no custom fitter is
// configured.
func defaultFamilyMember(flexibility int) model.FlexibleModel {
	return spline.NewSplineRegression(flexibility)
}

// fitScoreCell trains one family member on the fold's training records and
// scores it on both subsets. Panics inside Fit, Predict, or the scorer are
// converted to errors so a single degenerate cell cannot abort the run.
func fitScoreCell(X, y mat.Matrix, fold split.Fold, m model.FlexibleModel, score Scorer) (testLoss, trainLoss float64, err error) {
	err = errors.SafeExecute("evaluation.fitScoreCell", func() error {
		trainX := rowSubset(X, fold.TrainIndices)
		trainY := rowSubset(y, fold.TrainIndices)
		testX := rowSubset(X, fold.TestIndices)
		testY := rowSubset(y, fold.TestIndices)

		if fitErr := m.Fit(trainX, trainY); fitErr != nil {
			return fitErr
		}

		testPred, predErr := m.Predict(testX)
		if predErr != nil {
			return predErr
		}
		var scoreErr error
		testLoss, scoreErr = score(testY, testPred)
		if scoreErr != nil {
			return scoreErr
		}

		trainPred, predErr := m.Predict(trainX)
		if predErr != nil {
			return predErr
		}
		trainLoss, scoreErr = score(trainY, trainPred)
		return scoreErr
	})
	return testLoss, trainLoss, err
}

// rowSubset copies the given rows of M into a new dense matrix.
func rowSubset(M mat.Matrix, rows []int) *mat.Dense {
	_, c := M.Dims()
	out := mat.NewDense(len(rows), c, nil)
	for i, row := range rows {
		for j := 0; j < c; j++ {
			out.Set(i, j, M.At(row, j))
		}
	}
	return out
}

// validateGrid requires a non-empty, strictly ascending grid of positive
// flexibility levels. Ascending order is what makes "less flexible" well
// defined for the one-standard-error rule.
func validateGrid(op string, grid []int) error {
	if len(grid) == 0 {
		return errors.NewParameterError(op, "grid", "must not be empty", grid)
	}
	for i, flexibility := range grid {
		if flexibility < 1 {
			return errors.NewParameterError(op, "grid", "flexibility levels must be at least 1", flexibility)
		}
		if i > 0 && flexibility <= grid[i-1] {
			return errors.Wrapf(errors.ErrGridNotAscending, "%s", op)
		}
	}
	return nil
}
