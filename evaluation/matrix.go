package evaluation

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// ErrorMatrix holds the per-fold, per-flexibility losses of a
// cross-validation run. Rows are folds, columns follow the flexibility grid.
// Each cell carries a validity flag so degenerate fits can be excluded from
// the aggregates without shifting the layout.
type ErrorMatrix struct {
	grid   []int
	losses *mat.Dense
	valid  []bool
}

// NewErrorMatrix creates an empty folds×len(grid) matrix. All cells start
// invalid until a loss is recorded.
func NewErrorMatrix(folds int, grid []int) *ErrorMatrix {
	g := make([]int, len(grid))
	copy(g, grid)
	return &ErrorMatrix{
		grid:   g,
		losses: mat.NewDense(folds, len(grid), nil),
		valid:  make([]bool, folds*len(grid)),
	}
}

// Folds returns the number of rows.
func (m *ErrorMatrix) Folds() int {
	r, _ := m.losses.Dims()
	return r
}

// Levels returns the number of flexibility levels (columns).
func (m *ErrorMatrix) Levels() int { return len(m.grid) }

// Grid returns a copy of the flexibility grid indexing the columns.
func (m *ErrorMatrix) Grid() []int {
	g := make([]int, len(m.grid))
	copy(g, m.grid)
	return g
}

// SetLoss records the loss for one cell and marks it valid.
func (m *ErrorMatrix) SetLoss(fold, level int, loss float64) {
	m.losses.Set(fold, level, loss)
	m.valid[fold*len(m.grid)+level] = true
}

// MarkInvalid flags a cell as excluded from all aggregates.
func (m *ErrorMatrix) MarkInvalid(fold, level int) {
	m.valid[fold*len(m.grid)+level] = false
}

// Loss returns the raw loss of one cell and whether the cell is valid.
func (m *ErrorMatrix) Loss(fold, level int) (float64, bool) {
	return m.losses.At(fold, level), m.valid[fold*len(m.grid)+level]
}

// Column returns the valid losses of one flexibility level, in fold order.
func (m *ErrorMatrix) Column(level int) []float64 {
	out := make([]float64, 0, m.Folds())
	for f := 0; f < m.Folds(); f++ {
		if loss, ok := m.Loss(f, level); ok {
			out = append(out, loss)
		}
	}
	return out
}

// MeanLoss returns the mean of the valid losses at one level, or NaN when
// the column has no valid cell.
func (m *ErrorMatrix) MeanLoss(level int) float64 {
	col := m.Column(level)
	if len(col) == 0 {
		return math.NaN()
	}
	return stat.Mean(col, nil)
}

// StdError returns the standard error of the mean at one level: the sample
// standard deviation of the valid losses divided by the square root of their
// count. A column with fewer than two valid cells has no spread estimate and
// reports 0.
func (m *ErrorMatrix) StdError(level int) float64 {
	col := m.Column(level)
	if len(col) < 2 {
		return 0
	}
	return stat.StdDev(col, nil) / math.Sqrt(float64(len(col)))
}

// InvalidCells returns the number of cells excluded from the aggregates.
func (m *ErrorMatrix) InvalidCells() int {
	count := 0
	for _, ok := range m.valid {
		if !ok {
			count++
		}
	}
	return count
}

// BestIndex returns the column index with the lowest mean loss. Ties resolve
// to the lower index, the less flexible model. Columns without any valid
// cell are skipped; -1 is returned when every column is empty.
func (m *ErrorMatrix) BestIndex() int {
	best := -1
	bestMean := math.Inf(1)
	for level := range m.grid {
		mean := m.MeanLoss(level)
		if !math.IsNaN(mean) && mean < bestMean {
			best = level
			bestMean = mean
		}
	}
	return best
}

// OneSEIndex applies the one-standard-error rule: among all levels whose
// mean loss lies within one standard error of the best level's mean, it
// returns the least flexible one. The grid is ascending in flexibility, so
// that is the lowest qualifying index.
func (m *ErrorMatrix) OneSEIndex() int {
	best := m.BestIndex()
	if best < 0 {
		return -1
	}
	threshold := m.MeanLoss(best) + m.StdError(best)
	for level := 0; level <= best; level++ {
		mean := m.MeanLoss(level)
		if !math.IsNaN(mean) && mean <= threshold {
			return level
		}
	}
	return best
}
