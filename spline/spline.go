// Package spline provides a flexibility-indexed family of univariate
// regression models built on a truncated-power cubic spline basis.
//
// The single tuning knob is the degrees of freedom (df). Low df yields a
// rigid, high-bias model; high df yields a flexible, high-variance one:
//
//	df = 1        intercept only
//	df = 2, 3, 4  polynomial of degree df-1
//	df > 4        cubic spline with df-4 interior knots
//
// Interior knots are placed at quantiles of the training inputs, so the
// fitted model is fully determined by the training subset and df. No
// randomness is involved.
package spline

import (
	"sort"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/YuminosukeSato/crossval/core/model"
	"github.com/YuminosukeSato/crossval/pkg/errors"
)

// SplineRegression は自由度でパラメータ化された単変量スプライン回帰モデル
type SplineRegression struct {
	model.BaseEstimator
	Df     int           // 自由度（基底関数の数、切片を含む）
	knots  []float64     // 訓練データの分位点に置かれた内部ノット
	coeffs *mat.VecDense // 基底関数の係数（先頭が切片）
}

// NewSplineRegression は指定された自由度のスプライン回帰モデルを作成する
func NewSplineRegression(df int) *SplineRegression {
	return &SplineRegression{Df: df}
}

// Flexibility はこのモデルの自由度を返す
func (s *SplineRegression) Flexibility() int { return s.Df }

// Fit はモデルを訓練データで学習させる
// 基底行列を構築し、最小二乗問題を QR 分解で解く
func (s *SplineRegression) Fit(X, y mat.Matrix) error {
	const op = "SplineRegression.Fit"

	if s.Df < 1 {
		return errors.NewParameterError(op, "df", "must be at least 1", s.Df)
	}

	x, err := columnValues(op, X)
	if err != nil {
		return err
	}
	n := len(x)

	ry, cy := y.Dims()
	if ry != n {
		return errors.NewDimensionError(op, n, ry, 0)
	}
	if cy != 1 {
		return errors.NewValueError(op, "y must be a column vector")
	}
	if n < s.Df {
		return errors.NewInsufficientDataError(op,
			"need at least as many records as degrees of freedom", s.Df, n)
	}

	s.knots = interiorKnots(x, s.Df)

	B := s.basisMatrix(x)

	yVec := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		yVec.SetVec(i, y.At(i, 0))
	}

	// 最小二乗解: B * coeffs ≈ y
	var qr mat.QR
	qr.Factorize(B)

	coeffs := mat.NewDense(s.Df, 1, nil)
	if err := qr.SolveTo(coeffs, false, yVec); err != nil {
		return errors.NewModelError(op, "singular basis matrix", errors.ErrSingularMatrix)
	}

	s.coeffs = mat.NewVecDense(s.Df, nil)
	for j := 0; j < s.Df; j++ {
		s.coeffs.SetVec(j, coeffs.At(j, 0))
	}
	if err := errors.CheckVector(op, s.coeffs.RawVector().Data); err != nil {
		return err
	}

	s.SetFitted()
	return nil
}

// Predict は入力データに対する予測を行う
func (s *SplineRegression) Predict(X mat.Matrix) (mat.Matrix, error) {
	const op = "SplineRegression.Predict"

	if !s.IsFitted() {
		return nil, errors.NewNotFittedError("SplineRegression", "Predict")
	}

	x, err := columnValues(op, X)
	if err != nil {
		return nil, err
	}

	B := s.basisMatrix(x)

	predictions := mat.NewDense(len(x), 1, nil)
	predictions.Mul(B, s.coeffs)
	return predictions, nil
}

// Coefficients は切片を除いた基底関数の係数を返す
func (s *SplineRegression) Coefficients() []float64 {
	if s.coeffs == nil {
		return nil
	}
	out := make([]float64, s.Df-1)
	for j := 1; j < s.Df; j++ {
		out[j-1] = s.coeffs.AtVec(j)
	}
	return out
}

// Intercept は学習された切片を返す
func (s *SplineRegression) Intercept() float64 {
	if s.coeffs == nil {
		return 0
	}
	return s.coeffs.AtVec(0)
}

// Knots は学習時に決定した内部ノットの位置を返す（df <= 4 では空）
func (s *SplineRegression) Knots() []float64 {
	out := make([]float64, len(s.knots))
	copy(out, s.knots)
	return out
}

// basisMatrix は入力値ごとに Df 個の基底関数を評価した n×Df 行列を構築する
//
// 列の構成:
//
//	df = 1:  [1]
//	df <= 4: [1, x, ..., x^(df-1)]
//	df > 4:  [1, x, x^2, x^3, (x-k_1)^3_+, ..., (x-k_m)^3_+]
func (s *SplineRegression) basisMatrix(x []float64) *mat.Dense {
	n := len(x)
	B := mat.NewDense(n, s.Df, nil)

	polyDegree := s.Df - 1
	if polyDegree > 3 {
		polyDegree = 3
	}

	for i, xi := range x {
		B.Set(i, 0, 1.0)
		v := 1.0
		for j := 1; j <= polyDegree; j++ {
			v *= xi
			B.Set(i, j, v)
		}
		for m, knot := range s.knots {
			B.Set(i, 4+m, truncatedCube(xi-knot))
		}
	}
	return B
}

// truncatedCube は切断冪基底 (d)^3_+ を評価する
func truncatedCube(d float64) float64 {
	if d <= 0 {
		return 0
	}
	return d * d * d
}

// interiorKnots は訓練入力の経験分位点に df-4 個のノットを配置する
// ノットは入力のソート順のみに依存するため、同じ訓練データと df に対して
// 常に同じ位置になる
func interiorKnots(x []float64, df int) []float64 {
	m := df - 4
	if m < 1 {
		return nil
	}

	sorted := make([]float64, len(x))
	copy(sorted, x)
	sort.Float64s(sorted)

	knots := make([]float64, m)
	for j := 1; j <= m; j++ {
		p := float64(j) / float64(m+1)
		knots[j-1] = stat.Quantile(p, stat.Empirical, sorted, nil)
	}
	return knots
}

// columnValues は n×1 行列を float64 スライスに変換する
func columnValues(op string, X mat.Matrix) ([]float64, error) {
	r, c := X.Dims()
	if r == 0 {
		return nil, errors.NewModelError(op, "empty data", errors.ErrEmptyData)
	}
	if c != 1 {
		return nil, errors.NewDimensionError(op, 1, c, 1)
	}
	x := make([]float64, r)
	for i := 0; i < r; i++ {
		x[i] = X.At(i, 0)
	}
	return x, nil
}
