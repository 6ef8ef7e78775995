package dataset

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/YuminosukeSato/crossval/pkg/errors"
)

// GenerateSine は [0, 2π] 上の y = sin(x) + ε のサンプルを生成する
// ε ~ N(0, noise²)。同じ seed に対して常に同じデータを返す
func GenerateSine(n int, noise float64, seed uint64) (*Dataset, error) {
	const op = "dataset.GenerateSine"

	if n < 2 {
		return nil, errors.NewInsufficientDataError(op, "need at least 2 samples", 2, n)
	}
	if noise < 0 {
		return nil, errors.NewParameterError(op, "noise", "must be non-negative", noise)
	}

	normal := distuv.Normal{Mu: 0, Sigma: 1, Src: rand.NewPCG(seed, seed)}

	features := mat.NewDense(n, 1, nil)
	targets := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		x := 2 * math.Pi * float64(i) / float64(n-1)
		features.Set(i, 0, x)
		targets.SetVec(i, math.Sin(x)+noise*normal.Rand())
	}

	return New(features, targets, nil)
}

// GenerateRegression は一様に散らばった x に対する多項式応答
// y = Σ coeffs[j]·x^j + ε のサンプルを生成する
func GenerateRegression(n int, coeffs []float64, noise float64, seed uint64) (*Dataset, error) {
	const op = "dataset.GenerateRegression"

	if n < 2 {
		return nil, errors.NewInsufficientDataError(op, "need at least 2 samples", 2, n)
	}
	if len(coeffs) == 0 {
		return nil, errors.NewParameterError(op, "coeffs", "must not be empty", coeffs)
	}
	if noise < 0 {
		return nil, errors.NewParameterError(op, "noise", "must be non-negative", noise)
	}

	src := rand.NewPCG(seed, seed)
	uniform := distuv.Uniform{Min: -1, Max: 1, Src: src}
	normal := distuv.Normal{Mu: 0, Sigma: 1, Src: src}

	features := mat.NewDense(n, 1, nil)
	targets := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		x := uniform.Rand()
		features.Set(i, 0, x)

		y := 0.0
		pow := 1.0
		for _, c := range coeffs {
			y += c * pow
			pow *= x
		}
		targets.SetVec(i, y+noise*normal.Rand())
	}

	return New(features, targets, nil)
}
