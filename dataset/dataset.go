// Package dataset provides the in-memory record container the rest of the
// library consumes, plus synthetic generators and a CSV loader.
package dataset

import (
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/crossval/pkg/errors"
)

// Dataset は特徴量行列・目的変数ベクトル・任意の層ラベルをまとめたコンテナ
// レコード数はすべてのフィールドで一致していることが保証される
type Dataset struct {
	features *mat.Dense
	targets  *mat.VecDense
	strata   []string
}

// New はデータセットを構築する。features は n×d、targets は長さ n、
// strata は空か長さ n のいずれかでなければならない
func New(features *mat.Dense, targets *mat.VecDense, strata []string) (*Dataset, error) {
	const op = "dataset.New"

	if features == nil || targets == nil {
		return nil, errors.NewModelError(op, "empty data", errors.ErrEmptyData)
	}
	n, d := features.Dims()
	if n == 0 || d == 0 {
		return nil, errors.NewModelError(op, "empty data", errors.ErrEmptyData)
	}
	if targets.Len() != n {
		return nil, errors.NewDimensionError(op, n, targets.Len(), 0)
	}
	if len(strata) != 0 && len(strata) != n {
		return nil, errors.NewDimensionError(op, n, len(strata), 0)
	}

	return &Dataset{features: features, targets: targets, strata: strata}, nil
}

// Len はレコード数を返す
func (d *Dataset) Len() int {
	n, _ := d.features.Dims()
	return n
}

// NumFeatures は特徴量の数を返す
func (d *Dataset) NumFeatures() int {
	_, c := d.features.Dims()
	return c
}

// Features は n×d の特徴量行列を返す
func (d *Dataset) Features() *mat.Dense { return d.features }

// Targets は目的変数を n×1 行列として返す
func (d *Dataset) Targets() *mat.Dense {
	n := d.targets.Len()
	out := mat.NewDense(n, 1, nil)
	for i := 0; i < n; i++ {
		out.Set(i, 0, d.targets.AtVec(i))
	}
	return out
}

// TargetVec は目的変数ベクトルを返す
func (d *Dataset) TargetVec() *mat.VecDense { return d.targets }

// Strata は層ラベルを返す（設定されていなければ nil）
func (d *Dataset) Strata() []string { return d.strata }

// Subset は指定されたレコードだけを含む新しいデータセットを返す
func (d *Dataset) Subset(indices []int) (*Dataset, error) {
	const op = "Dataset.Subset"

	n, c := d.features.Dims()
	if len(indices) == 0 {
		return nil, errors.NewInsufficientDataError(op, "no indices given", 1, 0)
	}

	features := mat.NewDense(len(indices), c, nil)
	targets := mat.NewVecDense(len(indices), nil)
	var strata []string
	if d.strata != nil {
		strata = make([]string, len(indices))
	}

	for i, idx := range indices {
		if idx < 0 || idx >= n {
			return nil, errors.NewValueError(op, "index out of range")
		}
		for j := 0; j < c; j++ {
			features.Set(i, j, d.features.At(idx, j))
		}
		targets.SetVec(i, d.targets.AtVec(idx))
		if strata != nil {
			strata[i] = d.strata[idx]
		}
	}

	return New(features, targets, strata)
}
