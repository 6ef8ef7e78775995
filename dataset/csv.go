package dataset

import (
	"io"
	"math"
	"os"

	"github.com/go-gota/gota/dataframe"
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/crossval/pkg/errors"
)

// CSVOptions はCSV読み込みの列の割り当てを指定する
type CSVOptions struct {
	// Target は目的変数の列名（必須）
	Target string
	// Features は特徴量の列名。空の場合は Target と Stratum 以外の
	// すべての数値列を使用する
	Features []string
	// Stratum は層ラベルの列名（任意）
	Stratum string
}

// FromCSV はCSVストリームからデータセットを読み込む
// ヘッダ行は必須で、列の割り当ては opts で指定する
func FromCSV(r io.Reader, opts CSVOptions) (*Dataset, error) {
	const op = "dataset.FromCSV"

	if opts.Target == "" {
		return nil, errors.NewParameterError(op, "target", "must name the target column", opts.Target)
	}

	df := dataframe.ReadCSV(r)
	if df.Err != nil {
		return nil, errors.Wrap(df.Err, "crossval: reading CSV")
	}
	n := df.Nrow()
	if n == 0 {
		return nil, errors.NewModelError(op, "empty data", errors.ErrEmptyData)
	}

	names := df.Names()
	if !contains(names, opts.Target) {
		return nil, errors.NewParameterError(op, "target", "column not found", opts.Target)
	}
	if opts.Stratum != "" && !contains(names, opts.Stratum) {
		return nil, errors.NewParameterError(op, "stratum", "column not found", opts.Stratum)
	}

	featureNames := opts.Features
	if len(featureNames) == 0 {
		for _, name := range names {
			if name != opts.Target && name != opts.Stratum {
				featureNames = append(featureNames, name)
			}
		}
	}
	if len(featureNames) == 0 {
		return nil, errors.NewValueError(op, "no feature columns remain")
	}

	features := mat.NewDense(n, len(featureNames), nil)
	for j, name := range featureNames {
		if !contains(names, name) {
			return nil, errors.NewParameterError(op, "features", "column not found", name)
		}
		col := df.Col(name).Float()
		for i, v := range col {
			if math.IsNaN(v) {
				return nil, errors.NewValueError(op, "non-numeric value in feature column "+name)
			}
			features.Set(i, j, v)
		}
	}

	targets := mat.NewVecDense(n, nil)
	for i, v := range df.Col(opts.Target).Float() {
		if math.IsNaN(v) {
			return nil, errors.NewValueError(op, "non-numeric value in target column "+opts.Target)
		}
		targets.SetVec(i, v)
	}

	var strata []string
	if opts.Stratum != "" {
		strata = df.Col(opts.Stratum).Records()
	}

	return New(features, targets, strata)
}

// FromCSVFile はファイルパスからデータセットを読み込む
func FromCSVFile(path string, opts CSVOptions) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "crossval: opening %s", path)
	}
	defer f.Close()
	return FromCSV(f, opts)
}

func contains(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}
