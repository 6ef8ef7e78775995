package model

import "gonum.org/v1/gonum/mat"

// Fitter は学習可能なモデルのインターフェース
type Fitter interface {
	// Fit はモデルを訓練データで学習させる
	Fit(X, y mat.Matrix) error
}

// Predictor は予測可能なモデルのインターフェース
type Predictor interface {
	// Predict は入力データに対する予測を行う
	Predict(X mat.Matrix) (mat.Matrix, error)
}

// Regressor は学習と予測の両方をサポートするモデルのインターフェース
type Regressor interface {
	Fitter
	Predictor
}

// FlexibleModel は柔軟度（自由度）でインデックス付けされたモデル族の
// 1つのメンバーを表すインターフェース。自由度が高いほどバイアスが低く、
// バリアンスが高いモデルになります。
type FlexibleModel interface {
	Regressor

	// Flexibility はこのモデルの自由度を返す
	Flexibility() int
}

// BasisModel は基底展開に基づく回帰モデルのインターフェース
type BasisModel interface {
	// Coefficients は学習された基底関数の係数を返す
	Coefficients() []float64
	// Intercept は学習された切片を返す
	Intercept() float64
}
