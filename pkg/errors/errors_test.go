package errors

import (
	"fmt"
	"math"
	"strings"
	"testing"
)

func TestNewParameterError(t *testing.T) {
	tests := []struct {
		name    string
		op      string
		param   string
		reason  string
		value   interface{}
		wantMsg string
	}{
		{
			name:    "k too small",
			op:      "KFold.Split",
			param:   "n_splits",
			reason:  "must be at least 2",
			value:   1,
			wantMsg: "crossval: KFold.Split: invalid parameter 'n_splits': must be at least 2 (got: 1)",
		},
		{
			name:    "ratio out of range",
			op:      "HoldoutSplit.Split",
			param:   "ratio",
			reason:  "must be in (0, 1)",
			value:   1.5,
			wantMsg: "crossval: HoldoutSplit.Split: invalid parameter 'ratio': must be in (0, 1) (got: 1.5)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewParameterError(tt.op, tt.param, tt.reason, tt.value)

			// 基本的なエラーメッセージの確認
			if err.Error() != tt.wantMsg {
				t.Errorf("Error() = %v, want %v", err.Error(), tt.wantMsg)
			}

			// スタックトレースの存在確認
			formatted := fmt.Sprintf("%+v", err)
			if !strings.Contains(formatted, "errors_test.go") {
				t.Error("Expected stack trace to contain test file name")
			}

			// ParameterError型にキャスト可能か確認
			var paramErr *ParameterError
			if !As(err, &paramErr) {
				t.Error("Error should be castable to *ParameterError")
			}
		})
	}
}

func TestNewResourceLimitError(t *testing.T) {
	err := NewResourceLimitError("LeavePOut.Split", 5, 10)

	want := "crossval: LeavePOut.Split: enumeration requires 10 folds, exceeding the configured cap of 5"
	if err.Error() != want {
		t.Errorf("Error() = %v, want %v", err.Error(), want)
	}

	var limitErr *ResourceLimitError
	if !As(err, &limitErr) {
		t.Error("Error should be castable to *ResourceLimitError")
	}
	if limitErr.Limit != 5 || limitErr.Required != 10 {
		t.Errorf("Limit/Required = %d/%d, want 5/10", limitErr.Limit, limitErr.Required)
	}
}

func TestNewInsufficientDataError(t *testing.T) {
	err := NewInsufficientDataError("StratifiedKFold.Split", "stratum 'b' has fewer members than n_splits", 5, 3)

	want := "crossval: StratifiedKFold.Split: insufficient data: stratum 'b' has fewer members than n_splits (required 5, got 3)"
	if err.Error() != want {
		t.Errorf("Error() = %v, want %v", err.Error(), want)
	}

	var insErr *InsufficientDataError
	if !As(err, &insErr) {
		t.Error("Error should be castable to *InsufficientDataError")
	}
}

func TestNewModelError(t *testing.T) {
	tests := []struct {
		name    string
		op      string
		kind    string
		err     error
		wantMsg string
	}{
		{
			name:    "with original error",
			op:      "Fit",
			kind:    "invalid input",
			err:     fmt.Errorf("test error"),
			wantMsg: "crossval: Fit: invalid input: test error",
		},
		{
			name:    "without original error",
			op:      "Predict",
			kind:    "not fitted",
			err:     nil,
			wantMsg: "crossval: Predict: not fitted",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewModelError(tt.op, tt.kind, tt.err)

			if err.Error() != tt.wantMsg {
				t.Errorf("Error() = %v, want %v", err.Error(), tt.wantMsg)
			}

			var modelErr *ModelError
			if !As(err, &modelErr) {
				t.Error("Error should be castable to *ModelError")
			}
		})
	}
}

func TestNewDimensionError(t *testing.T) {
	err := NewDimensionError("Predict", 10, 8, 0)

	// 基本的なエラーメッセージの確認
	want := "crossval: Predict: dimension mismatch on axis 0 (rows). Expected 10, got 8"
	if err.Error() != want {
		t.Errorf("Error() = %v, want %v", err.Error(), want)
	}

	var dimErr *DimensionError
	if !As(err, &dimErr) {
		t.Error("Error should be castable to *DimensionError")
	}
}

func TestNewNotFittedError(t *testing.T) {
	err := NewNotFittedError("SplineRegression", "Predict")

	want := "crossval: SplineRegression: this model is not fitted yet. Call Fit() before using Predict()"
	if err.Error() != want {
		t.Errorf("Error() = %v, want %v", err.Error(), want)
	}

	var notFittedErr *NotFittedError
	if !As(err, &notFittedErr) {
		t.Error("Error should be castable to *NotFittedError")
	}
}

func TestNewDegenerateFitWarning(t *testing.T) {
	warn := NewDegenerateFitWarning(3, 12, fmt.Errorf("singular matrix"))

	want := "fit failed for fold 3 at flexibility 12; cell excluded from aggregates: singular matrix"
	if warn.Error() != want {
		t.Errorf("Error() = %v, want %v", warn.Error(), want)
	}
}

func TestWarnHandler(t *testing.T) {
	var captured error
	SetWarningHandler(func(w error) { captured = w })
	defer SetWarningHandler(nil)

	w := NewDegenerateFitWarning(0, 4, fmt.Errorf("boom"))
	Warn(w)

	if captured == nil || captured.Error() != w.Error() {
		t.Errorf("Warning handler captured %v, want %v", captured, w)
	}
}

func TestWrapAndIs(t *testing.T) {
	// 元のエラー
	baseErr := ErrSingularMatrix

	// ラップ
	wrapped := Wrap(baseErr, "in SplineRegression.Fit")

	// Is関数でチェック
	if !Is(wrapped, ErrSingularMatrix) {
		t.Error("Expected Is(wrapped, ErrSingularMatrix) to be true")
	}

	// エラーメッセージの確認
	if !strings.Contains(wrapped.Error(), "in SplineRegression.Fit") {
		t.Error("Expected wrapped error to contain wrapping message")
	}
}

func TestWrapf(t *testing.T) {
	baseErr := ErrEmptyData

	wrapped := Wrapf(baseErr, "in %s: expected %d, got %d", "Score", 10, 0)

	if !Is(wrapped, ErrEmptyData) {
		t.Error("Expected Is(wrapped, ErrEmptyData) to be true")
	}

	expectedMsg := "in Score: expected 10, got 0"
	if !strings.Contains(wrapped.Error(), expectedMsg) {
		t.Errorf("Expected wrapped error to contain %q", expectedMsg)
	}
}

func TestErrorChaining(t *testing.T) {
	// エラーチェーンの作成
	err1 := fmt.Errorf("base error")
	err2 := Wrap(err1, "wrapped once")
	err3 := NewModelError("Operation", "failed", err2)

	// チェーン全体を確認
	if !strings.Contains(err3.Error(), "base error") {
		t.Error("Expected error chain to contain base error")
	}

	// スタックトレースの確認（詳細表示）
	formatted := fmt.Sprintf("%+v", err3)
	if !strings.Contains(formatted, "errors_test.go") {
		t.Error("Expected detailed error to contain stack trace")
	}
}

func TestCheckScalar(t *testing.T) {
	if err := CheckScalar("score", 0.5); err != nil {
		t.Errorf("CheckScalar(0.5) = %v, want nil", err)
	}

	if err := CheckScalar("score", math.NaN()); err == nil {
		t.Error("CheckScalar(NaN) should return an error")
	}

	var numErr *NumericalInstabilityError
	err := CheckScalar("score", math.Inf(1))
	if !As(err, &numErr) {
		t.Error("Error should be castable to *NumericalInstabilityError")
	}
}
