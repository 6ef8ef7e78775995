package preprocessing

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"

	crosserrors "github.com/YuminosukeSato/crossval/pkg/errors"
)

func TestStandardScaler(t *testing.T) {
	X := mat.NewDense(4, 1, []float64{2, 4, 6, 8})

	scaler := NewStandardScaler()
	scaled, err := scaler.FitTransform(X)
	if err != nil {
		t.Fatalf("FitTransform failed: %v", err)
	}

	if got := scaler.Mean[0]; math.Abs(got-5) > 1e-12 {
		t.Errorf("Mean = %v, want 5", got)
	}

	// 標準化後は平均0、母標準偏差1
	r, _ := scaled.Dims()
	sum, sumSq := 0.0, 0.0
	for i := 0; i < r; i++ {
		v := scaled.At(i, 0)
		sum += v
		sumSq += v * v
	}
	if math.Abs(sum/float64(r)) > 1e-12 {
		t.Errorf("scaled mean = %v, want 0", sum/float64(r))
	}
	if math.Abs(sumSq/float64(r)-1) > 1e-12 {
		t.Errorf("scaled variance = %v, want 1", sumSq/float64(r))
	}
}

func TestStandardScaler_RoundTrip(t *testing.T) {
	X := mat.NewDense(3, 2, []float64{1, 10, 2, 20, 3, 30})

	scaler := NewStandardScaler()
	scaled, err := scaler.FitTransform(X)
	if err != nil {
		t.Fatalf("FitTransform failed: %v", err)
	}
	restored, err := scaler.InverseTransform(scaled)
	if err != nil {
		t.Fatalf("InverseTransform failed: %v", err)
	}

	for i := 0; i < 3; i++ {
		for j := 0; j < 2; j++ {
			if math.Abs(restored.At(i, j)-X.At(i, j)) > 1e-10 {
				t.Errorf("restored[%d][%d] = %v, want %v", i, j, restored.At(i, j), X.At(i, j))
			}
		}
	}
}

func TestStandardScaler_ConstantColumn(t *testing.T) {
	X := mat.NewDense(3, 1, []float64{7, 7, 7})

	scaler := NewStandardScaler()
	scaled, err := scaler.FitTransform(X)
	if err != nil {
		t.Fatalf("FitTransform failed: %v", err)
	}
	for i := 0; i < 3; i++ {
		if scaled.At(i, 0) != 0 {
			t.Errorf("constant column should map to 0, got %v", scaled.At(i, 0))
		}
	}
}

func TestStandardScaler_NotFitted(t *testing.T) {
	scaler := NewStandardScaler()
	_, err := scaler.Transform(mat.NewDense(1, 1, []float64{1}))

	var notFitted *crosserrors.NotFittedError
	if !crosserrors.As(err, &notFitted) {
		t.Fatalf("expected NotFittedError, got %v", err)
	}
}

func TestStandardScaler_DimensionMismatch(t *testing.T) {
	scaler := NewStandardScaler()
	if err := scaler.Fit(mat.NewDense(3, 2, nil)); err != nil {
		t.Fatalf("Fit failed: %v", err)
	}

	_, err := scaler.Transform(mat.NewDense(3, 3, nil))
	var dimErr *crosserrors.DimensionError
	if !crosserrors.As(err, &dimErr) {
		t.Fatalf("expected DimensionError, got %v", err)
	}
}
