package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestRecover_WithPanic(t *testing.T) {
	fn := func() (err error) {
		defer Recover(&err, "CellFit")
		panic("index out of range")
	}

	err := fn()
	if err == nil {
		t.Fatal("Expected error from recovered panic, got nil")
	}

	var panicErr *PanicError
	if !errors.As(err, &panicErr) {
		t.Fatalf("Expected *PanicError, got %T", err)
	}
	if panicErr.Operation != "CellFit" {
		t.Errorf("Operation = %q, want %q", panicErr.Operation, "CellFit")
	}
	if !strings.Contains(panicErr.StackTrace, "recovery_test.go") {
		t.Error("Expected stack trace to contain test file name")
	}
}

func TestRecover_WithoutPanic(t *testing.T) {
	fn := func() (err error) {
		defer Recover(&err, "CellFit")
		return nil
	}

	if err := fn(); err != nil {
		t.Errorf("Expected nil error, got %v", err)
	}
}

func TestRecover_WithExistingError(t *testing.T) {
	original := errors.New("original failure")
	fn := func() (err error) {
		defer Recover(&err, "CellFit")
		err = original
		panic("then a panic")
	}

	err := fn()
	if err == nil {
		t.Fatal("Expected combined error, got nil")
	}
	if !errors.Is(err, original) {
		t.Error("Expected combined error to wrap the original error")
	}
	if !strings.Contains(err.Error(), "then a panic") {
		t.Error("Expected combined error to mention the panic value")
	}
}

func TestSafeExecute(t *testing.T) {
	tests := []struct {
		name    string
		fn      func() error
		wantErr bool
		isPanic bool
	}{
		{
			name:    "success",
			fn:      func() error { return nil },
			wantErr: false,
		},
		{
			name:    "function error",
			fn:      func() error { return errors.New("fit failed") },
			wantErr: true,
		},
		{
			name:    "panic",
			fn:      func() error { panic("matrix dimensions") },
			wantErr: true,
			isPanic: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := SafeExecute("unit", tt.fn)
			if (err != nil) != tt.wantErr {
				t.Fatalf("SafeExecute() error = %v, wantErr %v", err, tt.wantErr)
			}
			var panicErr *PanicError
			if got := errors.As(err, &panicErr); got != tt.isPanic {
				t.Errorf("As(*PanicError) = %v, want %v", got, tt.isPanic)
			}
		})
	}
}
