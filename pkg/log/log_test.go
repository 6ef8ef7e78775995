package log

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	crosserrors "github.com/YuminosukeSato/crossval/pkg/errors"
)

func TestZerologProvider_StructuredFields(t *testing.T) {
	var buf bytes.Buffer
	provider := NewZerologProvider(&buf, LevelDebug)

	logger := provider.GetLoggerWithName("evaluation").With(SchemeKey, "kfold")
	logger.Info("evaluation started",
		OperationKey, OperationEvaluate,
		FoldsKey, 10,
	)

	var entry map[string]interface{}
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry); err != nil {
		t.Fatalf("log output is not valid JSON: %v", err)
	}

	if entry[ComponentKey] != "evaluation" {
		t.Errorf("component = %v, want evaluation", entry[ComponentKey])
	}
	if entry[SchemeKey] != "kfold" {
		t.Errorf("scheme = %v, want kfold", entry[SchemeKey])
	}
	if entry[OperationKey] != OperationEvaluate {
		t.Errorf("operation = %v, want %v", entry[OperationKey], OperationEvaluate)
	}
	if entry[FoldsKey] != float64(10) {
		t.Errorf("folds = %v, want 10", entry[FoldsKey])
	}
	if entry["message"] != "evaluation started" {
		t.Errorf("message = %v, want 'evaluation started'", entry["message"])
	}
}

func TestZerologProvider_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	provider := NewZerologProvider(&buf, LevelWarn)

	logger := provider.GetLogger()
	logger.Debug("hidden")
	logger.Info("hidden too")
	logger.Warn("visible")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("expected debug/info records to be filtered, got %q", out)
	}
	if !strings.Contains(out, "visible") {
		t.Errorf("expected warn record in output, got %q", out)
	}

	if logger.Enabled(context.Background(), LevelDebug) {
		t.Error("Enabled(LevelDebug) = true, want false at warn level")
	}
	if !logger.Enabled(context.Background(), LevelError) {
		t.Error("Enabled(LevelError) = false, want true at warn level")
	}
}

func TestZerologProvider_ErrorFields(t *testing.T) {
	var buf bytes.Buffer
	provider := NewZerologProvider(&buf, LevelDebug)

	err := crosserrors.NewParameterError("KFold.Split", "n_splits", "must be at least 2", 1)
	provider.GetLogger().Error("split failed", "err", err)

	out := buf.String()
	if !strings.Contains(out, "invalid parameter 'n_splits'") {
		t.Errorf("expected error message in output, got %q", out)
	}
	if !strings.Contains(out, StacktraceKey) {
		t.Errorf("expected stacktrace attribute in output, got %q", out)
	}
}

func TestTestLogger_CaptureAndQuery(t *testing.T) {
	logger, _ := NewTestLogger(LevelDebug)

	logger.Info("evaluation completed",
		OperationKey, OperationEvaluate,
		BestFlexibilityKey, 6,
	)

	if !logger.ContainsMessage("evaluation completed") {
		t.Error("Expected evaluation completion log message")
	}
	if !logger.ContainsField(OperationKey, OperationEvaluate) {
		t.Error("Expected evaluate operation in logs")
	}

	entries, err := logger.GetLogEntries()
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("Expected 1 log entry, got %d", len(entries))
	}
}
