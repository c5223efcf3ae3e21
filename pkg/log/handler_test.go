package log

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/YuminosukeSato/olsgo/pkg/errors"
)

func newBufferLogger(buf *bytes.Buffer) *slog.Logger {
	handler := slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(WrapByErrFmtHandler(handler))
}

func TestErrFmtHandler_AddsStacktrace(t *testing.T) {
	var buf bytes.Buffer
	logger := newBufferLogger(&buf)

	err := errors.NewNotFittedError("LinearRegression", "Predict")
	logger.Error("prediction failed", ErrAttr(err))

	var record map[string]interface{}
	if jerr := json.Unmarshal(buf.Bytes(), &record); jerr != nil {
		t.Fatalf("failed to parse log output: %v", jerr)
	}

	stack, ok := record[StacktraceAttrKey].(string)
	if !ok || stack == "" {
		t.Fatalf("expected %q attribute with stacktrace, got %v", StacktraceAttrKey, record[StacktraceAttrKey])
	}
	if !strings.Contains(stack, "handler_test.go") {
		t.Errorf("stacktrace should reference the call site, got %q", stack)
	}
}

func TestErrFmtHandler_NoErrorAttr(t *testing.T) {
	var buf bytes.Buffer
	logger := newBufferLogger(&buf)

	logger.Info("fit complete", ModelNameKey, "LinearRegression", OperationKey, "fit")

	var record map[string]interface{}
	if jerr := json.Unmarshal(buf.Bytes(), &record); jerr != nil {
		t.Fatalf("failed to parse log output: %v", jerr)
	}

	if _, ok := record[StacktraceAttrKey]; ok {
		t.Error("records without an error attribute should not carry a stacktrace")
	}
	if record[ModelNameKey] != "LinearRegression" {
		t.Errorf("model.name = %v, want LinearRegression", record[ModelNameKey])
	}
}

func TestToLogLevel(t *testing.T) {
	tests := []struct {
		level string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
	}

	for _, tt := range tests {
		if got := ToLogLevel(tt.level); got != tt.want {
			t.Errorf("ToLogLevel(%q) = %v, want %v", tt.level, got, tt.want)
		}
	}
}

func TestToLogLevel_PanicsOnUnknown(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for unknown log level")
		}
	}()
	ToLogLevel("verbose")
}
