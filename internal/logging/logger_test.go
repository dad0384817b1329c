package logging

import (
	"bytes"
	"errors"
	"log"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

// TestFieldHelpers tests the Field constructor functions.
func TestFieldHelpers(t *testing.T) {
	tests := []struct {
		name  string
		field Field
		key   string
		value any
	}{
		{"String", String("property", "roundtrip"), "property", "roundtrip"},
		{"Int", Int("workers", 8), "workers", 8},
		{"Uint64", Uint64("seed", 18446744073709551615), "seed", uint64(18446744073709551615)},
		{"Float64", Float64("rate", 0.5), "rate", 0.5},
		{"Bool", Bool("metrics", true), "metrics", true},
		{"Duration", Duration("elapsed", time.Second), "elapsed", time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.field.Key != tt.key {
				t.Errorf("Key = %q, want %q", tt.field.Key, tt.key)
			}
			if tt.field.Value != tt.value {
				t.Errorf("Value = %v, want %v", tt.field.Value, tt.value)
			}
		})
	}

	t.Run("Err uses the error key", func(t *testing.T) {
		testErr := errors.New("mismatch")
		f := Err(testErr)
		if f.Key != "error" || f.Value != testErr {
			t.Errorf("Err() = %+v", f)
		}
		if f := Err(nil); f.Value != nil {
			t.Errorf("Err(nil).Value = %v, want nil", f.Value)
		}
	})
}

func TestNewZerologAdapter(t *testing.T) {
	var buf bytes.Buffer
	adapter := NewZerologAdapter(zerolog.New(&buf))
	if adapter == nil {
		t.Fatal("NewZerologAdapter returned nil")
	}

	adapter.Info("selfcheck started")
	if !strings.Contains(buf.String(), "selfcheck started") {
		t.Errorf("adapter not writing, output: %s", buf.String())
	}
}

func TestNewDefaultLogger(t *testing.T) {
	if NewDefaultLogger() == nil {
		t.Fatal("NewDefaultLogger returned nil")
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "selfcheck")

	logger.Info("hello")
	output := buf.String()

	if !strings.Contains(output, `"component":"selfcheck"`) {
		t.Errorf("NewLogger should include component field, got: %s", output)
	}
	if !strings.Contains(output, "hello") {
		t.Errorf("NewLogger should include message, got: %s", output)
	}
}

func TestNewNopLogger(t *testing.T) {
	logger := NewNopLogger()
	logger.Info("discarded", Int("cases", 1))
	logger.Error("discarded", errors.New("boom"))
}

func TestNewConsoleLogger_FiltersLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsoleLogger(&buf, "dev", zerolog.InfoLevel)

	logger.Debug("hidden")
	logger.Info("shown", Int("cases", 3))

	output := buf.String()
	if strings.Contains(output, "hidden") {
		t.Errorf("debug entry should be filtered, got: %s", output)
	}
	if !strings.Contains(output, "shown") || !strings.Contains(output, "cases=3") {
		t.Errorf("info entry missing, got: %s", output)
	}
}

func TestZerologAdapter_Info(t *testing.T) {
	tests := []struct {
		name     string
		msg      string
		fields   []Field
		contains []string
	}{
		{
			name:     "no fields",
			msg:      "demo finished",
			contains: []string{"demo finished", "info"},
		},
		{
			name:     "with string field",
			msg:      "format selected",
			fields:   []Field{String("format", "hex")},
			contains: []string{"format selected", "hex"},
		},
		{
			name:     "with multiple fields",
			msg:      "selfcheck finished",
			fields:   []Field{Int("cases", 1000), Int("workers", 4)},
			contains: []string{"selfcheck finished", "1000", "4"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			NewLogger(&buf, "test").Info(tt.msg, tt.fields...)

			output := buf.String()
			for _, want := range tt.contains {
				if !strings.Contains(output, want) {
					t.Errorf("output should contain %q, got: %s", want, output)
				}
			}
		})
	}
}

func TestZerologAdapter_Error(t *testing.T) {
	tests := []struct {
		name     string
		msg      string
		err      error
		fields   []Field
		contains []string
	}{
		{
			name:     "with error",
			msg:      "selfcheck failed",
			err:      errors.New(`property "add" failed`),
			contains: []string{"selfcheck failed", "property", "error"},
		},
		{
			name:     "with nil error",
			msg:      "warning",
			contains: []string{"warning", "error"},
		},
		{
			name:     "with error and fields",
			msg:      "case failed",
			err:      errors.New("mismatch"),
			fields:   []Field{String("property", "roundtrip"), Int("case", 3)},
			contains: []string{"case failed", "mismatch", "roundtrip", "3"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			NewLogger(&buf, "test").Error(tt.msg, tt.err, tt.fields...)

			output := buf.String()
			for _, want := range tt.contains {
				if !strings.Contains(output, want) {
					t.Errorf("output should contain %q, got: %s", want, output)
				}
			}
		})
	}
}

func TestZerologAdapter_Debug(t *testing.T) {
	var buf bytes.Buffer
	logger := NewZerologAdapter(zerolog.New(&buf).Level(zerolog.DebugLevel))

	logger.Debug("operand generated", Int("limbs", 4))

	output := buf.String()
	if !strings.Contains(output, "operand generated") || !strings.Contains(output, "debug") {
		t.Errorf("Debug output incomplete, got: %s", output)
	}
}

func TestZerologAdapter_PrintfPrintln(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "test")

	logger.Printf("checked %d of %d", 5, 10)
	logger.Println("limbs", 3)

	output := buf.String()
	if !strings.Contains(output, "checked 5 of 10") {
		t.Errorf("Printf should format message, got: %s", output)
	}
	if !strings.Contains(output, "limbs 3") {
		t.Errorf("Println should join arguments, got: %s", output)
	}
}

func TestZerologAdapter_applyFields(t *testing.T) {
	tests := []struct {
		name     string
		field    Field
		contains string
	}{
		{"string field", Field{Key: "str", Value: "hello"}, "hello"},
		{"int field", Field{Key: "num", Value: 42}, "42"},
		{"int64 field", Field{Key: "big", Value: int64(-9223372036854775808)}, "-9223372036854775808"},
		{"uint64 field", Field{Key: "huge", Value: uint64(18446744073709551615)}, "18446744073709551615"},
		{"float64 field", Field{Key: "pi", Value: 3.14}, "3.14"},
		{"error field", Field{Key: "err", Value: errors.New("oops")}, "oops"},
		{"bool field", Field{Key: "flag", Value: true}, "true"},
		{"duration field", Field{Key: "d", Value: 1500 * time.Millisecond}, "1500"},
		{"interface field", Field{Key: "limbs", Value: []uint32{7, 9}}, "[7,9]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			NewLogger(&buf, "test").Info("test", tt.field)

			if output := buf.String(); !strings.Contains(output, tt.contains) {
				t.Errorf("applyFields should handle %s, output: %s", tt.name, output)
			}
		})
	}
}

func TestStdLoggerAdapter(t *testing.T) {
	tests := []struct {
		name     string
		log      func(Logger)
		contains []string
	}{
		{
			name:     "info without fields",
			log:      func(l Logger) { l.Info("demo") },
			contains: []string{"[INFO]", "demo"},
		},
		{
			name:     "info with fields",
			log:      func(l Logger) { l.Info("format", String("format", "dec")) },
			contains: []string{"[INFO]", "format=dec"},
		},
		{
			name:     "error with fields",
			log:      func(l Logger) { l.Error("failed", errors.New("boom"), Int("case", 2)) },
			contains: []string{"[ERROR]", "failed", "boom", "case=2"},
		},
		{
			name:     "debug",
			log:      func(l Logger) { l.Debug("trace", Int("line", 42)) },
			contains: []string{"[DEBUG]", "trace", "line=42"},
		},
		{
			name:     "printf",
			log:      func(l Logger) { l.Printf("value is %d", 123) },
			contains: []string{"value is 123"},
		},
		{
			name:     "println",
			log:      func(l Logger) { l.Println("a", "b", "c") },
			contains: []string{"a b c"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.log(NewStdLoggerAdapter(log.New(&buf, "", 0)))

			output := buf.String()
			for _, want := range tt.contains {
				if !strings.Contains(output, want) {
					t.Errorf("output should contain %q, got: %s", want, output)
				}
			}
		})
	}
}

func TestLoggerInterface(t *testing.T) {
	var buf bytes.Buffer
	var _ Logger = NewLogger(&buf, "test")
	var _ Logger = NewStdLoggerAdapter(log.New(&buf, "", 0))
}
