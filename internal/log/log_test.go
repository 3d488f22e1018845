package log

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"
)

func TestAppendCtx(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, nil)

	ctx := AppendCtx(context.Background(), slog.String("profile", "p1"))
	ctx = AppendCtx(ctx, slog.Uint64("log_id", 42))
	logger.InfoContext(ctx, "hello")

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("decoding log line: %v", err)
	}
	if record["profile"] != "p1" {
		t.Errorf("expected profile attr %q, got %v", "p1", record["profile"])
	}
	if record["log_id"] != float64(42) {
		t.Errorf("expected log_id attr 42, got %v", record["log_id"])
	}
}

func TestAppendCtx_SiblingsDoNotShareAttrs(t *testing.T) {
	base := AppendCtx(context.Background(), slog.String("a", "1"))
	left := AppendCtx(base, slog.String("b", "2"))
	right := AppendCtx(base, slog.String("c", "3"))

	leftAttrs := left.Value(slogFields).([]slog.Attr)
	rightAttrs := right.Value(slogFields).([]slog.Attr)
	if len(leftAttrs) != 2 || len(rightAttrs) != 2 {
		t.Fatalf("expected 2 attrs each, got %d and %d", len(leftAttrs), len(rightAttrs))
	}
	if leftAttrs[1].Key != "b" || rightAttrs[1].Key != "c" {
		t.Errorf("sibling contexts leaked attrs: %v / %v", leftAttrs, rightAttrs)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{in: "", want: slog.LevelDebug},
		{in: "debug", want: slog.LevelDebug},
		{in: "INFO", want: slog.LevelInfo},
		{in: "warning", want: slog.LevelWarn},
		{in: "Error", want: slog.LevelError},
		{in: "loud", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
