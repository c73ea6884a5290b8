package curly

import (
	"bytes"
	"context"
	"encoding/hex"
	"log/slog"
	"testing"
	"time"
)

func TestCLIHandler_Handle(t *testing.T) {
	t.Parallel()

	fixedTime := time.Date(2026, 1, 17, 12, 34, 56, 0, time.UTC)

	tests := []struct {
		name     string
		logLevel slog.Level
		message  string
		category string
		want     string
	}{
		{
			name:     "debug level with parse category",
			logLevel: slog.LevelDebug,
			message:  `parsing placeholder "name:>5"`,
			category: LogCategoryParse,
			want:     "2026-01-17 12:34:56 [DEBUG] parse: parsing placeholder \"name:>5\"\n",
		},
		{
			name:     "debug level with render category",
			logLevel: slog.LevelDebug,
			message:  "rendered hex value",
			category: LogCategoryRender,
			want:     "2026-01-17 12:34:56 [DEBUG] render: rendered hex value\n",
		},
		{
			name:     "info level without category",
			logLevel: slog.LevelInfo,
			message:  "render complete",
			category: "",
			want:     "2026-01-17 12:34:56 [INFO] render complete\n",
		},
		{
			name:     "warn level without category",
			logLevel: slog.LevelWarn,
			message:  "something happened",
			category: "",
			want:     "2026-01-17 12:34:56 [WARN] something happened\n",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			h := NewCLIHandler(&buf, slog.LevelDebug)

			r := slog.NewRecord(fixedTime, tt.logLevel, tt.message, 0)
			if tt.category != "" {
				r.AddAttrs(LogAttrKeyCategory.Attr(tt.category))
			}

			if err := h.Handle(context.Background(), r); err != nil {
				t.Fatal(err)
			}
			if got := buf.String(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCLIHandler_WithAttrs(t *testing.T) {
	t.Parallel()

	fixedTime := time.Date(2026, 1, 17, 12, 34, 56, 0, time.UTC)

	var buf bytes.Buffer
	h := NewCLIHandler(&buf, slog.LevelDebug)
	withID := h.WithAttrs([]slog.Attr{LogAttrKeyCmdID.Attr("a1b2c3d4")})

	r := slog.NewRecord(fixedTime, slog.LevelDebug, "resolving", 0)
	r.AddAttrs(LogAttrKeyCategory.Attr(LogCategoryResolve))
	if err := withID.Handle(context.Background(), r); err != nil {
		t.Fatal(err)
	}

	want := "2026-01-17 12:34:56 [DEBUG] [a1b2c3d4] resolve: resolving\n"
	if got := buf.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestCLIHandler_Enabled(t *testing.T) {
	t.Parallel()

	h := NewCLIHandler(&bytes.Buffer{}, slog.LevelInfo)
	if h.Enabled(context.Background(), slog.LevelDebug) {
		t.Error("debug should be filtered at info level")
	}
	if !h.Enabled(context.Background(), slog.LevelWarn) {
		t.Error("warn should pass at info level")
	}
}

func TestNewNopLogger(t *testing.T) {
	t.Parallel()

	logger := NewNopLogger()
	if logger.Enabled(context.Background(), slog.LevelError) {
		t.Error("nop logger should discard even errors")
	}
}

func TestVerbosityToLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		verbosity int
		want      slog.Level
	}{
		{0, slog.LevelWarn},
		{1, slog.LevelInfo},
		{2, slog.LevelDebug},
		{5, slog.LevelDebug},
	}

	for _, tt := range tests {
		tt := tt
		if got := VerbosityToLevel(tt.verbosity); got != tt.want {
			t.Errorf("VerbosityToLevel(%d) = %v, want %v", tt.verbosity, got, tt.want)
		}
	}
}

func TestGenerateCommandID(t *testing.T) {
	t.Parallel()

	id := GenerateCommandID()
	if len(id) != DefaultCommandIDBytes*2 {
		t.Fatalf("len = %d, want %d", len(id), DefaultCommandIDBytes*2)
	}
	if _, err := hex.DecodeString(id); err != nil {
		t.Errorf("id %q is not hex: %v", id, err)
	}
}
