package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
)

func TestMultiHandler_Tee(t *testing.T) {
	var console, file bytes.Buffer
	h := NewMultiHandler(
		NewHandler(&console, &slog.HandlerOptions{Level: slog.LevelWarn}),
		NewFormatHandler(&file, FormatJSON, slog.LevelDebug),
	)
	logger := slog.New(h).With("cmd", "resolve").WithGroup("engine")

	logger.Debug("resolved", "cpus", 4)
	logger.Warn("slow filesystem")

	if strings.Contains(console.String(), "resolved") {
		t.Errorf("console got debug record: %q", console.String())
	}
	if !strings.Contains(console.String(), "slow filesystem") {
		t.Errorf("console missing warn record: %q", console.String())
	}

	out := file.String()
	for _, want := range []string{`"msg":"resolved"`, `"cmd":"resolve"`, `"engine":{"cpus":4}`, `"msg":"slow filesystem"`} {
		if !strings.Contains(out, want) {
			t.Errorf("file output missing %s: %q", want, out)
		}
	}
}

func TestMultiHandler_Enabled(t *testing.T) {
	h := NewMultiHandler(
		slog.NewTextHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelError}),
		slog.NewTextHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelInfo}),
	)
	ctx := context.Background()

	if !h.Enabled(ctx, slog.LevelInfo) {
		t.Error("expected Info to be enabled by the second handler")
	}
	if h.Enabled(ctx, slog.LevelDebug) {
		t.Error("expected Debug to be disabled")
	}
}

type failingHandler struct {
	slog.Handler
	err error
}

func (f failingHandler) Handle(context.Context, slog.Record) error { return f.err }

func TestMultiHandler_CombinesErrors(t *testing.T) {
	errA := errors.New("disk full")
	errB := errors.New("closed pipe")
	var buf bytes.Buffer
	h := NewMultiHandler(
		failingHandler{Handler: slog.NewTextHandler(&buf, nil), err: errA},
		slog.NewTextHandler(&buf, nil),
		failingHandler{Handler: slog.NewTextHandler(&buf, nil), err: errB},
	)

	err := h.Handle(context.Background(), slog.NewRecord(
		time.Time{}, slog.LevelInfo, "msg", 0))
	if !errors.Is(err, errA) {
		t.Errorf("expected first error in chain, got %v", err)
	}
	if !strings.Contains(buf.String(), "msg=msg") {
		t.Errorf("healthy handler did not run: %q", buf.String())
	}
}
