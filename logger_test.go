package micro

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { SetLogger(nil) })
	return &buf
}

func TestLoggerDefaultIsSilent(t *testing.T) {
	if Logger().Enabled(t.Context(), slog.LevelError) {
		t.Error("default logger should discard everything")
	}
}

func TestLoggerWriteIntoWarnings(t *testing.T) {
	buf := captureLogs(t)

	fb := NewFrameBuffer(4, 4)
	if n := WriteInto(fb, fb, 0, 0, PixelOverwrite, OverflowCutoff); n != 0 {
		t.Errorf("self write = %d, want 0", n)
	}
	if !strings.Contains(buf.String(), "same buffer") {
		t.Errorf("missing self-write warning: %q", buf.String())
	}

	buf.Reset()
	WriteInto(NewFrameBuffer(1, 1), fb, 0, 0, PixelMode("blend"), OverflowCutoff)
	if !strings.Contains(buf.String(), "mode=blend") {
		t.Errorf("missing pixel mode warning: %q", buf.String())
	}
}

func TestLoggerSectionRejectedAtDebug(t *testing.T) {
	if debugEnabled() {
		t.Fatal("debug enabled before SetLogger")
	}
	buf := captureLogs(t)
	if !debugEnabled() {
		t.Fatal("debug disabled with a debug-level logger")
	}
	if _, err := NewFrameBuffer(4, 4).Section(2, 2, 4, 4); err == nil {
		t.Fatal("expected out-of-bounds error")
	}
	if !strings.Contains(buf.String(), "section rejected") {
		t.Errorf("missing debug record: %q", buf.String())
	}
}

func TestSetLoggerNilRestoresSilence(t *testing.T) {
	captureLogs(t)
	SetLogger(nil)
	if Logger().Enabled(t.Context(), slog.LevelError) {
		t.Error("SetLogger(nil) should restore the silent logger")
	}
}
