package micro

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// silentLogger drops every record; it is what Logger returns until
// SetLogger installs something else.
var silentLogger = slog.New(slog.DiscardHandler)

// currentLogger is read from the frame loop and written from setup code,
// so it sits behind an atomic pointer.
var currentLogger atomic.Pointer[slog.Logger]

// SetLogger routes micro's diagnostics, and those of sound and termview,
// to l. A nil l turns logging back off.
//
// What gets logged where:
//   - Debug: per-frame timing and entity counts when RunConfig.Debug is set,
//     rejected Section regions, decoded images, overflow modes clipped as
//     cutoff.
//   - Info: Run starting a window, the speaker starting, sound directories
//     loaded.
//   - Warn: WriteInto calls that draw nothing (same buffer, unknown pixel
//     mode), glyph faces that fail to render, screenshots that fail to save.
//
// For example, to see frame stats on stderr:
//
//	micro.SetLogger(slog.New(slog.NewTextHandler(os.Stderr,
//		&slog.HandlerOptions{Level: slog.LevelDebug})))
func SetLogger(l *slog.Logger) {
	currentLogger.Store(l)
}

// Logger returns the logger set by SetLogger, or one that discards
// everything.
func Logger() *slog.Logger {
	if l := currentLogger.Load(); l != nil {
		return l
	}
	return silentLogger
}

// debugEnabled reports whether Debug records would be kept, so hot paths
// can skip building attributes.
func debugEnabled() bool {
	return Logger().Enabled(context.Background(), slog.LevelDebug)
}
