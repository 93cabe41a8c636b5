package hwy

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip message formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called concurrently with logging from any goroutine.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger shared by hwy, the contrib packages, the
// task runner and the wasm boundary. By default nothing is logged.
// Pass nil to restore the silent default.
//
// Kernels themselves never log. Levels used by the surrounding layers:
//   - [slog.LevelDebug]: per-task timings, arena allocations
//   - [slog.LevelInfo]: lifecycle (hook installed, task stream opened/closed)
//   - [slog.LevelWarn]: rejected task requests
//   - [slog.LevelError]: kernel panics reported by the diagnostic hook
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger.
// Sub-packages call this so they share one configuration without import cycles.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
