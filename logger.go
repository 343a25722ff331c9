package hycol

import (
	"log/slog"
	"sync/atomic"
)

// current holds the logger shared by every blend. It is swapped atomically
// so SetLogger may race with blends on other goroutines.
var current atomic.Pointer[slog.Logger]

func init() {
	current.Store(silent())
}

func silent() *slog.Logger { return slog.New(slog.DiscardHandler) }

// SetLogger routes hycol diagnostics to l. Blends forward it to the
// geodesic mean solver, which logs each iteration at [slog.LevelDebug]
// and a blend that hits its iteration cap at [slog.LevelWarn]. The render
// package logs one debug record per mesh.
//
// Nothing is logged by default; SetLogger(nil) restores that.
//
//	hycol.SetLogger(slog.New(slog.NewTextHandler(os.Stderr,
//	    &slog.HandlerOptions{Level: slog.LevelDebug})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silent()
	}
	current.Store(l)
}

// Logger returns the logger set by SetLogger.
func Logger() *slog.Logger {
	return current.Load()
}
