package collections

import (
	"log/slog"
	"sync/atomic"
)

var logger atomic.Pointer[slog.Logger]

func init() {
	logger.Store(slog.New(slog.DiscardHandler))
}

// SetLogger installs the logger used to report rejected values (Debug) and
// store faults (Error). Passing nil restores the default, which discards
// everything. Safe to call from multiple goroutines.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.DiscardHandler)
	}
	logger.Store(l)
}

func log() *slog.Logger { return logger.Load() }
