package idle

import (
	"log/slog"
	"sync"
)

var (
	logMu  sync.RWMutex
	logger *slog.Logger // nil means slog.Default()
)

// SetLogger sets the logger used for diagnostics, such as warnings about
// invalid tier symbols.
// Passing nil restores the default logger returned by [slog.Default].
// SetLogger is safe for concurrent use by multiple goroutines.
func SetLogger(l *slog.Logger) {
	logMu.Lock()
	defer logMu.Unlock()
	logger = l
}

// Logger returns the logger used for diagnostics.
func Logger() *slog.Logger {
	logMu.RLock()
	defer logMu.RUnlock()
	if logger == nil {
		return slog.Default()
	}
	return logger
}
