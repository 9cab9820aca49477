// Package logging owns the single structured logger shared by every CLI
// command and outer-layer package. The property synthesis core never
// imports this package: it is a pure function and takes no logger.
package logging

import (
	"sync"

	"go.uber.org/zap"
)

var (
	mu     sync.RWMutex
	logger = zap.NewNop()
)

// Init configures the package-level logger. Normal runs get zap's
// production config (JSON, info level); --verbose switches to the
// development config (console-friendly, debug level).
func Init(verbose bool) error {
	var l *zap.Logger
	var err error
	if verbose {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}
	if err != nil {
		return err
	}

	mu.Lock()
	logger = l
	mu.Unlock()
	return nil
}

// Get returns the current logger. Safe for concurrent use; defaults to a
// no-op logger until Init is called, so packages can log unconditionally
// without a nil check (tests rely on this default).
func Get() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

// Sync flushes any buffered log entries. Called once from main before exit.
func Sync() {
	_ = Get().Sync()
}
