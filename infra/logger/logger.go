package logger

import (
	"io"
	"sync"

	corelogger "github.com/samrudhimadankar/Optimal-Resource-Allocation-System-Deploy/core/logger"
)

// Logger mirrors the core logger interface.
type Logger = corelogger.Logger

// NopLogger implements Logger with no-op methods.
type NopLogger = corelogger.NopLogger

// Options controls the output of loggers created by New.
type Options struct {
	// Level is one of debug, info, warn, error. Empty means info.
	Level string
	// Format is "json" or "console". Empty selects console when APP_ENV=dev.
	Format string
	// Out defaults to os.Stderr.
	Out io.Writer
}

var (
	mu   sync.RWMutex
	opts Options
)

// Configure sets the options used by subsequent calls to New.
func Configure(o Options) {
	mu.Lock()
	opts = o
	mu.Unlock()
}

// New returns a Logger for the given component using the configured options.
func New(component string) Logger {
	mu.RLock()
	o := opts
	mu.RUnlock()
	return NewZerologLogger(component, o)
}
