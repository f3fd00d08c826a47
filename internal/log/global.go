package log

import "sync"

var (
	globalMu sync.RWMutex
	global   *Logger
)

// SetDefaultLogger installs the process-wide logger. Called once from command
// setup after the configured log level is known.
func SetDefaultLogger(l *Logger) {
	globalMu.Lock()
	global = l
	globalMu.Unlock()
}

// DefaultLogger returns the process-wide logger, lazily falling back to the
// default configuration when setup has not run (library use, tests).
func DefaultLogger() *Logger {
	globalMu.RLock()
	l := global
	globalMu.RUnlock()

	if l == nil {
		l = Default()
		SetDefaultLogger(l)
	}
	return l
}
