// Package logger fans structured log lines out to the configured backends.
// Calls before Init are dropped, which keeps library packages quiet in tests.
package logger

import "sync"

// Instance is a logging backend.
type Instance interface {
	Debug(message string, keyvals ...any)
	Info(message string, keyvals ...any)
	Warn(message string, keyvals ...any)
	Error(message string, keyvals ...any)
	Fatal(message string, keyvals ...any)
}

type fanout struct {
	instances []Instance
}

var (
	mu     sync.RWMutex
	global *fanout
)

// Init installs the backends every package-level call is dispatched to.
func Init(instances ...Instance) {
	mu.Lock()
	defer mu.Unlock()
	global = &fanout{instances: instances}
}

func current() *fanout {
	mu.RLock()
	defer mu.RUnlock()
	return global
}

// Debug logs at DEBUG level. Used for locally recovered per-element misses.
func Debug(message string, keyvals ...any) {
	if l := current(); l != nil {
		for _, i := range l.instances {
			i.Debug(message, keyvals...)
		}
	}
}

// Info logs at INFO level.
func Info(message string, keyvals ...any) {
	if l := current(); l != nil {
		for _, i := range l.instances {
			i.Info(message, keyvals...)
		}
	}
}

// Warn logs at WARN level.
func Warn(message string, keyvals ...any) {
	if l := current(); l != nil {
		for _, i := range l.instances {
			i.Warn(message, keyvals...)
		}
	}
}

// Error logs at ERROR level.
func Error(message string, keyvals ...any) {
	if l := current(); l != nil {
		for _, i := range l.instances {
			i.Error(message, keyvals...)
		}
	}
}

// Fatal logs at FATAL level; the console backend exits the process.
func Fatal(message string, keyvals ...any) {
	if l := current(); l != nil {
		for _, i := range l.instances {
			i.Fatal(message, keyvals...)
		}
	}
}
