// Package debug carries the tracing toggle used to diagnose page encoding.
//
// Tracing is off by default; programs turn it on with Toggle, for example from
// a command line flag.
package debug

import (
	"log"
	"os"
	"sync/atomic"
)

var (
	enabled int32 = 0
	logger  atomic.Pointer[log.Logger]
)

func init() { SetOutput(nil) }

// Toggle turns on/off debug mode
func Toggle(on bool) {
	val := int32(0)
	if on {
		val = 1
	}
	atomic.StoreInt32(&enabled, val)
}

// Enabled reports whether debug mode is on.
func Enabled() bool {
	return atomic.LoadInt32(&enabled) == 1
}

// SetOutput redirects debug logs to l. Passing nil restores the default
// logger writing to stderr.
func SetOutput(l *log.Logger) {
	if l == nil {
		l = log.New(os.Stderr, "parquet: ", log.LstdFlags|log.Lmicroseconds)
	}
	logger.Store(l)
}

// Format a log line and writes it to stderr if debug is enabled
func Format(format string, args ...interface{}) {
	if !Enabled() {
		return
	}
	logger.Load().Printf(format, args...)
}
