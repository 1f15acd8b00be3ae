// Package trace gates debug logging for the layout, render and loader stages.
//
// Output goes through the standard log package. Nothing is printed until Enable(true)
// is called, except through Warnf which always logs.
package trace

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync/atomic"
)

var (
	enabled atomic.Bool
	out     atomic.Pointer[log.Logger]
)

func init() {
	out.Store(log.New(os.Stderr, "", log.LstdFlags))
}

// Enable turns debug logging on or off.
func Enable(on bool) { enabled.Store(on) }

// Enabled reports whether debug logging is on.
func Enabled() bool { return enabled.Load() }

// SetOutput redirects all trace output.
func SetOutput(w io.Writer) {
	out.Store(log.New(w, "", log.LstdFlags))
}

// Logger logs with a fixed component prefix such as "layout".
type Logger struct {
	prefix string
}

// New returns a Logger whose lines start with "component: ".
func New(component string) Logger {
	return Logger{prefix: component + ": "}
}

// Debugf logs only while debugging is enabled.
func (l Logger) Debugf(format string, args ...any) {
	if !enabled.Load() {
		return
	}
	out.Load().Output(2, l.prefix+fmt.Sprintf(format, args...))
}

// Warnf logs a condition the user should see regardless of the debug flag.
func (l Logger) Warnf(format string, args ...any) {
	out.Load().Output(2, l.prefix+fmt.Sprintf(format, args...))
}
