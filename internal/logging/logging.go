// Package logging is a small component-tagged wrapper around the standard logger.
package logging

import (
	"io"
	"log"
)

// Logger writes lines of the form "[LEVEL] component: message".
type Logger struct {
	l     *log.Logger
	debug bool
}

// New returns a logger writing to w. Debugf lines are dropped unless debug is set.
func New(w io.Writer, debug bool) *Logger {
	return &Logger{l: log.New(w, "", log.LstdFlags), debug: debug}
}

// Nop discards everything.
func Nop() *Logger { return New(io.Discard, false) }

func (lg *Logger) Infof(component, format string, args ...any) {
	lg.write("INFO", component, format, args...)
}

func (lg *Logger) Errorf(component, format string, args ...any) {
	lg.write("ERROR", component, format, args...)
}

func (lg *Logger) Debugf(component, format string, args ...any) {
	if lg == nil || !lg.debug {
		return
	}
	lg.write("DEBUG", component, format, args...)
}

func (lg *Logger) DebugEnabled() bool { return lg != nil && lg.debug }

func (lg *Logger) write(level, component, format string, args ...any) {
	if lg == nil {
		return
	}
	lg.l.Printf("["+level+"] "+component+": "+format, args...)
}
