// Package logging wires the module's diagnostic tracing through zerolog, the
// same way badu-term/log does it for the terminal engine: a ConsoleWriter
// sink, short single-letter field names, and the standard log package
// redirected through it so existing log.Printf call sites keep working.
package logging

import (
	stdLog "log"
	"os"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var (
	initOnce  sync.Once
	verbosity int32
)

// Init sets up global logging. out defaults to os.Stderr when nil, matching
// luit's own behavior of sending Message/Warning/FatalError to the
// controlling terminal rather than a log file.
func Init(out *os.File) {
	initOnce.Do(func() {
		if out == nil {
			out = os.Stderr
		}
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		zerolog.TimestampFieldName = "t"
		zerolog.LevelFieldName = "l"
		zerolog.MessageFieldName = "m"

		stdLog.SetFlags(stdLog.Lshortfile)
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: out})
		stdLog.SetOutput(log.Logger)
	})
}

// SetVerbosity sets the -v/-vv verbosity level consulted by Verbose.
func SetVerbosity(level int) {
	atomic.StoreInt32(&verbosity, int32(level))
}

// Verbose logs msg at the given level, if the current verbosity is at least
// that level. This is the Go shape of luit.h's VERBOSE(level, params) macro.
func Verbose(level int, msg string, fields map[string]interface{}) {
	if int(atomic.LoadInt32(&verbosity)) < level {
		return
	}
	evt := log.Debug()
	for k, v := range fields {
		evt = evt.Interface(k, v)
	}
	evt.Msg(msg)
}

// Warning logs a non-fatal condition, the Go shape of luit.c's Warning().
func Warning(msg string, fields map[string]interface{}) {
	evt := log.Warn()
	for k, v := range fields {
		evt = evt.Interface(k, v)
	}
	evt.Msg(msg)
}

// Fatal logs msg and terminates the process with a non-zero exit code, the
// Go shape of luit.c's FatalError().
func Fatal(msg string, fields map[string]interface{}) {
	evt := log.Fatal()
	for k, v := range fields {
		evt = evt.Interface(k, v)
	}
	evt.Msg(msg)
}
