package logger

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/pkg/errors"

	"github.com/philipp01105/tlog/core"
)

// stackTracer is the interface carried by errors created or wrapped by
// github.com/pkg/errors.
type stackTracer interface {
	StackTrace() errors.StackTrace
}

// Exception logs at ERROR level and appends a trace block for the
// error currently being handled. Call it from the failure path with
// the in-flight error:
//
//	if err := step(); err != nil {
//	    log.Exception("step failed", err)
//	}
//
// A nil error degrades to a "no active error" trace instead of
// failing.
func (l *Logger) Exception(message string, err error, overrides ...core.Field) error {
	return l.log(core.ErrorLevel, message+"\n"+formatTrace(err), overrides)
}

// formatTrace renders the error's type and message followed by a
// stack: the one attached to the error when it carries pkg/errors
// frames, the current goroutine's — starting at the Exception call
// site — otherwise.
func formatTrace(err error) string {
	if err == nil {
		return "no active error"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%T: %v", err, err)
	if st, ok := err.(stackTracer); ok {
		fmt.Fprintf(&sb, "%+v", st.StackTrace())
	} else {
		sb.WriteByte('\n')
		writeStack(&sb)
	}
	return strings.TrimRight(sb.String(), "\n")
}

// writeStack appends the current goroutine's stack beginning at the
// caller of Exception, so the trace shows the failure site rather than
// the logging machinery.
func writeStack(sb *strings.Builder) {
	pc := make([]uintptr, 32)
	// skip runtime.Callers, writeStack, formatTrace, and Exception
	n := runtime.Callers(4, pc)
	frames := runtime.CallersFrames(pc[:n])
	for {
		frame, more := frames.Next()
		fmt.Fprintf(sb, "%s\n\t%s:%d\n", frame.Function, frame.File, frame.Line)
		if !more {
			break
		}
	}
}
