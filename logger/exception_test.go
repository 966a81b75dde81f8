package logger

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	pkgerrors "github.com/pkg/errors"
)

func TestLogger_Exception(t *testing.T) {
	var buf bytes.Buffer
	l := newBufferLogger(t, &buf, func(b *Builder) *Builder {
		return b.WithTemplate("{level} {name}: {message}")
	})

	err := pkgerrors.New("division by zero")
	if logErr := l.Exception("caught", err); logErr != nil {
		t.Fatal(logErr)
	}

	out := buf.String()
	if !strings.HasPrefix(out, "ERROR test: caught\n") {
		t.Errorf("output %q does not start with the ERROR line", out)
	}
	if !strings.Contains(out, "division by zero") {
		t.Errorf("output %q does not contain the error message", out)
	}
	// pkg/errors attaches frames at the New call site, so the trace
	// names this test function
	if !strings.Contains(out, "TestLogger_Exception") {
		t.Errorf("output %q does not contain the originating frame", out)
	}
}

func TestLogger_ExceptionPlainError(t *testing.T) {
	var buf bytes.Buffer
	l := newBufferLogger(t, &buf, func(b *Builder) *Builder {
		return b.WithTemplate("{level}: {message}")
	})

	if err := l.Exception("caught", fmt.Errorf("plain failure")); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	if !strings.Contains(out, "plain failure") {
		t.Errorf("output %q does not contain the error message", out)
	}
	if !strings.Contains(out, "*errors.errorString") {
		t.Errorf("output %q does not contain the error type", out)
	}
	// Without attached frames the current goroutine stack is captured,
	// starting at the call site rather than inside the library
	if !strings.Contains(out, "TestLogger_ExceptionPlainError") {
		t.Errorf("output %q does not contain the calling frame", out)
	}
	if strings.Contains(out, "formatTrace") || strings.Contains(out, "writeStack") {
		t.Errorf("output %q contains library frames", out)
	}
	first := firstStackFrame(out)
	if !strings.Contains(first, "TestLogger_ExceptionPlainError") {
		t.Errorf("trace starts at %q, want the calling frame", first)
	}
}

// firstStackFrame returns the first stack frame line of an exception
// output: the line after the "type: message" header.
func firstStackFrame(out string) string {
	lines := strings.Split(out, "\n")
	for i, line := range lines {
		if strings.Contains(line, "*errors.errorString") && i+1 < len(lines) {
			return lines[i+1]
		}
	}
	return ""
}

func TestLogger_ExceptionNilError(t *testing.T) {
	var buf bytes.Buffer
	l := newBufferLogger(t, &buf, func(b *Builder) *Builder {
		return b.WithTemplate("{level}: {message}")
	})

	if err := l.Exception("spurious", nil); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "ERROR: spurious\nno active error\n" {
		t.Errorf("output = %q", got)
	}
}

func TestLogger_ExceptionAlwaysError(t *testing.T) {
	var buf bytes.Buffer
	l := newBufferLogger(t, &buf, func(b *Builder) *Builder {
		return b.WithLevel(DebugLevel).WithTemplate("{level}: {message}")
	})

	if err := l.Exception("boom", nil); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(buf.String(), "ERROR:") {
		t.Errorf("exception logged at %q, want ERROR", buf.String())
	}
}

func TestLogger_ExceptionFromRecover(t *testing.T) {
	var buf bytes.Buffer
	l := newBufferLogger(t, &buf, func(b *Builder) *Builder {
		return b.WithTemplate("{level}: {message}")
	})

	func() {
		defer func() {
			if r := recover(); r != nil {
				err, ok := r.(error)
				if !ok {
					err = fmt.Errorf("%v", r)
				}
				if logErr := l.Exception("recovered", err); logErr != nil {
					t.Error(logErr)
				}
			}
		}()
		panic(fmt.Errorf("panic value"))
	}()

	out := buf.String()
	if !strings.Contains(out, "recovered") || !strings.Contains(out, "panic value") {
		t.Errorf("output %q missing recovered error details", out)
	}
}

func TestFormatTrace_PkgErrorsWrap(t *testing.T) {
	base := fmt.Errorf("root cause")
	wrapped := pkgerrors.Wrap(base, "while wrapping")

	trace := formatTrace(wrapped)
	if !strings.Contains(trace, "while wrapping") || !strings.Contains(trace, "root cause") {
		t.Errorf("trace %q missing wrap context", trace)
	}
	if !strings.Contains(trace, "TestFormatTrace_PkgErrorsWrap") {
		t.Errorf("trace %q missing the wrap-site frame", trace)
	}
}
