package handler

import (
	"io"
	"os"
	"sync"
)

// StreamHandler writes rendered output to an already-open stream,
// typically stdout or stderr, but any io.Writer works — a bytes.Buffer
// makes a convenient in-memory sink for tests.
type StreamHandler struct {
	w io.Writer
}

// NewStreamHandler creates a handler around w. The handler does not
// take ownership of the stream.
func NewStreamHandler(w io.Writer) *StreamHandler {
	return &StreamHandler{w: w}
}

// Write writes the message to the stream
func (h *StreamHandler) Write(text string) error {
	_, err := io.WriteString(h.w, text)
	return err
}

// Close is a no-op; the stream belongs to the caller
func (h *StreamHandler) Close() error {
	return nil
}

// StdOut returns a new handler writing to standard output
func StdOut() *StreamHandler {
	return NewStreamHandler(os.Stdout)
}

// StdErr returns a new handler writing to standard error
func StdErr() *StreamHandler {
	return NewStreamHandler(os.Stderr)
}

var (
	defaultOnce    sync.Once
	defaultHandler *StreamHandler
)

// Default returns the shared stdout handler used by loggers built
// without any sink. It is created on first use and lives for the
// process lifetime; every caller gets the same instance.
func Default() *StreamHandler {
	defaultOnce.Do(func() {
		defaultHandler = StdOut()
	})
	return defaultHandler
}
