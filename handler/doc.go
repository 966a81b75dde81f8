// Package handler provides the Handler interface and the built-in
// sinks that accept rendered log output.
//
// A Handler exposes a single write contract: it either delivers the
// text synchronously or returns an error. Delivery is entirely the
// handler's concern — the logger performs no retry, buffering, or
// suppression.
//
// Built-in handlers:
//
//   - StreamHandler wraps an already-open io.Writer (stdout, stderr,
//     an in-memory buffer). It does not own the stream; Close is a no-op.
//   - FileHandler owns a file opened eagerly at construction, in append
//     mode by default or truncate mode on request. Close syncs and
//     closes the file.
//
// Default returns a process-wide stdout StreamHandler, created lazily
// on first use and shared by every logger constructed without an
// explicit sink.
//
// Handlers provide no locking. A handler shared between loggers (or
// between goroutines) relies on its destination's own write semantics;
// callers needing stronger guarantees must serialize externally.
package handler
