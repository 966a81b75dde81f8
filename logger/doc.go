// Package logger is the public API of tlog. Most users only need to
// import this package.
//
// A Logger formats leveled messages against a template of {key}
// placeholders and delivers the rendered text to one or more handlers.
// Values come from three places, later ones winning on key collision:
// the logger's defaults, the computed timestamp/level/name/message,
// and per-call overrides. Any value may be lazy — a zero-argument
// producer resolved only when the message actually passes the level
// gate:
//
//	log, _ := logger.NewBuilder("api").
//	    WithTemplate("{timestamp} {level} {name} {request_id}: {message}").
//	    WithDefaults(logger.Lazy("request_id", nextRequestID)).
//	    Build()
//
//	log.Info("listening", logger.Int("port", 8080))
//
// A template key with no supplied value renders as a single backspace
// character, a deliberate sentinel for "not supplied" rather than an
// error.
//
// The timestamp, level, and name overrides use a truthiness rule: an
// override resolving to the empty string is treated as not provided
// and the computed value is used instead. This mirrors the library's
// long-standing behavior and is intentional.
//
// Logging methods return any render or sink-write error to the caller;
// fan-out over multiple handlers stops at the first failure. Filtered
// calls are free of side effects entirely — producers do not run.
//
// The package also keeps a default Logger (INFO, default template,
// shared stdout handler), built lazily on first use. The package-level
// functions Info, Error, Exception, etc. delegate to it:
//
//	logger.Info("ready")
//
// A Logger provides no internal locking. Calls from a single goroutine
// are rendered and delivered in invocation order; concurrent use of
// one logger or one handler is the caller's responsibility to
// serialize.
package logger
