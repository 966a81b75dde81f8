package logger

import (
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/philipp01105/tlog/core"
	"github.com/philipp01105/tlog/formatter"
	"github.com/philipp01105/tlog/handler"
)

// timestampLayout renders local time as ISO 8601 with microsecond
// precision and no zone designator.
const timestampLayout = "2006-01-02T15:04:05.000000"

// Logger renders leveled messages against a template and fans the
// result out to its handlers. A Logger belongs to its creator;
// handlers may be shared between loggers. The only supported
// post-construction mutation is SetTemplate.
type Logger struct {
	name     string
	level    core.Level
	tmpl     *formatter.Template
	handlers []handler.Handler
	newlines bool
	defaults []core.Field
}

// Builder provides a fluent API for building Logger instances
type Builder struct {
	name     string
	level    core.Level
	template string
	handlers []handler.Handler
	newlines bool
	defaults []core.Field
}

// NewBuilder creates a builder for a logger with the given name
func NewBuilder(name string) *Builder {
	return &Builder{
		name:     name,
		level:    core.InfoLevel,
		template: formatter.DefaultTemplate,
		newlines: true,
	}
}

// WithLevel sets the minimum level this logger outputs
func (b *Builder) WithLevel(level core.Level) *Builder {
	b.level = level
	return b
}

// WithTemplate sets the output template
func (b *Builder) WithTemplate(template string) *Builder {
	b.template = template
	return b
}

// WithHandler appends a single handler
func (b *Builder) WithHandler(h handler.Handler) *Builder {
	b.handlers = append(b.handlers, h)
	return b
}

// WithHandlers appends several handlers. Combining WithHandler and
// WithHandlers includes all of them, in call order.
func (b *Builder) WithHandlers(hs ...handler.Handler) *Builder {
	b.handlers = append(b.handlers, hs...)
	return b
}

// WithNewlines controls trailing-newline normalization. When enabled
// (the default), rendered output that does not already end in a
// newline gains exactly one.
func (b *Builder) WithNewlines(enabled bool) *Builder {
	b.newlines = enabled
	return b
}

// WithDefaults appends default template values, literal or lazy. A
// default applies whenever a log call supplies no override for its key.
func (b *Builder) WithDefaults(fields ...core.Field) *Builder {
	b.defaults = append(b.defaults, fields...)
	return b
}

// Build creates the Logger. The template's key set is derived here.
// When no handler was configured the shared stdout handler is used, so
// the handler list is never empty after Build.
func (b *Builder) Build() (*Logger, error) {
	if b.name == "" {
		return nil, errors.New("logger: name is required")
	}

	hs := b.handlers
	if len(hs) == 0 {
		hs = []handler.Handler{handler.Default()}
	}

	return &Logger{
		name:     b.name,
		level:    b.level,
		tmpl:     formatter.Parse(b.template),
		handlers: hs,
		newlines: b.newlines,
		defaults: b.defaults,
	}, nil
}

// Name returns the logger's name
func (l *Logger) Name() string {
	return l.name
}

// Level returns the logger's minimum output level
func (l *Logger) Level() core.Level {
	return l.level
}

// Template returns the current template text
func (l *Logger) Template() string {
	return l.tmpl.String()
}

// SetTemplate replaces the output template. The key set is re-derived
// here, so the logger never renders against a stale key list.
func (l *Logger) SetTemplate(template string) {
	l.tmpl = formatter.Parse(template)
}

// Debug logs a debug level message
func (l *Logger) Debug(message string, overrides ...core.Field) error {
	return l.log(core.DebugLevel, message, overrides)
}

// Info logs an info level message
func (l *Logger) Info(message string, overrides ...core.Field) error {
	return l.log(core.InfoLevel, message, overrides)
}

// Warning logs a warning level message
func (l *Logger) Warning(message string, overrides ...core.Field) error {
	return l.log(core.WarningLevel, message, overrides)
}

// Error logs an error level message
func (l *Logger) Error(message string, overrides ...core.Field) error {
	return l.log(core.ErrorLevel, message, overrides)
}

// log is the shared render-and-dispatch routine behind every leveled
// method.
func (l *Logger) log(level core.Level, message string, overrides []core.Field) error {
	// Level gate comes first: a filtered call has no side effects at
	// all, so no producer may run before this check.
	if level < l.level {
		return nil
	}

	ctx := make(map[string]string, len(l.defaults)+len(overrides)+4)
	for _, f := range l.defaults {
		ctx[f.Key] = f.Resolve()
	}

	ctx["message"] = message

	// timestamp, level, and name take an override only when it
	// resolves to something non-empty, falling back to the computed
	// value otherwise. They are consumed here and excluded from the
	// generic merge below so they are never applied twice.
	var timestamp, levelName, name string
	for _, f := range overrides {
		switch f.Key {
		case "timestamp":
			timestamp = f.Resolve()
		case "level":
			levelName = f.Resolve()
		case "name":
			name = f.Resolve()
		}
	}
	if timestamp == "" {
		timestamp = time.Now().Format(timestampLayout)
	}
	if levelName == "" {
		levelName = level.String()
	}
	if name == "" {
		name = l.name
	}
	ctx["timestamp"] = timestamp
	ctx["level"] = levelName
	ctx["name"] = name

	for _, f := range overrides {
		switch f.Key {
		case "timestamp", "level", "name":
			continue
		}
		ctx[f.Key] = f.Resolve()
	}

	// Template keys with no value render as a single backspace, the
	// deliberate "not supplied" sentinel.
	for _, key := range l.tmpl.Keys() {
		if _, ok := ctx[key]; !ok {
			ctx[key] = "\b"
		}
	}

	out, err := l.tmpl.Render(ctx)
	if err != nil {
		return err
	}

	if l.newlines && !strings.HasSuffix(out, "\n") {
		out += "\n"
	}

	// The context cannot change between handlers, so the output is
	// rendered once and reused. Fan-out runs in configuration order
	// and stops at the first write failure.
	for _, h := range l.handlers {
		if err := h.Write(out); err != nil {
			return err
		}
	}
	return nil
}

// Close closes every handler the logger references. Handlers shared
// with other loggers are closed too; coordinate shared sinks at the
// call site.
func (l *Logger) Close() error {
	var lastErr error
	for _, h := range l.handlers {
		if err := h.Close(); err != nil {
			lastErr = err
		}
	}
	return lastErr
}
