package formatter

import (
	"regexp"
	"strings"

	"github.com/pkg/errors"
)

// DefaultTemplate is the output format used when none is configured.
const DefaultTemplate = "{timestamp} {level} {name}: {message}"

// keyPattern matches a placeholder: braces around an identifier of
// ASCII letters, digits, and underscore. Malformed or empty braces do
// not match and pass through rendering untouched. There is no escape
// mechanism.
var keyPattern = regexp.MustCompile(`\{([a-zA-Z0-9_]+)\}`)

// Template is an output format string with named {key} placeholders.
// The key set is derived once at Parse time, so a Template can never
// render against a stale key list — replacing a logger's template
// means parsing a new Template.
type Template struct {
	raw  string
	keys []string
}

// Parse builds a Template and derives its key set: the distinct
// placeholder names in first-occurrence order.
func Parse(raw string) *Template {
	matches := keyPattern.FindAllStringSubmatch(raw, -1)
	keys := make([]string, 0, len(matches))
	seen := make(map[string]struct{}, len(matches))
	for _, m := range matches {
		if _, ok := seen[m[1]]; ok {
			continue
		}
		seen[m[1]] = struct{}{}
		keys = append(keys, m[1])
	}
	return &Template{raw: raw, keys: keys}
}

// String returns the raw template text
func (t *Template) String() string {
	return t.raw
}

// Keys returns the distinct placeholder names in first-occurrence
// order. The slice is shared; callers must not modify it.
func (t *Template) Keys() []string {
	return t.keys
}

// Render substitutes every placeholder with its value from ctx. Every
// key in Keys() must be present in ctx; a still-missing key is a
// rendering failure, never a silent pass-through.
func (t *Template) Render(ctx map[string]string) (string, error) {
	var missing []string
	out := keyPattern.ReplaceAllStringFunc(t.raw, func(m string) string {
		key := m[1 : len(m)-1]
		v, ok := ctx[key]
		if !ok {
			missing = append(missing, key)
			return m
		}
		return v
	})
	if len(missing) > 0 {
		return "", errors.Errorf("template references unresolved keys: %s", strings.Join(missing, ", "))
	}
	return out, nil
}
