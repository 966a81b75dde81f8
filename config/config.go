package config

import (
	"os"

	"github.com/goccy/go-yaml"
	"github.com/pkg/errors"

	"github.com/philipp01105/tlog/handler"
	"github.com/philipp01105/tlog/logger"
)

// Config is the YAML construction surface for a Logger. Omitted fields
// fall back to the library defaults: INFO level, the default template,
// newline normalization on, and the shared stdout handler.
type Config struct {
	Name           string            `yaml:"name"`
	Level          string            `yaml:"level"`
	Template       string            `yaml:"template"`
	EnsureNewLines *bool             `yaml:"ensure_new_lines"`
	Defaults       map[string]string `yaml:"defaults"`
	Handlers       []HandlerConfig   `yaml:"handlers"`
}

// HandlerConfig describes one sink: either a named standard stream or
// a file path with an optional open mode.
type HandlerConfig struct {
	Stream string `yaml:"stream"`
	File   string `yaml:"file"`
	Mode   string `yaml:"mode"`
}

// Parse decodes a YAML document
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap(err, "config: parse")
	}
	return &cfg, nil
}

// Load reads and parses a YAML config file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "config: read %s", path)
	}
	return Parse(data)
}

// Build constructs the configured Logger
func (c *Config) Build() (*logger.Logger, error) {
	b := logger.NewBuilder(c.Name)

	if c.Level != "" {
		b.WithLevel(logger.ParseLevel(c.Level))
	}
	if c.Template != "" {
		b.WithTemplate(c.Template)
	}
	if c.EnsureNewLines != nil {
		b.WithNewlines(*c.EnsureNewLines)
	}
	for key, value := range c.Defaults {
		b.WithDefaults(logger.String(key, value))
	}
	for i, hc := range c.Handlers {
		h, err := hc.build()
		if err != nil {
			return nil, errors.Wrapf(err, "config: handler %d", i)
		}
		b.WithHandler(h)
	}

	return b.Build()
}

func (hc HandlerConfig) build() (handler.Handler, error) {
	switch {
	case hc.Stream != "" && hc.File != "":
		return nil, errors.New("stream and file are mutually exclusive")
	case hc.Stream != "":
		switch hc.Stream {
		case "stdout":
			return handler.StdOut(), nil
		case "stderr":
			return handler.StdErr(), nil
		default:
			return nil, errors.Errorf("unknown stream %q", hc.Stream)
		}
	case hc.File != "":
		mode, err := parseMode(hc.Mode)
		if err != nil {
			return nil, err
		}
		return handler.NewFileHandler(handler.FileConfig{Path: hc.File, Mode: mode})
	default:
		return nil, errors.New("handler needs a stream or a file")
	}
}

func parseMode(s string) (handler.Mode, error) {
	switch s {
	case "", "append":
		return handler.ModeAppend, nil
	case "truncate":
		return handler.ModeTruncate, nil
	default:
		return 0, errors.Errorf("unknown file mode %q", s)
	}
}
