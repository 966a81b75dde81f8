package handler

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// Mode selects how an existing log file is opened
type Mode int

const (
	// ModeAppend appends to an existing file (default)
	ModeAppend Mode = iota
	// ModeTruncate truncates an existing file on open
	ModeTruncate
)

// String returns the string representation of the mode
func (m Mode) String() string {
	switch m {
	case ModeAppend:
		return "append"
	case ModeTruncate:
		return "truncate"
	default:
		return "unknown"
	}
}

// FileHandler writes rendered output to a file it owns. The file is
// opened eagerly at construction so an unwritable path surfaces
// immediately rather than on the first log call. Output is written as
// UTF-8, Go's native string encoding.
type FileHandler struct {
	path string
	file *os.File
}

// FileConfig holds configuration for the file handler
type FileConfig struct {
	// Path is the log file location
	Path string
	// Mode selects append (default) or truncate behavior for an existing file
	Mode Mode
}

// NewFileHandler opens the configured file and returns the handler
func NewFileHandler(cfg FileConfig) (*FileHandler, error) {
	if cfg.Path == "" {
		return nil, errors.New("file handler: path is required")
	}

	flags := os.O_CREATE | os.O_WRONLY
	switch cfg.Mode {
	case ModeAppend:
		flags |= os.O_APPEND
	case ModeTruncate:
		flags |= os.O_TRUNC
	default:
		return nil, errors.Errorf("file handler: unknown mode %d", cfg.Mode)
	}

	// Create parent directory if it doesn't exist
	if err := os.MkdirAll(filepath.Dir(cfg.Path), 0755); err != nil {
		return nil, errors.Wrapf(err, "file handler: create directory for %s", cfg.Path)
	}

	file, err := os.OpenFile(cfg.Path, flags, 0644)
	if err != nil {
		return nil, errors.Wrapf(err, "file handler: open %s", cfg.Path)
	}

	return &FileHandler{path: cfg.Path, file: file}, nil
}

// Path returns the file path this handler writes to
func (h *FileHandler) Path() string {
	return h.path
}

// Write writes the message to the file
func (h *FileHandler) Write(text string) error {
	_, err := h.file.WriteString(text)
	return errors.Wrapf(err, "file handler: write %s", h.path)
}

// Close syncs and closes the file
func (h *FileHandler) Close() error {
	if err := h.file.Sync(); err != nil {
		_ = h.file.Close()
		return errors.Wrapf(err, "file handler: sync %s", h.path)
	}
	return errors.Wrapf(h.file.Close(), "file handler: close %s", h.path)
}
