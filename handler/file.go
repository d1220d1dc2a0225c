package handler

import (
	"fmt"
	"os"
	"path/filepath"
)

// FileMode controls how an existing log file is opened.
type FileMode int

const (
	// Append keeps existing content and writes at the end.
	Append FileMode = iota
	// Truncate discards existing content on open.
	Truncate
)

// String returns the string representation of the mode
func (m FileMode) String() string {
	switch m {
	case Append:
		return "append"
	case Truncate:
		return "truncate"
	default:
		return "unknown"
	}
}

// ParseFileMode converts a mode string to a FileMode. Both the long
// names and the single-letter file-open spellings are accepted.
func ParseFileMode(s string) (FileMode, error) {
	switch s {
	case "append", "a", "":
		return Append, nil
	case "truncate", "w":
		return Truncate, nil
	default:
		return Append, fmt.Errorf("invalid file mode %q", s)
	}
}

// FileHandler writes formatted log bytes to a single file. It owns the
// file handle exclusively: exactly one handle is open per handler, and
// Close releases it. Parent directories of the path are created on
// open.
type FileHandler struct {
	path string
	mode FileMode
	file *os.File
}

// NewFileHandler opens path for logging, creating parent directories
// as needed. The caller decides what to do with an open failure; the
// handler itself never retries.
func NewFileHandler(path string, mode FileMode) (*FileHandler, error) {
	if path == "" {
		return nil, fmt.Errorf("file path is required")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}

	flags := os.O_CREATE | os.O_WRONLY
	if mode == Truncate {
		flags |= os.O_TRUNC
	} else {
		flags |= os.O_APPEND
	}

	file, err := os.OpenFile(path, flags, 0644)
	if err != nil {
		return nil, err
	}

	return &FileHandler{path: path, mode: mode, file: file}, nil
}

// Path returns the path the handler writes to.
func (h *FileHandler) Path() string {
	return h.path
}

// Write appends the bytes to the file.
func (h *FileHandler) Write(p []byte) error {
	if h.file == nil {
		return os.ErrClosed
	}
	_, err := h.file.Write(p)
	return err
}

// Flush syncs pending bytes to stable storage.
func (h *FileHandler) Flush() error {
	if h.file == nil {
		return nil
	}
	return h.file.Sync()
}

// Close closes the file handle. Safe to call when already closed.
func (h *FileHandler) Close() error {
	if h.file == nil {
		return nil
	}
	err := h.file.Close()
	h.file = nil
	return err
}

// AppendOnce writes p to path in append mode and closes the file
// immediately, creating parent directories as needed. It backs the
// per-call file target of Logger.Log, which is independent of any
// long-lived file sink.
func AppendOnce(path string, p []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return err
	}

	if _, err := file.Write(p); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
