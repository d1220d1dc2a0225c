package handler

import (
	"io"
	"os"
)

// ConsoleHandler writes formatted log bytes to stdout or any io.Writer.
type ConsoleHandler struct {
	writer io.Writer
}

// NewConsoleHandler creates a console handler. A nil writer defaults to
// os.Stdout.
func NewConsoleHandler(w io.Writer) *ConsoleHandler {
	if w == nil {
		w = os.Stdout
	}
	return &ConsoleHandler{writer: w}
}

// Write sends the bytes to the underlying writer unchanged.
func (h *ConsoleHandler) Write(p []byte) error {
	_, err := h.writer.Write(p)
	return err
}

// Flush forwards to the writer's own Flush when it has one. os.Stdout
// is unbuffered in Go, so there is nothing to do for the default
// writer; buffered writers such as bufio.Writer are flushed.
func (h *ConsoleHandler) Flush() error {
	if f, ok := h.writer.(interface{ Flush() error }); ok {
		return f.Flush()
	}
	return nil
}

// Close is a no-op: the console handler does not own its writer and
// must never close stdout.
func (h *ConsoleHandler) Close() error {
	return nil
}
