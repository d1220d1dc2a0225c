package handler

import (
	"bufio"
	"bytes"
	"testing"
)

func TestConsoleHandler_WriteVerbatim(t *testing.T) {
	var buf bytes.Buffer
	h := NewConsoleHandler(&buf)

	payload := []byte("exact bytes, no framing")
	if err := h.Write(payload); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if buf.String() != string(payload) {
		t.Errorf("written %q, want %q", buf.String(), payload)
	}
}

func TestConsoleHandler_FlushBufferedWriter(t *testing.T) {
	var buf bytes.Buffer
	bw := bufio.NewWriter(&buf)
	h := NewConsoleHandler(bw)

	if err := h.Write([]byte("buffered")); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if buf.Len() != 0 {
		t.Fatal("bytes reached the sink before Flush")
	}
	if err := h.Flush(); err != nil {
		t.Fatalf("Flush() error = %v", err)
	}
	if buf.String() != "buffered" {
		t.Errorf("after flush got %q, want %q", buf.String(), "buffered")
	}
}

func TestConsoleHandler_FlushPlainWriter(t *testing.T) {
	var buf bytes.Buffer
	h := NewConsoleHandler(&buf)
	if err := h.Flush(); err != nil {
		t.Errorf("Flush() error = %v", err)
	}
}

func TestConsoleHandler_CloseKeepsWriterUsable(t *testing.T) {
	var buf bytes.Buffer
	h := NewConsoleHandler(&buf)

	if err := h.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if err := h.Write([]byte("still works")); err != nil {
		t.Errorf("Write() after Close error = %v", err)
	}
	if buf.String() != "still works" {
		t.Errorf("got %q, want writer still usable after Close", buf.String())
	}
}

func TestConsoleHandler_NilWriterDefaultsToStdout(t *testing.T) {
	h := NewConsoleHandler(nil)
	if h.writer == nil {
		t.Error("nil writer was not defaulted")
	}
}
