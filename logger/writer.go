package logger

import (
	"bytes"

	"github.com/philipp01105/ranklog/core"
)

// LineWriter adapts a Logger to io.Writer so it can sit behind code
// that writes streams, such as the standard library log package or a
// subprocess pipe. Bytes are buffered until a newline arrives; each
// complete line is logged at the configured level with its newline
// intact. Not safe for concurrent use.
type LineWriter struct {
	logger *Logger
	level  core.Level
	opts   []LogOption
	rest   bytes.Buffer
}

// NewLineWriter returns a LineWriter emitting through l at the given
// level. The LogOptions are applied to every emitted line.
func NewLineWriter(l *Logger, level core.Level, opts ...LogOption) *LineWriter {
	return &LineWriter{logger: l, level: level, opts: opts}
}

// Writer returns an io.Writer that logs each written line through l.
func (l *Logger) Writer(level core.Level, opts ...LogOption) *LineWriter {
	return NewLineWriter(l, level, opts...)
}

// Write buffers p and logs every complete line it now holds.
func (w *LineWriter) Write(p []byte) (int, error) {
	w.rest.Write(p)
	for {
		data := w.rest.Bytes()
		i := bytes.IndexByte(data, '\n')
		if i < 0 {
			break
		}
		w.logger.Log(w.level, string(data[:i+1]), w.opts...)
		w.rest.Next(i + 1)
	}
	return len(p), nil
}

// Flush logs any buffered partial line without a trailing newline,
// then flushes the underlying logger.
func (w *LineWriter) Flush() error {
	if w.rest.Len() > 0 {
		w.logger.Log(w.level, w.rest.String(), w.opts...)
		w.rest.Reset()
	}
	return w.logger.Flush()
}

// Close flushes buffered output. The underlying logger stays open.
func (w *LineWriter) Close() error {
	return w.Flush()
}
