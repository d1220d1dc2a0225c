package formatter

import (
	"bytes"
	"strconv"

	"github.com/philipp01105/ranklog/core"
)

// timestampFormat is the second-resolution part of the line timestamp.
// Milliseconds are appended separately so the comma separator and the
// zero padding stay under our control.
const timestampFormat = "2006-01-02 15:04:05"

// TextFormatter formats log entries as human-readable text lines of the
// form
//
//	2024-09-08 17:34:16,042 | name | WARNING | message
//
// A NOTSET entry skips the timestamp and metadata entirely and passes
// the message through verbatim. When the entry is rank-tagged, the
// prefix "[rank/worldSize] " comes first in both cases.
//
// No trailing newline is appended; message framing belongs to the
// caller so that streamed partial writes survive byte-for-byte.
type TextFormatter struct {
	name string
}

// NewTextFormatter creates a text formatter that stamps lines with the
// given logger name.
func NewTextFormatter(name string) *TextFormatter {
	return &TextFormatter{name: name}
}

// Name returns the logger name inserted into formatted lines.
func (f *TextFormatter) Name() string {
	return f.name
}

// SetName changes the logger name inserted into formatted lines.
func (f *TextFormatter) SetName(name string) {
	f.name = name
}

// Format formats an entry as text
func (f *TextFormatter) Format(entry *core.Entry) ([]byte, error) {
	buf := getBuffer()
	defer putBuffer(buf)

	f.FormatEntry(entry, buf)

	// Copy buffer content to return
	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result, nil
}

// FormatEntry formats an entry into the given buffer.
func (f *TextFormatter) FormatEntry(entry *core.Entry, buf *bytes.Buffer) {
	if entry.TagRank {
		buf.WriteByte('[')
		buf.Write(strconv.AppendInt(buf.AvailableBuffer(), int64(entry.Rank), 10))
		buf.WriteByte('/')
		buf.Write(strconv.AppendInt(buf.AvailableBuffer(), int64(entry.WorldSize), 10))
		buf.WriteString("] ")
	}

	// Raw passthrough, no formatting at all.
	if entry.Level == core.NotSetLevel {
		buf.WriteString(entry.Message)
		return
	}

	// Timestamp - use AppendFormat to avoid string allocation
	buf.Write(entry.Time.AppendFormat(buf.AvailableBuffer(), timestampFormat))

	// Milliseconds, zero-padded to three digits
	ms := entry.Time.Nanosecond() / 1e6
	buf.WriteByte(',')
	if ms < 100 {
		buf.WriteByte('0')
	}
	if ms < 10 {
		buf.WriteByte('0')
	}
	buf.Write(strconv.AppendInt(buf.AvailableBuffer(), int64(ms), 10))

	buf.WriteString(" | ")
	buf.WriteString(f.name)
	buf.WriteString(" | ")
	buf.WriteString(entry.Level.String())
	buf.WriteString(" | ")
	buf.WriteString(entry.Message)
}
