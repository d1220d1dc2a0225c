// Package formatter defines how log entries are serialized into bytes.
//
// It exposes two interfaces: Formatter, which returns a []byte, and
// BufferFormatter, which formats into a caller-provided bytes.Buffer.
// The logger formats through BufferFormatter, eliminating the
// intermediate byte slice allocation on the emission path; Formatter
// exists for callers that want a standalone byte slice.
//
// The built-in TextFormatter implements both. It uses a pooled
// bytes.Buffer internally and relies on Go's Append-style functions
// (time.AppendFormat, strconv.AppendInt) to avoid per-call
// allocations. Timestamps use local wall-clock time at the moment the
// entry was created, second resolution plus a comma-separated,
// zero-padded millisecond suffix.
//
// Buffers larger than 64 KiB are not returned to the pool to prevent
// a single large log line from permanently inflating memory usage.
package formatter
