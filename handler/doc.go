// Package handler provides the Handler interface and its built-in
// implementations for dispatching formatted log bytes to outputs.
//
// All handlers are synchronous: Write blocks the caller until the
// underlying I/O completes, and no handler starts goroutines or takes
// locks. Callers that share a handler across goroutines must serialize
// access externally.
//
// Built-in handlers:
//
//   - ConsoleHandler writes to any io.Writer (default: stdout). It
//     never closes the writer it was given.
//   - FileHandler writes to a single file opened in append or truncate
//     mode, creating parent directories on open. The file handle is
//     owned exclusively and Close is idempotent.
//
// AppendOnce covers the transient third target: open a file in append
// mode, write one payload, close immediately.
package handler
