// Package core defines the shared types used across ranklog.
//
// It provides the Level type for severity filtering and the Entry type
// that represents a single log event, including the process rank
// metadata used in distributed jobs.
//
// Levels carry the conventional numeric values of multi-process
// training tooling: 10 (DEBUG) through 50 (CRITICAL), with 0 (NOTSET)
// meaning "emit the message verbatim, no formatting". Because the
// values are plain integers, callers may log with levels outside the
// named set; such levels filter normally but format with an empty
// level label.
//
// Entry objects are pooled via sync.Pool to keep the emission path
// allocation-free. Callers get an Entry with GetEntry and must return
// it with PutEntry once the sinks have consumed it.
package core
