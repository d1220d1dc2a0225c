package logger

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/philipp01105/ranklog/core"
	"github.com/philipp01105/ranklog/formatter"
	"github.com/philipp01105/ranklog/handler"
	"github.com/philipp01105/ranklog/rank"
)

// Logger formats timestamped, leveled, optionally rank-tagged messages
// and writes them to a console sink and at most one file sink.
//
// A Logger is single-threaded by design: it holds no locks and keeps a
// scratch buffer between calls. Goroutines sharing one instance must
// serialize access externally.
type Logger struct {
	name      string
	level     core.Level
	tagRank   bool
	rank      int
	worldSize int
	logRank   int

	autoDetect string
	lookup     rank.LookupFunc

	console  handler.Handler
	file     *handler.FileHandler
	fileMode handler.FileMode

	text   *formatter.TextFormatter
	errOut io.Writer
	buf    bytes.Buffer
}

// New creates a Logger. Without options it writes unfiltered to stdout
// only: level NotSet, no file sink, rank tagging off, all ranks
// logging.
//
// When rank tagging is enabled, rank and world size are resolved
// immediately: explicit WithRank values first, then the environment
// convention chosen by WithAutoDetect (default rank.None, which skips
// probing and yields rank 0 of 1). A malformed rank variable in the
// environment is the only construction failure.
//
// A file sink that cannot be opened is reported to the error output
// and the Logger continues console-only.
func New(name string, opts ...Option) (*Logger, error) {
	s := newSettings()
	for _, opt := range opts {
		opt(&s)
	}
	if s.nameSet && s.name != "" {
		name = s.name
	}

	l := &Logger{
		name:       name,
		level:      s.level,
		rank:       0,
		worldSize:  1,
		logRank:    -1,
		autoDetect: s.autoDetect,
		lookup:     s.lookup,
		console:    handler.NewConsoleHandler(s.console),
		fileMode:   s.fileMode,
		text:       formatter.NewTextFormatter(name),
		errOut:     os.Stderr,
	}
	if s.errOut != nil {
		l.errOut = s.errOut
	}
	if s.logRankSet {
		l.logRank = s.logRank
	}

	l.tagRank = s.tagRank
	if l.tagRank {
		r, w, err := rank.Detect(s.rank, s.worldSize, l.autoDetect, l.lookup)
		if err != nil {
			return nil, err
		}
		l.rank, l.worldSize = r, w
	} else if s.rankSet {
		if s.rank != -1 {
			l.rank = s.rank
		}
		if s.worldSize != -1 {
			l.worldSize = s.worldSize
		}
	}

	if s.fileSet && s.filePath != "" {
		l.openFile(s.filePath, s.fileMode)
	}

	return l, nil
}

// openFile attaches the primary file sink. Open failures are reported,
// not returned: the logger keeps running without the sink.
func (l *Logger) openFile(path string, mode handler.FileMode) {
	fh, err := handler.NewFileHandler(path, mode)
	if err != nil {
		fmt.Fprintf(l.errOut, "failed to open log file %s: %v\n", path, err)
		return
	}
	l.file = fh
}

// Reconfigure updates the logger in place. An omitted option leaves
// the corresponding setting unchanged, with one exception: rank
// tagging is reassigned on every call, so omitting WithRankTag
// disables it even when it was previously enabled. Existing callers
// depend on this reset.
//
// A new file path closes the current handle before the new one is
// opened; passing the current path leaves the handle untouched. When
// rank tagging ends up enabled, rank detection runs again using this
// call's explicit WithRank values and the merged auto-detect
// convention; a malformed environment value is the only failure.
func (l *Logger) Reconfigure(opts ...Option) error {
	s := newSettings()
	for _, opt := range opts {
		opt(&s)
	}

	if s.nameSet && s.name != "" {
		l.name = s.name
		l.text.SetName(s.name)
	}
	if s.levelSet {
		l.level = s.level
	}
	if s.logRankSet && s.logRank != -1 {
		l.logRank = s.logRank
	}
	if s.autoSet {
		l.autoDetect = s.autoDetect
	}
	if s.lookup != nil {
		l.lookup = s.lookup
	}
	if s.errOut != nil {
		l.errOut = s.errOut
	}
	if s.consoleSet {
		l.console = handler.NewConsoleHandler(s.console)
	}

	if s.rankSet {
		if s.rank != -1 {
			l.rank = s.rank
		}
		if s.worldSize != -1 {
			l.worldSize = s.worldSize
		}
	}

	l.tagRank = s.tagRank
	if l.tagRank {
		rankArg, worldArg := -1, -1
		if s.rankSet {
			rankArg, worldArg = s.rank, s.worldSize
		}
		r, w, err := rank.Detect(rankArg, worldArg, l.autoDetect, l.lookup)
		if err != nil {
			return err
		}
		l.rank, l.worldSize = r, w
	}

	if s.fileSet && s.filePath != "" && (l.file == nil || l.file.Path() != s.filePath) {
		if l.file != nil {
			if err := l.file.Close(); err != nil {
				fmt.Fprintf(l.errOut, "failed to close log file %s: %v\n", l.file.Path(), err)
			}
			l.file = nil
		}
		l.fileMode = s.fileMode
		l.openFile(s.filePath, s.fileMode)
	}

	return nil
}

// Log emits a message at the given level.
//
// The message is dropped when its level is below the logger's
// threshold, or when rank-gated logging is active and this process is
// not the logging rank. Otherwise it is formatted once and written to
// the console, and to either the per-call ToFile target or the primary
// file sink. Log writes the message bytes exactly as given and never
// appends a newline; use the level methods for line-framed output.
func (l *Logger) Log(level core.Level, msg string, opts ...LogOption) {
	if level < l.level {
		return
	}
	if l.logRank != -1 && l.rank != l.logRank {
		return
	}

	var call logCall
	for _, opt := range opts {
		opt(&call)
	}

	entry := core.GetEntry()
	entry.Level = level
	entry.Message = msg
	entry.Rank = l.rank
	entry.WorldSize = l.worldSize
	entry.TagRank = call.tagRank || l.tagRank

	l.buf.Reset()
	l.text.FormatEntry(entry, &l.buf)
	core.PutEntry(entry)
	data := l.buf.Bytes()

	if err := l.console.Write(data); err != nil {
		fmt.Fprintf(l.errOut, "failed to write console log: %v\n", err)
	}

	if call.file != "" {
		if err := handler.AppendOnce(call.file, data); err != nil {
			fmt.Fprintf(l.errOut, "failed to open new log file %s: %v\n", call.file, err)
		}
	} else if l.file != nil {
		if err := l.file.Write(data); err != nil {
			fmt.Fprintf(l.errOut, "failed to write log file %s: %v\n", l.file.Path(), err)
		}
	}
}

// Print emits a raw message: no timestamp, no metadata, no framing.
// Only the rank prefix applies when rank tagging is active.
func (l *Logger) Print(msg string, opts ...LogOption) {
	l.Log(core.NotSetLevel, msg, opts...)
}

// Debug logs a debug message followed by a newline
func (l *Logger) Debug(msg string, opts ...LogOption) {
	if core.DebugLevel < l.level {
		return
	}
	l.Log(core.DebugLevel, msg+"\n", opts...)
}

// Info logs an info message followed by a newline
func (l *Logger) Info(msg string, opts ...LogOption) {
	if core.InfoLevel < l.level {
		return
	}
	l.Log(core.InfoLevel, msg+"\n", opts...)
}

// Warning logs a warning message followed by a newline
func (l *Logger) Warning(msg string, opts ...LogOption) {
	if core.WarningLevel < l.level {
		return
	}
	l.Log(core.WarningLevel, msg+"\n", opts...)
}

// Error logs an error message followed by a newline
func (l *Logger) Error(msg string, opts ...LogOption) {
	if core.ErrorLevel < l.level {
		return
	}
	l.Log(core.ErrorLevel, msg+"\n", opts...)
}

// Critical logs a critical message followed by a newline
func (l *Logger) Critical(msg string, opts ...LogOption) {
	if core.CriticalLevel < l.level {
		return
	}
	l.Log(core.CriticalLevel, msg+"\n", opts...)
}

// Debugf logs a formatted debug message followed by a newline
func (l *Logger) Debugf(format string, args ...interface{}) {
	if core.DebugLevel < l.level {
		return
	}
	l.Log(core.DebugLevel, fmt.Sprintf(format, args...)+"\n")
}

// Infof logs a formatted info message followed by a newline
func (l *Logger) Infof(format string, args ...interface{}) {
	if core.InfoLevel < l.level {
		return
	}
	l.Log(core.InfoLevel, fmt.Sprintf(format, args...)+"\n")
}

// Warningf logs a formatted warning message followed by a newline
func (l *Logger) Warningf(format string, args ...interface{}) {
	if core.WarningLevel < l.level {
		return
	}
	l.Log(core.WarningLevel, fmt.Sprintf(format, args...)+"\n")
}

// Errorf logs a formatted error message followed by a newline
func (l *Logger) Errorf(format string, args ...interface{}) {
	if core.ErrorLevel < l.level {
		return
	}
	l.Log(core.ErrorLevel, fmt.Sprintf(format, args...)+"\n")
}

// Criticalf logs a formatted critical message followed by a newline
func (l *Logger) Criticalf(format string, args ...interface{}) {
	if core.CriticalLevel < l.level {
		return
	}
	l.Log(core.CriticalLevel, fmt.Sprintf(format, args...)+"\n")
}

// Flush persists pending bytes on the file sink and the console.
func (l *Logger) Flush() error {
	var firstErr error
	if l.file != nil {
		if err := l.file.Flush(); err != nil {
			firstErr = err
		}
	}
	if err := l.console.Flush(); err != nil && firstErr == nil {
		firstErr = err
	}
	return firstErr
}

// Close flushes both sinks and closes the primary file handle. Safe to
// call more than once; subsequent Log calls keep writing to the
// console.
func (l *Logger) Close() error {
	flushErr := l.Flush()
	if l.file != nil {
		err := l.file.Close()
		l.file = nil
		if err != nil {
			return err
		}
	}
	return flushErr
}

// Name returns the logger name inserted into formatted lines.
func (l *Logger) Name() string {
	return l.name
}

// Level returns the current emission threshold.
func (l *Logger) Level() core.Level {
	return l.level
}

// Rank returns the resolved process rank.
func (l *Logger) Rank() int {
	return l.rank
}

// WorldSize returns the resolved world size.
func (l *Logger) WorldSize() int {
	return l.worldSize
}
