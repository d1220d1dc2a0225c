package logger

import (
	"io"

	"github.com/philipp01105/ranklog/core"
	"github.com/philipp01105/ranklog/handler"
	"github.com/philipp01105/ranklog/rank"
)

// settings collects the values supplied through Options. Every field
// that participates in Reconfigure's merge carries a presence flag so
// that "caller wants the default" and "caller wants no change" stay
// distinguishable.
type settings struct {
	name    string
	nameSet bool

	filePath string
	fileMode handler.FileMode
	fileSet  bool

	level    core.Level
	levelSet bool

	// tagRank carries no presence flag on purpose: reconfiguration
	// reassigns it unconditionally (see Logger.Reconfigure).
	tagRank bool

	rank      int
	worldSize int
	rankSet   bool

	autoDetect string
	autoSet    bool

	logRank    int
	logRankSet bool

	console    io.Writer
	consoleSet bool

	errOut io.Writer
	lookup rank.LookupFunc
}

func newSettings() settings {
	return settings{
		fileMode:   handler.Append,
		rank:       -1,
		worldSize:  -1,
		autoDetect: rank.None,
		logRank:    -1,
	}
}

// Option configures a Logger at construction or reconfiguration time.
type Option func(*settings)

// WithName changes the logger name inserted into formatted lines. An
// empty name is ignored.
func WithName(name string) Option {
	return func(s *settings) {
		s.name = name
		s.nameSet = true
	}
}

// WithFile attaches the primary file sink at path, opened in the given
// mode. On reconfiguration a path different from the current one
// closes the old handle before the new path is opened; the same path
// leaves the open handle untouched.
func WithFile(path string, mode handler.FileMode) Option {
	return func(s *settings) {
		s.filePath = path
		s.fileMode = mode
		s.fileSet = true
	}
}

// WithLevel sets the emission threshold: a message is emitted only
// when its level is greater than or equal to this value.
func WithLevel(level core.Level) Option {
	return func(s *settings) {
		s.level = level
		s.levelSet = true
	}
}

// WithRankTag enables or disables the "[rank/worldSize]" prefix on
// every message. Enabling it triggers rank detection.
func WithRankTag(enabled bool) Option {
	return func(s *settings) {
		s.tagRank = enabled
	}
}

// WithRank supplies explicit rank and world-size values. Explicit
// values take precedence over environment detection; pass -1 for a
// value that should still be detected.
func WithRank(rankValue, worldSize int) Option {
	return func(s *settings) {
		s.rank = rankValue
		s.worldSize = worldSize
		s.rankSet = true
	}
}

// WithAutoDetect selects the launcher convention probed during rank
// detection: one of the rank package convention names, rank.All to
// probe everything, or rank.None to skip probing.
func WithAutoDetect(convention string) Option {
	return func(s *settings) {
		s.autoDetect = convention
		s.autoSet = true
	}
}

// WithLogRank restricts emission to the process whose rank equals
// logRank; every other process silently suppresses all messages. -1
// means all ranks log. On reconfiguration -1 means no change.
func WithLogRank(logRank int) Option {
	return func(s *settings) {
		s.logRank = logRank
		s.logRankSet = true
	}
}

// WithConsole replaces the console sink's writer (default os.Stdout).
func WithConsole(w io.Writer) Option {
	return func(s *settings) {
		s.console = w
		s.consoleSet = true
	}
}

// WithErrorOutput sets the writer that receives internal fault reports
// such as file-open failures (default os.Stderr). It is deliberately
// distinct from the log stream itself.
func WithErrorOutput(w io.Writer) Option {
	return func(s *settings) {
		s.errOut = w
	}
}

// WithLookup injects the environment lookup used by rank detection.
// Tests use a map-backed lookup; nil means the real process
// environment.
func WithLookup(lookup rank.LookupFunc) Option {
	return func(s *settings) {
		s.lookup = lookup
	}
}

// logCall collects per-call emission options.
type logCall struct {
	tagRank bool
	file    string
}

// LogOption adjusts a single Log call.
type LogOption func(*logCall)

// TagRank forces the rank prefix onto this message even when the
// logger's persistent rank tagging is disabled.
func TagRank() LogOption {
	return func(c *logCall) {
		c.tagRank = true
	}
}

// ToFile writes this message to path (opened in append mode, written
// once, closed immediately) in addition to the console. For this call
// the transient file replaces the primary file sink.
func ToFile(path string) LogOption {
	return func(c *logCall) {
		c.file = path
	}
}
