package logger

import (
	"context"
	"log/slog"
	"strings"

	"github.com/philipp01105/ranklog/core"
)

// SlogHandler is an adapter that implements slog.Handler on top of a
// Logger, so rank-aware output can sit behind code written against
// log/slog. Attributes are rendered inline as " key=value" pairs;
// groups become dotted key prefixes.
type SlogHandler struct {
	logger *Logger
	attrs  []slog.Attr
	group  string
}

// NewSlogHandler creates a slog.Handler adapter wrapping the given Logger.
func NewSlogHandler(l *Logger) *SlogHandler {
	return &SlogHandler{logger: l}
}

// Enabled reports whether records at the given level would be emitted.
func (s *SlogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return slogLevelToCore(level) >= s.logger.Level()
}

// Handle renders a slog.Record through the wrapped Logger.
func (s *SlogHandler) Handle(_ context.Context, record slog.Record) error {
	var b strings.Builder
	b.WriteString(record.Message)

	for _, a := range s.attrs {
		appendAttr(&b, s.group, a)
	}
	record.Attrs(func(a slog.Attr) bool {
		appendAttr(&b, s.group, a)
		return true
	})
	b.WriteByte('\n')

	s.logger.Log(slogLevelToCore(record.Level), b.String())
	return nil
}

// WithAttrs returns a new SlogHandler with additional attributes.
func (s *SlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newAttrs := make([]slog.Attr, len(s.attrs), len(s.attrs)+len(attrs))
	copy(newAttrs, s.attrs)
	newAttrs = append(newAttrs, attrs...)
	return &SlogHandler{
		logger: s.logger,
		attrs:  newAttrs,
		group:  s.group,
	}
}

// WithGroup returns a new SlogHandler with the given group name.
func (s *SlogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return s
	}
	newGroup := name
	if s.group != "" {
		newGroup = s.group + "." + name
	}
	newAttrs := make([]slog.Attr, len(s.attrs))
	copy(newAttrs, s.attrs)
	return &SlogHandler{
		logger: s.logger,
		attrs:  newAttrs,
		group:  newGroup,
	}
}

// appendAttr writes " key=value" to b, flattening groups into dotted
// prefixes.
func appendAttr(b *strings.Builder, group string, a slog.Attr) {
	key := a.Key
	if group != "" {
		key = group + "." + a.Key
	}

	a.Value = a.Value.Resolve()
	if a.Value.Kind() == slog.KindGroup {
		for _, ga := range a.Value.Group() {
			appendAttr(b, key, ga)
		}
		return
	}

	b.WriteByte(' ')
	b.WriteString(key)
	b.WriteByte('=')
	b.WriteString(a.Value.String())
}

// slogLevelToCore converts a slog.Level to a core.Level.
func slogLevelToCore(level slog.Level) core.Level {
	switch {
	case level >= slog.LevelError:
		return core.ErrorLevel
	case level >= slog.LevelWarn:
		return core.WarningLevel
	case level >= slog.LevelInfo:
		return core.InfoLevel
	default:
		return core.DebugLevel
	}
}
