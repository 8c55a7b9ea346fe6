package logger

import (
	"context"
	"log/slog"
	"strings"
)

// SlogHandler implements slog.Handler on top of a namespaced Logger, so that
// code written against *slog.Logger honours the DEBUG patterns.
type SlogHandler struct {
	logger *Logger
	// prefix holds attributes added through WithAttrs, already rendered
	// with the group that was current when they were added.
	prefix string
	group  string
}

// NewSlogHandler wraps logger in a slog.Handler.
func NewSlogHandler(logger *Logger) *SlogHandler {
	return &SlogHandler{logger: logger}
}

// Enabled reports whether the wrapped logger is enabled; levels are not filtered.
func (h *SlogHandler) Enabled(_ context.Context, _ slog.Level) bool {
	return h.logger.Enabled()
}

// Handle writes the record as "[LEVEL] message key=value ...".
func (h *SlogHandler) Handle(_ context.Context, r slog.Record) error {
	if !h.logger.Enabled() {
		return nil
	}

	var msg strings.Builder
	msg.WriteString(levelPrefix(r.Level))
	msg.WriteString(r.Message)
	msg.WriteString(h.prefix)
	r.Attrs(func(a slog.Attr) bool {
		writeAttr(&msg, h.group, a)
		return true
	})

	h.logger.Print(msg.String())
	return nil
}

func writeAttr(msg *strings.Builder, group string, a slog.Attr) {
	key := a.Key
	if group != "" {
		key = group + "." + key
	}
	msg.WriteString(" " + key + "=" + a.Value.String())
}

func levelPrefix(level slog.Level) string {
	switch {
	case level >= slog.LevelError:
		return "[ERROR] "
	case level >= slog.LevelWarn:
		return "[WARN] "
	case level >= slog.LevelInfo:
		return "[INFO] "
	default:
		return "[DEBUG] "
	}
}

// WithAttrs returns a handler that prefixes every record with attrs.
func (h *SlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	var prefix strings.Builder
	prefix.WriteString(h.prefix)
	for _, a := range attrs {
		writeAttr(&prefix, h.group, a)
	}
	return &SlogHandler{logger: h.logger, prefix: prefix.String(), group: h.group}
}

// WithGroup returns a handler that qualifies attribute keys with name.
func (h *SlogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	group := name
	if h.group != "" {
		group = h.group + "." + name
	}
	return &SlogHandler{logger: h.logger, prefix: h.prefix, group: group}
}

// NewSlogLogger creates a *slog.Logger for namespace.
func NewSlogLogger(namespace string) *slog.Logger {
	return slog.New(NewSlogHandler(New(namespace)))
}

// Discard returns a *slog.Logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
