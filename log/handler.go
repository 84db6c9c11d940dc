// Package log adapts slog for mods running inside the client: records are
// formatted guest-side and handed to a sink, typically the client's log
// service. Nothing is written to stdout, which the client does not show.
package log

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

// Sink receives one fully formatted log line per record.
type Sink func(level slog.Level, msg string)

// HandlerOption configures the Handler.
type HandlerOption func(*handlerConfig)

type handlerConfig struct {
	level slog.Level
}

// WithLevel sets the minimum level to forward. Records below it are
// filtered before they cross the boundary.
func WithLevel(level slog.Level) HandlerOption {
	return func(c *handlerConfig) {
		c.level = level
	}
}

// Handler implements slog.Handler on top of a Sink.
type Handler struct {
	opts  handlerConfig
	sink  Sink
	attrs []slog.Attr
	group string
}

// NewHandler creates a Handler forwarding to sink, defaulting to LevelInfo.
func NewHandler(sink Sink, opts ...HandlerOption) *Handler {
	cfg := handlerConfig{level: slog.LevelInfo}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Handler{opts: cfg, sink: sink}
}

// Enabled implements slog.Handler.
func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.opts.level
}

// Handle implements slog.Handler. Attributes are appended key=value after
// the message, the way the client's plain-text log expects.
func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	var b strings.Builder
	b.WriteString(r.Message)
	for _, a := range h.attrs {
		writeAttr(&b, "", a)
	}
	r.Attrs(func(a slog.Attr) bool {
		writeAttr(&b, h.group, a)
		return true
	})
	h.sink(r.Level, b.String())
	return nil
}

func writeAttr(b *strings.Builder, group string, a slog.Attr) {
	key := a.Key
	if group != "" {
		key = group + "." + key
	}
	fmt.Fprintf(b, " %s=%v", key, a.Value.Any())
}

// WithAttrs implements slog.Handler. The current group prefix is baked into
// the keys at attach time, matching slog's grouping semantics.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := *h
	next.attrs = append([]slog.Attr{}, h.attrs...)
	for _, a := range attrs {
		if h.group != "" {
			a.Key = h.group + "." + a.Key
		}
		next.attrs = append(next.attrs, a)
	}
	return &next
}

// WithGroup implements slog.Handler.
func (h *Handler) WithGroup(name string) slog.Handler {
	next := *h
	if next.group != "" {
		next.group += "." + name
	} else {
		next.group = name
	}
	return &next
}
