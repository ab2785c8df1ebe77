// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package logging builds the slog handlers used by brrcs binaries.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/z5labs/brrcs/internal/slogfield"

	"go.opentelemetry.io/otel/trace"
)

// Format selects how log records are rendered.
type Format string

const (
	// Text renders records as key=value pairs.
	Text Format = "text"

	// JSON renders one JSON object per record.
	JSON Format = "json"
)

// ParseFormat accepts "text" or "json" in any case.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case Text, JSON:
		return f, nil
	default:
		return "", fmt.Errorf("unknown log format: %q", s)
	}
}

// ParseLevel accepts the slog level names, e.g. "debug" or "WARN".
func ParseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	err := lvl.UnmarshalText([]byte(s))
	if err != nil {
		return lvl, err
	}
	return lvl, nil
}

// NewHandler returns a Handler writing to w in the given format and
// dropping records below lvl.
func NewHandler(w io.Writer, lvl slog.Leveler, f Format) *Handler {
	opts := &slog.HandlerOptions{
		Level: lvl,
	}

	var h slog.Handler
	switch f {
	case JSON:
		h = slog.NewJSONHandler(w, opts)
	default:
		h = slog.NewTextHandler(w, opts)
	}
	return &Handler{slog: h}
}

// Handler is an slog.Handler which correlates records with the active
// span by adding its trace and span ids.
type Handler struct {
	slog slog.Handler
}

// Enabled implements the slog.Handler interface.
func (h *Handler) Enabled(ctx context.Context, lvl slog.Level) bool {
	return h.slog.Enabled(ctx, lvl)
}

// Handle implements the slog.Handler interface.
func (h *Handler) Handle(ctx context.Context, record slog.Record) error {
	spanCtx := trace.SpanContextFromContext(ctx)
	if !spanCtx.IsValid() {
		return h.slog.Handle(ctx, record)
	}

	r := record.Clone()
	r.AddAttrs(
		slog.Group(
			"otel",
			slogfield.String("trace_id", spanCtx.TraceID().String()),
			slogfield.String("span_id", spanCtx.SpanID().String()),
		),
	)
	return h.slog.Handle(ctx, r)
}

// WithAttrs implements the slog.Handler interface.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &Handler{slog: h.slog.WithAttrs(attrs)}
}

// WithGroup implements the slog.Handler interface.
func (h *Handler) WithGroup(name string) slog.Handler {
	return &Handler{slog: h.slog.WithGroup(name)}
}
