// Copyright (c) marcwadey 2026. All rights reserved.
// SPDX-License-Identifier: MIT

package ctxlog

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/TylerBrock/colorjson"
	"golang.org/x/term"
)

var (
	// ErrAttrMarshal is returned when record attributes cannot be rendered.
	ErrAttrMarshal = errors.New("ctxlog: failed to marshal attributes")
	// ErrWrite is returned when the handler cannot write to its destination.
	ErrWrite = errors.New("ctxlog: failed to write record")
)

// timeFormat is the timestamp layout used for console records.
const timeFormat = "[15:04:05.000]"

// ANSI SGR sequences used for console levels.
const (
	ansiReset   = "\033[0m"
	ansiWhite   = "\033[37m"
	ansiHiWhite = "\033[97m"
	ansiCyan    = "\033[36m"
	ansiYellow  = "\033[33m"
	ansiRed     = "\033[31m"
)

// Pretty is a slog.Handler that renders records as colored, human-readable
// console lines. Attributes are collected through an inner JSON handler so
// that groups and ReplaceAttr behave exactly as slog specifies, then
// re-rendered with colorjson.
type Pretty struct {
	inner   slog.Handler
	replace func([]string, slog.Attr) slog.Attr
	buf     *bytes.Buffer
	mu      *sync.Mutex
	w       io.Writer
	color   bool
}

// PrettyOption configures a Pretty handler.
type PrettyOption func(*Pretty)

// WithWriter sets the destination writer.
func WithWriter(w io.Writer) PrettyOption {
	return func(p *Pretty) {
		p.w = w
	}
}

// WithColor forces colored output.
func WithColor() PrettyOption {
	return func(p *Pretty) {
		p.color = true
	}
}

// WithAutoColor enables color only when stderr is a terminal and NO_COLOR is
// unset.
func WithAutoColor() PrettyOption {
	return func(p *Pretty) {
		_, noColor := os.LookupEnv("NO_COLOR")
		p.color = !noColor && term.IsTerminal(int(os.Stderr.Fd()))
	}
}

// NewPretty returns a Pretty handler honoring the supplied slog options.
func NewPretty(handlerOptions *slog.HandlerOptions, options ...PrettyOption) *Pretty {
	if handlerOptions == nil {
		handlerOptions = &slog.HandlerOptions{}
	}

	buf := &bytes.Buffer{}
	p := &Pretty{
		buf: buf,
		inner: slog.NewJSONHandler(buf, &slog.HandlerOptions{
			Level:       handlerOptions.Level,
			AddSource:   handlerOptions.AddSource,
			ReplaceAttr: dropBuiltins(handlerOptions.ReplaceAttr),
		}),
		replace: handlerOptions.ReplaceAttr,
		mu:      &sync.Mutex{},
		w:       os.Stderr,
	}

	for _, opt := range options {
		opt(p)
	}

	return p
}

// Enabled implements slog.Handler.
func (p *Pretty) Enabled(ctx context.Context, level slog.Level) bool {
	return p.inner.Enabled(ctx, level)
}

// WithAttrs implements slog.Handler.
func (p *Pretty) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &Pretty{inner: p.inner.WithAttrs(attrs), replace: p.replace, buf: p.buf, mu: p.mu, w: p.w, color: p.color}
}

// WithGroup implements slog.Handler.
func (p *Pretty) WithGroup(name string) slog.Handler {
	return &Pretty{inner: p.inner.WithGroup(name), replace: p.replace, buf: p.buf, mu: p.mu, w: p.w, color: p.color}
}

// Handle implements slog.Handler.
func (p *Pretty) Handle(ctx context.Context, r slog.Record) error {
	attrs, err := p.collectAttrs(ctx, r)
	if err != nil {
		return err
	}

	var rendered []byte

	if len(attrs) > 0 {
		formatter := colorjson.NewFormatter()
		formatter.Indent = 2
		formatter.DisabledColor = !p.color

		rendered, err = formatter.Marshal(attrs)
		if err != nil {
			return errors.Join(ErrAttrMarshal, err)
		}
	}

	out := strings.Builder{}
	out.WriteString(p.paint(r.Time.Format(timeFormat), ansiWhite))
	out.WriteString(" ")
	out.WriteString(p.paint(r.Level.String()+":", levelColor(r.Level)))
	out.WriteString(" ")
	out.WriteString(p.paint(r.Message, ansiHiWhite))

	if len(rendered) > 0 {
		out.WriteString(" ")
		out.Write(rendered)
	}

	out.WriteString("\n")

	if _, err := io.WriteString(p.w, out.String()); err != nil {
		return errors.Join(ErrWrite, err)
	}

	return nil
}

// collectAttrs round-trips the record through the inner JSON handler to
// resolve groups and attribute replacement.
func (p *Pretty) collectAttrs(ctx context.Context, r slog.Record) (map[string]any, error) {
	p.mu.Lock()
	defer func() {
		p.buf.Reset()
		p.mu.Unlock()
	}()

	if err := p.inner.Handle(ctx, r); err != nil {
		return nil, fmt.Errorf("inner handler: %w", err)
	}

	var attrs map[string]any
	if err := json.Unmarshal(p.buf.Bytes(), &attrs); err != nil {
		return nil, errors.Join(ErrAttrMarshal, err)
	}

	return attrs, nil
}

func (p *Pretty) paint(s, color string) string {
	if !p.color || s == "" {
		return s
	}

	return color + s + ansiReset
}

func levelColor(level slog.Level) string {
	switch {
	case level < slog.LevelInfo:
		return ansiWhite
	case level < slog.LevelWarn:
		return ansiCyan
	case level < slog.LevelError:
		return ansiYellow
	default:
		return ansiRed
	}
}

// dropBuiltins removes time, level, and message from the inner handler output
// since Handle prints those itself.
func dropBuiltins(next func([]string, slog.Attr) slog.Attr) func([]string, slog.Attr) slog.Attr {
	return func(groups []string, a slog.Attr) slog.Attr {
		if a.Key == slog.TimeKey || a.Key == slog.LevelKey || a.Key == slog.MessageKey {
			return slog.Attr{}
		}

		if next == nil {
			return a
		}

		return next(groups, a)
	}
}
