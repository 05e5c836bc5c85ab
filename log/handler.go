// Copyright 2026 The solbuild Authors
// This file is part of the solbuild library.
//
// The solbuild library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The solbuild library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the solbuild library. If not, see <http://www.gnu.org/licenses/>.

package log

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/big"
	"reflect"
	"sync"
	"time"

	"github.com/holiman/uint256"
)

// Format selects the record encoding of a handler.
type Format int

const (
	FormatTerminal Format = iota
	FormatLogfmt
	FormatJSON
)

var errUnknownFormat = errors.New("unknown log format")

// ParseFormat maps a --log.format value to a Format. The empty string is
// the terminal format.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "", "terminal":
		return FormatTerminal, nil
	case "logfmt":
		return FormatLogfmt, nil
	case "json":
		return FormatJSON, nil
	}
	return 0, fmt.Errorf("%w: %v", errUnknownFormat, s)
}

// NewHandler creates a handler writing records at or above lvl to wr.
// Colors apply to the terminal format only.
func NewHandler(f Format, wr io.Writer, lvl slog.Level, useColor bool) slog.Handler {
	opts := &slog.HandlerOptions{Level: lvl}
	switch f {
	case FormatJSON:
		opts.ReplaceAttr = replaceAttr(false)
		return slog.NewJSONHandler(wr, opts)
	case FormatLogfmt:
		opts.ReplaceAttr = replaceAttr(true)
		return slog.NewTextHandler(wr, opts)
	default:
		return NewTerminalHandlerWithLevel(wr, lvl, useColor)
	}
}

type discardHandler struct{}

// DiscardHandler returns a no-op handler.
func DiscardHandler() slog.Handler {
	return discardHandler{}
}

func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (h discardHandler) WithGroup(string) slog.Handler           { return h }
func (h discardHandler) WithAttrs([]slog.Attr) slog.Handler      { return h }

// TerminalHandler formats records for a human reading a terminal:
//
//	INFO [10-15|14:03:11.250] Compiling sources          files=12 compiler=0.8.30
type TerminalHandler struct {
	mu       *sync.Mutex
	wr       io.Writer
	lvl      slog.Level
	useColor bool
	group    string // key prefix, "" or ending in '.'
	attrs    []slog.Attr

	buf []byte
}

// NewTerminalHandler returns a terminal handler that emits every level.
func NewTerminalHandler(wr io.Writer, useColor bool) *TerminalHandler {
	return NewTerminalHandlerWithLevel(wr, levelMaxVerbosity, useColor)
}

// NewTerminalHandlerWithLevel returns a terminal handler that drops records
// below lvl.
func NewTerminalHandlerWithLevel(wr io.Writer, lvl slog.Level, useColor bool) *TerminalHandler {
	return &TerminalHandler{mu: new(sync.Mutex), wr: wr, lvl: lvl, useColor: useColor}
}

func (h *TerminalHandler) Handle(_ context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	buf := h.format(h.buf[:0], r)
	_, err := h.wr.Write(buf)
	h.buf = buf
	return err
}

func (h *TerminalHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.lvl
}

// WithGroup qualifies the keys of all later attributes with name.
func (h *TerminalHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	c := h.clone()
	c.group += name + "."
	return c
}

func (h *TerminalHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	c := h.clone()
	for _, a := range attrs {
		a.Key = h.group + a.Key
		c.attrs = append(c.attrs, a)
	}
	return c
}

// clone shares the writer lock so that derived handlers never interleave
// their lines.
func (h *TerminalHandler) clone() *TerminalHandler {
	return &TerminalHandler{
		mu:       h.mu,
		wr:       h.wr,
		lvl:      h.lvl,
		useColor: h.useColor,
		group:    h.group,
		attrs:    append([]slog.Attr{}, h.attrs...),
	}
}

// replaceAttr renames the builtin keys to t/lvl and renders the value types
// used across the build pipeline (fees, versions) as plain strings.
func replaceAttr(logfmt bool) func([]string, slog.Attr) slog.Attr {
	return func(_ []string, attr slog.Attr) slog.Attr {
		switch attr.Key {
		case slog.TimeKey:
			if attr.Value.Kind() == slog.KindTime {
				if logfmt {
					return slog.String("t", attr.Value.Time().Format(timeFormat))
				}
				return slog.Attr{Key: "t", Value: attr.Value}
			}
		case slog.LevelKey:
			if l, ok := attr.Value.Any().(slog.Level); ok {
				return slog.String("lvl", LevelString(l))
			}
		}
		switch v := attr.Value.Any().(type) {
		case time.Time:
			if logfmt {
				attr.Value = slog.StringValue(v.Format(timeFormat))
			}
		case *big.Int:
			attr.Value = slog.StringValue(nilOr(v == nil, v.String))
		case *uint256.Int:
			attr.Value = slog.StringValue(nilOr(v == nil, v.Dec))
		case fmt.Stringer:
			isNil := v == nil || (reflect.ValueOf(v).Kind() == reflect.Pointer && reflect.ValueOf(v).IsNil())
			attr.Value = slog.StringValue(nilOr(isNil, v.String))
		}
		return attr
	}
}

func nilOr(isNil bool, s func() string) string {
	if isNil {
		return "<nil>"
	}
	return s()
}
