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
	"bytes"
	"fmt"
	"log/slog"
	"math/big"
	"strconv"
	"strings"
	"time"

	"github.com/holiman/uint256"
)

const (
	timeFormat     = "2006-01-02T15:04:05-0700"
	termTimeFormat = "01-02|15:04:05.000"
	termMsgJust    = 40
)

const (
	colorReset  = "\x1b[0m"
	colorRed    = "\x1b[31m"
	colorYellow = "\x1b[33m"
	colorGreen  = "\x1b[32m"
	colorCyan   = "\x1b[36m"
	colorPurple = "\x1b[35m"
	colorGray   = "\x1b[90m"
)

func levelColor(l slog.Level) string {
	switch {
	case l >= LevelCrit:
		return colorPurple
	case l >= LevelError:
		return colorRed
	case l >= LevelWarn:
		return colorYellow
	case l >= LevelInfo:
		return colorGreen
	case l >= LevelDebug:
		return colorCyan
	default:
		return colorGray
	}
}

func (h *TerminalHandler) format(buf []byte, r slog.Record) []byte {
	b := bytes.NewBuffer(buf)
	lvl := LevelAlignedString(r.Level)
	if h.useColor {
		b.WriteString(levelColor(r.Level))
		b.WriteString(lvl)
		b.WriteString(colorReset)
	} else {
		b.WriteString(lvl)
	}
	b.WriteString(" [")
	b.WriteString(r.Time.Format(termTimeFormat))
	b.WriteString("] ")
	b.WriteString(r.Message)

	attrs := make([]slog.Attr, 0, len(h.attrs)+r.NumAttrs())
	attrs = append(attrs, h.attrs...)
	r.Attrs(func(a slog.Attr) bool {
		attrs = append(attrs, a)
		return true
	})
	if len(attrs) > 0 && len(r.Message) < termMsgJust {
		b.WriteString(strings.Repeat(" ", termMsgJust-len(r.Message)))
	}
	for _, a := range attrs {
		b.WriteByte(' ')
		if h.useColor {
			b.WriteString(levelColor(r.Level))
			b.WriteString(a.Key)
			b.WriteString(colorReset)
		} else {
			b.WriteString(a.Key)
		}
		b.WriteByte('=')
		b.WriteString(formatValue(a.Value))
	}
	b.WriteByte('\n')
	return b.Bytes()
}

func formatValue(v slog.Value) string {
	switch v.Kind() {
	case slog.KindString:
		return quoteIfNeeded(v.String())
	case slog.KindInt64:
		return strconv.FormatInt(v.Int64(), 10)
	case slog.KindUint64:
		return strconv.FormatUint(v.Uint64(), 10)
	case slog.KindFloat64:
		return strconv.FormatFloat(v.Float64(), 'f', 3, 64)
	case slog.KindBool:
		return strconv.FormatBool(v.Bool())
	case slog.KindDuration:
		return v.Duration().String()
	case slog.KindTime:
		return v.Time().Format(timeFormat)
	}
	switch x := v.Any().(type) {
	case nil:
		return "<nil>"
	case error:
		return quoteIfNeeded(x.Error())
	case *big.Int:
		if x == nil {
			return "<nil>"
		}
		return x.String()
	case *uint256.Int:
		if x == nil {
			return "<nil>"
		}
		return x.Dec()
	case time.Time:
		return x.Format(timeFormat)
	case fmt.Stringer:
		return quoteIfNeeded(x.String())
	default:
		return quoteIfNeeded(fmt.Sprintf("%+v", x))
	}
}

// quoteIfNeeded quotes s when it contains spaces, quotes, '=' or control
// characters, or is empty.
func quoteIfNeeded(s string) string {
	if s == "" {
		return `""`
	}
	for _, r := range s {
		if r <= ' ' || r == '=' || r == '"' || r == 0x7f {
			return strconv.Quote(s)
		}
	}
	return s
}
