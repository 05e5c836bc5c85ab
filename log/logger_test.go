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
	"log/slog"
	"strings"
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTerminalHandlerFormat(t *testing.T) {
	out := new(bytes.Buffer)
	l := NewLogger(NewTerminalHandler(out, false))
	l.Info("Resolved build parameters", "compiler", "0.8.30", "runs", 200, "fee", uint256.NewInt(0))

	line := out.String()
	require.True(t, strings.HasPrefix(line, "INFO  ["), line)
	assert.Contains(t, line, "Resolved build parameters")
	assert.Contains(t, line, "compiler=0.8.30")
	assert.Contains(t, line, "runs=200")
	assert.Contains(t, line, "fee=0")
}

func TestTerminalHandlerLevel(t *testing.T) {
	out := new(bytes.Buffer)
	l := NewLogger(NewTerminalHandlerWithLevel(out, LevelWarn, false))
	l.Info("dropped")
	l.Warn("kept", "path", "with space")
	assert.NotContains(t, out.String(), "dropped")
	assert.Contains(t, out.String(), `path="with space"`)
}

func TestOddAttributes(t *testing.T) {
	out := new(bytes.Buffer)
	l := NewLogger(NewHandler(FormatLogfmt, out, LevelTrace, false))
	l.Info("odd", "key")
	assert.Contains(t, out.String(), errorKey)
}

func TestWithAttributes(t *testing.T) {
	out := new(bytes.Buffer)
	l := NewLogger(NewHandler(FormatJSON, out, LevelTrace, false)).With("module", "remappings")
	l.Debug("activated")
	assert.Contains(t, out.String(), `"module":"remappings"`)
	assert.Contains(t, out.String(), `"lvl":"debug"`)
}

func TestFromVerbosity(t *testing.T) {
	assert.Equal(t, LevelCrit, FromVerbosity(0))
	assert.Equal(t, LevelError, FromVerbosity(1))
	assert.Equal(t, LevelInfo, FromVerbosity(3))
	assert.Equal(t, LevelTrace, FromVerbosity(9))
}

func TestTerminalHandlerGroup(t *testing.T) {
	out := new(bytes.Buffer)
	l := NewLogger(NewTerminalHandler(out, false).WithGroup("solc").WithAttrs([]slog.Attr{slog.String("version", "0.8.30")}))
	l.Info("Compiling")
	assert.Contains(t, out.String(), "solc.version=0.8.30")
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"": FormatTerminal, "terminal": FormatTerminal, "logfmt": FormatLogfmt, "json": FormatJSON} {
		f, err := ParseFormat(in)
		require.NoError(t, err)
		assert.Equal(t, want, f, in)
	}
	_, err := ParseFormat("xml")
	assert.ErrorIs(t, err, errUnknownFormat)
}

func TestLevelNames(t *testing.T) {
	assert.Equal(t, "INFO ", LevelAlignedString(LevelInfo))
	assert.Equal(t, "TRACE", LevelAlignedString(LevelTrace))
	assert.Equal(t, "?????", LevelAlignedString(slog.Level(3)))
	assert.Equal(t, "crit", LevelString(LevelCrit))
}
