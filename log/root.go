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
	"log/slog"
	"sync/atomic"
)

// root is the process wide logger. It starts out discarding everything until
// the command line layer installs a handler through SetDefault.
var root atomic.Pointer[logger]

func init() {
	root.Store(&logger{slog.New(DiscardHandler())})
}

// SetDefault replaces the root logger and routes the slog default through it.
func SetDefault(l Logger) {
	lg, ok := l.(*logger)
	if !ok {
		lg = &logger{slog.New(l.Handler())}
	}
	root.Store(lg)
	slog.SetDefault(lg.inner)
}

// Root returns the root logger.
func Root() Logger {
	return root.Load()
}

// The package level helpers call Write on the root logger directly so that
// the caller frame recorded by slog is the same as for the logger methods.

// Trace logs at the trace level. The embedded compiler output goes here.
func Trace(msg string, ctx ...interface{}) {
	root.Load().Write(LevelTrace, msg, ctx...)
}

// Debug logs at the debug level.
func Debug(msg string, ctx ...interface{}) {
	root.Load().Write(LevelDebug, msg, ctx...)
}

// Info logs at the info level.
//
//	log.Info("Resolved build parameters", "compiler", version, "runs", runs)
func Info(msg string, ctx ...interface{}) {
	root.Load().Write(LevelInfo, msg, ctx...)
}

// Warn logs at the warn level.
func Warn(msg string, ctx ...interface{}) {
	root.Load().Write(LevelWarn, msg, ctx...)
}

// Error logs at the error level.
func Error(msg string, ctx ...interface{}) {
	root.Load().Write(LevelError, msg, ctx...)
}
