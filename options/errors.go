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

package options

import (
	"errors"
	"fmt"
)

var (
	errNotNumber  = errors.New("not a number")
	errNotBoolean = errors.New(`expected "true" or "false"`)
	errMissing    = errors.New("required option has no value")
)

// ConfigError reports an option whose raw input could not be turned into a
// value of its declared kind, or a required option left without a value.
type ConfigError struct {
	Option string // canonical option name, empty for argument syntax errors
	Source Source // tier the offending input came from
	Value  string // raw input
	Err    error
}

func (e *ConfigError) Error() string {
	switch {
	case e.Option == "":
		return fmt.Sprintf("invalid arguments: %v", e.Err)
	case e.Source == SourceNone:
		return fmt.Sprintf("option %q: %v", e.Option, e.Err)
	default:
		return fmt.Sprintf("option %q: invalid %s value %q: %v", e.Option, e.Source, e.Value, e.Err)
	}
}

func (e *ConfigError) Unwrap() error { return e.Err }
