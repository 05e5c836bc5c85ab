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

package extensions

import (
	"errors"
	"fmt"
)

var (
	errUnknownHandler = errors.New("unknown extension handler")
	errNoExtension    = errors.New("manifest has no extension block")
)

// LoadError reports the extension module that failed to load. Loading stops
// at the first failure.
type LoadError struct {
	Module string // module identifier, or the directory when it could not be read
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("extension %q: %v", e.Module, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// PanicError is the cause of a LoadError raised by a panicking handler.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic during activation: %v", e.Value)
}
