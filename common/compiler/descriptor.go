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

package compiler

import (
	"context"
	"errors"
	"fmt"
)

// Descriptor is the answer to "which compiler binary, at what version, native
// or embedded" for one build. It is created per request and not retained.
type Descriptor struct {
	CompilerPath string `json:"compilerPath"`
	Native       bool   `json:"isNativeBinary"` // false: run through the embedded JS interpreter
	Version      string `json:"version"`
	LongVersion  string `json:"longVersion"`
}

// Resolver picks the compiler to use for a requested solc version.
type Resolver interface {
	Resolve(ctx context.Context, version string) (*Descriptor, error)
}

// ResolverFunc adapts a function to the Resolver interface.
type ResolverFunc func(ctx context.Context, version string) (*Descriptor, error)

func (f ResolverFunc) Resolve(ctx context.Context, version string) (*Descriptor, error) {
	return f(ctx, version)
}

var (
	ErrUnknownVersion   = errors.New("no compiler build for version")
	ErrNotInstalled     = errors.New("compiler build not installed")
	ErrChecksumMismatch = errors.New("compiler build checksum mismatch")
)

// ResolutionError is returned when no usable compiler build exists for a
// requested version.
type ResolutionError struct {
	Version string
	Err     error
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("solc %s: %v", e.Version, e.Err)
}

func (e *ResolutionError) Unwrap() error { return e.Err }
