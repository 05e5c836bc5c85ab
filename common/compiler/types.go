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

// Package compiler wraps the Solidity compiler executables: native solc (or a
// drop-in replacement such as solx) and the emscripten soljson build.
package compiler

import "encoding/json"

// Input is a solc standard-JSON compilation request.
type Input struct {
	Language string            `json:"language"`
	Sources  map[string]Source `json:"sources"`
	Settings Settings          `json:"settings"`
}

// Source is one source unit of a compilation request.
type Source struct {
	Content string `json:"content"`
}

// Settings are the compiler settings of a standard-JSON request.
type Settings struct {
	Optimizer       Optimizer                      `json:"optimizer" yaml:"optimizer"`
	EVMVersion      string                         `json:"evmVersion,omitempty" yaml:"evmVersion,omitempty"`
	ViaIR           bool                           `json:"viaIR,omitempty" yaml:"viaIR,omitempty"`
	Remappings      []string                       `json:"remappings,omitempty" yaml:"remappings,omitempty"`
	OutputSelection map[string]map[string][]string `json:"outputSelection" yaml:"outputSelection"`
}

// Optimizer configures the solc optimizer.
type Optimizer struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	Runs    uint64 `json:"runs" yaml:"runs"`
}

// Output is a solc standard-JSON compilation result.
type Output struct {
	Errors    []Diagnostic                          `json:"errors,omitempty"`
	Sources   map[string]SourceOutput               `json:"sources,omitempty"`
	Contracts map[string]map[string]json.RawMessage `json:"contracts,omitempty"`
}

// SourceOutput is the per-source part of the output.
type SourceOutput struct {
	ID  int             `json:"id"`
	AST json.RawMessage `json:"ast,omitempty"`
}

// Diagnostic is an error or warning reported by the compiler.
type Diagnostic struct {
	Component        string          `json:"component"`
	Severity         string          `json:"severity"`
	Type             string          `json:"type"`
	ErrorCode        string          `json:"errorCode,omitempty"`
	Message          string          `json:"message"`
	FormattedMessage string          `json:"formattedMessage,omitempty"`
	SourceLocation   *SourceLocation `json:"sourceLocation,omitempty"`
}

// SourceLocation points at a byte range of a source unit.
type SourceLocation struct {
	File  string `json:"file"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

// IsError reports whether the diagnostic fails the compilation.
func (d *Diagnostic) IsError() bool {
	return d.Severity == "error"
}

// HasErrors reports whether any diagnostic is an error.
func (o *Output) HasErrors() bool {
	for i := range o.Errors {
		if o.Errors[i].IsError() {
			return true
		}
	}
	return false
}
