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

// Package warnings evaluates compiler diagnostics against a per-path
// warnings policy.
package warnings

import (
	"fmt"
	"strings"

	"github.com/ethereum/solbuild/internal/glob"
)

// Severity is the outcome configured for a warning rule.
type Severity string

const (
	Off     Severity = "off"
	Warn    Severity = "warn"
	Error   Severity = "error"
	Inherit Severity = "inherit" // keep whatever the compiler reported
)

// DefaultRule is the rule key that applies to warnings without their own entry.
const DefaultRule = "default"

// ParseSeverity parses a severity name. The booleans "true" and "false"
// are accepted as inherit and off respectively.
func ParseSeverity(s string) (Severity, error) {
	switch strings.ToLower(s) {
	case "off", "false":
		return Off, nil
	case "warn", "warning":
		return Warn, nil
	case "error":
		return Error, nil
	case "inherit", "true", "":
		return Inherit, nil
	}
	return "", fmt.Errorf("invalid warning severity %q", s)
}

// Entry assigns rule severities to every source file matching Glob.
type Entry struct {
	Glob  string              `json:"glob" yaml:"glob" toml:"Glob"`
	Rules map[string]Severity `json:"rules" yaml:"rules" toml:"Rules"`
}

// Policy is an ordered list of entries. Earlier entries take precedence.
type Policy []Entry

// Severity returns the configured severity of rule for the given source file.
// The first matching entry that names the rule decides; otherwise the first
// matching entry with a default does. Inherit is returned when nothing applies.
func (p Policy) Severity(file, rule string) Severity {
	for _, e := range p {
		if s, ok := e.Rules[rule]; ok && s != Inherit && glob.Match(e.Glob, file) {
			return s
		}
	}
	for _, e := range p {
		if s, ok := e.Rules[DefaultRule]; ok && s != Inherit && glob.Match(e.Glob, file) {
			return s
		}
	}
	return Inherit
}

// With returns a copy of p with extra entries placed ahead of the existing ones.
func (p Policy) With(extra ...Entry) Policy {
	out := make(Policy, 0, len(extra)+len(p))
	out = append(out, extra...)
	return append(out, p...)
}
