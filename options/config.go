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
	"fmt"
	"math"
	"slices"
	"strconv"
)

// Source identifies the tier that supplied a resolved value.
type Source int

const (
	SourceNone Source = iota // absent: no input and no default
	SourceDefault
	SourceEnv
	SourceCLI
)

func (s Source) String() string {
	switch s {
	case SourceDefault:
		return "default"
	case SourceEnv:
		return "environment"
	case SourceCLI:
		return "command line"
	default:
		return "none"
	}
}

// Value is a resolved, typed option value. The zero Value of a kind is the
// absent value, which is distinct from an empty string.
type Value struct {
	kind    Kind
	present bool
	source  Source

	str string
	num float64
	b   bool
}

// Kind returns the declared kind of the option the value belongs to.
func (v Value) Kind() Kind { return v.kind }

// Absent reports whether the option was left unconfigured.
func (v Value) Absent() bool { return !v.present }

// Source reports which tier supplied the value.
func (v Value) Source() Source { return v.source }

// Any returns the value as string, float64 or bool, or nil when absent.
func (v Value) Any() any {
	if !v.present {
		return nil
	}
	switch v.kind {
	case Number:
		return v.num
	case Bool:
		return v.b
	default:
		return v.str
	}
}

func (v Value) String() string {
	if !v.present {
		return "<absent>"
	}
	switch v.kind {
	case Number:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case Bool:
		return strconv.FormatBool(v.b)
	default:
		return v.str
	}
}

// Config is the immutable result of resolution. Every declared option has an
// entry; accessors panic on names that were never declared.
type Config struct {
	values map[string]Value
	names  []string
}

func (c *Config) get(name string, kind Kind) Value {
	v, ok := c.values[name]
	if !ok {
		panic(fmt.Sprintf("options: unknown option %q", name))
	}
	if v.kind != kind {
		panic(fmt.Sprintf("options: option %q is a %s, not a %s", name, v.kind, kind))
	}
	return v
}

// Lookup returns the resolved value of the named option.
func (c *Config) Lookup(name string) (Value, bool) {
	v, ok := c.values[name]
	return v, ok
}

// Names returns the canonical option names in sorted order.
func (c *Config) Names() []string {
	return slices.Clone(c.names)
}

// String returns a string option, "" when absent.
func (c *Config) String(name string) string {
	return c.get(name, String).str
}

// LookupString returns a string option and whether it was configured.
func (c *Config) LookupString(name string) (string, bool) {
	v := c.get(name, String)
	return v.str, v.present
}

// Number returns a numeric option, 0 when absent.
func (c *Config) Number(name string) float64 {
	return c.get(name, Number).num
}

// Uint64 returns a numeric option that must hold a non-negative integer.
func (c *Config) Uint64(name string) (uint64, error) {
	v := c.get(name, Number)
	if v.num < 0 || v.num != math.Trunc(v.num) || v.num >= 1<<64 {
		return 0, &ConfigError{Option: name, Source: v.source, Value: v.String(), Err: fmt.Errorf("%w: want a non-negative integer", errNotNumber)}
	}
	return uint64(v.num), nil
}

// Bool returns a boolean option, false when absent.
func (c *Config) Bool(name string) bool {
	return c.get(name, Bool).b
}

// Equal reports whether two configurations hold the same options and values.
func (c *Config) Equal(other *Config) bool {
	if len(c.values) != len(other.values) {
		return false
	}
	for name, v := range c.values {
		o, ok := other.values[name]
		if !ok || o.kind != v.kind || o.present != v.present || o.Any() != v.Any() {
			return false
		}
	}
	return true
}

// NewConfig builds a configuration directly from typed values. Options not
// listed in values take their declared default. It is meant for fixtures:
// values are not coerced and must already be of the declared kind.
func NewConfig(defs []Definition, values map[string]any) *Config {
	cfg := &Config{values: make(map[string]Value, len(defs))}
	for i := range defs {
		def := &defs[i]
		v := def.defaultValue()
		if raw, ok := values[def.Name]; ok {
			d := *def
			d.Default = raw
			v = d.defaultValue()
			v.source = SourceCLI
		}
		cfg.values[def.Name] = v
		cfg.names = append(cfg.names, def.Name)
	}
	slices.Sort(cfg.names)
	return cfg
}
