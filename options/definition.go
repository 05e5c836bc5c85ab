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
	"strings"
)

// Kind is the declared type of an option.
type Kind int

const (
	String Kind = iota
	Number
	Bool
)

func (k Kind) String() string {
	switch k {
	case String:
		return "string"
	case Number:
		return "number"
	case Bool:
		return "boolean"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Definition declares a single option. Default must be nil (no default) or a
// value of the declared kind: a string, a bool, or any Go integer or float
// for numbers.
type Definition struct {
	Name     string
	Alias    string
	Kind     Kind
	Default  any
	Required bool

	Usage    string
	Category string
}

// EnvName returns the environment variable consulted for the option under
// the given prefix, e.g. "gas-report-file" -> "GAS_REPORT_FILE".
func (d *Definition) EnvName(prefix string) string {
	return envName(prefix, d.Name)
}

func envName(prefix, name string) string {
	r := strings.NewReplacer("-", "_", ".", "_")
	return strings.ToUpper(prefix + r.Replace(name))
}

// defaultValue converts the declared default into a Value. A default of the
// wrong kind is a programming error in the option table.
func (d *Definition) defaultValue() Value {
	if d.Default == nil {
		return Value{kind: d.Kind}
	}
	v := Value{kind: d.Kind, present: true, source: SourceDefault}
	switch d.Kind {
	case String:
		s, ok := d.Default.(string)
		if !ok {
			panic(fmt.Sprintf("option %q: default %v is not a string", d.Name, d.Default))
		}
		v.str = s
	case Bool:
		b, ok := d.Default.(bool)
		if !ok {
			panic(fmt.Sprintf("option %q: default %v is not a boolean", d.Name, d.Default))
		}
		v.b = b
	case Number:
		switch n := d.Default.(type) {
		case int:
			v.num = float64(n)
		case int64:
			v.num = float64(n)
		case uint64:
			v.num = float64(n)
		case float64:
			v.num = n
		default:
			panic(fmt.Sprintf("option %q: default %v is not a number", d.Name, d.Default))
		}
	}
	return v
}
