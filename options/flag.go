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
	"flag"
	"strings"

	"github.com/urfave/cli/v2"
)

// rawValue is the flag.Value behind every option flag. It keeps the raw
// command line string so coercion stays with the resolver.
type rawValue struct {
	s      string
	set    bool
	isBool bool
}

func (v *rawValue) String() string { return v.s }

func (v *rawValue) Set(s string) error {
	v.s = s
	v.set = true
	return nil
}

// IsBoolFlag lets a boolean option be given bare (--ir means --ir=true).
func (v *rawValue) IsBoolFlag() bool { return v.isBool }

var (
	_ cli.Flag              = (*Flag)(nil)
	_ cli.VisibleFlag       = (*Flag)(nil)
	_ cli.DocGenerationFlag = (*Flag)(nil)
	_ cli.CategorizableFlag = (*Flag)(nil)
)

// Flag is the cli.Flag exposing one option definition on the command line.
// Both the canonical name and the alias are bound to the same value.
type Flag struct {
	def    Definition
	prefix string
	value  *rawValue
}

func newFlag(def Definition, prefix string) *Flag {
	return &Flag{
		def:    def,
		prefix: prefix,
		value:  &rawValue{isBool: def.Kind == Bool},
	}
}

// For cli.Flag:

func (f *Flag) Names() []string {
	if f.def.Alias == "" {
		return []string{f.def.Name}
	}
	return []string{f.def.Name, f.def.Alias}
}
func (f *Flag) IsSet() bool    { return f.value.set }
func (f *Flag) String() string { return cli.FlagStringer(f) }

// Apply registers every name of the option on the flag set. Each parse
// starts from an unset value. The environment is not consulted here, the
// resolver owns that tier.
func (f *Flag) Apply(set *flag.FlagSet) error {
	f.value = &rawValue{isBool: f.def.Kind == Bool}
	for _, name := range f.Names() {
		set.Var(f.value, strings.TrimSpace(name), f.def.Usage)
	}
	return nil
}

// For cli.VisibleFlag:

func (f *Flag) IsVisible() bool { return true }

// For cli.CategorizableFlag:

func (f *Flag) GetCategory() string { return f.def.Category }

// For cli.DocGenerationFlag:

func (f *Flag) TakesValue() bool       { return f.def.Kind != Bool }
func (f *Flag) GetUsage() string       { return f.def.Usage }
func (f *Flag) GetValue() string       { return f.value.s }
func (f *Flag) IsDefaultVisible() bool { return true }
func (f *Flag) GetEnvVars() []string   { return []string{f.def.EnvName(f.prefix)} }
func (f *Flag) GetDefaultText() string {
	v := f.def.defaultValue()
	if v.Absent() {
		return ""
	}
	return v.String()
}
