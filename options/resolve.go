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
	"io"
	"math"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"
)

// Resolver merges a fixed option table with environment and command line
// input. It holds no per-resolution state and may be reused.
type Resolver struct {
	defs      []Definition
	index     map[string]int // canonical names and aliases
	envPrefix string
}

// ResolverOption customises a Resolver.
type ResolverOption func(*Resolver)

// WithEnvPrefix makes the resolver look for PREFIX_NAME instead of NAME.
func WithEnvPrefix(prefix string) ResolverOption {
	return func(r *Resolver) { r.envPrefix = prefix }
}

// NewResolver indexes the option table. Duplicate names or aliases are a
// programming error and panic.
func NewResolver(defs []Definition, opts ...ResolverOption) *Resolver {
	r := &Resolver{
		defs:  slices.Clone(defs),
		index: make(map[string]int, 2*len(defs)),
	}
	for i, def := range r.defs {
		if def.Name == "" {
			panic(fmt.Sprintf("options: definition %d has no name", i))
		}
		for _, name := range []string{def.Name, def.Alias} {
			if name == "" {
				continue
			}
			if j, dup := r.index[name]; dup {
				panic(fmt.Sprintf("options: %q declared by both %q and %q", name, r.defs[j].Name, def.Name))
			}
			r.index[name] = i
		}
		def.defaultValue() // validates the default's kind
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve is a shorthand for NewResolver(defs).Resolve(env, args).
func Resolve(defs []Definition, env map[string]string, args []string) (*Config, error) {
	return NewResolver(defs).Resolve(env, args)
}

// Definitions returns a copy of the option table.
func (r *Resolver) Definitions() []Definition {
	return slices.Clone(r.defs)
}

// Flags returns fresh cli flags for every option, for use in a cli.App.
func (r *Resolver) Flags() []cli.Flag {
	flags := make([]cli.Flag, len(r.defs))
	for i, def := range r.defs {
		flags[i] = newFlag(def, r.envPrefix)
	}
	return flags
}

// Resolve parses args (without the program name) and merges them with env.
// Positional arguments are rejected.
func (r *Resolver) Resolve(env map[string]string, args []string) (*Config, error) {
	var (
		cfg    *Config
		runErr error
	)
	app := &cli.App{
		Name:            "options",
		Flags:           r.Flags(),
		HideHelp:        true,
		HideVersion:     true,
		HideHelpCommand: true,
		Writer:          io.Discard,
		ErrWriter:       io.Discard,
		Action: func(ctx *cli.Context) error {
			if ctx.NArg() > 0 {
				return &ConfigError{Err: fmt.Errorf("unexpected argument %q", ctx.Args().First())}
			}
			cfg, runErr = r.ResolveContext(ctx, env)
			return runErr
		},
	}
	if err := app.Run(append([]string{app.Name}, args...)); err != nil {
		if _, ok := err.(*ConfigError); ok {
			return nil, err
		}
		return nil, &ConfigError{Err: err}
	}
	return cfg, nil
}

// ResolveContext resolves against flags already parsed into ctx and its
// parent contexts. The flags must have been created by r.Flags.
func (r *Resolver) ResolveContext(ctx *cli.Context, env map[string]string) (*Config, error) {
	cfg := &Config{values: make(map[string]Value, len(r.defs))}
	for i := range r.defs {
		def := &r.defs[i]
		v, err := r.resolveOne(ctx, def, env)
		if err != nil {
			return nil, err
		}
		cfg.values[def.Name] = v
		cfg.names = append(cfg.names, def.Name)
	}
	slices.Sort(cfg.names)
	return cfg, nil
}

func (r *Resolver) resolveOne(ctx *cli.Context, def *Definition, env map[string]string) (Value, error) {
	if raw, ok := cliValue(ctx, def.Name); ok {
		return coerce(def, raw, SourceCLI)
	}
	if raw, ok := lookupEnv(env, def.EnvName(r.envPrefix)); ok {
		return coerce(def, raw, SourceEnv)
	}
	v := def.defaultValue()
	if v.Absent() && def.Required {
		return v, &ConfigError{Option: def.Name, Err: errMissing}
	}
	return v, nil
}

// cliValue looks the option up from the innermost command outwards, so an
// option given after a command name wins over the same option given before it.
func cliValue(ctx *cli.Context, name string) (string, bool) {
	if ctx == nil {
		return "", false
	}
	for _, c := range ctx.Lineage() {
		if raw, ok := c.Generic(name).(*rawValue); ok && raw.set {
			return raw.s, true
		}
	}
	return "", false
}

// lookupEnv matches the variable name case-insensitively. An exact match
// wins; otherwise the first case-folded match in sorted key order is used.
func lookupEnv(env map[string]string, key string) (string, bool) {
	if v, ok := env[key]; ok {
		return v, true
	}
	var candidates []string
	for k := range env {
		if strings.EqualFold(k, key) {
			candidates = append(candidates, k)
		}
	}
	if len(candidates) == 0 {
		return "", false
	}
	slices.Sort(candidates)
	return env[candidates[0]], true
}

func coerce(def *Definition, raw string, src Source) (Value, error) {
	v := Value{kind: def.Kind, present: true, source: src}
	switch def.Kind {
	case String:
		v.str = raw
	case Number:
		n, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
			return Value{}, &ConfigError{Option: def.Name, Source: src, Value: raw, Err: errNotNumber}
		}
		v.num = n
	case Bool:
		switch {
		case strings.EqualFold(raw, "true"):
			v.b = true
		case strings.EqualFold(raw, "false"):
			v.b = false
		default:
			return Value{}, &ConfigError{Option: def.Name, Source: src, Value: raw, Err: errNotBoolean}
		}
	}
	return v, nil
}

// Environ returns the process environment as a map.
func Environ() map[string]string {
	env := make(map[string]string)
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok {
			env[k] = v
		}
	}
	return env
}
