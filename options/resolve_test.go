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
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

var testDefs = []Definition{
	{Name: "compiler", Alias: "compileVersion", Kind: String, Default: "0.8.30"},
	{Name: "runs", Alias: "optimizationRuns", Kind: Number, Default: 200},
	{Name: "ir", Alias: "enableIR", Kind: Bool, Default: false},
	{Name: "coinmarketcap", Alias: "coinmarketcapApiKey", Kind: String},
	{Name: "gas-report-file", Kind: String, Default: "gas-report.txt"},
}

func TestResolveDefaults(t *testing.T) {
	cfg, err := Resolve(testDefs, nil, nil)
	require.NoError(t, err)

	assert.Equal(t, "0.8.30", cfg.String("compiler"))
	assert.Equal(t, float64(200), cfg.Number("runs"))
	assert.False(t, cfg.Bool("ir"))

	v, ok := cfg.Lookup("coinmarketcap")
	require.True(t, ok)
	assert.True(t, v.Absent(), "unset option without default must be absent")
	assert.Equal(t, SourceNone, v.Source())
	_, configured := cfg.LookupString("coinmarketcap")
	assert.False(t, configured)

	for _, name := range []string{"compiler", "runs", "ir", "gas-report-file"} {
		v, _ := cfg.Lookup(name)
		assert.Equal(t, SourceDefault, v.Source(), name)
	}
	assert.Equal(t, []string{"coinmarketcap", "compiler", "gas-report-file", "ir", "runs"}, cfg.Names())
}

func TestResolvePrecedence(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		args []string
		want string
		src  Source
	}{
		{"default", nil, nil, "0.8.30", SourceDefault},
		{"env", map[string]string{"COMPILER": "0.8.20"}, nil, "0.8.20", SourceEnv},
		{"env lower case", map[string]string{"compiler": "0.8.21"}, nil, "0.8.21", SourceEnv},
		{"cli over env", map[string]string{"COMPILER": "0.8.20"}, []string{"--compiler", "0.8.19"}, "0.8.19", SourceCLI},
		{"alias over env", map[string]string{"COMPILER": "0.8.20"}, []string{"--compileVersion=0.8.18"}, "0.8.18", SourceCLI},
		{"cli without env", nil, []string{"-compiler", "0.8.24"}, "0.8.24", SourceCLI},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Resolve(testDefs, tt.env, tt.args)
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.String("compiler"))
			v, _ := cfg.Lookup("compiler")
			assert.Equal(t, tt.src, v.Source())
		})
	}
}

func TestResolvePrecedenceAllKinds(t *testing.T) {
	env := map[string]string{"RUNS": "1000", "IR": "false", "GAS_REPORT_FILE": "env.txt"}

	cfg, err := Resolve(testDefs, env, nil)
	require.NoError(t, err)
	assert.Equal(t, float64(1000), cfg.Number("runs"))
	assert.False(t, cfg.Bool("ir"))
	assert.Equal(t, "env.txt", cfg.String("gas-report-file"))

	cfg, err = Resolve(testDefs, env, []string{"--runs", "5", "--ir", "--gas-report-file", "cli.txt"})
	require.NoError(t, err)
	assert.Equal(t, float64(5), cfg.Number("runs"))
	assert.True(t, cfg.Bool("ir"))
	assert.Equal(t, "cli.txt", cfg.String("gas-report-file"))
}

func TestResolveBooleanCoercion(t *testing.T) {
	for _, raw := range []string{"true", "TRUE", "True", "tRuE"} {
		cfg, err := Resolve(testDefs, map[string]string{"IR": raw}, nil)
		require.NoError(t, err, raw)
		assert.True(t, cfg.Bool("ir"), raw)
	}
	for _, raw := range []string{"false", "FALSE", "False"} {
		cfg, err := Resolve(testDefs, map[string]string{"IR": raw}, nil)
		require.NoError(t, err, raw)
		assert.False(t, cfg.Bool("ir"), raw)
	}
	for _, raw := range []string{"1", "0", "yes", "t", "", " true"} {
		_, err := Resolve(testDefs, map[string]string{"IR": raw}, nil)
		var cerr *ConfigError
		require.ErrorAs(t, err, &cerr, "token %q", raw)
		assert.Equal(t, "ir", cerr.Option)
		assert.Equal(t, SourceEnv, cerr.Source)
	}
	_, err := Resolve(testDefs, nil, []string{"--ir=maybe"})
	var cerr *ConfigError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "ir", cerr.Option)
	assert.Equal(t, SourceCLI, cerr.Source)
	assert.Contains(t, err.Error(), `"maybe"`)
}

func TestResolveBooleanForms(t *testing.T) {
	env := map[string]string{"IR": "true"}

	cfg, err := Resolve(testDefs, env, []string{"--ir=false"})
	require.NoError(t, err)
	assert.False(t, cfg.Bool("ir"))

	cfg, err = Resolve(testDefs, nil, []string{"--enableIR"})
	require.NoError(t, err)
	assert.True(t, cfg.Bool("ir"))

	// A boolean flag never consumes the following word.
	_, err = Resolve(testDefs, env, []string{"--ir", "false"})
	var cerr *ConfigError
	require.ErrorAs(t, err, &cerr)
	assert.Contains(t, err.Error(), `unexpected argument "false"`)
}

func TestResolveNumberCoercion(t *testing.T) {
	cfg, err := Resolve(testDefs, map[string]string{"RUNS": "1.5"}, nil)
	require.NoError(t, err)
	assert.Equal(t, 1.5, cfg.Number("runs"))
	_, err = cfg.Uint64("runs")
	assert.Error(t, err)

	for _, raw := range []string{"lots", "", "NaN", "Inf"} {
		_, err := Resolve(testDefs, map[string]string{"RUNS": raw}, nil)
		var cerr *ConfigError
		require.ErrorAs(t, err, &cerr, raw)
		assert.Equal(t, "runs", cerr.Option)
		assert.True(t, errors.Is(err, errNotNumber))
	}
}

func TestResolveEmptyStringIsConfigured(t *testing.T) {
	cfg, err := Resolve(testDefs, map[string]string{"COINMARKETCAP": ""}, nil)
	require.NoError(t, err)
	key, configured := cfg.LookupString("coinmarketcap")
	assert.True(t, configured)
	assert.Equal(t, "", key)
}

func TestResolveArgumentErrors(t *testing.T) {
	_, err := Resolve(testDefs, nil, []string{"--no-such-flag"})
	var cerr *ConfigError
	require.ErrorAs(t, err, &cerr)
	assert.Empty(t, cerr.Option)

	_, err = Resolve(testDefs, nil, []string{"stray"})
	require.ErrorAs(t, err, &cerr)
	assert.Contains(t, err.Error(), "stray")
}

func TestResolveRequired(t *testing.T) {
	defs := []Definition{{Name: "solx", Kind: String, Required: true}}
	_, err := Resolve(defs, nil, nil)
	var cerr *ConfigError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "solx", cerr.Option)
	assert.ErrorIs(t, err, errMissing)

	cfg, err := Resolve(defs, map[string]string{"SOLX": "/usr/local/bin/solx"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "/usr/local/bin/solx", cfg.String("solx"))
}

func TestEnvPrefix(t *testing.T) {
	r := NewResolver(testDefs, WithEnvPrefix("SOLBUILD_"))
	cfg, err := r.Resolve(map[string]string{"COMPILER": "0.8.1", "SOLBUILD_COMPILER": "0.8.2"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "0.8.2", cfg.String("compiler"))
}

func TestResolverReuse(t *testing.T) {
	r := NewResolver(testDefs)
	first, err := r.Resolve(nil, []string{"--runs", "1"})
	require.NoError(t, err)
	second, err := r.Resolve(nil, nil)
	require.NoError(t, err)
	assert.Equal(t, float64(1), first.Number("runs"))
	assert.Equal(t, float64(200), second.Number("runs"), "flag state must not leak between resolutions")
}

func TestDuplicateDefinitionsPanic(t *testing.T) {
	assert.Panics(t, func() {
		NewResolver([]Definition{{Name: "a"}, {Name: "b", Alias: "a"}})
	})
	assert.Panics(t, func() {
		NewResolver([]Definition{{Name: "runs", Kind: Number, Default: "200"}})
	})
}

func TestNewConfigEqual(t *testing.T) {
	a := NewConfig(testDefs, map[string]any{"ir": true})
	b := NewConfig(testDefs, map[string]any{"ir": true})
	c := NewConfig(testDefs, nil)
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.True(t, a.Bool("ir"))
}

func TestEnvName(t *testing.T) {
	d := Definition{Name: "gas-report-file"}
	assert.Equal(t, "GAS_REPORT_FILE", d.EnvName(""))
	assert.Equal(t, "X_GAS_REPORT_FILE", d.EnvName("x_"))
}

func TestResolveContextCommandFlags(t *testing.T) {
	r := NewResolver(testDefs)
	run := func(args ...string) *Config {
		t.Helper()
		var cfg *Config
		app := &cli.App{
			Name:   "solbuild",
			Flags:  r.Flags(),
			Writer: io.Discard,
			Commands: []*cli.Command{{
				Name:  "compile",
				Flags: r.Flags(),
				Action: func(ctx *cli.Context) (err error) {
					cfg, err = r.ResolveContext(ctx, map[string]string{"RUNS": "7"})
					return err
				},
			}},
		}
		require.NoError(t, app.Run(append([]string{"solbuild"}, args...)))
		return cfg
	}
	assert.Equal(t, float64(7), run("compile").Number("runs"))
	assert.Equal(t, float64(5), run("--runs", "5", "compile").Number("runs"))
	assert.Equal(t, float64(6), run("compile", "--runs", "6").Number("runs"))
	assert.Equal(t, float64(6), run("--runs", "5", "compile", "--optimizationRuns", "6").Number("runs"))

	cfg := run("--ir", "compile", "--compiler", "0.8.1")
	assert.True(t, cfg.Bool("ir"))
	assert.Equal(t, "0.8.1", cfg.String("compiler"))
}
