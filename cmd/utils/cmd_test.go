// Copyright 2026 The solbuild Authors
// This file is part of solbuild.
//
// solbuild is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// solbuild is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with solbuild. If not, see <http://www.gnu.org/licenses/>.

package utils

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/ethereum/solbuild/buildconfig"
	"github.com/ethereum/solbuild/common/compiler"
	"github.com/ethereum/solbuild/extensions"
	"github.com/ethereum/solbuild/extensions/builtin"
	"github.com/ethereum/solbuild/options"
	"github.com/ethereum/solbuild/pipeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var baseResolver = compiler.ResolverFunc(func(ctx context.Context, version string) (*compiler.Descriptor, error) {
	if version == "0.0.1" {
		return nil, &compiler.ResolutionError{Version: version, Err: compiler.ErrUnknownVersion}
	}
	return &compiler.Descriptor{
		CompilerPath: "/cache/compilers/soljson-v" + version + ".js",
		Native:       false,
		Version:      version,
		LongVersion:  version + "+commit.0123abcd",
	}, nil
})

func newRuntime(t *testing.T, values map[string]any) (*pipeline.Runtime, *options.Config) {
	t.Helper()
	cfg := options.NewConfig(buildconfig.Definitions(), values)
	conf, err := buildconfig.Assemble(cfg)
	require.NoError(t, err)
	return pipeline.New(t.TempDir(), conf, baseResolver), cfg
}

func TestCompilerOverrideDisabledIsTransparent(t *testing.T) {
	plain, _ := newRuntime(t, nil)
	hooked, cfg := newRuntime(t, map[string]any{buildconfig.OptUseSolx: false, buildconfig.OptSolx: "/usr/local/bin/solx"})
	InstallCompilerOverride(hooked, cfg)

	for _, version := range []string{"0.8.30", "0.8.20", "0.5.17", "0.0.1"} {
		want, wantErr := plain.SolcBuild(context.Background(), version)
		got, gotErr := hooked.SolcBuild(context.Background(), version)
		assert.Equal(t, want, got, version)
		assert.Equal(t, wantErr, gotErr, version)
	}
}

func TestCompilerOverrideEnabled(t *testing.T) {
	rt, cfg := newRuntime(t, map[string]any{buildconfig.OptUseSolx: true, buildconfig.OptSolx: "/usr/local/bin/solx"})
	InstallCompilerOverride(rt, cfg)

	desc, err := rt.SolcBuild(context.Background(), "0.8.30")
	require.NoError(t, err)
	assert.Equal(t, &compiler.Descriptor{
		CompilerPath: "/usr/local/bin/solx",
		Native:       true,
		Version:      "0.8.30",
		LongVersion:  "solx-0.1.0-0.8.30",
	}, desc)

	// Versions the default task cannot resolve are still substituted.
	desc, err = rt.SolcBuild(context.Background(), "0.0.1")
	require.NoError(t, err)
	assert.Equal(t, "solx-0.1.0-0.0.1", desc.LongVersion)
}

func TestCompilerOverrideWithoutPath(t *testing.T) {
	rt, cfg := newRuntime(t, map[string]any{buildconfig.OptUseSolx: true})
	InstallCompilerOverride(rt, cfg)

	desc, err := rt.SolcBuild(context.Background(), "0.8.30")
	require.NoError(t, err, "the path is validated at launch, not here")
	assert.Empty(t, desc.CompilerPath)
	assert.True(t, desc.Native)
}

func TestLoadExtensions(t *testing.T) {
	root := t.TempDir()
	rt, cfg := newRuntime(t, nil)

	// The default directory may be missing.
	loader := extensions.NewLoader(rt, builtin.NewRegistry())
	require.NoError(t, LoadExtensions(loader, root, cfg))
	assert.Empty(t, loader.Activated())

	// An explicitly configured one may not.
	cfg = options.NewConfig(buildconfig.Definitions(), map[string]any{buildconfig.OptExtensions: "missing"})
	err := LoadExtensions(loader, root, cfg)
	var lerr *extensions.LoadError
	assert.ErrorAs(t, err, &lerr)

	dir := filepath.Join(root, "hardhat")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "skip-foundry-tests.hcl"), []byte(`
extension {
  handler = "skip-sources"
  options = { pattern = "*.t.sol" }
}
`), 0o644))
	cfg = options.NewConfig(buildconfig.Definitions(), nil)
	require.NoError(t, LoadExtensions(loader, root, cfg))
	assert.Equal(t, []string{"skip-foundry-tests"}, loader.Activated())
}

func TestResolveOptionsFlags(t *testing.T) {
	names := make(map[string]bool)
	for _, f := range OptionFlags {
		for _, n := range f.Names() {
			names[n] = true
		}
	}
	for _, def := range buildconfig.Definitions() {
		assert.True(t, names[def.Name], def.Name)
		assert.True(t, names[def.Alias], def.Alias)
	}
}
