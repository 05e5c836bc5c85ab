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

package builtin

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/ethereum/solbuild/buildconfig"
	"github.com/ethereum/solbuild/extensions"
	"github.com/ethereum/solbuild/options"
	"github.com/ethereum/solbuild/pipeline"
	"github.com/ethereum/solbuild/warnings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRuntime(t *testing.T, root string) *pipeline.Runtime {
	t.Helper()
	cfg, err := buildconfig.Assemble(options.NewConfig(buildconfig.Definitions(), nil))
	require.NoError(t, err)
	return pipeline.New(root, cfg, nil)
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func load(t *testing.T, rt *pipeline.Runtime, manifests map[string]string) error {
	t.Helper()
	dir := t.TempDir()
	for id, body := range manifests {
		writeFile(t, filepath.Join(dir, id+extensions.ManifestExt), body)
	}
	return extensions.NewLoader(rt, NewRegistry()).Load(dir)
}

func TestSkipSources(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "contracts/Token.sol"), "")
	writeFile(t, filepath.Join(root, "contracts/test/Token.t.sol"), "")
	rt := newRuntime(t, root)

	require.NoError(t, load(t, rt, map[string]string{
		"skip-foundry-tests": `
extension {
  handler = "skip-sources"
  options = { pattern = "*.t.sol" }
}
`,
	}))
	paths, err := rt.SourcePaths(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"contracts/Token.sol"}, paths)
}

func TestSkipSourcesRequiresPattern(t *testing.T) {
	err := load(t, newRuntime(t, t.TempDir()), map[string]string{
		"skip": "extension {\n  handler = \"skip-sources\"\n}\n",
	})
	var lerr *extensions.LoadError
	require.ErrorAs(t, err, &lerr)
	assert.ErrorIs(t, err, errMissingOption)
}

func TestIgnoreWarnings(t *testing.T) {
	rt := newRuntime(t, t.TempDir())
	require.NoError(t, load(t, rt, map[string]string{
		"ignore-unreachable": `
extension {
  handler = "ignore-warnings"
  options = {
    glob  = "contracts/mocks/**/*"
    rules = { unreachable = "off", shadowing = "warn" }
  }
}
`,
	}))
	cfg, err := rt.Config()
	require.NoError(t, err)
	require.Len(t, cfg.Warnings, 3)
	assert.Equal(t, warnings.Off, cfg.Warnings.Severity("contracts/mocks/M.sol", "unreachable"))
	assert.Equal(t, warnings.Warn, cfg.Warnings.Severity("contracts/mocks/M.sol", "shadowing"))
	assert.Equal(t, warnings.Error, cfg.Warnings.Severity("contracts/M.sol", "unreachable"))
}

func TestIgnoreWarningsRejectsUnknownRule(t *testing.T) {
	err := load(t, newRuntime(t, t.TempDir()), map[string]string{
		"bad": "extension {\n  handler = \"ignore-warnings\"\n  options = { rules = { loudness = \"off\" } }\n}\n",
	})
	assert.ErrorContains(t, err, "loudness")
}

func TestRemappings(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "remappings.txt"), "# libraries\n@openzeppelin/=lib/openzeppelin/\n\nforge-std/=lib/forge-std/src/\n")
	rt := newRuntime(t, root)
	require.NoError(t, load(t, rt, map[string]string{
		"remap": "extension {\n  handler = \"remappings\"\n}\n",
	}))
	cfg, err := rt.Config()
	require.NoError(t, err)
	assert.Equal(t, []string{"@openzeppelin/=lib/openzeppelin/", "forge-std/=lib/forge-std/src/"}, cfg.Solidity.Settings.Remappings)
}

func TestRemappingsErrors(t *testing.T) {
	root := t.TempDir()
	err := load(t, newRuntime(t, root), map[string]string{"remap": "extension {\n  handler = \"remappings\"\n}\n"})
	assert.ErrorIs(t, err, os.ErrNotExist)

	writeFile(t, filepath.Join(root, "bad.txt"), "no-equals-sign\n")
	err = load(t, newRuntime(t, root), map[string]string{
		"remap": "extension {\n  handler = \"remappings\"\n  options = { file = \"bad.txt\" }\n}\n",
	})
	assert.ErrorContains(t, err, "bad.txt:1")
}
