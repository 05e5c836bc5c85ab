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

package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/ethereum/solbuild/buildconfig"
	"github.com/ethereum/solbuild/common/compiler"
	"github.com/ethereum/solbuild/params"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeCompiler(diags ...compiler.Diagnostic) (CompileFunc, *[]*compiler.Input) {
	var seen []*compiler.Input
	return func(ctx context.Context, desc *compiler.Descriptor, input *compiler.Input) (*compiler.Output, error) {
		seen = append(seen, input)
		out := &compiler.Output{Sources: map[string]compiler.SourceOutput{}}
		for name := range input.Sources {
			out.Sources[name] = compiler.SourceOutput{}
		}
		out.Errors = append(out.Errors, diags...)
		return out, nil
	}, &seen
}

func TestCompileWritesBuildInfo(t *testing.T) {
	root := t.TempDir()
	writeSources(t, root, map[string]string{"contracts/A.sol": "contract A {}"})
	run, seen := fakeCompiler(compiler.Diagnostic{
		Severity: "warning", ErrorCode: "2394", Message: "transient storage",
		SourceLocation: &compiler.SourceLocation{File: "contracts/A.sol"},
	})
	desc := &compiler.Descriptor{CompilerPath: "/usr/local/bin/solx", Native: true, LongVersion: compiler.SubstituteLongVersion("0.1.0", "0.8.30")}
	rt := New(root, testConfig(t, map[string]any{buildconfig.OptRuns: 1000}), staticResolver(desc), WithCompileFunc(run))

	res, err := rt.Compile(context.Background())
	require.NoError(t, err)
	require.Len(t, *seen, 1)
	input := (*seen)[0]
	assert.Equal(t, "contract A {}", input.Sources["contracts/A.sol"].Content)
	assert.EqualValues(t, 1000, input.Settings.Optimizer.Runs)
	assert.Empty(t, res.Output.Errors, "transient-storage warnings are off")

	assert.Equal(t, filepath.Join(root, "artifacts", params.BuildInfoSubdir), filepath.Dir(res.BuildInfo))
	info, err := ReadBuildInfo(res.BuildInfo)
	require.NoError(t, err)
	assert.Equal(t, BuildInfoFormat, info.Format)
	assert.Equal(t, "0.8.30", info.SolcVersion)
	assert.Equal(t, "solx-0.1.0-0.8.30", info.SolcLongVersion)
	assert.Contains(t, info.Input.Sources, "contracts/A.sol")
}

func TestCompileWarningsBecomeErrors(t *testing.T) {
	root := t.TempDir()
	writeSources(t, root, map[string]string{"contracts/A.sol": "contract A {}"})
	run, _ := fakeCompiler(compiler.Diagnostic{
		Severity: "warning", ErrorCode: "5740", Message: "unreachable code",
		SourceLocation: &compiler.SourceLocation{File: "contracts/A.sol"},
	})
	rt := New(root, testConfig(t, nil), staticResolver(&compiler.Descriptor{}), WithCompileFunc(run))

	_, err := rt.Compile(context.Background())
	var cerr *CompilationError
	require.ErrorAs(t, err, &cerr)
	assert.Contains(t, err.Error(), "contracts/A.sol: unreachable code")

	_, statErr := os.Stat(filepath.Join(root, "artifacts", params.BuildInfoSubdir))
	assert.True(t, os.IsNotExist(statErr), "failed builds leave no build-info")
}

func TestCompileWithoutSources(t *testing.T) {
	run, _ := fakeCompiler()
	rt := New(t.TempDir(), testConfig(t, nil), staticResolver(&compiler.Descriptor{}), WithCompileFunc(run))
	_, err := rt.Compile(context.Background())
	assert.ErrorIs(t, err, ErrNoSources)
}

func TestCompileLaunchErrorUnwrapped(t *testing.T) {
	root := t.TempDir()
	writeSources(t, root, map[string]string{"contracts/A.sol": "contract A {}"})
	missing := filepath.Join(root, "no-solx")
	rt := New(root, testConfig(t, nil), staticResolver(&compiler.Descriptor{CompilerPath: missing, Native: true}))

	_, err := rt.Compile(context.Background())
	require.Error(t, err)
	var perr *os.PathError
	assert.ErrorAs(t, err, &perr)
}
