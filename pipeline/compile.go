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
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ethereum/solbuild/common/compiler"
	"github.com/ethereum/solbuild/log"
)

// ErrNoSources is returned by Compile when source discovery yields nothing.
var ErrNoSources = errors.New("no contract sources found")

// CompilationError reports a compiler run that produced errors.
type CompilationError struct {
	Diagnostics []compiler.Diagnostic
}

func (e *CompilationError) Error() string {
	var msgs []string
	for _, d := range e.Diagnostics {
		if !d.IsError() {
			continue
		}
		msg := d.Message
		if d.SourceLocation != nil {
			msg = d.SourceLocation.File + ": " + msg
		}
		msgs = append(msgs, msg)
	}
	return fmt.Sprintf("compilation failed with %d error(s): %s", len(msgs), strings.Join(msgs, "; "))
}

// Result is the outcome of a successful Compile.
type Result struct {
	Descriptor *compiler.Descriptor
	Sources    []string
	Output     *compiler.Output
	BuildInfo  string // path of the written build-info file
}

// Compile discovers the sources, resolves the compiler, runs it and records
// the invocation in a build-info file. Compiler warnings are filtered
// through the warnings policy first, which may turn them into errors.
func (rt *Runtime) Compile(ctx context.Context) (*Result, error) {
	cfg, err := rt.Config()
	if err != nil {
		return nil, err
	}
	paths, err := rt.SourcePaths(ctx)
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, ErrNoSources
	}
	input := &compiler.Input{
		Language: "Solidity",
		Sources:  make(map[string]compiler.Source, len(paths)),
		Settings: cfg.Solidity.Settings,
	}
	for _, p := range paths {
		content, err := os.ReadFile(filepath.Join(rt.root, filepath.FromSlash(p)))
		if err != nil {
			return nil, err
		}
		input.Sources[p] = compiler.Source{Content: string(content)}
	}

	desc, err := rt.SolcBuild(ctx, cfg.Solidity.Version)
	if err != nil {
		return nil, err
	}
	log.Info("Compiling contracts", "files", len(paths), "compiler", desc.LongVersion, "evm", input.Settings.EVMVersion)
	output, err := rt.run(ctx, desc, input)
	if err != nil {
		return nil, err
	}
	output.Errors = cfg.Warnings.Apply(output.Errors)
	for _, d := range output.Errors {
		if !d.IsError() {
			log.Warn("Compiler warning", "code", d.ErrorCode, "msg", d.Message)
		}
	}
	if output.HasErrors() {
		return nil, &CompilationError{Diagnostics: output.Errors}
	}

	file, err := WriteBuildInfo(ctx, filepath.Join(rt.root, cfg.Paths.Artifacts), desc, input, output)
	if err != nil {
		return nil, err
	}
	log.Info("Compiled contracts", "files", len(paths), "buildinfo", file)
	return &Result{Descriptor: desc, Sources: paths, Output: output, BuildInfo: file}, nil
}
