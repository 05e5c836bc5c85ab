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
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/ethereum/solbuild/buildconfig"
	"github.com/ethereum/solbuild/common/compiler"
	"github.com/ethereum/solbuild/extensions"
	"github.com/ethereum/solbuild/extensions/builtin"
	"github.com/ethereum/solbuild/log"
	"github.com/ethereum/solbuild/options"
	"github.com/ethereum/solbuild/params"
	"github.com/ethereum/solbuild/pipeline"
)

// Fatalf formats a message to standard error and exits the program.
// The message is also printed to standard output if standard error
// is redirected to a different file.
func Fatalf(format string, args ...interface{}) {
	w := io.MultiWriter(os.Stdout, os.Stderr)
	if runtime.GOOS == "windows" {
		// The SameFile check below doesn't work on Windows.
		// stdout is unlikely to get redirected though, so just print there.
		w = os.Stdout
	} else {
		outf, _ := os.Stdout.Stat()
		errf, _ := os.Stderr.Stat()
		if outf != nil && errf != nil && os.SameFile(outf, errf) {
			w = os.Stderr
		}
	}
	fmt.Fprintf(w, "Fatal: "+format+"\n", args...)
	os.Exit(1)
}

// MakeRuntime assembles the build configuration and creates the pipeline
// runtime for the project at root. Extensions are activated first and the
// compiler override last, so the override sees every extension hook as its
// default behaviour.
func MakeRuntime(root string, cfg *options.Config, opts ...pipeline.Option) (*pipeline.Runtime, *extensions.Loader, error) {
	conf, err := buildconfig.Assemble(cfg)
	if err != nil {
		return nil, nil, err
	}
	resolver := &compiler.DefaultResolver{
		Dir: filepath.Join(root, cfg.String(buildconfig.OptCache), params.CompilersSubdir),
	}
	rt := pipeline.New(root, conf, resolver, opts...)

	loader := extensions.NewLoader(rt, builtin.NewRegistry())
	if err := LoadExtensions(loader, root, cfg); err != nil {
		return nil, nil, err
	}
	InstallCompilerOverride(rt, cfg)
	return rt, loader, nil
}

// LoadExtensions activates the extension directory named by the options. A
// missing directory is only an error when it was configured explicitly.
func LoadExtensions(loader *extensions.Loader, root string, cfg *options.Config) error {
	v, _ := cfg.Lookup(buildconfig.OptExtensions)
	dir := cfg.String(buildconfig.OptExtensions)
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(root, dir)
	}
	if v.Source() == options.SourceDefault {
		if _, err := os.Stat(dir); errors.Is(err, os.ErrNotExist) {
			log.Debug("No extension directory", "dir", dir)
			return nil
		}
	}
	if err := loader.Load(dir); err != nil {
		return err
	}
	if active := loader.Activated(); len(active) > 0 {
		log.Info("Loaded extensions", "count", len(active), "modules", active)
	}
	return nil
}

// InstallCompilerOverride registers the solx substitution on the compiler
// build task. The path is not checked here: a bad path fails when the
// compiler is launched.
func InstallCompilerOverride(host extensions.Host, cfg *options.Config) {
	enabled := cfg.Bool(buildconfig.OptUseSolx)
	path := cfg.String(buildconfig.OptSolx)
	host.OverrideSolcBuild(func(ctx context.Context, args pipeline.SolcBuildArgs, rt *pipeline.Runtime, runSuper func() (*compiler.Descriptor, error)) (*compiler.Descriptor, error) {
		r := &compiler.SubstitutingResolver{
			Default: compiler.ResolverFunc(func(context.Context, string) (*compiler.Descriptor, error) {
				return runSuper()
			}),
			Enabled:   enabled,
			Path:      path,
			Toolchain: params.SolxToolchainVersion,
		}
		return r.Resolve(ctx, args.SolcVersion)
	})
}
