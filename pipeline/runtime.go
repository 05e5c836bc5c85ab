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

// Package pipeline is a minimal build pipeline runtime. Its tasks can be
// overridden by hooks that may delegate to the behaviour they replace.
package pipeline

import (
	"context"
	"errors"
	"fmt"

	"github.com/ethereum/solbuild/buildconfig"
	"github.com/ethereum/solbuild/common/compiler"
	"github.com/ethereum/solbuild/log"
)

// SolcBuildArgs are the arguments of the compiler build task.
type SolcBuildArgs struct {
	SolcVersion string
}

// SolcBuildHook overrides the compiler build task. runSuper invokes the
// behaviour that was in place before the hook was registered.
type SolcBuildHook func(ctx context.Context, args SolcBuildArgs, rt *Runtime, runSuper func() (*compiler.Descriptor, error)) (*compiler.Descriptor, error)

// SourcePathsHook overrides the source discovery task.
type SourcePathsHook func(ctx context.Context, rt *Runtime, runSuper func() ([]string, error)) ([]string, error)

// ConfigMutator adjusts the build configuration before it is used.
type ConfigMutator func(cfg *buildconfig.Config) error

// CompileFunc executes a compiler descriptor.
type CompileFunc func(ctx context.Context, desc *compiler.Descriptor, input *compiler.Input) (*compiler.Output, error)

var errConfigSealed = errors.New("pipeline: configuration already in use")

// Runtime holds the build configuration and the task overrides registered
// by extensions. It is not safe for concurrent use.
type Runtime struct {
	root   string
	config *buildconfig.Config
	sealed bool

	resolver compiler.Resolver
	run      CompileFunc

	solcHooks   []SolcBuildHook
	sourceHooks []SourcePathsHook
	mutators    []ConfigMutator
}

// Option configures a Runtime.
type Option func(*Runtime)

// WithCompileFunc replaces compiler execution, e.g. for tests.
func WithCompileFunc(fn CompileFunc) Option {
	return func(rt *Runtime) { rt.run = fn }
}

// New creates a runtime for the project rooted at root. The resolver
// provides the default compiler build task.
func New(root string, cfg *buildconfig.Config, resolver compiler.Resolver, opts ...Option) *Runtime {
	rt := &Runtime{
		root:     root,
		config:   cfg,
		resolver: resolver,
		run:      compiler.Run,
	}
	for _, opt := range opts {
		opt(rt)
	}
	return rt
}

// Root returns the project root directory.
func (rt *Runtime) Root() string { return rt.root }

// Config returns the build configuration with all registered mutators applied.
// After the first call the configuration is sealed.
func (rt *Runtime) Config() (*buildconfig.Config, error) {
	if !rt.sealed {
		for i, fn := range rt.mutators {
			if err := fn(rt.config); err != nil {
				return nil, fmt.Errorf("config mutator %d: %w", i, err)
			}
		}
		rt.sealed = true
	}
	return rt.config, nil
}

// SetConfig replaces the build configuration. It fails once the
// configuration has been handed out.
func (rt *Runtime) SetConfig(cfg *buildconfig.Config) error {
	if rt.sealed {
		return errConfigSealed
	}
	rt.config = cfg
	return nil
}

// OnConfig registers a configuration mutator. Mutators run in registration
// order the first time the configuration is requested.
func (rt *Runtime) OnConfig(fn ConfigMutator) error {
	if rt.sealed {
		return errConfigSealed
	}
	rt.mutators = append(rt.mutators, fn)
	return nil
}

// OverrideSolcBuild registers a hook for the compiler build task. The most
// recently registered hook runs first.
func (rt *Runtime) OverrideSolcBuild(hook SolcBuildHook) {
	rt.solcHooks = append(rt.solcHooks, hook)
}

// OverrideSourcePaths registers a hook for the source discovery task.
func (rt *Runtime) OverrideSourcePaths(hook SourcePathsHook) {
	rt.sourceHooks = append(rt.sourceHooks, hook)
}

// SolcBuild runs the compiler build task for the given version.
func (rt *Runtime) SolcBuild(ctx context.Context, version string) (*compiler.Descriptor, error) {
	args := SolcBuildArgs{SolcVersion: version}
	var call func(i int) (*compiler.Descriptor, error)
	call = func(i int) (*compiler.Descriptor, error) {
		if i < 0 {
			return rt.resolver.Resolve(ctx, args.SolcVersion)
		}
		return rt.solcHooks[i](ctx, args, rt, func() (*compiler.Descriptor, error) { return call(i - 1) })
	}
	desc, err := call(len(rt.solcHooks) - 1)
	if err != nil {
		return nil, err
	}
	log.Debug("Resolved compiler build", "version", version, "path", desc.CompilerPath, "native", desc.Native, "long", desc.LongVersion)
	return desc, nil
}

// SourcePaths runs the source discovery task.
func (rt *Runtime) SourcePaths(ctx context.Context) ([]string, error) {
	var call func(i int) ([]string, error)
	call = func(i int) ([]string, error) {
		if i < 0 {
			cfg, err := rt.Config()
			if err != nil {
				return nil, err
			}
			return findSources(rt.root, cfg.Paths.Sources)
		}
		return rt.sourceHooks[i](ctx, rt, func() ([]string, error) { return call(i - 1) })
	}
	return call(len(rt.sourceHooks) - 1)
}
