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

// Package extensions discovers extension manifests in a directory and
// activates each of them against the pipeline runtime.
package extensions

import (
	"fmt"
	"slices"

	"github.com/ethereum/solbuild/pipeline"
)

// Host is the part of the pipeline runtime extensions register into.
type Host interface {
	Root() string
	OverrideSolcBuild(hook pipeline.SolcBuildHook)
	OverrideSourcePaths(hook pipeline.SourcePathsHook)
	OnConfig(fn pipeline.ConfigMutator) error
}

var _ Host = (*pipeline.Runtime)(nil)

// Handler activates an extension. It registers its behaviour into host and
// keeps no other reference to it.
type Handler func(host Host, opts Options) error

// Registry maps handler names to compiled-in handlers.
type Registry struct {
	handlers map[string]Handler
}

func NewRegistry() *Registry {
	return &Registry{handlers: make(map[string]Handler)}
}

// Register adds a handler. Registering a name twice panics.
func (r *Registry) Register(name string, h Handler) {
	if _, dup := r.handlers[name]; dup {
		panic(fmt.Sprintf("extensions: handler %q registered twice", name))
	}
	r.handlers[name] = h
}

func (r *Registry) Lookup(name string) (Handler, bool) {
	h, ok := r.handlers[name]
	return h, ok
}

// Names returns the registered handler names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.handlers))
	for name := range r.handlers {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
