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

package extensions

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/ethereum/solbuild/log"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Loader activates the extension modules found in a directory. Every module
// is activated at most once per Loader, however often Load is called. A
// module is identified by its manifest path, so same-named modules from
// different directories are distinct.
type Loader struct {
	host      Host
	registry  *Registry
	activated mapset.Set[string] // absolute manifest paths
	order     []string
}

func NewLoader(host Host, registry *Registry) *Loader {
	return &Loader{
		host:      host,
		registry:  registry,
		activated: mapset.NewThreadUnsafeSet[string](),
	}
}

// Load activates every manifest in dir that has not been activated yet, in
// lexicographic order of the module identifiers. The first failure stops
// loading and is returned as a *LoadError.
func (l *Loader) Load(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return &LoadError{Module: dir, Err: err}
	}
	var ids []string
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ManifestExt {
			continue
		}
		ids = append(ids, strings.TrimSuffix(e.Name(), ManifestExt))
	}
	slices.Sort(ids)

	parser := hclparse.NewParser()
	for _, id := range ids {
		path := manifestKey(filepath.Join(dir, id+ManifestExt))
		if l.activated.Contains(path) {
			log.Trace("Extension already active", "module", id, "path", path)
			continue
		}
		if err := l.activate(parser, path); err != nil {
			return &LoadError{Module: id, Err: err}
		}
		l.activated.Add(path)
		l.order = append(l.order, id)
		log.Debug("Activated extension", "module", id)
	}
	return nil
}

func (l *Loader) activate(parser *hclparse.Parser, path string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &PanicError{Value: r}
		}
	}()
	m, err := parseManifest(parser, path)
	if err != nil {
		return err
	}
	handler, ok := l.registry.Lookup(m.Handler)
	if !ok {
		return fmt.Errorf("%w %q", errUnknownHandler, m.Handler)
	}
	return handler(l.host, Options{val: m.Options})
}

func manifestKey(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return filepath.Clean(path)
}

// Activated returns the identifiers of the activated modules in activation order.
func (l *Loader) Activated() []string {
	return slices.Clone(l.order)
}
