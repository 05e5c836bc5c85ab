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

// Package builtin contains the extension handlers compiled into solbuild.
package builtin

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ethereum/solbuild/buildconfig"
	"github.com/ethereum/solbuild/extensions"
	"github.com/ethereum/solbuild/internal/glob"
	"github.com/ethereum/solbuild/log"
	"github.com/ethereum/solbuild/pipeline"
	"github.com/ethereum/solbuild/warnings"
)

// Handler names.
const (
	SkipSources    = "skip-sources"
	IgnoreWarnings = "ignore-warnings"
	Remappings     = "remappings"
)

var errMissingOption = errors.New("missing required option")

// Register adds all built-in handlers to reg.
func Register(reg *extensions.Registry) {
	reg.Register(SkipSources, skipSources)
	reg.Register(IgnoreWarnings, ignoreWarnings)
	reg.Register(Remappings, remappings)
}

// NewRegistry returns a registry holding the built-in handlers.
func NewRegistry() *extensions.Registry {
	reg := extensions.NewRegistry()
	Register(reg)
	return reg
}

// skipSources drops the sources matching a glob from compilation, e.g. test
// contracts meant for another toolchain.
func skipSources(host extensions.Host, opts extensions.Options) error {
	pattern, err := opts.String("pattern", "")
	if err != nil {
		return err
	}
	if pattern == "" {
		return fmt.Errorf("%w %q", errMissingOption, "pattern")
	}
	if !glob.Valid(pattern) {
		return fmt.Errorf("invalid pattern %q", pattern)
	}
	host.OverrideSourcePaths(func(ctx context.Context, rt *pipeline.Runtime, runSuper func() ([]string, error)) ([]string, error) {
		paths, err := runSuper()
		if err != nil {
			return nil, err
		}
		kept := paths[:0:0]
		for _, p := range paths {
			if glob.Match(pattern, p) {
				log.Trace("Skipping source", "path", p, "pattern", pattern)
				continue
			}
			kept = append(kept, p)
		}
		return kept, nil
	})
	return nil
}

// ignoreWarnings places extra warning rules ahead of the configured policy.
func ignoreWarnings(host extensions.Host, opts extensions.Options) error {
	pattern, err := opts.String("glob", "*")
	if err != nil {
		return err
	}
	raw, err := opts.StringMap("rules")
	if err != nil {
		return err
	}
	if len(raw) == 0 {
		return fmt.Errorf("%w %q", errMissingOption, "rules")
	}
	entry := warnings.Entry{Glob: pattern, Rules: make(map[string]warnings.Severity, len(raw))}
	for rule, s := range raw {
		if !warnings.KnownRule(rule) {
			return fmt.Errorf("unknown warning rule %q", rule)
		}
		sev, err := warnings.ParseSeverity(s)
		if err != nil {
			return err
		}
		entry.Rules[rule] = sev
	}
	return host.OnConfig(func(cfg *buildconfig.Config) error {
		cfg.Warnings = cfg.Warnings.With(entry)
		return nil
	})
}

// remappings feeds the import remappings listed in a file to the compiler.
func remappings(host extensions.Host, opts extensions.Options) error {
	file, err := opts.String("file", "remappings.txt")
	if err != nil {
		return err
	}
	if !filepath.IsAbs(file) {
		file = filepath.Join(host.Root(), file)
	}
	list, err := readRemappings(file)
	if err != nil {
		return err
	}
	return host.OnConfig(func(cfg *buildconfig.Config) error {
		cfg.Solidity.Settings.Remappings = append(cfg.Solidity.Settings.Remappings, list...)
		return nil
	})
}

func readRemappings(file string) ([]string, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var list []string
	scanner := bufio.NewScanner(f)
	for n := 1; scanner.Scan(); n++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if !strings.Contains(line, "=") {
			return nil, fmt.Errorf("%s:%d: malformed remapping %q", filepath.Base(file), n, line)
		}
		list = append(list, line)
	}
	return list, scanner.Err()
}
