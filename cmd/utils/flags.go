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

// Package utils contains internal helper functions for solbuild commands.
package utils

import (
	"github.com/ethereum/solbuild/buildconfig"
	"github.com/ethereum/solbuild/internal/flags"
	"github.com/ethereum/solbuild/options"
	"github.com/urfave/cli/v2"
)

// Resolver resolves the solbuild option table.
var Resolver = options.NewResolver(buildconfig.Definitions())

// OptionFlags are the build option flags of the top-level application,
// mirrored by environment variables of the same name.
var OptionFlags = Resolver.Flags()

// CommandOptionFlags returns a fresh set of option flags for a command, so
// that options may also follow the command name.
func CommandOptionFlags() []cli.Flag {
	return Resolver.Flags()
}

var (
	RootFlag = &flags.DirectoryFlag{
		Name:     "root",
		Usage:    "Project root directory",
		Value:    ".",
		Category: flags.PathsCategory,
	}
	FormatFlag = &cli.StringFlag{
		Name:     "format",
		Usage:    "Output format (toml|yaml|json)",
		Value:    "toml",
		Category: flags.MiscCategory,
	}
)

// ResolveOptions resolves the build options from the parsed command line and
// the given environment.
func ResolveOptions(ctx *cli.Context, env map[string]string) (*options.Config, error) {
	return Resolver.ResolveContext(ctx, env)
}
