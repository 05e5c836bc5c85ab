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

// solbuild configures and runs a Solidity build pipeline.
package main

import (
	"fmt"
	"os"

	"github.com/ethereum/solbuild/cmd/utils"
	"github.com/ethereum/solbuild/extensions/builtin"
	"github.com/ethereum/solbuild/internal/debug"
	"github.com/ethereum/solbuild/internal/flags"
	"github.com/ethereum/solbuild/internal/version"
	"github.com/ethereum/solbuild/log"
	"github.com/ethereum/solbuild/options"
	"github.com/urfave/cli/v2"
)

var (
	app = flags.NewApp("the solbuild command line interface")

	// environ supplies the environment consulted for build options.
	environ = options.Environ

	compileCommand = &cli.Command{
		Action: compile,
		Name:   "compile",
		Usage:  "Compile the contract sources",
		Flags:  utils.CommandOptionFlags(),
		Description: `
Compiles every contract below the sources directory with the configured
compiler and writes a build-info record into the artifacts directory.`,
	}
	dumpConfigCommand = &cli.Command{
		Action:    dumpConfig,
		Name:      "dumpconfig",
		Usage:     "Export the derived build configuration",
		ArgsUsage: "[dumpfile]",
		Flags:     flags.Merge(utils.CommandOptionFlags(), []cli.Flag{utils.FormatFlag}),
		Description: `
Writes the configuration assembled from defaults, environment and flags,
after extensions have been applied.`,
	}
	extensionsCommand = &cli.Command{
		Action: listExtensions,
		Name:   "extensions",
		Usage:  "Activate the extension directory and list the result",
		Flags:  utils.CommandOptionFlags(),
	}
	versionCommand = &cli.Command{
		Action: printVersion,
		Name:   "version",
		Usage:  "Print version numbers",
	}
)

func init() {
	app.Action = compile
	app.Commands = []*cli.Command{
		compileCommand,
		dumpConfigCommand,
		extensionsCommand,
		versionCommand,
	}
	app.Flags = flags.Merge(
		utils.OptionFlags,
		[]cli.Flag{utils.RootFlag},
		debug.Flags,
	)
	app.Before = func(ctx *cli.Context) error {
		return debug.Setup(ctx)
	}
	app.After = func(ctx *cli.Context) error {
		debug.Exit()
		return nil
	}
}

func main() {
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// compile is the default action: it resolves the options, activates the
// extensions and runs the compiler.
func compile(ctx *cli.Context) error {
	if args := ctx.Args().Slice(); len(args) > 0 {
		return fmt.Errorf("invalid command: %s", args[0])
	}
	cfg, err := utils.ResolveOptions(ctx, environ())
	if err != nil {
		return err
	}
	rt, _, err := utils.MakeRuntime(ctx.String(utils.RootFlag.Name), cfg)
	if err != nil {
		return err
	}
	res, err := rt.Compile(ctx.Context)
	if err != nil {
		return err
	}
	log.Debug("Build finished", "sources", len(res.Sources), "compiler", res.Descriptor.LongVersion)
	return nil
}

func listExtensions(ctx *cli.Context) error {
	cfg, err := utils.ResolveOptions(ctx, environ())
	if err != nil {
		return err
	}
	_, loader, err := utils.MakeRuntime(ctx.String(utils.RootFlag.Name), cfg)
	if err != nil {
		return err
	}
	out := ctx.App.Writer
	fmt.Fprintln(out, "Handlers:")
	for _, name := range builtin.NewRegistry().Names() {
		fmt.Fprintln(out, "  "+name)
	}
	fmt.Fprintln(out, "Activated:")
	for _, id := range loader.Activated() {
		fmt.Fprintln(out, "  "+id)
	}
	return nil
}

func printVersion(ctx *cli.Context) error {
	fmt.Fprintln(ctx.App.Writer, "solbuild")
	fmt.Fprint(ctx.App.Writer, version.Describe())
	return nil
}
