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

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"reflect"

	"github.com/ethereum/solbuild/buildconfig"
	"github.com/ethereum/solbuild/cmd/utils"
	"github.com/naoina/toml"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"
)

// These settings ensure that TOML keys use the same names as Go struct fields.
var tomlSettings = toml.Config{
	NormFieldName: func(rt reflect.Type, key string) string {
		return key
	},
	FieldToKey: func(rt reflect.Type, field string) string {
		return field
	},
	MissingField: func(rt reflect.Type, field string) error {
		return fmt.Errorf("field '%s' is not defined in %s", field, rt.String())
	},
}

// dumpConfig is the dumpconfig command.
func dumpConfig(ctx *cli.Context) error {
	cfg, err := utils.ResolveOptions(ctx, environ())
	if err != nil {
		return err
	}
	rt, _, err := utils.MakeRuntime(ctx.String(utils.RootFlag.Name), cfg)
	if err != nil {
		return err
	}
	conf, err := rt.Config()
	if err != nil {
		return err
	}
	out, err := encodeConfig(conf, ctx.String(utils.FormatFlag.Name))
	if err != nil {
		return err
	}

	dump := ctx.App.Writer
	if ctx.NArg() > 0 {
		f, err := os.OpenFile(ctx.Args().Get(0), os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0644)
		if err != nil {
			return err
		}
		defer f.Close()
		dump = f
	}
	_, err = io.Copy(dump, bytes.NewReader(out))
	return err
}

func encodeConfig(conf *buildconfig.Config, format string) ([]byte, error) {
	switch format {
	case "toml", "":
		return tomlSettings.Marshal(conf)
	case "yaml":
		return yaml.Marshal(conf)
	case "json":
		out, err := json.MarshalIndent(conf, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(out, '\n'), nil
	}
	return nil, fmt.Errorf("unknown config format %q", format)
}
