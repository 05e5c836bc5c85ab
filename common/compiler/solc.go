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

package compiler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strings"
)

// Run compiles input with the compiler the descriptor points at. Native
// binaries are started with --standard-json; other builds are evaluated in
// the embedded JavaScript interpreter.
//
// A binary that cannot be started yields the launch error from os/exec as
// is, so the caller sees exactly what the operating system reported.
func Run(ctx context.Context, desc *Descriptor, input *Input) (*Output, error) {
	in, err := json.Marshal(input)
	if err != nil {
		return nil, err
	}
	var out []byte
	if desc.Native {
		out, err = runNative(ctx, desc.CompilerPath, in)
	} else {
		out, err = runSolcJS(ctx, desc.CompilerPath, in)
	}
	if err != nil {
		return nil, err
	}
	var output Output
	if err := json.Unmarshal(out, &output); err != nil {
		return nil, fmt.Errorf("malformed compiler output from %s: %w", desc.LongVersion, err)
	}
	return &output, nil
}

func runNative(ctx context.Context, path string, input []byte) ([]byte, error) {
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, path, "--standard-json")
	cmd.Stdin = bytes.NewReader(input)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if _, ok := err.(*exec.ExitError); ok {
			return nil, fmt.Errorf("%s: %w: %s", path, err, strings.TrimSpace(stderr.String()))
		}
		return nil, err
	}
	return stdout.Bytes(), nil
}
