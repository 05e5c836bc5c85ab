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
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dop251/goja"
	"github.com/ethereum/solbuild/internal/jsre"
)

var errNoCompileEntry = errors.New("soljson: solidity_compile entry point not found")

// runSolcJS loads an emscripten soljson build into a fresh runtime and
// calls its solidity_compile export with the standard-JSON input.
func runSolcJS(ctx context.Context, path string, input []byte) ([]byte, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	re := jsre.New()
	defer re.Stop()
	stop := context.AfterFunc(ctx, func() { re.Interrupt(ctx.Err()) })
	defer stop()

	if err := re.Compile(filepath.Base(path), string(src)); err != nil {
		return nil, fmt.Errorf("soljson: loading %s: %w", filepath.Base(path), err)
	}
	// Some builds finish their runtime setup from a timer.
	if err := re.Settle(ctx); err != nil {
		return nil, fmt.Errorf("soljson: %w", err)
	}
	var out []byte
	derr := re.Do(func(vm *goja.Runtime) {
		var compile goja.Callable
		if compile, err = solidityCompile(vm); err != nil {
			return
		}
		var res goja.Value
		res, err = compile(goja.Undefined(), vm.ToValue(string(input)), vm.ToValue(0), vm.ToValue(0))
		if err != nil {
			err = fmt.Errorf("soljson: %w", err)
			return
		}
		out = []byte(res.String())
	})
	if derr != nil {
		return nil, derr
	}
	if err != nil {
		return nil, err
	}
	return out, nil
}

func solidityCompile(vm *goja.Runtime) (goja.Callable, error) {
	module := vm.Get("Module")
	if module == nil || goja.IsUndefined(module) || goja.IsNull(module) {
		return nil, errNoCompileEntry
	}
	obj := module.ToObject(vm)
	cwrap, ok := goja.AssertFunction(obj.Get("cwrap"))
	if !ok {
		return nil, errNoCompileEntry
	}
	wrapped, err := cwrap(obj,
		vm.ToValue("solidity_compile"),
		vm.ToValue("string"),
		vm.ToValue([]string{"string", "number", "number"}),
	)
	if err != nil {
		return nil, fmt.Errorf("soljson: %w", err)
	}
	compile, ok := goja.AssertFunction(wrapped)
	if !ok {
		return nil, errNoCompileEntry
	}
	return compile, nil
}
