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

// Package jsre provides an execution environment for JavaScript compiler
// builds (soljson). Scripts run on a single event loop goroutine that also
// serves setTimeout.
package jsre

import (
	"context"
	"errors"
	"time"

	"github.com/dop251/goja"
	"github.com/ethereum/solbuild/log"
)

var errStopped = errors.New("JS runtime stopped")

// JSRE is a JS runtime environment embedding the goja interpreter.
//
// All code runs on a dedicated event loop and the underlying goja runtime is
// not exposed directly. To use the runtime, call JSRE.Do.
type JSRE struct {
	vm        *goja.Runtime
	evalQueue chan *evalReq
	settle    chan chan struct{}
	stop      chan struct{}
	closed    chan struct{}
}

// evalReq is a serialized vm execution request processed by runEventLoop.
type evalReq struct {
	fn   func(vm *goja.Runtime)
	done chan struct{}
}

// jsTimer is a pending setTimeout callback.
type jsTimer struct {
	timer *time.Timer
	fn    goja.Callable
	args  []goja.Value
}

// New creates a runtime with the event loop started. print and printErr,
// which emscripten builds write their output through, go to the trace log.
func New() *JSRE {
	re := &JSRE{
		vm:        goja.New(),
		evalQueue: make(chan *evalReq),
		settle:    make(chan chan struct{}),
		stop:      make(chan struct{}),
		closed:    make(chan struct{}),
	}
	go re.runEventLoop()
	return re
}

func printLine(call goja.FunctionCall) goja.Value {
	log.Trace("soljson", "msg", call.Argument(0).String())
	return goja.Undefined()
}

// runEventLoop owns the vm. It runs Do requests and due timer callbacks one
// at a time, and releases Settle callers once no timer is pending.
func (re *JSRE) runEventLoop() {
	defer close(re.closed)

	var (
		pending = make(map[*jsTimer]struct{})
		ready   = make(chan *jsTimer)
		waiters []chan struct{}
	)
	release := func() {
		if len(pending) > 0 {
			return
		}
		for _, w := range waiters {
			close(w)
		}
		waiters = nil
	}

	re.vm.Set("print", printLine)
	re.vm.Set("printErr", printLine)
	re.vm.Set("setTimeout", func(call goja.FunctionCall) goja.Value {
		fn, ok := goja.AssertFunction(call.Argument(0))
		if !ok {
			panic(re.vm.NewTypeError("setTimeout: callback is not a function"))
		}
		t := &jsTimer{fn: fn}
		if len(call.Arguments) > 2 {
			t.args = call.Arguments[2:]
		}
		delay := max(call.Argument(1).ToInteger(), 0)
		pending[t] = struct{}{}
		t.timer = time.AfterFunc(time.Duration(delay)*time.Millisecond, func() {
			select {
			case ready <- t:
			case <-re.closed:
			}
		})
		return re.vm.ToValue(t)
	})
	re.vm.Set("clearTimeout", func(call goja.FunctionCall) goja.Value {
		if t, ok := call.Argument(0).Export().(*jsTimer); ok {
			t.timer.Stop()
			delete(pending, t)
			release()
		}
		return goja.Undefined()
	})

	for {
		select {
		case t := <-ready:
			if _, ok := pending[t]; !ok {
				continue // cleared while on its way
			}
			delete(pending, t)
			if _, err := t.fn(goja.Undefined(), t.args...); err != nil {
				log.Debug("Timer callback failed", "err", err)
			}
			release()
		case req := <-re.evalQueue:
			req.fn(re.vm)
			close(req.done)
			release()
		case w := <-re.settle:
			waiters = append(waiters, w)
			release()
		case <-re.stop:
			for t := range pending {
				t.timer.Stop()
			}
			for _, w := range waiters {
				close(w)
			}
			return
		}
	}
}

// Do executes fn on the event loop and waits for it to return. It fails
// once the runtime is stopped.
func (re *JSRE) Do(fn func(*goja.Runtime)) error {
	req := &evalReq{fn: fn, done: make(chan struct{})}
	select {
	case re.evalQueue <- req:
		<-req.done
		return nil
	case <-re.closed:
		return errStopped
	}
}

// Compile compiles and then runs a piece of JS code.
func (re *JSRE) Compile(filename string, src string) error {
	var err error
	if derr := re.Do(func(vm *goja.Runtime) {
		var prg *goja.Program
		if prg, err = goja.Compile(filename, src, false); err == nil {
			_, err = vm.RunProgram(prg)
		}
	}); derr != nil {
		return derr
	}
	return err
}

// Settle waits until no timer is pending.
func (re *JSRE) Settle(ctx context.Context) error {
	done := make(chan struct{})
	select {
	case re.settle <- done:
	case <-re.closed:
		return errStopped
	case <-ctx.Done():
		return ctx.Err()
	}
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Interrupt aborts the running script, or the next one if none is running.
// It is safe to call from any goroutine.
func (re *JSRE) Interrupt(v interface{}) {
	re.vm.Interrupt(v)
}

// Stop terminates the event loop, dropping pending timers. A script that is
// still running is interrupted.
func (re *JSRE) Stop() {
	select {
	case <-re.closed:
		return
	default:
	}
	re.vm.Interrupt(errStopped)
	select {
	case re.stop <- struct{}{}:
		<-re.closed
	case <-re.closed:
	}
}
