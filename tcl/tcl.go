/*
 * TCL  Interpreter core: call frames, command registry, construction.
 *
 * Copyright 2024, Richard Cornwell
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in
 * all copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 */

// Package tcl implements the core of a minimal command-language
// interpreter in the Tcl tradition: a recursive tokenizer paired with a
// substitution-and-dispatch evaluator.
package tcl

import (
	"io"
	"os"
)

// HandlerFunc implements a command. private is the opaque payload supplied
// at registration (nil for built-ins with none).
type HandlerFunc func(in *Interpreter, argv []string, private any) (Status, error)

// command is a registered (name, handler, private data) triple.
type command struct {
	name    string
	handler HandlerFunc
	private any
}

// variable is an owned (name, value) pair.
type variable struct {
	name  string
	value string
}

// frame is a call-frame's variable scope. Variables live in an ordered
// slice; lookup is a linear scan where the first match wins, matching the
// reference semantics this interpreter is ported from.
type frame struct {
	vars   []*variable
	parent *frame
}

func newFrame(parent *frame) *frame {
	return &frame{parent: parent}
}

func (f *frame) get(name string) (*variable, bool) {
	for _, v := range f.vars {
		if v.name == name {
			return v, true
		}
	}
	return nil, false
}

func (f *frame) set(name, value string) {
	if v, ok := f.get(name); ok {
		v.value = value
		return
	}
	f.vars = append(f.vars, &variable{name: name, value: value})
}

func (f *frame) unset(name string) {
	for i, v := range f.vars {
		if v.name == name {
			f.vars = append(f.vars[:i], f.vars[i+1:]...)
			return
		}
	}
}

// Interpreter owns a command registry, a call-frame stack, and the last
// result string (also used to convey error messages). The zero value is
// not usable; construct one with New.
type Interpreter struct {
	frame *frame
	level int

	cmds map[string]*command

	result string

	trace       bool
	traceWriter io.Writer

	// Stdout is where the puts built-in writes. Defaults to os.Stdout;
	// tests may replace it with any io.Writer.
	Stdout io.Writer
}

// New constructs an interpreter with an empty global frame and no
// registered commands. Use RegisterCoreCommands to install the built-ins
// enumerated in the command set.
func New() *Interpreter {
	in := &Interpreter{
		cmds:        make(map[string]*command),
		traceWriter: os.Stderr,
		Stdout:      os.Stdout,
	}
	in.frame = newFrame(nil)
	return in
}

// SetTraceParser enables or disables tokenizer tracing diagnostics,
// written to the interpreter's trace writer (stderr by default).
func (in *Interpreter) SetTraceParser(enabled bool) {
	in.trace = enabled
}

// SetTraceWriter overrides the destination of tokenizer tracing
// diagnostics. Passing nil restores the default (os.Stderr).
func (in *Interpreter) SetTraceWriter(w io.Writer) {
	if w == nil {
		w = os.Stderr
	}
	in.traceWriter = w
}

// Result returns the last-produced value, or the most recent error
// message if the last Evaluate call failed.
func (in *Interpreter) Result() string {
	return in.result
}

// RegisterCommand adds a command to the registry. It is an error to
// register a name that already exists; the existing command is left
// unchanged.
func (in *Interpreter) RegisterCommand(name string, private any, fn HandlerFunc) error {
	if _, exists := in.cmds[name]; exists {
		err := newError(ErrCommandAlreadyDefined, "command already defined: %q", name)
		in.result = err.Message
		return err
	}
	in.cmds[name] = &command{name: name, handler: fn, private: private}
	return nil
}

// lookupVar resolves a variable name against the current call frame only;
// only the top frame is ever visible to $name / set.
func (in *Interpreter) lookupVar(name string) (string, bool) {
	v, ok := in.frame.get(name)
	if !ok {
		return "", false
	}
	return v.value, true
}

// SetVar writes (name, value) into the current call frame, creating the
// variable if absent.
func (in *Interpreter) SetVar(name, value string) {
	in.frame.set(name, value)
}

// UnsetVar removes a variable from the current call frame, if present.
func (in *Interpreter) UnsetVar(name string) {
	in.frame.unset(name)
}

// pushFrame makes a new call frame current, parented to the existing one.
func (in *Interpreter) pushFrame() {
	in.frame = newFrame(in.frame)
	in.level++
}

// popFrame restores the parent call frame. Must be balanced 1:1 with
// pushFrame, including on every error/early-return exit path.
func (in *Interpreter) popFrame() {
	in.frame = in.frame.parent
	in.level--
}
