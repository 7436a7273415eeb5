/*
 * TCL  Core commands.
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

package tcl

import (
	"fmt"
	"strings"

	"github.com/upvalue/tcl3/tclnum"
)

// RegisterCoreCommands registers the built-ins: set, puts, proc, return,
// break, continue, if, while, and the binary arithmetic/comparison
// operators. It is idempotent only if none of these names have already
// been registered; a conflict aborts that one registration and returns
// its CommandAlreadyDefined error.
func (in *Interpreter) RegisterCoreCommands() error {
	builtins := []struct {
		name string
		fn   HandlerFunc
	}{
		{"set", cmdSet},
		{"puts", cmdPuts},
		{"proc", cmdProc},
		{"return", cmdReturn},
		{"break", cmdBreak},
		{"continue", cmdContinue},
		{"if", cmdIf},
		{"while", cmdWhile},
	}
	for _, b := range builtins {
		if err := in.RegisterCommand(b.name, nil, b.fn); err != nil {
			return err
		}
	}

	for _, op := range []string{"+", "-", "*", "/", ">", "<", ">=", "<=", "==", "!="} {
		if err := in.RegisterCommand(op, nil, cmdArith); err != nil {
			return err
		}
	}
	return nil
}

// cmdSet implements "set name value".
func cmdSet(in *Interpreter, argv []string, _ any) (Status, error) {
	if err := checkArity(argv, 3, 3); err != nil {
		return StatusOK, err
	}
	name, value := argv[1], argv[2]
	in.SetVar(name, value)
	in.result = value
	return StatusOK, nil
}

// cmdPuts implements "puts value": write value followed by a newline to
// the interpreter's Stdout.
func cmdPuts(in *Interpreter, argv []string, _ any) (Status, error) {
	if err := checkArity(argv, 2, 2); err != nil {
		return StatusOK, err
	}
	fmt.Fprintln(in.Stdout, argv[1])
	in.result = ""
	return StatusOK, nil
}

// procData is the private payload carried by a user-defined procedure:
// its formal-parameter string and its body script.
type procData struct {
	params string
	body   string
}

// cmdProc implements "proc name params body".
func cmdProc(in *Interpreter, argv []string, _ any) (Status, error) {
	if err := checkArity(argv, 4, 4); err != nil {
		return StatusOK, err
	}
	name := argv[1]
	data := &procData{params: argv[2], body: argv[3]}
	if err := in.RegisterCommand(name, data, userProcHandler); err != nil {
		return StatusOK, err
	}
	in.result = ""
	return StatusOK, nil
}

// userProcHandler runs a user-defined procedure body in a fresh call
// frame. Formals are bound positionally from argv, skipping argv[0] (the
// procedure name). The frame is popped on every exit path, including
// error and early RETURN.
func userProcHandler(in *Interpreter, argv []string, private any) (Status, error) {
	data := private.(*procData)
	formals := strings.Fields(data.params)
	actuals := argv[1:]

	if len(formals) != len(actuals) {
		err := newError(ErrArity, "wrong number of arguments to %s: expected %d, got %d",
			argv[0], len(formals), len(actuals))
		return StatusOK, err
	}

	in.pushFrame()
	defer in.popFrame()

	for i, name := range formals {
		in.SetVar(name, actuals[i])
	}

	status, err := in.Evaluate(data.body)
	if err != nil {
		return status, err
	}

	switch status {
	case StatusReturn:
		return StatusOK, nil
	case StatusBreak, StatusContinue:
		return StatusOK, newError(ErrGeneral, "invoked %q outside a loop", status)
	default:
		return status, nil
	}
}

// cmdReturn implements "return ?value".
func cmdReturn(in *Interpreter, argv []string, _ any) (Status, error) {
	if err := checkArity(argv, 1, 2); err != nil {
		return StatusOK, err
	}
	if len(argv) == 2 {
		in.result = argv[1]
	} else {
		in.result = ""
	}
	return StatusReturn, nil
}

// cmdBreak implements "break": no state change, signals BREAK.
func cmdBreak(in *Interpreter, argv []string, _ any) (Status, error) {
	if err := checkArity(argv, 1, 1); err != nil {
		return StatusOK, err
	}
	return StatusBreak, nil
}

// cmdContinue implements "continue": no state change, signals CONTINUE.
func cmdContinue(in *Interpreter, argv []string, _ any) (Status, error) {
	if err := checkArity(argv, 1, 1); err != nil {
		return StatusOK, err
	}
	return StatusContinue, nil
}

// truthy parses a script result as a signed 64-bit integer and reports
// whether it is non-zero.
func truthy(in *Interpreter, text string) (bool, error) {
	v, ok := tclnum.ParseInt(text)
	if !ok {
		err := newError(ErrInvalidNumber, "expected integer but got %q", text)
		in.result = err.Message
		return false, err
	}
	return v != 0, nil
}

// cmdIf implements "if cond then_body ?else else_body".
func cmdIf(in *Interpreter, argv []string, _ any) (Status, error) {
	if len(argv) != 3 && len(argv) != 5 {
		return StatusOK, newError(ErrArity, "if cond then-body ?else else-body")
	}
	if len(argv) == 5 && argv[3] != "else" {
		return StatusOK, newError(ErrArity, "if cond then-body ?else else-body")
	}

	status, err := in.Evaluate(argv[1])
	if err != nil {
		return status, err
	}
	if status != StatusOK {
		return status, nil
	}

	cond, err := truthy(in, in.result)
	if err != nil {
		return StatusOK, err
	}

	if cond {
		return in.Evaluate(argv[2])
	}
	if len(argv) == 5 {
		return in.Evaluate(argv[4])
	}
	in.result = ""
	return StatusOK, nil
}

// cmdWhile implements "while cond body".
func cmdWhile(in *Interpreter, argv []string, _ any) (Status, error) {
	if err := checkArity(argv, 3, 3); err != nil {
		return StatusOK, err
	}
	cond, body := argv[1], argv[2]

	for {
		status, err := in.Evaluate(cond)
		if err != nil {
			return status, err
		}
		if status != StatusOK {
			return status, nil
		}

		truth, err := truthy(in, in.result)
		if err != nil {
			return StatusOK, err
		}
		if !truth {
			in.result = ""
			return StatusOK, nil
		}

		status, err = in.Evaluate(body)
		if err != nil {
			return status, err
		}
		switch status {
		case StatusOK, StatusContinue:
			// loop again
		case StatusBreak:
			in.result = ""
			return StatusOK, nil
		default:
			return status, nil
		}
	}
}

// cmdArith implements the binary arithmetic/comparison operators: the
// command name itself is the operator. "op a b".
func cmdArith(in *Interpreter, argv []string, _ any) (Status, error) {
	if err := checkArity(argv, 3, 3); err != nil {
		return StatusOK, err
	}

	a, ok := tclnum.ParseInt(argv[1])
	if !ok {
		err := newError(ErrGeneral, "invalid number")
		in.result = err.Message
		return StatusOK, err
	}
	b, ok := tclnum.ParseInt(argv[2])
	if !ok {
		err := newError(ErrGeneral, "invalid number")
		in.result = err.Message
		return StatusOK, err
	}

	var result int64
	switch argv[0] {
	case "+":
		result = a + b
	case "-":
		result = a - b
	case "*":
		result = a * b
	case "/":
		if b == 0 {
			err := newError(ErrGeneral, "division by zero")
			in.result = err.Message
			return StatusOK, err
		}
		result = a / b
	case ">":
		result = boolInt(a > b)
	case "<":
		result = boolInt(a < b)
	case ">=":
		result = boolInt(a >= b)
	case "<=":
		result = boolInt(a <= b)
	case "==":
		result = boolInt(a == b)
	case "!=":
		result = boolInt(a != b)
	default:
		return StatusOK, newError(ErrGeneral, "invalid operator %q", argv[0])
	}

	in.result = tclnum.FormatInt(result)
	return StatusOK, nil
}

func boolInt(v bool) int64 {
	if v {
		return 1
	}
	return 0
}
