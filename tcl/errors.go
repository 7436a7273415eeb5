/*
 * TCL  Status and error taxonomy.
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

import "fmt"

// Status is the cooperative control-flow signal threaded through Evaluate
// and command handlers. It is distinct from the error channel: a non-nil
// error always takes precedence over whatever Status accompanies it.
type Status int

const (
	StatusOK Status = iota
	StatusReturn
	StatusBreak
	StatusContinue
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "OK"
	case StatusReturn:
		return "RETURN"
	case StatusBreak:
		return "BREAK"
	case StatusContinue:
		return "CONTINUE"
	default:
		return "UNKNOWN"
	}
}

// ErrorKind classifies a failure raised during evaluation. It is reported
// alongside a human-readable message that is also left in the interpreter's
// result, per the "result is also the error channel" contract.
type ErrorKind int

const (
	ErrGeneral ErrorKind = iota
	ErrArity
	ErrCommandNotFound
	ErrCommandAlreadyDefined
	ErrVariableNotFound
	ErrInvalidNumber
)

func (k ErrorKind) String() string {
	switch k {
	case ErrGeneral:
		return "General"
	case ErrArity:
		return "Arity"
	case ErrCommandNotFound:
		return "CommandNotFound"
	case ErrCommandAlreadyDefined:
		return "CommandAlreadyDefined"
	case ErrVariableNotFound:
		return "VariableNotFound"
	case ErrInvalidNumber:
		return "InvalidNumber"
	default:
		return "Unknown"
	}
}

// EvalError is the error type returned by Evaluate and command handlers.
// Message is the same text left in the interpreter's result.
type EvalError struct {
	Kind    ErrorKind
	Message string
}

func (e *EvalError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func newError(kind ErrorKind, format string, args ...any) *EvalError {
	return &EvalError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}
