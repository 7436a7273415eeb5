/*
 * TCL  Evaluator.
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

// Evaluate parses and executes script, returning a status or an error. On
// success the interpreter's Result holds the last-produced value; on
// error it holds a human-readable message, same as the returned error's
// Message. Evaluate may recurse: command substitution, if/while bodies,
// and procedure bodies all re-enter it.
//
// The returned Status is meaningful only when err is nil; Status does not
// carry an error case of its own (errors travel on the err return alone).
func (in *Interpreter) Evaluate(script string) (Status, error) {
	in.result = ""
	if script == "" {
		return StatusOK, nil
	}

	args := []string{}
	prevToken := TokEol
	tok := newTokenizer([]byte(script), in.trace, in.traceWriter)

	for {
		kind := tok.next()
		if kind == TokEof {
			break
		}

		switch kind {
		case TokSep:
			prevToken = kind
			continue

		case TokEol:
			if len(args) > 0 {
				status, err := in.dispatch(args)
				if err != nil || status != StatusOK {
					return status, err
				}
			}
			args = args[:0]
			prevToken = kind
			continue
		}

		var text string

		switch kind {
		case TokVar:
			name := tok.tokenBody()
			value, ok := in.lookupVar(name)
			if !ok {
				err := newError(ErrVariableNotFound, "can't read %q: no such variable", name)
				in.result = err.Message
				return StatusOK, err
			}
			text = value

		case TokCmd:
			sub := tok.tokenBody()
			status, err := in.Evaluate(sub)
			if err != nil {
				return status, err
			}
			if status != StatusOK {
				return status, nil
			}
			text = in.result

		default: // TokEsc, TokStr
			text = tok.tokenBody()
		}

		if prevToken == TokSep || prevToken == TokEol {
			args = append(args, text)
		} else {
			args[len(args)-1] += text
		}
		prevToken = kind
	}

	return StatusOK, nil
}

// dispatch looks up args[0] and invokes its handler with the fully
// materialized argument vector.
func (in *Interpreter) dispatch(args []string) (Status, error) {
	cmd, ok := in.cmds[args[0]]
	if !ok {
		err := newError(ErrCommandNotFound, "invalid command name %q", args[0])
		in.result = err.Message
		return StatusOK, err
	}

	in.result = ""
	status, err := cmd.handler(in, args, cmd.private)
	if err != nil {
		if ee, ok := err.(*EvalError); ok {
			in.result = ee.Message
		} else {
			in.result = err.Error()
		}
	}
	return status, err
}

// checkArity validates the inclusive [min, max] argument count for a
// command, including argv[0] itself. On violation it sets a human-readable
// message and returns an Arity error.
func checkArity(argv []string, min, max int) error {
	if len(argv) < min || len(argv) > max {
		return newError(ErrArity, "wrong number of arguments to %s: expected %d-%d, got %d",
			argv[0], min, max, len(argv))
	}
	return nil
}
