/*
 * TCL  Cancelable stdin reader for the command-line front end.
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

// Package replio wraps os.Stdin in a cancelable reader so the command-line
// front end can read a whole script from stdin (the "-" script argument)
// while still reacting to Ctrl-C. It is kept separate from the REPL's own
// line editor, which does its own terminal reading; only one of the two
// is ever active against stdin's file descriptor at a time.
package replio

import (
	"io"
	"os"

	"github.com/muesli/cancelreader"
)

// Stdin is a cancelable wrapper over os.Stdin.
type Stdin struct {
	rdr cancelreader.CancelReader
}

// NewStdin constructs a Stdin wrapping the process's standard input.
func NewStdin() (*Stdin, error) {
	rdr, err := cancelreader.NewReader(os.Stdin)
	if err != nil {
		return nil, err
	}
	return &Stdin{rdr: rdr}, nil
}

// ReadAll reads stdin to completion (or until Cancel is called), returning
// whatever was read. io.EOF is not reported as an error.
func (s *Stdin) ReadAll() ([]byte, error) {
	data, err := io.ReadAll(s.rdr)
	if err != nil && err != io.EOF {
		return data, err
	}
	return data, nil
}

// Cancel interrupts an in-flight Read/ReadAll, unblocking it with an error.
// Safe to call from a signal handler goroutine.
func (s *Stdin) Cancel() bool {
	return s.rdr.Cancel()
}

// Close releases the underlying reader. Cancel should usually be called
// first if a read may still be in flight.
func (s *Stdin) Close() error {
	return s.rdr.Close()
}
