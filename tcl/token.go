/*
 * TCL  Tokenizer.
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
	"encoding/json"
	"io"
)

// Token is the tagged kind of a single tokenizer span.
type Token int

const (
	TokEsc Token = iota
	TokStr
	TokCmd
	TokVar
	TokSep
	TokEol
	TokEof
)

// String names a token the way the trace stream does: "TK_" + the kind.
func (t Token) String() string {
	switch t {
	case TokEsc:
		return "TK_ESC"
	case TokStr:
		return "TK_STR"
	case TokCmd:
		return "TK_CMD"
	case TokVar:
		return "TK_VAR"
	case TokSep:
		return "TK_SEP"
	case TokEol:
		return "TK_EOL"
	case TokEof:
		return "TK_EOF"
	default:
		return "TK_UNKNOWN"
	}
}

// tokenizer is a byte-level scanner over a borrowed script body. It never
// copies the input: begin/end are offsets into body for the span of the
// most recently emitted token. It operates on bytes, not runes; any byte
// that isn't a recognized delimiter is treated as an ordinary word byte.
type tokenizer struct {
	body []byte

	cursor int
	begin  int
	end    int

	lastToken Token

	inString bool // scanning a bare word (subsumes $name and run-on text)
	inQuote  bool // inside a "..." string
	inBrace  bool // inside a {...} literal

	braceLevel int

	terminatingChar byte // 0 means this tokenizer has no recursion terminator

	trace       bool
	traceWriter io.Writer
}

// newTokenizer creates a tokenizer over body. It borrows body; the caller
// must keep it alive and unmodified for the tokenizer's lifetime.
func newTokenizer(body []byte, trace bool, w io.Writer) *tokenizer {
	return &tokenizer{
		body:        body,
		lastToken:   TokEol,
		trace:       trace,
		traceWriter: w,
	}
}

// tokenBody returns the most recently emitted token's span as a string
// copied from body. An empty span yields "".
func (t *tokenizer) tokenBody() string {
	if t.begin >= t.end {
		return ""
	}
	return string(t.body[t.begin:t.end])
}

type traceRecord struct {
	Type  string `json:"type"`
	Begin int    `json:"begin"`
	End   int    `json:"end"`
	Body  string `json:"body"`
}

// next advances the cursor and returns one token kind. It is total: once
// input is exhausted it emits one final EOL, then only EOF thereafter.
func (t *tokenizer) next() Token {
	tok := t.scan()
	if t.trace && t.traceWriter != nil {
		t.emitTrace(tok)
	}
	return tok
}

func (t *tokenizer) emitTrace(tok Token) {
	rec := traceRecord{Type: tok.String(), Begin: t.begin, End: t.end, Body: t.tokenBody()}
	line, err := json.Marshal(rec)
	if err != nil {
		return
	}
	line = append(line, '\n')
	_, _ = t.traceWriter.Write(line)
}

// scan implements the lexical rules: a character-classifying state machine
// whose behavior depends on three mutually exclusive enclosure modes.
func (t *tokenizer) scan() Token {
	if t.cursor >= len(t.body) {
		if t.lastToken != TokEof && t.lastToken != TokEol {
			t.lastToken = TokEol
		} else {
			t.lastToken = TokEof
		}
		return t.lastToken
	}

	t.lastToken = TokEsc
	t.begin = t.cursor
	t.end = t.cursor
	adj := 0

scanLoop:
	for t.cursor < len(t.body) {
		adj = 0
		c := t.body[t.cursor]
		t.cursor++

		if t.terminatingChar != 0 && c == t.terminatingChar {
			t.end = t.cursor - 1
			t.lastToken = TokEof
			return t.lastToken
		}

		switch c {
		case '{':
			if t.inQuote || t.inString {
				continue
			}
			if !t.inBrace {
				t.begin++
				t.lastToken = TokStr
				t.inBrace = true
			}
			t.braceLevel++

		case '}':
			if t.inQuote || t.inString {
				continue
			}
			if t.braceLevel > 0 {
				t.braceLevel--
				if t.braceLevel == 0 {
					t.inBrace = false
					adj = 1
					break scanLoop
				}
			}

		case '[':
			if t.inString || t.inQuote || t.inBrace {
				continue
			}
			t.begin++
			sub := newTokenizer(t.body[t.cursor:], t.trace, t.traceWriter)
			sub.terminatingChar = ']'
			for sub.next() != TokEof {
			}
			t.cursor += sub.cursor
			adj = 1
			t.lastToken = TokCmd
			break scanLoop

		case '$':
			if t.inBrace || t.inString {
				continue
			}
			if t.inQuote {
				if t.cursor != t.begin+1 {
					t.cursor--
					break scanLoop
				}
			}
			t.begin++
			t.lastToken = TokVar
			t.inString = true

		case '#':
			if t.inString || t.inQuote || t.inBrace {
				continue
			}
			for t.cursor < len(t.body) {
				ch := t.body[t.cursor]
				t.cursor++
				if ch == '\n' {
					break
				}
			}
			return t.scan()

		case '"':
			if t.inQuote {
				t.inQuote = false
				adj = 1
				break scanLoop
			}
			t.inQuote = true
			t.begin++
			adj = 1

		case ' ', '\t', '\r', '\n', ';':
			if t.inBrace {
				continue
			}
			if t.inString {
				t.cursor--
				t.inString = false
				break scanLoop
			}
			if t.inQuote {
				continue
			}
			if c == '\n' || c == ';' {
				t.lastToken = TokEol
			} else {
				t.lastToken = TokSep
			}
			t.consumeWhitespace()
			break scanLoop

		default:
			if !t.inBrace && !t.inQuote {
				t.inString = true
			}
		}
	}

	t.end = t.cursor - adj
	return t.lastToken
}

// consumeWhitespace greedily eats the run of separator bytes following the
// one that ended the current token, upgrading the pending kind to EOL if
// any of the consumed bytes is a newline.
func (t *tokenizer) consumeWhitespace() {
	for t.cursor < len(t.body) {
		c := t.body[t.cursor]
		if c != ' ' && c != '\t' && c != '\r' && c != '\n' && c != ';' {
			break
		}
		if c == '\n' {
			t.lastToken = TokEol
		}
		t.cursor++
	}
}
