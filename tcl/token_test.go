/*
 * TCL  Test set for the tokenizer.
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

import "testing"

type tokenCase struct {
	body string
	want []string // "KIND:body" pairs, in emission order, stopping before trailing EOL/EOF
}

// collectTokens tokenizes a single logical line, returning every token up
// to (but not including) the closing EOL/EOF pair.
func collectTokens(t *testing.T, body string) []string {
	t.Helper()
	tok := newTokenizer([]byte(body), false, nil)
	var got []string
	for {
		kind := tok.next()
		if kind == TokEof || kind == TokEol {
			break
		}
		got = append(got, kind.String()+":"+tok.tokenBody())
	}
	return got
}

func TestTokenizerBraceLiteral(t *testing.T) {
	got := collectTokens(t, "foo {bar} baz")
	want := []string{"TK_ESC:foo", "TK_SEP: ", "TK_STR:bar", "TK_SEP: ", "TK_ESC:baz"}
	assertTokens(t, got, want)
}

func TestTokenizerNestedBrace(t *testing.T) {
	got := collectTokens(t, "{a {b} c}")
	want := []string{"TK_STR:a {b} c"}
	assertTokens(t, got, want)
}

func TestTokenizerBracketCommand(t *testing.T) {
	got := collectTokens(t, "puts [expr 1]")
	want := []string{"TK_ESC:puts", "TK_SEP: ", "TK_CMD:expr 1"}
	assertTokens(t, got, want)
}

func TestTokenizerVariable(t *testing.T) {
	got := collectTokens(t, "set a $b")
	want := []string{"TK_ESC:set", "TK_SEP: ", "TK_ESC:a", "TK_SEP: ", "TK_VAR:b"}
	assertTokens(t, got, want)
}

func TestTokenizerComment(t *testing.T) {
	got := collectTokens(t, "# a whole comment line\nputs ok")
	want := []string{"TK_ESC:puts", "TK_SEP: ", "TK_ESC:ok"}
	assertTokens(t, got, want)
}

func TestTokenizerQuotedVariableSplice(t *testing.T) {
	tok := newTokenizer([]byte(`"a$b c"`), false, nil)

	kind := tok.next()
	if kind != TokEsc || tok.tokenBody() != "a" {
		t.Fatalf("first token = %s:%q, want TK_ESC:\"a\"", kind, tok.tokenBody())
	}
	kind = tok.next()
	if kind != TokVar || tok.tokenBody() != "b" {
		t.Fatalf("second token = %s:%q, want TK_VAR:\"b\"", kind, tok.tokenBody())
	}
	kind = tok.next()
	if kind != TokEsc || tok.tokenBody() != " c" {
		t.Fatalf("third token = %s:%q, want TK_ESC:\" c\"", kind, tok.tokenBody())
	}
}

func TestTokenizerEOFIsStable(t *testing.T) {
	tok := newTokenizer([]byte("a"), false, nil)
	tok.next() // TK_ESC a
	if kind := tok.next(); kind != TokEol {
		t.Fatalf("expected TK_EOL after last token, got %s", kind)
	}
	for i := 0; i < 3; i++ {
		if kind := tok.next(); kind != TokEof {
			t.Fatalf("expected TK_EOF to repeat, got %s on call %d", kind, i)
		}
	}
}

func assertTokens(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("token count = %d, want %d\n got: %v\nwant: %v", len(got), len(want), got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("token %d = %q, want %q", i, got[i], want[i])
		}
	}
}
