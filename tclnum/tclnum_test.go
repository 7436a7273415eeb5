/*
 * TCL  Test set for tclnum.
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

package tclnum

import "testing"

type parseCase struct {
	in    string
	want  int64
	valid bool
}

func TestParseInt(t *testing.T) {
	testCases := []parseCase{
		{"0", 0, true},
		{"-0", 0, true},
		{"10", 10, true},
		{"-10", -10, true},
		{"+10", 10, true},
		{"  7  ", 7, true},
		{"0x1F", 31, true},
		{"0X1f", 31, true},
		{"010", 8, true},
		{"08", 0, false},
		{"", 0, false},
		{"-", 0, false},
		{"0x", 0, false},
		{"12x", 0, false},
		{"x12", 0, false},
	}

	for _, test := range testCases {
		got, ok := ParseInt(test.in)
		if ok != test.valid {
			t.Errorf("ParseInt(%q) valid = %v, want %v", test.in, ok, test.valid)
			continue
		}
		if ok && got != test.want {
			t.Errorf("ParseInt(%q) = %d, want %d", test.in, got, test.want)
		}
	}
}

func TestFormatInt(t *testing.T) {
	testCases := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{12, "12"},
		{-12, "-12"},
		{1, "1"},
		{-1, "-1"},
	}

	for _, test := range testCases {
		if got := FormatInt(test.in); got != test.want {
			t.Errorf("FormatInt(%d) = %q, want %q", test.in, got, test.want)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	for _, v := range []int64{0, 1, -1, 42, -42, 123456789} {
		s := FormatInt(v)
		got, ok := ParseInt(s)
		if !ok || got != v {
			t.Errorf("round trip for %d failed: FormatInt = %q, ParseInt back = %d, %v", v, s, got, ok)
		}
	}
}
