/*
 * TCL  numeric string conversion.
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

// Package tclnum converts between signed 64-bit integers and the numeric
// string forms the interpreter's arithmetic, if, and while built-ins
// accept: optional sign, then decimal, or a leading "0" for octal or
// "0x"/"0X" for hex. No arbitrary precision and no floating point, per
// the interpreter's scope.
package tclnum

import (
	"strings"
	"unicode"
)

const hexDigits = "0123456789abcdef"

// ParseInt parses the entirety of s (after trimming surrounding
// whitespace) as a signed 64-bit integer. It reports false if s is not a
// complete, well-formed numeric literal.
func ParseInt(s string) (int64, bool) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return 0, false
	}

	pos := 0
	neg := false
	if trimmed[pos] == '-' {
		neg = true
		pos++
	} else if trimmed[pos] == '+' {
		pos++
	}
	if pos >= len(trimmed) {
		return 0, false
	}

	base := 10
	if trimmed[pos] == '0' {
		base = 8
		pos++
		if pos < len(trimmed) && (trimmed[pos] == 'x' || trimmed[pos] == 'X') {
			base = 16
			pos++
		} else if pos >= len(trimmed) {
			return 0, true // the literal "0" (or "-0"/"+0")
		}
	}

	if pos >= len(trimmed) {
		return 0, false
	}

	var result int64
	consumed := false
	for pos < len(trimmed) {
		d := strings.IndexByte(hexDigits, lowerByte(trimmed[pos]))
		if d < 0 || d >= base {
			return 0, false
		}
		result = result*int64(base) + int64(d)
		consumed = true
		pos++
	}
	if !consumed {
		return 0, false
	}

	if neg {
		result = -result
	}
	return result, true
}

func lowerByte(b byte) byte {
	return byte(unicode.ToLower(rune(b)))
}

// FormatInt renders v as a base-10 string.
func FormatInt(v int64) string {
	if v == 0 {
		return "0"
	}
	neg := v < 0
	u := uint64(v)
	if neg {
		u = -u
	}
	var buf [32]byte
	i := len(buf)
	for u > 0 {
		i--
		buf[i] = hexDigits[u%10]
		u /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}
