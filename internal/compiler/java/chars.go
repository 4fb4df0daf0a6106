// © 2024 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package java

import (
	"unicode"
	"unicode/utf16"

	"gopkg.microglot.org/javac.go/internal/source"
)

const (
	chLF  uint16 = 0x0A
	chFF  uint16 = 0x0C
	chCR  uint16 = 0x0D
	chEOI        = source.EOI
)

func isHighSurrogate(c uint16) bool {
	return c >= 0xD800 && c <= 0xDBFF
}

func isLowSurrogate(c uint16) bool {
	return c >= 0xDC00 && c <= 0xDFFF
}

func toCodePoint(high uint16, low uint16) rune {
	return utf16.DecodeRune(rune(high), rune(low))
}

func isIdentifierIgnorable(r rune) bool {
	switch {
	case r >= 0x00 && r <= 0x08:
		return true
	case r >= 0x0E && r <= 0x1B:
		return true
	case r >= 0x7F && r <= 0x9F:
		return true
	default:
		return unicode.Is(unicode.Cf, r)
	}
}

func isIdentifierStart(r rune) bool {
	return unicode.IsLetter(r) ||
		unicode.Is(unicode.Nl, r) ||
		unicode.Is(unicode.Sc, r) ||
		unicode.Is(unicode.Pc, r)
}

func isIdentifierPart(r rune) bool {
	return isIdentifierStart(r) ||
		unicode.Is(unicode.Nd, r) ||
		unicode.Is(unicode.Mn, r) ||
		unicode.Is(unicode.Mc, r) ||
		isIdentifierIgnorable(r)
}

// isWhitespace excludes the non-breaking spaces.
func isWhitespace(r rune) bool {
	switch r {
	case '\t', '\n', 0x0B, '\f', '\r', 0x1C, 0x1D, 0x1E, 0x1F:
		return true
	case 0x00A0, 0x2007, 0x202F:
		return false
	}
	return unicode.In(r, unicode.Zs, unicode.Zl, unicode.Zp)
}

func isSpecial(c uint16) bool {
	switch c {
	case '!', '%', '&', '*', '?', '+', '-', ':', '<', '=', '>', '^', '|', '~', '@':
		return true
	default:
		return false
	}
}

// digitValue returns the value of c in the given radix or -1. Beyond ASCII it
// accepts any decimal digit and the fullwidth Latin letters.
func digitValue(c uint16, radix int) int {
	v := -1
	switch {
	case c >= '0' && c <= '9':
		v = int(c - '0')
	case c >= 'a' && c <= 'z':
		v = int(c-'a') + 10
	case c >= 'A' && c <= 'Z':
		v = int(c-'A') + 10
	case c >= 0xFF21 && c <= 0xFF3A:
		v = int(c-0xFF21) + 10
	case c >= 0xFF41 && c <= 0xFF5A:
		v = int(c-0xFF41) + 10
	case c > 0x7F && unicode.Is(unicode.Nd, rune(c)):
		start := rune(c)
		for unicode.Is(unicode.Nd, start-1) {
			start = start - 1
		}
		v = int(rune(c)-start) % 10
	}
	if v >= radix {
		return -1
	}
	return v
}
