// © 2024 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package names

import "unicode/utf16"

// The arena uses modified UTF-8: U+0000 takes two bytes and every UTF-16 code
// unit, surrogates included, is encoded on its own. That keeps the encoding a
// pure function of the code units so a lone surrogate still interns.

// EncodeString converts a Go string into UTF-16 code units.
func EncodeString(s string) []uint16 {
	return utf16.Encode([]rune(s))
}

// EncodeChars returns the modified UTF-8 form of cs.
func EncodeChars(cs []uint16) []byte {
	b := make([]byte, len(cs)*3)
	return b[:encodeChars(cs, b)]
}

func encodeChars(cs []uint16, dst []byte) int {
	j := 0
	for _, c := range cs {
		switch {
		case c >= 0x1 && c <= 0x7F:
			dst[j] = byte(c)
			j = j + 1
		case c <= 0x7FF:
			dst[j] = byte(0xC0 | (c >> 6))
			dst[j+1] = byte(0x80 | (c & 0x3F))
			j = j + 2
		default:
			dst[j] = byte(0xE0 | (c >> 12))
			dst[j+1] = byte(0x80 | ((c >> 6) & 0x3F))
			dst[j+2] = byte(0x80 | (c & 0x3F))
			j = j + 3
		}
	}
	return j
}

func decodeChars(b []byte) []uint16 {
	cs := make([]uint16, 0, len(b))
	for i := 0; i < len(b); {
		c := uint16(b[i])
		i = i + 1
		switch {
		case c < 0x80:
		case c&0xE0 == 0xC0 && i < len(b):
			c = (c&0x1F)<<6 | uint16(b[i]&0x3F)
			i = i + 1
		case c&0xF0 == 0xE0 && i+1 < len(b):
			c = (c&0x0F)<<12 | uint16(b[i]&0x3F)<<6 | uint16(b[i+1]&0x3F)
			i = i + 2
		}
		cs = append(cs, c)
	}
	return cs
}
