// © 2024 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package source

import (
	"sync"
	"unicode/utf16"
)

// EOI is returned for every position at or after the end of the buffer.
const EOI uint16 = 0x1A

// Buffer holds a source unit as UTF-16 code units. Positions everywhere in the
// scanner are offsets into this raw, untranslated buffer.
type Buffer struct {
	chars   []uint16
	lineMap func() *LineMap
}

// NewBuffer wraps chars. The slice must not be modified afterwards.
func NewBuffer(chars []uint16) *Buffer {
	b := &Buffer{chars: chars}
	b.lineMap = sync.OnceValue(func() *LineMap {
		return newLineMap(b.chars)
	})
	return b
}

// NewBufferString converts s into a Buffer.
func NewBufferString(s string) *Buffer {
	return NewBuffer(utf16.Encode([]rune(s)))
}

// Len is the number of code units. It is also the end of input position.
func (b *Buffer) Len() int {
	return len(b.chars)
}

// At returns the code unit at i, or EOI when i is out of range.
func (b *Buffer) At(i int) uint16 {
	if i < 0 || i >= len(b.chars) {
		return EOI
	}
	return b.chars[i]
}

// RawChars returns a copy of the code units in [start,end). Unicode escapes
// are not translated. The range is clamped to the buffer.
func (b *Buffer) RawChars(start int, end int) []uint16 {
	if start < 0 {
		start = 0
	}
	if end > len(b.chars) {
		end = len(b.chars)
	}
	if start >= end {
		return nil
	}
	out := make([]uint16, end-start)
	copy(out, b.chars[start:end])
	return out
}

// Raw returns the untranslated source text in [start,end).
func (b *Buffer) Raw(start int, end int) string {
	return string(utf16.Decode(b.RawChars(start, end)))
}

// LineMap returns the line index for the buffer, building it on first use.
func (b *Buffer) LineMap() *LineMap {
	return b.lineMap()
}
