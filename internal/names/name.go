// © 2024 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package names

import "unicode/utf16"

// Name is a handle to a spelling interned in a Table. Two names from the same
// table are equal, with ==, exactly when their content is equal. The zero
// Name belongs to no table.
type Name struct {
	table  *Table
	offset int
	length int
}

// IsZero reports whether the name was never assigned.
func (n Name) IsZero() bool {
	return n.table == nil
}

// Table returns the table that issued the name.
func (n Name) Table() *Table {
	return n.table
}

// Offset is the position of the name's bytes in the table arena.
func (n Name) Offset() int {
	return n.offset
}

// Len is the encoded length in bytes.
func (n Name) Len() int {
	return n.length
}

// Hash is the arena offset. Names are compared by identity so the offset is a
// sufficient hash.
func (n Name) Hash() int {
	return n.offset
}

// Bytes returns the modified UTF-8 content. The slice aliases the arena and
// must not be modified.
func (n Name) Bytes() []byte {
	if n.table == nil {
		return nil
	}
	return n.table.bytes[n.offset : n.offset+n.length : n.offset+n.length]
}

// Chars decodes the name back into UTF-16 code units.
func (n Name) Chars() []uint16 {
	return decodeChars(n.Bytes())
}

// String decodes the name. Not safe while another goroutine interns into the
// same table.
func (n Name) String() string {
	if n.table == nil {
		return ""
	}
	return string(utf16.Decode(n.Chars()))
}
