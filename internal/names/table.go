// © 2024 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package names

const (
	defaultHashSize = 0x8000
	defaultNameSize = 0x20000
)

// Interner canonicalizes spellings into Name handles. Table implements it
// directly. Locked implements it for tables shared between goroutines.
type Interner interface {
	// FromChars interns a run of UTF-16 code units.
	FromChars(cs []uint16) Name
	// FromUTF interns bytes that are already in the table's modified UTF-8
	// form.
	FromUTF(b []byte) Name
}

// Table stores every interned spelling in a single byte arena and indexes the
// arena with a fixed size array of hash buckets. Offsets handed out by a Table
// are never reused or moved, even when the arena grows.
//
// A Table is not safe for concurrent use. Wrap it with NewLocked when several
// scanners intern into the same table.
type Table struct {
	hashes   []*entry
	hashMask int
	bytes    []byte
	nc       int
}

type entry struct {
	next   *entry
	offset int
	length int
}

var _ Interner = (*Table)(nil)

// New creates a table with the default bucket count and arena size.
func New() *Table {
	return NewSized(defaultHashSize, defaultNameSize)
}

// NewSized creates a table with hashSize buckets and an initial arena of
// nameSize bytes. The hashSize is rounded up to a power of two.
func NewSized(hashSize int, nameSize int) *Table {
	size := 1
	for size < hashSize {
		size = size << 1
	}
	if nameSize < 1 {
		nameSize = 1
	}
	return &Table{
		hashes:   make([]*entry, size),
		hashMask: size - 1,
		bytes:    make([]byte, nameSize),
	}
}

// FromChars encodes cs directly into the free tail of the arena and then looks
// for an existing entry with the same content. The encoded bytes are only
// committed when the spelling is new.
func (self *Table) FromChars(cs []uint16) Name {
	self.ensure(len(cs) * 3)
	nbytes := encodeChars(cs, self.bytes[self.nc:])
	return self.lookup(self.bytes[self.nc:self.nc+nbytes], true)
}

// FromUTF interns bytes that are already encoded. It produces the same handle
// as FromChars for the same content.
func (self *Table) FromUTF(b []byte) Name {
	return self.lookup(b, false)
}

// FromString interns a Go string. The string is converted to UTF-16 first so
// the result is identical to interning the same characters with FromChars.
func (self *Table) FromString(s string) Name {
	return self.FromChars(EncodeString(s))
}

// Len reports the number of arena bytes in use.
func (self *Table) Len() int {
	return self.nc
}

func (self *Table) lookup(b []byte, inPlace bool) Name {
	h := hashValue(b) & self.hashMask
	for n := self.hashes[h]; n != nil; n = n.next {
		if n.length == len(b) && self.equal(n.offset, b) {
			return Name{table: self, offset: n.offset, length: n.length}
		}
	}
	offset := self.nc
	if !inPlace {
		self.ensure(len(b))
		copy(self.bytes[offset:], b)
	}
	n := &entry{
		next:   self.hashes[h],
		offset: offset,
		length: len(b),
	}
	self.hashes[h] = n
	self.nc = offset + len(b)
	if len(b) == 0 {
		// Zero length names still need a unique offset.
		self.nc = self.nc + 1
	}
	return Name{table: self, offset: n.offset, length: n.length}
}

func (self *Table) equal(offset int, b []byte) bool {
	return string(self.bytes[offset:offset+len(b)]) == string(b)
}

// ensure grows the arena by doubling until size more bytes fit after the
// last committed name. Existing content is copied so previously issued
// offsets stay valid.
func (self *Table) ensure(size int) {
	need := self.nc + size + 1
	if need <= len(self.bytes) {
		return
	}
	capacity := len(self.bytes)
	for capacity < need {
		capacity = capacity * 2
	}
	grown := make([]byte, capacity)
	copy(grown, self.bytes[:self.nc])
	self.bytes = grown
}

func hashValue(b []byte) int {
	h := int32(0)
	for _, c := range b {
		h = (h << 5) - h + int32(int8(c))
	}
	return int(uint32(h))
}
