// © 2024 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package java

import (
	"gopkg.microglot.org/javac.go/internal/idl"
	"gopkg.microglot.org/javac.go/internal/names"
)

// Keywords classifies interned names as reserved words, operators or
// separators. Every other name is an identifier. A Keywords value is bound to
// the table it was built from and is safe for concurrent reads.
type Keywords struct {
	table  *names.Table
	keys   []idl.TokenType
	tokens map[idl.TokenType]names.Name
}

// NewKeywords interns the spelling of every fixed token into the given
// interner and indexes the resulting names by offset.
func NewKeywords(in names.Interner) *Keywords {
	types := idl.TokenTypes()
	tokens := make(map[idl.TokenType]names.Name, len(types))
	maxOffset := -1
	var table *names.Table
	for _, t := range types {
		spelling, _ := t.Spelling()
		n := in.FromChars(names.EncodeString(spelling))
		tokens[t] = n
		table = n.Table()
		if n.Offset() > maxOffset {
			maxOffset = n.Offset()
		}
	}
	keys := make([]idl.TokenType, maxOffset+1)
	for x := range keys {
		keys[x] = idl.TokenTypeIdentifier
	}
	for t, n := range tokens {
		keys[n.Offset()] = t
	}
	return &Keywords{
		table:  table,
		keys:   keys,
		tokens: tokens,
	}
}

// Key returns the token type for the name. Names from another table are
// always identifiers.
func (self *Keywords) Key(n names.Name) idl.TokenType {
	if n.Table() != self.table || n.Offset() >= len(self.keys) {
		return idl.TokenTypeIdentifier
	}
	return self.keys[n.Offset()]
}

// Name returns the interned spelling of a fixed token, or the zero Name.
func (self *Keywords) Name(t idl.TokenType) names.Name {
	return self.tokens[t]
}

// Table is the interning table the classifier is bound to.
func (self *Keywords) Table() *names.Table {
	return self.table
}
