// © 2024 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package names

import "sync"

// Locked serializes every intern call on a shared Table.
type Locked struct {
	table *Table
	lock  sync.Locker
}

var _ Interner = (*Locked)(nil)

func NewLocked(t *Table) *Locked {
	return &Locked{
		table: t,
		lock:  &sync.Mutex{},
	}
}

func (self *Locked) FromChars(cs []uint16) Name {
	self.lock.Lock()
	defer self.lock.Unlock()
	return self.table.FromChars(cs)
}

func (self *Locked) FromUTF(b []byte) Name {
	self.lock.Lock()
	defer self.lock.Unlock()
	return self.table.FromUTF(b)
}

// Table returns the wrapped table. Reading names through it is only safe once
// no goroutine is interning.
func (self *Locked) Table() *Table {
	return self.table
}

// String decodes a name while holding the lock so it can be read while other
// goroutines intern.
func (self *Locked) String(n Name) string {
	self.lock.Lock()
	defer self.lock.Unlock()
	return n.String()
}
