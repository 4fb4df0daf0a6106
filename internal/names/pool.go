// © 2024 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package names

import "sync"

// Pool keeps retired tables for reuse by later runs. A reused table keeps the
// names it already holds. Reuse is best-effort: Get falls back to a new table
// and Put drops tables once the pool is full.
type Pool struct {
	lock sync.Mutex
	free []*Table
	max  int
}

// NewPool returns a pool holding at most max idle tables.
func NewPool(max int) *Pool {
	return &Pool{max: max}
}

// Get returns the most recently released table or a new one.
func (self *Pool) Get() *Table {
	self.lock.Lock()
	defer self.lock.Unlock()
	if n := len(self.free); n > 0 {
		t := self.free[n-1]
		self.free[n-1] = nil
		self.free = self.free[:n-1]
		return t
	}
	return New()
}

// Put releases a table. It is safe to call from any goroutine. The caller must
// not intern into t afterwards.
func (self *Pool) Put(t *Table) {
	if t == nil {
		return
	}
	self.lock.Lock()
	defer self.lock.Unlock()
	if len(self.free) >= self.max {
		return
	}
	self.free = append(self.free, t)
}

// Idle reports the number of tables waiting for reuse.
func (self *Pool) Idle() int {
	self.lock.Lock()
	defer self.lock.Unlock()
	return len(self.free)
}
