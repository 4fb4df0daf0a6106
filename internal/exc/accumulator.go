// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package exc

import (
	"sort"
	"sync"
)

// Reporter accumulates diagnostics while scanning continues. Lexical errors
// are never fatal to the scan; the caller decides what to do with the final
// set once every file has been processed.
type Reporter interface {
	// Report adds the given record to the set. If this method returns an error
	// then the given error is considered fatal.
	Report(Exception) Exception
	// Reported returns the accumulated exceptions in report order.
	Reported() []Exception
}

// NewReporter returns a concurrent-safe implementation of Reporter. Codes in
// nonFatal are added to the lexical diagnostic keys, which are always
// non-fatal.
func NewReporter(nonFatal []string) Reporter {
	nf := make(map[string]bool, len(defaultNonFatal))
	for k := range defaultNonFatal {
		nf[k] = true
	}
	for _, k := range nonFatal {
		nf[k] = true
	}
	return &reporterLock{
		Reporter: &reporter{
			nonFatal: nf,
		},
		lock: &sync.Mutex{},
	}
}

type reporter struct {
	reported []Exception
	nonFatal map[string]bool
}

func (r *reporter) Report(e Exception) Exception {
	r.reported = append(r.reported, e)
	if r.nonFatal[e.Code()] {
		return nil
	}
	return e
}

func (r *reporter) Reported() []Exception {
	return r.reported
}

type reporterLock struct {
	Reporter
	lock sync.Locker
}

func (r *reporterLock) Report(e Exception) Exception {
	r.lock.Lock()
	defer r.lock.Unlock()
	return r.Reporter.Report(e)
}

// Reported returns a copy so callers may read it while other goroutines keep
// reporting.
func (r *reporterLock) Reported() []Exception {
	r.lock.Lock()
	defer r.lock.Unlock()
	reported := r.Reporter.Reported()
	out := make([]Exception, len(reported))
	copy(out, reported)
	return out
}

// Sort orders exceptions by file and then by position within the file.
// Files are scanned concurrently so report order is not stable.
func Sort(es []Exception) {
	sort.SliceStable(es, func(i int, j int) bool {
		a := es[i].Location()
		b := es[j].Location()
		if a.URI != b.URI {
			return a.URI < b.URI
		}
		return a.Offset < b.Offset
	})
}
