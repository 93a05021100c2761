// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package counter

import (
	"sync/atomic"
)

// Counter - a 64 bit unsigned integer that is only changed atomically
type Counter uint64

// Increment - add 1 to a counter, returns new value
func (ic *Counter) Increment() uint64 {
	return atomic.AddUint64((*uint64)(ic), 1)
}

// Uint64 - returns current value
func (ic *Counter) Uint64() uint64 {
	return atomic.LoadUint64((*uint64)(ic))
}

// Reset - set the counter back to zero
func (ic *Counter) Reset() {
	atomic.StoreUint64((*uint64)(ic), 0)
}

// Tally - running totals of storage allocations and releases
//
// a storage backend that does not leak finishes with both totals
// equal
type Tally struct {
	allocated Counter
	freed     Counter
}

// Allocate - record one allocation
func (t *Tally) Allocate() {
	t.allocated.Increment()
}

// Free - record one release
func (t *Tally) Free() {
	t.freed.Increment()
}

// Allocated - total allocations recorded
func (t Tally) Allocated() uint64 {
	return t.allocated.Uint64()
}

// Freed - total releases recorded
func (t Tally) Freed() uint64 {
	return t.freed.Uint64()
}

// Live - allocations not yet released
func (t Tally) Live() uint64 {
	return t.allocated.Uint64() - t.freed.Uint64()
}

// Balanced - true if every allocation has been released
func (t Tally) Balanced() bool {
	return t.allocated.Uint64() == t.freed.Uint64()
}

// Snapshot - copy of the current totals
func (t Tally) Snapshot() Tally {
	s := Tally{}
	s.allocated = Counter(t.allocated.Uint64())
	s.freed = Counter(t.freed.Uint64())
	return s
}
