// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
	"math"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/counter"
	"github.com/bitmark-inc/avltree/fault"
)

// Slot - index of a node in a slab, zero is no node
type Slot uint32

// to tag the state of a slot
type slotState uint8

const (
	slotFree     slotState = iota // on the free list
	slotOccupied slotState = iota // holds a live node
)

// one entry of the slab
type slot[T any] struct {
	state slotState
	next  Slot // next free slot while on the free list
	node  Node[T, Slot]
}

// Slab - storage holding nodes in a growable slice
//
// freed slots form a singly linked list through their next field
// starting at freeHead and are reused before the slice grows
type Slab[T any] struct {
	slots    []slot[T] // slots[0] is a permanent sentinel
	freeHead Slot
	freeN    int
	root     Slot
	count    int
	verify   bool
	tally    counter.Tally
	log      *logger.L
}

// NewSlabStorage - create an empty slab with room for capacity nodes
// before it has to grow
//
// verify enables a scan of every occupied slot on each Free to detect
// a relation still holding the freed slot
func NewSlabStorage[T any](capacity int, verify bool, log *logger.L) *Slab[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Slab[T]{
		slots:  make([]slot[T], 1, capacity+1),
		verify: verify,
		log:    log,
	}
}

// Allocate - place a node in a free slot, growing the slab if none
// is available
func (s *Slab[T]) Allocate(node Node[T, Slot]) Slot {
	s.count += 1
	s.tally.Allocate()

	if 0 != s.freeHead {
		h := s.freeHead
		p := &s.slots[h]
		if slotFree != p.state {
			fault.PanicWithError("slab: allocate", fault.ErrSlotNotFree)
		}
		s.freeHead = p.next
		s.freeN -= 1

		p.state = slotOccupied
		p.next = 0
		p.node = node
		return h
	}

	if uint64(len(s.slots)) > math.MaxUint32 {
		fault.Panicf("slab: allocate: slot index overflow at: %d", len(s.slots))
	}

	c := cap(s.slots)
	s.slots = append(s.slots, slot[T]{
		state: slotOccupied,
		node:  node,
	})
	if c != cap(s.slots) && nil != s.log {
		s.log.Debugf("grow: %d to %d slots", c, cap(s.slots))
	}
	return Slot(len(s.slots) - 1)
}

// Get - the node in an occupied slot
func (s *Slab[T]) Get(h Slot) *Node[T, Slot] {
	if 0 == h || int(h) >= len(s.slots) || slotOccupied != s.slots[h].state {
		fault.PanicWithError("slab: get", fault.ErrInvalidHandle)
	}
	return &s.slots[h].node
}

// Free - return a detached node's slot to the free list
//
// the slot is only tagged free after checking that nothing can still
// reach it, so a stale slot number can never resolve to a later node
func (s *Slab[T]) Free(h Slot) {
	p := s.Get(h)
	if h == s.root {
		fault.PanicWithError("slab: free", fault.ErrFreeRoot)
	}
	if !p.detached() {
		fault.PanicWithError("slab: free", fault.ErrNodeAttached)
	}
	if s.verify {
		for i := 1; i < len(s.slots); i += 1 {
			if slotOccupied == s.slots[i].state && s.slots[i].node.refers(h) {
				fault.PanicWithError(fmt.Sprintf("slab: free: slot: %d still referenced by slot: %d", h, i), fault.ErrDanglingReference)
			}
		}
	}

	e := &s.slots[h]
	e.node = Node[T, Slot]{}
	e.state = slotFree
	e.next = s.freeHead
	s.freeHead = h
	s.freeN += 1

	s.count -= 1
	s.tally.Free()
}

// Root - handle of the root node
func (s *Slab[T]) Root() Slot {
	return s.root
}

// SetRoot - change the root node
func (s *Slab[T]) SetRoot(h Slot) {
	s.root = h
}

// Len - number of occupied slots
func (s *Slab[T]) Len() int {
	return s.count
}

// Slots - number of slots allocated, occupied or free
func (s *Slab[T]) Slots() int {
	return len(s.slots) - 1
}

// Stats - allocation totals
func (s *Slab[T]) Stats() counter.Tally {
	return s.tally.Snapshot()
}

// CheckFreeList - walk the free list confirming that every entry is
// tagged free and that free and occupied slots account for the slab
func (s *Slab[T]) CheckFreeList() error {
	n := 0
	for h := s.freeHead; 0 != h; h = s.slots[h].next {
		if int(h) >= len(s.slots) || slotFree != s.slots[h].state {
			return fault.ErrSlotNotFree
		}
		n += 1
		if n > s.freeN {
			return fault.ErrSlotNotFree
		}
	}
	if n != s.freeN || n+s.count != len(s.slots)-1 {
		return fault.ErrCount
	}
	return nil
}

// Release - discard every slot
//
// the tree must already have freed all nodes
func (s *Slab[T]) Release() {
	if nil != s.log {
		s.log.Debugf("release: %d slots", len(s.slots)-1)
	}
	s.slots = make([]slot[T], 1, cap(s.slots))
	s.freeHead = 0
	s.freeN = 0
	s.root = 0
}
