// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"

	"github.com/bitmark-inc/avltree/counter"
	"github.com/bitmark-inc/avltree/fault"
)

// Key - map key of a node, zero is no node
type Key uint64

// Keyed - storage holding nodes in a map
//
// keys are issued from a counter that only increases, so a key is
// never reused and a stale key can only fail to resolve
type Keyed[T any] struct {
	nodes   map[Key]*Node[T, Key]
	nextKey Key
	root    Key
	verify  bool
	tally   counter.Tally
}

// NewKeyedStorage - create an empty keyed storage
//
// verify enables a scan of every node on each Free to detect a
// relation still holding the freed key
func NewKeyedStorage[T any](verify bool) *Keyed[T] {
	return &Keyed[T]{
		nodes:  make(map[Key]*Node[T, Key]),
		verify: verify,
	}
}

// Allocate - store a node under the next key
func (k *Keyed[T]) Allocate(node Node[T, Key]) Key {
	k.nextKey += 1
	p := new(Node[T, Key])
	*p = node
	k.nodes[k.nextKey] = p
	k.tally.Allocate()
	return k.nextKey
}

// Get - the node stored under a key
func (k *Keyed[T]) Get(h Key) *Node[T, Key] {
	p, ok := k.nodes[h]
	if !ok {
		fault.PanicWithError("keyed: get", fault.ErrInvalidHandle)
	}
	return p
}

// Free - remove a detached node from the map
func (k *Keyed[T]) Free(h Key) {
	p := k.Get(h)
	if h == k.root {
		fault.PanicWithError("keyed: free", fault.ErrFreeRoot)
	}
	if !p.detached() {
		fault.PanicWithError("keyed: free", fault.ErrNodeAttached)
	}
	if k.verify {
		for key, q := range k.nodes {
			if key != h && q.refers(h) {
				fault.PanicWithError(fmt.Sprintf("keyed: free: key: %d still referenced by key: %d", h, key), fault.ErrDanglingReference)
			}
		}
	}
	delete(k.nodes, h)
	k.tally.Free()
}

// Root - handle of the root node
func (k *Keyed[T]) Root() Key {
	return k.root
}

// SetRoot - change the root node
func (k *Keyed[T]) SetRoot(h Key) {
	k.root = h
}

// Len - number of nodes in the map
func (k *Keyed[T]) Len() int {
	return len(k.nodes)
}

// NextKey - the most recently issued key
func (k *Keyed[T]) NextKey() Key {
	return k.nextKey
}

// Stats - allocation totals
func (k *Keyed[T]) Stats() counter.Tally {
	return k.tally.Snapshot()
}

// Release - discard the map, the key counter is kept so keys stay
// unique for the life of the storage
func (k *Keyed[T]) Release() {
	k.nodes = make(map[Key]*Node[T, Key])
	k.root = 0
}
