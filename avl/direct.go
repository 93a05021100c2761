// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/counter"
	"github.com/bitmark-inc/avltree/fault"
)

// DirectNode - a separately allocated node, its address is the handle
type DirectNode[T any] struct {
	Node[T, *DirectNode[T]]
	live bool // cleared by Free
}

// Direct - storage where every node is its own allocation
type Direct[T any] struct {
	root   *DirectNode[T]
	count  int
	verify bool
	tally  counter.Tally
}

// NewDirectStorage - create an empty direct storage
//
// verify enables a full scan of the tree on every Free to detect any
// remaining reference to the freed node
func NewDirectStorage[T any](verify bool) *Direct[T] {
	return &Direct[T]{
		verify: verify,
	}
}

// Allocate - create a new node
func (d *Direct[T]) Allocate(node Node[T, *DirectNode[T]]) *DirectNode[T] {
	p := &DirectNode[T]{
		Node: node,
		live: true,
	}
	d.count += 1
	d.tally.Allocate()
	return p
}

// Get - the node addressed by a handle
func (d *Direct[T]) Get(h *DirectNode[T]) *Node[T, *DirectNode[T]] {
	if nil == h || !h.live {
		fault.PanicWithError("direct: get", fault.ErrInvalidHandle)
	}
	return &h.Node
}

// Free - release a detached node
//
// the node is marked dead and its value cleared so that a stale
// handle cannot be used to reach anything
func (d *Direct[T]) Free(h *DirectNode[T]) {
	if nil == h || !h.live {
		fault.PanicWithError("direct: free", fault.ErrInvalidHandle)
	}
	if h == d.root {
		fault.PanicWithError("direct: free", fault.ErrFreeRoot)
	}
	if !h.detached() {
		fault.PanicWithError("direct: free", fault.ErrNodeAttached)
	}
	if d.verify && d.reachable(d.root, h) {
		fault.PanicWithError("direct: free", fault.ErrDanglingReference)
	}

	h.Node = Node[T, *DirectNode[T]]{}
	h.live = false

	d.count -= 1
	d.tally.Free()
}

// internal: true if any node in the sub-tree refers to h
func (d *Direct[T]) reachable(p *DirectNode[T], h *DirectNode[T]) bool {
	if nil == p {
		return false
	}
	if p.refers(h) {
		return true
	}
	return d.reachable(p.left, h) || d.reachable(p.right, h)
}

// Root - handle of the root node
func (d *Direct[T]) Root() *DirectNode[T] {
	return d.root
}

// SetRoot - change the root node
func (d *Direct[T]) SetRoot(h *DirectNode[T]) {
	d.root = h
}

// Len - number of live nodes
func (d *Direct[T]) Len() int {
	return d.count
}

// Stats - allocation totals
func (d *Direct[T]) Stats() counter.Tally {
	return d.tally.Snapshot()
}

// Release - nothing is held beyond the nodes themselves, which the
// tree must already have freed
func (d *Direct[T]) Release() {
	d.root = nil
}
