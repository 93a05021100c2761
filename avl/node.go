// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/counter"
)

// Node - a node in the tree
//
// relations are handles into the storage that owns the node, the
// zero handle means no node
type Node[T any, H comparable] struct {
	left   H   // left sub-tree
	right  H   // right sub-tree
	up     H   // points to parent node
	value  T   // immutable once placed
	height int // 1 for a leaf
	nodes  int // nodes in this sub-tree including this one
}

// Value - read the value from a node
func (p *Node[T, H]) Value() T {
	return p.value
}

// Height - height of the sub-tree rooted at this node
func (p *Node[T, H]) Height() int {
	return p.height
}

// detached - true if the node has no relations
func (p *Node[T, H]) detached() bool {
	return isNil(p.left) && isNil(p.right) && isNil(p.up)
}

// refers - true if any relation of the node is the handle
func (p *Node[T, H]) refers(h H) bool {
	return p.left == h || p.right == h || p.up == h
}

// Storage - owner of all node memory for a tree
//
// A pointer returned by Get remains valid until the next Allocate.
// Free requires that the node is detached, i.e. no relation refers to
// it and it is not the root.  Get on a handle that does not address a
// live node is a programming error and panics.
type Storage[T any, H comparable] interface {
	Allocate(node Node[T, H]) H
	Get(h H) *Node[T, H]
	Free(h H)
	Root() H
	SetRoot(h H)
	Len() int
	Stats() counter.Tally
	Release()
}

// isNil - true for the zero handle
func isNil[H comparable](h H) bool {
	var none H
	return h == none
}
