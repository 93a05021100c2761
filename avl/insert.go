// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Insert - insert a new value into the tree
// returns false if the value was already present
func (tree *Tree[T, H]) Insert(value T) bool {
	var up H
	h := tree.store.Root()
	less := false
	for !isNil(h) {
		p := tree.store.Get(h)
		switch compare(p.value, value) {
		case +1: // p.value > value
			up, h, less = h, p.left, true
		case -1: // p.value < value
			up, h, less = h, p.right, false
		default:
			return false
		}
	}

	// allocate before fetching the parent, a slab may move its nodes
	hn := tree.store.Allocate(Node[T, H]{
		value:  value,
		height: 1,
		nodes:  1,
		up:     up,
	})

	if isNil(up) {
		tree.store.SetRoot(hn)
	} else if p := tree.store.Get(up); less {
		p.left = hn
	} else {
		p.right = hn
	}
	tree.count += 1

	tree.retrace(up)
	return true
}
