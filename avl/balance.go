// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// internal: height of a sub-tree, zero if empty
func (tree *Tree[T, H]) height(h H) int {
	if isNil(h) {
		return 0
	}
	return tree.store.Get(h).height
}

// internal: number of nodes in a sub-tree
func (tree *Tree[T, H]) size(h H) int {
	if isNil(h) {
		return 0
	}
	return tree.store.Get(h).nodes
}

// internal: left height - right height
func (tree *Tree[T, H]) balance(h H) int {
	if isNil(h) {
		return 0
	}
	p := tree.store.Get(h)
	return tree.height(p.left) - tree.height(p.right)
}

// internal: recompute height and node count from the children
func (tree *Tree[T, H]) update(h H) {
	p := tree.store.Get(h)
	hl := tree.height(p.left)
	hr := tree.height(p.right)
	if hl > hr {
		p.height = 1 + hl
	} else {
		p.height = 1 + hr
	}
	p.nodes = 1 + tree.size(p.left) + tree.size(p.right)
}

// internal: point the parent link that held old at h instead,
// or make h the root if there is no parent
func (tree *Tree[T, H]) replace(up H, old H, h H) {
	if isNil(up) {
		tree.store.SetRoot(h)
		return
	}
	p := tree.store.Get(up)
	if p.left == old {
		p.left = h
	} else {
		p.right = h
	}
}

// internal: single right rotation, the left child rises
//
//	      p             p1
//	     / \           /  \
//	    p1  c   →     a    p
//	   / \                / \
//	  a   b              b   c
func (tree *Tree[T, H]) rotateRight(hp H) H {
	p := tree.store.Get(hp)
	hp1 := p.left
	p1 := tree.store.Get(hp1)

	p.left = p1.right
	if !isNil(p.left) {
		tree.store.Get(p.left).up = hp
	}
	p1.right = hp

	tree.replace(p.up, hp, hp1)
	p1.up = p.up
	p.up = hp1

	tree.update(hp)
	tree.update(hp1)
	return hp1
}

// internal: single left rotation, the right child rises
//
//	    p                 p1
//	   / \               /  \
//	  a   p1     →      p    c
//	     /  \          / \
//	    b    c        a   b
func (tree *Tree[T, H]) rotateLeft(hp H) H {
	p := tree.store.Get(hp)
	hp1 := p.right
	p1 := tree.store.Get(hp1)

	p.right = p1.left
	if !isNil(p.right) {
		tree.store.Get(p.right).up = hp
	}
	p1.left = hp

	tree.replace(p.up, hp, hp1)
	p1.up = p.up
	p.up = hp1

	tree.update(hp)
	tree.update(hp1)
	return hp1
}

// internal: restore balance at a node whose children are balanced,
// returns the root of the possibly rotated sub-tree
func (tree *Tree[T, H]) rebalance(hp H) H {
	tree.update(hp)
	p := tree.store.Get(hp)

	switch bf := tree.height(p.left) - tree.height(p.right); {
	case bf > 1:
		if tree.balance(p.left) < 0 {
			// double LR rotation
			tree.rotateLeft(p.left)
		}
		// single LL rotation
		return tree.rotateRight(hp)

	case bf < -1:
		if tree.balance(p.right) > 0 {
			// double RL rotation
			tree.rotateRight(p.right)
		}
		// single RR rotation
		return tree.rotateLeft(hp)

	default:
		return hp
	}
}

// internal: walk the up links from a changed node to the root
// rebalancing each ancestor
//
// after an insert at most one rotation happens, the rest of the walk
// only refreshes node counts; a removal may rotate at every level
func (tree *Tree[T, H]) retrace(h H) {
	for !isNil(h) {
		h = tree.rebalance(h)
		h = tree.store.Get(h).up
	}
}
