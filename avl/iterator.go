// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// First - the lowest value in the tree
func (tree *Tree[T, H]) First() (T, bool) {
	return tree.valueOf(tree.first(tree.store.Root()))
}

// Last - the highest value in the tree
func (tree *Tree[T, H]) Last() (T, bool) {
	return tree.valueOf(tree.last(tree.store.Root()))
}

// Ascend - call f for each value in increasing order until f returns
// false
//
// the tree must not be modified from within f
func (tree *Tree[T, H]) Ascend(f func(T) bool) {
	for h := tree.first(tree.store.Root()); !isNil(h); h = tree.next(h) {
		if !f(tree.store.Get(h).value) {
			return
		}
	}
}

// Descend - call f for each value in decreasing order until f
// returns false
//
// the tree must not be modified from within f
func (tree *Tree[T, H]) Descend(f func(T) bool) {
	for h := tree.last(tree.store.Root()); !isNil(h); h = tree.prev(h) {
		if !f(tree.store.Get(h).value) {
			return
		}
	}
}

// Values - all values in increasing order
func (tree *Tree[T, H]) Values() []T {
	values := make([]T, 0, tree.count)
	tree.Ascend(func(value T) bool {
		values = append(values, value)
		return true
	})
	return values
}

// internal: copy of a node's value
func (tree *Tree[T, H]) valueOf(h H) (T, bool) {
	if isNil(h) {
		var value T
		return value, false
	}
	return tree.store.Get(h).value, true
}

// internal: lowest node in a sub-tree
func (tree *Tree[T, H]) first(h H) H {
	if isNil(h) {
		return h
	}
	for {
		p := tree.store.Get(h)
		if isNil(p.left) {
			return h
		}
		h = p.left
	}
}

// internal: highest node in a sub-tree
func (tree *Tree[T, H]) last(h H) H {
	if isNil(h) {
		return h
	}
	for {
		p := tree.store.Get(h)
		if isNil(p.right) {
			return h
		}
		h = p.right
	}
}

// internal: given a node, return the node with the next highest
// value or the zero handle if no more nodes
func (tree *Tree[T, H]) next(h H) H {
	p := tree.store.Get(h)
	if !isNil(p.right) {
		return tree.first(p.right)
	}
	for up := p.up; !isNil(up); up = p.up {
		p = tree.store.Get(up)
		if p.left == h {
			return up
		}
		h = up
	}
	var none H
	return none
}

// internal: given a node, return the node with the next lowest value
// or the zero handle if no more nodes
func (tree *Tree[T, H]) prev(h H) H {
	p := tree.store.Get(h)
	if !isNil(p.left) {
		return tree.last(p.left)
	}
	for up := p.up; !isNil(up); up = p.up {
		p = tree.store.Get(up)
		if p.right == h {
			return up
		}
		h = up
	}
	var none H
	return none
}
