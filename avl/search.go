// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"golang.org/x/exp/constraints"
)

// internal: three way comparison
func compare[T constraints.Ordered](a T, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return +1
	default:
		return 0
	}
}

// Contains - true if the value is in the tree
func (tree *Tree[T, H]) Contains(value T) bool {
	return !isNil(tree.search(value))
}

// Index - in-order position of a value, -1 if not present
func (tree *Tree[T, H]) Index(value T) int {
	index := 0
	h := tree.store.Root()
	for !isNil(h) {
		p := tree.store.Get(h)
		switch compare(p.value, value) {
		case +1: // p.value > value
			h = p.left
		case -1: // p.value < value
			index += tree.size(p.left) + 1
			h = p.right
		default:
			return index + tree.size(p.left)
		}
	}
	return -1
}

// internal: handle of the node holding a value
func (tree *Tree[T, H]) search(value T) H {
	h := tree.store.Root()
	for !isNil(h) {
		p := tree.store.Get(h)
		switch compare(p.value, value) {
		case +1: // p.value > value
			h = p.left
		case -1: // p.value < value
			h = p.right
		default:
			return h
		}
	}
	return h
}
