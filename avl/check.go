// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// Check - verify the up links, ordering, balance, stored heights and
// node counts of the whole tree
//
// returns nil for a consistent tree, otherwise the first fault found
func (tree *Tree[T, H]) Check() error {
	var none H
	n, _, err := tree.check(tree.store.Root(), none, nil, nil)
	if nil != err {
		return err
	}
	if n != tree.count || tree.store.Len() != tree.count {
		tree.logCheck("count: %d  reachable: %d  live: %d", tree.count, n, tree.store.Len())
		return fault.ErrCount
	}
	return nil
}

// internal: consistency checker, returns node count and height of a
// sub-tree whose values must lie strictly between low and high
func (tree *Tree[T, H]) check(h H, up H, low *T, high *T) (int, int, error) {
	if isNil(h) {
		return 0, 0, nil
	}
	p := tree.store.Get(h)
	if p.up != up {
		tree.logCheck("node: %v  up link does not match parent", p.value)
		return 0, 0, fault.ErrBackLink
	}
	if (nil != low && p.value <= *low) || (nil != high && p.value >= *high) {
		tree.logCheck("node: %v  out of order", p.value)
		return 0, 0, fault.ErrOrder
	}

	nl, hl, err := tree.check(p.left, h, low, &p.value)
	if nil != err {
		return 0, 0, err
	}
	nr, hr, err := tree.check(p.right, h, &p.value, high)
	if nil != err {
		return 0, 0, err
	}

	if hl-hr > 1 || hr-hl > 1 {
		tree.logCheck("node: %v  heights: left: %d  right: %d", p.value, hl, hr)
		return 0, 0, fault.ErrUnbalanced
	}
	height := 1 + hl
	if hr > hl {
		height = 1 + hr
	}
	if p.height != height {
		tree.logCheck("node: %v  height: %d  expected: %d", p.value, p.height, height)
		return 0, 0, fault.ErrHeight
	}
	if p.nodes != 1+nl+nr {
		tree.logCheck("node: %v  nodes: %d  expected: %d", p.value, p.nodes, 1+nl+nr)
		return 0, 0, fault.ErrSize
	}
	return 1 + nl + nr, height, nil
}

func (tree *Tree[T, H]) logCheck(format string, arguments ...interface{}) {
	if nil != tree.log {
		tree.log.Errorf("check: "+format, arguments...)
	}
}
