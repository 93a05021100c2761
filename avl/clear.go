// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Clear - free every node and release the storage
//
// nodes are freed leaves first, walking back through the up links,
// so each node is detached from its parent before it is freed
func (tree *Tree[T, H]) Clear() {
	var none H
	n := 0
	h := tree.store.Root()
	for !isNil(h) {
		p := tree.store.Get(h)
		if !isNil(p.left) {
			h = p.left
			continue
		}
		if !isNil(p.right) {
			h = p.right
			continue
		}

		up := p.up
		if isNil(up) {
			tree.store.SetRoot(none)
		} else if q := tree.store.Get(up); q.left == h {
			q.left = none
		} else {
			q.right = none
		}
		p.up = none
		tree.store.Free(h)
		n += 1
		h = up
	}
	tree.store.Release()
	tree.count = 0

	if nil != tree.log {
		tree.log.Infof("clear: freed: %d nodes", n)
	}
}
