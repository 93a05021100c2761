// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Remove - removes a specific value from the tree
// returns false if the value was not present
func (tree *Tree[T, H]) Remove(value T) bool {
	hq := tree.search(value)
	if isNil(hq) {
		return false
	}
	q := tree.store.Get(hq)

	// lowest node whose sub-tree changed shape
	var start H

	if isNil(q.left) || isNil(q.right) {
		// zero or one child: splice the child into q's place
		child := q.left
		if isNil(child) {
			child = q.right
		}
		if !isNil(child) {
			tree.store.Get(child).up = q.up
		}
		tree.replace(q.up, hq, child)
		start = q.up

	} else {
		// two children: the in-order successor takes q's place,
		// values are never copied between nodes
		hr := q.right
		r := tree.store.Get(hr)
		for !isNil(r.left) {
			hr = r.left
			r = tree.store.Get(hr)
		}

		if hr == q.right {
			start = hr
		} else {
			// detach r from its parent, r has no left child
			start = r.up
			tree.store.Get(r.up).left = r.right
			if !isNil(r.right) {
				tree.store.Get(r.right).up = r.up
			}
			r.right = q.right
			tree.store.Get(r.right).up = hr
		}
		r.left = q.left
		tree.store.Get(r.left).up = hr

		tree.replace(q.up, hq, hr)
		r.up = q.up
	}

	// nothing refers to q any more, clear its own links and free it
	var none H
	q.left = none
	q.right = none
	q.up = none
	tree.store.Free(hq)
	tree.count -= 1

	tree.retrace(start)
	return true
}
