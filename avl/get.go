// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Get - value at an in-order index
func (tree *Tree[T, H]) Get(index int) (T, bool) {
	var value T
	if index < 0 || index >= tree.count {
		return value, false
	}

	h := tree.store.Root()
	for !isNil(h) {
		p := tree.store.Get(h)
		nl := tree.size(p.left)

		if index < nl {
			h = p.left
		} else if index > nl {
			// subtract left nodes + 1 (for this node)
			index -= nl + 1
			h = p.right
		} else {
			return p.value, true
		}
	}
	return value, false
}
