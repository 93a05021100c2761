// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
	"io"
)

// to control the print routine
type branch int

const (
	root  branch = iota
	left  branch = iota
	right branch = iota
)

// Print - display an ASCII graphic representation of the tree
// returns the depth of the tree
func (tree *Tree[T, H]) Print(w io.Writer) int {
	return tree.printTree(w, tree.store.Root(), "", root)
}

// internal print - returns the maximum depth of the tree
func (tree *Tree[T, H]) printTree(w io.Writer, h H, prefix string, br branch) int {
	if isNil(h) {
		return 0
	}
	p := tree.store.Get(h)
	rd := 0
	ld := 0
	if !isNil(p.right) {
		t := "       "
		if left == br {
			t = "|      "
		}
		rd = tree.printTree(w, p.right, prefix+t, right)
	}
	switch br {
	case root:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case left:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case right:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	up := interface{}(nil)
	if !isNil(p.up) {
		up = tree.store.Get(p.up).value
	}
	fmt.Fprintf(w, "%v ^%v %+2d/%d [%d]\n", p.value, up, tree.balance(h), p.height, p.nodes)
	if !isNil(p.left) {
		t := "       "
		if right == br {
			t = "|      "
		}
		ld = tree.printTree(w, p.left, prefix+t, left)
	}
	if rd > ld {
		return 1 + rd
	}
	return 1 + ld
}
