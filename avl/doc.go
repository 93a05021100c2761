// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL balanced tree with the addition of parent
// pointers to allow iteration and upward rebalancing without a path
// stack
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// The balancing engine is written once against the Storage interface
// and every node relation (left, right, up) is a handle resolved by
// the storage.  Three storage backends are provided:
//
//   Direct - each node is a separate allocation, the handle is the
//            node pointer and a freed node is marked dead
//   Slab   - nodes are slots in a growable slice addressed by index,
//            freed slots are threaded into a free list and only
//            reclaimed once nothing refers to them
//   Keyed  - nodes are entries in a map keyed by a counter that is
//            never reused
//
// The tree holds single ordered values; inserting a value already
// present does nothing and removing an absent value returns false.
package avl
