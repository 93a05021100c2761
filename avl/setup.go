// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"io"

	"github.com/bitmark-inc/logger"
	"golang.org/x/exp/constraints"

	"github.com/bitmark-inc/avltree/configuration"
	"github.com/bitmark-inc/avltree/counter"
	"github.com/bitmark-inc/avltree/fault"
)

// Tree - type to hold the storage and count of a tree
type Tree[T constraints.Ordered, H comparable] struct {
	store Storage[T, H]
	count int
	log   *logger.L
}

// Set - operations common to a tree over any storage
type Set[T constraints.Ordered] interface {
	Insert(value T) bool
	Remove(value T) bool
	Contains(value T) bool
	Len() int
	Height() int
	IsEmpty() bool

	Root() (T, bool)
	Get(index int) (T, bool)
	Index(value T) int
	First() (T, bool)
	Last() (T, bool)
	Ascend(f func(T) bool)
	Descend(f func(T) bool)
	Values() []T

	Check() error
	Print(w io.Writer) int
	Clear()
	Stats() counter.Tally
}

// settings shared by the constructors
type settings struct {
	log    *logger.L
	verify bool
}

// Option - modify the construction of a tree
type Option func(*settings)

// WithLogger - log storage growth, clearing and check failures
func WithLogger(log *logger.L) Option {
	return func(s *settings) {
		s.log = log
	}
}

// WithVerify - have the storage scan for stale references on every
// free, this is O(n) per removal
func WithVerify(verify bool) Option {
	return func(s *settings) {
		s.verify = verify
	}
}

func apply(options []Option) settings {
	s := settings{}
	for _, o := range options {
		o(&s)
	}
	return s
}

// New - create an initially empty tree over a storage
func New[T constraints.Ordered, H comparable](store Storage[T, H], options ...Option) *Tree[T, H] {
	s := apply(options)
	return &Tree[T, H]{
		store: store,
		count: store.Len(),
		log:   s.log,
	}
}

// NewDirect - create an empty tree with one allocation per node
func NewDirect[T constraints.Ordered](options ...Option) *Tree[T, *DirectNode[T]] {
	s := apply(options)
	return New[T, *DirectNode[T]](NewDirectStorage[T](s.verify), options...)
}

// NewSlab - create an empty tree with nodes in a slab of the given
// initial capacity
func NewSlab[T constraints.Ordered](capacity int, options ...Option) *Tree[T, Slot] {
	s := apply(options)
	return New[T, Slot](NewSlabStorage[T](capacity, s.verify, s.log), options...)
}

// NewKeyed - create an empty tree with nodes in a map
func NewKeyed[T constraints.Ordered](options ...Option) *Tree[T, Key] {
	s := apply(options)
	return New[T, Key](NewKeyedStorage[T](s.verify), options...)
}

// Open - create an empty tree with the storage named in a configuration
func Open[T constraints.Ordered](conf configuration.Tree, options ...Option) (Set[T], error) {
	if err := conf.Validate(); nil != err {
		return nil, err
	}
	// options from the caller override the configuration
	options = append([]Option{WithVerify(conf.Verify)}, options...)

	switch conf.Backend {
	case configuration.Direct:
		return NewDirect[T](options...), nil
	case configuration.Slab:
		return NewSlab[T](conf.Capacity, options...), nil
	case configuration.Keyed:
		return NewKeyed[T](options...), nil
	default:
		return nil, fault.ErrInvalidBackend
	}
}

// Storage - the storage holding the nodes
func (tree *Tree[T, H]) Storage() Storage[T, H] {
	return tree.store
}

// IsEmpty - true if tree contains no data
func (tree *Tree[T, H]) IsEmpty() bool {
	return isNil(tree.store.Root())
}

// Root - the value held by the root node
func (tree *Tree[T, H]) Root() (T, bool) {
	return tree.valueOf(tree.store.Root())
}

// Len - number of nodes currently in the tree
func (tree *Tree[T, H]) Len() int {
	return tree.count
}

// Height - height of the root, zero for an empty tree
func (tree *Tree[T, H]) Height() int {
	return tree.height(tree.store.Root())
}

// Stats - allocation totals of the storage
func (tree *Tree[T, H]) Stats() counter.Tally {
	return tree.store.Stats()
}
