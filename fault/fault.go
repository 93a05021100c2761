// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised        = ProcessError("already initialised")
	ErrBackLink                  = InvalidError("child does not link back to its parent")
	ErrCount                     = InvalidError("tree count does not match live nodes")
	ErrDanglingReference         = InvalidError("freed slot is still referenced")
	ErrFreeRoot                  = InvalidError("cannot free the root node")
	ErrHeight                    = InvalidError("stored height is incorrect")
	ErrInvalidBackend            = NotFoundError("storage backend is not recognised")
	ErrInvalidCapacity           = InvalidError("capacity must not be negative")
	ErrInvalidHandle             = InvalidError("handle does not address a live node")
	ErrInvalidLoggerChannel      = ProcessError("invalid logger channel")
	ErrInvalidStructPointer      = InvalidError("invalid struct pointer")
	ErrMissingConfigurationTable = NotFoundError("configuration did not return a table")
	ErrNodeAttached              = InvalidError("node is still linked into the tree")
	ErrOrder                     = InvalidError("values are out of order")
	ErrSize                      = InvalidError("stored subtree size is incorrect")
	ErrSlotNotFree               = InvalidError("free list contains an occupied slot")
	ErrUnbalanced                = InvalidError("balance factor out of range")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
