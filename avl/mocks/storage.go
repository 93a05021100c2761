// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package mocks - gomock doubles for the avl interfaces
package mocks

import (
	reflect "reflect"

	gomock "github.com/golang/mock/gomock"

	avl "github.com/bitmark-inc/avltree/avl"
	counter "github.com/bitmark-inc/avltree/counter"
)

// MockStorage is a mock of Storage interface
type MockStorage[T any, H comparable] struct {
	ctrl     *gomock.Controller
	recorder *MockStorageMockRecorder[T, H]
}

// MockStorageMockRecorder is the mock recorder for MockStorage
type MockStorageMockRecorder[T any, H comparable] struct {
	mock *MockStorage[T, H]
}

// NewMockStorage creates a new mock instance
func NewMockStorage[T any, H comparable](ctrl *gomock.Controller) *MockStorage[T, H] {
	mock := &MockStorage[T, H]{ctrl: ctrl}
	mock.recorder = &MockStorageMockRecorder[T, H]{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use
func (m *MockStorage[T, H]) EXPECT() *MockStorageMockRecorder[T, H] {
	return m.recorder
}

// Allocate mocks base method
func (m *MockStorage[T, H]) Allocate(node avl.Node[T, H]) H {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Allocate", node)
	ret0, _ := ret[0].(H)
	return ret0
}

// Allocate indicates an expected call of Allocate
func (mr *MockStorageMockRecorder[T, H]) Allocate(node interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Allocate", reflect.TypeOf((*MockStorage[T, H])(nil).Allocate), node)
}

// Get mocks base method
func (m *MockStorage[T, H]) Get(h H) *avl.Node[T, H] {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Get", h)
	ret0, _ := ret[0].(*avl.Node[T, H])
	return ret0
}

// Get indicates an expected call of Get
func (mr *MockStorageMockRecorder[T, H]) Get(h interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Get", reflect.TypeOf((*MockStorage[T, H])(nil).Get), h)
}

// Free mocks base method
func (m *MockStorage[T, H]) Free(h H) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Free", h)
}

// Free indicates an expected call of Free
func (mr *MockStorageMockRecorder[T, H]) Free(h interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Free", reflect.TypeOf((*MockStorage[T, H])(nil).Free), h)
}

// Root mocks base method
func (m *MockStorage[T, H]) Root() H {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Root")
	ret0, _ := ret[0].(H)
	return ret0
}

// Root indicates an expected call of Root
func (mr *MockStorageMockRecorder[T, H]) Root() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Root", reflect.TypeOf((*MockStorage[T, H])(nil).Root))
}

// SetRoot mocks base method
func (m *MockStorage[T, H]) SetRoot(h H) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "SetRoot", h)
}

// SetRoot indicates an expected call of SetRoot
func (mr *MockStorageMockRecorder[T, H]) SetRoot(h interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SetRoot", reflect.TypeOf((*MockStorage[T, H])(nil).SetRoot), h)
}

// Len mocks base method
func (m *MockStorage[T, H]) Len() int {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Len")
	ret0, _ := ret[0].(int)
	return ret0
}

// Len indicates an expected call of Len
func (mr *MockStorageMockRecorder[T, H]) Len() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Len", reflect.TypeOf((*MockStorage[T, H])(nil).Len))
}

// Stats mocks base method
func (m *MockStorage[T, H]) Stats() counter.Tally {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Stats")
	ret0, _ := ret[0].(counter.Tally)
	return ret0
}

// Stats indicates an expected call of Stats
func (mr *MockStorageMockRecorder[T, H]) Stats() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Stats", reflect.TypeOf((*MockStorage[T, H])(nil).Stats))
}

// Release mocks base method
func (m *MockStorage[T, H]) Release() {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Release")
}

// Release indicates an expected call of Release
func (mr *MockStorageMockRecorder[T, H]) Release() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Release", reflect.TypeOf((*MockStorage[T, H])(nil).Release))
}
