// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error instances and the abort path
//
// Each error is a single instance so callers compare with == or
// classify with the IsErrXXX functions.  Invariant violations in the
// tree and its storage are not returned; they are logged to the PANIC
// channel and raised with PanicWithError or Panicf.
package fault
