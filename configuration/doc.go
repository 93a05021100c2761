// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - parse a Lua configuration file
//
// most of base Lua is available such as reading files to set key data
// and getenv to extract environment supplied items.
//
// The file must return a table, e.g.:
//
//   local M = {}
//   M.tree = {
//       backend = "slab",
//       capacity = 4096,
//       verify = false,
//   }
//   M.logging = {
//       directory = "log",
//       file = "avl.log",
//       size = 1048576,
//       count = 10,
//       levels = {
//           DEFAULT = "error",
//       },
//   }
//   return M
package configuration
