// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"path/filepath"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/fault"
)

// names of the node storage backends
const (
	Direct = "direct" // one allocation per node
	Slab   = "slab"   // slice of slots with a free list
	Keyed  = "keyed"  // map keyed by a never reused counter
)

// basic defaults (log directory is relative to the configuration file)
const (
	defaultBackend  = Slab
	defaultCapacity = 0

	defaultLogDirectory = "log"
	defaultLogFile      = "avl.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// LoglevelMap - to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		"avl":             "info",
		logger.DefaultTag: "critical",
	}
)

// Tree - options selecting and tuning the node storage
type Tree struct {
	Backend  string `gluamapper:"backend" json:"backend"`
	Capacity int    `gluamapper:"capacity" json:"capacity"`
	Verify   bool   `gluamapper:"verify" json:"verify"`
}

// Configuration - configuration file data
type Configuration struct {
	Tree    Tree                 `gluamapper:"tree" json:"tree"`
	Logging logger.Configuration `gluamapper:"logging" json:"logging"`
}

// Default - tree options used when nothing is configured
func Default() Tree {
	return Tree{
		Backend:  defaultBackend,
		Capacity: defaultCapacity,
		Verify:   false,
	}
}

// Valid - check that a backend name is recognised
func Valid(backend string) bool {
	switch backend {
	case Direct, Slab, Keyed:
		return true
	default:
		return false
	}
}

// Validate - normalise and check tree options
func (t *Tree) Validate() error {
	t.Backend = strings.ToLower(strings.TrimSpace(t.Backend))
	if "" == t.Backend {
		t.Backend = defaultBackend
	}
	if !Valid(t.Backend) {
		return fault.ErrInvalidBackend
	}
	if t.Capacity < 0 {
		return fault.ErrInvalidCapacity
	}
	return nil
}

// Load - read decode and verify a configuration file
func Load(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if err != nil {
		return nil, err
	}

	// absolute path to the directory holding the configuration
	directory, _ := filepath.Split(configurationFileName)

	options := &Configuration{
		Tree: Default(),
		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels,
		},
	}

	if err := ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	if err := options.Tree.Validate(); err != nil {
		return nil, err
	}

	if !filepath.IsAbs(options.Logging.Directory) {
		options.Logging.Directory = filepath.Join(directory, options.Logging.Directory)
	}
	options.Logging.Directory = filepath.Clean(options.Logging.Directory)

	return options, nil
}
