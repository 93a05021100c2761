// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"fmt"
	"runtime"

	"github.com/bitmark-inc/logger"
)

// hold a logger channel
var log *logger.L

// Initialise - setup a log channel for last attempt to log something
//
// the logger package must already be initialised
func Initialise() error {
	if nil != log {
		return ErrAlreadyInitialised
	}
	log = logger.New("PANIC")
	if nil == log {
		return ErrInvalidLoggerChannel
	}
	return nil
}

// Finalise - flush any data and detach from the log channel
func Finalise() {
	if nil != log {
		log.Flush()
	}
	log = nil
}

// Panicf - log a formatted message with the caller's location, then panic
func Panicf(format string, arguments ...interface{}) {
	message := fmt.Sprintf(format, arguments...)
	if _, file, line, ok := runtime.Caller(1); ok {
		internalCriticalf("(%q:%d) %s", file, line, message)
	} else {
		internalCriticalf("%s", message)
	}
	panic(message)
}

// PanicWithError - abort on an invariant violation
//
// the panic value is the error itself so that a recover can
// classify it with the IsErrXXX functions
func PanicWithError(message string, err error) {
	internalCriticalf("%s failed with error: %v", message, err)
	panic(err)
}

// PanicIfError - conditional panic
func PanicIfError(message string, err error) {
	if nil == err {
		return
	}
	PanicWithError(message, err)
}

// internal routines to handle uninitialised logger channel
func internalCriticalf(format string, arguments ...interface{}) {
	if nil == log {
		fmt.Printf("*** "+format+"\n", arguments...)
	} else {
		log.Criticalf(format, arguments...)
		log.Flush() // make sure log file is saved
	}
}
