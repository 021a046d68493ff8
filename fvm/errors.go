// Copyright 2022 The Sailfish Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fvm

import (
	"errors"

	"github.com/cpmech/gosl/io"
)

// Kind labels the categories of failures produced by the engine
type Kind int

// failure kinds
const (
	UnsupportedConfiguration Kind = iota + 1 // unknown solver/backend/scheme combination
	InvalidConfiguration                     // out-of-range or unknown configuration values
	NonPhysical                              // negative density or pressure at an interior cell
	BoundaryPolicyInvalid                    // unknown boundary condition name
	IO                                       // checkpoint or configuration file failure
	Interrupt                                // user-initiated cancellation between stages
)

// Error carries a failure kind and a human readable message
type Error struct {
	Kind Kind
	Msg  string
}

// Error returns the message
func (o *Error) Error() string { return o.Msg }

// Errf builds an Error of the given kind with a formatted message
func Errf(kind Kind, msg string, prm ...interface{}) *Error {
	return &Error{kind, io.Sf(msg, prm...)}
}

// KindOf returns the failure kind of err, or zero if err carries none
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
