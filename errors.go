/*
 * errors.go, part of govqe.
 *
 * Copyright 2024 The govqe authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package vqe

import (
	"fmt"

	"github.com/rs/zerolog"
)

//Two kinds of failures cross this package's boundary and callers must be
//able to tell them apart: algebraic/shape errors (wrong tensors, non-Hermitian
//operators - fatal, never retried) and backend failures from the estimation
//or state-preparation capability (possibly transient - the caller may retry
//with bounded attempts). The former use the decorated Error type shared with
//the subpackages; the latter are always an *ExecutionError, recognizable
//through errors.As.

//Errorer is the interface all recoverable errors of this library satisfy.
//The Decorate method adds information as the error travels up the call
//stack without wrapping it in another type.
type Errorer interface {
	Error() string
	Decorate(string) []string
	Critical() bool
}

//Error is the basic recoverable-error implementation of the package.
type Error struct {
	message  string
	deco     []string
	critical bool
}

//Error returns the error message.
func (err Error) Error() string {
	return fmt.Sprintf("govqe: %s", err.message)
}

//Decorate adds dec to the decoration trail and returns the resulting trail.
//An empty dec only reads the current value.
func (err Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//Critical reports whether the error can be ignored.
func (err Error) Critical() bool { return err.critical }

//errDecorate asserts that err implements Errorer and adds the caller's name
//to its decoration trail. Calling it with any other error type panics.
func errDecorate(err error, caller string) error {
	err2 := err.(Errorer)
	err2.Decorate(caller)
	return err2
}

//ExecutionError reports a failure of an external capability (state
//preparation, expectation estimation or the minimizer backend). It is
//potentially transient: callers may retry the whole operation a bounded
//number of times. It is never produced for algebraic defects.
type ExecutionError struct {
	Op  string //the capability that failed: "prepare", "estimate", "minimize"
	Err error
}

func (e *ExecutionError) Error() string {
	return fmt.Sprintf("govqe: execution failure in %s: %v", e.Op, e.Err)
}

func (e *ExecutionError) Unwrap() error { return e.Err }

//logger receives non-fatal numeric-tolerance warnings (imaginary residue in
//the cost aggregate, near-degenerate minimal eigenvalues). It is silent
//unless the caller installs a real logger.
var logger = zerolog.Nop()

//SetLogger installs the logger used for numeric-tolerance warnings.
func SetLogger(l zerolog.Logger) {
	logger = l
}
