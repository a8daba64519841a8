/*
 * interfaces.go, part of govqe.
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
	"github.com/molsim/govqe/pauli"
)

//The optimizer talks to the quantum side of the computation exclusively
//through these interfaces. Implementations may be local simulators (package
//sim) or remote execution backends; either way, preparing a state for the
//same parameters and configuration must be deterministic, while estimation
//is allowed to carry finite-sampling noise. Backends that talk to remote
//services should enforce their own timeouts and surface failures as plain
//errors; the optimizer wraps them into *ExecutionError.

//State is an opaque prepared-state handle over a fixed number of qubits.
type State interface {
	Qubits() int
}

//Ansatz prepares a quantum state from a real parameter vector of fixed
//arity.
type Ansatz interface {
	//Qubits returns the number of qubits of the prepared states.
	Qubits() int

	//Params returns the arity of the parameter vector.
	Params() int

	//Prepare produces the state for the given parameters.
	Prepare(params []float64) (State, error)
}

//Estimator returns an estimate of the real expectation value of a single
//Pauli term against a prepared state. The estimate may be stochastic.
type Estimator interface {
	Estimate(t pauli.Term, st State) (float64, error)
}
