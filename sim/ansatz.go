/*
 * ansatz.go, part of govqe.
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

package sim

import (
	"fmt"
	"math"

	vqe "github.com/molsim/govqe"
)

//The ansatz states are written down analytically rather than built by
//replaying gate sequences; gate-level simulation is out of scope for this
//library.

//PairAnsatz prepares the one-parameter two-determinant family over four
//spin-orbitals
//
//	|psi(t)> = cos(t/2)|orbitals 0,2 occupied> + sin(t/2)|orbitals 1,3 occupied>
//
//used for H2 dissociation: the two closed-shell determinants of a minimal
//basis with interleaved spin ordering. It is expressive enough to reach the
//ground state of the paired-electron sector exactly.
type PairAnsatz struct{}

//Qubits returns 4.
func (PairAnsatz) Qubits() int { return 4 }

//Params returns 1.
func (PairAnsatz) Params() int { return 1 }

//Prepare implements the vqe.Ansatz capability.
func (PairAnsatz) Prepare(params []float64) (vqe.State, error) {
	if len(params) != 1 {
		return nil, fmt.Errorf("govqe/sim: PairAnsatz takes 1 parameter, got %d", len(params))
	}
	amp := make([]complex128, 16)
	amp[1<<0|1<<2] = complex(math.Cos(params[0]/2), 0)
	amp[1<<1|1<<3] = complex(math.Sin(params[0]/2), 0)
	return &State{n: 4, amp: amp}, nil
}

//RotationAnsatz prepares cos(t/2)|0> + sin(t/2)|1> on a single qubit, the
//minimal family that spans all real single-qubit occupation states. Handy
//for one-orbital systems and tests.
type RotationAnsatz struct{}

//Qubits returns 1.
func (RotationAnsatz) Qubits() int { return 1 }

//Params returns 1.
func (RotationAnsatz) Params() int { return 1 }

//Prepare implements the vqe.Ansatz capability.
func (RotationAnsatz) Prepare(params []float64) (vqe.State, error) {
	if len(params) != 1 {
		return nil, fmt.Errorf("govqe/sim: RotationAnsatz takes 1 parameter, got %d", len(params))
	}
	amp := []complex128{
		complex(math.Cos(params[0]/2), 0),
		complex(math.Sin(params[0]/2), 0),
	}
	return &State{n: 1, amp: amp}, nil
}
