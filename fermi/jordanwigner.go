/*
 * jordanwigner.go, part of govqe.
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

//Package fermi maps fermionic ladder operators onto qubit Pauli-operator
//sums through the Jordan-Wigner transform. Orbital i maps to qubit i, so the
//ordering agrees with the indexing of the molecular integral tensors fed to
//the Hamiltonian builder.
package fermi

import (
	"github.com/molsim/govqe/pauli"
)

//Annihilators returns the Jordan-Wigner image of the annihilation operator
//for every orbital index in [0,n). Each operator is a two-term Pauli sum
//
//	a_i = 0.5*(Z...Z X_i) + 0.5i*(Z...Z Y_i)
//
//with the Z string covering qubits [0,i). Under pauli composition these
//satisfy the canonical anticommutation relations {a_i, a_j adjoint} = d_ij.
func Annihilators(n int) []*pauli.Sum {
	ops := make([]*pauli.Sum, 0, n)
	for i := 0; i < n; i++ {
		zstring := uint64(1)<<uint(i) - 1
		a := pauli.NewSum(n)
		a.Add(pauli.Term{Z: zstring, X: 1 << uint(i)}, 0.5)
		a.Add(pauli.Term{Z: zstring | 1<<uint(i), X: 1 << uint(i)}, complex(0, 0.5))
		ops = append(ops, a)
	}
	return ops
}

//Creators returns the creation operators corresponding to the given
//annihilation operators, i.e. their adjoints (same patterns, coefficients
//0.5 and -0.5i).
func Creators(annihilators []*pauli.Sum) []*pauli.Sum {
	ops := make([]*pauli.Sum, len(annihilators))
	for i, a := range annihilators {
		ops[i] = a.Adjoint()
	}
	return ops
}
