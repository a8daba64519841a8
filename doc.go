/*
 * doc.go, part of govqe.
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

/*
Package vqe computes molecular ground-state energies with a variational
quantum eigensolver. It assembles qubit Hamiltonians from one- and two-body
molecular integral tensors through the Jordan-Wigner transform (packages
fermi and pauli), extracts exact reference eigenvalues by dense
diagonalization, and minimizes the Hamiltonian expectation value over a
parametrized state family with a derivative-free optimizer.

State preparation and expectation estimation are consumed as capabilities
behind small interfaces; package sim provides a local statevector
implementation of both. Package integrals reads the per-distance-point input
tensors and package curveplot renders the resulting dissociation curves.

Each distance point of a dissociation curve is an independent computation:
build the Hamiltonian, diagonalize it for the reference energy, run the
variational minimization, discard the operators. Nothing is shared between
points, so callers are free to map points over worker goroutines, as
cmd/dissoc does.
*/
package vqe
