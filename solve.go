/*
 * solve.go, part of govqe.
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
	"sort"

	"github.com/molsim/govqe/pauli"
	"gonum.org/v1/gonum/mat"
)

//hermTol is the largest imaginary part a Hamiltonian coefficient may carry
//and still be accepted as Hermitian, and degenTol the eigenvalue gap under
//which the minimum is reported as near-degenerate.
const (
	hermTol  = 1e-9
	degenTol = 1e-9
)

//MinimalEigenvalue materializes the Hamiltonian as a dense matrix and
//returns its smallest eigenvalue, the exact ground-state reference for the
//variational result. The cost is exponential in the qubit count; this is
//only meant for the small orbital counts (around 4) the library targets.
//
//A near-degenerate minimal eigenvalue is logged as a warning and the value
//still returned.
func MinimalEigenvalue(h *pauli.Sum) (float64, error) {
	if !h.IsHermitian(hermTol) {
		return 0, Error{"hamiltonian has non-real Pauli coefficients", []string{"MinimalEigenvalue"}, true}
	}
	m, err := h.Matrix(h.Qubits())
	if err != nil {
		return 0, errDecorate(err, "MinimalEigenvalue")
	}
	dim := 1 << uint(h.Qubits())
	vals, err := symEigenvalues(embedHermitian(m, dim), 2*dim)
	if err != nil {
		return 0, errDecorate(err, "MinimalEigenvalue")
	}
	sort.Float64s(vals)
	//The embedding doubles every eigenvalue, so the true gap above the
	//minimum is vals[2]-vals[0].
	if len(vals) > 2 && vals[2]-vals[0] < degenTol {
		logger.Warn().
			Float64("min", vals[0]).
			Float64("gap", vals[2]-vals[0]).
			Msg("near-degenerate minimal eigenvalue")
	}
	return vals[0], nil
}

//embedHermitian maps the Hermitian matrix H = A + iB onto the real symmetric
//matrix [[A, -B], [B, A]] of doubled size, which has the same spectrum with
//every eigenvalue appearing twice. This keeps the eigensolver real-valued.
//Residual asymmetry from roundoff is averaged away against the conjugate
//entry.
func embedHermitian(m *mat.CDense, dim int) []float64 {
	n := 2 * dim
	data := make([]float64, n*n)
	for i := 0; i < dim; i++ {
		for j := 0; j < dim; j++ {
			v := m.At(i, j)
			vc := m.At(j, i)
			a := (real(v) + real(vc)) / 2
			b := (imag(v) - imag(vc)) / 2
			data[i*n+j] = a
			data[(i+dim)*n+(j+dim)] = a
			data[i*n+(j+dim)] = -b
			data[(i+dim)*n+j] = b
		}
	}
	return data
}
