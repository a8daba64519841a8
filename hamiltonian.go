/*
 * hamiltonian.go, part of govqe.
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

	"github.com/molsim/govqe/pauli"
)

//BuildHamiltonian assembles the qubit Hamiltonian
//
//	H = sum_ij one[i][j] c_i a_j  +  0.5 * sum_ijkl two[i][j][k][l] c_i c_j a_k a_l
//
//from the one- and two-body integral tensors and the Jordan-Wigner ladder
//operators (c = creators, a = annihilators), returning the simplified Pauli
//sum. two may be nil, which is treated as an all-zero tensor.
//
//The quadruple loop is the dominant cost of the whole pipeline. The
//creator-creator and annihilator-annihilator products only depend on the
//index pairs, so they are composed once and reused across the (i,j)x(k,l)
//grid instead of being recomputed n^2 times each.
func BuildHamiltonian(one [][]complex128, two [][][][]complex128, annihilators, creators []*pauli.Sum) (*pauli.Sum, error) {
	n := len(annihilators)
	if n == 0 || len(creators) != n {
		return nil, Error{fmt.Sprintf("got %d annihilation but %d creation operators", n, len(creators)), []string{"BuildHamiltonian"}, true}
	}
	nq := annihilators[0].Qubits()
	for i := 0; i < n; i++ {
		if annihilators[i].Qubits() != nq || creators[i].Qubits() != nq {
			return nil, Error{"ladder operators span differing qubit counts", []string{"BuildHamiltonian"}, true}
		}
	}
	if err := checkOneBody(one, n); err != nil {
		return nil, errDecorate(err, "BuildHamiltonian")
	}
	if two != nil {
		if err := checkTwoBody(two, n); err != nil {
			return nil, errDecorate(err, "BuildHamiltonian")
		}
	}

	h := pauli.NewSum(nq)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if one[i][j] == 0 {
				continue
			}
			h.AddSum(creators[i].Compose(annihilators[j]), one[i][j])
		}
	}
	if two != nil {
		cc := composeTable(creators, creators)
		aa := composeTable(annihilators, annihilators)
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				for k := 0; k < n; k++ {
					for l := 0; l < n; l++ {
						w := two[i][j][k][l]
						if w == 0 {
							continue
						}
						h.AddSum(cc[i][j].Compose(aa[k][l]), 0.5*w)
					}
				}
			}
		}
	}
	return h.Simplify(), nil
}

//composeTable precomputes left[i].Compose(right[j]) for every index pair.
func composeTable(left, right []*pauli.Sum) [][]*pauli.Sum {
	t := make([][]*pauli.Sum, len(left))
	for i := range left {
		t[i] = make([]*pauli.Sum, len(right))
		for j := range right {
			t[i][j] = left[i].Compose(right[j])
		}
	}
	return t
}

func checkOneBody(one [][]complex128, n int) error {
	if len(one) != n {
		return Error{fmt.Sprintf("one-body tensor has %d rows for %d orbitals", len(one), n), nil, true}
	}
	for i := range one {
		if len(one[i]) != n {
			return Error{fmt.Sprintf("one-body tensor row %d has length %d, want %d", i, len(one[i]), n), nil, true}
		}
	}
	return nil
}

func checkTwoBody(two [][][][]complex128, n int) error {
	if len(two) != n {
		return Error{fmt.Sprintf("two-body tensor has %d entries for %d orbitals", len(two), n), nil, true}
	}
	for i := range two {
		if len(two[i]) != n {
			return Error{fmt.Sprintf("two-body tensor axis 1 at %d has length %d, want %d", i, len(two[i]), n), nil, true}
		}
		for j := range two[i] {
			if len(two[i][j]) != n {
				return Error{fmt.Sprintf("two-body tensor axis 2 at (%d,%d) has length %d, want %d", i, j, len(two[i][j]), n), nil, true}
			}
			for k := range two[i][j] {
				if len(two[i][j][k]) != n {
					return Error{fmt.Sprintf("two-body tensor axis 3 at (%d,%d,%d) has length %d, want %d", i, j, k, len(two[i][j][k]), n), nil, true}
				}
			}
		}
	}
	return nil
}
