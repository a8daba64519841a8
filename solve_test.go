/*
 * solve_test.go, part of govqe.
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
	"math"
	"testing"

	"github.com/molsim/govqe/pauli"
)

func TestMinimalEigenvalueSingleOrbital(t *testing.T) {
	//H = -n for one orbital: eigenvalues {0, -1}.
	annih, creat := ladder(1)
	h, err := BuildHamiltonian([][]complex128{{-1}}, nil, annih, creat)
	if err != nil {
		t.Fatal(err)
	}
	got, err := MinimalEigenvalue(h)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(got+1) > 1e-10 {
		t.Fatalf("got %v, want -1", got)
	}
}

func TestMinimalEigenvalueKnownSpectra(t *testing.T) {
	cases := []struct {
		name  string
		build func() *pauli.Sum
		want  float64
	}{
		{
			//2*Z0 + X1 has spectrum {2a+b : a,b = +-1}.
			name: "2Z0+X1",
			build: func() *pauli.Sum {
				s := pauli.NewSum(2)
				s.Add(pauli.Term{Z: 1, X: 0}, 2)
				s.Add(pauli.Term{Z: 0, X: 2}, 1)
				return s
			},
			want: -3,
		},
		{
			//Y exercises the imaginary block of the real embedding.
			name: "Y0",
			build: func() *pauli.Sum {
				s := pauli.NewSum(1)
				s.Add(pauli.Term{Z: 1, X: 1}, 1)
				return s
			},
			want: -1,
		},
		{
			//ZZ with a transverse field: eigenvalues +-sqrt(1+h*h) of
			//each 2x2 block, min = -sqrt(2).
			name: "Z0Z1+X0",
			build: func() *pauli.Sum {
				s := pauli.NewSum(2)
				s.Add(pauli.Term{Z: 3, X: 0}, 1)
				s.Add(pauli.Term{Z: 0, X: 1}, 1)
				return s
			},
			want: -math.Sqrt2,
		},
	}
	for _, c := range cases {
		got, err := MinimalEigenvalue(c.build())
		if err != nil {
			t.Fatalf("%s: %v", c.name, err)
		}
		if math.Abs(got-c.want) > 1e-10 {
			t.Errorf("%s: got %v, want %v", c.name, got, c.want)
		}
	}
}

func TestMinimalEigenvalueRejectsNonHermitian(t *testing.T) {
	s := pauli.NewSum(1)
	s.Add(pauli.Term{Z: 1}, complex(0, 1))
	if _, err := MinimalEigenvalue(s); err == nil {
		t.Fatal("non-Hermitian operator accepted")
	}
}
