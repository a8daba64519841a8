/*
 * matrix_test.go, part of govqe.
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

package pauli

import (
	"math/cmplx"
	"testing"
)

func TestMatrixIdentity(t *testing.T) {
	s := NewSum(3)
	s.Add(Term{}, 1)
	m, err := s.Matrix(3)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 8; i++ {
		for j := 0; j < 8; j++ {
			want := complex128(0)
			if i == j {
				want = 1
			}
			if got := m.At(i, j); got != want {
				t.Fatalf("identity matrix entry (%d,%d) = %v", i, j, got)
			}
		}
	}
}

func TestMatrixSingleQubit(t *testing.T) {
	cases := []struct {
		term Term
		want [2][2]complex128
	}{
		{tX, [2][2]complex128{{0, 1}, {1, 0}}},
		{tY, [2][2]complex128{{0, complex(0, -1)}, {complex(0, 1), 0}}},
		{tZ, [2][2]complex128{{1, 0}, {0, -1}}},
	}
	for _, c := range cases {
		s := NewSum(1)
		s.Add(c.term, 1)
		m, err := s.Matrix(1)
		if err != nil {
			t.Fatal(err)
		}
		for i := 0; i < 2; i++ {
			for j := 0; j < 2; j++ {
				if got := m.At(i, j); cmplx.Abs(got-c.want[i][j]) > 1e-15 {
					t.Errorf("%s entry (%d,%d): got %v, want %v", Label(c.term, 1), i, j, got, c.want[i][j])
				}
			}
		}
	}
}

func TestMatrixTensorOrder(t *testing.T) {
	//Z on qubit 0, identity on qubit 1: with qubit 0 as the low bit the
	//diagonal must read +1,-1,+1,-1.
	s := NewSum(2)
	s.Add(Term{Z: 1, X: 0}, 1)
	m, err := s.Matrix(2)
	if err != nil {
		t.Fatal(err)
	}
	want := []complex128{1, -1, 1, -1}
	for i := 0; i < 4; i++ {
		if got := m.At(i, i); got != want[i] {
			t.Errorf("diagonal entry %d: got %v, want %v", i, got, want[i])
		}
	}
}

func TestMatrixDimensionMismatch(t *testing.T) {
	s := NewSum(2)
	s.Add(Term{Z: 1}, 1)
	if _, err := s.Matrix(3); err == nil {
		t.Fatal("dimension mismatch not reported")
	}
}
