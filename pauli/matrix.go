/*
 * matrix.go, part of govqe.
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
	"fmt"
	"math/bits"

	"gonum.org/v1/gonum/mat"
)

//Matrix materializes the sum as a dense 2^n x 2^n complex matrix. Qubit q is
//the q-th least significant bit of the basis-state index, so the matrix is
//the Kronecker product ...P2 (x) P1 (x) P0 of the per-qubit Pauli matrices,
//scaled by each coefficient and summed over terms.
//
//nqubits must match the width the sum was built over; a mismatch returns a
//non-nil error rather than a panic because the requested dimension typically
//comes from caller input, not from a defect inside the algebra.
func (s *Sum) Matrix(nqubits int) (*mat.CDense, error) {
	if nqubits != s.n {
		return nil, Error{
			message:  fmt.Sprintf("requested %d qubits but the sum spans %d", nqubits, s.n),
			deco:     []string{"Matrix"},
			critical: true,
		}
	}
	dim := 1 << uint(s.n)
	m := mat.NewCDense(dim, dim, nil)
	for t, c := range s.coeff {
		//A term acts on a basis state as
		//  P|b> = (-i)^d * (-1)^popcount(z & (b^x)) |b^x>,  d = popcount(z&x),
		//so each term touches exactly one entry per column.
		ph := c * Phase(-bits.OnesCount64(t.Z&t.X))
		for b := 0; b < dim; b++ {
			r := b ^ int(t.X)
			v := ph
			if bits.OnesCount64(t.Z&uint64(r))&1 == 1 {
				v = -v
			}
			m.Set(r, b, m.At(r, b)+v)
		}
	}
	return m, nil
}

//Error is the recoverable-error type of the package, in the decorated style
//shared by the rest of the library: callers may add their names to the
//decoration trail as the error travels up.
type Error struct {
	message  string
	deco     []string
	critical bool
}

//Error returns the error message.
func (err Error) Error() string {
	return fmt.Sprintf("govqe/pauli: %s", err.message)
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
