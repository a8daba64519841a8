/*
 * integrals.go, part of govqe.
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

//Package integrals reads and writes the per-distance-point inputs of a
//dissociation curve: the interatomic distance, the nuclear repulsion energy
//and the complex one-body (n x n) and two-body (n x n x n x n) molecular
//integral tensors. Points are stored one per file, as JSON or msgpack,
//optionally zstd-compressed; the format is picked from the file name
//extension.
package integrals

import (
	"fmt"
)

//Point is the read-only input for one distance point. The orbital count n
//is implied by the tensor dimensions.
type Point struct {
	Distance  float64
	Repulsion float64
	OneBody   [][]complex128
	TwoBody   [][][][]complex128
}

//Orbitals returns the orbital (= qubit) count of the point's tensors.
func (p *Point) Orbitals() int {
	return len(p.OneBody)
}

//Validate checks that the tensors are square and mutually consistent. The
//two-body tensor may be nil (treated as all zeros by the Hamiltonian
//builder), but when present it must span the same orbital count on all four
//axes.
func (p *Point) Validate() error {
	n := len(p.OneBody)
	if n == 0 {
		return Error{"point has an empty one-body tensor", nil, true}
	}
	for i, row := range p.OneBody {
		if len(row) != n {
			return Error{fmt.Sprintf("one-body row %d has length %d, want %d", i, len(row), n), nil, true}
		}
	}
	if p.TwoBody == nil {
		return nil
	}
	if len(p.TwoBody) != n {
		return Error{fmt.Sprintf("two-body tensor spans %d orbitals, one-body %d", len(p.TwoBody), n), nil, true}
	}
	for i := range p.TwoBody {
		if len(p.TwoBody[i]) != n {
			return Error{fmt.Sprintf("two-body axis 1 at %d has length %d, want %d", i, len(p.TwoBody[i]), n), nil, true}
		}
		for j := range p.TwoBody[i] {
			if len(p.TwoBody[i][j]) != n {
				return Error{fmt.Sprintf("two-body axis 2 at (%d,%d) has length %d, want %d", i, j, len(p.TwoBody[i][j]), n), nil, true}
			}
			for k := range p.TwoBody[i][j] {
				if len(p.TwoBody[i][j][k]) != n {
					return Error{fmt.Sprintf("two-body axis 3 at (%d,%d,%d) has length %d, want %d", i, j, k, len(p.TwoBody[i][j][k]), n), nil, true}
				}
			}
		}
	}
	return nil
}

//Error is the recoverable-error type of the package, with the decoration
//trail shared by the rest of the library.
type Error struct {
	message  string
	deco     []string
	critical bool
}

//Error returns the error message.
func (err Error) Error() string {
	return fmt.Sprintf("govqe/integrals: %s", err.message)
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
