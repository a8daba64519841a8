//go:build !purego
// +build !purego

/*
 * solve_gonum.go, part of govqe.
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
	"gonum.org/v1/gonum/mat"
)

//symEigenvalues returns the eigenvalues of the real symmetric n x n matrix
//given in row-major order.
func symEigenvalues(data []float64, n int) ([]float64, error) {
	var eig mat.EigenSym
	if !eig.Factorize(mat.NewSymDense(n, data), false) {
		return nil, Error{"symmetric eigendecomposition failed to converge", []string{"symEigenvalues"}, true}
	}
	return eig.Values(nil), nil
}
