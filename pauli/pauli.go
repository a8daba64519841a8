/*
 * pauli.go, part of govqe.
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

//Package pauli implements a minimal algebra of N-qubit Pauli operators in the
//symplectic (Z-bits, X-bits) representation: multiplication with phase tracking,
//adjoints, simplification of weighted sums and dense-matrix materialization.
package pauli

import (
	"fmt"
	"math"
	"math/bits"
	"math/cmplx"
	"sort"
	"strings"
)

//DropTol is the coefficient magnitude below which Simplify discards a term.
const DropTol = 1e-12

//MaxQubits is the widest Pauli string this representation can hold.
const MaxQubits = 64

//Term is an N-qubit Pauli string. Bit q of Z and X encodes the single-qubit
//operator acting on qubit q: I=(0,0), X=(0,1), Z=(1,0), Y=(1,1).
//The phase convention is fixed once for the whole library: on each qubit the
//pair (z,x) denotes (-i)^(z*x) Z^z X^x, so that both bits set means
//Y = -iZX = iXZ. Every Term is therefore Hermitian. Terms are immutable
//values and are used as map keys; the string width is carried by the Sum
//that owns them.
type Term struct {
	Z uint64
	X uint64
}

//Mul multiplies the Pauli terms a and b, returning the product term and the
//accumulated phase as an exponent p in [0,4) such that a*b = i^p * product.
//For any term t, Mul(t,t) is the identity with p==0.
func Mul(a, b Term) (Term, int) {
	t := Term{Z: a.Z ^ b.Z, X: a.X ^ b.X}
	//Per qubit: (-i)^d1 Z^z1 X^x1 (-i)^d2 Z^z2 X^x2 with X^x1 Z^z2 = (-1)^(x1*z2) Z^z2 X^x1.
	//Folding the product's own (-i)^d3 back out leaves i^(d3-d1-d2+2*x1*z2).
	p := bits.OnesCount64(t.Z&t.X) - bits.OnesCount64(a.Z&a.X) -
		bits.OnesCount64(b.Z&b.X) + 2*bits.OnesCount64(a.X&b.Z)
	return t, ((p % 4) + 4) % 4
}

//Phase returns i^p for a phase exponent as returned by Mul.
func Phase(p int) complex128 {
	switch ((p % 4) + 4) % 4 {
	case 0:
		return 1
	case 1:
		return complex(0, 1)
	case 2:
		return -1
	default:
		return complex(0, -1)
	}
}

//Sum is a weighted sum of Pauli terms over a fixed number of qubits.
//No two entries share a bit pattern; accumulation merges coefficients.
type Sum struct {
	n     int
	coeff map[Term]complex128
}

//NewSum returns an empty sum over n qubits. It panics with ErrQubits
//if n is not in (0, MaxQubits].
func NewSum(n int) *Sum {
	if n <= 0 || n > MaxQubits {
		panic(ErrQubits)
	}
	return &Sum{n: n, coeff: make(map[Term]complex128)}
}

//Qubits returns the number of qubits the sum is defined over.
func (s *Sum) Qubits() int {
	return s.n
}

//Len returns the number of stored terms, including any below DropTol
//that have not yet been simplified away.
func (s *Sum) Len() int {
	return len(s.coeff)
}

//Coeff returns the coefficient of t, zero if t is not present.
func (s *Sum) Coeff(t Term) complex128 {
	return s.coeff[t]
}

//Add accumulates c onto the coefficient of t. It panics with ErrPattern if t
//has bits set at or beyond the sum's qubit count.
func (s *Sum) Add(t Term, c complex128) {
	if s.n < MaxQubits && (t.Z|t.X)>>uint(s.n) != 0 {
		panic(ErrPattern)
	}
	s.coeff[t] += c
}

//AddSum accumulates a*scale onto the receiver. Both sums must span the same
//number of qubits; a mismatch panics with ErrShape.
func (s *Sum) AddSum(a *Sum, scale complex128) {
	if a.n != s.n {
		panic(ErrShape)
	}
	for t, c := range a.coeff {
		s.coeff[t] += c * scale
	}
}

//Copy returns a deep copy of the sum.
func (s *Sum) Copy() *Sum {
	r := NewSum(s.n)
	for t, c := range s.coeff {
		r.coeff[t] = c
	}
	return r
}

//Scale returns a new sum with every coefficient multiplied by c.
func (s *Sum) Scale(c complex128) *Sum {
	r := NewSum(s.n)
	for t, v := range s.coeff {
		r.coeff[t] = v * c
	}
	return r
}

//Adjoint returns the Hermitian conjugate of the sum. Under the fixed phase
//convention every Term is self-adjoint, so only coefficients are conjugated.
func (s *Sum) Adjoint() *Sum {
	r := NewSum(s.n)
	for t, c := range s.coeff {
		r.coeff[t] = cmplx.Conj(c)
	}
	return r
}

//Compose returns the operator product s*b, distributing over all term pairs
//and simplifying the result. It panics with ErrShape if the qubit counts
//differ.
func (s *Sum) Compose(b *Sum) *Sum {
	if s.n != b.n {
		panic(ErrShape)
	}
	r := NewSum(s.n)
	for ta, ca := range s.coeff {
		for tb, cb := range b.coeff {
			t, p := Mul(ta, tb)
			r.coeff[t] += ca * cb * Phase(p)
		}
	}
	return r.Simplify()
}

//Simplify returns a copy of the sum with coefficients below DropTol in
//magnitude removed. Merging of identical patterns is structural (the map key
//is the pattern), so Simplify is idempotent and independent of the order in
//which terms were accumulated.
func (s *Sum) Simplify() *Sum {
	r := NewSum(s.n)
	for t, c := range s.coeff {
		if cmplx.Abs(c) >= DropTol {
			r.coeff[t] = c
		}
	}
	return r
}

//IsHermitian reports whether the sum is self-adjoint within tol. Since every
//Term is Hermitian this reduces to all coefficients being real.
func (s *Sum) IsHermitian(tol float64) bool {
	for _, c := range s.coeff {
		if math.Abs(imag(c)) > tol {
			return false
		}
	}
	return true
}

//Terms returns the terms and their coefficients in a deterministic order
//(sorted by Z, then X bit patterns), so that summations over them do not
//depend on map iteration order.
func (s *Sum) Terms() ([]Term, []complex128) {
	ts := make([]Term, 0, len(s.coeff))
	for t := range s.coeff {
		ts = append(ts, t)
	}
	sort.Slice(ts, func(i, j int) bool {
		if ts[i].Z != ts[j].Z {
			return ts[i].Z < ts[j].Z
		}
		return ts[i].X < ts[j].X
	})
	cs := make([]complex128, len(ts))
	for i, t := range ts {
		cs[i] = s.coeff[t]
	}
	return ts, cs
}

//Equal reports whether the simplified forms of a and b agree within tol on
//every pattern.
func Equal(a, b *Sum, tol float64) bool {
	if a.n != b.n {
		return false
	}
	seen := make(map[Term]bool, len(a.coeff))
	for t, c := range a.coeff {
		if cmplx.Abs(c-b.coeff[t]) > tol {
			return false
		}
		seen[t] = true
	}
	for t, c := range b.coeff {
		if !seen[t] && cmplx.Abs(c) > tol {
			return false
		}
	}
	return true
}

//Label renders t over n qubits as a string of I/X/Y/Z letters, qubit 0
//leftmost.
func Label(t Term, n int) string {
	var b strings.Builder
	for q := 0; q < n; q++ {
		z := t.Z >> uint(q) & 1
		x := t.X >> uint(q) & 1
		switch {
		case z == 1 && x == 1:
			b.WriteByte('Y')
		case z == 1:
			b.WriteByte('Z')
		case x == 1:
			b.WriteByte('X')
		default:
			b.WriteByte('I')
		}
	}
	return b.String()
}

//String lists the simplified terms of the sum, one per line, in the
//deterministic Terms order.
func (s *Sum) String() string {
	ts, cs := s.Simplify().Terms()
	var b strings.Builder
	for i, t := range ts {
		fmt.Fprintf(&b, "%s: %v\n", Label(t, s.n), cs[i])
	}
	return b.String()
}

//Errors

//PanicMsg is the type used for the panics raised by the fundamental algebra
//functions. If something goes wrong at this level the program is almost
//certainly wrong and should crash rather than limp on.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrQubits  = PanicMsg("govqe/pauli: qubit count must be in (0,64]")
	ErrShape   = PanicMsg("govqe/pauli: dimension mismatch between operator sums")
	ErrPattern = PanicMsg("govqe/pauli: term pattern wider than the sum's qubit count")
)
