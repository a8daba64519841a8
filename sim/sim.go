/*
 * sim.go, part of govqe.
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

//Package sim is a local statevector backend for the vqe optimizer. It
//prepares the small analytic ansatz states the library needs and estimates
//Pauli-term expectation values against them, exactly or with finite-shot
//sampling noise. All randomness comes from an explicit source handed in by
//the caller; nothing here touches process-wide seeds.
package sim

import (
	"errors"
	"fmt"
	"math"
	"math/bits"
	"math/cmplx"
	"math/rand"
	"sync"

	vqe "github.com/molsim/govqe"
	"github.com/molsim/govqe/pauli"
)

//State is a normalized statevector over n qubits. Qubit q is the q-th least
//significant bit of the amplitude index, matching pauli.Sum.Matrix.
type State struct {
	n   int
	amp []complex128
}

//NewState wraps the amplitude vector as a state over n qubits, normalizing
//it. The length must be exactly 2^n.
func NewState(n int, amp []complex128) (*State, error) {
	if len(amp) != 1<<uint(n) {
		return nil, fmt.Errorf("govqe/sim: %d amplitudes for %d qubits, want %d", len(amp), n, 1<<uint(n))
	}
	normalize(amp)
	return &State{n: n, amp: amp}, nil
}

//Qubits returns the number of qubits of the state.
func (s *State) Qubits() int { return s.n }

//Expectation returns the exact expectation value <psi|P|psi> of a single
//Pauli term. The term acts on a basis state as
//
//	P|b> = (-i)^d * (-1)^popcount(z & (b^x)) |b^x>,  d = popcount(z&x),
//
//so the value is accumulated matrix-free in one pass over the amplitudes.
//The result of a Hermitian term against a normalized state is real; the
//imaginary part is dropped.
func Expectation(t pauli.Term, st *State) float64 {
	ph := pauli.Phase(-bits.OnesCount64(t.Z & t.X))
	var acc complex128
	for b, a := range st.amp {
		if a == 0 {
			continue
		}
		r := b ^ int(t.X)
		v := ph * a
		if bits.OnesCount64(t.Z&uint64(r))&1 == 1 {
			v = -v
		}
		acc += cmplx.Conj(st.amp[r]) * v
	}
	return real(acc)
}

//Estimator estimates Pauli-term expectation values against simulator
//states. With Shots == 0 it returns the exact value; with Shots > 0 it
//draws that many two-outcome samples from the exact distribution, giving
//the 1/sqrt(shots) statistical noise of a real measurement round. Safe for
//concurrent use.
type Estimator struct {
	//Shots is the number of repeated samples per estimate; zero means
	//exact estimation.
	Shots int

	//Src feeds the sampling. It must be set when Shots > 0.
	Src rand.Source

	mu  sync.Mutex
	rng *rand.Rand
}

//Estimate implements the vqe.Estimator capability for states prepared by
//this package's ansatz types.
func (e *Estimator) Estimate(t pauli.Term, st vqe.State) (float64, error) {
	s, ok := st.(*State)
	if !ok {
		return 0, fmt.Errorf("govqe/sim: state of type %T was not prepared by this backend", st)
	}
	v := Expectation(t, s)
	if e.Shots <= 0 {
		return v, nil
	}
	if e.Src == nil {
		return 0, errors.New("govqe/sim: sampling requested but no random source configured")
	}
	//A Pauli term has eigenvalues +-1, so a measurement round is a
	//Bernoulli draw with p = (1+<P>)/2 per shot.
	p := (1 + v) / 2
	if p < 0 {
		p = 0
	} else if p > 1 {
		p = 1
	}
	e.mu.Lock()
	if e.rng == nil {
		e.rng = rand.New(e.Src)
	}
	hits := 0
	for i := 0; i < e.Shots; i++ {
		if e.rng.Float64() < p {
			hits++
		}
	}
	e.mu.Unlock()
	return 2*float64(hits)/float64(e.Shots) - 1, nil
}

//normalize scales amp to unit norm in place. Zero vectors are left alone.
func normalize(amp []complex128) {
	var n2 float64
	for _, a := range amp {
		n2 += real(a)*real(a) + imag(a)*imag(a)
	}
	if n2 == 0 {
		return
	}
	inv := complex(1/math.Sqrt(n2), 0)
	for i := range amp {
		amp[i] *= inv
	}
}
