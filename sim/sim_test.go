/*
 * sim_test.go, part of govqe.
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

package sim

import (
	"math"
	"math/rand"
	"testing"

	vqe "github.com/molsim/govqe"
	"github.com/molsim/govqe/pauli"
)

var (
	tX = pauli.Term{Z: 0, X: 1}
	tY = pauli.Term{Z: 1, X: 1}
	tZ = pauli.Term{Z: 1, X: 0}
)

func state(t *testing.T, n int, amp []complex128) *State {
	t.Helper()
	s, err := NewState(n, amp)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestExpectationSingleQubit(t *testing.T) {
	isq := complex(1/math.Sqrt2, 0)
	cases := []struct {
		name string
		term pauli.Term
		amp  []complex128
		want float64
	}{
		{"Z on |0>", tZ, []complex128{1, 0}, 1},
		{"Z on |1>", tZ, []complex128{0, 1}, -1},
		{"X on |+>", tX, []complex128{isq, isq}, 1},
		{"X on |0>", tX, []complex128{1, 0}, 0},
		{"Y on (|0>+i|1>)/sqrt2", tY, []complex128{isq, complex(0, 1) * isq}, 1},
		{"identity", pauli.Term{}, []complex128{isq, isq}, 1},
	}
	for _, c := range cases {
		got := Expectation(c.term, state(t, 1, c.amp))
		if math.Abs(got-c.want) > 1e-12 {
			t.Errorf("%s: got %v, want %v", c.name, got, c.want)
		}
	}
}

func TestExpectationTwoQubit(t *testing.T) {
	//Z0Z1 on |11> is +1, on (|00>+|11>)/sqrt2 is +1, X0X1 on the same
	//Bell state is +1.
	bell := make([]complex128, 4)
	bell[0] = complex(1/math.Sqrt2, 0)
	bell[3] = complex(1/math.Sqrt2, 0)
	zz := pauli.Term{Z: 3, X: 0}
	xx := pauli.Term{Z: 0, X: 3}
	if got := Expectation(zz, state(t, 2, bell)); math.Abs(got-1) > 1e-12 {
		t.Errorf("ZZ on Bell state: got %v, want 1", got)
	}
	if got := Expectation(xx, state(t, 2, bell)); math.Abs(got-1) > 1e-12 {
		t.Errorf("XX on Bell state: got %v, want 1", got)
	}
	eleven := make([]complex128, 4)
	eleven[3] = 1
	if got := Expectation(zz, state(t, 2, eleven)); math.Abs(got-1) > 1e-12 {
		t.Errorf("ZZ on |11>: got %v, want 1", got)
	}
}

func TestEstimatorExact(t *testing.T) {
	e := &Estimator{}
	st := state(t, 1, []complex128{1, 0})
	got, err := e.Estimate(tZ, st)
	if err != nil {
		t.Fatal(err)
	}
	if got != 1 {
		t.Fatalf("got %v, want 1", got)
	}
}

func TestEstimatorSampling(t *testing.T) {
	//<Z> = cos(1) for the rotation state at parameter 1. With 1e5 shots
	//the estimate must land well within 0.02 of the exact value.
	theta := 1.0
	amp := []complex128{complex(math.Cos(theta/2), 0), complex(math.Sin(theta/2), 0)}
	st := state(t, 1, amp)
	e := &Estimator{Shots: 100000, Src: rand.NewSource(42)}
	got, err := e.Estimate(tZ, st)
	if err != nil {
		t.Fatal(err)
	}
	if want := math.Cos(theta); math.Abs(got-want) > 0.02 {
		t.Fatalf("sampled %v, exact %v", got, want)
	}
	//The identity pattern must estimate to exactly 1 regardless of shots.
	got, err = e.Estimate(pauli.Term{}, st)
	if err != nil {
		t.Fatal(err)
	}
	if got != 1 {
		t.Fatalf("identity estimated to %v", got)
	}
}

func TestEstimatorNeedsSource(t *testing.T) {
	e := &Estimator{Shots: 10}
	if _, err := e.Estimate(tZ, state(t, 1, []complex128{1, 0})); err == nil {
		t.Fatal("sampling without a source accepted")
	}
}

type alienState struct{}

func (alienState) Qubits() int { return 1 }

func TestEstimatorRejectsForeignStates(t *testing.T) {
	var st vqe.State = alienState{}
	e := &Estimator{}
	if _, err := e.Estimate(tZ, st); err == nil {
		t.Fatal("foreign state type accepted")
	}
}

func TestRotationAnsatz(t *testing.T) {
	a := RotationAnsatz{}
	st, err := a.Prepare([]float64{math.Pi})
	if err != nil {
		t.Fatal(err)
	}
	if got := Expectation(tZ, st.(*State)); math.Abs(got+1) > 1e-12 {
		t.Fatalf("<Z> at pi: got %v, want -1", got)
	}
	if _, err := a.Prepare([]float64{1, 2}); err == nil {
		t.Error("wrong arity accepted")
	}
}

func TestPairAnsatz(t *testing.T) {
	a := PairAnsatz{}
	st, err := a.Prepare([]float64{0})
	if err != nil {
		t.Fatal(err)
	}
	s := st.(*State)
	if s.Qubits() != 4 {
		t.Fatalf("prepared %d qubits, want 4", s.Qubits())
	}
	//At parameter 0 orbitals 0 and 2 are occupied: <Z0> = <Z2> = -1,
	//<Z1> = <Z3> = +1 (occupation flips the Z eigenvalue).
	for q, want := range map[int]float64{0: -1, 1: 1, 2: -1, 3: 1} {
		term := pauli.Term{Z: 1 << uint(q)}
		if got := Expectation(term, s); math.Abs(got-want) > 1e-12 {
			t.Errorf("<Z%d>: got %v, want %v", q, got, want)
		}
	}
	//Normalization holds at every parameter.
	st, err = a.Prepare([]float64{0.7})
	if err != nil {
		t.Fatal(err)
	}
	if got := Expectation(pauli.Term{}, st.(*State)); math.Abs(got-1) > 1e-12 {
		t.Fatalf("norm at 0.7: got %v, want 1", got)
	}
}
