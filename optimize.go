/*
 * optimize.go, part of govqe.
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
	"math"
	"sync"

	"github.com/molsim/govqe/pauli"
	"gonum.org/v1/gonum/optimize"
)

//Default bounds and tolerances of the variational minimization.
const (
	DefaultMaxEvaluations = 4000
	defaultImagTol        = 1e-6
	convergeAbsTol        = 1e-10
	convergeIterations    = 60
)

//Optimizer drives a derivative-free minimization of a Hamiltonian
//expectation value over the states an Ansatz can prepare. The estimation of
//individual Pauli terms is delegated to the Estimator, which may be a local
//simulator or a remote backend.
type Optimizer struct {
	Ansatz    Ansatz
	Estimator Estimator

	//MaxEvaluations bounds the number of cost-function evaluations;
	//zero means DefaultMaxEvaluations.
	MaxEvaluations int

	//Concurrency is the number of goroutines estimating Pauli terms of a
	//single cost evaluation. Zero or one means sequential estimation.
	//Estimates are summed in term order regardless, so the result does
	//not depend on scheduling.
	Concurrency int

	//ImagTol is the largest imaginary residue tolerated silently in the
	//cost aggregate; larger residues are logged and discarded. Zero means
	//the package default.
	ImagTol float64
}

//Result is the outcome of a variational minimization.
type Result struct {
	//X is the parameter vector at the minimum found.
	X []float64
	//F is the minimal cost, i.e. the estimated ground-state energy.
	F float64
	//Evaluations counts cost-function evaluations spent.
	Evaluations int
	//Iterations counts major iterations of the minimizer.
	Iterations int
	//Status is the minimizer's convergence status.
	Status optimize.Status
}

//costFailure records the first backend failure seen during a minimization.
//The minimizer may evaluate the cost on goroutines of its own, so the record
//is mutex-guarded and the cost function keeps returning NaN once a failure
//is stored, which starves the simplex until the minimizer gives up.
type costFailure struct {
	mu  sync.Mutex
	err error
}

func (c *costFailure) set(err error) {
	c.mu.Lock()
	if c.err == nil {
		c.err = err
	}
	c.mu.Unlock()
}

func (c *costFailure) get() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}

//Minimize searches for parameters minimizing the expectation value of h
//over the ansatz states, starting from x0, with a Nelder-Mead simplex
//search. No gradients are used or assumed.
//
//Backend failures abort the search and are returned as *ExecutionError so
//callers can distinguish them from algebraic errors and retry; no default
//value is ever substituted for a failed estimate.
func (o *Optimizer) Minimize(h *pauli.Sum, x0 []float64) (*Result, error) {
	if o.Ansatz == nil || o.Estimator == nil {
		return nil, Error{"optimizer needs both an ansatz and an estimator", []string{"Minimize"}, true}
	}
	if h.Qubits() != o.Ansatz.Qubits() {
		return nil, Error{fmt.Sprintf("hamiltonian spans %d qubits but the ansatz prepares %d-qubit states", h.Qubits(), o.Ansatz.Qubits()), []string{"Minimize"}, true}
	}
	if len(x0) != o.Ansatz.Params() {
		return nil, Error{fmt.Sprintf("got %d initial parameters, ansatz takes %d", len(x0), o.Ansatz.Params()), []string{"Minimize"}, true}
	}
	terms, coeffs := h.Simplify().Terms()

	var failure costFailure
	problem := optimize.Problem{
		Func: func(x []float64) float64 {
			if failure.get() != nil {
				return math.NaN()
			}
			v, cerr := o.cost(terms, coeffs, x)
			if cerr != nil {
				failure.set(cerr)
				return math.NaN()
			}
			return v
		},
	}
	maxEval := o.MaxEvaluations
	if maxEval <= 0 {
		maxEval = DefaultMaxEvaluations
	}
	settings := &optimize.Settings{
		FuncEvaluations: maxEval,
		Converger: &optimize.FunctionConverge{
			Absolute:   convergeAbsTol,
			Iterations: convergeIterations,
		},
	}
	start := make([]float64, len(x0))
	copy(start, x0)
	r, oerr := optimize.Minimize(problem, start, settings, &optimize.NelderMead{})
	//A stored backend failure outranks whatever the minimizer made of the
	//NaNs it was fed after the failure.
	if err := failure.get(); err != nil {
		return nil, err
	}
	if oerr != nil {
		return nil, &ExecutionError{Op: "minimize", Err: oerr}
	}
	return &Result{
		X:           r.X,
		F:           r.F,
		Evaluations: r.Stats.FuncEvaluations,
		Iterations:  r.Stats.MajorIterations,
		Status:      r.Status,
	}, nil
}

//cost prepares the state for x, estimates every distinct Pauli term of the
//Hamiltonian against it and aggregates sum(coeff*estimate). The aggregate of
//a Hermitian operator must be real up to estimator noise; a larger imaginary
//residue is logged as a tolerance warning and the real part returned.
func (o *Optimizer) cost(terms []pauli.Term, coeffs []complex128, x []float64) (float64, error) {
	st, err := o.Ansatz.Prepare(x)
	if err != nil {
		return 0, &ExecutionError{Op: "prepare", Err: err}
	}
	estimates := make([]float64, len(terms))
	if o.Concurrency > 1 {
		err = o.estimateConcurrent(terms, st, estimates)
	} else {
		for i, t := range terms {
			if estimates[i], err = o.Estimator.Estimate(t, st); err != nil {
				break
			}
		}
	}
	if err != nil {
		if _, ok := err.(*ExecutionError); ok {
			return 0, err
		}
		return 0, &ExecutionError{Op: "estimate", Err: err}
	}
	var acc complex128
	for i := range terms {
		acc += coeffs[i] * complex(estimates[i], 0)
	}
	imagTol := o.ImagTol
	if imagTol == 0 {
		imagTol = defaultImagTol
	}
	if residue := math.Abs(imag(acc)); residue > imagTol*math.Max(1, math.Abs(real(acc))) {
		logger.Warn().
			Float64("residue", residue).
			Float64("cost", real(acc)).
			Msg("cost aggregate carries imaginary residue")
	}
	return real(acc), nil
}

//estimateConcurrent fans the per-term estimates of one cost evaluation out
//over Concurrency goroutines. Results land in their slot of out, so the
//later aggregation is order-independent; the first failure wins and the
//remaining work is not awaited beyond the fan-in.
func (o *Optimizer) estimateConcurrent(terms []pauli.Term, st State, out []float64) error {
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	jobs := make(chan int)
	for w := 0; w < o.Concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				v, err := o.Estimator.Estimate(terms[i], st)
				if err != nil {
					mu.Lock()
					if firstErr == nil {
						firstErr = err
					}
					mu.Unlock()
					continue
				}
				out[i] = v
			}
		}()
	}
	for i := range terms {
		jobs <- i
	}
	close(jobs)
	wg.Wait()
	return firstErr
}
