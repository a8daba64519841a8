/*
 * main.go, part of govqe.
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

//Command dissoc computes a molecular dissociation curve from a directory of
//integral-point files: for every distance it builds the qubit Hamiltonian,
//diagonalizes it for the exact reference energy and runs the variational
//minimization, then writes the combined results as CSV and plots. Distance
//points are independent, so they are mapped over a small worker pool.
package main

import (
	"encoding/csv"
	"errors"
	"flag"
	"math/rand"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strconv"
	"sync"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	vqe "github.com/molsim/govqe"
	"github.com/molsim/govqe/curveplot"
	"github.com/molsim/govqe/fermi"
	"github.com/molsim/govqe/integrals"
	"github.com/molsim/govqe/pauli"
	"github.com/molsim/govqe/sim"
)

//maxAttempts bounds the retries of a variational run that failed with a
//transient backend error.
const maxAttempts = 3

type pointResult struct {
	distance  float64
	repulsion float64
	estimated float64
	exact     float64
}

func main() {
	//A .env file is optional; the environment only provides defaults that
	//flags can still override.
	_ = godotenv.Load()

	var (
		dataDir = flag.String("data", envStr("DISSOC_DATA", "."), "directory with integral-point files")
		outDir  = flag.String("out", envStr("DISSOC_OUT", "."), "directory for CSV and plot output")
		shots   = flag.Int("shots", envInt("DISSOC_SHOTS", 512), "samples per expectation estimate, 0 for exact")
		seed    = flag.Int64("seed", envInt64("DISSOC_SEED", 1), "base seed for the sampling noise")
		workers = flag.Int("workers", envInt("DISSOC_WORKERS", runtime.NumCPU()), "distance points processed in parallel")
		verbose = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	if !*verbose {
		log = log.Level(zerolog.InfoLevel)
	}
	vqe.SetLogger(log)

	points, names, err := loadPoints(*dataDir)
	if err != nil {
		log.Fatal().Err(err).Msg("loading integral points")
	}
	if len(points) == 0 {
		log.Fatal().Str("dir", *dataDir).Msg("no integral-point files found")
	}
	n := points[0].Orbitals()
	for i, p := range points {
		if p.Orbitals() != n {
			log.Fatal().Str("file", names[i]).Int("orbitals", p.Orbitals()).Int("want", n).
				Msg("inconsistent orbital count across points")
		}
	}
	log.Info().Int("points", len(points)).Int("orbitals", n).Msg("loaded dissociation grid")

	//The ladder operators depend only on the orbital count and are
	//immutable, so all workers share one set.
	annihilators := fermi.Annihilators(n)
	creators := fermi.Creators(annihilators)

	results := make([]pointResult, len(points))
	errs := make([]error, len(points))
	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < max(1, *workers); w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				results[idx], errs[idx] = solvePoint(points[idx], annihilators, creators, *shots, *seed+int64(idx), log.With().Str("file", names[idx]).Logger())
			}
		}()
	}
	for i := range points {
		jobs <- i
	}
	close(jobs)
	wg.Wait()
	for i, err := range errs {
		if err != nil {
			log.Fatal().Err(err).Str("file", names[i]).Msg("distance point failed")
		}
	}

	sort.Slice(results, func(i, j int) bool { return results[i].distance < results[j].distance })
	if err := report(results, *outDir, log); err != nil {
		log.Fatal().Err(err).Msg("writing results")
	}
}

//solvePoint runs the full pipeline for one distance point: Hamiltonian
//assembly, exact reference, variational minimization. Transient backend
//failures are retried a bounded number of times; algebraic errors abort at
//once.
func solvePoint(p *integrals.Point, annihilators, creators []*pauli.Sum, shots int, seed int64, log zerolog.Logger) (pointResult, error) {
	h, err := vqe.BuildHamiltonian(p.OneBody, p.TwoBody, annihilators, creators)
	if err != nil {
		return pointResult{}, err
	}
	exact, err := vqe.MinimalEigenvalue(h)
	if err != nil {
		return pointResult{}, err
	}
	opt := &vqe.Optimizer{
		Ansatz: sim.PairAnsatz{},
		Estimator: &sim.Estimator{
			Shots: shots,
			Src:   rand.NewSource(seed),
		},
		Concurrency: 2,
	}
	var res *vqe.Result
	for attempt := 1; ; attempt++ {
		res, err = opt.Minimize(h, []float64{0})
		if err == nil {
			break
		}
		var eerr *vqe.ExecutionError
		if !errors.As(err, &eerr) || attempt == maxAttempts {
			return pointResult{}, err
		}
		log.Warn().Err(err).Int("attempt", attempt).Msg("retrying variational run")
	}
	log.Info().
		Float64("distance", p.Distance).
		Float64("estimated", res.F).
		Float64("exact", exact).
		Int("evaluations", res.Evaluations).
		Msg("distance point done")
	return pointResult{distance: p.Distance, repulsion: p.Repulsion, estimated: res.F, exact: exact}, nil
}

//report writes the curve CSV, both plots and the MSE between the curves.
func report(results []pointResult, outDir string, log zerolog.Logger) error {
	distances := make([]float64, len(results))
	repulsions := make([]float64, len(results))
	estimated := make([]float64, len(results))
	exact := make([]float64, len(results))
	for i, r := range results {
		distances[i] = r.distance
		repulsions[i] = r.repulsion
		estimated[i] = r.estimated
		exact[i] = r.exact
	}
	estCurve, err := curveplot.AddRepulsion(estimated, repulsions)
	if err != nil {
		return err
	}
	exactCurve, err := curveplot.AddRepulsion(exact, repulsions)
	if err != nil {
		return err
	}

	f, err := os.Create(filepath.Join(outDir, "curve.csv"))
	if err != nil {
		return err
	}
	defer f.Close()
	w := csv.NewWriter(f)
	if err := w.Write([]string{"distance", "estimated", "exact", "repulsion"}); err != nil {
		return err
	}
	for i := range results {
		rec := []string{
			strconv.FormatFloat(distances[i], 'g', -1, 64),
			strconv.FormatFloat(estCurve[i], 'g', -1, 64),
			strconv.FormatFloat(exactCurve[i], 'g', -1, 64),
			strconv.FormatFloat(repulsions[i], 'g', -1, 64),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}

	series := []curveplot.Series{
		{Name: "estimated", Energies: estCurve},
		{Name: "exact", Energies: exactCurve},
	}
	if err := curveplot.Save(distances, series, "Dissociation curve", filepath.Join(outDir, "curve.png")); err != nil {
		return err
	}
	mse, err := curveplot.MSE(estCurve, exactCurve)
	if err != nil {
		return err
	}
	minEst, minExact := estCurve[0], exactCurve[0]
	for i := range estCurve {
		if estCurve[i] < minEst {
			minEst = estCurve[i]
		}
		if exactCurve[i] < minExact {
			minExact = exactCurve[i]
		}
	}
	log.Info().
		Float64("mse", mse).
		Float64("minimal_energy", minEst).
		Float64("minimal_exact_energy", minExact).
		Msg("dissociation curve written")
	return nil
}

//loadPoints reads every integral-point file in dir, returning the points
//and their file names in matching order.
func loadPoints(dir string) ([]*integrals.Point, []string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, nil, err
	}
	var (
		points []*integrals.Point
		names  []string
	)
	for _, e := range entries {
		if e.IsDir() || !integrals.IsPointFile(e.Name()) {
			continue
		}
		p, err := integrals.ReadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, nil, err
		}
		points = append(points, p)
		names = append(names, e.Name())
	}
	return points, names, nil
}

func envStr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func envInt64(key string, def int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return def
}
