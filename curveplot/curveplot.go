/*
 * curveplot.go, part of govqe.
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

//Package curveplot renders dissociation curves (molecular energy against
//interatomic distance) and computes the error metrics between the estimated
//and the exact curve.
package curveplot

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

//Series is one named curve sampled at the shared distance grid.
type Series struct {
	Name     string
	Energies []float64
}

//AddRepulsion returns the molecular energies, i.e. the electronic energies
//plus the nuclear repulsion of each distance point.
func AddRepulsion(electronic, repulsion []float64) ([]float64, error) {
	if len(electronic) != len(repulsion) {
		return nil, fmt.Errorf("govqe/curveplot: %d electronic energies but %d repulsion energies", len(electronic), len(repulsion))
	}
	total := make([]float64, len(electronic))
	for i := range electronic {
		total[i] = electronic[i] + repulsion[i]
	}
	return total, nil
}

//MSE returns the mean squared error between an estimated curve and its
//reference.
func MSE(estimated, exact []float64) (float64, error) {
	if len(estimated) != len(exact) {
		return 0, fmt.Errorf("govqe/curveplot: curves have %d and %d points", len(estimated), len(exact))
	}
	sq := make([]float64, len(estimated))
	for i := range estimated {
		d := estimated[i] - exact[i]
		sq[i] = d * d
	}
	return stat.Mean(sq, nil), nil
}

//Save plots the given series over the distance grid and writes the plot as
//a PNG to filename.
func Save(distances []float64, series []Series, title, filename string) error {
	if len(series) == 0 {
		return fmt.Errorf("govqe/curveplot: nothing to plot")
	}
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Distance (angstrom)"
	p.Y.Label.Text = "Energy (hartree)"
	p.Add(plotter.NewGrid())

	args := make([]interface{}, 0, 2*len(series))
	for _, s := range series {
		if len(s.Energies) != len(distances) {
			return fmt.Errorf("govqe/curveplot: series %q has %d points for %d distances", s.Name, len(s.Energies), len(distances))
		}
		xys := make(plotter.XYs, len(distances))
		for i := range distances {
			xys[i].X = distances[i]
			xys[i].Y = s.Energies[i]
		}
		args = append(args, s.Name, xys)
	}
	if err := plotutil.AddLinePoints(p, args...); err != nil {
		return err
	}
	return p.Save(6*vg.Inch, 4*vg.Inch, filename)
}
