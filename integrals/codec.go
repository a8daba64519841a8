/*
 * codec.go, part of govqe.
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

package integrals

import (
	"encoding/json"
	"io"

	"github.com/vmihailenco/msgpack/v5"
)

//Complex values travel as [re, im] pairs in both codecs; neither JSON nor
//msgpack has a native complex type.

type wirePoint struct {
	Distance  float64            `json:"distance" msgpack:"distance"`
	Repulsion float64            `json:"repulsion_energy" msgpack:"repulsion_energy"`
	OneBody   [][][2]float64     `json:"one_body" msgpack:"one_body"`
	TwoBody   [][][][][2]float64 `json:"two_body,omitempty" msgpack:"two_body,omitempty"`
}

func toWire(p *Point) *wirePoint {
	w := &wirePoint{Distance: p.Distance, Repulsion: p.Repulsion}
	w.OneBody = make([][][2]float64, len(p.OneBody))
	for i, row := range p.OneBody {
		w.OneBody[i] = make([][2]float64, len(row))
		for j, c := range row {
			w.OneBody[i][j] = [2]float64{real(c), imag(c)}
		}
	}
	if p.TwoBody == nil {
		return w
	}
	w.TwoBody = make([][][][][2]float64, len(p.TwoBody))
	for i := range p.TwoBody {
		w.TwoBody[i] = make([][][][2]float64, len(p.TwoBody[i]))
		for j := range p.TwoBody[i] {
			w.TwoBody[i][j] = make([][][2]float64, len(p.TwoBody[i][j]))
			for k := range p.TwoBody[i][j] {
				w.TwoBody[i][j][k] = make([][2]float64, len(p.TwoBody[i][j][k]))
				for l, c := range p.TwoBody[i][j][k] {
					w.TwoBody[i][j][k][l] = [2]float64{real(c), imag(c)}
				}
			}
		}
	}
	return w
}

func fromWire(w *wirePoint) *Point {
	p := &Point{Distance: w.Distance, Repulsion: w.Repulsion}
	p.OneBody = make([][]complex128, len(w.OneBody))
	for i, row := range w.OneBody {
		p.OneBody[i] = make([]complex128, len(row))
		for j, c := range row {
			p.OneBody[i][j] = complex(c[0], c[1])
		}
	}
	if w.TwoBody == nil {
		return p
	}
	p.TwoBody = make([][][][]complex128, len(w.TwoBody))
	for i := range w.TwoBody {
		p.TwoBody[i] = make([][][]complex128, len(w.TwoBody[i]))
		for j := range w.TwoBody[i] {
			p.TwoBody[i][j] = make([][]complex128, len(w.TwoBody[i][j]))
			for k := range w.TwoBody[i][j] {
				p.TwoBody[i][j][k] = make([]complex128, len(w.TwoBody[i][j][k]))
				for l, c := range w.TwoBody[i][j][k] {
					p.TwoBody[i][j][k][l] = complex(c[0], c[1])
				}
			}
		}
	}
	return p
}

//ReadJSON decodes one point from JSON and validates it.
func ReadJSON(r io.Reader) (*Point, error) {
	var w wirePoint
	if err := json.NewDecoder(r).Decode(&w); err != nil {
		return nil, Error{"decoding JSON point: " + err.Error(), []string{"ReadJSON"}, true}
	}
	p := fromWire(&w)
	if err := p.Validate(); err != nil {
		return nil, errDecorate(err, "ReadJSON")
	}
	return p, nil
}

//WriteJSON encodes the point as JSON.
func WriteJSON(w io.Writer, p *Point) error {
	if err := p.Validate(); err != nil {
		return errDecorate(err, "WriteJSON")
	}
	enc := json.NewEncoder(w)
	if err := enc.Encode(toWire(p)); err != nil {
		return Error{"encoding JSON point: " + err.Error(), []string{"WriteJSON"}, true}
	}
	return nil
}

//ReadMsgpack decodes one point from msgpack and validates it.
func ReadMsgpack(r io.Reader) (*Point, error) {
	var w wirePoint
	if err := msgpack.NewDecoder(r).Decode(&w); err != nil {
		return nil, Error{"decoding msgpack point: " + err.Error(), []string{"ReadMsgpack"}, true}
	}
	p := fromWire(&w)
	if err := p.Validate(); err != nil {
		return nil, errDecorate(err, "ReadMsgpack")
	}
	return p, nil
}

//WriteMsgpack encodes the point as msgpack.
func WriteMsgpack(w io.Writer, p *Point) error {
	if err := p.Validate(); err != nil {
		return errDecorate(err, "WriteMsgpack")
	}
	if err := msgpack.NewEncoder(w).Encode(toWire(p)); err != nil {
		return Error{"encoding msgpack point: " + err.Error(), []string{"WriteMsgpack"}, true}
	}
	return nil
}

//errDecorate adds the caller's name to the decoration trail of one of this
//package's errors. Any other error type panics.
func errDecorate(err error, caller string) error {
	err2 := err.(Error)
	err2.deco = append(err2.deco, caller)
	return err2
}
