/*
 * integrals_test.go, part of govqe.
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
	"bytes"
	"path/filepath"
	"reflect"
	"testing"
)

//samplePoint builds a 2-orbital point with non-trivial entries in both
//tensors, including an imaginary part, so the codecs cannot cheat.
func samplePoint() *Point {
	p := &Point{
		Distance:  0.735,
		Repulsion: 0.7199,
		OneBody: [][]complex128{
			{complex(-1.2524, 0), complex(0.1, 0.05)},
			{complex(0.1, -0.05), complex(-0.4759, 0)},
		},
	}
	n := 2
	p.TwoBody = make([][][][]complex128, n)
	for i := range p.TwoBody {
		p.TwoBody[i] = make([][][]complex128, n)
		for j := range p.TwoBody[i] {
			p.TwoBody[i][j] = make([][]complex128, n)
			for k := range p.TwoBody[i][j] {
				p.TwoBody[i][j][k] = make([]complex128, n)
			}
		}
	}
	p.TwoBody[0][1][1][0] = complex(0.6757, 0)
	p.TwoBody[1][0][0][1] = complex(0.6757, 0)
	p.TwoBody[0][0][1][1] = complex(0.1809, 0)
	return p
}

func TestJSONRoundtrip(t *testing.T) {
	p := samplePoint()
	var buf bytes.Buffer
	if err := WriteJSON(&buf, p); err != nil {
		t.Fatal(err)
	}
	got, err := ReadJSON(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, p) {
		t.Fatalf("roundtrip changed the point:\ngot  %+v\nwant %+v", got, p)
	}
}

func TestMsgpackRoundtrip(t *testing.T) {
	p := samplePoint()
	var buf bytes.Buffer
	if err := WriteMsgpack(&buf, p); err != nil {
		t.Fatal(err)
	}
	got, err := ReadMsgpack(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, p) {
		t.Fatalf("roundtrip changed the point:\ngot  %+v\nwant %+v", got, p)
	}
}

func TestNilTwoBodySurvivesCodecs(t *testing.T) {
	p := samplePoint()
	p.TwoBody = nil
	var buf bytes.Buffer
	if err := WriteJSON(&buf, p); err != nil {
		t.Fatal(err)
	}
	got, err := ReadJSON(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if got.TwoBody != nil {
		t.Fatalf("nil two-body tensor came back as %v", got.TwoBody)
	}
}

func TestFileRoundtrip(t *testing.T) {
	p := samplePoint()
	dir := t.TempDir()
	for _, name := range []string{"p.json", "p.mpk", "p.json.zst", "p.mpk.zst"} {
		path := filepath.Join(dir, name)
		if err := WriteFile(path, p); err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		got, err := ReadFile(path)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if !reflect.DeepEqual(got, p) {
			t.Errorf("%s: roundtrip changed the point", name)
		}
	}
}

func TestFileRejectsUnknownExtension(t *testing.T) {
	dir := t.TempDir()
	if err := WriteFile(filepath.Join(dir, "p.txt"), samplePoint()); err == nil {
		t.Error("unknown write extension accepted")
	}
	if _, err := ReadFile(filepath.Join(dir, "missing.json")); err == nil {
		t.Error("missing file read without error")
	}
}

func TestIsPointFile(t *testing.T) {
	cases := map[string]bool{
		"p.json":     true,
		"p.mpk":      true,
		"p.json.zst": true,
		"p.mpk.zst":  true,
		"p.txt":      false,
		"p.zst":      false,
		"curve.png":  false,
	}
	for name, want := range cases {
		if got := IsPointFile(name); got != want {
			t.Errorf("IsPointFile(%q) = %v, want %v", name, got, want)
		}
	}
}

func TestValidate(t *testing.T) {
	p := samplePoint()
	if err := p.Validate(); err != nil {
		t.Fatal(err)
	}
	if p.Orbitals() != 2 {
		t.Fatalf("got %d orbitals, want 2", p.Orbitals())
	}

	empty := &Point{}
	if err := empty.Validate(); err == nil {
		t.Error("empty point validated")
	}
	ragged := samplePoint()
	ragged.OneBody[1] = ragged.OneBody[1][:1]
	if err := ragged.Validate(); err == nil {
		t.Error("ragged one-body tensor validated")
	}
	mismatched := samplePoint()
	mismatched.TwoBody = mismatched.TwoBody[:1]
	if err := mismatched.Validate(); err == nil {
		t.Error("short two-body tensor validated")
	}
	inner := samplePoint()
	inner.TwoBody[1][1][0] = inner.TwoBody[1][1][0][:1]
	if err := inner.Validate(); err == nil {
		t.Error("ragged two-body tensor validated")
	}
}

func TestReadRejectsInvalidPayload(t *testing.T) {
	if _, err := ReadJSON(bytes.NewReader([]byte("{not json"))); err == nil {
		t.Error("malformed JSON accepted")
	}
	//Structurally valid JSON with a ragged tensor must fail validation.
	raw := []byte(`{"distance": 1, "repulsion_energy": 0, "one_body": [[[1,0],[0,0]],[[0,0]]]}`)
	if _, err := ReadJSON(bytes.NewReader(raw)); err == nil {
		t.Error("ragged decoded tensor accepted")
	}
}

func TestErrorDecoration(t *testing.T) {
	err := Error{"boom", nil, true}
	deco := err.Decorate("first")
	if len(deco) != 1 || deco[0] != "first" {
		t.Fatalf("decoration trail %v", deco)
	}
	if !err.Critical() {
		t.Error("critical flag lost")
	}
}
