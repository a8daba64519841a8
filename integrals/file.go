/*
 * file.go, part of govqe.
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
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
)

//Recognized file layouts: point.json, point.mpk, and either with a
//trailing .zst for zstd compression.

//IsPointFile reports whether name looks like an integral-point file this
//package can read.
func IsPointFile(name string) bool {
	base := strings.TrimSuffix(name, ".zst")
	return strings.HasSuffix(base, ".json") || strings.HasSuffix(base, ".mpk")
}

//ReadFile reads one point from path, picking codec and compression from the
//extension.
func ReadFile(path string) (*Point, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Error{err.Error(), []string{"ReadFile"}, true}
	}
	defer f.Close()

	var r io.Reader = f
	base := path
	if strings.HasSuffix(base, ".zst") {
		dec, err := zstd.NewReader(f)
		if err != nil {
			return nil, Error{"opening zstd stream: " + err.Error(), []string{"ReadFile"}, true}
		}
		defer dec.Close()
		r = dec
		base = strings.TrimSuffix(base, ".zst")
	}
	switch {
	case strings.HasSuffix(base, ".json"):
		p, err := ReadJSON(r)
		if err != nil {
			return nil, errDecorate(err, "ReadFile: "+path)
		}
		return p, nil
	case strings.HasSuffix(base, ".mpk"):
		p, err := ReadMsgpack(r)
		if err != nil {
			return nil, errDecorate(err, "ReadFile: "+path)
		}
		return p, nil
	}
	return nil, Error{"unrecognized integral file extension: " + path, []string{"ReadFile"}, true}
}

//WriteFile writes one point to path, picking codec and compression from the
//extension like ReadFile does.
func WriteFile(path string, p *Point) error {
	f, err := os.Create(path)
	if err != nil {
		return Error{err.Error(), []string{"WriteFile"}, true}
	}
	defer f.Close()

	var w io.Writer = f
	base := path
	var zw *zstd.Encoder
	if strings.HasSuffix(base, ".zst") {
		zw, err = zstd.NewWriter(f)
		if err != nil {
			return Error{"opening zstd stream: " + err.Error(), []string{"WriteFile"}, true}
		}
		w = zw
		base = strings.TrimSuffix(base, ".zst")
	}
	switch {
	case strings.HasSuffix(base, ".json"):
		err = WriteJSON(w, p)
	case strings.HasSuffix(base, ".mpk"):
		err = WriteMsgpack(w, p)
	default:
		err = Error{"unrecognized integral file extension: " + path, []string{"WriteFile"}, true}
	}
	if zw != nil {
		if cerr := zw.Close(); cerr != nil && err == nil {
			err = Error{"closing zstd stream: " + cerr.Error(), []string{"WriteFile"}, true}
		}
	}
	if err != nil {
		return err
	}
	return f.Close()
}
