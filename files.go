/*
 * files.go, part of bondangles.
 *
 * Copyright 2026 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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

package angles

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	v3 "github.com/rmera/bondangles/v3"
	"gonum.org/v1/gonum/mat"
)

//OpenSource opens the file fname for reading. Files ending in .gz
//or .zst are transparently decompressed.
func OpenSource(fname string) (io.ReadCloser, error) {
	f, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	switch {
	case strings.HasSuffix(fname, ".gz"):
		z, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, newCError(ErrFileFormat, -1, -1, "%s: %s", fname, err.Error())
		}
		return &closers{Reader: z, close: []func() error{z.Close, f.Close}}, nil
	case strings.HasSuffix(fname, ".zst"):
		z, err := zstd.NewReader(f)
		if err != nil {
			f.Close()
			return nil, newCError(ErrFileFormat, -1, -1, "%s: %s", fname, err.Error())
		}
		//*zstd.Decoder's Close doesn't return an error.
		zclose := func() error { z.Close(); return nil }
		return &closers{Reader: z, close: []func() error{zclose, f.Close}}, nil
	}
	return f, nil
}

//closers is a ReadCloser that closes a decompressor and the file under it.
type closers struct {
	io.Reader
	close []func() error
}

func (c *closers) Close() error {
	var ret error
	for _, f := range c.close {
		if err := f(); err != nil && ret == nil {
			ret = err
		}
	}
	return ret
}

//TrimCompression returns fname without a .gz or .zst extension.
func TrimCompression(fname string) string {
	return strings.TrimSuffix(strings.TrimSuffix(fname, ".gz"), ".zst")
}

//XYZRead reads the first frame of the (extended) xyz file fname. The returned
//System has positions and element symbols, and, if the comment line has
//a Lattice="ax ay az bx by bz cx cy cz" key, a cell. It has no bonds.
func XYZRead(fname string) (*System, error) {
	f, err := OpenSource(fname)
	if err != nil {
		return nil, errDecorate(err, "XYZRead")
	}
	defer f.Close()
	S, err := XYZReadFrom(f)
	if err != nil {
		return nil, errDecorate(err, "XYZRead "+fname)
	}
	return S, nil
}

//XYZReadFrom is like XYZRead, but reads from in.
//If every particle line carries a fifth, integer, field, those are taken as the
//particle identifiers.
func XYZReadFrom(in io.Reader) (*System, error) {
	xyz := bufio.NewScanner(in)
	if !xyz.Scan() {
		return nil, newCError(ErrFileFormat, -1, -1, "empty xyz file")
	}
	natoms, err := strconv.Atoi(strings.TrimSpace(xyz.Text()))
	if err != nil || natoms <= 0 {
		return nil, newCError(ErrFileFormat, -1, -1, "first line should be a positive number of atoms, not %q", xyz.Text())
	}
	if !xyz.Scan() {
		return nil, newCError(ErrFileFormat, -1, -1, "no comment line")
	}
	cell, err := parseLattice(xyz.Text())
	if err != nil {
		return nil, err
	}
	symbols := make([]string, natoms)
	coords := make([]float64, natoms*3)
	ids := make([]int, natoms)
	hasids := true
	for i := 0; i < natoms; i++ {
		if !xyz.Scan() {
			return nil, newCError(ErrFileFormat, i, -1, "expected %d atoms, found %d", natoms, i)
		}
		fields := strings.Fields(xyz.Text())
		if len(fields) < 4 {
			return nil, newCError(ErrFileFormat, i, -1, "line for atom %d ill formed: %q", i, xyz.Text())
		}
		symbols[i] = fields[0]
		for j := 0; j < 3; j++ {
			coords[i*3+j], err = strconv.ParseFloat(fields[j+1], 64)
			if err != nil {
				return nil, newCError(ErrFileFormat, i, -1, "coordinate %d of atom %d: %s", j, i, err.Error())
			}
		}
		if len(fields) < 5 {
			hasids = false
			continue
		}
		if ids[i], err = strconv.Atoi(fields[4]); err != nil {
			hasids = false
		}
	}
	if err := xyz.Err(); err != nil {
		return nil, err
	}
	pos, err := v3.NewMatrix(coords)
	if err != nil {
		return nil, err
	}
	S := &System{Positions: pos, Symbols: symbols, Cell: cell}
	if hasids {
		S.ParticleIDs = ids
	}
	return S, nil
}

//parseLattice returns the cell in an extended xyz comment line, with the lattice
//vectors as columns, or nil if there is none.
func parseLattice(comment string) (*mat.Dense, error) {
	i := strings.Index(comment, `Lattice="`)
	if i < 0 {
		return nil, nil
	}
	rest := comment[i+len(`Lattice="`):]
	end := strings.Index(rest, `"`)
	if end < 0 {
		return nil, newCError(ErrFileFormat, -1, -1, "unterminated Lattice key")
	}
	fields := strings.Fields(rest[:end])
	if len(fields) != 9 {
		return nil, newCError(ErrFileFormat, -1, -1, "Lattice needs 9 numbers, got %d", len(fields))
	}
	cell := mat.NewDense(3, 3, nil)
	for k, v := range fields {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, newCError(ErrFileFormat, -1, -1, "Lattice: %s", err.Error())
		}
		//k/3 is the lattice vector, k%3 its component.
		cell.Set(k%3, k/3, f)
	}
	return cell, nil
}
