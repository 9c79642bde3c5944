/*
 * vectors.go, part of bondangles.
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
	"fmt"

	v3 "github.com/rmera/bondangles/v3"
	"gonum.org/v1/gonum/mat"
)

//BondVectors returns a matrix where the ith vector is the vector of the
//ith bond, i.e. positions[head]-positions[tail]. If cell is not nil, its
//columns are the cell vectors, and cell·shift is added to the vector
//of each bond. Returns nil if there are no bonds.
//The particle indexes in bonds are not checked, an out-of-range
//one will cause a panic.
func BondVectors(positions *v3.Matrix, bonds Bonds, cell mat.Matrix) *v3.Matrix {
	if len(bonds) == 0 {
		return nil
	}
	if cell != nil {
		if r, c := cell.Dims(); r != 3 || c != 3 {
			panic(v3.ErrShape)
		}
	}
	vecs := v3.Zeros(len(bonds))
	for i, b := range bonds {
		v := vecs.VecView(i)
		v.Sub(positions.VecView(b.Head).Dense, positions.VecView(b.Tail).Dense)
		if cell == nil || !b.Periodic() {
			continue
		}
		for r := 0; r < 3; r++ {
			var s float64
			for k := 0; k < 3; k++ {
				s += cell.At(r, k) * float64(b.Shift[k])
			}
			v.Set(0, r, v.At(0, r)+s)
		}
	}
	return vecs
}

//Oriented returns a new vector with the vector v of bond b, pointing away
//from the particle from. v itself is never modified.
//from has to be one of the ends of b, otherwise, Oriented panics.
func Oriented(v *v3.Matrix, b *Bond, from int) *v3.Matrix {
	ret := v3.Zeros(1)
	ret.Copy(v.Dense)
	switch from {
	case b.Tail:
	case b.Head:
		ret.Scale(-1, ret.Dense)
	default:
		panic(fmt.Sprintf("Oriented: particle %d is not an end of bond %d (%d-%d)", from, b.Index, b.Tail, b.Head))
	}
	return ret
}
