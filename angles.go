/*
 * angles.go, part of bondangles.
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
	"math"

	v3 "github.com/rmera/bondangles/v3"
)

//DegenerateTol is the default norm at or below which a bond vector is
//considered degenerate.
const DegenerateTol = 1e-8

//AnglePair is the angle between two bonds incident to the same particle.
//Bonds holds the bond indexes, in enumeration order, and Triplet the particles
//(neighbor of Bonds[0], center, neighbor of Bonds[1]). Angle is in degrees.
type AnglePair struct {
	Bonds   [2]int
	Triplet [3]int
	Angle   float64
}

//Center returns the particle at the vertex of the angle.
func (A AnglePair) Center() int {
	return A.Triplet[1]
}

//Enumerate returns the angles formed by every pair of bonds incident to the particle center.
//adj has to be built from bonds, and vectors has to contain the vector for each bond, as returned
//by BondVectors. The pairs are returned in the order of the combinations, taken 2 at a time, of the
//bonds incident to center, in the order given by adj.
//tol, if given, replaces DegenerateTol.
//Fails with ErrInsufficientBonds if center has less than 2 bonds, and with ErrDegenerateBond if
//one of its bonds has a (near) zero length.
func Enumerate(center int, adj *AdjacencyIndex, bonds Bonds, vectors *v3.Matrix, tol ...float64) ([]AnglePair, error) {
	incident := adj.BondsOf(center)
	if len(incident) < 2 {
		return nil, newCError(ErrInsufficientBonds, center, -1, "particle %d has %d bond(s)", center, len(incident))
	}
	degtol := DegenerateTol
	if len(tol) > 0 {
		degtol = math.Max(tol[0], appzero)
	}
	//We orient and normalize each incident bond only once, then
	//just combine the unit vectors.
	units := make([]*v3.Matrix, len(incident))
	neighbors := make([]int, len(incident))
	for k, bi := range incident {
		b := bonds[bi]
		o := Oriented(vectors.VecView(bi), b, center)
		if o.Norm(2) <= degtol {
			return nil, newCError(ErrDegenerateBond, center, bi, "bond %d (%d-%d) has length %g", bi, b.Tail, b.Head, o.Norm(2))
		}
		o.Unit(o)
		units[k] = o
		neighbors[k] = b.Cross(center)
	}
	ret := make([]AnglePair, 0, Combinations(len(incident)))
	for i := 0; i < len(incident); i++ {
		for j := i + 1; j < len(incident); j++ {
			ret = append(ret, AnglePair{
				Bonds:   [2]int{incident[i], incident[j]},
				Triplet: [3]int{neighbors[i], center, neighbors[j]},
				Angle:   Rad2Deg(UnitAngle(units[i], units[j])),
			})
		}
	}
	return ret, nil
}

//Combinations returns the number of unordered pairs that can be formed with k elements.
func Combinations(k int) int {
	if k < 2 {
		return 0
	}
	return k * (k - 1) / 2
}
