/*
 * bonds.go, part of bondangles.
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
	"math"
	"sort"

	v3 "github.com/rmera/bondangles/v3"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

//constants from DOI:10.1186/1758-2946-3-33
const (
	tooclose = 0.63
	BondTol  = 0.45
)

//Bond is a directed record of two particle indexes, representing an undirected
//connection. The vector of the bond goes from Tail to Head. Shift is the number of
//cell vectors that have to be added to that vector when the bond crosses a periodic
//boundary.
type Bond struct {
	Index int
	Tail  int
	Head  int
	Shift [3]int
}

//Cross returns the index of the particle at the other end of the bond.
func (B *Bond) Cross(origin int) int {
	if origin == B.Tail {
		return B.Head
	}
	if origin == B.Head {
		return B.Tail
	}
	panic(fmt.Sprintf("Trying to cross bond %d: The origin particle %d is not present in the bond!", B.Index, origin)) //this is a programming error, so a panic is warranted.
}

//Periodic returns true if the bond crosses a periodic boundary.
func (B *Bond) Periodic() bool {
	return B.Shift != [3]int{}
}

//Bonds is the bond topology of a system. The Index of each
//bond is its position in the slice.
type Bonds []*Bond

func (B Bonds) Len() int {
	return len(B)
}

//Pairs returns the (tail, head) pairs of the topology.
func (B Bonds) Pairs() [][2]int {
	ret := make([][2]int, len(B))
	for i, b := range B {
		ret[i] = [2]int{b.Tail, b.Head}
	}
	return ret
}

//NewBonds builds a topology from (tail, head) pairs and, optionally, a periodic
//shift for each bond. An empty shifts means no bond is periodic. It only checks
//that the pairs are not self bonds and that there are as many shifts as pairs.
func NewBonds(pairs [][2]int, shifts [][3]int) (Bonds, error) {
	if len(shifts) == 0 {
		shifts = nil
	}
	if shifts != nil && len(shifts) != len(pairs) {
		return nil, newCError(ErrInvalidBond, -1, -1, "%d periodic shifts given for %d bonds", len(shifts), len(pairs))
	}
	ret := make(Bonds, 0, len(pairs))
	for i, p := range pairs {
		if p[0] == p[1] {
			return nil, newCError(ErrInvalidBond, p[0], i, "bond %d links particle %d to itself", i, p[0])
		}
		b := &Bond{Index: i, Tail: p[0], Head: p[1]}
		if shifts != nil {
			b.Shift = shifts[i]
		}
		ret = append(ret, b)
	}
	return ret, nil
}

//AssignBonds assigns bonds to a set of particles based on a simple distance
//criterium, similar to that described in DOI:10.1186/1758-2946-3-33.
//symbols gives the element of each particle. If cell is not nil, its columns are taken
//as the cell vectors, and bonds are searched between minimum images, with the corresponding
//periodic shift set. tol is added to the sum of the covalent radii; if negative, BondTol is used.
func AssignBonds(coord *v3.Matrix, symbols []string, cell mat.Matrix, tol float64) (Bonds, error) {
	//might get slow for large systems, it's O(N^2).
	tot := coord.NVecs()
	if len(symbols) != tot {
		return nil, newCError(ErrInvalidParticle, -1, -1, "%d symbols given for %d particles", len(symbols), tot)
	}
	if tol < 0 {
		tol = BondTol
	}
	var inv *mat.Dense
	if cell != nil {
		inv = mat.NewDense(3, 3, nil)
		if err := inv.Inverse(cell); err != nil {
			return nil, newCError(ErrInvalidBond, -1, -1, "can't invert cell matrix: %v", err)
		}
	}
	covs := make([]float64, tot)
	for i, s := range symbols {
		c, ok := CovalentRadius(s)
		if !ok {
			return nil, newCError(ErrInvalidParticle, i, -1, "couldn't find the covalent radius for %s %d", s, i)
		}
		covs[i] = c
	}
	type candidate struct {
		Bond
		dist    float64
		removed bool
	}
	cands := make([]*candidate, 0, tot)
	perparticle := make([][]*candidate, tot)
	d := make([]float64, 3)
	pi := make([]float64, 3)
	pj := make([]float64, 3)
	for i := 0; i < tot; i++ {
		coord.Vec(pi, i)
		for j := i + 1; j < tot; j++ {
			coord.Vec(pj, j)
			floats.SubTo(d, pj, pi)
			var shift [3]int
			if inv != nil {
				shift = MinimumImage(d, cell, inv)
			}
			dist := math.Sqrt(d[0]*d[0] + d[1]*d[1] + d[2]*d[2])
			if dist < covs[i]+covs[j]+tol && dist > tooclose {
				c := &candidate{Bond: Bond{Tail: i, Head: j, Shift: shift}, dist: dist}
				cands = append(cands, c)
				perparticle[i] = append(perparticle[i], c)
				perparticle[j] = append(perparticle[j], c)
			}
		}
	}
	//Now we check that no atom has too many bonds, removing the longest ones.
	for i := 0; i < tot; i++ {
		maxb := symbolMaxBonds[normalizeSymbol(symbols[i])]
		if maxb == 0 { //means there is not a specified number of bonds for this atom.
			continue
		}
		left := make([]*candidate, 0, len(perparticle[i]))
		for _, c := range perparticle[i] {
			if !c.removed {
				left = append(left, c)
			}
		}
		sort.SliceStable(left, func(a, b int) bool { return left[a].dist < left[b].dist })
		for k := maxb; k < len(left); k++ {
			left[k].removed = true
		}
	}
	bonds := make(Bonds, 0, len(cands))
	for _, c := range cands {
		if c.removed {
			continue
		}
		b := c.Bond
		b.Index = len(bonds)
		bonds = append(bonds, &b)
	}
	return bonds, nil
}

//MinimumImage replaces the vector d by its minimum image under the cell, whose columns
//are the cell vectors, and returns the shift, in cell vectors, that was added to it.
//inv is the inverse of cell.
func MinimumImage(d []float64, cell, inv mat.Matrix) [3]int {
	var shift [3]int
	for k := 0; k < 3; k++ {
		frac := inv.At(k, 0)*d[0] + inv.At(k, 1)*d[1] + inv.At(k, 2)*d[2]
		shift[k] = -int(math.Round(frac))
	}
	for r := 0; r < 3; r++ {
		for k := 0; k < 3; k++ {
			d[r] += cell.At(r, k) * float64(shift[k])
		}
	}
	return shift
}
