/*
 * adjacency.go, part of bondangles.
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

import "sort"

//AdjacencyIndex maps each particle index to the indexes of the bonds
//incident to it, in ascending bond order. It is read-only once built,
//so it can be shared among goroutines, but it must not outlive the
//topology it was built from.
type AdjacencyIndex struct {
	bonds map[int][]int
	nbond int
}

//BuildAdjacency builds the adjacency index for the topology bonds.
//It does not check that the particle indexes are valid.
func BuildAdjacency(bonds Bonds) *AdjacencyIndex {
	A := &AdjacencyIndex{bonds: make(map[int][]int), nbond: len(bonds)}
	for i, b := range bonds {
		A.bonds[b.Tail] = append(A.bonds[b.Tail], i)
		A.bonds[b.Head] = append(A.bonds[b.Head], i)
	}
	return A
}

//BondsOf returns the indexes of the bonds incident to the particle p.
//The slice is empty, not nil, for isolated particles, and must not be modified.
func (A *AdjacencyIndex) BondsOf(p int) []int {
	if b, ok := A.bonds[p]; ok {
		return b
	}
	return []int{}
}

//Degree returns the number of bonds incident to p.
func (A *AdjacencyIndex) Degree(p int) int {
	return len(A.bonds[p])
}

//Particles returns, in ascending order, the particles with at least one bond.
func (A *AdjacencyIndex) Particles() []int {
	ret := make([]int, 0, len(A.bonds))
	for p := range A.bonds {
		ret = append(ret, p)
	}
	sort.Ints(ret)
	return ret
}

//NBonds returns the number of bonds in the topology the index was built from.
func (A *AdjacencyIndex) NBonds() int {
	return A.nbond
}
