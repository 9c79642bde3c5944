/*
 * system.go, part of bondangles.
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
	"runtime"
	"sync"

	v3 "github.com/rmera/bondangles/v3"
	"gonum.org/v1/gonum/mat"
)

//System is a snapshot of everything needed to compute bond angles: particle positions,
//the bond topology and, optionally, the cell (its columns are the cell vectors),
//particle and bond identifiers, and element symbols.
//A System is not modified by any of its methods, so it can be used concurrently
//as long as nobody changes its fields.
type System struct {
	Positions   *v3.Matrix
	Bonds       Bonds
	Cell        *mat.Dense
	ParticleIDs []int
	BondIDs     []int
	Symbols     []string

	//Bond vectors with a norm equal or lower than this are considered degenerate.
	//If zero, DegenerateTol is used.
	DegenerateTol float64
}

//Len returns the number of particles in the system.
func (S *System) Len() int {
	if S.Positions == nil {
		return 0
	}
	return S.Positions.NVecs()
}

//Validate checks that the system is consistent: there are particles and bonds,
//every bond references two different, existing, particles, and the optional
//data has the right size.
func (S *System) Validate() error {
	n := S.Len()
	if n == 0 {
		return newCError(ErrInvalidParticle, -1, -1, "system has no particles")
	}
	if len(S.Bonds) == 0 {
		return newCError(ErrNoBonds, -1, -1, "")
	}
	for i, b := range S.Bonds {
		if b == nil || b.Index != i {
			return newCError(ErrInvalidBond, -1, i, "bond in position %d is nil or has a wrong index", i)
		}
		if b.Tail < 0 || b.Tail >= n || b.Head < 0 || b.Head >= n {
			return newCError(ErrInvalidBond, -1, i, "bond %d (%d-%d) references a particle out of range [0,%d)", i, b.Tail, b.Head, n)
		}
		if b.Tail == b.Head {
			return newCError(ErrInvalidBond, b.Tail, i, "bond %d links particle %d to itself", i, b.Tail)
		}
	}
	if S.Cell != nil {
		if r, c := S.Cell.Dims(); r != 3 || c != 3 {
			return newCError(ErrInvalidBond, -1, -1, "cell matrix must be 3x3, not %dx%d", r, c)
		}
	}
	if S.ParticleIDs != nil && len(S.ParticleIDs) != n {
		return newCError(ErrInvalidParticle, -1, -1, "%d particle identifiers for %d particles", len(S.ParticleIDs), n)
	}
	if S.BondIDs != nil && len(S.BondIDs) != len(S.Bonds) {
		return newCError(ErrInvalidBond, -1, -1, "%d bond identifiers for %d bonds", len(S.BondIDs), len(S.Bonds))
	}
	if S.Symbols != nil && len(S.Symbols) != n {
		return newCError(ErrInvalidParticle, -1, -1, "%d element symbols for %d particles", len(S.Symbols), n)
	}
	return nil
}

//Particles returns the Identifier to be used to address particles. If byIdentifier is true,
//the particle identifiers of the system are used, otherwise particles are addressed by index.
func (S *System) Particles(byIdentifier bool) (Identifier, error) {
	if !byIdentifier {
		return indexIdentity{n: S.Len(), kind: ErrInvalidParticle, what: "particle"}, nil
	}
	if S.ParticleIDs == nil {
		return nil, newCError(ErrNoIdentifiers, -1, -1, "no particle identifiers, address particles by index instead")
	}
	return NewIdentifierIndex(S.ParticleIDs), nil
}

//BondsBy is like Particles, but for bonds.
func (S *System) BondsBy(byIdentifier bool) (Identifier, error) {
	if !byIdentifier {
		return indexIdentity{n: len(S.Bonds), kind: ErrInvalidBond, what: "bond"}, nil
	}
	if S.BondIDs == nil {
		return nil, newCError(ErrNoIdentifiers, -1, -1, "no bond identifiers, list bonds by index instead")
	}
	return NewBondIdentifierIndex(S.BondIDs), nil
}

//ResolveParticle returns the index of the particle selected by sel, which is an
//identifier if byIdentifier is true, and an index otherwise.
func (S *System) ResolveParticle(sel int, byIdentifier bool) (int, error) {
	ids, err := S.Particles(byIdentifier)
	if err != nil {
		return -1, errDecorate(err, "ResolveParticle")
	}
	i, err := ids.Index(sel)
	if err != nil {
		return -1, errDecorate(err, "ResolveParticle")
	}
	return i, nil
}

//CellMatrix returns the cell as a mat.Matrix, or a nil interface if
//the system is not periodic.
func (S *System) CellMatrix() mat.Matrix {
	if S.Cell == nil {
		return nil
	}
	return S.Cell
}

//prepare validates the system and builds the adjacency index and bond vectors.
func (S *System) prepare() (*AdjacencyIndex, *v3.Matrix, error) {
	if err := S.Validate(); err != nil {
		return nil, nil, err
	}
	return BuildAdjacency(S.Bonds), BondVectors(S.Positions, S.Bonds, S.CellMatrix()), nil
}

func (S *System) tol() float64 {
	if S.DegenerateTol <= 0 {
		return DegenerateTol
	}
	return S.DegenerateTol
}

//BondAngles returns the angles between all pairs of bonds incident to the particle
//with index center. See Enumerate for the order of the results.
func (S *System) BondAngles(center int) ([]AnglePair, error) {
	adj, vecs, err := S.prepare()
	if err != nil {
		return nil, errDecorate(err, "BondAngles")
	}
	if center < 0 || center >= S.Len() {
		return nil, errDecorate(newCError(ErrInvalidParticle, center, -1, "choose index between 0 and %d", S.Len()-1), "BondAngles")
	}
	ret, err := Enumerate(center, adj, S.Bonds, vecs, S.tol())
	if err != nil {
		return nil, errDecorate(err, "BondAngles")
	}
	return ret, nil
}

//Result is the outcome of the angle calculation for one center particle.
type Result struct {
	Center int
	Angles []AnglePair
	Err    error
}

//BondAnglesConc computes the bond angles for each of the centers concurrently.
//The adjacency index and bond vectors are built once and shared. A failure for one
//center does not affect the others: each Result carries its own error.
//The results are in the same order as centers.
func (S *System) BondAnglesConc(centers []int) []Result {
	ret := make([]Result, len(centers))
	adj, vecs, err := S.prepare()
	if err != nil {
		err = errDecorate(err, "BondAnglesConc")
		for i, c := range centers {
			ret[i] = Result{Center: c, Err: err}
		}
		return ret
	}
	workers := runtime.GOMAXPROCS(0)
	if workers > len(centers) {
		workers = len(centers)
	}
	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				c := centers[i]
				ret[i].Center = c
				if c < 0 || c >= S.Len() {
					ret[i].Err = newCError(ErrInvalidParticle, c, -1, "choose index between 0 and %d", S.Len()-1)
					continue
				}
				ret[i].Angles, ret[i].Err = Enumerate(c, adj, S.Bonds, vecs, S.tol())
			}
		}()
	}
	for i := range centers {
		jobs <- i
	}
	close(jobs)
	wg.Wait()
	return ret
}
