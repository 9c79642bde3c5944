/*
 * table.go, part of bondangles.
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

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

//TableOptions selects how particles and bonds are labeled in an AngleTable.
type TableOptions struct {
	ParticleIDs bool //label particles by identifier instead of index.
	BondIDs     bool //label bonds by identifier instead of index.
}

//AngleRow is one record of an AngleTable.
type AngleRow struct {
	Angle   float64
	Triplet [3]int //A, B, C
	Bonds   [2]int //Bond1, Bond2
}

//AngleTable contains the angles around one particle, labeled for output.
type AngleTable struct {
	Identifier string
	Title      string
	Selection  int //the particle as the user selected it (index or identifier).
	Center     int //the index of the particle.
	NParticles int
	NBonds     int
	Rows       []AngleRow
}

//NewAngleTable builds a table from the pairs computed for the particle selected with
//selection, which is an identifier if opts.ParticleIDs is true and an index otherwise.
//The labels in the table follow opts.
func NewAngleTable(S *System, selection int, pairs []AnglePair, opts TableOptions) (*AngleTable, error) {
	pids, err := S.Particles(opts.ParticleIDs)
	if err != nil {
		return nil, errDecorate(err, "NewAngleTable")
	}
	bids, err := S.BondsBy(opts.BondIDs)
	if err != nil {
		return nil, errDecorate(err, "NewAngleTable")
	}
	center, err := pids.Index(selection)
	if err != nil {
		return nil, errDecorate(err, "NewAngleTable")
	}
	T := &AngleTable{
		Identifier: fmt.Sprintf("bond-angles-%d", selection),
		Title:      fmt.Sprintf("Bond Angles of Particle %d", selection),
		Selection:  selection,
		Center:     center,
		NParticles: S.Len(),
		NBonds:     len(S.Bonds),
		Rows:       make([]AngleRow, len(pairs)),
	}
	for i, p := range pairs {
		r := &T.Rows[i]
		r.Angle = p.Angle
		for j, v := range p.Triplet {
			if r.Triplet[j], err = pids.Identifier(v); err != nil {
				return nil, errDecorate(err, "NewAngleTable")
			}
		}
		for j, v := range p.Bonds {
			if r.Bonds[j], err = bids.Identifier(v); err != nil {
				return nil, errDecorate(err, "NewAngleTable")
			}
		}
	}
	return T, nil
}

//Angles returns the Angle column of the table.
func (T *AngleTable) Angles() []float64 {
	ret := make([]float64, len(T.Rows))
	for i, r := range T.Rows {
		ret[i] = r.Angle
	}
	return ret
}

//Stats are descriptive statistics for a set of angles, in degrees.
type Stats struct {
	N      int
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
}

//Summary returns the statistics of the angles in the table. For an empty table all
//the values but N are NaN. StdDev is NaN for a single angle.
func (T *AngleTable) Summary() Stats {
	return Summarize(T.Angles())
}

//Summarize returns the statistics of angles.
func Summarize(angles []float64) Stats {
	if len(angles) == 0 {
		nan := math.NaN()
		return Stats{Mean: nan, StdDev: nan, Min: nan, Max: nan}
	}
	mean, std := stat.MeanStdDev(angles, nil)
	return Stats{
		N:      len(angles),
		Mean:   mean,
		StdDev: std,
		Min:    floats.Min(angles),
		Max:    floats.Max(angles),
	}
}
