/*
 * geometric.go, part of bondangles.
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

//Everything equal or less than this is considered zero.
const appzero float64 = 0.000000000001

//UnitAngle returns the angle in radians between the unit vectors u1 and u2.
//The cosine is clamped to [-1,1] so rounding errors never give NaN.
func UnitAngle(u1, u2 *v3.Matrix) float64 {
	return math.Acos(clamp(u1.Dot(u2), -1, 1))
}

//Rad2Deg converts an angle in radians to degrees.
func Rad2Deg(f float64) float64 {
	return f * 180 / math.Pi
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
