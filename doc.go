/*
 * doc.go, part of bondangles.
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

/*
Package angles computes the angles between all pairs of bonds that meet at one particle.

The bond topology is a list of Bonds, each one linking two particles, with the vector of
the bond going from its Tail to its Head. Bonds crossing a periodic boundary carry a Shift,
the number of cell vectors to add to the plain difference of positions.

	**Capabilities**

    Builds a particle to incident bonds index (BuildAdjacency).

    Computes bond vectors with periodic corrections (BondVectors), and orients
	them away from a given particle (Oriented).

    Enumerates the angles for every unordered pair of bonds at a particle
	(Enumerate), labeling each one with its neighbor-center-neighbor triplet.

    Addresses particles and bonds either by index or by identifier (IdentifierIndex).

    Assigns bonds from covalent radii, with minimum image shifts for
	periodic systems (AssignBonds).

    Reads (extended) xyz files, optionally gzip or zstd compressed (XYZRead).

    Tables, plain text reports and statistics for the angles (AngleTable, WriteReport).

The System type ties everything together, and can process many particles concurrently
(System.BondAnglesConc).

Positions and bond vectors are kept in v3.Matrix objects, where each row is a vector.
*/
package angles
