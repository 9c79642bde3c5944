/*
 * report.go, part of bondangles.
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
	"io"
	"strconv"
	"strings"
)

//WriteReport writes the table as plain text to w: one line per angle,
//with the particle triplet, the angle in degrees with 4 decimals, and
//the bond pair. Columns are aligned on the number of digits of the particle
//and bond counts.
func WriteReport(w io.Writer, T *AngleTable) error {
	p := len(strconv.Itoa(T.NParticles))
	b := len(strconv.Itoa(T.NBonds))
	pad := 2*p + 10 + len(strconv.Itoa(T.Center)) - 13
	if pad < 0 {
		pad = 0
	}
	header := "Triplet A-B-C" + strings.Repeat(" ", pad) + "Angle" + strings.Repeat(" ", 7) + "Bond Pair B1 - B2"
	if _, err := fmt.Fprintf(w, "%s\n%s\n", header, strings.Repeat("-", len(header))); err != nil {
		return err
	}
	for _, r := range T.Rows {
		_, err := fmt.Fprintf(w, "%*d - %d - %-*d    %-8.4f    %*d - %-*d\n",
			p, r.Triplet[0], r.Triplet[1], p, r.Triplet[2], r.Angle, b, r.Bonds[0], b, r.Bonds[1])
		if err != nil {
			return err
		}
	}
	return nil
}
