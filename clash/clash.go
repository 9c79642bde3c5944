//Package clash finds particles that are too close to each other. Bonds between
//overlapping particles have (nearly) zero length, and no angle is defined for them.
package clash

import (
	"fmt"
	"math"

	angles "github.com/rmera/bondangles"
	v3 "github.com/rmera/bondangles/v3"
	"gonum.org/v1/gonum/mat"
)

//distances calls f with each pair i<j of points of coord and their distance.
//If cell is not nil, its columns are the cell vectors, and the
//distance is that between minimum images.
func distances(coord *v3.Matrix, cell mat.Matrix, f func(i, j int, d float64)) error {
	var inv *mat.Dense
	if cell != nil {
		inv = mat.NewDense(3, 3, nil)
		if err := inv.Inverse(cell); err != nil {
			return fmt.Errorf("bondangles/clash: can't invert cell matrix: %w", err)
		}
	}
	dvec := v3.Zeros(1)
	for i := 0; i < coord.NVecs(); i++ {
		a1 := coord.VecView(i)
		for j := i + 1; j < coord.NVecs(); j++ {
			dvec.SubVec(a1, coord.VecView(j))
			if inv != nil {
				angles.MinimumImage(dvec.RawRowView(0), cell, inv)
			}
			f(i, j, dvec.Norm(2))
		}
	}
	return nil
}

//Closest returns the 2 different points of coord closest to each other, lowest index first,
//and their distance, which is +Inf if there are less than 2 points. cell can be nil, see Overlapping.
func Closest(coord *v3.Matrix, cell mat.Matrix) (dist float64, indexes [2]int, err error) {
	dist = math.Inf(1)
	err = distances(coord, cell, func(i, j int, d float64) {
		if d < dist {
			dist = d
			indexes = [2]int{i, j}
		}
	})
	return
}

//Overlapping returns all the pairs of points of coord that are closer than mindist,
//ordered by the first and then the second index. If cell is not nil, its columns
//are the cell vectors, and points close to each other across the cell boundary are
//also reported.
func Overlapping(coord *v3.Matrix, cell mat.Matrix, mindist float64) ([][2]int, error) {
	var ret [][2]int
	err := distances(coord, cell, func(i, j int, d float64) {
		if d < mindist {
			ret = append(ret, [2]int{i, j})
		}
	})
	return ret, err
}
