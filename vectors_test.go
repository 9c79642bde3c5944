package angles

import (
	"testing"

	v3 "github.com/rmera/bondangles/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestBondVectors(Te *testing.T) {
	S := mkSystem(Te, []float64{
		1, 1, 1,
		2, 3, 4,
		0, 0, 0,
	}, [][2]int{{0, 1}, {1, 2}}, nil)
	vecs := BondVectors(S.Positions, S.Bonds, nil)
	require.Equal(Te, 2, vecs.NVecs())
	assert.Equal(Te, []float64{1, 2, 3}, vecs.Vec(nil, 0))
	assert.Equal(Te, []float64{-2, -3, -4}, vecs.Vec(nil, 1))
	assert.Nil(Te, BondVectors(S.Positions, nil, nil))
	assert.Panics(Te, func() { BondVectors(S.Positions, S.Bonds, mat.NewDense(2, 2, nil)) })
}

func TestPeriodicBondVector(Te *testing.T) {
	cell := mat.NewDense(3, 3, []float64{10, 0, 0, 0, 10, 0, 0, 0, 10})
	S := mkSystem(Te, []float64{
		9.5, 0, 0,
		0.5, 0, 0,
	}, [][2]int{{0, 1}}, [][3]int{{1, 0, 0}})
	vecs := BondVectors(S.Positions, S.Bonds, cell)
	assert.InDeltaSlice(Te, []float64{1, 0, 0}, vecs.Vec(nil, 0), 1e-12)

	//Moving the head by a cell vector and removing the shift gives the same vector.
	moved := mkSystem(Te, []float64{
		9.5, 0, 0,
		10.5, 0, 0,
	}, [][2]int{{0, 1}}, nil)
	mvecs := BondVectors(moved.Positions, moved.Bonds, cell)
	assert.InDeltaSlice(Te, vecs.Vec(nil, 0), mvecs.Vec(nil, 0), 1e-12)

	//Non orthogonal cell: the shift is applied along the columns.
	tric := mat.NewDense(3, 3, []float64{
		10, 5, 0,
		0, 8, 0,
		0, 0, 7,
	})
	S.Bonds[0].Shift = [3]int{0, -1, 2}
	vecs = BondVectors(S.Positions, S.Bonds, tric)
	assert.InDeltaSlice(Te, []float64{-9 - 5, -8, 14}, vecs.Vec(nil, 0), 1e-12)
}

func TestOriented(Te *testing.T) {
	v, _ := v3.NewMatrix([]float64{1, -2, 3})
	b := &Bond{Index: 4, Tail: 2, Head: 7}
	fromtail := Oriented(v, b, 2)
	assert.Equal(Te, []float64{1, -2, 3}, fromtail.Vec(nil, 0))
	fromhead := Oriented(v, b, 7)
	assert.Equal(Te, []float64{-1, 2, -3}, fromhead.Vec(nil, 0))
	//the canonical vector is never changed.
	assert.Equal(Te, []float64{1, -2, 3}, v.Vec(nil, 0))
	fromtail.Set(0, 0, 100)
	assert.Equal(Te, 1.0, v.At(0, 0))
	assert.Panics(Te, func() { Oriented(v, b, 3) })
}

func TestCross(Te *testing.T) {
	b := &Bond{Tail: 1, Head: 5}
	assert.Equal(Te, 5, b.Cross(1))
	assert.Equal(Te, 1, b.Cross(5))
	assert.Panics(Te, func() { b.Cross(0) })
	assert.False(Te, b.Periodic())
	b.Shift = [3]int{0, 0, -1}
	assert.True(Te, b.Periodic())
}
