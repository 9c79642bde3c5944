package v3

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMatrix(Te *testing.T) {
	A, err := NewMatrix([]float64{1, 2, 3, 4, 5, 6})
	require.NoError(Te, err)
	assert.Equal(Te, 2, A.NVecs())
	assert.Equal(Te, []float64{4, 5, 6}, A.Vec(nil, 1))

	_, err = NewMatrix([]float64{1, 2, 3, 4})
	assert.Error(Te, err)
	_, err = NewMatrix(nil)
	assert.Error(Te, err)
}

func TestViewsShareData(Te *testing.T) {
	A, err := NewMatrix([]float64{1, 2, 3, 4, 5, 6, 7, 8, 9})
	require.NoError(Te, err)
	view := A.VecView(1)
	view.Set(0, 0, 100)
	assert.Equal(Te, 100.0, A.At(1, 0))
	sub := A.View(1, 0, 2, 3)
	assert.Equal(Te, 2, sub.NVecs())
	assert.Equal(Te, 9.0, sub.At(1, 2))
}

func TestDotNormUnit(Te *testing.T) {
	a, _ := NewMatrix([]float64{3, 4, 0})
	b, _ := NewMatrix([]float64{1, 0, 0})
	assert.InDelta(Te, 5.0, a.Norm(2), 1e-12)
	assert.InDelta(Te, 3.0, a.Dot(b), 1e-12)
	u := Zeros(1)
	u.Unit(a)
	assert.InDelta(Te, 1.0, u.Norm(2), 1e-12)
	assert.InDelta(Te, 0.6, u.At(0, 0), 1e-12)
	//a should not be modified
	assert.Equal(Te, 3.0, a.At(0, 0))
	assert.Panics(Te, func() { u.Unit(Zeros(1)) })
	assert.Panics(Te, func() { a.Dot(Zeros(2)) })
}

func TestCross(Te *testing.T) {
	x, _ := NewMatrix([]float64{1, 0, 0})
	y, _ := NewMatrix([]float64{0, 1, 0})
	z := Zeros(1)
	z.Cross(x, y)
	assert.Equal(Te, []float64{0, 0, 1}, z.Vec(nil, 0))
}

func TestSomeAndSetVecs(Te *testing.T) {
	A, _ := NewMatrix([]float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12})
	B := Zeros(2)
	B.SomeVecs(A, []int{3, 1})
	assert.Equal(Te, []float64{10, 11, 12}, B.Vec(nil, 0))
	assert.Equal(Te, []float64{4, 5, 6}, B.Vec(nil, 1))
	B.Set(0, 0, -1)
	A.SetVecs(B, []int{3, 1})
	assert.Equal(Te, -1.0, A.At(3, 0))
	assert.Panics(Te, func() { B.SomeVecs(A, []int{7, 0}) })
}

func TestAddSubVec(Te *testing.T) {
	A, _ := NewMatrix([]float64{1, 1, 1, 2, 2, 2})
	v, _ := NewMatrix([]float64{1, 2, 3})
	F := Zeros(2)
	F.AddVec(A, v)
	assert.Equal(Te, []float64{3, 4, 5}, F.Vec(nil, 1))
	F.SubVec(F, v)
	assert.Equal(Te, []float64{2, 2, 2}, F.Vec(nil, 1))
	assert.False(Te, math.IsNaN(F.Norm(2)))
	assert.Contains(Te, F.String(), "2.000")
}
