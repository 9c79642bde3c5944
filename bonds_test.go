package angles

import (
	"testing"

	v3 "github.com/rmera/bondangles/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func water(Te *testing.T) (*v3.Matrix, []string) {
	Te.Helper()
	pos, err := v3.NewMatrix([]float64{
		0, 0, 0,
		0.757, 0.586, 0,
		-0.757, 0.586, 0,
	})
	require.NoError(Te, err)
	return pos, []string{"O", "H", "h"}
}

func TestAssignBondsWater(Te *testing.T) {
	pos, symbols := water(Te)
	bonds, err := AssignBonds(pos, symbols, nil, -1)
	require.NoError(Te, err)
	assert.Equal(Te, [][2]int{{0, 1}, {0, 2}}, bonds.Pairs())
	S := &System{Positions: pos, Bonds: bonds, Symbols: symbols}
	pairs, err := S.BondAngles(0)
	require.NoError(Te, err)
	require.Len(Te, pairs, 1)
	assert.InDelta(Te, 104.5, pairs[0].Angle, 0.1)
	_, err = S.BondAngles(1)
	assert.ErrorIs(Te, err, ErrInsufficientBonds)
}

func TestAssignBondsPeriodic(Te *testing.T) {
	pos, err := v3.NewMatrix([]float64{
		0.5, 5, 5,
		9.3, 5, 5,
	})
	require.NoError(Te, err)
	cell := mat.NewDense(3, 3, []float64{10, 0, 0, 0, 10, 0, 0, 0, 10})
	bonds, err := AssignBonds(pos, []string{"C", "C"}, cell, BondTol)
	require.NoError(Te, err)
	require.Len(Te, bonds, 1)
	assert.Equal(Te, [3]int{-1, 0, 0}, bonds[0].Shift)
	vecs := BondVectors(pos, bonds, cell)
	assert.InDeltaSlice(Te, []float64{-1.2, 0, 0}, vecs.Vec(nil, 0), 1e-9)

	//Without the cell, the atoms are too far apart.
	bonds, err = AssignBonds(pos, []string{"C", "C"}, nil, BondTol)
	require.NoError(Te, err)
	assert.Empty(Te, bonds)

	_, err = AssignBonds(pos, []string{"C", "C"}, mat.NewDense(3, 3, nil), BondTol)
	assert.ErrorIs(Te, err, ErrInvalidBond)
}

func TestAssignBondsTrim(Te *testing.T) {
	pos, err := v3.NewMatrix([]float64{
		0, 0, 0,
		0.7, 0, 0,
		-0.8, 0, 0,
	})
	require.NoError(Te, err)
	bonds, err := AssignBonds(pos, []string{"H", "H", "H"}, nil, -1)
	require.NoError(Te, err)
	assert.Equal(Te, [][2]int{{0, 1}}, bonds.Pairs())
	assert.Equal(Te, 0, bonds[0].Index)
}

func TestAssignBondsErrors(Te *testing.T) {
	pos, symbols := water(Te)
	_, err := AssignBonds(pos, symbols[:2], nil, -1)
	assert.ErrorIs(Te, err, ErrInvalidParticle)
	_, err = AssignBonds(pos, []string{"O", "H", "Xx"}, nil, -1)
	assert.ErrorIs(Te, err, ErrInvalidParticle)
	r, ok := CovalentRadius("c")
	assert.True(Te, ok)
	assert.Equal(Te, 0.76, r)
}
