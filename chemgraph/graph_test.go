package chemgraph

import (
	"testing"

	angles "github.com/rmera/bondangles"
	v3 "github.com/rmera/bondangles/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopology(Te *testing.T) {
	//0-1-2 with a double 1-2 bond, 3-4 apart, 5 isolated.
	bonds, err := angles.NewBonds([][2]int{{0, 1}, {1, 2}, {2, 1}, {3, 4}}, nil)
	require.NoError(Te, err)
	T := New(6, bonds)
	assert.Equal(Te, 3, T.Degree(1))
	assert.Equal(Te, 2, T.Degree(2))
	assert.Equal(Te, 0, T.Degree(5))
	assert.Equal(Te, []int{0, 2}, T.Neighbors(1))
	assert.Empty(Te, T.Neighbors(5))
	assert.Equal(Te, []int{1, 2}, T.Centers(2))
	assert.Equal(Te, [][]int{{0, 1, 2}, {3, 4}, {5}}, T.Fragments())
	assert.True(Te, T.Connected(0, 2))
	assert.False(Te, T.Connected(0, 3))
	assert.Equal(Te, 2, T.Lines(1, 2).Len())
	assert.Equal(Te, 6, T.Nodes().Len())

	r := T.Bonds[0].ReversedLine()
	assert.Equal(Te, int64(1), r.From().ID())
	assert.Equal(Te, int64(0), r.ID())
	assert.Equal(Te, int64(0), T.Bonds[0].From().ID())
}

func TestFromSystem(Te *testing.T) {
	bonds, err := angles.NewBonds([][2]int{{0, 1}, {0, 2}}, nil)
	require.NoError(Te, err)
	pos, err := v3.NewMatrix([]float64{0, 0, 0, 0.757, 0.586, 0, -0.757, 0.586, 0})
	require.NoError(Te, err)
	S := &angles.System{Positions: pos, Bonds: bonds, Symbols: []string{"O", "H", "H"}}
	T := FromSystem(S)
	assert.Equal(Te, []int{0}, T.Centers(2))
	assert.Equal(Te, "O", T.Particles[0].Symbol)
	assert.Equal(Te, "H", T.Particles[2].Symbol)
	assert.Len(Te, T.Particles[0].Bonds, 2)
}
