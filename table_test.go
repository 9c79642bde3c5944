package angles

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAngleTable(Te *testing.T) {
	S := star(Te)
	pairs, err := S.BondAngles(4)
	require.NoError(Te, err)

	T, err := NewAngleTable(S, 4, pairs, TableOptions{})
	require.NoError(Te, err)
	assert.Equal(Te, "bond-angles-4", T.Identifier)
	assert.Equal(Te, "Bond Angles of Particle 4", T.Title)
	require.Len(Te, T.Rows, 1)
	assert.Equal(Te, [3]int{0, 4, 5}, T.Rows[0].Triplet)
	assert.Equal(Te, [2]int{3, 4}, T.Rows[0].Bonds)

	T, err = NewAngleTable(S, 104, pairs, TableOptions{ParticleIDs: true, BondIDs: true})
	require.NoError(Te, err)
	assert.Equal(Te, "bond-angles-104", T.Identifier)
	assert.Equal(Te, 4, T.Center)
	assert.Equal(Te, [3]int{100, 104, 105}, T.Rows[0].Triplet)
	assert.Equal(Te, [2]int{10, 11}, T.Rows[0].Bonds)
	assert.Equal(Te, []float64{pairs[0].Angle}, T.Angles())

	_, err = NewAngleTable(S, 4, pairs, TableOptions{ParticleIDs: true})
	assert.ErrorIs(Te, err, ErrInvalidParticle)
	S.BondIDs = nil
	_, err = NewAngleTable(S, 4, pairs, TableOptions{BondIDs: true})
	assert.ErrorIs(Te, err, ErrNoIdentifiers)
}

func TestSummary(Te *testing.T) {
	s := Summarize([]float64{90, 180, 90})
	assert.Equal(Te, 3, s.N)
	assert.InDelta(Te, 120.0, s.Mean, 1e-12)
	assert.InDelta(Te, math.Sqrt(2700), s.StdDev, 1e-9)
	assert.Equal(Te, 90.0, s.Min)
	assert.Equal(Te, 180.0, s.Max)
	empty := Summarize(nil)
	assert.Equal(Te, 0, empty.N)
	assert.True(Te, math.IsNaN(empty.Mean))
}

func TestWriteReport(Te *testing.T) {
	S := mkSystem(Te, []float64{
		0, 0, 0,
		1, 0, 0,
		0, 1, 0,
		-1, 0, 0,
	}, [][2]int{{0, 1}, {2, 0}, {0, 3}}, nil)
	pairs, err := S.BondAngles(0)
	require.NoError(Te, err)
	T, err := NewAngleTable(S, 0, pairs, TableOptions{})
	require.NoError(Te, err)
	var buf bytes.Buffer
	require.NoError(Te, WriteReport(&buf, T))
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(Te, lines, 5)
	assert.Equal(Te, "Triplet A-B-CAngle       Bond Pair B1 - B2", lines[0])
	assert.Equal(Te, strings.Repeat("-", len(lines[0])), lines[1])
	assert.Equal(Te, "1 - 0 - 2    90.0000     0 - 1", lines[2])
	assert.Equal(Te, "1 - 0 - 3    180.0000    0 - 2", lines[3])
	assert.Equal(Te, "2 - 0 - 3    90.0000     1 - 2", lines[4])
}
