package histo

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAngleHisto(Te *testing.T) {
	div := AngleDividers(4)
	require.Len(Te, div, 5)
	assert.Equal(Te, []float64{0, 45, 90, 135}, div[:4])
	assert.Greater(Te, div[4], 180.0)

	rawdata := []float64{180, 109.47, 90, 0, 44.9, 120, 200, -1}
	D := NewData(div, rawdata, 3)
	assert.Equal(Te, 3, D.ID())
	assert.Equal(Te, []float64{2, 0, 3, 1}, D.View())
	assert.Equal(Te, 6, D.Total())
	//rawdata was not sorted in place
	assert.Equal(Te, 180.0, rawdata[0])

	D.Normalize()
	assert.True(Te, D.Normalized())
	assert.InDelta(Te, 1.0, D.Sum(), 1e-12)
	D.Normalize()
	assert.InDelta(Te, 1.0, D.Sum(), 1e-12, "normalizing twice should change nothing")
	assert.InDelta(Te, 0.5, D.View()[2], 1e-12)
	assert.Equal(Te, div, D.CopyDividers())

	empty := NewData(div, nil)
	assert.Empty(Te, empty.Sum())
	empty.Normalize()
	assert.False(Te, empty.Normalized())
	assert.Equal(Te, -1, empty.ID())
	assert.Panics(Te, func() { AngleDividers(0) })
	assert.Panics(Te, func() { NewData([]float64{0}, nil) })
}

func TestHistoAdd(Te *testing.T) {
	div := AngleDividers(2)
	a := NewData(div, []float64{10, 100, 120})
	b := NewData(div, []float64{10, 10, 170})
	sum := NewData(div, nil)
	sum.Add(a, b)
	assert.Equal(Te, []float64{3, 3}, sum.View())
	assert.Equal(Te, 6, sum.Total())
	//the receiver can be one of the operands.
	sum.Add(sum, a)
	assert.Equal(Te, []float64{4, 5}, sum.View())
	assert.Equal(Te, 9, sum.Total())
	assert.Equal(Te, []float64{1, 2}, a.View(), "operands are not modified")

	c := NewData([]float64{0, 1, 2}, nil)
	assert.Panics(Te, func() { sum.Add(a, c) })
	b.Normalize()
	assert.Panics(Te, func() { sum.Add(a, b) })
}

func TestHistoJSON(Te *testing.T) {
	D := NewData([]float64{0, 90, 180}, []float64{30, 100, 110}, 7)
	j, err := json.Marshal(D)
	require.NoError(Te, err)
	var got struct {
		ID       int       `json:"id"`
		Total    int       `json:"total"`
		Dividers []float64 `json:"dividers"`
		Histo    []float64 `json:"histo"`
	}
	require.NoError(Te, json.Unmarshal(j, &got))
	assert.Equal(Te, 7, got.ID)
	assert.Equal(Te, 3, got.Total)
	assert.Equal(Te, []float64{0, 90, 180}, got.Dividers)
	assert.Equal(Te, []float64{1, 2}, got.Histo)
	assert.Contains(Te, D.String(), "90.00-180.00")
}
