package balas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProblem_ComputesCumulative(t *testing.T) {
	// Two constraints, three variables. Cumulative[0] sums positive
	// contributions from variables 1 and 2; Cumulative[1] from variable
	// 2 only; index 2 (the last variable) is absent.
	p := NewProblem(
		[]float64{1, 2, 3},
		[][]float64{
			{1, -1},
			{2, 0},
			{0, 4},
		},
		[]float64{3, 2},
		nil,
	)

	require.Len(t, p.Cumulative, 2)
	assert.Equal(t, []float64{2, 4}, p.Cumulative[0])
	assert.Equal(t, []float64{0, 4}, p.Cumulative[1])
}

func TestNewProblem_SingleVariableHasNoCumulative(t *testing.T) {
	p := NewProblem([]float64{1}, [][]float64{{1}}, []float64{1}, nil)
	assert.Nil(t, p.Cumulative)
}

func TestNewProblem_PanicsOnShapeMismatch(t *testing.T) {
	assert.Panics(t, func() {
		NewProblem([]float64{1, 2}, [][]float64{{1}}, []float64{1}, nil)
	})
	assert.Panics(t, func() {
		NewProblem([]float64{1}, [][]float64{{1, 2}}, []float64{1}, nil)
	})
	assert.Panics(t, func() {
		NewProblem([]float64{1, 2}, [][]float64{{1}, {1}}, []float64{1}, []string{"only-one"})
	})
}
