package balas

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBalas_SolveFindsOptimum(t *testing.T) {
	b := New(exampleProblem())
	b.Solve(4, math.Inf(1))

	assert.True(t, b.Feasible())
	assert.Equal(t, 3.0, b.Best)
	assert.Equal(t, []int{1, 1, 0}, b.Solution)
}

func TestBalas_SolveRecursivelyAgreesWithSolve(t *testing.T) {
	p := exampleProblem()

	recursive := New(p)
	recursive.SolveRecursively()

	parallel := New(p)
	parallel.Solve(4, math.Inf(1))

	assert.Equal(t, recursive.Best, parallel.Best)
	assert.Equal(t, recursive.Solution, parallel.Solution)
}

func TestBalas_ResetClearsResult(t *testing.T) {
	b := New(exampleProblem())
	b.Solve(1, math.Inf(1))
	require := assert.New(t)
	require.True(b.Feasible())

	b.Reset()

	require.False(b.Feasible())
	require.True(math.IsInf(b.Best, 1))
	require.Equal(int64(0), b.Count)
}

func TestBalas_InfeasibleReportsNoSolution(t *testing.T) {
	p := NewProblem([]float64{1, 2, 3}, [][]float64{{1}, {1}, {1}}, []float64{4}, nil)
	b := New(p)
	b.Solve(4, math.Inf(1))

	assert.False(t, b.Feasible())
	assert.True(t, math.IsInf(b.Best, 1))
}
