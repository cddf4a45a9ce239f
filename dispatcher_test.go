package balas

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFloorLog2(t *testing.T) {
	cases := map[int]int{1: 0, 2: 1, 3: 1, 4: 2, 5: 2, 7: 2, 8: 3}
	for n, want := range cases {
		assert.Equal(t, want, floorLog2(n), "floorLog2(%d)", n)
	}
}

func TestSolveParallel_WorkerCountInvariance(t *testing.T) {
	p := exampleProblem()

	for _, workers := range []int{1, 2, 4, 8} {
		best, _, solution := solveParallel(p, workers, math.Inf(1))
		assert.Equal(t, 3.0, best, "workers=%d", workers)
		assert.Equal(t, []int{1, 1, 0}, solution, "workers=%d", workers)
	}
}

func TestSolveParallel_Infeasible(t *testing.T) {
	p := NewProblem([]float64{1, 2, 3}, [][]float64{{1}, {1}, {1}}, []float64{4}, nil)

	best, _, solution := solveParallel(p, 4, math.Inf(1))

	assert.True(t, math.IsInf(best, 1))
	assert.Nil(t, solution)
}

func TestSolveParallel_ClampsWorkerCountToProblemSize(t *testing.T) {
	p := NewProblem([]float64{1}, [][]float64{{1}}, []float64{1}, nil)

	// Asking for far more workers than variables must not panic or
	// index out of range against Cumulative.
	best, _, solution := solveParallel(p, 64, math.Inf(1))

	assert.Equal(t, 1.0, best)
	assert.Equal(t, []int{1}, solution)
}
