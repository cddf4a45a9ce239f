// Package balas implements Balas' additive algorithm for binary integer
// programs: minimize a nonnegative-coefficient linear objective over
// binary variables subject to >= constraints, by implicit enumeration of
// the binary decision tree with bound, fathoming, and cumulative-
// feasibility pruning at every node.
//
// Callers normally build a Problem through the model package rather than
// constructing one directly; this package is the solver core only.
package balas

import (
	"math"
	"runtime"
)

// Balas holds one problem instance together with the result of its most
// recent Solve or SolveRecursively call. A Balas value is reusable: Reset
// discards the previous result so the same Problem can be solved again,
// for instance with a different worker count or heuristic seed.
type Balas struct {
	Problem *Problem

	Best     float64
	Solution []int
	Count    int64

	// Recorder, if non-nil, is notified of every node visited by the
	// next SolveRecursively call. It has no effect on Solve.
	Recorder Recorder
}

// New constructs a Balas instance around the given Problem. It never
// fails: shape validation happens in NewProblem, and Solve itself cannot
// error because an all->= binary program is never ill-posed, only
// feasible or infeasible.
func New(p *Problem) *Balas {
	return &Balas{
		Problem: p,
		Best:    math.Inf(1),
	}
}

// Reset clears the previously recorded result so the instance can be
// solved again.
func (b *Balas) Reset() {
	b.Best = math.Inf(1)
	b.Solution = nil
	b.Count = 0
}

// Solve runs the parallel engine: the tree is partitioned across
// numWorkers (rounded down to a power of two, clamped to the problem
// size), each subtree owner races against a shared incumbent bound seeded
// at heuristicSeed, and the result is reduced across workers. Pass
// math.Inf(1) for heuristicSeed when no a priori feasible value is known.
// numWorkers <= 0 defaults to runtime.NumCPU(), per spec.
//
// Solve reports infeasibility by leaving b.Solution nil and b.Best at
// +Inf.
func (b *Balas) Solve(numWorkers int, heuristicSeed float64) {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	best, count, solution := solveParallel(b.Problem, numWorkers, heuristicSeed)
	b.Best = best
	b.Count = count
	b.Solution = solution
}

// SolveRecursively runs the single-threaded reference traversal instead
// of the parallel engine. It exists as a correctness oracle for Solve and
// as the host for optional Recorder instrumentation; it is never the
// right choice for a performance-sensitive caller.
func (b *Balas) SolveRecursively() {
	s := newRecursiveSolver(b.Problem, b.Recorder)
	best, count, solution := s.solve()
	b.Best = best
	b.Count = count
	b.Solution = solution
}

// Feasible reports whether the most recent solve found any feasible
// assignment.
func (b *Balas) Feasible() bool {
	return b.Solution != nil
}
