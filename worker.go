package balas

import "math"

// workerState is one of the three states of the iterative traversal:
// Normal descends and tests, Backtrack undoes and looks for the next
// branch to try, Terminate ends the worker's run.
type workerState int

const (
	stateNormal workerState = iota
	stateBacktrack
	stateTerminate
)

// subtreeWorker performs a single-threaded iterative traversal of one
// fixed subtree of the binary decision tree. Its vars, accumulator,
// objective, and count are exclusive to this worker and are never
// visible to any other worker until the dispatcher joins.
type subtreeWorker struct {
	problem *Problem
	bound   *sharedBound

	k int // the prefix depth this worker was assigned

	vars        []int
	depth       int
	branch      int
	objective   float64
	accumulator []float64
	state       workerState

	bestLocal    float64
	bestSolution []int
	count        int64
}

// newSubtreeWorker reconstructs the worker state by replaying the
// prefix: bit i of the prefix index (least-significant-first) is the
// branch assigned at depth i, for every depth strictly less than k.
func newSubtreeWorker(p *Problem, bound *sharedBound, k, prefix int) *subtreeWorker {
	w := &subtreeWorker{
		problem:     p,
		bound:       bound,
		k:           k,
		vars:        make([]int, p.N),
		accumulator: make([]float64, p.M),
		bestLocal:   math.Inf(1),
		state:       stateNormal,
	}
	for c := 0; c < p.M; c++ {
		w.accumulator[c] = -p.RHS[c]
	}

	for i := 0; i < k; i++ {
		if (prefix>>uint(i))&1 == 1 {
			w.vars[i] = 1
			w.objective += p.Coefficients[i]
			row := p.Constraints[i]
			for c := 0; c < p.M; c++ {
				w.accumulator[c] += row[c]
			}
		}
	}

	w.depth = k
	w.branch = 0
	return w
}

// run drives the state machine to exhaustion and reports this
// worker's best feasible objective, node count, and the solution
// vector achieving it (nil if no feasible assignment was found in
// this subtree).
func (w *subtreeWorker) run() (float64, int64, []int) {
	// The subtree root (the replayed prefix with every deeper variable at
	// zero) is never entered through a one-branch, so it gets its own
	// fathom test: if it is already feasible it dominates its subtree.
	if allNonNegative(w.accumulator) {
		w.count++
		w.bestLocal = w.objective
		w.bestSolution = cloneInts(w.vars)
		w.bound.tryWrite(w.objective)
		w.state = stateTerminate
	}
	for w.state != stateTerminate {
		if w.state == stateNormal {
			w.stepNormal()
		} else {
			w.stepBacktrack()
		}
	}
	return w.bestLocal, w.count, w.bestSolution
}

func (w *subtreeWorker) stepNormal() {
	if w.branch == 1 {
		w.enterOneBranch()
		if w.state == stateBacktrack {
			return
		}
	} else {
		w.count++
	}
	w.descend()
}

// enterOneBranch applies the tentative one-assignment at the current
// depth, increments the node count unconditionally on entry, and only
// then runs the bound test followed by the fathom test, in that order.
// It leaves w.state as stateBacktrack if either test disposes of this
// node, or stateNormal (unchanged) if descent should proceed.
func (w *subtreeWorker) enterOneBranch() {
	w.vars[w.depth] = 1
	row := w.problem.Constraints[w.depth]
	for c := 0; c < w.problem.M; c++ {
		w.accumulator[c] += row[c]
	}
	w.objective += w.problem.Coefficients[w.depth]
	w.count++

	// Bound test. bestLocal only ever holds this worker's own fathomed
	// objective; against the shared bound only a strictly worse objective
	// is pruned, so a node matching a seeded or published value can still
	// become this worker's witness.
	if w.objective >= w.bestLocal {
		w.state = stateBacktrack
		return
	}
	if global, ok := w.bound.tryRead(); ok && w.objective > global {
		w.state = stateBacktrack
		return
	}

	// Fathom test.
	if allNonNegative(w.accumulator) {
		w.bestLocal = w.objective
		w.bestSolution = cloneInts(w.vars)
		w.bound.tryWrite(w.objective)
		w.state = stateBacktrack
		return
	}
}

// descend performs the cumulative-feasibility test and either
// advances to the zero-branch of the next depth or switches to
// Backtrack. Called once per Normal step regardless of which branch
// was just entered (the root worker's zero-branch at depth 0 changes
// neither objective nor accumulator but must still trigger descent).
//
// A Problem with N == 0 (every variable presolved away) has no vars to
// index and no Cumulative table at all, so it is handled as a special
// case here rather than falling into the usual depth bookkeeping: the
// empty assignment is the only candidate, and it is fathomed directly
// against the fixed accumulator.
func (w *subtreeWorker) descend() {
	if w.problem.N == 0 {
		if allNonNegative(w.accumulator) {
			w.bestLocal = 0
			w.bestSolution = []int{}
			w.bound.tryWrite(0)
		}
		w.state = stateTerminate
		return
	}
	if w.depth == w.problem.N-1 {
		w.state = stateBacktrack
		return
	}
	cum := w.problem.Cumulative[w.depth]
	for c := 0; c < w.problem.M; c++ {
		if w.accumulator[c]+cum[c] < 0 {
			w.state = stateBacktrack
			return
		}
	}
	w.depth++
	w.branch = 0
}

func (w *subtreeWorker) stepBacktrack() {
	if w.vars[w.depth] == 1 {
		if w.depth == w.k {
			// This worker cannot escape its assigned prefix.
			w.state = stateTerminate
			return
		}
		row := w.problem.Constraints[w.depth]
		for c := 0; c < w.problem.M; c++ {
			w.accumulator[c] -= row[c]
		}
		w.objective -= w.problem.Coefficients[w.depth]
		w.vars[w.depth] = 0
		w.depth--
		return
	}
	w.branch = 1
	w.state = stateNormal
}

func allNonNegative(xs []float64) bool {
	for _, x := range xs {
		if x < 0 {
			return false
		}
	}
	return true
}

func cloneInts(xs []int) []int {
	out := make([]int, len(xs))
	copy(out, xs)
	return out
}
