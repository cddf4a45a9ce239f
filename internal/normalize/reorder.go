package normalize

import "sort"

// reordered is the final, solver-ready variable ordering: ascending by
// objective coefficient so cheaper variables are branched first, which
// tends to improve pruning early in the search (not required for
// correctness).
//
// Recovered from the original's lp_format.rs (obj.sort_by comparing
// coefficients), adapted from the teacher's branching.go
// (maxFunBranchPoint's per-node coefficient comparison repurposed into a
// single up-front sort, since Balas fixes variable order once rather
// than re-deciding it at every node).
type reordered struct {
	coefficients []float64
	constraints  [][]float64 // natural orientation: constraints[c][v]
	rhs          []float64
	names        []string
	order        []int // order[v] is this variable's original index, before presolve and reordering
}

func reorder(p presolved) reordered {
	n := len(p.coefficients)
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	sort.SliceStable(perm, func(i, j int) bool {
		return p.coefficients[perm[i]] < p.coefficients[perm[j]]
	})

	out := reordered{
		coefficients: make([]float64, n),
		names:        make([]string, n),
		order:        make([]int, n),
		rhs:          p.rhs,
	}
	out.constraints = make([][]float64, len(p.constraints))
	for c, row := range p.constraints {
		newRow := make([]float64, n)
		for i, v := range perm {
			newRow[i] = row[v]
		}
		out.constraints[c] = newRow
	}
	for i, v := range perm {
		out.coefficients[i] = p.coefficients[v]
		out.names[i] = p.names[v]
		out.order[i] = p.origIndex[v]
	}
	return out
}
