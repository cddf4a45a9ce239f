package balas

import "fmt"

// Problem is the immutable, normalized input to the solver: a
// minimization objective with nonnegative coefficients, a
// >=-constraint matrix stored transposed (one row per variable, one
// column per constraint), and the right-hand side. A Problem is built
// once per solve call and is never mutated afterwards, so it may be
// aliased freely by every worker goroutine spawned by Solve.
type Problem struct {
	N int
	M int

	// Coefficients holds the objective coefficient for each variable,
	// by convention ascending (cheaper variables first).
	Coefficients []float64

	// Constraints[v][c] is the contribution of variable v, when set to
	// one, to constraint row c.
	Constraints [][]float64

	RHS []float64

	// Cumulative[v][c], for 0 <= v <= N-2, is the optimistic upper
	// bound on how much constraint c can still improve from variables
	// strictly deeper than v. Index N-1 is deliberately absent: there
	// are no children past the last variable.
	Cumulative [][]float64

	// Names carries variable names for reporting only; the solver
	// never reads them.
	Names []string
}

// NewProblem validates the shapes of its arguments and precomputes the
// cumulative bound. Shape mismatches indicate a caller bug (normally
// caught upstream by the normalizer) and panic rather than returning
// an error, matching the solver's contract: Balas.New never fails.
func NewProblem(coefficients []float64, constraints [][]float64, rhs []float64, names []string) *Problem {
	n := len(coefficients)
	m := len(rhs)

	if len(constraints) != n {
		panic(fmt.Sprintf("balas: %d constraint rows for %d variables", len(constraints), n))
	}
	for v, row := range constraints {
		if len(row) != m {
			panic(fmt.Sprintf("balas: constraint row %d has %d columns, want %d (len(rhs))", v, len(row), m))
		}
	}
	if names != nil && len(names) != n {
		panic(fmt.Sprintf("balas: %d variable names for %d variables", len(names), n))
	}

	var cumulative [][]float64
	if n > 1 {
		cumulative = computeCumulative(constraints, n, m)
	}

	return &Problem{
		N:            n,
		M:            m,
		Coefficients: coefficients,
		Constraints:  constraints,
		RHS:          rhs,
		Cumulative:   cumulative,
		Names:        names,
	}
}
