// Package normalize is the boundary between a freely-posed problem (any
// sense, any constraint direction, any-signed objective coefficients) and
// the canonical form the core solver requires: minimize, all-binary, all
// constraints in >= form, all objective coefficients nonnegative.
//
// Grounded on the original solver's lp_format.rs/lp_reader.rs
// (normalize_for_balas, create_min_objective, create_ge_constraints,
// fix_neg_variables), reimplemented as a small pipeline of independent
// passes instead of the original's single monolithic conversion function.
package normalize

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/ahenshaw/balas"
)

// Sense is the direction of a single constraint as declared by the
// caller, before normalization rewrites it to >=.
type Sense int

const (
	SenseGreaterOrEqual Sense = iota
	SenseLessOrEqual
	SenseEqual
)

// RawProblem is the not-yet-normalized input: natural (non-transposed)
// constraint rows, any constraint sense, any-signed coefficients.
type RawProblem struct {
	Names        []string
	Coefficients []float64
	Constraints  [][]float64 // Constraints[c][v], one row per constraint
	RHS          []float64
	Senses       []Sense
}

func (r RawProblem) validate() error {
	if len(r.Coefficients) == 0 {
		return ErrNoVars
	}
	n := len(r.Coefficients)
	if len(r.Constraints) != len(r.RHS) || len(r.Constraints) != len(r.Senses) {
		return fmt.Errorf("normalize: %d constraint rows, %d rhs values, %d senses: %w",
			len(r.Constraints), len(r.RHS), len(r.Senses), ErrUnexpectedConstraintType)
	}
	for i, row := range r.Constraints {
		if len(row) != n {
			return fmt.Errorf("normalize: constraint %d has %d columns, want %d: %w", i, len(row), n, ErrUnexpectedConstraintType)
		}
	}
	return nil
}

// toGreaterOrEqual rewrites every constraint into >= form: a <= row is
// negated (both sides), an = row is replaced by itself and its negation
// (two >= rows enforce equality), and a >= row passes through unchanged.
func toGreaterOrEqual(r RawProblem) RawProblem {
	var rows [][]float64
	var rhs []float64

	for i, row := range r.Constraints {
		switch r.Senses[i] {
		case SenseGreaterOrEqual:
			rows = append(rows, row)
			rhs = append(rhs, r.RHS[i])
		case SenseLessOrEqual:
			rows = append(rows, negateRow(row))
			rhs = append(rhs, -r.RHS[i])
		case SenseEqual:
			rows = append(rows, row)
			rhs = append(rhs, r.RHS[i])
			rows = append(rows, negateRow(row))
			rhs = append(rhs, -r.RHS[i])
		}
	}

	return RawProblem{
		Names:        r.Names,
		Coefficients: r.Coefficients,
		Constraints:  rows,
		RHS:          rhs,
	}
}

func negateRow(row []float64) []float64 {
	out := make([]float64, len(row))
	for i, x := range row {
		out[i] = -x
	}
	return out
}

// substitution holds, for each original variable index with a negative
// objective coefficient, the y = 1 - x rewrite applied to make the
// coefficient nonnegative.
type substitution struct {
	coefficients []float64
	constraints  [][]float64 // natural orientation, same shape as input
	rhs          []float64
	substituted  map[int]bool
}

// substituteNegativeCoefficients rewrites every variable whose objective
// coefficient is negative via y = 1 - x: the coefficient's sign flips,
// the variable's column is negated in every constraint, and each
// constraint's rhs absorbs the constant term the substitution introduces.
func substituteNegativeCoefficients(r RawProblem) substitution {
	n := len(r.Coefficients)
	coefficients := make([]float64, n)
	copy(coefficients, r.Coefficients)

	rows := make([][]float64, len(r.Constraints))
	for i, row := range r.Constraints {
		cp := make([]float64, len(row))
		copy(cp, row)
		rows[i] = cp
	}
	rhs := make([]float64, len(r.RHS))
	copy(rhs, r.RHS)

	substituted := make(map[int]bool)
	for v := 0; v < n; v++ {
		if coefficients[v] >= 0 {
			continue
		}
		coefficients[v] = -coefficients[v]
		for c := range rows {
			original := rows[c][v]
			rows[c][v] = -original
			rhs[c] -= original
		}
		substituted[v] = true
	}

	return substitution{coefficients: coefficients, constraints: rows, rhs: rhs, substituted: substituted}
}

// Normalize runs the full pipeline — constraint-sense rewriting,
// negative-coefficient substitution, presolve, and ascending-coefficient
// reordering — and returns a solver-ready Problem together with an
// Undoer that inverts every rewrite this pipeline performed.
func Normalize(r RawProblem) (*balas.Problem, *Undoer, error) {
	if err := r.validate(); err != nil {
		return nil, nil, err
	}

	converted := toGreaterOrEqual(r)
	sub := substituteNegativeCoefficients(converted)

	presolved, undoer := presolve(sub, r.Names)
	reordered := reorder(presolved)
	undoer.applyOrder(reordered.order)

	constraintsT := transpose(reordered.coefficients, reordered.constraints)

	p := balas.NewProblem(reordered.coefficients, constraintsT, reordered.rhs, reordered.names)
	return p, undoer, nil
}

// transpose converts natural-orientation rows (Constraints[c][v]) into
// the solver's per-variable column layout (Constraints[v][c]). It builds
// the natural-orientation matrix as a mat.Dense the same way api.go's
// toSolveable assembles Adata/Gdata into mat.NewDense(len(b),
// len(variables), data), then reads it back out one column per variable
// instead of indexing the flat slice by hand.
func transpose(coefficients []float64, rows [][]float64) [][]float64 {
	n := len(coefficients)
	m := len(rows)

	out := make([][]float64, n)
	if m == 0 {
		for v := range out {
			out[v] = []float64{}
		}
		return out
	}

	flat := make([]float64, 0, m*n)
	for _, row := range rows {
		flat = append(flat, row...)
	}
	natural := mat.NewDense(m, n, flat)

	for v := 0; v < n; v++ {
		col := make([]float64, m)
		mat.Col(col, v, natural)
		out[v] = col
	}
	return out
}
