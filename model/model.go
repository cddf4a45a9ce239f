// Package model is the public problem builder: declare variables and
// constraints in whatever sense and orientation is natural, then Compile
// into a canonical *balas.Problem ready to solve. Every declared variable
// is implicitly binary; there is no bounds or integrality API because the
// solver this package feeds never handles anything but {0,1} variables.
package model

import (
	"github.com/ahenshaw/balas"
	"github.com/ahenshaw/balas/internal/normalize"
)

// Variable is one decision variable of a Model. Values are obtained only
// through Model.AddVariable; the zero value is not meaningful.
type Variable struct {
	name        string
	coefficient float64
}

// SetCoeff sets this variable's coefficient in the objective function and
// returns the receiver, so declarations can be chained.
func (v *Variable) SetCoeff(c float64) *Variable {
	v.coefficient = c
	return v
}

// Name reports the variable's declared name.
func (v *Variable) Name() string {
	return v.name
}

// term is one coef*variable summand on a Constraint's left-hand side.
type term struct {
	coef     float64
	variable *Variable
}

// relation is the comparison a Constraint's left-hand side is held to.
type relation int

const (
	relGreaterOrEqual relation = iota
	relLessOrEqual
	relEqual
)

// Constraint is a single linear constraint under construction. Obtain one
// with Model.AddConstraint, add terms with AddTerm, then fix its sense
// with exactly one of GreaterOrEqualTo, LessOrEqualTo, or EqualTo.
type Constraint struct {
	model    *Model
	terms    []term
	rel      relation
	rhs      float64
	relSet   bool
}

// AddTerm appends coef*v to the constraint's left-hand side. v must have
// been obtained from the same Model's AddVariable; passing a foreign
// Variable panics, mirroring the builder's construction-time validation
// contract (Compile never needs to re-check variable membership).
func (c *Constraint) AddTerm(coef float64, v *Variable) *Constraint {
	c.model.mustOwn(v)
	c.terms = append(c.terms, term{coef: coef, variable: v})
	return c
}

func (c *Constraint) GreaterOrEqualTo(rhs float64) *Constraint {
	c.rel, c.rhs, c.relSet = relGreaterOrEqual, rhs, true
	return c
}

func (c *Constraint) LessOrEqualTo(rhs float64) *Constraint {
	c.rel, c.rhs, c.relSet = relLessOrEqual, rhs, true
	return c
}

func (c *Constraint) EqualTo(rhs float64) *Constraint {
	c.rel, c.rhs, c.relSet = relEqual, rhs, true
	return c
}

// Model is the abstract, not-yet-normalized problem: a set of binary
// variables, a set of constraints over them, and a sense (minimize by
// default).
type Model struct {
	maximize    bool
	variables   []*Variable
	constraints []*Constraint
}

func NewModel() *Model {
	return &Model{}
}

func (m *Model) AddVariable(name string) *Variable {
	v := &Variable{name: name}
	m.variables = append(m.variables, v)
	return v
}

func (m *Model) AddConstraint() *Constraint {
	c := &Constraint{model: m}
	m.constraints = append(m.constraints, c)
	return c
}

func (m *Model) Maximize() { m.maximize = true }
func (m *Model) Minimize() { m.maximize = false }

// OriginalCoefficients reports every declared variable's name and
// objective coefficient exactly as declared (never sense-negated), in
// declaration order. Callers use this together with an Undoer's Evaluate
// to verify the round-trip property: re-scoring a canonical solution
// against the coefficients the caller actually wrote down.
func (m *Model) OriginalCoefficients() ([]string, []float64) {
	names := make([]string, len(m.variables))
	coefficients := make([]float64, len(m.variables))
	for i, v := range m.variables {
		names[i] = v.name
		coefficients[i] = v.coefficient
	}
	return names, coefficients
}

func (m *Model) mustOwn(v *Variable) {
	for _, candidate := range m.variables {
		if candidate == v {
			return
		}
	}
	panic("model: variable does not belong to this Model")
}

// Compile normalizes the declared model into canonical Balas input — sense
// conversion, constraint-direction rewriting, and negative-coefficient
// substitution — and returns a ready-to-solve *balas.Problem plus an
// Undoer that maps a canonical solution vector back onto this Model's
// variable names, inverting any substitution Compile performed.
func (m *Model) Compile() (*balas.Problem, *normalize.Undoer, error) {
	raw, err := m.toRaw()
	if err != nil {
		return nil, nil, err
	}
	return normalize.Normalize(raw)
}

// toRaw flattens the builder's variable/constraint graph into the plain
// matrices normalize.Normalize expects, validating that every declared
// constraint has a fixed sense and that the model is non-empty.
func (m *Model) toRaw() (normalize.RawProblem, error) {
	if len(m.variables) == 0 {
		return normalize.RawProblem{}, normalize.ErrNoVars
	}

	index := make(map[*Variable]int, len(m.variables))
	names := make([]string, len(m.variables))
	coefficients := make([]float64, len(m.variables))
	for i, v := range m.variables {
		index[v] = i
		names[i] = v.name
		coefficients[i] = v.coefficient
	}
	if m.maximize {
		for i := range coefficients {
			coefficients[i] = -coefficients[i]
		}
	}

	rows := make([][]float64, len(m.constraints))
	rhs := make([]float64, len(m.constraints))
	senses := make([]normalize.Sense, len(m.constraints))
	for i, c := range m.constraints {
		if !c.relSet {
			return normalize.RawProblem{}, normalize.ErrUnexpectedConstraintType
		}
		row := make([]float64, len(m.variables))
		for _, t := range c.terms {
			row[index[t.variable]] += t.coef
		}
		rows[i] = row
		rhs[i] = c.rhs
		switch c.rel {
		case relGreaterOrEqual:
			senses[i] = normalize.SenseGreaterOrEqual
		case relLessOrEqual:
			senses[i] = normalize.SenseLessOrEqual
		case relEqual:
			senses[i] = normalize.SenseEqual
		}
	}

	return normalize.RawProblem{
		Names:        names,
		Coefficients: coefficients,
		Constraints:  rows,
		RHS:          rhs,
		Senses:       senses,
	}, nil
}
