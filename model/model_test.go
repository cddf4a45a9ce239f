package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahenshaw/balas/internal/normalize"
)

func TestModel_CompileRoundTrips(t *testing.T) {
	m := NewModel()
	x1 := m.AddVariable("x1").SetCoeff(3)
	x2 := m.AddVariable("x2").SetCoeff(5)
	m.AddConstraint().AddTerm(1, x1).AddTerm(1, x2).GreaterOrEqualTo(1)

	p, undoer, err := m.Compile()
	require.NoError(t, err)
	require.Equal(t, 2, p.N)

	names, coefficients := m.OriginalCoefficients()
	assert.Equal(t, []string{"x1", "x2"}, names)
	assert.Equal(t, []float64{3, 5}, coefficients)

	solution := make([]int, p.N)
	values := undoer.Invert(solution)
	assert.Equal(t, 0.0, values["x1"])
	assert.Equal(t, 0.0, values["x2"])
	assert.Equal(t, 0.0, undoer.Evaluate(coefficients, solution))
}

func TestModel_MaximizeNegatesObjectiveBeforeNormalization(t *testing.T) {
	m := NewModel()
	x1 := m.AddVariable("x1").SetCoeff(4)
	m.AddConstraint().AddTerm(1, x1).GreaterOrEqualTo(1)
	m.Maximize()

	p, _, err := m.Compile()
	require.NoError(t, err)
	// Maximizing a positive coefficient negates it, then the
	// nonnegative-coefficient substitution flips the sign straight back.
	assert.GreaterOrEqual(t, p.Coefficients[0], 0.0)
}

func TestModel_EmptyModelRejected(t *testing.T) {
	m := NewModel()
	_, _, err := m.Compile()
	assert.ErrorIs(t, err, normalize.ErrNoVars)
}

func TestModel_ConstraintWithoutSenseRejected(t *testing.T) {
	m := NewModel()
	x1 := m.AddVariable("x1")
	m.AddConstraint().AddTerm(1, x1)

	_, _, err := m.Compile()
	assert.ErrorIs(t, err, normalize.ErrUnexpectedConstraintType)
}

func TestModel_AddTermPanicsOnForeignVariable(t *testing.T) {
	m1 := NewModel()
	m2 := NewModel()
	foreign := m2.AddVariable("x1")

	assert.Panics(t, func() {
		m1.AddConstraint().AddTerm(1, foreign)
	})
}

func TestVariable_Name(t *testing.T) {
	m := NewModel()
	v := m.AddVariable("widgets")
	assert.Equal(t, "widgets", v.Name())
}
