package lpformat

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahenshaw/balas/internal/normalize"
)

const scenarioA = `
Minimize:
 obj: 3 x1 + 5 x2 + 6 x3 + 9 x4 + 10 x5 + 10 x6

Subject To:
 c1: -2 x1 + 6 x2 - 3 x3 + 4 x4 + x5 - 2 x6 >= 2
 c2: -5 x1 - 3 x2 + x3 + 3 x4 - 2 x5 + x6 >= -2
 c3: 5 x1 - x2 + 4 x3 - 2 x4 + 2 x5 - x6 >= 3

Binary:
 x1 x2 x3 x4 x5 x6
`

func TestParse_ScenarioA(t *testing.T) {
	m, err := Parse(strings.NewReader(scenarioA))
	require.NoError(t, err)

	p, _, err := m.Compile()
	require.NoError(t, err)
	assert.Equal(t, 6, p.N)
	assert.Equal(t, 3, p.M)
}

func TestParse_MissingObjective(t *testing.T) {
	_, err := Parse(strings.NewReader("Subject To:\n c1: x1 >= 1\nBinary:\n x1\n"))
	assert.Error(t, err)
}

func TestParse_UndeclaredVariableIsNotBinary(t *testing.T) {
	src := "Minimize:\n obj: x1 + x2\nSubject To:\n c1: x1 + x2 >= 1\nBinary:\n x1\n"
	_, err := Parse(strings.NewReader(src))
	assert.ErrorIs(t, err, normalize.ErrVarNotBinary)
}

func TestParse_MaximizeSense(t *testing.T) {
	src := "Maximize:\n obj: 2 x1\nSubject To:\n c1: x1 >= 1\nBinary:\n x1\n"
	m, err := Parse(strings.NewReader(src))
	require.NoError(t, err)
	p, _, err := m.Compile()
	require.NoError(t, err)
	// Maximize negates the objective coefficient internally; the
	// normalizer's y = 1 - x substitution then flips the sign back to
	// nonnegative, so the solver-visible coefficient is positive again.
	assert.GreaterOrEqual(t, p.Coefficients[0], 0.0)
}

func TestParse_EqualityConstraintProducesTwoRows(t *testing.T) {
	src := "Minimize:\n obj: x1 + x2\nSubject To:\n c1: x1 + x2 = 1\nBinary:\n x1 x2\n"
	m, err := Parse(strings.NewReader(src))
	require.NoError(t, err)
	p, _, err := m.Compile()
	require.NoError(t, err)
	assert.Equal(t, 2, p.M)
}
