package balas

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSharedBound_TryWriteOnlyTightens(t *testing.T) {
	b := newSharedBound(10)

	assert.True(t, b.tryWrite(5))
	assert.Equal(t, 5.0, b.snapshot())

	assert.False(t, b.tryWrite(7))
	assert.Equal(t, 5.0, b.snapshot())
}

func TestSharedBound_TryReadReflectsLatestWrite(t *testing.T) {
	b := newSharedBound(math.Inf(1))
	b.tryWrite(3)

	value, ok := b.tryRead()
	assert.True(t, ok)
	assert.Equal(t, 3.0, value)
}
