package random

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRollStaysInRange(t *testing.T) {
	r := New(&Config{Seed: 42})
	for i := 0; i < 500; i++ {
		v := r.Roll(6)
		assert.GreaterOrEqual(t, v, 1)
		assert.LessOrEqual(t, v, 6)
	}
}

func TestRollDegenerateSides(t *testing.T) {
	r := New(nil)
	assert.Equal(t, 1, r.Roll(0))
	assert.Equal(t, 1, r.Roll(-3))
}

func TestSameSeedSameSequence(t *testing.T) {
	a := New(&Config{Seed: 7})
	b := New(&Config{Seed: 7})
	for i := 0; i < 20; i++ {
		assert.Equal(t, a.Roll(24), b.Roll(24))
	}
}

func TestIndex(t *testing.T) {
	r := New(&Config{Seed: 1})
	assert.Equal(t, 0, Index(r, 1))
	assert.Equal(t, 0, Index(r, 0))
	for i := 0; i < 100; i++ {
		idx := Index(r, 3)
		assert.True(t, idx >= 0 && idx < 3)
	}
}
