package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRNGDeterminism(t *testing.T) {
	a := NewRNG(1234)
	b := NewRNG(1234)
	assert.Equal(t, a.Bytes(256), b.Bytes(256))
}

func TestRNGReset(t *testing.T) {
	r := NewRNG(99)
	first := r.Bytes(64)
	r.Reset()
	assert.Equal(t, first, r.Bytes(64))
	assert.Equal(t, int64(99), r.Seed())
}

func TestPattern(t *testing.T) {
	p := Pattern(8)
	require.Len(t, p, 8)
	assert.Equal(t, byte(7), p[0])
	assert.Equal(t, byte(131+7), p[1])
	// Pattern is a prefix-stable sequence.
	assert.Equal(t, p, Pattern(16)[:8])
}
