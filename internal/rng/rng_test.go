package rng

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Known-answer values; a change here silently rebuilds a different Mult32
// table.
func TestSplitMix64(t *testing.T) {
	tests := []struct {
		in   uint64
		want uint64
	}{
		{0x0000000000000000, 0x0000000000000000},
		{0x0000000000000001, 0x5692161D100B05E5},
		{0x9E3779B97F4A7C15, 0xE220A8397B1DCDAF},
		{0xDEADBEEFDEADBEEF, 0x64C2DF93E2E8338C},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, SplitMix64(tt.in), "SplitMix64(%#x)", tt.in)
	}
}

func TestXorshift128PlusSequence(t *testing.T) {
	g := NewXorshift128Plus(0xDEADBEEFDEADBEEF)

	want := []uint64{
		0x97AECD63E10DE919,
		0x5104E9B6883306D9,
		0x0538ED05CE418B71,
		0xD2B91008EECDD513,
		0x4913F1CDFD91BC64,
		0x7CD351C365F691EC,
	}
	for i, w := range want {
		require.Equal(t, w, g.Next(), "output %d", i)
	}

	g1 := NewXorshift128Plus(1)
	want1 := []uint64{
		0x9B3DF27E919F6A0C,
		0x913C0B97EDDC4551,
		0xB8745298B438E33C,
		0xEDAA33964D510CA2,
	}
	for i, w := range want1 {
		require.Equal(t, w, g1.Next(), "output %d", i)
	}
}

func TestXorshift128PlusDeterminism(t *testing.T) {
	a := NewXorshift128Plus(42)
	b := NewXorshift128Plus(42)
	for i := 0; i < 1000; i++ {
		require.Equal(t, a.Next(), b.Next(), "iteration %d", i)
	}
}
