package hashers

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dwgero/hashers/testutil"
)

func batchKeys(n int) [][]byte {
	rng := testutil.NewRNG(321)
	keys := make([][]byte, n)
	for i := range keys {
		// Mix of short and long keys so both hashers run.
		keys[i] = rng.Bytes(rng.Intn(200))
	}
	return keys
}

func TestSumBatch(t *testing.T) {
	// Sizes straddling the parallel threshold.
	for _, n := range []int{0, 1, 100, batchParallelThreshold - 1, batchParallelThreshold, 10000} {
		t.Run(fmt.Sprintf("%dkeys", n), func(t *testing.T) {
			keys := batchKeys(n)
			got := SumBatch(keys, 77)
			require.Len(t, got, n)
			for i, k := range keys {
				require.Equal(t, Sum(k, 77), got[i], "key %d", i)
			}
		})
	}
}

func TestSumBatchSeedMatters(t *testing.T) {
	keys := batchKeys(10)
	assert.NotEqual(t, SumBatch(keys, 1), SumBatch(keys, 2))
}
