package hashers

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Below this many keys the goroutine fan-out costs more than it saves.
const batchParallelThreshold = 4096

// batchChunk keys per worker task; coarse enough to amortize scheduling.
const batchChunk = 1024

// SumBatch hashes every key under the same seed and returns the results in
// input order. Large batches are sharded across CPUs; intended for bulk
// hash-table loads where keys arrive by the million.
func SumBatch(keys [][]byte, seed uint64) []uint32 {
	out := make([]uint32, len(keys))

	if len(keys) < batchParallelThreshold {
		for i, k := range keys {
			out[i] = Sum(k, seed)
		}
		return out
	}

	// Build the Mult32 table up front rather than on a worker's first long
	// key, so workers never contend on the Once.
	Init()

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))

	for start := 0; start < len(keys); start += batchChunk {
		start := start
		end := min(start+batchChunk, len(keys))
		g.Go(func() error {
			for i := start; i < end; i++ {
				out[i] = Sum(keys[i], seed)
			}
			return nil
		})
	}

	// Workers are pure and never fail.
	_ = g.Wait()

	return out
}
