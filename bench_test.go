package hashers

import (
	"fmt"
	"testing"

	"github.com/dwgero/hashers/testutil"
)

var benchSink uint32

func BenchmarkSum(b *testing.B) {
	for _, size := range []int{4, 16, 32, 64, 256, 1024, 8192, 65536} {
		data := testutil.NewRNG(1).Bytes(size)
		b.Run(fmt.Sprintf("%dB", size), func(b *testing.B) {
			b.SetBytes(int64(size))
			for i := 0; i < b.N; i++ {
				benchSink = Sum(data, 0)
			}
		})
	}
}

func BenchmarkKomi32(b *testing.B) {
	for _, size := range []int{4, 16, 32, 63} {
		data := testutil.NewRNG(1).Bytes(size)
		b.Run(fmt.Sprintf("%dB", size), func(b *testing.B) {
			b.SetBytes(int64(size))
			for i := 0; i < b.N; i++ {
				benchSink = Komi32(data, 0)
			}
		})
	}
}

func BenchmarkMult32(b *testing.B) {
	Init()
	for _, size := range []int{64, 1024, 65536, 1 << 20} {
		data := testutil.NewRNG(1).Bytes(size)
		b.Run(fmt.Sprintf("%dB", size), func(b *testing.B) {
			b.SetBytes(int64(size))
			for i := 0; i < b.N; i++ {
				benchSink = Mult32(data, 0)
			}
		})
	}
}

func BenchmarkSumBatch(b *testing.B) {
	for _, n := range []int{1000, 100000} {
		keys := batchKeys(n)
		var total int64
		for _, k := range keys {
			total += int64(len(k))
		}
		b.Run(fmt.Sprintf("%dkeys", n), func(b *testing.B) {
			b.SetBytes(total)
			for i := 0; i < b.N; i++ {
				out := SumBatch(keys, 0)
				benchSink = out[0]
			}
		})
	}
}
