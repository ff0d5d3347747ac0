package hashers_test

import (
	"fmt"

	"github.com/dwgero/hashers"
)

func ExampleSum() {
	key := []byte("The quick brown fox jumps over the lazy dog")

	fmt.Printf("%#08x\n", hashers.Sum(key, 0))
	// Output: 0xae18be8c
}

func ExampleSumString() {
	h := hashers.SumString("The quick brown fox jumps over the lazy dog", 0xDEADBEEF)

	fmt.Printf("%#08x\n", h)
	// Output: 0xa37cb8a5
}

func ExampleSumBatch() {
	keys := [][]byte{
		[]byte("alpha"),
		[]byte("beta"),
		[]byte("gamma"),
	}

	for i, h := range hashers.SumBatch(keys, 0) {
		fmt.Printf("%s -> bucket %d of 16\n", keys[i], h&15)
	}
}
