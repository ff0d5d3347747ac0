package hashers

import (
	"sync"

	"github.com/dwgero/hashers/internal/byteorder"
	"github.com/dwgero/hashers/internal/rng"
)

const (
	// tablePower must stay a power of two; the rotating index is masked with
	// tablePower-1.
	tablePower = 128
	// tableSlack covers the index overrun within one unrolled 64-byte
	// iteration: nine rounds advance the index past the mask boundary before
	// the final re-mask.
	tableSlack = 9
	tableLen   = tablePower + tableSlack

	// tableSeed is the fixed seed the random table is expanded from. The
	// table contents are a pure function of this constant.
	tableSeed = 0xDEADBEEFDEADBEEF
)

var (
	table     [tableLen]uint64
	tableOnce sync.Once
)

// Init populates the Mult32 random table. Calling it is optional: the table
// is built lazily on first use behind a sync.Once either way. Hosts that want
// the one-time cost out of their serving path can call Init during startup,
// before spawning workers; the Once provides the happens-before edge to every
// concurrent reader in both cases.
func Init() {
	tableOnce.Do(buildTable)
}

func buildTable() {
	g := rng.NewXorshift128Plus(tableSeed)
	for i := range table {
		table[i] = g.Next()
	}
}

// mix folds one table-keyed 64-bit value into the accumulator via the
// multiply-split primitive.
func mix(h, v uint64) uint64 {
	return h ^ uint64(uint32(v))*(v>>32)
}

// tailPattern is the in-memory layout of the 0xDCADBCEDDCADBCED pad constant
// (a modified 0xDEADBEEFDEADBEEF). Unconsumed pattern bytes act as padding,
// distinguishing trailing zero bytes from a shorter message.
var tailPattern = [8]byte{0xED, 0xBC, 0xAD, 0xDC, 0xED, 0xBC, 0xAD, 0xDC}

// tail64 overlays the 0-7 remaining bytes of b on the pad pattern and decodes
// the result as one word.
func tail64(b []byte) uint64 {
	buf := tailPattern
	copy(buf[:], b)
	return byteorder.Uint64(buf[:])
}

// Mult32 computes the 32-bit Mult32 hash of data under seed. It is the long
// input half of Sum and the fastest choice at 64 bytes and above, but is
// defined for any length.
func Mult32(data []byte, seed uint64) uint32 {
	tableOnce.Do(buildTable)

	n := uint64(len(data))
	h := seed ^ n
	i := ((n >> 6) ^ n) & (tablePower - 1)

	// Fold the initial state into itself once. i < tablePower going in, so
	// every index below stays inside the slack region until re-masked.
	h = mix(h, h^table[i])
	i++

	msg := data
	for len(msg) >= 64 {
		h = mix(h, byteorder.Uint64(msg[0:])^table[i])
		h = mix(h, byteorder.Uint64(msg[8:])^table[i+1])
		h = mix(h, byteorder.Uint64(msg[16:])^table[i+2])
		h = mix(h, byteorder.Uint64(msg[24:])^table[i+3])
		h = mix(h, byteorder.Uint64(msg[32:])^table[i+4])
		h = mix(h, byteorder.Uint64(msg[40:])^table[i+5])
		h = mix(h, byteorder.Uint64(msg[48:])^table[i+6])
		h = mix(h, byteorder.Uint64(msg[56:])^table[i+7])
		h = mix(h, table[i+8])

		i = (i + 9) & (tablePower - 1)
		msg = msg[64:]
	}

	// 0 to 63 bytes left: up to seven more 8-byte rounds, then one
	// parameterless round.
	if nb := len(msg) >> 3; nb > 0 {
		for k := 0; k < nb; k++ {
			h = mix(h, byteorder.Uint64(msg[0:])^table[i])
			i++
			msg = msg[8:]
		}
		h = mix(h, table[i])
		i++
	}

	// 0 to 7 bytes left.
	h = mix(h, tail64(msg)^table[i])

	// Fold 64 bits down to 32 with the Komi32 seed-mixing rounds.
	var s1, s5 uint32 = seedInit1, seedInit5
	s1, s5 = seedHash(s1, s5, uint32(h))
	s1, _ = seedHash(s1, s5, uint32(h>>32))
	return s1
}
