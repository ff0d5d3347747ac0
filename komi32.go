package hashers

import "github.com/dwgero/hashers/internal/byteorder"

// Seed lane initializers shared by Komi32 and the Mult32 64→32 fold. Two
// distinct constants chosen as good multiplicative-PRNG starting points.
const (
	seedInit1 = 0xC5A308D3
	seedInit5 = 0xB8D01377
)

// Transient lane derivation constants for the 32-byte bulk phase.
const (
	laneC2 = 0x03707344
	laneC3 = 0x299F31D0
	laneC4 = 0xEC4E6C89
	laneC6 = 0x34E90C6C
	laneC7 = 0xC97C50DD
	laneC8 = 0xB5470917
)

// Even/odd bit-position masks used when folding seed material into the lanes.
const (
	evenBits = 0x55555555
	oddBits  = 0xAAAAAAAA
)

// mulSplit multiplies two 32-bit values and returns the 64-bit product split
// into its low and high halves. The nonlinear mixing step of both hashers.
func mulSplit(a, b uint32) (lo, hi uint32) {
	p := uint64(a) * uint64(b)
	return uint32(p), uint32(p >> 32)
}

// seedHash folds one 32-bit word of seed material into the lane pair, keyed
// by the word's even and odd bit positions.
func seedHash(s1, s5, x uint32) (uint32, uint32) {
	lo, hi := mulSplit(s1^(x&evenBits), s5^(x&oddBits))
	s5 += hi
	s1 = s5 ^ lo
	return s1, s5
}

// hashRound advances the lane pair without consuming input. The three steps
// are the simplest constant-less PRNG with Seed1 as output (2^32 period).
func hashRound(s1, s5 uint32) (uint32, uint32) {
	lo, hi := mulSplit(s1, s5)
	s5 += hi
	s1 = s5 ^ lo
	return s1, s5
}

// finalBytes32 packs the 0-3 bytes of b into a word and sets the pad bit fb
// just past them, so trailing zero bytes hash differently from a shorter
// message.
func finalBytes32(b []byte, fb uint32) uint32 {
	var buf [4]byte
	copy(buf[:], b)
	return byteorder.Uint32(buf[:]) | fb<<(uint(len(b))<<3)
}

// Komi32 computes the 32-bit Komi32 hash of data under seed. It is the short
// input half of Sum and the fastest choice below 64 bytes, but is defined for
// any length.
func Komi32(data []byte, seed uint64) uint32 {
	n := uint64(len(data))

	var s1, s5 uint32 = seedInit1, seedInit5

	seed ^= n
	s1, s5 = seedHash(s1, s5, uint32(seed))
	s1, s5 = seedHash(s1, s5, uint32(seed>>32))

	if len(data) == 0 {
		s1, s5 = hashRound(s1, s5)
		s1, s5 = hashRound(s1, s5)
		return s1
	}

	msg := data

	if len(msg) >= 32 {
		// Four interleaved lane pairs. Results feed the next pair in a fixed
		// rotation so the lanes cannot synchronize; Seed1-4 fuse into a
		// single 128-bit PRNG value with a summary period of 2^34.
		s2 := laneC2 ^ s1
		s3 := laneC3 ^ s1
		s4 := laneC4 ^ s1
		s6 := laneC6 ^ s5
		s7 := laneC7 ^ s5
		s8 := laneC8 ^ s5

		for len(msg) >= 32 {
			lo1, hi1 := mulSplit(s1^byteorder.Uint32(msg[0:]), s5^byteorder.Uint32(msg[4:]))
			s5 += hi1
			lo2, hi2 := mulSplit(s2^byteorder.Uint32(msg[8:]), s6^byteorder.Uint32(msg[12:]))
			s2 = s5 ^ lo2
			s6 += hi2
			lo3, hi3 := mulSplit(s3^byteorder.Uint32(msg[16:]), s7^byteorder.Uint32(msg[20:]))
			s3 = s6 ^ lo3
			s7 += hi3
			lo4, hi4 := mulSplit(s4^byteorder.Uint32(msg[24:]), s8^byteorder.Uint32(msg[28:]))
			s4 = s7 ^ lo4
			s8 += hi4
			s1 = s8 ^ lo1

			msg = msg[32:]
		}

		s5 ^= s6 ^ s7 ^ s8
		s1 ^= s2 ^ s3 ^ s4
	}

	// 0 to 31 bytes left: up to three single-lane 8-byte rounds.
	for i := len(msg) >> 3; i > 0; i-- {
		lo, hi := mulSplit(s1^byteorder.Uint32(msg[0:]), s5^byteorder.Uint32(msg[4:]))
		s5 += hi
		s1 = s5 ^ lo
		msg = msg[8:]
	}

	// 0 to 7 bytes left. The pad bit position depends on the top bit of the
	// last byte of the whole message, even when that byte was already consumed
	// by an earlier round.
	fb := uint32(1) << (data[len(data)-1] >> 7)
	if len(msg) >= 4 {
		s1 ^= byteorder.Uint32(msg[0:])
		s5 ^= finalBytes32(msg[4:], fb)
	} else {
		s1 ^= finalBytes32(msg, fb)
	}

	s1, s5 = hashRound(s1, s5)
	s1, _ = hashRound(s1, s5)
	return s1
}
