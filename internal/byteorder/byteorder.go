package byteorder

import (
	"encoding/binary"
	"math/bits"
	"os"
	"runtime"
	"strings"

	"golang.org/x/sys/cpu"
)

// Order identifies a byte-interpretation convention for multi-byte words.
type Order uint8

const (
	// Little decodes words least-significant byte first (the default).
	Little Order = iota
	// Big decodes words most-significant byte first.
	Big
)

// String returns the string representation of an Order.
func (o Order) String() string {
	switch o {
	case Little:
		return "little"
	case Big:
		return "big"
	default:
		return "unknown"
	}
}

// ParseOrder parses a string into an Order value.
func ParseOrder(s string) (Order, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "little", "le":
		return Little, true
	case "big", "be":
		return Big, true
	default:
		return Little, false
	}
}

// Resolved once at package init; read-only afterwards.
var (
	// active is the decode convention every word read goes through.
	active Order

	// hasOverride is true if HASHERS_BYTEORDER was set to a valid value.
	hasOverride bool
)

func init() {
	if override := os.Getenv("HASHERS_BYTEORDER"); override != "" {
		if o, ok := ParseOrder(override); ok {
			active = o
			hasOverride = true
			return
		}
	}
	active = Little
}

// Active returns the decode convention in effect for this process.
func Active() Order {
	return active
}

// IsOverridden returns true if HASHERS_BYTEORDER selected the convention.
func IsOverridden() bool {
	return hasOverride
}

// Native returns the byte order of the host CPU.
func Native() Order {
	if cpu.IsBigEndian {
		return Big
	}
	return Little
}

// SwapRequired reports whether decoding under the active convention implies a
// byte swap relative to a plain memory load on this host.
func SwapRequired() bool {
	return active != Native()
}

// UnalignedReads reports whether the host architecture services unaligned
// multi-byte loads in hardware. On these targets the compiler lowers the
// decode helpers to single load instructions.
func UnalignedReads() bool {
	switch runtime.GOARCH {
	case "amd64", "386", "arm64", "ppc64le", "s390x", "wasm":
		return true
	default:
		return false
	}
}

// Uint32 decodes the first 4 bytes of b under the active convention.
func Uint32(b []byte) uint32 {
	v := binary.LittleEndian.Uint32(b)
	if active == Big {
		v = bits.ReverseBytes32(v)
	}
	return v
}

// Uint64 decodes the first 8 bytes of b under the active convention.
func Uint64(b []byte) uint64 {
	v := binary.LittleEndian.Uint64(b)
	if active == Big {
		v = bits.ReverseBytes64(v)
	}
	return v
}
