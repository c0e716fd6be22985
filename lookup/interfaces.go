package lookup

import (
	"github.com/consensys/gnark/frontend"
)

// TwoBitLookuper is the lookup capability for value types other than plain
// variables. Implementations must reproduce the semantics of [TwoBit]
// bit-for-bit: the result is table[bits[0]+2*bits[1]], bits read
// least-significant-bit-first, and a malformed call (len(bits) != 2,
// len(table) != 4) panics before any constraint is emitted. The constraint
// cost is specific to the value type.
type TwoBitLookuper[T any] interface {
	TwoBit(api frontend.API, bits []frontend.Variable, table []T) T
}

// ThreeBitCondNegLookuper is the signed-lookup capability for value types
// other than plain variables, with the semantics of [ThreeBitCondNeg]:
// table[bits[0]+2*bits[1]], negated when bits[2] is 1. Malformed calls
// (len(bits) != 3, len(table) != 4) panic before any constraint is emitted.
type ThreeBitCondNegLookuper[T any] interface {
	ThreeBitCondNeg(api frontend.API, bits []frontend.Variable, table []T) T
}
