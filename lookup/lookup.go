// Package lookup provides fixed-table lookup gadgets for gnark circuits.
//
// The gadgets look up a 4-entry table using 2 boolean selector bits, read
// least-significant-bit-first: b = bits[0] + 2*bits[1]. Note this is the
// opposite convention from package selector, where position bits are read
// most-significant-bit-first; the two packages deliberately share no
// index-decoding code.
//
// [ThreeBitCondNeg] adds a third bit that conditionally negates the looked-up
// value. This is the primitive behind fixed 3-bit signed-window scalar
// multiplication, where the sign bit halves the precomputed table by point
// symmetry.
//
// The selector bits are not constrained to be boolean here; the output is
// undefined for non-boolean bits.
package lookup

import (
	"fmt"

	"github.com/consensys/gnark/frontend"
)

// TwoBit returns table[bits[0]+2*bits[1]]. It panics, before emitting any
// constraint, unless len(bits) == 2 and len(table) == 4.
//
// For example TwoBit(api, [0, 1], [c0, c1, c2, c3]) returns c2.
//
// The lookup costs three multiplication constraints regardless of the table
// contents.
func TwoBit(api frontend.API, bits []frontend.Variable, table []frontend.Variable) frontend.Variable {
	assertTableShape("TwoBit", bits, 2, table)
	return lookup2(api, bits[0], bits[1], table)
}

// ThreeBitCondNeg returns table[bits[0]+2*bits[1]] * c with c = -1 when
// bits[2] is 1 and c = 1 otherwise. It panics, before emitting any
// constraint, unless len(bits) == 3 and len(table) == 4.
//
// For example ThreeBitCondNeg(api, [1, 0, 1], [c0, c1, c2, c3]) returns -c1.
func ThreeBitCondNeg(api frontend.API, bits []frontend.Variable, table []frontend.Variable) frontend.Variable {
	assertTableShape("ThreeBitCondNeg", bits, 3, table)
	v := lookup2(api, bits[0], bits[1], table)
	// sign = 1 - 2*bits[2], one more multiplication
	return api.Mul(v, api.Sub(1, api.Mul(2, bits[2])))
}

// lookup2 computes the lookup with three multiplications:
//
//	tmp = b1 * (t3 - t2 - t1 + t0) + t1 - t0
//	out = b0 * tmp + b1 * (t2 - t0) + t0
//
// which evaluates to t0, t1, t2, t3 for (b0,b1) = (0,0), (1,0), (0,1), (1,1).
func lookup2(api frontend.API, b0, b1 frontend.Variable, t []frontend.Variable) frontend.Variable {
	tmp := api.Mul(b1, api.Sub(api.Add(t[3], t[0]), t[2], t[1]))
	tmp = api.Sub(api.Add(tmp, t[1]), t[0])
	tmp = api.Mul(tmp, b0)
	out := api.Mul(b1, api.Sub(t[2], t[0]))
	return api.Add(out, tmp, t[0])
}

func assertTableShape(gadget string, bits []frontend.Variable, nbBits int, table []frontend.Variable) {
	if len(bits) != nbBits {
		panic(fmt.Sprintf("lookup: %s expects %d selector bits, got %d", gadget, nbBits, len(bits)))
	}
	if len(table) != 4 {
		panic(fmt.Sprintf("lookup: %s expects a table of 4 entries, got %d", gadget, len(table)))
	}
}
