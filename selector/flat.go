package selector

import (
	"math/bits"

	"github.com/bits-and-blooms/bitset"
	"github.com/consensys/gnark/frontend"

	"github.com/zkwindow/gnark-gadgets/logger"
)

// FlatMux returns values[position] like [Mux], but computes the result as a
// single weighted sum instead of a selection tree:
//
//	out = Σ_i values[i] * indicator_i
//
// where indicator_i is 1 when the selector bits encode i and 0 otherwise.
// Indicators are linear combinations of subset products of the selector bits,
// obtained by inclusion-exclusion over the boolean lattice: writing S_j for
// the product of the bits selected by mask j,
//
//	indicator_i = Σ_{j ⊇ i} (-1)^popcount(j^i) * S_j
//
// The subset products cost m-n-1 multiplications (masks of two or more bits)
// and the weighted sum costs m more, one per table entry. The sum itself is a
// single layer, so the result sits at a lower multiplicative depth than the
// tree of [Mux] at the price of roughly twice the constraints.
//
// FlatMux and [Mux] agree on every witness; [Mux] remains the canonical
// construction. Preconditions and selector-bit conventions are those of
// [Mux].
func FlatMux(api frontend.API, position []frontend.Variable, values []frontend.Variable) frontend.Variable {
	assertPowerOfTwoTable(len(position), len(values))

	n := len(position)
	m := len(values)
	if n == 0 {
		return values[0]
	}

	log := logger.Logger()
	log.Debug().Int("size", m).Int("products", m-n-1).Msg("building flat selection")

	// mask bit k of an index corresponds to position[n-1-k]: position is
	// most-significant-bit-first, masks are least-significant-bit-first.
	bitsLSB := make([]frontend.Variable, n)
	for k := 0; k < n; k++ {
		bitsLSB[k] = position[n-1-k]
	}

	// products[j] = Π_{k in j} bitsLSB[k]. Singleton masks are the bits
	// themselves; every other non-trivial mask costs one multiplication,
	// peeling off the top bit of the mask.
	products := make([]frontend.Variable, m)
	products[0] = 1
	for k := 0; k < n; k++ {
		products[1<<k] = bitsLSB[k]
	}
	for j := 3; j < m; j++ {
		if bits.OnesCount(uint(j)) < 2 {
			continue
		}
		top := 1 << (bits.Len(uint(j)) - 1)
		products[j] = api.Mul(products[top], products[j^top])
	}

	out := frontend.Variable(0)
	for i := 0; i < m; i++ {
		plus, minus := supersetsByParity(uint(i), uint(m))
		indicator := frontend.Variable(0)
		for j, ok := plus.NextSet(0); ok; j, ok = plus.NextSet(j + 1) {
			indicator = api.Add(indicator, products[j])
		}
		for j, ok := minus.NextSet(0); ok; j, ok = minus.NextSet(j + 1) {
			indicator = api.Sub(indicator, products[j])
		}
		out = api.MulAcc(out, values[i], indicator)
	}
	return out
}

// supersetsByParity enumerates the masks j with i ⊆ j < m and splits them by
// the parity of popcount(j^i): even parity lands in plus, odd in minus. These
// are the inclusion-exclusion terms of indicator_i.
func supersetsByParity(i, m uint) (plus, minus *bitset.BitSet) {
	plus = bitset.New(m)
	minus = bitset.New(m)
	for j := i; j < m; j = (j + 1) | i {
		if bits.OnesCount(j^i)%2 == 0 {
			plus.Set(j)
		} else {
			minus.Set(j)
		}
	}
	return plus, minus
}
