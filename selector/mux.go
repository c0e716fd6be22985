package selector

import (
	"fmt"

	"github.com/consensys/gnark/frontend"
)

// Mux returns values[position], where position is a sequence of boolean
// selector wires read as an unsigned integer most-significant-bit-first.
// len(values) must be exactly 1 << len(position); Mux panics otherwise,
// before emitting any constraint.
//
// The result is computed by a binary selection tree: len(values)-1 two-way
// selects, with a multiplicative depth of len(position).
//
// position is not constrained to be boolean here; see the package
// documentation.
func Mux(api frontend.API, position []frontend.Variable, values []frontend.Variable) frontend.Variable {
	assertPowerOfTwoTable(len(position), len(values))
	return muxTree(position, values, func(cond, ifTrue, ifFalse frontend.Variable) frontend.Variable {
		return Select(api, cond, ifTrue, ifFalse)
	})
}

// MuxValues is [Mux] generalized to any [Selectable] candidate type. The
// candidate type is fixed at circuit-definition time, so selection dispatches
// statically.
func MuxValues[T Selectable[T]](api frontend.API, position []frontend.Variable, values []T) T {
	assertPowerOfTwoTable(len(position), len(values))
	return muxTree(position, values, func(cond frontend.Variable, ifTrue, ifFalse T) T {
		return ifTrue.Select(api, cond, ifFalse)
	})
}

// muxTree folds the candidate table one selector bit at a time, least
// significant bit first. Each level pairs adjacent candidates and selects
// within each pair, halving the table; after len(position) levels a single
// candidate remains.
//
// With position read most-significant-bit-first, selecting on the last bit
// first keeps candidates of each pair adjacent at every level: after the
// first level, entry k of the next table is values[2k + lsb], and so on up
// the tree.
func muxTree[T any](position []frontend.Variable, values []T, sel func(cond frontend.Variable, ifTrue, ifFalse T) T) T {
	cur := values
	for i := len(position) - 1; i >= 0; i-- {
		next := make([]T, len(cur)/2)
		for k := range next {
			next[k] = sel(position[i], cur[2*k+1], cur[2*k])
		}
		cur = next
	}
	return cur[0]
}

func assertPowerOfTwoTable(nbBits, nbValues int) {
	if nbValues != 1<<nbBits {
		panic(fmt.Sprintf("selector: table length %d does not match %d selector bits (expected %d)", nbValues, nbBits, 1<<nbBits))
	}
}
