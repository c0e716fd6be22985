// Package selector provides conditional-selection gadgets for gnark circuits.
//
// [Select] picks between two candidates using one boolean selector. [Mux] and
// [MuxValues] extend it to 2^n candidates addressed by n selector bits,
// interpreted as an unsigned integer most-significant-bit-first: position[0]
// is the top bit. To select values[6] from a table of 8, pass
// position = [1, 1, 0].
//
// The selection is performed by a binary tree of two-way selects, one tree
// level per selector bit, so a table of m candidates costs exactly m-1
// multiplication constraints. [FlatMux] offers the same semantics as a single
// weighted sum, trading constraint count for multiplicative depth.
//
// None of the gadgets constrain the selector bits to be boolean; that
// invariant belongs to the caller (e.g. bits produced by bits.ToBinary, or
// asserted with api.AssertIsBoolean). The output is undefined for non-boolean
// selectors.
package selector

import (
	"github.com/consensys/gnark/frontend"
)

// Select returns ifTrue when cond is 1, and ifFalse when cond is 0, using a
// single multiplication constraint:
//
//	out = ifFalse + cond * (ifTrue - ifFalse)
//
// cond must be boolean-constrained by the caller; the output is undefined
// otherwise.
func Select(api frontend.API, cond, ifTrue, ifFalse frontend.Variable) frontend.Variable {
	return api.Add(ifFalse, api.Mul(cond, api.Sub(ifTrue, ifFalse)))
}

// Selectable is implemented by circuit value types that support two-way
// conditional selection. The receiver is the if-true candidate:
// v.Select(api, cond, w) evaluates to v when cond is 1 and to w when cond is
// 0. Implementations must not mutate either candidate; selection produces a
// new value.
//
// Composite types (multi-limb integers, curve points) typically implement it
// with one [Select] per coordinate.
type Selectable[T any] interface {
	Select(api frontend.API, cond frontend.Variable, onFalse T) T
}
