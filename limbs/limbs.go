// Package limbs provides selection and lookup over limb-composite values.
//
// A [Vector] is a fixed-width sequence of variables treated as one selectable
// value: multi-limb integers, coordinate tuples and similar composites.
// Selection and lookup operate element-wise, one scalar gadget call per limb,
// so the constraint cost of every operation scales linearly with the width.
//
// [Vector] implements [selector.Selectable], so vectors can be used directly
// with [selector.MuxValues]. [Gadget] bundles the width-checked variants and
// realizes the lookup capabilities of package lookup for vectors.
package limbs

import (
	"fmt"

	"github.com/consensys/gnark/frontend"
	"github.com/rs/zerolog"

	"github.com/zkwindow/gnark-gadgets/logger"
	"github.com/zkwindow/gnark-gadgets/lookup"
	"github.com/zkwindow/gnark-gadgets/selector"
)

// Vector is a fixed-width composite of variables. Vectors are immutable:
// every operation returns a new vector and leaves its operands untouched.
type Vector []frontend.Variable

var (
	_ selector.Selectable[Vector]            = Vector{}
	_ lookup.TwoBitLookuper[Vector]          = (*Gadget)(nil)
	_ lookup.ThreeBitCondNegLookuper[Vector] = (*Gadget)(nil)
)

// Select returns v when cond is 1 and onFalse when cond is 0, selecting each
// limb independently. It panics if the widths differ.
func (v Vector) Select(api frontend.API, cond frontend.Variable, onFalse Vector) Vector {
	if len(v) != len(onFalse) {
		panic(fmt.Sprintf("limbs: select between widths %d and %d", len(v), len(onFalse)))
	}
	out := make(Vector, len(v))
	for i := range v {
		out[i] = selector.Select(api, cond, v[i], onFalse[i])
	}
	return out
}

// Gadget performs selection and table lookups over vectors of a fixed width.
type Gadget struct {
	width int
	log   zerolog.Logger
}

// NewGadget returns a gadget for vectors of the given width.
func NewGadget(width int) (*Gadget, error) {
	if width <= 0 {
		return nil, fmt.Errorf("width must be at least 1, got %d", width)
	}
	return &Gadget{
		width: width,
		log:   logger.Logger(),
	}, nil
}

// Width returns the vector width the gadget operates on.
func (g *Gadget) Width() int {
	return g.width
}

// Mux returns values[position], position read most-significant-bit-first as
// in [selector.Mux]. It panics, before emitting any constraint, if the table
// length is not 1 << len(position) or if any vector has the wrong width.
func (g *Gadget) Mux(api frontend.API, position []frontend.Variable, values []Vector) Vector {
	g.checkWidths("Mux", values)
	g.log.Debug().Int("width", g.width).Int("size", len(values)).Msg("vector mux")
	return selector.MuxValues(api, position, values)
}

// TwoBit returns table[bits[0]+2*bits[1]], looking up each limb
// independently. It panics, before emitting any constraint, on a malformed
// call. Gadget implements [lookup.TwoBitLookuper] for vectors.
func (g *Gadget) TwoBit(api frontend.API, bits []frontend.Variable, table []Vector) Vector {
	g.checkWidths("TwoBit", table)
	out := make(Vector, g.width)
	for i := range out {
		out[i] = lookup.TwoBit(api, bits, limbColumn(table, i))
	}
	return out
}

// ThreeBitCondNeg returns table[bits[0]+2*bits[1]] with every limb negated
// when bits[2] is 1. It panics, before emitting any constraint, on a
// malformed call. Gadget implements [lookup.ThreeBitCondNegLookuper] for
// vectors.
func (g *Gadget) ThreeBitCondNeg(api frontend.API, bits []frontend.Variable, table []Vector) Vector {
	g.checkWidths("ThreeBitCondNeg", table)
	out := make(Vector, g.width)
	for i := range out {
		out[i] = lookup.ThreeBitCondNeg(api, bits, limbColumn(table, i))
	}
	return out
}

func (g *Gadget) checkWidths(gadget string, values []Vector) {
	for i, v := range values {
		if len(v) != g.width {
			panic(fmt.Sprintf("limbs: %s entry %d has width %d, expected %d", gadget, i, len(v), g.width))
		}
	}
}

// limbColumn gathers limb i of every table entry into a scalar table.
func limbColumn(table []Vector, i int) []frontend.Variable {
	col := make([]frontend.Variable, len(table))
	for j := range table {
		col[j] = table[j][i]
	}
	return col
}
