package lookup_test

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/frontend/cs/r1cs"
	"github.com/consensys/gnark/test"
	"github.com/stretchr/testify/require"

	"github.com/zkwindow/gnark-gadgets/lookup"
)

type twoBitCircuit struct {
	Bits  [2]frontend.Variable
	Table [4]frontend.Variable
	Out   frontend.Variable
}

func (c *twoBitCircuit) Define(api frontend.API) error {
	for _, b := range c.Bits {
		api.AssertIsBoolean(b)
	}
	api.AssertIsEqual(lookup.TwoBit(api, c.Bits[:], c.Table[:]), c.Out)
	return nil
}

func TestTwoBit(t *testing.T) {
	assert := test.NewAssert(t)

	table := [4]frontend.Variable{20, 21, 22, 23}
	// bits are least-significant-bit-first: [0, 1] is index 2
	assert.CheckCircuit(&twoBitCircuit{},
		test.WithValidAssignment(&twoBitCircuit{Bits: [2]frontend.Variable{0, 0}, Table: table, Out: 20}),
		test.WithValidAssignment(&twoBitCircuit{Bits: [2]frontend.Variable{1, 0}, Table: table, Out: 21}),
		test.WithValidAssignment(&twoBitCircuit{Bits: [2]frontend.Variable{0, 1}, Table: table, Out: 22}),
		test.WithValidAssignment(&twoBitCircuit{Bits: [2]frontend.Variable{1, 1}, Table: table, Out: 23}),
		test.WithInvalidAssignment(&twoBitCircuit{Bits: [2]frontend.Variable{0, 1}, Table: table, Out: 21}),
		test.WithInvalidAssignment(&twoBitCircuit{Bits: [2]frontend.Variable{2, 0}, Table: table, Out: 22}),
		test.WithCurves(ecc.BN254),
	)
}

type threeBitCondNegCircuit struct {
	Bits  [3]frontend.Variable
	Table [4]frontend.Variable
	Out   frontend.Variable
}

func (c *threeBitCondNegCircuit) Define(api frontend.API) error {
	for _, b := range c.Bits {
		api.AssertIsBoolean(b)
	}
	api.AssertIsEqual(lookup.ThreeBitCondNeg(api, c.Bits[:], c.Table[:]), c.Out)
	return nil
}

func TestThreeBitCondNeg(t *testing.T) {
	assert := test.NewAssert(t)

	table := [4]frontend.Variable{20, 21, 22, 23}
	assert.CheckCircuit(&threeBitCondNegCircuit{},
		test.WithValidAssignment(&threeBitCondNegCircuit{Bits: [3]frontend.Variable{1, 0, 0}, Table: table, Out: 21}),
		test.WithValidAssignment(&threeBitCondNegCircuit{Bits: [3]frontend.Variable{1, 0, 1}, Table: table, Out: -21}),
		test.WithValidAssignment(&threeBitCondNegCircuit{Bits: [3]frontend.Variable{0, 0, 1}, Table: table, Out: -20}),
		test.WithValidAssignment(&threeBitCondNegCircuit{Bits: [3]frontend.Variable{1, 1, 1}, Table: table, Out: -23}),
		test.WithValidAssignment(&threeBitCondNegCircuit{Bits: [3]frontend.Variable{0, 1, 0}, Table: table, Out: 22}),
		test.WithInvalidAssignment(&threeBitCondNegCircuit{Bits: [3]frontend.Variable{1, 0, 1}, Table: table, Out: 21}),
		test.WithCurves(ecc.BN254),
	)
}

func TestLookupLengthMismatch(t *testing.T) {
	// the failure happens before the gadget touches the API
	require.Panics(t, func() {
		lookup.TwoBit(nil, make([]frontend.Variable, 3), make([]frontend.Variable, 4))
	})
	require.Panics(t, func() {
		lookup.TwoBit(nil, make([]frontend.Variable, 2), make([]frontend.Variable, 5))
	})
	require.Panics(t, func() {
		lookup.ThreeBitCondNeg(nil, make([]frontend.Variable, 2), make([]frontend.Variable, 4))
	})
	require.Panics(t, func() {
		lookup.ThreeBitCondNeg(nil, make([]frontend.Variable, 3), make([]frontend.Variable, 3))
	})
}

type twoBitCostCircuit struct {
	Bits  [2]frontend.Variable
	Table [4]frontend.Variable
	Out   frontend.Variable
}

func (c *twoBitCostCircuit) Define(api frontend.API) error {
	api.AssertIsEqual(lookup.TwoBit(api, c.Bits[:], c.Table[:]), c.Out)
	return nil
}

type threeBitCostCircuit struct {
	Bits  [3]frontend.Variable
	Table [4]frontend.Variable
	Out   frontend.Variable
}

func (c *threeBitCostCircuit) Define(api frontend.API) error {
	api.AssertIsEqual(lookup.ThreeBitCondNeg(api, c.Bits[:], c.Table[:]), c.Out)
	return nil
}

func TestLookupCost(t *testing.T) {
	// three multiplications for the lookup, plus the output equality
	cs, err := frontend.Compile(ecc.BN254.ScalarField(), r1cs.NewBuilder, &twoBitCostCircuit{})
	require.NoError(t, err)
	require.Equal(t, 4, cs.GetNbConstraints())

	// one more multiplication for the conditional negation
	cs, err = frontend.Compile(ecc.BN254.ScalarField(), r1cs.NewBuilder, &threeBitCostCircuit{})
	require.NoError(t, err)
	require.Equal(t, 5, cs.GetNbConstraints())
}
