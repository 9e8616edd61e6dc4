package ffield

import (
	"math/big"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/npillmayer/symnorm"
)

func TestNewField(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symnorm.ffield")
	defer teardown()
	//
	f, err := New(7)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), f.Prime())
	assert.Equal(t, "GF(7)", f.String())
	for _, p := range []uint64{0, 1, 8, 91, MaxPrime + 2} {
		_, err = New(p)
		assert.Error(t, err, "modulus %d", p)
	}
	_, err = New(MaxPrime)
	assert.NoError(t, err)
}

func TestMapIntoField(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symnorm.ffield")
	defer teardown()
	//
	f, _ := New(7)
	assert.Equal(t, Element(3), f.FromInt64(10))
	assert.Equal(t, Element(6), f.FromInt64(-1))
	assert.Equal(t, Element(0), f.FromInt64(-14))
	assert.Equal(t, f.FromInt64(-9223372036854775808%7+7), f.FromInt64(-9223372036854775808))
	assert.Equal(t, Element(5), f.FromBig(big.NewInt(-9)))
}

func TestFieldArithmetic(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symnorm.ffield")
	defer teardown()
	//
	f, _ := New(7)
	assert.Equal(t, Element(1), f.Add(3, 5))
	assert.Equal(t, Element(5), f.Sub(3, 5))
	assert.Equal(t, Element(0), f.Neg(0))
	assert.Equal(t, Element(4), f.Neg(3))
	assert.Equal(t, Element(1), f.Mul(3, 5))
	assert.Equal(t, Element(1), f.Pow(3, 6), "Fermat")
	assert.Equal(t, Element(1), f.Pow(0, 0))
	assert.Equal(t, Element(6), f.Pow(3, 3))
	inv, err := f.Inv(3)
	require.NoError(t, err)
	assert.Equal(t, Element(5), inv)
	q, err := f.Div(6, 3)
	require.NoError(t, err)
	assert.Equal(t, Element(2), q)
	_, err = f.Inv(0)
	assert.Equal(t, symnorm.DivisionByZero, symnorm.KindOf(err))
}

func TestLargeModulus(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symnorm.ffield")
	defer teardown()
	//
	f, err := New(MaxPrime)
	require.NoError(t, err)
	a := Element(MaxPrime - 1) // -1
	assert.Equal(t, Element(1), f.Mul(a, a))
	assert.Equal(t, Element(MaxPrime-2), f.Add(a, a))
	inv, err := f.Inv(2)
	require.NoError(t, err)
	assert.Equal(t, Element(1), f.Mul(2, inv))
}
