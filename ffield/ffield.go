/*
Package ffield implements prime fields, used as one of the coefficient domains.

A field is identified by its prime modulus. Elements are kept reduced to [0, p).
Moduli are bounded by MaxPrime, which keeps every product of two elements within
a 128 bit intermediate and allows modular exponentiation to use Barrett reduction.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package ffield

import (
	"fmt"
	"math/big"
	"math/bits"

	"github.com/cockroachdb/errors"
	"github.com/npillmayer/schuko/tracing"
	"github.com/tuneinsight/lattigo/v4/ring"

	"github.com/npillmayer/symnorm"
)

// tracer traces with key 'symnorm.ffield'.
func tracer() tracing.Trace {
	return tracing.Select("symnorm.ffield")
}

// MaxPrime is the largest supported field modulus, the Mersenne prime 2^61-1.
const MaxPrime = 1<<61 - 1

// ID is the handle of a finite field, as issued by a field table (see package registry).
type ID uint32

// Element is an element of a prime field, in the range [0, p).
type Element uint64

// Field is a prime field GF(p).
type Field struct {
	p uint64
}

// New creates a prime field for modulus p. p has to be a prime not greater than MaxPrime.
func New(p uint64) (*Field, error) {
	if p < 2 || p > MaxPrime {
		return nil, errors.Newf("field modulus %d out of range [2, %d]", p, uint64(MaxPrime))
	}
	if !new(big.Int).SetUint64(p).ProbablyPrime(20) {
		return nil, errors.Newf("field modulus %d is not prime", p)
	}
	tracer().Debugf("created finite field GF(%d)", p)
	return &Field{p: p}, nil
}

// Prime returns the modulus of the field.
func (f *Field) Prime() uint64 {
	return f.p
}

func (f *Field) String() string {
	return fmt.Sprintf("GF(%d)", f.p)
}

// FromInt64 maps an integer into the field.
func (f *Field) FromInt64(n int64) Element {
	if n >= 0 {
		return Element(uint64(n) % f.p)
	}
	r := uint64(-(n + 1)) % f.p // -(n+1) does not overflow for MinInt64
	return Element(f.p - 1 - r)
}

// FromBig maps an arbitrary precision integer into the field.
func (f *Field) FromBig(n *big.Int) Element {
	m := new(big.Int).Mod(n, new(big.Int).SetUint64(f.p)) // Mod is Euclidean, m >= 0
	return Element(m.Uint64())
}

// Add returns a+b.
func (f *Field) Add(a, b Element) Element {
	s, carry := bits.Add64(uint64(a), uint64(b), 0)
	if carry != 0 || s >= f.p {
		s -= f.p
	}
	return Element(s)
}

// Neg returns -a.
func (f *Field) Neg(a Element) Element {
	if a == 0 {
		return 0
	}
	return Element(f.p - uint64(a))
}

// Sub returns a-b.
func (f *Field) Sub(a, b Element) Element {
	return f.Add(a, f.Neg(b))
}

// Mul returns a*b.
func (f *Field) Mul(a, b Element) Element {
	hi, lo := bits.Mul64(uint64(a), uint64(b))
	return Element(bits.Rem64(hi, lo, f.p))
}

// Pow returns a^e for a non-negative exponent e.
func (f *Field) Pow(a Element, e uint64) Element {
	if e == 0 {
		return 1
	}
	return Element(ring.ModExp(uint64(a), e, f.p))
}

// Inv returns the multiplicative inverse of a. Inverting zero is a
// division-by-zero error.
func (f *Field) Inv(a Element) (Element, error) {
	if a == 0 {
		return 0, symnorm.Errorf(symnorm.DivisionByZero, "cannot invert 0 in %s", f)
	}
	return Element(ring.ModExp(uint64(a), f.p-2, f.p)), nil // Fermat, p is prime
}

// Div returns a/b.
func (f *Field) Div(a, b Element) (Element, error) {
	inv, err := f.Inv(b)
	if err != nil {
		return 0, err
	}
	return f.Mul(a, inv), nil
}
