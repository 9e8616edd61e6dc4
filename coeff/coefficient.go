/*
Package coeff implements the coefficient domain of expressions.

A coefficient is one of

■ a rational number of arbitrary precision,

■ an element of a prime field, tagged with the ID of its field,

■ a rational polynomial, i.e. a quotient of two multivariate polynomials.

Coefficients come in two forms. A Coefficient is an owned value, as produced by
arithmetic. A View is the read-only form stored in number nodes of an expression
tree: small rationals are kept as a pair of machine integers, large rationals are
kept serialized as byte strings and are materialized only when arithmetic needs them.
All arithmetic is defined on views and produces owned coefficients.

Elements of different finite fields never mix, and field elements never mix with
other domains; callers have to convert explicitly (see ToFiniteField).

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package coeff

import (
	"fmt"
	"math/big"

	"github.com/npillmayer/schuko/tracing"

	"github.com/npillmayer/symnorm"
	"github.com/npillmayer/symnorm/ffield"
	"github.com/npillmayer/symnorm/poly"
)

// tracer traces with key 'symnorm.coeff'.
func tracer() tracing.Trace {
	return tracing.Select("symnorm.coeff")
}

// Domain is the arithmetic domain of a coefficient.
type Domain int8

// Coefficient domains.
const (
	RationalDomain Domain = iota
	FiniteFieldDomain
	RationalPolynomialDomain
)

func (d Domain) String() string {
	switch d {
	case RationalDomain:
		return "rational"
	case FiniteFieldDomain:
		return "finite field"
	}
	return "rational polynomial"
}

// FieldTable resolves finite field IDs. It is usually implemented by a registry.
type FieldTable interface {
	FiniteField(ffield.ID) (*ffield.Field, error)
}

// Printer is what it takes to print coefficients: a field table for field
// elements and variable names for rational polynomials.
type Printer interface {
	FieldTable
	Name(symnorm.Identifier) string
}

// Coefficient is an owned coefficient value. The zero value is the rational 0.
type Coefficient struct {
	domain Domain
	rat    *big.Rat
	elem   ffield.Element
	field  ffield.ID
	rp     *poly.Rational
}

// Zero returns the rational 0.
func Zero() Coefficient {
	return Coefficient{rat: new(big.Rat)}
}

// One returns the rational 1.
func One() Coefficient {
	return FromInt64(1)
}

// FromInt64 creates an integer coefficient.
func FromInt64(n int64) Coefficient {
	return Coefficient{rat: new(big.Rat).SetInt64(n)}
}

// FromFrac creates the rational coefficient n/d.
func FromFrac(n, d int64) (Coefficient, error) {
	if d == 0 {
		return Coefficient{}, symnorm.Errorf(symnorm.DivisionByZero, "rational %d/0", n)
	}
	return Coefficient{rat: big.NewRat(n, d)}, nil
}

// FromRat creates a rational coefficient. r is copied.
func FromRat(r *big.Rat) Coefficient {
	return Coefficient{rat: new(big.Rat).Set(r)}
}

// FromFiniteField creates a field element coefficient. e has to be reduced
// with respect to the field's modulus.
func FromFiniteField(e ffield.Element, id ffield.ID) Coefficient {
	return Coefficient{domain: FiniteFieldDomain, elem: e, field: id}
}

// FromRationalPolynomial creates a rational polynomial coefficient. A constant
// rational polynomial is down-graded to a rational number.
func FromRationalPolynomial(r *poly.Rational) Coefficient {
	if v, ok := r.ConstantValue(); ok {
		return Coefficient{rat: v}
	}
	return Coefficient{domain: RationalPolynomialDomain, rp: r}
}

// Domain returns the domain of c.
func (c Coefficient) Domain() Domain {
	return c.domain
}

// Rat returns the value of a rational coefficient, or nil. Clients must not
// modify it.
func (c Coefficient) Rat() *big.Rat {
	if c.domain != RationalDomain {
		return nil
	}
	if c.rat == nil {
		return new(big.Rat)
	}
	return c.rat
}

// FiniteField returns the element and field ID of a field element coefficient.
func (c Coefficient) FiniteField() (ffield.Element, ffield.ID, bool) {
	return c.elem, c.field, c.domain == FiniteFieldDomain
}

// RationalPolynomial returns the value of a rational polynomial coefficient, or nil.
func (c Coefficient) RationalPolynomial() *poly.Rational {
	return c.rp
}

// View returns the read-only form of c.
func (c Coefficient) View() View {
	switch c.domain {
	case FiniteFieldDomain:
		return View{kind: FiniteFieldView, elem: c.elem, field: c.field}
	case RationalPolynomialDomain:
		return View{kind: RationalPolynomialView, rp: c.rp}
	}
	return viewOfRat(c.Rat())
}

// IsZero is a predicate: is c = 0?
func (c Coefficient) IsZero() bool {
	return c.View().IsZero()
}

// IsOne is a predicate: is c = 1?
func (c Coefficient) IsOne() bool {
	return c.View().IsOne()
}

func (c Coefficient) String() string {
	return c.View().String()
}

// --- Conversion ------------------------------------------------------------

// ToFiniteField maps a rational coefficient into the finite field id. A field
// element of the same field is returned unchanged. The denominator of the rational
// has to be invertible in the field.
func ToFiniteField(v View, id ffield.ID, fields FieldTable) (Coefficient, error) {
	f, err := fields.FiniteField(id)
	if err != nil {
		return Coefficient{}, err
	}
	switch v.kind {
	case FiniteFieldView:
		if v.field != id {
			return Coefficient{}, incompatible(v.field, id, fields)
		}
		return v.ToOwned(), nil
	case RationalPolynomialView:
		return Coefficient{}, symnorm.Errorf(symnorm.InvalidDomainMix,
			"cannot convert rational polynomial %s to %s", v, f)
	}
	r := v.Rat()
	den := f.FromBig(r.Denom())
	e, err := f.Div(f.FromBig(r.Num()), den)
	if err != nil {
		return Coefficient{}, symnorm.Errorf(symnorm.DivisionByZero,
			"denominator of %s vanishes in %s", v, f)
	}
	return FromFiniteField(e, id), nil
}

func incompatible(a, b ffield.ID, fields FieldTable) error {
	pa, pb := primeOf(a, fields), primeOf(b, fields)
	return symnorm.Errorf(symnorm.IncompatibleFiniteFields,
		"cannot combine elements of finite fields p1=%s, p2=%s", pa, pb)
}

func primeOf(id ffield.ID, fields FieldTable) string {
	if fields != nil {
		if f, err := fields.FiniteField(id); err == nil {
			return fmt.Sprintf("%d", f.Prime())
		}
	}
	return fmt.Sprintf("?(field #%d)", id)
}
