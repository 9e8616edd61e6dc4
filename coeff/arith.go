package coeff

import (
	"math"
	"math/big"

	"github.com/npillmayer/symnorm"
	"github.com/npillmayer/symnorm/poly"
)

// Add returns v+w.
func (v View) Add(w View, fields FieldTable) (Coefficient, error) {
	return combine(v, w, fields, "add", ratAdd, (*poly.Rational).AddRat, (*poly.Rational).Add)
}

// Mul returns v*w.
func (v View) Mul(w View, fields FieldTable) (Coefficient, error) {
	return combine(v, w, fields, "multiply", ratMul, (*poly.Rational).MulRat, (*poly.Rational).Mul)
}

func ratAdd(a, b *big.Rat) *big.Rat { return new(big.Rat).Add(a, b) }
func ratMul(a, b *big.Rat) *big.Rat { return new(big.Rat).Mul(a, b) }

// combine dispatches a binary operation over the domains of v and w. Both add and mul
// share the same domain rules; they differ only in the concrete operations.
func combine(v, w View, fields FieldTable, op string,
	rat func(a, b *big.Rat) *big.Rat,
	ratPoly func(*poly.Rational, *big.Rat) *poly.Rational,
	polyPoly func(*poly.Rational, *poly.Rational) *poly.Rational) (Coefficient, error) {
	//
	switch {
	case v.kind == FiniteFieldView && w.kind == FiniteFieldView:
		if v.field != w.field {
			return Coefficient{}, incompatible(v.field, w.field, fields)
		}
		f, err := fields.FiniteField(v.field)
		if err != nil {
			return Coefficient{}, err
		}
		if op == "add" {
			return FromFiniteField(f.Add(v.elem, w.elem), v.field), nil
		}
		return FromFiniteField(f.Mul(v.elem, w.elem), v.field), nil
	case v.kind == FiniteFieldView || w.kind == FiniteFieldView:
		return Coefficient{}, symnorm.Errorf(symnorm.InvalidDomainMix,
			"cannot %s finite field element and non-field number: %s, %s; convert first", op, v, w)
	case v.IsRational() && w.IsRational():
		return FromRat(rat(v.Rat(), w.Rat())), nil
	case v.IsRational(): // w is a rational polynomial
		return FromRationalPolynomial(ratPoly(w.rp, v.Rat())), nil
	case w.IsRational():
		return FromRationalPolynomial(ratPoly(v.rp, w.Rat())), nil
	}
	return FromRationalPolynomial(polyPoly(v.rp, w.rp)), nil // unifies variable lists
}

// Cmp compares two coefficient views. Rationals compare by value, field elements
// by their representatives and rational polynomials structurally. Comparing
// values of different domains is a logic error: such values never meet in a
// well-formed expression tree. Cmp panics with a symnorm.LogicError in that case.
func (v View) Cmp(w View) int {
	switch {
	case v.kind == NaturalView && w.kind == NaturalView:
		return cmpNatural(v.n, v.denominator(), w.n, w.denominator())
	case v.IsRational() && w.IsRational():
		return v.Rat().Cmp(w.Rat())
	case v.kind == FiniteFieldView && w.kind == FiniteFieldView:
		if v.elem != w.elem {
			if v.elem < w.elem {
				return -1
			}
			return 1
		}
		return cmpUint(uint64(v.field), uint64(w.field))
	case v.kind == RationalPolynomialView && w.kind == RationalPolynomialView:
		return v.rp.Cmp(w.rp)
	}
	symnorm.Raise(symnorm.LogicError, "cannot compare coefficients %s (%s) and %s (%s)",
		v, v.Domain(), w, w.Domain())
	return 0 // not reached
}

func cmpNatural(n1, d1, n2, d2 int64) int {
	if n1 < 0 && n2 > 0 {
		return -1
	}
	if n1 > 0 && n2 < 0 {
		return 1
	}
	if a1, ok := checkedMul(n1, d2); ok {
		if a2, ok := checkedMul(n2, d1); ok {
			return cmpInt64(a1, a2)
		}
	}
	a1 := new(big.Int).Mul(big.NewInt(n1), big.NewInt(d2))
	a2 := new(big.Int).Mul(big.NewInt(n2), big.NewInt(d1))
	return a1.Cmp(a2)
}

func cmpInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func cmpUint(a, b uint64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// checkedMul multiplies two int64 values, reporting overflow.
func checkedMul(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		return 0, false
	}
	c := a * b
	if c/b != a {
		return 0, false
	}
	return c, true
}

// checkedPow raises b to a non-negative power, reporting overflow.
func checkedPow(b int64, e uint64) (int64, bool) {
	result := int64(1)
	for e > 0 {
		if e&1 == 1 {
			var ok bool
			if result, ok = checkedMul(result, b); !ok {
				return 0, false
			}
		}
		e >>= 1
		if e > 0 {
			var ok bool
			if b, ok = checkedMul(b, b); !ok {
				return 0, false
			}
		}
	}
	return result, true
}
