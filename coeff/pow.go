package coeff

import (
	"math/big"

	"github.com/npillmayer/symnorm"
)

// Pow raises v to the rational power n/d given by w. Only the numerator n is
// applied; the result is returned together with the leftover exponent 1/d,
// which callers keep as a symbolic power (e.g. 2^(3/2) = 8^(1/2)).
//
// A negative n reciprocates the base first, which fails with a division-by-zero
// error for a zero base. |n| must not exceed symnorm.MaxExponent. Rational,
// rational polynomial and finite field bases are supported, exponents have to be
// rational. Any other configuration is an unsupported-power-configuration error.
func (v View) Pow(w View, fields FieldTable) (Coefficient, Coefficient, error) {
	if !w.IsRational() {
		return Coefficient{}, Coefficient{}, symnorm.Errorf(symnorm.UnsupportedPowerConfiguration,
			"power of configuration %s^%s (%s exponent)", v, w, w.Domain())
	}
	e := w.Rat()
	n := e.Num()
	if n.CmpAbs(big.NewInt(symnorm.MaxExponent)) > 0 {
		return Coefficient{}, Coefficient{}, symnorm.Errorf(symnorm.ExponentTooLarge,
			"power is too large: %s", n)
	}
	n2 := n.Int64()
	leftover := Coefficient{rat: new(big.Rat).SetFrac(big.NewInt(1), e.Denom())}
	var c Coefficient
	var err error
	switch v.kind {
	case NaturalView:
		c, err = powNatural(v.n, v.denominator(), n2)
	case LargeView:
		c, err = powRat(v.large.Rat(), n2)
	case RationalPolynomialView:
		r := v.rp
		if n2 < 0 {
			if r, err = r.Inv(); err != nil {
				return Coefficient{}, Coefficient{}, err
			}
		}
		c = FromRationalPolynomial(r.Pow(uint64(abs64(n2))))
	case FiniteFieldView:
		c, err = powFiniteField(v, n2, fields)
	}
	if err != nil {
		return Coefficient{}, Coefficient{}, err
	}
	tracer().Debugf("%s^%d = %s, leftover exponent %s", v, n2, c, leftover)
	return c, leftover, nil
}

// powNatural tries fixed-width exponentiation first and falls back to arbitrary
// precision on overflow.
func powNatural(n1, d1, n2 int64) (Coefficient, error) {
	if n2 < 0 {
		if n1 == 0 {
			return Coefficient{}, symnorm.Errorf(symnorm.DivisionByZero, "0^%d", n2)
		}
		n1, d1 = d1, n1
	}
	e := uint64(abs64(n2))
	if pn, ok := checkedPow(n1, e); ok {
		if pd, ok := checkedPow(d1, e); ok {
			return FromRat(big.NewRat(pn, pd)), nil // NewRat normalizes the sign
		}
	}
	return powRat(big.NewRat(n1, d1), abs64(n2))
}

func powRat(r *big.Rat, n2 int64) (Coefficient, error) {
	num, den := new(big.Int).Set(r.Num()), new(big.Int).Set(r.Denom())
	if n2 < 0 {
		if num.Sign() == 0 {
			return Coefficient{}, symnorm.Errorf(symnorm.DivisionByZero, "0^%d", n2)
		}
		num, den = den, num
	}
	e := big.NewInt(abs64(n2))
	num.Exp(num, e, nil)
	den.Exp(den, e, nil)
	return Coefficient{rat: new(big.Rat).SetFrac(num, den)}, nil
}

func powFiniteField(v View, n2 int64, fields FieldTable) (Coefficient, error) {
	f, err := fields.FiniteField(v.field)
	if err != nil {
		return Coefficient{}, err
	}
	base := v.elem
	if n2 < 0 {
		if base, err = f.Inv(base); err != nil {
			return Coefficient{}, err
		}
	}
	return FromFiniteField(f.Pow(base, uint64(abs64(n2))), v.field), nil
}

func abs64(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}
