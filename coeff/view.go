package coeff

import (
	"bytes"
	"fmt"
	"math/big"

	"github.com/npillmayer/symnorm"
	"github.com/npillmayer/symnorm/ffield"
	"github.com/npillmayer/symnorm/poly"
)

// ViewKind tells how a View holds its value.
type ViewKind int8

// Kinds of coefficient views.
const (
	NaturalView            ViewKind = iota // rational with int64 numerator and denominator
	LargeView                              // rational kept serialized
	FiniteFieldView                        // finite field element
	RationalPolynomialView                 // rational polynomial
)

// SerializedRational is an arbitrary precision rational in serialized form:
// a sign and the big-endian magnitudes of numerator and denominator.
type SerializedRational struct {
	negative bool
	num, den []byte
}

// Serialize creates the serialized form of r.
func Serialize(r *big.Rat) SerializedRational {
	return SerializedRational{
		negative: r.Sign() < 0,
		num:      r.Num().Bytes(),
		den:      r.Denom().Bytes(),
	}
}

// IsNegative is a predicate: is the rational negative?
func (s SerializedRational) IsNegative() bool {
	return s.negative
}

// Rat materializes the rational.
func (s SerializedRational) Rat() *big.Rat {
	num := new(big.Int).SetBytes(s.num)
	if s.negative {
		num.Neg(num)
	}
	return new(big.Rat).SetFrac(num, new(big.Int).SetBytes(s.den))
}

func (s SerializedRational) equal(t SerializedRational) bool {
	return s.negative == t.negative && bytes.Equal(s.num, t.num) && bytes.Equal(s.den, t.den)
}

func (s SerializedRational) isInteger() bool {
	return len(s.den) == 1 && s.den[0] == 1
}

// View is the read-only form of a coefficient, as stored in number nodes.
// The zero value is the rational 0.
type View struct {
	kind  ViewKind
	n, d  int64
	large SerializedRational
	elem  ffield.Element
	field ffield.ID
	rp    *poly.Rational
}

// Natural creates a view of n/d without reducing it. Normalize reduces it.
func Natural(n, d int64) View {
	return View{kind: NaturalView, n: n, d: d}
}

func viewOfRat(r *big.Rat) View {
	if r.Num().IsInt64() && r.Denom().IsInt64() {
		return View{kind: NaturalView, n: r.Num().Int64(), d: r.Denom().Int64()}
	}
	return View{kind: LargeView, large: Serialize(r)}
}

// Kind returns the kind of the view.
func (v View) Kind() ViewKind {
	return v.kind
}

// Domain returns the arithmetic domain of the viewed value.
func (v View) Domain() Domain {
	switch v.kind {
	case FiniteFieldView:
		return FiniteFieldDomain
	case RationalPolynomialView:
		return RationalPolynomialDomain
	}
	return RationalDomain
}

// IsRational is a predicate: is the viewed value a rational number?
func (v View) IsRational() bool {
	return v.kind == NaturalView || v.kind == LargeView
}

// NaturalValue returns numerator and denominator of a natural view.
func (v View) NaturalValue() (int64, int64, bool) {
	if v.kind != NaturalView {
		return 0, 0, false
	}
	return v.n, v.denominator(), true
}

func (v View) denominator() int64 {
	if v.d == 0 && v.n == 0 {
		return 1 // zero value of View
	}
	return v.d
}

// Rat materializes a rational view. It returns nil for other domains.
func (v View) Rat() *big.Rat {
	switch v.kind {
	case NaturalView:
		d := v.denominator()
		if d == 0 {
			return nil
		}
		return big.NewRat(v.n, d)
	case LargeView:
		return v.large.Rat()
	}
	return nil
}

// FiniteField returns element and field of a field element view.
func (v View) FiniteField() (ffield.Element, ffield.ID, bool) {
	return v.elem, v.field, v.kind == FiniteFieldView
}

// RationalPolynomial returns the viewed rational polynomial, or nil.
func (v View) RationalPolynomial() *poly.Rational {
	return v.rp
}

// ToOwned copies the viewed value into a coefficient.
func (v View) ToOwned() Coefficient {
	switch v.kind {
	case FiniteFieldView:
		return FromFiniteField(v.elem, v.field)
	case RationalPolynomialView:
		return FromRationalPolynomial(v.rp)
	}
	if r := v.Rat(); r != nil {
		return Coefficient{rat: r}
	}
	return Zero()
}

// Normalize returns the canonical coefficient for v, e.g. reducing a natural
// fraction. A natural view with denominator 0 is a division-by-zero error.
func (v View) Normalize() (Coefficient, error) {
	if v.kind == NaturalView && v.denominator() == 0 {
		return Coefficient{}, symnorm.Errorf(symnorm.DivisionByZero, "rational %d/0", v.n)
	}
	return v.ToOwned(), nil
}

// IsZero is a predicate: is v = 0?
func (v View) IsZero() bool {
	switch v.kind {
	case NaturalView:
		return v.n == 0
	case LargeView:
		return false // zero always fits a natural view
	case FiniteFieldView:
		return v.elem == 0
	}
	return v.rp.IsZero()
}

// IsOne is a predicate: is v = 1?
func (v View) IsOne() bool {
	switch v.kind {
	case NaturalView:
		return v.n != 0 && v.n == v.d
	case LargeView:
		return false
	case FiniteFieldView:
		return v.elem == 1
	}
	return v.rp.IsOne()
}

// IsInteger is a predicate: is v an integer? Field elements are integers,
// rational polynomials are not.
func (v View) IsInteger() bool {
	switch v.kind {
	case NaturalView:
		d := v.denominator()
		return d != 0 && v.n%d == 0
	case LargeView:
		return v.large.isInteger()
	case FiniteFieldView:
		return true
	}
	return false
}

// Sign returns the sign of a rational view; other domains report 1 (or 0 for zero).
func (v View) Sign() int {
	switch v.kind {
	case NaturalView:
		switch {
		case v.n == 0:
			return 0
		case (v.n < 0) != (v.d < 0):
			return -1
		}
		return 1
	case LargeView:
		if v.large.negative {
			return -1
		}
		return 1
	}
	if v.IsZero() {
		return 0
	}
	return 1
}

// Equal is a predicate: are v and w structurally identical?
func (v View) Equal(w View) bool {
	if v.kind != w.kind {
		return false
	}
	switch v.kind {
	case NaturalView:
		return v.n == w.n && v.denominator() == w.denominator()
	case LargeView:
		return v.large.equal(w.large)
	case FiniteFieldView:
		return v.elem == w.elem && v.field == w.field
	}
	return v.rp.Equal(w.rp)
}

// Format returns a textual representation of v. p may be nil.
func (v View) Format(p Printer) string {
	switch v.kind {
	case NaturalView:
		if d := v.denominator(); d != 1 {
			return fmt.Sprintf("%d/%d", v.n, d)
		}
		return fmt.Sprintf("%d", v.n)
	case LargeView:
		return v.large.Rat().RatString()
	case FiniteFieldView:
		return fmt.Sprintf("[%d mod %s]", v.elem, primeOf(v.field, p))
	}
	name := symnorm.Identifier.String
	if p != nil {
		name = p.Name
	}
	return "[" + v.rp.Format(name) + "]"
}

func (v View) String() string {
	return v.Format(nil)
}
