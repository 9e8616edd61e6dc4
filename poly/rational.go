package poly

import (
	"math/big"

	"github.com/npillmayer/symnorm"
)

// Rational is a quotient of two polynomials, sharing one variable list.
// Rationals are kept reduced: numerator and denominator have no common integer
// content and no common monomial factor, neither divides the other exactly
// (unless one of them is 1), and the leading coefficient of the denominator is
// positive. A zero rational is 0/1.
type Rational struct {
	num, den *Polynomial
}

// NewRational creates num/den in reduced form. A zero denominator is a
// division-by-zero error.
func NewRational(num, den *Polynomial) (*Rational, error) {
	if den.IsZero() {
		return nil, symnorm.Errorf(symnorm.DivisionByZero, "rational polynomial (%s)/(0)", num)
	}
	return reduce(num, den), nil
}

// FromPolynomial creates the rational p/1.
func FromPolynomial(p *Polynomial) *Rational {
	return &Rational{num: p, den: One()}
}

// FromRat creates a constant rational polynomial.
func FromRat(r *big.Rat) *Rational {
	return reduce(Constant(r.Num()), Constant(r.Denom()))
}

// Numerator returns the numerator polynomial.
func (r *Rational) Numerator() *Polynomial {
	return r.num
}

// Denominator returns the denominator polynomial.
func (r *Rational) Denominator() *Polynomial {
	return r.den
}

// Vars returns the variables r is expressed over.
func (r *Rational) Vars() []symnorm.Identifier {
	return UnionVars(r.num.vars, r.den.vars)
}

// IsZero is a predicate: is r = 0?
func (r *Rational) IsZero() bool {
	return r.num.IsZero()
}

// IsConstant is a predicate: is r free of variables?
func (r *Rational) IsConstant() bool {
	return r.num.IsConstant() && r.den.IsConstant()
}

// IsOne is a predicate: is r = 1?
func (r *Rational) IsOne() bool {
	return r.num.IsOne() && r.den.IsOne()
}

// ConstantValue returns the value of a constant rational polynomial.
// It returns false if r is not constant.
func (r *Rational) ConstantValue() (*big.Rat, bool) {
	if !r.IsConstant() {
		return nil, false
	}
	return new(big.Rat).SetFrac(r.num.ConstantCoeff(), r.den.ConstantCoeff()), true
}

// Add returns r+s.
func (r *Rational) Add(s *Rational) *Rational {
	if r.den.Equal(s.den) {
		return reduce(r.num.Add(s.num), r.den)
	}
	num := r.num.Mul(s.den).Add(s.num.Mul(r.den))
	return reduce(num, r.den.Mul(s.den))
}

// Neg returns -r.
func (r *Rational) Neg() *Rational {
	return &Rational{num: r.num.Neg(), den: r.den}
}

// Mul returns r*s.
func (r *Rational) Mul(s *Rational) *Rational {
	return reduce(r.num.Mul(s.num), r.den.Mul(s.den))
}

// MulRat returns c*r for a rational number c.
// Common integer factors of c and r are divided out before multiplying.
func (r *Rational) MulRat(c *big.Rat) *Rational {
	if c.Sign() == 0 {
		return reduce(Zero(), One())
	}
	n, d := c.Num(), c.Denom()
	g1 := new(big.Int).GCD(nil, nil, new(big.Int).Abs(n), r.den.Content())
	g2 := new(big.Int).GCD(nil, nil, d, r.num.Content())
	num := r.num.DivCoeff(g2).MulCoeff(new(big.Int).Quo(n, g1))
	den := r.den.DivCoeff(g1).MulCoeff(new(big.Int).Quo(d, g2))
	return reduce(num, den)
}

// AddRat returns c+r for a rational number c.
func (r *Rational) AddRat(c *big.Rat) *Rational {
	return r.Add(FromRat(c))
}

// Inv returns 1/r. Inverting zero is a division-by-zero error.
func (r *Rational) Inv() (*Rational, error) {
	if r.num.IsZero() {
		return nil, symnorm.Errorf(symnorm.DivisionByZero, "cannot invert rational polynomial 0")
	}
	return reduce(r.den, r.num), nil
}

// Pow returns r^n.
func (r *Rational) Pow(n uint64) *Rational {
	return &Rational{num: r.num.Pow(n), den: r.den.Pow(n)}
}

// Equal is a predicate: are r and s identical?
func (r *Rational) Equal(s *Rational) bool {
	return r.Cmp(s) == 0
}

// Cmp is a deterministic total order: by variable list, numerator, denominator.
func (r *Rational) Cmp(s *Rational) int {
	if c := cmpVars(r.Vars(), s.Vars()); c != 0 {
		return c
	}
	if c := r.num.Cmp(s.num); c != 0 {
		return c
	}
	return r.den.Cmp(s.den)
}

// Format returns a textual representation, printing variables with name.
func (r *Rational) Format(name func(symnorm.Identifier) string) string {
	if r.den.IsOne() {
		return r.num.Format(name)
	}
	return "(" + r.num.Format(name) + ")/(" + r.den.Format(name) + ")"
}

func (r *Rational) String() string {
	return r.Format(symnorm.Identifier.String)
}

// --- Reduction -------------------------------------------------------------

func reduce(num, den *Polynomial) *Rational {
	if num.IsZero() {
		return &Rational{num: Zero(), den: One()}
	}
	num, den = Unify(num, den)
	num, den = cancelMonomial(num, den)
	if q, ok := num.DivExact(den); ok {
		num, den = q, One()
	} else if q, ok := den.DivExact(num); ok {
		num, den = One(), q
	}
	g := new(big.Int).GCD(nil, nil, num.Content(), den.Content())
	if g.Cmp(bigOne) != 0 && g.Sign() != 0 {
		num, den = num.DivCoeff(g), den.DivCoeff(g)
	}
	if den.LeadingCoeff().Sign() < 0 {
		num, den = num.Neg(), den.Neg()
	}
	return &Rational{num: num.compact(), den: den.compact()}
}

// cancelMonomial divides num and den by the greatest common monomial factor.
// Both have to be expressed over the same variable list.
func cancelMonomial(num, den *Polynomial) (*Polynomial, *Polynomial) {
	if len(num.vars) == 0 {
		return num, den
	}
	low := make([]uint32, len(num.vars))
	copy(low, num.terms[0].Exps)
	for _, p := range []*Polynomial{num, den} {
		for _, t := range p.terms {
			for i, e := range t.Exps {
				if e < low[i] {
					low[i] = e
				}
			}
		}
	}
	if isConstantExps(low) {
		return num, den
	}
	return shiftDown(num, low), shiftDown(den, low)
}

func shiftDown(p *Polynomial, low []uint32) *Polynomial {
	q := &Polynomial{vars: p.vars, terms: make([]Term, len(p.terms))}
	for k, t := range p.terms {
		exps := make([]uint32, len(t.Exps))
		for i, e := range t.Exps {
			exps[i] = e - low[i]
		}
		q.terms[k] = Term{Coeff: t.Coeff, Exps: exps}
	}
	return q.compact()
}
