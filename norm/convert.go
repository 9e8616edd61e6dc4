package norm

import (
	"math/big"

	"github.com/hashicorp/go-set/v3"

	"github.com/npillmayer/symnorm"
	"github.com/npillmayer/symnorm/atom"
	"github.com/npillmayer/symnorm/coeff"
	"github.com/npillmayer/symnorm/poly"
	"github.com/npillmayer/symnorm/registry"
	"github.com/npillmayer/symnorm/workspace"
)

// toRationalPolynomial converts a rational expression into a rational polynomial.
// Expressions containing functions, finite field elements or non-integer powers
// do not convert.
func (n *Normalizer) toRationalPolynomial(v atom.View) (*poly.Rational, bool) {
	switch v.Kind() {
	case atom.NumberKind:
		c := v.Coefficient()
		if c.IsRational() {
			return poly.FromRat(c.Rat()), true
		}
		if r := c.RationalPolynomial(); r != nil {
			return r, true
		}
		return nil, false
	case atom.VariableKind:
		return poly.FromPolynomial(poly.Var(v.Name())), true
	case atom.PowerKind:
		base, exp := v.BaseExp()
		if !exp.Is(atom.NumberKind) {
			return nil, false
		}
		e, d, ok := exp.Coefficient().NaturalValue()
		if !ok || d != 1 || e > symnorm.MaxExponent || e < -symnorm.MaxExponent {
			return nil, false
		}
		r, ok := n.toRationalPolynomial(base)
		if !ok {
			return nil, false
		}
		if e < 0 {
			var err error
			if r, err = r.Inv(); err != nil {
				return nil, false
			}
			e = -e
		}
		return r.Pow(uint64(e)), true
	case atom.ProductKind, atom.SumKind:
		if v.Len() == 0 {
			return nil, false
		}
		r, ok := n.toRationalPolynomial(v.Arg(0))
		for i := 1; ok && i < v.Len(); i++ {
			var s *poly.Rational
			if s, ok = n.toRationalPolynomial(v.Arg(i)); ok {
				if v.Is(atom.ProductKind) {
					r = r.Mul(s)
				} else {
					r = r.Add(s)
				}
			}
		}
		return r, ok
	}
	return nil, false
}

// fromPolynomial expands a polynomial into a (dirty) sum of monomials.
func fromPolynomial(p *poly.Polynomial) *atom.Atom {
	vars := p.Vars()
	terms := make([]*atom.Atom, 0, p.Len())
	p.Each(func(t poly.Term) {
		factors := make([]*atom.Atom, 0, len(vars)+1)
		for i, e := range t.Exps {
			switch e {
			case 0:
			case 1:
				factors = append(factors, atom.NewVariable(vars[i]))
			default:
				factors = append(factors, atom.NewPower(atom.NewVariable(vars[i]), atom.NewInt(int64(e))))
			}
		}
		factors = append(factors, atom.NewNumber(coeff.FromRat(new(big.Rat).SetInt(t.Coeff))))
		terms = append(terms, atom.NewProduct(factors...))
	})
	return atom.NewSum(terms...)
}

// fromRational expands a rational polynomial into a (dirty) expression
// numerator * denominator^-1.
func fromRational(r *poly.Rational) *atom.Atom {
	num := fromPolynomial(r.Numerator())
	if r.Denominator().IsOne() {
		return num
	}
	return atom.NewProduct(num, atom.NewPower(fromPolynomial(r.Denominator()), atom.NewInt(-1)))
}

// Expand turns rational polynomial coefficients back into expressions, e.g.
// [(x+1)/y] into (x+1)*y^-1, and returns the normalized result. It does not
// descend into function arguments.
func (n *Normalizer) Expand(v atom.View) (result *atom.Atom, err error) {
	defer symnorm.Recover(&err)
	e, changed := expandCoefficients(v)
	if !changed {
		return v.Atom(), nil
	}
	return n.normalize(e.View())
}

func expandCoefficients(v atom.View) (*atom.Atom, bool) {
	switch v.Kind() {
	case atom.NumberKind:
		if r := v.Coefficient().RationalPolynomial(); r != nil {
			return fromRational(r), true
		}
	case atom.PowerKind, atom.ProductKind, atom.SumKind:
		args := make([]*atom.Atom, v.Len())
		changed := false
		for i := range args {
			var c bool
			args[i], c = expandCoefficients(v.Arg(i))
			changed = changed || c
		}
		if !changed {
			break
		}
		switch v.Kind() {
		case atom.PowerKind:
			return atom.NewPower(args[0], args[1]), true
		case atom.ProductKind:
			return atom.NewProduct(args...), true
		}
		return atom.NewSum(args...), true
	}
	return v.Atom(), false
}

// --- Coefficient rings -----------------------------------------------------

// SetCoefficientRing moves the variables vars into the coefficients of an
// expression: every occurrence of one of vars outside of function arguments
// becomes part of a rational polynomial coefficient, e.g. for vars = {x}
//
//     x*y + x^2*y  →  [x^2+x]*y
//
// Rational polynomial coefficients in v using variables not in vars are expanded
// and converted again. It returns true if the expression has changed.
func SetCoefficientRing(v atom.View, vars []symnorm.Identifier, ws *workspace.Workspace,
	reg *registry.Registry) (*atom.Atom, bool, error) {
	//
	return New(ws, reg).SetCoefficientRing(v, vars)
}

// SetCoefficientRing moves the variables vars into the coefficients of an
// expression, see function SetCoefficientRing.
func (n *Normalizer) SetCoefficientRing(v atom.View, vars []symnorm.Identifier) (result *atom.Atom, changed bool, err error) {
	defer symnorm.Recover(&err)
	tracer().Debugf("setting coefficient ring of %s to %v", v.Atom(), vars)
	return n.setCoefficientRing(v, set.From(vars))
}

func (n *Normalizer) setCoefficientRing(v atom.View, vars *set.Set[symnorm.Identifier]) (*atom.Atom, bool, error) {
	switch v.Kind() {
	case atom.NumberKind:
		r := v.Coefficient().RationalPolynomial()
		if r == nil || vars.ContainsSlice(r.Vars()) {
			return v.Atom(), false, nil
		}
		num, _, err := n.setCoefficientRingOf(fromPolynomial(r.Numerator()), vars)
		if err != nil {
			return nil, false, err
		}
		den, _, err := n.setCoefficientRingOf(fromPolynomial(r.Denominator()), vars)
		if err != nil {
			return nil, false, err
		}
		q, err := n.normalize(atom.NewProduct(num, atom.NewPower(den, atom.NewInt(-1))).View())
		return q, true, err
	case atom.VariableKind:
		if !vars.Contains(v.Name()) {
			return v.Atom(), false, nil
		}
		r := poly.FromPolynomial(poly.Var(v.Name()))
		return number(coeff.FromRationalPolynomial(r)), true, nil
	case atom.PowerKind:
		base, changed, err := n.setCoefficientRing(v.Base(), vars)
		if err != nil {
			return nil, false, err
		}
		if !changed {
			return v.Atom(), false, nil
		}
		p, err := n.normalize(atom.NewPower(base, v.Exp().Atom()).View())
		return p, true, err
	case atom.ProductKind, atom.SumKind:
		args := make([]*atom.Atom, v.Len())
		changed := false
		for i := range args {
			var c bool
			var err error
			if args[i], c, err = n.setCoefficientRing(v.Arg(i), vars); err != nil {
				return nil, false, err
			}
			changed = changed || c
		}
		if !changed {
			return v.Atom(), false, nil
		}
		var e *atom.Atom
		if v.Is(atom.ProductKind) {
			e = atom.NewProduct(args...)
		} else {
			e = atom.NewSum(args...)
		}
		r, err := n.normalize(e.View())
		return r, true, err
	}
	return v.Atom(), false, nil // functions are left alone
}

// setCoefficientRingOf normalizes a dirty expression and moves vars into its
// coefficients.
func (n *Normalizer) setCoefficientRingOf(e *atom.Atom, vars *set.Set[symnorm.Identifier]) (*atom.Atom, bool, error) {
	a, err := n.normalize(e.View())
	if err != nil {
		return nil, false, err
	}
	return n.setCoefficientRing(a.View(), vars)
}
