package norm

import (
	"github.com/npillmayer/symnorm/atom"
	"github.com/npillmayer/symnorm/coeff"
	"github.com/npillmayer/symnorm/registry"
)

// mergeFactors tries to combine two adjacent factors of a product, returning the
// combined factor. It returns false if the factors do not combine. Neither a nor
// b is modified.
func (n *Normalizer) mergeFactors(a, b *atom.Atom) (*atom.Atom, bool, error) {
	av, bv := a.View(), b.View()
	if av.Is(atom.PowerKind) && bv.Is(atom.PowerKind) { // x^a * x^b = x^(a+b)
		b1, e1 := av.BaseExp()
		b2, e2 := bv.BaseExp()
		if !b1.Equal(b2) {
			return nil, false, nil
		}
		if e1.Is(atom.NumberKind) && e2.Is(atom.NumberKind) {
			c, err := e1.Coefficient().Add(e2.Coefficient(), n.reg)
			if err != nil {
				return nil, false, err
			}
			p, err := n.powerOf(b2.Atom(), number(c))
			return p, true, err
		}
		exp, err := n.normalize(atom.NewSum(e1.Atom(), e2.Atom()).View())
		if err != nil {
			return nil, false, err
		}
		p, err := n.powerOf(b2.Atom(), exp)
		return p, true, err
	}
	if bv.Is(atom.PowerKind) { // x * x^n = x^(n+1)
		base, exp := bv.BaseExp()
		if !av.Equal(base) {
			return nil, false, nil
		}
		var e *atom.Atom
		if exp.Is(atom.NumberKind) {
			c, err := exp.Coefficient().Add(coeff.Natural(1, 1), n.reg)
			if err != nil {
				return nil, false, err
			}
			e = number(c)
		} else {
			var err error
			if e, err = n.normalize(atom.NewSum(atom.NewInt(1), exp.Atom()).View()); err != nil {
				return nil, false, err
			}
		}
		p, err := n.powerOf(base.Atom(), e)
		return p, true, err
	}
	if av.Is(atom.NumberKind) {
		if !bv.Is(atom.NumberKind) {
			return nil, false, nil
		}
		c, err := av.Coefficient().Mul(bv.Coefficient(), n.reg)
		if err != nil {
			return nil, false, err
		}
		return number(c), true, nil
	}
	if av.Equal(bv) { // x * x = x^2
		if av.IsVariable(registry.I) {
			return number(coeff.FromInt64(-1)), true, nil
		}
		return power(a, number(coeff.FromInt64(2))), true, nil
	}
	return nil, false, nil
}

// powerOf creates base^exp of clean operands, collapsing exponents 0 and 1.
// Numeric powers of numbers are evaluated only if the result is a number, so
// the merged factor keeps the base it has been sorted by. Integer powers of i
// are reduced.
func (n *Normalizer) powerOf(base, exp *atom.Atom) (*atom.Atom, error) {
	ev := exp.View()
	if !ev.Is(atom.NumberKind) {
		return power(base, exp), nil
	}
	switch c := ev.Coefficient(); {
	case c.IsZero():
		return number(coeff.One()), nil
	case c.IsOne():
		return base, nil
	case base.Kind() == atom.NumberKind:
		p, leftover, err := base.View().Coefficient().Pow(c, n.reg)
		if err != nil {
			return nil, err
		}
		if leftover.IsOne() {
			return number(p), nil
		}
	case base.View().IsVariable(registry.I):
		if num, den, ok := c.NaturalValue(); ok && den == 1 {
			return n.powerOfI(base, num, 1)
		}
	}
	return power(base, exp), nil
}

// mergeTerms tries to combine two adjacent terms of a sum, returning the combined
// term. It returns false if the terms do not combine. Neither a nor b is modified.
//
// Terms combine if their non-coefficient parts are equal. A missing coefficient
// counts as 1.
func (n *Normalizer) mergeTerms(a, b *atom.Atom) (*atom.Atom, bool, error) {
	av, bv := a.View(), b.View()
	if av.Is(atom.NumberKind) {
		if !bv.Is(atom.NumberKind) {
			return nil, false, nil
		}
		c, err := av.Coefficient().Add(bv.Coefficient(), n.reg)
		if err != nil {
			return nil, false, err
		}
		return number(c), true, nil
	}
	switch {
	case av.Is(atom.ProductKind) && bv.Is(atom.ProductKind):
		na, nb := factorCount(av), factorCount(bv)
		if !atom.EqualSlice(av, 0, na, bv, 0, nb) {
			return nil, false, nil
		}
	case av.Is(atom.ProductKind): // 3*x + x
		if factorCount(av) != 1 || !av.HasCoefficient() || !av.Arg(0).Equal(bv) {
			return nil, false, nil
		}
	case bv.Is(atom.ProductKind): // x + 3*x
		if bv.Len() != 2 || !bv.HasCoefficient() || !av.Equal(bv.Arg(0)) {
			return nil, false, nil
		}
		a, av, b, bv = b, bv, a, av
	case av.Equal(bv): // x + x = 2*x
		return product(a, number(coeff.FromInt64(2))), true, nil
	default:
		return nil, false, nil
	}
	c1, c2 := coefficientOf(av), coefficientOf(bv)
	unit := unitFor(c1, c2)
	if !av.HasCoefficient() {
		c1 = unit
	}
	if !bv.HasCoefficient() {
		c2 = unit
	}
	c, err := c1.Add(c2, n.reg)
	if err != nil {
		return nil, false, err
	}
	tracer().Debugf("merging terms %s and %s, new coefficient %s", a, b, c)
	if c.IsZero() {
		return number(c), true, nil
	}
	k := factorCount(av)
	factors := make([]*atom.Atom, 0, k+1)
	for i := 0; i < k; i++ {
		factors = append(factors, av.Arg(i).Atom())
	}
	if c.IsOne() {
		if k == 1 {
			return factors[0], true, nil
		}
		return product(factors...), true, nil
	}
	return product(append(factors, number(c))...), true, nil
}

// coefficientOf returns the coefficient of a product, or the zero value.
func coefficientOf(v atom.View) coeff.View {
	if v.HasCoefficient() {
		return v.Last().Coefficient()
	}
	return coeff.View{}
}

// unitFor returns 1 in the domain of c1 or c2, if one of them is a finite field
// element, and the rational 1 otherwise.
func unitFor(c1, c2 coeff.View) coeff.View {
	for _, c := range []coeff.View{c1, c2} {
		if _, id, ok := c.FiniteField(); ok {
			return coeff.FromFiniteField(1, id).View()
		}
	}
	return coeff.Natural(1, 1)
}

// factorCount returns the number of factors of a product, not counting its
// coefficient. Any other atom counts as a single factor.
func factorCount(v atom.View) int {
	if !v.Is(atom.ProductKind) {
		return 1
	}
	if v.HasCoefficient() {
		return v.Len() - 1
	}
	return v.Len()
}
