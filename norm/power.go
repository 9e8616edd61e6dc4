package norm

import (
	"github.com/npillmayer/symnorm/atom"
	"github.com/npillmayer/symnorm/coeff"
	"github.com/npillmayer/symnorm/registry"
)

// normalizePower normalizes base^exp. Products are not expanded: (x*y)^2 stays
// as it is.
func (n *Normalizer) normalizePower(v atom.View) (*atom.Atom, error) {
	base, err := n.normalize(v.Base())
	if err != nil {
		return nil, err
	}
	exp, err := n.normalize(v.Exp())
	if err != nil {
		return nil, err
	}
	bv, ev := base.View(), exp.View()
	if !ev.Is(atom.NumberKind) {
		return power(base, exp), nil
	}
	e := ev.Coefficient()
	switch {
	case e.IsZero(): // x^0 = 1
		return number(coeff.One()), nil
	case e.IsOne(): // x^1 = x
		return base, nil
	case bv.Is(atom.NumberKind):
		c, leftover, err := bv.Coefficient().Pow(e, n.reg)
		if err != nil {
			return nil, err
		}
		if leftover.IsOne() {
			return number(c), nil
		}
		return power(number(c), number(leftover)), nil
	case bv.IsVariable(registry.I):
		if num, den, ok := e.NaturalValue(); ok {
			return n.powerOfI(base, num, den)
		}
	case bv.Is(atom.PowerKind): // (x^a)^b = x^(a*b) for numbers a, b
		ib, ie := bv.BaseExp()
		if !ie.Is(atom.NumberKind) {
			break
		}
		c, err := ie.Coefficient().Mul(e, n.reg)
		if err != nil {
			return nil, err
		}
		if c.IsOne() {
			return ib.Atom(), nil
		}
		return power(ib.Atom(), number(c)), nil
	}
	return power(base, exp), nil
}

// powerOfI reduces i^(num/den) to ±1 or ±i, raised to 1/den.
func (n *Normalizer) powerOfI(i *atom.Atom, num, den int64) (*atom.Atom, error) {
	var b *atom.Atom
	switch {
	case num%4 == 0:
		b = number(coeff.One())
	case num%2 == 0:
		b = number(coeff.FromInt64(-1))
	case (num-1)%4 == 0:
		b = i
	default: // i^3 = -i
		var err error
		b, err = n.normalize(atom.NewProduct(i, atom.NewInt(-1)).View())
		if err != nil {
			return nil, err
		}
	}
	if den == 1 {
		return b, nil
	}
	c, err := coeff.FromFrac(1, den)
	if err != nil {
		return nil, err
	}
	return power(b, number(c)), nil
}
