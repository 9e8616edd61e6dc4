/*
Package order implements the orderings of expression trees.

Cmp is a total structural order over atoms. If node types differ, numbers sort
last and variables first; in between powers sort before products, products
before sums and sums before functions:

    Var < Pow < Mul < Add < Fun < Num

Nodes of equal type are compared recursively.

CmpFactors and CmpTerms are the orders used for sorting the factors of a product
and the terms of a sum, respectively. They are coarser than Cmp: they place
elements next to each other which the normalizer may merge, e.g. x and x^2 within
a product, or x and 3*x within a sum.

Functions with equal names are compared either argument by argument or, by
default, by a fingerprint of their arguments. The latter is cheaper for large
argument lists but yields an order which is stable only within a build of this
module. Configuration key 'full-function-compare' selects the former.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package order

import (
	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/schuko/tracing"

	"github.com/npillmayer/symnorm/atom"
)

// tracer traces with key 'symnorm.order'.
func tracer() tracing.Trace {
	return tracing.Select("symnorm.order")
}

// Comparator holds the options for comparing atoms.
type Comparator struct {
	FullFunctionCompare bool // compare function arguments one by one instead of by fingerprint
}

// Default returns a comparator configured from the global configuration.
func Default() Comparator {
	return Comparator{FullFunctionCompare: gconf.GetBool("full-function-compare")}
}

// rank gives the position of a node type in the structural order.
func rank(k atom.Kind) int {
	switch k {
	case atom.VariableKind:
		return 0
	case atom.PowerKind:
		return 1
	case atom.ProductKind:
		return 2
	case atom.SumKind:
		return 3
	case atom.FunctionKind:
		return 4
	}
	return 5 // numbers
}

// Cmp compares two atoms structurally. It returns -1, 0 or +1.
//
// Comparing numbers of different coefficient domains panics with a
// symnorm.LogicError (see coeff.View.Cmp).
func (c Comparator) Cmp(a, b atom.View) int {
	if a.Equal(b) {
		return 0
	}
	ka, kb := a.Kind(), b.Kind()
	if ka != kb {
		return cmpInt(rank(ka), rank(kb))
	}
	switch ka {
	case atom.NumberKind:
		return a.Coefficient().Cmp(b.Coefficient())
	case atom.VariableKind:
		return cmpID(a, b)
	case atom.PowerKind:
		if r := c.Cmp(a.Base(), b.Base()); r != 0 {
			return r
		}
		return c.Cmp(a.Exp(), b.Exp())
	case atom.ProductKind, atom.SumKind:
		return c.cmpElements(a, b)
	}
	return c.cmpFunctions(a, b)
}

// cmpElements compares lists by length, then element-wise.
func (c Comparator) cmpElements(a, b atom.View) int {
	if r := cmpInt(a.Len(), b.Len()); r != 0 {
		return r
	}
	for i := 0; i < a.Len(); i++ {
		if r := c.Cmp(a.Arg(i), b.Arg(i)); r != 0 {
			return r
		}
	}
	return 0
}

func (c Comparator) cmpFunctions(a, b atom.View) int {
	if r := cmpID(a, b); r != 0 {
		return r
	}
	if c.FullFunctionCompare {
		return c.cmpElements(a, b)
	}
	return cmpFingerprints(a, b)
}

// CmpFactors compares two factors of a product. Numbers sort last and compare
// equal among each other. Powers compare by their base only, and a non-power
// compares against a power by comparing to its base, sorting before the power
// if equal. This places x, x^2, x^y next to each other.
//
// Products never occur as factors of a canonical product; CmpFactors panics
// with a symnorm.LogicError if it encounters one.
func (c Comparator) CmpFactors(a, b atom.View) int {
	ka, kb := a.Kind(), b.Kind()
	switch {
	case ka == atom.NumberKind && kb == atom.NumberKind:
		return 0
	case ka == atom.NumberKind:
		return 1
	case kb == atom.NumberKind:
		return -1
	case ka == atom.VariableKind && kb == atom.VariableKind:
		return cmpID(a, b)
	case ka == atom.PowerKind && kb == atom.PowerKind:
		return c.Cmp(a.Base(), b.Base())
	case kb == atom.PowerKind:
		if r := c.Cmp(a, b.Base()); r != 0 {
			return r
		}
		return -1 // x < x^2
	case ka == atom.PowerKind:
		if r := c.Cmp(a.Base(), b); r != 0 {
			return r
		}
		return 1
	case ka == atom.VariableKind:
		return -1
	case kb == atom.VariableKind:
		return 1
	case ka == atom.ProductKind || kb == atom.ProductKind:
		raiseLogic("product as factor", a, b)
	case ka == atom.SumKind && kb == atom.SumKind:
		return c.cmpElements(a, b)
	case ka == atom.SumKind:
		return -1
	case kb == atom.SumKind:
		return 1
	}
	return c.cmpFunctions(a, b)
}

// CmpTerms compares two terms of a sum. Numbers sort last and compare equal among
// each other. A product consisting of a single factor and a coefficient compares
// by that factor, products with coefficients compare by their non-coefficient
// factors. This places x, 3*x and x*y, 2*x*y next to each other.
//
// Sums never occur as terms of a canonical sum; CmpTerms panics with a
// symnorm.LogicError if it encounters one.
func (c Comparator) CmpTerms(a, b atom.View) int {
	ka, kb := a.Kind(), b.Kind()
	switch {
	case ka == atom.SumKind || kb == atom.SumKind:
		raiseLogic("sum as term", a, b)
	case ka == atom.NumberKind && kb == atom.NumberKind:
		return 0
	case ka == atom.NumberKind:
		return 1
	case kb == atom.NumberKind:
		return -1
	case ka == atom.VariableKind && kb == atom.VariableKind:
		return cmpID(a, b)
	case ka == atom.PowerKind && kb == atom.PowerKind:
		return c.Cmp(a, b)
	case ka == atom.ProductKind && kb == atom.ProductKind:
		return c.cmpProductTerms(a, b)
	case ka == atom.ProductKind:
		if !a.HasCoefficient() || a.Len() != 2 {
			return 1
		}
		return c.Cmp(a.Arg(0), b)
	case kb == atom.ProductKind:
		if !b.HasCoefficient() || b.Len() != 2 {
			return -1
		}
		return c.Cmp(a, b.Arg(0))
	case ka == atom.VariableKind:
		return -1
	case kb == atom.VariableKind:
		return 1
	case kb == atom.PowerKind:
		return 1
	case ka == atom.PowerKind:
		return -1
	}
	return c.cmpFunctions(a, b)
}

// cmpProductTerms compares products by the number of non-coefficient factors,
// then factor by factor up to the coefficient.
func (c Comparator) cmpProductTerms(a, b atom.View) int {
	if r := cmpInt(factorCount(a), factorCount(b)); r != 0 {
		return r
	}
	for i := 0; i < a.Len() && i < b.Len(); i++ {
		x, y := a.Arg(i), b.Arg(i)
		if x.Is(atom.NumberKind) || y.Is(atom.NumberKind) {
			break
		}
		if r := c.Cmp(x, y); r != 0 {
			return r
		}
	}
	return 0
}

// factorCount returns the number of factors of a product, not counting its
// coefficient.
func factorCount(v atom.View) int {
	if v.HasCoefficient() {
		return v.Len() - 1
	}
	return v.Len()
}

func cmpID(a, b atom.View) int {
	x, y := a.Name(), b.Name()
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	}
	return 0
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
