package norm

import (
	"golang.org/x/exp/slices"

	"github.com/npillmayer/symnorm"
	"github.com/npillmayer/symnorm/atom"
	"github.com/npillmayer/symnorm/coeff"
	"github.com/npillmayer/symnorm/registry"
	"github.com/npillmayer/symnorm/workspace"
)

func (n *Normalizer) normalizeFunction(v atom.View) (*atom.Atom, error) {
	id := v.Name()
	args := n.ws.Acquire()
	defer args.Release()
	for i := 0; i < v.Len(); i++ {
		a, err := n.normalize(v.Arg(i))
		if err != nil {
			return nil, err
		}
		appendArg(a, args)
	}
	if id == registry.Coeff && args.Len() == 1 {
		if c, ok := n.toCoefficient(args.Atoms[0].View()); ok {
			return c, nil
		}
	}
	if n.reg.HasAttribute(id, symnorm.Linear) {
		if r, ok, err := n.linearize(id, args); ok || err != nil {
			return r, err
		}
	}
	sym := n.reg.HasAttribute(id, symnorm.Symmetric)
	anti := n.reg.HasAttribute(id, symnorm.Antisymmetric)
	if sym || anti {
		return n.sortArgs(id, args, anti), nil
	}
	return atom.NewFunction(id, args.Atoms...).MarkClean(), nil
}

// appendArg appends a function argument, flattening f(arg(x,y)) to f(x,y).
func appendArg(a *atom.Atom, args *workspace.Buffer) {
	av := a.View()
	if !av.Is(atom.FunctionKind) || av.Name() != registry.Arg {
		args.Append(a)
		return
	}
	for i := 0; i < av.Len(); i++ {
		args.Append(av.Arg(i).Atom())
	}
}

// toCoefficient turns the argument of coeff(…) into a number. Arguments which
// are not rational expressions of non-wildcard variables do not convert.
func (n *Normalizer) toCoefficient(arg atom.View) (*atom.Atom, bool) {
	if arg.Is(atom.NumberKind) {
		return arg.Atom(), true
	}
	r, ok := n.toRationalPolynomial(arg)
	if !ok {
		return nil, false
	}
	for _, x := range r.Vars() {
		if n.reg.WildcardLevel(x) != 0 {
			tracer().Debugf("coeff(%s) contains wildcard %s", arg.Atom(), n.reg.Name(x))
			return nil, false
		}
	}
	return number(coeff.FromRationalPolynomial(r)), true
}

// --- Linear functions ------------------------------------------------------

// linearize expands sums in the arguments of a linear function,
// f(x+y,z) = f(x,z)+f(y,z), and pulls coefficients out of products,
// f(3*x,2*y) = 6*f(x,y). It returns false if there is nothing to expand.
func (n *Normalizer) linearize(id symnorm.Identifier, args *workspace.Buffer) (*atom.Atom, bool, error) {
	hasSum, hasCoeff := false, false
	for _, a := range args.Atoms {
		hasSum = hasSum || a.Kind() == atom.SumKind
		hasCoeff = hasCoeff || a.View().HasCoefficient()
	}
	if hasSum {
		terms := n.ws.Acquire()
		defer terms.Release()
		cur := make([]*atom.Atom, 0, args.Len())
		if err := n.expand(id, args.Atoms, cur, terms); err != nil {
			return nil, false, err
		}
		r, err := n.normalize(atom.NewSum(terms.Atoms...).View())
		return r, true, err
	}
	if !hasCoeff {
		return nil, false, nil
	}
	var c coeff.Coefficient
	seeded := false
	stripped := make([]*atom.Atom, args.Len())
	for i, a := range args.Atoms {
		av := a.View()
		if !av.HasCoefficient() {
			stripped[i] = a
			continue
		}
		factors := make([]*atom.Atom, 0, av.Len()-1)
		for j := 0; j < av.Len(); j++ {
			f := av.Arg(j)
			if !f.Is(atom.NumberKind) {
				factors = append(factors, f.Atom())
				continue
			}
			if !seeded { // keeps the domain of the first coefficient
				c, seeded = f.Coefficient().ToOwned(), true
				continue
			}
			var err error
			if c, err = c.View().Mul(f.Coefficient(), n.reg); err != nil {
				return nil, false, err
			}
		}
		stripped[i] = atom.NewProduct(factors...)
	}
	f := atom.NewFunction(id, stripped...)
	r, err := n.normalize(atom.NewProduct(f, atom.NewNumber(c)).View())
	return r, true, err
}

// expand builds the Cartesian product of the terms of the arguments, appending a
// normalized function application for each combination to out.
func (n *Normalizer) expand(id symnorm.Identifier, args, cur []*atom.Atom, out *workspace.Buffer) error {
	if len(args) == 0 {
		f, err := n.normalize(atom.NewFunction(id, cur...).View())
		if err != nil {
			return err
		}
		out.Append(f)
		return nil
	}
	a := args[0].View()
	if !a.Is(atom.SumKind) {
		return n.expand(id, args[1:], append(cur, a.Atom()), out)
	}
	for i := 0; i < a.Len(); i++ {
		if err := n.expand(id, args[1:], append(cur, a.Arg(i).Atom()), out); err != nil {
			return err
		}
	}
	return nil
}

// --- Symmetric functions ---------------------------------------------------

type indexedArg struct {
	pos int
	arg *atom.Atom
}

// sortArgs sorts the arguments of a symmetric or antisymmetric function. An
// antisymmetric function with two equal arguments is 0, one with an odd
// permutation of its arguments changes sign.
func (n *Normalizer) sortArgs(id symnorm.Identifier, args *workspace.Buffer, anti bool) *atom.Atom {
	sorted := make([]indexedArg, args.Len())
	for i, a := range args.Atoms {
		sorted[i] = indexedArg{pos: i, arg: a}
	}
	slices.SortStableFunc(sorted, func(x, y indexedArg) int {
		return n.Order.Cmp(x.arg.View(), y.arg.View())
	})
	fargs := make([]*atom.Atom, len(sorted))
	for i, x := range sorted {
		fargs[i] = x.arg
	}
	f := atom.NewFunction(id, fargs...).MarkClean()
	if !anti {
		return f
	}
	for i := 1; i < len(fargs); i++ {
		if fargs[i-1].Equal(fargs[i]) {
			return number(coeff.Zero())
		}
	}
	if swaps(sorted)%2 == 1 {
		return product(f, number(coeff.FromInt64(-1)))
	}
	return f
}

// swaps counts the transpositions of adjacent elements needed to sort the
// arguments. Only its parity is of interest.
func swaps(sorted []indexedArg) int {
	order := make([]int, len(sorted))
	for i := range order {
		order[i] = slices.IndexFunc(sorted, func(x indexedArg) bool { return x.pos == i })
	}
	count := 0
	for i := range order {
		pos := slices.Index(order[i:], i)
		copy(order[i+1:i+pos+1], order[i:i+pos])
		count += pos
	}
	return count
}
