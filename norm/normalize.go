package norm

import (
	"golang.org/x/exp/slices"

	"github.com/npillmayer/symnorm"
	"github.com/npillmayer/symnorm/atom"
	"github.com/npillmayer/symnorm/coeff"
	"github.com/npillmayer/symnorm/order"
	"github.com/npillmayer/symnorm/registry"
	"github.com/npillmayer/symnorm/workspace"
)

// Normalizer normalizes expressions, using a workspace for its buffers and a
// registry for symbols and finite fields.
type Normalizer struct {
	Order order.Comparator
	ws    *workspace.Workspace
	reg   *registry.Registry
}

// New creates a normalizer. Its comparator is configured from the global
// configuration.
func New(ws *workspace.Workspace, reg *registry.Registry) *Normalizer {
	return &Normalizer{
		Order: order.Default(),
		ws:    ws,
		reg:   reg,
	}
}

// Normalize returns the canonical form of the expression viewed by v.
//
// Errors are of one of the kinds listed in package symnorm. The workspace and
// the registry must not be used concurrently.
func Normalize(v atom.View, ws *workspace.Workspace, reg *registry.Registry) (*atom.Atom, error) {
	return New(ws, reg).Normalize(v)
}

// Normalize returns the canonical form of the expression viewed by v. Clean
// input is returned as is.
func (n *Normalizer) Normalize(v atom.View) (result *atom.Atom, err error) {
	defer symnorm.Recover(&err)
	result, err = n.normalize(v)
	if err != nil {
		tracer().Errorf("cannot normalize %s: %v", v.Atom(), err)
		return nil, err
	}
	return result, nil
}

func (n *Normalizer) normalize(v atom.View) (*atom.Atom, error) {
	if !v.IsDirty() {
		return v.Atom(), nil
	}
	leave := n.ws.Enter()
	defer leave()
	switch v.Kind() {
	case atom.NumberKind:
		c, err := v.Coefficient().Normalize()
		if err != nil {
			return nil, err
		}
		return number(c), nil
	case atom.VariableKind:
		return atom.NewVariable(v.Name()).MarkClean(), nil
	case atom.PowerKind:
		return n.normalizePower(v)
	case atom.ProductKind:
		return n.normalizeProduct(v)
	case atom.SumKind:
		return n.normalizeSum(v)
	}
	return n.normalizeFunction(v)
}

// --- Products --------------------------------------------------------------

func (n *Normalizer) normalizeProduct(v atom.View) (*atom.Atom, error) {
	buf := n.ws.Acquire()
	defer buf.Release()
	for i := 0; i < v.Len(); i++ {
		f, err := n.normalize(v.Arg(i))
		if err != nil {
			return nil, err
		}
		fv := f.View()
		if !fv.Is(atom.ProductKind) {
			if isZeroFactor(fv, buf) {
				return number(coeff.Zero()), nil
			}
			continue
		}
		for j := 0; j < fv.Len(); j++ {
			if isZeroFactor(fv.Arg(j), buf) {
				return number(coeff.Zero()), nil
			}
		}
	}
	if buf.Len() == 0 {
		return number(coeff.One()), nil
	}
	slices.SortStableFunc(buf.Atoms, func(a, b *atom.Atom) int {
		return n.Order.CmpFactors(a.View(), b.View())
	})
	out := n.ws.Acquire()
	defer out.Release()
	last := buf.Atoms[0]
	// numbers which do not merge are moved to the end of buf, to be merged last
	for i := 1; i < buf.Len(); i++ {
		cur := buf.Atoms[i]
		merged, ok, err := n.mergeFactors(last, cur)
		if err != nil {
			return nil, err
		}
		if ok {
			last = splitMerged(merged, buf)
			continue
		}
		if lv := last.View(); lv.Is(atom.NumberKind) {
			if !lv.Coefficient().IsOne() {
				buf.Append(last)
			}
		} else {
			out.Append(last)
		}
		last = cur
	}
	lv := last.View()
	switch {
	case out.Len() == 0:
		return last, nil
	case !lv.Is(atom.NumberKind) || !lv.Coefficient().IsOne():
		out.Append(last)
	case out.Len() == 1:
		return out.Atoms[0], nil
	}
	return atom.NewProduct(out.Atoms...).MarkClean(), nil
}

// splitMerged returns a merged factor. If merging produced a product, as in
// (-i)^(1/2)*(-i)^(1/2) = -i, its numeric factors are appended to buf and the
// remaining factor is returned.
func splitMerged(merged *atom.Atom, buf *workspace.Buffer) *atom.Atom {
	mv := merged.View()
	if !mv.Is(atom.ProductKind) {
		return merged
	}
	var rest []*atom.Atom
	for i := 0; i < mv.Len(); i++ {
		if f := mv.Arg(i); f.Is(atom.NumberKind) {
			buf.Append(f.Atom())
		} else {
			rest = append(rest, f.Atom())
		}
	}
	switch len(rest) {
	case 0:
		return number(coeff.One())
	case 1:
		return rest[0]
	}
	return atom.NewProduct(rest...).MarkClean()
}

// isZeroFactor appends a factor to buf, unless it is 1. It returns true if the
// factor is 0.
func isZeroFactor(f atom.View, buf *workspace.Buffer) bool {
	if f.Is(atom.NumberKind) {
		c := f.Coefficient()
		if c.IsZero() {
			return true
		}
		if c.IsOne() {
			return false
		}
	}
	buf.Append(f.Atom())
	return false
}

// --- Sums ------------------------------------------------------------------

func (n *Normalizer) normalizeSum(v atom.View) (*atom.Atom, error) {
	buf := n.ws.Acquire()
	defer buf.Release()
	for i := 0; i < v.Len(); i++ {
		t, err := n.normalize(v.Arg(i))
		if err != nil {
			return nil, err
		}
		tv := t.View()
		if !tv.Is(atom.SumKind) {
			appendTerm(tv, buf)
			continue
		}
		for j := 0; j < tv.Len(); j++ {
			appendTerm(tv.Arg(j), buf)
		}
	}
	if buf.Len() == 0 {
		return number(coeff.Zero()), nil
	}
	slices.SortStableFunc(buf.Atoms, func(a, b *atom.Atom) int {
		return n.Order.CmpTerms(a.View(), b.View())
	})
	out := n.ws.Acquire()
	defer out.Release()
	last := buf.Atoms[0]
	for _, cur := range buf.Atoms[1:] {
		merged, ok, err := n.mergeTerms(last, cur)
		if err != nil {
			return nil, err
		}
		if ok {
			last = merged
			continue
		}
		if lv := last.View(); !lv.Is(atom.NumberKind) || !lv.Coefficient().IsZero() {
			out.Append(last)
		}
		last = cur
	}
	lv := last.View()
	switch {
	case out.Len() == 0:
		return last, nil
	case !lv.Is(atom.NumberKind) || !lv.Coefficient().IsZero():
		out.Append(last)
	case out.Len() == 1:
		return out.Atoms[0], nil
	}
	return atom.NewSum(out.Atoms...).MarkClean(), nil
}

// appendTerm appends a term to buf, unless it is 0.
func appendTerm(t atom.View, buf *workspace.Buffer) {
	if t.Is(atom.NumberKind) && t.Coefficient().IsZero() {
		return
	}
	buf.Append(t.Atom())
}

// --- Helpers ---------------------------------------------------------------

// number creates a clean number node.
func number(c coeff.Coefficient) *atom.Atom {
	return atom.NewNumber(c).MarkClean()
}

// power creates a clean power node of clean operands.
func power(base, exp *atom.Atom) *atom.Atom {
	return atom.NewPower(base, exp).MarkClean()
}

// product creates a clean product node of clean, sorted factors.
func product(factors ...*atom.Atom) *atom.Atom {
	return atom.NewProduct(factors...).MarkClean()
}
