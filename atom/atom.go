/*
Package atom implements the nodes of expression trees.

An expression is a tree of atoms. Every atom is one of

    Number     a coefficient (see package coeff)
    Variable   a symbol
    Power      base^exponent
    Product    factor*factor*…
    Sum        term+term+…
    Function   f(arg, arg, …)

Every atom carries an explicit State. Producers create Dirty atoms; the normalizer
(package norm) turns them into Clean atoms in canonical form. Atoms are never
mutated once they have been handed to another party: a new node is built and
references are swapped. This allows canonical sub-expressions to be shared
between trees without copying.

Read access goes through View, a small value type wrapping a node. Views are
used throughout comparison, merging and normalization.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package atom

import (
	"fmt"

	"github.com/npillmayer/symnorm"
	"github.com/npillmayer/symnorm/coeff"
)

// Kind is the node type of an atom.
type Kind int8

// Kinds of atoms.
const (
	NumberKind Kind = iota
	VariableKind
	PowerKind
	ProductKind
	SumKind
	FunctionKind
)

func (k Kind) String() string {
	switch k {
	case NumberKind:
		return "Num"
	case VariableKind:
		return "Var"
	case PowerKind:
		return "Pow"
	case ProductKind:
		return "Mul"
	case SumKind:
		return "Add"
	case FunctionKind:
		return "Fun"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// State tells whether an atom is known to be in canonical form.
type State int8

// Atom states.
const (
	Dirty State = iota // not yet verified canonical
	Clean              // produced by the normalizer
)

func (s State) String() string {
	if s == Clean {
		return "clean"
	}
	return "dirty"
}

// Atom is a node of an expression tree.
type Atom struct {
	kind  Kind
	state State
	num   coeff.View         // Number
	id    symnorm.Identifier // Variable, Function
	args  []*Atom            // Power: base, exponent; Product: factors; Sum: terms; Function: arguments
}

// --- Construction ----------------------------------------------------------

// NewNumber creates a number node for a coefficient.
func NewNumber(c coeff.Coefficient) *Atom {
	return &Atom{kind: NumberKind, num: c.View()}
}

// NewNumberFromView creates a number node from a coefficient view.
func NewNumberFromView(v coeff.View) *Atom {
	return &Atom{kind: NumberKind, num: v}
}

// NewInt creates a number node for an integer.
func NewInt(n int64) *Atom {
	return NewNumber(coeff.FromInt64(n))
}

// NewNatural creates a number node n/d without reducing the fraction.
func NewNatural(n, d int64) *Atom {
	return &Atom{kind: NumberKind, num: coeff.Natural(n, d)}
}

// NewVariable creates a variable node.
func NewVariable(id symnorm.Identifier) *Atom {
	return &Atom{kind: VariableKind, id: id}
}

// NewPower creates base^exp.
func NewPower(base, exp *Atom) *Atom {
	return &Atom{kind: PowerKind, args: []*Atom{base, exp}}
}

// NewProduct creates a product of factors. The factor slice is copied.
func NewProduct(factors ...*Atom) *Atom {
	return &Atom{kind: ProductKind, args: copyAtoms(factors)}
}

// NewSum creates a sum of terms. The term slice is copied.
func NewSum(terms ...*Atom) *Atom {
	return &Atom{kind: SumKind, args: copyAtoms(terms)}
}

// NewFunction creates a function application. The argument slice is copied.
func NewFunction(id symnorm.Identifier, args ...*Atom) *Atom {
	return &Atom{kind: FunctionKind, id: id, args: copyAtoms(args)}
}

func copyAtoms(atoms []*Atom) []*Atom {
	if len(atoms) == 0 {
		return nil
	}
	c := make([]*Atom, len(atoms))
	copy(c, atoms)
	return c
}

// MarkClean sets the state of a freshly built atom to Clean and returns it.
// It must only be called by the party which built the atom, before handing
// it out.
func (a *Atom) MarkClean() *Atom {
	a.state = Clean
	return a
}

// View returns a read-only view of a.
func (a *Atom) View() View {
	return View{a: a}
}

// Kind returns the node type of a.
func (a *Atom) Kind() Kind {
	return a.kind
}

// State returns the state of a.
func (a *Atom) State() State {
	return a.state
}

// IsDirty is a predicate: is a not known to be canonical?
func (a *Atom) IsDirty() bool {
	return a.state == Dirty
}

// Equal is a predicate: are a and b structurally equal? The state is ignored.
func (a *Atom) Equal(b *Atom) bool {
	return a.View().Equal(b.View())
}

func (a *Atom) String() string {
	return Format(a.View(), nil)
}
