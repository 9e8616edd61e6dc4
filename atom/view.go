package atom

import (
	"github.com/npillmayer/symnorm"
	"github.com/npillmayer/symnorm/coeff"
)

// View is a read-only view of an atom. Views are cheap to copy.
type View struct {
	a *Atom
}

// IsNil is a predicate: does v wrap no atom?
func (v View) IsNil() bool {
	return v.a == nil
}

// Atom returns the viewed atom. Clients must not modify it.
func (v View) Atom() *Atom {
	return v.a
}

// Kind returns the node type.
func (v View) Kind() Kind {
	return v.a.kind
}

// IsDirty is a predicate: is the viewed atom not known to be canonical?
func (v View) IsDirty() bool {
	return v.a.state == Dirty
}

// Is is a predicate: is the viewed atom of kind k?
func (v View) Is(k Kind) bool {
	return v.a.kind == k
}

// Coefficient returns the coefficient of a number.
func (v View) Coefficient() coeff.View {
	return v.a.num
}

// Name returns the identifier of a variable or function.
func (v View) Name() symnorm.Identifier {
	return v.a.id
}

// Base returns the base of a power.
func (v View) Base() View {
	return View{a: v.a.args[0]}
}

// Exp returns the exponent of a power.
func (v View) Exp() View {
	return View{a: v.a.args[1]}
}

// BaseExp returns base and exponent of a power.
func (v View) BaseExp() (View, View) {
	return View{a: v.a.args[0]}, View{a: v.a.args[1]}
}

// Len returns the number of factors, terms or arguments.
func (v View) Len() int {
	return len(v.a.args)
}

// Arg returns the i-th factor, term or argument.
func (v View) Arg(i int) View {
	return View{a: v.a.args[i]}
}

// Last returns the last factor, term or argument.
func (v View) Last() View {
	return View{a: v.a.args[len(v.a.args)-1]}
}

// HasCoefficient is a predicate: is v a product with a trailing number?
func (v View) HasCoefficient() bool {
	return v.a.kind == ProductKind && len(v.a.args) > 0 &&
		v.a.args[len(v.a.args)-1].kind == NumberKind
}

// IsNumber is a predicate: is v a number node with a value for which pred holds?
func (v View) IsNumber(pred func(coeff.View) bool) bool {
	return v.a.kind == NumberKind && pred(v.a.num)
}

// IsVariable is a predicate: is v the variable id?
func (v View) IsVariable(id symnorm.Identifier) bool {
	return v.a.kind == VariableKind && v.a.id == id
}

// Equal is a predicate: are v and w structurally equal? States are ignored.
func (v View) Equal(w View) bool {
	a, b := v.a, w.a
	if a == b {
		return true
	}
	if a.kind != b.kind || len(a.args) != len(b.args) {
		return false
	}
	switch a.kind {
	case NumberKind:
		return a.num.Equal(b.num)
	case VariableKind:
		return a.id == b.id
	case FunctionKind:
		if a.id != b.id {
			return false
		}
	}
	for i := range a.args {
		if !(View{a: a.args[i]}).Equal(View{a: b.args[i]}) {
			return false
		}
	}
	return true
}

// EqualSlice is a predicate: are v's elements [from, to) equal to w's elements [from2, to2)?
func EqualSlice(v View, from, to int, w View, from2, to2 int) bool {
	if to-from != to2-from2 {
		return false
	}
	for i := 0; i < to-from; i++ {
		if !v.Arg(from + i).Equal(w.Arg(from2 + i)) {
			return false
		}
	}
	return true
}
