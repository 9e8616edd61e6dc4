package atom

import (
	"strings"

	"github.com/npillmayer/symnorm"
	"github.com/npillmayer/symnorm/coeff"
)

// Format prints an expression in conventional infix notation. p resolves names
// and finite fields and may be nil, in which case identifiers are printed as '#n'.
//
// Products print their trailing coefficient in front (3*x, -x), sums join terms
// with '+' unless a term starts with a minus sign.
func Format(v View, p coeff.Printer) string {
	var b strings.Builder
	format(&b, v, p)
	return b.String()
}

func nameOf(id symnorm.Identifier, p coeff.Printer) string {
	if p == nil {
		return id.String()
	}
	return p.Name(id)
}

func format(b *strings.Builder, v View, p coeff.Printer) {
	switch v.Kind() {
	case NumberKind:
		b.WriteString(v.Coefficient().Format(p))
	case VariableKind:
		b.WriteString(nameOf(v.Name(), p))
	case FunctionKind:
		b.WriteString(nameOf(v.Name(), p))
		b.WriteByte('(')
		for i := 0; i < v.Len(); i++ {
			if i > 0 {
				b.WriteByte(',')
			}
			format(b, v.Arg(i), p)
		}
		b.WriteByte(')')
	case PowerKind:
		base, exp := v.BaseExp()
		formatWrapped(b, base, p, needsParensAsBase(base))
		b.WriteByte('^')
		formatWrapped(b, exp, p, needsParensAsExp(exp))
	case ProductKind:
		formatProduct(b, v, p)
	case SumKind:
		for i := 0; i < v.Len(); i++ {
			var t strings.Builder
			format(&t, v.Arg(i), p)
			s := t.String()
			if i > 0 && !strings.HasPrefix(s, "-") {
				b.WriteByte('+')
			}
			b.WriteString(s)
		}
	}
}

func formatProduct(b *strings.Builder, v View, p coeff.Printer) {
	n := v.Len()
	if n == 0 {
		b.WriteString("1")
		return
	}
	if v.HasCoefficient() && n > 1 {
		c := v.Last().Coefficient()
		if c.Equal(coeff.Natural(-1, 1)) {
			b.WriteByte('-')
		} else {
			b.WriteString(c.Format(p))
			b.WriteByte('*')
		}
		n--
	}
	for i := 0; i < n; i++ {
		if i > 0 {
			b.WriteByte('*')
		}
		f := v.Arg(i)
		formatWrapped(b, f, p, f.Is(SumKind) || (f.Is(NumberKind) && isSigned(f)))
	}
}

func formatWrapped(b *strings.Builder, v View, p coeff.Printer, parens bool) {
	if parens {
		b.WriteByte('(')
	}
	format(b, v, p)
	if parens {
		b.WriteByte(')')
	}
}

func isSigned(v View) bool {
	c := v.Coefficient()
	return c.IsRational() && (c.Sign() < 0 || !c.IsInteger())
}

func needsParensAsBase(v View) bool {
	switch v.Kind() {
	case SumKind, ProductKind, PowerKind:
		return true
	case NumberKind:
		return isSigned(v)
	}
	return false
}

func needsParensAsExp(v View) bool {
	switch v.Kind() {
	case VariableKind, FunctionKind:
		return false
	case NumberKind:
		return isSigned(v)
	}
	return true
}
