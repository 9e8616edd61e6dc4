package poly

import (
	"math/big"
	"sort"
	"strconv"
	"strings"

	"github.com/npillmayer/symnorm"
)

// Term is a monomial with a non-zero integer coefficient. Exps has one entry per
// variable of the polynomial the term belongs to.
type Term struct {
	Coeff *big.Int
	Exps  []uint32
}

// Polynomial is a multivariate polynomial with integer coefficients. Polynomials
// are immutable; all operations return new polynomials.
//
// Terms are sorted by descending lexicographic order of exponent vectors, thus the
// first term is the leading term.
type Polynomial struct {
	vars  []symnorm.Identifier
	terms []Term
}

// Zero returns the zero polynomial.
func Zero() *Polynomial {
	return &Polynomial{}
}

// One returns the constant polynomial 1.
func One() *Polynomial {
	return Constant(big.NewInt(1))
}

// Constant returns a constant polynomial.
func Constant(c *big.Int) *Polynomial {
	if c.Sign() == 0 {
		return Zero()
	}
	return &Polynomial{terms: []Term{{Coeff: new(big.Int).Set(c), Exps: nil}}}
}

// Var returns the polynomial consisting of a single variable v.
func Var(v symnorm.Identifier) *Polynomial {
	return &Polynomial{
		vars:  []symnorm.Identifier{v},
		terms: []Term{{Coeff: big.NewInt(1), Exps: []uint32{1}}},
	}
}

// Monomial returns c*v1^e1*…*vn^en over variable list vars. vars has to be sorted.
func Monomial(vars []symnorm.Identifier, c *big.Int, exps []uint32) *Polynomial {
	p := &Polynomial{vars: vars}
	if c.Sign() != 0 {
		p.terms = []Term{{Coeff: new(big.Int).Set(c), Exps: append([]uint32(nil), exps...)}}
	}
	return p.compact()
}

// Vars returns the variable list of p. Clients must not modify it.
func (p *Polynomial) Vars() []symnorm.Identifier {
	return p.vars
}

// Len returns the number of terms of p.
func (p *Polynomial) Len() int {
	return len(p.terms)
}

// Each calls f for every term of p, in descending order. Clients must not
// modify the term.
func (p *Polynomial) Each(f func(Term)) {
	for _, t := range p.terms {
		f(t)
	}
}

// IsZero is a predicate: is p the zero polynomial?
func (p *Polynomial) IsZero() bool {
	return len(p.terms) == 0
}

// IsConstant is a predicate: is p free of variables?
func (p *Polynomial) IsConstant() bool {
	if len(p.terms) == 0 {
		return true
	}
	return len(p.terms) == 1 && isConstantExps(p.terms[0].Exps)
}

// IsOne is a predicate: is p the constant 1?
func (p *Polynomial) IsOne() bool {
	return p.IsConstant() && len(p.terms) == 1 && p.terms[0].Coeff.Cmp(bigOne) == 0
}

// ConstantCoeff returns the coefficient of the constant term of p.
func (p *Polynomial) ConstantCoeff() *big.Int {
	if len(p.terms) == 0 {
		return new(big.Int)
	}
	last := p.terms[len(p.terms)-1]
	if isConstantExps(last.Exps) {
		return new(big.Int).Set(last.Coeff)
	}
	return new(big.Int)
}

// LeadingCoeff returns the coefficient of the leading term of p, or 0.
func (p *Polynomial) LeadingCoeff() *big.Int {
	if len(p.terms) == 0 {
		return new(big.Int)
	}
	return new(big.Int).Set(p.terms[0].Coeff)
}

// Content returns the (non-negative) GCD of all coefficients of p.
func (p *Polynomial) Content() *big.Int {
	g := new(big.Int)
	for _, t := range p.terms {
		g.GCD(nil, nil, g, new(big.Int).Abs(t.Coeff))
		if g.Cmp(bigOne) == 0 {
			break
		}
	}
	return g
}

var bigOne = big.NewInt(1)

func isConstantExps(exps []uint32) bool {
	for _, e := range exps {
		if e != 0 {
			return false
		}
	}
	return true
}

// --- Variable lists --------------------------------------------------------

// Rearrange expresses p over a variable list which has to be a sorted superset
// of p's variables. The result is not compacted.
func (p *Polynomial) Rearrange(vars []symnorm.Identifier) *Polynomial {
	if sameVars(p.vars, vars) {
		return p
	}
	pos := make([]int, len(p.vars))
	for i, v := range p.vars {
		pos[i] = indexOf(vars, v)
		if pos[i] < 0 {
			panic("poly: rearranging to a variable list which is not a superset")
		}
	}
	q := &Polynomial{vars: vars, terms: make([]Term, len(p.terms))}
	for k, t := range p.terms {
		exps := make([]uint32, len(vars))
		for i, e := range t.Exps {
			exps[pos[i]] = e
		}
		q.terms[k] = Term{Coeff: t.Coeff, Exps: exps}
	}
	q.sortTerms()
	return q
}

// Unify expresses p and q over the union of their variable lists.
func Unify(p, q *Polynomial) (*Polynomial, *Polynomial) {
	if sameVars(p.vars, q.vars) {
		return p, q
	}
	vars := UnionVars(p.vars, q.vars)
	tracer().Debugf("unifying variable lists %v and %v to %v", p.vars, q.vars, vars)
	return p.Rearrange(vars), q.Rearrange(vars)
}

// compact removes variables not occurring in any term.
func (p *Polynomial) compact() *Polynomial {
	used := make([]bool, len(p.vars))
	n := 0
	for _, t := range p.terms {
		for i, e := range t.Exps {
			if e != 0 && !used[i] {
				used[i] = true
				n++
			}
		}
	}
	if n == len(p.vars) {
		return p
	}
	vars := make([]symnorm.Identifier, 0, n)
	for i, v := range p.vars {
		if used[i] {
			vars = append(vars, v)
		}
	}
	q := &Polynomial{vars: vars, terms: make([]Term, len(p.terms))}
	for k, t := range p.terms {
		exps := make([]uint32, 0, n)
		for i, e := range t.Exps {
			if used[i] {
				exps = append(exps, e)
			}
		}
		q.terms[k] = Term{Coeff: t.Coeff, Exps: exps}
	}
	return q
}

// --- Arithmetic ------------------------------------------------------------

// Add returns p+q.
func (p *Polynomial) Add(q *Polynomial) *Polynomial {
	p, q = Unify(p, q)
	r := &Polynomial{vars: p.vars, terms: make([]Term, 0, len(p.terms)+len(q.terms))}
	i, j := 0, 0
	for i < len(p.terms) && j < len(q.terms) {
		switch c := cmpExps(p.terms[i].Exps, q.terms[j].Exps); {
		case c > 0:
			r.terms = append(r.terms, p.terms[i])
			i++
		case c < 0:
			r.terms = append(r.terms, q.terms[j])
			j++
		default:
			s := new(big.Int).Add(p.terms[i].Coeff, q.terms[j].Coeff)
			if s.Sign() != 0 {
				r.terms = append(r.terms, Term{Coeff: s, Exps: p.terms[i].Exps})
			}
			i++
			j++
		}
	}
	r.terms = append(r.terms, p.terms[i:]...)
	r.terms = append(r.terms, q.terms[j:]...)
	return r.compact()
}

// Neg returns -p.
func (p *Polynomial) Neg() *Polynomial {
	return p.MulCoeff(big.NewInt(-1))
}

// Sub returns p-q.
func (p *Polynomial) Sub(q *Polynomial) *Polynomial {
	return p.Add(q.Neg())
}

// MulCoeff returns c*p.
func (p *Polynomial) MulCoeff(c *big.Int) *Polynomial {
	if c.Sign() == 0 {
		return Zero()
	}
	r := &Polynomial{vars: p.vars, terms: make([]Term, len(p.terms))}
	for k, t := range p.terms {
		r.terms[k] = Term{Coeff: new(big.Int).Mul(t.Coeff, c), Exps: t.Exps}
	}
	return r
}

// DivCoeff returns p/c. c has to divide every coefficient of p.
func (p *Polynomial) DivCoeff(c *big.Int) *Polynomial {
	r := &Polynomial{vars: p.vars, terms: make([]Term, len(p.terms))}
	for k, t := range p.terms {
		r.terms[k] = Term{Coeff: new(big.Int).Quo(t.Coeff, c), Exps: t.Exps}
	}
	return r
}

// Mul returns p*q.
func (p *Polynomial) Mul(q *Polynomial) *Polynomial {
	if p.IsZero() || q.IsZero() {
		return Zero()
	}
	p, q = Unify(p, q)
	acc := make(map[string]*Term, len(p.terms)*len(q.terms))
	for _, s := range p.terms {
		for _, t := range q.terms {
			exps := make([]uint32, len(p.vars))
			for i := range exps {
				exps[i] = s.Exps[i] + t.Exps[i]
			}
			key := expsKey(exps)
			c := new(big.Int).Mul(s.Coeff, t.Coeff)
			if prev, ok := acc[key]; ok {
				prev.Coeff.Add(prev.Coeff, c)
			} else {
				acc[key] = &Term{Coeff: c, Exps: exps}
			}
		}
	}
	r := &Polynomial{vars: p.vars, terms: make([]Term, 0, len(acc))}
	for _, t := range acc {
		if t.Coeff.Sign() != 0 {
			r.terms = append(r.terms, *t)
		}
	}
	r.sortTerms()
	return r.compact()
}

// Pow returns p^n.
func (p *Polynomial) Pow(n uint64) *Polynomial {
	result := One()
	base := p
	for n > 0 {
		if n&1 == 1 {
			result = result.Mul(base)
		}
		n >>= 1
		if n > 0 {
			base = base.Mul(base)
		}
	}
	return result
}

// maxDivisionSteps bounds the work spent in DivExact.
const maxDivisionSteps = 1 << 14

// DivExact returns p/d if d divides p exactly (with integer coefficients).
// Otherwise it returns false.
func (p *Polynomial) DivExact(d *Polynomial) (*Polynomial, bool) {
	if d.IsZero() {
		return nil, false
	}
	if p.IsZero() {
		return Zero(), true
	}
	r, d := Unify(p, d)
	q := Zero()
	lead := d.terms[0]
	for step := 0; !r.IsZero(); step++ {
		if step > maxDivisionSteps {
			tracer().Debugf("exact division gave up after %d steps", step)
			return nil, false
		}
		lt := r.terms[0]
		exps := make([]uint32, len(lt.Exps))
		for i := range exps {
			if lt.Exps[i] < lead.Exps[i] {
				return nil, false
			}
			exps[i] = lt.Exps[i] - lead.Exps[i]
		}
		c, m := new(big.Int).QuoRem(lt.Coeff, lead.Coeff, new(big.Int))
		if m.Sign() != 0 {
			return nil, false
		}
		t := &Polynomial{vars: r.vars, terms: []Term{{Coeff: c, Exps: exps}}}
		q = q.Add(t)
		r = r.Sub(t.Mul(d)).Rearrange(d.vars)
	}
	return q, true
}

// --- Comparison ------------------------------------------------------------

// Equal is a predicate: are p and q identical polynomials?
func (p *Polynomial) Equal(q *Polynomial) bool {
	return p.Cmp(q) == 0
}

// Cmp is a deterministic total order on polynomials: by variable list, then number
// of terms, then term by term.
func (p *Polynomial) Cmp(q *Polynomial) int {
	if c := cmpVars(p.vars, q.vars); c != 0 {
		return c
	}
	if len(p.terms) != len(q.terms) {
		return cmpInt(len(p.terms), len(q.terms))
	}
	for i := range p.terms {
		if c := cmpExps(p.terms[i].Exps, q.terms[i].Exps); c != 0 {
			return c
		}
		if c := p.terms[i].Coeff.Cmp(q.terms[i].Coeff); c != 0 {
			return c
		}
	}
	return 0
}

func cmpVars(a, b []symnorm.Identifier) int {
	if len(a) != len(b) {
		return cmpInt(len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			return cmpInt(int(a[i]), int(b[i]))
		}
	}
	return 0
}

func cmpExps(a, b []uint32) int {
	for i := range a {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
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

func (p *Polynomial) sortTerms() {
	sort.Slice(p.terms, func(i, j int) bool {
		return cmpExps(p.terms[i].Exps, p.terms[j].Exps) > 0
	})
}

func expsKey(exps []uint32) string {
	var b strings.Builder
	for _, e := range exps {
		b.WriteString(strconv.FormatUint(uint64(e), 36))
		b.WriteByte('.')
	}
	return b.String()
}

// --- Output ----------------------------------------------------------------

// Format returns a textual representation of p, using name to print variables.
func (p *Polynomial) Format(name func(symnorm.Identifier) string) string {
	if p.IsZero() {
		return "0"
	}
	var b strings.Builder
	for k, t := range p.terms {
		c := t.Coeff
		if k > 0 && c.Sign() > 0 {
			b.WriteByte('+')
		}
		constant := isConstantExps(t.Exps)
		switch {
		case constant:
			b.WriteString(c.String())
		case c.Cmp(bigOne) == 0:
		case c.CmpAbs(bigOne) == 0:
			b.WriteByte('-')
		default:
			b.WriteString(c.String())
			b.WriteByte('*')
		}
		first := true
		for i, e := range t.Exps {
			if e == 0 {
				continue
			}
			if !first {
				b.WriteByte('*')
			}
			first = false
			b.WriteString(name(p.vars[i]))
			if e > 1 {
				b.WriteByte('^')
				b.WriteString(strconv.FormatUint(uint64(e), 10))
			}
		}
	}
	return b.String()
}

func (p *Polynomial) String() string {
	return p.Format(symnorm.Identifier.String)
}
