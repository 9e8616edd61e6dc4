package reader

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"math/big"
	"strconv"

	"github.com/cockroachdb/errors"

	"github.com/npillmayer/symnorm/atom"
	"github.com/npillmayer/symnorm/coeff"
	"github.com/npillmayer/symnorm/registry"
)

// Parse reads an expression and returns it as a dirty expression tree.
// Identifiers are resolved in reg, defining new symbols as needed.
func Parse(input string, reg *registry.Registry) (*atom.Atom, error) {
	if reg == nil {
		return nil, errors.New("reader needs a registry")
	}
	sc, err := newScanner(input)
	if err != nil {
		return nil, err
	}
	p := &parser{sc: sc, reg: reg}
	if err = p.advance(); err != nil {
		return nil, err
	}
	e, err := p.sum()
	if err != nil {
		return nil, errors.Wrapf(err, "cannot read %q", input)
	}
	if p.tok.Type != EOF {
		return nil, errors.Newf("cannot read %q: unexpected %s at %s", input, p.tok, p.tok.Span)
	}
	return e, nil
}

// MustParse is like Parse, but panics on errors.
func MustParse(input string, reg *registry.Registry) *atom.Atom {
	e, err := Parse(input, reg)
	if err != nil {
		panic(err)
	}
	return e
}

// parser is a recursive descent parser with one token of lookahead.
type parser struct {
	sc  *scanner
	reg *registry.Registry
	tok Token
}

func (p *parser) advance() (err error) {
	p.tok, err = p.sc.NextToken()
	return
}

func (p *parser) is(t rune) bool {
	return p.tok.Type == TokType(t)
}

func (p *parser) expect(t TokType) (Token, error) {
	tok := p.tok
	if tok.Type != t {
		return tok, errors.Newf("expected %s, found %s at %s", t, tok, tok.Span)
	}
	return tok, p.advance()
}

func (p *parser) sum() (*atom.Atom, error) {
	t, err := p.product()
	if err != nil {
		return nil, err
	}
	terms := []*atom.Atom{t}
	for p.is('+') || p.is('-') {
		minus := p.is('-')
		if err = p.advance(); err != nil {
			return nil, err
		}
		if t, err = p.product(); err != nil {
			return nil, err
		}
		if minus {
			t = negate(t)
		}
		terms = append(terms, t)
	}
	if len(terms) == 1 {
		return terms[0], nil
	}
	return atom.NewSum(terms...), nil
}

func (p *parser) product() (*atom.Atom, error) {
	f, err := p.unary()
	if err != nil {
		return nil, err
	}
	factors := []*atom.Atom{f}
	for p.is('*') || p.is('/') {
		div := p.is('/')
		if err = p.advance(); err != nil {
			return nil, err
		}
		if f, err = p.unary(); err != nil {
			return nil, err
		}
		if div {
			f = atom.NewPower(f, atom.NewInt(-1))
		}
		factors = append(factors, f)
	}
	if len(factors) == 1 {
		return factors[0], nil
	}
	return atom.NewProduct(factors...), nil
}

func (p *parser) unary() (*atom.Atom, error) {
	if !p.is('-') {
		return p.power()
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	u, err := p.unary()
	if err != nil {
		return nil, err
	}
	return negate(u), nil
}

func (p *parser) power() (*atom.Atom, error) {
	base, err := p.primary()
	if err != nil || !p.is('^') {
		return base, err
	}
	if err = p.advance(); err != nil {
		return nil, err
	}
	exp, err := p.unary() // right associative: x^y^z = x^(y^z)
	if err != nil {
		return nil, err
	}
	return atom.NewPower(base, exp), nil
}

func (p *parser) primary() (*atom.Atom, error) {
	tok := p.tok
	switch {
	case tok.Type == Num:
		n, ok := new(big.Rat).SetString(tok.Lexeme)
		if !ok {
			return nil, errors.Newf("malformed number %s at %s", tok, tok.Span)
		}
		return atom.NewNumber(coeff.FromRat(n)), p.advance()
	case tok.Type == Ident:
		if err := p.advance(); err != nil {
			return nil, err
		}
		sym, _ := p.reg.ResolveOrDefine(tok.Lexeme)
		if !p.is('(') {
			return atom.NewVariable(sym.ID), nil
		}
		args, err := p.arguments()
		if err != nil {
			return nil, err
		}
		return atom.NewFunction(sym.ID, args...), nil
	case p.is('('):
		if err := p.advance(); err != nil {
			return nil, err
		}
		e, err := p.sum()
		if err != nil {
			return nil, err
		}
		_, err = p.expect(TokType(')'))
		return e, err
	case p.is('['):
		return p.fieldElement()
	}
	return nil, errors.Newf("unexpected %s at %s", tok, tok.Span)
}

// arguments reads a parenthesized, comma-separated argument list.
func (p *parser) arguments() ([]*atom.Atom, error) {
	if err := p.advance(); err != nil { // skip '('
		return nil, err
	}
	var args []*atom.Atom
	if p.is(')') {
		return args, p.advance()
	}
	for {
		a, err := p.sum()
		if err != nil {
			return nil, err
		}
		args = append(args, a)
		if !p.is(',') {
			break
		}
		if err = p.advance(); err != nil {
			return nil, err
		}
	}
	_, err := p.expect(TokType(')'))
	return args, err
}

// fieldElement reads a prime field element '[n mod p]', registering the field
// GF(p) if necessary.
func (p *parser) fieldElement() (*atom.Atom, error) {
	start := p.tok.Span
	if err := p.advance(); err != nil { // skip '['
		return nil, err
	}
	minus := p.is('-')
	if minus {
		if err := p.advance(); err != nil {
			return nil, err
		}
	}
	ntok, err := p.expect(Num)
	if err != nil {
		return nil, err
	}
	if p.tok.Type != Ident || p.tok.Lexeme != "mod" {
		return nil, errors.Newf("expected 'mod', found %s at %s", p.tok, p.tok.Span)
	}
	if err = p.advance(); err != nil {
		return nil, err
	}
	ptok, err := p.expect(Num)
	if err != nil {
		return nil, err
	}
	if _, err = p.expect(TokType(']')); err != nil {
		return nil, err
	}
	prime, err := strconv.ParseUint(ptok.Lexeme, 10, 64)
	if err != nil {
		return nil, errors.Wrapf(err, "field modulus at %s", ptok.Span)
	}
	id, err := p.reg.DefineFiniteField(prime)
	if err != nil {
		return nil, errors.Wrapf(err, "field element at %s", start)
	}
	field, err := p.reg.FiniteField(id)
	if err != nil {
		return nil, err
	}
	n, _ := new(big.Int).SetString(ntok.Lexeme, 10)
	if minus {
		n.Neg(n)
	}
	return atom.NewNumber(coeff.FromFiniteField(field.FromBig(n), id)), nil
}

// negate builds a*(-1).
func negate(a *atom.Atom) *atom.Atom {
	return atom.NewProduct(a, atom.NewInt(-1))
}
