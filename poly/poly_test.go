package poly

import (
	"math/big"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/npillmayer/symnorm"
)

const (
	x symnorm.Identifier = 1 + iota
	y
	z
)

func name(id symnorm.Identifier) string {
	switch id {
	case x:
		return "x"
	case y:
		return "y"
	case z:
		return "z"
	}
	return id.String()
}

func TestPolynomialArithmetic(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symnorm.poly")
	defer teardown()
	//
	p := Var(x).Add(One()) // x+1
	assert.Equal(t, "x+1", p.Format(name))
	sq := p.Pow(2)
	assert.Equal(t, "x^2+2*x+1", sq.Format(name))
	assert.True(t, sq.Equal(p.Mul(p)))
	assert.True(t, sq.Sub(sq).IsZero())
	assert.Equal(t, "-x-1", p.Neg().Format(name))
	assert.True(t, p.Pow(0).IsOne())
	assert.Equal(t, 0, big.NewInt(1).Cmp(sq.ConstantCoeff()))
	assert.Equal(t, 0, big.NewInt(3).Cmp(sq.MulCoeff(big.NewInt(3)).Content()))
}

func TestUnifyVariableLists(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symnorm.poly")
	defer teardown()
	//
	p := Var(y).Add(Var(x))
	if diff := cmp.Diff([]symnorm.Identifier{x, y}, p.Vars()); diff != "" {
		t.Errorf("variable list mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, "x+y", p.Format(name))
	q := p.Sub(Var(y)) // variable y vanishes
	if diff := cmp.Diff([]symnorm.Identifier{x}, q.Vars()); diff != "" {
		t.Errorf("variable list not minimal (-want +got):\n%s", diff)
	}
	assert.Equal(t, []symnorm.Identifier{x, y, z}, UnionVars([]symnorm.Identifier{z, x}, []symnorm.Identifier{y, z}))
	assert.Equal(t, []symnorm.Identifier{x, z}, SortVars([]symnorm.Identifier{z, x, z}))
	assert.True(t, IsSubset([]symnorm.Identifier{x}, []symnorm.Identifier{x, y}))
	assert.False(t, IsSubset([]symnorm.Identifier{z}, []symnorm.Identifier{x, y}))
}

func TestMonomial(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symnorm.poly")
	defer teardown()
	//
	m := Monomial([]symnorm.Identifier{x, y}, big.NewInt(-3), []uint32{2, 1})
	assert.Equal(t, "-3*x^2*y", m.Format(name))
	assert.Equal(t, 1, m.Len())
	var terms []Term
	m.Each(func(tm Term) { terms = append(terms, tm) })
	require.Len(t, terms, 1)
	assert.Equal(t, []uint32{2, 1}, terms[0].Exps)
	assert.True(t, Monomial(nil, big.NewInt(0), nil).IsZero())
}

func TestDivExact(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symnorm.poly")
	defer teardown()
	//
	num := Var(x).Pow(2).Sub(One()) // x^2-1
	den := Var(x).Sub(One())        // x-1
	q, ok := num.DivExact(den)
	require.True(t, ok)
	assert.True(t, q.Equal(Var(x).Add(One())), "quotient is %s", q.Format(name))
	_, ok = Var(x).Pow(2).Add(One()).DivExact(den)
	assert.False(t, ok)
	_, ok = num.DivExact(Zero())
	assert.False(t, ok)
}

func TestRationalReduction(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symnorm.poly")
	defer teardown()
	//
	r, err := NewRational(Var(x).Pow(2).Sub(One()), Var(x).Sub(One()))
	require.NoError(t, err)
	assert.True(t, r.Denominator().IsOne())
	assert.Equal(t, "x+1", r.Format(name))
	//
	r, err = NewRational(Var(x).Mul(Var(y)).MulCoeff(big.NewInt(2)), Var(y).MulCoeff(big.NewInt(-4)))
	require.NoError(t, err)
	assert.Equal(t, "(-x)/(2)", r.Format(name))
	//
	_, err = NewRational(One(), Zero())
	assert.Equal(t, symnorm.DivisionByZero, symnorm.KindOf(err))
	_, err = FromPolynomial(Zero()).Inv()
	assert.Equal(t, symnorm.DivisionByZero, symnorm.KindOf(err))
}

func TestRationalArithmetic(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symnorm.poly")
	defer teardown()
	//
	ix, _ := FromPolynomial(Var(x)).Inv()
	iy, _ := FromPolynomial(Var(y)).Inv()
	s := ix.Add(iy)
	assert.Equal(t, "(x+y)/(x*y)", s.Format(name))
	assert.True(t, s.Mul(FromPolynomial(Var(x).Mul(Var(y)))).Equal(FromPolynomial(Var(x).Add(Var(y)))))
	assert.True(t, s.Add(s.Neg()).IsZero())
	//
	c, ok := FromRat(big.NewRat(6, 4)).ConstantValue()
	require.True(t, ok)
	assert.Equal(t, "3/2", c.RatString())
	h := FromPolynomial(Var(x)).MulRat(big.NewRat(1, 2))
	assert.Equal(t, "(x)/(2)", h.Format(name))
	assert.True(t, h.AddRat(big.NewRat(1, 2)).Equal(FromPolynomial(Var(x).Add(One())).MulRat(big.NewRat(1, 2))))
	_, ok = h.ConstantValue()
	assert.False(t, ok)
	assert.True(t, ix.Pow(2).Equal(mustInv(t, FromPolynomial(Var(x).Pow(2)))))
}

func mustInv(t *testing.T, r *Rational) *Rational {
	inv, err := r.Inv()
	require.NoError(t, err)
	return inv
}
