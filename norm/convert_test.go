package norm

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/npillmayer/symnorm"
	"github.com/npillmayer/symnorm/atom"
	"github.com/npillmayer/symnorm/coeff"
	"github.com/npillmayer/symnorm/poly"
)

func TestCoefficientWrapper(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symnorm.norm")
	defer teardown()
	//
	fx := newFixture()
	r := fx.normalize(t, "coeff(x/y)")
	v := r.View()
	require.Equal(t, atom.NumberKind, v.Kind())
	assert.Equal(t, coeff.RationalPolynomialDomain, v.Coefficient().Domain())
	assert.Equal(t, "[(x)/(y)]", fx.format(r))
	//
	r = fx.normalize(t, "coeff(f(x))")
	assert.Equal(t, atom.FunctionKind, r.Kind(), "functions do not convert")
}

func TestSetCoefficientRing(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symnorm.norm")
	defer teardown()
	//
	fx := newFixture()
	x := fx.reg.Resolve("x").ID
	e := fx.normalize(t, "x*y + x^2*y")
	r, changed, err := fx.n.SetCoefficientRing(e.View(), []symnorm.Identifier{x})
	require.NoError(t, err)
	assert.True(t, changed)
	assert.False(t, r.IsDirty())
	assert.Equal(t, "[x^2+x]*y", fx.format(r))
	c := r.View().Last().Coefficient().RationalPolynomial()
	require.NotNil(t, c)
	want := poly.FromPolynomial(poly.Var(x).Pow(2).Add(poly.Var(x)))
	assert.True(t, want.Equal(c), "coefficient is %s", c)
	assert.Equal(t, 0, fx.ws.Outstanding())
}

func TestSetCoefficientRingUnchanged(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symnorm.norm")
	defer teardown()
	//
	fx := newFixture()
	x := fx.reg.Resolve("x").ID
	for _, input := range []string{"y+1", "f(x)", "coeff(x+1)*y"} {
		e := fx.normalize(t, input)
		r, changed, err := SetCoefficientRing(e.View(), []symnorm.Identifier{x}, fx.ws, fx.reg)
		require.NoError(t, err)
		assert.False(t, changed, "%q should be unchanged", input)
		assert.Same(t, e, r)
	}
}

func TestSetCoefficientRingMovesForeignVariablesOut(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symnorm.norm")
	defer teardown()
	//
	fx := newFixture()
	y := fx.reg.Resolve("y").ID
	e := fx.normalize(t, "coeff(x*y)")
	r, changed, err := fx.n.SetCoefficientRing(e.View(), []symnorm.Identifier{y})
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, "[y]*x", fx.format(r))
}

func TestExpand(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symnorm.norm")
	defer teardown()
	//
	fx := newFixture()
	for _, c := range []struct {
		input, expanded string
	}{
		{"coeff(x+1)*y", "y*(x+1)"},
		{"coeff(x/y)", "x*y^(-1)"},
		{"coeff(2*x)+x", "3*x"},
		{"x+y", "x+y"},
	} {
		e := fx.normalize(t, c.input)
		r, err := fx.n.Expand(e.View())
		require.NoError(t, err)
		assert.False(t, r.IsDirty())
		assert.Equal(t, c.expanded, fx.format(r), "expanding %q", c.input)
	}
}
