package reader

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/npillmayer/symnorm/atom"
	"github.com/npillmayer/symnorm/registry"
)

func TestScanTokens(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symnorm.reader")
	defer teardown()
	//
	sc, err := newScanner("f(x_, 12)^-3")
	require.NoError(t, err)
	var types []TokType
	var lexemes []string
	for {
		tok, err := sc.NextToken()
		require.NoError(t, err)
		types = append(types, tok.Type)
		if tok.Type == EOF {
			break
		}
		lexemes = append(lexemes, tok.Lexeme)
	}
	assert.Equal(t, []TokType{Ident, '(', Ident, ',', Num, ')', '^', '-', Num, EOF}, types)
	assert.Equal(t, []string{"f", "(", "x_", ",", "12", ")", "^", "-", "3"}, lexemes)
}

func TestScanIllegalCharacter(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symnorm.reader")
	defer teardown()
	//
	sc, err := newScanner("x $ y")
	require.NoError(t, err)
	tok, err := sc.NextToken()
	require.NoError(t, err)
	assert.Equal(t, Span{0, 1}, tok.Span)
	_, err = sc.NextToken()
	assert.Error(t, err)
}

func TestParseSumAndProduct(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symnorm.reader")
	defer teardown()
	//
	reg := registry.New()
	e, err := Parse("x + y*2", reg)
	require.NoError(t, err)
	v := e.View()
	assert.True(t, v.IsDirty())
	require.Equal(t, atom.SumKind, v.Kind())
	require.Equal(t, 2, v.Len())
	x := reg.Resolve("x")
	require.NotNil(t, x)
	assert.True(t, v.Arg(0).IsVariable(x.ID))
	assert.Equal(t, atom.ProductKind, v.Arg(1).Kind())
	assert.True(t, v.Arg(1).Last().Is(atom.NumberKind))
}

func TestParseDivisionAndNegation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symnorm.reader")
	defer teardown()
	//
	reg := registry.New()
	e := MustParse("a/b", reg)
	v := e.View()
	require.Equal(t, atom.ProductKind, v.Kind())
	p := v.Arg(1)
	require.Equal(t, atom.PowerKind, p.Kind())
	assert.True(t, p.Exp().Equal(atom.NewInt(-1).View()))
	//
	e = MustParse("a-b", reg)
	v = e.View()
	require.Equal(t, atom.SumKind, v.Kind())
	neg := v.Arg(1)
	require.Equal(t, atom.ProductKind, neg.Kind())
	assert.True(t, neg.Last().Equal(atom.NewInt(-1).View()))
	//
	e = MustParse("--a", reg)
	v = e.View()
	require.Equal(t, atom.ProductKind, v.Kind())
	assert.Equal(t, atom.ProductKind, v.Arg(0).Kind())
}

func TestParsePowerIsRightAssociative(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symnorm.reader")
	defer teardown()
	//
	reg := registry.New()
	v := MustParse("x^y^z", reg).View()
	require.Equal(t, atom.PowerKind, v.Kind())
	assert.Equal(t, atom.VariableKind, v.Base().Kind())
	assert.Equal(t, atom.PowerKind, v.Exp().Kind())
	//
	v = MustParse("-x^2", reg).View() // -(x^2)
	require.Equal(t, atom.ProductKind, v.Kind())
	assert.Equal(t, atom.PowerKind, v.Arg(0).Kind())
}

func TestParseFunctions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symnorm.reader")
	defer teardown()
	//
	reg := registry.New()
	v := MustParse("f(x, g(), (y))", reg).View()
	require.Equal(t, atom.FunctionKind, v.Kind())
	f := reg.Resolve("f")
	require.NotNil(t, f)
	assert.Equal(t, f.ID, v.Name())
	require.Equal(t, 3, v.Len())
	assert.Equal(t, atom.FunctionKind, v.Arg(1).Kind())
	assert.Equal(t, 0, v.Arg(1).Len())
	assert.Equal(t, atom.VariableKind, v.Arg(2).Kind())
	//
	v = MustParse("coeff(i)", reg).View()
	assert.Equal(t, registry.Coeff, v.Name())
	assert.True(t, v.Arg(0).IsVariable(registry.I))
}

func TestParseFiniteFieldElement(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symnorm.reader")
	defer teardown()
	//
	reg := registry.New()
	v := MustParse("[10 mod 7]", reg).View()
	require.Equal(t, atom.NumberKind, v.Kind())
	elem, id, ok := v.Coefficient().FiniteField()
	require.True(t, ok)
	assert.EqualValues(t, 3, elem)
	//
	v = MustParse("[-1 mod 7]", reg).View()
	elem, id2, ok := v.Coefficient().FiniteField()
	require.True(t, ok)
	assert.EqualValues(t, 6, elem)
	assert.Equal(t, id, id2, "expected field to be registered once")
}

func TestParseErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symnorm.reader")
	defer teardown()
	//
	reg := registry.New()
	for _, input := range []string{
		"", "x+", "(x", "x y", "f(x,)", "x $ y", "[3 mod 8]", "[3 7]", "2^",
	} {
		_, err := Parse(input, reg)
		assert.Error(t, err, "expected error for %q", input)
	}
	_, err := Parse("x", nil)
	assert.Error(t, err)
	assert.Panics(t, func() { MustParse(")", reg) })
}
