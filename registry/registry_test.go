package registry

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/npillmayer/symnorm"
)

func TestNewRegistry(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symnorm.registry")
	defer teardown()
	//
	reg := New()
	require.NotNil(t, reg)
	assert.Equal(t, 3, reg.Size())
	assert.Equal(t, "arg", reg.Name(Arg))
	assert.Equal(t, "coeff", reg.Name(Coeff))
	assert.Equal(t, "i", reg.Name(I))
}

func TestTwoSymbolsDistinctID(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symnorm.registry")
	defer teardown()
	//
	reg := New()
	sym1, _ := reg.Define("x")
	sym2, _ := reg.Define("y")
	assert.NotSame(t, sym1, sym2)
	assert.Less(t, sym1.ID, sym2.ID, "identifiers are assigned in order of definition")
	assert.Same(t, sym1, reg.Symbol(sym1.ID))
	assert.Nil(t, reg.Symbol(symnorm.Identifier(99)))
	assert.Equal(t, "#99", reg.Name(symnorm.Identifier(99)))
}

func TestResolveOrDefine(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symnorm.registry")
	defer teardown()
	//
	reg := New()
	assert.Nil(t, reg.Resolve("f"))
	sym, found := reg.ResolveOrDefine("f")
	assert.False(t, found)
	again, found := reg.ResolveOrDefine("f")
	assert.True(t, found)
	assert.Same(t, sym, again)
	assert.Same(t, sym, reg.Resolve("f"))
}

func TestDefineAddsAttributes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symnorm.registry")
	defer teardown()
	//
	reg := New()
	f, found := reg.Define("f", symnorm.Linear)
	assert.False(t, found)
	g, found := reg.Define("f", symnorm.Symmetric, symnorm.NoAttribute)
	assert.True(t, found)
	assert.Same(t, f, g)
	assert.True(t, reg.HasAttribute(f.ID, symnorm.Linear))
	assert.True(t, reg.HasAttribute(f.ID, symnorm.Symmetric))
	assert.False(t, reg.HasAttribute(f.ID, symnorm.Antisymmetric))
	assert.Equal(t, 2, reg.AttributesOf(f.ID).Size())
	assert.Equal(t, 0, reg.AttributesOf(symnorm.Identifier(42)).Size())
	assert.Panics(t, func() { reg.Define("") })
}

func TestWildcardLevel(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symnorm.registry")
	defer teardown()
	//
	reg := New()
	x, _ := reg.Define("x")
	w1, _ := reg.Define("x_")
	w2, _ := reg.Define("y__")
	assert.Equal(t, 0, reg.WildcardLevel(x.ID))
	assert.Equal(t, 1, reg.WildcardLevel(w1.ID))
	assert.Equal(t, 2, w2.WildcardLevel())
}

func TestEachInOrderOfDefinition(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symnorm.registry")
	defer teardown()
	//
	reg := New()
	reg.Define("z")
	reg.Define("a")
	var names []string
	reg.Each(func(name string, _ *Symbol) {
		names = append(names, name)
	})
	assert.Equal(t, []string{"arg", "coeff", "i", "z", "a"}, names)
}

func TestFiniteFields(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symnorm.registry")
	defer teardown()
	//
	reg := New()
	id7, err := reg.DefineFiniteField(7)
	require.NoError(t, err)
	id11, err := reg.DefineFiniteField(11)
	require.NoError(t, err)
	assert.NotEqual(t, id7, id11)
	again, err := reg.DefineFiniteField(7)
	require.NoError(t, err)
	assert.Equal(t, id7, again)
	f, err := reg.FiniteField(id11)
	require.NoError(t, err)
	assert.Equal(t, uint64(11), f.Prime())
	_, err = reg.FiniteField(id11 + 1)
	assert.Error(t, err)
	_, err = reg.DefineFiniteField(8)
	assert.Error(t, err)
}
