package atom

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"

	"github.com/npillmayer/symnorm"
	"github.com/npillmayer/symnorm/coeff"
)

const (
	x symnorm.Identifier = 1 + iota
	y
	f
)

func TestFormat(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symnorm.atom")
	defer teardown()
	//
	vx, vy := NewVariable(x), NewVariable(y)
	for _, c := range []struct {
		a    *Atom
		want string
	}{
		{NewInt(3), "3"},
		{NewNatural(-1, 2), "-1/2"},
		{NewProduct(vx, NewInt(3)), "3*#1"},
		{NewProduct(vx, NewInt(-1)), "-#1"},
		{NewProduct(vx, vy, NewNatural(1, 2)), "1/2*#1*#2"},
		{NewProduct(NewSum(vx, vy), NewInt(2)), "2*(#1+#2)"},
		{NewProduct(), "1"},
		{NewSum(vx, NewProduct(vy, NewInt(-2))), "#1-2*#2"},
		{NewSum(NewNatural(1, 2), vx), "1/2+#1"},
		{NewPower(NewSum(vx, vy), NewInt(2)), "(#1+#2)^2"},
		{NewPower(vx, NewNatural(1, 2)), "#1^(1/2)"},
		{NewPower(vx, NewInt(-1)), "#1^(-1)"},
		{NewPower(vx, vy), "#1^#2"},
		{NewPower(vx, NewProduct(vy, NewInt(2))), "#1^(2*#2)"},
		{NewPower(NewPower(vx, vy), NewInt(2)), "(#1^#2)^2"},
		{NewFunction(f, vx, NewInt(1)), "#3(#1,1)"},
		{NewFunction(f), "#3()"},
	} {
		assert.Equal(t, c.want, c.a.String())
	}
}

func TestEqualIgnoresState(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symnorm.atom")
	defer teardown()
	//
	a := NewSum(NewVariable(x), NewVariable(y))
	b := NewSum(NewVariable(x), NewVariable(y)).MarkClean()
	assert.True(t, a.IsDirty())
	assert.Equal(t, Clean, b.State())
	assert.True(t, a.Equal(b))
	assert.False(t, NewFunction(f, NewVariable(x)).Equal(NewFunction(y, NewVariable(x))))
	assert.False(t, a.Equal(NewSum(NewVariable(y), NewVariable(x))), "order matters")
	assert.False(t, NewNatural(2, 4).Equal(NewNatural(1, 2)), "numbers are compared structurally")
	assert.False(t, NewVariable(x).Equal(NewFunction(x)))
}

func TestEqualSlice(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symnorm.atom")
	defer teardown()
	//
	vx, vy, vf := NewVariable(x), NewVariable(y), NewFunction(f, NewInt(2))
	p := NewProduct(vx, vy, vf).View()
	q := NewProduct(vy, NewFunction(f, NewInt(2))).View()
	assert.True(t, EqualSlice(p, 1, 3, q, 0, 2))
	assert.False(t, EqualSlice(p, 0, 2, q, 0, 2))
	assert.False(t, EqualSlice(p, 0, 3, q, 0, 2))
	assert.True(t, EqualSlice(p, 1, 1, q, 2, 2), "empty ranges are equal")
}

func TestViewAccessors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symnorm.atom")
	defer teardown()
	//
	p := NewProduct(NewVariable(x), NewInt(3)).View()
	assert.True(t, p.HasCoefficient())
	assert.True(t, p.Last().IsNumber(func(c coeff.View) bool { return c.Equal(coeff.Natural(3, 1)) }))
	assert.False(t, NewSum(NewVariable(x), NewInt(3)).View().HasCoefficient())
	assert.False(t, NewProduct().View().HasCoefficient())
	assert.True(t, p.Arg(0).IsVariable(x))
	assert.False(t, p.Arg(0).IsVariable(y))
	base, exp := NewPower(NewVariable(y), NewInt(2)).View().BaseExp()
	assert.True(t, base.IsVariable(y))
	assert.Equal(t, NumberKind, exp.Kind())
	assert.Equal(t, "Mul", p.Kind().String())
	assert.Equal(t, "dirty", p.Atom().State().String())
}
