package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/npillmayer/symnorm"
	"github.com/npillmayer/symnorm/atom"
)

func lastResult(intp *Intp) string {
	if intp.last == nil {
		return "<nil>"
	}
	return atom.Format(intp.last.View(), intp.reg)
}

func TestEvalExpressions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symnorm.cmd")
	defer teardown()
	//
	pterm.DisableOutput()
	defer pterm.EnableOutput()
	intp := newIntp()
	quit, err := intp.Eval("y*x + x*y")
	require.NoError(t, err)
	assert.False(t, quit)
	assert.Equal(t, "2*y*x", lastResult(intp), "y has been defined first")
	_, err = intp.Eval("1/0")
	assert.Error(t, err)
	assert.Equal(t, symnorm.DivisionByZero, symnorm.KindOf(err))
	_, err = intp.Eval("x +")
	assert.Error(t, err)
	assert.Equal(t, "2*y*x", lastResult(intp), "failed lines keep the previous result")
}

func TestEvalCommands(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symnorm.cmd")
	defer teardown()
	//
	pterm.DisableOutput()
	defer pterm.EnableOutput()
	intp := newIntp()
	intp.norm.Order.FullFunctionCompare = true
	for _, line := range []string{"x", "y", ":def g antisymmetric", ":def f linear"} {
		_, err := intp.Eval(line)
		require.NoError(t, err, line)
	}
	assert.True(t, intp.reg.HasAttribute(intp.reg.Resolve("g").ID, symnorm.Antisymmetric))
	for _, c := range []struct {
		line, result string
	}{
		{"g(y,x)", "-g(x,y)"},
		{"f(2*x+y)", "2*f(x)+f(y)"},
		{":ring x x*y + x^2*y", "[x^2+x]*y"},
		{":expand", "y*(x+x^2)"},
		{":tree (x+1)^2", "(x+1)^2"},
	} {
		quit, err := intp.Eval(c.line)
		require.NoError(t, err, c.line)
		assert.False(t, quit)
		assert.Equal(t, c.result, lastResult(intp), c.line)
	}
	_, err := intp.Eval(":symbols")
	assert.NoError(t, err)
	quit, err := intp.Eval(":quit")
	assert.NoError(t, err)
	assert.True(t, quit)
	//
	for _, line := range []string{":frobnicate", ":def h commutative", ":def", ":ring", ":"} {
		_, err = intp.Eval(line)
		assert.Error(t, err, line)
	}
	_, err = newIntp().Eval(":tree")
	assert.Error(t, err, "no previous result")
}

func TestLoadInitFile(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symnorm.cmd")
	defer teardown()
	//
	pterm.DisableOutput()
	defer pterm.EnableOutput()
	name := filepath.Join(t.TempDir(), "init.txt")
	content := "# symbols\n:def h symmetric\n\nh(b,a)\n:nonsense\n"
	require.NoError(t, os.WriteFile(name, []byte(content), 0o644))
	intp := newIntp()
	intp.loadInitFile(name)
	assert.Equal(t, "h(b,a)", lastResult(intp), "h is defined before a and b")
	intp.loadInitFile(filepath.Join(t.TempDir(), "missing.txt"))
}

func TestLeveledList(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symnorm.cmd")
	defer teardown()
	//
	pterm.DisableOutput()
	defer pterm.EnableOutput()
	intp := newIntp()
	a, err := intp.normalize("k(x)*(x+1)^2*3")
	require.NoError(t, err)
	ll := leveledList(a.View(), intp.reg, pterm.LeveledList{}, 0)
	want := pterm.LeveledList{
		{Level: 0, Text: "Mul"},
		{Level: 1, Text: "Pow"},
		{Level: 2, Text: "Add"},
		{Level: 3, Text: "x"},
		{Level: 3, Text: "1"},
		{Level: 2, Text: "2"},
		{Level: 1, Text: "k()"},
		{Level: 2, Text: "x"},
		{Level: 1, Text: "3"},
	}
	if diff := cmp.Diff(want, ll); diff != "" {
		t.Errorf("leveled list mismatch (-want +got):\n%s", diff)
	}
	assert.NoError(t, renderTree(a.View(), intp.reg))
}
