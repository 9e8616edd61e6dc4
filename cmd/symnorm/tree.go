package main

import (
	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/npillmayer/symnorm/atom"
	"github.com/npillmayer/symnorm/coeff"
)

// renderTree displays an expression as a tree on a terminal.
func renderTree(v atom.View, p coeff.Printer) error {
	ll := leveledList(v, p, pterm.LeveledList{}, 0)
	tracer().Debugf("|ll| = %d, ll = %v", len(ll), ll)
	root := putils.TreeFromLeveledList(ll)
	return pterm.DefaultTree.WithRoot(root).Render()
}

// leveledList flattens an expression tree. Numbers and variables are leaves,
// interior nodes are labeled with their kind or function name.
func leveledList(v atom.View, p coeff.Printer, ll pterm.LeveledList, level int) pterm.LeveledList {
	switch v.Kind() {
	case atom.NumberKind, atom.VariableKind:
		return append(ll, pterm.LeveledListItem{Level: level, Text: atom.Format(v, p)})
	case atom.FunctionKind:
		ll = append(ll, pterm.LeveledListItem{Level: level, Text: p.Name(v.Name()) + "()"})
	default:
		ll = append(ll, pterm.LeveledListItem{Level: level, Text: v.Kind().String()})
	}
	for i := 0; i < v.Len(); i++ {
		ll = leveledList(v.Arg(i), p, ll, level+1)
	}
	return ll
}
