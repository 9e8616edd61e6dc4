package order

import (
	"bytes"

	"github.com/cnf/structhash"

	"github.com/npillmayer/symnorm"
	"github.com/npillmayer/symnorm/atom"
)

// shape is the hashable form of a sub-tree.
type shape struct {
	Kind  int8
	ID    uint32
	Num   string
	Nodes []shape
}

func shapeOf(v atom.View) shape {
	s := shape{Kind: int8(v.Kind())}
	switch v.Kind() {
	case atom.NumberKind:
		s.Num = v.Coefficient().String()
		return s
	case atom.VariableKind:
		s.ID = uint32(v.Name())
		return s
	case atom.FunctionKind:
		s.ID = uint32(v.Name())
	}
	s.Nodes = make([]shape, v.Len())
	for i := range s.Nodes {
		s.Nodes[i] = shapeOf(v.Arg(i))
	}
	return s
}

// Fingerprint returns a hash of a function's arguments. Structurally equal
// argument lists have equal fingerprints.
func Fingerprint(v atom.View) []byte {
	return structhash.Md5(shapeOf(v), 1)
}

// cmpFingerprints compares two functions of equal name by fingerprint.
func cmpFingerprints(a, b atom.View) int {
	r := bytes.Compare(Fingerprint(a), Fingerprint(b))
	if r == 0 {
		tracer().Debugf("functions %s and %s have equal fingerprints", a.Atom(), b.Atom())
	}
	return r
}

func raiseLogic(what string, a, b atom.View) {
	symnorm.Raise(symnorm.LogicError, "%s while comparing %s and %s", what, a.Atom(), b.Atom())
}
