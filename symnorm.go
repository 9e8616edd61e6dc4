package symnorm

import "fmt"

// --- Identifiers -----------------------------------------------------------

// Identifier is the registry handle of a variable or function name. Identifiers
// are handed out by a registry in order of definition; the order of identifiers
// is the order in which variables and functions of equal shape are sorted.
type Identifier uint32

func (id Identifier) String() string {
	return fmt.Sprintf("#%d", uint32(id))
}

// --- Function attributes ---------------------------------------------------

// Attribute is an algebraic property of a function identifier, consulted
// during normalization.
type Attribute int8

// Function attributes. A function may carry any combination of them.
const (
	NoAttribute Attribute = iota
	Linear                // f(x+y) = f(x)+f(y) and f(3*x) = 3*f(x)
	Symmetric             // arguments may be sorted freely
	Antisymmetric         // sorting arguments changes the sign by the permutation parity
)

func (a Attribute) String() string {
	switch a {
	case Linear:
		return "linear"
	case Symmetric:
		return "symmetric"
	case Antisymmetric:
		return "antisymmetric"
	}
	return "none"
}

// AttributeFromString parses an attribute name, as used in configuration files
// and on the command line. Unknown names yield NoAttribute.
func AttributeFromString(s string) Attribute {
	switch s {
	case "linear", "Linear":
		return Linear
	case "symmetric", "Symmetric":
		return Symmetric
	case "antisymmetric", "Antisymmetric":
		return Antisymmetric
	}
	return NoAttribute
}
