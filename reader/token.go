package reader

import "fmt"

// TokType is a category type for a Token. Tokens for one-character literals
// use the character as their type.
type TokType int

// Token types which are not literals.
const (
	EOF   TokType = -(iota + 1) // end of input
	Num                         // unsigned integer
	Ident                       // identifier
)

func (t TokType) String() string {
	switch t {
	case EOF:
		return "end of input"
	case Num:
		return "number"
	case Ident:
		return "identifier"
	}
	return fmt.Sprintf("'%c'", rune(t))
}

// Token is an input token as produced by the scanner.
type Token struct {
	Type   TokType
	Lexeme string
	Span   Span
}

func (t Token) String() string {
	if t.Type == EOF {
		return t.Type.String()
	}
	return fmt.Sprintf("%q", t.Lexeme)
}

// --- Spans -----------------------------------------------------------------

// Span denotes a run of input bytes: a start position and the position just
// behind the end.
type Span [2]uint64 // (x…y)

// From returns the start value of a span.
func (s Span) From() uint64 {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() uint64 {
	return s[1]
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}
