package reader

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"strings"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// The tokens representing literal one-char lexemes
var literals = []string{"+", "-", "*", "/", "^", "(", ")", ",", "[", "]"}

// tokenIds will be set in initTokens()
var tokenIds map[string]int // A map from the token names to their token types

var initOnce sync.Once // monitors one-time initialization
func initTokens() {
	initOnce.Do(func() {
		tokenIds = make(map[string]int)
		tokenIds["NUM"] = int(Num)
		tokenIds["ID"] = int(Ident)
		for _, lit := range literals {
			tokenIds[lit] = int(lit[0])
		}
	})
}

var (
	lexer     *lexmachine.Lexer
	lexerErr  error
	lexerOnce sync.Once
)

// compiledLexer returns the lexer, compiling its DFA on first use. The compiled
// lexer is shared; scanners created from it are independent.
func compiledLexer() (*lexmachine.Lexer, error) {
	lexerOnce.Do(func() {
		initTokens()
		lx := lexmachine.NewLexer()
		lx.Add([]byte(`[0-9]+`), makeToken("NUM"))
		lx.Add([]byte(`([a-z]|[A-Z])([a-z]|[A-Z]|[0-9]|_)*`), makeToken("ID"))
		lx.Add([]byte(`( |\t|\n|\r)+`), skip)
		for _, lit := range literals {
			r := "\\" + strings.Join(strings.Split(lit, ""), "\\")
			lx.Add([]byte(r), makeToken(lit))
		}
		if err := lx.Compile(); err != nil {
			tracer().Errorf("error compiling DFA: %v", err)
			lexerErr = errors.Wrap(err, "compiling lexer")
			return
		}
		lexer = lx
	})
	return lexer, lexerErr
}

// skip is a lexer action which ignores the scanned match.
func skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

func makeToken(name string) lexmachine.Action {
	id, ok := tokenIds[name]
	if !ok {
		panic(errors.Newf("unknown token: %s", name))
	}
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(id, string(m.Bytes), m), nil
	}
}

// scanner produces the tokens of a single input string.
type scanner struct {
	lms *lexmachine.Scanner
	end uint64
}

func newScanner(input string) (*scanner, error) {
	lx, err := compiledLexer()
	if err != nil {
		return nil, err
	}
	lms, err := lx.Scanner([]byte(input))
	if err != nil {
		return nil, errors.Wrap(err, "creating scanner")
	}
	return &scanner{lms: lms, end: uint64(len(input))}, nil
}

// NextToken returns the next token of the input, or a token of type EOF at
// the end of the input. Input which does not form a token is an error.
func (sc *scanner) NextToken() (Token, error) {
	tok, err, eof := sc.lms.Next()
	if err != nil {
		var ui *machines.UnconsumedInput
		if errors.As(err, &ui) && ui.StartTC < len(ui.Text) {
			return Token{}, errors.Newf("unexpected character %q at position %d",
				rune(ui.Text[ui.StartTC]), ui.StartTC)
		}
		return Token{}, errors.Wrap(err, "scanning")
	}
	if eof {
		return Token{Type: EOF, Span: Span{sc.end, sc.end}}, nil
	}
	token := tok.(*lexmachine.Token)
	t := Token{
		Type:   TokType(token.Type),
		Lexeme: string(token.Lexeme),
		Span:   Span{uint64(token.TC), uint64(token.TC + len(token.Lexeme))},
	}
	tracer().Debugf("token %s at %s", t, t.Span)
	return t, nil
}
