/*
Package registry implements the symbol registry: the context object holding
symbol names, function attributes and finite fields.

A registry is passed explicitly into every normalization call; there is no
global registry. Independent registries allow for independent, parallel
normalizations (a registry itself is not synchronized).

Symbols are identified by name. Each symbol gets an identifier on definition,
in ascending order, and identifiers determine the sort order of variables and
functions. Three symbols are predefined:

    arg     argument-list wrapper, f(arg(x,y)) = f(x,y)
    coeff   coefficient wrapper, coeff(x+1) turns x+1 into a coefficient
    i       the imaginary unit, i*i = -1

A variable whose name ends in one or more underscores is a wildcard. Wildcards
may not be turned into coefficients.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package registry

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/hashicorp/go-set/v3"
	"github.com/npillmayer/schuko/tracing"

	"github.com/npillmayer/symnorm"
	"github.com/npillmayer/symnorm/ffield"
)

// tracer traces with key 'symnorm.registry'.
func tracer() tracing.Trace {
	return tracing.Select("symnorm.registry")
}

// Identifiers of the predefined symbols.
const (
	Arg   symnorm.Identifier = iota // argument-list wrapper
	Coeff                           // coefficient wrapper
	I                               // imaginary unit
)

var builtins = []string{"arg", "coeff", "i"}

// --- Symbols ---------------------------------------------------------------

// Symbol is the registry entry for a name.
type Symbol struct {
	name     string
	ID       symnorm.Identifier
	attrs    *set.Set[symnorm.Attribute]
	wildcard int
}

func newSymbol(name string, id symnorm.Identifier) *Symbol {
	return &Symbol{
		name:     name,
		ID:       id,
		attrs:    set.New[symnorm.Attribute](0),
		wildcard: len(name) - len(strings.TrimRight(name, "_")),
	}
}

// Name returns the symbol's name.
func (s *Symbol) Name() string {
	return s.name
}

// WildcardLevel returns the number of trailing underscores of the symbol's name.
func (s *Symbol) WildcardLevel() int {
	return s.wildcard
}

// String is a debug Stringer for symbols.
func (s *Symbol) String() string {
	return fmt.Sprintf("<sym '%s'#%d %s>", s.name, s.ID, s.attrs)
}

// === Registry ==============================================================

// Registry stores symbols and finite fields.
type Registry struct {
	table  map[string]*Symbol
	byID   []*Symbol
	fields []*ffield.Field
	primes map[uint64]ffield.ID
}

// New creates a registry with the predefined symbols 'arg', 'coeff' and 'i'.
func New() *Registry {
	r := &Registry{
		table:  make(map[string]*Symbol),
		primes: make(map[uint64]ffield.ID),
	}
	for _, name := range builtins {
		r.Define(name)
	}
	return r
}

// Resolve checks for a symbol in the registry. Returns a symbol or nil.
func (r *Registry) Resolve(name string) *Symbol {
	return r.table[name]
}

// ResolveOrDefine finds a symbol in the registry, inserting a new one if not found.
// Returns the symbol and a flag, signalling whether the symbol has already been present.
func (r *Registry) ResolveOrDefine(name string) (*Symbol, bool) {
	if sym := r.Resolve(name); sym != nil {
		return sym, true
	}
	sym, _ := r.Define(name)
	return sym, false
}

// Define creates a symbol with the given attributes. If a symbol with this name is
// already present, it keeps its identifier and gets the attributes added.
// Returns the symbol and a flag, signalling whether the symbol has already been present.
func (r *Registry) Define(name string, attrs ...symnorm.Attribute) (*Symbol, bool) {
	if len(name) == 0 {
		panic("registry: cannot define symbol with empty name")
	}
	sym, found := r.table[name]
	if !found {
		sym = newSymbol(name, symnorm.Identifier(len(r.byID)))
		r.table[name] = sym
		r.byID = append(r.byID, sym)
	}
	for _, a := range attrs {
		if a != symnorm.NoAttribute {
			sym.attrs.Insert(a)
		}
	}
	tracer().P("sym", name).Debugf("defined %v", sym)
	return sym, found
}

// Symbol returns the symbol for an identifier, or nil.
func (r *Registry) Symbol(id symnorm.Identifier) *Symbol {
	if int(id) >= len(r.byID) {
		return nil
	}
	return r.byID[id]
}

// Name returns the name of a symbol. Unknown identifiers print as '#n'.
func (r *Registry) Name(id symnorm.Identifier) string {
	if sym := r.Symbol(id); sym != nil {
		return sym.name
	}
	return id.String()
}

// AttributesOf returns the attributes of a function identifier.
// Clients must not modify the returned set.
func (r *Registry) AttributesOf(id symnorm.Identifier) *set.Set[symnorm.Attribute] {
	if sym := r.Symbol(id); sym != nil {
		return sym.attrs
	}
	return set.New[symnorm.Attribute](0)
}

// HasAttribute is a predicate: does function id carry attribute a?
func (r *Registry) HasAttribute(id symnorm.Identifier, a symnorm.Attribute) bool {
	if sym := r.Symbol(id); sym != nil {
		return sym.attrs.Contains(a)
	}
	return false
}

// WildcardLevel returns the wildcard level of a variable identifier (0 for
// ordinary variables).
func (r *Registry) WildcardLevel(id symnorm.Identifier) int {
	if sym := r.Symbol(id); sym != nil {
		return sym.wildcard
	}
	return 0
}

// Size counts the symbols in a registry.
func (r *Registry) Size() int {
	return len(r.byID)
}

// Each iterates over each symbol in order of definition, executing a mapper function.
func (r *Registry) Each(mapper func(string, *Symbol)) {
	for _, sym := range r.byID {
		mapper(sym.name, sym)
	}
}

// --- Finite fields ---------------------------------------------------------

// DefineFiniteField returns the ID of the prime field GF(p), creating it if it is
// not yet known.
func (r *Registry) DefineFiniteField(p uint64) (ffield.ID, error) {
	if id, ok := r.primes[p]; ok {
		return id, nil
	}
	f, err := ffield.New(p)
	if err != nil {
		return 0, err
	}
	id := ffield.ID(len(r.fields))
	r.fields = append(r.fields, f)
	r.primes[p] = id
	tracer().Debugf("registered %s as field #%d", f, id)
	return id, nil
}

// FiniteField returns the field descriptor for an ID.
func (r *Registry) FiniteField(id ffield.ID) (*ffield.Field, error) {
	if int(id) >= len(r.fields) {
		return nil, errors.Newf("unknown finite field #%d", id)
	}
	return r.fields[id], nil
}
