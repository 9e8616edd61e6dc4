/*
Package poly implements multivariate polynomials with integer coefficients and
quotients of them (rational polynomials).

This is the small polynomial ring used by the coefficient domain. It offers the
operations needed to combine coefficients: addition, multiplication, integer
powers, inversion, content extraction and exact division. It deliberately does
not implement multivariate GCDs or factoring. Rational polynomials are reduced by
integer content, by common monomial factors and by exact division of numerator
and denominator, which covers the cases arising during normalization.

Every polynomial is expressed over an ordered list of variables. Variable lists are
kept sorted by identifier and minimal, i.e. every listed variable occurs in some
term. Binary operations on polynomials over different lists unify the lists first.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package poly

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'symnorm.poly'.
func tracer() tracing.Trace {
	return tracing.Select("symnorm.poly")
}
