/*
Package norm implements the normalizer, which turns dirty expression trees into
their canonical form.

The canonical form of an expression is unique among all expressions equal modulo
the rewrite rules implemented here:

■ products and sums are flattened, sorted and merged (x*x = x^2, x+x = 2*x),
numeric factors and terms are collected into a single trailing coefficient,

■ numeric powers are evaluated exactly (2^3 = 8), nested numeric powers are
combined ((x^2)^3 = x^6), powers of the imaginary unit are reduced,

■ functions are flattened (f(arg(x,y)) = f(x,y)) and expanded or re-ordered
according to their attributes (Linear, Symmetric, Antisymmetric),

■ coeff(…) turns a rational expression into a rational polynomial coefficient.

Normalization is pure: input atoms are never modified and canonical
sub-expressions are shared between input and output. Clean input is returned
unchanged.

Configuration key 'full-function-compare' selects argument-wise comparison of
functions (see package order).

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package norm

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'symnorm.norm'.
func tracer() tracing.Trace {
	return tracing.Select("symnorm.norm")
}
