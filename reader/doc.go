/*
Package reader reads expressions in conventional infix notation and builds
(dirty) expression trees from them.

The notation is

    expr    := sum
    sum     := product { ('+'|'-') product }
    product := unary { ('*'|'/') unary }
    unary   := '-' unary | power
    power   := primary [ '^' unary ]
    primary := NUM | ID | ID '(' [ expr { ',' expr } ] ')' | '(' expr ')'
             | '[' ['-'] NUM 'mod' NUM ']'

Exponentiation is right associative. Division and subtraction are expressed in
terms of products and powers:

    a/b   →  a*b^-1
    a-b   →  a+b*(-1)
    -a    →  a*(-1)

Bracketed numbers '[3 mod 7]' denote elements of a prime field. Identifiers are
looked up in a registry and defined if unknown; an identifier followed by an
opening parenthesis denotes a function application.

Nothing is simplified during reading: every node is created dirty and it is
up to package norm to bring it into canonical form.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package reader

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'symnorm.reader'.
func tracer() tracing.Trace {
	return tracing.Select("symnorm.reader")
}
