/*
Package symnorm is the canonicalization engine of a small computer-algebra kernel.

Given an arbitrarily nested expression tree of sums, products, powers, function
applications, variables and numbers, symnorm rewrites the tree into a unique
canonical form. Package structure is as follows:

■ coeff: Package coeff implements the coefficient domain: exact rationals,
finite-field elements and quotients of multivariate polynomials.

■ atom: Package atom implements expression nodes, their read-only views and printing.

■ order: Package order defines the total orders used to sort expressions, factors and terms.

■ norm: Package norm implements the normalizer, i.e. the recursive bottom-up rewrite
of a dirty tree into canonical form.

■ registry, workspace: Collaborators of the normalizer. The registry holds symbol
names, function attributes and finite fields; the workspace pools node buffers.

■ poly, ffield: Supporting arithmetic for rational polynomials and prime fields.

■ reader: A reader for a conventional infix notation, mainly used for tests and the CLI.

The base package contains data types and error kinds which are used throughout
all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package symnorm
