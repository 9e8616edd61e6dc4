/*
Command symnorm reads expressions in infix notation and prints their canonical
form.

    symnorm 'y*x + x*y'            prints 2*x*y
    symnorm repl --init defs.txt   starts an interactive session

In interactive mode every line is read, normalized and printed. Lines starting
with a colon are commands:

    :def <name> linear|symmetric|antisymmetric …   declare function attributes
    :tree [<expr>]                                 print the canonical form as a tree
    :expand [<expr>]                               expand coefficients back into expressions
    :ring <var>,<var>… [<expr>]                    move variables into the coefficient ring
    :symbols                                       list known symbols
    :quit

Commands without an expression argument operate on the most recent result.

Configuration is read from a NestedText file 'symnorm.nt' at the usual places
(see schuko.LocateConfig). Flags override configuration values.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'symnorm.cmd'
func tracer() tracing.Trace {
	return tracing.Select("symnorm.cmd")
}
