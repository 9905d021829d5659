/*
Package render serializes style trees to CSS text.

There are two modes sharing one traversal: Compact emits minimal
whitespace,

	.layer{width:10px;}.hide .layer{opacity:0;}

and Pretty puts every declaration on its own line, with 4 spaces of
indentation per nesting level:

	.layer {
	    width: 10px;
	}
	.hide .layer {
	    opacity: 0;
	}

Rendering is a pure function of tree and mode. Nested rules are emitted
inside the braces of their parent, after the parent's declarations.
Empty rules are kept (sel{} resp. sel {\n}), a sheet (a node without
selector) contributes only its children.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package render

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'jss.render'.
func tracer() tracing.Trace {
	return tracing.Select("jss.render")
}
