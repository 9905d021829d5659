/*
Package style implements the intermediate representation of style sheets.

A style tree consists of nodes, each pairing a selector with an ordered list
of declarations and an ordered list of nested nodes. Nesting expresses
at-rules such as media queries:

	sheet := style.Sheet(
	    style.Rule(".layer",
	        style.D("background_color", css.Raw("red")),
	        style.D("border", css.Raw("1px solid green")),
	    ),
	    style.Rule("@media screen and (max-width: 800px)").Nest(
	        style.Rule(".layer", style.D("width", css.Percent(100))),
	    ),
	)

A node with an empty selector is a sheet: an anonymous container whose
children are top-level rules. The selector "." is the root sentinel, which
the namespace rewriter replaces with the namespace's own class.

Property names are validated when a declaration is constructed, never
later. Trees are not mutated once they are handed to the namespace
rewriter or to a renderer; both treat them as read-only.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package style

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'jss.style'.
func tracer() tracing.Trace {
	return tracing.Select("jss.style")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("jss.style: "+msg, msgargs...)
		panic(msg)
	}
}
