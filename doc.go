/*
Package jss generates CSS from style trees written in Go.

Style trees (package style) pair selectors with declarations and nested
rules. Property names are validated on construction (package
css/property), values are typed (package css). A tree may be namespaced
(package namespace) to keep its class names from colliding with other
components, and is finally rendered to compact or pretty CSS (package render).

	sheet := style.Sheet(
	    style.Root(style.D("display", css.Raw("block"))),
	    style.Rule(".hide .layer", style.D("opacity", css.Num(0))),
	)
	jss.Namespaced("frame", sheet)
	// => .frame{display:block;}.frame__hide .frame__layer{opacity:0;}

All functions are pure; style trees are never modified.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package jss
