/*
Package namespace prefixes class selectors of a style tree.

Components shipping their own styles risk class name collisions. Applying a
namespace rewrites every class selector of a style tree to
.<namespace>__<class>, while leaving element selectors, ids, pseudo classes,
combinators and at-rule headers untouched:

	.              =>  .frame
	.hide .layer   =>  .frame__hide .frame__layer
	.a.b > button  =>  .frame__a.frame__b > button
	@media print   =>  @media print

Class attributes of HTML elements are namespaced with Class, so that
elements and selectors agree:

	namespace.Class("frame", "hide layer")  // => "frame__hide frame__layer"

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package namespace

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'jss.namespace'.
func tracer() tracing.Trace {
	return tracing.Select("jss.namespace")
}
