/*
Package cssom provides interfaces for a CSS object model of generated
style sheets.

CSSOM is the "CSS Object Model", similar to the DOM for HTML. Consumers
of the styles generated by this module (layout engines, style inliners,
test harnesses) frequently want rules and declarations instead of CSS
text. To de-couple them from a concrete CSS implementation, we introduce
the interfaces StyleSheet and Rule. A concrete implementation, exporting
style trees to github.com/aymerick/douceur, lives in package
douceuradapter.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package cssom

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'jss.cssom'.
func tracer() tracing.Trace {
	return tracing.Select("jss.cssom")
}
