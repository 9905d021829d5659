/*
Package htmlstyle puts generated style sheets into HTML documents and gets
them out again.

A document parsed with golang.org/x/net/html receives generated CSS as a
<style> element:

	doc, _ := html.Parse(r)
	htmlstyle.Inject(doc, jss.Namespaced("frame", sheet))

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package htmlstyle

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'jss.html'.
func tracer() tracing.Trace {
	return tracing.Select("jss.html")
}
