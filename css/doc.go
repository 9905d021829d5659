/*
Package css holds the value layer for generated style sheets.

A CSS value is one of three things: a raw string which is emitted verbatim,
a number paired with a unit (10px, 50%, 0), or the concatenation of two
values with a literal separator in between (1px solid green). Values are
immutable once constructed; they are consumed by the renderer only.

	border := css.Spaced(css.Px(1), css.Raw("solid"), css.Raw("green"))
	border.String()  // => "1px solid green"

Clients wanting to inspect a value use pattern matching in the style of
this module:

	var x float64
	var u css.Unit
	switch m := v.Match(); m {
	case m.Numeric(&x, &u):
		...
	}

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package css
