/*
Package property validates CSS property names.

Style trees are authored by code, and a typo in a property name would
silently produce CSS that browsers ignore. Every declaration therefore runs
its property name through Validate before it becomes part of a style tree.
Names may use hyphens or underscores as word separators:

	property.Validate("background_color")  // => "background-color", nil
	property.Validate("backgroud-color")   // => "", InvalidPropertyError

Only names are checked, never values.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package property
