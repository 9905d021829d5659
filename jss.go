package jss

import (
	"github.com/npillmayer/jss/namespace"
	"github.com/npillmayer/jss/render"
	"github.com/npillmayer/jss/style"
)

// Compile runs the whole pipeline: if ns is non-empty, the tree is
// namespaced first, then rendered according to opts.
func Compile(sheet *style.Node, ns string, opts render.Options) string {
	if ns != "" {
		sheet = namespace.Apply(sheet, ns)
	}
	return string(render.Bytes(sheet, opts))
}

// CSS renders a style tree as compact CSS.
func CSS(sheet *style.Node) string {
	return Compile(sheet, "", render.Options{Mode: render.Compact})
}

// Pretty renders a style tree as indented CSS.
func Pretty(sheet *style.Node) string {
	return Compile(sheet, "", render.Options{Mode: render.Pretty})
}

// Namespaced applies namespace ns and renders compact CSS.
func Namespaced(ns string, sheet *style.Node) string {
	return Compile(sheet, ns, render.Options{Mode: render.Compact})
}

// NamespacedPretty applies namespace ns and renders indented CSS.
func NamespacedPretty(ns string, sheet *style.Node) string {
	return Compile(sheet, ns, render.Options{Mode: render.Pretty})
}

// Inline renders declarations for use in a style attribute.
//
//	jss.Inline(style.D("background_color", css.Raw("red")), style.D("border", css.Raw("1px solid green")))
//	// => background-color:red;border:1px solid green;
func Inline(decls ...style.Declaration) string {
	return render.Declarations(decls, render.Compact)
}
