package htmlstyle

import (
	"errors"
	"strings"

	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/jss/cssom/douceuradapter"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ErrNoHead is returned by Inject for documents with neither a <head> nor
// a <body> element.
var ErrNoHead = errors.New("document has no <head> or <body>")

// Element creates a <style> element node containing css.
func Element(css string) *html.Node {
	style := &html.Node{
		Type:     html.ElementNode,
		Data:     atom.Style.String(),
		DataAtom: atom.Style,
	}
	style.AppendChild(&html.Node{Type: html.TextNode, Data: css})
	return style
}

// Inject appends a <style> element containing css to the <head> of doc, or
// to its <body> if there is no <head>. It returns the new element.
func Inject(doc *html.Node, css string) (*html.Node, error) {
	parent := findElement(atom.Head, doc)
	if parent == nil {
		parent = findElement(atom.Body, doc)
	}
	if parent == nil {
		return nil, ErrNoHead
	}
	style := Element(css)
	parent.AppendChild(style)
	tracer().Debugf("injected %d bytes of CSS into <%s>", len(css), parent.Data)
	return style, nil
}

// Styles returns the text content of all <style> elements of <head> and
// <body>, in document order.
func Styles(doc *html.Node) []string {
	var styles []string
	for _, a := range []atom.Atom{atom.Head, atom.Body} {
		h := findElement(a, doc)
		if h == nil {
			continue
		}
		for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
			if ch.DataAtom == atom.Style {
				styles = append(styles, textOf(ch))
			}
		}
	}
	return styles
}

// StyleSheets parses the content of all <style> elements of doc.
// Style elements with unparsable content are skipped.
func StyleSheets(doc *html.Node) []*douceuradapter.CSSStyles {
	var sheets []*douceuradapter.CSSStyles
	for _, s := range Styles(doc) {
		c, err := parser.Parse(s)
		if err != nil {
			tracer().Infof("skipping style element: %v", err)
			continue
		}
		sheets = append(sheets, douceuradapter.Wrap(c))
	}
	return sheets
}

func textOf(n *html.Node) string {
	var b strings.Builder
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		if ch.Type == html.TextNode {
			b.WriteString(ch.Data)
		}
	}
	return b.String()
}

func findElement(a atom.Atom, h *html.Node) *html.Node {
	if h == nil {
		return nil
	}
	if h.Type == html.ElementNode && h.DataAtom == a {
		return h
	}
	for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
		if r := findElement(a, ch); r != nil {
			return r
		}
	}
	return nil
}
