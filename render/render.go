package render

import (
	"io"

	"github.com/npillmayer/jss/style"
)

const indentUnit = "    "

type printer struct {
	options Options
	css     []byte
}

// Render serializes a style tree in the given mode.
func Render(root *style.Node, mode Mode) string {
	return string(Bytes(root, Options{Mode: mode}))
}

// Bytes serializes a style tree according to opts.
func Bytes(root *style.Node, opts Options) []byte {
	p := &printer{options: opts}
	if root != nil {
		tracer().Debugf("rendering %d node(s), mode %s", root.Size(), opts.Mode)
		p.printNode(root, 0)
	}
	return p.css
}

// WriteTo serializes a style tree to w.
func WriteTo(w io.Writer, root *style.Node, opts Options) (int64, error) {
	n, err := w.Write(Bytes(root, opts))
	return int64(n), err
}

// Declarations renders a bare list of declarations, as used for inline
// style attributes. In pretty mode declarations are separated by a space.
//
//	background-color:red;border:1px solid green;
func Declarations(decls []style.Declaration, mode Mode) string {
	p := &printer{options: Options{Mode: mode}}
	for _, d := range decls {
		if !d.IsValid() {
			continue
		}
		if len(p.css) > 0 && p.pretty() {
			p.print(" ")
		}
		p.printDeclarationText(d)
	}
	return string(p.css)
}

func (p *printer) pretty() bool {
	return p.options.Mode == Pretty
}

func (p *printer) printNode(n *style.Node, indent int) {
	if n.IsSheet() {
		for _, ch := range n.Children {
			if ch != nil {
				p.printNode(ch, indent)
			}
		}
		return
	}
	if p.pretty() {
		p.printLine(indent)
		p.print(n.Selector)
		p.print(" {")
	} else {
		p.print(n.Selector)
		p.print("{")
	}
	for _, d := range n.Declarations {
		if !d.IsValid() {
			tracer().Errorf("skipping declaration without property in %q", n.Selector)
			continue
		}
		if p.pretty() {
			p.printLine(indent + 1)
		}
		p.printDeclarationText(d)
	}
	for _, ch := range n.Children {
		if ch != nil {
			p.printNode(ch, indent+1)
		}
	}
	if p.pretty() {
		p.printLine(indent)
	}
	p.print("}")
}

// printLine starts a new line in pretty mode. Lines are separated, not
// terminated, by newlines: the output has neither a leading nor a trailing
// newline.
func (p *printer) printLine(indent int) {
	if len(p.css) > 0 {
		p.print("\n")
	}
	p.printIndent(indent)
}

func (p *printer) printDeclarationText(d style.Declaration) {
	p.print(d.Property.String())
	if p.pretty() {
		p.print(": ")
	} else {
		p.print(":")
	}
	p.print(d.Value.String())
	p.print(";")
}

func (p *printer) printIndent(indent int) {
	for i := 0; i < indent; i++ {
		p.css = append(p.css, indentUnit...)
	}
}

func (p *printer) print(text string) {
	p.css = append(p.css, text...)
}
