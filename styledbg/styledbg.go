/*
Package styledbg implements helpers to debug a style tree.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package styledbg

import (
	"fmt"
	"io"
	"text/template"

	"github.com/npillmayer/jss/style"
	tp "github.com/xlab/treeprint"
)

// Print returns an indented tree view of a style tree. Rules are printed
// as branches, declarations as leaves.
//
//	.
//	└── .frame
//	    ├── display: block
//	    └── .frame__layer
//	        └── width: 10px
func Print(root *style.Node) string {
	printer := tp.New()
	if root != nil {
		if root.IsSheet() {
			for _, ch := range root.Children {
				printNode(printer, ch)
			}
		} else {
			printNode(printer, root)
		}
	}
	return printer.String()
}

func printNode(printer tp.Tree, n *style.Node) {
	if n == nil {
		return
	}
	if len(n.Declarations) == 0 && len(n.Children) == 0 {
		printer.AddNode(label(n))
		return
	}
	branch := printer.AddBranch(label(n))
	for _, d := range n.Declarations {
		branch.AddNode(d.String())
	}
	for _, ch := range n.Children {
		printNode(branch, ch)
	}
}

func label(n *style.Node) string {
	if n.IsSheet() {
		return "(sheet)"
	}
	return n.Selector
}

// Parameters for GraphViz drawing.
type graphParamsType struct {
	Fontname string
	NodeTmpl *template.Template
	EdgeTmpl *template.Template
}

// ToGraphViz outputs a diagram for a style tree. The diagram is in
// GraphViz (DOT) format. Every rule is drawn as a record listing its
// declarations.
func ToGraphViz(root *style.Node, w io.Writer) error {
	tmpl, err := template.New("style").Parse(graphHeadTmpl)
	if err != nil {
		return err
	}
	gparams := graphParamsType{Fontname: "Helvetica"}
	gparams.NodeTmpl = template.Must(template.New("stylenode").Parse(styleNodeTmpl))
	gparams.EdgeTmpl = template.Must(template.New("styleedge").Parse(styleEdgeTmpl))
	if err = tmpl.Execute(w, gparams); err != nil {
		return err
	}
	dict := make(map[*style.Node]string, 64)
	if root != nil {
		if err = nodes(root, w, dict, &gparams); err != nil {
			return err
		}
	}
	_, err = w.Write([]byte("}\n"))
	return err
}

type node struct {
	N    *style.Node
	Name string
}

func (n node) Label() string {
	return label(n.N)
}

type edge struct {
	N1, N2 node
}

func nodes(n *style.Node, w io.Writer, dict map[*style.Node]string, gparams *graphParamsType) error {
	name := nameOf(n, dict)
	if err := gparams.NodeTmpl.Execute(w, node{n, name}); err != nil {
		return err
	}
	for _, ch := range n.Children {
		if ch == nil {
			continue
		}
		if err := nodes(ch, w, dict, gparams); err != nil {
			return err
		}
		e := edge{node{n, name}, node{ch, dict[ch]}}
		if err := gparams.EdgeTmpl.Execute(w, e); err != nil {
			return err
		}
	}
	return nil
}

func nameOf(n *style.Node, dict map[*style.Node]string) string {
	name := dict[n]
	if name == "" {
		name = fmt.Sprintf("node%05d", len(dict)+1)
		dict[n] = name
	}
	return name
}

// --- Templates --------------------------------------------------------

const graphHeadTmpl = `digraph g {
  graph [labelloc="t" label="" splines=true overlap=false rankdir = "LR"];
  node [fontname = "{{ .Fontname }}" fontsize=14] ;
  edge [fontname = "{{ .Fontname }}" fontsize=14] ;
`

const styleNodeTmpl = `{{ .Name }} [ style="filled" penwidth=1 fillcolor="ivory3" shape="Mrecord" fontsize=12
    label=<<table border="0" cellborder="0" cellpadding="2" cellspacing="0" bgcolor="ivory3">
      <tr><td bgcolor="azure4" align="center" colspan="2"><font color="white">{{ html .Label }}</font></td></tr>
      {{- range .N.Declarations }}
      <tr><td align="right">{{ html .Property.String }}:</td><td>{{ html .Value.String }}</td></tr>
      {{- end }}
    </table>> ] ;
`

const styleEdgeTmpl = `{{ .N1.Name }} -> {{ .N2.Name }} [weight=1] ;
`
