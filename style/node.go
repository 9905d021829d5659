package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"strings"

	"github.com/npillmayer/jss/css"
	"github.com/npillmayer/jss/css/property"
)

// RootSelector is the sentinel selector denoting a namespace's own class.
const RootSelector = "."

// Declaration is a property/value pair. Declarations are created with Declare
// or D, which validate the property name. property.Name cannot be created
// otherwise, so a Declaration literal can at most carry the zero Name; such
// declarations are not valid and are skipped on output.
type Declaration struct {
	Property property.Name
	Value    css.Value
}

// Declare creates a declaration, validating the property name.
// The error is a property.InvalidPropertyError for unknown names.
func Declare(prop string, v css.Value) (Declaration, error) {
	name, err := property.Validate(prop)
	if err != nil {
		return Declaration{}, err
	}
	return Declaration{Property: name, Value: v}, nil
}

// D creates a declaration and panics if prop is not a known CSS property.
// This is the form intended for style trees written in code, where an
// invalid property is a programming error.
func D(prop string, v css.Value) Declaration {
	d, err := Declare(prop, v)
	assertThat(err == nil, "%v", err)
	return d
}

// IsValid is false for declarations without a validated property name.
func (d Declaration) IsValid() bool {
	return !d.Property.IsZero()
}

func (d Declaration) String() string {
	return fmt.Sprintf("%s: %s", d.Property, d.Value)
}

// Node is the base type style trees are built of.
type Node struct {
	Selector     string        // selector, at-rule header, "." or "" (sheet)
	Declarations []Declaration // declarations in authoring order
	Children     []*Node       // nested rules in authoring order
}

// Rule creates a new node for a selector with a list of declarations.
func Rule(selector string, decls ...Declaration) *Node {
	return &Node{Selector: selector, Declarations: decls}
}

// Root creates a node with the root sentinel selector.
func Root(decls ...Declaration) *Node {
	return Rule(RootSelector, decls...)
}

// Sheet creates an anonymous container for top-level rules.
func Sheet(rules ...*Node) *Node {
	return (&Node{}).Nest(rules...)
}

// Nest appends children to a node. nil children are skipped.
// It returns the node to allow for chaining.
func (n *Node) Nest(children ...*Node) *Node {
	for _, ch := range children {
		if ch != nil {
			n.Children = append(n.Children, ch)
		}
	}
	return n
}

// Declare appends declarations to a node.
// It returns the node to allow for chaining.
func (n *Node) Declare(decls ...Declaration) *Node {
	n.Declarations = append(n.Declarations, decls...)
	return n
}

func (n *Node) String() string {
	return fmt.Sprintf("(Node %q #decl=%d #ch=%d)", n.Selector, len(n.Declarations), len(n.Children))
}

// IsSheet is true for anonymous containers, i.e. nodes without a selector.
func (n *Node) IsSheet() bool {
	return n.Selector == ""
}

// IsRoot is true for the root sentinel selector ".".
func (n *Node) IsRoot() bool {
	return strings.TrimSpace(n.Selector) == RootSelector
}

// IsAtRule is true for at-rule headers such as "@media print".
func (n *Node) IsAtRule() bool {
	return strings.HasPrefix(strings.TrimSpace(n.Selector), "@")
}

// Clone creates a deep copy of a (sub-)tree. Values are immutable and
// therefore shared.
func (n *Node) Clone() *Node {
	return n.Transform(func(sel string) string { return sel })
}

// Transform creates a copy of a (sub-)tree with every selector replaced by
// f(selector). Declarations and the shape of the tree remain untouched.
func (n *Node) Transform(f func(selector string) string) *Node {
	if n == nil {
		return nil
	}
	c := &Node{Selector: f(n.Selector)}
	if len(n.Declarations) > 0 {
		c.Declarations = make([]Declaration, len(n.Declarations))
		copy(c.Declarations, n.Declarations)
	}
	if len(n.Children) > 0 {
		c.Children = make([]*Node, 0, len(n.Children))
		for _, ch := range n.Children {
			if ch != nil {
				c.Children = append(c.Children, ch.Transform(f))
			}
		}
	}
	return c
}

// Walk visits a (sub-)tree depth-first, pre-order. depth is 0 for n. If
// visit returns false, the children of the current node are skipped.
func (n *Node) Walk(visit func(node *Node, depth int) bool) {
	n.walk(visit, 0)
}

func (n *Node) walk(visit func(*Node, int) bool, depth int) {
	if n == nil || !visit(n, depth) {
		return
	}
	for _, ch := range n.Children {
		ch.walk(visit, depth+1)
	}
}

// Size returns the number of nodes in a (sub-)tree.
func (n *Node) Size() int {
	count := 0
	n.Walk(func(*Node, int) bool {
		count++
		return true
	})
	return count
}
