/*
Package douceuradapter is a concrete implementation of interface cssom.StyleSheet.

It exports style trees into the CSS AST of github.com/aymerick/douceur.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package douceuradapter

import (
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/npillmayer/jss/cssom"
	"github.com/npillmayer/jss/style"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'jss.cssom'.
func tracer() tracing.Trace {
	return tracing.Select("jss.cssom")
}

const important = "!important"

// CSSStyles is an adapter for interface cssom.StyleSheet.
type CSSStyles struct {
	css css.Stylesheet
}

// Wrap a douceur.css.Stylesheet into CSSStyles.
// The stylesheet is now managed by the wrapper.
func Wrap(css *css.Stylesheet) *CSSStyles {
	sheet := &CSSStyles{*css}
	return sheet
}

// FromStyle exports a style tree. A sheet's children become top-level
// rules; any other node becomes a single top-level rule. Nested sheets are
// flattened into their parent. Values ending in "!important" are exported
// with the important flag set and the marker removed.
func FromStyle(root *style.Node) *CSSStyles {
	sheet := &CSSStyles{}
	if root != nil {
		sheet.css.Rules = exportRules(root)
		tracer().Debugf("exported %d top-level rule(s)", len(sheet.css.Rules))
	}
	return sheet
}

func exportRules(n *style.Node) []*css.Rule {
	if !n.IsSheet() {
		return []*css.Rule{exportRule(n)}
	}
	var rules []*css.Rule
	for _, ch := range n.Children {
		if ch != nil {
			rules = append(rules, exportRules(ch)...)
		}
	}
	return rules
}

func exportRule(n *style.Node) *css.Rule {
	var rule *css.Rule
	sel := strings.TrimSpace(n.Selector)
	if n.IsAtRule() {
		rule = &css.Rule{Kind: css.AtRule}
		name, prelude, _ := strings.Cut(sel, " ")
		rule.Name = name
		rule.Prelude = strings.TrimSpace(prelude)
	} else {
		rule = &css.Rule{Kind: css.QualifiedRule}
		rule.Prelude = sel
		for _, s := range strings.Split(sel, ",") {
			rule.Selectors = append(rule.Selectors, strings.TrimSpace(s))
		}
	}
	for _, d := range n.Declarations {
		if !d.IsValid() {
			continue
		}
		decl := &css.Declaration{
			Property: d.Property.String(),
			Value:    strings.TrimSpace(d.Value.String()),
		}
		if strings.HasSuffix(decl.Value, important) {
			decl.Important = true
			decl.Value = strings.TrimSpace(strings.TrimSuffix(decl.Value, important))
		}
		rule.Declarations = append(rule.Declarations, decl)
	}
	for _, ch := range n.Children {
		if ch != nil {
			rule.Rules = append(rule.Rules, exportRules(ch)...)
		}
	}
	return rule
}

// Stylesheet returns the underlying douceur stylesheet.
func (sheet *CSSStyles) Stylesheet() *css.Stylesheet {
	return &sheet.css
}

// Empty checks if this stylesheet contains any rules.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) Empty() bool {
	return len(sheet.css.Rules) == 0
}

// AppendRules appends rules from another stylesheet.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) AppendRules(other cssom.StyleSheet) {
	othercss := other.(*CSSStyles)
	sheet.css.Rules = append(sheet.css.Rules, othercss.css.Rules...)
}

// Rules returns all the top-level rules of a stylesheet.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) Rules() []cssom.Rule {
	return wrapRules(sheet.css.Rules)
}

func wrapRules(rs []*css.Rule) []cssom.Rule {
	rules := make([]cssom.Rule, len(rs))
	for i := range rs {
		rules[i] = Rule(*rs[i])
	}
	return rules
}

var _ cssom.StyleSheet = &CSSStyles{}

// Rule is an adapter for interface cssom.Rule.
type Rule css.Rule

// Selector returns the prelude / selectors of the rule. For at-rules, this
// is the complete header, e.g. "@media print".
func (r Rule) Selector() string {
	if r.Kind == css.AtRule {
		if r.Prelude == "" {
			return r.Name
		}
		return r.Name + " " + r.Prelude
	}
	return r.Prelude
}

// Properties returns the property keys of a rule,
// e.g. "margin-top"
func (r Rule) Properties() []string {
	decl := r.Declarations
	props := make([]string, 0, len(decl))
	for _, d := range decl {
		props = append(props, d.Property)
	}
	return props
}

// Value returns the property value for given key with this rule, e.g. "15px".
// For repeated keys, the last declaration wins, as it does in browsers.
func (r Rule) Value(key string) string {
	decl := r.Declarations
	for i := len(decl) - 1; i >= 0; i-- {
		if decl[i].Property == key {
			return decl[i].Value
		}
	}
	return ""
}

// IsImportant returns true if a style key is marked as important ("!").
func (r Rule) IsImportant(key string) bool {
	decl := r.Declarations
	for i := len(decl) - 1; i >= 0; i-- {
		if decl[i].Property == key {
			return decl[i].Important
		}
	}
	return false
}

// Nested returns the rules nested in this rule.
func (r Rule) Nested() []cssom.Rule {
	return wrapRules(r.Rules)
}

var _ cssom.Rule = &Rule{}
