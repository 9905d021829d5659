package cssom

// StyleSheet is an interface to abstract away a stylesheet-implementation.
//
// See interface Rule.
type StyleSheet interface {
	AppendRules(StyleSheet) // append rules from another stylesheet
	Empty() bool            // does this stylesheet contain any rules?
	Rules() []Rule          // all the top-level rules of a stylesheet
}

// Rule is the type stylesheets consists of.
//
// See interface StyleSheet.
type Rule interface {
	Selector() string        // the prelude / selectors of the rule
	Properties() []string    // property keys, e.g. "margin-top"
	Value(string) string     // property value for key, e.g. "15px"
	IsImportant(string) bool // is property key marked as important?
	Nested() []Rule          // rules nested in this one, e.g. for @media
}

// Walk visits the rules of a stylesheet depth-first, pre-order, with
// depth 0 for top-level rules.
func Walk(sheet StyleSheet, visit func(r Rule, depth int)) {
	if sheet == nil {
		return
	}
	for _, r := range sheet.Rules() {
		walk(r, visit, 0)
	}
}

func walk(r Rule, visit func(Rule, int), depth int) {
	visit(r, depth)
	for _, ch := range r.Nested() {
		walk(ch, visit, depth+1)
	}
}

// Count returns the number of rules in a stylesheet, including nested ones.
func Count(sheet StyleSheet) int {
	n := 0
	Walk(sheet, func(Rule, int) { n++ })
	tracer().Debugf("stylesheet contains %d rule(s)", n)
	return n
}
