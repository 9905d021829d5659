package namespace

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/jss/style"
	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// Separator joins namespace and class name.
const Separator = "__"

// ErrInvalidNamespace is returned by Check for namespaces which would break
// the selectors they are inserted into.
var ErrInvalidNamespace = errors.New("invalid namespace")

// Check tests if ns is usable as a namespace: it must be non-empty and must
// not contain the separator, whitespace, quotes or selector punctuation.
func Check(ns string) error {
	if ns == "" {
		return fmt.Errorf("%w: empty", ErrInvalidNamespace)
	}
	if strings.Contains(ns, Separator) {
		return fmt.Errorf("%w: %q contains %q", ErrInvalidNamespace, ns, Separator)
	}
	if i := strings.IndexAny(ns, " \t\n\r\f.,:#[]()>+~\"'\\{}"); i >= 0 {
		return fmt.Errorf("%w: %q contains %q", ErrInvalidNamespace, ns, ns[i])
	}
	return nil
}

// Apply creates a copy of a style tree with every selector namespaced.
// The input tree is not modified. Apply does not check the namespace;
// clients taking namespaces from untrusted sources call Check first.
func Apply(root *style.Node, ns string) *style.Node {
	if root == nil {
		return nil
	}
	tracer().Debugf("applying namespace %q to tree of %d node(s)", ns, root.Size())
	return root.Transform(func(sel string) string {
		return Selector(ns, sel)
	})
}

// Selector namespaces a single selector.
//
// The root sentinel "." becomes ".ns". At-rule headers and empty selectors
// are returned unchanged. Otherwise every class token ".name" becomes
// ".ns__name"; everything else, including whitespace, keeps its position.
// Class tokens are found by lexing the selector with the CSS tokenizer: a
// '.' delimiter directly followed by an identifier. Dots inside attribute
// selectors or strings and numbers like "12.5%" are therefore left alone.
func Selector(ns, selector string) string {
	trimmed := strings.TrimSpace(selector)
	switch {
	case trimmed == style.RootSelector:
		return "." + ns
	case trimmed == "", strings.HasPrefix(trimmed, "@"):
		return selector
	case !strings.Contains(selector, "."):
		return selector
	}
	var b strings.Builder
	b.Grow(len(selector) + strings.Count(selector, ".")*(len(ns)+len(Separator)))
	lexer := css.NewLexer(parse.NewInput(strings.NewReader(selector)))
	brackets := 0 // nesting depth of attribute selectors
	dot := false  // previous token was a '.' delimiter
	for {
		tt, text := lexer.Next()
		if tt == css.ErrorToken {
			if err := lexer.Err(); err != io.EOF {
				tracer().Errorf("lexing selector %q: %v", selector, err)
			}
			break
		}
		isIdent := tt == css.IdentToken || tt == css.CustomPropertyNameToken
		if dot && isIdent && brackets == 0 {
			b.WriteString(ns)
			b.WriteString(Separator)
		}
		switch tt {
		case css.LeftBracketToken:
			brackets++
		case css.RightBracketToken:
			if brackets > 0 {
				brackets--
			}
		}
		dot = tt == css.DelimToken && len(text) == 1 && text[0] == '.'
		b.Write(text)
	}
	return b.String()
}

// Class namespaces a space-separated list of class names, as used for
// HTML class attributes. An empty list yields the namespace itself, i.e.
// the class of the root sentinel.
//
//	Class("frame", "text-anim")   // => "frame__text-anim"
//	Class("frame", "")            // => "frame"
func Class(ns, classes string) string {
	fields := strings.Fields(classes)
	if len(fields) == 0 {
		return ns
	}
	for i, f := range fields {
		fields[i] = ns + Separator + f
	}
	return strings.Join(fields, " ")
}
