package style

import (
	"errors"
	"fmt"

	"github.com/npillmayer/jss/css"
	"go.uber.org/multierr"
)

// ErrUnbalanced is returned by a Builder for End without an open rule or
// for rules left open at Build.
var ErrUnbalanced = errors.New("unbalanced rule blocks")

// Builder constructs a style tree step by step, for authoring front-ends
// which read style descriptions from somewhere else than Go code.
// Property names are validated immediately. Invalid ones are collected and
// Build will refuse to return a tree, reporting all of them at once. No
// partial tree is ever handed out. Unbalanced rule blocks stop the builder.
//
//	b := style.NewBuilder()
//	b.Rule(".layer").Set("width", css.Px(10)).End()
//	sheet, err := b.Build()
type Builder struct {
	sheet  *Node
	open   []*Node // stack of open rules, innermost last
	err    error
	broken bool // structure error, stop building
}

// NewBuilder creates a builder for a new sheet.
func NewBuilder() *Builder {
	return &Builder{sheet: Sheet()}
}

func (b *Builder) current() *Node {
	if len(b.open) == 0 {
		return b.sheet
	}
	return b.open[len(b.open)-1]
}

// Rule opens a new rule, nested in the currently open one (if any).
func (b *Builder) Rule(selector string) *Builder {
	if b.broken {
		return b
	}
	n := Rule(selector)
	b.current().Nest(n)
	b.open = append(b.open, n)
	return b
}

// Set appends a declaration to the currently open rule.
func (b *Builder) Set(prop string, v css.Value) *Builder {
	if b.broken {
		return b
	}
	if len(b.open) == 0 {
		b.unbalanced(fmt.Errorf("declaration %q outside of any rule: %w", prop, ErrUnbalanced))
		return b
	}
	d, err := Declare(prop, v)
	if err != nil {
		err = fmt.Errorf("in selector %q: %w", b.current().Selector, err)
		tracer().Debugf("builder: %v", err)
		b.err = multierr.Append(b.err, err)
		return b
	}
	b.current().Declare(d)
	return b
}

// End closes the currently open rule.
func (b *Builder) End() *Builder {
	if b.broken {
		return b
	}
	if len(b.open) == 0 {
		b.unbalanced(fmt.Errorf("end without open rule: %w", ErrUnbalanced))
		return b
	}
	b.open = b.open[:len(b.open)-1]
	return b
}

func (b *Builder) unbalanced(err error) {
	b.err = multierr.Append(b.err, err)
	b.broken = true
}

// Err returns the errors encountered so far, combined into one, if any.
// Use multierr.Errors to split them.
func (b *Builder) Err() error {
	return b.err
}

// Build returns the finished sheet. It is an error if any declaration
// was invalid or if rules are still open.
func (b *Builder) Build() (*Node, error) {
	if len(b.open) > 0 && !b.broken {
		b.unbalanced(fmt.Errorf("%d rule(s) not closed: %w", len(b.open), ErrUnbalanced))
	}
	if b.err != nil {
		return nil, b.err
	}
	tracer().Debugf("builder: sheet with %d node(s)", b.sheet.Size())
	return b.sheet, nil
}
