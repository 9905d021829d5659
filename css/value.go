package css

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	valueRaw uint8 = iota
	valueNumeric
	valueConcat
)

// Value is an option type for CSS property values.
type Value struct {
	kind  uint8
	raw   string  // raw text, or separator for concatenations
	num   float64 // numeric part of a numeric value
	unit  Unit
	left  *Value
	right *Value
}

/*
type Value
	= Raw string
	| Numeric number unit
	| Concat Value separator Value
*/

// Raw creates a value which will be emitted verbatim.
func Raw(s string) Value {
	return Value{kind: valueRaw, raw: s}
}

// Numeric creates a number with a unit. Use Unitless for properties like
// z-index or opacity.
//
// Numeric panics if u is not one of the enumerated units or if x is NaN
// or infinite.
func Numeric(x float64, u Unit) Value {
	if !u.Valid() {
		panic(fmt.Sprintf("jss.css: invalid unit %d for numeric value %v", uint8(u), x))
	}
	if math.IsNaN(x) || math.IsInf(x, 0) {
		panic(fmt.Sprintf("jss.css: numeric value %v is not finite", x))
	}
	return Value{kind: valueNumeric, num: x, unit: u}
}

// Num creates a unitless numeric value.
func Num[N Number](x N) Value {
	return Numeric(float64(x), Unitless)
}

// Concat joins a and b with a literal separator.
func Concat(a Value, sep string, b Value) Value {
	return Value{kind: valueConcat, raw: sep, left: &a, right: &b}
}

// Join folds a list of values into a chain of concatenations, separated
// by sep. Join of no values is the empty raw value.
func Join(sep string, values ...Value) Value {
	if len(values) == 0 {
		return Raw("")
	}
	v := values[0]
	for _, w := range values[1:] {
		v = Concat(v, sep, w)
	}
	return v
}

// Spaced joins values with a single space.
func Spaced(values ...Value) Value {
	return Join(" ", values...)
}

// IsEmpty is true for a raw value of "".
func (v Value) IsEmpty() bool {
	return v.kind == valueRaw && v.raw == ""
}

// String formats a value the way it will appear in CSS output.
func (v Value) String() string {
	var b strings.Builder
	v.format(&b)
	return b.String()
}

func (v Value) format(b *strings.Builder) {
	switch v.kind {
	case valueNumeric:
		b.WriteString(formatNumber(v.num))
		b.WriteString(v.unit.String())
	case valueConcat:
		v.left.format(b)
		b.WriteString(v.raw)
		v.right.format(b)
	default:
		b.WriteString(v.raw)
	}
}

// formatNumber produces the shortest representation which round-trips.
func formatNumber(x float64) string {
	if x == 0 {
		return "0" // also catches -0
	}
	if x == math.Trunc(x) && math.Abs(x) < 1e15 {
		return strconv.FormatInt(int64(x), 10)
	}
	return strconv.FormatFloat(x, 'f', -1, 64)
}

// ---------------------------------------------------------------------------

// Match starts a pattern match on a value.
func (v Value) Match() *Matcher {
	return &Matcher{value: v}
}

// Matcher matches values against their variants. Every method returns nil
// if the value is not of the variant asked for, so matchers may be used as
// switch-cases.
type Matcher struct {
	value Value
}

// Raw matches raw values and extracts the text, if s is non-nil.
func (m *Matcher) Raw(s *string) *Matcher {
	if m.value.kind != valueRaw {
		return nil
	}
	if s != nil {
		*s = m.value.raw
	}
	return m
}

// Numeric matches numeric values and extracts number and unit.
func (m *Matcher) Numeric(x *float64, u *Unit) *Matcher {
	if m.value.kind != valueNumeric {
		return nil
	}
	if x != nil {
		*x = m.value.num
	}
	if u != nil {
		*u = m.value.unit
	}
	return m
}

// Concat matches concatenations and extracts both sides and the separator.
func (m *Matcher) Concat(a *Value, sep *string, b *Value) *Matcher {
	if m.value.kind != valueConcat {
		return nil
	}
	if a != nil {
		*a = *m.value.left
	}
	if sep != nil {
		*sep = m.value.raw
	}
	if b != nil {
		*b = *m.value.right
	}
	return m
}

// IsKind matches if the value and v are of the same variant.
func (m *Matcher) IsKind(v Value) *Matcher {
	if m.value.kind == v.kind {
		return m
	}
	return nil
}
