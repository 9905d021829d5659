package property

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/npillmayer/jss/result"
)

// Name is a validated CSS property name in canonical hyphenated form.
// Names can only be created by Validate, Must and Check; the zero Name
// is not a property.
type Name struct {
	name string
}

func (n Name) String() string {
	return n.name
}

// IsZero is true for the zero Name, i.e. for a name not created by
// validation.
func (n Name) IsZero() bool {
	return n.name == ""
}

// ErrInvalidProperty is the sentinel all InvalidPropertyErrors match with
// errors.Is.
var ErrInvalidProperty = errors.New("invalid CSS property name")

// InvalidPropertyError is returned for property names outside the set of
// recognized CSS properties.
type InvalidPropertyError struct {
	Name string // offending name, as given by the client
}

func (e InvalidPropertyError) Error() string {
	return fmt.Sprintf("invalid CSS property name: %q", e.Name)
}

// Is makes InvalidPropertyError match ErrInvalidProperty.
func (e InvalidPropertyError) Is(target error) bool {
	return target == ErrInvalidProperty
}

// Canonical converts a property name to hyphen-case, i.e. replaces
// underscores with hyphens. It does not check the name.
//
//	Canonical("border_top_left_radius")  // => "border-top-left-radius"
func Canonical(name string) string {
	return strings.ReplaceAll(strings.TrimSpace(name), "_", "-")
}

// Validate canonicalizes a property name and checks it against the table
// of known CSS properties.
func Validate(name string) (Name, error) {
	c := Canonical(name)
	if _, ok := known[c]; !ok {
		return Name{}, InvalidPropertyError{Name: name}
	}
	return Name{c}, nil
}

// Must is like Validate, but panics for unknown property names.
func Must(name string) Name {
	n, err := Validate(name)
	if err != nil {
		panic("jss.property: " + err.Error())
	}
	return n
}

// Check is Validate returning a result.Result.
func Check(name string) result.Result[Name] {
	n, err := Validate(name)
	return result.Of(n, err)
}

// Known is a predicate: is name, after canonicalization, a known property?
func Known(name string) bool {
	_, ok := known[Canonical(name)]
	return ok
}

// Names returns all known property names, sorted.
func Names() []Name {
	names := make([]Name, 0, len(known))
	for k := range known {
		names = append(names, Name{k})
	}
	sort.Slice(names, func(i, j int) bool { return names[i].name < names[j].name })
	return names
}
