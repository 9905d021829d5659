package css

import (
	"errors"
	"fmt"
)

// Unit is a CSS unit of measure for numeric values.
type Unit uint8

// Units supported for numeric values.
const (
	Unitless Unit = iota // z-index, opacity, line-height, …
	PX                   // pixels (1px = 1/96th of 1in)
	Q                    // quarter-millimeters
	MM                   // millimeters
	CM                   // centimeters
	IN                   // inches (1in = 96px = 2.54cm)
	PT                   // points (1pt = 1/72 of 1in)
	PC                   // picas (1pc = 12pt)
	EM                   // relative to the font-size of the element
	EX                   // relative to the x-height of the current font
	CH                   // relative to the width of the "0"
	REM                  // relative to font-size of the root element
	VW                   // 1% of the width of the viewport
	VH                   // 1% of the height of the viewport
	VMIN                 // 1% of the viewport's smaller dimension
	VMAX                 // 1% of the viewport's larger dimension
	Percentage           // %
	DEG                  // degrees
	RAD                  // radians
	GRAD                 // gradians
	TURN                 // full turns
	S                    // seconds
	MS                   // milliseconds
	unitCount
)

var unitNames = [unitCount]string{
	"", "px", "q", "mm", "cm", "in", "pt", "pc", "em", "ex", "ch", "rem",
	"vw", "vh", "vmin", "vmax", "%", "deg", "rad", "grad", "turn", "s", "ms",
}

// ErrUnknownUnit is returned by ParseUnit for unit names outside the
// enumerated set.
var ErrUnknownUnit = errors.New("unknown CSS unit")

func (u Unit) String() string {
	if !u.Valid() {
		return fmt.Sprintf("Unit(%d)", uint8(u))
	}
	return unitNames[u]
}

// Valid is true for all enumerated units.
func (u Unit) Valid() bool {
	return u < unitCount
}

// ParseUnit finds the unit for a unit name, e.g. "px" or "%". The empty
// string denotes Unitless.
func ParseUnit(s string) (Unit, error) {
	for u, name := range unitNames {
		if name == s {
			return Unit(u), nil
		}
	}
	return Unitless, fmt.Errorf("%w: %q", ErrUnknownUnit, s)
}

// --- Unit helpers ----------------------------------------------------------

// Number is the constraint for numeric arguments of the unit helpers.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// units creates a numeric value for each x, all of unit u, joined by spaces:
//
//	units(PX, 10, 12)  // => 10px 12px
func units[N Number](u Unit, xs []N) Value {
	values := make([]Value, len(xs))
	for i, x := range xs {
		values[i] = Numeric(float64(x), u)
	}
	return Spaced(values...)
}

// Px appends px to each value.
//
//	Px(10)     // => 10px
//	Px(10, 12) // => 10px 12px
func Px[N Number](xs ...N) Value { return units(PX, xs) }

// Qm appends q (quarter-millimeters) to each value.
func Qm[N Number](xs ...N) Value { return units(Q, xs) }

// Mm appends mm to each value.
func Mm[N Number](xs ...N) Value { return units(MM, xs) }

// Cm appends cm to each value.
func Cm[N Number](xs ...N) Value { return units(CM, xs) }

// In appends in (inches) to each value.
func In[N Number](xs ...N) Value { return units(IN, xs) }

// Pt appends pt to each value.
func Pt[N Number](xs ...N) Value { return units(PT, xs) }

// Pc appends pc to each value.
func Pc[N Number](xs ...N) Value { return units(PC, xs) }

// Em appends em to each value.
func Em[N Number](xs ...N) Value { return units(EM, xs) }

// Ex appends ex to each value.
func Ex[N Number](xs ...N) Value { return units(EX, xs) }

// Ch appends ch to each value.
func Ch[N Number](xs ...N) Value { return units(CH, xs) }

// Rem appends rem to each value.
func Rem[N Number](xs ...N) Value { return units(REM, xs) }

// Vw appends vw to each value.
func Vw[N Number](xs ...N) Value { return units(VW, xs) }

// Vh appends vh to each value.
func Vh[N Number](xs ...N) Value { return units(VH, xs) }

// Vmin appends vmin to each value.
func Vmin[N Number](xs ...N) Value { return units(VMIN, xs) }

// Vmax appends vmax to each value.
func Vmax[N Number](xs ...N) Value { return units(VMAX, xs) }

// Percent appends % to each value.
//
//	Percent(100) // => 100%
func Percent[N Number](xs ...N) Value { return units(Percentage, xs) }

// Deg appends deg to each value.
func Deg[N Number](xs ...N) Value { return units(DEG, xs) }

// Rad appends rad to each value.
func Rad[N Number](xs ...N) Value { return units(RAD, xs) }

// Grad appends grad to each value.
func Grad[N Number](xs ...N) Value { return units(GRAD, xs) }

// Turn appends turn to each value.
func Turn[N Number](xs ...N) Value { return units(TURN, xs) }

// Sec appends s to each value.
func Sec[N Number](xs ...N) Value { return units(S, xs) }

// Ms appends ms to each value.
func Ms[N Number](xs ...N) Value { return units(MS, xs) }
