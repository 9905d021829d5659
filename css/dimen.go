package css

import (
	"math"

	"github.com/npillmayer/tyse/core/dimen"
)

// Dimen converts a typesetter dimension to a numeric value in points,
// rounded to 1/10000 pt.
//
//	Dimen(10 * dimen.PT)  // => 10pt
func Dimen(d dimen.DU) Value {
	pt := float64(d) / float64(dimen.PT)
	return Numeric(math.Round(pt*1e4)/1e4, PT)
}

// Dimens converts a list of typesetter dimensions, joined by spaces.
//
//	Dimens(dimen.PT, 2*dimen.PT)  // => 1pt 2pt
func Dimens(ds ...dimen.DU) Value {
	values := make([]Value, len(ds))
	for i, d := range ds {
		values[i] = Dimen(d)
	}
	return Spaced(values...)
}
