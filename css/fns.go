package css

import (
	"fmt"
	"strings"
)

// Func formats a CSS function call with comma-separated arguments.
// Arguments are formatted with fmt; values print as they do in CSS.
//
//	Func("translate", Px(-35), 0)  // => translate(-35px, 0)
func Func(name string, args ...interface{}) Value {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = fmt.Sprint(a)
	}
	return Raw(name + "(" + strings.Join(parts, ", ") + ")")
}

// RGB is the rgb() color function.
func RGB(r, g, b interface{}) Value {
	return Func("rgb", r, g, b)
}

// RGBA is the rgba() color function.
func RGBA(r, g, b, a interface{}) Value {
	return Func("rgba", r, g, b, a)
}
