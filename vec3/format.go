package vec3

import (
	"fmt"
	"io"
)

// Format implements fmt.Formatter.
//
// The verb, flags, width and precision are applied to each component in turn,
// so %x renders every component in lower hex, %E every component in upper
// scientific notation, and so on. %s is treated as %v.
func (v Vector3[T]) Format(f fmt.State, verb rune) {
	if verb == 's' {
		verb = 'v'
	}
	directive := fmt.FormatString(f, verb)

	_, _ = io.WriteString(f, "[")
	_, _ = fmt.Fprintf(f, directive, v.X)
	_, _ = io.WriteString(f, ", ")
	_, _ = fmt.Fprintf(f, directive, v.Y)
	_, _ = io.WriteString(f, ", ")
	_, _ = fmt.Fprintf(f, directive, v.Z)
	_, _ = io.WriteString(f, "]")
}

// String renders v as "[x, y, z]" using %v for each component.
func (v Vector3[T]) String() string {
	return fmt.Sprintf("%v", v)
}
