package htmltext

import "fmt"

// Stringify converts an arbitrary value to its textual representation.
//
// Strings and Text values are returned without copying. Values with a
// textual-conversion capability (fmt.Stringer, error) are asked for it;
// anything else falls back to fmt.Sprint's structured rendering.
//
// A String or Error method supplied by the caller may run arbitrary
// logic; if it panics, the panic propagates.
func Stringify(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case Text:
		return x.s
	case fmt.Stringer:
		return x.String()
	case error:
		return x.Error()
	default:
		return fmt.Sprint(v)
	}
}
