package htmltext

import (
	"fmt"
	"io"
	"strconv"
	"unicode/utf8"
)

// wrapArg prepares one substitution argument for an escaping-unaware
// formatting engine:
//
//  1. Text unwraps to its underlying string, raw. The unwrap is final.
//  2. Plain strings are escaped eagerly; they need no laziness.
//  3. Numeric and boolean values pass through untouched. They cannot
//     contain markup characters, and keeping the original value keeps
//     numeric fmt verbs working.
//  4. Everything else is wrapped in a quoter, which escapes at the
//     moment the engine renders it.
func wrapArg(v any) any {
	switch x := v.(type) {
	case Text:
		return x.s
	case string:
		return EscapeString(x)
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, uintptr,
		float32, float64, complex64, complex128, bool:
		return v
	default:
		return quoter{v: v}
	}
}

// quoter is the lazy escaping proxy. fmt has no escaping extension
// point, but it does call an argument's Format, String, and GoString
// capabilities; quoter interposes on exactly those and escapes whatever
// the wrapped value renders to. It holds the value for a single
// substitution call and never escapes at construction time.
type quoter struct {
	v any
}

// String renders the wrapped value as text and escapes the result.
func (q quoter) String() string {
	return EscapeString(Stringify(q.v))
}

// GoString renders the wrapped value's structured representation and
// escapes the result.
func (q quoter) GoString() string {
	return EscapeString(fmt.Sprintf("%#v", q.v))
}

// Format implements fmt.Formatter. It rebuilds the original directive,
// renders the wrapped value with it, and writes the escaped result, so
// every verb applied to the proxy emits safe text.
func (q quoter) Format(f fmt.State, verb rune) {
	spec := make([]byte, 0, 8)
	spec = append(spec, '%')
	for _, flag := range "+-# 0" {
		if f.Flag(int(flag)) {
			spec = append(spec, byte(flag))
		}
	}
	if w, ok := f.Width(); ok {
		spec = strconv.AppendInt(spec, int64(w), 10)
	}
	if p, ok := f.Precision(); ok {
		spec = append(spec, '.')
		spec = strconv.AppendInt(spec, int64(p), 10)
	}
	spec = utf8.AppendRune(spec, verb)
	io.WriteString(f, EscapeString(fmt.Sprintf(string(spec), q.v)))
}
