package htmltext

import "strings"

const markupChars = "&<>\""

// EscapeString replaces the four markup-significant characters with their
// entity equivalents. If no character needs replacement the input string
// is returned unchanged, with no copy and no allocation.
//
// The apostrophe is intentionally not escaped.
func EscapeString(s string) string {
	i := strings.IndexAny(s, markupChars)
	if i < 0 {
		return s
	}
	var b strings.Builder
	// Each replacement grows the string by at most 5 bytes.
	b.Grow(len(s) + 16)
	b.WriteString(s[:i])
	for ; i < len(s); i++ {
		switch s[i] {
		case '&':
			b.WriteString("&amp;")
		case '<':
			b.WriteString("&lt;")
		case '>':
			b.WriteString("&gt;")
		case '"':
			b.WriteString("&quot;")
		default:
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

// Escape returns a Text built from v. If v is already a Text it is
// returned unchanged; otherwise v is stringified and its markup
// characters are escaped.
func Escape(v any) Text {
	if t, ok := v.(Text); ok {
		return t
	}
	return Text{s: EscapeString(Stringify(v))}
}
