package htmltext

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Text is an immutable string that is safe to emit verbatim into an HTML
// document. It is produced either by escaping (Escape, and the escaping
// boundaries of every operation below) or by an explicit assertion of
// trust (New).
//
// Text is comparable: == compares the underlying text, and Text values
// can be used directly as map keys. String bridges to maps keyed by
// plain strings.
type Text struct {
	s string
}

// New returns a Text built from v without any escaping. It asserts that
// the caller already knows the content is safe; use Escape for untrusted
// input.
func New(v any) Text {
	return Text{s: Stringify(v)}
}

// String returns the underlying text unchanged. This is the emission
// path: fmt and template engines render a Text through it.
func (t Text) String() string {
	return t.s
}

// GoString returns the debug form used by %#v, with the underlying
// text's quoted representation inside a fixed marker.
func (t Text) GoString() string {
	return fmt.Sprintf("<htmltext %q>", t.s)
}

// Len returns the length of the underlying text in bytes.
func (t Text) Len() int {
	return len(t.s)
}

// Equal reports whether v is a Text or a plain string with the same
// underlying text.
func (t Text) Equal(v any) bool {
	switch x := v.(type) {
	case Text:
		return t.s == x.s
	case string:
		return t.s == x
	default:
		return false
	}
}

// Compare compares underlying texts, like strings.Compare.
func (t Text) Compare(other Text) int {
	return strings.Compare(t.s, other.s)
}

// Less reports whether t orders before other.
func (t Text) Less(other Text) bool {
	return t.s < other.s
}

// coerce is the boundary check applied to every operand that must be
// text: plain strings are escaped, Text values are trusted as-is.
func coerce(v any) (string, error) {
	switch x := v.(type) {
	case string:
		return EscapeString(x), nil
	case Text:
		return x.s, nil
	default:
		return "", fmt.Errorf("%w (got %T)", ErrUnsupported, v)
	}
}

// Concat concatenates items into one Text. Plain string items are
// escaped, Text items are trusted; any other item type reports
// ErrUnsupported. With a plain string first this covers the
// "plain + safe" ordering that a method on Text cannot express.
func Concat(items ...any) (Text, error) {
	var b strings.Builder
	for _, v := range items {
		s, err := coerce(v)
		if err != nil {
			return Text{}, err
		}
		b.WriteString(s)
	}
	return Text{s: b.String()}, nil
}

// Concat returns t followed by the given items, escaping plain strings
// and trusting Text values.
func (t Text) Concat(items ...any) (Text, error) {
	rest, err := Concat(items...)
	if err != nil {
		return Text{}, err
	}
	return Text{s: t.s + rest.s}, nil
}

// Repeat returns t repeated n times. Repetition cannot introduce new
// markup sequences, so the result stays trusted. n <= 0 yields the
// empty Text.
func (t Text) Repeat(n int) Text {
	if n <= 0 {
		return Text{}
	}
	return Text{s: strings.Repeat(t.s, n)}
}

// Join concatenates items with t as the separator. Plain string items
// are escaped, Text items are trusted; any other item type reports
// ErrUnsupported.
func (t Text) Join(items ...any) (Text, error) {
	parts := make([]string, 0, len(items))
	for _, v := range items {
		s, err := coerce(v)
		if err != nil {
			return Text{}, err
		}
		parts = append(parts, s)
	}
	return Text{s: strings.Join(parts, t.s)}, nil
}

// Replace returns t with the first n occurrences of old replaced by new
// (all occurrences when n < 0). old and new each may be a plain string
// (escaped first) or a Text (used raw).
func (t Text) Replace(old, new any, n int) (Text, error) {
	o, err := coerce(old)
	if err != nil {
		return Text{}, err
	}
	nw, err := coerce(new)
	if err != nil {
		return Text{}, err
	}
	return Text{s: strings.Replace(t.s, o, nw, n)}, nil
}

// HasPrefix reports whether t begins with v. A plain string needle is
// escaped before the comparison, so a needle containing markup
// characters is matched against its escaped form. That quirk is kept
// for compatibility: HasPrefix(`"`) can only match `&quot;`.
func (t Text) HasPrefix(v any) (bool, error) {
	s, err := coerce(v)
	if err != nil {
		return false, err
	}
	return strings.HasPrefix(t.s, s), nil
}

// HasSuffix reports whether t ends with v, with the same escaped-needle
// quirk as HasPrefix.
func (t Text) HasSuffix(v any) (bool, error) {
	s, err := coerce(v)
	if err != nil {
		return false, err
	}
	return strings.HasSuffix(t.s, s), nil
}

// Lower returns t with all letters lower-cased. Case folding never
// produces markup characters.
func (t Text) Lower() Text {
	return Text{s: strings.ToLower(t.s)}
}

// Upper returns t with all letters upper-cased.
func (t Text) Upper() Text {
	return Text{s: strings.ToUpper(t.s)}
}

// Capitalize returns t with the first rune upper-cased and the rest
// lower-cased.
func (t Text) Capitalize() Text {
	if t.s == "" {
		return t
	}
	r, size := utf8.DecodeRuneInString(t.s)
	return Text{s: string(unicode.ToUpper(r)) + strings.ToLower(t.s[size:])}
}
