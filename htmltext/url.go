package htmltext

import (
	"sort"
	"strings"
)

// urlSafe reports whether c needs no percent escape: the RFC 3986
// unreserved characters plus '/', matching the original quoting rules
// this package is compatible with. net/url's PathEscape and QueryEscape
// each use a different safe set (QueryEscape also turns spaces into
// '+'), so the byte loop is spelled out here.
func urlSafe(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	case c == '_' || c == '.' || c == '-' || c == '~' || c == '/':
		return true
	}
	return false
}

const upperhex = "0123456789ABCDEF"

func quoteURL(s string) string {
	n := 0
	for i := 0; i < len(s); i++ {
		if !urlSafe(s[i]) {
			n++
		}
	}
	if n == 0 {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 2*n)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if urlSafe(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&0xf])
	}
	return b.String()
}

// URLQuote percent-quotes v for use as part of a URL. A nil value
// reports ErrNilValue; use URLQuoteFallback when a default exists.
//
// URLs usually end up inside attribute values and still need HTML
// escaping on top of percent quoting; URLWithQuery takes care of both.
func URLQuote(v any) (string, error) {
	if v == nil {
		return "", ErrNilValue
	}
	return quoteURL(Stringify(v)), nil
}

// URLQuoteFallback percent-quotes v, returning fallback unquoted when v
// is nil.
func URLQuoteFallback(v any, fallback string) string {
	if v == nil {
		return fallback
	}
	return quoteURL(Stringify(v))
}

// URLWithQuery builds a quoted URL from a path and query parameters.
// Parameters are sorted by name for deterministic output, each name and
// value percent-quoted, and the assembled query string is escaped into
// the trusted result. The '&' separators therefore come out as &amp;,
// which is the correct form for a URL embedded in an HTML attribute.
func URLWithQuery(path any, params map[string]any) (Text, error) {
	quoted, err := URLQuote(path)
	if err != nil {
		return Text{}, err
	}
	result := Text{s: quoted}
	if len(params) == 0 {
		return result, nil
	}
	names := make([]string, 0, len(params))
	for name := range params {
		names = append(names, name)
	}
	sort.Strings(names)
	pairs := make([]string, 0, len(names))
	for _, name := range names {
		value, err := URLQuote(params[name])
		if err != nil {
			return Text{}, err
		}
		pairs = append(pairs, quoteURL(name)+"="+value)
	}
	return result.Concat("?" + strings.Join(pairs, "&"))
}
