package htmltext

import (
	"fmt"
	"strconv"
	"strings"
)

// Format substitutes args into t using fmt.Sprintf verbs and wraps the
// result as trusted. Every argument passes through the quoting rule
// first: plain strings are escaped, Text values pass through raw,
// numeric values keep their type so numeric verbs work, and everything
// else escapes lazily when fmt renders it.
//
// Verb/argument mismatches surface as fmt's usual %! diagnostics in the
// output, as they do everywhere else in Go.
func (t Text) Format(args ...any) Text {
	wrapped := make([]any, len(args))
	for i, a := range args {
		wrapped[i] = wrapArg(a)
	}
	return Text{s: fmt.Sprintf(t.s, wrapped...)}
}

// FormatNamed substitutes %(key)s style placeholders from values and
// wraps the result as trusted. Supported conversions:
//
//	s        textual; escaped unless the value is a Text
//	r, q     quoted structured form, escaped after quoting
//	d b o x X   integer verbs, numeric values only
//	f e E g G   float verbs, numeric values only
//
// Optional flags, width, and precision are accepted between the closing
// parenthesis and the conversion, as in %(price)8.2f. %% emits a
// literal percent. A missing key or malformed placeholder returns a
// *FormatError.
func (t Text) FormatNamed(values map[string]any) (Text, error) {
	var b strings.Builder
	s := t.s
	for i := 0; i < len(s); {
		if s[i] != '%' {
			b.WriteByte(s[i])
			i++
			continue
		}
		if i+1 < len(s) && s[i+1] == '%' {
			b.WriteByte('%')
			i += 2
			continue
		}
		if i+1 >= len(s) || s[i+1] != '(' {
			return Text{}, formatErr(s, i, "expected '(' after '%%'")
		}
		end := strings.IndexByte(s[i+2:], ')')
		if end < 0 {
			return Text{}, formatErr(s, i, "unclosed placeholder key")
		}
		key := s[i+2 : i+2+end]
		j := i + 2 + end + 1

		// Optional flags, width, precision.
		start := j
		for j < len(s) && strings.IndexByte("#0- +.0123456789", s[j]) >= 0 {
			j++
		}
		if j >= len(s) {
			return Text{}, formatErr(s, i, "placeholder %%(%s) has no conversion", key)
		}
		spec := s[start:j]
		verb := s[j]
		j++

		v, ok := values[key]
		if !ok {
			return Text{}, formatErr(s, i, "missing key %q", key)
		}
		out, err := namedConversion(s, i, key, spec, verb, v)
		if err != nil {
			return Text{}, err
		}
		b.WriteString(out)
		i = j
	}
	return Text{s: b.String()}, nil
}

func namedConversion(pattern string, pos int, key, spec string, verb byte, v any) (string, error) {
	switch verb {
	case 's':
		var out string
		if t, ok := v.(Text); ok {
			out = t.s
		} else {
			out = EscapeString(Stringify(v))
		}
		if spec == "" {
			return out, nil
		}
		return fmt.Sprintf("%"+spec+"s", out), nil
	case 'r', 'q':
		// Structured form: quote first, then escape, so the wrapping
		// quote characters are neutralized too.
		out := EscapeString(strconv.Quote(Stringify(v)))
		if spec == "" {
			return out, nil
		}
		return fmt.Sprintf("%"+spec+"s", out), nil
	case 'd', 'b', 'o', 'x', 'X', 'f', 'e', 'E', 'g', 'G':
		// Numeric verbs render digits and sign characters only, but a
		// mismatched argument would make fmt embed the raw value in a
		// %! diagnostic, so the type is checked here.
		if !isNumeric(v) {
			return "", formatErr(pattern, pos, "conversion %%(%s)%c requires a number, got %T", key, verb, v)
		}
		return fmt.Sprintf("%"+spec+string(verb), v), nil
	default:
		return "", formatErr(pattern, pos, "unsupported conversion %q", verb)
	}
}

func isNumeric(v any) bool {
	switch v.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, uintptr,
		float32, float64:
		return true
	default:
		return false
	}
}
