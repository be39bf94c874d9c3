package htmltext

import (
	"fmt"
	"strconv"
	"strings"
)

// Fill substitutes {...} style placeholders into t and wraps the result
// as trusted. Positional arguments come from args ({} counts
// automatically, {0} selects explicitly), named arguments from fields.
// A placeholder may index into its value with one or more [key]
// segments, as in {user[name]}; each looked-up item re-enters the
// quoting rule, so nested structures stay protected. An optional !r
// conversion renders the quoted structured form.
//
// {{ and }} emit literal braces. Malformed placeholders, missing
// arguments, and failed lookups return a *FormatError.
func (t Text) Fill(args []any, fields map[string]any) (Text, error) {
	var b strings.Builder
	s := t.s
	auto := 0
	manual := false
	for i := 0; i < len(s); {
		switch s[i] {
		case '{':
			if i+1 < len(s) && s[i+1] == '{' {
				b.WriteByte('{')
				i += 2
				continue
			}
			end := strings.IndexByte(s[i:], '}')
			if end < 0 {
				return Text{}, formatErr(s, i, "unclosed placeholder")
			}
			out, err := t.resolveField(s[i+1:i+end], i, args, fields, &auto, &manual)
			if err != nil {
				return Text{}, err
			}
			b.WriteString(out)
			i += end + 1
		case '}':
			if i+1 < len(s) && s[i+1] == '}' {
				b.WriteByte('}')
				i += 2
				continue
			}
			return Text{}, formatErr(s, i, "single '}' in pattern")
		default:
			b.WriteByte(s[i])
			i++
		}
	}
	return Text{s: b.String()}, nil
}

func (t Text) resolveField(field string, pos int, args []any, fields map[string]any, auto *int, manual *bool) (string, error) {
	conv := byte('s')
	if n := strings.IndexByte(field, '!'); n >= 0 {
		switch field[n:] {
		case "!s":
			conv = 's'
		case "!r":
			conv = 'r'
		default:
			return "", formatErr(t.s, pos, "unknown conversion %q", field[n:])
		}
		field = field[:n]
	}
	if strings.IndexByte(field, ':') >= 0 {
		return "", formatErr(t.s, pos, "format specifications are not supported")
	}

	base := field
	var path string
	if n := strings.IndexByte(field, '['); n >= 0 {
		base, path = field[:n], field[n:]
	}

	var v any
	switch {
	case base == "":
		if *manual {
			return "", formatErr(t.s, pos, "cannot mix automatic and manual field numbering")
		}
		if *auto >= len(args) {
			return "", formatErr(t.s, pos, "automatic placeholder %d out of range", *auto)
		}
		v = args[*auto]
		*auto++
	case isDigits(base):
		*manual = true
		if *auto > 0 {
			return "", formatErr(t.s, pos, "cannot mix automatic and manual field numbering")
		}
		n, _ := strconv.Atoi(base)
		if n >= len(args) {
			return "", formatErr(t.s, pos, "placeholder %d out of range", n)
		}
		v = args[n]
	default:
		x, ok := fields[base]
		if !ok {
			return "", formatErr(t.s, pos, "missing field %q", base)
		}
		v = x
	}

	for path != "" {
		if path[0] != '[' {
			return "", formatErr(t.s, pos, "malformed item path %q", field)
		}
		end := strings.IndexByte(path, ']')
		if end < 0 {
			return "", formatErr(t.s, pos, "unclosed item path in %q", field)
		}
		item, err := lookupItem(v, path[1:end])
		if err != nil {
			return "", formatErr(t.s, pos, "%v", err)
		}
		v = item
		path = path[end+1:]
	}

	if conv == 'r' {
		return EscapeString(strconv.Quote(Stringify(v))), nil
	}
	if x, ok := v.(Text); ok {
		return x.s, nil
	}
	return EscapeString(Stringify(v)), nil
}

func lookupItem(container any, key string) (any, error) {
	switch c := container.(type) {
	case map[string]any:
		v, ok := c[key]
		if !ok {
			return nil, fmt.Errorf("missing item %q", key)
		}
		return v, nil
	case map[string]string:
		v, ok := c[key]
		if !ok {
			return nil, fmt.Errorf("missing item %q", key)
		}
		return v, nil
	case []any:
		n, err := strconv.Atoi(key)
		if err != nil || n < 0 || n >= len(c) {
			return nil, fmt.Errorf("item index %q out of range", key)
		}
		return c[n], nil
	case []string:
		n, err := strconv.Atoi(key)
		if err != nil || n < 0 || n >= len(c) {
			return nil, fmt.Errorf("item index %q out of range", key)
		}
		return c[n], nil
	default:
		return nil, fmt.Errorf("cannot index into %T", container)
	}
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
