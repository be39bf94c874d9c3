package htmltext

import "strings"

// Attr is one attribute of a generated tag. A nil Value suppresses the
// attribute; Valueless renders it as name="name".
type Attr struct {
	Name  string
	Value any
}

type valuelessAttr struct{}

// Valueless marks an attribute that has no meaningful value, such as
// checked or selected. It renders as name="name".
var Valueless any = valuelessAttr{}

// Tag builds an opening HTML tag with escaped attribute values.
func Tag(name string, attrs ...Attr) Text {
	return buildTag(name, ">", attrs)
}

// TagSelfClosing builds a self-closed tag in XML form (<name ... />).
func TagSelfClosing(name string, attrs ...Attr) Text {
	return buildTag(name, " />", attrs)
}

func buildTag(name, end string, attrs []Attr) Text {
	var b strings.Builder
	b.WriteByte('<')
	b.WriteString(name)
	for _, a := range attrs {
		val := a.Value
		if val == Valueless {
			val = a.Name
		}
		if val == nil {
			continue
		}
		b.WriteByte(' ')
		b.WriteString(a.Name)
		b.WriteString(`="`)
		b.WriteString(Escape(val).s)
		b.WriteByte('"')
	}
	b.WriteString(end)
	return Text{s: b.String()}
}

// Href builds an anchor element around text, escaping both the URL
// attribute and the link text.
func Href(url, text any, attrs ...Attr) Text {
	all := make([]Attr, 0, len(attrs)+1)
	all = append(all, Attr{Name: "href", Value: url})
	all = append(all, attrs...)
	open := buildTag("a", ">", all)
	return Text{s: open.s + Escape(text).s + "</a>"}
}

// NL2BR escapes v and inserts <br /> tags before newline characters.
func NL2BR(v any) Text {
	return Text{s: strings.ReplaceAll(Escape(v).s, "\n", "<br />\n")}
}

// JSEscape escapes Javascript code for embedding inside a <script>
// element. The ETAGO sequence "</" would end the script element
// prematurely; it is assumed to occur inside a string literal and gets
// a backslash escape.
func JSEscape(v any) Text {
	return Text{s: strings.ReplaceAll(Stringify(v), "</", `<\/`)}
}
