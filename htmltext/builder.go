package htmltext

import (
	"fmt"
	"strings"
)

// Builder collects output fragments for template rendering. Fragments
// are validated at append time, so in HTML mode every stored fragment
// already satisfies the safety invariant. Concatenation is deferred to
// a single pass at finalization, avoiding the repeated allocations of
// incremental immutable-string concatenation.
//
// A Builder is not safe for concurrent use; callers needing concurrent
// accumulation must shard and merge, or serialize access.
type Builder struct {
	html  bool
	parts []string
}

// NewBuilder returns an empty Builder. The mode is fixed for the
// builder's lifetime: in HTML mode appended values are escaped, in
// plain mode they are stringified only.
func NewBuilder(html bool) *Builder {
	return &Builder{html: html}
}

// Append adds one value to the buffer. nil is a no-op. A Text is
// stored raw; anything else is stringified and, in HTML mode, escaped.
// If a caller-supplied String method panics, nothing is appended.
func (b *Builder) Append(v any) {
	if v == nil {
		return
	}
	if t, ok := v.(Text); ok {
		b.parts = append(b.parts, t.s)
		return
	}
	s := Stringify(v)
	if b.html {
		s = EscapeString(s)
	}
	b.parts = append(b.parts, s)
}

// Add is Append returning the receiver, for chaining.
func (b *Builder) Add(v any) *Builder {
	b.Append(v)
	return b
}

// Len returns the number of buffered fragments.
func (b *Builder) Len() int {
	return len(b.parts)
}

// String concatenates all fragments in append order with no separator.
// It does not drain the buffer; the builder stays usable.
func (b *Builder) String() string {
	switch len(b.parts) {
	case 0:
		return ""
	case 1:
		return b.parts[0]
	}
	n := 0
	for _, p := range b.parts {
		n += len(p)
	}
	var sb strings.Builder
	sb.Grow(n)
	for _, p := range b.parts {
		sb.WriteString(p)
	}
	return sb.String()
}

// Value returns the accumulated output as trusted Text. Every fragment
// was individually escaped or trusted at append time, so the
// concatenation is safe to wrap. On a plain-mode builder Value returns
// ErrPlainBuilder; use String instead.
func (b *Builder) Value() (Text, error) {
	if !b.html {
		return Text{}, ErrPlainBuilder
	}
	return Text{s: b.String()}, nil
}

// GoString returns a debug form with the buffered fragment count.
func (b *Builder) GoString() string {
	return fmt.Sprintf("<htmltext.Builder: %d chunks>", len(b.parts))
}
