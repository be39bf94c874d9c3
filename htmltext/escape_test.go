package htmltext

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	markup = `<>&"`
	quoted = "&lt;&gt;&amp;&quot;"
)

func TestEscapeString(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"clean", "hello world", "hello world"},
		{"all four", markup, quoted},
		{"mixed", `a&b<c>d"e`, "a&amp;b&lt;c&gt;d&quot;e"},
		{"amp first", "&lt;", "&amp;lt;"},
		{"apostrophe untouched", "it's", "it's"},
		{"unicode untouched", "héllo ሴ", "héllo ሴ"},
		{"only markup", "<<>>", "&lt;&lt;&gt;&gt;"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EscapeString(tt.input))
		})
	}
}

func TestEscapeStringIdentity(t *testing.T) {
	// Clean input comes back without copying: same value and zero
	// allocations.
	in := "no markup in here"
	assert.Equal(t, in, EscapeString(in))

	allocs := testing.AllocsPerRun(100, func() {
		_ = EscapeString(in)
	})
	assert.Zero(t, allocs)
}

func TestEscape(t *testing.T) {
	t.Run("escapes plain strings", func(t *testing.T) {
		assert.Equal(t, quoted, Escape(markup).String())
	})

	t.Run("passes Text through unchanged", func(t *testing.T) {
		safe := New("<b>")
		assert.Equal(t, safe, Escape(safe))
	})

	t.Run("idempotent through the passthrough", func(t *testing.T) {
		assert.Equal(t, quoted, Escape(Escape(markup)).String())
	})

	t.Run("stringifies non-text values", func(t *testing.T) {
		assert.Equal(t, "123", Escape(123).String())
		assert.Equal(t, "&lt;nil&gt;", Escape(nil).String())
	})
}

type wrapper struct{ s string }

func (w wrapper) String() string { return w.s }

type broken struct{}

func (broken) String() string { panic("eieee") }

func TestStringify(t *testing.T) {
	t.Run("string unchanged", func(t *testing.T) {
		assert.Equal(t, markup, Stringify(markup))
	})

	t.Run("string needs no allocation", func(t *testing.T) {
		s := "some text"
		allocs := testing.AllocsPerRun(100, func() {
			_ = Stringify(s)
		})
		assert.Zero(t, allocs)
	})

	t.Run("Text unwraps", func(t *testing.T) {
		assert.Equal(t, "<b>", Stringify(New("<b>")))
	})

	t.Run("uses Stringer", func(t *testing.T) {
		assert.Equal(t, markup, Stringify(wrapper{markup}))
	})

	t.Run("uses Error", func(t *testing.T) {
		assert.Equal(t, "boom", Stringify(errors.New("boom")))
	})

	t.Run("structured fallback", func(t *testing.T) {
		assert.Equal(t, "[1 2]", Stringify([]int{1, 2}))
		assert.Equal(t, "map[a:1]", Stringify(map[string]int{"a": 1}))
	})

	t.Run("panicking Stringer propagates", func(t *testing.T) {
		require.Panics(t, func() {
			Stringify(broken{})
		})
	})
}

func TestEscapeAndStringifyTogether(t *testing.T) {
	// The two-step pipeline used by the lazy quoter.
	assert.Equal(t, quoted, EscapeString(Stringify(wrapper{markup})))
}

func ExampleEscape() {
	fmt.Println(Escape(`say "hello" & <goodbye>`))
	// Output: say &quot;hello&quot; &amp; &lt;goodbye&gt;
}

func BenchmarkEscapeStringClean(b *testing.B) {
	s := "a perfectly ordinary sentence with no markup at all"
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = EscapeString(s)
	}
}

func BenchmarkEscapeStringDirty(b *testing.B) {
	s := `<p class="intro">fish & chips</p>`
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = EscapeString(s)
	}
}
