// Package htmltext implements a safe-text abstraction for generating HTML
// output without injection bugs.
//
// The package is built around three pieces:
//   - Text: an immutable string wrapper asserting its content is safe to
//     emit verbatim into an HTML document.
//   - a lazy quoting proxy that defers escaping until fmt actually renders
//     a substitution argument.
//   - Builder: an append-only fragment buffer with a single finalization
//     pass.
//
// # Safety Invariant
//
// A Text value, inserted verbatim into an HTML document, is not
// interpretable as unintended markup: the four markup-significant
// characters &, <, >, and " have already been replaced by entities
// wherever required, or the value was deliberately built from trusted
// content via New. Every operation that produces a new Text preserves
// this invariant: plain string operands are escaped at the boundary,
// Text operands are trusted as-is.
//
// The apostrophe (') is never escaped. This is a known limitation kept
// for compatibility, not a bug.
//
// # Escaping
//
// Fixed entity table, not configurable:
//
//	&  →  &amp;
//	<  →  &lt;
//	>  →  &gt;
//	"  →  &quot;
//
// EscapeString returns its input unchanged (no copy) when no character
// needs replacement; callers may rely on this to avoid allocation on the
// common already-clean path.
//
// # Substitution
//
// Text supports three substitution mechanisms, all escaping-aware:
//   - Format: fmt.Sprintf verbs, positional arguments.
//   - FormatNamed: %(key)s placeholders resolved from a map.
//   - Fill: {}, {0}, {name}, and {name[key]} placeholders.
//
// fmt has no escaping extension point, so Format interposes a proxy that
// implements fmt.Formatter and fmt.Stringer: plain strings are escaped,
// Text values pass through raw, numeric values pass through untouched,
// and everything else is escaped at the moment fmt renders it. Values
// looked up through placeholder item paths re-enter the same rule, so
// nested structures are protected recursively.
//
// # Concurrency
//
// All operations are pure transformations over immutable text except
// Builder appends. A Builder is exclusively owned by its creator and is
// not safe for concurrent use without external synchronization.
package htmltext
