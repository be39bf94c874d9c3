package htmltext

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupported reports an operand that is neither string nor Text.
	// It is a sentinel rather than a hard failure so that expression
	// evaluators can detect it with errors.Is and try another strategy.
	ErrUnsupported = errors.New("htmltext: operand must be string or htmltext.Text")

	// ErrPlainBuilder reports a Value call on a builder created in plain
	// mode; plain output carries no safety claim, use String instead.
	ErrPlainBuilder = errors.New("htmltext: builder is in plain mode")

	// ErrNilValue reports a nil value passed to URLQuote with no fallback.
	ErrNilValue = errors.New("htmltext: nil value and no fallback")
)

// FormatError reports a substitution failure with its location in the
// pattern.
type FormatError struct {
	Pattern string
	Pos     int
	Message string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("htmltext: %s at offset %d in %q", e.Message, e.Pos, e.Pattern)
}

func formatErr(pattern string, pos int, format string, args ...any) *FormatError {
	return &FormatError{
		Pattern: pattern,
		Pos:     pos,
		Message: fmt.Sprintf(format, args...),
	}
}
