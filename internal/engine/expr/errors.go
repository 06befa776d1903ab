package expr

import (
	"errors"
	"fmt"
)

// Sentinel error kinds. Use errors.Is against these.
var (
	ErrInvalidCharacter      = errors.New("expr: invalid character")
	ErrMalformedNumber       = errors.New("expr: malformed number")
	ErrUnexpectedToken       = errors.New("expr: unexpected token")
	ErrUnbalancedParentheses = errors.New("expr: unbalanced parentheses")
	ErrDivisionByZero        = errors.New("expr: division by zero")
	ErrTrailingInput         = errors.New("expr: trailing input")
	ErrTooDeep               = errors.New("expr: nesting too deep")
)

// Error is a classified evaluation failure.
type Error struct {
	Kind   error  // one of the sentinel kinds above
	Pos    int    // byte offset in the input, -1 at end of input
	Detail string // offending text, if any
}

func (e *Error) Error() string {
	switch {
	case e.Pos < 0:
		return fmt.Sprintf("%v at end of input", e.Kind)
	case e.Detail != "":
		return fmt.Sprintf("%v %q at offset %d", e.Kind, e.Detail, e.Pos)
	default:
		return fmt.Sprintf("%v at offset %d", e.Kind, e.Pos)
	}
}

func (e *Error) Unwrap() error { return e.Kind }

func newError(kind error, pos int, detail string) *Error {
	return &Error{Kind: kind, Pos: pos, Detail: detail}
}

var kindNames = []struct {
	kind error
	name string
}{
	{ErrInvalidCharacter, "invalid_character"},
	{ErrMalformedNumber, "malformed_number"},
	{ErrUnexpectedToken, "unexpected_token"},
	{ErrUnbalancedParentheses, "unbalanced_parentheses"},
	{ErrDivisionByZero, "division_by_zero"},
	{ErrTrailingInput, "trailing_input"},
	{ErrTooDeep, "nesting_too_deep"},
}

// Kind returns a stable snake_case name for an evaluator error, suitable for
// JSON payloads and metric labels. Unknown errors map to "unknown".
func Kind(err error) string {
	for _, k := range kindNames {
		if errors.Is(err, k.kind) {
			return k.name
		}
	}
	return "unknown"
}
