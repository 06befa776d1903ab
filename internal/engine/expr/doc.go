// Package expr evaluates restricted arithmetic expressions without any dynamic
// code execution.
//
// Grammar (standard precedence, left-associative):
//
//	expression := term (('+' | '-') term)*
//	term       := factor (('*' | '/') factor)*
//	factor     := NUMBER | ('+' | '-') factor | '(' expression ')'
//
// Evaluation is split into two passes:
//   - Tokenize: text to Number/Operator/LParen/RParen tokens, fail-fast
//   - Evaluate: recursive descent over the tokens with a cursor index
//
// Every failure is returned as an *Error wrapping one of the sentinel kinds
// (ErrInvalidCharacter, ErrMalformedNumber, ErrUnexpectedToken,
// ErrUnbalancedParentheses, ErrDivisionByZero, ErrTrailingInput). Division by
// an exact zero is an error, never Inf or NaN. The evaluator must consume the
// whole token sequence: "3 4" is ErrTrailingInput, not 3.
//
// The package holds no state and is safe for concurrent use.
//
// Example Usage:
//
//	v, err := expr.Evaluate("2 * (3 + 4)")
//	if errors.Is(err, expr.ErrDivisionByZero) {
//		// ...
//	}
package expr
