package expr

import (
	"fmt"
	"strconv"
	"unicode"
	"unicode/utf8"
)

// TokenKind identifies the lexical class of a Token.
type TokenKind int

const (
	Number TokenKind = iota
	Operator
	LParen
	RParen
)

func (k TokenKind) String() string {
	switch k {
	case Number:
		return "number"
	case Operator:
		return "operator"
	case LParen:
		return "lparen"
	case RParen:
		return "rparen"
	default:
		return fmt.Sprintf("TokenKind(%d)", int(k))
	}
}

// Token is a single lexical unit. Value is set for Number, Op for Operator.
type Token struct {
	Kind  TokenKind
	Value float64
	Op    byte
	Pos   int // byte offset in the input
}

func (t Token) String() string {
	switch t.Kind {
	case Number:
		return strconv.FormatFloat(t.Value, 'g', -1, 64)
	case Operator:
		return string(t.Op)
	case LParen:
		return "("
	case RParen:
		return ")"
	default:
		return t.Kind.String()
	}
}

// Tokenize scans text left to right into tokens. Any character outside
// digits, '.', whitespace, "+-*/" and parentheses aborts the whole scan; no
// partial token list is ever returned.
func Tokenize(text string) ([]Token, error) {
	tokens := make([]Token, 0, len(text)/2+1)

	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])

		switch {
		case unicode.IsSpace(r):
			i += size

		case isDigit(text[i]):
			start := i
			for i < len(text) && (isDigit(text[i]) || text[i] == '.') {
				i++
			}
			literal := text[start:i]
			v, err := strconv.ParseFloat(literal, 64)
			if err != nil {
				return nil, newError(ErrMalformedNumber, start, literal)
			}
			tokens = append(tokens, Token{Kind: Number, Value: v, Pos: start})

		case r == '+' || r == '-' || r == '*' || r == '/':
			tokens = append(tokens, Token{Kind: Operator, Op: text[i], Pos: i})
			i++

		case r == '(':
			tokens = append(tokens, Token{Kind: LParen, Pos: i})
			i++

		case r == ')':
			tokens = append(tokens, Token{Kind: RParen, Pos: i})
			i++

		default:
			return nil, newError(ErrInvalidCharacter, i, string(r))
		}
	}

	return tokens, nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
