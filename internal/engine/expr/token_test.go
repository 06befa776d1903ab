package expr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	t.Run("numbers operators and parens", func(t *testing.T) {
		tokens, err := Tokenize(" 12.5*(3 - 4)/2 ")
		require.NoError(t, err)

		kinds := make([]TokenKind, len(tokens))
		for i, tok := range tokens {
			kinds[i] = tok.Kind
		}
		assert.Equal(t, []TokenKind{Number, Operator, LParen, Number, Operator, Number, RParen, Operator, Number}, kinds)
		assert.Equal(t, 12.5, tokens[0].Value)
		assert.Equal(t, byte('*'), tokens[1].Op)
		assert.Equal(t, 1, tokens[0].Pos)
		assert.Equal(t, byte('/'), tokens[7].Op)
	})

	t.Run("empty input", func(t *testing.T) {
		tokens, err := Tokenize("")
		require.NoError(t, err)
		assert.Empty(t, tokens)
	})

	t.Run("trailing decimal point", func(t *testing.T) {
		tokens, err := Tokenize("7.")
		require.NoError(t, err)
		require.Len(t, tokens, 1)
		assert.Equal(t, 7.0, tokens[0].Value)
	})

	t.Run("unicode whitespace is skipped", func(t *testing.T) {
		tokens, err := Tokenize("1 +\t2\n")
		require.NoError(t, err)
		assert.Len(t, tokens, 3)
	})
}

func TestTokenizeErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		kind  error
		pos   int
	}{
		{"letter", "2 + x", ErrInvalidCharacter, 4},
		{"caret", "2^3", ErrInvalidCharacter, 1},
		{"leading decimal point", ".5", ErrInvalidCharacter, 0},
		{"multiple decimal points", "1.2.3", ErrMalformedNumber, 0},
		{"malformed after operator", "4 + 1..2", ErrMalformedNumber, 4},
		{"non ascii symbol", "√9", ErrInvalidCharacter, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := Tokenize(tt.input)
			assert.Nil(t, tokens, "no partial token list on failure")
			require.ErrorIs(t, err, tt.kind)

			var exprErr *Error
			require.ErrorAs(t, err, &exprErr)
			assert.Equal(t, tt.pos, exprErr.Pos)
		})
	}
}

func TestTokenString(t *testing.T) {
	assert.Equal(t, "2.5", Token{Kind: Number, Value: 2.5}.String())
	assert.Equal(t, "-", Token{Kind: Operator, Op: '-'}.String())
	assert.Equal(t, "(", Token{Kind: LParen}.String())
	assert.Equal(t, ")", Token{Kind: RParen}.String())
	assert.Equal(t, "operator", Operator.String())
}
