package expr

// MaxDepth bounds nested parentheses and unary signs.
const MaxDepth = 1000

// parseResult is the partial value and the cursor after it.
type parseResult struct {
	value float64
	next  int
}

// Evaluate tokenizes and evaluates text. The whole input must be consumed.
func Evaluate(text string) (float64, error) {
	tokens, err := Tokenize(text)
	if err != nil {
		return 0, err
	}
	return EvaluateTokens(tokens)
}

// EvaluateTokens evaluates an already tokenized expression.
func EvaluateTokens(tokens []Token) (float64, error) {
	res, err := parseExpression(tokens, 0, 0)
	if err != nil {
		return 0, err
	}

	if res.next < len(tokens) {
		tok := tokens[res.next]
		if tok.Kind == RParen {
			return 0, newError(ErrUnbalancedParentheses, tok.Pos, ")")
		}
		return 0, newError(ErrTrailingInput, tok.Pos, tok.String())
	}

	return res.value, nil
}

// parseExpression := term (('+' | '-') term)*
func parseExpression(tokens []Token, index, depth int) (parseResult, error) {
	res, err := parseTerm(tokens, index, depth)
	if err != nil {
		return res, err
	}

	for res.next < len(tokens) {
		tok := tokens[res.next]
		if tok.Kind != Operator || (tok.Op != '+' && tok.Op != '-') {
			break
		}

		rhs, err := parseTerm(tokens, res.next+1, depth)
		if err != nil {
			return rhs, err
		}

		if tok.Op == '+' {
			res = parseResult{value: res.value + rhs.value, next: rhs.next}
		} else {
			res = parseResult{value: res.value - rhs.value, next: rhs.next}
		}
	}

	return res, nil
}

// parseTerm := factor (('*' | '/') factor)*
func parseTerm(tokens []Token, index, depth int) (parseResult, error) {
	res, err := parseFactor(tokens, index, depth)
	if err != nil {
		return res, err
	}

	for res.next < len(tokens) {
		tok := tokens[res.next]
		if tok.Kind != Operator || (tok.Op != '*' && tok.Op != '/') {
			break
		}

		rhs, err := parseFactor(tokens, res.next+1, depth)
		if err != nil {
			return rhs, err
		}

		if tok.Op == '*' {
			res = parseResult{value: res.value * rhs.value, next: rhs.next}
			continue
		}
		if rhs.value == 0 {
			return parseResult{}, newError(ErrDivisionByZero, tok.Pos, "/")
		}
		res = parseResult{value: res.value / rhs.value, next: rhs.next}
	}

	return res, nil
}

// parseFactor := NUMBER | ('+' | '-') factor | '(' expression ')'
func parseFactor(tokens []Token, index, depth int) (parseResult, error) {
	if index >= len(tokens) {
		return parseResult{}, newError(ErrUnexpectedToken, -1, "")
	}

	tok := tokens[index]
	if depth >= MaxDepth {
		return parseResult{}, newError(ErrTooDeep, tok.Pos, tok.String())
	}
	switch tok.Kind {
	case Number:
		return parseResult{value: tok.Value, next: index + 1}, nil

	case Operator:
		switch tok.Op {
		case '-':
			res, err := parseFactor(tokens, index+1, depth+1)
			if err != nil {
				return res, err
			}
			return parseResult{value: -res.value, next: res.next}, nil
		case '+':
			return parseFactor(tokens, index+1, depth+1)
		}

	case LParen:
		res, err := parseExpression(tokens, index+1, depth+1)
		if err != nil {
			return res, err
		}
		if res.next >= len(tokens) || tokens[res.next].Kind != RParen {
			return parseResult{}, newError(ErrUnbalancedParentheses, tok.Pos, "(")
		}
		return parseResult{value: res.value, next: res.next + 1}, nil
	}

	return parseResult{}, newError(ErrUnexpectedToken, tok.Pos, tok.String())
}
