package token

import (
	"fmt"
	"unicode"
)

type Type int

const (
	LParen Type = iota
	RParen
	LBracket
	RBracket
	Comma
	Minus
	Ident
	String
	Number
)

func (t Type) String() string {
	switch t {
	case LParen:
		return "'('"
	case RParen:
		return "')'"
	case LBracket:
		return "'['"
	case RBracket:
		return "']'"
	case Comma:
		return "','"
	case Minus:
		return "'-'"
	case Ident:
		return "identifier"
	case String:
		return "string"
	case Number:
		return "number"
	}
	return "unknown"
}

type Token struct {
	Value string
	Type  Type
	Pos   int
}

// Tokenize splits a rendered literal into tokens. String token values
// exclude the surrounding quotes.
func Tokenize(input string) ([]Token, error) {
	var tokens []Token
	runes := []rune(input)

	for i := 0; i < len(runes); i++ {
		r := runes[i]

		if unicode.IsSpace(r) {
			continue
		}

		switch r {
		case '(':
			tokens = append(tokens, Token{"(", LParen, i})
			continue
		case ')':
			tokens = append(tokens, Token{")", RParen, i})
			continue
		case '[':
			tokens = append(tokens, Token{"[", LBracket, i})
			continue
		case ']':
			tokens = append(tokens, Token{"]", RBracket, i})
			continue
		case ',':
			tokens = append(tokens, Token{",", Comma, i})
			continue
		case '-':
			tokens = append(tokens, Token{"-", Minus, i})
			continue
		}

		if r == '\'' {
			start := i
			i++
			for i < len(runes) && runes[i] != '\'' {
				i++
			}
			if i >= len(runes) {
				return nil, fmt.Errorf("unterminated string at offset %d", start)
			}
			tokens = append(tokens, Token{string(runes[start+1 : i]), String, start})
			continue
		}

		if isDigit(r) || (r == '.' && i+1 < len(runes) && isDigit(runes[i+1])) {
			start := i
			for i < len(runes) && (isDigit(runes[i]) || runes[i] == '.') {
				i++
			}
			if i < len(runes) && (runes[i] == 'e' || runes[i] == 'E') {
				i++
				if i < len(runes) && (runes[i] == '+' || runes[i] == '-') {
					i++
				}
				for i < len(runes) && isDigit(runes[i]) {
					i++
				}
			}
			tokens = append(tokens, Token{string(runes[start:i]), Number, start})
			i--
			continue
		}

		if isIdentStart(r) {
			start := i
			for i < len(runes) && isIdentPart(runes[i]) {
				i++
			}
			tokens = append(tokens, Token{string(runes[start:i]), Ident, start})
			i--
			continue
		}

		return nil, fmt.Errorf("unexpected character %q at offset %d", r, i)
	}

	return tokens, nil
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isIdentStart(r rune) bool {
	return r == '_' || r == '$' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// isIdentPart admits '.' so member paths like WebAssembly._fromNaNBytes
// arrive as one token.
func isIdentPart(r rune) bool {
	return isIdentStart(r) || isDigit(r) || r == '.'
}
