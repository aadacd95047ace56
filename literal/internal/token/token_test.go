package token

import (
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Token
	}{
		{
			"empty",
			"",
			nil,
		},
		{
			"number",
			"42",
			[]Token{{"42", Number, 0}},
		},
		{
			"negative_number",
			"-0",
			[]Token{{"-", Minus, 0}, {"0", Number, 1}},
		},
		{
			"exponent",
			"1.5e-7",
			[]Token{{"1.5e-7", Number, 0}},
		},
		{
			"positive_exponent",
			"1e+21",
			[]Token{{"1e+21", Number, 0}},
		},
		{
			"infinity",
			"-Infinity",
			[]Token{{"-", Minus, 0}, {"Infinity", Ident, 1}},
		},
		{
			"string",
			"'hello world'",
			[]Token{{"hello world", String, 0}},
		},
		{
			"empty_string",
			"''",
			[]Token{{"", String, 0}},
		},
		{
			"constant",
			"constants[3]",
			[]Token{{"constants", Ident, 0}, {"[", LBracket, 9}, {"3", Number, 10}, {"]", RBracket, 11}},
		},
		{
			"long",
			"new Long(-1, 2)",
			[]Token{
				{"new", Ident, 0}, {"Long", Ident, 4}, {"(", LParen, 8},
				{"-", Minus, 9}, {"1", Number, 10}, {",", Comma, 11},
				{"2", Number, 13}, {")", RParen, 14},
			},
		},
		{
			"member_path",
			"WebAssembly._fromNaNBytes",
			[]Token{{"WebAssembly._fromNaNBytes", Ident, 0}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := Tokenize(tt.input)
			if err != nil {
				t.Fatalf("Tokenize(%q) error: %v", tt.input, err)
			}
			if !reflect.DeepEqual(tokens, tt.expected) {
				t.Errorf("Tokenize(%q) = %v, want %v", tt.input, tokens, tt.expected)
			}
		})
	}
}

func TestTokenizeErrors(t *testing.T) {
	for _, input := range []string{"'open", "1 + 2", "a;b", "\"double\""} {
		if _, err := Tokenize(input); err == nil {
			t.Errorf("Tokenize(%q) should fail", input)
		}
	}
}

func TestTypeString(t *testing.T) {
	if Number.String() != "number" {
		t.Errorf("Number.String() = %q", Number.String())
	}
	if Type(99).String() != "unknown" {
		t.Errorf("Type(99).String() = %q", Type(99).String())
	}
}
