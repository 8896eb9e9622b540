// Package morse converts between text and Morse code.
//
// Encoded messages are tokens over {.,-} joined by single spaces. A space in
// the text encodes as the "/" token, so words end up separated by " / ".
// Characters and tokens without a mapping become "?" instead of failing the
// whole conversion.
package morse

import (
	"strings"
	"unicode"
)

// Token is one unit of a conversion: the code, the character it maps to and
// whether the mapping exists.
type Token struct {
	Code  string
	Char  rune
	Valid bool
}

// Encode converts text to Morse code. Unmappable characters become "?".
func Encode(text string) string {
	var result []string
	for _, r := range text {
		if code, ok := Lookup(unicode.ToUpper(r)); ok {
			result = append(result, code)
		} else {
			result = append(result, Unknown)
		}
	}
	return strings.Join(result, " ")
}

// EncodeTokens is Encode with per-character validity.
func EncodeTokens(text string) []Token {
	var tokens []Token
	for _, r := range text {
		code, ok := Lookup(unicode.ToUpper(r))
		if !ok {
			code = Unknown
		}
		tokens = append(tokens, Token{Code: code, Char: r, Valid: ok})
	}
	return tokens
}

// Decode converts Morse code to text. With preserveCase false the result is
// uppercased. The table only holds uppercase characters, so preserving case
// leaves the output unchanged in practice.
func Decode(code string, preserveCase bool) string {
	if preserveCase {
		return DecodeCase(code, CasePreserve)
	}
	return DecodeCase(code, CaseUpper)
}

// DecodeCase converts Morse code to text and applies the given case policy.
func DecodeCase(code string, c Case) string {
	words := DecodeTokens(code)
	decoded := make([]string, 0, len(words))
	for _, word := range words {
		var sb strings.Builder
		for _, t := range word {
			if t.Valid {
				sb.WriteRune(t.Char)
			} else {
				sb.WriteString(Unknown)
			}
		}
		decoded = append(decoded, sb.String())
	}
	return c.Apply(strings.Join(decoded, " "))
}

// DecodeTokens splits code into words on " / " and each word into tokens on
// whitespace, resolving every token against the table.
func DecodeTokens(code string) [][]Token {
	if code == "" {
		return nil
	}
	var words [][]Token
	for _, word := range strings.Split(code, WordDelimiter) {
		fields := strings.Fields(word)
		tokens := make([]Token, 0, len(fields))
		for _, f := range fields {
			r, ok := Reverse(f)
			tokens = append(tokens, Token{Code: f, Char: r, Valid: ok})
		}
		words = append(words, tokens)
	}
	return words
}

// IsMorse reports whether s looks like encoded Morse rather than plain text.
func IsMorse(s string) bool {
	if strings.TrimSpace(s) == "" {
		return false
	}
	for _, r := range s {
		switch {
		case r == '.' || r == '-' || r == '/' || r == '?':
		case unicode.IsSpace(r):
		default:
			return false
		}
	}
	return true
}
