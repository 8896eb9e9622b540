package morse

import (
	"fmt"
	"strings"
	"unicode"
)

// Case is the case policy applied to decoded text.
//
// Encoding uppercases everything, so the original case of a message cannot
// be recovered. CasePreserve returns the table output as-is, which is
// uppercase; CaseLower and CaseSentence are the only policies that change
// what the caller sees.
type Case string

const (
	CaseUpper    Case = "upper"
	CasePreserve Case = "preserve"
	CaseLower    Case = "lower"
	CaseSentence Case = "sentence"
)

// Cases lists every supported policy.
var Cases = []Case{CaseUpper, CasePreserve, CaseLower, CaseSentence}

// ParseCase accepts a policy name, case-insensitively. Empty means upper.
func ParseCase(s string) (Case, error) {
	c := Case(strings.ToLower(strings.TrimSpace(s)))
	if c == "" {
		return CaseUpper, nil
	}
	for _, known := range Cases {
		if c == known {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown case policy %q (want upper, preserve, lower or sentence)", s)
}

// Next cycles through the policies in declaration order.
func (c Case) Next() Case {
	for i, known := range Cases {
		if c == known {
			return Cases[(i+1)%len(Cases)]
		}
	}
	return CaseUpper
}

// Apply transforms decoded text according to the policy.
func (c Case) Apply(text string) string {
	switch c {
	case CasePreserve:
		return text
	case CaseLower:
		return strings.ToLower(text)
	case CaseSentence:
		return sentenceCase(text)
	default:
		return strings.ToUpper(text)
	}
}

// sentenceCase lowercases text and capitalizes the first letter of each
// sentence. A sentence starts at the beginning or after . ! ? and whitespace.
func sentenceCase(text string) string {
	var out strings.Builder
	out.Grow(len(text))

	capitalize := true
	boundary := false
	for _, r := range strings.ToLower(text) {
		switch {
		case unicode.IsLetter(r):
			if capitalize {
				r = unicode.ToUpper(r)
				capitalize = false
			}
			boundary = false
		case unicode.IsDigit(r):
			capitalize = false
			boundary = false
		case unicode.IsSpace(r):
			if boundary {
				capitalize = true
			}
		case r == '.' || r == '!' || r == '?':
			boundary = true
		default:
			boundary = false
		}
		out.WriteRune(r)
	}
	return out.String()
}
