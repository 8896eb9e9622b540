package morse

import (
	"strings"
	"testing"
	"unicode"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"SOS", "... --- ..."},
		{"sos", "... --- ..."},
		{"HI THERE", ".... .. / - .... . .-. ."},
		{"Hello, World!", ".... . .-.. .-.. --- --..-- / .-- --- .-. .-.. -.. -.-.--"},
		{"42", "....- ..---"},
		{"@", "?"},
		{"A@B", ".- ? -..."},
		{"é", "?"},
		{"what?", ".-- .... .- - ..--.."},
	}

	for _, tt := range tests {
		result := Encode(tt.input)
		if result != tt.expected {
			t.Errorf("Encode(%q) = %q, want %q", tt.input, result, tt.expected)
		}
	}
}

func TestEncode_OneTokenPerCharacter(t *testing.T) {
	input := "ab c@1"
	tokens := strings.Split(Encode(input), " ")
	if len(tokens) != len([]rune(input)) {
		t.Errorf("Expected %d tokens, got %d: %v", len([]rune(input)), len(tokens), tokens)
	}
}

func TestEncodeTokens(t *testing.T) {
	tokens := EncodeTokens("a#")
	if len(tokens) != 2 {
		t.Fatalf("Expected 2 tokens, got %d", len(tokens))
	}
	if !tokens[0].Valid || tokens[0].Code != ".-" || tokens[0].Char != 'a' {
		t.Errorf("Unexpected first token: %+v", tokens[0])
	}
	if tokens[1].Valid || tokens[1].Code != Unknown || tokens[1].Char != '#' {
		t.Errorf("Unexpected second token: %+v", tokens[1])
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		input    string
		preserve bool
		expected string
	}{
		{"", false, ""},
		{"... --- ...", false, "SOS"},
		{".... .. / - .... . .-. .", false, "HI THERE"},
		{".... .. / -.-. ? .-.", false, "HI C?R"},
		{".... .. / -.-. ? .-.", true, "HI C?R"},
		{"...---...", false, "?"},
		{".-.x", false, "?"},
		{"  ... --- ...  ", false, "SOS"},
		{"...   ---", false, "SO"},
		{" / .-", false, " A"},
		{".- / / -...", false, "A  B"},
		{"/", false, " "},
	}

	for _, tt := range tests {
		result := Decode(tt.input, tt.preserve)
		if result != tt.expected {
			t.Errorf("Decode(%q, %v) = %q, want %q", tt.input, tt.preserve, result, tt.expected)
		}
	}
}

func TestDecode_MalformedNeverPanics(t *testing.T) {
	inputs := []string{
		" / / / ",
		"///",
		"-- / ",
		" /",
		"\t\n",
		"..--..--..--..--..--..--",
		string([]byte{0xff, 0xfe}),
		"/ / /.-/",
	}

	for _, input := range inputs {
		func() {
			defer func() {
				if r := recover(); r != nil {
					t.Errorf("Decode(%q) panicked: %v", input, r)
				}
			}()
			_ = Decode(input, false)
		}()
	}
}

func TestDecode_UppercaseWithoutPreserve(t *testing.T) {
	for _, e := range Entries() {
		result := Decode(Encode(string(e.Char)), false)
		if result != strings.ToUpper(result) {
			t.Errorf("Decode of %q is not uppercase: %q", e.Char, result)
		}
	}
}

func TestRoundTrip_EveryCharacter(t *testing.T) {
	for _, e := range Entries() {
		c := string(unicode.ToUpper(e.Char))
		result := Decode(Encode(c), false)
		if result != c {
			t.Errorf("Decode(Encode(%q)) = %q", c, result)
		}
	}
}

func TestRoundTrip_Sentences(t *testing.T) {
	tests := []string{
		"THE QUICK BROWN FOX JUMPS OVER THE LAZY DOG",
		"HELLO, WORLD!",
		"1 2 3",
		"WHY?",
	}

	for _, tt := range tests {
		result := Decode(Encode(tt), false)
		if result != tt {
			t.Errorf("round trip of %q = %q", tt, result)
		}
	}
}

func TestTable_Bijection(t *testing.T) {
	seenChars := make(map[rune]bool)
	seenCodes := make(map[string]rune)
	for _, e := range Entries() {
		if seenChars[e.Char] {
			t.Errorf("Duplicate character %q", e.Char)
		}
		seenChars[e.Char] = true
		if other, ok := seenCodes[e.Code]; ok {
			t.Errorf("Code %q shared by %q and %q", e.Code, other, e.Char)
		}
		seenCodes[e.Code] = e.Char
		if e.Code == "" {
			t.Errorf("Empty code for %q", e.Char)
		}
	}
	if len(seenChars) != 26+10+4+1 {
		t.Errorf("Expected 41 entries, got %d", len(seenChars))
	}
}

func TestTable_CodesUseDotsAndDashes(t *testing.T) {
	for _, e := range Entries() {
		if e.Char == ' ' {
			if e.Code != WordSeparator {
				t.Errorf("Space should map to %q, got %q", WordSeparator, e.Code)
			}
			continue
		}
		if strings.Trim(e.Code, ".-") != "" {
			t.Errorf("Code for %q contains invalid symbols: %q", e.Char, e.Code)
		}
	}
}

func TestLookupAndReverse(t *testing.T) {
	code, ok := Lookup('Q')
	if !ok || code != "--.-" {
		t.Errorf("Lookup('Q') = %q, %v", code, ok)
	}
	if _, ok := Lookup('q'); ok {
		t.Error("Lookup should not match lowercase")
	}
	r, ok := Reverse("--.-")
	if !ok || r != 'Q' {
		t.Errorf("Reverse(\"--.-\") = %q, %v", r, ok)
	}
	if _, ok := Reverse(Unknown); ok {
		t.Error("Reverse should not match the placeholder")
	}
}

func TestEntries_ReturnsCopy(t *testing.T) {
	e := Entries()
	e[0].Code = "broken"
	if code, _ := Lookup('A'); code != ".-" {
		t.Errorf("Table was mutated through Entries: %q", code)
	}
	if Entries()[0].Code != ".-" {
		t.Error("Entries should return a fresh copy")
	}
}

func TestDecodeTokens(t *testing.T) {
	words := DecodeTokens(".- ?? / -...")
	if len(words) != 2 {
		t.Fatalf("Expected 2 words, got %d", len(words))
	}
	if len(words[0]) != 2 || !words[0][0].Valid || words[0][1].Valid {
		t.Errorf("Unexpected first word: %+v", words[0])
	}
	if len(words[1]) != 1 || words[1][0].Char != 'B' {
		t.Errorf("Unexpected second word: %+v", words[1])
	}
	if DecodeTokens("") != nil {
		t.Error("Expected nil for empty input")
	}
}

func TestIsMorse(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"", false},
		{"   ", false},
		{"... --- ...", true},
		{".- / -...", true},
		{"? .-", true},
		{"hello", false},
		{"SOS", false},
		{".- a", false},
	}

	for _, tt := range tests {
		if result := IsMorse(tt.input); result != tt.expected {
			t.Errorf("IsMorse(%q) = %v, want %v", tt.input, result, tt.expected)
		}
	}
}
