package morse

// WordSeparator is the token for an encoded space.
const WordSeparator = "/"

// Unknown is emitted for characters and tokens with no mapping.
const Unknown = "?"

// WordDelimiter separates words in an encoded message.
const WordDelimiter = " " + WordSeparator + " "

// Entry is one row of the alphabet table.
type Entry struct {
	Char rune
	Code string
}

// entries lists the alphabet in canonical order: letters, digits, punctuation, space.
var entries = []Entry{
	{'A', ".-"}, {'B', "-..."}, {'C', "-.-."}, {'D', "-.."}, {'E', "."},
	{'F', "..-."}, {'G', "--."}, {'H', "...."}, {'I', ".."}, {'J', ".---"},
	{'K', "-.-"}, {'L', ".-.."}, {'M', "--"}, {'N', "-."}, {'O', "---"},
	{'P', ".--."}, {'Q', "--.-"}, {'R', ".-."}, {'S', "..."}, {'T', "-"},
	{'U', "..-"}, {'V', "...-"}, {'W', ".--"}, {'X', "-..-"}, {'Y', "-.--"},
	{'Z', "--.."},
	{'0', "-----"}, {'1', ".----"}, {'2', "..---"}, {'3', "...--"}, {'4', "....-"},
	{'5', "....."}, {'6', "-...."}, {'7', "--..."}, {'8', "---.."}, {'9', "----."},
	{'.', ".-.-.-"}, {',', "--..--"}, {'?', "..--.."}, {'!', "-.-.--"},
	{' ', WordSeparator},
}

var (
	toMorse   map[rune]string
	fromMorse map[string]rune
)

func init() {
	toMorse = make(map[rune]string, len(entries))
	fromMorse = make(map[string]rune, len(entries))
	for _, e := range entries {
		toMorse[e.Char] = e.Code
		fromMorse[e.Code] = e.Char
	}
}

// Entries returns a copy of the alphabet table in canonical order.
func Entries() []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out
}

// Lookup returns the token for an already uppercased character.
func Lookup(r rune) (string, bool) {
	code, ok := toMorse[r]
	return code, ok
}

// Reverse returns the character for a token.
func Reverse(code string) (rune, bool) {
	r, ok := fromMorse[code]
	return r, ok
}
