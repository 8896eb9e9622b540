package signal

import "time"

const (
	DefaultFrequency = 700.0 // Hz - standard morse tone
	DefaultUnit      = 100 * time.Millisecond
	DefaultWPM       = 15
)

// Timing holds the durations used to turn a code string into sound.
type Timing struct {
	Dot        time.Duration
	Dash       time.Duration
	ElementGap time.Duration // silence between two tones of the same letter
	LetterGap  time.Duration // silence for a ' ' symbol
	WordGap    time.Duration // silence for a '/' symbol
}

// UnitTiming is the plain symbol timing: dot one unit, dash three, a space
// one unit of silence and a slash three. Tones follow each other directly.
func UnitTiming(unit time.Duration) Timing {
	if unit <= 0 {
		unit = DefaultUnit
	}
	return Timing{
		Dot:       unit,
		Dash:      3 * unit,
		LetterGap: unit,
		WordGap:   3 * unit,
	}
}

// WPMTiming follows the PARIS standard, where a word is 50 units. Tones
// within a letter are one unit apart, letters three and words seven. The
// " / " word delimiter is two letter gaps around the slash, so the slash
// itself only adds one unit.
func WPMTiming(wpm int) Timing {
	if wpm <= 0 {
		wpm = DefaultWPM
	}
	unit := time.Duration(float64(time.Second) * 60 / (50 * float64(wpm)))
	return Timing{
		Dot:        unit,
		Dash:       3 * unit,
		ElementGap: unit,
		LetterGap:  3 * unit,
		WordGap:    unit,
	}
}

// Step is a single tone or silence.
type Step struct {
	Tone     bool
	Duration time.Duration
}

// Schedule compiles a code string into steps. Only '.', '-', ' ' and '/'
// produce steps; anything else, including the '?' placeholder, is skipped.
func Schedule(code string, t Timing) []Step {
	symbols := []rune(code)
	var steps []Step
	for i, r := range symbols {
		switch r {
		case '.':
			steps = append(steps, Step{Tone: true, Duration: t.Dot})
		case '-':
			steps = append(steps, Step{Tone: true, Duration: t.Dash})
		case ' ':
			steps = append(steps, Step{Duration: t.LetterGap})
		case '/':
			steps = append(steps, Step{Duration: t.WordGap})
		default:
			continue
		}
		if isTone(r) && t.ElementGap > 0 && i+1 < len(symbols) && isTone(symbols[i+1]) {
			steps = append(steps, Step{Duration: t.ElementGap})
		}
	}
	return steps
}

// Duration is the total length of the steps.
func Duration(steps []Step) time.Duration {
	var total time.Duration
	for _, s := range steps {
		total += s.Duration
	}
	return total
}

func isTone(r rune) bool {
	return r == '.' || r == '-'
}
