// Package signal plays encoded Morse strings as timed tones.
package signal

import (
	"context"
	"time"

	"github.com/gen2brain/beeep"
)

// Emitter produces a single tone. Implementations block for the length of
// the tone and return early with ctx.Err() when ctx is cancelled.
type Emitter interface {
	Tone(ctx context.Context, frequency float64, d time.Duration) error
}

// NopEmitter is silent. Tones return immediately.
type NopEmitter struct{}

func (NopEmitter) Tone(ctx context.Context, _ float64, _ time.Duration) error {
	return ctx.Err()
}

var systemBeep = beeep.Beep

// BellEmitter uses the system beep. It works without cgo but cannot be
// interrupted mid-tone.
type BellEmitter struct{}

func (BellEmitter) Tone(ctx context.Context, frequency float64, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return systemBeep(frequency, int(d/time.Millisecond))
}
