//go:build (linux && cgo) || windows || darwin

package signal

import (
	"context"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"
)

// AudioAvailable indicates whether speaker playback is supported in this build.
const AudioAvailable = true

const sampleRate = 44100

var (
	speakerOnce sync.Once
	speakerErr  error
)

func initSpeaker() error {
	speakerOnce.Do(func() {
		speakerErr = speaker.Init(beep.SampleRate(sampleRate), sampleRate/10)
	})
	return speakerErr
}

// SpeakerEmitter plays sine tones through the default audio device.
type SpeakerEmitter struct {
	Volume float64 // 0..1, zero means 0.5
}

func (s SpeakerEmitter) Tone(ctx context.Context, frequency float64, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := initSpeaker(); err != nil {
		return err
	}

	volume := s.Volume
	if volume <= 0 || volume > 1 {
		volume = 0.5
	}
	ctrl := &beep.Ctrl{Streamer: newToneStreamer(frequency, d, volume)}

	done := make(chan struct{})
	speaker.Play(beep.Seq(ctrl, beep.Callback(func() {
		close(done)
	})))

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		// A nil streamer ends the Ctrl, which lets the sequence finish.
		speaker.Lock()
		ctrl.Streamer = nil
		speaker.Unlock()
		return ctx.Err()
	}
}

// DefaultEmitter returns the speaker when it can be opened, otherwise the
// system beep.
func DefaultEmitter() Emitter {
	if err := initSpeaker(); err != nil {
		return BellEmitter{}
	}
	return SpeakerEmitter{}
}

type toneStreamer struct {
	samples   int
	position  int
	frequency float64
	volume    float64
}

func newToneStreamer(frequency float64, d time.Duration, volume float64) *toneStreamer {
	return &toneStreamer{
		samples:   int(float64(sampleRate) * d.Seconds()),
		frequency: frequency,
		volume:    volume,
	}
}

func (t *toneStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.position >= t.samples {
			return i, false
		}

		phase := 2 * math.Pi * t.frequency * float64(t.position) / float64(sampleRate)
		value := math.Sin(phase) * envelope(t.position, t.samples) * t.volume
		samples[i][0] = value
		samples[i][1] = value
		t.position++
	}
	return len(samples), true
}

func (t *toneStreamer) Err() error {
	return nil
}

// envelope fades the first and last 5% of a tone to avoid clicks.
func envelope(position, total int) float64 {
	fadeLen := total / 20
	if fadeLen < 10 {
		fadeLen = 10
	}
	switch {
	case position < fadeLen:
		return float64(position) / float64(fadeLen)
	case position > total-fadeLen:
		return float64(total-position) / float64(fadeLen)
	default:
		return 1.0
	}
}
