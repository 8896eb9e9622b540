package signal

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

type recordingEmitter struct {
	mu       sync.Mutex
	tones    []time.Duration
	freqs    []float64
	inFlight atomic.Int32
	overlap  atomic.Bool
	started  chan struct{}
	err      error
}

func (r *recordingEmitter) Tone(ctx context.Context, frequency float64, d time.Duration) error {
	if r.inFlight.Add(1) > 1 {
		r.overlap.Store(true)
	}
	defer r.inFlight.Add(-1)

	r.mu.Lock()
	r.tones = append(r.tones, d)
	r.freqs = append(r.freqs, frequency)
	r.mu.Unlock()

	if r.started != nil {
		select {
		case r.started <- struct{}{}:
		default:
		}
	}
	if r.err != nil {
		return r.err
	}
	return sleep(ctx, d)
}

func (r *recordingEmitter) recorded() []time.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]time.Duration, len(r.tones))
	copy(out, r.tones)
	return out
}

func waitDone(t *testing.T, pb *Playback) error {
	t.Helper()
	select {
	case <-pb.Done():
		return pb.Wait()
	case <-time.After(5 * time.Second):
		t.Fatal("Timed out waiting for playback")
		return nil
	}
}

func TestPlayer_PlaysTonesInOrder(t *testing.T) {
	emitter := &recordingEmitter{}
	p := NewPlayer(emitter, nil)
	defer p.Close()

	pb := p.Play(".- -", time.Millisecond, 750)
	if err := waitDone(t, pb); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	expected := []time.Duration{time.Millisecond, 3 * time.Millisecond, 3 * time.Millisecond}
	tones := emitter.recorded()
	if len(tones) != len(expected) {
		t.Fatalf("Expected %d tones, got %d", len(expected), len(tones))
	}
	for i := range expected {
		if tones[i] != expected[i] {
			t.Errorf("Tone %d: expected %v, got %v", i, expected[i], tones[i])
		}
	}
	if emitter.freqs[0] != 750 {
		t.Errorf("Expected 750 Hz, got %v", emitter.freqs[0])
	}
}

func TestPlayer_DefaultFrequency(t *testing.T) {
	emitter := &recordingEmitter{}
	p := NewPlayer(emitter, nil)
	defer p.Close()

	if err := waitDone(t, p.Play(".", time.Millisecond, 0)); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if emitter.freqs[0] != DefaultFrequency {
		t.Errorf("Expected default frequency, got %v", emitter.freqs[0])
	}
}

func TestPlayer_SerializesPlaybacks(t *testing.T) {
	emitter := &recordingEmitter{}
	p := NewPlayer(emitter, nil)
	defer p.Close()

	var handles []*Playback
	for i := 0; i < 4; i++ {
		handles = append(handles, p.Play("....", 2*time.Millisecond, 0))
	}
	for _, pb := range handles {
		if err := waitDone(t, pb); err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
	}

	if emitter.overlap.Load() {
		t.Error("Playbacks overlapped")
	}
	if got := len(emitter.recorded()); got != 16 {
		t.Errorf("Expected 16 tones, got %d", got)
	}
}

func TestPlayback_Stop(t *testing.T) {
	emitter := &recordingEmitter{started: make(chan struct{}, 1)}
	p := NewPlayer(emitter, nil)
	defer p.Close()

	pb := p.Play("-----", time.Second, 0)
	<-emitter.started
	pb.Stop()

	if err := waitDone(t, pb); !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
}

func TestPlayback_WaitContext(t *testing.T) {
	emitter := &recordingEmitter{started: make(chan struct{}, 1)}
	p := NewPlayer(emitter, nil)
	defer p.Close()

	pb := p.Play("-----", time.Second, 0)
	<-emitter.started

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if err := pb.WaitContext(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}

	done := p.Play(".", time.Millisecond, 0)
	if err := done.WaitContext(context.Background()); err != nil {
		t.Errorf("Unexpected error: %v", err)
	}
}

func TestPlayer_StopCancelsQueued(t *testing.T) {
	emitter := &recordingEmitter{started: make(chan struct{}, 1)}
	p := NewPlayer(emitter, nil)
	defer p.Close()

	first := p.Play("-----", time.Second, 0)
	second := p.Play("-----", time.Second, 0)
	<-emitter.started
	p.Stop()

	for _, pb := range []*Playback{first, second} {
		if err := waitDone(t, pb); !errors.Is(err, context.Canceled) {
			t.Errorf("Expected context.Canceled, got %v", err)
		}
	}
	if got := len(emitter.recorded()); got != 1 {
		t.Errorf("Expected only the first tone to start, got %d tones", got)
	}
}

func TestPlayer_PlayAfterClose(t *testing.T) {
	p := NewPlayer(&recordingEmitter{}, nil)
	p.Close()
	p.Close()

	pb := p.Play("...", time.Millisecond, 0)
	if err := waitDone(t, pb); !errors.Is(err, ErrClosed) {
		t.Errorf("Expected ErrClosed, got %v", err)
	}
}

func TestPlayer_QueueFull(t *testing.T) {
	emitter := &recordingEmitter{started: make(chan struct{}, 1)}
	p := NewPlayer(emitter, nil)

	running := p.Play("-", time.Hour, 0)
	<-emitter.started

	var queued []*Playback
	for i := 0; i < DefaultQueueSize; i++ {
		queued = append(queued, p.Play(".", time.Millisecond, 0))
	}
	dropped := p.Play(".", time.Millisecond, 0)
	if err := waitDone(t, dropped); !errors.Is(err, ErrQueueFull) {
		t.Errorf("Expected ErrQueueFull, got %v", err)
	}

	p.Close()
	for _, pb := range append(queued, running) {
		if err := waitDone(t, pb); !errors.Is(err, context.Canceled) {
			t.Errorf("Expected context.Canceled after close, got %v", err)
		}
	}
}

func TestPlayer_IgnoresToneErrors(t *testing.T) {
	emitter := &recordingEmitter{err: errors.New("no audio device")}
	p := NewPlayer(emitter, nil)
	defer p.Close()

	if err := waitDone(t, p.Play("... ---", time.Millisecond, 0)); err != nil {
		t.Errorf("Tone errors should not fail playback, got %v", err)
	}
	if got := len(emitter.recorded()); got != 6 {
		t.Errorf("Expected every tone to be attempted, got %d", got)
	}
}

func TestPlayer_NilEmitterIsSilent(t *testing.T) {
	p := NewPlayer(nil, nil)
	defer p.Close()

	if err := waitDone(t, p.Play(".-", time.Millisecond, 0)); err != nil {
		t.Errorf("Unexpected error: %v", err)
	}
}

func TestBellEmitter(t *testing.T) {
	orig := systemBeep
	defer func() { systemBeep = orig }()

	var gotFreq float64
	var gotMillis int
	systemBeep = func(freq float64, duration int) error {
		gotFreq = freq
		gotMillis = duration
		return nil
	}

	if err := (BellEmitter{}).Tone(context.Background(), 700, 300*time.Millisecond); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if gotFreq != 700 || gotMillis != 300 {
		t.Errorf("Expected beep(700, 300), got beep(%v, %d)", gotFreq, gotMillis)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	gotMillis = 0
	if err := (BellEmitter{}).Tone(ctx, 700, time.Second); !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
	if gotMillis != 0 {
		t.Error("Beep should not be called with a cancelled context")
	}
}
