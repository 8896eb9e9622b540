package signal

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"
)

var (
	ErrQueueFull = errors.New("playback queue is full")
	ErrClosed    = errors.New("player is closed")
)

// DefaultQueueSize is the number of playbacks that can wait behind the
// current one.
const DefaultQueueSize = 16

// Player plays code strings one at a time on a background goroutine.
// Play never blocks; requests are queued and played in order so that
// concurrent requests do not overlap.
type Player struct {
	emitter Emitter
	log     *slog.Logger
	queue   chan *Playback

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu     sync.Mutex
	closed bool
	active map[*Playback]struct{}
}

// NewPlayer starts a player. A nil logger means slog.Default().
func NewPlayer(emitter Emitter, logger *slog.Logger) *Player {
	if emitter == nil {
		emitter = NopEmitter{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	ctx, cancel := context.WithCancel(context.Background())
	p := &Player{
		emitter: emitter,
		log:     logger,
		queue:   make(chan *Playback, DefaultQueueSize),
		ctx:     ctx,
		cancel:  cancel,
		active:  make(map[*Playback]struct{}),
	}
	p.wg.Add(1)
	go p.run()
	return p
}

// Play queues code using plain unit timing.
func (p *Player) Play(code string, unit time.Duration, frequency float64) *Playback {
	return p.PlayTiming(code, UnitTiming(unit), frequency)
}

// PlayTiming queues code with explicit timing. The returned handle can be
// ignored for fire-and-forget use.
func (p *Player) PlayTiming(code string, timing Timing, frequency float64) *Playback {
	if frequency <= 0 {
		frequency = DefaultFrequency
	}
	ctx, cancel := context.WithCancel(p.ctx)
	pb := &Playback{
		Code:      code,
		steps:     Schedule(code, timing),
		frequency: frequency,
		ctx:       ctx,
		cancel:    cancel,
		done:      make(chan struct{}),
		release:   p.release,
	}

	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		pb.finish(ErrClosed)
		return pb
	}
	select {
	case p.queue <- pb:
		p.active[pb] = struct{}{}
		p.mu.Unlock()
		p.log.Debug("playback queued", "symbols", len(code), "duration", Duration(pb.steps))
	default:
		p.mu.Unlock()
		p.log.Warn("dropping playback", "error", ErrQueueFull, "queueSize", cap(p.queue))
		pb.finish(ErrQueueFull)
	}
	return pb
}

// Stop cancels the current playback and everything queued behind it.
func (p *Player) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	for pb := range p.active {
		pb.cancel()
	}
}

// Close stops all playback and waits for the worker to exit. Play after
// Close returns a finished handle with ErrClosed.
func (p *Player) Close() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	p.mu.Unlock()

	p.cancel()
	p.wg.Wait()
}

func (p *Player) release(pb *Playback) {
	p.mu.Lock()
	delete(p.active, pb)
	p.mu.Unlock()
}

func (p *Player) run() {
	defer p.wg.Done()
	for {
		select {
		case <-p.ctx.Done():
			p.drain()
			return
		case pb := <-p.queue:
			pb.finish(p.perform(pb))
		}
	}
}

func (p *Player) drain() {
	for {
		select {
		case pb := <-p.queue:
			pb.finish(p.ctx.Err())
		default:
			return
		}
	}
}

func (p *Player) perform(pb *Playback) error {
	warned := false
	for _, step := range pb.steps {
		if err := pb.ctx.Err(); err != nil {
			return err
		}
		if !step.Tone {
			if err := sleep(pb.ctx, step.Duration); err != nil {
				return err
			}
			continue
		}

		err := p.emitter.Tone(pb.ctx, pb.frequency, step.Duration)
		if err == nil {
			continue
		}
		if ctxErr := pb.ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		// Audio failures are not fatal; keep the rhythm silently.
		if !warned {
			p.log.Warn("failed to emit tone", "error", err)
			warned = true
		}
		if err := sleep(pb.ctx, step.Duration); err != nil {
			return err
		}
	}
	return nil
}

// Playback is a handle to a queued or running playback.
type Playback struct {
	Code string

	steps     []Step
	frequency float64
	ctx       context.Context
	cancel    context.CancelFunc
	done      chan struct{}
	release   func(*Playback)

	once sync.Once
	err  error
}

// Stop cancels this playback. Stopping a finished playback does nothing.
func (pb *Playback) Stop() {
	pb.cancel()
}

// Done is closed once the playback has finished, been stopped or dropped.
func (pb *Playback) Done() <-chan struct{} {
	return pb.done
}

// Wait blocks until the playback is done and returns why it ended: nil when
// it played to completion, context.Canceled when stopped, ErrQueueFull or
// ErrClosed when it never started.
func (pb *Playback) Wait() error {
	<-pb.done
	return pb.err
}

// WaitContext is Wait that stops the playback when ctx is cancelled.
func (pb *Playback) WaitContext(ctx context.Context) error {
	select {
	case <-pb.done:
	case <-ctx.Done():
		pb.Stop()
		<-pb.done
	}
	return pb.err
}

func (pb *Playback) finish(err error) {
	pb.once.Do(func() {
		pb.err = err
		pb.cancel()
		close(pb.done)
		if pb.release != nil {
			pb.release(pb)
		}
	})
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
