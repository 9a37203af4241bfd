package audio

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/typejump/internal/config"
	"github.com/vovakirdan/typejump/internal/events"
)

// SampleRate is the output rate of every cue.
const SampleRate = beep.SampleRate(44100)

// Player turns game events into sound. It is created per program and fed
// by its own bus subscription; a Player that failed to open the speaker
// stays silent.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	muted       atomic.Bool
	initialized bool
	logger      *log.Logger
	played      atomic.Int64
}

// NewPlayer creates a player. Call Init before sounds can be heard.
func NewPlayer(cfg config.AudioConfig, logger *log.Logger) *Player {
	p := &Player{
		mixer:  &beep.Mixer{},
		volume: cfg.Volume,
		logger: logger,
	}
	p.muted.Store(!cfg.Enabled)
	return p
}

// Init opens the speaker.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(SampleRate, SampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Close silences and releases the speaker.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	p.initialized = false
}

// Muted reports whether cues are suppressed.
func (p *Player) Muted() bool {
	return p.muted.Load()
}

// ToggleMute flips the mute state and returns the new one.
func (p *Player) ToggleMute() bool {
	for {
		old := p.muted.Load()
		if p.muted.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

// Played returns how many cues were started.
func (p *Player) Played() int64 {
	return p.played.Load()
}

// Play starts s. Without an open speaker or while muted it does nothing.
func (p *Player) Play(s Sound) {
	if p.Muted() {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized {
		return
	}

	streamer := Build(s, SampleRate, p.volume)
	if streamer == nil {
		return
	}
	speaker.Lock()
	p.mixer.Add(streamer)
	speaker.Unlock()
	p.played.Add(1)
}

// Handle plays every cue evt triggers.
func (p *Player) Handle(evt events.Event) {
	for _, s := range SoundsFor(evt) {
		p.Play(s)
	}
}

// Run plays cues for events from sub until ctx is done or the
// subscription closes.
func (p *Player) Run(ctx context.Context, sub *events.Subscription) {
	if p.logger != nil {
		p.logger.Debug("audio player running", "muted", p.Muted())
	}
	for {
		select {
		case <-ctx.Done():
			return
		case <-sub.Done():
			return
		case evt := <-sub.Events():
			p.Handle(evt)
		}
	}
}
