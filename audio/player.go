package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/space-commander/event"
)

// CuePlayer plays a cue for every notification it receives
// It satisfies game.Listener
type CuePlayer struct {
	mu     sync.Mutex
	cfg    Config
	muted  bool
	output func(beep.Streamer)
	closer func()
	played [cueCount]int
}

// NewCuePlayer opens the speaker and starts mixing
// A disabled config yields a player that never touches the device
func NewCuePlayer(cfg Config) (*CuePlayer, error) {
	p := &CuePlayer{cfg: cfg, muted: !cfg.Enabled}
	if !cfg.Enabled {
		p.output = func(beep.Streamer) {}
		return p, nil
	}

	rate := beep.SampleRate(cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(100*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("speaker init: %w", err)
	}
	mixer := &beep.Mixer{}
	speaker.Play(mixer)

	p.output = func(s beep.Streamer) {
		speaker.Lock()
		mixer.Add(s)
		speaker.Unlock()
	}
	p.closer = func() {
		speaker.Clear()
		speaker.Close()
	}
	return p, nil
}

// newCuePlayerTo sends cues to out instead of the speaker
func newCuePlayerTo(cfg Config, out func(beep.Streamer)) *CuePlayer {
	return &CuePlayer{cfg: cfg, output: out}
}

// OnEvent plays the cue mapped to ev, if any
func (p *CuePlayer) OnEvent(ev event.GameEvent) {
	if c, ok := CueFor(ev); ok {
		p.Play(c)
	}
}

// Play synthesizes and queues c unless muted
func (p *CuePlayer) Play(c Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.muted {
		return
	}
	s := Build(c, p.cfg)
	if s == nil {
		return
	}
	p.played[c]++
	p.output(s)
}

// SetMuted silences or re-enables cues
func (p *CuePlayer) SetMuted(muted bool) {
	p.mu.Lock()
	p.muted = muted
	p.mu.Unlock()
}

// Muted reports whether cues are silenced
func (p *CuePlayer) Muted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.muted
}

// Played returns how often c has been played
func (p *CuePlayer) Played(c Cue) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.played[c]
}

// Close stops playback and releases the device
func (p *CuePlayer) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.muted = true
	if p.closer != nil {
		p.closer()
		p.closer = nil
	}
}
