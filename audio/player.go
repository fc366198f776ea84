package audio

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/arena/event"
)

// CuePlayer turns game events into sound cues
// Attach with World.Observe; it never feeds anything back into the simulation
type CuePlayer struct {
	cfg   *Config
	mixer *beep.Mixer

	mu     sync.Mutex
	live   bool // Speaker owns the mixer
	played [CueCount]atomic.Int64
	muted  atomic.Bool
}

// NewCuePlayer creates a player; until Initialize the mixer is only drained by the caller
func NewCuePlayer(cfg *Config) *CuePlayer {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	p := &CuePlayer{cfg: cfg, mixer: &beep.Mixer{}}
	p.muted.Store(!cfg.Enabled)
	return p
}

// Initialize opens the speaker and starts streaming the mixer
func (p *CuePlayer) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.live {
		return nil
	}

	rate := beep.SampleRate(p.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(50*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.live = true
	return nil
}

// Cleanup stops every sound and closes the speaker
func (p *CuePlayer) Cleanup() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.live {
		p.mixer.Clear()
		return
	}
	speaker.Clear()
	speaker.Close()
	p.live = false
}

// Push implements event.Sink
func (p *CuePlayer) Push(ev event.GameEvent) {
	p.Play(CueFor(ev))
}

// Play starts cue c unless muted
func (p *CuePlayer) Play(c Cue) {
	if c == CueNone || p.muted.Load() {
		return
	}
	s := NewCue(c, p.cfg)
	if s == nil {
		return
	}
	p.played[c].Add(1)

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.live {
		speaker.Lock()
		p.mixer.Add(s)
		speaker.Unlock()
		return
	}
	p.mixer.Add(s)
}

// SetMuted silences future cues; sounds already playing finish
func (p *CuePlayer) SetMuted(muted bool) {
	p.muted.Store(muted)
}

// ToggleMute flips the mute state and returns the new one
func (p *CuePlayer) ToggleMute() bool {
	for {
		cur := p.muted.Load()
		if p.muted.CompareAndSwap(cur, !cur) {
			return !cur
		}
	}
}

// IsMuted reports the mute state
func (p *CuePlayer) IsMuted() bool {
	return p.muted.Load()
}

// Played returns how many times cue c started
func (p *CuePlayer) Played(c Cue) int64 {
	if c <= CueNone || c >= CueCount {
		return 0
	}
	return p.played[c].Load()
}

// Active returns the number of sounds still in the mixer
func (p *CuePlayer) Active() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.live {
		speaker.Lock()
		defer speaker.Unlock()
	}
	return p.mixer.Len()
}

// Stream drains the mixer into samples when no speaker is attached
// Used for offline rendering
func (p *CuePlayer) Stream(samples [][2]float64) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.live {
		return 0
	}
	n, _ := p.mixer.Stream(samples)
	return n
}

var _ event.Sink = (*CuePlayer)(nil)
