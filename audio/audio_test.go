package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/arena/ability"
	"github.com/lixenwraith/arena/event"
)

// drain streams s to exhaustion, returning the sample count and peak amplitude
func drain(s beep.Streamer, limit int) (total int, peak float64) {
	buf := make([][2]float64, 512)
	for total < limit {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			peak = math.Max(peak, math.Abs(buf[i][0]))
		}
		total += n
		if !ok {
			break
		}
	}
	return total, peak
}

func TestCueFor(t *testing.T) {
	tests := []struct {
		name string
		ev   event.GameEvent
		want Cue
	}{
		{"attack start", event.GameEvent{Type: event.EventAbilityStarted, Payload: &event.AbilityPayload{Ability: ability.Attack}}, CueSwing},
		{"block start is silent", event.GameEvent{Type: event.EventAbilityStarted, Payload: &event.AbilityPayload{Ability: ability.Block}}, CueNone},
		{"hit", event.GameEvent{Type: event.EventAbilityHit, Payload: &event.HitPayload{}}, CueImpact},
		{"blocked hit", event.GameEvent{Type: event.EventAbilityHit, Payload: &event.HitPayload{Blocked: true}}, CueBlocked},
		{"explosion", event.GameEvent{Type: event.EventPayloadExploded}, CueExplosion},
		{"pickup", event.GameEvent{Type: event.EventBallPickup}, CueCatch},
		{"down", event.GameEvent{Type: event.EventActorDown}, CueDown},
		{"reset", event.GameEvent{Type: event.EventGameReset}, CueNone},
	}
	for _, tt := range tests {
		if got := CueFor(tt.ev); got != tt.want {
			t.Errorf("%s: CueFor = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestCueNames(t *testing.T) {
	for c := Cue(1); c < CueCount; c++ {
		got, ok := ParseCue(c.String())
		if !ok || got != c {
			t.Errorf("ParseCue(%q) = %v, %v", c.String(), got, ok)
		}
	}
	if _, ok := ParseCue("none"); ok {
		t.Error("none parsed as a playable cue")
	}
}

func TestEveryCueIsFiniteAndAudible(t *testing.T) {
	cfg := DefaultConfig()
	limit := cfg.SampleRate * 2
	for c := Cue(1); c < CueCount; c++ {
		s := NewCue(c, cfg)
		if s == nil {
			t.Errorf("%v: no streamer", c)
			continue
		}
		total, peak := drain(s, limit)
		if total == 0 || total >= limit {
			t.Errorf("%v: %d samples", c, total)
		}
		if peak == 0 {
			t.Errorf("%v: silent", c)
		}
	}
	if NewCue(CueNone, cfg) != nil {
		t.Error("CueNone produced a streamer")
	}
}

func TestZeroVolumeIsSilent(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CueVolumes[CueImpact] = 0
	_, peak := drain(NewCue(CueImpact, cfg), cfg.SampleRate)
	if peak != 0 {
		t.Errorf("peak = %f, want silence", peak)
	}
}

func TestEnvelopeShape(t *testing.T) {
	rate := beep.SampleRate(1000)
	s := NewEnvelope(NewOscillator(0, 100*time.Millisecond, WaveSquare, rate), 100*time.Millisecond, 10*time.Millisecond, 10*time.Millisecond, rate)
	buf := make([][2]float64, 100)
	n, _ := s.Stream(buf)
	if n != 100 {
		t.Fatalf("streamed %d samples", n)
	}
	if buf[0][0] != 0 {
		t.Errorf("attack does not start from zero: %f", buf[0][0])
	}
	if buf[50][0] != 1 {
		t.Errorf("sustain level = %f", buf[50][0])
	}
	if buf[99][0] >= buf[90][0] {
		t.Errorf("release not decaying: %f -> %f", buf[90][0], buf[99][0])
	}
}

func TestCuePlayerOffline(t *testing.T) {
	p := NewCuePlayer(nil)
	p.Push(event.GameEvent{Type: event.EventAbilityHit, Payload: &event.HitPayload{}})
	p.Push(event.GameEvent{Type: event.EventGameReset})

	if p.Played(CueImpact) != 1 {
		t.Errorf("impact played %d times", p.Played(CueImpact))
	}
	if p.Active() != 1 {
		t.Fatalf("active = %d", p.Active())
	}

	buf := make([][2]float64, 1024)
	for i := 0; i < 100 && p.Active() > 0; i++ {
		p.Stream(buf)
	}
	if p.Active() != 0 {
		t.Error("finished cue not removed from mixer")
	}

	if !p.ToggleMute() || !p.IsMuted() {
		t.Fatal("toggle did not mute")
	}
	p.Play(CueExplosion)
	if p.Played(CueExplosion) != 0 || p.Active() != 0 {
		t.Error("muted player still played")
	}
	p.Cleanup()
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("ARENA_AUDIO_ENABLED", "false")
	t.Setenv("ARENA_MASTER_VOLUME", "150")
	t.Setenv("ARENA_SFX_VOLUMES", `{"explosion": 0.25, "bogus": 1}`)
	t.Setenv("ARENA_SAMPLE_RATE", "22050")

	cfg := LoadConfig()
	if cfg.Enabled {
		t.Error("enabled not read")
	}
	if cfg.MasterVolume != 1 {
		t.Errorf("master volume not clamped: %f", cfg.MasterVolume)
	}
	if cfg.CueVolumes[CueExplosion] != 0.25 {
		t.Errorf("explosion volume = %f", cfg.CueVolumes[CueExplosion])
	}
	if cfg.SampleRate != 22050 {
		t.Errorf("sample rate = %d", cfg.SampleRate)
	}
}

func TestServiceStartDisabledStaysOffline(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Enabled = false
	p := NewCuePlayer(cfg)

	if err := p.Init(); err != nil {
		t.Fatal(err)
	}
	if err := p.Start(); err != nil {
		t.Fatal(err)
	}
	if p.live {
		t.Error("disabled player opened the speaker")
	}
	if err := p.Stop(); err != nil {
		t.Fatal(err)
	}
	if p.Name() != "audio" || p.Dependencies() != nil {
		t.Errorf("identity = %q %v", p.Name(), p.Dependencies())
	}
}
