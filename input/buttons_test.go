package input

import (
	"testing"

	"github.com/lixenwraith/arena/vmath"
)

func TestTrackerEdges(t *testing.T) {
	var tr Tracker
	steps := []struct {
		held, want Buttons
	}{
		{ButtonFire, ButtonFire},
		{ButtonFire, 0},
		{ButtonFire | ButtonAlt, ButtonAlt},
		{0, 0},
		{ButtonFire, ButtonFire},
	}
	for i, s := range steps {
		f := tr.Next(PlayerInput{Held: s.held})
		if f.Pressed != s.want {
			t.Errorf("step %d: pressed %v, want %v", i, f.Pressed, s.want)
		}
	}
}

func TestTrackerReset(t *testing.T) {
	var tr Tracker
	tr.Next(PlayerInput{Held: ButtonJump})
	tr.Reset()
	if f := tr.Next(PlayerInput{Held: ButtonJump}); !f.Pressed.Has(ButtonJump) {
		t.Error("held button after reset must count as a press")
	}
}

func TestButtonsString(t *testing.T) {
	if got := (ButtonFire | ButtonHook).String(); got != "fire+hook" {
		t.Errorf("got %q", got)
	}
	if Buttons(0).Has(0) {
		t.Error("empty set must not report Has(0)")
	}
}

func TestSamplerHold(t *testing.T) {
	s := NewSampler(DefaultKeyTable(), 2, 2)
	if it := s.Key('p'); it != IntentPause {
		t.Fatalf("intent = %v", it)
	}
	s.Key('f')
	s.Key('d')

	in := s.Sample(0)
	if !in.Held.Has(ButtonFire) || in.Move.X != vmath.Scale {
		t.Fatalf("first sample %+v", in)
	}
	s.Sample(0)
	in = s.Sample(0)
	if in.Held != 0 || !vmath.V3IsZero(in.Move) {
		t.Errorf("hold expired sample %+v", in)
	}
	if in.Aim.X != vmath.Scale {
		t.Error("aim must follow last movement")
	}
	if other := s.Sample(1); other.Held != 0 {
		t.Error("player 1 received player 0 keys")
	}
}
