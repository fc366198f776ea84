package input

import "github.com/lixenwraith/arena/vmath"

// Buttons is a bit set of logical action buttons
type Buttons uint8

const (
	ButtonFire Buttons = 1 << iota
	ButtonAlt
	ButtonJump
	ButtonUtility
	ButtonHook
)

// Has reports whether every bit in b is set
func (bs Buttons) Has(b Buttons) bool { return bs&b == b && b != 0 }

func (bs Buttons) String() string {
	if bs == 0 {
		return "none"
	}
	names := [...]string{"fire", "alt", "jump", "utility", "hook"}
	out := ""
	for i, n := range names {
		if bs&(1<<i) == 0 {
			continue
		}
		if out != "" {
			out += "+"
		}
		out += n
	}
	return out
}

// PlayerInput is the per-tick device sample supplied by the input collaborator
// Move and Aim are in world space, Y ignored for movement
type PlayerInput struct {
	Move vmath.Vec3
	Aim  vmath.Vec3
	Held Buttons
}

// Frame is PlayerInput with edge-triggered presses derived for this tick
type Frame struct {
	PlayerInput
	Pressed Buttons
}

// Tracker derives press edges from held state, one per player
// Zero value is ready to use
type Tracker struct {
	prev Buttons
}

// Next consumes this tick's sample and returns the frame with Pressed set
// for buttons held now but not on the previous tick
func (t *Tracker) Next(in PlayerInput) Frame {
	f := Frame{PlayerInput: in, Pressed: in.Held &^ t.prev}
	t.prev = in.Held
	return f
}

// Reset forgets held state so the next held button counts as a fresh press
func (t *Tracker) Reset() {
	t.prev = 0
}
