package system

import (
	"testing"

	"github.com/lixenwraith/arena/content"
	"github.com/lixenwraith/arena/event"
	"github.com/lixenwraith/arena/input"
	"github.com/lixenwraith/arena/parameter"
	"github.com/lixenwraith/arena/vmath"
)

// xorshift is a tiny deterministic input source
type xorshift uint64

func (x *xorshift) next() uint64 {
	v := uint64(*x)
	v ^= v << 13
	v ^= v >> 7
	v ^= v << 17
	*x = xorshift(v)
	return v
}

// stick returns one of eight directions or neutral
func (x *xorshift) stick() vmath.Vec3 {
	r := x.next() % 9
	if r == 8 {
		return vmath.Vec3{}
	}
	turn := int64(r) * vmath.Scale / 8
	return vmath.Vec3{X: vmath.Sin(turn), Z: vmath.Cos(turn)}
}

// scriptedInputs produces the same per-tick input for every replay of a seed
func scriptedInputs(seed uint64, players, ticks int) [][]input.PlayerInput {
	x := xorshift(seed)
	out := make([][]input.PlayerInput, ticks)
	cur := make([]input.PlayerInput, players)
	for i := range out {
		for p := range cur {
			if x.next()%6 == 0 {
				cur[p].Move = x.stick()
			}
			if x.next()%10 == 0 {
				cur[p].Aim = x.stick()
			}
			if x.next()%4 == 0 {
				cur[p].Held = input.Buttons(x.next() & 0x1f)
			}
		}
		out[i] = append([]input.PlayerInput(nil), cur...)
	}
	return out
}

const replayResetTick = 900

func replay(t *testing.T, inputs [][]input.PlayerInput) ([]uint64, int) {
	t.Helper()
	cat := content.MustDefault()
	cfg, err := ArenaFromContent(cat)
	if err != nil {
		t.Fatalf("ArenaFromContent: %v", err)
	}
	a := NewArena(cat, cfg)
	w := a.World

	activations := 0
	w.Observe(event.SinkFunc(func(ev event.GameEvent) {
		if ev.Type == event.EventAbilityActivated {
			activations++
		}
	}))

	sums := make([]uint64, len(inputs))
	for i, in := range inputs {
		copy(w.Resources.Input.Players, in)
		if i == replayResetTick {
			w.PushEvent(event.EventGameReset, nil)
		}
		w.Step()
		sums[i] = w.Checksum()
	}
	return sums, activations
}

func TestReplayIsDeterministic(t *testing.T) {
	inputs := scriptedInputs(0x9e3779b97f4a7c15, 2, 2000)

	first, activations := replay(t, inputs)
	second, _ := replay(t, inputs)

	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("checksum diverged at tick %d: %x vs %x", i+1, first[i], second[i])
		}
	}
	if activations == 0 {
		t.Fatal("scripted input never activated an ability")
	}
}

func TestReplayDetectsDifferentInput(t *testing.T) {
	const changeTick = 10
	inputs := scriptedInputs(42, 2, 300)
	base, _ := replay(t, inputs)

	inputs[changeTick][0].Held ^= input.ButtonJump
	inputs[changeTick][0].Move = vmath.Vec3{X: vmath.Scale}
	changed, _ := replay(t, inputs)

	for i := 0; i < changeTick; i++ {
		if base[i] != changed[i] {
			t.Fatalf("checksum differs at tick %d, before the input change", i+1)
		}
	}
	if base[changeTick] == changed[changeTick] {
		t.Error("input change did not alter the checksum of its own tick")
	}
}

// pushIntoWall walks one actor into the +X wall, idling on tick skip, and returns the final checksum
func pushIntoWall(t *testing.T, skip int) uint64 {
	t.Helper()
	cat := content.MustDefault()
	loadout, err := cat.Loadout("striker")
	if err != nil {
		t.Fatal(err)
	}
	w := NewArena(cat, ArenaConfig{Players: 1}).World
	SpawnActor(w, ActorSpec{
		Team:     parameter.TeamHome,
		Player:   0,
		Position: vmath.Vec3{X: parameter.ArenaHalfWidth - vmath.FromInt(2)},
		Facing:   forward,
		Loadout:  loadout,
	})

	for i := 0; i < 120; i++ {
		move := vmath.Vec3{X: vmath.Scale}
		if i == skip {
			move = vmath.Vec3{}
		}
		w.Resources.Input.Players[0] = input.PlayerInput{Move: move}
		w.Step()
	}
	return w.Checksum()
}

// A transient input difference is erased once the wall clamps both runs to the same position
func TestReplayReconvergesAfterWallClamp(t *testing.T) {
	steady := pushIntoWall(t, -1)
	if pushIntoWall(t, 3) != steady {
		t.Error("runs pinned to the same wall disagree")
	}
}
