package system

import (
	"github.com/lixenwraith/arena/core"
	"github.com/lixenwraith/arena/engine"
	"github.com/lixenwraith/arena/event"
	"github.com/lixenwraith/arena/input"
	"github.com/lixenwraith/arena/parameter"
	"github.com/lixenwraith/arena/vmath"
)

// InputSystem derives press edges per player and steers actors from the sampled sticks
type InputSystem struct {
	engine.SystemBase
	trackers []input.Tracker
	entities []core.Entity
}

func NewInputSystem(world *engine.World) engine.System {
	return &InputSystem{SystemBase: engine.NewSystemBase(world)}
}

func (s *InputSystem) Name() string {
	return "input"
}

func (s *InputSystem) Priority() int {
	return parameter.PriorityInput
}

func (s *InputSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventGameReset}
}

func (s *InputSystem) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventGameReset {
		for i := range s.trackers {
			s.trackers[i].Reset()
		}
	}
}

func (s *InputSystem) Update() {
	in := s.Resource.Input
	if len(s.trackers) != len(in.Players) {
		s.trackers = make([]input.Tracker, len(in.Players))
	}
	if len(in.Frames) != len(in.Players) {
		in.Frames = make([]input.Frame, len(in.Players))
	}
	for i := range in.Players {
		in.Frames[i] = s.trackers[i].Next(in.Players[i])
	}

	s.entities = s.Component.Actor.AppendEntities(s.entities[:0])
	for _, e := range s.entities {
		actor := s.Component.Actor.Ref(e)
		if actor.Player < 0 {
			continue
		}
		f := in.Frame(actor.Player)
		actor.Move = vmath.V3ClampMagnitude(vmath.V3Horizontal(f.Move), vmath.Scale)
		actor.Aim = vmath.V3ClampMagnitude(vmath.V3Horizontal(f.Aim), vmath.Scale)
		if !vmath.V3IsZero(actor.Move) && !actor.Incapacitated() {
			actor.Facing = vmath.V3Normalize(actor.Move)
		}
	}
}
