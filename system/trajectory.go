package system

import (
	"sync/atomic"

	"github.com/lixenwraith/arena/core"
	"github.com/lixenwraith/arena/engine"
	"github.com/lixenwraith/arena/event"
	"github.com/lixenwraith/arena/parameter"
	"github.com/lixenwraith/arena/trajectory"
)

// TrajectorySystem advances path followers and hands their bodies to physics when the path releases
type TrajectorySystem struct {
	engine.SystemBase
	entities []core.Entity
	finished []core.Entity

	statHandoffs *atomic.Int64
	statSnaps    *atomic.Int64
}

func NewTrajectorySystem(world *engine.World) engine.System {
	s := &TrajectorySystem{SystemBase: engine.NewSystemBase(world)}
	s.statHandoffs = s.Resource.Status.Ints.Get("trajectory.handoffs")
	s.statSnaps = s.Resource.Status.Ints.Get("trajectory.snaps")
	return s
}

func (s *TrajectorySystem) Name() string {
	return "trajectory"
}

func (s *TrajectorySystem) Priority() int {
	return parameter.PriorityTrajectory
}

func (s *TrajectorySystem) EventTypes() []event.EventType {
	return nil
}

func (s *TrajectorySystem) HandleEvent(event.GameEvent) {}

func (s *TrajectorySystem) Update() {
	dt := s.Resource.Time.DeltaTime

	s.entities = s.Component.Trajectory.AppendEntities(s.entities[:0])
	s.finished = s.finished[:0]
	for _, e := range s.entities {
		tc := s.Component.Trajectory.Ref(e)
		body := s.Component.Body.Ref(e)
		if body == nil {
			s.finished = append(s.finished, e)
			continue
		}

		step := tc.Advance(dt)
		body.Position = step.Position
		body.Rotation = step.Rotation
		if !step.Released {
			continue
		}

		// Physics owns the body from here
		body.Enabled = true
		body.Gravity = true
		body.Grounded = false
		body.Velocity = step.Velocity
		if tc.Phase == trajectory.PhaseHandedOff {
			s.statHandoffs.Add(1)
		} else {
			s.statSnaps.Add(1)
		}
		s.World.PushEvent(event.EventTrajectoryFinished, &event.TrajectoryPayload{
			Entity:   e,
			Phase:    tc.Phase,
			Position: step.Position,
			Velocity: step.Velocity,
		})
		s.finished = append(s.finished, e)
	}

	for _, e := range s.finished {
		s.Component.Trajectory.Remove(e)
	}
}
