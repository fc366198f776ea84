package system

import (
	"sync/atomic"

	"github.com/lixenwraith/arena/component"
	"github.com/lixenwraith/arena/core"
	"github.com/lixenwraith/arena/engine"
	"github.com/lixenwraith/arena/event"
	"github.com/lixenwraith/arena/parameter"
	"github.com/lixenwraith/arena/physics"
	"github.com/lixenwraith/arena/status"
	"github.com/lixenwraith/arena/vmath"
)

// BallSystem owns possession: carry, drop on incapacitation, and pickup of a slow loose ball
type BallSystem struct {
	engine.SystemBase
	entities []core.Entity
	hits     []physics.Hit

	statPickups *atomic.Int64
	statDrops   *atomic.Int64
	statHeight  *status.AtomicFixed
}

func NewBallSystem(world *engine.World) engine.System {
	s := &BallSystem{
		SystemBase: engine.NewSystemBase(world),
		hits:       make([]physics.Hit, 0, parameter.QueryHitCapacity),
	}
	s.statPickups = s.Resource.Status.Ints.Get("ball.pickups")
	s.statDrops = s.Resource.Status.Ints.Get("ball.drops")
	s.statHeight = s.Resource.Status.Fixed.Get("ball.height")
	return s
}

func (s *BallSystem) Name() string {
	return "ball"
}

func (s *BallSystem) Priority() int {
	return parameter.PriorityBall
}

func (s *BallSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventGameReset}
}

func (s *BallSystem) HandleEvent(ev event.GameEvent) {
	if ev.Type != event.EventGameReset {
		return
	}
	s.entities = s.Component.Ball.AppendEntities(s.entities[:0])
	for _, e := range s.entities {
		ball := s.Component.Ball.Ref(e)
		if carrier := s.Component.Actor.Ref(ball.Carrier); carrier != nil {
			carrier.Carrying = 0
		}
		ball.Carrier = 0
		ball.LastThrower = 0
		ball.PickupBlock.Stop()
		if body := s.Component.Body.Ref(e); body != nil {
			body.Position = ball.Spawn
			body.Velocity = vmath.Vec3{}
			body.Enabled = true
		}
		s.Component.Trajectory.Remove(e)
	}
}

func (s *BallSystem) Update() {
	dt := s.Resource.Time.DeltaTime

	s.entities = s.Component.Ball.AppendEntities(s.entities[:0])
	for _, e := range s.entities {
		ball := s.Component.Ball.Ref(e)
		body := s.Component.Body.Ref(e)
		if body == nil {
			continue
		}
		ball.PickupBlock.Tick(dt)
		s.statHeight.Store(body.Position.Y)

		if !ball.Carrier.IsNull() {
			s.carry(e, ball.Carrier, body)
			continue
		}

		// In flight on a throw arc, or moving too fast to catch
		if !body.Enabled || vmath.V3Mag(body.Velocity) > parameter.BallPickupMaxSpeed {
			continue
		}
		s.tryPickup(e, body.Position)
	}
}

// carry pins the ball to the carrier's hand, dropping it when the carrier cannot hold it
func (s *BallSystem) carry(e, carrier core.Entity, body *component.BodyComponent) {
	actor := s.Component.Actor.Ref(carrier)
	cb := s.Component.Body.Ref(carrier)
	if actor == nil || cb == nil || actor.Incapacitated() {
		s.drop(e, carrier, body)
		return
	}

	fwd := vmath.V3NormalizeOr(actor.Facing, vmath.V3Forward)
	body.Position = vmath.V3Add(cb.Position, vmath.Vec3{Y: parameter.BallCarryOffset.Y})
	body.Position = vmath.V3Add(body.Position, vmath.V3Scale(fwd, parameter.BallCarryOffset.Z))
	body.Velocity = cb.Velocity
	body.Rotation = cb.Rotation
	body.Enabled = false
}

func (s *BallSystem) drop(e, carrier core.Entity, body *component.BodyComponent) {
	ball := s.Component.Ball.Ref(e)
	ball.Carrier = 0
	if actor := s.Component.Actor.Ref(carrier); actor != nil {
		actor.Carrying = 0
	}
	body.Enabled = true
	body.Grounded = false
	s.statDrops.Add(1)
	s.World.PushEvent(event.EventBallDropped, &event.BallPayload{Ball: e, Actor: carrier, Position: body.Position})
}

// tryPickup gives the ball to the nearest eligible actor, ties broken by entity handle
func (s *BallSystem) tryPickup(e core.Entity, pos vmath.Vec3) {
	ball := s.Component.Ball.Ref(e)
	f := physics.Filter{Layers: physics.LayerActor}
	s.hits = s.Resource.Space.OverlapSphere(pos, parameter.BallPickupRadius, f, s.hits[:0])
	for _, h := range s.hits {
		if h.Entity == ball.LastThrower && ball.PickupBlock.Running {
			continue
		}
		actor := s.Component.Actor.Ref(h.Entity)
		if actor == nil || actor.Incapacitated() || !actor.Carrying.IsNull() {
			continue
		}
		ball.Carrier = h.Entity
		actor.Carrying = e
		s.statPickups.Add(1)
		s.World.PushEvent(event.EventBallPickup, &event.BallPayload{Ball: e, Actor: h.Entity, Position: pos})
		return
	}
}
