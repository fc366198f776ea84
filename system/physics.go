package system

import (
	"github.com/lixenwraith/arena/ability"
	"github.com/lixenwraith/arena/component"
	"github.com/lixenwraith/arena/core"
	"github.com/lixenwraith/arena/engine"
	"github.com/lixenwraith/arena/event"
	"github.com/lixenwraith/arena/parameter"
	"github.com/lixenwraith/arena/physics"
	"github.com/lixenwraith/arena/vmath"
)

// PhysicsSystem steers actors, integrates enabled bodies, separates actors and rebuilds the query space
type PhysicsSystem struct {
	engine.SystemBase
	entities []core.Entity
	actors   []core.Entity
}

func NewPhysicsSystem(world *engine.World) engine.System {
	return &PhysicsSystem{SystemBase: engine.NewSystemBase(world)}
}

func (s *PhysicsSystem) Name() string {
	return "physics"
}

func (s *PhysicsSystem) Priority() int {
	return parameter.PriorityPhysics
}

func (s *PhysicsSystem) EventTypes() []event.EventType {
	return nil
}

func (s *PhysicsSystem) HandleEvent(event.GameEvent) {}

func (s *PhysicsSystem) Update() {
	dt := vmath.FromDuration(s.Resource.Time.DeltaTime)

	s.entities = s.Component.Body.AppendEntities(s.entities[:0])
	for _, e := range s.entities {
		body := s.Component.Body.Ref(e)
		if !body.Enabled {
			continue
		}
		if actor := s.Component.Actor.Ref(e); actor != nil {
			if !actor.Alive() {
				continue
			}
			s.steer(e, actor.Move, actor.SpeedMultiplier, actor.Incapacitated(), body)
		}
		body.Grounded = physics.Integrate(&body.Kinetic, body.Radius, body.Gravity, dt)
		physics.ReflectArena(&body.Kinetic, body.Radius)
	}

	s.separateActors()
	s.rebuildSpace()
}

// steer drives grounded actors at controller speed unless a dash or knockback owns the velocity
func (s *PhysicsSystem) steer(e core.Entity, move vmath.Vec3, multiplier int64, incapacitated bool, body *component.BodyComponent) {
	if incapacitated || !body.Grounded {
		return
	}
	if inv := s.Component.Inventory.Ref(e); inv != nil {
		if a, ok := inv.Ability(ability.Dash); ok && a.IsActive() {
			return
		}
	}
	speed := vmath.Mul(parameter.ActorMoveSpeed, multiplier)
	v := vmath.V3Scale(move, speed)
	body.Velocity.X, body.Velocity.Z = v.X, v.Z
}

// separateActors resolves pairwise overlap in ascending handle order
func (s *PhysicsSystem) separateActors() {
	s.actors = s.actors[:0]
	for _, e := range s.entities {
		if actor := s.Component.Actor.Ref(e); actor != nil && actor.Alive() {
			s.actors = append(s.actors, e)
		}
	}
	for i := 0; i < len(s.actors); i++ {
		a := s.Component.Body.Ref(s.actors[i])
		for j := i + 1; j < len(s.actors); j++ {
			b := s.Component.Body.Ref(s.actors[j])
			pa, pb, ok := physics.SeparateOverlap(a.Position, b.Position, a.Radius, b.Radius)
			if !ok {
				continue
			}
			a.Position, b.Position = pa, pb
			physics.ReflectArena(&a.Kinetic, a.Radius)
			physics.ReflectArena(&b.Kinetic, b.Radius)
		}
	}
}

// rebuildSpace syncs the query space with enabled bodies and living actors
// Carried balls and path-following payloads stay out of queries
func (s *PhysicsSystem) rebuildSpace() {
	space := s.Resource.Space
	space.Clear()
	for _, e := range s.entities {
		body := s.Component.Body.Ref(e)
		if actor := s.Component.Actor.Ref(e); actor != nil {
			if !actor.Alive() {
				continue
			}
		} else if !body.Enabled {
			continue
		}
		space.Insert(e, body.Position, body.Radius, body.Team, body.Layer)
	}
}
