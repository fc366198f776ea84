package system

import (
	"sync/atomic"
	"time"

	"github.com/lixenwraith/arena/ability"
	"github.com/lixenwraith/arena/component"
	"github.com/lixenwraith/arena/core"
	"github.com/lixenwraith/arena/engine"
	"github.com/lixenwraith/arena/event"
	"github.com/lixenwraith/arena/parameter"
	"github.com/lixenwraith/arena/physics"
	"github.com/lixenwraith/arena/trajectory"
	"github.com/lixenwraith/arena/vmath"
)

// PayloadSystem runs life, contact and ground fuse of every payload against the synced query space
// It is the trajectory.Effects of its payloads: hits mutate targets in place, destruction is deferred
type PayloadSystem struct {
	engine.SystemBase
	entities []core.Entity
	hits     []physics.Hit
	source   ability.Type // Kind of the payload being updated

	statExplosions *atomic.Int64
	statExpired    *atomic.Int64
}

func NewPayloadSystem(world *engine.World) engine.System {
	s := &PayloadSystem{
		SystemBase: engine.NewSystemBase(world),
		hits:       make([]physics.Hit, 0, parameter.QueryHitCapacity),
	}
	s.statExplosions = s.Resource.Status.Ints.Get("payload.explosions")
	s.statExpired = s.Resource.Status.Ints.Get("payload.expired")
	return s
}

func (s *PayloadSystem) Name() string {
	return "payload"
}

func (s *PayloadSystem) Priority() int {
	return parameter.PriorityPayload
}

func (s *PayloadSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventGameReset}
}

// HandleEvent clears every live payload on reset
func (s *PayloadSystem) HandleEvent(ev event.GameEvent) {
	if ev.Type != event.EventGameReset {
		return
	}
	s.entities = s.Component.Payload.AppendEntities(s.entities[:0])
	for _, e := range s.entities {
		s.Destroy(e)
	}
}

func (s *PayloadSystem) Update() {
	dt := s.Resource.Time.DeltaTime

	s.entities = s.Component.Payload.AppendEntities(s.entities[:0])
	for _, e := range s.entities {
		p := s.Component.Payload.Ref(e)
		body := s.Component.Body.Ref(e)
		if body == nil || p.Done() || s.Component.Death.Has(e) {
			continue
		}

		s.source = p.Source
		ctx := trajectory.Context{
			Entity:   e,
			Position: body.Position,
			Velocity: body.Velocity,
			Released: !s.Component.Trajectory.Has(e),
			Query:    s.Resource.Space,
			Effects:  s,
			Hits:     s.hits,
		}
		before := p.Phase
		phase := p.Update(&ctx, dt)
		s.hits = ctx.Hits
		if phase == before {
			continue
		}

		switch phase {
		case trajectory.PayloadArmed:
			s.World.PushEvent(event.EventPayloadArmed, &event.PayloadPayload{Entity: e, Owner: p.Owner, Position: body.Position})
		case trajectory.PayloadExploded, trajectory.PayloadContactExploded:
			s.statExplosions.Add(1)
			s.World.PushEvent(event.EventPayloadExploded, &event.ExplosionPayload{
				Entity:   e,
				Owner:    p.Owner,
				Position: body.Position,
				Radius:   p.Profile.ExplosionRadius,
				Hits:     len(ctx.Hits),
				Contact:  phase == trajectory.PayloadContactExploded,
			})
		case trajectory.PayloadExpired:
			s.statExpired.Add(1)
			s.World.PushEvent(event.EventPayloadExpired, &event.PayloadPayload{Entity: e, Owner: p.Owner, Position: body.Position})
		}
	}
}

// Knockback implements trajectory.Effects
func (s *PayloadSystem) Knockback(source, target core.Entity, impulse vmath.Vec3, stun time.Duration, damage int) {
	applyStrike(s.World, strike{
		Source:  source,
		Target:  target,
		Ability: s.source,
		Impulse: impulse,
		Stun:    stun,
		Damage:  damage,
	})
}

// Destroy implements trajectory.Effects; removal happens in DeathSystem at the end of the tick
func (s *PayloadSystem) Destroy(e core.Entity) {
	s.Component.Death.Set(e, component.DeathComponent{})
}
