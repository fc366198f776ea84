package system

import (
	"context"
	"log"
	"sync/atomic"

	"github.com/lixenwraith/arena/component"
	"github.com/lixenwraith/arena/core"
	"github.com/lixenwraith/arena/engine"
	"github.com/lixenwraith/arena/event"
	"github.com/lixenwraith/arena/parameter"
	"github.com/lixenwraith/arena/vmath"
)

// ActorSystem ticks status timers and drives the alive/down lifecycle
// Respawn restores health and position and resets every ability slot, cooldowns included
type ActorSystem struct {
	engine.SystemBase
	entities []core.Entity
	ctx      context.Context

	statDowns    *atomic.Int64
	statRespawns *atomic.Int64
}

func NewActorSystem(world *engine.World) engine.System {
	s := &ActorSystem{
		SystemBase: engine.NewSystemBase(world),
		ctx:        context.Background(),
	}
	s.statDowns = s.Resource.Status.Ints.Get("actor.downs")
	s.statRespawns = s.Resource.Status.Ints.Get("actor.respawns")
	return s
}

func (s *ActorSystem) Name() string {
	return "actor"
}

func (s *ActorSystem) Priority() int {
	return parameter.PriorityActor
}

func (s *ActorSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventGameReset}
}

func (s *ActorSystem) HandleEvent(ev event.GameEvent) {
	if ev.Type != event.EventGameReset {
		return
	}
	s.entities = s.Component.Actor.AppendEntities(s.entities[:0])
	for _, e := range s.entities {
		actor := s.Component.Actor.Ref(e)
		if !actor.Alive() {
			s.transition(e, actor, component.LifecycleRespawn)
		}
		s.restore(e, actor)
	}
}

func (s *ActorSystem) Update() {
	dt := s.Resource.Time.DeltaTime

	s.entities = s.Component.Actor.AppendEntities(s.entities[:0])
	for _, e := range s.entities {
		actor := s.Component.Actor.Ref(e)

		actor.Stun.Tick(dt)
		actor.Knockback.Tick(dt)
		if done, _ := actor.SpeedBuff.Tick(dt); done {
			actor.SpeedMultiplier = vmath.Scale
		}

		switch {
		case actor.Alive() && actor.Health <= 0:
			if !s.transition(e, actor, component.LifecycleKill) {
				continue
			}
			s.down(e, actor)

		case !actor.Alive():
			if done, _ := actor.Respawn.Tick(dt); done {
				if !s.transition(e, actor, component.LifecycleRespawn) {
					continue
				}
				s.restore(e, actor)
				s.statRespawns.Add(1)
				s.World.PushEvent(event.EventActorRespawned, &event.ActorPayload{Entity: e, Team: actor.Team, Position: actor.Spawn})
			}
		}
	}
}

// transition fires a lifecycle event, reporting whether the machine accepted it
func (s *ActorSystem) transition(e core.Entity, actor *component.ActorComponent, name string) bool {
	if actor.Lifecycle == nil {
		return false
	}
	if err := actor.Lifecycle.Event(s.ctx, name); err != nil {
		log.Printf("actor %v: lifecycle %s from %s: %v", e, name, actor.Lifecycle.Current(), err)
		return false
	}
	return true
}

// down stops the actor where it stands and arms the respawn timer
func (s *ActorSystem) down(e core.Entity, actor *component.ActorComponent) {
	actor.Stun.Stop()
	actor.Knockback.Stop()
	actor.SpeedBuff.Stop()
	actor.SpeedMultiplier = vmath.Scale
	actor.Respawn.Start(parameter.RespawnDelay)

	pos := actor.Spawn
	if body := s.Component.Body.Ref(e); body != nil {
		body.Velocity = vmath.Vec3{}
		pos = body.Position
	}
	s.statDowns.Add(1)
	s.World.PushEvent(event.EventActorDown, &event.ActorPayload{Entity: e, Team: actor.Team, Position: pos})
}

// restore returns an actor to its spawn state; the loadout is kept, every slot is reset
func (s *ActorSystem) restore(e core.Entity, actor *component.ActorComponent) {
	actor.Health = actor.MaxHealth
	actor.Stun.Stop()
	actor.Knockback.Stop()
	actor.Respawn.Stop()
	actor.SpeedBuff.Stop()
	actor.SpeedMultiplier = vmath.Scale
	actor.Blocking = false
	actor.Hidden = false

	if body := s.Component.Body.Ref(e); body != nil {
		body.Position = actor.Spawn
		body.Velocity = vmath.Vec3{}
		// Systems ahead of physics next tick still query this tick's space
		s.Resource.Space.Move(e, actor.Spawn)
		body.Enabled = true
		body.Grounded = false
	}
	if inv := s.Component.Inventory.Ref(e); inv != nil {
		inv.Reset()
	}
}
