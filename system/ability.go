package system

import (
	"sync/atomic"

	"github.com/lixenwraith/arena/ability"
	"github.com/lixenwraith/arena/component"
	"github.com/lixenwraith/arena/core"
	"github.com/lixenwraith/arena/engine"
	"github.com/lixenwraith/arena/event"
	"github.com/lixenwraith/arena/parameter"
	"github.com/lixenwraith/arena/physics"
	"github.com/lixenwraith/arena/status"
	"github.com/lixenwraith/arena/trajectory"
	"github.com/lixenwraith/arena/vmath"
)

// AbilitySystem runs the activation arbiter for every inventory and applies per-kind behaviours
type AbilitySystem struct {
	engine.SystemBase

	// Per-tick scratch, reused
	entities []core.Entity
	hits     []physics.Hit
	spawns   []spawnRequest
	thrown   []throwRequest

	statActivations *atomic.Int64
	statStarts      *atomic.Int64
	statStops       *atomic.Int64
	statHits        *atomic.Int64
	statStrength    *status.AtomicFixed
}

// castContext is what a behaviour sees when its slot changes phase
type castContext struct {
	Entity core.Entity
	Actor  *component.ActorComponent
	Body   *component.BodyComponent
	Inv    *component.InventoryComponent
	Slot   *ability.Ability
}

func NewAbilitySystem(world *engine.World) engine.System {
	s := &AbilitySystem{
		SystemBase: engine.NewSystemBase(world),
		hits:       make([]physics.Hit, 0, parameter.QueryHitCapacity),
	}
	s.statActivations = s.Resource.Status.Ints.Get("ability.activations")
	s.statStarts = s.Resource.Status.Ints.Get("ability.starts")
	s.statStops = s.Resource.Status.Ints.Get("ability.stops")
	s.statHits = s.Resource.Status.Ints.Get("ability.hits")
	s.statStrength = s.Resource.Status.Fixed.Get("ability.cast_strength")
	return s
}

func (s *AbilitySystem) Name() string {
	return "ability"
}

func (s *AbilitySystem) Priority() int {
	return parameter.PriorityAbility
}

func (s *AbilitySystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventGameReset}
}

func (s *AbilitySystem) HandleEvent(ev event.GameEvent) {
	if ev.Type != event.EventGameReset {
		return
	}
	s.entities = s.Component.Inventory.AppendEntities(s.entities[:0])
	for _, e := range s.entities {
		inv := s.Component.Inventory.Ref(e)
		equip(s.World, e, inv)
	}
}

func (s *AbilitySystem) Update() {
	dt := s.Resource.Time.DeltaTime

	s.entities = s.Component.Inventory.AppendEntities(s.entities[:0])
	for _, e := range s.entities {
		inv := s.Component.Inventory.Ref(e)
		actor := s.Component.Actor.Ref(e)
		body := s.Component.Body.Ref(e)
		if inv == nil || actor == nil || body == nil {
			continue
		}

		ctx := ability.Actor{
			Incapacitated: actor.Incapacitated(),
			Aim:           actor.Aim,
			Move:          actor.Move,
			Facing:        actor.Facing,
			Velocity:      body.Velocity,
		}

		var wasRunning [ability.TypeCount]bool
		for t := range inv.Slots {
			wasRunning[t] = inv.Slots[t].IsRunning()
		}

		frame := s.Resource.Input.Frame(actor.Player)
		res := ability.Arbitrate(&inv.Inventory, &ctx, frame.Pressed, !actor.Carrying.IsNull(), dt)

		cc := castContext{Entity: e, Actor: actor, Body: body, Inv: inv}
		for t := ability.Type(0); t < ability.TypeCount; t++ {
			slot := &inv.Slots[t]
			if slot.Data == nil {
				continue
			}
			cc.Slot = slot
			r := res.Slots[t]
			st := r.State

			// Stopped early: preempted, suppressed or incapacitated
			if wasRunning[t] && !st.IsDelayed && !st.IsActive && !st.IsActiveStartTick && !st.IsActiveEndTick {
				s.end(&cc, true)
			}
			if st.IsActiveStartTick {
				s.start(&cc)
			}
			if st.IsActiveEndTick {
				s.end(&cc, false)
			}
			if r.Activated {
				s.statActivations.Add(1)
				s.statStrength.Store(inv.Cast.Strength)
				s.World.PushEvent(event.EventAbilityActivated, &event.AbilityPayload{
					Entity:    e,
					Ability:   t,
					Direction: inv.Cast.Direction,
					Strength:  inv.Cast.Strength,
				})
			}
		}

		// Stateful kinds reflect the slot each tick rather than trusting start/end edges
		actor.Blocking = slotActive(&inv.Inventory, ability.Block)
		actor.Hidden = slotActive(&inv.Inventory, ability.Stealth)
	}

	// Structural changes after every caster is done with its store pointers
	for _, req := range s.thrown {
		s.releaseBall(req)
	}
	s.thrown = s.thrown[:0]
	for _, req := range s.spawns {
		spawnPayload(s.World, req)
	}
	clear(s.spawns)
	s.spawns = s.spawns[:0]
}

func (s *AbilitySystem) start(cc *castContext) {
	s.statStarts.Add(1)
	if b := behaviors[cc.Slot.Type]; b.start != nil {
		b.start(s, cc)
	}
	s.World.PushEvent(event.EventAbilityStarted, &event.AbilityPayload{
		Entity:    cc.Entity,
		Ability:   cc.Slot.Type,
		Direction: cc.Inv.Cast.Direction,
		Strength:  cc.Inv.Cast.Strength,
	})
}

func (s *AbilitySystem) end(cc *castContext, stopped bool) {
	if stopped {
		s.statStops.Add(1)
	}
	if b := behaviors[cc.Slot.Type]; b.end != nil {
		b.end(s, cc)
	}
	s.World.PushEvent(event.EventAbilityEnded, &event.AbilityPayload{
		Entity:  cc.Entity,
		Ability: cc.Slot.Type,
		Stopped: stopped,
	})
}

func slotActive(inv *ability.Inventory, t ability.Type) bool {
	a, ok := inv.Ability(t)
	return ok && a.IsActive()
}

// throwRequest is a ball release deferred to the end of the caster loop
type throwRequest struct {
	Thrower core.Entity
	Ball    core.Entity
	Source  ability.Type
	Path    trajectory.Path
	Profile trajectory.Profile
}

// releaseBall hands the ball from its carrier to a path follower
func (s *AbilitySystem) releaseBall(req throwRequest) {
	ball := s.Component.Ball.Ref(req.Ball)
	body := s.Component.Body.Ref(req.Ball)
	if ball == nil || body == nil || ball.Carrier != req.Thrower {
		return
	}
	ball.Carrier = 0
	ball.LastThrower = req.Thrower
	ball.PickupBlock.Start(parameter.BallPickupCooldown)
	if actor := s.Component.Actor.Ref(req.Thrower); actor != nil {
		actor.Carrying = 0
	}

	st := trajectory.NewState(req.Path, req.Profile.Speed, req.Profile.HandoffDistance, req.Profile.Mode)
	body.Enabled = false
	body.Velocity = vmath.Vec3{}
	body.Position = st.Position()
	body.Rotation = st.Rotation()
	pos := body.Position

	s.Component.Trajectory.Set(req.Ball, component.TrajectoryComponent{
		State:  st,
		Owner:  req.Thrower,
		Source: req.Source,
	})
	s.World.PushEvent(event.EventBallThrown, &event.BallPayload{Ball: req.Ball, Actor: req.Thrower, Position: pos})
}
