package system

import (
	"time"

	"github.com/lixenwraith/arena/ability"
	"github.com/lixenwraith/arena/core"
	"github.com/lixenwraith/arena/engine"
	"github.com/lixenwraith/arena/event"
	"github.com/lixenwraith/arena/parameter"
	"github.com/lixenwraith/arena/physics"
	"github.com/lixenwraith/arena/vmath"
)

// strike is one hit landing on an actor
type strike struct {
	Source  core.Entity
	Target  core.Entity
	Ability ability.Type
	Impulse vmath.Vec3
	Stun    time.Duration
	Damage  int
}

// applyStrike mutates the target in place during the attacker's update
// A blocking target keeps a fraction of the knockback and takes no stun or damage
// Returns false when the target is not a living actor
func applyStrike(w *engine.World, s strike) bool {
	actor := w.Components.Actor.Ref(s.Target)
	body := w.Components.Body.Ref(s.Target)
	if actor == nil || body == nil || !actor.Alive() {
		return false
	}

	blocked := actor.Blocking
	if blocked {
		s.Impulse = vmath.V3Scale(s.Impulse, parameter.BlockedKnockbackScale)
		s.Stun = 0
		s.Damage = 0
	}

	if !vmath.V3IsZero(s.Impulse) {
		physics.ApplyImpulse(&body.Kinetic, s.Impulse)
		body.Grounded = false
		if !blocked {
			actor.Knockback.Start(parameter.KnockbackTime)
		}
	}
	if s.Stun > actor.Stun.Remaining {
		actor.Stun.Start(s.Stun)
	}
	if s.Damage > 0 {
		actor.Health -= s.Damage
		if actor.Health < 0 {
			actor.Health = 0
		}
	}

	w.PushEvent(event.EventAbilityHit, &event.HitPayload{
		Source:  s.Source,
		Target:  s.Target,
		Ability: s.Ability,
		Impulse: s.Impulse,
		Damage:  s.Damage,
		Blocked: blocked,
	})
	return true
}

// opponents selects living actors of other teams
func opponents(team uint8, self core.Entity) physics.Filter {
	return physics.Filter{Layers: physics.LayerActor, ExcludeTeam: team, Exclude: self}
}

// castOrigin is the point abilities emit from, chest height above the body
func castOrigin(pos vmath.Vec3) vmath.Vec3 {
	return vmath.V3Add(pos, vmath.Vec3{Y: parameter.ActorHeight})
}
