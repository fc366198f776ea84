package trajectory

import (
	"time"

	"github.com/lixenwraith/arena/core"
	"github.com/lixenwraith/arena/parameter"
	"github.com/lixenwraith/arena/physics"
	"github.com/lixenwraith/arena/vmath"
)

// PayloadPhase of a payload; transitions only move forward
type PayloadPhase uint8

const (
	PayloadFlying PayloadPhase = iota
	PayloadArmed
	PayloadExploded
	PayloadContactExploded
	PayloadExpired
)

func (p PayloadPhase) String() string {
	switch p {
	case PayloadArmed:
		return "armed"
	case PayloadExploded:
		return "exploded"
	case PayloadContactExploded:
		return "contact_exploded"
	case PayloadExpired:
		return "expired"
	}
	return "flying"
}

// Payload is the explosive carried by a projectile entity
// Lives beyond the path: it keeps ticking after handoff until it goes off or expires
type Payload struct {
	Profile PayloadProfile
	Owner   core.Entity
	Team    uint8

	Life core.Timer
	Fuse core.Timer

	Armed    bool
	Exploded bool
	Phase    PayloadPhase
}

// Effects applies detonation outcomes to the world
type Effects interface {
	// Knockback hits target with impulse; blocking reactions are the implementation's concern
	Knockback(source, target core.Entity, impulse vmath.Vec3, stun time.Duration, damage int)
	// Destroy schedules the payload entity for removal
	Destroy(e core.Entity)
}

// Context is the per-tick view of the payload entity supplied by its system
type Context struct {
	Entity   core.Entity
	Position vmath.Vec3
	Velocity vmath.Vec3
	Released bool // Path handed off; physics owns the body
	Query    physics.Querier
	Effects  Effects
	Hits     []physics.Hit // Scratch owned by the caller, reused across calls
}

// NewPayload arms the life timer
func NewPayload(p PayloadProfile, owner core.Entity, team uint8) Payload {
	pl := Payload{Profile: p, Owner: owner, Team: team}
	pl.Life.Start(p.LifeTime)
	return pl
}

// Done reports a payload that exploded or expired
func (p *Payload) Done() bool {
	return p.Exploded || p.Phase == PayloadExpired
}

// Update runs life, contact and ground fuse for one tick, returning the phase reached
func (p *Payload) Update(ctx *Context, dt time.Duration) PayloadPhase {
	if p.Done() {
		return p.Phase
	}

	if done, _ := p.Life.Tick(dt); done {
		p.Phase = PayloadExpired
		ctx.Effects.Destroy(ctx.Entity)
		return p.Phase
	}

	if p.Profile.ContactRadius > 0 {
		ctx.Hits = ctx.Query.OverlapSphere(ctx.Position, p.Profile.ContactRadius, p.targets(ctx.Entity), ctx.Hits[:0])
		if len(ctx.Hits) > 0 {
			p.Detonate(ctx)
			p.Phase = PayloadContactExploded
			return p.Phase
		}
	}

	switch {
	case p.Armed:
		if done, _ := p.Fuse.Tick(dt); done {
			p.Detonate(ctx)
		}
	case ctx.Released && vmath.V3Mag(ctx.Velocity) <= parameter.PayloadGroundSpeed:
		p.Armed = true
		p.Phase = PayloadArmed
		p.Fuse.Start(p.Profile.FuseTime)
	}
	return p.Phase
}

// Detonate hits every opposing body in the blast radius and destroys the payload
// Idempotent: returns the hit count on the first call, 0 afterwards
func (p *Payload) Detonate(ctx *Context) int {
	if p.Exploded {
		return 0
	}
	p.Exploded = true
	p.Phase = PayloadExploded
	p.Fuse.Stop()

	ctx.Hits = ctx.Query.OverlapSphere(ctx.Position, p.Profile.ExplosionRadius, p.targets(ctx.Entity), ctx.Hits[:0])
	for _, h := range ctx.Hits {
		away := vmath.V3NormalizeOr(vmath.V3Horizontal(vmath.V3Sub(h.Position, ctx.Position)), vmath.V3Forward)
		impulse := vmath.V3Scale(away, p.Profile.Knockback)
		impulse.Y += p.Profile.KnockbackLift
		ctx.Effects.Knockback(p.Owner, h.Entity, impulse, p.Profile.Stun, p.Profile.Damage)
	}
	ctx.Effects.Destroy(ctx.Entity)
	return len(ctx.Hits)
}

// targets selects opposing actors, never the payload itself
func (p *Payload) targets(self core.Entity) physics.Filter {
	return physics.Filter{Layers: physics.LayerActor, ExcludeTeam: p.Team, Exclude: self}
}
