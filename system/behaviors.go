package system

import (
	"github.com/lixenwraith/arena/ability"
	"github.com/lixenwraith/arena/parameter"
	"github.com/lixenwraith/arena/physics"
	"github.com/lixenwraith/arena/trajectory"
	"github.com/lixenwraith/arena/vmath"
)

// behavior is the per-kind effect of an ability, keyed by its type tag
// start runs on the tick the delay hands off to the active duration, end when the duration stops
type behavior struct {
	start func(s *AbilitySystem, cc *castContext)
	end   func(s *AbilitySystem, cc *castContext)
}

// Block and Stealth have no edges: AbilitySystem mirrors their active state onto the actor every tick
var behaviors = [ability.TypeCount]behavior{
	ability.Attack:     {start: attackStart},
	ability.Block:      {start: faceCast},
	ability.Dash:       {start: dashStart, end: dashEnd},
	ability.Jump:       {start: jumpStart},
	ability.Hook:       {start: hookStart},
	ability.ThrowShort: {start: throwStart},
	ability.ThrowLong:  {start: throwStart},
	ability.Bomb:       {start: bombStart},
	ability.Trap:       {start: trapStart},
	ability.SpeedBoost: {start: speedBoostStart},
	ability.Stealth:    {},
}

// castDir is the horizontal cast direction captured at activation
func castDir(cc *castContext) vmath.Vec3 {
	return vmath.V3NormalizeOr(vmath.V3Horizontal(cc.Inv.Cast.Direction), vmath.V3Forward)
}

func faceCast(_ *AbilitySystem, cc *castContext) {
	dir := castDir(cc)
	cc.Body.Rotation = vmath.LookRotation(dir)
	cc.Actor.Facing = dir
}

// attackStart strikes every opponent inside a cone of Range around the cast direction
func attackStart(s *AbilitySystem, cc *castContext) {
	faceCast(s, cc)
	d := cc.Slot.Data
	dir := castDir(cc)
	origin := cc.Body.Position

	s.hits = s.Resource.Space.OverlapSphere(origin, d.Range, opponents(cc.Actor.Team, cc.Entity), s.hits[:0])
	for _, h := range s.hits {
		to := vmath.V3Horizontal(vmath.V3Sub(h.Position, origin))
		if !vmath.V3IsZero(to) && vmath.V3Dot(vmath.V3Normalize(to), dir) < parameter.AttackConeCos {
			continue
		}
		impulse := vmath.V3Scale(dir, d.Impulse)
		impulse.Y += d.Lift
		if applyStrike(s.World, strike{
			Source:  cc.Entity,
			Target:  h.Entity,
			Ability: ability.Attack,
			Impulse: impulse,
			Stun:    d.Stun,
			Damage:  d.Damage,
		}) {
			s.statHits.Add(1)
		}
	}
}

// dashStart bursts along the cast direction, adding to or replacing the planar velocity
func dashStart(s *AbilitySystem, cc *castContext) {
	faceCast(s, cc)
	d := cc.Slot.Data
	v := vmath.V3Scale(castDir(cc), d.Speed)
	if d.PreserveVelocity {
		physics.ApplyImpulse(&cc.Body.Kinetic, v)
		return
	}
	cc.Body.Velocity.X, cc.Body.Velocity.Z = v.X, v.Z
}

// dashEnd bleeds the burst back down to controller speed
func dashEnd(_ *AbilitySystem, cc *castContext) {
	if cc.Slot.Data.PreserveVelocity {
		return
	}
	h := vmath.V3ClampMagnitude(vmath.V3Horizontal(cc.Body.Velocity), parameter.ActorMoveSpeed)
	cc.Body.Velocity.X, cc.Body.Velocity.Z = h.X, h.Z
}

func jumpStart(_ *AbilitySystem, cc *castContext) {
	if !cc.Body.Grounded {
		return
	}
	cc.Body.Velocity.Y = cc.Slot.Data.Impulse
	cc.Body.Grounded = false
}

// hookStart pulls the first actor or loose ball along the cast ray back toward the caster
func hookStart(s *AbilitySystem, cc *castContext) {
	faceCast(s, cc)
	d := cc.Slot.Data
	dir := castDir(cc)
	origin := castOrigin(cc.Body.Position)

	f := physics.Filter{
		Layers:      physics.LayerActor | physics.LayerBall,
		ExcludeTeam: cc.Actor.Team,
		Exclude:     cc.Entity,
	}
	hit, ok := s.Resource.Space.Raycast(origin, dir, d.Range, f)
	if !ok {
		return
	}

	pull := vmath.V3Scale(vmath.V3NormalizeOr(vmath.V3Horizontal(vmath.V3Sub(cc.Body.Position, hit.Position)), vmath.V3Neg(dir)), d.Impulse)
	pull.Y += d.Lift

	if hit.Layer == physics.LayerBall {
		if body := s.Component.Body.Ref(hit.Entity); body != nil && body.Enabled {
			physics.ApplyImpulse(&body.Kinetic, pull)
			body.Grounded = false
		}
		return
	}
	if applyStrike(s.World, strike{
		Source:  cc.Entity,
		Target:  hit.Entity,
		Ability: ability.Hook,
		Impulse: pull,
		Stun:    d.Stun,
		Damage:  d.Damage,
	}) {
		s.statHits.Add(1)
	}
}

// throwStart releases the carried ball onto an arc scaled by cast strength
func throwStart(s *AbilitySystem, cc *castContext) {
	faceCast(s, cc)
	if cc.Actor.Carrying.IsNull() {
		return
	}
	d := cc.Slot.Data
	path := trajectory.Plan(d.Trajectory, castOrigin(cc.Body.Position), cc.Inv.Cast.Direction, cc.Inv.Cast.Strength)
	s.thrown = append(s.thrown, throwRequest{
		Thrower: cc.Entity,
		Ball:    cc.Actor.Carrying,
		Source:  cc.Slot.Type,
		Path:    path,
		Profile: d.Trajectory,
	})
}

// bombStart lobs a payload along a planned arc
func bombStart(s *AbilitySystem, cc *castContext) {
	faceCast(s, cc)
	d := cc.Slot.Data
	origin := castOrigin(cc.Body.Position)
	s.spawns = append(s.spawns, spawnRequest{
		Owner:  cc.Entity,
		Team:   cc.Actor.Team,
		Source: ability.Bomb,
		Origin: origin,
		Path:   trajectory.Plan(d.Trajectory, origin, cc.Inv.Cast.Direction, cc.Inv.Cast.Strength),
		Follow: true,
		Data:   d,
	})
}

// trapStart drops a payload at the caster's feet; it arms once it settles
func trapStart(s *AbilitySystem, cc *castContext) {
	origin := cc.Body.Position
	origin.Y = parameter.GroundY + parameter.PayloadRadius
	s.spawns = append(s.spawns, spawnRequest{
		Owner:  cc.Entity,
		Team:   cc.Actor.Team,
		Source: ability.Trap,
		Origin: origin,
		Data:   cc.Slot.Data,
	})
}

// speedBoostStart buffs the caster and every living ally inside Radius
func speedBoostStart(s *AbilitySystem, cc *castContext) {
	d := cc.Slot.Data
	cc.Actor.SpeedBuff.Start(d.Duration)
	cc.Actor.SpeedMultiplier = d.SpeedMultiplier

	f := physics.Filter{Layers: physics.LayerActor, Exclude: cc.Entity}
	s.hits = s.Resource.Space.OverlapSphere(cc.Body.Position, d.Radius, f, s.hits[:0])
	for _, h := range s.hits {
		if h.Team != cc.Actor.Team {
			continue
		}
		ally := s.Component.Actor.Ref(h.Entity)
		if ally == nil || !ally.Alive() {
			continue
		}
		ally.SpeedBuff.Start(d.Duration)
		ally.SpeedMultiplier = d.SpeedMultiplier
	}
}
