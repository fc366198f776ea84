package physics

import (
	"github.com/lixenwraith/arena/core"
	"github.com/lixenwraith/arena/parameter"
	"github.com/lixenwraith/arena/vmath"
)

// Integrate performs semi-implicit Euler: v = v + g*dt; p = p + v*dt
// Returns true when the body rests on or bounced off the ground this tick
func Integrate(k *core.Kinetic, radius int64, gravity bool, dt int64) bool {
	if gravity {
		k.Velocity.Y -= vmath.Mul(parameter.Gravity, dt)
	}
	k.Velocity = vmath.V3ClampMagnitude(k.Velocity, parameter.MaxBodySpeed)
	k.Position = vmath.V3Add(k.Position, vmath.V3Scale(k.Velocity, dt))
	return ResolveGround(k, radius, dt)
}

// ResolveGround clamps the body above the floor plane, bouncing and applying friction
func ResolveGround(k *core.Kinetic, radius, dt int64) bool {
	floor := parameter.GroundY + radius
	if k.Position.Y > floor {
		return false
	}
	k.Position.Y = floor
	if k.Velocity.Y < 0 {
		k.Velocity.Y = -vmath.Mul(k.Velocity.Y, parameter.GroundRestitution)
		if k.Velocity.Y < parameter.RestingSpeed {
			k.Velocity.Y = 0
		}
	}
	if k.Velocity.Y == 0 {
		h := vmath.V3DampDt(vmath.V3Horizontal(k.Velocity), parameter.GroundFriction, dt)
		if vmath.V3MagSq(h) < vmath.Mul(parameter.RestingSpeed, parameter.RestingSpeed)/64 {
			h = vmath.Vec3{}
		}
		k.Velocity.X, k.Velocity.Z = h.X, h.Z
	}
	return true
}

// ReflectArena keeps the body inside the arena walls
func ReflectArena(k *core.Kinetic, radius int64) bool {
	hx := parameter.ArenaHalfWidth - radius
	hz := parameter.ArenaHalfLength - radius
	rx := ReflectAxis(&k.Position.X, &k.Velocity.X, -hx, hx, parameter.WallRestitution)
	rz := ReflectAxis(&k.Position.Z, &k.Velocity.Z, -hz, hz, parameter.WallRestitution)
	return rx || rz
}

// ReflectAxis clamps position component and reflects velocity on boundary
func ReflectAxis(pos, vel *int64, lo, hi, restitution int64) bool {
	if *pos < lo {
		*pos = lo
		if *vel < 0 {
			*vel = -vmath.Mul(*vel, restitution)
		}
		return true
	}
	if *pos > hi {
		*pos = hi
		if *vel > 0 {
			*vel = -vmath.Mul(*vel, restitution)
		}
		return true
	}
	return false
}

// ApplyImpulse adds velocity delta (momentum transfer)
func ApplyImpulse(k *core.Kinetic, impulse vmath.Vec3) {
	k.Velocity = vmath.V3Add(k.Velocity, impulse)
}

// SetImpulse overrides velocity (hard redirect)
func SetImpulse(k *core.Kinetic, v vmath.Vec3) {
	k.Velocity = v
}

// SeparateOverlap pushes two equal-mass overlapping spheres apart on the horizontal plane
// Returns (newPosA, newPosB, separated)
func SeparateOverlap(posA, posB vmath.Vec3, radiusA, radiusB int64) (vmath.Vec3, vmath.Vec3, bool) {
	delta := vmath.V3Horizontal(vmath.V3Sub(posB, posA))
	dist := vmath.V3Mag(delta)
	minDist := radiusA + radiusB

	if dist >= minDist || dist == 0 {
		return posA, posB, false
	}

	n := vmath.Vec3{X: vmath.Div(delta.X, dist), Z: vmath.Div(delta.Z, dist)}
	push := (minDist - dist + parameter.SeparationMargin) / 2

	return vmath.V3Sub(posA, vmath.V3Scale(n, push)), vmath.V3Add(posB, vmath.V3Scale(n, push)), true
}
