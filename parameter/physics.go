package parameter

import "github.com/lixenwraith/arena/vmath"

// Q32.32 physics constants, exact rationals so every client derives identical bits
// Units: metres, seconds

// Free-body integration
var (
	// Gravity is the downward acceleration applied to bodies with gravity enabled
	Gravity = vmath.FromInt(20)

	// GroundY is the height of the arena floor plane
	GroundY int64 = 0

	// GroundRestitution is the fraction of vertical speed kept on bounce
	GroundRestitution = vmath.FromRatio(3, 10)

	// GroundFriction is the per-second horizontal velocity retention while grounded
	GroundFriction = vmath.FromRatio(1, 10)

	// RestingSpeed is the vertical speed below which a bounce settles to rest
	RestingSpeed = vmath.FromRatio(1, 2)

	// MaxBodySpeed caps any body velocity after impulses
	MaxBodySpeed = vmath.FromInt(60)
)

// Actors
var (
	// ActorRadius is the overlap radius of an actor body
	ActorRadius = vmath.FromRatio(1, 2)

	// ActorMoveSpeed is the controller speed at full stick deflection
	ActorMoveSpeed = vmath.FromInt(6)

	// ActorHeight is the offset from feet to the cast origin
	ActorHeight = vmath.FromInt(1)
)

// Trajectory handoff
var (
	// HandoffLiftFactor scales the upward bias added at handoff relative to the final segment slope
	HandoffLiftFactor = vmath.FromRatio(1, 4)
)

// Arena bounds, centred on the origin
var (
	ArenaHalfWidth         = vmath.FromInt(20)
	ArenaHalfLength        = vmath.FromInt(30)
	WallRestitution        = vmath.FromRatio(1, 2)
	SeparationMargin int64 = vmath.Scale / 16
)
