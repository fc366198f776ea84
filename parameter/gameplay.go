package parameter

import (
	"time"

	"github.com/lixenwraith/arena/vmath"
)

// Trajectory defaults, used when content omits a profile field
var (
	TrajectoryMinDistance     = vmath.FromInt(4)
	TrajectoryMaxDistance     = vmath.FromInt(16)
	TrajectoryMinApex         = vmath.FromInt(1)
	TrajectoryMaxApex         = vmath.FromInt(5)
	TrajectorySpeed           = vmath.FromInt(14)
	TrajectoryHandoffDistance = vmath.FromRatio(3, 4)
)

const (
	// TrajectorySampleCount is the raw sample count before decimation
	TrajectorySampleCount = 48

	// DefaultCastStrength is used when the aim vector is zero
	DefaultCastStrength = vmath.Half
)

// Payload defaults
var (
	PayloadExplosionRadius = vmath.FromInt(3)
	PayloadContactRadius   = vmath.FromRatio(3, 5)
	PayloadKnockback       = vmath.FromInt(12)
	PayloadKnockbackLift   = vmath.FromInt(4)

	// PayloadGroundSpeed is the speed below which a handed-off payload counts as grounded
	PayloadGroundSpeed = vmath.FromRatio(1, 4)

	// PayloadRadius is the body radius of a spawned payload
	PayloadRadius = vmath.FromRatio(1, 4)
)

const (
	PayloadDamage   = 25
	PayloadLifeTime = 6 * time.Second
	PayloadFuseTime = 1500 * time.Millisecond
	PayloadStun     = 600 * time.Millisecond
)

// Blocking
var (
	// BlockedKnockbackScale is the fraction of knockback a blocking target still receives
	BlockedKnockbackScale = vmath.FromRatio(1, 4)
)

// Ball possession
var (
	BallPickupRadius   = vmath.FromRatio(6, 5)
	BallPickupMaxSpeed = vmath.FromInt(4)
	BallRadius         = vmath.FromRatio(3, 10)
)

// BallCarryOffset is the ball position relative to the carrier's feet
var BallCarryOffset = vmath.Vec3{Y: vmath.FromRatio(6, 5), Z: vmath.FromRatio(2, 5)}

const (
	// BallPickupCooldown blocks the thrower from re-catching their own throw
	BallPickupCooldown = 500 * time.Millisecond
)

// Actor lifecycle
const (
	ActorMaxHealth = 100
	RespawnDelay   = 3 * time.Second

	// KnockbackTime is how long a knocked back actor stays incapacitated
	KnockbackTime = 250 * time.Millisecond
)

// Team identifiers
const (
	TeamNone uint8 = 0
	TeamHome uint8 = 1
	TeamAway uint8 = 2
)

// Melee
var (
	// AttackConeCos is the cosine of the half-angle of the attack cone (45 degrees)
	AttackConeCos = vmath.FromRatio(7071, 10000)
)
