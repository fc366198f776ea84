package event

import (
	"github.com/lixenwraith/arena/ability"
	"github.com/lixenwraith/arena/core"
	"github.com/lixenwraith/arena/trajectory"
	"github.com/lixenwraith/arena/vmath"
)

// AbilityPayload describes one slot transition
type AbilityPayload struct {
	Entity    core.Entity
	Ability   ability.Type
	Direction vmath.Vec3
	Strength  int64
	Stopped   bool // Ended early by preemption, incapacitation or reset
}

// HitPayload describes one actor struck by an ability or payload
type HitPayload struct {
	Source  core.Entity
	Target  core.Entity
	Ability ability.Type
	Impulse vmath.Vec3
	Damage  int
	Blocked bool
}

// LoadoutPayload carries equip diagnostics
type LoadoutPayload struct {
	Entity  core.Entity
	Warning string
	Missing []string
}

// TrajectoryPayload describes a path release
type TrajectoryPayload struct {
	Entity   core.Entity
	Phase    trajectory.Phase
	Position vmath.Vec3
	Velocity vmath.Vec3
}

// PayloadPayload describes a payload phase change without detonation
type PayloadPayload struct {
	Entity   core.Entity
	Owner    core.Entity
	Position vmath.Vec3
}

// ExplosionPayload describes a detonation
type ExplosionPayload struct {
	Entity   core.Entity
	Owner    core.Entity
	Position vmath.Vec3
	Radius   int64
	Hits     int
	Contact  bool
}

// BallPayload describes a possession change
type BallPayload struct {
	Ball     core.Entity
	Actor    core.Entity
	Position vmath.Vec3
}

// ActorPayload describes a lifecycle change
type ActorPayload struct {
	Entity   core.Entity
	Team     uint8
	Position vmath.Vec3
}
