package parameter

// System Execution Priorities (lower runs first)
// The order is part of the replay contract: changing it changes simulation output
const (
	PriorityInput      = 10 // Edge detection, before anything reads buttons
	PriorityAbility    = 20 // Arbiter and per-kind behaviours
	PriorityBall       = 30 // Possession after throws released the ball this tick
	PriorityTrajectory = 40 // Path following before free bodies integrate
	PriorityPhysics    = 50 // Integrate free bodies, sync query space
	PriorityPayload    = 60 // Life, contact, fuse, detonation against synced space
	PriorityActor      = 70 // Status timers and respawn
	PriorityDeath      = 80 // Deferred destruction, last
)
