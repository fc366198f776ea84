package component

import (
	"context"

	"github.com/looplab/fsm"

	"github.com/lixenwraith/arena/core"
	"github.com/lixenwraith/arena/vmath"
)

// Lifecycle states and transitions of an actor
const (
	LifecycleAlive   = "alive"
	LifecycleDown    = "down"
	LifecycleKill    = "kill"
	LifecycleRespawn = "respawn"
)

// ActorComponent holds the per-actor gameplay status read by abilities
type ActorComponent struct {
	Team   uint8
	Player int // Input slot, -1 when not driven by a player
	Spawn  vmath.Vec3

	// Steering, Q32.32 unit vectors or zero
	Facing vmath.Vec3
	Move   vmath.Vec3
	Aim    vmath.Vec3

	Health    int
	MaxHealth int

	Stun      core.Timer
	Knockback core.Timer
	Respawn   core.Timer
	SpeedBuff core.Timer

	SpeedMultiplier int64 // Q32.32, Scale when unbuffed
	Blocking        bool
	Hidden          bool
	Carrying        core.Entity // Ball entity, 0 when empty-handed

	Lifecycle *fsm.FSM
}

// NewActorLifecycle builds the alive/down machine
// onEnter receives the destination state after every transition
func NewActorLifecycle(onEnter func(state string)) *fsm.FSM {
	callbacks := fsm.Callbacks{}
	if onEnter != nil {
		callbacks["enter_state"] = func(_ context.Context, e *fsm.Event) {
			onEnter(e.Dst)
		}
	}
	return fsm.NewFSM(
		LifecycleAlive,
		fsm.Events{
			{Name: LifecycleKill, Src: []string{LifecycleAlive}, Dst: LifecycleDown},
			{Name: LifecycleRespawn, Src: []string{LifecycleDown}, Dst: LifecycleAlive},
		},
		callbacks,
	)
}

// Alive reports an actor that can act; actors without a lifecycle are always alive
func (a *ActorComponent) Alive() bool {
	return a.Lifecycle == nil || a.Lifecycle.Is(LifecycleAlive)
}

// State returns the lifecycle state name
func (a *ActorComponent) State() string {
	if a.Lifecycle == nil {
		return LifecycleAlive
	}
	return a.Lifecycle.Current()
}

// Incapacitated reports stun, knockback or a downed actor
func (a *ActorComponent) Incapacitated() bool {
	return !a.Alive() || a.Stun.Running || a.Knockback.Running
}
