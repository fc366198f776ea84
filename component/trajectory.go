package component

import (
	"github.com/lixenwraith/arena/ability"
	"github.com/lixenwraith/arena/core"
	"github.com/lixenwraith/arena/trajectory"
)

// TrajectoryComponent follows a planned arc; dropped when the path releases its body
type TrajectoryComponent struct {
	trajectory.State
	Owner  core.Entity
	Source ability.Type
}

// PayloadComponent is an explosive riding on a projectile entity
type PayloadComponent struct {
	trajectory.Payload
	Source ability.Type
}
