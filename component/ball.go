package component

import (
	"github.com/lixenwraith/arena/core"
	"github.com/lixenwraith/arena/vmath"
)

// BallComponent tracks possession of the match ball
type BallComponent struct {
	Carrier     core.Entity // 0 when loose
	LastThrower core.Entity
	PickupBlock core.Timer // Thrower cannot re-catch while running
	Spawn       vmath.Vec3
}
