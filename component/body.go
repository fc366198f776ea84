package component

import (
	"github.com/lixenwraith/arena/core"
	"github.com/lixenwraith/arena/physics"
	"github.com/lixenwraith/arena/vmath"
)

// BodyComponent is the physical presence of an entity
// Disabled bodies are driven by a path follower or a carrier; physics leaves them alone
type BodyComponent struct {
	core.Kinetic
	Rotation vmath.Rotation
	Radius   int64
	Layer    physics.Layer
	Team     uint8

	Enabled  bool
	Gravity  bool
	Grounded bool
}
