package core

import "github.com/lixenwraith/arena/vmath"

// Kinetic is the integrable motion state shared by every body
// Position is the body centre; Velocity in metres per second (Q32.32)
type Kinetic struct {
	Position vmath.Vec3
	Velocity vmath.Vec3
}
