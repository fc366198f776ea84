package physics

import (
	"github.com/lixenwraith/arena/core"
	"github.com/lixenwraith/arena/vmath"
)

// Layer is a bit set of collision layers
type Layer uint8

const (
	LayerActor Layer = 1 << iota
	LayerBall
	LayerPayload
)

// Filter narrows a query
type Filter struct {
	Layers      Layer       // Zero matches every layer
	ExcludeTeam uint8       // Bodies on this team are skipped; zero disables
	Exclude     core.Entity // Never reported
}

// Hit is one query result
type Hit struct {
	Entity   core.Entity
	Position vmath.Vec3
	Distance int64
	Team     uint8
	Layer    Layer
}

// Querier is the read-only collision query surface
// Results are ordered by (Distance, Entity) so every client sees the same order
type Querier interface {
	// OverlapSphere appends every body touching the sphere to out and returns it
	OverlapSphere(center vmath.Vec3, radius int64, f Filter, out []Hit) []Hit

	// Raycast returns the nearest body hit along a normalised direction within maxDist
	Raycast(origin, dir vmath.Vec3, maxDist int64, f Filter) (Hit, bool)
}

func (f Filter) match(e core.Entity, team uint8, layer Layer) bool {
	if e == f.Exclude {
		return false
	}
	if f.Layers != 0 && f.Layers&layer == 0 {
		return false
	}
	if f.ExcludeTeam != 0 && team == f.ExcludeTeam {
		return false
	}
	return true
}

// hitLess orders hits by distance, then entity handle
func hitLess(a, b Hit) int {
	switch {
	case a.Distance < b.Distance:
		return -1
	case a.Distance > b.Distance:
		return 1
	case a.Entity < b.Entity:
		return -1
	case a.Entity > b.Entity:
		return 1
	}
	return 0
}
