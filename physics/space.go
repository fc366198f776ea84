package physics

import (
	"slices"

	"github.com/lixenwraith/arena/core"
	"github.com/lixenwraith/arena/vmath"
)

type spaceBody struct {
	entity   core.Entity
	position vmath.Vec3
	radius   int64
	team     uint8
	layer    Layer
}

// Space is a brute-force sphere world rebuilt once per tick by the physics system
// Small arenas hold tens of bodies; a linear scan keeps ordering trivially deterministic
type Space struct {
	bodies []spaceBody
}

// NewSpace creates an empty space
func NewSpace() *Space {
	return &Space{bodies: make([]spaceBody, 0, 64)}
}

// Clear removes every body, keeping capacity
func (s *Space) Clear() {
	s.bodies = s.bodies[:0]
}

// Insert adds a sphere; callers insert in entity order
func (s *Space) Insert(e core.Entity, pos vmath.Vec3, radius int64, team uint8, layer Layer) {
	s.bodies = append(s.bodies, spaceBody{entity: e, position: pos, radius: radius, team: team, layer: layer})
}

// Move updates the position of a body already inserted this tick
func (s *Space) Move(e core.Entity, pos vmath.Vec3) {
	for i := range s.bodies {
		if s.bodies[i].entity == e {
			s.bodies[i].position = pos
			return
		}
	}
}

// Len returns the body count
func (s *Space) Len() int { return len(s.bodies) }

// OverlapSphere appends bodies whose sphere touches the query sphere
func (s *Space) OverlapSphere(center vmath.Vec3, radius int64, f Filter, out []Hit) []Hit {
	start := len(out)
	for _, b := range s.bodies {
		if !f.match(b.entity, b.team, b.layer) {
			continue
		}
		dist := vmath.V3Dist(center, b.position)
		if dist > radius+b.radius {
			continue
		}
		out = append(out, Hit{Entity: b.entity, Position: b.position, Distance: dist, Team: b.team, Layer: b.layer})
	}
	slices.SortFunc(out[start:], hitLess)
	return out
}

// Raycast tests a ray against every sphere, nearest entry point wins
func (s *Space) Raycast(origin, dir vmath.Vec3, maxDist int64, f Filter) (Hit, bool) {
	d := vmath.V3NormalizeOr(dir, vmath.V3Forward)
	var best Hit
	found := false
	for _, b := range s.bodies {
		if !f.match(b.entity, b.team, b.layer) {
			continue
		}
		oc := vmath.V3Sub(b.position, origin)
		tca := vmath.V3Dot(oc, d)
		r2 := vmath.Mul(b.radius, b.radius)
		d2 := vmath.V3MagSq(oc) - vmath.Mul(tca, tca)
		if d2 > r2 {
			continue
		}
		t := tca - vmath.Sqrt(r2-d2)
		if t < 0 {
			// Origin inside the sphere or sphere behind the ray
			if vmath.V3MagSq(oc) > r2 {
				continue
			}
			t = 0
		}
		if t > maxDist {
			continue
		}
		h := Hit{Entity: b.entity, Position: b.position, Distance: t, Team: b.team, Layer: b.layer}
		if !found || hitLess(h, best) < 0 {
			best, found = h, true
		}
	}
	return best, found
}
