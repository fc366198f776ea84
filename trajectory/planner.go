package trajectory

import "github.com/lixenwraith/arena/vmath"

// MaxPoints bounds the stored path
const MaxPoints = 32

// Path is a planned arc, Points[:Count] valid
type Path struct {
	Points   [MaxPoints]vmath.Vec3
	Count    int
	Distance int64
	Apex     int64
}

// Plan samples a sine arc from start along direction
// strength in [0, Scale] lerps distance min→max and apex max→min
// More raw samples than MaxPoints are decimated by even index fraction,
// keeping the first and last samples exactly
func Plan(p Profile, start, direction vmath.Vec3, strength int64) Path {
	s := vmath.Clamp01(strength)
	dist := vmath.Lerp(p.MinDistance, p.MaxDistance, s)
	apex := vmath.Lerp(p.MaxApex, p.MinApex, s)
	dir := vmath.V3NormalizeOr(direction, vmath.V3Forward)

	raw := p.SampleCount
	if raw < 2 {
		raw = 2
	}
	n := raw
	if n > MaxPoints {
		n = MaxPoints
	}

	path := Path{Count: n, Distance: dist, Apex: apex}
	for j := 0; j < n; j++ {
		i := j
		if raw > MaxPoints {
			i = j * (raw - 1) / (MaxPoints - 1)
		}
		path.Points[j] = arcPoint(start, dir, dist, apex, i, raw-1)
	}
	return path
}

// arcPoint returns raw sample i of last: start + dir·dist·t + up·apex·sin(π·t)
func arcPoint(start, dir vmath.Vec3, dist, apex int64, i, last int) vmath.Vec3 {
	t := vmath.FromRatio(int64(i), int64(last))
	p := vmath.V3Add(start, vmath.V3Scale(dir, vmath.Mul(dist, t)))
	// Half a turn across the path: angle t/2 in turns is π·t radians
	p.Y += vmath.Mul(apex, vmath.SinLerp(t/2))
	return p
}
