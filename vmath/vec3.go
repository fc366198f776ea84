package vmath

// Vec3 is a 3D vector in Q32.32 fixed-point
// Y is up, Z is the canonical forward axis
type Vec3 struct {
	X, Y, Z int64
}

var (
	V3Zero    = Vec3{}
	V3Up      = Vec3{Y: Scale}
	V3Forward = Vec3{Z: Scale}
)

// V3 builds a vector from whole-unit components
func V3(x, y, z int) Vec3 {
	return Vec3{FromInt(x), FromInt(y), FromInt(z)}
}

func V3Add(a, b Vec3) Vec3 {
	return Vec3{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

func V3Sub(a, b Vec3) Vec3 {
	return Vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

func V3Scale(v Vec3, s int64) Vec3 {
	return Vec3{Mul(v.X, s), Mul(v.Y, s), Mul(v.Z, s)}
}

func V3Neg(v Vec3) Vec3 {
	return Vec3{-v.X, -v.Y, -v.Z}
}

func V3Dot(a, b Vec3) int64 {
	return Mul(a.X, b.X) + Mul(a.Y, b.Y) + Mul(a.Z, b.Z)
}

func V3MagSq(v Vec3) int64 {
	return Mul(v.X, v.X) + Mul(v.Y, v.Y) + Mul(v.Z, v.Z)
}

func V3Mag(v Vec3) int64 {
	return Sqrt(V3MagSq(v))
}

// V3Dist returns Euclidean distance between two points
func V3Dist(a, b Vec3) int64 {
	return V3Mag(V3Sub(a, b))
}

// V3IsZero reports whether all components are exactly zero
func V3IsZero(v Vec3) bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}

// V3Normalize returns the unit vector, zero vector stays zero
// Integer-only: magnitude via Sqrt, three fixed-point divisions
func V3Normalize(v Vec3) Vec3 {
	mag := V3Mag(v)
	if mag == 0 {
		return Vec3{}
	}
	return Vec3{Div(v.X, mag), Div(v.Y, mag), Div(v.Z, mag)}
}

// V3NormalizeOr normalizes v, returning fallback for degenerate input
func V3NormalizeOr(v, fallback Vec3) Vec3 {
	n := V3Normalize(v)
	if V3IsZero(n) {
		return fallback
	}
	return n
}

// V3Lerp interpolates a→b by t (Q32.32)
func V3Lerp(a, b Vec3, t int64) Vec3 {
	return Vec3{Lerp(a.X, b.X, t), Lerp(a.Y, b.Y, t), Lerp(a.Z, b.Z, t)}
}

// V3Horizontal drops the vertical component
func V3Horizontal(v Vec3) Vec3 {
	return Vec3{X: v.X, Z: v.Z}
}

// V3ClampMagnitude limits vector magnitude
func V3ClampMagnitude(v Vec3, maxMag int64) Vec3 {
	magSq := V3MagSq(v)
	maxMagSq := Mul(maxMag, maxMag)
	if magSq <= maxMagSq {
		return v
	}
	return V3Scale(V3Normalize(v), maxMag)
}

// V3DampDt applies frame-rate independent damping: v * factor^dt
// factor: decay rate per second (Q32.32, Scale = no decay)
// Uses linear approximation: v * (1 - (1-factor)*dt) for small dt
func V3DampDt(v Vec3, factor, dt int64) Vec3 {
	decay := Clamp(Scale-Mul(Scale-factor, dt), 0, Scale)
	return Vec3{Mul(v.X, decay), Mul(v.Y, decay), Mul(v.Z, decay)}
}
