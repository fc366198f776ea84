package vmath

// Rotation is a yaw/pitch orientation in Q32.32 turns (Scale = full turn)
// Yaw 0 faces +Z, a quarter turn faces +X; pitch is signed, positive is up
type Rotation struct {
	Yaw, Pitch int64
}

// LookRotation returns the orientation facing dir
// Zero direction yields the identity rotation (facing +Z)
func LookRotation(dir Vec3) Rotation {
	if V3IsZero(dir) {
		return Rotation{}
	}
	horiz := V3Mag(V3Horizontal(dir))
	yaw := int64(0)
	if horiz != 0 {
		yaw = Atan2(dir.X, dir.Z)
	}
	pitch := Atan2(dir.Y, horiz)
	if pitch >= Half {
		pitch -= Scale
	}
	return Rotation{Yaw: yaw, Pitch: pitch}
}

// Forward returns the unit vector this rotation faces
func (r Rotation) Forward() Vec3 {
	cp := CosLerp(r.Pitch)
	return Vec3{
		X: Mul(SinLerp(r.Yaw), cp),
		Y: SinLerp(r.Pitch),
		Z: Mul(CosLerp(r.Yaw), cp),
	}
}

// CosLerp is Cos with linear interpolation between table entries
func CosLerp(angle int64) int64 {
	return SinLerp(angle + Scale/4)
}
