package vmath

// Tables are generated with Q32.32 series arithmetic so every platform builds
// bit-identical values; float math here would let FMA fusion differ per arch

func init() {
	// Quarter wave from the series, the rest by symmetry
	quarter := LUTSize / 4
	for i := 0; i <= quarter; i++ {
		x := MulDiv(int64(i), TwoPi, LUTSize)
		s := sinSeries(x)
		SinLUT[i] = s
		SinLUT[(LUTSize/2-i)&LUTMask] = s
		if i != 0 {
			SinLUT[LUTSize/2+i] = -s
		}
		SinLUT[(LUTSize-i)&LUTMask] = -s
	}
	SinLUT[0] = 0
	SinLUT[LUTSize/2] = 0
	SinLUT[quarter] = Scale
	SinLUT[3*quarter] = -Scale

	for i := 0; i < LUTSize; i++ {
		CosLUT[i] = SinLUT[(i+quarter)&LUTMask]
	}

	// Atan2 LUT: ratio [0,1] -> angle [0, Scale/8] in turns
	for i := 0; i < LUTSize; i++ {
		ratio := FromRatio(int64(i), LUTMask)
		atan2LUT[i] = Div(atanSeries(ratio), TwoPi)
	}
}

// SinLUT and CosLUT scaled by Q32.32
var (
	SinLUT [LUTSize]int64
	CosLUT [LUTSize]int64

	// atan2LUT maps ratio [0,1] to angle [0, Scale/8] (one octant)
	atan2LUT [LUTSize]int64
)

// sinSeries evaluates sin(x) for x in [0, π/2] radians (Q32.32)
func sinSeries(x int64) int64 {
	x2 := Mul(x, x)
	term := x
	sum := x
	for k := int64(1); k <= 9; k++ {
		term = -Mul(term, x2) / ((2 * k) * (2*k + 1))
		if term == 0 {
			break
		}
		sum += term
	}
	return Clamp(sum, -Scale, Scale)
}

// atanSeries evaluates atan(r) for r in [0, 1] radians (Q32.32)
// Half-angle reduction twice brings r under tan(π/16) before the series
func atanSeries(r int64) int64 {
	for i := 0; i < 2; i++ {
		r = Div(r, Scale+Sqrt(Scale+Mul(r, r)))
	}
	r2 := Mul(r, r)
	term := r
	sum := r
	for k := int64(1); k <= 12; k++ {
		term = -Mul(term, r2)
		step := term / (2*k + 1)
		if step == 0 {
			break
		}
		sum += step
	}
	return sum << 2
}

// Atan2 returns angle in [0, Scale) for (dy, dx) using LUT
// Result is Q32.32 where Scale = full rotation (2π)
// Zero vector returns 0
func Atan2(dy, dx int64) int64 {
	if dx == 0 && dy == 0 {
		return 0
	}

	adx, ady := dx, dy
	if adx < 0 {
		adx = -adx
	}
	if ady < 0 {
		ady = -ady
	}

	var baseAngle int64
	if adx >= ady {
		// ratio = |dy/dx| in [0,1]
		idx := MulDiv(ady, LUTMask, adx)
		if idx > LUTMask {
			idx = LUTMask
		}
		baseAngle = atan2LUT[idx]
	} else {
		// ratio = |dx/dy| in [0,1], angle = π/2 - atan(ratio)
		idx := MulDiv(adx, LUTMask, ady)
		if idx > LUTMask {
			idx = LUTMask
		}
		baseAngle = Scale/4 - atan2LUT[idx]
	}

	if dx > 0 {
		if dy >= 0 {
			return baseAngle
		}
		return Scale - baseAngle
	} else if dx < 0 {
		if dy >= 0 {
			return Scale/2 - baseAngle
		}
		return Scale/2 + baseAngle
	}
	if dy > 0 {
		return Scale / 4
	}
	return 3 * Scale / 4
}
