package vmath

import (
	"math"
	"math/bits"
	"time"
)

// Q32.32 Fixed Point constants
const (
	Shift   = 32
	Scale   = 1 << Shift
	Mask    = Scale - 1
	Half    = 1 << (Shift - 1)
	LUTSize = 1024
	LUTMask = LUTSize - 1
)

// Pi and TwoPi in Q32.32 radians, used only by table generation
const (
	Pi    = 13493037705
	TwoPi = 2 * Pi
)

// --- Arithmetic ---

func FromInt(i int) int64 { return int64(i) << Shift }
func ToInt(f int64) int   { return int(f >> Shift) }

// FromRatio returns num/den in Q32.32 without intermediate rounding
func FromRatio(num, den int64) int64 { return MulDiv(num, Scale, den) }

// FromDuration converts a tick duration to Q32.32 seconds with integer math only
func FromDuration(d time.Duration) int64 { return MulDiv(int64(d), Scale, int64(time.Second)) }

// FromFloat converts decimal content values at load time
// Never call from the simulation path; results feed immutable data only
func FromFloat(f float64) int64 { return int64(math.Round(f * Scale)) }

// ToFloat is for presentation (render, audio) only
func ToFloat(f int64) float64 { return float64(f) / Scale }

func Mul(a, b int64) int64 {
	if a == 0 || b == 0 {
		return 0
	}
	negative := (a < 0) != (b < 0)
	ua, ub := uint64(a), uint64(b)
	if a < 0 {
		ua = uint64(-a)
	}
	if b < 0 {
		ub = uint64(-b)
	}

	hi, lo := bits.Mul64(ua, ub)
	// Q32.32 * Q32.32 = Q64.64, shift right 32 for Q32.32
	result := int64((hi << 32) | (lo >> 32))

	if negative {
		return -result
	}
	return result
}

func Div(a, b int64) int64 {
	if b == 0 {
		return 0
	}
	negative := (a < 0) != (b < 0)
	ua, ub := uint64(a), uint64(b)
	if a < 0 {
		ua = uint64(-a)
	}
	if b < 0 {
		ub = uint64(-b)
	}

	// a << 32 as 128-bit: hi = a >> 32, lo = a << 32
	hi := ua >> 32
	lo := ua << 32

	// Quotient would not fit in 64 bits
	if hi >= ub {
		if negative {
			return math.MinInt64
		}
		return math.MaxInt64
	}

	quo, _ := bits.Div64(hi, lo, ub)

	if quo > math.MaxInt64 {
		if negative {
			return math.MinInt64
		}
		return math.MaxInt64
	}

	if negative {
		return -int64(quo)
	}
	return int64(quo)
}

// Abs returns absolute value
func Abs(x int64) int64 {
	if x < 0 {
		return -x
	}
	return x
}

// Sign returns -Scale, 0, or Scale
func Sign(x int64) int64 {
	if x < 0 {
		return -Scale
	}
	if x > 0 {
		return Scale
	}
	return 0
}

// MulDiv computes (a * b) / c with 128-bit intermediate
// Useful for ratio calculations without precision loss
func MulDiv(a, b, c int64) int64 {
	if c == 0 {
		return 0
	}
	neg := ((a < 0) != (b < 0)) != (c < 0)
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	if c < 0 {
		c = -c
	}
	hi, lo := bits.Mul64(uint64(a), uint64(b))
	if hi >= uint64(c) {
		if neg {
			return math.MinInt64
		}
		return math.MaxInt64
	}
	q, _ := bits.Div64(hi, lo, uint64(c))
	r := int64(q)
	if neg {
		return -r
	}
	return r
}

// Clamp limits x to [lo, hi]
func Clamp(x, lo, hi int64) int64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Clamp01 limits x to [0, Scale]
func Clamp01(x int64) int64 {
	return Clamp(x, 0, Scale)
}

// Lerp interpolates a→b by t in Q32.32, t is not clamped
func Lerp(a, b, t int64) int64 {
	return a + Mul(b-a, t)
}

// --- Trigonometry ---

// Sin returns sine of an angle where angle 0..Scale maps to 0..2pi
func Sin(angle int64) int64 {
	return SinLUT[(angle>>(Shift-10))&LUTMask]
}

func Cos(angle int64) int64 {
	return CosLUT[(angle>>(Shift-10))&LUTMask]
}

// SinLerp is Sin with linear interpolation between table entries
// Used where the sampled curve must stay smooth (trajectory arcs)
func SinLerp(angle int64) int64 {
	idx := (angle >> (Shift - 10)) & LUTMask
	frac := (angle & (1<<(Shift-10) - 1)) << 10
	a := SinLUT[idx]
	b := SinLUT[(idx+1)&LUTMask]
	return a + Mul(b-a, frac)
}

// Sqrt returns the Q32.32 square root, exact to the last bit (floor)
// Integer Newton iteration on the 96-bit value x<<32, no float involved
func Sqrt(x int64) int64 {
	if x <= 0 {
		return 0
	}
	hi, lo := uint64(x)>>(64-Shift), uint64(x)<<Shift

	n := bits.Len64(lo)
	if hi > 0 {
		n = 64 + bits.Len64(hi)
	}
	r := uint64(1) << ((n + 1) / 2)

	// r starts above the root and decreases monotonically
	for {
		q, _ := bits.Div64(hi, lo, r)
		next := (r + q) >> 1
		if next >= r {
			return int64(r)
		}
		r = next
	}
}
