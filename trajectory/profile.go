package trajectory

import (
	"time"

	"github.com/lixenwraith/arena/parameter"
)

// Mode selects how a path ends
type Mode uint8

const (
	// ModeHandoff cedes to ballistic physics once the remaining distance drops under HandoffDistance
	ModeHandoff Mode = iota
	// ModeSimple follows to the last point and snaps
	ModeSimple
)

func (m Mode) String() string {
	if m == ModeSimple {
		return "simple"
	}
	return "handoff"
}

// Profile is the immutable arc configuration of one ability kind, Q32.32 metres
type Profile struct {
	MinDistance     int64
	MaxDistance     int64
	MinApex         int64
	MaxApex         int64
	SampleCount     int
	Speed           int64
	HandoffDistance int64
	Mode            Mode
}

// DefaultProfile returns the tuning defaults
func DefaultProfile() Profile {
	return Profile{
		MinDistance:     parameter.TrajectoryMinDistance,
		MaxDistance:     parameter.TrajectoryMaxDistance,
		MinApex:         parameter.TrajectoryMinApex,
		MaxApex:         parameter.TrajectoryMaxApex,
		SampleCount:     parameter.TrajectorySampleCount,
		Speed:           parameter.TrajectorySpeed,
		HandoffDistance: parameter.TrajectoryHandoffDistance,
		Mode:            ModeHandoff,
	}
}

// PayloadProfile configures what a payload does when it goes off
type PayloadProfile struct {
	ExplosionRadius int64
	ContactRadius   int64 // Zero disables the contact trigger
	Knockback       int64
	KnockbackLift   int64
	LifeTime        time.Duration
	FuseTime        time.Duration
	Stun            time.Duration
	Damage          int
}

// DefaultPayloadProfile returns the tuning defaults
func DefaultPayloadProfile() PayloadProfile {
	return PayloadProfile{
		ExplosionRadius: parameter.PayloadExplosionRadius,
		ContactRadius:   parameter.PayloadContactRadius,
		Knockback:       parameter.PayloadKnockback,
		KnockbackLift:   parameter.PayloadKnockbackLift,
		LifeTime:        parameter.PayloadLifeTime,
		FuseTime:        parameter.PayloadFuseTime,
		Stun:            parameter.PayloadStun,
		Damage:          parameter.PayloadDamage,
	}
}
