package audio

import (
	"github.com/lixenwraith/arena/ability"
	"github.com/lixenwraith/arena/event"
)

// Cue identifies a synthesized sound effect
type Cue int

const (
	CueNone Cue = iota
	CueSwing
	CueImpact
	CueBlocked
	CueWhoosh
	CueHook
	CueThrow
	CueCatch
	CueArm
	CueExplosion
	CueDown
	CueRespawn
	CueWarning

	CueCount
)

var cueNames = [CueCount]string{
	CueNone:      "none",
	CueSwing:     "swing",
	CueImpact:    "impact",
	CueBlocked:   "blocked",
	CueWhoosh:    "whoosh",
	CueHook:      "hook",
	CueThrow:     "throw",
	CueCatch:     "catch",
	CueArm:       "arm",
	CueExplosion: "explosion",
	CueDown:      "down",
	CueRespawn:   "respawn",
	CueWarning:   "warning",
}

func (c Cue) String() string {
	if c < 0 || c >= CueCount {
		return "unknown"
	}
	return cueNames[c]
}

// ParseCue resolves a cue by name
func ParseCue(name string) (Cue, bool) {
	for i, n := range cueNames {
		if n == name && Cue(i) != CueNone {
			return Cue(i), true
		}
	}
	return CueNone, false
}

// startCues maps ability kinds to the cue played when the active phase begins
var startCues = [ability.TypeCount]Cue{
	ability.Attack:     CueSwing,
	ability.Dash:       CueWhoosh,
	ability.Jump:       CueWhoosh,
	ability.Hook:       CueHook,
	ability.Bomb:       CueThrow,
	ability.Trap:       CueArm,
	ability.SpeedBoost: CueWhoosh,
	ability.Stealth:    CueWhoosh,
}

// CueFor maps a game event to its cue, CueNone when silent
func CueFor(ev event.GameEvent) Cue {
	switch ev.Type {
	case event.EventAbilityStarted:
		if p, ok := ev.Payload.(*event.AbilityPayload); ok && p.Ability.Valid() {
			return startCues[p.Ability]
		}
	case event.EventAbilityHit:
		if p, ok := ev.Payload.(*event.HitPayload); ok && p.Blocked {
			return CueBlocked
		}
		return CueImpact
	case event.EventBallThrown:
		return CueThrow
	case event.EventBallPickup:
		return CueCatch
	case event.EventPayloadArmed:
		return CueArm
	case event.EventPayloadExploded:
		return CueExplosion
	case event.EventActorDown:
		return CueDown
	case event.EventActorRespawned:
		return CueRespawn
	case event.EventLoadoutWarning:
		return CueWarning
	}
	return CueNone
}
