package ability

import (
	"time"

	"github.com/lixenwraith/arena/core"
	"github.com/lixenwraith/arena/parameter"
	"github.com/lixenwraith/arena/vmath"
)

// Actor is the per-tick context of the entity owning an inventory
type Actor struct {
	Incapacitated bool // Stunned, knocked back or respawning
	Aim           vmath.Vec3
	Move          vmath.Vec3
	Facing        vmath.Vec3
	Velocity      vmath.Vec3
}

// State is the result of one Update tick
type State struct {
	IsDelayed         bool
	IsActive          bool
	IsActiveStartTick bool
	IsActiveEndTick   bool
	IsOnCooldown      bool
}

// Ability is one slot of an inventory: identity, data and four independent timers
// Delay hands off to Active on the exact tick it completes; Cooldown runs on its own
type Ability struct {
	Type Type
	Data *Data

	Buffer   core.Timer
	Delay    core.Timer
	Active   core.Timer
	Cooldown core.Timer

	pressed bool
}

// Populated reports whether the slot holds ability data
func (a *Ability) Populated() bool { return a.Data != nil }

func (a *Ability) IsDelayed() bool    { return a.Delay.Running }
func (a *Ability) IsActive() bool     { return a.Active.Running }
func (a *Ability) IsOnCooldown() bool { return a.Cooldown.Running }

// IsRunning reports delayed or active
func (a *Ability) IsRunning() bool { return a.Delay.Running || a.Active.Running }

// HasBufferedInput reports a press still inside its buffer window
func (a *Ability) HasBufferedInput() bool { return a.Buffer.Running }

// BufferInput opens the input buffer for the configured window
func (a *Ability) BufferInput() {
	if a.Data == nil {
		return
	}
	a.Buffer.Start(a.Data.BufferWindow)
}

// UpdateInput feeds this tick's press state, buffering on a rising edge
func (a *Ability) UpdateInput(pressed bool) {
	if pressed && !a.pressed {
		a.BufferInput()
	}
	a.pressed = pressed
}

// TryActivate starts the ability if cooldown, incapacitation and exclusivity allow
// Refusal mutates nothing
func (a *Ability) TryActivate(inv *Inventory, actor *Actor) bool {
	if a.Data == nil || a.Cooldown.Running || actor.Incapacitated {
		return false
	}
	if cur, ok := inv.TryGetActiveAbility(); ok {
		if !a.Data.AllowConcurrent || !cur.Data.AllowConcurrent {
			return false
		}
	}

	dir := resolveDirection(a.Data.CastDirection, actor)

	a.Buffer.Stop()
	a.Active.Stop()
	a.Delay.Start(a.Data.Delay)
	if !a.Data.CooldownAfterDelay {
		a.Cooldown.Start(a.Data.Cooldown)
	}
	if !a.Data.AllowConcurrent {
		inv.setActive(a.Type)
	}

	inv.Cast = Snapshot{
		Direction: dir,
		Rotation:  vmath.LookRotation(dir),
		Velocity:  actor.Velocity,
		Strength:  castStrength(actor.Aim),
	}
	return true
}

// Update advances the slot by exactly one tick
func (a *Ability) Update(inv *Inventory, actor *Actor, dt time.Duration) State {
	var st State
	if a.Data == nil {
		return st
	}

	a.Buffer.Tick(dt)
	a.Cooldown.Tick(dt)

	if actor.Incapacitated && a.IsRunning() {
		a.Stop(inv)
		st.IsOnCooldown = a.Cooldown.Running
		return st
	}

	switch {
	case a.Delay.Running:
		done, overflow := a.Delay.Tick(dt)
		if !done {
			st.IsDelayed = true
			break
		}
		st.IsActiveStartTick = true
		a.Active.Start(a.Data.Duration)
		if a.Data.CooldownAfterDelay {
			a.Cooldown.Start(a.Data.Cooldown)
		}
		// Time left over from the delay is spent by the duration in the same tick
		if ended, _ := a.Active.Tick(overflow); ended {
			st.IsActiveEndTick = true
			a.Stop(inv)
		} else {
			st.IsActive = true
		}

	case a.Active.Running:
		if ended, _ := a.Active.Tick(dt); ended {
			st.IsActiveEndTick = true
			a.Stop(inv)
		} else {
			st.IsActive = true
		}
	}

	st.IsOnCooldown = a.Cooldown.Running
	return st
}

// Stop clears delay and duration and releases exclusivity held by this slot
// Idempotent; cooldown is untouched
func (a *Ability) Stop(inv *Inventory) {
	a.Delay.Stop()
	a.Active.Stop()
	if inv.Active() == a.Type {
		inv.setActive(TypeNone)
	}
}

// ResetCooldown clears the cooldown timer
func (a *Ability) ResetCooldown() {
	a.Cooldown.Stop()
}

// reset returns the slot to idle, keeping identity and data
func (a *Ability) reset(inv *Inventory) {
	a.Stop(inv)
	a.Buffer.Stop()
	a.ResetCooldown()
	a.pressed = false
}

// resolveDirection picks aim, then move, then facing, then canonical forward
func resolveDirection(set CastDirection, actor *Actor) vmath.Vec3 {
	if set == 0 {
		panic(ErrCastDirection)
	}
	switch {
	case set.Has(CastAim) && !vmath.V3IsZero(actor.Aim):
		return vmath.V3NormalizeOr(actor.Aim, vmath.V3Forward)
	case set.Has(CastMove) && !vmath.V3IsZero(actor.Move):
		return vmath.V3NormalizeOr(actor.Move, vmath.V3Forward)
	default:
		return vmath.V3NormalizeOr(actor.Facing, vmath.V3Forward)
	}
}

// castStrength maps aim deflection to 0..1, neutral when not aiming
func castStrength(aim vmath.Vec3) int64 {
	if vmath.V3IsZero(aim) {
		return parameter.DefaultCastStrength
	}
	return vmath.Clamp01(vmath.V3Mag(aim))
}
