package ability

import (
	"time"

	"github.com/lixenwraith/arena/input"
)

// SlotResult reports what happened to one slot during arbitration
type SlotResult struct {
	State     State
	Activated bool // TryActivate succeeded this tick
	Preempted bool // Force-stopped by the arbiter this tick
}

// Result is the outcome of one Arbitrate call
type Result struct {
	Main1   Type // Effective main1 after ball retargeting
	Main2   Type
	Desired Type // Main slot requested this tick, TypeNone if neither main button pressed
	Slots   [TypeCount]SlotResult
}

// Arbitrate runs one tick of every populated slot of inv
// pressed holds this tick's button edges; hasBall retargets the main buttons to the throws
func Arbitrate(inv *Inventory, actor *Actor, pressed input.Buttons, hasBall bool, dt time.Duration) Result {
	res := Result{Desired: TypeNone}

	// Block and concurrent abilities re-assert exclusivity every tick they run
	if cur, ok := inv.TryGetActiveAbility(); ok && releasesEachTick(cur) {
		inv.ReleaseExclusive()
	}

	main1, main2 := inv.Ownership.Main1, inv.Ownership.Main2
	if hasBall {
		main1, main2 = ThrowShort, ThrowLong
	}
	res.Main1, res.Main2 = main1, main2
	res.Desired = desiredMain(inv, pressed, main1, main2)

	if res.Desired != TypeNone {
		for t := Type(0); t < TypeCount; t++ {
			if t == res.Desired || !isMainSlot(t) {
				continue
			}
			if a := &inv.Slots[t]; a.Data != nil && a.IsRunning() {
				a.Stop(inv)
				res.Slots[t].Preempted = true
			}
		}
	}

	for t := Type(0); t < TypeCount; t++ {
		a := &inv.Slots[t]
		if a.Data == nil {
			continue
		}
		r := &res.Slots[t]

		suppressed := suppressedByBall(t, hasBall) ||
			(t.Class() == ClassUtility && t != inv.Ownership.Utility)
		if suppressed && a.IsRunning() {
			a.Stop(inv)
			r.Preempted = true
		}

		r.State = a.Update(inv, actor, dt)
		a.UpdateInput(!suppressed && slotPressed(t, pressed, res.Desired, inv.Ownership.Utility))
		if !suppressed && a.HasBufferedInput() && a.TryActivate(inv, actor) {
			r.Activated = true
		}

		if inv.Active() == t && releasesEachTick(a) {
			inv.ReleaseExclusive()
		}
	}
	return res
}

// desiredMain picks the main slot for this tick's fire / alt edges
// Both pressed prefers main2 unless main2 is already running, so a double press toggles
func desiredMain(inv *Inventory, pressed input.Buttons, main1, main2 Type) Type {
	fire, alt := pressed.Has(input.ButtonFire), pressed.Has(input.ButtonAlt)
	switch {
	case fire && alt:
		if main2.Valid() && inv.Slots[main2].IsRunning() {
			return main1
		}
		return main2
	case fire:
		return main1
	case alt:
		return main2
	}
	return TypeNone
}

func slotPressed(t Type, pressed input.Buttons, desired, utility Type) bool {
	switch {
	case t.Class() == ClassMain || t.IsThrow():
		return t == desired
	case t == Jump:
		return pressed.Has(input.ButtonJump)
	case t == Hook:
		return pressed.Has(input.ButtonHook)
	case t.Class() == ClassUtility:
		return t == utility && pressed.Has(input.ButtonUtility)
	}
	return false
}

// isMainSlot reports slots competing for the main buttons, throws included
func isMainSlot(t Type) bool {
	return t.Class() == ClassMain || t.IsThrow()
}

// suppressedByBall: throws need the ball, main candidates are locked out while carrying it
func suppressedByBall(t Type, hasBall bool) bool {
	if hasBall {
		return t.Class() == ClassMain
	}
	return t.IsThrow()
}

func releasesEachTick(a *Ability) bool {
	return a.Type == Block || (a.Data != nil && a.Data.AllowConcurrent)
}
