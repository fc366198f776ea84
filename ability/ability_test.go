package ability

import (
	"errors"
	"testing"
	"time"

	"github.com/lixenwraith/arena/vmath"
)

const tick = 10 * time.Millisecond

// mapCatalog is a minimal Catalog for tests
type mapCatalog map[string]*Data

func (c mapCatalog) Lookup(id string) (*Data, bool) {
	d, ok := c[id]
	return d, ok
}

func testCatalog() mapCatalog {
	return mapCatalog{
		"attack": {ID: "attack", Kind: Attack, BufferWindow: 100 * time.Millisecond, Delay: 50 * time.Millisecond,
			Duration: 150 * time.Millisecond, Cooldown: 400 * time.Millisecond, CastDirection: CastAim | CastFacing},
		"block": {ID: "block", Kind: Block, BufferWindow: 100 * time.Millisecond,
			Duration: time.Second, CastDirection: CastFacing},
		"bomb": {ID: "bomb", Kind: Bomb, BufferWindow: 100 * time.Millisecond, Delay: 100 * time.Millisecond,
			Duration: 20 * time.Millisecond, Cooldown: 2 * time.Second, CastDirection: CastAim | CastFacing},
		"dash": {ID: "dash", Kind: Dash, BufferWindow: 80 * time.Millisecond, Duration: 200 * time.Millisecond,
			Cooldown: time.Second, CastDirection: CastMove | CastFacing},
		"stealth": {ID: "stealth", Kind: Stealth, Duration: 3 * time.Second, Cooldown: 8 * time.Second,
			AllowConcurrent: true, CastDirection: CastFacing},
		"jump": {ID: "jump", Kind: Jump, Duration: 50 * time.Millisecond, Cooldown: 300 * time.Millisecond,
			AllowConcurrent: true, CastDirection: CastFacing},
		"hook": {ID: "hook", Kind: Hook, Delay: 60 * time.Millisecond, Duration: 100 * time.Millisecond,
			Cooldown: 1500 * time.Millisecond, CastDirection: CastAim | CastFacing},
		"throw_short": {ID: "throw_short", Kind: ThrowShort, Duration: 20 * time.Millisecond,
			Cooldown: 200 * time.Millisecond, CastDirection: CastAim | CastMove | CastFacing},
		"throw_long": {ID: "throw_long", Kind: ThrowLong, Delay: 100 * time.Millisecond, Duration: 20 * time.Millisecond,
			Cooldown: 200 * time.Millisecond, CastDirection: CastAim | CastMove | CastFacing},
	}
}

func TestScenarioDelayDurationCooldown(t *testing.T) {
	inv := NewInventory()
	inv.Slots[Attack].Data = &Data{ID: "a", Kind: Attack, Delay: 100 * time.Millisecond,
		Duration: 250 * time.Millisecond, Cooldown: time.Second, CastDirection: CastFacing}
	a := &inv.Slots[Attack]
	actor := &Actor{}

	if !a.TryActivate(&inv, actor) {
		t.Fatal("activation refused")
	}
	if inv.Active() != Attack {
		t.Fatalf("exclusive slot = %v", inv.Active())
	}

	for n := 1; n <= 110; n++ {
		st := a.Update(&inv, actor, tick)
		switch n {
		case 9:
			if !st.IsDelayed || st.IsActive {
				t.Errorf("t=0.09: %+v", st)
			}
		case 10:
			if !st.IsActiveStartTick || !st.IsActive {
				t.Errorf("t=0.10: %+v", st)
			}
		case 11:
			if st.IsActiveStartTick {
				t.Error("start tick repeated")
			}
		case 34:
			if !st.IsActive || st.IsActiveEndTick {
				t.Errorf("t=0.34: %+v", st)
			}
		case 35:
			if !st.IsActiveEndTick || st.IsActive {
				t.Errorf("t=0.35: %+v", st)
			}
			if inv.HasActiveAbility() {
				t.Error("exclusivity not released at end")
			}
		case 40:
			if !st.IsOnCooldown {
				t.Errorf("t=0.40: %+v", st)
			}
		case 99:
			if !st.IsOnCooldown {
				t.Error("cooldown ended early")
			}
		case 110:
			if st.IsOnCooldown {
				t.Errorf("t=1.10: %+v", st)
			}
		}
	}
}

func TestDelayOverflowCarriesIntoDuration(t *testing.T) {
	inv := NewInventory()
	inv.Slots[Dash].Data = &Data{Kind: Dash, Delay: 15 * time.Millisecond, Duration: 30 * time.Millisecond,
		CastDirection: CastFacing}
	a := &inv.Slots[Dash]
	actor := &Actor{}
	a.TryActivate(&inv, actor)

	a.Update(&inv, actor, tick) // 5ms delay left
	st := a.Update(&inv, actor, tick)
	if !st.IsActiveStartTick {
		t.Fatal("delay should complete on second tick")
	}
	// 5ms of that tick already ran against the duration
	if a.Active.Remaining != 25*time.Millisecond {
		t.Errorf("duration remaining %v, want 25ms", a.Active.Remaining)
	}
}

func TestCooldownAfterDelay(t *testing.T) {
	inv := NewInventory()
	inv.Slots[Bomb].Data = &Data{Kind: Bomb, Delay: 20 * time.Millisecond, Duration: tick,
		Cooldown: 100 * time.Millisecond, CooldownAfterDelay: true, CastDirection: CastFacing}
	a := &inv.Slots[Bomb]
	actor := &Actor{}
	a.TryActivate(&inv, actor)
	if a.IsOnCooldown() {
		t.Fatal("deferred cooldown started at press")
	}
	a.Update(&inv, actor, tick)
	st := a.Update(&inv, actor, tick)
	if !st.IsActiveStartTick || !st.IsOnCooldown {
		t.Errorf("cooldown must start with the active phase: %+v", st)
	}
}

func TestTryActivateRefusalsMutateNothing(t *testing.T) {
	cat := testCatalog()
	tests := []struct {
		name  string
		setup func(inv *Inventory, actor *Actor)
		slot  Type
	}{
		{"cooldown", func(inv *Inventory, _ *Actor) { inv.Slots[Attack].Cooldown.Start(time.Second) }, Attack},
		{"incapacitated", func(_ *Inventory, a *Actor) { a.Incapacitated = true }, Attack},
		{"exclusive", func(inv *Inventory, a *Actor) { inv.Slots[Dash].TryActivate(inv, a) }, Attack},
		{"concurrent needs both", func(inv *Inventory, a *Actor) { inv.Slots[Attack].TryActivate(inv, a) }, Stealth},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := NewInventory()
			inv.Equip(cat, []string{"attack", "dash", "stealth"})
			actor := &Actor{Facing: vmath.V3Forward}
			tt.setup(&inv, actor)

			before := inv
			if inv.Slots[tt.slot].TryActivate(&inv, actor) {
				t.Fatal("activation should be refused")
			}
			if inv != before {
				t.Error("refused activation mutated inventory")
			}
		})
	}
}

func TestConcurrentPairActivates(t *testing.T) {
	inv := NewInventory()
	inv.Equip(testCatalog(), []string{"jump", "stealth"})
	actor := &Actor{}
	if !inv.Slots[Jump].TryActivate(&inv, actor) || !inv.Slots[Stealth].TryActivate(&inv, actor) {
		t.Fatal("two concurrent abilities must start together")
	}
	if inv.HasActiveAbility() {
		t.Error("concurrent abilities must never hold exclusivity")
	}
}

func TestStunWhileActiveReleasesOwnership(t *testing.T) {
	inv := NewInventory()
	inv.Equip(testCatalog(), []string{"attack"})
	a := &inv.Slots[Attack]
	actor := &Actor{}
	a.TryActivate(&inv, actor)
	for i := 0; i < 6; i++ {
		a.Update(&inv, actor, tick)
	}
	if !a.IsActive() {
		t.Fatal("setup: ability should be active")
	}

	actor.Incapacitated = true
	st := a.Update(&inv, actor, tick)
	if st.IsActive || st.IsDelayed || st.IsActiveEndTick || st.IsActiveStartTick {
		t.Errorf("stunned update reported %+v", st)
	}
	if !st.IsOnCooldown {
		t.Error("cooldown must survive a forced stop")
	}
	if inv.HasActiveAbility() || a.IsRunning() {
		t.Error("ownership not released the same tick")
	}
}

func TestStopIsIdempotent(t *testing.T) {
	inv := NewInventory()
	inv.Equip(testCatalog(), []string{"attack", "dash"})
	actor := &Actor{}
	inv.Slots[Dash].TryActivate(&inv, actor)

	// Stopping an idle slot must not touch another slot's exclusivity
	inv.Slots[Attack].Stop(&inv)
	if inv.Active() != Dash {
		t.Fatal("idle stop released another slot")
	}
	inv.Slots[Dash].Stop(&inv)
	inv.Slots[Dash].Stop(&inv)
	if inv.HasActiveAbility() || !inv.Slots[Dash].IsOnCooldown() {
		t.Error("stop must release exclusivity and keep cooldown")
	}
}

func TestCastDirectionPriority(t *testing.T) {
	aim := vmath.Vec3{X: vmath.Scale}
	move := vmath.Vec3{X: -vmath.Scale}
	facing := vmath.Vec3{Z: -vmath.Scale}
	tests := []struct {
		name  string
		set   CastDirection
		actor Actor
		want  vmath.Vec3
	}{
		{"aim wins", CastAim | CastMove | CastFacing, Actor{Aim: aim, Move: move, Facing: facing}, aim},
		{"zero aim falls to move", CastAim | CastMove, Actor{Move: move, Facing: facing}, move},
		{"move not requested", CastAim | CastFacing, Actor{Move: move, Facing: facing}, facing},
		{"nothing set falls to forward", CastAim | CastMove, Actor{}, vmath.V3Forward},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := NewInventory()
			inv.Slots[Hook].Data = &Data{Kind: Hook, CastDirection: tt.set}
			inv.Slots[Hook].TryActivate(&inv, &tt.actor)
			if inv.Cast.Direction != tt.want {
				t.Errorf("direction %+v, want %+v", inv.Cast.Direction, tt.want)
			}
		})
	}
}

func TestCastSnapshot(t *testing.T) {
	inv := NewInventory()
	inv.Equip(testCatalog(), []string{"throw_long"})
	actor := &Actor{
		Aim:      vmath.Vec3{X: vmath.Half},
		Velocity: vmath.V3(1, 0, 2),
	}
	inv.Slots[ThrowLong].TryActivate(&inv, actor)
	if inv.Cast.Strength != vmath.Half {
		t.Errorf("strength %d, want half", inv.Cast.Strength)
	}
	if inv.Cast.Velocity != actor.Velocity {
		t.Error("velocity not captured")
	}
	if inv.Cast.Direction.X != vmath.Scale {
		t.Errorf("direction not normalised: %+v", inv.Cast.Direction)
	}
}

func TestEmptyCastDirectionPanics(t *testing.T) {
	inv := NewInventory()
	inv.Slots[Attack].Data = &Data{Kind: Attack}
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrCastDirection) {
			t.Errorf("recovered %v, want ErrCastDirection", r)
		}
	}()
	inv.Slots[Attack].TryActivate(&inv, &Actor{})
}

func TestBufferedInputActivatesWhenEligible(t *testing.T) {
	inv := NewInventory()
	inv.Equip(testCatalog(), []string{"dash"})
	a := &inv.Slots[Dash]
	actor := &Actor{Incapacitated: true}

	a.UpdateInput(true)
	if a.TryActivate(&inv, actor) {
		t.Fatal("stunned actor activated")
	}
	a.Update(&inv, actor, tick)
	a.UpdateInput(true) // held, not a new edge
	actor.Incapacitated = false
	a.Update(&inv, actor, tick)
	if !a.HasBufferedInput() {
		t.Fatal("press expired inside its window")
	}
	if !a.TryActivate(&inv, actor) {
		t.Error("buffered press not honoured")
	}
	if a.HasBufferedInput() {
		t.Error("activation must consume the buffer")
	}
}

func TestInventoryEquipAndReset(t *testing.T) {
	inv := NewInventory()
	missing := inv.Equip(testCatalog(), []string{"attack", "ghost", "block", "dash"})
	if len(missing) != 1 || missing[0] != "ghost" {
		t.Errorf("missing = %v", missing)
	}
	if _, ok := inv.Ability(Hook); ok {
		t.Error("unequipped slot reported present")
	}
	if _, ok := inv.Ability(TypeNone); ok {
		t.Error("TypeNone reported present")
	}

	actor := &Actor{}
	inv.Slots[Attack].TryActivate(&inv, actor)
	inv.Reset()
	a, _ := inv.Ability(Attack)
	if a.IsRunning() || a.IsOnCooldown() || inv.HasActiveAbility() {
		t.Error("reset left state behind")
	}
	if a.Data == nil {
		t.Error("reset dropped the loadout")
	}
}
