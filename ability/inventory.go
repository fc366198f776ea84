package ability

import "github.com/lixenwraith/arena/vmath"

// Snapshot is the cast context captured when an ability activates
type Snapshot struct {
	Direction vmath.Vec3
	Rotation  vmath.Rotation
	Velocity  vmath.Vec3
	Strength  int64 // Q32.32 in [0, Scale]
}

// Inventory is the fixed slot array of one entity
// At most one non-concurrent slot is held as exclusive-active
type Inventory struct {
	Slots     [TypeCount]Ability
	Cast      Snapshot
	Ownership Ownership

	active int // Slot index + 1, 0 when none
}

// NewInventory returns an empty inventory with slot identities assigned
func NewInventory() Inventory {
	var inv Inventory
	for i := range inv.Slots {
		inv.Slots[i].Type = Type(i)
	}
	inv.Ownership = ResolveOwnership(nil)
	return inv
}

// Equip replaces the loadout with the data ids given, resolving them through cat
// Unknown ids leave their slot absent and are returned for the caller to report
func (inv *Inventory) Equip(cat Catalog, loadout []string) (missing []string) {
	for i := range inv.Slots {
		inv.Slots[i] = Ability{Type: Type(i)}
	}
	inv.active = 0
	inv.Cast = Snapshot{}

	for _, id := range loadout {
		d, ok := cat.Lookup(id)
		if !ok || !d.Kind.Valid() {
			missing = append(missing, id)
			continue
		}
		inv.Slots[d.Kind].Data = d
	}
	inv.Ownership = ResolveOwnership(inv.Populated())
	return missing
}

// Populated returns the populated slot types in slot order
func (inv *Inventory) Populated() []Type {
	out := make([]Type, 0, TypeCount)
	for i := range inv.Slots {
		if inv.Slots[i].Data != nil {
			out = append(out, Type(i))
		}
	}
	return out
}

// Ability returns the populated slot of type t
func (inv *Inventory) Ability(t Type) (*Ability, bool) {
	if !t.Valid() || inv.Slots[t].Data == nil {
		return nil, false
	}
	return &inv.Slots[t], true
}

// Active returns the exclusive-active slot type, TypeNone when free
func (inv *Inventory) Active() Type {
	return Type(inv.active - 1)
}

// HasActiveAbility reports whether a non-concurrent ability holds exclusivity
func (inv *Inventory) HasActiveAbility() bool {
	return inv.active != 0
}

// TryGetActiveAbility returns the exclusive-active slot
func (inv *Inventory) TryGetActiveAbility() (*Ability, bool) {
	if inv.active == 0 {
		return nil, false
	}
	return &inv.Slots[inv.active-1], true
}

// ReleaseExclusive clears the exclusive pointer without stopping the slot
func (inv *Inventory) ReleaseExclusive() {
	inv.active = 0
}

// Reset stops every slot and clears buffers and cooldowns, keeping the loadout
// Used on respawn
func (inv *Inventory) Reset() {
	for i := range inv.Slots {
		inv.Slots[i].reset(inv)
	}
	inv.active = 0
	inv.Cast = Snapshot{}
}

func (inv *Inventory) setActive(t Type) {
	if !t.Valid() {
		inv.active = 0
		return
	}
	inv.active = int(t) + 1
}
