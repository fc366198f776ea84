package core

import "fmt"

// Entity is a generation-checked handle into the world arena
// Low 32 bits: slot index, high 32 bits: generation (never 0 for a live handle)
// The zero value is the null handle
type Entity uint64

// MakeEntity packs a slot index and generation into a handle
func MakeEntity(index, generation uint32) Entity {
	return Entity(uint64(generation)<<32 | uint64(index))
}

// Index returns the arena slot index
func (e Entity) Index() uint32 { return uint32(e) }

// Generation returns the slot generation the handle was issued with
func (e Entity) Generation() uint32 { return uint32(e >> 32) }

// IsNull reports whether e is the null handle
func (e Entity) IsNull() bool { return e == 0 }

func (e Entity) String() string {
	if e == 0 {
		return "entity(null)"
	}
	return fmt.Sprintf("entity(%d:%d)", e.Index(), e.Generation())
}
