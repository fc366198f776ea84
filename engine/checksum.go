package engine

import (
	"encoding/binary"
	"hash"
	"hash/fnv"
	"time"

	"github.com/lixenwraith/arena/core"
	"github.com/lixenwraith/arena/vmath"
)

// Checksum hashes the simulation state in store order
// Two clients fed the same inputs must agree on every tick
func (w *World) Checksum() uint64 {
	h := stateHasher{h: fnv.New64a()}
	h.i64(w.frame)

	c := &w.Components
	for i, e := range c.Body.entities {
		b := &c.Body.components[i]
		h.entity(e)
		h.vec(b.Position)
		h.vec(b.Velocity)
		h.i64(b.Rotation.Yaw)
		h.i64(b.Rotation.Pitch)
		h.bool(b.Enabled)
		h.bool(b.Grounded)
	}
	for i, e := range c.Actor.entities {
		a := &c.Actor.components[i]
		h.entity(e)
		h.i64(int64(a.Health))
		h.str(a.State())
		h.timer(a.Stun)
		h.timer(a.Knockback)
		h.timer(a.Respawn)
		h.timer(a.SpeedBuff)
		h.i64(a.SpeedMultiplier)
		h.bool(a.Blocking)
		h.bool(a.Hidden)
		h.entity(a.Carrying)
		h.vec(a.Facing)
	}
	for i, e := range c.Inventory.entities {
		inv := &c.Inventory.components[i]
		h.entity(e)
		h.i64(int64(inv.Active()))
		h.vec(inv.Cast.Direction)
		h.i64(inv.Cast.Strength)
		for s := range inv.Slots {
			slot := &inv.Slots[s]
			h.timer(slot.Buffer)
			h.timer(slot.Delay)
			h.timer(slot.Active)
			h.timer(slot.Cooldown)
		}
	}
	for i, e := range c.Ball.entities {
		b := &c.Ball.components[i]
		h.entity(e)
		h.entity(b.Carrier)
		h.entity(b.LastThrower)
		h.timer(b.PickupBlock)
	}
	for i, e := range c.Trajectory.entities {
		t := &c.Trajectory.components[i]
		h.entity(e)
		h.i64(t.Traveled)
		h.i64(int64(t.Phase))
	}
	for i, e := range c.Payload.entities {
		p := &c.Payload.components[i]
		h.entity(e)
		h.timer(p.Life)
		h.timer(p.Fuse)
		h.i64(int64(p.Phase))
	}
	return h.h.Sum64()
}

type stateHasher struct {
	h   hash.Hash64
	buf [8]byte
}

func (s *stateHasher) i64(v int64) {
	binary.LittleEndian.PutUint64(s.buf[:], uint64(v))
	s.h.Write(s.buf[:])
}

func (s *stateHasher) entity(e core.Entity) { s.i64(int64(e)) }

func (s *stateHasher) vec(v vmath.Vec3) {
	s.i64(v.X)
	s.i64(v.Y)
	s.i64(v.Z)
}

func (s *stateHasher) timer(t core.Timer) {
	s.i64(int64(t.Remaining / time.Nanosecond))
	s.bool(t.Running)
}

func (s *stateHasher) bool(b bool) {
	if b {
		s.i64(1)
	} else {
		s.i64(0)
	}
}

func (s *stateHasher) str(v string) {
	s.h.Write([]byte(v))
}
