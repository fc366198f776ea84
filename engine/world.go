package engine

import (
	"slices"
	"sync"

	"github.com/lixenwraith/arena/core"
	"github.com/lixenwraith/arena/event"
	"github.com/lixenwraith/arena/parameter"
)

// World is the entity arena: generation-checked handles over typed sorted stores
type World struct {
	updateMutex sync.Mutex

	// Arena slots; a slot's generation advances on destroy so stale handles miss
	generations []uint32
	alive       []bool
	free        []uint32 // LIFO reuse keeps slot assignment deterministic
	live        int

	Resources  *Resource
	Components ComponentStore
	stores     []AnyStore

	systems   []System
	handlers  map[event.EventType][]System
	observers []event.Sink
	pending   []event.GameEvent
	frame     int64
}

// NewWorld creates a world with every component store registered
func NewWorld() *World {
	w := &World{
		Resources: NewResource(),
		handlers:  make(map[event.EventType][]System),
	}
	initComponentStores(w)
	return w
}

// CreateEntity reserves a handle, reusing the most recently freed slot first
func (w *World) CreateEntity() core.Entity {
	w.live++
	if n := len(w.free); n > 0 {
		idx := w.free[n-1]
		w.free = w.free[:n-1]
		w.alive[idx] = true
		return core.MakeEntity(idx, w.generations[idx])
	}
	idx := uint32(len(w.generations))
	w.generations = append(w.generations, 1)
	w.alive = append(w.alive, true)
	return core.MakeEntity(idx, 1)
}

// Alive reports whether e refers to a live entity of the current generation
func (w *World) Alive(e core.Entity) bool {
	if e.IsNull() {
		return false
	}
	idx := e.Index()
	return int(idx) < len(w.generations) && w.alive[idx] && w.generations[idx] == e.Generation()
}

// DestroyEntity removes every component of e and retires the handle
// Stale or null handles are ignored
func (w *World) DestroyEntity(e core.Entity) {
	if !w.Alive(e) {
		return
	}
	for _, s := range w.stores {
		s.Remove(e)
	}
	idx := e.Index()
	w.generations[idx]++
	if w.generations[idx] == 0 {
		w.generations[idx] = 1
	}
	w.alive[idx] = false
	w.free = append(w.free, idx)
	w.live--
}

// EntityCount returns the number of live entities
func (w *World) EntityCount() int {
	return w.live
}

// Clear removes all entities and components, keeping systems and resources
func (w *World) Clear() {
	for _, s := range w.stores {
		s.Clear()
	}
	w.generations = w.generations[:0]
	w.alive = w.alive[:0]
	w.free = w.free[:0]
	w.live = 0
	w.Resources.Space.Clear()
}

// AddSystem adds a system, keeps systems sorted by priority and routes its event types
// Equal priorities keep registration order
func (w *World) AddSystem(s System) {
	w.systems = append(w.systems, s)
	slices.SortStableFunc(w.systems, func(a, b System) int {
		return a.Priority() - b.Priority()
	})
	for _, t := range s.EventTypes() {
		w.handlers[t] = append(w.handlers[t], s)
		slices.SortStableFunc(w.handlers[t], func(a, b System) int {
			return a.Priority() - b.Priority()
		})
	}
}

// Systems returns a copy of all registered systems in run order
func (w *World) Systems() []System {
	return slices.Clone(w.systems)
}

// Observe attaches a one-way consumer that sees every event after systems handled it
func (w *World) Observe(sink event.Sink) {
	w.observers = append(w.observers, sink)
}

// PushEvent emits a game event stamped with the current frame
// Delivered at the start of the next Step
func (w *World) PushEvent(eventType event.EventType, payload any) {
	w.Resources.Event.Queue.Push(event.GameEvent{
		Type:    eventType,
		Payload: payload,
		Frame:   w.frame,
	})
}

// FrameNumber returns the index of the last completed or running tick
func (w *World) FrameNumber() int64 {
	return w.frame
}

// Step runs one fixed tick: advance time, route pending events, run systems in priority order
func (w *World) Step() {
	w.frame++
	w.Resources.Time.Update(parameter.TickInterval, w.frame)
	w.dispatch()
	for _, s := range w.systems {
		s.Update()
	}
}

// Flush delivers pending events without running systems
func (w *World) Flush() {
	w.dispatch()
}

func (w *World) dispatch() {
	w.pending = w.Resources.Event.Queue.Drain(w.pending[:0])
	for _, ev := range w.pending {
		for _, h := range w.handlers[ev.Type] {
			h.HandleEvent(ev)
		}
		for _, o := range w.observers {
			o.Push(ev)
		}
	}
	clear(w.pending)
}

// RunSafe executes fn while holding the world update lock
func (w *World) RunSafe(fn func()) {
	w.updateMutex.Lock()
	defer w.updateMutex.Unlock()
	fn()
}

// Lock acquires the world update lock
func (w *World) Lock() {
	w.updateMutex.Lock()
}

// Unlock releases the world update lock
func (w *World) Unlock() {
	w.updateMutex.Unlock()
}
