package engine

import "github.com/lixenwraith/arena/event"

// System is one stage of the fixed tick
// Update reads dt from World.Resources.Time; HandleEvent receives routed events before any Update of the tick
type System interface {
	Name() string
	Priority() int // Lower values run first
	EventTypes() []event.EventType
	HandleEvent(ev event.GameEvent)
	Update()
}

// SystemBase provides common dependency for all system
// Embed in system struct to eliminate boilerplate
type SystemBase struct {
	World     *World
	Resource  *Resource
	Component ComponentStore
}

// NewSystemBase initializes base dependency from world
// Call once in system constructor
func NewSystemBase(w *World) SystemBase {
	return SystemBase{
		World:     w,
		Resource:  w.Resources,
		Component: w.Components,
	}
}
