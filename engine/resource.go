package engine

import (
	"time"

	"github.com/lixenwraith/arena/ability"
	"github.com/lixenwraith/arena/event"
	"github.com/lixenwraith/arena/input"
	"github.com/lixenwraith/arena/physics"
	"github.com/lixenwraith/arena/status"
)

// Resource holds the world singletons, created with the world and accessed via World.Resources
type Resource struct {
	Time    *TimeResource
	Event   *EventQueueResource
	Content *ContentResource
	Input   *InputResource
	Space   *physics.Space

	// Telemetry
	Status *status.Registry
}

// NewResource builds resources with an empty catalog and no players
func NewResource() *Resource {
	return &Resource{
		Time:    &TimeResource{},
		Event:   &EventQueueResource{Queue: event.NewQueue()},
		Content: &ContentResource{},
		Input:   &InputResource{},
		Space:   physics.NewSpace(),
		Status:  status.NewRegistry(),
	}
}

// TimeResource is the fixed-step clock, updated by World.Step before systems run
type TimeResource struct {
	// DeltaTime is the fixed tick; identical on every client
	DeltaTime time.Duration

	// GameTime is the simulated time since start
	GameTime time.Duration

	// FrameNumber is the current tick count
	FrameNumber int64
}

// Update modifies TimeResource fields in place
func (tr *TimeResource) Update(deltaTime time.Duration, frameNumber int64) {
	tr.DeltaTime = deltaTime
	tr.GameTime += deltaTime
	tr.FrameNumber = frameNumber
}

// EventQueueResource wraps the event queue for systems access
type EventQueueResource struct {
	Queue *event.Queue
}

// ContentResource resolves ability data ids
type ContentResource struct {
	Catalog ability.Catalog
}

// InputResource carries one sampled input per player for the current tick
// The harness writes Players before Step; InputSystem derives Frames
type InputResource struct {
	Players []input.PlayerInput
	Frames  []input.Frame
}

// SetPlayers sizes the input slots for n players
func (ir *InputResource) SetPlayers(n int) {
	ir.Players = make([]input.PlayerInput, n)
	ir.Frames = make([]input.Frame, n)
}

// Frame returns the edge-tracked frame of player i, zero when i is not a player
func (ir *InputResource) Frame(i int) input.Frame {
	if i < 0 || i >= len(ir.Frames) {
		return input.Frame{}
	}
	return ir.Frames[i]
}
