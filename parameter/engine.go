package parameter

import "time"

// Simulation Timing
const (
	// TickInterval is the fixed simulation step; every client advances by exactly this dt
	TickInterval = 20 * time.Millisecond

	// FrameUpdateInterval is the sandbox render interval (~30 FPS), decoupled from the tick
	FrameUpdateInterval = 33 * time.Millisecond

	// MaxTicksPerFrame bounds catch-up after a stalled frame
	MaxTicksPerFrame = 5
)

// ECS & Resources Limits
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 2048

	// EventBufferMask is the bitmask for fast modulo operations (2048 - 1)
	EventBufferMask = 2047

	// StoreInitialCapacity is the preallocated dense length of each component store
	StoreInitialCapacity = 64

	// QueryHitCapacity is the initial capacity of per-system physics hit buffers
	QueryHitCapacity = 16
)
