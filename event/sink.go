package event

// Sink accepts domain events; delivery is one-way and never feeds back into the tick that pushed
type Sink interface {
	Push(ev GameEvent)
}

// Discard drops every event
var Discard Sink = discard{}

type discard struct{}

func (discard) Push(GameEvent) {}

// SinkFunc adapts a function to Sink
type SinkFunc func(ev GameEvent)

func (f SinkFunc) Push(ev GameEvent) { f(ev) }
