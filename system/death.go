package system

import (
	"github.com/lixenwraith/arena/core"
	"github.com/lixenwraith/arena/engine"
	"github.com/lixenwraith/arena/event"
	"github.com/lixenwraith/arena/parameter"
)

// DeathSystem destroys every entity tagged during the tick, last in the order
type DeathSystem struct {
	engine.SystemBase
	entities []core.Entity
}

func NewDeathSystem(world *engine.World) engine.System {
	return &DeathSystem{SystemBase: engine.NewSystemBase(world)}
}

func (s *DeathSystem) Name() string {
	return "death"
}

func (s *DeathSystem) Priority() int {
	return parameter.PriorityDeath
}

func (s *DeathSystem) EventTypes() []event.EventType {
	return nil
}

func (s *DeathSystem) HandleEvent(event.GameEvent) {}

func (s *DeathSystem) Update() {
	s.entities = s.Component.Death.AppendEntities(s.entities[:0])
	for _, e := range s.entities {
		s.World.DestroyEntity(e)
	}
}
