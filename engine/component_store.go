package engine

import "github.com/lixenwraith/arena/component"

// ComponentStore provides cached pointers to the typed component stores
// Pointers remain valid for the world lifetime
type ComponentStore struct {
	Actor      *Store[component.ActorComponent]
	Body       *Store[component.BodyComponent]
	Inventory  *Store[component.InventoryComponent]
	Ball       *Store[component.BallComponent]
	Trajectory *Store[component.TrajectoryComponent]
	Payload    *Store[component.PayloadComponent]

	// Lifecycle
	Death *Store[component.DeathComponent]
}

// registerStore creates a store and enrolls it for entity destruction
func registerStore[T any](w *World) *Store[T] {
	s := NewStore[T]()
	w.stores = append(w.stores, s)
	return s
}

func initComponentStores(w *World) {
	w.Components = ComponentStore{
		Actor:      registerStore[component.ActorComponent](w),
		Body:       registerStore[component.BodyComponent](w),
		Inventory:  registerStore[component.InventoryComponent](w),
		Ball:       registerStore[component.BallComponent](w),
		Trajectory: registerStore[component.TrajectoryComponent](w),
		Payload:    registerStore[component.PayloadComponent](w),
		Death:      registerStore[component.DeathComponent](w),
	}
}
