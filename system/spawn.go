package system

import (
	"fmt"
	"log"
	"strings"

	"github.com/lixenwraith/arena/ability"
	"github.com/lixenwraith/arena/component"
	"github.com/lixenwraith/arena/core"
	"github.com/lixenwraith/arena/engine"
	"github.com/lixenwraith/arena/event"
	"github.com/lixenwraith/arena/parameter"
	"github.com/lixenwraith/arena/physics"
	"github.com/lixenwraith/arena/trajectory"
	"github.com/lixenwraith/arena/vmath"
)

// ActorSpec describes an actor to place in the arena
type ActorSpec struct {
	Team     uint8
	Player   int // Input slot, -1 for an idle dummy
	Position vmath.Vec3
	Facing   vmath.Vec3
	Loadout  []string
}

// SpawnActor creates an actor with body, status, lifecycle and equipped inventory
func SpawnActor(w *engine.World, spec ActorSpec) core.Entity {
	e := w.CreateEntity()

	pos := spec.Position
	if pos.Y < parameter.GroundY+parameter.ActorRadius {
		pos.Y = parameter.GroundY + parameter.ActorRadius
	}

	stateMetric := w.Resources.Status.Strings.Get(fmt.Sprintf("actor.%d.state", e.Index()))
	stateMetric.Store(component.LifecycleAlive)

	w.Components.Body.Set(e, component.BodyComponent{
		Kinetic:  core.Kinetic{Position: pos},
		Rotation: vmath.LookRotation(vmath.V3NormalizeOr(spec.Facing, vmath.V3Forward)),
		Radius:   parameter.ActorRadius,
		Layer:    physics.LayerActor,
		Team:     spec.Team,
		Enabled:  true,
		Gravity:  true,
	})
	w.Components.Actor.Set(e, component.ActorComponent{
		Team:            spec.Team,
		Player:          spec.Player,
		Spawn:           pos,
		Facing:          vmath.V3NormalizeOr(spec.Facing, vmath.V3Forward),
		Health:          parameter.ActorMaxHealth,
		MaxHealth:       parameter.ActorMaxHealth,
		SpeedMultiplier: vmath.Scale,
		Lifecycle:       component.NewActorLifecycle(stateMetric.Store),
	})

	inv := component.InventoryComponent{
		Inventory: ability.NewInventory(),
		Loadout:   append([]string(nil), spec.Loadout...),
	}
	equip(w, e, &inv)
	w.Components.Inventory.Set(e, inv)
	return e
}

// equip resolves the loadout through the content catalog and reports authoring problems
func equip(w *engine.World, e core.Entity, inv *component.InventoryComponent) {
	cat := w.Resources.Content.Catalog
	if cat == nil {
		log.Printf("actor %v: no ability catalog, loadout ignored", e)
		return
	}
	missing := inv.Equip(cat, inv.Loadout)

	var warning string
	if inv.Ownership.Warning() {
		warning = fmt.Sprintf("%d utility abilities, want exactly 1", inv.Ownership.UtilityCandidates)
	}
	if len(missing) == 0 && warning == "" {
		return
	}
	if len(missing) > 0 {
		log.Printf("actor %v: unknown ability data %s", e, strings.Join(missing, ", "))
	}
	if warning != "" {
		log.Printf("actor %v: %s", e, warning)
	}
	w.PushEvent(event.EventLoadoutWarning, &event.LoadoutPayload{
		Entity:  e,
		Warning: warning,
		Missing: missing,
	})
}

// SpawnBall places the loose match ball at pos
func SpawnBall(w *engine.World, pos vmath.Vec3) core.Entity {
	e := w.CreateEntity()
	w.Components.Body.Set(e, component.BodyComponent{
		Kinetic: core.Kinetic{Position: pos},
		Radius:  parameter.BallRadius,
		Layer:   physics.LayerBall,
		Enabled: true,
		Gravity: true,
	})
	w.Components.Ball.Set(e, component.BallComponent{Spawn: pos})
	return e
}

// spawnRequest is a projectile deferred until the caster loop is done with its store pointers
type spawnRequest struct {
	Owner   core.Entity
	Team    uint8
	Source  ability.Type
	Origin  vmath.Vec3
	Path    trajectory.Path
	Follow  bool // Ride the path; otherwise drop as a free body at Origin
	Data    *ability.Data
	Initial vmath.Vec3 // Free body velocity when not following
}

// spawnPayload creates a payload entity riding a planned path or lying as a free body
func spawnPayload(w *engine.World, req spawnRequest) core.Entity {
	e := w.CreateEntity()

	body := component.BodyComponent{
		Kinetic: core.Kinetic{Position: req.Origin, Velocity: req.Initial},
		Radius:  parameter.PayloadRadius,
		Layer:   physics.LayerPayload,
		Team:    req.Team,
		Enabled: !req.Follow,
		Gravity: true,
	}
	if req.Follow {
		prof := req.Data.Trajectory
		st := trajectory.NewState(req.Path, prof.Speed, prof.HandoffDistance, prof.Mode)
		body.Position = st.Position()
		body.Rotation = st.Rotation()
		w.Components.Trajectory.Set(e, component.TrajectoryComponent{State: st, Owner: req.Owner, Source: req.Source})
	}
	w.Components.Body.Set(e, body)
	w.Components.Payload.Set(e, component.PayloadComponent{
		Payload: trajectory.NewPayload(req.Data.Payload, req.Owner, req.Team),
		Source:  req.Source,
	})
	return e
}
