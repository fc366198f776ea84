package system

import (
	"fmt"

	"github.com/lixenwraith/arena/ability"
	"github.com/lixenwraith/arena/content"
	"github.com/lixenwraith/arena/core"
	"github.com/lixenwraith/arena/engine"
	"github.com/lixenwraith/arena/vmath"
)

// Register adds every simulation system; World sorts them into the fixed priority order
func Register(w *engine.World) {
	w.AddSystem(NewInputSystem(w))
	w.AddSystem(NewAbilitySystem(w))
	w.AddSystem(NewBallSystem(w))
	w.AddSystem(NewTrajectorySystem(w))
	w.AddSystem(NewPhysicsSystem(w))
	w.AddSystem(NewPayloadSystem(w))
	w.AddSystem(NewActorSystem(w))
	w.AddSystem(NewDeathSystem(w))
}

// ArenaConfig is a match setup
type ArenaConfig struct {
	Players  int // Input slots
	Actors   []ActorSpec
	WithBall bool
	Ball     vmath.Vec3
}

// Arena is a ready-to-step world with its spawned entities
type Arena struct {
	World  *engine.World
	Actors []core.Entity
	Ball   core.Entity
}

// NewArena builds a world with all systems, the catalog and every configured entity
// Spawn order is fixed by the config so handles match across clients
func NewArena(catalog ability.Catalog, cfg ArenaConfig) *Arena {
	w := engine.NewWorld()
	w.Resources.Content.Catalog = catalog
	w.Resources.Input.SetPlayers(cfg.Players)
	Register(w)

	a := &Arena{World: w}
	for _, spec := range cfg.Actors {
		a.Actors = append(a.Actors, SpawnActor(w, spec))
	}
	if cfg.WithBall {
		a.Ball = SpawnBall(w, cfg.Ball)
	}
	return a
}

// ArenaFromContent converts the catalog's arena layout into a match setup
// Players is one more than the highest input slot used
func ArenaFromContent(cat *content.Catalog) (ArenaConfig, error) {
	layout := cat.Arena()
	if layout == nil {
		return ArenaConfig{}, fmt.Errorf("content has no arena layout")
	}

	var cfg ArenaConfig
	for i, a := range layout.Actors {
		loadout, err := cat.Loadout(a.Loadout)
		if err != nil {
			return ArenaConfig{}, fmt.Errorf("arena actor %d: %w", i, err)
		}
		player := -1
		if a.Player != nil {
			player = *a.Player
			cfg.Players = max(cfg.Players, player+1)
		}
		cfg.Actors = append(cfg.Actors, ActorSpec{
			Team:     a.Team,
			Player:   player,
			Position: a.Position.Vec3(),
			Facing:   a.Facing.Vec3(),
			Loadout:  loadout,
		})
	}
	if layout.Ball != nil {
		cfg.WithBall = true
		cfg.Ball = layout.Ball.Vec3()
	}
	return cfg, nil
}
