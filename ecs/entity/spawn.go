package entity

import (
	"fmt"

	"github.com/milk9111/overworld/common"
	"github.com/milk9111/overworld/ecs"
	"github.com/milk9111/overworld/prefabs"
)

// NewPlayer spawns the player template.
func NewPlayer(w *ecs.World, store *prefabs.Store) (ecs.Entity, error) {
	return Build(w, store, "player")
}

// NewPlayerAt spawns the player template at a map position.
func NewPlayerAt(w *ecs.World, store *prefabs.Store, x, y float64) (ecs.Entity, error) {
	e, err := Build(w, store, "player")
	if err != nil {
		return ecs.Entity{}, err
	}
	if err := SetEntityPosition(w, e, x, y); err != nil {
		return ecs.Entity{}, fmt.Errorf("entity: player: override position: %w", err)
	}
	return e, nil
}

// NewCursor spawns the screen-space cursor template.
func NewCursor(w *ecs.World, store *prefabs.Store) (ecs.Entity, error) {
	return Build(w, store, "cursor")
}

// SetEntityPosition moves an entity's primary position to x, y.
func SetEntityPosition(w *ecs.World, e ecs.Entity, x, y float64) error {
	p := w.GetPosition(e)
	if p == nil {
		return fmt.Errorf("entity: %s has no position component", e)
	}
	p.MoveTo(common.Vec2{X: x, Y: y})
	return nil
}
