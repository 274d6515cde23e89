package system

import (
	"time"

	"go.uber.org/zap"

	"github.com/milk9111/overworld/common"
	"github.com/milk9111/overworld/ecs"
	"github.com/milk9111/overworld/prefabs"
)

// MovementSystem turns held movement inputs into velocity, applies
// velocity to positions, and keeps sprite facing and the stationary
// state bit in sync. Dead entities are left to the death system.
type MovementSystem struct {
	log *zap.Logger
}

// NewMovementSystemFactory returns the registry factory for movement.
func NewMovementSystemFactory() Factory {
	return func(deps Deps, cfg prefabs.SystemConfig) (ecs.System, error) {
		return NewMovementSystem(deps.logger()), nil
	}
}

// NewMovementSystem creates a movement system.
func NewMovementSystem(log *zap.Logger) *MovementSystem {
	if log == nil {
		log = zap.NewNop()
	}
	return &MovementSystem{log: log}
}

func (s *MovementSystem) Update(w *ecs.World, dt time.Duration) {
	if w == nil {
		return
	}
	for _, id := range ecs.IntersectEntities(w.Velocities(), w.Positions()) {
		e, ok := w.Handle(id)
		if !ok {
			continue
		}
		vel := w.GetVelocity(e)
		pos := w.GetPosition(e)
		state := w.GetState(e)
		if state != nil && state.Value.IsDead() {
			continue
		}

		if in := w.GetInput(e); in != nil {
			if state == nil || state.Value.Has(common.StateCanChangeInput) {
				vel.Direction = in.MoveVector()
			}
		}

		canMove := state == nil || state.Value.Has(common.StateCanMove)
		sprite := w.GetSprite(e)

		if canMove && vel.Moving() {
			from := pos.At()
			step := vel.Direction.Normalized().Scale(vel.Speed * dt.Seconds())
			pos.MoveTo(from.Add(step))
			if sprite != nil {
				sprite.State = "moving"
				sprite.Direction = common.DirectionFromVector(vel.Direction)
			}
			if state != nil {
				state.Value = state.Value.Without(common.StateStationary)
			}
			w.Events().PushData(ecs.EventEntityMove, ecs.EntityMoveEvent{
				Entity: e,
				From:   from,
				To:     pos.At(),
			})
			continue
		}

		if sprite != nil {
			sprite.State = "stationary"
		}
		if state != nil {
			state.Value = state.Value.With(common.StateStationary)
		}
	}
}
