package system

import (
	"time"

	"go.uber.org/zap"

	"github.com/milk9111/overworld/ecs"
	"github.com/milk9111/overworld/prefabs"
)

// DeathSystem kills entities whose health is depleted, holds them in
// the dead sprite state while the death animation plays, and once it
// finishes emits the death event and despawns the entity.
type DeathSystem struct {
	log *zap.Logger
}

// NewDeathSystemFactory returns the registry factory for death.
func NewDeathSystemFactory() Factory {
	return func(deps Deps, cfg prefabs.SystemConfig) (ecs.System, error) {
		return NewDeathSystem(deps.logger()), nil
	}
}

// NewDeathSystem creates a death system.
func NewDeathSystem(log *zap.Logger) *DeathSystem {
	if log == nil {
		log = zap.NewNop()
	}
	return &DeathSystem{log: log}
}

func (s *DeathSystem) Update(w *ecs.World, dt time.Duration) {
	if w == nil {
		return
	}
	states := w.States()
	for _, id := range append([]int(nil), states.Entities()...) {
		e, ok := w.Handle(id)
		if !ok {
			continue
		}
		state := w.GetState(e)
		sprite := w.GetSprite(e)

		if !state.Value.IsDead() {
			h := w.GetHealth(e)
			if h == nil || !h.Depleted() {
				continue
			}
			prev := state.Value
			state.Kill()
			if sprite != nil {
				sprite.State = "dead"
			}
			if vel := w.GetVelocity(e); vel != nil {
				vel.Stop()
			}
			if in := w.GetInput(e); in != nil {
				in.Reset()
			}
			s.log.Info("entity died",
				zap.String("entity", e.String()),
				zap.String("template", templateOf(w, e)))
			w.Events().PushData(ecs.EventStateChange, ecs.StateChangeEvent{
				Entity: e,
				From:   prev,
				To:     state.Value,
			})
			continue
		}

		if sprite != nil {
			sprite.State = "dead"
		}
		if a := w.GetAnimator(e); a != nil && sprite != nil {
			desired := sprite.StateName()
			// Idempotent when already playing; an unclaimed dead state
			// leaves the animator on its previous animation.
			_ = a.SetState(desired)
			if a.State() == desired && !a.Finished() {
				continue
			}
		}

		w.Events().PushData(ecs.EventEntityDeath, ecs.EntityDeathEvent{Entity: e})
		w.DestroyEntity(e)
	}
}

func templateOf(w *ecs.World, e ecs.Entity) string {
	if id := w.GetIdentity(e); id != nil {
		return id.Template
	}
	return ""
}
