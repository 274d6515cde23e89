package system

import (
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/milk9111/overworld/component"
	"github.com/milk9111/overworld/ecs"
	"github.com/milk9111/overworld/prefabs"
)

// AnimationSystem syncs each animator to its sprite's logical state
// and advances playback by the tick delta. A sprite state with no
// claimed animation keeps the previous animation playing.
type AnimationSystem struct {
	log *zap.Logger
}

// NewAnimationSystemFactory returns the registry factory for
// animation.
func NewAnimationSystemFactory() Factory {
	return func(deps Deps, cfg prefabs.SystemConfig) (ecs.System, error) {
		return NewAnimationSystem(deps.logger()), nil
	}
}

// NewAnimationSystem creates an animation system.
func NewAnimationSystem(log *zap.Logger) *AnimationSystem {
	if log == nil {
		log = zap.NewNop()
	}
	return &AnimationSystem{log: log}
}

func (s *AnimationSystem) Update(w *ecs.World, dt time.Duration) {
	if w == nil {
		return
	}
	for _, id := range ecs.IntersectEntities(w.Sprites(), w.Animators()) {
		e, ok := w.Handle(id)
		if !ok {
			continue
		}
		sprite := w.GetSprite(e)
		animator := w.GetAnimator(e)

		desired := sprite.StateName()
		if err := animator.SetState(desired); err != nil {
			if errors.Is(err, component.ErrUnclaimedState) {
				s.log.Debug("animation state not claimed, keeping previous",
					zap.String("entity", e.String()),
					zap.String("state", desired),
					zap.String("playing", animator.State()))
			} else {
				s.log.Warn("animation state switch failed",
					zap.String("entity", e.String()),
					zap.String("state", desired),
					zap.Error(err))
			}
		}
		animator.Advance(dt)
	}
}
