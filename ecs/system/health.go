package system

import (
	"time"

	"go.uber.org/zap"

	"github.com/milk9111/overworld/common"
	"github.com/milk9111/overworld/ecs"
	"github.com/milk9111/overworld/prefabs"
)

// HealthRegenerationSystem regenerates health over time on entities
// whose state allows replenishment.
type HealthRegenerationSystem struct {
	log  *zap.Logger
	rate float64
}

// NewHealthRegenerationSystemFactory returns the registry factory for
// health regeneration.
func NewHealthRegenerationSystemFactory() Factory {
	return func(deps Deps, cfg prefabs.SystemConfig) (ecs.System, error) {
		return &HealthRegenerationSystem{
			log:  deps.logger(),
			rate: cfg.Float("default_regeneration_rate", 1),
		}, nil
	}
}

func (s *HealthRegenerationSystem) Update(w *ecs.World, dt time.Duration) {
	if w == nil {
		return
	}
	healths := w.Healths()
	for _, id := range healths.Entities() {
		e, ok := w.Handle(id)
		if !ok {
			continue
		}
		if state := w.GetState(e); state != nil && !state.Value.Has(common.StateCanReplenishHealth) {
			continue
		}
		h := w.GetHealth(e)
		if h.Full() {
			continue
		}
		h.Gain(s.rate * dt.Seconds())
	}
}
