package system

import (
	"time"

	"go.uber.org/zap"

	"github.com/milk9111/overworld/common"
	"github.com/milk9111/overworld/ecs"
	"github.com/milk9111/overworld/prefabs"
)

// ManaGatheringSystem moves mana from nearby field sources into the
// pools of entities holding the gather input. Sources drained below
// the minimum cannot be gathered from until they replenish.
type ManaGatheringSystem struct {
	log *zap.Logger

	gatherAmount float64
	minimum      float64
	radius       float64
}

// NewManaGatheringSystemFactory returns the registry factory for mana
// gathering.
func NewManaGatheringSystemFactory() Factory {
	return func(deps Deps, cfg prefabs.SystemConfig) (ecs.System, error) {
		return &ManaGatheringSystem{
			log:          deps.logger(),
			gatherAmount: cfg.Float("default_gather_amount", 1),
			minimum:      cfg.Float("minimum_gather_amount", 50),
			radius:       cfg.Float("default_gather_radius", 100),
		}, nil
	}
}

func (s *ManaGatheringSystem) Update(w *ecs.World, dt time.Duration) {
	if w == nil {
		return
	}
	field := w.ManaField()
	if field == nil {
		return
	}
	for _, id := range ecs.IntersectEntities(w.Manas(), w.Inputs(), w.Positions()) {
		e, ok := w.Handle(id)
		if !ok {
			continue
		}
		if in := w.GetInput(e); in == nil || !in.ManaGather {
			continue
		}
		if state := w.GetState(e); state != nil && !state.Value.Has(common.StateCanUseSkills) {
			continue
		}

		mana := w.GetMana(e)
		pos := w.GetPosition(e)
		for _, src := range field.SourcesNear(pos.At(), s.radius) {
			if src.Amount < s.minimum {
				continue
			}
			taken := field.Drain(src, s.gatherAmount)
			if taken <= 0 {
				continue
			}
			stored := mana.Gain(src.Type, taken)
			if excess := taken - stored; excess > 0 {
				// Pool is full, leave the rest in the source.
				src.Amount += excess
			}
		}
	}
}

// ManaReplenishmentSystem regenerates drained field sources back
// toward their maximum.
type ManaReplenishmentSystem struct {
	log  *zap.Logger
	rate float64
}

// NewManaReplenishmentSystemFactory returns the registry factory for
// mana replenishment.
func NewManaReplenishmentSystemFactory() Factory {
	return func(deps Deps, cfg prefabs.SystemConfig) (ecs.System, error) {
		return &ManaReplenishmentSystem{
			log:  deps.logger(),
			rate: cfg.Float("default_regeneration_rate", 1),
		}, nil
	}
}

func (s *ManaReplenishmentSystem) Update(w *ecs.World, dt time.Duration) {
	if w == nil {
		return
	}
	if field := w.ManaField(); field != nil {
		field.Replenish(s.rate * dt.Seconds())
	}
}
