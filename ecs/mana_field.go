package ecs

import "github.com/milk9111/overworld/common"

// ManaSource is a fixed point in the world that entities can gather
// mana from. Amount drains toward zero as it is gathered and grows
// back toward Max while the source sits on the replenish queue.
type ManaSource struct {
	ID       string
	Type     string
	Position common.Vec2
	Radius   float64
	Amount   float64
	Max      float64
}

// Full reports whether the source holds its maximum amount.
func (s *ManaSource) Full() bool {
	return s != nil && s.Amount >= s.Max
}

// ManaField owns the world's mana sources and the queue of drained
// sources waiting to replenish.
type ManaField struct {
	sources      []*ManaSource
	replenishing map[string]bool
}

// NewManaField creates an empty mana field.
func NewManaField() *ManaField {
	return &ManaField{replenishing: make(map[string]bool)}
}

// AddSource registers a source with the field.
func (f *ManaField) AddSource(src *ManaSource) {
	if f == nil || src == nil {
		return
	}
	f.sources = append(f.sources, src)
}

// Sources returns all registered sources in registration order.
func (f *ManaField) Sources() []*ManaSource {
	if f == nil {
		return nil
	}
	return f.sources
}

// SourcesNear returns the sources whose gather circle overlaps the
// circle of the given radius around p.
func (f *ManaField) SourcesNear(p common.Vec2, radius float64) []*ManaSource {
	if f == nil {
		return nil
	}
	var out []*ManaSource
	for _, src := range f.sources {
		reach := radius + src.Radius
		d := src.Position.Add(p.Scale(-1))
		if d.Len() <= reach {
			out = append(out, src)
		}
	}
	return out
}

// Drain takes up to amount from the source and queues it for
// replenishment. It returns how much was actually taken.
func (f *ManaField) Drain(src *ManaSource, amount float64) float64 {
	if f == nil || src == nil || amount <= 0 {
		return 0
	}
	taken := amount
	if taken > src.Amount {
		taken = src.Amount
	}
	src.Amount -= taken
	if taken > 0 {
		f.replenishing[src.ID] = true
	}
	return taken
}

// Replenishing reports whether the source is queued for replenishment.
func (f *ManaField) Replenishing(src *ManaSource) bool {
	if f == nil || src == nil {
		return false
	}
	return f.replenishing[src.ID]
}

// Replenish regenerates every queued source by amount, removing
// sources from the queue once they are full again.
func (f *ManaField) Replenish(amount float64) {
	if f == nil || amount <= 0 {
		return
	}
	for _, src := range f.sources {
		if !f.replenishing[src.ID] {
			continue
		}
		src.Amount = common.Clamp(src.Amount+amount, 0, src.Max)
		if src.Full() {
			delete(f.replenishing, src.ID)
		}
	}
}
