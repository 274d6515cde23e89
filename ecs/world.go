package ecs

import "time"

// System mutates the world once per tick. The tick delta is the
// simulated time covered by this update.
type System interface {
	Update(w *World, dt time.Duration)
}

// World owns entities, component storage, the tick event queue, and
// the ordered system list.
type World struct {
	entities entityStore
	systems  []System
	events   EventQueue

	positions  *SparseSet
	states     *SparseSet
	physics    *SparseSet
	sprites    *SparseSet
	animators  *SparseSet
	healths    *SparseSet
	manas      *SparseSet
	characters *SparseSet
	players    *SparseSet
	inputs     *SparseSet
	velocities *SparseSet
	identities *SparseSet

	manaField *ManaField
}

// NewWorld creates an empty world.
func NewWorld() *World {
	return &World{}
}

// CreateEntity allocates a fresh entity handle.
func (w *World) CreateEntity() Entity {
	return w.entities.alloc()
}

// DestroyEntity releases the entity and drops all of its components.
func (w *World) DestroyEntity(e Entity) {
	if !w.entities.release(e) {
		return
	}
	for _, s := range w.componentSets() {
		s.Remove(e.ID)
	}
}

// IsAlive reports whether the handle refers to a live entity.
func (w *World) IsAlive(e Entity) bool {
	if w == nil {
		return false
	}
	return w.entities.isAlive(e)
}

// EntityCount returns the number of live entities.
func (w *World) EntityCount() int {
	if w == nil {
		return 0
	}
	return w.entities.liveCount()
}

// Handle rebuilds the live entity handle for a raw component-set id.
func (w *World) Handle(id int) (Entity, bool) {
	if w == nil {
		return Entity{}, false
	}
	return w.entities.handleFor(id)
}

// AddSystem appends a system to the update order. Systems run in the
// order they were added, every tick.
func (w *World) AddSystem(s System) {
	if w == nil || s == nil {
		return
	}
	w.systems = append(w.systems, s)
}

// Systems returns the systems in update order.
func (w *World) Systems() []System {
	if w == nil {
		return nil
	}
	return w.systems
}

// Update runs every system once in registration order, then discards
// any events nothing drained during the tick.
func (w *World) Update(dt time.Duration) {
	if w == nil {
		return
	}
	for _, s := range w.systems {
		if s != nil {
			s.Update(w, dt)
		}
	}
	w.events.flush()
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

// SetManaField attaches an ambient mana field to the world.
func (w *World) SetManaField(f *ManaField) {
	if w == nil {
		return
	}
	w.manaField = f
}

// ManaField returns the attached mana field, if any.
func (w *World) ManaField() *ManaField {
	if w == nil {
		return nil
	}
	return w.manaField
}

func (w *World) componentSets() []*SparseSet {
	return []*SparseSet{
		w.positions,
		w.states,
		w.physics,
		w.sprites,
		w.animators,
		w.healths,
		w.manas,
		w.characters,
		w.players,
		w.inputs,
		w.velocities,
		w.identities,
	}
}
