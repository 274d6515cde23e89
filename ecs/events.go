package ecs

import "github.com/milk9111/overworld/common"

// Event is a queued ECS event payload.
type Event struct {
	Type string
	Data any
}

// Event types pushed by the built-in systems.
const (
	EventEntityMove     = "entity_move"
	EventEntityDeath    = "entity_death"
	EventStateChange    = "entity_state_change"
	EventTemplateReload = "template_reload"
)

// EntityMoveEvent is emitted when a movement pass changes an entity's
// position.
type EntityMoveEvent struct {
	Entity Entity
	From   common.Vec2
	To     common.Vec2
}

// EntityDeathEvent is emitted once when a dead entity's death
// animation has finished playing.
type EntityDeathEvent struct {
	Entity Entity
}

// StateChangeEvent is emitted when an entity's state bits change.
type StateChangeEvent struct {
	Entity Entity
	From   common.EntityState
	To     common.EntityState
}

// TemplateReloadEvent is emitted when a watched template document
// changes on disk.
type TemplateReloadEvent struct {
	Path string
}

// EventQueue is a FIFO queue drained once per tick after all systems
// have run.
type EventQueue struct {
	items []Event
}

// Push adds an event to the back of the queue.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// PushData wraps data in an Event of the given type and queues it.
func (q *EventQueue) PushData(eventType string, data any) {
	q.Push(Event{Type: eventType, Data: data})
}

// Drain returns all queued events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

// Len returns the number of queued events.
func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}
