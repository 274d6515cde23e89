package entity

import (
	"fmt"

	"github.com/milk9111/overworld/component"
	"github.com/milk9111/overworld/ecs"
	"github.com/milk9111/overworld/prefabs"
)

type attachFn func(w *ecs.World, e ecs.Entity, v any) error

// attachRegistry maps schema kinds to typed attachment. Build walks
// kinds in schema registration order, so attachment order is stable
// across spawns.
var attachRegistry = map[string]attachFn{
	"position":  attachPosition,
	"state":     attachState,
	"physics":   attachPhysics,
	"sprite":    attachSprite,
	"health":    attachHealth,
	"mana":      attachMana,
	"character": attachCharacter,
	"player":    attachPlayer,
	"input":     attachInput,
	"velocity":  attachVelocity,
}

// Build spawns an entity from the named template. Every component the
// resolved template carries is cloned onto a fresh entity, a sprite
// additionally gets a playback animator positioned at the sprite's
// authored initial state, and the entity is stamped with an identity
// recording the template it came from. A failed attachment destroys
// the partially built entity.
func Build(w *ecs.World, store *prefabs.Store, template string) (ecs.Entity, error) {
	if w == nil {
		return ecs.Entity{}, fmt.Errorf("entity: build %q: world is nil", template)
	}
	resolved, err := store.Resolve(template)
	if err != nil {
		return ecs.Entity{}, fmt.Errorf("entity: build %q: %w", template, err)
	}

	e := w.CreateEntity()
	for _, kind := range resolved.Kinds() {
		proto, _ := resolved.Component(kind)
		v, err := component.Clone(kind, proto)
		if err != nil {
			w.DestroyEntity(e)
			return ecs.Entity{}, fmt.Errorf("entity: build %q: clone %s: %w", template, kind, err)
		}
		attach, ok := attachRegistry[kind]
		if !ok {
			w.DestroyEntity(e)
			return ecs.Entity{}, fmt.Errorf("entity: build %q: no attachment for component %q", template, kind)
		}
		if err := attach(w, e, v); err != nil {
			w.DestroyEntity(e)
			return ecs.Entity{}, fmt.Errorf("entity: build %q: attach %s: %w", template, kind, err)
		}
	}

	if sheet := resolved.Sprite(); sheet != nil {
		sprite := w.GetSprite(e)
		animator, err := component.NewAnimator(sheet, sprite.StateName())
		if err != nil {
			w.DestroyEntity(e)
			return ecs.Entity{}, fmt.Errorf("entity: build %q: animator: %w", template, err)
		}
		w.SetAnimator(e, animator)
	}

	w.SetIdentity(e, component.NewIdentity(template))
	return e, nil
}

func attachPosition(w *ecs.World, e ecs.Entity, v any) error {
	p, ok := v.(*component.Position)
	if !ok {
		return fmt.Errorf("entity: position: unexpected value %T", v)
	}
	w.SetPosition(e, p)
	return nil
}

func attachState(w *ecs.World, e ecs.Entity, v any) error {
	s, ok := v.(*component.State)
	if !ok {
		return fmt.Errorf("entity: state: unexpected value %T", v)
	}
	w.SetState(e, s)
	return nil
}

func attachPhysics(w *ecs.World, e ecs.Entity, v any) error {
	p, ok := v.(*component.Physics)
	if !ok {
		return fmt.Errorf("entity: physics: unexpected value %T", v)
	}
	w.SetPhysics(e, p)
	return nil
}

func attachSprite(w *ecs.World, e ecs.Entity, v any) error {
	s, ok := v.(*component.Sprite)
	if !ok {
		return fmt.Errorf("entity: sprite: unexpected value %T", v)
	}
	w.SetSprite(e, s)
	return nil
}

func attachHealth(w *ecs.World, e ecs.Entity, v any) error {
	h, ok := v.(*component.Health)
	if !ok {
		return fmt.Errorf("entity: health: unexpected value %T", v)
	}
	w.SetHealth(e, h)
	return nil
}

func attachMana(w *ecs.World, e ecs.Entity, v any) error {
	m, ok := v.(*component.Mana)
	if !ok {
		return fmt.Errorf("entity: mana: unexpected value %T", v)
	}
	w.SetMana(e, m)
	return nil
}

func attachCharacter(w *ecs.World, e ecs.Entity, v any) error {
	c, ok := v.(*component.Character)
	if !ok {
		return fmt.Errorf("entity: character: unexpected value %T", v)
	}
	w.SetCharacter(e, c)
	return nil
}

func attachPlayer(w *ecs.World, e ecs.Entity, v any) error {
	p, ok := v.(*component.Player)
	if !ok {
		return fmt.Errorf("entity: player: unexpected value %T", v)
	}
	w.SetPlayer(e, p)
	return nil
}

func attachInput(w *ecs.World, e ecs.Entity, v any) error {
	i, ok := v.(*component.Input)
	if !ok {
		return fmt.Errorf("entity: input: unexpected value %T", v)
	}
	w.SetInput(e, i)
	return nil
}

func attachVelocity(w *ecs.World, e ecs.Entity, v any) error {
	vel, ok := v.(*component.Velocity)
	if !ok {
		return fmt.Errorf("entity: velocity: unexpected value %T", v)
	}
	w.SetVelocity(e, vel)
	return nil
}
