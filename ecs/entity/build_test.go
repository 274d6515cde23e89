package entity

import (
	"errors"
	"testing"

	"github.com/milk9111/overworld/component"
	"github.com/milk9111/overworld/ecs"
	"github.com/milk9111/overworld/prefabs"
)

type fakeSheets struct {
	w, h int
}

func (f *fakeSheets) SheetSize(ref string) (int, int, error) {
	return f.w, f.h, nil
}

const buildDoc = `
entities:
  templates:
    human:
      components:
        position: ~
        state: ~
        physics:
          core_size: [24, 16]
        sprite:
          sprite_size: [64, 64]
          animations:
            - layers: [body.png]
              states: [stationary_south, stationary_north]
              frame_size: [64, 64]
              frame_count: 1
              loop: true
        health: ~
        character:
          name: Villager
    player:
      parent: human
      components:
        player: ~
        velocity: ~
        mana: ~
        input: ~
        character:
          name: The Hero
`

func buildStore(t *testing.T) *prefabs.Store {
	t.Helper()
	doc, err := prefabs.ParseDocument([]byte(buildDoc))
	if err != nil {
		t.Fatalf("parse document: %v", err)
	}
	return prefabs.NewStore(doc, &fakeSheets{w: 576, h: 256})
}

func TestBuildSpawnsResolvedComponents(t *testing.T) {
	w := ecs.NewWorld()
	store := buildStore(t)

	e, err := Build(w, store, "player")
	if err != nil {
		t.Fatalf("build player: %v", err)
	}
	if !w.IsAlive(e) {
		t.Fatalf("spawned entity should be alive")
	}

	if c := w.GetCharacter(e); c == nil || c.Name != "The Hero" {
		t.Fatalf("expected overridden character name, got %+v", c)
	}
	if p := w.GetPhysics(e); p == nil || p.CoreSize != [2]int{24, 16} {
		t.Fatalf("expected inherited core size, got %+v", p)
	}
	if w.GetPlayer(e) == nil || w.GetInput(e) == nil || w.GetMana(e) == nil {
		t.Fatalf("expected player, input, and mana components present")
	}

	a := w.GetAnimator(e)
	if a == nil {
		t.Fatalf("sprite template should get an animator")
	}
	if a.State() != "stationary_south" {
		t.Fatalf("animator should start in the sprite's initial state, got %q", a.State())
	}

	id := w.GetIdentity(e)
	if id == nil || id.Template != "player" || id.ID == "" {
		t.Fatalf("expected identity stamped with template name, got %+v", id)
	}
}

func TestBuildClonesPerEntity(t *testing.T) {
	w := ecs.NewWorld()
	store := buildStore(t)

	e1, err := Build(w, store, "player")
	if err != nil {
		t.Fatalf("build first: %v", err)
	}
	e2, err := Build(w, store, "player")
	if err != nil {
		t.Fatalf("build second: %v", err)
	}

	w.GetCharacter(e1).Name = "Renamed"
	if got := w.GetCharacter(e2).Name; got != "The Hero" {
		t.Fatalf("component state leaked between entities, got %q", got)
	}

	proto, _ := mustResolve(t, store, "player").Component("character")
	if proto.(*component.Character).Name != "The Hero" {
		t.Fatalf("mutating an entity must not touch the template prototype")
	}

	if w.GetIdentity(e1).ID == w.GetIdentity(e2).ID {
		t.Fatalf("each spawn should mint a distinct instance id")
	}
}

func TestBuildUnknownTemplate(t *testing.T) {
	w := ecs.NewWorld()
	store := buildStore(t)

	_, err := Build(w, store, "dragon")
	if !errors.Is(err, prefabs.ErrUnknownTemplate) {
		t.Fatalf("expected ErrUnknownTemplate, got %v", err)
	}
	if w.EntityCount() != 0 {
		t.Fatalf("failed build must not leave entities behind")
	}
}

func TestBuildAnimatorFailureDestroysEntity(t *testing.T) {
	const doc = `
entities:
  templates:
    ghost:
      components:
        sprite:
          sprite_size: [32, 32]
          state: moving
          animations:
            - layers: [ghost.png]
              states: [stationary_south]
              frame_size: [32, 32]
              frame_count: 1
`
	parsed, err := prefabs.ParseDocument([]byte(doc))
	if err != nil {
		t.Fatalf("parse document: %v", err)
	}
	store := prefabs.NewStore(parsed, &fakeSheets{w: 32, h: 32})

	w := ecs.NewWorld()
	_, err = Build(w, store, "ghost")
	if !errors.Is(err, component.ErrUnclaimedState) {
		t.Fatalf("expected ErrUnclaimedState for initial state, got %v", err)
	}
	if w.EntityCount() != 0 {
		t.Fatalf("failed build must destroy the partial entity")
	}
}

func TestSpawnHelpers(t *testing.T) {
	w := ecs.NewWorld()
	store := buildStore(t)

	e, err := NewPlayerAt(w, store, 120, 80)
	if err != nil {
		t.Fatalf("spawn player at: %v", err)
	}
	at := w.GetPosition(e).At()
	if at.X != 120 || at.Y != 80 {
		t.Fatalf("expected position (120, 80), got %+v", at)
	}
}

func mustResolve(t *testing.T, store *prefabs.Store, name string) *prefabs.Resolved {
	t.Helper()
	r, err := store.Resolve(name)
	if err != nil {
		t.Fatalf("resolve %s: %v", name, err)
	}
	return r
}
