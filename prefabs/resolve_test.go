package prefabs

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/milk9111/overworld/component"
)

type stubSheets map[string][2]int

func (s stubSheets) SheetSize(ref string) (int, int, error) {
	if wh, ok := s[ref]; ok {
		return wh[0], wh[1], nil
	}
	return 0, 0, fmt.Errorf("no sheet %q", ref)
}

// lpcSheets answers for the layer refs in the shipped document.
type lpcSheets struct{}

func (lpcSheets) SheetSize(ref string) (int, int, error) {
	switch {
	case strings.Contains(ref, "walkcycle"):
		return 576, 256, nil
	case strings.Contains(ref, "hurt"):
		return 384, 64, nil
	default:
		return 32, 32, nil
	}
}

func mustParse(t *testing.T, src string) *Document {
	t.Helper()
	doc, err := ParseDocument([]byte(src))
	if err != nil {
		t.Fatalf("parse document: %v", err)
	}
	return doc
}

func TestResolveShippedDocument(t *testing.T) {
	doc, err := LoadDocument(DefaultDocument)
	if err != nil {
		t.Fatalf("load shipped document: %v", err)
	}
	store := NewStore(doc, lpcSheets{})
	if err := store.ResolveAll(); err != nil {
		t.Fatalf("resolve all: %v", err)
	}

	wantNames := []string{"cursor", "human", "player", "town_guard"}
	if got := store.Names(); !reflect.DeepEqual(got, wantNames) {
		t.Fatalf("expected template names %v, got %v", wantNames, got)
	}

	t.Run("player_unions_ancestor_kinds", func(t *testing.T) {
		r, err := store.Resolve("player")
		if err != nil {
			t.Fatalf("resolve player: %v", err)
		}
		want := []string{"position", "state", "physics", "sprite", "health", "mana", "character", "player", "input", "velocity"}
		if got := r.Kinds(); !reflect.DeepEqual(got, want) {
			t.Fatalf("expected kinds %v, got %v", want, got)
		}

		v, _ := r.Component("character")
		if name := v.(*component.Character).Name; name != "The Hero" {
			t.Fatalf("expected character name %q, got %q", "The Hero", name)
		}

		v, _ = r.Component("physics")
		if size := v.(*component.Physics).CoreSize; size != [2]int{24, 16} {
			t.Fatalf("expected core size [24 16] inherited from human, got %v", size)
		}
	})

	t.Run("town_guard_keeps_human_only_kinds", func(t *testing.T) {
		r, err := store.Resolve("town_guard")
		if err != nil {
			t.Fatalf("resolve town_guard: %v", err)
		}
		for _, kind := range []string{"player", "velocity", "mana", "input"} {
			if r.Has(kind) {
				t.Fatalf("town_guard should not carry %q", kind)
			}
		}
		v, _ := r.Component("character")
		if name := v.(*component.Character).Name; name != "Town Guard" {
			t.Fatalf("expected character name %q, got %q", "Town Guard", name)
		}
		v, _ = r.Component("sprite")
		if n := len(v.(*component.Sprite).Animations); n != 3 {
			t.Fatalf("expected 3 animation blocks, got %d", n)
		}
	})

	t.Run("compiled_layer_order", func(t *testing.T) {
		r, err := store.Resolve("player")
		if err != nil {
			t.Fatalf("resolve player: %v", err)
		}
		sprite := r.Sprite()
		if sprite == nil {
			t.Fatalf("expected a compiled sprite")
		}
		if n := len(sprite.States); n != 12 {
			t.Fatalf("expected 12 claimed states, got %d: %v", n, sprite.StateNames())
		}

		anim, err := sprite.Animation("stationary_south")
		if err != nil {
			t.Fatalf("stationary_south: %v", err)
		}
		wantOrder := []string{"BODY_", "FEET_", "LEGS_", "TORSO_chain_armor_torso", "BELT_", "TORSO_chain_armor_jacket", "HANDS_", "HEAD_", "WEAPON_"}
		if len(anim.Layers) != len(wantOrder) {
			t.Fatalf("expected %d layers, got %d", len(wantOrder), len(anim.Layers))
		}
		for i, frag := range wantOrder {
			if !strings.Contains(anim.Layers[i], frag) {
				t.Fatalf("layer %d: expected ref containing %q, got %q", i, frag, anim.Layers[i])
			}
		}
	})

	t.Run("moving_block_offsets_into_sheet", func(t *testing.T) {
		r, _ := store.Resolve("player")
		anim, err := r.Sprite().Animation("moving_south")
		if err != nil {
			t.Fatalf("moving_south: %v", err)
		}
		rect := anim.Rect(0)
		if rect.Min.X != 0 || rect.Min.Y != 64 {
			t.Fatalf("expected frame 0 of offset-9 block at row 1, got %v", rect)
		}
	})
}

func TestResolveMergeRules(t *testing.T) {
	const src = `
entities:
  templates:
    base:
      components:
        health:
          min: 10
          max: 80
          health: 50
        velocity:
          speed: 350
        physics:
          core_size: [10, 12]
        sprite:
          sprite_size: [16, 16]
          animations:
            - layers: [base.png]
              states: [stationary_south, moving_south]
              frame_size: [16, 16]
              frame_count: 2
              loop: true
    child:
      parent: base
      components:
        health:
          health: 20
        velocity: ~
        sprite:
          sprite_size: [32, 32]
          animations:
            - layers: [child.png]
              states: [moving_south]
              frame_size: [16, 16]
              frame_count: 4
              loop: true
`
	sheets := stubSheets{
		"base.png":  {32, 16},
		"child.png": {64, 16},
	}
	store := NewStore(mustParse(t, src), sheets)

	r, err := store.Resolve("child")
	if err != nil {
		t.Fatalf("resolve child: %v", err)
	}

	t.Run("override_replaces_wholesale", func(t *testing.T) {
		v, _ := r.Component("health")
		h := v.(*component.Health)
		if h.Health != 20 || h.Min != 0 || h.Max != 100 {
			t.Fatalf("expected child health decoded onto defaults, got %+v", h)
		}
	})

	t.Run("null_resets_to_default", func(t *testing.T) {
		v, _ := r.Component("velocity")
		if speed := v.(*component.Velocity).Speed; speed != 200 {
			t.Fatalf("expected default speed 200, got %v", speed)
		}
	})

	t.Run("absent_kind_inherits", func(t *testing.T) {
		v, _ := r.Component("physics")
		if size := v.(*component.Physics).CoreSize; size != [2]int{10, 12} {
			t.Fatalf("expected inherited core size [10 12], got %v", size)
		}
	})

	t.Run("sprite_merges_per_state", func(t *testing.T) {
		v, _ := r.Component("sprite")
		sp := v.(*component.Sprite)
		if len(sp.Animations) != 2 {
			t.Fatalf("expected base block plus child block, got %d blocks", len(sp.Animations))
		}
		if sp.SpriteSize != [2]int{32, 32} {
			t.Fatalf("expected child sprite size, got %v", sp.SpriteSize)
		}

		stationary, err := r.Sprite().Animation("stationary_south")
		if err != nil {
			t.Fatalf("stationary_south should survive from base: %v", err)
		}
		if stationary.Layers[0] != "base.png" || stationary.FrameCount != 2 {
			t.Fatalf("expected base block for stationary_south, got %+v", stationary)
		}

		moving, err := r.Sprite().Animation("moving_south")
		if err != nil {
			t.Fatalf("moving_south: %v", err)
		}
		if moving.Layers[0] != "child.png" || moving.FrameCount != 4 {
			t.Fatalf("expected child block to displace moving_south, got %+v", moving)
		}
	})
}

func TestResolveNullSpriteDropsInheritedBlocks(t *testing.T) {
	const src = `
entities:
  templates:
    base:
      components:
        sprite:
          sprite_size: [16, 16]
          animations:
            - layers: [base.png]
              states: [stationary_south]
              frame_size: [16, 16]
              frame_count: 2
    wiped:
      parent: base
      components:
        sprite: ~
    redrawn:
      parent: wiped
      components:
        sprite:
          sprite_size: [16, 16]
          animations:
            - layers: [redrawn.png]
              states: [stationary_south]
              frame_size: [16, 16]
              frame_count: 1
`
	sheets := stubSheets{
		"base.png":    {32, 16},
		"redrawn.png": {16, 16},
	}
	store := NewStore(mustParse(t, src), sheets)

	wiped, err := store.Resolve("wiped")
	if err != nil {
		t.Fatalf("resolve wiped: %v", err)
	}
	if n := len(wiped.Sprite().States); n != 0 {
		t.Fatalf("expected no claimed states after reset, got %d", n)
	}

	redrawn, err := store.Resolve("redrawn")
	if err != nil {
		t.Fatalf("resolve redrawn: %v", err)
	}
	anim, err := redrawn.Sprite().Animation("stationary_south")
	if err != nil {
		t.Fatalf("stationary_south: %v", err)
	}
	if anim.Layers[0] != "redrawn.png" {
		t.Fatalf("expected only the post-reset block, got layers %v", anim.Layers)
	}
	if n := len(redrawn.Sprite().States); n != 1 {
		t.Fatalf("expected 1 claimed state, got %d", n)
	}
}

func TestResolveMemoized(t *testing.T) {
	const src = `
entities:
  templates:
    thing:
      components:
        character:
          name: Thing
`
	store := NewStore(mustParse(t, src), stubSheets{})
	a, err := store.Resolve("thing")
	if err != nil {
		t.Fatalf("first resolve: %v", err)
	}
	b, err := store.Resolve("thing")
	if err != nil {
		t.Fatalf("second resolve: %v", err)
	}
	if a != b {
		t.Fatalf("expected memoized resolution to return the same value")
	}
}

func TestResolveErrors(t *testing.T) {
	const src = `
entities:
  templates:
    orphan:
      parent: missing
      components:
        character: ~
    loop_a:
      parent: loop_b
      components: {}
    loop_b:
      parent: loop_a
      components: {}
    narcissist:
      parent: narcissist
      components: {}
`
	store := NewStore(mustParse(t, src), stubSheets{})

	cases := []struct {
		name     string
		template string
		want     error
	}{
		{"unknown_template", "nobody", ErrUnknownTemplate},
		{"unknown_parent", "orphan", ErrUnknownTemplate},
		{"two_template_cycle", "loop_a", ErrCyclicInheritance},
		{"self_cycle", "narcissist", ErrCyclicInheritance},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := store.Resolve(c.template); !errors.Is(err, c.want) {
				t.Fatalf("expected %v, got %v", c.want, err)
			}
		})
	}
}

func TestResolveDeepChain(t *testing.T) {
	const depth = 1000
	templates := map[string]TemplateSpec{
		"t0": {Components: map[string]ComponentValue{
			"character": {Raw: map[string]any{"name": "Ancestor"}},
		}},
	}
	for i := 1; i < depth; i++ {
		templates[fmt.Sprintf("t%d", i)] = TemplateSpec{
			Parent:     fmt.Sprintf("t%d", i-1),
			Components: map[string]ComponentValue{},
		}
	}
	doc := &Document{Entities: EntitiesSpec{Templates: templates}}

	store := NewStore(doc, stubSheets{})
	r, err := store.Resolve(fmt.Sprintf("t%d", depth-1))
	if err != nil {
		t.Fatalf("resolve deep chain: %v", err)
	}
	v, ok := r.Component("character")
	if !ok {
		t.Fatalf("expected character inherited through %d levels", depth)
	}
	if name := v.(*component.Character).Name; name != "Ancestor" {
		t.Fatalf("expected root name to survive the chain, got %q", name)
	}
}

func TestResolveDeepCycle(t *testing.T) {
	const depth = 1000
	templates := make(map[string]TemplateSpec, depth)
	for i := 0; i < depth; i++ {
		templates[fmt.Sprintf("t%d", i)] = TemplateSpec{
			Parent:     fmt.Sprintf("t%d", (i+depth-1)%depth),
			Components: map[string]ComponentValue{},
		}
	}
	doc := &Document{Entities: EntitiesSpec{Templates: templates}}

	store := NewStore(doc, stubSheets{})
	if _, err := store.Resolve(fmt.Sprintf("t%d", depth-1)); !errors.Is(err, ErrCyclicInheritance) {
		t.Fatalf("expected %v, got %v", ErrCyclicInheritance, err)
	}
}

func TestResolveAllSurfacesSheetErrors(t *testing.T) {
	const src = `
entities:
  templates:
    ghost:
      components:
        sprite:
          sprite_size: [16, 16]
          animations:
            - layers: [missing.png]
              states: [stationary_south]
              frame_size: [16, 16]
              frame_count: 1
`
	store := NewStore(mustParse(t, src), stubSheets{})
	if err := store.ResolveAll(); err == nil {
		t.Fatalf("expected resolve to fail on an unknown sheet")
	}
}
