package component

import (
	"errors"
	"reflect"
	"testing"

	"github.com/milk9111/overworld/common"
)

func TestKindRegistry(t *testing.T) {
	want := []string{"position", "state", "physics", "sprite", "health", "mana", "character", "player", "input", "velocity"}
	if got := Kinds(); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected kinds %v, got %v", want, got)
	}
	for _, kind := range want {
		if !IsKind(kind) {
			t.Fatalf("expected %q to be a registered kind", kind)
		}
	}
	if IsKind("identity") {
		t.Fatalf("identity is engine assigned, not authorable")
	}
}

func TestDefaultFor(t *testing.T) {
	cases := []struct {
		kind  string
		check func(t *testing.T, v any)
	}{
		{"position", func(t *testing.T, v any) {
			if p := v.(*Position); p.Primary != "layer" {
				t.Fatalf("expected layer primary, got %q", p.Primary)
			}
		}},
		{"state", func(t *testing.T, v any) {
			if s := v.(*State); s.Value != common.StateNormal {
				t.Fatalf("expected normal state, got %v", s.Value)
			}
		}},
		{"sprite", func(t *testing.T, v any) {
			sp := v.(*Sprite)
			if sp.State != "stationary" || sp.Direction != common.South {
				t.Fatalf("expected stationary south sprite, got %+v", sp)
			}
		}},
		{"health", func(t *testing.T, v any) {
			h := v.(*Health)
			if h.Min != 0 || h.Max != 100 || h.Health != 1 {
				t.Fatalf("unexpected health defaults %+v", h)
			}
		}},
		{"mana", func(t *testing.T, v any) {
			m := v.(*Mana)
			if m.Max != 100 || len(m.Pools) != 0 {
				t.Fatalf("unexpected mana defaults %+v", m)
			}
		}},
		{"velocity", func(t *testing.T, v any) {
			if vel := v.(*Velocity); vel.Speed != 200 || vel.Moving() {
				t.Fatalf("unexpected velocity defaults %+v", vel)
			}
		}},
	}
	for _, c := range cases {
		t.Run(c.kind, func(t *testing.T) {
			v, err := DefaultFor(c.kind)
			if err != nil {
				t.Fatalf("DefaultFor(%q): %v", c.kind, err)
			}
			c.check(t, v)
		})
	}

	if _, err := DefaultFor("teleporter"); !errors.Is(err, ErrUnknownKind) {
		t.Fatalf("expected unknown kind error, got %v", err)
	}
}

func TestDecodeForKeepsUnsetDefaults(t *testing.T) {
	v, err := DecodeFor("health", map[string]any{"health": 42.0})
	if err != nil {
		t.Fatalf("decode health: %v", err)
	}
	h := v.(*Health)
	if h.Health != 42 || h.Max != 100 || h.Min != 0 {
		t.Fatalf("expected only health overridden, got %+v", h)
	}

	v, err = DecodeFor("sprite", map[string]any{"state": "moving", "direction": "north"})
	if err != nil {
		t.Fatalf("decode sprite: %v", err)
	}
	if name := v.(*Sprite).StateName(); name != "moving_north" {
		t.Fatalf("expected moving_north, got %q", name)
	}

	if _, err := DecodeFor("health", map[string]any{"max": "plenty"}); err == nil {
		t.Fatalf("expected a type error decoding max")
	}
}

func TestCloneIsolatesValues(t *testing.T) {
	orig := &Mana{Pools: map[string]float64{"earth": 30}, Max: 100}
	v, err := Clone("mana", orig)
	if err != nil {
		t.Fatalf("clone mana: %v", err)
	}
	clone := v.(*Mana)
	if clone == orig {
		t.Fatalf("clone returned the same pointer")
	}
	clone.Gain("earth", 50)
	if orig.Pools["earth"] != 30 {
		t.Fatalf("mutating the clone leaked into the original: %v", orig.Pools)
	}

	state := &State{Value: common.StateNormal}
	sv, err := Clone("state", state)
	if err != nil {
		t.Fatalf("clone state: %v", err)
	}
	sv.(*State).Kill()
	if state.Value != common.StateNormal {
		t.Fatalf("mutating the clone leaked into the original state")
	}
}
