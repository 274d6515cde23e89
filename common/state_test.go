package common

import (
	"reflect"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEntityStateBits(t *testing.T) {
	cases := []struct {
		name  string
		state EntityState
		want  uint8
	}{
		{"dead", StateDead, 0},
		{"stationary", StateStationary, 1},
		{"can_move", StateCanMove, 2},
		{"can_use_skills", StateCanUseSkills, 4},
		{"can_change_input", StateCanChangeInput, 8},
		{"can_replenish_health", StateCanReplenishHealth, 16},
		{"can_be_damaged", StateCanBeDamaged, 32},
		{"normal", StateNormal, 62},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if uint8(c.state) != c.want {
				t.Fatalf("expected %d, got %d", c.want, uint8(c.state))
			}
		})
	}
}

func TestEntityStateHas(t *testing.T) {
	if !StateNormal.Has(StateCanMove) {
		t.Fatalf("normal should be able to move")
	}
	if StateNormal.Has(StateStationary) {
		t.Fatalf("normal does not include the stationary bit")
	}
	if !StateDead.Has(StateDead) {
		t.Fatalf("dead should match dead")
	}
	if StateNormal.Has(StateDead) {
		t.Fatalf("a living state must not match dead")
	}

	s := StateNormal.Without(StateCanMove)
	if s.Has(StateCanMove) {
		t.Fatalf("cleared bit still set")
	}
	if !s.With(StateCanMove).Has(StateCanMove) {
		t.Fatalf("restored bit missing")
	}
	if !StateNormal.Without(StateNormal).IsDead() {
		t.Fatalf("clearing every capability should read as dead")
	}
}

func TestEntityStateYAML(t *testing.T) {
	var got struct {
		Value EntityState `yaml:"value"`
	}

	cases := []struct {
		name string
		src  string
		want EntityState
	}{
		{"single_name", "value: normal", StateNormal},
		{"dead_name", "value: dead", StateDead},
		{"name_list", "value: [stationary, can_move]", StateStationary | StateCanMove},
		{"raw_bits", "value: 62", StateNormal},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if err := yaml.Unmarshal([]byte(c.src), &got); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if got.Value != c.want {
				t.Fatalf("expected %d, got %d", c.want, got.Value)
			}
		})
	}

	if err := yaml.Unmarshal([]byte("value: invincible"), &got); err == nil {
		t.Fatalf("expected an error for an unknown state name")
	}

	marshals := []struct {
		state EntityState
		want  any
	}{
		{StateNormal, "normal"},
		{StateDead, "dead"},
		{StateStationary, "stationary"},
		{StateStationary | StateCanMove, []string{"stationary", "can_move"}},
	}
	for _, m := range marshals {
		out, err := m.state.MarshalYAML()
		if err != nil {
			t.Fatalf("marshal %d: %v", m.state, err)
		}
		if !reflect.DeepEqual(out, m.want) {
			t.Fatalf("expected %v, got %v", m.want, out)
		}
	}
}
