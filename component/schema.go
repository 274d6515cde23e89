package component

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ErrUnknownKind is returned when a template names a component kind
// that was never registered.
var ErrUnknownKind = errors.New("component: unknown component kind")

type kindEntry struct {
	name       string
	newDefault func() any
}

// The registry keeps registration order because entities attach
// components in that order when they are built.
var (
	kinds     []kindEntry
	kindIndex = map[string]int{}
)

// RegisterKind adds a component kind to the schema. newDefault must
// return a pointer to a fresh value carrying the kind's defaults.
// Game code may register additional kinds before any template loads.
func RegisterKind(name string, newDefault func() any) {
	if _, ok := kindIndex[name]; ok {
		panic(fmt.Sprintf("component: kind %q registered twice", name))
	}
	kindIndex[name] = len(kinds)
	kinds = append(kinds, kindEntry{name: name, newDefault: newDefault})
}

func init() {
	RegisterKind("position", func() any { return NewPosition() })
	RegisterKind("state", func() any { return NewState() })
	RegisterKind("physics", func() any { return NewPhysics() })
	RegisterKind("sprite", func() any { return NewSprite() })
	RegisterKind("health", func() any { return NewHealth() })
	RegisterKind("mana", func() any { return NewMana() })
	RegisterKind("character", func() any { return NewCharacter() })
	RegisterKind("player", func() any { return NewPlayer() })
	RegisterKind("input", func() any { return NewInput() })
	RegisterKind("velocity", func() any { return NewVelocity() })
}

// Kinds returns all registered kind names in registration order.
func Kinds() []string {
	out := make([]string, len(kinds))
	for i, k := range kinds {
		out[i] = k.name
	}
	return out
}

// IsKind reports whether name is a registered component kind.
func IsKind(name string) bool {
	_, ok := kindIndex[name]
	return ok
}

// DefaultFor returns a fresh default value for the named kind.
func DefaultFor(name string) (any, error) {
	i, ok := kindIndex[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, name)
	}
	return kinds[i].newDefault(), nil
}

// DecodeFor decodes a raw template mapping into the named kind's typed
// value. Fields absent from raw keep their schema defaults; a nil raw
// yields the plain default.
func DecodeFor(name string, raw any) (any, error) {
	v, err := DefaultFor(name)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return v, nil
	}
	b, err := yaml.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("component: encode %s override: %w", name, err)
	}
	if err := yaml.Unmarshal(b, v); err != nil {
		return nil, fmt.Errorf("component: decode %s override: %w", name, err)
	}
	return v, nil
}

// Clone deep-copies a typed component value through the same yaml
// round-trip used for decoding, so spawned entities never share
// mutable state with a template's prototypes.
func Clone(kind string, v any) (any, error) {
	b, err := yaml.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("component: clone %s: %w", kind, err)
	}
	out, err := DefaultFor(kind)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(b, out); err != nil {
		return nil, fmt.Errorf("component: clone %s: %w", kind, err)
	}
	return out, nil
}
