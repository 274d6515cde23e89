package prefabs

import (
	"errors"
	"fmt"

	"github.com/milk9111/overworld/component"
)

var (
	// ErrUnknownTemplate is returned when a template name, or any
	// parent it references, is not in the store.
	ErrUnknownTemplate = errors.New("prefabs: unknown template")
	// ErrCyclicInheritance is returned when a template's parent chain
	// revisits a name.
	ErrCyclicInheritance = errors.New("prefabs: cyclic template inheritance")
)

// Resolved is the flat, concrete component set produced by resolving
// one template against its ancestor chain. The typed values are
// prototypes owned by the store: callers must clone them before
// attaching them to an entity. The compiled sprite is shared read-only
// by every entity spawned from the template.
type Resolved struct {
	Name string

	values map[string]any
	sprite *component.ResolvedSprite
}

// Kinds returns the component kinds present on the resolved template,
// in schema registration order.
func (r *Resolved) Kinds() []string {
	if r == nil {
		return nil
	}
	var out []string
	for _, kind := range component.Kinds() {
		if _, ok := r.values[kind]; ok {
			out = append(out, kind)
		}
	}
	return out
}

// Has reports whether the resolved template carries a kind.
func (r *Resolved) Has(kind string) bool {
	if r == nil {
		return false
	}
	_, ok := r.values[kind]
	return ok
}

// Component returns the resolved prototype value for a kind.
func (r *Resolved) Component(kind string) (any, bool) {
	if r == nil {
		return nil, false
	}
	v, ok := r.values[kind]
	return v, ok
}

// Sprite returns the compiled animation table, or nil when the
// template has no sprite component.
func (r *Resolved) Sprite() *component.ResolvedSprite {
	if r == nil {
		return nil
	}
	return r.sprite
}

// Resolve merges a template with its ancestor chain into a concrete
// component set. Results are memoized per name.
//
// Merge rules, applied root first: a component value provided at a
// level replaces the inherited one wholesale, decoded onto schema
// defaults; a null value resets the kind to its plain default; an
// absent kind is inherited verbatim. The exception is the sprite's
// animation block list, which accumulates down the chain so that a
// descendant block only displaces ancestor blocks for the states it
// claims.
func (s *Store) Resolve(name string) (*Resolved, error) {
	if s == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTemplate, name)
	}
	if r, ok := s.resolved[name]; ok {
		return r, nil
	}

	chain, err := s.chain(name)
	if err != nil {
		return nil, fmt.Errorf("prefabs: resolve %s: %w", name, err)
	}

	values := map[string]any{}
	var spriteBlocks []component.AnimationBlock
	for _, level := range chain {
		tmpl := s.templates[level]
		for kind, cv := range tmpl.Components {
			if cv.IsDefault() {
				v, err := component.DefaultFor(kind)
				if err != nil {
					return nil, fmt.Errorf("prefabs: resolve %s: template %s: %w", name, level, err)
				}
				values[kind] = v
				if kind == "sprite" {
					spriteBlocks = nil
				}
				continue
			}
			v, err := component.DecodeFor(kind, cv.Raw)
			if err != nil {
				return nil, fmt.Errorf("prefabs: resolve %s: template %s: %w", name, level, err)
			}
			if kind == "sprite" {
				sp := v.(*component.Sprite)
				sp.Animations = append(append([]component.AnimationBlock(nil), spriteBlocks...), sp.Animations...)
				spriteBlocks = sp.Animations
			}
			values[kind] = v
		}
	}

	r := &Resolved{Name: name, values: values}
	if v, ok := values["sprite"]; ok {
		compiled, err := component.CompileSprite(v.(*component.Sprite), s.sheets)
		if err != nil {
			return nil, fmt.Errorf("prefabs: resolve %s: %w", name, err)
		}
		r.sprite = compiled
	}
	s.resolved[name] = r
	return r, nil
}

// chain returns the template names from the root ancestor down to
// name. It fails on a missing template or a cycle, checking
// iteratively so that arbitrarily deep chains cannot overflow the
// stack.
func (s *Store) chain(name string) ([]string, error) {
	var out []string
	seen := map[string]bool{}
	cur := name
	for {
		tmpl, ok := s.templates[cur]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownTemplate, cur)
		}
		if seen[cur] {
			return nil, fmt.Errorf("%w: chain of %q revisits %q", ErrCyclicInheritance, name, cur)
		}
		seen[cur] = true
		out = append(out, cur)
		if tmpl.Parent == "" {
			break
		}
		cur = tmpl.Parent
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out, nil
}
