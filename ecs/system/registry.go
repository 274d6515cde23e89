package system

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/milk9111/overworld/assets"
	"github.com/milk9111/overworld/ecs"
	"github.com/milk9111/overworld/prefabs"
)

var (
	// ErrUnknownSystem is returned when a document configures a system
	// name with no registered factory.
	ErrUnknownSystem = errors.New("system: unknown system")
	// ErrDuplicateSystem is returned when a factory name is registered
	// twice.
	ErrDuplicateSystem = errors.New("system: duplicate system")
)

// Deps carries the shared dependencies systems are built with. Any
// field may be nil; factories fall back to no-op behavior for
// dependencies they do not have.
type Deps struct {
	Log    *zap.Logger
	Assets *assets.Registry
}

func (d Deps) logger() *zap.Logger {
	if d.Log == nil {
		return zap.NewNop()
	}
	return d.Log
}

// Factory builds one system from its document configuration.
type Factory func(deps Deps, cfg prefabs.SystemConfig) (ecs.System, error)

// Registry maps system names to factories. Registration order is tick
// order: BuildAll returns systems ordered the way their factories were
// registered, regardless of document order.
type Registry struct {
	names     []string
	factories map[string]Factory
}

// NewRegistry creates an empty system registry.
func NewRegistry() *Registry {
	return &Registry{factories: map[string]Factory{}}
}

// Register adds a named factory at the end of the tick order.
func (r *Registry) Register(name string, f Factory) error {
	if r == nil || name == "" || f == nil {
		return fmt.Errorf("system: register %q: name and factory are required", name)
	}
	if _, ok := r.factories[name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateSystem, name)
	}
	r.names = append(r.names, name)
	r.factories[name] = f
	return nil
}

// Names returns the registered system names in tick order.
func (r *Registry) Names() []string {
	if r == nil {
		return nil
	}
	return append([]string(nil), r.names...)
}

// Build constructs the named system with its configuration.
func (r *Registry) Build(name string, deps Deps, cfg prefabs.SystemConfig) (ecs.System, error) {
	if r == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSystem, name)
	}
	f, ok := r.factories[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSystem, name)
	}
	s, err := f(deps, cfg)
	if err != nil {
		return nil, fmt.Errorf("system: build %s: %w", name, err)
	}
	return s, nil
}

// BuildAll constructs every system the document configures, in
// registration order. A configured name with no factory is an error;
// registered systems absent from the document are skipped.
func (r *Registry) BuildAll(deps Deps, configs map[string]prefabs.SystemConfig) ([]ecs.System, error) {
	if r == nil {
		return nil, nil
	}
	for name := range configs {
		if _, ok := r.factories[name]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownSystem, name)
		}
	}
	var out []ecs.System
	for _, name := range r.names {
		cfg, ok := configs[name]
		if !ok {
			continue
		}
		s, err := r.Build(name, deps, cfg)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

// DefaultRegistry returns a registry with every built-in system
// registered in canonical tick order: scripted speed modifiers first
// so movement sees their output, simulation systems next, and
// animation and rendering last so a tick's state changes land on
// screen the same tick.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	must := func(name string, f Factory) {
		if err := r.Register(name, f); err != nil {
			panic(err)
		}
	}
	must("haste", NewScriptSystemFactory("haste"))
	must("movement", NewMovementSystemFactory())
	must("mana_gathering", NewManaGatheringSystemFactory())
	must("mana_replenishment", NewManaReplenishmentSystemFactory())
	must("health_regeneration", NewHealthRegenerationSystemFactory())
	must("death", NewDeathSystemFactory())
	must("animation", NewAnimationSystemFactory())
	must("render", NewRenderSystemFactory())
	return r
}
