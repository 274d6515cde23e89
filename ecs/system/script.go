package system

import (
	"fmt"
	"time"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"go.uber.org/zap"

	"github.com/milk9111/overworld/ecs"
	"github.com/milk9111/overworld/prefabs"
)

// ScriptSystem runs a tengo script against every entity with velocity
// and input, letting a document-configured script adjust walk speed
// without recompiling the engine. The script reads base_speed, held,
// multiplier, and dt, and writes speed.
//
// held is true while the entity's skill input selects this system's
// name, so one script system can back each authored skill.
type ScriptSystem struct {
	name string
	log  *zap.Logger

	compiled   *tengo.Compiled
	baseSpeeds map[ecs.Entity]float64
	broken     bool
}

// NewScriptSystemFactory returns a registry factory that compiles the
// configured script once at build time.
func NewScriptSystemFactory(name string) Factory {
	return func(deps Deps, cfg prefabs.SystemConfig) (ecs.System, error) {
		path := cfg.String("script", "")
		if path == "" {
			return nil, fmt.Errorf("script system %q: missing script path", name)
		}
		src, err := prefabs.LoadScript(path)
		if err != nil {
			return nil, fmt.Errorf("script system %q: load %s: %w", name, path, err)
		}

		script := tengo.NewScript(src)
		script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))
		if err := script.Add("dt", 0.0); err != nil {
			return nil, fmt.Errorf("script system %q: %w", name, err)
		}
		if err := script.Add("base_speed", 0.0); err != nil {
			return nil, fmt.Errorf("script system %q: %w", name, err)
		}
		if err := script.Add("held", false); err != nil {
			return nil, fmt.Errorf("script system %q: %w", name, err)
		}
		if err := script.Add("multiplier", cfg.Float("multiplier", 1.0)); err != nil {
			return nil, fmt.Errorf("script system %q: %w", name, err)
		}
		if err := script.Add("speed", 0.0); err != nil {
			return nil, fmt.Errorf("script system %q: %w", name, err)
		}

		compiled, err := script.Compile()
		if err != nil {
			return nil, fmt.Errorf("script system %q: compile %s: %w", name, path, err)
		}

		return &ScriptSystem{
			name:       name,
			log:        deps.logger(),
			compiled:   compiled,
			baseSpeeds: map[ecs.Entity]float64{},
		}, nil
	}
}

func (s *ScriptSystem) Update(w *ecs.World, dt time.Duration) {
	if w == nil || s.broken {
		return
	}
	for _, id := range ecs.IntersectEntities(w.Velocities(), w.Inputs()) {
		e, ok := w.Handle(id)
		if !ok {
			continue
		}
		if state := w.GetState(e); state != nil && state.Value.IsDead() {
			continue
		}
		vel := w.GetVelocity(e)
		in := w.GetInput(e)

		base, ok := s.baseSpeeds[e]
		if !ok {
			base = vel.Speed
			s.baseSpeeds[e] = base
		}
		held := in.SkillUsage && in.SelectedSkill == s.name

		if err := s.run(base, held, dt); err != nil {
			s.broken = true
			s.log.Error("script system disabled after run failure",
				zap.String("system", s.name),
				zap.Error(err))
			return
		}
		vel.Speed = s.compiled.Get("speed").Float()
	}

	for e := range s.baseSpeeds {
		if !w.IsAlive(e) {
			delete(s.baseSpeeds, e)
		}
	}
}

func (s *ScriptSystem) run(base float64, held bool, dt time.Duration) error {
	if err := s.compiled.Set("dt", dt.Seconds()); err != nil {
		return err
	}
	if err := s.compiled.Set("base_speed", base); err != nil {
		return err
	}
	if err := s.compiled.Set("held", held); err != nil {
		return err
	}
	return s.compiled.Run()
}
