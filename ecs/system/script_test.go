package system

import (
	"testing"

	"github.com/milk9111/overworld/common"
	"github.com/milk9111/overworld/ecs"
	"github.com/milk9111/overworld/prefabs"
)

func newHasteSystem(t *testing.T, multiplier float64) ecs.System {
	t.Helper()
	sys, err := NewScriptSystemFactory("haste")(Deps{}, prefabs.SystemConfig{
		"script":     "haste.tengo",
		"multiplier": multiplier,
	})
	if err != nil {
		t.Fatalf("build haste system: %v", err)
	}
	return sys
}

func TestHasteScalesSpeedWhileHeld(t *testing.T) {
	w := ecs.NewWorld()
	e := newActor(t, w)
	sys := newHasteSystem(t, 1.5)

	vel := w.GetVelocity(e)
	base := vel.Speed

	in := w.GetInput(e)
	in.SkillUsage = true
	in.SelectedSkill = "haste"

	sys.Update(w, common.TickDuration)
	if !almostEqual(vel.Speed, base*1.5) {
		t.Fatalf("expected %v while hasted, got %v", base*1.5, vel.Speed)
	}

	// Holding across ticks must not compound.
	sys.Update(w, common.TickDuration)
	if !almostEqual(vel.Speed, base*1.5) {
		t.Fatalf("haste must not compound, got %v", vel.Speed)
	}

	in.SkillUsage = false
	sys.Update(w, common.TickDuration)
	if !almostEqual(vel.Speed, base) {
		t.Fatalf("releasing the skill should restore %v, got %v", base, vel.Speed)
	}
}

func TestHasteIgnoresOtherSkills(t *testing.T) {
	w := ecs.NewWorld()
	e := newActor(t, w)
	sys := newHasteSystem(t, 2)

	vel := w.GetVelocity(e)
	in := w.GetInput(e)
	in.SkillUsage = true
	in.SelectedSkill = "fireball"

	sys.Update(w, common.TickDuration)
	if !almostEqual(vel.Speed, 200) {
		t.Fatalf("haste should only react to its own skill name, got %v", vel.Speed)
	}
}

func TestHasteSkipsDeadEntities(t *testing.T) {
	w := ecs.NewWorld()
	e := newActor(t, w)
	sys := newHasteSystem(t, 2)

	w.GetState(e).Kill()
	vel := w.GetVelocity(e)
	in := w.GetInput(e)
	in.SkillUsage = true
	in.SelectedSkill = "haste"

	sys.Update(w, common.TickDuration)
	if !almostEqual(vel.Speed, 200) {
		t.Fatalf("dead entities keep their base speed, got %v", vel.Speed)
	}
}
