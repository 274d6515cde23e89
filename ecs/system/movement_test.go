package system

import (
	"testing"
	"time"

	"github.com/milk9111/overworld/common"
	"github.com/milk9111/overworld/component"
	"github.com/milk9111/overworld/ecs"
)

func TestMovementAppliesVelocity(t *testing.T) {
	w := ecs.NewWorld()
	e := newActor(t, w)
	sys := NewMovementSystem(nil)

	w.GetInput(e).MoveRight = true
	sys.Update(w, time.Second)

	pos := w.GetPosition(e).At()
	if !almostEqual(pos.X, 200) || !almostEqual(pos.Y, 0) {
		t.Fatalf("expected (200, 0) after one second at speed 200, got %+v", pos)
	}

	sprite := w.GetSprite(e)
	if sprite.State != "moving" || sprite.Direction != common.East {
		t.Fatalf("expected moving east, got %q %v", sprite.State, sprite.Direction)
	}
	if w.GetState(e).Value.Has(common.StateStationary) {
		t.Fatalf("stationary bit should be cleared while moving")
	}

	moves := drainByType(w, ecs.EventEntityMove)
	if len(moves) != 1 {
		t.Fatalf("expected one move event, got %d", len(moves))
	}
	evt := moves[0].Data.(ecs.EntityMoveEvent)
	if evt.Entity != e || !almostEqual(evt.To.X, 200) {
		t.Fatalf("unexpected move event %+v", evt)
	}
}

func TestMovementDiagonalIsNormalized(t *testing.T) {
	w := ecs.NewWorld()
	e := newActor(t, w)
	sys := NewMovementSystem(nil)

	in := w.GetInput(e)
	in.MoveRight = true
	in.MoveDown = true
	sys.Update(w, time.Second)

	pos := w.GetPosition(e).At()
	dist := pos.Len()
	if !almostEqual(dist, 200) {
		t.Fatalf("diagonal movement should cover speed*dt, got %v", dist)
	}
	// Diagonal facing resolves to a horizontal animation row.
	if got := w.GetSprite(e).Direction.Suffix(); got != "east" {
		t.Fatalf("expected east suffix for southeast facing, got %q", got)
	}
}

func TestMovementStopsWhenInputReleased(t *testing.T) {
	w := ecs.NewWorld()
	e := newActor(t, w)
	sys := NewMovementSystem(nil)

	w.GetInput(e).MoveLeft = true
	sys.Update(w, common.TickDuration)
	w.GetInput(e).MoveLeft = false
	sys.Update(w, common.TickDuration)

	sprite := w.GetSprite(e)
	if sprite.State != "stationary" {
		t.Fatalf("expected stationary after release, got %q", sprite.State)
	}
	if sprite.Direction != common.West {
		t.Fatalf("facing should persist after stopping, got %v", sprite.Direction)
	}
	if !w.GetState(e).Value.Has(common.StateStationary) {
		t.Fatalf("stationary bit should be set when stopped")
	}
}

func TestMovementStateGates(t *testing.T) {
	t.Run("cannot_move", func(t *testing.T) {
		w := ecs.NewWorld()
		e := newActor(t, w)
		sys := NewMovementSystem(nil)

		w.GetState(e).Value = common.StateNormal.Without(common.StateCanMove)
		w.GetInput(e).MoveRight = true
		sys.Update(w, time.Second)

		if pos := w.GetPosition(e).At(); !pos.IsZero() {
			t.Fatalf("entity without can_move must not move, got %+v", pos)
		}
		if got := w.GetSprite(e).State; got != "stationary" {
			t.Fatalf("expected stationary sprite, got %q", got)
		}
	})

	t.Run("cannot_change_input", func(t *testing.T) {
		w := ecs.NewWorld()
		e := newActor(t, w)
		sys := NewMovementSystem(nil)

		w.GetState(e).Value = common.StateNormal.Without(common.StateCanChangeInput)
		w.GetVelocity(e).Direction = common.Vec2{X: 1}
		w.GetInput(e).MoveUp = true
		sys.Update(w, time.Second)

		pos := w.GetPosition(e).At()
		if !almostEqual(pos.X, 200) || !almostEqual(pos.Y, 0) {
			t.Fatalf("held velocity should apply unchanged, got %+v", pos)
		}
	})

	t.Run("dead_entity_untouched", func(t *testing.T) {
		w := ecs.NewWorld()
		e := newActor(t, w)
		sys := NewMovementSystem(nil)

		w.GetState(e).Kill()
		w.GetSprite(e).State = "dead"
		w.GetInput(e).MoveRight = true
		sys.Update(w, time.Second)

		if pos := w.GetPosition(e).At(); !pos.IsZero() {
			t.Fatalf("dead entity must not move, got %+v", pos)
		}
		if got := w.GetSprite(e).State; got != "dead" {
			t.Fatalf("movement must not overwrite the dead sprite state, got %q", got)
		}
	})
}

func TestMovementWithoutOptionalComponents(t *testing.T) {
	w := ecs.NewWorld()
	e := w.CreateEntity()
	w.SetPosition(e, component.NewPosition())
	vel := component.NewVelocity()
	vel.Direction = common.Vec2{X: 0, Y: 1}
	w.SetVelocity(e, vel)

	NewMovementSystem(nil).Update(w, time.Second)

	if pos := w.GetPosition(e).At(); !almostEqual(pos.Y, 200) {
		t.Fatalf("expected bare position+velocity entity to move, got %+v", pos)
	}
}
