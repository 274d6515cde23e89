package ecs

import "github.com/milk9111/overworld/component"

// Positions returns the position storage.
func (w *World) Positions() *SparseSet {
	if w == nil {
		return nil
	}
	if w.positions == nil {
		w.positions = &SparseSet{}
	}
	return w.positions
}

// States returns the entity state storage.
func (w *World) States() *SparseSet {
	if w == nil {
		return nil
	}
	if w.states == nil {
		w.states = &SparseSet{}
	}
	return w.states
}

// Physics returns the physics storage.
func (w *World) Physics() *SparseSet {
	if w == nil {
		return nil
	}
	if w.physics == nil {
		w.physics = &SparseSet{}
	}
	return w.physics
}

// Sprites returns the sprite storage.
func (w *World) Sprites() *SparseSet {
	if w == nil {
		return nil
	}
	if w.sprites == nil {
		w.sprites = &SparseSet{}
	}
	return w.sprites
}

// Animators returns the animator storage.
func (w *World) Animators() *SparseSet {
	if w == nil {
		return nil
	}
	if w.animators == nil {
		w.animators = &SparseSet{}
	}
	return w.animators
}

// Healths returns the health storage.
func (w *World) Healths() *SparseSet {
	if w == nil {
		return nil
	}
	if w.healths == nil {
		w.healths = &SparseSet{}
	}
	return w.healths
}

// Manas returns the mana storage.
func (w *World) Manas() *SparseSet {
	if w == nil {
		return nil
	}
	if w.manas == nil {
		w.manas = &SparseSet{}
	}
	return w.manas
}

// Characters returns the character storage.
func (w *World) Characters() *SparseSet {
	if w == nil {
		return nil
	}
	if w.characters == nil {
		w.characters = &SparseSet{}
	}
	return w.characters
}

// Players returns the player marker storage.
func (w *World) Players() *SparseSet {
	if w == nil {
		return nil
	}
	if w.players == nil {
		w.players = &SparseSet{}
	}
	return w.players
}

// Inputs returns the input storage.
func (w *World) Inputs() *SparseSet {
	if w == nil {
		return nil
	}
	if w.inputs == nil {
		w.inputs = &SparseSet{}
	}
	return w.inputs
}

// Velocities returns the velocity storage.
func (w *World) Velocities() *SparseSet {
	if w == nil {
		return nil
	}
	if w.velocities == nil {
		w.velocities = &SparseSet{}
	}
	return w.velocities
}

// Identities returns the identity storage.
func (w *World) Identities() *SparseSet {
	if w == nil {
		return nil
	}
	if w.identities == nil {
		w.identities = &SparseSet{}
	}
	return w.identities
}

// SetPosition attaches a position component.
func (w *World) SetPosition(e Entity, p *component.Position) {
	if w == nil || p == nil {
		return
	}
	w.Positions().Set(e.ID, p)
}

// GetPosition returns the entity's position component.
func (w *World) GetPosition(e Entity) *component.Position {
	if w == nil {
		return nil
	}
	if p, ok := w.Positions().Get(e.ID).(*component.Position); ok {
		return p
	}
	return nil
}

// SetState attaches an entity state component.
func (w *World) SetState(e Entity, s *component.State) {
	if w == nil || s == nil {
		return
	}
	w.States().Set(e.ID, s)
}

// GetState returns the entity's state component.
func (w *World) GetState(e Entity) *component.State {
	if w == nil {
		return nil
	}
	if s, ok := w.States().Get(e.ID).(*component.State); ok {
		return s
	}
	return nil
}

// SetPhysics attaches a physics component.
func (w *World) SetPhysics(e Entity, p *component.Physics) {
	if w == nil || p == nil {
		return
	}
	w.Physics().Set(e.ID, p)
}

// GetPhysics returns the entity's physics component.
func (w *World) GetPhysics(e Entity) *component.Physics {
	if w == nil {
		return nil
	}
	if p, ok := w.Physics().Get(e.ID).(*component.Physics); ok {
		return p
	}
	return nil
}

// SetSprite attaches a sprite component.
func (w *World) SetSprite(e Entity, s *component.Sprite) {
	if w == nil || s == nil {
		return
	}
	w.Sprites().Set(e.ID, s)
}

// GetSprite returns the entity's sprite component.
func (w *World) GetSprite(e Entity) *component.Sprite {
	if w == nil {
		return nil
	}
	if s, ok := w.Sprites().Get(e.ID).(*component.Sprite); ok {
		return s
	}
	return nil
}

// SetAnimator attaches an animator component.
func (w *World) SetAnimator(e Entity, a *component.Animator) {
	if w == nil || a == nil {
		return
	}
	w.Animators().Set(e.ID, a)
}

// GetAnimator returns the entity's animator component.
func (w *World) GetAnimator(e Entity) *component.Animator {
	if w == nil {
		return nil
	}
	if a, ok := w.Animators().Get(e.ID).(*component.Animator); ok {
		return a
	}
	return nil
}

// SetHealth attaches a health component.
func (w *World) SetHealth(e Entity, h *component.Health) {
	if w == nil || h == nil {
		return
	}
	w.Healths().Set(e.ID, h)
}

// GetHealth returns the entity's health component.
func (w *World) GetHealth(e Entity) *component.Health {
	if w == nil {
		return nil
	}
	if h, ok := w.Healths().Get(e.ID).(*component.Health); ok {
		return h
	}
	return nil
}

// SetMana attaches a mana component.
func (w *World) SetMana(e Entity, m *component.Mana) {
	if w == nil || m == nil {
		return
	}
	w.Manas().Set(e.ID, m)
}

// GetMana returns the entity's mana component.
func (w *World) GetMana(e Entity) *component.Mana {
	if w == nil {
		return nil
	}
	if m, ok := w.Manas().Get(e.ID).(*component.Mana); ok {
		return m
	}
	return nil
}

// SetCharacter attaches a character component.
func (w *World) SetCharacter(e Entity, c *component.Character) {
	if w == nil || c == nil {
		return
	}
	w.Characters().Set(e.ID, c)
}

// GetCharacter returns the entity's character component.
func (w *World) GetCharacter(e Entity) *component.Character {
	if w == nil {
		return nil
	}
	if c, ok := w.Characters().Get(e.ID).(*component.Character); ok {
		return c
	}
	return nil
}

// SetPlayer attaches a player marker component.
func (w *World) SetPlayer(e Entity, p *component.Player) {
	if w == nil || p == nil {
		return
	}
	w.Players().Set(e.ID, p)
}

// GetPlayer returns the entity's player marker component.
func (w *World) GetPlayer(e Entity) *component.Player {
	if w == nil {
		return nil
	}
	if p, ok := w.Players().Get(e.ID).(*component.Player); ok {
		return p
	}
	return nil
}

// SetInput attaches an input component.
func (w *World) SetInput(e Entity, i *component.Input) {
	if w == nil || i == nil {
		return
	}
	w.Inputs().Set(e.ID, i)
}

// GetInput returns the entity's input component.
func (w *World) GetInput(e Entity) *component.Input {
	if w == nil {
		return nil
	}
	if i, ok := w.Inputs().Get(e.ID).(*component.Input); ok {
		return i
	}
	return nil
}

// SetVelocity attaches a velocity component.
func (w *World) SetVelocity(e Entity, v *component.Velocity) {
	if w == nil || v == nil {
		return
	}
	w.Velocities().Set(e.ID, v)
}

// GetVelocity returns the entity's velocity component.
func (w *World) GetVelocity(e Entity) *component.Velocity {
	if w == nil {
		return nil
	}
	if v, ok := w.Velocities().Get(e.ID).(*component.Velocity); ok {
		return v
	}
	return nil
}

// SetIdentity attaches an identity component.
func (w *World) SetIdentity(e Entity, id *component.Identity) {
	if w == nil || id == nil {
		return
	}
	w.Identities().Set(e.ID, id)
}

// GetIdentity returns the entity's identity component.
func (w *World) GetIdentity(e Entity) *component.Identity {
	if w == nil {
		return nil
	}
	if id, ok := w.Identities().Get(e.ID).(*component.Identity); ok {
		return id
	}
	return nil
}
