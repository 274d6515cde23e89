package common

import "fmt"

// EntityState is a bitmask of entity capabilities. The zero value is
// Dead: a dead entity can do nothing.
type EntityState uint8

const StateDead EntityState = 0

const (
	StateStationary EntityState = 1 << iota
	StateCanMove
	StateCanUseSkills
	StateCanChangeInput
	StateCanReplenishHealth
	StateCanBeDamaged
)

// StateNormal is the default capability set for a living entity.
const StateNormal = StateCanMove | StateCanUseSkills | StateCanChangeInput |
	StateCanReplenishHealth | StateCanBeDamaged

// Has reports whether every bit in mask is set.
func (s EntityState) Has(mask EntityState) bool {
	if mask == StateDead {
		return s == StateDead
	}
	return s&mask == mask
}

// With returns s with the given bits set.
func (s EntityState) With(mask EntityState) EntityState {
	return s | mask
}

// Without returns s with the given bits cleared.
func (s EntityState) Without(mask EntityState) EntityState {
	return s &^ mask
}

// IsDead reports whether no capability bits remain.
func (s EntityState) IsDead() bool {
	return s == StateDead
}

var stateNames = map[string]EntityState{
	"dead":                 StateDead,
	"stationary":           StateStationary,
	"can_move":             StateCanMove,
	"can_use_skills":       StateCanUseSkills,
	"can_change_input":     StateCanChangeInput,
	"can_replenish_health": StateCanReplenishHealth,
	"can_be_damaged":       StateCanBeDamaged,
	"normal":               StateNormal,
}

// ParseEntityState maps a lowercase state name to its bitmask.
func ParseEntityState(name string) (EntityState, error) {
	if s, ok := stateNames[name]; ok {
		return s, nil
	}
	return 0, fmt.Errorf("common: unknown entity state %q", name)
}

// UnmarshalYAML decodes a state from a name, a list of names OR'd
// together, or a raw bitmask value.
func (s *EntityState) UnmarshalYAML(unmarshal func(any) error) error {
	var one string
	if err := unmarshal(&one); err == nil {
		parsed, err := ParseEntityState(one)
		if err != nil {
			return err
		}
		*s = parsed
		return nil
	}
	var raw int
	if err := unmarshal(&raw); err == nil {
		*s = EntityState(raw)
		return nil
	}
	var many []string
	if err := unmarshal(&many); err != nil {
		return err
	}
	var acc EntityState
	for _, name := range many {
		parsed, err := ParseEntityState(name)
		if err != nil {
			return err
		}
		acc |= parsed
	}
	*s = acc
	return nil
}

var stateBits = []struct {
	bit  EntityState
	name string
}{
	{StateStationary, "stationary"},
	{StateCanMove, "can_move"},
	{StateCanUseSkills, "can_use_skills"},
	{StateCanChangeInput, "can_change_input"},
	{StateCanReplenishHealth, "can_replenish_health"},
	{StateCanBeDamaged, "can_be_damaged"},
}

// MarshalYAML encodes a state as a name or a list of bit names.
func (s EntityState) MarshalYAML() (any, error) {
	switch s {
	case StateDead:
		return "dead", nil
	case StateNormal:
		return "normal", nil
	}
	var names []string
	for _, b := range stateBits {
		if s&b.bit != 0 {
			names = append(names, b.name)
		}
	}
	if len(names) == 1 {
		return names[0], nil
	}
	return names, nil
}
