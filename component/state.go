package component

import "github.com/milk9111/overworld/common"

// State holds the entity capability bitmask.
type State struct {
	Value common.EntityState `yaml:"value"`
}

// NewState returns the normal living state.
func NewState() *State {
	return &State{Value: common.StateNormal}
}

// Kill clears every capability bit.
func (s *State) Kill() {
	if s == nil {
		return
	}
	s.Value = common.StateDead
}
