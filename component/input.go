package component

import "github.com/milk9111/overworld/common"

// Input holds the intent state written by the input subsystem and read
// by gameplay systems each tick.
type Input struct {
	MoveUp    bool `yaml:"move_up"`
	MoveDown  bool `yaml:"move_down"`
	MoveLeft  bool `yaml:"move_left"`
	MoveRight bool `yaml:"move_right"`

	ManaGather bool `yaml:"mana_gather"`
	SkillUsage bool `yaml:"skill_usage"`

	SelectedSkill string       `yaml:"selected_skill"`
	TargetPoint   *common.Vec2 `yaml:"target_point"`
	TargetEntity  string       `yaml:"target_entity"`
}

// NewInput returns an input component with nothing pressed.
func NewInput() *Input {
	return &Input{}
}

// MoveVector maps the held movement inputs to a direction vector.
// Opposite inputs cancel.
func (in *Input) MoveVector() common.Vec2 {
	if in == nil {
		return common.Vec2{}
	}
	var v common.Vec2
	if in.MoveUp {
		v.Y--
	}
	if in.MoveDown {
		v.Y++
	}
	if in.MoveLeft {
		v.X--
	}
	if in.MoveRight {
		v.X++
	}
	return v
}

// Reset releases every input and clears targets.
func (in *Input) Reset() {
	if in == nil {
		return
	}
	*in = Input{}
}
