package component

import "github.com/milk9111/overworld/common"

// AnimationBlock is one authored animation entry inside a sprite
// component. Every layer in a block shares the same frame grid; the
// block claims one or more logical states (stationary_north,
// moving_east, ...). Later blocks in a sprite override earlier ones
// for states they both claim.
type AnimationBlock struct {
	Layers []string `yaml:"layers"`
	States []string `yaml:"states"`

	FrameSize   [2]int `yaml:"frame_size"`
	FrameCount  int    `yaml:"frame_count"`
	FrameOffset int    `yaml:"frame_offset"`

	// FrameInterval is the per-frame hold time in milliseconds.
	// Zero means the engine default.
	FrameInterval int  `yaml:"frame_interval"`
	Loop          bool `yaml:"loop"`
}

// Sprite is the authored visual description of an entity: its size on
// screen, its animation blocks, and the logical state axes that pick
// the active animation.
type Sprite struct {
	SpriteSize [2]int           `yaml:"sprite_size"`
	Animations []AnimationBlock `yaml:"animations"`

	Direction common.Direction `yaml:"direction"`
	State     string           `yaml:"state"`
}

// NewSprite returns a sprite facing south, stationary, with no blocks.
func NewSprite() *Sprite {
	return &Sprite{Direction: common.South, State: "stationary"}
}

// StateName composes the active playback state from the logical state
// and facing, e.g. "moving_north".
func (s *Sprite) StateName() string {
	if s == nil {
		return ""
	}
	return s.State + "_" + s.Direction.Suffix()
}
