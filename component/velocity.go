package component

import "github.com/milk9111/overworld/common"

// Velocity is a movement intent: a direction vector scaled by speed in
// pixels per second.
type Velocity struct {
	Direction common.Vec2 `yaml:"direction"`
	Speed     float64     `yaml:"speed"`
}

// NewVelocity returns a stopped velocity at the default walk speed.
func NewVelocity() *Velocity {
	return &Velocity{Speed: 200}
}

// Moving reports whether the direction vector is nonzero.
func (v *Velocity) Moving() bool {
	return v != nil && !v.Direction.IsZero()
}

// Stop zeroes the direction, keeping speed.
func (v *Velocity) Stop() {
	if v == nil {
		return
	}
	v.Direction = common.Vec2{}
}
