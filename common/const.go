package common

import "time"

const (
	BaseWidth  = 1280
	BaseHeight = 720
)

// TickDuration is the fixed simulation step at 60 ticks per second.
const TickDuration = time.Second / 60

// DefaultFrameInterval is the frame hold time used when an animation
// block does not declare one.
const DefaultFrameInterval = TickDuration
