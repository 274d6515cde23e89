package component

import (
	"image"
	"time"
)

// LayerFrame is one layer's slice of the current composite frame: the
// sheet to read from and the source rectangle within it.
type LayerFrame struct {
	Asset string
	Rect  image.Rectangle
}

// Animator is the per-entity playback cursor through a shared
// ResolvedSprite. State transitions come from gameplay; Advance is
// called once per tick with the elapsed delta.
type Animator struct {
	resolved *ResolvedSprite
	current  *CompiledAnimation

	state    string
	elapsed  time.Duration
	frame    int
	finished bool
}

// NewAnimator creates a playback cursor positioned at frame 0 of the
// initial state.
func NewAnimator(resolved *ResolvedSprite, initial string) (*Animator, error) {
	c, err := resolved.Animation(initial)
	if err != nil {
		return nil, err
	}
	return &Animator{resolved: resolved, current: c, state: initial}, nil
}

// State returns the active state name.
func (a *Animator) State() string {
	if a == nil {
		return ""
	}
	return a.state
}

// Frame returns the current frame index within the active animation.
func (a *Animator) Frame() int {
	if a == nil {
		return 0
	}
	return a.frame
}

// Elapsed returns the time accumulated toward the next frame.
func (a *Animator) Elapsed() time.Duration {
	if a == nil {
		return 0
	}
	return a.elapsed
}

// Finished reports whether a non-looping animation has played through.
func (a *Animator) Finished() bool {
	return a != nil && a.finished
}

// SetState switches the active animation. Setting the current state
// again is a no-op that preserves the frame cursor, so gameplay may
// re-assert its state every tick without restarting the animation.
// An unclaimed state name leaves the animator untouched and returns
// ErrUnclaimedState.
func (a *Animator) SetState(name string) error {
	if a == nil {
		return nil
	}
	if name == a.state {
		return nil
	}
	c, err := a.resolved.Animation(name)
	if err != nil {
		return err
	}
	a.state = name
	a.current = c
	a.frame = 0
	a.elapsed = 0
	a.finished = false
	return nil
}

// Advance accumulates dt and steps the frame cursor. Looping
// animations wrap; non-looping animations clamp on the last frame and
// report finished from then on.
func (a *Animator) Advance(dt time.Duration) {
	if a == nil || a.current == nil || a.finished {
		return
	}
	c := a.current
	a.elapsed += dt
	for a.elapsed >= c.FrameInterval {
		a.elapsed -= c.FrameInterval
		a.frame++
		if a.frame >= c.FrameCount {
			if c.Loop {
				a.frame %= c.FrameCount
				continue
			}
			a.frame = c.FrameCount - 1
			a.finished = true
			a.elapsed = 0
			return
		}
	}
}

// CurrentFrame returns one entry per layer in authored back-to-front
// order, each with the source rectangle for the active frame.
func (a *Animator) CurrentFrame() []LayerFrame {
	if a == nil || a.current == nil {
		return nil
	}
	rect := a.current.Rect(a.frame)
	out := make([]LayerFrame, len(a.current.Layers))
	for i, ref := range a.current.Layers {
		out[i] = LayerFrame{Asset: ref, Rect: rect}
	}
	return out
}

// Animation returns the active compiled animation.
func (a *Animator) Animation() *CompiledAnimation {
	if a == nil {
		return nil
	}
	return a.current
}
