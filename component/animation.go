package component

import (
	"errors"
	"fmt"
	"image"
	"sort"
	"time"

	"github.com/milk9111/overworld/common"
)

var (
	// ErrLayerGeometryMismatch is returned when the layers of one
	// animation block imply disagreeing frame grids, or a sheet is
	// too small to hold the block's frames.
	ErrLayerGeometryMismatch = errors.New("component: animation layer geometry mismatch")
	// ErrUnclaimedState is returned when no compiled animation claims
	// a requested state name.
	ErrUnclaimedState = errors.New("component: unclaimed animation state")
)

// SheetLookup resolves an asset reference to its sheet size in pixels.
// The asset registry implements it; tests may supply a stub.
type SheetLookup interface {
	SheetSize(ref string) (w, h int, err error)
}

// CompiledAnimation is the renderer-ready form of one animation block
// for one state: layer refs in back-to-front order plus the shared
// frame grid and timing.
type CompiledAnimation struct {
	Layers        []string
	FrameSize     [2]int
	FrameCount    int
	FrameOffset   int
	FrameInterval time.Duration
	Loop          bool

	cols int
}

// Rect returns the source rectangle for the given frame index, laid
// out row-major from FrameOffset within the layer sheets.
func (c *CompiledAnimation) Rect(frame int) image.Rectangle {
	if c == nil || c.cols <= 0 {
		return image.Rectangle{}
	}
	idx := c.FrameOffset + frame
	col := idx % c.cols
	row := idx / c.cols
	sx := col * c.FrameSize[0]
	sy := row * c.FrameSize[1]
	return image.Rect(sx, sy, sx+c.FrameSize[0], sy+c.FrameSize[1])
}

// ResolvedSprite is the compiled animation table for one template,
// shared read-only by every entity spawned from it.
type ResolvedSprite struct {
	SpriteSize [2]int
	States     map[string]*CompiledAnimation
}

// Animation returns the compiled animation for a state name.
func (r *ResolvedSprite) Animation(state string) (*CompiledAnimation, error) {
	if r == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnclaimedState, state)
	}
	c, ok := r.States[state]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnclaimedState, state)
	}
	return c, nil
}

// StateNames returns the claimed state names, sorted.
func (r *ResolvedSprite) StateNames() []string {
	if r == nil {
		return nil
	}
	out := make([]string, 0, len(r.States))
	for name := range r.States {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// CompileSprite turns a sprite component's authored animation blocks
// into a state-indexed table. Blocks are compiled in authored order;
// a later block claiming an already-claimed state replaces the earlier
// claim wholesale. Layer geometry is validated against the real sheet
// sizes supplied by sheets.
func CompileSprite(s *Sprite, sheets SheetLookup) (*ResolvedSprite, error) {
	if s == nil {
		return nil, errors.New("component: compile nil sprite")
	}
	resolved := &ResolvedSprite{
		SpriteSize: s.SpriteSize,
		States:     map[string]*CompiledAnimation{},
	}
	for i := range s.Animations {
		block := &s.Animations[i]
		compiled, err := compileBlock(block, sheets)
		if err != nil {
			return nil, fmt.Errorf("component: animation block %d: %w", i, err)
		}
		for _, state := range block.States {
			resolved.States[state] = compiled
		}
	}
	return resolved, nil
}

func compileBlock(block *AnimationBlock, sheets SheetLookup) (*CompiledAnimation, error) {
	if len(block.Layers) == 0 {
		return nil, errors.New("no layers")
	}
	if len(block.States) == 0 {
		return nil, errors.New("no states")
	}
	if block.FrameSize[0] <= 0 || block.FrameSize[1] <= 0 {
		return nil, fmt.Errorf("invalid frame_size %v", block.FrameSize)
	}
	if block.FrameCount < 1 {
		return nil, fmt.Errorf("invalid frame_count %d", block.FrameCount)
	}
	if block.FrameOffset < 0 {
		return nil, fmt.Errorf("invalid frame_offset %d", block.FrameOffset)
	}

	interval := time.Duration(block.FrameInterval) * time.Millisecond
	if interval <= 0 {
		interval = common.DefaultFrameInterval
	}

	compiled := &CompiledAnimation{
		Layers:        append([]string(nil), block.Layers...),
		FrameSize:     block.FrameSize,
		FrameCount:    block.FrameCount,
		FrameOffset:   block.FrameOffset,
		FrameInterval: interval,
		Loop:          block.Loop,
	}

	if sheets == nil {
		return nil, errors.New("no sheet lookup")
	}
	for _, ref := range block.Layers {
		w, h, err := sheets.SheetSize(ref)
		if err != nil {
			return nil, fmt.Errorf("layer %s: %w", ref, err)
		}
		cols := w / block.FrameSize[0]
		rows := h / block.FrameSize[1]
		if cols < 1 || rows < 1 {
			return nil, fmt.Errorf("%w: layer %s sheet %dx%d smaller than frame %v",
				ErrLayerGeometryMismatch, ref, w, h, block.FrameSize)
		}
		if compiled.cols == 0 {
			compiled.cols = cols
		} else if cols != compiled.cols {
			return nil, fmt.Errorf("%w: layer %s has %d columns, want %d",
				ErrLayerGeometryMismatch, ref, cols, compiled.cols)
		}
		if block.FrameOffset+block.FrameCount > cols*rows {
			return nil, fmt.Errorf("%w: layer %s holds %d frames, block needs %d",
				ErrLayerGeometryMismatch, ref, cols*rows, block.FrameOffset+block.FrameCount)
		}
	}
	return compiled, nil
}
